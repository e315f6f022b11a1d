package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/platform/auth"
	"github.com/ribgsilva/notes-server/platform/web/handler"
)

// QueryByEmail godoc
// @Summary List the notes of a user
// @Description Every note whose email is the path email. The token email is not compared with it.
// @Tags Note
// @Produce json
// @Security Bearer
// @Param email path string true "Owner email"
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/notes/{email} [get]
// @Router /getNote/{email} [get]
func (h Handlers) QueryByEmail(ctx *gin.Context, _ auth.Claims) handler.Result {
	found, err := h.Core.QueryByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		return h.fail(ctx, "query notes", err)
	}
	return handler.Ok(found)
}
