package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/platform/auth"
	"github.com/ribgsilva/notes-server/platform/web/handler"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Security Bearer
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /v1/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context, _ auth.Claims) handler.Result {
	get, err := h.Core.Find(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		return h.fail(ctx, "find note", err)
	}
	return handler.Ok(get)
}
