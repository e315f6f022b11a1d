package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/platform/auth"
	"github.com/ribgsilva/notes-server/platform/web/handler"
)

// Search godoc
// @Summary Search the notes of a user
// @Description Case-insensitive substring match on title or content of the notes of userEmail
// @Tags Note
// @Produce json
// @Security Bearer
// @Param userEmail query string true "Owner email"
// @Param term query string false "Search term"
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /api/search [get]
func (h Handlers) Search(ctx *gin.Context, _ auth.Claims) handler.Result {
	found, err := h.Core.Search(ctx.Request.Context(), ctx.Query("userEmail"), ctx.Query("term"))
	if err != nil {
		return h.fail(ctx, "search notes", err)
	}
	return handler.Ok(found)
}

// SearchAll godoc
// @Summary Search every note
// @Description Case-insensitive substring match on title or category, across all users
// @Tags Note
// @Produce json
// @Security Bearer
// @Param query query string false "Search term"
// @Success 200 {array} note.Note
// @Failure 401 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /search [get]
func (h Handlers) SearchAll(ctx *gin.Context, _ auth.Claims) handler.Result {
	found, err := h.Core.SearchAll(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		return h.fail(ctx, "search all notes", err)
	}
	return handler.Ok(found)
}
