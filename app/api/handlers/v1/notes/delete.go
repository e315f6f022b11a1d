package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/platform/web/handler"
)

// Delete godoc
// @Summary Delete a note
// @Description Deletes the note, deleting a missing note is not an error
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.DeleteResult
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /addNoteDelete/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	res, err := h.Core.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		return h.fail(ctx, "delete note", err)
	}
	return handler.Ok(res)
}
