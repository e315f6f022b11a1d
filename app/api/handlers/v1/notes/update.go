package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/business/v1/note"
	"github.com/ribgsilva/notes-server/platform/web/handler"
)

// Update godoc
// @Summary Update a note
// @Description Replaces title, content, category and photoLink. A missing id is created with only those fields.
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "Fields"
// @Success 200 {object} note.UpdateResult
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /update/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	var up note.UpdateNote
	if err := ctx.ShouldBindJSON(&up); err != nil {
		return handler.BadRequest("invalid body")
	}

	res, err := h.Core.Update(ctx.Request.Context(), ctx.Param("id"), up)
	if err != nil {
		return h.fail(ctx, "update note", err)
	}
	return handler.Ok(res)
}
