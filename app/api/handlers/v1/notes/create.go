package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/business/v1/note"
	"github.com/ribgsilva/notes-server/platform/web/handler"
)

// Create godoc
// @Summary Add a note
// @Description Stores a new note, the id is generated
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note"
// @Success 200 {object} note.InsertResult
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /addNote [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.BadRequest("invalid body")
	}

	res, err := h.Core.Create(ctx.Request.Context(), newN)
	if err != nil {
		return h.fail(ctx, "create note", err)
	}
	return handler.Ok(res)
}
