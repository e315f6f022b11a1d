package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/business/v1/note"
	"github.com/ribgsilva/notes-server/platform/web/handler"
	"github.com/ribgsilva/notes-server/platform/web/mid"
	"net/http"
)

// ImageError is the body of a failed image update
type ImageError struct {
	Error string `json:"error" example:"Invalid data"`
}

// UpdateImage godoc
// @Summary Update the image of a note
// @Description Sets the photoLink of the note cardId, missing notes are not created
// @Tags Note
// @Accept json
// @Produce json
// @Param image body note.Image true "Image"
// @Success 200 {object} handler.Message
// @Failure 400 {object} notes.ImageError
// @Failure 500 {object} notes.ImageError
// @Router /cards/updateImage [post]
func (h Handlers) UpdateImage(ctx *gin.Context) handler.Result {
	var img note.Image
	if err := ctx.ShouldBindJSON(&img); err != nil {
		return handler.Result{Status: http.StatusBadRequest, Body: ImageError{Error: "Invalid data"}}
	}

	_, err := h.Core.UpdateImage(ctx.Request.Context(), img)
	switch {
	case errors.Is(err, note.ErrInvalidData):
		return handler.Result{Status: http.StatusBadRequest, Body: ImageError{Error: "Invalid data"}}
	case errors.Is(err, note.ErrInvalidID):
		return handler.Result{Status: http.StatusBadRequest, Body: ImageError{Error: "Invalid card id"}}
	case err != nil:
		h.Log.Errorw("update image", "request_id", mid.GetRequestID(ctx), "ERROR", err)
		return handler.Result{Status: http.StatusInternalServerError, Body: ImageError{Error: "Failed to update image URL"}}
	}
	return handler.Ok(handler.Message{Message: "Image URL updated successfully!"})
}
