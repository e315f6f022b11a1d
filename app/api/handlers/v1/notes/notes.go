package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/business/v1/note"
	"github.com/ribgsilva/notes-server/platform/web/handler"
	"github.com/ribgsilva/notes-server/platform/web/mid"
	"go.uber.org/zap"
)

// Handlers serves the note routes
type Handlers struct {
	Log  *zap.SugaredLogger
	Core note.Core
}

// fail maps a core error to its response, logging anything that is not the client's fault.
func (h Handlers) fail(ctx *gin.Context, op string, err error) handler.Result {
	switch {
	case errors.Is(err, note.ErrInvalidID):
		return handler.BadRequest(note.ErrInvalidID.Error())
	case errors.Is(err, note.ErrNotFound):
		return handler.NotFound(note.ErrNotFound.Error())
	default:
		h.Log.Errorw(op, "request_id", mid.GetRequestID(ctx), "ERROR", err)
		return handler.Internal()
	}
}
