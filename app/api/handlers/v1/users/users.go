package users

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/business/v1/user"
	"github.com/ribgsilva/notes-server/platform/web/handler"
	"github.com/ribgsilva/notes-server/platform/web/mid"
	"go.uber.org/zap"
)

// Handlers serves the user routes
type Handlers struct {
	Log  *zap.SugaredLogger
	Core user.Core
}

// Register godoc
// @Summary Register a user
// @Description Stores the user unless the email is already registered. Fields other than email are kept as profile.
// @Tags User
// @Accept json
// @Produce json
// @Param user body object true "User, must contain email"
// @Success 200 {object} user.InsertResult
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /users [post]
func (h Handlers) Register(ctx *gin.Context) handler.Result {
	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return handler.BadRequest("invalid body")
	}

	newU, err := user.Parse(body)
	if errors.Is(err, user.ErrInvalidEmail) {
		return handler.BadRequest(err.Error())
	}

	reg, err := h.Core.Register(ctx.Request.Context(), newU)
	switch {
	case err != nil:
		h.Log.Errorw("register user", "request_id", mid.GetRequestID(ctx), "ERROR", err)
		return handler.Internal()
	case reg.Exists:
		return handler.Ok(handler.Message{Message: "user already exists"})
	default:
		return handler.Ok(reg.Result)
	}
}
