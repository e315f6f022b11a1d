package token

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/platform/auth"
	"github.com/ribgsilva/notes-server/platform/web/handler"
	"github.com/ribgsilva/notes-server/platform/web/mid"
	"go.uber.org/zap"
)

// Handlers serves the token route
type Handlers struct {
	Log  *zap.SugaredLogger
	Auth *auth.Auth
}

// Token is the body of an issued token
type Token struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Issue godoc
// @Summary Issue a token
// @Description Signs the posted claims, expected to carry an email. The token expires in one hour.
// @Tags Auth
// @Accept json
// @Produce json
// @Param claims body object true "Claims"
// @Success 200 {object} token.Token
// @Failure 400 {object} handler.Error
// @Router /jwt [post]
func (h Handlers) Issue(ctx *gin.Context) handler.Result {
	var claims map[string]any
	if err := ctx.ShouldBindJSON(&claims); err != nil {
		return handler.BadRequest("invalid body")
	}

	signed, err := h.Auth.Issue(claims)
	if err != nil {
		h.Log.Errorw("issue token", "request_id", mid.GetRequestID(ctx), "ERROR", err)
		return handler.Internal()
	}
	return handler.Ok(Token{Token: signed})
}
