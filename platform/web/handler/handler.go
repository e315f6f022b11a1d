package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/platform/auth"
	"net/http"
)

// Result is what every handler returns, the wrapper turns it into the response
type Result struct {
	Status int
	Body   any
}

// Error is the body of every failed request
type Error struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"unauthorized access"`
}

// Message is the body of requests that only report what happened
type Message struct {
	Message string `json:"message" example:"user already exists"`
}

// Func handles a request
type Func func(ctx *gin.Context) Result

// AuthedFunc handles a request that already passed the bearer token check
type AuthedFunc func(ctx *gin.Context, claims auth.Claims) Result

// Wrapper adapts a Func to gin. String bodies are written as text, everything else as json.
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		if s, ok := r.Body.(string); ok {
			ctx.String(r.Status, s)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}

// Authed adapts an AuthedFunc to gin. Requests without a valid bearer token are
// answered with 401 and never reach f.
func Authed(a *auth.Auth, f AuthedFunc) gin.HandlerFunc {
	return Wrapper(func(ctx *gin.Context) Result {
		claims, err := a.Verify(ctx.GetHeader("Authorization"))
		if err != nil {
			return Unauthorized()
		}
		return f(ctx, claims)
	})
}

func Ok(body any) Result {
	return Result{Status: http.StatusOK, Body: body}
}

func BadRequest(message string) Result {
	return Result{
		Status: http.StatusBadRequest,
		Body:   Error{Error: true, Message: message},
	}
}

func Unauthorized() Result {
	return Result{
		Status: http.StatusUnauthorized,
		Body:   Error{Error: true, Message: auth.ErrUnauthorized.Error()},
	}
}

func NotFound(message string) Result {
	return Result{
		Status: http.StatusNotFound,
		Body:   Error{Error: true, Message: message},
	}
}

// Internal hides the cause from the client, callers log it.
func Internal() Result {
	return Result{
		Status: http.StatusInternalServerError,
		Body:   Error{Error: true, Message: "internal server error"},
	}
}
