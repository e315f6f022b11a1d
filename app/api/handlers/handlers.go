package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes-server/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes-server/app/api/handlers/v1/token"
	"github.com/ribgsilva/notes-server/app/api/handlers/v1/users"
	bnote "github.com/ribgsilva/notes-server/business/v1/note"
	buser "github.com/ribgsilva/notes-server/business/v1/user"
	pnote "github.com/ribgsilva/notes-server/persistence/v1/note"
	puser "github.com/ribgsilva/notes-server/persistence/v1/user"
	"github.com/ribgsilva/notes-server/platform/auth"
	"github.com/ribgsilva/notes-server/platform/web/handler"
	"github.com/ribgsilva/notes-server/sys"
	"net/http"
)

// Liveness is the body of the root route
const Liveness = "Notes server is running....."

// Config carries what the handlers are built from
type Config struct {
	Res  sys.Resources
	Cfg  sys.Config
	Auth *auth.Auth
}

func MapDefaults(r *gin.Engine, cfg Config) {
	hc := healthcheck.Handlers{Res: cfg.Res, Cfg: cfg.Cfg}

	r.GET("/", handler.Wrapper(func(*gin.Context) handler.Result {
		return handler.Ok(Liveness)
	}))
	r.GET("/v1/healthcheck", handler.Wrapper(hc.Get))
	r.HEAD("/v1/healthcheck", handler.Wrapper(hc.Get))
}

func MapApi(r *gin.Engine, cfg Config) {
	tk := token.Handlers{Log: cfg.Res.Log, Auth: cfg.Auth}
	us := users.Handlers{
		Log:  cfg.Res.Log,
		Core: buser.NewCore(puser.NewStore(cfg.Res, cfg.Cfg)),
	}
	nt := notes.Handlers{
		Log:  cfg.Res.Log,
		Core: bnote.NewCore(pnote.NewStore(cfg.Res, cfg.Cfg)),
	}

	r.POST("/jwt", handler.Wrapper(tk.Issue))
	r.POST("/users", handler.Wrapper(us.Register))

	r.POST("/addNote", handler.Wrapper(nt.Create))
	r.PUT("/update/:id", handler.Wrapper(nt.Update))
	r.POST("/cards/updateImage", handler.Wrapper(nt.UpdateImage))
	r.DELETE("/addNoteDelete/:id", handler.Wrapper(nt.Delete))

	// /getNote and /api/notes are the same route under the two prefixes clients use
	r.GET("/getNote/:email", handler.Authed(cfg.Auth, nt.QueryByEmail))
	r.GET("/api/notes/:email", handler.Authed(cfg.Auth, nt.QueryByEmail))
	r.GET("/api/search", handler.Authed(cfg.Auth, nt.Search))
	r.GET("/search", handler.Authed(cfg.Auth, nt.SearchAll))
	r.GET("/v1/notes/:id", handler.Authed(cfg.Auth, nt.Get))

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, handler.Error{Error: true, Message: "route not found"})
	})
}
