package healthcheck

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-server/platform/cache"
	"github.com/ribgsilva/notes-server/platform/database"
	"github.com/ribgsilva/notes-server/platform/web/handler"
	"github.com/ribgsilva/notes-server/sys"
	"net/http"
)

// Status reports the state of each dependency
type Status struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
	Cache    string `json:"cache" example:"ok"`
}

// Handlers serves the healthcheck route
type Handlers struct {
	Res sys.Resources
	Cfg sys.Config
}

// Get godoc
// @Summary Healthcheck
// @Description Pings the database and the cache
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} healthcheck.Status
// @Router /v1/healthcheck [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	st := Status{Status: "ok", Database: "ok", Cache: "ok"}
	code := http.StatusOK

	if err := database.StatusCheck(ctx.Request.Context(), h.Res.Database, h.Cfg); err != nil {
		h.Res.Log.Warnw("healthcheck", "database", err)
		st.Database, st.Status, code = "unavailable", "degraded", http.StatusServiceUnavailable
	}
	if err := cache.StatusCheck(ctx.Request.Context(), h.Res.Cache, h.Cfg); err != nil {
		h.Res.Log.Warnw("healthcheck", "cache", err)
		st.Cache, st.Status, code = "unavailable", "degraded", http.StatusServiceUnavailable
	}

	return handler.Result{Status: code, Body: st}
}
