package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"inventory-api/internal/core/auth"
	"inventory-api/internal/core/config"
	"inventory-api/internal/core/server"
	mdw "inventory-api/internal/transport/http/middleware"
	resp "inventory-api/internal/transport/http/response"
)

const APIPrefix = "/api"

// NewAPIEngine builds the inventory API. Only POST /api/auth, /health and
// /metrics are reachable without a bearer token.
func NewAPIEngine(l *zap.Logger, cfg config.HTTP, gate *auth.Gate, mods ...Module) *gin.Engine {
	if l == nil {
		l = zap.NewNop()
	}
	r := server.NewRouter(l, cfg.CORSOrigins)

	// zero limits disable the corresponding middleware
	chain := []gin.HandlerFunc{mdw.RequestID()}
	if cfg.RateLimitRPS > 0 {
		chain = append(chain, mdw.RateLimitPerIP(rate.Limit(cfg.RateLimitRPS), max(1, cfg.RateLimitBurst)))
	}
	if cfg.MaxConcurrent > 0 {
		chain = append(chain, mdw.ConcurrencyLimit(cfg.MaxConcurrent))
	}
	if cfg.MaxBodyBytes > 0 {
		chain = append(chain, mdw.MaxBodyBytes(cfg.MaxBodyBytes))
	}
	if cfg.RequestTimeoutSec > 0 {
		chain = append(chain, mdw.Timeout(time.Duration(cfg.RequestTimeoutSec)*time.Second))
	}
	chain = append(chain, mdw.Recovery(l), mdw.Metrics(), mdw.AccessLog(l))
	r.Use(chain...)

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, resp.Error("Not Found")) })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(APIPrefix)
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(gate))

	MountAll(api, authed, mods...)
	return r
}
