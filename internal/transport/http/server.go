package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/flychess/flychess-server/internal/config"
	"github.com/flychess/flychess-server/internal/core"
)

// NewServer builds the HTTP server with the lobby routes.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           NewHandler(hub, cfg, logger),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// NewHandler mounts the websocket endpoint on a plain mux and delegates
// every other route to the gin engine. The upgrade must stay off gin:
// its response writer refuses to hijack once headers are flushed.
func NewHandler(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) stdhttp.Handler {
	mux := stdhttp.NewServeMux()
	mux.Handle("/ws", NewWSHandler(hub, logger))
	mux.Handle("/", newRouter(hub, cfg, logger))
	return mux
}

// newRouter wires the gin routes: health probe, room status REST probe, and
// static asset delivery for everything else.
func newRouter(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), LoggerMiddleware(logger))

	r.GET("/healthz", healthHandler)

	rooms := NewRoomHandlers(hub, logger)
	r.GET("/api/rooms/:id", rooms.GetRoom)

	r.NoRoute(staticHandler(cfg.StaticDir))

	return r
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
