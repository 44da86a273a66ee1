// Package api exposes the markdown engine over HTTP: parse previews for the
// editor, cached render output for the public changelog page, and an
// extension listing for the widget.
package api

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Codycody31/changerawr-sub002/markdown"
	"github.com/Codycody31/changerawr-sub002/rendercache"
	"github.com/Codycody31/changerawr-sub002/util"
)

const (
	// api routes
	PingURL       = "/ping"
	ParseURL      = "/v1/parse"
	RenderURL     = "/v1/render"
	ExtensionsURL = "/v1/extensions"

	// RequestIDHeader carries the per-request id assigned by the request id
	// middleware.
	RequestIDHeader = "X-Request-ID"
)

type Service struct {
	config util.Config
	engine *markdown.Engine
	cache  rendercache.Store
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config, engine and cache.
func NewService(
	config util.Config,
	engine *markdown.Engine,
	cache rendercache.Store,
) (*Service, error) {

	service := &Service{
		config: config,
		engine: engine,
		cache:  cache,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// handling CORS for the editor UI and the embeddable widget.
func (service *Service) corsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		if slices.Contains(service.config.AllowedOrigins, origin) ||
			slices.Contains(service.config.AllowedOrigins, "*") {
			ctx.Header("Access-Control-Allow-Origin", origin)
		}

		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		allowedHeaders := []string{
			"Content-Type",
			RequestIDHeader,
		}

		ctx.Header("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ","))

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
