package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())
	router.Use(requestIDMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// markdown pipeline
	router.POST(ParseURL, service.parseMarkdown)
	router.POST(RenderURL, service.renderMarkdown)
	router.GET(ExtensionsURL, service.listExtensions)

	server.Handler = router
	service.router = router
}
