package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type extensionsResponse struct {
	Extensions []string `json:"extensions"`
}

// listExtensions reports the registered extension names so the widget can
// decide which syntax to offer.
func (service *Service) listExtensions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, extensionsResponse{
		Extensions: service.engine.Extensions(),
	})
}
