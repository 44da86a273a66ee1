package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Codycody31/changerawr-sub002/rendercache"
)

type renderRequest struct {
	Markdown string `json:"markdown" binding:"required"`

	// SkipCache forces a fresh render, used by the editor preview where the
	// entry changes on every keystroke.
	SkipCache bool `json:"skip_cache"`
}

type renderResponse struct {
	HTML   string `json:"html"`
	Cached bool   `json:"cached"`
}

// renderMarkdown produces sanitized HTML for an entry body. Output for the
// public changelog page is cached by content hash; cache failures degrade to
// a fresh render, never to an error.
func (service *Service) renderMarkdown(ctx *gin.Context) {
	var req renderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if err := service.checkEntrySize(req.Markdown); err != nil {
		ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(err))
		return
	}

	key := rendercache.Key(req.Markdown)

	if !req.SkipCache {
		html, err := service.cache.GetHTML(ctx, key)
		switch {
		case err == nil:
			ctx.JSON(http.StatusOK, renderResponse{HTML: html, Cached: true})
			return
		case !errors.Is(err, rendercache.ErrNotFound):
			log.Warn().Err(err).Msg("render cache lookup failed, rendering fresh")
		}
	}

	html := service.engine.Clone().ToHTML(req.Markdown)

	if !req.SkipCache {
		if err := service.cache.SaveHTML(ctx, key, html, service.config.RenderCacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache render output")
		}
	}

	ctx.JSON(http.StatusOK, renderResponse{HTML: html, Cached: false})
}
