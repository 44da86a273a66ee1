package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Codycody31/changerawr-sub002/markdown"
)

// ErrEntryTooLarge is returned when the markdown payload exceeds the
// configured size cap. The engine itself enforces no limit.
var ErrEntryTooLarge = errors.New("markdown payload exceeds the configured size limit")

type parseRequest struct {
	Markdown string `json:"markdown" binding:"required"`
}

type parseResponse struct {
	Tokens   []markdown.Token   `json:"tokens"`
	Warnings []markdown.Warning `json:"warnings"`

	WordCount   int `json:"word_count"`
	ReadingTime int `json:"reading_time_minutes"`
}

// checkEntrySize applies the caller-side size limit the engine deliberately
// does not enforce.
func (service *Service) checkEntrySize(body string) error {
	limit := service.config.MaxEntryBytes
	if limit > 0 && len(body) > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrEntryTooLarge, len(body), limit)
	}
	return nil
}

// parseMarkdown tokenizes an entry body for the editor preview: tokens plus
// advisory warnings, never a parse failure.
func (service *Service) parseMarkdown(ctx *gin.Context) {
	var req parseRequest
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

	// Cloning keeps the per-parse warnings state off the shared engine, so
	// concurrent requests cannot race on it.
	engine := service.engine.Clone()
	tokens := engine.Parse(req.Markdown)

	warnings := engine.Warnings()
	if warnings == nil {
		warnings = []markdown.Warning{}
	}

	ctx.JSON(http.StatusOK, parseResponse{
		Tokens:      tokens,
		Warnings:    warnings,
		WordCount:   markdown.WordCount(req.Markdown),
		ReadingTime: int(markdown.EstimateReadingTime(req.Markdown).Minutes()),
	})
}
