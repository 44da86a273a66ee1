package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDMiddleware attaches a request id to every request, reusing the
// client-provided one when present so preview requests can be correlated
// with editor logs.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.Request.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set("request_id", requestID)
		ctx.Header(RequestIDHeader, requestID)

		ctx.Next()
	}
}
