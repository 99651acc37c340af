package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader is the client-supplied retry token on mutating calls.
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLen = 255

// RequireIdempotencyKey rejects mutating requests without an Idempotency-Key
// header and exposes the key to handlers through GetIdempotencyKey.
func RequireIdempotencyKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || len(key) > maxIdempotencyKeyLen {
			GetLoggerFromCtx(c.Request.Context()).Warn("Missing or oversized idempotency key")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key header is required (max 255 characters)", "code": "VALIDATION_ERROR"})
			return
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), idempotencyKeyCtxKey, key))
		c.Next()
	}
}
