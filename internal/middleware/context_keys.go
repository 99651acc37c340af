package middleware

import (
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey         = contextKey("logger")
	userIDKey            = contextKey("userID")
	roleKey              = contextKey("role")
	idempotencyKeyCtxKey = contextKey("idempotencyKey")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetActorFromContext returns the authenticated actor (ID and role).
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := c.Request.Context().Value(roleKey).(domain.Role)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: userID, Role: role}, true
}

// GetIdempotencyKey returns the Idempotency-Key header captured by RequireIdempotencyKey.
func GetIdempotencyKey(c *gin.Context) string {
	key, _ := c.Request.Context().Value(idempotencyKeyCtxKey).(string)
	return key
}
