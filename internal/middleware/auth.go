package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jstamb/california-breaking-news/internal/logger"
	"github.com/jstamb/california-breaking-news/internal/repository"
)

const (
	// APIKeyHeader is the header carrying the shared ingestion secret.
	APIKeyHeader = "X-API-Key"
	// APIKeyNameKey is the context key holding the authorized key's name.
	APIKeyNameKey = "api_key_name"
)

// APIKeyAuth returns a middleware that authorizes requests against the
// api_keys table. The response is a uniform 401 whether the key is missing,
// unknown, or inactive. On success the key's last-used timestamp is stamped
// in a detached goroutine; a failure there never fails the request.
func APIKeyAuth(keys repository.APIKeyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.GetHeader(APIKeyHeader), "Bearer ")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		record, err := keys.FindActive(c.Request.Context(), key)
		if err != nil {
			logger.Error("API key lookup failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if record == nil {
			logger.Warn("Rejected request with invalid API key",
				slog.String("request_id", GetRequestID(c)),
				slog.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// Best-effort last-used stamp; the request does not wait on it.
		go func(id string) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := keys.TouchLastUsed(ctx, id); err != nil {
				logger.Warn("Failed to stamp API key last-used time",
					slog.String("error", err.Error()))
			}
		}(record.ID)

		c.Set(APIKeyNameKey, record.Name)
		c.Next()
	}
}
