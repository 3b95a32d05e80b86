package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pullRequests24/internal/metrics"
)

// RecoveryMiddleware превращает панику обработчика в 500 с request_id запроса.
// Должен стоять после LoggerMiddleware, иначе request_id пуст.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		requestID := c.GetString(RequestIDKey)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPPanicsTotal.WithLabelValues(path).Inc()

		log.Error().
			Interface("panic", recovered).
			Str("request_id", requestID).
			Str("layer", "middleware").
			Str("method", c.Request.Method).
			Str("path", path).
			Msg("panic recovered in HTTP request")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":      "internal server error",
			"request_id": requestID,
		})
	})
}
