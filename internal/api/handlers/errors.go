package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pullRequests24/internal/api"
	"pullRequests24/internal/api/middleware"
	"pullRequests24/internal/domain"
)

// handleDomainError обрабатывает domain ошибки и возвращает правильный HTTP response
func handleDomainError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.Status, api.ErrorResponse{
			Error: api.Error{
				Code:    string(domainErr.Code),
				Message: domainErr.Error(),
			},
		})
		return
	}

	log.Error().
		Err(err).
		Str("request_id", requestID(c)).
		Str("layer", "handler").
		Msg("unexpected error")

	// Fallback на internal error
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{
		Error: api.Error{
			Code:    api.ErrCodeInternalError,
			Message: "internal server error",
		},
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, api.ErrorResponse{
		Error: api.Error{
			Code:    api.ErrCodeInvalidRequest,
			Message: message,
		},
	})
}

func requestID(c *gin.Context) string {
	return c.GetString(middleware.RequestIDKey)
}
