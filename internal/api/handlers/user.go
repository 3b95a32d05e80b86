package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pullRequests24/internal/domain"
)

// AddUser создаёт или обновляет пользователя вместе с токенами Twitter
func (h *Handler) AddUser(c *gin.Context) {
	var req struct {
		UserID        string `json:"user_id" binding:"required"`
		Nickname      string `json:"nickname" binding:"required"`
		TwitterToken  string `json:"twitter_token"`
		TwitterSecret string `json:"twitter_secret"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Str("layer", "handler").
			Msg("failed to parse request")

		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	user, err := h.service.UpsertUser(c.Request.Context(), &domain.User{
		UserID:        req.UserID,
		Nickname:      req.Nickname,
		TwitterToken:  req.TwitterToken,
		TwitterSecret: req.TwitterSecret,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": mapUserToAPI(user),
	})
}

// GetUserPullRequests возвращает PR пользователя
func (h *Handler) GetUserPullRequests(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		log.Warn().
			Str("request_id", requestID(c)).
			Str("layer", "handler").
			Msg("missing user_id parameter")

		badRequest(c, "user_id parameter is required")
		return
	}

	prs, err := h.service.ListUserPullRequests(c.Request.Context(), userID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":       userID,
		"pull_requests": mapPullRequestsToAPI(prs),
	})
}
