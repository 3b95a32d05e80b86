package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	defaultLatestLimit = 5
	maxLatestLimit     = 100
)

// CreateFromGithub принимает событие GitHub для пользователя user_id
func (h *Handler) CreateFromGithub(c *gin.Context) {
	var req struct {
		UserID string          `json:"user_id" binding:"required"`
		Event  json.RawMessage `json:"event" binding:"required"`
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

	owner, err := h.service.GetUser(c.Request.Context(), req.UserID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	pr, err := h.service.CreateFromGithub(c.Request.Context(), owner, req.Event)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", requestID(c)).
		Str("layer", "handler").
		Int64("pull_request_id", pr.ID).
		Str("user_id", pr.UserID).
		Msg("successfully ingested github event")

	c.JSON(http.StatusCreated, gin.H{
		"pr": mapPullRequestToAPI(pr),
	})
}

// CheckState обновляет состояние PR из GitHub
func (h *Handler) CheckState(c *gin.Context) {
	var req struct {
		PullRequestID int64 `json:"pull_request_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Failed to parse request: "+err.Error())
		return
	}

	pr, err := h.service.CheckState(c.Request.Context(), req.PullRequestID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pr": mapPullRequestToAPI(pr),
	})
}

func (h *Handler) ByLanguage(c *gin.Context) {
	language, ok := c.GetQuery("language")
	if !ok {
		badRequest(c, "language parameter is required")
		return
	}

	prs, err := h.service.ByLanguage(c.Request.Context(), language)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"language":      language,
		"pull_requests": mapPullRequestsToAPI(prs),
	})
}

func (h *Handler) Latest(c *gin.Context) {
	limit := defaultLatestLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxLatestLimit {
			badRequest(c, "limit must be an integer between 1 and 100")
			return
		}
		limit = n
	}

	prs, err := h.service.Latest(c.Request.Context(), limit)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pull_requests": mapPullRequestsToAPI(prs),
	})
}
