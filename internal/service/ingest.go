package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/github"
	"pullRequests24/internal/logger"
	"pullRequests24/internal/metrics"
	"pullRequests24/internal/storage"
)

// CreateFromGithub создаёт PR пользователя из события GitHub.
// В одной транзакции создаются запись и подарок, уведомление уходит после фиксации.
// Если запись не создана, побочных действий нет.
func (s *Service) CreateFromGithub(outerCtx context.Context, owner *domain.User, payload []byte) (*domain.PullRequest, error) {
	const op = "service.CreateFromGithub"
	requestID := logger.GetRequestID(outerCtx)

	start := time.Now()
	defer func() {
		metrics.PRIngestDuration.Observe(time.Since(start).Seconds())
	}()

	if owner == nil || owner.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	pr, err := github.ParsePullRequestEvent(payload)
	if err != nil {
		metrics.PRRejectedTotal.WithLabelValues("invalid_payload").Inc()
		log.Warn().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "service").
			Str("user_id", owner.UserID).
			Msg("rejected malformed github event")
		return nil, s.formatError(outerCtx, op, err)
	}
	pr.UserID = owner.UserID

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("user_id", pr.UserID).
		Str("issue_url", pr.IssueURL).
		Msg("creating pull request from github event")

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		exists, err := tx.PullRequestRepo().Exists(ctx, pr.UserID, pr.IssueURL)
		if err != nil {
			return err
		}
		if exists {
			return storage.ErrAlreadyExists
		}

		// Уникальный индекс (user_id, issue_url) закрывает гонку между Exists и Create
		if err := tx.PullRequestRepo().Create(ctx, pr); err != nil {
			return err
		}

		return s.runTxHooks(ctx, tx, owner, pr)
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			metrics.PRRejectedTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.PRIngestedTotal.Inc()
	metrics.GiftsIssuedTotal.Add(float64(len(pr.Gifts)))

	s.runAfterCommitHooks(outerCtx, owner, pr)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("pull_request_id", pr.ID).
		Int("gifts", len(pr.Gifts)).
		Msg("successfully created pull request")

	return pr, nil
}
