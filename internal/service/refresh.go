package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/logger"
	"pullRequests24/internal/metrics"
	"pullRequests24/internal/storage"
)

// CheckState перечитывает у провайдера state и comments_count PR и сохраняет их.
// Остальные поля не трогаются; при неизменных данных запись в БД не выполняется.
func (s *Service) CheckState(outerCtx context.Context, pullRequestID int64) (*domain.PullRequest, error) {
	const op = "service.CheckState"
	requestID := logger.GetRequestID(outerCtx)

	start := time.Now()
	defer func() {
		metrics.ServiceOperationDuration.WithLabelValues("check_state").Observe(time.Since(start).Seconds())
	}()

	var pr *domain.PullRequest
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		pr, err = tx.PullRequestRepo().GetByID(ctx, pullRequestID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	// Запрос к провайдеру делаем вне транзакции
	data, err := s.fetcher.FetchIssueData(outerCtx, pr.IssueURL)
	if err != nil {
		metrics.PRStateRefreshTotal.WithLabelValues("fetch_failed").Inc()
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "service").
			Int64("pull_request_id", pr.ID).
			Msg("failed to fetch pull request state")
		return nil, s.formatError(outerCtx, op,
			domain.WrapError(err, http.StatusBadGateway, domain.ErrorCodeUpstreamError, domain.ErrUpstream.Message))
	}

	if !pr.Reconcile(*data) {
		metrics.PRStateRefreshTotal.WithLabelValues("unchanged").Inc()
		log.Debug().
			Str("request_id", requestID).
			Str("layer", "service").
			Int64("pull_request_id", pr.ID).
			Msg("pull request state unchanged")
		return pr, nil
	}

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.PullRequestRepo().UpdateState(ctx, pr.ID, pr.State, *pr.CommentsCount)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.PRStateRefreshTotal.WithLabelValues("updated").Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("pull_request_id", pr.ID).
		Str("state", pr.State).
		Int("comments_count", *pr.CommentsCount).
		Msg("successfully refreshed pull request state")

	return pr, nil
}
