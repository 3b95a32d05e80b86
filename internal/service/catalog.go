package service

import (
	"context"
	"time"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/metrics"
	"pullRequests24/internal/storage"
)

// ByLanguage возвращает PR с точно совпадающим языком (без приведения регистра)
func (s *Service) ByLanguage(outerCtx context.Context, language string) ([]domain.PullRequest, error) {
	const op = "service.ByLanguage"
	defer observe("by_language", time.Now())

	var prs []domain.PullRequest
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		prs, err = tx.PullRequestRepo().ListByLanguage(ctx, language)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return prs, nil
}

// Latest возвращает limit самых свежих PR по created_at
func (s *Service) Latest(outerCtx context.Context, limit int) ([]domain.PullRequest, error) {
	const op = "service.Latest"
	defer observe("latest", time.Now())

	if limit <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var prs []domain.PullRequest
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		prs, err = tx.PullRequestRepo().ListLatest(ctx, limit)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return prs, nil
}

// ListUserPullRequests возвращает PR пользователя
func (s *Service) ListUserPullRequests(outerCtx context.Context, userID string) ([]domain.PullRequest, error) {
	const op = "service.ListUserPullRequests"
	defer observe("list_user_pull_requests", time.Now())

	var prs []domain.PullRequest
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := tx.UserRepo().GetByID(ctx, userID); err != nil {
			return err
		}

		var err error
		prs, err = tx.PullRequestRepo().ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return prs, nil
}

func observe(operation string, start time.Time) {
	metrics.ServiceOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
