package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/logger"
	"pullRequests24/internal/metrics"
	"pullRequests24/internal/storage"
)

// Service реализует domain.PullRequestService используя storage.TxManager
type Service struct {
	txmgr   storage.TxManager
	fetcher domain.IssueFetcher
	hooks   Hooks
}

// TxHook выполняется в транзакции создания PR сразу после вставки записи.
// Ошибка откатывает создание целиком.
type TxHook interface {
	Name() string
	InCreateTx(ctx context.Context, tx storage.Tx, owner *domain.User, pr *domain.PullRequest) error
}

// Hooks - побочные действия создания PR
type Hooks struct {
	InTx        []TxHook                // в транзакции создания, по порядку
	AfterCommit []domain.PostCreateHook // после фиксации, ошибки только логируются
}

// Проверка что Service реализует интерфейс domain.PullRequestService
var _ domain.PullRequestService = (*Service)(nil)

func New(txmgr storage.TxManager, fetcher domain.IssueFetcher, hooks Hooks) *Service {
	return &Service{
		txmgr:   txmgr,
		fetcher: fetcher,
		hooks:   hooks,
	}
}

// runTxHooks выполняет хуки внутри транзакции создания; первая ошибка прерывает цепочку
func (s *Service) runTxHooks(ctx context.Context, tx storage.Tx, owner *domain.User, pr *domain.PullRequest) error {
	for _, hook := range s.hooks.InTx {
		if err := hook.InCreateTx(ctx, tx, owner, pr); err != nil {
			log.Error().
				Err(err).
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "service").
				Str("hook", hook.Name()).
				Str("issue_url", pr.IssueURL).
				Msg("create transaction hook failed, rolling back")
			return fmt.Errorf("%s hook: %w", hook.Name(), err)
		}
	}
	return nil
}

// runAfterCommitHooks выполняет хуки после фиксации записи. Запись уже сохранена,
// поэтому ошибки не возвращаются вызывающему.
func (s *Service) runAfterCommitHooks(ctx context.Context, owner *domain.User, pr *domain.PullRequest) {
	for _, hook := range s.hooks.AfterCommit {
		if err := hook.AfterCreate(ctx, owner, pr); err != nil {
			log.Error().
				Err(err).
				Str("request_id", logger.GetRequestID(ctx)).
				Str("layer", "service").
				Str("hook", hook.Name()).
				Int64("pull_request_id", pr.ID).
				Msg("post-create hook failed")
		}
	}
}

// formatError преобразует ошибки storage слоя в доменные ошибки с правильными HTTP кодами
func (s *Service) formatError(ctx context.Context, op string, err error) error {
	var result error

	switch {
	case errors.Is(err, storage.ErrNotFound):
		result = domain.ErrResourceNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		result = domain.ErrPRExists
	case domain.IsDomainError(err):
		result = err
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return ctx.Err()
	default:
		log.Error().Err(err).Str("operation", op).Msg("operation failed")
		result = domain.ErrInternal
	}

	var domainErr *domain.Error
	if errors.As(result, &domainErr) {
		metrics.DomainErrorsTotal.WithLabelValues(string(domainErr.Code)).Inc()
	}
	return result
}
