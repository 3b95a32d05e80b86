package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/logger"
	"pullRequests24/internal/storage"
)

// GetUser возвращает пользователя по ID
func (s *Service) GetUser(outerCtx context.Context, userID string) (*domain.User, error) {
	const op = "service.GetUser"
	defer observe("get_user", time.Now())

	var user *domain.User
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		user, err = tx.UserRepo().GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return user, nil
}

// UpsertUser сохраняет пользователя и его токены соцсети
func (s *Service) UpsertUser(outerCtx context.Context, user *domain.User) (*domain.User, error) {
	const op = "service.UpsertUser"
	defer observe("upsert_user", time.Now())

	if user == nil || user.UserID == "" || user.Nickname == "" {
		return nil, domain.ErrInvalidInput
	}

	log.Info().
		Str("request_id", logger.GetRequestID(outerCtx)).
		Str("layer", "service").
		Str("user_id", user.UserID).
		Bool("social_account", user.HasSocialAccount()).
		Msg("upserting user")

	var saved *domain.User
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.UserRepo().Upsert(ctx, user); err != nil {
			return err
		}

		var err error
		saved, err = tx.UserRepo().GetByID(ctx, user.UserID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return saved, nil
}
