package gorm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/logger"
	"pullRequests24/internal/storage"
)

type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository создаёт новый репозиторий подарков
func NewGiftRepository(db *gorm.DB) storage.GiftRepository {
	return &giftRepository{db: db}
}

// Create сохраняет подарок и заполняет его ID
func (r *giftRepository) Create(ctx context.Context, gift *domain.Gift) error {
	defer observeQuery("gift_create", time.Now())

	if gift.GiftedAt.IsZero() {
		gift.GiftedAt = time.Now().UTC()
	}

	dbGift := &Gift{
		UserID:        gift.UserID,
		PullRequestID: gift.PullRequestID,
		GiftedAt:      gift.GiftedAt,
	}

	if err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(dbGift).Error; err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Int64("pull_request_id", gift.PullRequestID).
			Msg("error creating gift")
		return err
	}

	gift.ID = dbGift.ID
	return nil
}
