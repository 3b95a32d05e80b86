package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/storage"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создаёт новый репозиторий пользователей
func NewUserRepository(db *gorm.DB) storage.UserRepository {
	return &userRepository{db: db}
}

// GetByID получает пользователя по ID
func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var dbUser User
	result := r.db.WithContext(ctx).First(&dbUser, "user_id = ?", userID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	return &domain.User{
		UserID:        dbUser.UserID,
		Nickname:      dbUser.Nickname,
		TwitterToken:  dbUser.TwitterToken,
		TwitterSecret: dbUser.TwitterSecret,
	}, nil
}

// Upsert создаёт пользователя, при конфликте по user_id обновляет ник и токены
func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	dbUser := &User{
		UserID:        user.UserID,
		Nickname:      user.Nickname,
		TwitterToken:  user.TwitterToken,
		TwitterSecret: user.TwitterSecret,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"nickname", "twitter_token", "twitter_secret"}),
		}).
		Create(dbUser).Error
}
