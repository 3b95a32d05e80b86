package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/logger"
	"pullRequests24/internal/metrics"
	"pullRequests24/internal/storage"
)

type pullRequestRepository struct {
	db *gorm.DB
}

// NewPullRequestRepository создаёт новый репозиторий PR
func NewPullRequestRepository(db *gorm.DB) storage.PullRequestRepository {
	return &pullRequestRepository{db: db}
}

func observeQuery(operation string, start time.Time) {
	metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == storage.UniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create создаёт новый pull request
func (r *pullRequestRepository) Create(ctx context.Context, pr *domain.PullRequest) error {
	defer observeQuery("pull_request_create", time.Now())
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("user_id", pr.UserID).
		Str("issue_url", pr.IssueURL).
		Msg("creating pull request in database")

	dbPR := &PullRequest{
		UserID:        pr.UserID,
		Title:         pr.Title,
		IssueURL:      pr.IssueURL,
		CreatedAt:     pr.CreatedAt,
		State:         pr.State,
		Body:          pr.Body,
		Merged:        pr.Merged,
		RepoName:      pr.RepoName,
		Language:      pr.Language,
		CommentsCount: pr.CommentsCount,
	}

	result := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(dbPR)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Str("user_id", pr.UserID).
				Str("issue_url", pr.IssueURL).
				Msg("pull request already exists")
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("issue_url", pr.IssueURL).
			Msg("error creating pull request")
		return result.Error
	}

	pr.ID = dbPR.ID
	if pr.Gifts == nil {
		pr.Gifts = []domain.Gift{}
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int64("pull_request_id", pr.ID).
		Msg("successfully created pull request")

	return nil
}

// Exists проверяет наличие PR пользователя с таким issue_url
func (r *pullRequestRepository) Exists(ctx context.Context, userID, issueURL string) (bool, error) {
	defer observeQuery("pull_request_exists", time.Now())

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PullRequest{}).
		Where("user_id = ? AND issue_url = ?", userID, issueURL).
		Count(&count).Error
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("issue_url", issueURL).
			Msg("error checking pull request existence")
		return false, err
	}

	return count > 0, nil
}

// GetByID получает pull request по ID вместе с подарками
func (r *pullRequestRepository) GetByID(ctx context.Context, id int64) (*domain.PullRequest, error) {
	defer observeQuery("pull_request_get", time.Now())
	requestID := logger.GetRequestID(ctx)

	var dbPR PullRequest
	result := r.db.WithContext(ctx).
		Preload("Gifts", func(db *gorm.DB) *gorm.DB { return db.Order("gifts.id ASC") }).
		First(&dbPR, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Int64("pull_request_id", id).
				Msg("pull request not found")
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int64("pull_request_id", id).
			Msg("error fetching pull request")
		return nil, result.Error
	}

	pr := toDomainPullRequest(&dbPR)
	return &pr, nil
}

// UpdateState записывает state и comments_count одним UPDATE
func (r *pullRequestRepository) UpdateState(ctx context.Context, id int64, state string, commentsCount int) error {
	defer observeQuery("pull_request_update_state", time.Now())
	requestID := logger.GetRequestID(ctx)

	result := r.db.WithContext(ctx).
		Model(&PullRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":          state,
			"comments_count": commentsCount,
		})
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int64("pull_request_id", id).
			Msg("error updating pull request state")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int64("pull_request_id", id).
		Str("state", state).
		Int("comments_count", commentsCount).
		Msg("successfully updated pull request state")

	return nil
}

// ListByLanguage возвращает PR с точным совпадением языка
func (r *pullRequestRepository) ListByLanguage(ctx context.Context, language string) ([]domain.PullRequest, error) {
	defer observeQuery("pull_request_by_language", time.Now())

	var models []PullRequest
	err := r.withGifts(ctx).
		Where("language = ?", language).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("language", language).
			Msg("error listing pull requests by language")
		return nil, err
	}

	return toDomainPullRequests(models), nil
}

// ListLatest возвращает последние PR; при равном created_at порядок вставки сохраняется
func (r *pullRequestRepository) ListLatest(ctx context.Context, limit int) ([]domain.PullRequest, error) {
	defer observeQuery("pull_request_latest", time.Now())

	var models []PullRequest
	err := r.withGifts(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Int("limit", limit).
			Msg("error listing latest pull requests")
		return nil, err
	}

	return toDomainPullRequests(models), nil
}

// ListByUser возвращает PR пользователя по возрастанию created_at
func (r *pullRequestRepository) ListByUser(ctx context.Context, userID string) ([]domain.PullRequest, error) {
	defer observeQuery("pull_request_by_user", time.Now())

	var models []PullRequest
	err := r.withGifts(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("user_id", userID).
			Msg("error listing user pull requests")
		return nil, err
	}

	return toDomainPullRequests(models), nil
}

func (r *pullRequestRepository) withGifts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Gifts", func(db *gorm.DB) *gorm.DB { return db.Order("gifts.id ASC") })
}
