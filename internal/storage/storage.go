package storage

import (
	"context"

	"pullRequests24/internal/domain"
)

// TxManager управляет транзакциями базы данных
//
//go:generate mockery --name=TxManager --output=../mocks --outpkg=mocks --filename=tx_manager_mock.go
type TxManager interface {
	// Do выполняет функцию fn внутри транзакции
	// Если fn возвращает ошибку, транзакция откатывается
	// Иначе транзакция коммитится
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx представляет транзакцию с доступом к репозиториям
//
//go:generate mockery --name=Tx --output=../mocks --outpkg=mocks --filename=tx_mock.go
type Tx interface {
	PullRequestRepo() PullRequestRepository
	UserRepo() UserRepository
	GiftRepo() GiftRepository
}

// PullRequestRepository определяет операции с pull requests
//
//go:generate mockery --name=PullRequestRepository --output=../mocks --outpkg=mocks --filename=pull_request_repository_mock.go
type PullRequestRepository interface {
	// Create создаёт новый pull request, при нарушении уникальности (user_id, issue_url) - ErrAlreadyExists
	Create(ctx context.Context, pr *domain.PullRequest) error

	// Exists проверяет наличие PR пользователя с таким issue_url
	Exists(ctx context.Context, userID, issueURL string) (bool, error)

	// GetByID возвращает pull request по ID вместе с подарками
	GetByID(ctx context.Context, id int64) (*domain.PullRequest, error)

	// UpdateState одним запросом записывает state и comments_count
	UpdateState(ctx context.Context, id int64, state string, commentsCount int) error

	// ListByLanguage возвращает PR с языком language, по возрастанию created_at
	ListByLanguage(ctx context.Context, language string) ([]domain.PullRequest, error)

	// ListLatest возвращает limit последних PR по убыванию created_at
	ListLatest(ctx context.Context, limit int) ([]domain.PullRequest, error)

	// ListByUser возвращает PR пользователя
	ListByUser(ctx context.Context, userID string) ([]domain.PullRequest, error)
}

// UserRepository определяет операции с пользователями
//
//go:generate mockery --name=UserRepository --output=../mocks --outpkg=mocks --filename=user_repository_mock.go
type UserRepository interface {
	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// Upsert создаёт пользователя или обновляет ник и токены
	Upsert(ctx context.Context, user *domain.User) error
}

// GiftRepository определяет операции с подарками
//
//go:generate mockery --name=GiftRepository --output=../mocks --outpkg=mocks --filename=gift_repository_mock.go
type GiftRepository interface {
	// Create выдаёт подарок за pull request
	Create(ctx context.Context, gift *domain.Gift) error
}
