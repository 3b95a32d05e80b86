package domain

import "context"

// PullRequestService - бизнес-логика приёма pull request-ов от GitHub
//
//go:generate mockery --name=PullRequestService --output=../mocks --outpkg=mocks --filename=pull_request_service_mock.go
type PullRequestService interface {
	// CreateFromGithub создаёт PR пользователя из сырого события GitHub и запускает post-create хуки
	CreateFromGithub(ctx context.Context, owner *User, payload []byte) (*PullRequest, error)

	// CheckState обновляет state и comments_count PR из данных провайдера
	CheckState(ctx context.Context, pullRequestID int64) (*PullRequest, error)

	// ByLanguage возвращает PR с указанным языком репозитория
	ByLanguage(ctx context.Context, language string) ([]PullRequest, error)

	// Latest возвращает limit последних PR, начиная с самого свежего
	Latest(ctx context.Context, limit int) ([]PullRequest, error)

	// ListUserPullRequests возвращает PR пользователя
	ListUserPullRequests(ctx context.Context, userID string) ([]PullRequest, error)

	// GetUser возвращает пользователя по ID
	GetUser(ctx context.Context, userID string) (*User, error)

	// UpsertUser создаёт или обновляет пользователя вместе с токенами соцсети
	UpsertUser(ctx context.Context, user *User) (*User, error)
}

// IssueFetcher получает актуальные данные PR у провайдера
//
//go:generate mockery --name=IssueFetcher --output=../mocks --outpkg=mocks --filename=issue_fetcher_mock.go
type IssueFetcher interface {
	FetchIssueData(ctx context.Context, issueURL string) (*IssueData, error)
}

// SocialPublisher публикует сообщение от имени пользователя
//
//go:generate mockery --name=SocialPublisher --output=../mocks --outpkg=mocks --filename=social_publisher_mock.go
type SocialPublisher interface {
	Publish(ctx context.Context, message string) error
}

// SocialClientFactory создаёт клиента соцсети по токенам пользователя
//
//go:generate mockery --name=SocialClientFactory --output=../mocks --outpkg=mocks --filename=social_client_factory_mock.go
type SocialClientFactory interface {
	ForUser(creds SocialCredentials) SocialPublisher
}

// MessageFormatter собирает сообщение по ключу шаблона
//
//go:generate mockery --name=MessageFormatter --output=../mocks --outpkg=mocks --filename=message_formatter_mock.go
type MessageFormatter interface {
	Format(key string, values map[string]any) (string, error)
}

// PostCreateHook - побочное действие после фиксации созданного PR.
// Запись к этому моменту сохранена, ошибка хука на результат создания не влияет.
type PostCreateHook interface {
	Name() string
	AfterCreate(ctx context.Context, owner *User, pr *PullRequest) error
}
