package gorm_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlib "gorm.io/gorm"

	"pullRequests24/internal/config"
	"pullRequests24/internal/domain"
	"pullRequests24/internal/service"
	"pullRequests24/internal/storage"
	gormstorage "pullRequests24/internal/storage/gorm"
)

var testDB *gormlib.DB

// TestMain поднимает соединение с тестовой БД; без TEST_DB_HOST тесты пропускаются
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DB_HOST") == "" {
		fmt.Println("TEST_DB_HOST is not set, skipping storage integration tests")
		os.Exit(0)
	}

	cfg := &config.Config{
		ProductionType: "prod",
		MigrationsPath: getEnv("TEST_MIGRATIONS_PATH", "../../../migrations"),
		Database: config.Database{
			Host:     os.Getenv("TEST_DB_HOST"),
			Port:     getEnv("TEST_DB_PORT", "5432"),
			User:     getEnv("TEST_DB_USER", "postgres"),
			Password: getEnv("TEST_DB_PASSWORD", "postgres"),
			Name:     getEnv("TEST_DB_NAME", "pull_requests_test"),
			SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
		},
	}

	db, err := gormstorage.ConnectDB(cfg)
	if err != nil {
		fmt.Printf("failed to connect to test database: %v\n", err)
		os.Exit(1)
	}
	testDB = db

	code := m.Run()

	if sqlDB, err := testDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	os.Exit(code)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTest очищает БД перед каждым тестом
func setupTest(t *testing.T) storage.TxManager {
	t.Helper()

	for _, table := range []string{"gifts", "pull_requests", "users"} {
		err := testDB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error
		require.NoError(t, err, "failed to truncate table %s", table)
	}

	return gormstorage.NewTxManager(testDB)
}

func seedUser(t *testing.T, txmgr storage.TxManager, userID string) {
	t.Helper()

	err := txmgr.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		return tx.UserRepo().Upsert(ctx, &domain.User{UserID: userID, Nickname: userID})
	})
	require.NoError(t, err)
}

func newPR(userID, issueURL, language string, createdAt time.Time) *domain.PullRequest {
	return &domain.PullRequest{
		UserID:    userID,
		Title:     "title for " + issueURL,
		IssueURL:  issueURL,
		CreatedAt: createdAt,
		State:     "open",
		RepoName:  "andrew/24pullrequests",
		Language:  language,
	}
}

func createPR(t *testing.T, txmgr storage.TxManager, pr *domain.PullRequest) {
	t.Helper()

	err := txmgr.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		return tx.PullRequestRepo().Create(ctx, pr)
	})
	require.NoError(t, err)
	require.NotZero(t, pr.ID)
}

func TestPullRequestRepository_UniquePerOwner(t *testing.T) {
	txmgr := setupTest(t)
	seedUser(t, txmgr, "u1")
	seedUser(t, txmgr, "u2")

	base := time.Date(2014, 12, 1, 10, 0, 0, 0, time.UTC)
	createPR(t, txmgr, newPR("u1", "https://github.com/a/b/pull/1", "Go", base))

	err := txmgr.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		return tx.PullRequestRepo().Create(ctx, newPR("u1", "https://github.com/a/b/pull/1", "Go", base))
	})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	// тот же URL у другого владельца допустим
	createPR(t, txmgr, newPR("u2", "https://github.com/a/b/pull/1", "Go", base))

	err = txmgr.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		exists, err := tx.PullRequestRepo().Exists(ctx, "u1", "https://github.com/a/b/pull/1")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = tx.PullRequestRepo().Exists(ctx, "u1", "https://github.com/a/b/pull/2")
		require.NoError(t, err)
		assert.False(t, exists)
		return nil
	})
	require.NoError(t, err)
}

func TestPullRequestRepository_ListByLanguage(t *testing.T) {
	txmgr := setupTest(t)
	seedUser(t, txmgr, "u1")

	base := time.Date(2014, 12, 1, 10, 0, 0, 0, time.UTC)
	var want []string
	for i := 0; i < 4; i++ {
		url := fmt.Sprintf("https://github.com/a/b/pull/%d", i)
		createPR(t, txmgr, newPR("u1", url, "Haskell", base.Add(time.Duration(i)*time.Hour)))
		want = append(want, url)
	}
	createPR(t, txmgr, newPR("u1", "https://github.com/a/b/pull/go", "Go", base))

	var got []domain.PullRequest
	err := txmgr.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		var err error
		got, err = tx.PullRequestRepo().ListByLanguage(ctx, "Haskell")
		return err
	})
	require.NoError(t, err)

	require.Len(t, got, 4)
	for i, pr := range got {
		assert.Equal(t, want[i], pr.IssueURL)
		assert.Equal(t, "Haskell", pr.Language)
	}
}

func TestPullRequestRepository_ListLatest(t *testing.T) {
	txmgr := setupTest(t)
	seedUser(t, txmgr, "u1")

	base := time.Date(2014, 12, 1, 10, 0, 0, 0, time.UTC)
	var urls []string
	for i := 0; i < 4; i++ {
		url := fmt.Sprintf("https://github.com/a/b/pull/%d", i)
		createPR(t, txmgr, newPR("u1", url, "Go", base.Add(time.Duration(i)*time.Hour)))
		urls = append(urls, url)
	}

	var got []domain.PullRequest
	err := txmgr.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		var err error
		got, err = tx.PullRequestRepo().ListLatest(ctx, 3)
		return err
	})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, urls[3], got[0].IssueURL)
	assert.Equal(t, urls[2], got[1].IssueURL)
	assert.Equal(t, urls[1], got[2].IssueURL)
}

func TestPullRequestRepository_UpdateStateAndGifts(t *testing.T) {
	txmgr := setupTest(t)
	seedUser(t, txmgr, "u1")

	pr := newPR("u1", "https://github.com/a/b/pull/7", "Ruby", time.Date(2014, 12, 2, 0, 0, 0, 0, time.UTC))
	createPR(t, txmgr, pr)

	var got *domain.PullRequest
	err := txmgr.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		if err := tx.PullRequestRepo().UpdateState(ctx, pr.ID, "closed", 12); err != nil {
			return err
		}
		if err := tx.GiftRepo().Create(ctx, &domain.Gift{UserID: "u1", PullRequestID: pr.ID}); err != nil {
			return err
		}

		var err error
		got, err = tx.PullRequestRepo().GetByID(ctx, pr.ID)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "closed", got.State)
	require.NotNil(t, got.CommentsCount)
	assert.Equal(t, 12, *got.CommentsCount)
	assert.Equal(t, "Ruby", got.Language)
	require.Len(t, got.Gifts, 1)
	assert.Equal(t, pr.ID, got.Gifts[0].PullRequestID)
	assert.False(t, got.Gifts[0].GiftedAt.IsZero())

	err = txmgr.Do(context.Background(), func(ctx context.Context, tx storage.Tx) error {
		_, err := tx.PullRequestRepo().GetByID(ctx, pr.ID+100)
		return err
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

const rewardEvent = `{
	"payload": {
		"pull_request": {
			"_links": {"html": {"href": "https://github.com/a/b/pull/24"}},
			"title": "Add docs",
			"state": "open",
			"body": "part of 24 pull requests",
			"merged": false,
			"created_at": "2014-12-03T10:00:00Z"
		}
	},
	"repo": {"name": "a/b", "language": "Go"}
}`

// failingGiftRepo подменяет GiftRepository внутри транзакции
type failingGiftRepo struct{}

func (failingGiftRepo) Create(context.Context, *domain.Gift) error {
	return errors.New("gift storage unavailable")
}

type failingGiftTx struct {
	storage.Tx
}

func (failingGiftTx) GiftRepo() storage.GiftRepository { return failingGiftRepo{} }

// failingRewardHook выдаёт подарок через репозиторий, который всегда падает
type failingRewardHook struct {
	*service.RewardHook
}

func (h failingRewardHook) InCreateTx(ctx context.Context, tx storage.Tx, owner *domain.User, pr *domain.PullRequest) error {
	return h.RewardHook.InCreateTx(ctx, failingGiftTx{Tx: tx}, owner, pr)
}

func TestService_CreateFromGithub_GiftFailureRollsBack(t *testing.T) {
	txmgr := setupTest(t)
	seedUser(t, txmgr, "u1")
	owner := &domain.User{UserID: "u1", Nickname: "u1"}

	broken := service.New(txmgr, nil, service.Hooks{
		InTx: []service.TxHook{failingRewardHook{RewardHook: service.NewRewardHook()}},
	})
	_, err := broken.CreateFromGithub(context.Background(), owner, []byte(rewardEvent))
	assert.ErrorIs(t, err, domain.ErrInternal)

	var count int64
	require.NoError(t, testDB.Table("pull_requests").Count(&count).Error)
	assert.Zero(t, count)

	// повтор того же события после восстановления создаёт запись с подарком
	svc := service.New(txmgr, nil, service.DefaultHooks(nil, nil))
	pr, err := svc.CreateFromGithub(context.Background(), owner, []byte(rewardEvent))
	require.NoError(t, err)
	require.Len(t, pr.Gifts, 1)
}

func TestService_CreateFromGithub_Postgres(t *testing.T) {
	txmgr := setupTest(t)
	seedUser(t, txmgr, "u1")

	svc := service.New(txmgr, nil, service.Hooks{InTx: []service.TxHook{service.NewRewardHook()}})
	owner := &domain.User{UserID: "u1", Nickname: "u1"}
	payload := []byte(rewardEvent)

	pr, err := svc.CreateFromGithub(context.Background(), owner, payload)
	require.NoError(t, err)
	require.Len(t, pr.Gifts, 1)

	_, err = svc.CreateFromGithub(context.Background(), owner, payload)
	assert.ErrorIs(t, err, domain.ErrPRExists)

	list, err := svc.ListUserPullRequests(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Gifts, 1)
}
