package gorm

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pullRequests24/internal/metrics"
	"pullRequests24/internal/storage"
)

// txManager реализует storage.TxManager для GORM
type txManager struct {
	db *gorm.DB
}

// NewTxManager создаёт новый менеджер транзакций для GORM
func NewTxManager(db *gorm.DB) storage.TxManager {
	return &txManager{db: db}
}

// StartMetricsCollectors запускает сбор метрик пула соединений и количества PR по языкам.
// Горутина завершается после закрытия stopCh.
func StartMetricsCollectors(db *gorm.DB, interval time.Duration, stopCh <-chan struct{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	go metrics.StartCollectors(sqlDB, CountByLanguage(db), interval, stopCh)

	return nil
}

// CountByLanguage возвращает metrics.LanguageCounter поверх таблицы pull_requests
func CountByLanguage(db *gorm.DB) metrics.LanguageCounter {
	return func() (map[string]int, error) {
		var rows []struct {
			Language string
			Count    int
		}

		err := db.Model(&PullRequest{}).
			Select("language, COUNT(*) AS count").
			Group("language").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}

		counts := make(map[string]int, len(rows))
		for _, r := range rows {
			counts[r.Language] = r.Count
		}
		return counts, nil
	}
}

// Do выполняет функцию внутри транзации с автоматическим commit/rollback
func (tm *txManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	start := time.Now()

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(ctx, &transaction{db: tx}); err != nil {
			metrics.DBTransactionTotal.WithLabelValues("error").Inc()
			return err
		}

		metrics.DBTransactionTotal.WithLabelValues("success").Inc()
		return nil
	})

	metrics.DBTransactionDuration.Observe(time.Since(start).Seconds())

	return err
}

// transaction - обёртка над gorm.DB, реализует storage.Tx
type transaction struct {
	db *gorm.DB
}

// PullRequestRepo возвращает репозиторий PR в рамках транзакции
func (t *transaction) PullRequestRepo() storage.PullRequestRepository {
	return NewPullRequestRepository(t.db)
}

// UserRepo возвращает репозиторий пользователей в рамках транзакции
func (t *transaction) UserRepo() storage.UserRepository {
	return NewUserRepository(t.db)
}

// GiftRepo возвращает репозиторий подарков в рамках транзакции
func (t *transaction) GiftRepo() storage.GiftRepository {
	return NewGiftRepository(t.db)
}
