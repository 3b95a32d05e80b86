package metrics

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// LanguageCounter возвращает количество сохранённых PR по языку репозитория
type LanguageCounter func() (map[string]int, error)

// StartCollectors на каждом тике переносит в метрики статистику пула соединений
// и распределение PR по языкам. Завершается после закрытия stopCh.
func StartCollectors(sqlDB *sql.DB, countByLanguage LanguageCounter, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			collectPoolStats(sqlDB)
			if countByLanguage != nil {
				collectLanguages(countByLanguage)
			}

		case <-stopCh:
			log.Info().Str("layer", "metrics").Msg("stopping metrics collectors")
			return
		}
	}
}

func collectPoolStats(sqlDB *sql.DB) {
	stats := sqlDB.Stats()

	DBConnectionPoolActive.Set(float64(stats.InUse))
	DBConnectionPoolIdle.Set(float64(stats.Idle))

	log.Debug().
		Str("layer", "metrics").
		Int("in_use", stats.InUse).
		Int("idle", stats.Idle).
		Int("max_open", stats.MaxOpenConnections).
		Msg("updated db connection pool metrics")
}

// collectLanguages пересобирает gauge целиком, чтобы исчезнувшие языки не висели со старым значением
func collectLanguages(countByLanguage LanguageCounter) {
	counts, err := countByLanguage()
	if err != nil {
		log.Error().Err(err).Str("layer", "metrics").Msg("failed to count pull requests by language")
		return
	}

	PRByLanguageCount.Reset()
	for language, count := range counts {
		PRByLanguageCount.WithLabelValues(language).Set(float64(count))
	}

	log.Debug().Str("layer", "metrics").Int("languages", len(counts)).Msg("updated pull request language metrics")
}
