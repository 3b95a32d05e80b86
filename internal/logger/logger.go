package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pullRequests24/internal/api/middleware"
	"pullRequests24/internal/config"
)

// Setup настраивает глобальный zerolog логгер.
// debug - уровень debug и вывод в stdout, prod - уровень info и вывод в файл APP_LOG_PATH.
func Setup(envConf *config.Config) *zerolog.Logger {
	if envConf.ProductionType == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	zerolog.TimeFieldFormat = "15:04:05 02.01.2006"

	// Оставляем только последние 2 части пути к файлу
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		if len(parts) > 2 {
			file = strings.Join(parts[len(parts)-2:], "/")
		}
		return fmt.Sprintf("%s:%d", file, line)
	}

	var writer io.Writer = os.Stdout

	if envConf.ProductionType == "prod" && envConf.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(envConf.LogPath), 0755); err != nil {
			log.Fatal().Err(err).Msg("failed to create logger directory")
		}

		logFile, err := os.OpenFile(envConf.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open logger file")
		}
		writer = logFile
	}

	loggerContext := zerolog.New(writer).
		With().
		Caller().
		Timestamp().
		Logger()

	log.Logger = loggerContext

	log.Info().Str("production_type", envConf.ProductionType).Msg("logger setup complete")
	return &loggerContext
}

// GetRequestID достаёт request_id, положенный в контекст middleware.LoggerMiddleware
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(middleware.RequestIDKey).(string); ok {
		return requestID
	}
	return "unknown"
}
