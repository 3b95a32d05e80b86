package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"pullRequests24/internal/api/handlers"
	"pullRequests24/internal/api/server"
	"pullRequests24/internal/config"
	"pullRequests24/internal/github"
	"pullRequests24/internal/logger"
	"pullRequests24/internal/message"
	"pullRequests24/internal/service"
	storageGorm "pullRequests24/internal/storage/gorm"
	"pullRequests24/internal/twitter"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found")
	}
	envConfig := config.NewEnvConfig()
	envConfig.PrintConfigWithHiddenSecrets()

	logger.Setup(envConfig)

	db, err := storageGorm.ConnectDB(envConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	stopCh := make(chan struct{})
	if err := storageGorm.StartMetricsCollectors(db, 5*time.Second, stopCh); err != nil {
		log.Fatal().Err(err).Msg("failed to start metrics collectors")
	}

	txManager := storageGorm.NewTxManager(db)

	fetcher, err := github.NewIssueFetcher(context.Background(), envConfig.GitHub)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize github client")
	}

	formatter, err := message.NewFormatter(message.DefaultTemplates)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compile message templates")
	}

	hooks := service.DefaultHooks(twitter.NewClientFactory(envConfig.Twitter), formatter)
	appService := service.New(txManager, fetcher, hooks)
	appHandler := handlers.NewHandler(appService, envConfig.AdminToken, envConfig.UserToken)
	apiServer := server.NewServer(envConfig, appHandler)

	go apiServer.Run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info().Msg(fmt.Sprintf("signal received: %s, starting graceful shutdown", s))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	apiServer.Shutdown(ctx)
	close(stopCh)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("service shutdown gracefully")
}
