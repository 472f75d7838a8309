package main

import (
	"context"
	"fmt"

	"github.com/vmelnikv/noteshare/internal/config"
	"github.com/vmelnikv/noteshare/internal/handler"
	"github.com/vmelnikv/noteshare/internal/logger"
	"github.com/vmelnikv/noteshare/internal/metrics"
	"github.com/vmelnikv/noteshare/internal/server"
	"github.com/vmelnikv/noteshare/internal/service"
	"github.com/vmelnikv/noteshare/internal/store"
	"github.com/vmelnikv/noteshare/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("noteshare-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	m := metrics.New()

	notifier := service.NewEventNotifier(cfg.Notifier, m, log)

	background := workers.New(notifier)
	backgroundCtx, stopBackground := context.WithCancel(ctx)
	background.Run(backgroundCtx)

	services := service.NewServices(storages, cfg, m, notifier, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, func() {
		stopBackground()
		background.Wait()
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
