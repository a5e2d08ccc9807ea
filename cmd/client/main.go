// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/VacTuzX-dot/xfrontend/internal/adapter"
	"github.com/VacTuzX-dot/xfrontend/internal/client"
	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/service"
	"github.com/VacTuzX-dot/xfrontend/internal/store"
	"github.com/VacTuzX-dot/xfrontend/internal/tui"
	"github.com/VacTuzX-dot/xfrontend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("xfrontend-client").Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the TUI, so the client logs to a file
	log := logger.NewClientLogger("xfrontend-client", cfg.App.LogFile)
	if !logger.SetLevel(cfg.App.LogLevel) && cfg.App.LogLevel != "" {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	registryAdapter, err := adapter.NewHTTPRegistryAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create registry adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services, err := service.NewClientServices(registryAdapter, storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, buildInfo, cfg.Workers.HighlightDuration, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
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
