// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/VacTuzX-dot/xfrontend/internal/config"
	"github.com/VacTuzX-dot/xfrontend/internal/handler"
	"github.com/VacTuzX-dot/xfrontend/internal/logger"
	"github.com/VacTuzX-dot/xfrontend/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("xfrontend-proxy")
	cfg, err := config.GetProxyConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetLevel(cfg.LogLevel) && cfg.LogLevel != "" {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers, err := handler.NewHandlers(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
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
