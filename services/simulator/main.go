// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// The simulator service exposes the Meteor Madness impact and
// deflection models over HTTP.
package main

import (
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/meteormadness/meteormadness/pkg/logging"
	"github.com/meteormadness/meteormadness/pkg/neo"
	"github.com/meteormadness/meteormadness/services/simulator/observability"
	"github.com/meteormadness/meteormadness/services/simulator/routes"
)

func main() {
	cfg := LoadConfig()

	logger := logging.New(logging.Config{
		Level:   parseLogLevel(cfg.LogLevel),
		LogDir:  cfg.LogDir,
		Service: "simulator",
		JSON:    true,
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	gin.SetMode(cfg.GinMode)
	observability.InitMetrics()

	neoClient := neo.NewClient(cfg.NASAAPIKey)
	if cfg.NASABaseURL != "" {
		neoClient.BaseURL = cfg.NASABaseURL
	}

	router := gin.Default()
	routes.SetupRoutes(router, neoClient)

	slog.Info("simulator service starting",
		"port", cfg.Port,
		"nasa_api_key", cfg.NASAAPIKey != "")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("simulator service failed: %v", err)
	}
}
