// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"
	"strings"

	"github.com/meteormadness/meteormadness/pkg/logging"
	"github.com/meteormadness/meteormadness/pkg/neo"
)

// Config is the simulator's runtime configuration, read once from the
// environment at startup.
type Config struct {
	Port        string
	NASAAPIKey  string
	NASABaseURL string
	GinMode     string
	LogLevel    string
	LogDir      string
}

// LoadConfig reads the environment with code defaults. A missing NASA
// API key is not an error; asteroid routes fall back to the sample
// catalog.
func LoadConfig() Config {
	return Config{
		Port:        envOr("PORT", "5000"),
		NASAAPIKey:  os.Getenv("NASA_API_KEY"),
		NASABaseURL: envOr("NASA_API_BASE", neo.DefaultBaseURL),
		GinMode:     envOr("GIN_MODE", "release"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		LogDir:      os.Getenv("LOG_DIR"),
	}
}

func parseLogLevel(s string) logging.Level {
	switch strings.ToLower(s) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
