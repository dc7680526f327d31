// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// meteorctl runs the Meteor Madness impact and deflection models from
// the command line, sharing the physics core with the simulator service
// instead of going through HTTP.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the optional CLI configuration, read from --config when the
// file exists. Environment variables win over the file.
type Config struct {
	NASAAPIKey  string `yaml:"nasa_api_key"`
	NASABaseURL string `yaml:"nasa_api_base"`
}

var (
	configPath string
	config     Config

	rootCmd = &cobra.Command{
		Use:   "meteorctl",
		Short: "A cli for asteroid impact simulation and deflection planning",
		Long: `meteorctl estimates the consequences of an asteroid impact and
evaluates deflection strategies against it, using the same models the
Meteor Madness backend serves over HTTP.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadConfig()
		},
	}
)

func loadConfig() {
	raw, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(raw, &config); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
	}
	if key := os.Getenv("NASA_API_KEY"); key != "" {
		config.NASAAPIKey = key
	}
	if base := os.Getenv("NASA_API_BASE"); base != "" {
		config.NASABaseURL = base
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "meteorctl.yaml",
		"Path to an optional yaml config file")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(deflectCmd)
	rootCmd.AddCommand(compareMethodsCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(asteroidsCmd)
	asteroidsCmd.AddCommand(asteroidsListCmd)
	asteroidsCmd.AddCommand(asteroidsSearchCmd)
	asteroidsCmd.AddCommand(asteroidsShowCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
