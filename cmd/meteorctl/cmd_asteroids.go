// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/meteormadness/meteormadness/pkg/neo"
)

var (
	astSource      string
	astStartDate   string
	astEndDate     string
	astName        string
	astMinDiameter float64
	astMaxDiameter float64
	astMinVelocity float64
	astMaxVelocity float64
	astHazardous   bool

	asteroidsCmd = &cobra.Command{
		Use:   "asteroids",
		Short: "Browse the asteroid catalog",
	}

	asteroidsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List asteroids from the sample catalog or the NASA NEO feed",
		Run:   runAsteroidsList,
	}

	asteroidsSearchCmd = &cobra.Command{
		Use:   "search",
		Short: "Search the sample catalog by name, size, speed or hazard flag",
		Run:   runAsteroidsSearch,
	}

	asteroidsShowCmd = &cobra.Command{
		Use:   "show [asteroid_id]",
		Short: "Show one asteroid, from NASA when a key is configured",
		Args:  cobra.ExactArgs(1),
		Run:   runAsteroidsShow,
	}
)

func init() {
	asteroidsListCmd.Flags().StringVar(&astSource, "source", "sample", "Catalog source: sample or nasa")
	asteroidsListCmd.Flags().StringVar(&astStartDate, "start-date", "", "NASA feed start date (YYYY-MM-DD)")
	asteroidsListCmd.Flags().StringVar(&astEndDate, "end-date", "", "NASA feed end date (YYYY-MM-DD)")

	asteroidsSearchCmd.Flags().StringVar(&astName, "name", "", "Substring match on name or designation")
	asteroidsSearchCmd.Flags().Float64Var(&astMinDiameter, "min-diameter", 0, "Minimum diameter in meters")
	asteroidsSearchCmd.Flags().Float64Var(&astMaxDiameter, "max-diameter", 0, "Maximum diameter in meters")
	asteroidsSearchCmd.Flags().Float64Var(&astMinVelocity, "min-velocity", 0, "Minimum velocity in km/s")
	asteroidsSearchCmd.Flags().Float64Var(&astMaxVelocity, "max-velocity", 0, "Maximum velocity in km/s")
	asteroidsSearchCmd.Flags().BoolVar(&astHazardous, "hazardous", false, "Only potentially hazardous asteroids")
}

func neoClient() *neo.Client {
	client := neo.NewClient(config.NASAAPIKey)
	if config.NASABaseURL != "" {
		client.BaseURL = config.NASABaseURL
	}
	return client
}

func runAsteroidsList(cmd *cobra.Command, args []string) {
	if astSource != "nasa" {
		printJSON(neo.Samples())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	asteroids, err := neoClient().FetchFeed(ctx, astStartDate, astEndDate)
	if err != nil {
		log.Fatalf("NASA feed fetch failed: %v", err)
	}
	printJSON(asteroids)
}

func runAsteroidsSearch(cmd *cobra.Command, args []string) {
	filter := neo.SearchFilter{
		Name:           astName,
		MinDiameterM:   astMinDiameter,
		MaxDiameterM:   astMaxDiameter,
		MinVelocityKmS: astMinVelocity,
		MaxVelocityKmS: astMaxVelocity,
	}
	if cmd.Flags().Changed("hazardous") {
		filter.Hazardous = &astHazardous
	}
	printJSON(neo.SearchSamples(filter))
}

func runAsteroidsShow(cmd *cobra.Command, args []string) {
	id := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	asteroid, err := neoClient().Lookup(ctx, id)
	if err != nil {
		sample, ok := neo.SampleByID(id)
		if !ok {
			log.Fatalf("Asteroid %s not found: %v", id, err)
		}
		asteroid = sample
	}
	printJSON(asteroid)
}
