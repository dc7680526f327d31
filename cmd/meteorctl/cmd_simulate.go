// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/meteormadness/meteormadness/pkg/geoctx"
	"github.com/meteormadness/meteormadness/pkg/physics"
)

var (
	simDiameterM     float64
	simVelocityKmS   float64
	simDensityKgM3   float64
	simAngleDeg      float64
	simLat           float64
	simLon           float64
	simEnvironmental bool

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Simulate an asteroid impact and print the metrics",
		Run:   runSimulate,
	}
)

func init() {
	simulateCmd.Flags().Float64Var(&simDiameterM, "diameter", 0, "Asteroid diameter in meters (required)")
	simulateCmd.Flags().Float64Var(&simVelocityKmS, "velocity", 0, "Impact velocity in km/s (required)")
	simulateCmd.Flags().Float64Var(&simDensityKgM3, "density", 0, "Asteroid density in kg/m3")
	simulateCmd.Flags().Float64Var(&simAngleDeg, "angle", 0, "Impact angle in degrees")
	simulateCmd.Flags().Float64Var(&simLat, "lat", 0, "Impact latitude")
	simulateCmd.Flags().Float64Var(&simLon, "lon", 0, "Impact longitude")
	simulateCmd.Flags().BoolVar(&simEnvironmental, "environmental", true, "Include environmental context when a location is given")
	_ = simulateCmd.MarkFlagRequired("diameter")
	_ = simulateCmd.MarkFlagRequired("velocity")
}

func runSimulate(cmd *cobra.Command, args []string) {
	params := physics.AsteroidParameters{
		DiameterM:      simDiameterM,
		VelocityKmS:    simVelocityKmS,
		DensityKgM3:    optionalFlag(cmd.Flags().Changed("density"), simDensityKgM3),
		ImpactAngleDeg: optionalFlag(cmd.Flags().Changed("angle"), simAngleDeg),
		ImpactLat:      optionalFlag(cmd.Flags().Changed("lat"), simLat),
		ImpactLon:      optionalFlag(cmd.Flags().Changed("lon"), simLon),
	}

	metrics, err := physics.ComputeImpactMetrics(params)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	result := map[string]any{"impact_metrics": metrics}
	if simEnvironmental && params.ImpactLat != nil && params.ImpactLon != nil {
		result["environmental_data"] = geoctx.GetEnvironmentalData(*params.ImpactLat, *params.ImpactLon)
	}
	printJSON(result)
}
