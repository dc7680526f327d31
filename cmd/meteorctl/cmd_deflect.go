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

	"github.com/meteormadness/meteormadness/pkg/physics"
)

var (
	defMethod         string
	defMassKg         float64
	defDiameterM      float64
	defDensityKgM3    float64
	defVelocityKmS    float64
	defDays           float64
	defTarget         float64
	defImpactorMassKg float64
	defImpactorVelKmS float64
	defSpacecraftKg   float64
	defTractorDistM   float64
	defThrustN        float64
	defYieldKt        float64
	defStandoffM      float64

	deflectCmd = &cobra.Command{
		Use:   "deflect",
		Short: "Compute a deflection scenario for one method",
		Run:   runDeflect,
	}

	compareMethodsCmd = &cobra.Command{
		Use:   "compare-methods",
		Short: "Compare all deflection methods at reference parameters",
		Run:   runCompareMethods,
	}

	optimizeCmd = &cobra.Command{
		Use:   "optimize",
		Short: "Solve for the parameters hitting a target success probability",
		Run:   runOptimize,
	}
)

func addAsteroidFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&defMassKg, "mass", 0, "Asteroid mass in kg")
	cmd.Flags().Float64Var(&defDiameterM, "diameter", 0, "Asteroid diameter in meters")
	cmd.Flags().Float64Var(&defDensityKgM3, "density", 0, "Asteroid density in kg/m3")
	cmd.Flags().Float64Var(&defVelocityKmS, "velocity", 0, "Asteroid velocity in km/s")
	cmd.Flags().Float64Var(&defDays, "days", 365, "Time to impact in days")
}

func init() {
	addAsteroidFlags(deflectCmd)
	deflectCmd.Flags().StringVar(&defMethod, "method", "", "kinetic_impactor, gravity_tractor or nuclear (required)")
	deflectCmd.Flags().Float64Var(&defImpactorMassKg, "impactor-mass", 0, "Kinetic impactor mass in kg")
	deflectCmd.Flags().Float64Var(&defImpactorVelKmS, "impactor-velocity", 0, "Kinetic impactor velocity in km/s")
	deflectCmd.Flags().Float64Var(&defSpacecraftKg, "spacecraft-mass", 0, "Gravity tractor spacecraft mass in kg")
	deflectCmd.Flags().Float64Var(&defTractorDistM, "tractor-distance", 0, "Gravity tractor hover distance in meters")
	deflectCmd.Flags().Float64Var(&defThrustN, "thrust", 0, "Gravity tractor thrust in newtons")
	deflectCmd.Flags().Float64Var(&defYieldKt, "yield", 0, "Nuclear device yield in kilotons")
	deflectCmd.Flags().Float64Var(&defStandoffM, "standoff", 0, "Nuclear detonation distance in meters")
	_ = deflectCmd.MarkFlagRequired("method")

	addAsteroidFlags(compareMethodsCmd)

	addAsteroidFlags(optimizeCmd)
	optimizeCmd.Flags().StringVar(&defMethod, "method", "", "Method to optimize (required)")
	optimizeCmd.Flags().Float64Var(&defTarget, "target", physics.DefaultTargetSuccessProbability,
		"Target success probability in [0, 1]")
	_ = optimizeCmd.MarkFlagRequired("method")
}

func targetAsteroid() physics.TargetAsteroid {
	return physics.TargetAsteroid{
		MassKg:      defMassKg,
		DiameterM:   defDiameterM,
		DensityKgM3: defDensityKgM3,
		VelocityKmS: defVelocityKmS,
	}
}

func runDeflect(cmd *cobra.Command, args []string) {
	method, err := physics.ParseMethod(defMethod)
	if err != nil {
		log.Fatalf("Invalid method: %v", err)
	}

	params := physics.DeflectionParameters{
		ImpactorMassKg:      optionalFlag(cmd.Flags().Changed("impactor-mass"), defImpactorMassKg),
		ImpactorVelocityKmS: optionalFlag(cmd.Flags().Changed("impactor-velocity"), defImpactorVelKmS),
		SpacecraftMassKg:    optionalFlag(cmd.Flags().Changed("spacecraft-mass"), defSpacecraftKg),
		TractorDistanceM:    optionalFlag(cmd.Flags().Changed("tractor-distance"), defTractorDistM),
		ThrustN:             optionalFlag(cmd.Flags().Changed("thrust"), defThrustN),
		YieldKt:             optionalFlag(cmd.Flags().Changed("yield"), defYieldKt),
		DetonationDistanceM: optionalFlag(cmd.Flags().Changed("standoff"), defStandoffM),
	}

	outcome, err := physics.ComputeDeflection(targetAsteroid(), method, params, defDays)
	if err != nil {
		log.Fatalf("Deflection failed: %v", err)
	}
	printJSON(outcome)
}

func runCompareMethods(cmd *cobra.Command, args []string) {
	comparison, err := physics.CompareMethods(targetAsteroid(), defDays)
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}
	printJSON(comparison)
}

func runOptimize(cmd *cobra.Command, args []string) {
	method, err := physics.ParseMethod(defMethod)
	if err != nil {
		log.Fatalf("Invalid method: %v", err)
	}

	result, err := physics.OptimizeDeflection(targetAsteroid(), method, defTarget, defDays)
	if err != nil {
		log.Fatalf("Optimization failed: %v", err)
	}
	printJSON(result)
}
