// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package physics

import (
	"math"
)

// Engineering bounds the optimizer clamps its solved parameter to. When
// a clamp binds, the achieved probability reported by the forward re-run
// can fall short of the target; optimization_successful reflects that.
const (
	minImpactorMassKg = 100.0
	maxImpactorMassKg = 100000.0

	minThrustN = 100.0
	maxThrustN = 1e6

	minYieldKt = 0.1
	maxYieldKt = 1000.0
)

// DefaultTargetSuccessProbability is used when a request does not specify
// a target.
const DefaultTargetSuccessProbability = 0.95

// OptimizationResult reports the solved parameter set and the forward
// re-simulation at the clamped values. Achieved figures come from the
// re-simulation, never from the unclamped algebra, so a clamped solution
// honestly reports the shortfall.
type OptimizationResult struct {
	Method                     Method               `json:"deflection_method"`
	OptimizedParameters        DeflectionParameters `json:"optimized_parameters"`
	OptimizedScenario          *Outcome             `json:"optimized_scenario"`
	TargetSuccessProbability   float64              `json:"target_success_probability"`
	AchievedSuccessProbability float64              `json:"achieved_success_probability"`
	RequiredDeltaVMS           float64              `json:"required_delta_v_ms"`
	OptimizationSuccessful     bool                 `json:"optimization_successful"`
	TimeToImpactDays           float64              `json:"time_to_impact_days"`
}

// OptimizeDeflection inverts the selected model algebraically. Success
// probability is linear in miss distance below saturation, so the engine
// solves for the delta-v giving miss_distance = target * EarthRadiusKm,
// inverts the method's forward formula for its single free parameter
// (impactor mass, tractor thrust, or device yield) holding everything
// else at the defaults, clamps it to engineering bounds, and re-runs the
// forward model at the clamped value.
func OptimizeDeflection(asteroid TargetAsteroid, method Method, targetSuccessProbability, timeToImpactDays float64) (*OptimizationResult, error) {
	model, ok := models[method]
	if !ok {
		return nil, &InvalidParameterError{
			Field:  "deflection_method",
			Reason: "must be one of: kinetic_impactor, gravity_tractor, nuclear",
		}
	}
	if timeToImpactDays <= 0 {
		return nil, &InvalidParameterError{Field: "time_to_impact_days", Reason: "must be positive"}
	}
	if targetSuccessProbability < 0 || targetSuccessProbability > 1 {
		return nil, &InvalidParameterError{Field: "target_success_probability", Reason: "must be in [0, 1]"}
	}
	massKg, err := asteroid.resolveMass()
	if err != nil {
		return nil, err
	}

	requiredMissKm := targetSuccessProbability * EarthRadiusKm
	timeS := timeToImpactDays * secondsPerDay
	requiredDeltaVMS := requiredMissKm * 1000.0 / timeS

	params := model.invert(massKg, timeToImpactDays, requiredDeltaVMS)
	outcome, err := model.simulate(asteroid, massKg, params, timeToImpactDays)
	if err != nil {
		return nil, err
	}

	return &OptimizationResult{
		Method:                     method,
		OptimizedParameters:        params,
		OptimizedScenario:          outcome,
		TargetSuccessProbability:   targetSuccessProbability,
		AchievedSuccessProbability: outcome.SuccessProbability,
		RequiredDeltaVMS:           requiredDeltaVMS,
		OptimizationSuccessful:     outcome.SuccessProbability >= targetSuccessProbability,
		TimeToImpactDays:           timeToImpactDays,
	}, nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
