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

// MitigatedMetrics is an ImpactMetrics copy annotated with the effect of
// a deflection attempt. For a partial deflection the damage fields are
// rescaled; for a complete one they are returned untouched.
type MitigatedMetrics struct {
	ImpactMetrics
	MitigationApplied          bool    `json:"mitigation_applied"`
	ImpactProbabilityReduction float64 `json:"impact_probability_reduction"`
}

// MitigationScenario pairs the original and mitigated metrics with the
// deflection figures that produced them.
type MitigationScenario struct {
	OriginalMetrics      *ImpactMetrics    `json:"original_metrics"`
	MitigatedMetrics     *MitigatedMetrics `json:"mitigated_metrics"`
	DeltaVMS             float64           `json:"delta_v_ms"`
	TimeToImpactDays     float64           `json:"time_to_impact_days"`
	DeflectionDistanceKm float64           `json:"deflection_distance_km"`
	MissDistanceKm       float64           `json:"miss_distance_km"`
	DeflectionSuccessful bool              `json:"deflection_successful"`
	EarthRadiusKm        float64           `json:"earth_radius_km"`
}

// ComputeMitigationScenario applies an achieved delta-v to an existing
// impact estimate.
//
// The deflection distance here is 0.5 * delta_v * t, the constant
// acceleration form, while the planning models in this package use
// delta_v * t. The asymmetry is inherited from the reference model and
// kept as-is rather than unified.
//
// A complete deflection (miss distance beyond Earth's radius) returns
// the metrics unscaled with a probability reduction of 1. A partial one
// scales energy_tnt_tons linearly by the remaining fraction and every
// crater and damage length by its fourth root, matching the E^0.25
// scaling those lengths were derived with.
func ComputeMitigationScenario(original *ImpactMetrics, deltaVMS, timeToImpactDays float64) (*MitigationScenario, error) {
	if original == nil {
		return nil, &MissingParameterError{Field: "original_metrics"}
	}
	if timeToImpactDays <= 0 {
		return nil, &InvalidParameterError{Field: "time_to_impact_days", Reason: "must be positive"}
	}

	timeS := timeToImpactDays * secondsPerDay
	deflectionDistanceKm := 0.5 * deltaVMS * timeS / 1000.0
	missDistanceKm := deflectionDistanceKm
	successful := missDistanceKm > EarthRadiusKm

	mitigated := &MitigatedMetrics{
		ImpactMetrics:     *original,
		MitigationApplied: true,
	}

	if successful {
		mitigated.ImpactProbabilityReduction = 1.0
	} else {
		reduction := math.Min(1.0, missDistanceKm/EarthRadiusKm)
		factor := 1.0 - reduction
		lengthFactor := math.Pow(factor, 0.25)

		mitigated.EnergyTNTTons *= factor
		mitigated.CraterDiameterKm *= lengthFactor
		mitigated.CraterRadiusKm *= lengthFactor
		mitigated.CraterDepthKm *= lengthFactor
		mitigated.SevereDamageRadiusKm *= lengthFactor
		mitigated.ModerateDamageRadiusKm *= lengthFactor
		mitigated.LightDamageRadiusKm *= lengthFactor
		mitigated.ImpactProbabilityReduction = reduction
	}

	return &MitigationScenario{
		OriginalMetrics:      original,
		MitigatedMetrics:     mitigated,
		DeltaVMS:             deltaVMS,
		TimeToImpactDays:     timeToImpactDays,
		DeflectionDistanceKm: deflectionDistanceKm,
		MissDistanceKm:       missDistanceKm,
		DeflectionSuccessful: successful,
		EarthRadiusKm:        EarthRadiusKm,
	}, nil
}
