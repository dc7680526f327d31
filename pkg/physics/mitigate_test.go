// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package physics

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func referenceMetrics(t *testing.T) *ImpactMetrics {
	t.Helper()
	metrics, err := ComputeImpactMetrics(AsteroidParameters{DiameterM: 100, VelocityKmS: 17})
	if err != nil {
		t.Fatalf("reference metrics: %v", err)
	}
	return metrics
}

func TestMitigationFullDeflectionLeavesMetricsUntouched(t *testing.T) {
	original := referenceMetrics(t)

	// 0.5 m/s over a year gives 0.5*0.5*3.1536e7/1000 = 7884 km > 6371.
	scenario, err := ComputeMitigationScenario(original, 0.5, 365)
	if err != nil {
		t.Fatalf("ComputeMitigationScenario() error = %v", err)
	}

	if !scenario.DeflectionSuccessful {
		t.Fatal("deflection_successful = false, want true")
	}
	approxRel(t, "deflection_distance_km", scenario.DeflectionDistanceKm, 7884, 1e-9)
	if scenario.MitigatedMetrics.ImpactProbabilityReduction != 1.0 {
		t.Errorf("impact_probability_reduction = %v, want 1.0",
			scenario.MitigatedMetrics.ImpactProbabilityReduction)
	}
	if !scenario.MitigatedMetrics.MitigationApplied {
		t.Error("mitigation_applied = false, want true")
	}
	if !reflect.DeepEqual(scenario.MitigatedMetrics.ImpactMetrics, *original) {
		t.Error("metrics were rescaled despite a complete deflection")
	}
}

func TestMitigationPartialDeflectionRescales(t *testing.T) {
	original := referenceMetrics(t)

	// 0.1 m/s over a year: 1576.8 km, reduction 0.2475.
	scenario, err := ComputeMitigationScenario(original, 0.1, 365)
	if err != nil {
		t.Fatalf("ComputeMitigationScenario() error = %v", err)
	}

	if scenario.DeflectionSuccessful {
		t.Fatal("deflection_successful = true, want false")
	}
	reduction := scenario.MitigatedMetrics.ImpactProbabilityReduction
	approxRel(t, "impact_probability_reduction", reduction, 1576.8/EarthRadiusKm, 1e-9)

	factor := 1.0 - reduction
	lengthFactor := math.Pow(factor, 0.25)
	m := scenario.MitigatedMetrics

	approxRel(t, "energy_tnt_tons", m.EnergyTNTTons, original.EnergyTNTTons*factor, 1e-12)
	approxRel(t, "crater_diameter_km", m.CraterDiameterKm, original.CraterDiameterKm*lengthFactor, 1e-12)
	approxRel(t, "crater_radius_km", m.CraterRadiusKm, original.CraterRadiusKm*lengthFactor, 1e-12)
	approxRel(t, "crater_depth_km", m.CraterDepthKm, original.CraterDepthKm*lengthFactor, 1e-12)
	approxRel(t, "severe_damage_radius_km", m.SevereDamageRadiusKm, original.SevereDamageRadiusKm*lengthFactor, 1e-12)
	approxRel(t, "moderate_damage_radius_km", m.ModerateDamageRadiusKm, original.ModerateDamageRadiusKm*lengthFactor, 1e-12)
	approxRel(t, "light_damage_radius_km", m.LightDamageRadiusKm, original.LightDamageRadiusKm*lengthFactor, 1e-12)

	// Non-damage fields pass through.
	if m.MassKg != original.MassKg || m.SeismicMagnitude != original.SeismicMagnitude {
		t.Error("non-damage fields were modified")
	}
	// The original record is not mutated.
	fresh := referenceMetrics(t)
	if !reflect.DeepEqual(scenario.OriginalMetrics, fresh) {
		t.Error("original metrics were mutated")
	}
}

func TestMitigationZeroDeltaV(t *testing.T) {
	original := referenceMetrics(t)
	scenario, err := ComputeMitigationScenario(original, 0, 365)
	if err != nil {
		t.Fatalf("ComputeMitigationScenario() error = %v", err)
	}
	if scenario.MitigatedMetrics.ImpactProbabilityReduction != 0 {
		t.Errorf("impact_probability_reduction = %v, want 0",
			scenario.MitigatedMetrics.ImpactProbabilityReduction)
	}
	approxRel(t, "energy_tnt_tons", scenario.MitigatedMetrics.EnergyTNTTons, original.EnergyTNTTons, 1e-12)
}

func TestMitigationHalfCoefficientForm(t *testing.T) {
	// The mitigation distance is half the planning-model distance for the
	// same delta-v and time.
	original := referenceMetrics(t)
	scenario, err := ComputeMitigationScenario(original, 0.2, 100)
	if err != nil {
		t.Fatalf("ComputeMitigationScenario() error = %v", err)
	}
	timeS := 100.0 * 24 * 3600
	approxRel(t, "deflection_distance_km", scenario.DeflectionDistanceKm, 0.5*0.2*timeS/1000.0, 1e-12)
}

func TestMitigationValidation(t *testing.T) {
	original := referenceMetrics(t)

	_, err := ComputeMitigationScenario(nil, 0.1, 365)
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Errorf("nil metrics: error = %v, want MissingParameterError", err)
	}

	_, err = ComputeMitigationScenario(original, 0.1, 0)
	var invalid *InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Errorf("zero days: error = %v, want InvalidParameterError", err)
	}
}
