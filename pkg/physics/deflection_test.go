// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package physics

import (
	"errors"
	"testing"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Method
		wantErr bool
	}{
		{"kinetic", "kinetic_impactor", MethodKineticImpactor, false},
		{"tractor", "gravity_tractor", MethodGravityTractor, false},
		{"nuclear", "nuclear", MethodNuclear, false},
		{"empty", "", "", true},
		{"unknown", "laser_ablation", "", true},
		{"case sensitive", "Kinetic_Impactor", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKineticImpactorReferenceScenario(t *testing.T) {
	// 1 t impactor at 10 km/s head-on against a 1e12 kg asteroid with a
	// year of warning.
	outcome, err := ComputeDeflection(
		TargetAsteroid{MassKg: 1e12},
		MethodKineticImpactor,
		DeflectionParameters{
			ImpactorMassKg:      fptr(1000),
			ImpactorVelocityKmS: fptr(10),
			ImpactAngleDeg:      fptr(90),
		},
		365,
	)
	if err != nil {
		t.Fatalf("ComputeDeflection() error = %v", err)
	}

	approxRel(t, "delta_v_ms", outcome.DeltaVMS, 1e-6, 1e-9)
	approxRel(t, "deflection_distance_km", outcome.DeflectionDistanceKm, 0.031536, 1e-9)
	approxRel(t, "success_probability", outcome.SuccessProbability, 4.9499e-6, 1e-3)
	if outcome.DeflectionSuccessful {
		t.Error("deflection_successful = true, want false")
	}
	if outcome.MissDistanceKm != outcome.DeflectionDistanceKm {
		t.Errorf("miss_distance_km = %v, want %v", outcome.MissDistanceKm, outcome.DeflectionDistanceKm)
	}
	if outcome.KineticImpactor == nil {
		t.Fatal("kinetic impactor detail missing")
	}
	approxRel(t, "momentum_transfer_efficiency", outcome.KineticImpactor.MomentumTransferEfficiency, 0.1, 1e-9)
	if outcome.GravityTractor != nil || outcome.Nuclear != nil {
		t.Error("unexpected detail for other methods")
	}
}

func TestGravityTractorReferenceScenario(t *testing.T) {
	outcome, err := ComputeDeflection(TargetAsteroid{MassKg: 1e12}, MethodGravityTractor, DeflectionParameters{}, 365)
	if err != nil {
		t.Fatalf("ComputeDeflection() error = %v", err)
	}
	if outcome.GravityTractor == nil {
		t.Fatal("gravity tractor detail missing")
	}

	// F_g = G * 1e4 * 1e12 / 100^2 = 66.74 N, net 933.26 N.
	approxRel(t, "gravitational_force_N", outcome.GravityTractor.GravitationalForceN, 66.74, 1e-3)
	approxRel(t, "net_force_N", outcome.GravityTractor.NetForceN, 933.26, 1e-3)
	approxRel(t, "delta_v_ms", outcome.DeltaVMS, 0.029431, 1e-3)
	approxRel(t, "deflection_distance_km", outcome.DeflectionDistanceKm, 928.1, 1e-3)
	if outcome.DeflectionSuccessful {
		t.Error("deflection_successful = true, want false")
	}
}

func TestNuclearReferenceScenario(t *testing.T) {
	outcome, err := ComputeDeflection(TargetAsteroid{MassKg: 1e12}, MethodNuclear, DeflectionParameters{}, 365)
	if err != nil {
		t.Fatalf("ComputeDeflection() error = %v", err)
	}
	if outcome.Nuclear == nil {
		t.Fatal("nuclear detail missing")
	}

	// p = sqrt(2 * 4.184e12 * 0.01 * 1e12), delta_v = p / 1e12.
	approxRel(t, "yield_joules", outcome.Nuclear.YieldJoules, 4.184e12, 1e-9)
	approxRel(t, "delta_v_ms", outcome.DeltaVMS, 0.28927, 1e-3)
	if !outcome.DeflectionSuccessful {
		t.Error("deflection_successful = false, want true")
	}
	if outcome.SuccessProbability != 1.0 {
		t.Errorf("success_probability = %v, want capped 1.0", outcome.SuccessProbability)
	}
}

func TestDeflectionMonotoneInWarningTime(t *testing.T) {
	asteroid := TargetAsteroid{MassKg: 1e12}
	for _, method := range Methods() {
		t.Run(string(method), func(t *testing.T) {
			prev := -1.0
			for _, days := range []float64{10, 100, 365, 1000, 5000} {
				outcome, err := ComputeDeflection(asteroid, method, DeflectionParameters{}, days)
				if err != nil {
					t.Fatalf("days=%v: %v", days, err)
				}
				if outcome.SuccessProbability < prev {
					t.Fatalf("success probability decreased at %v days: %v < %v",
						days, outcome.SuccessProbability, prev)
				}
				prev = outcome.SuccessProbability
			}
		})
	}
}

func TestDeflectionMassResolution(t *testing.T) {
	// No mass but a diameter: derive from sphere volume at default density.
	// 100 m at 3000 kg/m^3 is ~1.5708e9 kg.
	withDiameter, err := ComputeDeflection(
		TargetAsteroid{DiameterM: 100},
		MethodKineticImpactor,
		DeflectionParameters{ImpactorMassKg: fptr(1000), ImpactorVelocityKmS: fptr(10), ImpactAngleDeg: fptr(90)},
		365,
	)
	if err != nil {
		t.Fatalf("diameter-derived mass: %v", err)
	}
	approxRel(t, "delta_v_ms", withDiameter.DeltaVMS, 1000*10000*0.1/1.5707963e9, 1e-3)

	// Nothing at all: reference 1e12 kg default.
	withDefaults, err := ComputeDeflection(
		TargetAsteroid{},
		MethodKineticImpactor,
		DeflectionParameters{ImpactorMassKg: fptr(1000), ImpactorVelocityKmS: fptr(10), ImpactAngleDeg: fptr(90)},
		365,
	)
	if err != nil {
		t.Fatalf("default mass: %v", err)
	}
	approxRel(t, "delta_v_ms", withDefaults.DeltaVMS, 1e-6, 1e-9)
}

func TestDeflectionValidation(t *testing.T) {
	asteroid := TargetAsteroid{MassKg: 1e12}
	tests := []struct {
		name   string
		method Method
		params DeflectionParameters
		days   float64
	}{
		{"zero days", MethodKineticImpactor, DeflectionParameters{}, 0},
		{"negative days", MethodNuclear, DeflectionParameters{}, -10},
		{"zero impactor mass", MethodKineticImpactor, DeflectionParameters{ImpactorMassKg: fptr(0)}, 365},
		{"negative impactor velocity", MethodKineticImpactor, DeflectionParameters{ImpactorVelocityKmS: fptr(-1)}, 365},
		{"zero spacecraft mass", MethodGravityTractor, DeflectionParameters{SpacecraftMassKg: fptr(0)}, 365},
		{"zero tractor distance", MethodGravityTractor, DeflectionParameters{TractorDistanceM: fptr(0)}, 365},
		{"negative thrust", MethodGravityTractor, DeflectionParameters{ThrustN: fptr(-100)}, 365},
		{"zero yield", MethodNuclear, DeflectionParameters{YieldKt: fptr(0)}, 365},
		{"unknown method", Method("solar_sail"), DeflectionParameters{}, 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeDeflection(asteroid, tt.method, tt.params, tt.days)
			var invalid *InvalidParameterError
			if !errors.As(err, &invalid) {
				t.Errorf("error = %v, want InvalidParameterError", err)
			}
		})
	}
}
