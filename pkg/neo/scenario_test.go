// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package neo

import (
	"math"
	"testing"
)

func TestSamplesCatalog(t *testing.T) {
	samples := Samples()
	if len(samples) != 4 {
		t.Fatalf("got %d samples, want 4", len(samples))
	}

	want := map[string]struct {
		diameter  float64
		density   float64
		velocity  float64
		hazardous bool
	}{
		"Eros":    {16000, 2670, 17.0, false},
		"Itokawa": {330, 1950, 12.0, false},
		"Bennu":   {490, 1190, 12.4, true},
		"Apophis": {370, 2600, 12.6, true},
	}
	for _, s := range samples {
		w, ok := want[s.Name]
		if !ok {
			t.Errorf("unexpected sample %q", s.Name)
			continue
		}
		if s.DiameterAvgM == nil || *s.DiameterAvgM != w.diameter {
			t.Errorf("%s diameter = %v, want %v", s.Name, s.DiameterAvgM, w.diameter)
		}
		if s.DensityKgM3 != w.density {
			t.Errorf("%s density = %v, want %v", s.Name, s.DensityKgM3, w.density)
		}
		if s.VelocityKmS == nil || *s.VelocityKmS != w.velocity {
			t.Errorf("%s velocity = %v, want %v", s.Name, s.VelocityKmS, w.velocity)
		}
		if s.IsPotentiallyHazardous != w.hazardous {
			t.Errorf("%s hazardous = %v, want %v", s.Name, s.IsPotentiallyHazardous, w.hazardous)
		}
		if s.Description == "" {
			t.Errorf("%s has no description", s.Name)
		}
	}
}

func TestSampleByID(t *testing.T) {
	if a, ok := SampleByID("200101955"); !ok || a.Name != "Bennu" {
		t.Errorf("SampleByID(200101955) = %v, %v; want Bennu", a, ok)
	}
	if _, ok := SampleByID("999"); ok {
		t.Error("SampleByID(999) found a match, want none")
	}
}

func TestSearchSamples(t *testing.T) {
	hazardous := true
	tests := []struct {
		name   string
		filter SearchFilter
		want   []string
	}{
		{"all", SearchFilter{}, []string{"Eros", "Itokawa", "Bennu", "Apophis"}},
		{"by name", SearchFilter{Name: "bennu"}, []string{"Bennu"}},
		{"by designation", SearchFilter{Name: "25143"}, []string{"Itokawa"}},
		{"hazardous only", SearchFilter{Hazardous: &hazardous}, []string{"Bennu", "Apophis"}},
		{"diameter window", SearchFilter{MinDiameterM: 400, MaxDiameterM: 1000}, []string{"Bennu"}},
		{"velocity floor", SearchFilter{MinVelocityKmS: 12.5}, []string{"Eros", "Apophis"}},
		{"no match", SearchFilter{Name: "ceres"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchSamples(tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d matches, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("match[%d] = %s, want %s", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestBuildImpactScenarioFallbacks(t *testing.T) {
	// Magnitude fallback: 10^(3.1236 - 0.5*H).
	mag := 22.0
	fromMagnitude := BuildImpactScenario(&Asteroid{ID: "1", AbsoluteMagnitude: &mag}, nil, nil)
	wantDiameter := math.Pow(10, 3.1236-0.5*22.0)
	if math.Abs(fromMagnitude.DiameterM-wantDiameter) > 1e-9 {
		t.Errorf("diameter = %v, want %v", fromMagnitude.DiameterM, wantDiameter)
	}

	// Nothing known at all.
	bare := BuildImpactScenario(&Asteroid{ID: "2"}, nil, nil)
	if bare.DiameterM != 100.0 {
		t.Errorf("diameter fallback = %v, want 100", bare.DiameterM)
	}
	if bare.VelocityKmS != 17.0 {
		t.Errorf("velocity fallback = %v, want 17", bare.VelocityKmS)
	}
	if bare.DensityKgM3 != 3000.0 {
		t.Errorf("density fallback = %v, want 3000", bare.DensityKgM3)
	}
	if bare.ImpactAngleDeg != 45.0 {
		t.Errorf("angle = %v, want 45", bare.ImpactAngleDeg)
	}
}

func TestBuildImpactScenarioPrefersCatalogValues(t *testing.T) {
	sample, _ := SampleByID("2000433") // Eros
	lat, lon := 35.0, -120.0
	scenario := BuildImpactScenario(sample, &lat, &lon)

	if scenario.DiameterM != 16000 || scenario.VelocityKmS != 17.0 || scenario.DensityKgM3 != 2670 {
		t.Errorf("scenario = %+v, want Eros catalog values", scenario)
	}
	if scenario.AsteroidName != "Eros" || scenario.AsteroidID != "2000433" {
		t.Errorf("identity = %s/%s, want Eros/2000433", scenario.AsteroidName, scenario.AsteroidID)
	}

	params := scenario.Parameters()
	if params.DiameterM != 16000 || params.ImpactLat == nil || *params.ImpactLat != 35.0 {
		t.Errorf("parameters conversion wrong: %+v", params)
	}
}
