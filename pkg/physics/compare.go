// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package physics

import (
	"fmt"
	"sort"
)

// MethodRanking is one row of a comparison result, ordered best first.
type MethodRanking struct {
	Method             Method  `json:"method"`
	SuccessProbability float64 `json:"success_probability"`
	MissDistanceKm     float64 `json:"miss_distance_km"`
	DeltaVMS           float64 `json:"delta_v_ms"`
}

// ComparisonSummary condenses the ranking into the fields API consumers
// read most.
type ComparisonSummary struct {
	MostEffective        Method             `json:"most_effective"`
	LeastEffective       Method             `json:"least_effective"`
	SuccessProbabilities map[Method]float64 `json:"success_probabilities"`
}

// Comparison holds all three model runs at reference parameters plus the
// derived ranking.
type Comparison struct {
	Scenarios         map[Method]*Outcome `json:"scenarios"`
	RecommendedMethod Method              `json:"recommended_method"`
	MethodRanking     []MethodRanking     `json:"method_ranking"`
	ComparisonSummary ComparisonSummary   `json:"comparison_summary"`
	TimeToImpactDays  float64             `json:"time_to_impact_days"`
}

// CompareMethods runs every deflection model against the same asteroid
// with each model's reference parameters and ranks the outcomes by
// success probability. The stable sort keeps declaration order for equal
// probabilities, so the ranking is deterministic for identical input.
func CompareMethods(asteroid TargetAsteroid, timeToImpactDays float64) (*Comparison, error) {
	if timeToImpactDays <= 0 {
		return nil, &InvalidParameterError{Field: "time_to_impact_days", Reason: "must be positive"}
	}
	if _, err := asteroid.resolveMass(); err != nil {
		return nil, err
	}

	scenarios := make(map[Method]*Outcome, len(models))
	ranking := make([]MethodRanking, 0, len(models))
	for _, method := range Methods() {
		outcome, err := ComputeDeflection(asteroid, method, DeflectionParameters{}, timeToImpactDays)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", method, err)
		}
		scenarios[method] = outcome
		ranking = append(ranking, MethodRanking{
			Method:             method,
			SuccessProbability: outcome.SuccessProbability,
			MissDistanceKm:     outcome.MissDistanceKm,
			DeltaVMS:           outcome.DeltaVMS,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].SuccessProbability > ranking[j].SuccessProbability
	})

	best := ranking[0]
	probabilities := make(map[Method]float64, len(ranking))
	for _, r := range ranking {
		probabilities[r.Method] = r.SuccessProbability
	}
	summary := ComparisonSummary{
		MostEffective:        best.Method,
		LeastEffective:       ranking[len(ranking)-1].Method,
		SuccessProbabilities: probabilities,
	}

	return &Comparison{
		Scenarios:         scenarios,
		RecommendedMethod: best.Method,
		MethodRanking:     ranking,
		ComparisonSummary: summary,
		TimeToImpactDays:  timeToImpactDays,
	}, nil
}
