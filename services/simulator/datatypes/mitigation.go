// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"github.com/meteormadness/meteormadness/pkg/physics"
)

// DeflectRequest is the body of POST /api/mitigation/deflect.
type DeflectRequest struct {
	AsteroidData         *physics.TargetAsteroid      `json:"asteroid_data" binding:"required"`
	DeflectionMethod     string                       `json:"deflection_method" binding:"required"`
	DeflectionParameters physics.DeflectionParameters `json:"deflection_parameters"`
	TimeToImpactDays     *float64                     `json:"time_to_impact_days" binding:"required"`
}

// DeflectEcho mirrors the deflect request back in the response so a
// client can pair a scenario with the inputs that produced it.
type DeflectEcho struct {
	AsteroidData         *physics.TargetAsteroid      `json:"asteroid_data"`
	DeflectionMethod     string                       `json:"deflection_method"`
	DeflectionParameters physics.DeflectionParameters `json:"deflection_parameters"`
	TimeToImpactDays     float64                      `json:"time_to_impact_days"`
}

// CompareMethodsRequest is the body of POST /api/mitigation/compare-methods
// and POST /api/mitigation/deflection-feasibility.
type CompareMethodsRequest struct {
	AsteroidData       *physics.TargetAsteroid `json:"asteroid_data" binding:"required"`
	TimeToImpactDays   *float64                `json:"time_to_impact_days" binding:"required"`
	MissionConstraints map[string]any          `json:"mission_constraints,omitempty"`
}

// OptimizeRequest is the body of POST /api/mitigation/optimize.
type OptimizeRequest struct {
	AsteroidData             *physics.TargetAsteroid `json:"asteroid_data" binding:"required"`
	DeflectionMethod         string                  `json:"deflection_method" binding:"required"`
	TimeToImpactDays         *float64                `json:"time_to_impact_days" binding:"required"`
	TargetSuccessProbability *float64                `json:"target_success_probability"`
}

// SimulateMitigationRequest is the body of
// POST /api/mitigation/simulate-mitigation.
type SimulateMitigationRequest struct {
	OriginalImpactMetrics *physics.ImpactMetrics `json:"original_impact_metrics" binding:"required"`
	DeltaVMS              *float64               `json:"delta_v_ms" binding:"required"`
	TimeToImpactDays      *float64               `json:"time_to_impact_days" binding:"required"`
}

// MissionPlanningRequest is the body of POST /api/mitigation/mission-planning.
type MissionPlanningRequest struct {
	AsteroidData      *physics.TargetAsteroid `json:"asteroid_data" binding:"required"`
	DeflectionMethod  string                  `json:"deflection_method" binding:"required"`
	TimeToImpactDays  *float64                `json:"time_to_impact_days" binding:"required"`
	MissionParameters map[string]any          `json:"mission_parameters,omitempty"`
}

// FeasibilityFactors scores one deflection method on fixed engineering
// axes. All factors run 0 to 1; higher is better except RiskLevel,
// which the overall score inverts.
type FeasibilityFactors struct {
	TechnicalReadiness float64 `json:"technical_readiness"`
	TimeRequirements   float64 `json:"time_requirements"`
	CostEffectiveness  float64 `json:"cost_effectiveness"`
	SuccessProbability float64 `json:"success_probability"`
	RiskLevel          float64 `json:"risk_level"`
}

// MethodFeasibility is one method's feasibility verdict.
type MethodFeasibility struct {
	Method                  physics.Method     `json:"method"`
	FeasibilityFactors      FeasibilityFactors `json:"feasibility_factors"`
	OverallFeasibilityScore float64            `json:"overall_feasibility_score"`
	Recommendation          string             `json:"recommendation"`
}

// MissionPhase is one phase of a deflection mission plan.
type MissionPhase struct {
	Phase        string `json:"phase"`
	DurationDays int    `json:"duration_days"`
	Description  string `json:"description"`
}

// PhaseWindow places a phase on the mission timeline, in days from
// mission start.
type PhaseWindow struct {
	StartDay     int `json:"start_day"`
	EndDay       int `json:"end_day"`
	DurationDays int `json:"duration_days"`
}

// ResourceRequirements estimates what a mission needs.
type ResourceRequirements struct {
	SpacecraftMassKg      float64 `json:"spacecraft_mass_kg"`
	EstimatedCostMillions float64 `json:"estimated_cost_millions"`
	LaunchVehicle         string  `json:"launch_vehicle"`
	GroundCrew            int     `json:"ground_crew"`
	MissionDurationYears  float64 `json:"mission_duration_years"`
}

// MissionRisks lists qualitative risks by category.
type MissionRisks struct {
	TechnicalRisks []string `json:"technical_risks"`
	ScheduleRisks  []string `json:"schedule_risks"`
	CostRisks      []string `json:"cost_risks"`
	PoliticalRisks []string `json:"political_risks"`
}

// SuccessCriteria names the tiers a mission is judged against.
type SuccessCriteria struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Tertiary  string `json:"tertiary"`
}

// MissionOverview restates the planning inputs.
type MissionOverview struct {
	DeflectionMethod   physics.Method          `json:"deflection_method"`
	TimeToImpactDays   float64                 `json:"time_to_impact_days"`
	AsteroidProperties *physics.TargetAsteroid `json:"asteroid_properties"`
}

// MissionPlan is the full planning document returned by
// POST /api/mitigation/mission-planning.
type MissionPlan struct {
	MissionOverview      MissionOverview        `json:"mission_overview"`
	Phases               []MissionPhase         `json:"phases"`
	Timeline             map[string]PhaseWindow `json:"timeline"`
	ResourceRequirements ResourceRequirements   `json:"resource_requirements"`
	RiskAssessment       MissionRisks           `json:"risk_assessment"`
	SuccessCriteria      SuccessCriteria        `json:"success_criteria"`
	ContingencyPlans     []string               `json:"contingency_plans"`
}
