// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// This file implements the deflection and mitigation endpoints.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meteormadness/meteormadness/pkg/physics"
	"github.com/meteormadness/meteormadness/services/simulator/datatypes"
)

// Deflect handles POST /api/mitigation/deflect.
func Deflect() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.DeflectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("deflect", start, false)
			fail(c, http.StatusBadRequest,
				"asteroid_data, deflection_method and time_to_impact_days are required")
			return
		}

		method, err := physics.ParseMethod(req.DeflectionMethod)
		if err != nil {
			observe("deflect", start, false)
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		scenario, err := physics.ComputeDeflection(
			*req.AsteroidData, method, req.DeflectionParameters, *req.TimeToImpactDays)
		if err != nil {
			slog.Error("deflection computation failed", "method", method, "error", err)
			observe("deflect", start, false)
			failErr(c, err)
			return
		}

		observe("deflect", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":             true,
			"deflection_scenario": scenario,
			"input_parameters": datatypes.DeflectEcho{
				AsteroidData:         req.AsteroidData,
				DeflectionMethod:     req.DeflectionMethod,
				DeflectionParameters: req.DeflectionParameters,
				TimeToImpactDays:     *req.TimeToImpactDays,
			},
		})
	}
}

// CompareDeflectionMethods handles POST /api/mitigation/compare-methods.
func CompareDeflectionMethods() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.CompareMethodsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("compare_methods", start, false)
			fail(c, http.StatusBadRequest, "asteroid_data and time_to_impact_days are required")
			return
		}

		comparison, err := physics.CompareMethods(*req.AsteroidData, *req.TimeToImpactDays)
		if err != nil {
			slog.Error("method comparison failed", "error", err)
			observe("compare_methods", start, false)
			failErr(c, err)
			return
		}

		observe("compare_methods", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"comparison": comparison,
		})
	}
}

// OptimizeDeflection handles POST /api/mitigation/optimize.
func OptimizeDeflection() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.OptimizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("optimize", start, false)
			fail(c, http.StatusBadRequest,
				"asteroid_data, deflection_method and time_to_impact_days are required")
			return
		}

		method, err := physics.ParseMethod(req.DeflectionMethod)
		if err != nil {
			observe("optimize", start, false)
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		target := physics.DefaultTargetSuccessProbability
		if req.TargetSuccessProbability != nil {
			target = *req.TargetSuccessProbability
		}

		result, err := physics.OptimizeDeflection(*req.AsteroidData, method, target, *req.TimeToImpactDays)
		if err != nil {
			slog.Error("deflection optimization failed", "method", method, "error", err)
			observe("optimize", start, false)
			failErr(c, err)
			return
		}

		observe("optimize", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":             true,
			"optimization_result": result,
		})
	}
}

// SimulateMitigation handles POST /api/mitigation/simulate-mitigation.
func SimulateMitigation() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.SimulateMitigationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("simulate_mitigation", start, false)
			fail(c, http.StatusBadRequest,
				"original_impact_metrics, delta_v_ms and time_to_impact_days are required")
			return
		}

		scenario, err := physics.ComputeMitigationScenario(
			req.OriginalImpactMetrics, *req.DeltaVMS, *req.TimeToImpactDays)
		if err != nil {
			slog.Error("mitigation simulation failed", "error", err)
			observe("simulate_mitigation", start, false)
			failErr(c, err)
			return
		}

		observe("simulate_mitigation", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":             true,
			"mitigation_scenario": scenario,
		})
	}
}

// baseFeasibilityFactors is the static engineering judgment per method;
// success_probability gets filled in from the model comparison.
var baseFeasibilityFactors = map[physics.Method]datatypes.FeasibilityFactors{
	physics.MethodKineticImpactor: {
		TechnicalReadiness: 0.9,
		TimeRequirements:   0.8,
		CostEffectiveness:  0.7,
		RiskLevel:          0.3,
	},
	physics.MethodGravityTractor: {
		TechnicalReadiness: 0.6,
		TimeRequirements:   0.4,
		CostEffectiveness:  0.5,
		RiskLevel:          0.2,
	},
	physics.MethodNuclear: {
		TechnicalReadiness: 0.4,
		TimeRequirements:   0.7,
		CostEffectiveness:  0.8,
		RiskLevel:          0.8,
	},
}

// Weights of the overall feasibility score. RiskLevel is inverted when
// applied: lower risk scores higher.
const (
	weightTechnicalReadiness = 0.25
	weightTimeRequirements   = 0.20
	weightCostEffectiveness  = 0.15
	weightSuccessProbability = 0.30
	weightRiskLevel          = 0.10
)

func assessMethodFeasibility(method physics.Method, outcome *physics.Outcome, timeToImpactDays float64) datatypes.MethodFeasibility {
	factors := baseFeasibilityFactors[method]
	if outcome != nil {
		factors.SuccessProbability = outcome.SuccessProbability
	}

	// Under a year of warning, the slow methods lose most of their
	// schedule headroom.
	if timeToImpactDays < 365 {
		switch method {
		case physics.MethodGravityTractor:
			factors.TimeRequirements *= 0.3
		case physics.MethodKineticImpactor:
			factors.TimeRequirements *= 0.7
		}
	}

	score := factors.TechnicalReadiness*weightTechnicalReadiness +
		factors.TimeRequirements*weightTimeRequirements +
		factors.CostEffectiveness*weightCostEffectiveness +
		factors.SuccessProbability*weightSuccessProbability +
		(1.0-factors.RiskLevel)*weightRiskLevel

	return datatypes.MethodFeasibility{
		Method:                  method,
		FeasibilityFactors:      factors,
		OverallFeasibilityScore: score,
		Recommendation:          feasibilityRecommendation(score, method),
	}
}

func methodTitle(method physics.Method) string {
	words := strings.Split(string(method), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func feasibilityRecommendation(score float64, method physics.Method) string {
	title := methodTitle(method)
	switch {
	case score >= 0.8:
		return fmt.Sprintf("%s is highly recommended", title)
	case score >= 0.6:
		return fmt.Sprintf("%s is recommended with some considerations", title)
	case score >= 0.4:
		return fmt.Sprintf("%s is feasible but has significant challenges", title)
	default:
		return fmt.Sprintf("%s is not recommended for this scenario", title)
	}
}

// DeflectionFeasibility handles POST /api/mitigation/deflection-feasibility.
func DeflectionFeasibility() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.CompareMethodsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("deflection_feasibility", start, false)
			fail(c, http.StatusBadRequest, "asteroid_data and time_to_impact_days are required")
			return
		}

		comparison, err := physics.CompareMethods(*req.AsteroidData, *req.TimeToImpactDays)
		if err != nil {
			slog.Error("feasibility comparison failed", "error", err)
			observe("deflection_feasibility", start, false)
			failErr(c, err)
			return
		}

		assessment := make(map[physics.Method]datatypes.MethodFeasibility, len(physics.Methods()))
		for _, method := range physics.Methods() {
			assessment[method] = assessMethodFeasibility(
				method, comparison.Scenarios[method], *req.TimeToImpactDays)
		}

		ranking := physics.Methods()
		sort.SliceStable(ranking, func(i, j int) bool {
			return assessment[ranking[i]].OverallFeasibilityScore >
				assessment[ranking[j]].OverallFeasibilityScore
		})

		observe("deflection_feasibility", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":                true,
			"feasibility_assessment": assessment,
			"feasibility_ranking":    ranking,
			"recommended_method":     ranking[0],
			"comparison_data":        comparison,
		})
	}
}

// Static mission planning tables, one per method.
var missionPhases = map[physics.Method][]datatypes.MissionPhase{
	physics.MethodKineticImpactor: {
		{Phase: "Mission Planning", DurationDays: 180, Description: "Design spacecraft, select target, plan trajectory"},
		{Phase: "Spacecraft Development", DurationDays: 365, Description: "Build and test kinetic impactor spacecraft"},
		{Phase: "Launch and Cruise", DurationDays: 730, Description: "Launch spacecraft and cruise to asteroid"},
		{Phase: "Impact", DurationDays: 1, Description: "Execute kinetic impact"},
		{Phase: "Verification", DurationDays: 30, Description: "Monitor deflection results"},
	},
	physics.MethodGravityTractor: {
		{Phase: "Mission Planning", DurationDays: 180, Description: "Design spacecraft, select target, plan trajectory"},
		{Phase: "Spacecraft Development", DurationDays: 730, Description: "Build and test gravity tractor spacecraft"},
		{Phase: "Launch and Cruise", DurationDays: 1095, Description: "Launch spacecraft and cruise to asteroid"},
		{Phase: "Tractor Operations", DurationDays: 1825, Description: "Maintain position and apply gravitational force"},
		{Phase: "Verification", DurationDays: 90, Description: "Monitor deflection results"},
	},
	physics.MethodNuclear: {
		{Phase: "Mission Planning", DurationDays: 90, Description: "Design mission, obtain approvals, plan trajectory"},
		{Phase: "Spacecraft Development", DurationDays: 180, Description: "Build and test nuclear deflection spacecraft"},
		{Phase: "Launch and Cruise", DurationDays: 365, Description: "Launch spacecraft and cruise to asteroid"},
		{Phase: "Detonation", DurationDays: 1, Description: "Execute nuclear detonation"},
		{Phase: "Verification", DurationDays: 30, Description: "Monitor deflection results"},
	},
}

var missionResources = map[physics.Method]datatypes.ResourceRequirements{
	physics.MethodKineticImpactor: {
		SpacecraftMassKg:      1000,
		EstimatedCostMillions: 500,
		LaunchVehicle:         "Falcon Heavy or equivalent",
		GroundCrew:            50,
		MissionDurationYears:  3.5,
	},
	physics.MethodGravityTractor: {
		SpacecraftMassKg:      10000,
		EstimatedCostMillions: 2000,
		LaunchVehicle:         "SLS or equivalent",
		GroundCrew:            100,
		MissionDurationYears:  8.0,
	},
	physics.MethodNuclear: {
		SpacecraftMassKg:      5000,
		EstimatedCostMillions: 1000,
		LaunchVehicle:         "SLS or equivalent",
		GroundCrew:            200,
		MissionDurationYears:  2.0,
	},
}

var missionTechnicalRisks = map[physics.Method][]string{
	physics.MethodKineticImpactor: {"Navigation accuracy", "Impact timing", "Spacecraft reliability"},
	physics.MethodGravityTractor:  {"Precision navigation", "Long-term spacecraft reliability", "Fuel management"},
	physics.MethodNuclear:         {"Nuclear device reliability", "Detonation timing", "Radiation effects"},
}

var missionCostRisks = map[physics.Method][]string{
	physics.MethodKineticImpactor: {"Standard mission cost risks"},
	physics.MethodGravityTractor:  {"Long mission duration costs", "Advanced technology costs"},
	physics.MethodNuclear:         {"High development costs", "Political approval costs", "International cooperation costs"},
}

var missionPoliticalRisks = map[physics.Method][]string{
	physics.MethodKineticImpactor: {"Standard international cooperation risks"},
	physics.MethodGravityTractor:  {"Standard international cooperation risks"},
	physics.MethodNuclear:         {"Nuclear weapon treaty concerns", "International approval required", "Public opposition"},
}

func scheduleRisks(timeToImpactDays float64, phases []datatypes.MissionPhase) []string {
	total := 0
	for _, phase := range phases {
		total += phase.DurationDays
	}
	switch {
	case float64(total) > timeToImpactDays:
		return []string{"Insufficient time for mission completion", "Critical path delays"}
	case float64(total) > timeToImpactDays*0.8:
		return []string{"Tight schedule with minimal margin", "Risk of delays"}
	default:
		return []string{"Adequate schedule margin available"}
	}
}

func buildMissionPlan(asteroid *physics.TargetAsteroid, method physics.Method, timeToImpactDays float64) datatypes.MissionPlan {
	phases := missionPhases[method]

	timeline := make(map[string]datatypes.PhaseWindow, len(phases))
	day := 0
	for _, phase := range phases {
		timeline[phase.Phase] = datatypes.PhaseWindow{
			StartDay:     day,
			EndDay:       day + phase.DurationDays,
			DurationDays: phase.DurationDays,
		}
		day += phase.DurationDays
	}

	return datatypes.MissionPlan{
		MissionOverview: datatypes.MissionOverview{
			DeflectionMethod:   method,
			TimeToImpactDays:   timeToImpactDays,
			AsteroidProperties: asteroid,
		},
		Phases:               phases,
		Timeline:             timeline,
		ResourceRequirements: missionResources[method],
		RiskAssessment: datatypes.MissionRisks{
			TechnicalRisks: missionTechnicalRisks[method],
			ScheduleRisks:  scheduleRisks(timeToImpactDays, phases),
			CostRisks:      missionCostRisks[method],
			PoliticalRisks: missionPoliticalRisks[method],
		},
		SuccessCriteria: datatypes.SuccessCriteria{
			Primary:   "Asteroid deflected to miss Earth by at least 1 Earth radius",
			Secondary: "Deflection achieved within 10% of predicted parameters",
			Tertiary:  "Mission completed within budget and schedule constraints",
		},
		ContingencyPlans: []string{
			"Backup deflection method ready if primary method fails",
			"Multiple spacecraft launches to increase success probability",
			"International cooperation for resource sharing",
			"Emergency response protocols for partial deflection",
		},
	}
}

// MissionPlanning handles POST /api/mitigation/mission-planning.
func MissionPlanning() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.MissionPlanningRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("mission_planning", start, false)
			fail(c, http.StatusBadRequest,
				"asteroid_data, deflection_method and time_to_impact_days are required")
			return
		}

		method, err := physics.ParseMethod(req.DeflectionMethod)
		if err != nil {
			observe("mission_planning", start, false)
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		plan := buildMissionPlan(req.AsteroidData, method, *req.TimeToImpactDays)

		observe("mission_planning", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"mission_plan": plan,
		})
	}
}
