// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// This file implements the impact simulation endpoints.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meteormadness/meteormadness/pkg/geoctx"
	"github.com/meteormadness/meteormadness/pkg/physics"
	"github.com/meteormadness/meteormadness/pkg/validation"
	"github.com/meteormadness/meteormadness/services/simulator/datatypes"
	"github.com/meteormadness/meteormadness/services/simulator/observability"
)

// defaultComparisonMetrics are compared when the caller does not name
// any.
var defaultComparisonMetrics = []string{
	"energy_tnt_tons",
	"crater_diameter_km",
	"seismic_magnitude",
	"severe_damage_radius_km",
	"risk_level",
}

const defaultAnalysisRadiusKm = 100.0

// SimulateImpact handles POST /api/impact/simulate.
func SimulateImpact() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.SimulateImpactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("simulate", start, false)
			fail(c, http.StatusBadRequest, "diameter_m and velocity_km_s are required")
			return
		}

		metrics, err := physics.ComputeImpactMetrics(req.Parameters())
		if err != nil {
			slog.Error("impact simulation failed", "error", err)
			observe("simulate", start, false)
			failErr(c, err)
			return
		}

		includeEnv := req.IncludeEnvironmental == nil || *req.IncludeEnvironmental
		var env *geoctx.EnvironmentalData
		if includeEnv && req.ImpactLat != nil && req.ImpactLon != nil {
			data := geoctx.GetEnvironmentalData(*req.ImpactLat, *req.ImpactLon)
			env = &data
		}

		observe("simulate", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":            true,
			"impact_metrics":     metrics,
			"environmental_data": env,
			"simulation_parameters": gin.H{
				"diameter_m":       req.DiameterM,
				"velocity_km_s":    req.VelocityKmS,
				"density_kg_m3":    req.DensityKgM3,
				"impact_angle_deg": req.ImpactAngleDeg,
				"impact_lat":       req.ImpactLat,
				"impact_lon":       req.ImpactLon,
			},
		})
	}
}

// runScenarios simulates each scenario independently and returns the
// per-scenario records in input order plus the aggregate summary.
func runScenarios(scenarios []datatypes.BatchScenario) ([]datatypes.BatchResult, datatypes.BatchSummary) {
	results := make([]datatypes.BatchResult, 0, len(scenarios))
	successful := 0

	for i := range scenarios {
		scenario := &scenarios[i]
		name := scenario.ScenarioName
		if name == "" {
			name = fmt.Sprintf("Scenario %d", i+1)
		}

		if err := scenario.Validate(); err != nil {
			results = append(results, datatypes.BatchResult{
				ScenarioIndex: i,
				ScenarioName:  name,
				Success:       false,
				Error:         err.Error(),
			})
			continue
		}

		metrics, err := physics.ComputeImpactMetrics(scenario.Parameters())
		if err != nil {
			results = append(results, datatypes.BatchResult{
				ScenarioIndex: i,
				ScenarioName:  name,
				Success:       false,
				Error:         err.Error(),
			})
			continue
		}

		successful++
		results = append(results, datatypes.BatchResult{
			ScenarioIndex:        i,
			ScenarioName:         name,
			Success:              true,
			ImpactMetrics:        metrics,
			SimulationParameters: scenario,
		})
	}

	summary := datatypes.BatchSummary{
		TotalScenarios:        len(scenarios),
		SuccessfulSimulations: successful,
		FailedSimulations:     len(scenarios) - successful,
	}
	if len(scenarios) > 0 {
		summary.SuccessRate = float64(successful) / float64(len(scenarios)) * 100
	}
	return results, summary
}

// BatchSimulateImpacts handles POST /api/impact/batch-simulate.
func BatchSimulateImpacts() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.BatchSimulateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("batch_simulate", start, false)
			fail(c, http.StatusBadRequest, "scenarios must be a non-empty array")
			return
		}

		observability.DefaultMetrics.RecordBatchSize(len(req.Scenarios))
		results, summary := runScenarios(req.Scenarios)

		observe("batch_simulate", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"summary": summary,
			"results": results,
		})
	}
}

// metricExtractors pulls a named comparison metric out of a metrics
// record. risk_level is the one non-numeric metric.
var metricExtractors = map[string]func(*physics.ImpactMetrics) any{
	"diameter_m":                func(m *physics.ImpactMetrics) any { return m.DiameterM },
	"mass_kg":                   func(m *physics.ImpactMetrics) any { return m.MassKg },
	"velocity_km_s":             func(m *physics.ImpactMetrics) any { return m.VelocityKmS },
	"kinetic_energy_j":          func(m *physics.ImpactMetrics) any { return m.KineticEnergyJ },
	"energy_tnt_tons":           func(m *physics.ImpactMetrics) any { return m.EnergyTNTTons },
	"crater_diameter_km":        func(m *physics.ImpactMetrics) any { return m.CraterDiameterKm },
	"crater_radius_km":          func(m *physics.ImpactMetrics) any { return m.CraterRadiusKm },
	"crater_depth_km":           func(m *physics.ImpactMetrics) any { return m.CraterDepthKm },
	"seismic_magnitude":         func(m *physics.ImpactMetrics) any { return m.SeismicMagnitude },
	"severe_damage_radius_km":   func(m *physics.ImpactMetrics) any { return m.SevereDamageRadiusKm },
	"moderate_damage_radius_km": func(m *physics.ImpactMetrics) any { return m.ModerateDamageRadiusKm },
	"light_damage_radius_km":    func(m *physics.ImpactMetrics) any { return m.LightDamageRadiusKm },
	"risk_level":                func(m *physics.ImpactMetrics) any { return string(m.RiskLevel) },
}

// riskSeverity orders risk levels so risk_level ranks by severity
// instead of alphabetically.
var riskSeverity = map[string]float64{
	"minimal":  0,
	"low":      1,
	"moderate": 2,
	"high":     3,
	"extreme":  4,
}

func metricRank(metric string, value any) float64 {
	if metric == "risk_level" {
		s, _ := value.(string)
		return riskSeverity[s]
	}
	f, _ := value.(float64)
	return f
}

// CompareImpacts handles POST /api/impact/compare.
func CompareImpacts() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.CompareImpactsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("compare", start, false)
			fail(c, http.StatusBadRequest, "scenarios array required in JSON body")
			return
		}

		metrics := req.ComparisonMetrics
		if len(metrics) == 0 {
			metrics = defaultComparisonMetrics
		}

		results, summary := runScenarios(req.Scenarios)
		var successful []datatypes.BatchResult
		for _, r := range results {
			if r.Success {
				successful = append(successful, r)
			}
		}
		if len(successful) < 2 {
			observe("compare", start, false)
			fail(c, http.StatusBadRequest, "At least 2 successful simulations required for comparison")
			return
		}

		matrix := make(map[string]map[string]any, len(metrics))
		rankings := make(map[string]datatypes.MetricRanking, len(metrics))

		for _, metric := range metrics {
			extract := metricExtractors[metric]
			row := make(map[string]any, len(successful))
			var ranked []datatypes.ScenarioValue
			for _, result := range successful {
				if extract == nil {
					row[result.ScenarioName] = nil
					continue
				}
				value := extract(result.ImpactMetrics)
				row[result.ScenarioName] = value
				ranked = append(ranked, datatypes.ScenarioValue{
					ScenarioName: result.ScenarioName,
					Value:        value,
				})
			}
			matrix[metric] = row

			if len(ranked) == 0 {
				continue
			}
			sort.SliceStable(ranked, func(i, j int) bool {
				return metricRank(metric, ranked[i].Value) > metricRank(metric, ranked[j].Value)
			})
			rankings[metric] = datatypes.MetricRanking{
				Worst:     &ranked[0],
				Best:      &ranked[len(ranked)-1],
				AllRanked: ranked,
			}
		}

		observe("compare", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"comparison_matrix": matrix,
			"rankings":          rankings,
			"summary":           summary,
			"scenarios":         successful,
		})
	}
}

// EnvironmentalAnalysis handles POST /api/impact/environmental-analysis.
func EnvironmentalAnalysis() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.EnvironmentalAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("environmental_analysis", start, false)
			fail(c, http.StatusBadRequest, "impact_lat and impact_lon are required")
			return
		}

		if err := validation.ValidateCoordinates(*req.ImpactLat, *req.ImpactLon); err != nil {
			observe("environmental_analysis", start, false)
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		radiusKm := defaultAnalysisRadiusKm
		if req.RadiusKm != nil {
			radiusKm = *req.RadiusKm
		}

		env := geoctx.GetEnvironmentalData(*req.ImpactLat, *req.ImpactLon)

		observe("environmental_analysis", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"location": datatypes.AnalysisLocation{
				Latitude:  *req.ImpactLat,
				Longitude: *req.ImpactLon,
				RadiusKm:  radiusKm,
			},
			"environmental_data": env,
		})
	}
}

// RiskAssessment handles POST /api/impact/risk-assessment.
func RiskAssessment() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var req datatypes.RiskAssessmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observe("risk_assessment", start, false)
			fail(c, http.StatusBadRequest, "diameter_m and velocity_km_s are required")
			return
		}

		metrics, err := physics.ComputeImpactMetrics(req.Parameters())
		if err != nil {
			slog.Error("risk assessment failed", "error", err)
			observe("risk_assessment", start, false)
			failErr(c, err)
			return
		}

		var env *geoctx.EnvironmentalData
		if req.ImpactLat != nil && req.ImpactLon != nil {
			data := geoctx.GetEnvironmentalData(*req.ImpactLat, *req.ImpactLon)
			env = &data
		}

		assessment := datatypes.RiskAssessment{
			OverallRiskLevel:  metrics.RiskLevel,
			EnergyRisk:        assessEnergyRisk(metrics.EnergyTNTTons),
			CraterRisk:        assessCraterRisk(metrics.CraterDiameterKm),
			SeismicRisk:       assessSeismicRisk(metrics.SeismicMagnitude),
			TsunamiRisk:       assessTsunamiRisk(metrics.TsunamiPotential),
			AtmosphericRisk:   assessAtmosphericRisk(metrics.AtmosphericEffects),
			EnvironmentalRisk: assessEnvironmentalRisk(env),
			Recommendations:   riskRecommendations(metrics, env),
		}

		observe("risk_assessment", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":            true,
			"impact_metrics":     metrics,
			"environmental_data": env,
			"risk_assessment":    assessment,
		})
	}
}

func assessEnergyRisk(energyTNTTons float64) datatypes.RiskDimension {
	switch {
	case energyTNTTons > 10000:
		return datatypes.RiskDimension{Level: "extreme", Description: "Global catastrophic event"}
	case energyTNTTons > 1000:
		return datatypes.RiskDimension{Level: "high", Description: "Regional catastrophic event"}
	case energyTNTTons > 100:
		return datatypes.RiskDimension{Level: "moderate", Description: "Regional significant event"}
	case energyTNTTons > 10:
		return datatypes.RiskDimension{Level: "low", Description: "Local significant event"}
	default:
		return datatypes.RiskDimension{Level: "minimal", Description: "Local minor event"}
	}
}

func assessCraterRisk(craterDiameterKm float64) datatypes.RiskDimension {
	switch {
	case craterDiameterKm > 10:
		return datatypes.RiskDimension{Level: "extreme", Description: "Massive crater formation"}
	case craterDiameterKm > 3:
		return datatypes.RiskDimension{Level: "high", Description: "Large crater formation"}
	case craterDiameterKm > 1:
		return datatypes.RiskDimension{Level: "moderate", Description: "Moderate crater formation"}
	case craterDiameterKm > 0.3:
		return datatypes.RiskDimension{Level: "low", Description: "Small crater formation"}
	default:
		return datatypes.RiskDimension{Level: "minimal", Description: "Minimal crater formation"}
	}
}

func assessSeismicRisk(magnitude float64) datatypes.RiskDimension {
	switch {
	case magnitude > 8:
		return datatypes.RiskDimension{Level: "extreme", Description: "Major earthquake equivalent"}
	case magnitude > 7:
		return datatypes.RiskDimension{Level: "high", Description: "Strong earthquake equivalent"}
	case magnitude > 6:
		return datatypes.RiskDimension{Level: "moderate", Description: "Moderate earthquake equivalent"}
	case magnitude > 5:
		return datatypes.RiskDimension{Level: "low", Description: "Light earthquake equivalent"}
	default:
		return datatypes.RiskDimension{Level: "minimal", Description: "Minor seismic activity"}
	}
}

func assessTsunamiRisk(tsunami physics.TsunamiPotential) datatypes.RiskDimension {
	switch tsunami.Category {
	case "high":
		return datatypes.RiskDimension{Level: "high", Description: "High tsunami risk with significant coastal impact"}
	case "moderate":
		return datatypes.RiskDimension{Level: "moderate", Description: "Moderate tsunami risk"}
	default:
		return datatypes.RiskDimension{Level: "low", Description: "Low tsunami risk"}
	}
}

func assessAtmosphericRisk(effects physics.AtmosphericEffects) datatypes.RiskDimension {
	switch effects.Category {
	case "severe":
		return datatypes.RiskDimension{Level: "high", Description: "Severe atmospheric effects including fireball and airblast"}
	case "moderate":
		return datatypes.RiskDimension{Level: "moderate", Description: "Moderate atmospheric effects"}
	default:
		return datatypes.RiskDimension{Level: "low", Description: "Minor atmospheric effects"}
	}
}

func assessEnvironmentalRisk(env *geoctx.EnvironmentalData) datatypes.RiskDimension {
	if env == nil {
		return datatypes.RiskDimension{Level: "unknown", Description: "Environmental data not available"}
	}
	switch env.Elevation.PopulationDensity {
	case "high":
		return datatypes.RiskDimension{Level: "high", Description: "High population density area"}
	case "medium":
		return datatypes.RiskDimension{Level: "moderate", Description: "Medium population density area"}
	default:
		return datatypes.RiskDimension{Level: "low", Description: "Low population density area"}
	}
}

func riskRecommendations(metrics *physics.ImpactMetrics, env *geoctx.EnvironmentalData) []string {
	var recs []string

	if metrics.EnergyTNTTons > 1000 {
		recs = append(recs,
			"Immediate emergency response and international coordination required",
			"Large-scale evacuation planning necessary")
	} else if metrics.EnergyTNTTons > 100 {
		recs = append(recs,
			"Regional emergency response planning recommended",
			"Monitor local authorities for evacuation orders")
	}

	if env != nil {
		if env.Elevation.PopulationDensity == "high" {
			recs = append(recs,
				"Urban evacuation protocols should be activated",
				"Emergency shelter planning is critical")
		}
		if env.Elevation.WaterProximityKm < 50 {
			recs = append(recs,
				"Coastal evacuation planning recommended",
				"Tsunami warning systems should be activated")
		}
	}

	if metrics.SeismicMagnitude > 7 {
		recs = append(recs,
			"Seismic monitoring should be enhanced",
			"Structural reinforcement of critical infrastructure recommended")
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Monitor situation and prepare for local emergency response",
			"Stay informed through official channels")
	}
	return recs
}
