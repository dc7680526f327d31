// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes defines the wire records for the simulator service.
//
// Request structs carry gin binding tags; pointer fields distinguish
// "absent" from a legitimate zero so the physics core sees exactly what
// the caller sent. Range checks live in the core, which reports typed
// errors the handlers translate to 400s.
package datatypes

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meteormadness/meteormadness/pkg/physics"
)

// scenarioValidate is the validator instance shared by the datatypes in
// this package. Field errors report json tag names so they can go
// straight into response bodies.
var scenarioValidate *validator.Validate

func init() {
	scenarioValidate = validator.New()
	scenarioValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// requiredFieldsError turns validator field errors into the message
// format the API returns, e.g. "diameter_m and velocity_km_s are
// required".
func requiredFieldsError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	if len(fields) == 1 {
		return fmt.Errorf("%s is required", fields[0])
	}
	return fmt.Errorf("%s are required", strings.Join(fields, " and "))
}

// SimulateImpactRequest is the body of POST /api/impact/simulate.
type SimulateImpactRequest struct {
	DiameterM            *float64 `json:"diameter_m" binding:"required"`
	VelocityKmS          *float64 `json:"velocity_km_s" binding:"required"`
	DensityKgM3          *float64 `json:"density_kg_m3"`
	ImpactAngleDeg       *float64 `json:"impact_angle_deg"`
	ImpactLat            *float64 `json:"impact_lat"`
	ImpactLon            *float64 `json:"impact_lon"`
	IncludeEnvironmental *bool    `json:"include_environmental"`
}

// Parameters converts the request into the physics core's input record.
func (r *SimulateImpactRequest) Parameters() physics.AsteroidParameters {
	return physics.AsteroidParameters{
		DiameterM:      deref(r.DiameterM),
		VelocityKmS:    deref(r.VelocityKmS),
		DensityKgM3:    r.DensityKgM3,
		ImpactAngleDeg: r.ImpactAngleDeg,
		ImpactLat:      r.ImpactLat,
		ImpactLon:      r.ImpactLon,
	}
}

// BatchScenario is one entry of a batch or comparison request. Required
// fields are checked per scenario by the handler so one bad entry fails
// alone instead of failing the whole request.
type BatchScenario struct {
	ScenarioName   string   `json:"scenario_name,omitempty"`
	DiameterM      *float64 `json:"diameter_m,omitempty" validate:"required"`
	VelocityKmS    *float64 `json:"velocity_km_s,omitempty" validate:"required"`
	DensityKgM3    *float64 `json:"density_kg_m3,omitempty"`
	ImpactAngleDeg *float64 `json:"impact_angle_deg,omitempty"`
	ImpactLat      *float64 `json:"impact_lat,omitempty"`
	ImpactLon      *float64 `json:"impact_lon,omitempty"`
}

// Validate checks the scenario's required fields. The handler calls it
// per entry so one bad scenario fails alone.
func (s *BatchScenario) Validate() error {
	if err := scenarioValidate.Struct(s); err != nil {
		return requiredFieldsError(err)
	}
	return nil
}

// Parameters converts the scenario into the physics core's input record.
func (s *BatchScenario) Parameters() physics.AsteroidParameters {
	return physics.AsteroidParameters{
		DiameterM:      deref(s.DiameterM),
		VelocityKmS:    deref(s.VelocityKmS),
		DensityKgM3:    s.DensityKgM3,
		ImpactAngleDeg: s.ImpactAngleDeg,
		ImpactLat:      s.ImpactLat,
		ImpactLon:      s.ImpactLon,
	}
}

// BatchSimulateRequest is the body of POST /api/impact/batch-simulate.
type BatchSimulateRequest struct {
	Scenarios []BatchScenario `json:"scenarios" binding:"required,min=1"`
}

// BatchResult is the per-scenario record of a batch response, in input
// order.
type BatchResult struct {
	ScenarioIndex        int                    `json:"scenario_index"`
	ScenarioName         string                 `json:"scenario_name"`
	Success              bool                   `json:"success"`
	ImpactMetrics        *physics.ImpactMetrics `json:"impact_metrics,omitempty"`
	SimulationParameters *BatchScenario         `json:"simulation_parameters,omitempty"`
	Error                string                 `json:"error,omitempty"`
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	TotalScenarios        int     `json:"total_scenarios"`
	SuccessfulSimulations int     `json:"successful_simulations"`
	FailedSimulations     int     `json:"failed_simulations"`
	SuccessRate           float64 `json:"success_rate"`
}

// CompareImpactsRequest is the body of POST /api/impact/compare.
type CompareImpactsRequest struct {
	Scenarios         []BatchScenario `json:"scenarios" binding:"required,min=1"`
	ComparisonMetrics []string        `json:"comparison_metrics,omitempty"`
}

// ScenarioValue is one scenario's value for a comparison metric.
// Value is a float64 for numeric metrics and a string for risk_level.
type ScenarioValue struct {
	ScenarioName string `json:"scenario_name"`
	Value        any    `json:"value"`
}

// MetricRanking orders scenarios for one metric, worst (largest) first.
type MetricRanking struct {
	Worst     *ScenarioValue  `json:"worst"`
	Best      *ScenarioValue  `json:"best"`
	AllRanked []ScenarioValue `json:"all_ranked"`
}

// EnvironmentalAnalysisRequest is the body of
// POST /api/impact/environmental-analysis.
type EnvironmentalAnalysisRequest struct {
	ImpactLat *float64 `json:"impact_lat" binding:"required"`
	ImpactLon *float64 `json:"impact_lon" binding:"required"`
	RadiusKm  *float64 `json:"radius_km"`
}

// AnalysisLocation echoes the analyzed location back to the caller.
type AnalysisLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// RiskAssessmentRequest is the body of POST /api/impact/risk-assessment.
type RiskAssessmentRequest struct {
	DiameterM      *float64 `json:"diameter_m" binding:"required"`
	VelocityKmS    *float64 `json:"velocity_km_s" binding:"required"`
	DensityKgM3    *float64 `json:"density_kg_m3"`
	ImpactAngleDeg *float64 `json:"impact_angle_deg"`
	ImpactLat      *float64 `json:"impact_lat"`
	ImpactLon      *float64 `json:"impact_lon"`
}

// Parameters converts the request into the physics core's input record.
func (r *RiskAssessmentRequest) Parameters() physics.AsteroidParameters {
	return physics.AsteroidParameters{
		DiameterM:      deref(r.DiameterM),
		VelocityKmS:    deref(r.VelocityKmS),
		DensityKgM3:    r.DensityKgM3,
		ImpactAngleDeg: r.ImpactAngleDeg,
		ImpactLat:      r.ImpactLat,
		ImpactLon:      r.ImpactLon,
	}
}

// RiskDimension is one axis of a risk assessment.
type RiskDimension struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// RiskAssessment is the per-dimension breakdown returned by
// POST /api/impact/risk-assessment.
type RiskAssessment struct {
	OverallRiskLevel  physics.RiskLevel `json:"overall_risk_level"`
	EnergyRisk        RiskDimension     `json:"energy_risk"`
	CraterRisk        RiskDimension     `json:"crater_risk"`
	SeismicRisk       RiskDimension     `json:"seismic_risk"`
	TsunamiRisk       RiskDimension     `json:"tsunami_risk"`
	AtmosphericRisk   RiskDimension     `json:"atmospheric_risk"`
	EnvironmentalRisk RiskDimension     `json:"environmental_risk"`
	Recommendations   []string          `json:"recommendations"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
