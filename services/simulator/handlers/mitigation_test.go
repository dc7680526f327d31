// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// Tests for the deflection and mitigation handlers

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteormadness/meteormadness/pkg/physics"
)

func mitigationRouter() *gin.Engine {
	router := gin.New()
	router.POST("/deflect", Deflect())
	router.POST("/compare-methods", CompareDeflectionMethods())
	router.POST("/optimize", OptimizeDeflection())
	router.POST("/simulate-mitigation", SimulateMitigation())
	router.POST("/deflection-feasibility", DeflectionFeasibility())
	router.POST("/mission-planning", MissionPlanning())
	return router
}

func TestDeflect_KineticDefaults(t *testing.T) {
	router := mitigationRouter()

	w, resp := performRequest(t, router, "POST", "/deflect", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "kinetic_impactor",
		"time_to_impact_days": 365
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	scenario, ok := resp["deflection_scenario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "kinetic_impactor", scenario["deflection_method"])
	assert.InDelta(t, 1e-6, scenario["delta_v_ms"], 1e-12)
	assert.InDelta(t, 0.031536, scenario["deflection_distance_km"], 1e-9)
	assert.Equal(t, false, scenario["deflection_successful"])

	echo, ok := resp["input_parameters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "kinetic_impactor", echo["deflection_method"])
	assert.InDelta(t, 365.0, echo["time_to_impact_days"], 1e-9)
}

func TestDeflect_UnknownMethod(t *testing.T) {
	router := mitigationRouter()

	w, resp := performRequest(t, router, "POST", "/deflect", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "laser_ablation",
		"time_to_impact_days": 365
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestDeflect_MissingTimeToImpact(t *testing.T) {
	router := mitigationRouter()

	w, _ := performRequest(t, router, "POST", "/deflect", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "kinetic_impactor"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeflect_NegativeTimeToImpact(t *testing.T) {
	router := mitigationRouter()

	w, resp := performRequest(t, router, "POST", "/deflect", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "nuclear",
		"time_to_impact_days": -5
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["error"], "time_to_impact_days")
}

func TestCompareMethods_RecommendsNuclear(t *testing.T) {
	router := mitigationRouter()

	w, resp := performRequest(t, router, "POST", "/compare-methods", `{
		"asteroid_data": {"mass_kg": 1e12},
		"time_to_impact_days": 365
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	comparison, ok := resp["comparison"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "nuclear", comparison["recommended_method"])

	ranking, ok := comparison["method_ranking"].([]any)
	require.True(t, ok)
	require.Len(t, ranking, 3)
	first := ranking[0].(map[string]any)
	assert.Equal(t, "nuclear", first["method"])
}

func TestOptimize_NuclearLowTarget(t *testing.T) {
	router := mitigationRouter()

	w, resp := performRequest(t, router, "POST", "/optimize", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "nuclear",
		"time_to_impact_days": 365,
		"target_success_probability": 0.1
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	result, ok := resp["optimization_result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, result["optimization_successful"])
	assert.InDelta(t, 0.1, result["target_success_probability"], 1e-9)
	assert.GreaterOrEqual(t,
		result["achieved_success_probability"].(float64),
		result["target_success_probability"].(float64))
}

func TestOptimize_TargetOutOfRange(t *testing.T) {
	router := mitigationRouter()

	w, resp := performRequest(t, router, "POST", "/optimize", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "nuclear",
		"time_to_impact_days": 365,
		"target_success_probability": 1.5
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["error"], "target_success_probability")
}

func TestSimulateMitigation_FullDeflection(t *testing.T) {
	router := mitigationRouter()

	original, err := physics.ComputeImpactMetrics(physics.AsteroidParameters{
		DiameterM:   100,
		VelocityKmS: 17,
	})
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"original_impact_metrics": original,
		"delta_v_ms":              0.5,
		"time_to_impact_days":     365,
	})
	require.NoError(t, err)

	w, resp := performRequest(t, router, "POST", "/simulate-mitigation", string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	scenario, ok := resp["mitigation_scenario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, scenario["deflection_successful"])

	mitigated := scenario["mitigated_metrics"].(map[string]any)
	assert.InDelta(t, 1.0, mitigated["impact_probability_reduction"], 1e-9)
	assert.InDelta(t, original.EnergyTNTTons, mitigated["energy_tnt_tons"], 1e-6)
}

func TestSimulateMitigation_MissingMetrics(t *testing.T) {
	router := mitigationRouter()

	w, _ := performRequest(t, router, "POST", "/simulate-mitigation",
		`{"delta_v_ms": 0.5, "time_to_impact_days": 365}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeflectionFeasibility_LongWarning(t *testing.T) {
	router := mitigationRouter()

	w, resp := performRequest(t, router, "POST", "/deflection-feasibility", `{
		"asteroid_data": {"mass_kg": 1e12},
		"time_to_impact_days": 3650
	}`)

	assert.Equal(t, http.StatusOK, w.Code)

	assessment, ok := resp["feasibility_assessment"].(map[string]any)
	require.True(t, ok)
	require.Len(t, assessment, 3)

	// With a decade of warning both slow methods saturate their success
	// probability; the gravity tractor's low risk wins the ranking.
	tractor := assessment["gravity_tractor"].(map[string]any)
	factors := tractor["feasibility_factors"].(map[string]any)
	assert.InDelta(t, 0.4, factors["time_requirements"], 1e-9)
	assert.InDelta(t, 1.0, factors["success_probability"], 1e-9)
	assert.InDelta(t, 0.685, tractor["overall_feasibility_score"], 1e-9)
	assert.Equal(t, "Gravity Tractor is recommended with some considerations",
		tractor["recommendation"])

	assert.Equal(t, "gravity_tractor", resp["recommended_method"])
	ranking := resp["feasibility_ranking"].([]any)
	assert.Equal(t, "gravity_tractor", ranking[0])
}

func TestDeflectionFeasibility_ShortWarningPenalty(t *testing.T) {
	router := mitigationRouter()

	_, resp := performRequest(t, router, "POST", "/deflection-feasibility", `{
		"asteroid_data": {"mass_kg": 1e12},
		"time_to_impact_days": 100
	}`)

	assessment := resp["feasibility_assessment"].(map[string]any)

	tractor := assessment["gravity_tractor"].(map[string]any)
	tractorFactors := tractor["feasibility_factors"].(map[string]any)
	assert.InDelta(t, 0.4*0.3, tractorFactors["time_requirements"], 1e-9)

	kinetic := assessment["kinetic_impactor"].(map[string]any)
	kineticFactors := kinetic["feasibility_factors"].(map[string]any)
	assert.InDelta(t, 0.8*0.7, kineticFactors["time_requirements"], 1e-9)

	nuclear := assessment["nuclear"].(map[string]any)
	nuclearFactors := nuclear["feasibility_factors"].(map[string]any)
	assert.InDelta(t, 0.7, nuclearFactors["time_requirements"], 1e-9)
}

func TestMissionPlanning_Kinetic(t *testing.T) {
	router := mitigationRouter()

	w, resp := performRequest(t, router, "POST", "/mission-planning", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "kinetic_impactor",
		"time_to_impact_days": 3650
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	plan, ok := resp["mission_plan"].(map[string]any)
	require.True(t, ok)

	phases := plan["phases"].([]any)
	require.Len(t, phases, 5)
	first := phases[0].(map[string]any)
	assert.Equal(t, "Mission Planning", first["phase"])
	assert.EqualValues(t, 180, first["duration_days"])

	timeline := plan["timeline"].(map[string]any)
	impact := timeline["Impact"].(map[string]any)
	assert.EqualValues(t, 1275, impact["start_day"])
	assert.EqualValues(t, 1276, impact["end_day"])

	resources := plan["resource_requirements"].(map[string]any)
	assert.InDelta(t, 500.0, resources["estimated_cost_millions"], 1e-9)
	assert.Equal(t, "Falcon Heavy or equivalent", resources["launch_vehicle"])

	risks := plan["risk_assessment"].(map[string]any)
	schedule := risks["schedule_risks"].([]any)
	assert.Contains(t, schedule, "Adequate schedule margin available")
}

func TestMissionPlanning_NuclearTightSchedule(t *testing.T) {
	router := mitigationRouter()

	_, resp := performRequest(t, router, "POST", "/mission-planning", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "nuclear",
		"time_to_impact_days": 500
	}`)

	plan := resp["mission_plan"].(map[string]any)
	risks := plan["risk_assessment"].(map[string]any)

	// Nuclear phases total 667 days against 500 days of warning.
	schedule := risks["schedule_risks"].([]any)
	assert.Contains(t, schedule, "Insufficient time for mission completion")

	political := risks["political_risks"].([]any)
	assert.Contains(t, political, "Nuclear weapon treaty concerns")
}

func TestMissionPlanning_UnknownMethod(t *testing.T) {
	router := mitigationRouter()

	w, _ := performRequest(t, router, "POST", "/mission-planning", `{
		"asteroid_data": {"mass_kg": 1e12},
		"deflection_method": "solar_sail",
		"time_to_impact_days": 365
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
