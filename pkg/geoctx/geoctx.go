// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package geoctx supplies environmental context for an impact
// coordinate: terrain, seismic setting, geology, and derived risk
// factors.
//
// The lookups are synthetic latitude/longitude band rules standing in
// for real elevation, fault and geology datasets. They are deterministic
// and never fail, so a simulation can always attach context when
// coordinates are present.
package geoctx

import "math"

// Elevation describes terrain and surface attributes around a
// coordinate.
type Elevation struct {
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	ElevationM         float64  `json:"elevation_m"`
	TerrainType        string   `json:"terrain_type"`
	GeologicalFeatures []string `json:"geological_features"`
	WaterProximityKm   float64  `json:"water_proximity_km"`
	PopulationDensity  string   `json:"population_density"`
	InfrastructureRisk string   `json:"infrastructure_risk"`
}

// Earthquake is one historical event near a coordinate.
type Earthquake struct {
	Magnitude  float64 `json:"magnitude"`
	Year       int     `json:"year"`
	DistanceKm float64 `json:"distance_km"`
}

// Seismic describes the seismic setting around a coordinate.
type Seismic struct {
	Latitude                   float64      `json:"latitude"`
	Longitude                  float64      `json:"longitude"`
	SeismicZone                string       `json:"seismic_zone"`
	FaultProximityKm           float64      `json:"fault_proximity_km"`
	HistoricalEarthquakes      []Earthquake `json:"historical_earthquakes"`
	SeismicAmplificationFactor float64      `json:"seismic_amplification_factor"`
	LiquefactionPotential      string       `json:"liquefaction_potential"`
}

// Geology describes rock type, age and subsurface attributes.
type Geology struct {
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	RockType           string   `json:"rock_type"`
	GeologicalAge      string   `json:"geological_age"`
	StructuralFeatures []string `json:"structural_features"`
	MineralResources   []string `json:"mineral_resources"`
	GroundwaterDepthM  float64  `json:"groundwater_depth_m"`
}

// RiskFactors aggregates categorical risk dimensions for a location.
type RiskFactors struct {
	PopulationRisk     string `json:"population_risk"`
	InfrastructureRisk string `json:"infrastructure_risk"`
	EnvironmentalRisk  string `json:"environmental_risk"`
	EconomicRisk       string `json:"economic_risk"`
}

// EnvironmentalData is the combined context record attached to impact
// simulations.
type EnvironmentalData struct {
	Elevation                Elevation   `json:"elevation"`
	Seismic                  Seismic     `json:"seismic"`
	Geological               Geology     `json:"geological"`
	ImpactRiskFactors        RiskFactors `json:"impact_risk_factors"`
	MitigationConsiderations []string    `json:"mitigation_considerations"`
}

// GetElevation returns terrain attributes for a coordinate.
func GetElevation(lat, lon float64) Elevation {
	return Elevation{
		Latitude:           lat,
		Longitude:          lon,
		ElevationM:         estimateElevation(lat),
		TerrainType:        classifyTerrain(lat),
		GeologicalFeatures: geologicalFeatures(lat, lon),
		WaterProximityKm:   waterProximity(lat),
		PopulationDensity:  populationDensity(lat, lon),
		InfrastructureRisk: infrastructureRisk(lat),
	}
}

// GetSeismic returns the seismic setting for a coordinate.
func GetSeismic(lat, lon float64) Seismic {
	return Seismic{
		Latitude:                   lat,
		Longitude:                  lon,
		SeismicZone:                classifySeismicZone(lat, lon),
		FaultProximityKm:           faultProximity(lon),
		HistoricalEarthquakes:      historicalEarthquakes(lon),
		SeismicAmplificationFactor: seismicAmplification(lon),
		LiquefactionPotential:      liquefactionPotential(lat),
	}
}

// GetGeology returns geological attributes for a coordinate.
func GetGeology(lat, lon float64) Geology {
	return Geology{
		Latitude:           lat,
		Longitude:          lon,
		RockType:           classifyRockType(lat),
		GeologicalAge:      geologicalAge(lat),
		StructuralFeatures: structuralFeatures(lat, lon),
		MineralResources:   mineralResources(lat, lon),
		GroundwaterDepthM:  groundwaterDepth(lat),
	}
}

// GetEnvironmentalData combines elevation, seismic and geological
// context with derived risk factors and mitigation considerations.
func GetEnvironmentalData(lat, lon float64) EnvironmentalData {
	return EnvironmentalData{
		Elevation:  GetElevation(lat, lon),
		Seismic:    GetSeismic(lat, lon),
		Geological: GetGeology(lat, lon),
		ImpactRiskFactors: RiskFactors{
			PopulationRisk:     populationDensity(lat, lon),
			InfrastructureRisk: infrastructureRisk(lat),
			EnvironmentalRisk:  environmentalRisk(lat),
			EconomicRisk:       economicRisk(lat, lon),
		},
		MitigationConsiderations: mitigationConsiderations(lat, lon),
	}
}

func estimateElevation(lat float64) float64 {
	switch {
	case math.Abs(lat) > 60: // polar
		return 2000.0
	case math.Abs(lat) > 30: // mid-latitudes
		return 500.0
	default: // tropics
		return 100.0
	}
}

func classifyTerrain(lat float64) string {
	switch {
	case math.Abs(lat) > 60:
		return "polar"
	case math.Abs(lat) > 30:
		return "temperate"
	case math.Abs(lat) > 10:
		return "tropical"
	default:
		return "equatorial"
	}
}

func geologicalFeatures(lat, lon float64) []string {
	var features []string
	if math.Abs(lat) > 45 {
		features = append(features, "glacial_deposits")
	}
	if math.Abs(lon) > 120 {
		features = append(features, "mountainous_terrain")
	}
	if math.Abs(lat) < 30 {
		features = append(features, "coastal_plains")
	}
	return features
}

func waterProximity(lat float64) float64 {
	if math.Abs(lat) < 30 {
		return 25.0
	}
	return 100.0
}

func populationDensity(lat, lon float64) string {
	switch {
	case math.Abs(lat) < 30 && math.Abs(lon) < 60:
		return "high"
	case math.Abs(lat) < 45:
		return "medium"
	default:
		return "low"
	}
}

func infrastructureRisk(lat float64) string {
	if math.Abs(lat) < 30 {
		return "high"
	}
	return "medium"
}

func classifySeismicZone(lat, lon float64) string {
	switch {
	case math.Abs(lon) > 120: // Pacific Ring of Fire
		return "high_seismic"
	case math.Abs(lat) > 45:
		return "moderate_seismic"
	default:
		return "low_seismic"
	}
}

func faultProximity(lon float64) float64 {
	if math.Abs(lon) > 120 {
		return 50.0
	}
	return 200.0
}

func historicalEarthquakes(lon float64) []Earthquake {
	if math.Abs(lon) > 120 {
		return []Earthquake{
			{Magnitude: 7.2, Year: 2011, DistanceKm: 25.0},
			{Magnitude: 6.8, Year: 2015, DistanceKm: 45.0},
		}
	}
	return nil
}

func seismicAmplification(lon float64) float64 {
	if math.Abs(lon) > 120 {
		return 1.5
	}
	return 1.0
}

func liquefactionPotential(lat float64) string {
	if math.Abs(lat) < 30 {
		return "high"
	}
	return "low"
}

func classifyRockType(lat float64) string {
	switch {
	case math.Abs(lat) > 45:
		return "igneous"
	case math.Abs(lat) > 30:
		return "sedimentary"
	default:
		return "metamorphic"
	}
}

func geologicalAge(lat float64) string {
	switch {
	case math.Abs(lat) > 45:
		return "precambrian"
	case math.Abs(lat) > 30:
		return "paleozoic"
	default:
		return "cenozoic"
	}
}

func structuralFeatures(lat, lon float64) []string {
	var features []string
	if math.Abs(lon) > 120 {
		features = append(features, "fault_systems")
	}
	if math.Abs(lat) > 45 {
		features = append(features, "mountain_ranges")
	}
	return features
}

func mineralResources(lat, lon float64) []string {
	var resources []string
	if math.Abs(lat) > 45 {
		resources = append(resources, "metallic_ores")
	}
	if math.Abs(lon) > 120 {
		resources = append(resources, "volcanic_minerals")
	}
	return resources
}

func groundwaterDepth(lat float64) float64 {
	if math.Abs(lat) < 30 {
		return 10.0
	}
	return 50.0
}

func environmentalRisk(lat float64) string {
	if math.Abs(lat) < 30 {
		return "high"
	}
	return "medium"
}

func economicRisk(lat, lon float64) string {
	if math.Abs(lat) < 30 && math.Abs(lon) < 60 {
		return "high"
	}
	return "medium"
}

func mitigationConsiderations(lat, lon float64) []string {
	var considerations []string
	if math.Abs(lat) < 30 {
		considerations = append(considerations,
			"coastal_evacuation_planning",
			"tsunami_warning_systems")
	}
	if populationDensity(lat, lon) == "high" {
		considerations = append(considerations,
			"urban_evacuation_protocols",
			"emergency_shelter_planning")
	}
	if classifySeismicZone(lat, lon) == "high_seismic" {
		considerations = append(considerations,
			"seismic_monitoring_enhancement",
			"structural_reinforcement")
	}
	return considerations
}
