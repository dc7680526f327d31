// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// ImpactScenarioRequest is the optional body of
// POST /api/asteroid/:id/impact-scenario.
type ImpactScenarioRequest struct {
	ImpactLat      *float64 `json:"impact_lat,omitempty"`
	ImpactLon      *float64 `json:"impact_lon,omitempty"`
	ImpactAngleDeg *float64 `json:"impact_angle_deg,omitempty"`
}

// SearchFilters echoes the applied search criteria back to the caller.
type SearchFilters struct {
	Name        string   `json:"name"`
	MinDiameter *float64 `json:"min_diameter"`
	MaxDiameter *float64 `json:"max_diameter"`
	Hazardous   *bool    `json:"hazardous"`
	MinVelocity *float64 `json:"min_velocity"`
	MaxVelocity *float64 `json:"max_velocity"`
}

// RangeStats is a min/max/avg triple over one catalog dimension.
type RangeStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// CatalogStats summarizes the asteroid catalog.
type CatalogStats struct {
	TotalCount          int        `json:"total_count"`
	DiameterStats       RangeStats `json:"diameter_stats"`
	VelocityStats       RangeStats `json:"velocity_stats"`
	HazardousCount      int        `json:"hazardous_count"`
	HazardousPercentage float64    `json:"hazardous_percentage"`
}
