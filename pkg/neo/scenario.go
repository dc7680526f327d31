// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package neo

import (
	"math"

	"github.com/meteormadness/meteormadness/pkg/physics"
)

// ImpactScenario is a catalog record rendered as simulation input,
// annotated with the asteroid's identity.
type ImpactScenario struct {
	DiameterM              float64  `json:"diameter_m"`
	VelocityKmS            float64  `json:"velocity_km_s"`
	DensityKgM3            float64  `json:"density_kg_m3"`
	ImpactAngleDeg         float64  `json:"impact_angle_deg"`
	ImpactLat              *float64 `json:"impact_lat,omitempty"`
	ImpactLon              *float64 `json:"impact_lon,omitempty"`
	AsteroidName           string   `json:"asteroid_name"`
	AsteroidID             string   `json:"asteroid_id"`
	IsPotentiallyHazardous bool     `json:"is_potentially_hazardous"`
}

// BuildImpactScenario derives simulation parameters from a catalog
// record. Diameter falls back to a rough absolute-magnitude estimate
// (10^(3.1236 - 0.5*H)) and then to 100 m; velocity falls back to the
// 17 km/s typical impact velocity.
func BuildImpactScenario(asteroid *Asteroid, impactLat, impactLon *float64) ImpactScenario {
	diameterM := 0.0
	switch {
	case asteroid.DiameterAvgM != nil:
		diameterM = *asteroid.DiameterAvgM
	case asteroid.AbsoluteMagnitude != nil:
		diameterM = math.Pow(10, 3.1236-0.5**asteroid.AbsoluteMagnitude)
	}
	if diameterM == 0 {
		diameterM = 100.0
	}

	velocityKmS := 17.0
	if asteroid.VelocityKmS != nil {
		velocityKmS = *asteroid.VelocityKmS
	}

	densityKgM3 := asteroid.DensityKgM3
	if densityKgM3 == 0 {
		densityKgM3 = physics.DefaultDensityKgM3
	}

	return ImpactScenario{
		DiameterM:              diameterM,
		VelocityKmS:            velocityKmS,
		DensityKgM3:            densityKgM3,
		ImpactAngleDeg:         physics.DefaultImpactAngleDeg,
		ImpactLat:              impactLat,
		ImpactLon:              impactLon,
		AsteroidName:           asteroid.Name,
		AsteroidID:             asteroid.ID,
		IsPotentiallyHazardous: asteroid.IsPotentiallyHazardous,
	}
}

// Parameters converts the scenario into the physics core's input record.
func (s ImpactScenario) Parameters() physics.AsteroidParameters {
	density := s.DensityKgM3
	angle := s.ImpactAngleDeg
	return physics.AsteroidParameters{
		DiameterM:      s.DiameterM,
		VelocityKmS:    s.VelocityKmS,
		DensityKgM3:    &density,
		ImpactAngleDeg: &angle,
		ImpactLat:      s.ImpactLat,
		ImpactLon:      s.ImpactLon,
	}
}
