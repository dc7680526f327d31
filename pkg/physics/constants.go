// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package physics

// Physical constants shared by the impact and deflection models.
//
// These values are part of the wire contract: clients compare results
// against EarthRadiusKm, so changing them is a breaking change.
const (
	// TNTJoules is the energy of one ton of TNT in Joules.
	TNTJoules = 4.184e9

	// KilotonJoules is the energy of one kiloton of TNT in Joules.
	KilotonJoules = 4.184e12

	// EarthRadiusKm is the mean Earth radius used as the miss-distance
	// threshold for a successful deflection.
	EarthRadiusKm = 6371.0

	// EarthMassKg is the mass of Earth in kilograms.
	EarthMassKg = 5.972e24

	// GravitationalConstant is G in m³/(kg·s²).
	GravitationalConstant = 6.674e-11

	// DefaultDensityKgM3 is the density assumed for a stony asteroid
	// when none is supplied.
	DefaultDensityKgM3 = 3000.0

	// DefaultImpactAngleDeg is the impact angle assumed when none is
	// supplied (statistically the most likely entry angle).
	DefaultImpactAngleDeg = 45.0

	// secondsPerDay converts time_to_impact_days into seconds.
	secondsPerDay = 24.0 * 3600.0
)
