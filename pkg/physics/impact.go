// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package physics implements the deterministic numeric core of the Meteor
// Madness backend: impact-consequence estimation, the three deflection
// models, method comparison, bounded parameter optimization, and
// post-deflection mitigation scaling.
//
// Every function in this package is a pure, synchronous function of its
// inputs. Nothing here does I/O, retains state, or blocks; callers may run
// any number of computations concurrently.
//
// All formulas are single-step scaling-law approximations (Melosh-type
// crater scaling, Gutenberg-Richter style seismic coupling), not iterative
// integration. They are meant to be reproducible to the last bit, not to
// match the impact-physics literature with high accuracy.
package physics

import (
	"fmt"
	"math"
)

// AsteroidParameters describes an incoming asteroid for impact simulation.
//
// DiameterM and VelocityKmS are required and must be positive. The pointer
// fields are optional: nil selects the documented default (3000 kg/m³
// density, 45° angle) while an explicit value is validated and used as
// given. ImpactLat/ImpactLon are passed through to the metrics record when
// present.
type AsteroidParameters struct {
	DiameterM      float64  `json:"diameter_m"`
	VelocityKmS    float64  `json:"velocity_km_s"`
	DensityKgM3    *float64 `json:"density_kg_m3,omitempty"`
	ImpactAngleDeg *float64 `json:"impact_angle_deg,omitempty"`
	ImpactLat      *float64 `json:"impact_lat,omitempty"`
	ImpactLon      *float64 `json:"impact_lon,omitempty"`
}

// RiskLevel categorizes the overall severity of an impact.
type RiskLevel string

const (
	RiskMinimal  RiskLevel = "minimal"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskExtreme  RiskLevel = "extreme"
)

// TsunamiPotential estimates open-water wave consequences of an impact.
type TsunamiPotential struct {
	InitialWaveHeightM float64 `json:"initial_wave_height_m"`
	MaxRunupHeightM    float64 `json:"max_runup_height_m"`
	AffectedCoastKm    float64 `json:"affected_coast_km"`
	Category           string  `json:"tsunami_potential"`
}

// AtmosphericEffects estimates fireball, thermal and airblast footprints.
type AtmosphericEffects struct {
	FireballRadiusKm         float64 `json:"fireball_radius_km"`
	ThermalRadiationRadiusKm float64 `json:"thermal_radiation_radius_km"`
	AirblastRadiusKm         float64 `json:"airblast_radius_km"`
	Category                 string  `json:"atmospheric_effects"`
}

// ImpactMetrics is the full derived record for one impact scenario.
//
// The record is produced once per computation and never mutated;
// ComputeMitigationScenario copies and rescales it. All energy, crater and
// radius fields are non-negative, and RiskLevel is a deterministic monotone
// function of EnergyTNTTons and CraterDiameterKm.
type ImpactMetrics struct {
	// Basic properties
	DiameterM   float64 `json:"diameter_m"`
	RadiusM     float64 `json:"radius_m"`
	VolumeM3    float64 `json:"volume_m3"`
	MassKg      float64 `json:"mass_kg"`
	DensityKgM3 float64 `json:"density_kg_m3"`

	// Velocity and energy
	VelocityKmS    float64 `json:"velocity_km_s"`
	VelocityMS     float64 `json:"velocity_m_s"`
	KineticEnergyJ float64 `json:"kinetic_energy_j"`
	EnergyTNTTons  float64 `json:"energy_tnt_tons"`

	// Impact geometry
	ImpactAngleDeg float64 `json:"impact_angle_deg"`
	ImpactAngleRad float64 `json:"impact_angle_rad"`

	// Crater properties
	CraterDiameterKm float64 `json:"crater_diameter_km"`
	CraterRadiusKm   float64 `json:"crater_radius_km"`
	CraterDepthKm    float64 `json:"crater_depth_km"`

	// Seismic effects
	SeismicMagnitude float64 `json:"seismic_magnitude"`

	// Damage zones
	SevereDamageRadiusKm   float64 `json:"severe_damage_radius_km"`
	ModerateDamageRadiusKm float64 `json:"moderate_damage_radius_km"`
	LightDamageRadiusKm    float64 `json:"light_damage_radius_km"`

	// Environmental effects
	TsunamiPotential   TsunamiPotential   `json:"tsunami_potential"`
	AtmosphericEffects AtmosphericEffects `json:"atmospheric_effects"`

	// Location pass-through (if provided)
	ImpactLat *float64 `json:"impact_lat,omitempty"`
	ImpactLon *float64 `json:"impact_lon,omitempty"`

	// Risk assessment
	RiskLevel RiskLevel `json:"risk_level"`
	Advice    []string  `json:"advice"`
}

// validate rejects parameters outside their physical domain before any
// formula runs, so the math steps can assume positive mass and energy.
func (p *AsteroidParameters) validate() error {
	switch {
	case p.DiameterM == 0:
		return &MissingParameterError{Field: "diameter_m"}
	case p.DiameterM < 0:
		return &InvalidParameterError{Field: "diameter_m", Reason: "must be positive"}
	case p.VelocityKmS == 0:
		return &MissingParameterError{Field: "velocity_km_s"}
	case p.VelocityKmS < 0:
		return &InvalidParameterError{Field: "velocity_km_s", Reason: "must be positive"}
	}
	if p.DensityKgM3 != nil && *p.DensityKgM3 <= 0 {
		return &InvalidParameterError{Field: "density_kg_m3", Reason: "must be positive"}
	}
	if p.ImpactAngleDeg != nil && (*p.ImpactAngleDeg < 0 || *p.ImpactAngleDeg > 180) {
		return &InvalidParameterError{Field: "impact_angle_deg", Reason: "must be in [0, 180]"}
	}
	if p.ImpactLat != nil && (*p.ImpactLat < -90 || *p.ImpactLat > 90) {
		return &InvalidParameterError{Field: "impact_lat", Reason: "must be in [-90, 90]"}
	}
	if p.ImpactLon != nil && (*p.ImpactLon < -180 || *p.ImpactLon > 180) {
		return &InvalidParameterError{Field: "impact_lon", Reason: "must be in [-180, 180]"}
	}
	return nil
}

// ComputeImpactMetrics maps asteroid physical parameters to the full
// impact-metrics record.
//
// The steps run in a fixed order, each a closed-form formula:
// sphere geometry, kinetic energy, TNT equivalent, Melosh-type crater
// scaling, seismic magnitude, damage radii, tsunami and atmospheric
// estimates, risk level, and advisory text.
//
// An explicit impact angle of 0° makes sin(angle)=0 and the crater
// diameter degenerate to zero; that is accepted, not an error. The damage
// radii floors keep the rest of the record meaningful in that case.
func ComputeImpactMetrics(params AsteroidParameters) (*ImpactMetrics, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	density := DefaultDensityKgM3
	if params.DensityKgM3 != nil {
		density = *params.DensityKgM3
	}
	angleDeg := DefaultImpactAngleDeg
	if params.ImpactAngleDeg != nil {
		angleDeg = *params.ImpactAngleDeg
	}

	// Step 1: sphere geometry.
	radiusM := params.DiameterM / 2.0
	volumeM3 := (4.0 / 3.0) * math.Pi * radiusM * radiusM * radiusM
	massKg := volumeM3 * density

	// Step 2: kinetic energy.
	velocityMS := params.VelocityKmS * 1000.0
	kineticEnergyJ := 0.5 * massKg * velocityMS * velocityMS

	// Step 3: TNT equivalent.
	energyTNTTons := kineticEnergyJ / TNTJoules

	// Step 4: crater diameter, Melosh scaling law
	// D = 1.161 * E_tnt^0.25 * sin(angle)^0.33.
	angleRad := angleDeg * math.Pi / 180.0
	craterDiameterKm := 1.161 * math.Pow(energyTNTTons, 0.25) * math.Pow(math.Sin(angleRad), 0.33)

	// Step 5: seismic magnitude, M = (2/3)*log10(E) - 3.2.
	if kineticEnergyJ <= 0 {
		return nil, &MathDomainError{Op: "log10", Quantity: "kinetic energy"}
	}
	seismicMagnitude := (2.0/3.0)*math.Log10(kineticEnergyJ) - 3.2

	// Step 6: damage radii. The floors keep the zones non-degenerate even
	// for vanishing craters.
	craterRadiusKm := craterDiameterKm / 2.0
	severe := math.Max(0.1, craterRadiusKm*3.0)
	moderate := math.Max(0.2, craterRadiusKm*10.0)
	light := math.Max(0.5, craterRadiusKm*30.0)

	tsunami := estimateTsunamiPotential(energyTNTTons, craterDiameterKm)
	atmosphere := estimateAtmosphericEffects(energyTNTTons)

	return &ImpactMetrics{
		DiameterM:   params.DiameterM,
		RadiusM:     radiusM,
		VolumeM3:    volumeM3,
		MassKg:      massKg,
		DensityKgM3: density,

		VelocityKmS:    params.VelocityKmS,
		VelocityMS:     velocityMS,
		KineticEnergyJ: kineticEnergyJ,
		EnergyTNTTons:  energyTNTTons,

		ImpactAngleDeg: angleDeg,
		ImpactAngleRad: angleRad,

		CraterDiameterKm: craterDiameterKm,
		CraterRadiusKm:   craterRadiusKm,
		CraterDepthKm:    craterDiameterKm * 0.2, // typical depth/diameter ratio

		SeismicMagnitude: seismicMagnitude,

		SevereDamageRadiusKm:   severe,
		ModerateDamageRadiusKm: moderate,
		LightDamageRadiusKm:    light,

		TsunamiPotential:   tsunami,
		AtmosphericEffects: atmosphere,

		ImpactLat: params.ImpactLat,
		ImpactLon: params.ImpactLon,

		RiskLevel: AssessRiskLevel(energyTNTTons, craterDiameterKm),
		Advice:    generateImpactAdvice(energyTNTTons, craterDiameterKm, tsunami),
	}, nil
}

// estimateTsunamiPotential models an ocean impact with a very simplified
// wave-height relation: h = 0.1 * E_tnt^0.25, runup at 3x coastal
// amplification, affected coastline at 50x the crater diameter.
func estimateTsunamiPotential(energyTNTTons, craterDiameterKm float64) TsunamiPotential {
	waveHeightM := 0.1 * math.Pow(energyTNTTons, 0.25)

	category := "low"
	if waveHeightM > 10 {
		category = "high"
	} else if waveHeightM > 1 {
		category = "moderate"
	}

	return TsunamiPotential{
		InitialWaveHeightM: waveHeightM,
		MaxRunupHeightM:    waveHeightM * 3.0,
		AffectedCoastKm:    craterDiameterKm * 50.0,
		Category:           category,
	}
}

// estimateAtmosphericEffects models fireball, thermal radiation and
// airblast footprints from the TNT-equivalent energy alone.
func estimateAtmosphericEffects(energyTNTTons float64) AtmosphericEffects {
	fireballKm := 0.1 * math.Pow(energyTNTTons, 0.25)

	category := "minor"
	if energyTNTTons > 1000 {
		category = "severe"
	} else if energyTNTTons > 10 {
		category = "moderate"
	}

	return AtmosphericEffects{
		FireballRadiusKm:         fireballKm,
		ThermalRadiationRadiusKm: fireballKm * 5.0,
		AirblastRadiusKm:         0.5 * math.Pow(energyTNTTons, 0.25),
		Category:                 category,
	}
}

// AssessRiskLevel classifies an impact from its TNT-equivalent energy and
// crater diameter. Thresholds are evaluated in priority order; the first
// match wins, so the five levels partition the domain with no gaps.
func AssessRiskLevel(energyTNTTons, craterDiameterKm float64) RiskLevel {
	switch {
	case energyTNTTons > 10000 || craterDiameterKm > 10:
		return RiskExtreme
	case energyTNTTons > 1000 || craterDiameterKm > 3:
		return RiskHigh
	case energyTNTTons > 100 || craterDiameterKm > 1:
		return RiskModerate
	case energyTNTTons > 10 || craterDiameterKm > 0.3:
		return RiskLow
	default:
		return RiskMinimal
	}
}

// generateImpactAdvice produces the human-readable advisory list from
// fixed thresholds. The strings are deterministic templates, not free
// text; clients key UI behavior off them.
func generateImpactAdvice(energyTNTTons, craterDiameterKm float64, tsunami TsunamiPotential) []string {
	var advice []string

	switch {
	case energyTNTTons < 1e-3:
		advice = append(advice, "Very small event - local damage only, if any.")
	case energyTNTTons < 100:
		advice = append(advice, "Regional damage possible - monitor local authorities.")
	case energyTNTTons < 10000:
		advice = append(advice,
			"High-energy impact with potential for large-scale effects.",
			"Emergency planning and evacuation may be necessary.")
	default:
		advice = append(advice,
			"Extreme impact event - global consequences possible.",
			"Immediate emergency response and international coordination required.")
	}

	switch tsunami.Category {
	case "high":
		advice = append(advice, "High tsunami risk - coastal evacuation recommended.")
	case "moderate":
		advice = append(advice, "Moderate tsunami risk - coastal areas should be prepared.")
	}

	if craterDiameterKm > 5 {
		advice = append(advice, "Large crater formation - significant geological changes expected.")
	}

	return advice
}

// String implements fmt.Stringer for log lines.
func (r RiskLevel) String() string { return string(r) }

// Valid reports whether r is one of the five defined levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskMinimal, RiskLow, RiskModerate, RiskHigh, RiskExtreme:
		return true
	}
	return false
}

var _ fmt.Stringer = RiskLevel("")
