// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package physics

import (
	"math"
)

// Method identifies a deflection technique. It is the tag of the union
// over the three supported models; string values match the wire contract.
type Method string

const (
	MethodKineticImpactor Method = "kinetic_impactor"
	MethodGravityTractor  Method = "gravity_tractor"
	MethodNuclear         Method = "nuclear"
)

// Methods returns the supported techniques in declaration order. The order
// doubles as the tie-break for ranking: a stable sort over this slice keeps
// equally-scored methods in this sequence.
func Methods() []Method {
	return []Method{MethodKineticImpactor, MethodGravityTractor, MethodNuclear}
}

// ParseMethod validates a wire-format method name.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodKineticImpactor, MethodGravityTractor, MethodNuclear:
		return Method(s), nil
	}
	return "", &InvalidParameterError{
		Field:  "deflection_method",
		Reason: "must be one of: kinetic_impactor, gravity_tractor, nuclear",
	}
}

func (m Method) String() string { return string(m) }

// TargetAsteroid describes the body to be deflected. MassKg is what the
// models actually consume; when it is absent the mass is derived from
// diameter and density, and when those are absent too the reference
// defaults (100 m stony asteroid, ~1e12 kg) apply.
type TargetAsteroid struct {
	MassKg      float64 `json:"mass_kg,omitempty"`
	DiameterM   float64 `json:"diameter_m,omitempty"`
	VelocityKmS float64 `json:"velocity_km_s,omitempty"`
	DensityKgM3 float64 `json:"density_kg_m3,omitempty"`
}

// Reference asteroid values used when a field is absent.
const (
	defaultAsteroidMassKg      = 1e12
	defaultAsteroidDiameterM   = 100.0
	defaultAsteroidVelocityKmS = 17.0
)

// resolveMass returns the asteroid mass the models divide by.
func (t TargetAsteroid) resolveMass() (float64, error) {
	switch {
	case t.MassKg < 0:
		return 0, &InvalidParameterError{Field: "mass_kg", Reason: "must be positive"}
	case t.MassKg > 0:
		return t.MassKg, nil
	case t.DiameterM < 0:
		return 0, &InvalidParameterError{Field: "diameter_m", Reason: "must be positive"}
	case t.DiameterM > 0:
		density := t.DensityKgM3
		if density < 0 {
			return 0, &InvalidParameterError{Field: "density_kg_m3", Reason: "must be positive"}
		}
		if density == 0 {
			density = DefaultDensityKgM3
		}
		r := t.DiameterM / 2.0
		return (4.0 / 3.0) * math.Pi * r * r * r * density, nil
	default:
		return defaultAsteroidMassKg, nil
	}
}

// diameter returns the asteroid diameter for the nuclear surface-area term.
func (t TargetAsteroid) diameter() float64 {
	if t.DiameterM > 0 {
		return t.DiameterM
	}
	return defaultAsteroidDiameterM
}

// DeflectionParameters carries the method-specific knobs of a deflection
// request. The struct is flat because the wire format is a single object;
// each model reads only its own fields and fills documented defaults for
// the ones left nil.
type DeflectionParameters struct {
	// Kinetic impactor
	ImpactorMassKg      *float64 `json:"impactor_mass_kg,omitempty"`
	ImpactorVelocityKmS *float64 `json:"impactor_velocity_km_s,omitempty"`
	ImpactAngleDeg      *float64 `json:"impact_angle_deg,omitempty"`

	// Gravity tractor
	SpacecraftMassKg *float64 `json:"spacecraft_mass_kg,omitempty"`
	TractorDistanceM *float64 `json:"tractor_distance_m,omitempty"`
	ThrustN          *float64 `json:"thrust_N,omitempty"`

	// Nuclear standoff
	YieldKt             *float64 `json:"yield_kt,omitempty"`
	DetonationDistanceM *float64 `json:"detonation_distance_m,omitempty"`
	DetonationAngleDeg  *float64 `json:"detonation_angle_deg,omitempty"`
}

// Reference parameter defaults, one set per method. These are also the
// fixed parameters CompareMethods runs every model with.
const (
	defaultImpactorMassKg      = 1000.0 // 1 t spacecraft
	defaultImpactorVelocityKmS = 10.0
	defaultImpactAngleDeg      = 90.0 // head-on

	defaultSpacecraftMassKg = 10000.0 // 10 t tractor
	defaultTractorDistanceM = 100.0
	defaultThrustN          = 1000.0 // 1 kN

	defaultYieldKt             = 1.0
	defaultDetonationDistanceM = 100.0
	defaultDetonationAngleDeg  = 0.0 // surface detonation
)

// nuclearCouplingEfficiency is the fraction of device yield assumed to
// couple into ejecta momentum.
const nuclearCouplingEfficiency = 0.01

// KineticImpactorDetail records the resolved parameters and intermediate
// quantities of a kinetic-impactor run, retained for transparency.
type KineticImpactorDetail struct {
	ImpactorMassKg             float64 `json:"impactor_mass_kg"`
	ImpactorVelocityKmS        float64 `json:"impactor_velocity_km_s"`
	ImpactAngleDeg             float64 `json:"impact_angle_deg"`
	MomentumTransferEfficiency float64 `json:"momentum_transfer_efficiency"`
	EffectiveMomentumTransfer  float64 `json:"effective_momentum_transfer"`
}

// GravityTractorDetail records the resolved parameters and intermediate
// quantities of a gravity-tractor run.
type GravityTractorDetail struct {
	SpacecraftMassKg        float64 `json:"spacecraft_mass_kg"`
	TractorDistanceM        float64 `json:"tractor_distance_m"`
	ThrustN                 float64 `json:"thrust_N"`
	GravitationalForceN     float64 `json:"gravitational_force_N"`
	NetForceN               float64 `json:"net_force_N"`
	AsteroidAccelerationMS2 float64 `json:"asteroid_acceleration_ms2"`
}

// NuclearDetail records the resolved parameters and intermediate
// quantities of a nuclear-standoff run.
type NuclearDetail struct {
	YieldKt                    float64 `json:"yield_kt"`
	YieldJoules                float64 `json:"yield_joules"`
	DetonationDistanceM        float64 `json:"detonation_distance_m"`
	DetonationAngleDeg         float64 `json:"detonation_angle_deg"`
	EnergyDensityJM2           float64 `json:"energy_density_j_m2"`
	MomentumTransferEfficiency float64 `json:"momentum_transfer_efficiency"`
	TotalMomentumTransfer      float64 `json:"total_momentum_transfer"`
}

// Outcome is the result of running one deflection model.
//
// MissDistanceKm always equals DeflectionDistanceKm: the models do not
// carry an independent original-trajectory miss distance. Both fields are
// kept so the wire contract stays stable if that ever changes.
// SuccessProbability is the saturating proxy min(1, miss/EarthRadiusKm).
type Outcome struct {
	Method               Method  `json:"deflection_method"`
	DeltaVMS             float64 `json:"delta_v_ms"`
	DeflectionDistanceKm float64 `json:"deflection_distance_km"`
	MissDistanceKm       float64 `json:"miss_distance_km"`
	DeflectionSuccessful bool    `json:"deflection_successful"`
	SuccessProbability   float64 `json:"success_probability"`
	TimeToImpactDays     float64 `json:"time_to_impact_days"`
	EarthRadiusKm        float64 `json:"earth_radius_km"`

	KineticImpactor *KineticImpactorDetail `json:"kinetic_impactor,omitempty"`
	GravityTractor  *GravityTractorDetail  `json:"gravity_tractor,omitempty"`
	Nuclear         *NuclearDetail         `json:"nuclear,omitempty"`
}

// ComputeDeflection runs the model selected by method. It is the single
// entry point the HTTP layer and the CLI dispatch through.
func ComputeDeflection(asteroid TargetAsteroid, method Method, params DeflectionParameters, timeToImpactDays float64) (*Outcome, error) {
	model, ok := models[method]
	if !ok {
		return nil, &InvalidParameterError{
			Field:  "deflection_method",
			Reason: "must be one of: kinetic_impactor, gravity_tractor, nuclear",
		}
	}
	if timeToImpactDays <= 0 {
		return nil, &InvalidParameterError{Field: "time_to_impact_days", Reason: "must be positive"}
	}
	massKg, err := asteroid.resolveMass()
	if err != nil {
		return nil, err
	}
	return model.simulate(asteroid, massKg, params, timeToImpactDays)
}

// methodModel is the per-method strategy: forward simulation for
// ComputeDeflection/CompareMethods and algebraic inversion for
// OptimizeDeflection. One implementation exists per Method.
type methodModel interface {
	simulate(asteroid TargetAsteroid, massKg float64, params DeflectionParameters, days float64) (*Outcome, error)
	invert(massKg, days, requiredDeltaVMS float64) DeflectionParameters
}

var models = map[Method]methodModel{
	MethodKineticImpactor: kineticImpactorModel{},
	MethodGravityTractor:  gravityTractorModel{},
	MethodNuclear:         nuclearModel{},
}

// finishOutcome derives the common trailing fields every model shares.
func finishOutcome(o *Outcome, deflectionDistanceKm float64) *Outcome {
	o.DeflectionDistanceKm = deflectionDistanceKm
	o.MissDistanceKm = deflectionDistanceKm
	o.DeflectionSuccessful = deflectionDistanceKm > EarthRadiusKm
	o.SuccessProbability = math.Min(1.0, deflectionDistanceKm/EarthRadiusKm)
	o.EarthRadiusKm = EarthRadiusKm
	return o
}

// orDefault dereferences an optional knob, falling back to def.
func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// positiveKnob rejects explicit non-positive values for knobs that must
// stay strictly positive for the formulas to be meaningful.
func positiveKnob(v *float64, field string) error {
	if v != nil && *v <= 0 {
		return &InvalidParameterError{Field: field, Reason: "must be positive"}
	}
	return nil
}

// =============================================================================
// Kinetic impactor
// =============================================================================

type kineticImpactorModel struct{}

// simulate models an inelastic collision with momentum conservation. The
// transfer efficiency 0.1*sin(angle) folds material properties and impact
// geometry into a single factor; the resulting delta-v is instantaneous
// and held constant over the remaining time.
func (kineticImpactorModel) simulate(_ TargetAsteroid, massKg float64, params DeflectionParameters, days float64) (*Outcome, error) {
	if err := positiveKnob(params.ImpactorMassKg, "impactor_mass_kg"); err != nil {
		return nil, err
	}
	if err := positiveKnob(params.ImpactorVelocityKmS, "impactor_velocity_km_s"); err != nil {
		return nil, err
	}
	if params.ImpactAngleDeg != nil && (*params.ImpactAngleDeg < 0 || *params.ImpactAngleDeg > 180) {
		return nil, &InvalidParameterError{Field: "impact_angle_deg", Reason: "must be in [0, 180]"}
	}

	impactorMassKg := orDefault(params.ImpactorMassKg, defaultImpactorMassKg)
	impactorVelocityKmS := orDefault(params.ImpactorVelocityKmS, defaultImpactorVelocityKmS)
	impactAngleDeg := orDefault(params.ImpactAngleDeg, defaultImpactAngleDeg)

	impactorVelocityMS := impactorVelocityKmS * 1000.0
	impactorMomentum := impactorMassKg * impactorVelocityMS

	angleRad := impactAngleDeg * math.Pi / 180.0
	efficiency := 0.1 * math.Sin(angleRad)
	effectiveTransfer := impactorMomentum * efficiency

	deltaVMS := effectiveTransfer / massKg

	timeS := days * secondsPerDay
	distanceKm := deltaVMS * timeS / 1000.0

	return finishOutcome(&Outcome{
		Method:           MethodKineticImpactor,
		DeltaVMS:         deltaVMS,
		TimeToImpactDays: days,
		KineticImpactor: &KineticImpactorDetail{
			ImpactorMassKg:             impactorMassKg,
			ImpactorVelocityKmS:        impactorVelocityKmS,
			ImpactAngleDeg:             impactAngleDeg,
			MomentumTransferEfficiency: efficiency,
			EffectiveMomentumTransfer:  effectiveTransfer,
		},
	}, distanceKm), nil
}

// invert solves for the impactor mass that imparts requiredDeltaVMS,
// holding velocity at 10 km/s and the transfer at a head-on 0.1.
func (kineticImpactorModel) invert(massKg, _, requiredDeltaVMS float64) DeflectionParameters {
	impactorVelocityMS := defaultImpactorVelocityKmS * 1000.0
	efficiency := 0.1 // sin(90 deg)
	requiredTransfer := requiredDeltaVMS * massKg
	impactorMassKg := requiredTransfer / (impactorVelocityMS * efficiency)

	impactorMassKg = clamp(impactorMassKg, minImpactorMassKg, maxImpactorMassKg)

	velocity := defaultImpactorVelocityKmS
	angle := defaultImpactAngleDeg
	return DeflectionParameters{
		ImpactorMassKg:      &impactorMassKg,
		ImpactorVelocityKmS: &velocity,
		ImpactAngleDeg:      &angle,
	}
}

// =============================================================================
// Gravity tractor
// =============================================================================

type gravityTractorModel struct{}

// simulate models a station-keeping spacecraft towing the asteroid with
// continuous thrust over the whole remaining time. The deflection distance
// uses delta_v * t, not 0.5*a*t^2; that is the reference model's behavior
// and is preserved as-is (see ComputeMitigationScenario for the other
// convention).
func (gravityTractorModel) simulate(_ TargetAsteroid, massKg float64, params DeflectionParameters, days float64) (*Outcome, error) {
	if err := positiveKnob(params.SpacecraftMassKg, "spacecraft_mass_kg"); err != nil {
		return nil, err
	}
	if err := positiveKnob(params.TractorDistanceM, "tractor_distance_m"); err != nil {
		return nil, err
	}
	if params.ThrustN != nil && *params.ThrustN < 0 {
		return nil, &InvalidParameterError{Field: "thrust_N", Reason: "must be non-negative"}
	}

	spacecraftMassKg := orDefault(params.SpacecraftMassKg, defaultSpacecraftMassKg)
	tractorDistanceM := orDefault(params.TractorDistanceM, defaultTractorDistanceM)
	thrustN := orDefault(params.ThrustN, defaultThrustN)

	gravitationalForceN := GravitationalConstant * spacecraftMassKg * massKg /
		(tractorDistanceM * tractorDistanceM)
	netForceN := thrustN - gravitationalForceN
	accelerationMS2 := netForceN / massKg

	timeS := days * secondsPerDay
	deltaVMS := accelerationMS2 * timeS
	distanceKm := deltaVMS * timeS / 1000.0

	return finishOutcome(&Outcome{
		Method:           MethodGravityTractor,
		DeltaVMS:         deltaVMS,
		TimeToImpactDays: days,
		GravityTractor: &GravityTractorDetail{
			SpacecraftMassKg:        spacecraftMassKg,
			TractorDistanceM:        tractorDistanceM,
			ThrustN:                 thrustN,
			GravitationalForceN:     gravitationalForceN,
			NetForceN:               netForceN,
			AsteroidAccelerationMS2: accelerationMS2,
		},
	}, distanceKm), nil
}

// invert solves for the thrust whose acceleration accumulates
// requiredDeltaVMS over the remaining time, at the default spacecraft
// mass and tractor distance.
func (gravityTractorModel) invert(massKg, days, requiredDeltaVMS float64) DeflectionParameters {
	timeS := days * secondsPerDay
	requiredAccelerationMS2 := requiredDeltaVMS / timeS
	thrustN := requiredAccelerationMS2 * massKg

	thrustN = clamp(thrustN, minThrustN, maxThrustN)

	spacecraftMass := defaultSpacecraftMassKg
	distance := defaultTractorDistanceM
	return DeflectionParameters{
		SpacecraftMassKg: &spacecraftMass,
		TractorDistanceM: &distance,
		ThrustN:          &thrustN,
	}
}

// =============================================================================
// Nuclear standoff
// =============================================================================

type nuclearModel struct{}

// simulate models a standoff detonation whose ejecta carry
// sqrt(2*E*eta*m) of momentum, with eta the fixed coupling efficiency.
func (nuclearModel) simulate(asteroid TargetAsteroid, massKg float64, params DeflectionParameters, days float64) (*Outcome, error) {
	if err := positiveKnob(params.YieldKt, "yield_kt"); err != nil {
		return nil, err
	}
	if err := positiveKnob(params.DetonationDistanceM, "detonation_distance_m"); err != nil {
		return nil, err
	}

	yieldKt := orDefault(params.YieldKt, defaultYieldKt)
	detonationDistanceM := orDefault(params.DetonationDistanceM, defaultDetonationDistanceM)
	detonationAngleDeg := orDefault(params.DetonationAngleDeg, defaultDetonationAngleDeg)

	yieldJoules := yieldKt * KilotonJoules

	diameterM := asteroid.diameter()
	surfaceRadiusM := diameterM / 2.0
	surfaceAreaM2 := 4.0 * math.Pi * surfaceRadiusM * surfaceRadiusM
	energyDensityJM2 := yieldJoules / surfaceAreaM2

	transferSq := 2.0 * yieldJoules * nuclearCouplingEfficiency * massKg
	if transferSq < 0 {
		return nil, &MathDomainError{Op: "sqrt", Quantity: "momentum transfer"}
	}
	totalTransfer := math.Sqrt(transferSq)
	deltaVMS := totalTransfer / massKg

	timeS := days * secondsPerDay
	distanceKm := deltaVMS * timeS / 1000.0

	return finishOutcome(&Outcome{
		Method:           MethodNuclear,
		DeltaVMS:         deltaVMS,
		TimeToImpactDays: days,
		Nuclear: &NuclearDetail{
			YieldKt:                    yieldKt,
			YieldJoules:                yieldJoules,
			DetonationDistanceM:        detonationDistanceM,
			DetonationAngleDeg:         detonationAngleDeg,
			EnergyDensityJM2:           energyDensityJM2,
			MomentumTransferEfficiency: nuclearCouplingEfficiency,
			TotalMomentumTransfer:      totalTransfer,
		},
	}, distanceKm), nil
}

// invert solves for the yield whose ejecta momentum imparts
// requiredDeltaVMS: E = p^2 / (2*eta*m).
func (nuclearModel) invert(massKg, _, requiredDeltaVMS float64) DeflectionParameters {
	requiredTransfer := requiredDeltaVMS * massKg
	yieldJoules := (requiredTransfer * requiredTransfer) / (2.0 * nuclearCouplingEfficiency * massKg)
	yieldKt := yieldJoules / KilotonJoules

	yieldKt = clamp(yieldKt, minYieldKt, maxYieldKt)

	distance := defaultDetonationDistanceM
	angle := defaultDetonationAngleDeg
	return DeflectionParameters{
		YieldKt:             &yieldKt,
		DetonationDistanceM: &distance,
		DetonationAngleDeg:  &angle,
	}
}
