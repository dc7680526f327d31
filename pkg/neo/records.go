// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package neo

import (
	"sort"
	"strconv"

	"github.com/meteormadness/meteormadness/pkg/physics"
)

// CloseApproach is one close-approach event from the NEO feed.
type CloseApproach struct {
	Date                string  `json:"date"`
	EpochDate           int64   `json:"epoch_date"`
	RelativeVelocityKmS float64 `json:"relative_velocity_km_s"`
	MissDistanceKm      float64 `json:"miss_distance_km"`
	OrbitingBody        string  `json:"orbiting_body"`
	VelocityKmS         float64 `json:"velocity_km_s"`
}

// Asteroid is a flattened catalog record, either parsed from the NASA
// feed or taken from the built-in samples. Pointer fields are nil when
// the source did not carry the value; DensityKgM3 is always filled (the
// feed never carries density, so the stony default applies).
type Asteroid struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Designation            string          `json:"designation"`
	DiameterMinM           *float64        `json:"diameter_min_m,omitempty"`
	DiameterMaxM           *float64        `json:"diameter_max_m,omitempty"`
	DiameterAvgM           *float64        `json:"diameter_avg_m,omitempty"`
	IsPotentiallyHazardous bool            `json:"is_potentially_hazardous"`
	CloseApproaches        []CloseApproach `json:"close_approach_data,omitempty"`
	AbsoluteMagnitude      *float64        `json:"absolute_magnitude,omitempty"`
	DensityKgM3            float64         `json:"density_kg_m3"`
	VelocityKmS            *float64        `json:"velocity_km_s,omitempty"`
	Description            string          `json:"description,omitempty"`
}

// feedResponse and feedEntry mirror NASA's wire format. Only the fields
// the catalog uses are declared.
type feedResponse struct {
	ElementCount     int                    `json:"element_count"`
	NearEarthObjects map[string][]feedEntry `json:"near_earth_objects"`
}

type feedEntry struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Designation       string `json:"designation"`
	EstimatedDiameter struct {
		Meters struct {
			Min *float64 `json:"estimated_diameter_min"`
			Max *float64 `json:"estimated_diameter_max"`
		} `json:"meters"`
	} `json:"estimated_diameter"`
	IsPotentiallyHazardous bool     `json:"is_potentially_hazardous_asteroid"`
	AbsoluteMagnitudeH     *float64 `json:"absolute_magnitude_h"`
	CloseApproachData      []struct {
		CloseApproachDate string `json:"close_approach_date"`
		EpochDate         int64  `json:"epoch_date_close_approach"`
		RelativeVelocity  struct {
			KilometersPerSecond string `json:"kilometers_per_second"`
		} `json:"relative_velocity"`
		MissDistance struct {
			Kilometers string `json:"kilometers"`
		} `json:"miss_distance"`
		OrbitingBody string `json:"orbiting_body"`
	} `json:"close_approach_data"`
}

// ParseFeed flattens the date-keyed feed into catalog records. Dates are
// visited in sorted order so the output is deterministic for a given
// payload. The first close-approach velocity becomes the record's
// velocity; density is always the stony default since NASA does not
// publish one.
func ParseFeed(feed *feedResponse) []Asteroid {
	dates := make([]string, 0, len(feed.NearEarthObjects))
	for date := range feed.NearEarthObjects {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var asteroids []Asteroid
	for _, date := range dates {
		for i := range feed.NearEarthObjects[date] {
			asteroids = append(asteroids, parseEntry(&feed.NearEarthObjects[date][i]))
		}
	}
	return asteroids
}

func parseEntry(entry *feedEntry) Asteroid {
	asteroid := Asteroid{
		ID:                     entry.ID,
		Name:                   entry.Name,
		Designation:            entry.Designation,
		DiameterMinM:           entry.EstimatedDiameter.Meters.Min,
		DiameterMaxM:           entry.EstimatedDiameter.Meters.Max,
		IsPotentiallyHazardous: entry.IsPotentiallyHazardous,
		AbsoluteMagnitude:      entry.AbsoluteMagnitudeH,
		DensityKgM3:            physics.DefaultDensityKgM3,
	}

	if asteroid.DiameterMinM != nil && asteroid.DiameterMaxM != nil {
		avg := (*asteroid.DiameterMinM + *asteroid.DiameterMaxM) / 2.0
		asteroid.DiameterAvgM = &avg
	}

	for _, approach := range entry.CloseApproachData {
		velocity := parseWireFloat(approach.RelativeVelocity.KilometersPerSecond)
		record := CloseApproach{
			Date:                approach.CloseApproachDate,
			EpochDate:           approach.EpochDate,
			RelativeVelocityKmS: velocity,
			MissDistanceKm:      parseWireFloat(approach.MissDistance.Kilometers),
			OrbitingBody:        approach.OrbitingBody,
			VelocityKmS:         velocity,
		}
		asteroid.CloseApproaches = append(asteroid.CloseApproaches, record)
		if asteroid.VelocityKmS == nil {
			v := velocity
			asteroid.VelocityKmS = &v
		}
	}

	return asteroid
}

// parseWireFloat reads NASA's stringly-typed numbers, treating anything
// unparseable as zero the way the feed's own omissions are.
func parseWireFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
