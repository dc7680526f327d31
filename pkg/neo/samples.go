// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package neo

import "strings"

func sample(id, name, designation string, diameterM, densityKgM3, velocityKmS float64, hazardous bool, description string) Asteroid {
	d := diameterM
	v := velocityKmS
	return Asteroid{
		ID:                     id,
		Name:                   name,
		Designation:            designation,
		DiameterAvgM:           &d,
		DensityKgM3:            densityKgM3,
		VelocityKmS:            &v,
		IsPotentiallyHazardous: hazardous,
		Description:            description,
	}
}

// Samples returns the curated demonstration catalog. The values are fixed
// literals, not live data; they give clients something meaningful to
// simulate without a NASA key.
func Samples() []Asteroid {
	return []Asteroid{
		sample("2000433", "Eros", "433 Eros", 16000, 2670, 17.0, false,
			"First near-Earth asteroid discovered (1898)"),
		sample("20025143", "Itokawa", "25143 Itokawa", 330, 1950, 12.0, false,
			"Visited by Hayabusa spacecraft"),
		sample("200101955", "Bennu", "101955 Bennu", 490, 1190, 12.4, true,
			"Target of OSIRIS-REx mission"),
		sample("20099942", "Apophis", "99942 Apophis", 370, 2600, 12.6, true,
			"Previously considered high impact risk"),
	}
}

// SampleByID finds a sample asteroid by its catalog id.
func SampleByID(id string) (*Asteroid, bool) {
	for _, a := range Samples() {
		if a.ID == id {
			return &a, true
		}
	}
	return nil, false
}

// SearchFilter narrows the sample catalog. Zero values leave a dimension
// unconstrained; Hazardous is a tri-state pointer.
type SearchFilter struct {
	Name           string
	MinDiameterM   float64
	MaxDiameterM   float64
	MinVelocityKmS float64
	MaxVelocityKmS float64
	Hazardous      *bool
}

// SearchSamples applies the filter to the sample catalog, matching names
// case-insensitively as substrings.
func SearchSamples(filter SearchFilter) []Asteroid {
	var matches []Asteroid
	for _, a := range Samples() {
		if filter.Name != "" &&
			!strings.Contains(strings.ToLower(a.Name), strings.ToLower(filter.Name)) &&
			!strings.Contains(strings.ToLower(a.Designation), strings.ToLower(filter.Name)) {
			continue
		}
		if a.DiameterAvgM != nil {
			if filter.MinDiameterM > 0 && *a.DiameterAvgM < filter.MinDiameterM {
				continue
			}
			if filter.MaxDiameterM > 0 && *a.DiameterAvgM > filter.MaxDiameterM {
				continue
			}
		}
		if a.VelocityKmS != nil {
			if filter.MinVelocityKmS > 0 && *a.VelocityKmS < filter.MinVelocityKmS {
				continue
			}
			if filter.MaxVelocityKmS > 0 && *a.VelocityKmS > filter.MaxVelocityKmS {
				continue
			}
		}
		if filter.Hazardous != nil && a.IsPotentiallyHazardous != *filter.Hazardous {
			continue
		}
		matches = append(matches, a)
	}
	return matches
}
