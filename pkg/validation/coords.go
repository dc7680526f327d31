// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validation utilities shared by the
// HTTP handlers and the CLI.
//
// These validators cover the parameter domains the physics core relies
// on: geographic coordinates, probabilities, date strings for the NEO
// feed, and asteroid catalog identifiers used in URL paths.
package validation

import (
	"fmt"
	"regexp"
	"time"
)

// ValidateLatitude checks that lat is a usable geographic latitude.
func ValidateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	return nil
}

// ValidateLongitude checks that lon is a usable geographic longitude.
func ValidateLongitude(lon float64) error {
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return nil
}

// ValidateCoordinates checks a lat/lon pair together.
func ValidateCoordinates(lat, lon float64) error {
	if err := ValidateLatitude(lat); err != nil {
		return err
	}
	return ValidateLongitude(lon)
}

// ValidateProbability checks that p is a probability in [0, 1].
func ValidateProbability(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("probability %v out of range [0, 1]", p)
	}
	return nil
}

// ValidateFeedDate checks a NEO feed date string (YYYY-MM-DD). An empty
// string is valid; the feed client substitutes its defaults.
func ValidateFeedDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}
	return nil
}

// asteroidIDPattern matches NASA NEO reference ids and our sample
// catalog ids. Digits only, bounded length; this keeps user-supplied
// path segments out of injection territory.
var asteroidIDPattern = regexp.MustCompile(`^[0-9]{1,12}$`)

// ValidateAsteroidID checks a catalog id taken from a URL path.
func ValidateAsteroidID(id string) error {
	if id == "" {
		return fmt.Errorf("asteroid id cannot be empty")
	}
	if !asteroidIDPattern.MatchString(id) {
		return fmt.Errorf("invalid asteroid id %q (must be 1-12 digits)", id)
	}
	return nil
}
