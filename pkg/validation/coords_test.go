// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package validation

import (
	"testing"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		wantErr  bool
	}{
		{"origin", 0, 0, false},
		{"valid", 42.5, -71.1, false},
		{"lat north pole", 90, 0, false},
		{"lat south pole", -90, 0, false},
		{"lon date line", 0, 180, false},
		{"lon negative date line", 0, -180, false},

		{"lat too high", 90.1, 0, true},
		{"lat too low", -91, 0, true},
		{"lon too high", 0, 180.5, true},
		{"lon too low", 0, -181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.lat, tt.lon)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinates(%v, %v) error = %v, wantErr %v",
					tt.lat, tt.lon, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProbability(t *testing.T) {
	tests := []struct {
		name    string
		p       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"middle", 0.95, false},
		{"negative", -0.01, true},
		{"above one", 1.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProbability(tt.p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProbability(%v) error = %v, wantErr %v", tt.p, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFeedDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"empty uses defaults", "", false},
		{"valid", "2026-08-29", false},
		{"wrong order", "29-08-2026", true},
		{"slashes", "2026/08/29", true},
		{"nonsense", "next tuesday", true},
		{"impossible day", "2026-02-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeedDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFeedDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAsteroidID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"sample id", "2000433", false},
		{"single digit", "7", false},
		{"max length", "123456789012", false},

		{"empty", "", true},
		{"too long", "1234567890123", true},
		{"letters", "bennu", true},
		{"path traversal", "../etc/passwd", true},
		{"injection", "1; DROP TABLE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAsteroidID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAsteroidID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
