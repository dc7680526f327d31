// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package physics

import "fmt"

// MissingParameterError reports a required field that was absent from a
// request. The Field name matches the JSON wire name so handlers can echo
// it back to the caller unchanged.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidParameterError reports a field whose value is outside its
// physically valid domain (non-positive diameter, angle outside (0,180],
// unknown deflection method, and so on).
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MathDomainError reports a log or sqrt of a non-positive quantity. It is
// only reachable through zero-valued inputs that parameter validation
// should already have rejected; when it does occur it fails the single
// computation, never the process.
type MathDomainError struct {
	Op       string
	Quantity string
}

func (e *MathDomainError) Error() string {
	return fmt.Sprintf("math domain error: %s of non-positive %s", e.Op, e.Quantity)
}
