// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers provides HTTP request handlers for the simulator
// service.
//
// Every response carries a success flag alongside the payload or an
// error string, so clients can branch on one field regardless of
// status code.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meteormadness/meteormadness/pkg/physics"
	"github.com/meteormadness/meteormadness/services/simulator/observability"
)

// fail writes the error envelope.
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}

// failErr maps a core error to an HTTP status and writes the envelope.
// Missing and invalid parameter errors are the caller's fault; anything
// else is ours.
func failErr(c *gin.Context, err error) {
	fail(c, statusForError(err), err.Error())
}

func statusForError(err error) int {
	var missing *physics.MissingParameterError
	var invalid *physics.InvalidParameterError
	if errors.As(err, &missing) || errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// observe records metrics for a finished request. Call with the
// handler's start time once the outcome is known.
func observe(endpoint string, start time.Time, success bool) {
	observability.DefaultMetrics.RecordRequest(endpoint, success)
	observability.DefaultMetrics.RecordDuration(endpoint, time.Since(start).Seconds())
}
