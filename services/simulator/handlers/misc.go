// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version reported by the health endpoint.
const apiVersion = "1.0.0"

// HealthCheck handles GET /.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Meteor Madness API is running",
		"version": apiVersion,
	})
}

// APIStatus handles GET /api/status. The NASA key itself is never
// echoed, only whether one is configured.
func APIStatus(nasaKeyConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyState := "missing"
		if nasaKeyConfigured {
			keyState = "configured"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "operational",
			"endpoints": gin.H{
				"asteroid":   "/api/asteroid/*",
				"impact":     "/api/impact/*",
				"mitigation": "/api/mitigation/*",
			},
			"nasa_api_key": keyState,
		})
	}
}
