// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// This file implements the asteroid catalog endpoints. Live NASA data
// is used where an API key is configured; the built-in sample catalog
// serves as the fallback so the service stays useful offline.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meteormadness/meteormadness/pkg/geoctx"
	"github.com/meteormadness/meteormadness/pkg/neo"
	"github.com/meteormadness/meteormadness/pkg/physics"
	"github.com/meteormadness/meteormadness/pkg/validation"
	"github.com/meteormadness/meteormadness/services/simulator/datatypes"
	"github.com/meteormadness/meteormadness/services/simulator/observability"
)

const defaultListLimit = 50

// ListAsteroids handles GET /api/asteroid/list.
func ListAsteroids(client *neo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		source := c.DefaultQuery("source", "sample")
		limit := defaultListLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				observe("list_asteroids", start, false)
				fail(c, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = n
		}

		var asteroids []neo.Asteroid
		if source == "nasa" {
			startDate := c.Query("start_date")
			endDate := c.Query("end_date")
			if err := validation.ValidateFeedDate(startDate); err != nil {
				observe("list_asteroids", start, false)
				fail(c, http.StatusBadRequest, err.Error())
				return
			}
			if err := validation.ValidateFeedDate(endDate); err != nil {
				observe("list_asteroids", start, false)
				fail(c, http.StatusBadRequest, err.Error())
				return
			}

			var err error
			asteroids, err = client.FetchFeed(c.Request.Context(), startDate, endDate)
			if err != nil {
				slog.Error("NASA feed fetch failed", "error", err)
				observability.DefaultMetrics.RecordNASARequest("error")
				observe("list_asteroids", start, false)
				fail(c, http.StatusInternalServerError, err.Error())
				return
			}
			observability.DefaultMetrics.RecordNASARequest("success")
			if len(asteroids) > limit {
				asteroids = asteroids[:limit]
			}
		} else {
			asteroids = neo.Samples()
			if len(asteroids) > limit {
				asteroids = asteroids[:limit]
			}
		}

		observe("list_asteroids", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"count":     len(asteroids),
			"source":    source,
			"asteroids": asteroids,
		})
	}
}

// resolveAsteroid looks an id up against NASA, falling back to the
// sample catalog when the live lookup is unavailable or empty.
func resolveAsteroid(c *gin.Context, client *neo.Client, id string) *neo.Asteroid {
	asteroid, err := client.Lookup(c.Request.Context(), id)
	if err == nil {
		observability.DefaultMetrics.RecordNASARequest("success")
		return asteroid
	}
	if !errors.Is(err, neo.ErrNoAPIKey) {
		slog.Warn("NASA lookup failed, using sample catalog", "id", id, "error", err)
	}
	observability.DefaultMetrics.RecordNASARequest("fallback")

	if sample, ok := neo.SampleByID(id); ok {
		return sample
	}
	return nil
}

// GetAsteroid handles GET /api/asteroid/:id.
func GetAsteroid(client *neo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.Param("id")
		if err := validation.ValidateAsteroidID(id); err != nil {
			observe("get_asteroid", start, false)
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		asteroid := resolveAsteroid(c, client, id)
		if asteroid == nil {
			observe("get_asteroid", start, false)
			fail(c, http.StatusNotFound, fmt.Sprintf("Asteroid %s not found", id))
			return
		}

		observe("get_asteroid", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"asteroid": asteroid,
		})
	}
}

// CreateImpactScenario handles POST /api/asteroid/:id/impact-scenario.
func CreateImpactScenario(client *neo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.Param("id")
		if err := validation.ValidateAsteroidID(id); err != nil {
			observe("impact_scenario", start, false)
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		asteroid := resolveAsteroid(c, client, id)
		if asteroid == nil {
			observe("impact_scenario", start, false)
			fail(c, http.StatusNotFound, fmt.Sprintf("Asteroid %s not found", id))
			return
		}

		// The body is optional; an empty body means defaults everywhere.
		var req datatypes.ImpactScenarioRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			observe("impact_scenario", start, false)
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		scenario := neo.BuildImpactScenario(asteroid, req.ImpactLat, req.ImpactLon)
		if req.ImpactAngleDeg != nil {
			scenario.ImpactAngleDeg = *req.ImpactAngleDeg
		}

		metrics, err := physics.ComputeImpactMetrics(scenario.Parameters())
		if err != nil {
			slog.Error("impact scenario failed", "id", id, "error", err)
			observe("impact_scenario", start, false)
			failErr(c, err)
			return
		}

		var env *geoctx.EnvironmentalData
		if req.ImpactLat != nil && req.ImpactLon != nil {
			data := geoctx.GetEnvironmentalData(*req.ImpactLat, *req.ImpactLon)
			env = &data
		}

		observe("impact_scenario", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":             true,
			"asteroid":            asteroid,
			"scenario_parameters": scenario,
			"impact_metrics":      metrics,
			"environmental_data":  env,
		})
	}
}

// SearchAsteroids handles GET /api/asteroid/search.
func SearchAsteroids() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		filter := neo.SearchFilter{Name: c.Query("name")}
		echo := datatypes.SearchFilters{Name: filter.Name}

		parse := func(key string) (*float64, bool) {
			raw := c.Query(key)
			if raw == "" {
				return nil, true
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				fail(c, http.StatusBadRequest, fmt.Sprintf("%s must be a number", key))
				return nil, false
			}
			return &v, true
		}

		var ok bool
		if echo.MinDiameter, ok = parse("min_diameter"); !ok {
			observe("search_asteroids", start, false)
			return
		}
		if echo.MaxDiameter, ok = parse("max_diameter"); !ok {
			observe("search_asteroids", start, false)
			return
		}
		if echo.MinVelocity, ok = parse("min_velocity"); !ok {
			observe("search_asteroids", start, false)
			return
		}
		if echo.MaxVelocity, ok = parse("max_velocity"); !ok {
			observe("search_asteroids", start, false)
			return
		}
		if raw := c.Query("hazardous"); raw != "" {
			hazardous, err := strconv.ParseBool(raw)
			if err != nil {
				observe("search_asteroids", start, false)
				fail(c, http.StatusBadRequest, "hazardous must be true or false")
				return
			}
			echo.Hazardous = &hazardous
			filter.Hazardous = &hazardous
		}

		if echo.MinDiameter != nil {
			filter.MinDiameterM = *echo.MinDiameter
		}
		if echo.MaxDiameter != nil {
			filter.MaxDiameterM = *echo.MaxDiameter
		}
		if echo.MinVelocity != nil {
			filter.MinVelocityKmS = *echo.MinVelocity
		}
		if echo.MaxVelocity != nil {
			filter.MaxVelocityKmS = *echo.MaxVelocity
		}

		matches := neo.SearchSamples(filter)

		observe("search_asteroids", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"count":           len(matches),
			"filters_applied": echo,
			"asteroids":       matches,
		})
	}
}

// AsteroidStats handles GET /api/asteroid/stats.
func AsteroidStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		asteroids := neo.Samples()
		stats := datatypes.CatalogStats{TotalCount: len(asteroids)}

		var diameters, velocities []float64
		for _, a := range asteroids {
			if a.DiameterAvgM != nil {
				diameters = append(diameters, *a.DiameterAvgM)
			}
			if a.VelocityKmS != nil {
				velocities = append(velocities, *a.VelocityKmS)
			}
			if a.IsPotentiallyHazardous {
				stats.HazardousCount++
			}
		}
		stats.DiameterStats = rangeStats(diameters)
		stats.VelocityStats = rangeStats(velocities)
		if len(asteroids) > 0 {
			stats.HazardousPercentage = float64(stats.HazardousCount) / float64(len(asteroids)) * 100
		}

		observe("asteroid_stats", start, true)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"stats":   stats,
		})
	}
}

func rangeStats(values []float64) datatypes.RangeStats {
	if len(values) == 0 {
		return datatypes.RangeStats{}
	}
	stats := datatypes.RangeStats{Min: values[0], Max: values[0]}
	sum := 0.0
	for _, v := range values {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += v
	}
	stats.Avg = sum / float64(len(values))
	return stats
}
