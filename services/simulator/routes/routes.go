// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package routes wires the simulator's HTTP surface.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meteormadness/meteormadness/pkg/neo"
	"github.com/meteormadness/meteormadness/services/simulator/handlers"
)

// SetupRoutes registers every endpoint on the router. The NEO client is
// shared by all asteroid handlers; its API key may be empty, in which
// case the sample catalog serves the asteroid routes.
func SetupRoutes(router *gin.Engine, neoClient *neo.Client) {
	router.Use(handlers.RequestID())

	router.GET("/", handlers.HealthCheck)
	router.GET("/api/status", handlers.APIStatus(neoClient.APIKey != ""))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	impact := router.Group("/api/impact")
	{
		impact.POST("/simulate", handlers.SimulateImpact())
		impact.POST("/batch-simulate", handlers.BatchSimulateImpacts())
		impact.POST("/compare", handlers.CompareImpacts())
		impact.POST("/environmental-analysis", handlers.EnvironmentalAnalysis())
		impact.POST("/risk-assessment", handlers.RiskAssessment())
	}

	mitigation := router.Group("/api/mitigation")
	{
		mitigation.POST("/deflect", handlers.Deflect())
		mitigation.POST("/compare-methods", handlers.CompareDeflectionMethods())
		mitigation.POST("/optimize", handlers.OptimizeDeflection())
		mitigation.POST("/simulate-mitigation", handlers.SimulateMitigation())
		mitigation.POST("/deflection-feasibility", handlers.DeflectionFeasibility())
		mitigation.POST("/mission-planning", handlers.MissionPlanning())
	}

	asteroid := router.Group("/api/asteroid")
	{
		asteroid.GET("/list", handlers.ListAsteroids(neoClient))
		asteroid.GET("/search", handlers.SearchAsteroids())
		asteroid.GET("/stats", handlers.AsteroidStats())
		asteroid.GET("/:id", handlers.GetAsteroid(neoClient))
		asteroid.POST("/:id/impact-scenario", handlers.CreateImpactScenario(neoClient))
	}
}
