// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package neo fetches near-Earth-object records from NASA's NEO REST
// service and converts them into impact-scenario parameters. A small
// built-in sample catalog covers demos and offline use.
package neo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is NASA's NEO REST v1 endpoint.
const DefaultBaseURL = "https://api.nasa.gov/neo/rest/v1"

// nasaRequestsPerHour is the documented per-key budget for api.nasa.gov.
const nasaRequestsPerHour = 1000

// ErrNoAPIKey is returned when a live NASA call is attempted without a
// configured key.
var ErrNoAPIKey = errors.New("NASA API key not configured")

// HTTPClient interface allows injecting mock HTTP clients for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError reports a non-200 answer from the NEO service.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("NEO API returned status %d for %s", e.StatusCode, e.URL)
}

// Client talks to the NASA NEO feed. The zero value is not usable; build
// one with NewClient. All exported methods honor the request budget via
// the shared limiter and respect context cancellation.
type Client struct {
	HTTPClient HTTPClient
	BaseURL    string
	APIKey     string
	Limiter    *rate.Limiter

	// now is stubbed in tests for deterministic default date ranges.
	now func() time.Time
}

// NewClient builds a Client with a 10 s HTTP timeout and the NASA request
// budget spread evenly over the hour, with a small burst allowance.
func NewClient(apiKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		Limiter:    rate.NewLimiter(rate.Limit(float64(nasaRequestsPerHour)/3600.0), 10),
		now:        time.Now,
	}
}

// FetchFeed pulls the NEO feed for [startDate, endDate] (YYYY-MM-DD) and
// returns the flattened asteroid records. Empty dates default to the next
// seven days, mirroring the feed's own maximum window.
func (c *Client) FetchFeed(ctx context.Context, startDate, endDate string) ([]Asteroid, error) {
	if startDate == "" {
		startDate = c.today().Format("2006-01-02")
	}
	if endDate == "" {
		endDate = c.today().AddDate(0, 0, 7).Format("2006-01-02")
	}

	query := url.Values{}
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	var feed feedResponse
	if err := c.get(ctx, "/feed", query, &feed); err != nil {
		return nil, fmt.Errorf("fetching NEO feed: %w", err)
	}
	return ParseFeed(&feed), nil
}

// Lookup fetches one asteroid by its NASA id.
func (c *Client) Lookup(ctx context.Context, id string) (*Asteroid, error) {
	if id == "" {
		return nil, errors.New("asteroid id is empty")
	}

	var entry feedEntry
	if err := c.get(ctx, "/neo/"+url.PathEscape(id), url.Values{}, &entry); err != nil {
		return nil, fmt.Errorf("fetching asteroid %s: %w", id, err)
	}
	asteroid := parseEntry(&entry)
	return &asteroid, nil
}

// get performs one budgeted GET against the NEO service and decodes the
// JSON answer into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}
	if err := c.Limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for request budget: %w", err)
	}

	query.Set("api_key", c.APIKey)
	fullURL := c.BaseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling NEO API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, URL: c.BaseURL + path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding NEO API response: %w", err)
	}
	return nil
}

func (c *Client) today() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
