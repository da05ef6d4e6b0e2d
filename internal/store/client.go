// Package store is the gateway to the hosted Supabase project. All durable
// state (packages, settings, bookings) lives there and is reached over the
// PostgREST API; failures are logged and degrade to empty results, they are
// never surfaced to handlers as errors.
package store

import (
	"errors"
	"strings"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
}

// New builds a PostgREST client. Missing credentials are a fatal
// configuration error raised here, at construction.
func New(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, errors.New("supabase credentials not configured: set SUPABASE_URL and SUPABASE_ANON_KEY")
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/rest/v1").
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Accept", "application/json")

	return &Client{http: http}, nil
}

