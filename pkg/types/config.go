// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for packages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "faucris/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings for the CRIS web service client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the public infoobject endpoint of the CRIS web service.
	// Empty means the production default.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxRetries is the number of retry attempts on throttled or
	// temporarily unavailable responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}
