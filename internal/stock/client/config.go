package client

import (
	"time"

	"github.com/zappabad/sentimentdash/internal/httputil"
)

// Config holds configuration for the stock API client.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8000.
	BaseURL string
	// Timeout bounds a single HTTP request.
	Timeout time.Duration
	// Retry is the backoff policy for transport errors and 5xx responses.
	Retry httputil.RetryConfig
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000",
		Timeout: 10 * time.Second,
		Retry:   httputil.NoRetry,
	}
}
