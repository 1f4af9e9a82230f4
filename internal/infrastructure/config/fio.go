package config

import "time"

// FIOConfig holds the upstream game data API configuration
type FIOConfig struct {
	// Base URL of the FIO REST API
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Request timeout
	Timeout time.Duration `mapstructure:"timeout"`

	// Rate limiting towards the API
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Retry behavior on transient failures
	Retry RetryConfig `mapstructure:"retry"`
}

// RateLimitConfig holds client-side rate limiting configuration
type RateLimitConfig struct {
	// Requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size
	Burst int `mapstructure:"burst" validate:"min=1"`
}

// RetryConfig holds retry configuration
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1"`
	BackoffBase time.Duration `mapstructure:"backoff_base"`
}
