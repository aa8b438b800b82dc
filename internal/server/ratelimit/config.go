package ratelimit

import (
	"net/http"
	"time"

	"github.com/jonathan/ai-job-dashboard/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, HEAD, ...)
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	IdleTimeout     time.Duration // buckets unused this long are dropped
	Whitelist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// ChartPaths are the pages that render images on every request.
var ChartPaths = []string{"/industry", "/skills", "/experience"}

// NewConfig converts the dashboard settings into a limiter configuration.
// Page requests share RequestsPerMinute; chart pages get the stricter
// ChartRequestsPerMinute.
func NewConfig(settings config.RateLimitConfig) *Config {
	whitelist := make(map[string]bool, len(settings.Whitelist))
	for _, ip := range settings.Whitelist {
		whitelist[ip] = true
	}

	return &Config{
		Enabled:         settings.Enabled,
		DefaultLimit:    settings.RequestsPerMinute,
		DefaultWindow:   time.Minute,
		DefaultBurst:    settings.Burst,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       whitelist,
		EndpointConfigs: ChartEndpointConfigs(settings.ChartRequestsPerMinute, settings.Burst),
	}
}

// ChartEndpointConfigs limits every chart page to limit requests per minute.
func ChartEndpointConfigs(limit, burst int) []EndpointConfig {
	if burst <= 0 || burst > limit {
		burst = limit
	}
	configs := make([]EndpointConfig, 0, len(ChartPaths))
	for _, path := range ChartPaths {
		configs = append(configs, EndpointConfig{
			Path:   path,
			Method: http.MethodGet,
			Limit:  limit,
			Window: time.Minute,
			Burst:  burst,
		})
	}
	return configs
}
