package ratelimit

import (
	"net/http"
	"strings"
)

// HealthPath is never rate limited.
const HealthPath = "/health"

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// HEAD requests match GET entries. Paths ending in "/" match by prefix.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == HealthPath {
		return &EndpointConfig{Path: HealthPath}
	}
	if method == http.MethodHead {
		method = http.MethodGet
	}

	// Trailing slashes are not significant for exact matches
	trimmed := path
	if len(trimmed) > 1 {
		trimmed = strings.TrimSuffix(trimmed, "/")
	}
	for i := range configs {
		config := &configs[i]
		if config.Method == method && (config.Path == path || config.Path == trimmed) {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
