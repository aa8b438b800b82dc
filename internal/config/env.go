package config

import (
	"strconv"
	"strings"
	"time"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig           = "JOBDASH_CONFIG"
	EnvHost             = "JOBDASH_HOST"
	EnvPort             = "JOBDASH_PORT"
	EnvDebug            = "JOBDASH_DEBUG"
	EnvDataPath         = "JOBDASH_DATA_PATH"
	EnvTemplatesDir     = "JOBDASH_TEMPLATES_DIR"
	EnvTrustProxy       = "JOBDASH_TRUST_PROXY"
	EnvShutdownTimeout  = "JOBDASH_SHUTDOWN_TIMEOUT"
	EnvLogLevel         = "JOBDASH_LOG_LEVEL"
	EnvLogFormat        = "JOBDASH_LOG_FORMAT"
	EnvRateLimitEnabled = "JOBDASH_RATE_LIMIT_ENABLED"
	EnvRateLimitRPM     = "JOBDASH_RATE_LIMIT_RPM"
	EnvRateLimitChart   = "JOBDASH_RATE_LIMIT_CHART_RPM"
	EnvRateLimitBurst   = "JOBDASH_RATE_LIMIT_BURST"
	EnvRateLimitAllow   = "JOBDASH_RATE_LIMIT_WHITELIST"
	EnvOTLPEndpoint     = "JOBDASH_OTLP_ENDPOINT"
	EnvServiceName      = "JOBDASH_SERVICE_NAME"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields from the environment. Unparseable numbers,
// booleans and durations are reported rather than ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	e := envReader{lookup: lookup}

	e.string(EnvHost, &c.Server.Host)
	e.int(EnvPort, &c.Server.Port)
	e.bool(EnvDebug, &c.Debug)
	e.string(EnvDataPath, &c.Data.Path)
	e.string(EnvTemplatesDir, &c.Server.TemplatesDir)
	e.bool(EnvTrustProxy, &c.Server.TrustProxy)
	e.duration(EnvShutdownTimeout, &c.Server.ShutdownTimeout)
	e.string(EnvLogLevel, &c.Log.Level)
	e.string(EnvLogFormat, &c.Log.Format)
	e.bool(EnvRateLimitEnabled, &c.RateLimit.Enabled)
	e.int(EnvRateLimitRPM, &c.RateLimit.RequestsPerMinute)
	e.int(EnvRateLimitChart, &c.RateLimit.ChartRequestsPerMinute)
	e.int(EnvRateLimitBurst, &c.RateLimit.Burst)
	if v, ok := e.get(EnvRateLimitAllow); ok {
		c.RateLimit.Whitelist = splitList(v)
	}
	e.string(EnvOTLPEndpoint, &c.Tracing.OTLPEndpoint)
	e.string(EnvServiceName, &c.Tracing.ServiceName)

	if len(e.bad) > 0 {
		return &ValidationError{Fields: e.bad, Message: "invalid environment value"}
	}
	return nil
}

type envReader struct {
	lookup LookupFunc
	bad    []string
}

func (e *envReader) get(key string) (string, bool) {
	v, ok := e.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (e *envReader) string(key string, dst *string) {
	if v, ok := e.get(key); ok {
		*dst = v
	}
}

func (e *envReader) int(key string, dst *int) {
	v, ok := e.get(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.bad = append(e.bad, key)
		return
	}
	*dst = n
}

func (e *envReader) bool(key string, dst *bool) {
	v, ok := e.get(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.bad = append(e.bad, key)
		return
	}
	*dst = b
}

func (e *envReader) duration(key string, dst *time.Duration) {
	v, ok := e.get(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.bad = append(e.bad, key)
		return
	}
	*dst = d
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(list string) []string {
	var out []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
