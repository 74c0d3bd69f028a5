package config

const (
	defaultServerPort     = 8080
	defaultRateLimitBurst = 20

	defaultBreakerMaxFailures = 5
	defaultBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.base_path":     "/api",
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst_size":          defaultRateLimitBurst,

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":       DriverSQLite,
		"storage.path":         "data/todolists.db",
		"storage.busy_timeout": "5s",

		"breaker.max_failures":    defaultBreakerMaxFailures,
		"breaker.timeout":         "30s",
		"breaker.half_open_limit": defaultBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todolists-api",
	}
}
