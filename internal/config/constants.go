package config

import "time"

const (
	envPort        = "PORT"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"
	envCorsOrigins = "CORS_ALLOW_ORIGINS"

	envCacheTTL      = "CACHE_TTL"
	envRetryAttempts = "RETRY_ATTEMPTS"
	envRetryBackoff  = "RETRY_BACKOFF"
	envMinInterval   = "MIN_REQUEST_INTERVAL"
	envDefaultSeason = "DEFAULT_SEASON"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort      = "3001"
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
	// Wildcard keeps local UI development working from any origin.
	defaultCorsOrigins = "*"

	defaultCacheTTL = 5 * Duration(time.Minute)
	// Conservative retry/pacing defaults to respect upstream quotas.
	defaultRetryAttempts = 3
	defaultRetryBackoff  = Duration(time.Second)
	defaultMinInterval   = Duration(time.Second)
	defaultSeason        = 2024

	defaultMetricsPort = "9090"
)
