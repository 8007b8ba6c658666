package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	CorsOrigins []string

	CacheTTL      Duration
	RetryAttempts int
	RetryBackoff  Duration
	MinInterval   Duration
	Season        int

	BallDontLie ProviderConfig
	OddsAPI     ProviderConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		CorsOrigins: listEnvOrDefault(envCorsOrigins, []string{defaultCorsOrigins}),

		CacheTTL:      durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		MinInterval:   durationEnvOrDefault(envMinInterval, defaultMinInterval),
		Season:        intEnvOrDefault(envDefaultSeason, defaultSeason),

		BallDontLie: loadBallDontLie(),
		OddsAPI:     loadOddsAPI(),
		Metrics:     loadMetrics(),
	}
}
