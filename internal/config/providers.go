package config

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"

	envOddsBaseURL = "ODDS_API_BASE_URL"
	envOddsAPIKey  = "ODDS_API_KEY"
)

// ProviderConfig controls how we talk to one upstream API. An empty APIKey
// means the provider is unconfigured and the service serves generated data
// for its feeds.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
}

// Configured reports whether an API key is present.
func (p ProviderConfig) Configured() bool {
	return p.APIKey != ""
}

func loadBallDontLie() ProviderConfig {
	return ProviderConfig{
		BaseURL: envOrDefault(envBdlBaseURL, ""),
		APIKey:  envOrDefault(envBdlAPIKey, ""),
	}
}

func loadOddsAPI() ProviderConfig {
	return ProviderConfig{
		BaseURL: envOrDefault(envOddsBaseURL, ""),
		APIKey:  envOrDefault(envOddsAPIKey, ""),
	}
}
