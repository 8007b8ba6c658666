package balldontlie

import "time"

const (
	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultPerPage     = 10

	// ProviderName tags provenance metadata on responses served from this
	// client.
	ProviderName = "BallDontLie"
)
