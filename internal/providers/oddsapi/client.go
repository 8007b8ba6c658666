// Package oddsapi fetches NBA spreads and moneyline quotes from The Odds
// API and matches feed entries to requested matchups.
package oddsapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"nba-predictor-service/internal/providers"
)

// Config controls how the client reaches the upstream API. When Keys is set
// the API key is read from the keyring on every request.
type Config struct {
	BaseURL    string
	APIKey     string
	Keys       *providers.Keyring
	HTTPClient *http.Client
	Pacer      *providers.Pacer
}

// Client implements providers.OddsProvider.
type Client struct {
	baseURL    string
	apiKey     func() string
	httpClient *http.Client
	pacer      *providers.Pacer
}

// NewClient constructs an odds client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	key := func() string { return cfg.APIKey }
	if cfg.Keys != nil {
		key = cfg.Keys.Odds
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     key,
		httpClient: httpClient,
		pacer:      cfg.Pacer,
	}
}

// FetchOdds retrieves the full current NBA odds feed (spreads + h2h, US
// region). Matching a specific game happens afterwards with MatchEvent.
func (c *Client) FetchOdds(ctx context.Context) ([]providers.OddsEvent, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+oddsPath, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("apiKey", c.apiKey())
	q.Set("regions", "us")
	q.Set("markets", "spreads,h2h")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Provider:   "oddsapi",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload []eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return mapEvents(payload), nil
}
