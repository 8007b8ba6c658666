// Package balldontlie fetches games and team statistics from the
// balldontlie API and maps them to domain models.
package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"nba-predictor-service/internal/domain"
	"nba-predictor-service/internal/providers"
)

// Config controls how the client reaches the upstream API. When Keys is set
// the client reads its API key from the keyring on every request, so key
// updates take effect without rebuilding the client.
type Config struct {
	BaseURL    string
	APIKey     string
	Keys       *providers.Keyring
	HTTPClient *http.Client
	Pacer      *providers.Pacer
}

// Client implements providers.GamesProvider and providers.StatsProvider.
type Client struct {
	baseURL    string
	apiKey     func() string
	httpClient httpDoer
	pacer      *providers.Pacer
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	key := func() string { return cfg.APIKey }
	if cfg.Keys != nil {
		key = cfg.Keys.BallDontLie
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     key,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		pacer:      cfg.Pacer,
	}
}

// FetchGames retrieves the games scheduled for a YYYY-MM-DD date.
func (c *Client) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	params := map[string]string{"dates[]": date}
	var payload gamesResponse
	if err := c.get(ctx, "/games", params, &payload); err != nil {
		return nil, err
	}
	return mapGames(payload.Data), nil
}

// FetchGamesRange retrieves a paginated multi-day schedule feed.
func (c *Client) FetchGamesRange(ctx context.Context, startDate string, perPage, cursor int) ([]domain.Game, error) {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	params := map[string]string{
		"start_date": startDate,
		"per_page":   strconv.Itoa(perPage),
	}
	if cursor > 0 {
		params["cursor"] = strconv.Itoa(cursor)
	}
	var payload gamesResponse
	if err := c.get(ctx, "/games", params, &payload); err != nil {
		return nil, err
	}
	return mapGames(payload.Data), nil
}

// FetchTeamStats retrieves season aggregates for one team.
func (c *Client) FetchTeamStats(ctx context.Context, teamID, season int) (domain.StatBlock, error) {
	params := map[string]string{
		"team_ids[]": strconv.Itoa(teamID),
		"seasons[]":  strconv.Itoa(season),
	}
	var payload teamStatsResponse
	if err := c.get(ctx, "/team_stats", params, &payload); err != nil {
		return domain.StatBlock{}, err
	}
	if len(payload.Data) == 0 {
		return domain.StatBlock{}, fmt.Errorf("balldontlie: no stats for team %d season %d", teamID, season)
	}
	return mapStatBlock(payload.Data[0]), nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	if err := c.pacer.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	q := req.URL.Query()
	for name, value := range params {
		q.Set(name, value)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	if key := c.apiKey(); key != "" {
		req.Header.Set("Authorization", key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   "balldontlie",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
