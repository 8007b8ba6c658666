package oddsapi

import (
	"time"

	"nba-predictor-service/internal/domain"
	"nba-predictor-service/internal/providers"
)

const (
	defaultBaseURL     = "https://api.the-odds-api.com/v4"
	defaultHTTPTimeout = 10 * time.Second
	oddsPath           = "/sports/basketball_nba/odds/"

	// ProviderName tags provenance metadata on responses served from this
	// client.
	ProviderName = "TheOddsAPI"
)

type eventResponse struct {
	HomeTeam   string              `json:"home_team"`
	AwayTeam   string              `json:"away_team"`
	Bookmakers []bookmakerResponse `json:"bookmakers"`
}

type bookmakerResponse struct {
	Key     string           `json:"key"`
	Title   string           `json:"title"`
	Markets []marketResponse `json:"markets"`
}

type marketResponse struct {
	Key      string            `json:"key"`
	Outcomes []outcomeResponse `json:"outcomes"`
}

type outcomeResponse struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

func mapEvents(responses []eventResponse) []providers.OddsEvent {
	events := make([]providers.OddsEvent, 0, len(responses))
	for _, e := range responses {
		events = append(events, providers.OddsEvent{
			HomeTeam:   e.HomeTeam,
			AwayTeam:   e.AwayTeam,
			Bookmakers: mapBookmakers(e.Bookmakers),
		})
	}
	return events
}

func mapBookmakers(responses []bookmakerResponse) []domain.Bookmaker {
	bookmakers := make([]domain.Bookmaker, 0, len(responses))
	for _, b := range responses {
		markets := make([]domain.Market, 0, len(b.Markets))
		for _, m := range b.Markets {
			outcomes := make([]domain.Outcome, 0, len(m.Outcomes))
			for _, o := range m.Outcomes {
				outcomes = append(outcomes, domain.Outcome{Name: o.Name, Price: o.Price, Point: o.Point})
			}
			markets = append(markets, domain.Market{Key: m.Key, Outcomes: outcomes})
		}
		bookmakers = append(bookmakers, domain.Bookmaker{Key: b.Key, Title: b.Title, Markets: markets})
	}
	return bookmakers
}
