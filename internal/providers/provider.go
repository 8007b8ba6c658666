// Package providers defines the upstream-facing contracts shared by the
// feed orchestrator: fetch interfaces, the shared request pacer, and the
// bounded-retry combinator every call site goes through.
package providers

import (
	"context"

	"nba-predictor-service/internal/domain"
)

// GamesProvider fetches normalized games.
type GamesProvider interface {
	// FetchGames returns the games scheduled for a YYYY-MM-DD date.
	FetchGames(ctx context.Context, date string) ([]domain.Game, error)
	// FetchGamesRange returns a paginated multi-day schedule feed starting
	// at startDate.
	FetchGamesRange(ctx context.Context, startDate string, perPage, cursor int) ([]domain.Game, error)
}

// StatsProvider fetches season aggregates for one team.
type StatsProvider interface {
	FetchTeamStats(ctx context.Context, teamID, season int) (domain.StatBlock, error)
}

// OddsProvider fetches the full current odds feed. Matching a specific
// matchup out of the feed is the caller's concern.
type OddsProvider interface {
	FetchOdds(ctx context.Context) ([]OddsEvent, error)
}

// OddsEvent is one upcoming game in an odds feed, identified by the book's
// team-name strings.
type OddsEvent struct {
	HomeTeam   string
	AwayTeam   string
	Bookmakers []domain.Bookmaker
}
