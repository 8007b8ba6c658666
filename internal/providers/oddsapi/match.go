package oddsapi

import (
	"strings"

	"nba-predictor-service/internal/providers"
)

// MatchEvent selects the feed entry for a matchup. Book feeds quote full
// names ("Boston Celtics") while callers may pass nicknames or full names,
// so both sides match when either string contains the other.
func MatchEvent(events []providers.OddsEvent, homeTeam, awayTeam string) (providers.OddsEvent, bool) {
	for _, event := range events {
		if namesOverlap(event.HomeTeam, homeTeam) && namesOverlap(event.AwayTeam, awayTeam) {
			return event, true
		}
	}
	return providers.OddsEvent{}, false
}

func namesOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
