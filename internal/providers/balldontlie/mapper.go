package balldontlie

import (
	"strings"

	"nba-predictor-service/internal/domain"
)

func mapGames(responses []gameResponse) []domain.Game {
	games := make([]domain.Game, 0, len(responses))
	for _, g := range responses {
		games = append(games, mapGame(g))
	}
	return games
}

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		ID:               g.ID,
		Date:             trimDate(g.Date),
		HomeTeam:         mapTeam(g.HomeTeam),
		VisitorTeam:      mapTeam(g.VisitorTeam),
		HomeTeamScore:    g.HomeTeamScore,
		VisitorTeamScore: g.VisitorTeamScore,
		Status:           mapStatus(g.Status, g.Period),
		Time:             strings.TrimSpace(g.Time),
		Period:           g.Period,
	}
}

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		ID:           t.ID,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Name:         t.Name,
		FullName:     t.FullName,
	}
}

// mapStatus collapses upstream status strings to the three lifecycle states
// the UI distinguishes. Upstream reports a tip-off timestamp for games that
// have not started and period > 0 once play begins.
func mapStatus(status string, period int) domain.GameStatus {
	switch strings.ToLower(status) {
	case "final", "ended":
		return domain.StatusFinal
	}
	if period > 0 {
		return domain.StatusLive
	}
	return domain.StatusScheduled
}

// trimDate reduces an upstream timestamp ("2026-02-16T00:00:00.000Z") to the
// calendar date; plain dates pass through.
func trimDate(raw string) string {
	if idx := strings.IndexByte(raw, 'T'); idx > 0 {
		return raw[:idx]
	}
	return raw
}

func mapStatBlock(s statBlockResponse) domain.StatBlock {
	return domain.StatBlock{
		PPG:             s.PPG,
		OPPG:            s.OPPG,
		APG:             s.APG,
		RPG:             s.RPG,
		SPG:             s.SPG,
		BPG:             s.BPG,
		FGPct:           s.FGPct,
		FG3Pct:          s.FG3Pct,
		FTPct:           s.FTPct,
		Wins:            s.Wins,
		Losses:          s.Losses,
		WinPct:          s.WinPct,
		Last10:          s.Last10,
		HomeRecord:      s.HomeRecord,
		AwayRecord:      s.AwayRecord,
		OffensiveRating: s.OffensiveRating,
		DefensiveRating: s.DefensiveRating,
		NetRating:       s.NetRating,
		Pace:            s.Pace,
		TrueShooting:    s.TrueShooting,
	}
}
