package testutil

import "nba-predictor-service/internal/domain"

// SampleGame returns a minimal scheduled matchup fixture on the given date.
func SampleGame(id int, date string) domain.Game {
	return domain.Game{
		ID:   id,
		Date: date,
		HomeTeam: domain.Team{
			ID:           2,
			Abbreviation: "BOS",
			City:         "Boston",
			Name:         "Celtics",
			FullName:     "Boston Celtics",
		},
		VisitorTeam: domain.Team{
			ID:           16,
			Abbreviation: "MIA",
			City:         "Miami",
			Name:         "Heat",
			FullName:     "Miami Heat",
		},
		Status: domain.StatusScheduled,
		Time:   "7:30 PM ET",
	}
}
