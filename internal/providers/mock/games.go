// Package mock generates deterministic stand-in data for every feed the
// service exposes. The generators run when no upstream API key is configured
// and as the fallback when a real provider fails, so their shapes match the
// real providers' output exactly.
package mock

import (
	"strings"

	"nba-predictor-service/internal/domain"
	"nba-predictor-service/internal/timeutil"
)

// Games returns the fixed single-night slate stamped with the requested date.
func Games(date string) []domain.Game {
	return []domain.Game{
		{
			ID:   1,
			Date: date,
			HomeTeam: domain.Team{
				ID:           1,
				Abbreviation: "LAL",
				City:         "Los Angeles",
				Name:         "Lakers",
				FullName:     "Los Angeles Lakers",
			},
			VisitorTeam: domain.Team{
				ID:           2,
				Abbreviation: "GSW",
				City:         "Golden State",
				Name:         "Warriors",
				FullName:     "Golden State Warriors",
			},
			Status: domain.StatusScheduled,
			Time:   "7:30 PM ET",
		},
		{
			ID:   2,
			Date: date,
			HomeTeam: domain.Team{
				ID:           3,
				Abbreviation: "BOS",
				City:         "Boston",
				Name:         "Celtics",
				FullName:     "Boston Celtics",
			},
			VisitorTeam: domain.Team{
				ID:           4,
				Abbreviation: "MIA",
				City:         "Miami",
				Name:         "Heat",
				FullName:     "Miami Heat",
			},
			Status: domain.StatusScheduled,
			Time:   "7:00 PM ET",
		},
		{
			ID:   3,
			Date: date,
			HomeTeam: domain.Team{
				ID:           5,
				Abbreviation: "PHX",
				City:         "Phoenix",
				Name:         "Suns",
				FullName:     "Phoenix Suns",
			},
			VisitorTeam: domain.Team{
				ID:           6,
				Abbreviation: "DEN",
				City:         "Denver",
				Name:         "Nuggets",
				FullName:     "Denver Nuggets",
			},
			Status: domain.StatusScheduled,
			Time:   "10:00 PM ET",
		},
	}
}

type fixtureMatchup struct {
	homeAbbr, awayAbbr string
	homeName, awayName string
	tipoff             string
}

var fixtureSlate = []fixtureMatchup{
	{"LAL", "GSW", "Lakers", "Warriors", "19:30"},
	{"BOS", "MIA", "Celtics", "Heat", "19:00"},
	{"PHX", "DEN", "Suns", "Nuggets", "22:00"},
	{"LAC", "NYK", "Clippers", "Knicks", "19:30"},
	{"MIL", "BOS", "Bucks", "Celtics", "20:00"},
	{"DAL", "HOU", "Mavericks", "Rockets", "20:30"},
	{"SAS", "OKC", "Spurs", "Thunder", "21:00"},
	{"TOR", "WAS", "Raptors", "Wizards", "19:30"},
	{"ATL", "CHA", "Hawks", "Hornets", "19:30"},
	{"MIN", "MEM", "Timberwolves", "Grizzlies", "20:00"},
}

// GamesList cycles the fixture slate across consecutive days starting at
// startDate, three games per night.
func GamesList(startDate string, perPage int) []domain.Game {
	games := make([]domain.Game, 0, perPage)
	for i := 0; i < perPage; i++ {
		m := fixtureSlate[i%len(fixtureSlate)]
		games = append(games, domain.Game{
			ID:          i,
			Date:        timeutil.AddDays(startDate, i/3),
			HomeTeam:    fixtureTeam(i*2, m.homeAbbr, m.homeName),
			VisitorTeam: fixtureTeam(i*2+1, m.awayAbbr, m.awayName),
			Status:      domain.StatusScheduled,
			Time:        m.tipoff + " ET",
		})
	}
	return games
}

func fixtureTeam(id int, abbr, name string) domain.Team {
	city, _, _ := strings.Cut(name, " ")
	return domain.Team{
		ID:           id,
		Abbreviation: abbr,
		City:         city,
		Name:         name,
		FullName:     name,
	}
}
