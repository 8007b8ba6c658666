package mock

import (
	"math/rand"
	"testing"
)

func TestGamesFixedSlate(t *testing.T) {
	games := Games("2026-01-15")

	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	for _, g := range games {
		if g.Date != "2026-01-15" {
			t.Errorf("game %d: date = %q, want 2026-01-15", g.ID, g.Date)
		}
		if g.Status != "scheduled" {
			t.Errorf("game %d: status = %q, want scheduled", g.ID, g.Status)
		}
	}
	if games[0].HomeTeam.Abbreviation != "LAL" || games[0].VisitorTeam.Abbreviation != "GSW" {
		t.Errorf("first matchup = %s vs %s, want LAL vs GSW",
			games[0].HomeTeam.Abbreviation, games[0].VisitorTeam.Abbreviation)
	}
	if games[2].Time != "10:00 PM ET" {
		t.Errorf("late game time = %q, want 10:00 PM ET", games[2].Time)
	}
	if games[1].HomeTeam.FullName != "Boston Celtics" {
		t.Errorf("full name = %q, want Boston Celtics", games[1].HomeTeam.FullName)
	}
}

func TestGamesListSpansDays(t *testing.T) {
	games := GamesList("2026-01-15", 10)

	if len(games) != 10 {
		t.Fatalf("expected 10 games, got %d", len(games))
	}
	wantDates := map[int]string{
		0: "2026-01-15",
		2: "2026-01-15",
		3: "2026-01-16",
		5: "2026-01-16",
		6: "2026-01-17",
		9: "2026-01-18",
	}
	for i, want := range wantDates {
		if games[i].Date != want {
			t.Errorf("game %d: date = %q, want %q", i, games[i].Date, want)
		}
	}
	for i, g := range games {
		if g.ID != i {
			t.Errorf("game %d: id = %d", i, g.ID)
		}
		if g.HomeTeam.ID != i*2 || g.VisitorTeam.ID != i*2+1 {
			t.Errorf("game %d: team ids = %d/%d", i, g.HomeTeam.ID, g.VisitorTeam.ID)
		}
	}
	if games[9].HomeTeam.Name != "Timberwolves" || games[9].HomeTeam.City != "Timberwolves" {
		t.Errorf("fixture team = %+v", games[9].HomeTeam)
	}
}

func TestGamesListCyclesFixtures(t *testing.T) {
	games := GamesList("2026-01-15", 12)
	if len(games) != 12 {
		t.Fatalf("expected 12 games, got %d", len(games))
	}
	if games[10].HomeTeam.Abbreviation != "LAL" || games[11].HomeTeam.Abbreviation != "BOS" {
		t.Errorf("cycle restart = %s, %s", games[10].HomeTeam.Abbreviation, games[11].HomeTeam.Abbreviation)
	}
}

func TestTeamStatsDeterministic(t *testing.T) {
	a := TeamStats(14)
	b := TeamStats(14)
	if a != b {
		t.Fatalf("stats for same team differ:\n%+v\n%+v", a, b)
	}
	if TeamStats(14) != TeamStats(44) {
		t.Errorf("team ids congruent mod 30 should share stats")
	}
}

func TestTeamStatsInvariants(t *testing.T) {
	for id := 0; id < 60; id++ {
		s := TeamStats(id)
		if s.Losses < 10 {
			t.Errorf("team %d: losses = %d, want >= 10", id, s.Losses)
		}
		wantPct := float64(s.Wins) / float64(s.Wins+s.Losses)
		if s.WinPct != wantPct {
			t.Errorf("team %d: win_pct = %v, want %v", id, s.WinPct, wantPct)
		}
		if s.NetRating == 0 && s.OffensiveRating != s.DefensiveRating {
			t.Errorf("team %d: net rating not derived", id)
		}
		if s.PPG <= 0 || s.FGPct <= 0 || s.Last10 == "" {
			t.Errorf("team %d: incomplete block %+v", id, s)
		}
	}
}

func TestTeamStatsContendersScoreHigher(t *testing.T) {
	contender := TeamStats(2)
	rebuilder := TeamStats(22)
	if contender.WinPct <= rebuilder.WinPct {
		t.Errorf("contender win_pct %v <= rebuilder %v", contender.WinPct, rebuilder.WinPct)
	}
	if contender.NetRating <= rebuilder.NetRating {
		t.Errorf("contender net rating %v <= rebuilder %v", contender.NetRating, rebuilder.NetRating)
	}
}

func TestOddsShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		odds := Odds("Boston Celtics", "Miami Heat", rng)

		if len(odds.Bookmakers) != 1 || odds.Bookmakers[0].Key != "draftkings" {
			t.Fatalf("bookmakers = %+v", odds.Bookmakers)
		}
		line := odds.SpreadLine()
		if line == nil {
			t.Fatal("missing spread line")
		}
		if *line < -5 || *line > 4 {
			t.Errorf("spread %v out of range", *line)
		}

		spreads := odds.Bookmakers[0].Markets[0]
		if spreads.Key != "spreads" {
			t.Fatalf("first market = %q, want spreads", spreads.Key)
		}
		if spreads.Outcomes[0].Price != -110 || spreads.Outcomes[1].Price != -110 {
			t.Errorf("spread prices = %v/%v, want -110", spreads.Outcomes[0].Price, spreads.Outcomes[1].Price)
		}
		if *spreads.Outcomes[1].Point != -*line {
			t.Errorf("away point %v, want %v", *spreads.Outcomes[1].Point, -*line)
		}
	}
}

func TestOddsFavoritePricedNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		odds := Odds("Phoenix Suns", "Denver Nuggets", rng)
		spread := *odds.SpreadLine()

		h2h := odds.Bookmakers[0].Markets[1]
		homeML := h2h.Outcomes[0].Price
		awayML := h2h.Outcomes[1].Price

		switch {
		case spread < 0:
			if homeML != -150-(-spread)*20 {
				t.Errorf("spread %v: home ML = %v", spread, homeML)
			}
			if awayML != 130+(-spread)*20 {
				t.Errorf("spread %v: away ML = %v", spread, awayML)
			}
		case spread > 0:
			if homeML != 130+spread*20 {
				t.Errorf("spread %v: home ML = %v", spread, homeML)
			}
			if awayML != -150-spread*20 {
				t.Errorf("spread %v: away ML = %v", spread, awayML)
			}
		default:
			if homeML != 130 || awayML != 130 {
				t.Errorf("pickem MLs = %v/%v, want 130", homeML, awayML)
			}
		}
	}
}
