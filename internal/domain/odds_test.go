package domain

import "testing"

func spreadsAndH2H(point float64) Odds {
	return Odds{Bookmakers: []Bookmaker{{
		Key:   "draftkings",
		Title: "DraftKings",
		Markets: []Market{
			{Key: MarketSpreads, Outcomes: []Outcome{
				{Name: "Boston Celtics", Price: -110, Point: &point},
				{Name: "Miami Heat", Price: -110},
			}},
			{Key: MarketH2H, Outcomes: []Outcome{
				{Name: "Boston Celtics", Price: -180},
				{Name: "Miami Heat", Price: 155},
			}},
		},
	}}}
}

func TestSpreadLineReadsFirstOutcome(t *testing.T) {
	odds := spreadsAndH2H(-5.5)
	line := odds.SpreadLine()
	if line == nil || *line != -5.5 {
		t.Fatalf("expected -5.5, got %v", line)
	}
}

func TestSpreadLineMissingMarket(t *testing.T) {
	if line := (Odds{}).SpreadLine(); line != nil {
		t.Fatalf("expected nil line, got %v", line)
	}
}

func TestMoneylineForMatchesByName(t *testing.T) {
	odds := spreadsAndH2H(-5.5)
	team := Team{Name: "Heat", FullName: "Miami Heat"}
	if got := odds.MoneylineFor(team); got != "+155" {
		t.Fatalf("expected +155, got %s", got)
	}
	home := Team{Name: "Celtics", FullName: "Boston Celtics"}
	if got := odds.MoneylineFor(home); got != "-180" {
		t.Fatalf("expected -180, got %s", got)
	}
}

func TestMoneylineForUnknownTeam(t *testing.T) {
	odds := spreadsAndH2H(-5.5)
	if got := odds.MoneylineFor(Team{Name: "Nuggets", FullName: "Denver Nuggets"}); got != "N/A" {
		t.Fatalf("expected N/A, got %s", got)
	}
}

func TestFormatAmericanOdds(t *testing.T) {
	if got := FormatAmericanOdds(130); got != "+130" {
		t.Fatalf("expected +130, got %s", got)
	}
	if got := FormatAmericanOdds(-150); got != "-150" {
		t.Fatalf("expected -150, got %s", got)
	}
}
