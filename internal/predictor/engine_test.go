package predictor

import (
	"math"
	"strings"
	"testing"

	"nba-predictor-service/internal/domain"
)

func testEngine() *Engine {
	return NewEngine(NewRatingStore(domain.EloSeeds()))
}

func team(abbr, name, fullName string) domain.Team {
	return domain.Team{Abbreviation: abbr, Name: name, FullName: fullName}
}

func evenStats() domain.StatBlock {
	return domain.StatBlock{
		Last10:          "5-5",
		OffensiveRating: 112,
		DefensiveRating: 112,
		WinPct:          0.5,
	}
}

func matchup(home, away domain.Team) domain.Game {
	return domain.Game{ID: 1, Date: "2026-01-15", HomeTeam: home, VisitorTeam: away, Status: domain.StatusScheduled}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Fatalf("weights sum to %v, want 1.0", sum)
	}
}

func TestEqualTeamsReduceToHomeEdge(t *testing.T) {
	// Unknown abbreviations both default to the 1500 baseline.
	home := team("AAA", "Alphas", "Anytown Alphas")
	away := team("BBB", "Betas", "Beta City Betas")
	stats := evenStats()

	p := testEngine().Predict(matchup(home, away), stats, stats, domain.Odds{})

	if p.Factors.Elo != 0 {
		t.Fatalf("elo factor = %v, want 0", p.Factors.Elo)
	}
	if math.Abs(p.RawScore-4.0) > 1e-9 {
		t.Fatalf("raw score = %v, want home-advantage-only 4.0", p.RawScore)
	}
	if math.Abs(p.Spread.Line-0.4) > 1e-9 {
		t.Fatalf("line = %v, want the 0.4 home edge", p.Spread.Line)
	}
	if p.Spread.Pick.Abbreviation != "AAA" {
		t.Fatalf("expected home picked by a thin margin, got %q", p.Spread.Pick.Abbreviation)
	}
	if p.Spread.ActualLine != nil {
		t.Fatalf("expected nil actual line without odds, got %v", *p.Spread.ActualLine)
	}
	if p.Moneyline.Odds != "N/A" {
		t.Fatalf("expected N/A moneyline without odds, got %q", p.Moneyline.Odds)
	}
}

func TestStrongHomeFavoredAgainstQuotedLine(t *testing.T) {
	home := team("BOS", "Celtics", "Boston Celtics")
	away := team("CLE", "Cavaliers", "Cleveland Cavaliers")
	stats := evenStats()

	line := -5.5
	odds := domain.Odds{Bookmakers: []domain.Bookmaker{{
		Key:   "draftkings",
		Title: "DraftKings",
		Markets: []domain.Market{
			{Key: domain.MarketSpreads, Outcomes: []domain.Outcome{
				{Name: "Boston Celtics", Price: -110, Point: &line},
				{Name: "Cleveland Cavaliers", Price: -110},
			}},
			{Key: domain.MarketH2H, Outcomes: []domain.Outcome{
				{Name: "Boston Celtics", Price: -210},
				{Name: "Cleveland Cavaliers", Price: 175},
			}},
		},
	}}}

	p := testEngine().Predict(matchup(home, away), stats, stats, odds)

	// BOS 1620 vs CLE 1490: elo factor 65, raw score 23.5, spread -2.35.
	if p.Factors.Elo != 65 {
		t.Fatalf("elo factor = %v, want 65", p.Factors.Elo)
	}
	if p.Spread.Pick.Abbreviation != "BOS" {
		t.Fatalf("expected home favored, got %q", p.Spread.Pick.Abbreviation)
	}
	if p.Spread.Confidence < 5 {
		t.Fatalf("confidence = %d, want >= 5", p.Spread.Confidence)
	}
	if p.Spread.ActualLine == nil || *p.Spread.ActualLine != -5.5 {
		t.Fatalf("actual line = %v, want -5.5", p.Spread.ActualLine)
	}
	if p.Moneyline.Odds != "-210" {
		t.Fatalf("moneyline odds = %q, want -210", p.Moneyline.Odds)
	}
}

func TestConfidenceStaysInRangeUnderPathologicalStats(t *testing.T) {
	engine := testEngine()
	home := team("BOS", "Celtics", "Boston Celtics")
	away := team("CHA", "Hornets", "Charlotte Hornets")

	cases := []struct {
		name      string
		homeStats domain.StatBlock
		awayStats domain.StatBlock
	}{
		{
			name:      "runaway home team",
			homeStats: domain.StatBlock{Last10: "10-0", OffensiveRating: 130, DefensiveRating: 95, WinPct: 1.0},
			awayStats: domain.StatBlock{Last10: "0-10", OffensiveRating: 95, DefensiveRating: 130, WinPct: 0},
		},
		{
			name:      "zeroed stats fall back to defaults",
			homeStats: domain.StatBlock{},
			awayStats: domain.StatBlock{},
		},
		{
			name:      "malformed records",
			homeStats: domain.StatBlock{Last10: "ten-zero"},
			awayStats: domain.StatBlock{Last10: "-"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := engine.Predict(matchup(home, away), tc.homeStats, tc.awayStats, domain.Odds{})
			if p.Spread.Confidence < 1 || p.Spread.Confidence > 10 {
				t.Fatalf("spread confidence %d out of range", p.Spread.Confidence)
			}
			if p.Moneyline.Confidence < 1 || p.Moneyline.Confidence > 10 {
				t.Fatalf("moneyline confidence %d out of range", p.Moneyline.Confidence)
			}
			if len(p.Spread.Reasoning) == 0 || len(p.Moneyline.Reasoning) == 0 {
				t.Fatalf("reasoning lists must never be empty")
			}
		})
	}
}

func TestRecentFormLeftUnclamped(t *testing.T) {
	home := team("AAA", "Alphas", "Anytown Alphas")
	away := team("BBB", "Betas", "Beta City Betas")
	homeStats := domain.StatBlock{Last10: "10-0", OffensiveRating: 110, DefensiveRating: 110}
	awayStats := domain.StatBlock{Last10: "0-10", OffensiveRating: 110, DefensiveRating: 110}

	p := testEngine().Predict(matchup(home, away), homeStats, awayStats, domain.Odds{})

	if p.Factors.RecentForm != 200 {
		t.Fatalf("recent form = %v, want unclamped 200", p.Factors.RecentForm)
	}
}

func TestReasoningSentences(t *testing.T) {
	home := team("BOS", "Celtics", "Boston Celtics")
	away := team("CHA", "Hornets", "Charlotte Hornets")
	homeStats := domain.StatBlock{Last10: "9-1", OffensiveRating: 120, DefensiveRating: 104, WinPct: 0.75}
	awayStats := domain.StatBlock{Last10: "2-8", OffensiveRating: 105, DefensiveRating: 118, WinPct: 0.3}

	p := testEngine().Predict(matchup(home, away), homeStats, awayStats, domain.Odds{})

	joined := strings.Join(p.Spread.Reasoning, "\n")
	for _, want := range []string{
		"Celtics have superior Elo rating (100 point advantage)",
		"Celtics in better form (9-1 last 10 games)",
		"Celtics have superior offensive efficiency",
		"Celtics have stronger defensive rating",
		"Celtics benefit from home court advantage",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("spread reasoning missing %q in:\n%s", want, joined)
		}
	}

	ml := strings.Join(p.Moneyline.Reasoning, "\n")
	for _, want := range []string{
		"Celtics are the stronger team overall",
		"Home court advantage favors Celtics",
		"Celtics have 75.0% win rate this season",
	} {
		if !strings.Contains(ml, want) {
			t.Errorf("moneyline reasoning missing %q in:\n%s", want, ml)
		}
	}
}

func TestReasoningFallbackSentences(t *testing.T) {
	home := team("AAA", "Alphas", "Anytown Alphas")
	away := team("BBB", "Betas", "Beta City Betas")
	stats := evenStats()

	// With home advantage zeroed no gate fires on either list.
	spread, moneyline := reasoning(domain.Factors{}, home, away, stats, stats)

	if len(spread) != 1 || spread[0] != fallbackSpreadReason {
		t.Fatalf("unexpected spread fallback %v", spread)
	}
	if len(moneyline) != 1 || moneyline[0] != fallbackMoneylineReason {
		t.Fatalf("unexpected moneyline fallback %v", moneyline)
	}
}

func TestWinRatioParsing(t *testing.T) {
	cases := []struct {
		record string
		want   float64
	}{
		{"7-3", 0.7},
		{"10-0", 1.0},
		{"0-10", 0.0},
		{"", 0.5},
		{"garbage", 0.5},
		{"x-y", 0.5},
		{"0-0", 0.5},
	}
	for _, tc := range cases {
		if got := winRatio(tc.record); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("winRatio(%q) = %v, want %v", tc.record, got, tc.want)
		}
	}
}
