package predictor

import (
	"math"
	"testing"

	"nba-predictor-service/internal/domain"
)

func TestRatingDefaultsToBaseline(t *testing.T) {
	store := NewRatingStore(domain.EloSeeds())

	if got := store.Rating("BOS"); got != 1620 {
		t.Fatalf("seeded rating = %v, want 1620", got)
	}
	if got := store.Rating("XXX"); got != 1500 {
		t.Fatalf("unknown team rating = %v, want baseline 1500", got)
	}
}

func TestUpdateRatingsMovesWinnerUp(t *testing.T) {
	store := NewRatingStore(domain.EloSeeds())
	homeBefore := store.Rating("CHA")
	awayBefore := store.Rating("BOS")

	// Underdog home win moves a big chunk of rating.
	store.UpdateRatings("CHA", "BOS", 110, 102)

	homeAfter := store.Rating("CHA")
	awayAfter := store.Rating("BOS")

	if homeAfter <= homeBefore {
		t.Fatalf("winner rating did not rise: %v -> %v", homeBefore, homeAfter)
	}
	if awayAfter >= awayBefore {
		t.Fatalf("loser rating did not fall: %v -> %v", awayBefore, awayAfter)
	}
	gain := homeAfter - homeBefore
	if gain <= eloKFactor/2 {
		t.Fatalf("upset win should move more than half of K, moved %v", gain)
	}
}

func TestUpdateRatingsConservesTotalMass(t *testing.T) {
	store := NewRatingStore(domain.EloSeeds())
	before := store.Rating("BOS") + store.Rating("MIA")

	store.UpdateRatings("BOS", "MIA", 120, 98)

	after := store.Rating("BOS") + store.Rating("MIA")
	if math.Abs(after-before) > 1e-9 {
		t.Fatalf("total rating mass changed: %v -> %v", before, after)
	}
}

func TestUpdateRatingsSeedsUnknownTeamsAtBaseline(t *testing.T) {
	store := NewRatingStore(nil)

	store.UpdateRatings("AAA", "BBB", 100, 90)

	if got := store.Rating("AAA"); got != 1510 {
		t.Fatalf("even-odds winner = %v, want 1500 + K/2 = 1510", got)
	}
	if got := store.Rating("BBB"); got != 1490 {
		t.Fatalf("even-odds loser = %v, want 1490", got)
	}
}
