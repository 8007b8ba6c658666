package predictor

import (
	"math"
	"sync"
)

const (
	// baselineRating is assumed for any team without a seeded rating.
	baselineRating = 1500
	// eloKFactor scales how far one result moves a rating.
	eloKFactor = 20
)

// RatingStore holds the per-team Elo ratings behind a lock. Ratings live for
// the process lifetime; updates happen only through UpdateRatings.
type RatingStore struct {
	mu      sync.RWMutex
	ratings map[string]float64
}

// NewRatingStore seeds a store from a ratings map, usually domain.EloSeeds.
func NewRatingStore(seeds map[string]float64) *RatingStore {
	ratings := make(map[string]float64, len(seeds))
	for abbr, rating := range seeds {
		ratings[abbr] = rating
	}
	return &RatingStore{ratings: ratings}
}

// Rating returns the current rating for a team abbreviation, or the 1500
// baseline for unknown teams.
func (s *RatingStore) Rating(abbr string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rating, ok := s.ratings[abbr]; ok {
		return rating
	}
	return baselineRating
}

// UpdateRatings applies a standard logistic Elo update for a finished game.
// The winner gains what the loser drops, so total rating mass is conserved.
func (s *RatingStore) UpdateRatings(homeAbbr, awayAbbr string, homeScore, awayScore int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	homeElo := s.ratingLocked(homeAbbr)
	awayElo := s.ratingLocked(awayAbbr)

	expectedHome := 1 / (1 + math.Pow(10, (awayElo-homeElo)/400))
	actualHome := 0.0
	if homeScore > awayScore {
		actualHome = 1
	}

	s.ratings[homeAbbr] = homeElo + eloKFactor*(actualHome-expectedHome)
	s.ratings[awayAbbr] = awayElo + eloKFactor*((1-actualHome)-(1-expectedHome))
}

func (s *RatingStore) ratingLocked(abbr string) float64 {
	if rating, ok := s.ratings[abbr]; ok {
		return rating
	}
	return baselineRating
}
