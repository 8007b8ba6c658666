package testutil

import (
	"context"
	"sync"

	"nba-predictor-service/internal/domain"
	"nba-predictor-service/internal/providers"
)

// GamesStub implements providers.GamesProvider with canned results and call
// counting.
type GamesStub struct {
	mu         sync.Mutex
	Games      []domain.Game
	RangeGames []domain.Game
	Err        error
	Calls      int
	RangeCalls int
}

func (s *GamesStub) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	s.mu.Lock()
	s.Calls++
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []domain.Game
	for _, g := range s.Games {
		if g.Date == date {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *GamesStub) FetchGamesRange(ctx context.Context, startDate string, perPage int, cursor int) ([]domain.Game, error) {
	s.mu.Lock()
	s.RangeCalls++
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.RangeGames, nil
}

// CallCount returns how many single-date fetches the stub has served.
func (s *GamesStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}

// StatsStub implements providers.StatsProvider keyed by team ID.
type StatsStub struct {
	mu    sync.Mutex
	Stats map[int]domain.StatBlock
	Err   error
	Calls int
}

func (s *StatsStub) FetchTeamStats(ctx context.Context, teamID, season int) (domain.StatBlock, error) {
	s.mu.Lock()
	s.Calls++
	s.mu.Unlock()
	if s.Err != nil {
		return domain.StatBlock{}, s.Err
	}
	block, ok := s.Stats[teamID]
	if !ok {
		return domain.StatBlock{}, providers.ErrProviderUnavailable
	}
	return block, nil
}

// OddsStub implements providers.OddsProvider with a fixed event feed.
type OddsStub struct {
	mu     sync.Mutex
	Events []providers.OddsEvent
	Err    error
	Calls  int
}

func (s *OddsStub) FetchOdds(ctx context.Context) ([]providers.OddsEvent, error) {
	s.mu.Lock()
	s.Calls++
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Events, nil
}
