// Package feed orchestrates every data feed the service exposes: cache
// lookup, keyless short-circuit, paced and retried upstream fetches, and the
// generated-data fallback that guarantees a response for every request.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"nba-predictor-service/internal/cache"
	"nba-predictor-service/internal/domain"
	"nba-predictor-service/internal/logging"
	"nba-predictor-service/internal/metrics"
	"nba-predictor-service/internal/providers"
	"nba-predictor-service/internal/providers/balldontlie"
	"nba-predictor-service/internal/providers/mock"
	"nba-predictor-service/internal/providers/oddsapi"
	"nba-predictor-service/internal/timeutil"
)

// Feed labels used for cache keys and metrics.
const (
	feedGames     = "games"
	feedGamesList = "games-list"
	feedTeamStats = "team-stats"
	feedOdds      = "odds"
)

// lookbackDays bounds how far back the games feed walks when the requested
// date has no games.
const lookbackDays = 7

// User-facing provenance messages. The browser UI surfaces these verbatim.
const (
	msgConfigureGamesKey = "Using mock data. Configure BALLDONTLIE_API_KEY in .env to enable real data."
	msgConfigureOddsKey  = "Using mock data. Configure ODDS_API_KEY in .env to enable real odds data."
	msgAPIFailed         = "Real API failed, using mock data as fallback"
	msgOddsNotFound      = "Game not found in real odds API, using mock data"
)

// Config wires the orchestrator's collaborators.
type Config struct {
	Cache   *cache.Cache
	Games   providers.GamesProvider
	Stats   providers.StatsProvider
	Odds    providers.OddsProvider
	Keys    *providers.Keyring
	Metrics *metrics.Recorder
	Logger  *slog.Logger

	RetryAttempts int
	RetryBackoff  time.Duration
	// Season used when a stats request does not name one.
	Season int
	// Rand drives mock odds generation; tests inject a seeded source.
	Rand *rand.Rand
}

// Service serves every feed. Its operations never return errors: a failed or
// unconfigured upstream degrades to generated data, tagged so callers can
// tell the difference.
type Service struct {
	cache   *cache.Cache
	games   providers.GamesProvider
	stats   providers.StatsProvider
	odds    providers.OddsProvider
	keys    *providers.Keyring
	metrics *metrics.Recorder
	logger  *slog.Logger

	retryAttempts int
	retryBackoff  time.Duration
	season        int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService constructs the orchestrator.
func NewService(cfg Config) *Service {
	c := cfg.Cache
	if c == nil {
		c = cache.New(cache.DefaultTTL)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		cache:         c,
		games:         cfg.Games,
		stats:         cfg.Stats,
		odds:          cfg.Odds,
		keys:          cfg.Keys,
		metrics:       cfg.Metrics,
		logger:        cfg.Logger,
		retryAttempts: cfg.RetryAttempts,
		retryBackoff:  cfg.RetryBackoff,
		season:        cfg.Season,
		rng:           rng,
	}
}

// UpdateKeys replaces both upstream API keys in one step. Cached responses
// are left to age out on their own.
func (s *Service) UpdateKeys(keys providers.Keys) {
	s.keys.Update(keys)
}

// ConfiguredProviders reports which upstreams have an API key present.
func (s *Service) ConfiguredProviders() (ballDontLie, odds bool) {
	snap := s.keys.Snapshot()
	return snap.BallDontLie != "", snap.Odds != ""
}

// Games returns the slate for a YYYY-MM-DD date. When the date is empty of
// games it walks up to seven prior days and serves the first non-empty one,
// tagged with the fallback date.
func (s *Service) Games(ctx context.Context, date string) domain.GamesEnvelope {
	key := cache.Key(feedGames, map[string]string{"date": date})
	if cached, ok := s.cacheGet(ctx, feedGames, key); ok {
		return cached.(domain.GamesEnvelope)
	}

	if s.keys.BallDontLie() == "" {
		env := domain.GamesEnvelope{Data: mock.Games(date)}
		env.DataSource = domain.SourceMock
		env.Message = msgConfigureGamesKey
		s.serveMock(ctx, feedGames, key, env, true)
		return env
	}

	games, err := s.fetchGames(ctx, date)
	if err != nil {
		env := domain.GamesEnvelope{Data: mock.Games(date)}
		env.DataSource = domain.SourceMock
		env.Message = msgAPIFailed
		s.serveMock(ctx, feedGames, key, env, false)
		return env
	}

	var fallbackDate string
	if len(games) == 0 {
		for daysBack := 1; daysBack <= lookbackDays; daysBack++ {
			prior := timeutil.AddDays(date, -daysBack)
			priorGames, err := s.fetchGames(ctx, prior)
			if err != nil {
				continue
			}
			if len(priorGames) > 0 {
				games = priorGames
				fallbackDate = prior
				break
			}
		}
	}

	if games == nil {
		games = []domain.Game{}
	}
	env := domain.GamesEnvelope{Data: games}
	env.DataSource = domain.SourceReal
	env.APIProvider = balldontlie.ProviderName
	env.RequestedDate = date
	if fallbackDate != "" {
		env.FallbackDate = fallbackDate
		env.Message = fmt.Sprintf("Showing games from %s (no games found for %s)", fallbackDate, date)
	}

	s.cache.Set(key, env)
	logging.Info(logging.FromContext(ctx, s.logger), "games served",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
		slog.String(logging.FieldDataSource, string(domain.SourceReal)),
	)
	return env
}

// GamesList returns a paginated multi-day schedule starting at startDate.
func (s *Service) GamesList(ctx context.Context, startDate string, perPage, cursor int) domain.GamesEnvelope {
	key := cache.Key(feedGamesList, map[string]string{
		"start_date": startDate,
		"per_page":   strconv.Itoa(perPage),
		"cursor":     strconv.Itoa(cursor),
	})
	if cached, ok := s.cacheGet(ctx, feedGamesList, key); ok {
		return cached.(domain.GamesEnvelope)
	}

	if s.keys.BallDontLie() == "" {
		env := domain.GamesEnvelope{Data: mock.GamesList(startDate, perPage)}
		env.DataSource = domain.SourceMock
		env.Message = msgConfigureGamesKey
		s.serveMock(ctx, feedGamesList, key, env, true)
		return env
	}

	games, err := providers.Retry(ctx, s.retryConfig(balldontlie.ProviderName), func(ctx context.Context) ([]domain.Game, error) {
		return s.attemptGames(ctx, func(ctx context.Context) ([]domain.Game, error) {
			return s.games.FetchGamesRange(ctx, startDate, perPage, cursor)
		})
	})
	if err != nil {
		env := domain.GamesEnvelope{Data: mock.GamesList(startDate, perPage)}
		env.DataSource = domain.SourceMock
		env.Message = msgAPIFailed
		s.serveMock(ctx, feedGamesList, key, env, false)
		return env
	}

	if games == nil {
		games = []domain.Game{}
	}
	env := domain.GamesEnvelope{Data: games}
	env.DataSource = domain.SourceReal
	env.APIProvider = balldontlie.ProviderName
	s.cache.Set(key, env)
	return env
}

// TeamStats returns season aggregates for one team. A non-positive season
// falls back to the configured default.
func (s *Service) TeamStats(ctx context.Context, teamID, season int) domain.StatsEnvelope {
	if season <= 0 {
		season = s.season
	}
	key := cache.Key(feedTeamStats, map[string]string{
		"team_id": strconv.Itoa(teamID),
		"season":  strconv.Itoa(season),
	})
	if cached, ok := s.cacheGet(ctx, feedTeamStats, key); ok {
		return cached.(domain.StatsEnvelope)
	}

	if s.keys.BallDontLie() == "" {
		env := domain.StatsEnvelope{Data: mock.TeamStats(teamID)}
		env.DataSource = domain.SourceMock
		env.Message = msgConfigureGamesKey
		s.serveMock(ctx, feedTeamStats, key, env, true)
		return env
	}

	stats, err := providers.Retry(ctx, s.retryConfig(balldontlie.ProviderName), func(ctx context.Context) (domain.StatBlock, error) {
		start := time.Now()
		block, err := s.stats.FetchTeamStats(ctx, teamID, season)
		s.metrics.RecordProviderAttempt(balldontlie.ProviderName, time.Since(start), err)
		return block, err
	})
	if err != nil {
		env := domain.StatsEnvelope{Data: mock.TeamStats(teamID)}
		env.DataSource = domain.SourceMock
		env.Message = msgAPIFailed
		s.serveMock(ctx, feedTeamStats, key, env, false)
		return env
	}

	env := domain.StatsEnvelope{Data: stats}
	env.DataSource = domain.SourceReal
	env.APIProvider = balldontlie.ProviderName
	s.cache.Set(key, env)
	return env
}

// Odds returns the quoted lines for one matchup. The upstream feed covers
// the whole league, so the matchup is located by team-name containment in
// either direction.
func (s *Service) Odds(ctx context.Context, homeTeam, awayTeam string) domain.OddsEnvelope {
	key := cache.Key(feedOdds, map[string]string{
		"home": homeTeam,
		"away": awayTeam,
	})
	if cached, ok := s.cacheGet(ctx, feedOdds, key); ok {
		return cached.(domain.OddsEnvelope)
	}

	if s.keys.Odds() == "" {
		env := domain.OddsEnvelope{Odds: s.mockOdds(homeTeam, awayTeam)}
		env.DataSource = domain.SourceMock
		env.Message = msgConfigureOddsKey
		s.serveMock(ctx, feedOdds, key, env, true)
		return env
	}

	events, err := providers.Retry(ctx, s.retryConfig(oddsapi.ProviderName), func(ctx context.Context) ([]providers.OddsEvent, error) {
		start := time.Now()
		events, err := s.odds.FetchOdds(ctx)
		s.metrics.RecordProviderAttempt(oddsapi.ProviderName, time.Since(start), err)
		return events, err
	})
	if err != nil {
		env := domain.OddsEnvelope{Odds: s.mockOdds(homeTeam, awayTeam)}
		env.DataSource = domain.SourceMock
		env.Message = msgAPIFailed
		s.serveMock(ctx, feedOdds, key, env, false)
		return env
	}

	event, ok := oddsapi.MatchEvent(events, homeTeam, awayTeam)
	if !ok {
		env := domain.OddsEnvelope{Odds: s.mockOdds(homeTeam, awayTeam)}
		env.DataSource = domain.SourceMock
		env.Message = msgOddsNotFound
		s.serveMock(ctx, feedOdds, key, env, false)
		return env
	}

	env := domain.OddsEnvelope{Odds: domain.Odds{Bookmakers: event.Bookmakers}}
	env.DataSource = domain.SourceReal
	env.APIProvider = oddsapi.ProviderName
	s.cache.Set(key, env)
	return env
}

// fetchGames runs one paced, retried single-date fetch with per-attempt
// telemetry.
func (s *Service) fetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	return providers.Retry(ctx, s.retryConfig(balldontlie.ProviderName), func(ctx context.Context) ([]domain.Game, error) {
		return s.attemptGames(ctx, func(ctx context.Context) ([]domain.Game, error) {
			return s.games.FetchGames(ctx, date)
		})
	})
}

func (s *Service) attemptGames(ctx context.Context, fetch func(ctx context.Context) ([]domain.Game, error)) ([]domain.Game, error) {
	start := time.Now()
	games, err := fetch(ctx)
	s.metrics.RecordProviderAttempt(balldontlie.ProviderName, time.Since(start), err)
	return games, err
}

func (s *Service) retryConfig(name string) providers.RetryConfig {
	return providers.RetryConfig{
		Attempts: s.retryAttempts,
		Backoff:  s.retryBackoff,
		Name:     name,
		Logger:   s.logger,
	}
}

func (s *Service) cacheGet(ctx context.Context, feed, key string) (any, bool) {
	value, ok := s.cache.Get(key)
	if !ok {
		s.metrics.RecordCacheMiss(feed)
		return nil, false
	}
	s.metrics.RecordCacheHit(feed)
	logging.Info(logging.FromContext(ctx, s.logger), "cache hit",
		slog.String(logging.FieldCacheKey, key),
	)
	return value, true
}

// serveMock records and logs a generated-data response. Keyless responses
// are cached (they are deterministic for a given request); failure fallbacks
// are not, so the next request retries the upstream.
func (s *Service) serveMock(ctx context.Context, feed, key string, env any, cacheable bool) {
	s.metrics.RecordMockFallback(feed)
	if cacheable {
		s.cache.Set(key, env)
	}
	logging.Warn(logging.FromContext(ctx, s.logger), "serving generated data",
		slog.String("feed", feed),
		slog.String(logging.FieldCacheKey, key),
		slog.Bool("cached", cacheable),
	)
}

func (s *Service) mockOdds(homeTeam, awayTeam string) domain.Odds {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return mock.Odds(homeTeam, awayTeam, s.rng)
}
