// Package handlers wires the HTTP surface to the feed orchestrator and the
// prediction engine. Upstream failures never surface here: the orchestrator
// absorbs them into tagged fallback data, so the only non-200 responses are
// parameter errors and unknown game IDs.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"nba-predictor-service/internal/app/feed"
	"nba-predictor-service/internal/domain"
	"nba-predictor-service/internal/metrics"
	"nba-predictor-service/internal/predictor"
)

const configureKeysNote = "Configure BALLDONTLIE_API_KEY and ODDS_API_KEY in .env to use real data"

const defaultPerPage = 10

type nowFunc func() time.Time

// Handler wires HTTP routes to the feed service and prediction engine.
type Handler struct {
	feed    *feed.Service
	engine  *predictor.Engine
	metrics *metrics.Recorder
	logger  *slog.Logger
	now     nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(feedSvc *feed.Service, engine *predictor.Engine, recorder *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		feed:    feedSvc,
		engine:  engine,
		metrics: recorder,
		logger:  logger,
		now:     time.Now,
	}
}

// Health reports key-configuration status alongside liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ballDontLie, odds := h.feed.ConfiguredProviders()

	status := func(configured bool) string {
		if configured {
			return "configured ✅"
		}
		return "NOT SET - using mock data"
	}
	dataSource := domain.SourceMock
	if ballDontLie && odds {
		dataSource = domain.SourceReal
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"timestamp":  h.now().UTC().Format(time.RFC3339),
		"dataSource": dataSource,
		"apiStatus": map[string]string{
			"balldontlie": status(ballDontLie),
			"oddsApi":     status(odds),
		},
		"note": configureKeysNote,
	}, h.logger)
}

// Games serves a single-date slate (?date=) or a paginated schedule
// (?start_date=&per_page=&cursor=).
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	logger := loggerFromContext(r, h.logger)

	if date := query.Get("date"); date != "" {
		writeJSON(w, http.StatusOK, h.feed.Games(r.Context(), date), logger)
		return
	}

	startDate := query.Get("start_date")
	if startDate == "" {
		writeError(w, r, http.StatusBadRequest, "Date parameter required", logger)
		return
	}
	perPage, ok := intParam(query.Get("per_page"), defaultPerPage)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "per_page must be a number", logger)
		return
	}
	cursor, ok := intParam(query.Get("cursor"), 0)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "cursor must be a number", logger)
		return
	}
	writeJSON(w, http.StatusOK, h.feed.GamesList(r.Context(), startDate, perPage, cursor), logger)
}

// TeamStats serves season aggregates for one team.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	logger := loggerFromContext(r, h.logger)

	teamIDRaw := query.Get("teamId")
	if teamIDRaw == "" {
		writeError(w, r, http.StatusBadRequest, "teamId parameter required", logger)
		return
	}
	teamID, err := strconv.Atoi(teamIDRaw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "teamId must be a number", logger)
		return
	}
	season, ok := intParam(query.Get("season"), 0)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "season must be a number", logger)
		return
	}

	writeJSON(w, http.StatusOK, h.feed.TeamStats(r.Context(), teamID, season), logger)
}

// Odds serves the quoted lines for one matchup.
func (h *Handler) Odds(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	logger := loggerFromContext(r, h.logger)

	homeTeam := query.Get("homeTeam")
	awayTeam := query.Get("awayTeam")
	if homeTeam == "" || awayTeam == "" {
		writeError(w, r, http.StatusBadRequest, "homeTeam and awayTeam parameters required", logger)
		return
	}

	writeJSON(w, http.StatusOK, h.feed.Odds(r.Context(), homeTeam, awayTeam), logger)
}

// Teams serves the 30-team reference table with colors and Elo seeds.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"data": domain.Teams()}, h.logger)
}

type predictionResponse struct {
	Game       domain.Game       `json:"game"`
	Prediction domain.Prediction `json:"prediction"`
	domain.Provenance
}

// Predict runs the full flow server-side: locate the game on the date's
// slate, pull both stat blocks and the odds through the feed layer, and run
// the engine.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	logger := loggerFromContext(r, h.logger)

	date := query.Get("date")
	gameIDRaw := query.Get("gameId")
	if date == "" || gameIDRaw == "" {
		writeError(w, r, http.StatusBadRequest, "date and gameId parameters required", logger)
		return
	}
	gameID, err := strconv.Atoi(gameIDRaw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "gameId must be a number", logger)
		return
	}

	ctx := r.Context()
	gamesEnv := h.feed.Games(ctx, date)

	var game domain.Game
	found := false
	for _, g := range gamesEnv.Data {
		if g.ID == gameID {
			game = g
			found = true
			break
		}
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "Game not found", logger)
		return
	}

	homeStats := h.feed.TeamStats(ctx, game.HomeTeam.ID, 0)
	awayStats := h.feed.TeamStats(ctx, game.VisitorTeam.ID, 0)
	oddsEnv := h.feed.Odds(ctx, game.HomeTeam.FullName, game.VisitorTeam.FullName)

	prediction := h.engine.Predict(game, homeStats.Data, awayStats.Data, oddsEnv.Odds)
	h.metrics.RecordPrediction()

	resp := predictionResponse{Game: game, Prediction: prediction}
	resp.DataSource = domain.SourceReal
	if gamesEnv.DataSource == domain.SourceMock ||
		homeStats.DataSource == domain.SourceMock ||
		awayStats.DataSource == domain.SourceMock ||
		oddsEnv.DataSource == domain.SourceMock {
		resp.DataSource = domain.SourceMock
	}
	writeJSON(w, http.StatusOK, resp, logger)
}

func intParam(raw string, defaultValue int) (int, bool) {
	if raw == "" {
		return defaultValue, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}
