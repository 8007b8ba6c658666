// Package server wires configuration, upstream clients, the feed
// orchestrator, and the prediction engine into a running HTTP service.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nba-predictor-service/internal/app/feed"
	"nba-predictor-service/internal/cache"
	"nba-predictor-service/internal/config"
	"nba-predictor-service/internal/domain"
	httpapi "nba-predictor-service/internal/http"
	"nba-predictor-service/internal/http/handlers"
	"nba-predictor-service/internal/logging"
	"nba-predictor-service/internal/metrics"
	"nba-predictor-service/internal/predictor"
	"nba-predictor-service/internal/providers"
	"nba-predictor-service/internal/providers/balldontlie"
	"nba-predictor-service/internal/providers/oddsapi"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	keys          *providers.Keyring
	feed          *feed.Service
	engine        *predictor.Engine
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default client wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

// newServerWithMetrics lets tests inject a pre-built recorder and skip the
// telemetry pipeline.
func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	keyring := providers.NewKeyring(providers.Keys{
		BallDontLie: cfg.BallDontLie.APIKey,
		Odds:        cfg.OddsAPI.APIKey,
	})

	// One pacer shared by both upstream clients: the service as a whole
	// never hits the network faster than the configured interval.
	pacer := providers.NewPacer(cfg.MinInterval)
	pacer.ObserveWaits(func(waited time.Duration) {
		recorder.RecordRateLimitWait("upstream", waited)
	})

	statsClient := balldontlie.NewClient(balldontlie.Config{
		BaseURL: cfg.BallDontLie.BaseURL,
		Keys:    keyring,
		Pacer:   pacer,
	})
	oddsClient := oddsapi.NewClient(oddsapi.Config{
		BaseURL: cfg.OddsAPI.BaseURL,
		Keys:    keyring,
		Pacer:   pacer,
	})

	feedSvc := feed.NewService(feed.Config{
		Cache:         cache.New(cfg.CacheTTL),
		Games:         statsClient,
		Stats:         statsClient,
		Odds:          oddsClient,
		Keys:          keyring,
		Metrics:       recorder,
		Logger:        logger,
		RetryAttempts: cfg.RetryAttempts,
		RetryBackoff:  cfg.RetryBackoff,
		Season:        cfg.Season,
	})
	engine := predictor.NewEngine(predictor.NewRatingStore(domain.EloSeeds()))

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		keys:          keyring,
		feed:          feedSvc,
		engine:        engine,
		httpServer:    buildHTTPServer(cfg, feedSvc, engine, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, feedSvc *feed.Service, engine *predictor.Engine, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(feedSvc, engine, recorder, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:      logger,
		Metrics:     recorder,
		CorsOrigins: cfg.CorsOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// UpdateKeys swaps both upstream API keys at runtime. Cached responses age
// out on their own.
func (s *Server) UpdateKeys(keys providers.Keys) {
	s.feed.UpdateKeys(keys)
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
