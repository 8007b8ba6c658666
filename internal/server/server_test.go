package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"nba-predictor-service/internal/config"
	"nba-predictor-service/internal/metrics"
	"nba-predictor-service/internal/providers"
	"nba-predictor-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:          "0",
		CorsOrigins:   []string{"*"},
		CacheTTL:      time.Minute,
		RetryAttempts: 1,
		RetryBackoff:  time.Millisecond,
		MinInterval:   time.Millisecond,
		Season:        2024,
	}
}

func TestNewServerServesHealth(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(), logger, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestNewServerServesKeylessGames(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(), logger, metrics.NewRecorder())

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/games?date=2026-01-15", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var env struct {
		Data       []any  `json:"data"`
		DataSource string `json:"_dataSource"`
	}
	testutil.DecodeJSON(t, rr, &env)
	if env.DataSource != "MOCK" {
		t.Fatalf("expected MOCK without keys, got %q", env.DataSource)
	}
	if len(env.Data) != 3 {
		t.Fatalf("expected mock slate, got %d games", len(env.Data))
	}
}

func TestUpdateKeysPropagatesToFeed(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(), logger, metrics.NewRecorder())

	srv.UpdateKeys(providers.Keys{BallDontLie: "a", Odds: "b"})

	games, odds := srv.feed.ConfiguredProviders()
	if !games || !odds {
		t.Fatalf("expected both providers configured, got %v %v", games, odds)
	}
}

type stubHTTPServer struct {
	addr         string
	listenErr    error
	shutdownErr  error
	shutdownHits atomic.Int32
	handler      http.Handler
}

func (s *stubHTTPServer) ListenAndServe() error { return s.listenErr }
func (s *stubHTTPServer) Shutdown(context.Context) error {
	s.shutdownHits.Add(1)
	return s.shutdownErr
}
func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

func TestRunShutsDownGracefully(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(), logger, metrics.NewRecorder())

	httpStub := &stubHTTPServer{addr: ":0", listenErr: http.ErrServerClosed}
	metricsStub := &stubHTTPServer{addr: ":0", listenErr: http.ErrServerClosed}
	srv.httpServer = httpStub
	srv.metricsServer = metricsStub

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if httpStub.shutdownHits.Load() != 1 {
		t.Fatalf("expected http shutdown once, got %d", httpStub.shutdownHits.Load())
	}
	if metricsStub.shutdownHits.Load() != 1 {
		t.Fatalf("expected metrics shutdown once, got %d", metricsStub.shutdownHits.Load())
	}
	if got := buf.String(); got == "" {
		t.Fatal("expected shutdown logs")
	}
}

func TestListenFailureStopsService(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := newServerWithMetrics(testConfig(), logger, metrics.NewRecorder())
	srv.httpServer = &stubHTTPServer{addr: ":0", listenErr: errors.New("bind failed")}
	srv.metricsServer = nil

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listen failure should cancel the run context")
	}
}

func TestBuildMetricsFallsBackOnSetupError(t *testing.T) {
	original := metricsSetup
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("exporter unavailable")
	}
	defer func() { metricsSetup = original }()

	logger, _ := testutil.NewBufferLogger()
	rec, metricsSrv, shutdown := buildMetrics(testConfig(), logger, nil)

	if rec == nil {
		t.Fatal("expected a fallback recorder")
	}
	if metricsSrv != nil || shutdown != nil {
		t.Fatal("expected no metrics server after setup failure")
	}
}
