package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"nba-predictor-service/internal/domain"
)

// Smoke test to ensure serve honors SKIP_SERVER_RUN and does not block test runs.
func TestServeSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	if err := runServe(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPredictCommand(t *testing.T) {
	cmd := predictCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--home", "BOS", "--away", "MIA"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("predict failed: %v", err)
	}

	var prediction domain.Prediction
	if err := json.Unmarshal(out.Bytes(), &prediction); err != nil {
		t.Fatalf("output is not a prediction: %v", err)
	}
	if prediction.Spread.Pick.Abbreviation != "BOS" && prediction.Spread.Pick.Abbreviation != "MIA" {
		t.Fatalf("pick must be one of the teams, got %+v", prediction.Spread.Pick)
	}
	if prediction.Spread.Confidence < 1 || prediction.Spread.Confidence > 10 {
		t.Fatalf("confidence out of range: %d", prediction.Spread.Confidence)
	}
}

func TestPredictRejectsUnknownTeam(t *testing.T) {
	cmd := predictCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--home", "XXX", "--away", "MIA"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown team")
	}
}
