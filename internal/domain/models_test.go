package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGamesEnvelopeJSONFieldNames(t *testing.T) {
	env := GamesEnvelope{
		Data: []Game{},
		Provenance: Provenance{
			DataSource:    SourceMock,
			APIProvider:   "BallDontLie",
			Message:       "msg",
			RequestedDate: "2026-02-16",
			FallbackDate:  "2026-02-13",
		},
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, field := range []string{`"data"`, `"_dataSource":"MOCK"`, `"_apiProvider"`, `"_message"`, `"_requestedDate"`, `"_fallbackDate"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("expected %s in %s", field, raw)
		}
	}
}

func TestProvenanceOmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(StatsEnvelope{Provenance: Provenance{DataSource: SourceReal}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "_message") || strings.Contains(string(raw), "_fallbackDate") {
		t.Fatalf("expected empty provenance fields omitted, got %s", raw)
	}
}

func TestGameJSONUsesWireNames(t *testing.T) {
	game := Game{ID: 7, Date: "2026-02-16", HomeTeam: Team{Abbreviation: "BOS"}, Status: StatusScheduled}
	raw, err := json.Marshal(game)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, field := range []string{`"home_team"`, `"visitor_team"`, `"home_team_score"`, `"status":"scheduled"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("expected %s in %s", field, raw)
		}
	}
}
