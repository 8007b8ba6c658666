package cache

import "testing"

func TestKeyIsOrderInsensitive(t *testing.T) {
	a := Key("teamStats", map[string]string{"teamId": "2", "season": "2025"})
	b := Key("teamStats", map[string]string{"season": "2025", "teamId": "2"})
	if a != b {
		t.Fatalf("expected identical keys, got %q and %q", a, b)
	}
}

func TestKeyEncodesAllParams(t *testing.T) {
	got := Key("games", map[string]string{"date": "2026-02-16"})
	if got != "games:date=2026-02-16" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestKeyWithoutParams(t *testing.T) {
	if got := Key("odds", nil); got != "odds" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestKeyDistinguishesOperations(t *testing.T) {
	params := map[string]string{"date": "2026-02-16"}
	if Key("games", params) == Key("gamesList", params) {
		t.Fatal("expected distinct keys per operation")
	}
}
