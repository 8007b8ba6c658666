package domain

import "testing"

func TestTeamTableHasThirtyTeams(t *testing.T) {
	teams := Teams()
	if len(teams) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(teams))
	}
	seen := make(map[int]string, len(teams))
	for _, info := range teams {
		if prev, dup := seen[info.Team.ID]; dup {
			t.Fatalf("duplicate team id %d (%s and %s)", info.Team.ID, prev, info.Team.Abbreviation)
		}
		seen[info.Team.ID] = info.Team.Abbreviation
		if info.EloSeed < 1300 || info.EloSeed > 1700 {
			t.Fatalf("implausible elo seed %f for %s", info.EloSeed, info.Team.Abbreviation)
		}
	}
}

func TestTeamByAbbreviation(t *testing.T) {
	info, ok := TeamByAbbreviation("BOS")
	if !ok {
		t.Fatal("expected BOS to exist")
	}
	if info.Team.FullName != "Boston Celtics" || info.EloSeed != 1620 {
		t.Fatalf("unexpected BOS entry %+v", info)
	}
	if _, ok := TeamByAbbreviation("ZZZ"); ok {
		t.Fatal("expected unknown abbreviation to miss")
	}
}

func TestTeamColorsFallback(t *testing.T) {
	primary, secondary := TeamColors("ZZZ")
	if primary != DefaultPrimaryColor || secondary != DefaultSecondaryColor {
		t.Fatalf("expected default colors, got %s/%s", primary, secondary)
	}
	primary, _ = TeamColors("LAL")
	if primary != "#552583" {
		t.Fatalf("expected Lakers primary, got %s", primary)
	}
}

func TestEloSeedsReturnsCopy(t *testing.T) {
	seeds := EloSeeds()
	seeds["BOS"] = 0
	if again := EloSeeds(); again["BOS"] != 1620 {
		t.Fatalf("expected table untouched, got %f", again["BOS"])
	}
}
