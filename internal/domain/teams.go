package domain

import "sort"

// TeamInfo is immutable reference data for one franchise: identity, the
// hand-tuned Elo seed, and the official colors the UI renders with.
type TeamInfo struct {
	Team           Team    `json:"team"`
	EloSeed        float64 `json:"elo_seed"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
}

// Fallback colors for unknown abbreviations.
const (
	DefaultPrimaryColor   = "#1D428A"
	DefaultSecondaryColor = "#FDB927"
)

// teamTable keys the 30 NBA franchises by abbreviation. IDs follow the
// balldontlie numbering so fetched and reference data agree.
var teamTable = map[string]TeamInfo{
	"ATL": {Team: Team{ID: 1, Abbreviation: "ATL", City: "Atlanta", Name: "Hawks", FullName: "Atlanta Hawks"}, EloSeed: 1470, PrimaryColor: "#E03A3E", SecondaryColor: "#C1D32F"},
	"BOS": {Team: Team{ID: 2, Abbreviation: "BOS", City: "Boston", Name: "Celtics", FullName: "Boston Celtics"}, EloSeed: 1620, PrimaryColor: "#007A33", SecondaryColor: "#BA9653"},
	"BKN": {Team: Team{ID: 3, Abbreviation: "BKN", City: "Brooklyn", Name: "Nets", FullName: "Brooklyn Nets"}, EloSeed: 1480, PrimaryColor: "#000000", SecondaryColor: "#FFFFFF"},
	"CHA": {Team: Team{ID: 4, Abbreviation: "CHA", City: "Charlotte", Name: "Hornets", FullName: "Charlotte Hornets"}, EloSeed: 1400, PrimaryColor: "#1D1160", SecondaryColor: "#00788C"},
	"CHI": {Team: Team{ID: 5, Abbreviation: "CHI", City: "Chicago", Name: "Bulls", FullName: "Chicago Bulls"}, EloSeed: 1460, PrimaryColor: "#CE1141", SecondaryColor: "#000000"},
	"CLE": {Team: Team{ID: 6, Abbreviation: "CLE", City: "Cleveland", Name: "Cavaliers", FullName: "Cleveland Cavaliers"}, EloSeed: 1490, PrimaryColor: "#860038", SecondaryColor: "#041E42"},
	"DAL": {Team: Team{ID: 7, Abbreviation: "DAL", City: "Dallas", Name: "Mavericks", FullName: "Dallas Mavericks"}, EloSeed: 1530, PrimaryColor: "#00538C", SecondaryColor: "#002B5E"},
	"DEN": {Team: Team{ID: 8, Abbreviation: "DEN", City: "Denver", Name: "Nuggets", FullName: "Denver Nuggets"}, EloSeed: 1600, PrimaryColor: "#0E2240", SecondaryColor: "#FEC524"},
	"DET": {Team: Team{ID: 9, Abbreviation: "DET", City: "Detroit", Name: "Pistons", FullName: "Detroit Pistons"}, EloSeed: 1410, PrimaryColor: "#C8102E", SecondaryColor: "#1D42BA"},
	"GSW": {Team: Team{ID: 10, Abbreviation: "GSW", City: "Golden State", Name: "Warriors", FullName: "Golden State Warriors"}, EloSeed: 1580, PrimaryColor: "#1D428A", SecondaryColor: "#FFC72C"},
	"HOU": {Team: Team{ID: 11, Abbreviation: "HOU", City: "Houston", Name: "Rockets", FullName: "Houston Rockets"}, EloSeed: 1430, PrimaryColor: "#CE1141", SecondaryColor: "#000000"},
	"IND": {Team: Team{ID: 12, Abbreviation: "IND", City: "Indiana", Name: "Pacers", FullName: "Indiana Pacers"}, EloSeed: 1470, PrimaryColor: "#002D62", SecondaryColor: "#FDBB30"},
	"LAC": {Team: Team{ID: 13, Abbreviation: "LAC", City: "LA", Name: "Clippers", FullName: "LA Clippers"}, EloSeed: 1540, PrimaryColor: "#C8102E", SecondaryColor: "#1D428A"},
	"LAL": {Team: Team{ID: 14, Abbreviation: "LAL", City: "Los Angeles", Name: "Lakers", FullName: "Los Angeles Lakers"}, EloSeed: 1550, PrimaryColor: "#552583", SecondaryColor: "#FDB927"},
	"MEM": {Team: Team{ID: 15, Abbreviation: "MEM", City: "Memphis", Name: "Grizzlies", FullName: "Memphis Grizzlies"}, EloSeed: 1510, PrimaryColor: "#5D76A9", SecondaryColor: "#12173F"},
	"MIA": {Team: Team{ID: 16, Abbreviation: "MIA", City: "Miami", Name: "Heat", FullName: "Miami Heat"}, EloSeed: 1520, PrimaryColor: "#98002E", SecondaryColor: "#F9A01B"},
	"MIL": {Team: Team{ID: 17, Abbreviation: "MIL", City: "Milwaukee", Name: "Bucks", FullName: "Milwaukee Bucks"}, EloSeed: 1590, PrimaryColor: "#00471B", SecondaryColor: "#EEE1C6"},
	"MIN": {Team: Team{ID: 18, Abbreviation: "MIN", City: "Minnesota", Name: "Timberwolves", FullName: "Minnesota Timberwolves"}, EloSeed: 1520, PrimaryColor: "#0C2340", SecondaryColor: "#236192"},
	"NOP": {Team: Team{ID: 19, Abbreviation: "NOP", City: "New Orleans", Name: "Pelicans", FullName: "New Orleans Pelicans"}, EloSeed: 1490, PrimaryColor: "#0C2340", SecondaryColor: "#C8102E"},
	"NYK": {Team: Team{ID: 20, Abbreviation: "NYK", City: "New York", Name: "Knicks", FullName: "New York Knicks"}, EloSeed: 1500, PrimaryColor: "#006BB6", SecondaryColor: "#F58426"},
	"OKC": {Team: Team{ID: 21, Abbreviation: "OKC", City: "Oklahoma City", Name: "Thunder", FullName: "Oklahoma City Thunder"}, EloSeed: 1450, PrimaryColor: "#007AC1", SecondaryColor: "#EF3B24"},
	"ORL": {Team: Team{ID: 22, Abbreviation: "ORL", City: "Orlando", Name: "Magic", FullName: "Orlando Magic"}, EloSeed: 1460, PrimaryColor: "#0077C0", SecondaryColor: "#C4CED4"},
	"PHI": {Team: Team{ID: 23, Abbreviation: "PHI", City: "Philadelphia", Name: "76ers", FullName: "Philadelphia 76ers"}, EloSeed: 1570, PrimaryColor: "#006BB6", SecondaryColor: "#ED174C"},
	"PHX": {Team: Team{ID: 24, Abbreviation: "PHX", City: "Phoenix", Name: "Suns", FullName: "Phoenix Suns"}, EloSeed: 1540, PrimaryColor: "#1D1160", SecondaryColor: "#E56020"},
	"POR": {Team: Team{ID: 25, Abbreviation: "POR", City: "Portland", Name: "Trail Blazers", FullName: "Portland Trail Blazers"}, EloSeed: 1430, PrimaryColor: "#E03A3E", SecondaryColor: "#000000"},
	"SAC": {Team: Team{ID: 26, Abbreviation: "SAC", City: "Sacramento", Name: "Kings", FullName: "Sacramento Kings"}, EloSeed: 1500, PrimaryColor: "#5A2D81", SecondaryColor: "#63727A"},
	"SAS": {Team: Team{ID: 27, Abbreviation: "SAS", City: "San Antonio", Name: "Spurs", FullName: "San Antonio Spurs"}, EloSeed: 1440, PrimaryColor: "#C4CED4", SecondaryColor: "#000000"},
	"TOR": {Team: Team{ID: 28, Abbreviation: "TOR", City: "Toronto", Name: "Raptors", FullName: "Toronto Raptors"}, EloSeed: 1480, PrimaryColor: "#CE1141", SecondaryColor: "#000000"},
	"UTA": {Team: Team{ID: 29, Abbreviation: "UTA", City: "Utah", Name: "Jazz", FullName: "Utah Jazz"}, EloSeed: 1480, PrimaryColor: "#002B5C", SecondaryColor: "#F9A01B"},
	"WAS": {Team: Team{ID: 30, Abbreviation: "WAS", City: "Washington", Name: "Wizards", FullName: "Washington Wizards"}, EloSeed: 1420, PrimaryColor: "#002B5C", SecondaryColor: "#E31837"},
}

// TeamByAbbreviation looks up reference data for a franchise.
func TeamByAbbreviation(abbr string) (TeamInfo, bool) {
	info, ok := teamTable[abbr]
	return info, ok
}

// Teams returns the full reference table ordered by team ID.
func Teams() []TeamInfo {
	result := make([]TeamInfo, 0, len(teamTable))
	for _, info := range teamTable {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Team.ID < result[j].Team.ID })
	return result
}

// TeamColors returns the display colors for an abbreviation, falling back
// to league defaults for unknown teams.
func TeamColors(abbr string) (primary, secondary string) {
	if info, ok := teamTable[abbr]; ok {
		return info.PrimaryColor, info.SecondaryColor
	}
	return DefaultPrimaryColor, DefaultSecondaryColor
}

// EloSeeds returns the initial rating for every franchise, keyed by
// abbreviation. Callers get a copy and may mutate it freely.
func EloSeeds() map[string]float64 {
	seeds := make(map[string]float64, len(teamTable))
	for abbr, info := range teamTable {
		seeds[abbr] = info.EloSeed
	}
	return seeds
}
