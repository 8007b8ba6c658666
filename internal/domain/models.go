package domain

// GameStatus captures the lifecycle of a scheduled NBA game.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
)

// Team is the normalized team shape shared by every feed. Field names follow
// the balldontlie wire contract because the browser UI consumes them as-is.
type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
}

// Game is a single matchup on a calendar date.
type Game struct {
	ID               int        `json:"id"`
	Date             string     `json:"date"`
	HomeTeam         Team       `json:"home_team"`
	VisitorTeam      Team       `json:"visitor_team"`
	HomeTeamScore    int        `json:"home_team_score"`
	VisitorTeamScore int        `json:"visitor_team_score"`
	Status           GameStatus `json:"status"`
	Time             string     `json:"time"`
	Period           int        `json:"period"`
}

// StatBlock holds a team's season aggregates. Record strings ("7-3") keep
// the upstream formatting; win_pct and net_rating are derived fields.
type StatBlock struct {
	PPG             float64 `json:"ppg"`
	OPPG            float64 `json:"oppg"`
	APG             float64 `json:"apg"`
	RPG             float64 `json:"rpg"`
	SPG             float64 `json:"spg"`
	BPG             float64 `json:"bpg"`
	FGPct           float64 `json:"fg_pct"`
	FG3Pct          float64 `json:"fg3_pct"`
	FTPct           float64 `json:"ft_pct"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	WinPct          float64 `json:"win_pct"`
	Last10          string  `json:"last_10"`
	HomeRecord      string  `json:"home_record"`
	AwayRecord      string  `json:"away_record"`
	OffensiveRating float64 `json:"offensive_rating"`
	DefensiveRating float64 `json:"defensive_rating"`
	NetRating       float64 `json:"net_rating"`
	Pace            float64 `json:"pace"`
	TrueShooting    float64 `json:"true_shooting"`
}
