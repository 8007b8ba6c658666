package balldontlie

type gamesResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameResponse struct {
	ID               int          `json:"id"`
	Date             string       `json:"date"`
	Status           string       `json:"status"`
	Time             string       `json:"time"`
	Period           int          `json:"period"`
	HomeTeam         teamResponse `json:"home_team"`
	VisitorTeam      teamResponse `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type metaResponse struct {
	NextCursor *int `json:"next_cursor"`
	PerPage    int  `json:"per_page"`
}

type teamStatsResponse struct {
	Data []statBlockResponse `json:"data"`
}

type statBlockResponse struct {
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
