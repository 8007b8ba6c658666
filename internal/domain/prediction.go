package domain

// Factors holds the six weighted signals behind a prediction. Positive
// values favor the home team. All but recentForm are clamped to [-100, 100];
// recentForm can reach ±200 at extreme win/loss splits (kept as the model
// has always computed it).
type Factors struct {
	Elo           float64 `json:"elo"`
	RecentForm    float64 `json:"recentForm"`
	OffenseRating float64 `json:"offenseRating"`
	DefenseRating float64 `json:"defenseRating"`
	HomeAdvantage float64 `json:"homeAdvantage"`
	RestDays      float64 `json:"restDays"`
}

// Values returns the factors in their fixed order, for agreement counting.
func (f Factors) Values() [6]float64 {
	return [6]float64{f.Elo, f.RecentForm, f.OffenseRating, f.DefenseRating, f.HomeAdvantage, f.RestDays}
}

// SpreadPick is the against-the-spread side of a prediction.
type SpreadPick struct {
	Pick       Team     `json:"pick"`
	Line       float64  `json:"line"`
	ActualLine *float64 `json:"actualLine"`
	Confidence int      `json:"confidence"`
	Reasoning  []string `json:"reasoning"`
}

// MoneylinePick is the outright-winner side of a prediction.
type MoneylinePick struct {
	Pick       Team     `json:"pick"`
	Odds       string   `json:"odds"`
	Confidence int      `json:"confidence"`
	Reasoning  []string `json:"reasoning"`
}

// Prediction is the engine's output for one game. It is derived fresh on
// every call and never persisted.
type Prediction struct {
	Spread    SpreadPick    `json:"spread"`
	Moneyline MoneylinePick `json:"moneyline"`
	Factors   Factors       `json:"factors"`
	RawScore  float64       `json:"rawScore"`
}
