// Package predictor computes spread and moneyline picks from a fixed
// six-factor weighted model. The engine performs no I/O; inputs arrive
// already normalized and malformed stat fields degrade to league-average
// defaults rather than failing.
package predictor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"nba-predictor-service/internal/domain"
)

// Factor weights. They must sum to exactly 1.0; keep that invariant if the
// model is ever retuned.
const (
	weightElo           = 0.30
	weightRecentForm    = 0.25
	weightOffenseRating = 0.15
	weightDefenseRating = 0.15
	weightHomeAdvantage = 0.10
	weightRestDays      = 0.05
)

// weights in domain.Factors value order.
var weights = [6]float64{
	weightElo,
	weightRecentForm,
	weightOffenseRating,
	weightDefenseRating,
	weightHomeAdvantage,
	weightRestDays,
}

const (
	// homeAdvantageFactor is the constant home-court signal, worth about
	// 3-4 points of spread.
	homeAdvantageFactor = 40
	// leagueAverageRating substitutes for missing offensive/defensive
	// ratings.
	leagueAverageRating = 110
)

// Generic fallback sentences when no factor clears its reasoning threshold.
const (
	fallbackSpreadReason    = "Close matchup with slight edge based on overall metrics"
	fallbackMoneylineReason = "Statistical models favor this outcome"
)

// Engine derives predictions from team stats, quoted odds, and the rating
// store's Elo table.
type Engine struct {
	ratings *RatingStore
}

// NewEngine constructs an engine over the given rating store.
func NewEngine(ratings *RatingStore) *Engine {
	return &Engine{ratings: ratings}
}

// Predict produces the full pick for one game. The predicted spread follows
// betting convention: negative means the home side is favored by that many
// points.
func (e *Engine) Predict(game domain.Game, homeStats, awayStats domain.StatBlock, odds domain.Odds) domain.Prediction {
	homeTeam := game.HomeTeam
	awayTeam := game.VisitorTeam

	factors := e.computeFactors(homeTeam, awayTeam, homeStats, awayStats)

	rawScore := 0.0
	for i, value := range factors.Values() {
		rawScore += value * weights[i]
	}

	predictedSpread := -rawScore / 10

	actualLine := odds.SpreadLine()
	confidence := spreadConfidence(factors, predictedSpread, actualLine)

	pick := awayTeam
	if predictedSpread < 0 {
		pick = homeTeam
	}

	spreadReasons, moneylineReasons := reasoning(factors, homeTeam, awayTeam, homeStats, awayStats)

	return domain.Prediction{
		Spread: domain.SpreadPick{
			Pick:       pick,
			Line:       math.Abs(predictedSpread),
			ActualLine: actualLine,
			Confidence: confidence,
			Reasoning:  spreadReasons,
		},
		Moneyline: domain.MoneylinePick{
			Pick:       pick,
			Odds:       odds.MoneylineFor(pick),
			Confidence: moneylineConfidence(predictedSpread, confidence),
			Reasoning:  moneylineReasons,
		},
		Factors:  factors,
		RawScore: rawScore,
	}
}

func (e *Engine) computeFactors(homeTeam, awayTeam domain.Team, homeStats, awayStats domain.StatBlock) domain.Factors {
	eloDiff := e.ratings.Rating(homeTeam.Abbreviation) - e.ratings.Rating(awayTeam.Abbreviation)

	// recentForm is deliberately left unclamped; extreme last-10 splits can
	// reach ±200 and the model has always weighted them that way.
	return domain.Factors{
		Elo:           clampFactor(eloDiff / 2),
		RecentForm:    (winRatio(homeStats.Last10) - winRatio(awayStats.Last10)) * 200,
		OffenseRating: clampFactor((orLeagueAverage(homeStats.OffensiveRating) - orLeagueAverage(awayStats.OffensiveRating)) * 5),
		DefenseRating: clampFactor((orLeagueAverage(awayStats.DefensiveRating) - orLeagueAverage(homeStats.DefensiveRating)) * 5),
		HomeAdvantage: homeAdvantageFactor,
		RestDays:      0,
	}
}

// spreadConfidence starts at 5 and accumulates integer adjustments for
// factor agreement, spread size, and agreement with the quoted line, then
// clamps to [1,10].
func spreadConfidence(factors domain.Factors, predictedSpread float64, actualLine *float64) int {
	confidence := 5

	positive := 0
	values := factors.Values()
	for _, v := range values {
		if v > 0 {
			positive++
		}
	}
	agreement := float64(positive) / float64(len(values))
	if agreement > 0.8 || agreement < 0.2 {
		confidence += 3
	} else if agreement > 0.6 || agreement < 0.4 {
		confidence += 1
	}

	spreadSize := math.Abs(predictedSpread)
	if spreadSize > 8 {
		confidence++
	} else if spreadSize < 3 {
		confidence--
	}

	if actualLine != nil {
		diff := math.Abs(predictedSpread - *actualLine)
		if diff < 2 {
			confidence++
		} else if diff > 5 {
			confidence--
		}
	}

	return clampConfidence(confidence)
}

// moneylineConfidence leans on the spread verdict: a double-digit spread
// bumps it, a single-possession-ish game drops it two.
func moneylineConfidence(predictedSpread float64, spreadConfidence int) int {
	confidence := spreadConfidence

	absSpread := math.Abs(predictedSpread)
	if absSpread > 10 {
		confidence++
	} else if absSpread < 5 {
		confidence -= 2
	}

	return clampConfidence(confidence)
}

func reasoning(factors domain.Factors, homeTeam, awayTeam domain.Team, homeStats, awayStats domain.StatBlock) (spread, moneyline []string) {
	if math.Abs(factors.Elo) > 30 {
		stronger := awayTeam.Name
		if factors.Elo > 0 {
			stronger = homeTeam.Name
		}
		spread = append(spread, fmt.Sprintf("%s have superior Elo rating (%.0f point advantage)", stronger, math.Abs(factors.Elo)))
		moneyline = append(moneyline, fmt.Sprintf("%s are the stronger team overall", stronger))
	}

	if math.Abs(factors.RecentForm) > 20 {
		better, record := awayTeam.Name, awayStats.Last10
		if factors.RecentForm > 0 {
			better, record = homeTeam.Name, homeStats.Last10
		}
		spread = append(spread, fmt.Sprintf("%s in better form (%s last 10 games)", better, record))
	}

	if math.Abs(factors.OffenseRating) > 20 {
		better := awayTeam.Name
		if factors.OffenseRating > 0 {
			better = homeTeam.Name
		}
		spread = append(spread, fmt.Sprintf("%s have superior offensive efficiency", better))
	}

	if math.Abs(factors.DefenseRating) > 20 {
		better := awayTeam.Name
		if factors.DefenseRating > 0 {
			better = homeTeam.Name
		}
		spread = append(spread, fmt.Sprintf("%s have stronger defensive rating", better))
	}

	if factors.HomeAdvantage > 0 {
		spread = append(spread, fmt.Sprintf("%s benefit from home court advantage", homeTeam.Name))
		moneyline = append(moneyline, fmt.Sprintf("Home court advantage favors %s", homeTeam.Name))
	}

	if math.Abs(homeStats.WinPct-awayStats.WinPct) > 0.15 {
		better := awayTeam.Name
		if homeStats.WinPct > awayStats.WinPct {
			better = homeTeam.Name
		}
		pct := math.Max(homeStats.WinPct, awayStats.WinPct)
		moneyline = append(moneyline, fmt.Sprintf("%s have %.1f%% win rate this season", better, pct*100))
	}

	if len(spread) == 0 {
		spread = append(spread, fallbackSpreadReason)
	}
	if len(moneyline) == 0 {
		moneyline = append(moneyline, fallbackMoneylineReason)
	}
	return spread, moneyline
}

// winRatio parses a "W-L" record into a win fraction, defaulting to 0.5 for
// absent or malformed records.
func winRatio(record string) float64 {
	winsRaw, lossesRaw, ok := strings.Cut(record, "-")
	if !ok {
		return 0.5
	}
	wins, err := strconv.Atoi(winsRaw)
	if err != nil {
		return 0.5
	}
	losses, err := strconv.Atoi(lossesRaw)
	if err != nil || wins+losses == 0 {
		return 0.5
	}
	return float64(wins) / float64(wins+losses)
}

func orLeagueAverage(rating float64) float64 {
	if rating == 0 {
		return leagueAverageRating
	}
	return rating
}

func clampFactor(v float64) float64 {
	return math.Max(-100, math.Min(100, v))
}

func clampConfidence(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
