package mock

import (
	"math/rand"

	"nba-predictor-service/internal/domain"
)

// Odds fabricates a single-bookmaker line for the matchup. The spread is
// drawn from rng; the moneylines follow the spread so the favorite is always
// priced negative.
func Odds(homeTeam, awayTeam string, rng *rand.Rand) domain.Odds {
	spread := float64(rng.Intn(10) - 5)

	homeML := 130 + spread*20
	if spread < 0 {
		homeML = -150 - (-spread)*20
	}
	awayML := 130 + (-spread)*20
	if spread > 0 {
		awayML = -150 - spread*20
	}

	homePoint := spread
	awayPoint := -spread
	return domain.Odds{
		Bookmakers: []domain.Bookmaker{
			{
				Key:   "draftkings",
				Title: "DraftKings",
				Markets: []domain.Market{
					{
						Key: domain.MarketSpreads,
						Outcomes: []domain.Outcome{
							{Name: homeTeam, Price: -110, Point: &homePoint},
							{Name: awayTeam, Price: -110, Point: &awayPoint},
						},
					},
					{
						Key: domain.MarketH2H,
						Outcomes: []domain.Outcome{
							{Name: homeTeam, Price: homeML},
							{Name: awayTeam, Price: awayML},
						},
					},
				},
			},
		},
	}
}
