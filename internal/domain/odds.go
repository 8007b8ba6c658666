package domain

import (
	"strconv"
	"strings"
)

// Market keys consulted by the predictor. Only the first bookmaker's
// spreads/h2h markets are ever read.
const (
	MarketSpreads = "spreads"
	MarketH2H     = "h2h"
)

// Outcome is one side of a market. Price is American odds; Point is the
// home-centric spread line and only present in spreads markets.
type Outcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// Market groups the outcomes for one bet type.
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Bookmaker is one book's quoted markets.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Odds is the quoted-odds shape for a single game.
type Odds struct {
	Bookmakers []Bookmaker `json:"bookmakers"`
}

// SpreadLine returns the quoted home spread from the first bookmaker's
// spreads market, or nil when no line is available.
func (o Odds) SpreadLine() *float64 {
	market, ok := o.findMarket(MarketSpreads)
	if !ok || len(market.Outcomes) == 0 {
		return nil
	}
	return market.Outcomes[0].Point
}

// MoneylineFor returns the formatted American price for the team, matching
// team names by containment in either direction. Returns "N/A" when the
// h2h market or the team is missing.
func (o Odds) MoneylineFor(team Team) string {
	market, ok := o.findMarket(MarketH2H)
	if !ok {
		return "N/A"
	}
	for _, outcome := range market.Outcomes {
		if !nameMatches(outcome.Name, team) {
			continue
		}
		return FormatAmericanOdds(outcome.Price)
	}
	return "N/A"
}

func (o Odds) findMarket(key string) (Market, bool) {
	if len(o.Bookmakers) == 0 {
		return Market{}, false
	}
	for _, m := range o.Bookmakers[0].Markets {
		if m.Key == key {
			return m, true
		}
	}
	return Market{}, false
}

func nameMatches(outcomeName string, team Team) bool {
	if outcomeName == "" {
		return false
	}
	return strings.Contains(outcomeName, team.Name) || strings.Contains(team.FullName, outcomeName)
}

// FormatAmericanOdds renders an American price with an explicit sign for
// positive values ("+150", "-110").
func FormatAmericanOdds(price float64) string {
	formatted := strconv.FormatFloat(price, 'f', -1, 64)
	if price > 0 {
		return "+" + formatted
	}
	return formatted
}
