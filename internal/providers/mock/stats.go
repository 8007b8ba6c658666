package mock

import (
	"fmt"
	"math"

	"nba-predictor-service/internal/domain"
)

// TeamStats derives a full stat block from the team ID alone. The same ID
// always yields the same block, so cached and fresh responses agree. IDs in
// the bottom third of the league table read as contenders.
func TeamStats(teamID int) domain.StatBlock {
	seed := teamID % 30
	if seed < 0 {
		seed += 30
	}
	good := seed < 10

	s := domain.StatBlock{
		APG:   float64(24 + seed%6),
		RPG:   float64(43 + seed%8),
		SPG:   7.5 + float64(seed%3),
		BPG:   4.5 + math.Mod(float64(seed), 2.5),
		FTPct: 0.76 + float64(seed%8)*0.01,
		Pace:  float64(98 + seed%6),
	}

	if good {
		s.PPG = 115 + float64(seed)*1.5
		s.OPPG = 106 + float64(seed)*0.8
		s.FGPct = 0.47 + float64(seed%5)*0.01
		s.FG3Pct = 0.37 + float64(seed%4)*0.01
		s.Wins = 35 + seed*2
		s.Losses = 20 - seed/2
		s.Last10 = fmt.Sprintf("%d-%d", 7+seed%3, 3-seed%3)
		s.HomeRecord = fmt.Sprintf("%d-%d", 20+seed%5, 10-seed%3)
		s.AwayRecord = fmt.Sprintf("%d-%d", 15+seed%3, 15-seed%3)
		s.OffensiveRating = 115 + float64(seed)*0.8
		s.DefensiveRating = 106 + float64(seed)*0.5
		s.TrueShooting = 0.58 + float64(seed%5)*0.01
	} else {
		s.PPG = 105 + float64(seed)*1.2
		s.OPPG = 110 + float64(seed)*1.1
		s.FGPct = 0.44 + float64(seed%5)*0.01
		s.FG3Pct = 0.34 + float64(seed%4)*0.01
		s.Wins = 20 + seed
		s.Losses = 35 - seed/2
		s.Last10 = fmt.Sprintf("%d-%d", 4+seed%2, 6-seed%2)
		s.HomeRecord = fmt.Sprintf("%d-%d", 12+seed%4, 18-seed%4)
		s.AwayRecord = fmt.Sprintf("%d-%d", 8+seed%3, 22-seed%3)
		s.OffensiveRating = 108 + float64(seed)*0.6
		s.DefensiveRating = 112 + float64(seed)*0.7
		s.TrueShooting = 0.54 + float64(seed%5)*0.01
	}

	if s.Losses < 10 {
		s.Losses = 10
	}
	s.WinPct = float64(s.Wins) / float64(s.Wins+s.Losses)
	s.NetRating = s.OffensiveRating - s.DefensiveRating

	s.PPG = round1(s.PPG)
	s.OPPG = round1(s.OPPG)
	s.OffensiveRating = round1(s.OffensiveRating)
	s.DefensiveRating = round1(s.DefensiveRating)

	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
