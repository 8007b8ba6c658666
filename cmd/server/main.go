// Command server runs the NBA prediction service.
//
// Usage:
//
//	server serve
//	server predict --home BOS --away MIA
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"nba-predictor-service/internal/config"
	"nba-predictor-service/internal/domain"
	"nba-predictor-service/internal/logging"
	"nba-predictor-service/internal/predictor"
	"nba-predictor-service/internal/providers/mock"
	"nba-predictor-service/internal/server"
)

const appVersion = "dev"

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "server",
		Short: "NBA game prediction and odds service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(serveCmd())
	root.AddCommand(predictCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return nil
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "nba-predictor-service",
		Version: appVersion,
	})

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
	return nil
}

// predictCmd runs a one-shot matchup prediction from generated season stats,
// useful for trying the model without starting the server.
func predictCmd() *cobra.Command {
	var home, away string
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a matchup offline using generated data",
		RunE: func(cmd *cobra.Command, args []string) error {
			homeTeam, ok := domain.TeamByAbbreviation(home)
			if !ok {
				return fmt.Errorf("unknown home team %q", home)
			}
			awayTeam, ok := domain.TeamByAbbreviation(away)
			if !ok {
				return fmt.Errorf("unknown away team %q", away)
			}

			game := domain.Game{
				HomeTeam:    homeTeam.Team,
				VisitorTeam: awayTeam.Team,
				Status:      domain.StatusScheduled,
			}

			engine := predictor.NewEngine(predictor.NewRatingStore(domain.EloSeeds()))
			prediction := engine.Predict(game,
				mock.TeamStats(homeTeam.Team.ID),
				mock.TeamStats(awayTeam.Team.ID),
				domain.Odds{})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(prediction)
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "home team abbreviation (e.g. BOS)")
	cmd.Flags().StringVar(&away, "away", "", "away team abbreviation (e.g. MIA)")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
	return cmd
}
