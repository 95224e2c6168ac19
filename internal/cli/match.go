package cli

import (
	"github.com/spf13/cobra"
)

func newResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result",
		Short: "Match result commands",
	}

	cmd.AddCommand(newResultSaveCmd())
	cmd.AddCommand(newResultListCmd())

	return cmd
}

func newResultSaveCmd() *cobra.Command {
	var player1, player2, winner, mode string
	var score1, score2, duration int

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record a finished match",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player1":      player1,
				"player2":      player2,
				"winner":       winner,
				"player1Score": score1,
				"player2Score": score2,
				"mode":         mode,
				"duration":     duration,
			}

			var result MatchResult
			if err := client.Post("/api/v1/games/results", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player1, "player1", "", "First player username (required)")
	cmd.Flags().StringVar(&player2, "player2", "", "Second player username (required)")
	cmd.Flags().StringVar(&winner, "winner", "", "Winning player username (required)")
	cmd.Flags().IntVar(&score1, "score1", 0, "First player score")
	cmd.Flags().IntVar(&score2, "score2", 0, "Second player score")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: pass-through, walls (required)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Match duration in seconds")
	_ = cmd.MarkFlagRequired("player1")
	_ = cmd.MarkFlagRequired("player2")
	_ = cmd.MarkFlagRequired("winner")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}

func newResultListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded match results",
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []MatchResult
			if err := client.Get("/api/v1/games/results", &results); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(results)
			return nil
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []LeaderboardEntry
			if err := client.Get("/api/v1/leaderboard", &entries); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(entries)
			return nil
		},
	}
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List available game modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var modes []Mode
			if err := client.Get("/api/v1/modes", &modes); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(modes)
			return nil
		},
	}
}

func newLiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "List games currently in progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			var games []LiveGame
			if err := client.Get("/api/v1/live-games", &games); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(games)
			return nil
		},
	}
}
