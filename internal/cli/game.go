package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game progression commands",
	}

	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameWorkCmd())
	cmd.AddCommand(newGamePositionCmd())

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current progression",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Progression

			if err := client.Get("/api/v1/progression", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameWorkCmd() *cobra.Command {
	var earnings int64

	cmd := &cobra.Command{
		Use:   "work",
		Short: "Complete a job and bank the earnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if earnings <= 0 {
				return fmt.Errorf("--earnings must be positive")
			}

			req := map[string]int64{"earnings": earnings}
			var result Progression

			if err := client.Post("/api/v1/game/jobs", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&earnings, "earnings", 0, "Job payout (required)")
	_ = cmd.MarkFlagRequired("earnings")

	return cmd
}

func newGamePositionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position <x> <y> <z>",
		Short: "Save the world position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords := make([]float64, 3)
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q", arg)
				}
				coords[i] = v
			}

			req := map[string]float64{"x": coords[0], "y": coords[1], "z": coords[2]}
			var result Progression

			if err := client.Put("/api/v1/game/position", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(result)
			} else {
				out.PrintMessage("Position saved")
			}
			return nil
		},
	}

	return cmd
}
