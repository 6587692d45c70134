package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTravelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "travel",
		Short: "Travel commands",
	}

	cmd.AddCommand(newTravelListCmd())
	cmd.AddCommand(newTravelGoCmd())

	return cmd
}

func newTravelListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List travel destinations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cat Catalog
			if err := client.Get("/api/v1/catalog", &cat); err != nil {
				return err
			}

			var prog Progression
			loggedIn := client.Get("/api/v1/progression", &prog) == nil

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(cat.Cities)
				return nil
			}

			for _, c := range cat.Cities {
				marker := ""
				if loggedIn && c.ID == prog.CurrentCity {
					marker = " [here]"
				}
				fmt.Printf("%s: %s - $%d%s\n", c.ID, c.Name, c.Cost, marker)
			}
			return nil
		},
	}
}

func newTravelGoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "go <city-id>",
		Short: "Travel to another city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"city_id": args[0]}
			var result Progression

			if err := client.Post("/api/v1/travel", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
