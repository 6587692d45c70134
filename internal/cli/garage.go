package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGarageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "garage",
		Short: "Vehicle commands",
	}

	cmd.AddCommand(newGarageListCmd())
	cmd.AddCommand(newGarageBuyCmd())
	cmd.AddCommand(newGarageSelectCmd())

	return cmd
}

func newGarageListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vehicles and ownership",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cat Catalog
			if err := client.Get("/api/v1/catalog", &cat); err != nil {
				return err
			}

			// Ownership markers need a session; without one just show the catalog
			var prog Progression
			loggedIn := client.Get("/api/v1/progression", &prog) == nil

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(cat.Vehicles)
				return nil
			}

			for _, v := range cat.Vehicles {
				marker := ""
				if loggedIn {
					for _, owned := range prog.UnlockedVehicles {
						if owned == v.ID {
							marker = " [owned]"
							break
						}
					}
					if v.ID == prog.CurrentVehicle {
						marker = " [active]"
					}
				}
				fmt.Printf("%s: %s - $%d (speed %.1f)%s\n", v.ID, v.Name, v.Price, v.Speed, marker)
			}
			return nil
		},
	}
}

func newGarageBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <vehicle-id>",
		Short: "Buy a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"vehicle_id": args[0]}
			var result Progression

			if err := client.Post("/api/v1/garage/buy", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGarageSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <vehicle-id>",
		Short: "Select an owned vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"vehicle_id": args[0]}
			var result Progression

			if err := client.Post("/api/v1/garage/select", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
