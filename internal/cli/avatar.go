package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAvatarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Avatar commands",
	}

	cmd.AddCommand(newAvatarListCmd())
	cmd.AddCommand(newAvatarBuyCmd())
	cmd.AddCommand(newAvatarSelectCmd())

	return cmd
}

func newAvatarListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List avatars and unlock state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cat Catalog
			if err := client.Get("/api/v1/catalog", &cat); err != nil {
				return err
			}

			var prog Progression
			loggedIn := client.Get("/api/v1/progression", &prog) == nil

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(cat.Avatars)
				return nil
			}

			for _, a := range cat.Avatars {
				price := "free"
				if a.Price > 0 {
					price = fmt.Sprintf("$%d", a.Price)
				}
				marker := ""
				if loggedIn {
					for _, unlocked := range prog.UnlockedAvatars {
						if unlocked == a.ID {
							marker = " [unlocked]"
							break
						}
					}
					if a.ID == prog.CurrentAvatar {
						marker = " [active]"
					}
				}
				fmt.Printf("%s: %s - %s%s\n", a.ID, a.Name, price, marker)
			}
			return nil
		},
	}
}

func newAvatarBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <avatar-id>",
		Short: "Buy an avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"avatar_id": args[0]}
			var result Progression

			if err := client.Post("/api/v1/avatars/buy", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAvatarSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <avatar-id>",
		Short: "Select an unlocked avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"avatar_id": args[0]}
			var result Progression

			if err := client.Post("/api/v1/avatars/select", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
