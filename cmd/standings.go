package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/owlery/internal/leaderboard"
	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/storage"
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print the current house cup standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		kv, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer kv.Close()

		store := profile.NewStore(kv)
		if store.Load(cmd.Context()) != profile.HasProfile {
			fmt.Println("No profile yet. Run owlery to get sorted first.")
			return nil
		}
		u := store.User()

		sim := leaderboard.NewSimulator(kv, leaderboard.SystemClock(), nil)
		for _, s := range sim.Standings(cmd.Context(), u.House, u.TotalPoints) {
			marker := " "
			if s.IsUser {
				marker = "*"
			}
			fmt.Printf("%d. %s %-10s %6d pts %s\n", s.Rank, s.House.Emblem(), s.House, s.Points, marker)
		}
		return nil
	},
}
