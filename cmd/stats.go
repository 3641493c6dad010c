package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/progression"
	"github.com/abhisek/owlery/internal/questionbank"
	"github.com/abhisek/owlery/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your wizarding record",
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

		fmt.Printf("%s %s of %s\n", u.House.Emblem(), u.Name, u.House)
		fmt.Printf("Points:  %d\n", u.TotalPoints)
		fmt.Printf("Streak:  %d day(s)\n", u.Streak)
		if progression.IsFinished(u.CurrentYear) {
			fmt.Println("Progress: all seven years complete")
		} else {
			fmt.Printf("Progress: %s, chapter %d\n", questionbank.BookTitle(u.CurrentYear), u.CurrentChapter)
		}
		if u.LastDailyProphetDate != "" {
			fmt.Printf("Last Daily Prophet: %s\n", u.LastDailyProphetDate)
		}
		return nil
	},
}
