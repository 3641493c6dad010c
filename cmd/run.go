package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/owlery/internal/app"
	"github.com/abhisek/owlery/internal/leaderboard"
	"github.com/abhisek/owlery/internal/profile"
	"github.com/abhisek/owlery/internal/storage"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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
	store.Load(cmd.Context())

	return app.Run(app.Options{
		Store:     store,
		Simulator: leaderboard.NewSimulator(kv, leaderboard.SystemClock(), nil),
		Config:    cfg,
	})
}
