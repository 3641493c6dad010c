package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/owlery/internal/config"
	"github.com/abhisek/owlery/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "owlery",
	Short: "Wizarding trivia in your terminal",
	Long:  "Owlery — a terminal trivia tournament: get sorted into a house, quiz your way through all seven books and race the other houses for the cup.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides OWLERY_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides OWLERY_CONFIG env var)")

	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then OWLERY_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, storage.EnsureDir(cfg.Database.Path)
	}
	return storage.DefaultDBPath()
}

// loadConfig reads the config file named by --config, falling back to the
// default location. A missing file yields the built-in defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}
