package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adaptly/calibrant/internal/config"
	"github.com/adaptly/calibrant/internal/store"
	"github.com/adaptly/calibrant/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:          "calibrant",
	Short:        "Rating calibration engine for adaptive testing",
	Long:         "Calibrant maintains Elo-style ability and difficulty ratings from answered attempts,\nguards them against scale drift, and runs offline IRT calibration fits for comparison.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CALIBRANT_DB_PATH)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides CALIBRANT_CONFIG)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(ratingCmd)
	rootCmd.AddCommand(driftCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(irtCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers the persistent flags over the environment-driven
// configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		os.Setenv("CALIBRANT_CONFIG", p)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*store.Store, error) {
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, err
	}
	return store.Open(cfg.DBPath)
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(os.Stderr, cfg.LogLevel)
}

func scopeFlag(themeID string) store.Scope {
	if themeID != "" {
		return store.Theme(themeID)
	}
	return store.Global()
}

func printJSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
