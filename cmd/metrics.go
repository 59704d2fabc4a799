package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaptly/calibrant/internal/evaluation"
	"github.com/adaptly/calibrant/internal/store"
)

var (
	metricsFrom  string
	metricsTo    string
	metricsUser  string
	metricsTheme string
	metricsBins  int
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Calibration metrics over a window of the update log",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		w := evaluation.Window{UserID: metricsUser}
		if metricsFrom != "" {
			t, err := time.Parse(time.RFC3339, metricsFrom)
			if err != nil {
				return fmt.Errorf("parse --from: %w", err)
			}
			w.From = t
		}
		if metricsTo != "" {
			t, err := time.Parse(time.RFC3339, metricsTo)
			if err != nil {
				return fmt.Errorf("parse --to: %w", err)
			}
			w.To = t
		}
		// Each attempt logs one row per scope it touched; reporting on a
		// single scope keeps every attempt counted once.
		scope := store.Global()
		if metricsTheme != "" {
			scope = store.Theme(metricsTheme)
		}
		w.Scope = &scope

		rep, err := evaluation.NewService(st.UpdateLogRepo()).Report(cmd.Context(), w, metricsBins)
		if err != nil {
			return err
		}
		return printJSON(rep)
	},
}

func init() {
	metricsCmd.Flags().StringVar(&metricsFrom, "from", "", "Window start, RFC3339 (default unbounded)")
	metricsCmd.Flags().StringVar(&metricsTo, "to", "", "Window end, RFC3339 (default unbounded)")
	metricsCmd.Flags().StringVar(&metricsUser, "user", "", "Restrict to one user")
	metricsCmd.Flags().StringVar(&metricsTheme, "theme", "", "Restrict to one theme scope")
	metricsCmd.Flags().IntVar(&metricsBins, "bins", evaluation.DefaultBins, "Reliability curve bins")
}
