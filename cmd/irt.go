package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaptly/calibrant/internal/irt"
	"github.com/adaptly/calibrant/internal/store"
)

var irtCmd = &cobra.Command{
	Use:   "irt",
	Short: "Offline IRT calibration runs",
}

var (
	irtRunModel     string
	irtRunSeed      int64
	irtRunFrom      string
	irtRunTo        string
	irtRunTheme     string
	irtRunMinUser   int
	irtRunMinItem   int
	irtRunTrainFrac float64
	irtRunNotes     string
)

var irtRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Fit a 2PL or 3PL model over the attempt history",
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

		model, err := irt.ParseModelType(irtRunModel)
		if err != nil {
			return err
		}
		spec := irt.DatasetSpec{
			ThemeID:         irtRunTheme,
			MinUserAttempts: irtRunMinUser,
			MinItemAttempts: irtRunMinItem,
			TrainFrac:       irtRunTrainFrac,
			SplitSeed:       irtRunSeed,
		}
		if irtRunFrom != "" {
			t, err := time.Parse(time.RFC3339, irtRunFrom)
			if err != nil {
				return fmt.Errorf("parse --from: %w", err)
			}
			spec.From = t
		}
		if irtRunTo != "" {
			t, err := time.Parse(time.RFC3339, irtRunTo)
			if err != nil {
				return fmt.Errorf("parse --to: %w", err)
			}
			spec.To = t
		}

		runner := irt.NewRunner(st.IrtRepo(), st.UpdateLogRepo(), newLogger(cfg),
			irt.WithWarmStart(st.RatingRepo(), cfg.Rating.Scale),
			irt.WithArtifactRoot(artifactRoot(cfg.ArtifactDir, cfg.DBPath)))

		run, err := runner.Submit(cmd.Context(), model, spec, irtRunSeed, irtRunNotes)
		if err != nil {
			return err
		}
		done, err := runner.Execute(cmd.Context(), run.ID)
		if err != nil {
			return fmt.Errorf("run %s failed: %w", run.ID, err)
		}
		return printJSON(done)
	},
}

// artifactRoot defaults to an irt-runs directory next to the database.
func artifactRoot(configured, dbPath string) string {
	if configured != "" {
		return configured
	}
	return filepath.Join(filepath.Dir(dbPath), "irt-runs")
}

var (
	irtListModel  string
	irtListStatus string
	irtListLimit  int
)

var irtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List calibration runs, newest first",
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

		runs, err := st.IrtRepo().ListRuns(cmd.Context(), store.RunFilter{
			ModelType: irtListModel,
			Status:    irtListStatus,
			Limit:     irtListLimit,
		})
		if err != nil {
			return err
		}
		return printJSON(runs)
	},
}

var irtShowParams bool

var irtShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run's metadata and stored metrics",
	Args:  cobra.ExactArgs(1),
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

		run, err := st.IrtRepo().Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !irtShowParams {
			return printJSON(run)
		}

		items, err := st.IrtRepo().ItemParams(cmd.Context(), run.ID)
		if err != nil {
			return err
		}
		abilities, err := st.IrtRepo().Abilities(cmd.Context(), run.ID)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{
			"run":       run,
			"items":     items,
			"abilities": abilities,
		})
	},
}

func init() {
	irtRunCmd.Flags().StringVar(&irtRunModel, "model", "2pl", "Model type: 2pl or 3pl")
	irtRunCmd.Flags().Int64Var(&irtRunSeed, "seed", 1, "Seed for the dataset split and fit initialization")
	irtRunCmd.Flags().StringVar(&irtRunFrom, "from", "", "History window start, RFC3339")
	irtRunCmd.Flags().StringVar(&irtRunTo, "to", "", "History window end, RFC3339")
	irtRunCmd.Flags().StringVar(&irtRunTheme, "theme", "", "Restrict to one theme scope")
	irtRunCmd.Flags().IntVar(&irtRunMinUser, "min-user-attempts", 0, "Drop users with fewer observations")
	irtRunCmd.Flags().IntVar(&irtRunMinItem, "min-item-attempts", 0, "Drop items with fewer observations")
	irtRunCmd.Flags().Float64Var(&irtRunTrainFrac, "train-frac", 0.8, "Training fraction of the split")
	irtRunCmd.Flags().StringVar(&irtRunNotes, "notes", "", "Free-form note stored on the run")

	irtListCmd.Flags().StringVar(&irtListModel, "model", "", "Filter by model type")
	irtListCmd.Flags().StringVar(&irtListStatus, "status", "", "Filter by status")
	irtListCmd.Flags().IntVar(&irtListLimit, "limit", 0, "Maximum runs to list")

	irtShowCmd.Flags().BoolVar(&irtShowParams, "params", false, "Include fitted item parameters and abilities")

	irtCmd.AddCommand(irtRunCmd)
	irtCmd.AddCommand(irtListCmd)
	irtCmd.AddCommand(irtShowCmd)
}
