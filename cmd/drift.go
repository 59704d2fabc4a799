package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adaptly/calibrant/internal/rating"
)

var (
	driftTheme     string
	driftThreshold float64
	driftForce     bool
)

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Difficulty drift detection and recentering",
}

var driftCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a scope's mean difficulty and recenter when it drifted past the threshold",
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

		ctrl := rating.NewDriftController(st.RatingRepo(), newLogger(cfg), nil)
		scope := scopeFlag(driftTheme)

		var res *rating.DriftResult
		if driftForce {
			res, err = ctrl.Recenter(cmd.Context(), scope)
		} else {
			threshold := driftThreshold
			if threshold <= 0 {
				threshold = cfg.Rating.RecenterThreshold
			}
			res, err = ctrl.CheckAndRecenter(cmd.Context(), scope, threshold)
		}
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

func init() {
	driftCheckCmd.Flags().StringVar(&driftTheme, "theme", "", "Theme scope (default global)")
	driftCheckCmd.Flags().Float64Var(&driftThreshold, "threshold", 0, "Drift threshold (default from config)")
	driftCheckCmd.Flags().BoolVar(&driftForce, "force", false, "Recenter regardless of the threshold")
	driftCmd.AddCommand(driftCheckCmd)
}
