package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaptly/calibrant/internal/rating"
)

var (
	ratingKind  string
	ratingTheme string
)

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Inspect stored ratings",
}

var ratingGetCmd = &cobra.Command{
	Use:   "get <entity-id>",
	Short: "Print an entity's rating, with configured defaults for unseen entities",
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

		svc, err := rating.NewService(cfg.Rating, st.RatingRepo(), newLogger(cfg))
		if err != nil {
			return err
		}

		scope := scopeFlag(ratingTheme)
		switch ratingKind {
		case "user":
			row, err := svc.GetRating(cmd.Context(), args[0], scope)
			if err != nil {
				return err
			}
			return printJSON(row)
		case "question":
			row, err := svc.GetQuestionRating(cmd.Context(), args[0], scope)
			if err != nil {
				return err
			}
			return printJSON(row)
		default:
			return fmt.Errorf("unknown --kind %q (want user or question)", ratingKind)
		}
	},
}

func init() {
	ratingGetCmd.Flags().StringVar(&ratingKind, "kind", "user", "Entity kind: user or question")
	ratingGetCmd.Flags().StringVar(&ratingTheme, "theme", "", "Theme scope (default global)")
	ratingCmd.AddCommand(ratingGetCmd)
}
