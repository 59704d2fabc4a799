package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adaptly/calibrant/internal/rating"
)

var (
	recordUser       string
	recordQuestion   string
	recordTheme      string
	recordAttemptID  string
	recordCorrect    bool
	recordOptions    int
	recordOccurredAt string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Apply one answered attempt to the ratings",
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

		lg := newLogger(cfg)
		drift := rating.NewDriftController(st.RatingRepo(), lg, nil)
		svc, err := rating.NewService(cfg.Rating, st.RatingRepo(), lg, rating.WithDrift(drift))
		if err != nil {
			return err
		}

		attempt := rating.Attempt{
			AttemptID:   recordAttemptID,
			UserID:      recordUser,
			QuestionID:  recordQuestion,
			ThemeID:     recordTheme,
			Correct:     recordCorrect,
			OptionCount: recordOptions,
		}
		if recordOccurredAt != "" {
			at, err := time.Parse(time.RFC3339, recordOccurredAt)
			if err != nil {
				return fmt.Errorf("parse --occurred-at: %w", err)
			}
			attempt.OccurredAt = at
		}

		res, err := svc.RecordAttempt(cmd.Context(), attempt)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

func init() {
	recordCmd.Flags().StringVar(&recordUser, "user", "", "User id")
	recordCmd.Flags().StringVar(&recordQuestion, "question", "", "Question id")
	recordCmd.Flags().StringVar(&recordTheme, "theme", "", "Theme id for the additional per-theme update")
	recordCmd.Flags().StringVar(&recordAttemptID, "attempt-id", "", "Unique attempt id (replays are no-ops)")
	recordCmd.Flags().BoolVar(&recordCorrect, "correct", false, "Whether the answer was correct")
	recordCmd.Flags().IntVar(&recordOptions, "options", 0, "Number of answer options (default 5)")
	recordCmd.Flags().StringVar(&recordOccurredAt, "occurred-at", "", "Attempt time, RFC3339 (default now)")

	_ = recordCmd.MarkFlagRequired("user")
	_ = recordCmd.MarkFlagRequired("question")
	_ = recordCmd.MarkFlagRequired("attempt-id")
}
