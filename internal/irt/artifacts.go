package irt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adaptly/calibrant/internal/store"
)

// WriteArtifacts persists the per-run artifact directory: a machine
// readable summary and a short human readable report.
func WriteArtifacts(dir string, run *store.IrtRun, d *Dataset, res *FitResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	summary := map[string]any{
		"run_id":       run.ID,
		"model_type":   run.ModelType,
		"seed":         run.Seed,
		"dataset_spec": run.DatasetSpec,
		"metrics":      runMetrics(d, res),
		"items":        res.Items,
		"abilities":    res.Abilities,
	}
	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "summary.json"), raw, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	report := renderReport(run, d, res)
	if err := os.WriteFile(filepath.Join(dir, "report.txt"), []byte(report), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func renderReport(run *store.IrtRun, d *Dataset, res *FitResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "calibration run %s (%s, seed %d)\n", run.ID, run.ModelType, run.Seed)
	fmt.Fprintf(&sb, "rows: %d train / %d validation, %d users, %d items\n",
		len(d.Train), len(d.Valid), len(d.Users), len(d.Items))
	fmt.Fprintf(&sb, "neg_loglik %.4f  train_log_loss %.4f  validation_log_loss %.4f  iterations %d\n\n",
		res.NegLogLik, res.TrainLogLoss, res.ValidLogLoss, res.Iterations)

	fmt.Fprintf(&sb, "%-24s %8s %8s %8s %8s %8s %6s\n",
		"question", "a", "b", "c", "se_a", "se_b", "n")
	for _, it := range res.Items {
		fmt.Fprintf(&sb, "%-24s %8.3f %8.3f %8.3f %8.3f %8.3f %6d\n",
			it.QuestionID, it.A, it.B, it.C, it.SEA, it.SEB, it.NObs)
	}
	return sb.String()
}
