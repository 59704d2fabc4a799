package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info")
	l.Info(context.Background(), "attempt applied", String("user_id", "u1"), Float64("p_pred", 0.6))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if line["msg"] != "attempt applied" {
		t.Errorf("msg = %v, want %q", line["msg"], "attempt applied")
	}
	if line["user_id"] != "u1" {
		t.Errorf("user_id = %v, want u1", line["user_id"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Info(context.Background(), "dropped")
	l.Warn(context.Background(), "kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn line missing")
	}
}

func TestNamedGroupsFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info").Named("drift")
	l.Info(context.Background(), "recentered", Float64("mean", 52.1))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	group, ok := line["drift"].(map[string]any)
	if !ok {
		t.Fatalf("expected drift group, got %v", line)
	}
	if group["mean"] != 52.1 {
		t.Errorf("drift.mean = %v, want 52.1", group["mean"])
	}
}
