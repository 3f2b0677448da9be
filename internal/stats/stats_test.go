package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minsu-seo/vocadrill/internal/model"
)

func entry(mode string, correct, total int, acc float64) model.SessionEntry {
	return model.SessionEntry{
		Mode:      mode,
		Total:     total,
		Correct:   correct,
		Accuracy:  acc,
		StartedAt: "2026-08-01T10:00:00Z",
		Duration:  42.5,
	}
}

func TestSummarizeGroupsByMode(t *testing.T) {
	entries := []model.SessionEntry{
		entry("choice", 8, 10, 80.0),
		entry("spelling", 5, 10, 50.0),
		entry("choice", 10, 10, 100.0),
	}
	summaries := Summarize(entries)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 modes, got %d", len(summaries))
	}
	choice := summaries[0]
	if choice.Mode != "choice" {
		t.Fatalf("first-seen order broken: %v", summaries)
	}
	if choice.Sessions != 2 || choice.Total != 20 || choice.Correct != 18 {
		t.Fatalf("unexpected choice aggregate: %+v", choice)
	}
	if choice.AvgAccuracy != 90.0 || choice.BestAccuracy != 100.0 {
		t.Fatalf("unexpected choice accuracy: %+v", choice)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{100, 0, 100, 0}
	avg := MovingAverage(values, 2)
	want := []float64{100, 50, 50, 50}
	for i := range want {
		if avg[i] != want[i] {
			t.Fatalf("window 2: got %v, want %v", avg, want)
		}
	}

	same := MovingAverage(values, 1)
	for i := range values {
		if same[i] != values[i] {
			t.Fatalf("window 1 must copy input, got %v", same)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	flat := Sparkline([]float64{50, 50, 50})
	if len(flat) != 3 || flat != strings.Repeat(string(flat[0]), 3) {
		t.Fatalf("flat series must repeat one char, got %q", flat)
	}
	line := Sparkline([]float64{0, 50, 100})
	if line[0] != ' ' || line[2] != '@' {
		t.Fatalf("expected min and max glyphs at the ends, got %q", line)
	}
}

func TestRenderSessionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSessions(&buf, nil, 5); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions logged yet.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderSessionsTable(t *testing.T) {
	var buf bytes.Buffer
	entries := []model.SessionEntry{
		entry("choice", 8, 10, 80.0),
		entry("spelling", 9, 10, 90.0),
	}
	if err := RenderSessions(&buf, entries, 5); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Started", "8/10", "80.0%", "Accuracy:", "Trend (last 5): 85.0%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	entries := []model.SessionEntry{
		entry("choice", 8, 10, 80.0),
		entry("choice", 6, 10, 60.0),
	}
	if err := RenderSummary(&buf, entries); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Mode", "choice", "70.0%", "80.0%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
