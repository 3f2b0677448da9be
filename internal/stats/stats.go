// Package stats aggregates quiz session history and per-word counters into
// summaries, tables, and accuracy curves.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/minsu-seo/vocadrill/internal/model"
)

const sparkChars = " .:-=+*#%@"

// ModeSummary aggregates every logged session of one quiz mode.
type ModeSummary struct {
	Mode     string
	Sessions int
	Total    int
	Correct  int
	// AvgAccuracy averages the per-session accuracy percentages.
	AvgAccuracy  float64
	BestAccuracy float64
}

// Summarize groups session entries by mode, preserving first-seen order.
func Summarize(entries []model.SessionEntry) []ModeSummary {
	byMode := map[string]*ModeSummary{}
	order := []string{}
	sums := map[string]float64{}
	for _, e := range entries {
		s, ok := byMode[e.Mode]
		if !ok {
			s = &ModeSummary{Mode: e.Mode}
			byMode[e.Mode] = s
			order = append(order, e.Mode)
		}
		s.Sessions++
		s.Total += e.Total
		s.Correct += e.Correct
		sums[e.Mode] += e.Accuracy
		if e.Accuracy > s.BestAccuracy {
			s.BestAccuracy = e.Accuracy
		}
	}
	out := make([]ModeSummary, 0, len(order))
	for _, mode := range order {
		s := byMode[mode]
		s.AvgAccuracy = sums[mode] / float64(s.Sessions)
		out = append(out, *s)
	}
	return out
}

// AccuracySeries extracts per-session accuracy values in entry order.
func AccuracySeries(entries []model.SessionEntry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Accuracy
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSessions prints recent sessions as a table, oldest first, followed
// by an accuracy sparkline and a moving-average trend.
func RenderSessions(w io.Writer, entries []model.SessionEntry, window int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No sessions logged yet.")
		return err
	}
	headers := []string{"Started", "Mode", "Score", "Accuracy", "Duration"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.StartedAt,
			e.Mode,
			fmt.Sprintf("%d/%d", e.Correct, e.Total),
			fmt.Sprintf("%.1f%%", e.Accuracy),
			fmt.Sprintf("%.1fs", e.Duration),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	accs := AccuracySeries(entries)
	if _, err := fmt.Fprintf(w, "\nAccuracy: %s\n", Sparkline(accs)); err != nil {
		return err
	}
	avg := MovingAverage(accs, window)
	if _, err := fmt.Fprintf(w, "Trend (last %d): %.1f%%\n", window, avg[len(avg)-1]); err != nil {
		return err
	}
	return nil
}

// RenderSummary prints per-mode aggregates over the logged sessions.
func RenderSummary(w io.Writer, entries []model.SessionEntry) error {
	summaries := Summarize(entries)
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No sessions logged yet.")
		return err
	}
	headers := []string{"Mode", "Sessions", "Questions", "Correct", "Avg Acc", "Best Acc"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Mode,
			fmt.Sprintf("%d", s.Sessions),
			fmt.Sprintf("%d", s.Total),
			fmt.Sprintf("%d", s.Correct),
			fmt.Sprintf("%.1f%%", s.AvgAccuracy),
			fmt.Sprintf("%.1f%%", s.BestAccuracy),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
