package sessionlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minsu-seo/vocadrill/internal/model"
)

func TestAppendAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzes.jsonl")
	log := New(path)

	for i := 0; i < 3; i++ {
		entry := model.SessionEntry{
			Mode:      "choice",
			Total:     10,
			Correct:   i,
			Accuracy:  float64(i) * 10,
			StartedAt: "2025-01-0" + string(rune('1'+i)) + "T10:00:00Z",
			Duration:  12.5,
		}
		if err := log.Append(entry); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := log.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Correct != 2 || entries[1].Correct != 1 {
		t.Fatalf("expected most-recent-first order, got %+v", entries)
	}

	all, err := log.Recent(10)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all 3 entries, got %d", len(all))
	}
}

func TestRecentMissingFile(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), "quizzes.jsonl"))
	entries, err := log.Recent(5)
	if err != nil {
		t.Fatalf("recent on missing file: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestRecentSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzes.jsonl")
	content := strings.Join([]string{
		`{"mode":"choice","total":5,"correct":4,"acc":80,"started_at":"2025-01-01T10:00:00Z","duration":30.1}`,
		`this is not json`,
		``,
		`{"mode":"spelling","total":3,"correct":3,"acc":100,"started_at":"2025-01-02T10:00:00Z","duration":12.0}`,
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	entries, err := New(path).Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected malformed line to be skipped, got %+v", entries)
	}
	if entries[0].Mode != "spelling" || entries[1].Mode != "choice" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestAppendNeverRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzes.jsonl")
	log := New(path)
	if err := log.Append(model.SessionEntry{Mode: "choice", Total: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if err := log.Append(model.SessionEntry{Mode: "spelling", Total: 2}); err != nil {
		t.Fatalf("append: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.HasPrefix(string(after), string(before)) {
		t.Fatalf("append must not rewrite prior entries")
	}
	if lines := strings.Count(string(after), "\n"); lines != 2 {
		t.Fatalf("expected 2 lines, got %d", lines)
	}
}
