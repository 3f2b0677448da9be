package pick

import (
	"testing"

	"github.com/minsu-seo/vocadrill/internal/model"
)

func record(def string, tags ...string) *model.WordRecord {
	rec := &model.WordRecord{Definition: def, Tags: tags}
	for _, mode := range model.RequiredModes {
		rec.Stat(mode)
	}
	return rec
}

func withStat(rec *model.WordRecord, mode model.Mode, correct, wrong int) *model.WordRecord {
	pair := rec.Stat(mode)
	pair.Correct = correct
	pair.Wrong = wrong
	return rec
}

func TestSelectEmptyCollection(t *testing.T) {
	p := NewSeeded(1)
	got := p.Select(map[string]*model.WordRecord{}, 5, OrderRandom, model.ModeChoice, Filters{})
	if len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestSelectRandomSampleSize(t *testing.T) {
	words := map[string]*model.WordRecord{
		"a": record("def a"),
		"b": record("def b"),
		"c": record("def c"),
	}
	p := NewSeeded(7)
	got := p.Select(words, 2, OrderRandom, model.ModeChoice, Filters{})
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %v", got)
	}
	if got[0] == got[1] {
		t.Fatalf("sampling must be without replacement, got %v", got)
	}
	all := p.Select(words, 10, OrderRandom, model.ModeChoice, Filters{})
	if len(all) != 3 {
		t.Fatalf("count above population must return everything, got %v", all)
	}
}

func TestSelectMostWrongGraduation(t *testing.T) {
	words := map[string]*model.WordRecord{
		"graduated": withStat(record("d"), model.ModeChoice, 5, 1),
		"failing":   withStat(record("d"), model.ModeChoice, 0, 4),
		"fresh":     record("d"),
		"edge":      withStat(record("d"), model.ModeChoice, 3, 2),
	}
	p := NewSeeded(3)
	got := p.Select(words, 10, OrderMostWrong, model.ModeChoice, Filters{})
	for _, key := range got {
		pair := words[key].Stat(model.ModeChoice)
		if pair.Correct >= pair.Wrong+2 {
			t.Fatalf("graduated key %q must not be selected", key)
		}
	}
	if len(got) == 0 || got[0] != "failing" {
		t.Fatalf("expected the most-wrong word first, got %v", got)
	}
	for _, key := range got {
		if key == "graduated" {
			t.Fatalf("graduated word leaked into the review queue: %v", got)
		}
	}
}

func TestSelectLeastPracticed(t *testing.T) {
	words := map[string]*model.WordRecord{
		"seen":     withStat(record("d"), model.ModeChoice, 5, 5),
		"fresh":    record("d"),
		"wrongish": withStat(record("d"), model.ModeChoice, 0, 2),
		"nodef":    record(""),
	}
	p := NewSeeded(3)
	got := p.Select(words, 10, OrderLeastPracticed, model.ModeChoice, Filters{})
	want := []string{"fresh", "wrongish", "seen"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSelectLeastPracticedTieBreaksByWrong(t *testing.T) {
	words := map[string]*model.WordRecord{
		"clean": withStat(record("d"), model.ModeChoice, 2, 0),
		"messy": withStat(record("d"), model.ModeChoice, 0, 2),
	}
	p := NewSeeded(3)
	got := p.Select(words, 2, OrderLeastPracticed, model.ModeChoice, Filters{})
	if got[0] != "messy" {
		t.Fatalf("equal totals must surface the more error-prone word first, got %v", got)
	}
}

func TestSelectSpellingHard(t *testing.T) {
	words := map[string]*model.WordRecord{
		"hard":  withStat(record("d"), model.ModeSpelling, 1, 4),
		"never": record("d"),
		"easy":  withStat(record("d"), model.ModeSpelling, 9, 0),
	}
	p := NewSeeded(3)
	got := p.Select(words, 3, OrderSpellingHard, model.ModeSpelling, Filters{})
	if got[0] != "hard" {
		t.Fatalf("expected the most-wrong word first, got %v", got)
	}
	// Never-attempted words carry error rate 1.0 and outrank practiced ones
	// with the same wrong count.
	if got[1] != "never" || got[2] != "easy" {
		t.Fatalf("expected never-attempted before low-error, got %v", got)
	}
}

func TestSelectSpellingLeast(t *testing.T) {
	words := map[string]*model.WordRecord{
		"heavy": withStat(record("d"), model.ModeSpelling, 8, 2),
		"fresh": record("d"),
		"light": withStat(record("d"), model.ModeSpelling, 1, 1),
	}
	p := NewSeeded(3)
	got := p.Select(words, 3, OrderSpellingLeast, model.ModeSpelling, Filters{})
	want := []string{"fresh", "light", "heavy"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSelectTagFilters(t *testing.T) {
	words := map[string]*model.WordRecord{
		"math1":  record("d", "math"),
		"math2":  record("d", "math", "hard"),
		"plain":  record("d"),
		"phrase": record("d", "sentence"),
	}
	p := NewSeeded(9)

	got := p.Select(words, 10, OrderRandom, model.ModeChoice, Filters{Include: []string{"math"}})
	if len(got) != 2 {
		t.Fatalf("include filter mismatch: %v", got)
	}

	got = p.Select(words, 10, OrderRandom, model.ModeChoice, Filters{
		Include: []string{"math"},
		Exclude: []string{"hard"},
	})
	if len(got) != 1 || got[0] != "math1" {
		t.Fatalf("include+exclude filter mismatch: %v", got)
	}

	got = p.Select(words, 10, OrderRandom, model.ModeChoice, Filters{Exclude: []string{"sentence"}})
	if len(got) != 3 {
		t.Fatalf("exclude filter mismatch: %v", got)
	}

	got = p.Select(words, 10, OrderRandom, model.ModeChoice, Filters{Include: []string{"nope"}})
	if len(got) != 0 {
		t.Fatalf("expected empty selection for unmatched include, got %v", got)
	}
}

func TestWeightedSampleCoversAllKeys(t *testing.T) {
	words := map[string]*model.WordRecord{
		"a": withStat(record("d"), model.ModeChoice, 0, 9),
		"b": record("d"),
		"c": record("d"),
	}
	p := NewSeeded(11)
	got := p.Select(words, 3, OrderWeighted, model.ModeChoice, Filters{})
	if len(got) != 3 {
		t.Fatalf("expected all keys in weighted order, got %v", got)
	}
	seen := map[string]bool{}
	for _, key := range got {
		if seen[key] {
			t.Fatalf("weighted sampling repeated %q: %v", key, got)
		}
		seen[key] = true
	}
}
