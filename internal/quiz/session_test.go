package quiz

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/minsu-seo/vocadrill/internal/grade"
	"github.com/minsu-seo/vocadrill/internal/model"
	"github.com/minsu-seo/vocadrill/internal/pick"
)

func collection(defs map[string]string) map[string]*model.WordRecord {
	words := map[string]*model.WordRecord{}
	for key, def := range defs {
		rec := &model.WordRecord{Definition: def}
		for _, mode := range model.RequiredModes {
			rec.Stat(mode)
		}
		words[key] = rec
	}
	return words
}

func newSession(t *testing.T, words map[string]*model.WordRecord, cfg model.QuizConfig) *Session {
	t.Helper()
	if cfg.Order == "" {
		cfg.Order = string(pick.OrderRandom)
	}
	s, err := NewSession(words, cfg, pick.NewSeeded(42))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestEmptyCollectionIsNothingToQuiz(t *testing.T) {
	s := newSession(t, map[string]*model.WordRecord{}, model.QuizConfig{Mode: model.ModeChoice, Count: 5})
	if !s.Empty() || !s.Done() {
		t.Fatalf("expected an immediately-done empty session")
	}
	entry := s.Summary(time.Now())
	if entry.Total != 0 || entry.Correct != 0 || entry.Accuracy != 0 {
		t.Fatalf("expected zero totals, got %+v", entry)
	}
}

func TestChoiceCorrectAnswer(t *testing.T) {
	words := collection(map[string]string{
		"tensor": "a multi-dimensional array",
	})
	s := newSession(t, words, model.QuizConfig{Mode: model.ModeChoice, Count: 1})
	prompt := s.Current()
	if prompt.Key != "tensor" {
		t.Fatalf("unexpected prompt key %q", prompt.Key)
	}
	if len(prompt.Options) != 1 {
		t.Fatalf("sole record has no distractor pool, got %v", prompt.Options)
	}

	result := s.SubmitChoice(strconv.Itoa(prompt.AnswerIndex + 1))
	if result.Outcome != grade.Correct {
		t.Fatalf("expected correct, got %v", result.Outcome)
	}
	if got := words["tensor"].Stat(model.ModeChoice).Correct; got != 1 {
		t.Fatalf("expected choice.correct == 1, got %d", got)
	}
	entry := s.Summary(time.Now())
	if entry.Accuracy != 100.0 || entry.Total != 1 || entry.Correct != 1 {
		t.Fatalf("expected 100%% accuracy, got %+v", entry)
	}
}

func TestChoiceWrongAndMalformedInput(t *testing.T) {
	words := collection(map[string]string{"tensor": "a multi-dimensional array"})
	for _, input := range []string{"not a number", "0", "99", ""} {
		s := newSession(t, words, model.QuizConfig{Mode: model.ModeChoice, Count: 1})
		result := s.SubmitChoice(input)
		if result.Outcome != grade.Wrong {
			t.Fatalf("input %q must grade wrong, got %v", input, result.Outcome)
		}
		if !result.Replay {
			t.Fatalf("wrong choice must request pronunciation replay")
		}
		if result.Target != "a multi-dimensional array" {
			t.Fatalf("wrong choice must reveal the answer, got %q", result.Target)
		}
	}
	if got := words["tensor"].Stat(model.ModeChoice).Wrong; got != 4 {
		t.Fatalf("expected 4 wrong grades, got %d", got)
	}
}

func TestChoiceDistractors(t *testing.T) {
	defs := map[string]string{}
	for i := 0; i < 8; i++ {
		defs[fmt.Sprintf("word%d", i)] = fmt.Sprintf("definition %d", i)
	}
	words := collection(defs)
	s := newSession(t, words, model.QuizConfig{Mode: model.ModeChoice, Count: 8})

	for !s.Done() {
		prompt := s.Current()
		if len(prompt.Options) != 4 {
			t.Fatalf("expected 3 distractors + answer, got %v", prompt.Options)
		}
		seen := map[string]bool{}
		for _, opt := range prompt.Options {
			if seen[opt] {
				t.Fatalf("duplicate option %q in %v", opt, prompt.Options)
			}
			seen[opt] = true
		}
		if prompt.Options[prompt.AnswerIndex] != prompt.Record.Definition {
			t.Fatalf("answer index points at %q, want %q",
				prompt.Options[prompt.AnswerIndex], prompt.Record.Definition)
		}
		s.SubmitChoice(strconv.Itoa(prompt.AnswerIndex + 1))
	}
}

func TestSpellingOutcomes(t *testing.T) {
	cases := []struct {
		answer      string
		wantOutcome grade.Outcome
		wantCorrect int
		wantWrong   int
	}{
		{"attention", grade.Correct, 1, 0},
		{"attantion", grade.Almost, 0, 1},
		{"xyz", grade.Wrong, 0, 1},
	}
	for _, tc := range cases {
		fresh := collection(map[string]string{"attention": "a focusing mechanism"})
		s := newSession(t, fresh, model.QuizConfig{Mode: model.ModeSpelling, Count: 1})
		result := s.SubmitTyped(tc.answer)
		if result.Outcome != tc.wantOutcome {
			t.Fatalf("answer %q: outcome %v, want %v", tc.answer, result.Outcome, tc.wantOutcome)
		}
		pair := fresh["attention"].Stat(model.ModeSpelling)
		if pair.Correct != tc.wantCorrect || pair.Wrong != tc.wantWrong {
			t.Fatalf("answer %q: counters %+v", tc.answer, pair)
		}
	}
}

func TestSpellingEmptyAnswerReplaysOnce(t *testing.T) {
	words := collection(map[string]string{"attention": "a focusing mechanism"})
	s := newSession(t, words, model.QuizConfig{Mode: model.ModeSpelling, Count: 1})

	first := s.SubmitTyped("   ")
	if !first.Reprompt || !first.Replay {
		t.Fatalf("first empty answer must replay and reprompt, got %+v", first)
	}
	if s.Done() {
		t.Fatalf("replay must not advance the session")
	}

	second := s.SubmitTyped("")
	if second.Reprompt {
		t.Fatalf("only one automatic replay is allowed")
	}
	if second.Outcome != grade.Wrong {
		t.Fatalf("second empty answer grades wrong, got %v", second.Outcome)
	}
	if got := words["attention"].Stat(model.ModeSpelling).Wrong; got != 1 {
		t.Fatalf("expected exactly one wrong grade, got %d", got)
	}
}

func TestSentenceTaggedSpelling(t *testing.T) {
	words := map[string]*model.WordRecord{
		"The quick brown fox jumps.": {
			Tags: model.TagList{model.SentenceTag},
		},
	}
	s := newSession(t, words, model.QuizConfig{Mode: model.ModeSpelling, Count: 1})
	result := s.SubmitTyped("The quik brown fox jumps")
	if result.Outcome != grade.Correct {
		t.Fatalf("signature match with ratio >= 0.90 must grade correct, got %v", result.Outcome)
	}
}

func TestRecallMode(t *testing.T) {
	words := collection(map[string]string{"tensor": "a multi-dimensional array"})
	s := newSession(t, words, model.QuizConfig{Mode: model.ModeRecall, Count: 1})

	// Recall has no audio; an empty answer is just wrong.
	result := s.SubmitTyped("")
	if result.Reprompt {
		t.Fatalf("recall mode has no replay")
	}
	if result.Outcome != grade.Wrong {
		t.Fatalf("expected wrong, got %v", result.Outcome)
	}
	if got := words["tensor"].Stat(model.ModeRecall).Wrong; got != 1 {
		t.Fatalf("expected recall.wrong == 1, got %d", got)
	}
}

func TestAbortKeepsGradedItems(t *testing.T) {
	words := collection(map[string]string{
		"alpha": "first letter",
		"beta":  "second letter",
		"gamma": "third letter",
	})
	s := newSession(t, words, model.QuizConfig{Mode: model.ModeSpelling, Count: 3, Order: string(pick.OrderSpellingLeast)})

	prompt := s.Current()
	s.SubmitTyped(prompt.Key)

	// Abort after one item: the summary covers only what was graded.
	entry := s.Summary(time.Now())
	if entry.Total != 1 || entry.Correct != 1 {
		t.Fatalf("expected partial totals 1/1, got %+v", entry)
	}
}

func TestAccuracyRounding(t *testing.T) {
	if got := Accuracy(1, 3); got != 33.3 {
		t.Fatalf("expected 33.3, got %v", got)
	}
	if got := Accuracy(0, 0); got != 0 {
		t.Fatalf("expected 0 for empty session, got %v", got)
	}
	if got := Accuracy(2, 3); got != 66.7 {
		t.Fatalf("expected 66.7, got %v", got)
	}
}
