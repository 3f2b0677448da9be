// Package quiz implements the quiz session engine: prompt building, answer
// grading, and session totals. The engine is pure state; the interactive
// loop lives in the TUI and calls in with answers it already collected.
package quiz

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/minsu-seo/vocadrill/internal/grade"
	"github.com/minsu-seo/vocadrill/internal/model"
	"github.com/minsu-seo/vocadrill/internal/pick"
)

// DefaultSentenceRatio is the similarity threshold for sentence grading.
const DefaultSentenceRatio = 0.90

// maxDistractors caps the number of wrong options in a choice prompt.
const maxDistractors = 3

// Prompt describes the current quiz item for display.
type Prompt struct {
	Key     string
	Record  *model.WordRecord
	Mode    model.Mode
	Options []string
	// Index into Descriptions/Options of the correct choice; -1 for typed
	// modes.
	AnswerIndex int
}

// Result reports one graded (or deferred) answer.
type Result struct {
	Outcome grade.Outcome
	// Target holds the expected answer, revealed on wrong.
	Target string
	// Replay asks the caller to play the pronunciation again.
	Replay bool
	// Reprompt means the answer was not graded: the single free replay for
	// an empty spelling answer was consumed instead.
	Reprompt bool
}

// Session runs one quiz over a pre-selected ordered key list. Grading
// mutates the shared word records in place; the caller persists them.
type Session struct {
	words map[string]*model.WordRecord
	cfg   model.QuizConfig
	keys  []string
	rnd   *rand.Rand

	idx        int
	graded     int
	correct    int
	replayUsed bool
	prompt     *Prompt
	startedAt  time.Time
}

// NewSession selects candidates and prepares a session. An empty selection
// yields a session that is immediately done with zero totals.
func NewSession(words map[string]*model.WordRecord, cfg model.QuizConfig, picker *pick.Picker) (*Session, error) {
	order, err := pick.ParseOrder(cfg.Order)
	if err != nil {
		return nil, err
	}
	if cfg.SentenceRatio <= 0 {
		cfg.SentenceRatio = DefaultSentenceRatio
	}
	keys := picker.Select(words, cfg.Count, order, cfg.Mode, pick.Filters{
		Include: cfg.IncludeTags,
		Exclude: cfg.ExcludeTags,
	})
	return &Session{
		words:     words,
		cfg:       cfg,
		keys:      keys,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		startedAt: time.Now(),
	}, nil
}

// Empty reports whether nothing was eligible to quiz.
func (s *Session) Empty() bool {
	return len(s.keys) == 0
}

// Done reports whether every selected item has been graded.
func (s *Session) Done() bool {
	return s.idx >= len(s.keys)
}

// Progress returns the 1-based position of the current item and the total.
func (s *Session) Progress() (current, total int) {
	pos := s.idx + 1
	if pos > len(s.keys) {
		pos = len(s.keys)
	}
	return pos, len(s.keys)
}

// Correct returns the running number of correct answers.
func (s *Session) Correct() int {
	return s.correct
}

// Current returns the prompt for the current item, building the option list
// once per item.
func (s *Session) Current() Prompt {
	if s.prompt == nil {
		s.prompt = s.buildPrompt()
	}
	return *s.prompt
}

func (s *Session) buildPrompt() *Prompt {
	key := s.keys[s.idx]
	rec := s.words[key]
	p := &Prompt{Key: key, Record: rec, Mode: s.cfg.Mode, AnswerIndex: -1}
	if s.cfg.Mode == model.ModeChoice {
		p.Options, p.AnswerIndex = s.buildChoices(key, rec.Definition)
	}
	return p
}

// buildChoices combines the correct definition with up to three distinct
// distractor definitions drawn from the other records, shuffled.
func (s *Session) buildChoices(key, correctDef string) ([]string, int) {
	seen := map[string]struct{}{correctDef: {}}
	pool := make([]string, 0, len(s.words))
	for other, rec := range s.words {
		if other == key || rec.Definition == "" {
			continue
		}
		if _, dup := seen[rec.Definition]; dup {
			continue
		}
		seen[rec.Definition] = struct{}{}
		pool = append(pool, rec.Definition)
	}
	s.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	options := append([]string{correctDef}, pool[:min(maxDistractors, len(pool))]...)
	s.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	for i, opt := range options {
		if opt == correctDef {
			return options, i
		}
	}
	return options, 0
}

// SubmitChoice grades a 1-based option index typed by the user. Anything
// non-numeric or out of range counts as wrong; it never errors.
func (s *Session) SubmitChoice(input string) Result {
	prompt := s.Current()
	idx, err := strconv.Atoi(strings.TrimSpace(input))
	correct := err == nil && idx >= 1 && idx <= len(prompt.Options) && idx-1 == prompt.AnswerIndex

	outcome := grade.Wrong
	if correct {
		outcome = grade.Correct
	}
	result := Result{Outcome: outcome, Target: prompt.Record.Definition}
	if !correct {
		// Reveal the answer and replay the pronunciation.
		result.Replay = true
	}
	s.applyOutcome(prompt, outcome)
	return result
}

// SubmitTyped grades a typed answer for the spelling, recall, and sentence
// modes. One empty spelling answer buys a replay instead of a grade.
func (s *Session) SubmitTyped(answer string) Result {
	prompt := s.Current()
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" && !s.replayUsed && s.cfg.Mode != model.ModeRecall {
		s.replayUsed = true
		return Result{Reprompt: true, Replay: true}
	}

	var outcome grade.Outcome
	var target string
	switch s.cfg.Mode {
	case model.ModeSentence:
		target = prompt.Key
		outcome = grade.Sentence(trimmed, target, s.cfg.SentenceRatio)
	case model.ModeRecall:
		target = prompt.Key
		outcome = grade.Spelling(trimmed, target)
	default:
		target = prompt.Key
		if prompt.Record.IsSentence() {
			outcome = grade.Sentence(trimmed, target, s.cfg.SentenceRatio)
		} else {
			outcome = grade.Spelling(trimmed, target)
		}
	}

	result := Result{Outcome: outcome, Target: target}
	s.applyOutcome(prompt, outcome)
	return result
}

// applyOutcome increments exactly one counter, accumulates the session
// total, and advances to the next item.
func (s *Session) applyOutcome(prompt Prompt, outcome grade.Outcome) {
	pair := prompt.Record.Stat(s.cfg.Mode)
	if outcome.Scores() {
		pair.Correct++
		s.correct++
	} else {
		pair.Wrong++
	}
	s.graded++
	s.idx++
	s.prompt = nil
	s.replayUsed = false
}

// Summary builds the session log entry for everything graded so far.
func (s *Session) Summary(now time.Time) model.SessionEntry {
	return model.SessionEntry{
		Mode:      string(s.cfg.Mode),
		Total:     s.graded,
		Correct:   s.correct,
		Accuracy:  Accuracy(s.correct, s.graded),
		StartedAt: s.startedAt.UTC().Format(time.RFC3339),
		Duration:  math.Round(now.Sub(s.startedAt).Seconds()*10) / 10,
	}
}

// Accuracy is correct/total as a percentage rounded to one decimal, zero
// for an empty session.
func Accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}
