// Package pick implements quiz item selection.
package pick

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/minsu-seo/vocadrill/internal/model"
)

// Order names a selection policy.
type Order string

const (
	// OrderRandom samples uniformly without replacement.
	OrderRandom Order = "random"
	// OrderWeighted samples without replacement with wrong+1 weights.
	OrderWeighted Order = "weighted"
	// OrderLeastPracticed surfaces the least-seen words first, most
	// error-prone among equals.
	OrderLeastPracticed Order = "least-practiced"
	// OrderMostWrong is the review queue: words stay eligible until their
	// choice counter graduates (correct >= wrong+2).
	OrderMostWrong Order = "most-wrong"
	// OrderSpellingHard ranks by wrong count, error rate, then volume.
	OrderSpellingHard Order = "spelling-hard"
	// OrderSpellingLeast ranks by fewest attempts, most wrong among equals.
	OrderSpellingLeast Order = "spelling-least"
)

// ParseOrder validates a user-supplied order name.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderRandom, OrderWeighted, OrderLeastPracticed, OrderMostWrong, OrderSpellingHard, OrderSpellingLeast:
		return Order(s), nil
	}
	return "", fmt.Errorf("unknown selection order %q", s)
}

// Filters restricts selection by tags. Include is applied first, then
// Exclude.
type Filters struct {
	Include []string
	Exclude []string
}

// Picker selects quiz candidates.
type Picker struct {
	rnd *rand.Rand
}

// New returns a Picker seeded with the current time.
func New() *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Picker with a fixed seed.
func NewSeeded(seed int64) *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// Select returns up to count keys ordered by the given policy. An empty
// result is a valid outcome meaning nothing is eligible.
func (p *Picker) Select(words map[string]*model.WordRecord, count int, order Order, mode model.Mode, filters Filters) []string {
	if count <= 0 {
		return nil
	}
	keys := eligibleKeys(words, order, mode, filters)
	if len(keys) == 0 {
		return nil
	}

	switch order {
	case OrderRandom:
		p.rnd.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	case OrderWeighted:
		keys = p.weightedSample(keys, words, mode)
	case OrderLeastPracticed:
		sortLeastPracticed(keys, words, mode)
	case OrderMostWrong:
		sortMostWrong(keys, words)
	case OrderSpellingHard:
		sortSpellingHard(keys, words, mode)
	case OrderSpellingLeast:
		sortSpellingLeast(keys, words, mode)
	}

	if len(keys) > count {
		keys = keys[:count]
	}
	return keys
}

func eligibleKeys(words map[string]*model.WordRecord, order Order, mode model.Mode, filters Filters) []string {
	keys := make([]string, 0, len(words))
	for key, rec := range words {
		if len(filters.Include) > 0 && !rec.Tags.Intersects(filters.Include) {
			continue
		}
		if len(filters.Exclude) > 0 && rec.Tags.Intersects(filters.Exclude) {
			continue
		}
		switch order {
		case OrderLeastPracticed:
			if needsDefinition(mode) && rec.Definition == "" {
				continue
			}
		case OrderMostWrong:
			choice := rec.Stat(model.ModeChoice)
			if choice.Correct >= choice.Wrong+2 {
				continue
			}
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// needsDefinition reports whether a mode quizzes on the definition text.
func needsDefinition(mode model.Mode) bool {
	return mode == model.ModeChoice || mode == model.ModeRecall
}

func (p *Picker) weightedSample(keys []string, words map[string]*model.WordRecord, mode model.Mode) []string {
	remaining := append([]string{}, keys...)
	out := make([]string, 0, len(remaining))
	for len(remaining) > 0 {
		total := 0.0
		for _, key := range remaining {
			total += float64(words[key].Stat(mode).Wrong + 1)
		}
		r := p.rnd.Float64() * total
		acc := 0.0
		idx := 0
		for i, key := range remaining {
			acc += float64(words[key].Stat(mode).Wrong + 1)
			if r <= acc {
				idx = i
				break
			}
		}
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}

func sortLeastPracticed(keys []string, words map[string]*model.WordRecord, mode model.Mode) {
	sort.SliceStable(keys, func(i, j int) bool {
		a := words[keys[i]].Stat(mode)
		b := words[keys[j]].Stat(mode)
		if a.Total() != b.Total() {
			return a.Total() < b.Total()
		}
		return a.Wrong > b.Wrong
	})
}

func sortMostWrong(keys []string, words map[string]*model.WordRecord) {
	sort.SliceStable(keys, func(i, j int) bool {
		return words[keys[i]].Stat(model.ModeChoice).Wrong > words[keys[j]].Stat(model.ModeChoice).Wrong
	})
}

func sortSpellingHard(keys []string, words map[string]*model.WordRecord, mode model.Mode) {
	sort.SliceStable(keys, func(i, j int) bool {
		a := words[keys[i]].Stat(mode)
		b := words[keys[j]].Stat(mode)
		if a.Wrong != b.Wrong {
			return a.Wrong > b.Wrong
		}
		ra := errorRate(a)
		rb := errorRate(b)
		if ra != rb {
			return ra > rb
		}
		return a.Total() > b.Total()
	})
}

func sortSpellingLeast(keys []string, words map[string]*model.WordRecord, mode model.Mode) {
	sort.SliceStable(keys, func(i, j int) bool {
		a := words[keys[i]].Stat(mode)
		b := words[keys[j]].Stat(mode)
		if a.Total() != b.Total() {
			return a.Total() < b.Total()
		}
		return a.Wrong > b.Wrong
	})
}

// errorRate is wrong/total, with never-attempted items ranking as maximally
// hard.
func errorRate(pair *model.StatPair) float64 {
	if pair.Total() == 0 {
		return 1.0
	}
	return float64(pair.Wrong) / float64(pair.Total())
}
