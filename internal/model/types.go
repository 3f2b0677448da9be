// Package model defines shared data structures.
package model

import (
	"encoding/json"
	"fmt"
)

// Mode identifies a quiz mode and the stats counter it feeds.
type Mode string

const (
	ModeChoice   Mode = "choice"
	ModeRecall   Mode = "recall"
	ModeSpelling Mode = "spelling"
	ModeSentence Mode = "sentence"
)

// RequiredModes lists the counters every record carries after normalization.
var RequiredModes = []Mode{ModeChoice, ModeRecall, ModeSpelling, ModeSentence}

// ParseMode validates a user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	for _, known := range RequiredModes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown quiz mode %q", s)
}

// StatPair counts graded answers for one quiz mode.
type StatPair struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// Total returns the number of graded attempts.
func (p StatPair) Total() int {
	return p.Correct + p.Wrong
}

// UnmarshalJSON accepts both the current {"correct","wrong"} shape and the
// legacy {"c","w"} counter keys.
func (p *StatPair) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["correct"]; ok {
		p.Correct = v
	} else if v, ok := raw["c"]; ok {
		p.Correct = v
	}
	if v, ok := raw["wrong"]; ok {
		p.Wrong = v
	} else if v, ok := raw["w"]; ok {
		p.Wrong = v
	}
	return nil
}

// TagList is a set of tags persisted as a JSON array. Legacy records stored
// a bare string; decoding wraps it into a single-element list.
type TagList []string

// UnmarshalJSON accepts either a string array or a bare string.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("tags must be a string or string array: %w", err)
	}
	*t = TagList{single}
	return nil
}

// Contains reports whether the list holds the given tag.
func (t TagList) Contains(tag string) bool {
	for _, have := range t {
		if have == tag {
			return true
		}
	}
	return false
}

// Intersects reports whether the list shares any tag with the given set.
func (t TagList) Intersects(tags []string) bool {
	for _, want := range tags {
		if t.Contains(want) {
			return true
		}
	}
	return false
}

// SentenceTag marks a record as a sentence-learning item.
const SentenceTag = "sentence"

// WordRecord is one persisted vocabulary entry, keyed by its word or
// sentence text in the collection. The key itself is not stored inside the
// record; rename is delete plus insert.
type WordRecord struct {
	Definition string             `json:"definition"`
	Examples   []string           `json:"examples"`
	Tags       TagList            `json:"tags"`
	Stats      map[Mode]*StatPair `json:"stats"`
	AddedAt    string             `json:"added_at"`
}

// Stat returns the counter for a mode, allocating it when missing.
func (r *WordRecord) Stat(mode Mode) *StatPair {
	if r.Stats == nil {
		r.Stats = map[Mode]*StatPair{}
	}
	pair, ok := r.Stats[mode]
	if !ok {
		pair = &StatPair{}
		r.Stats[mode] = pair
	}
	return pair
}

// IsSentence reports whether the record is a sentence-learning item.
func (r *WordRecord) IsSentence() bool {
	return r.Tags.Contains(SentenceTag)
}

// SessionEntry is one completed quiz run in the append-only session log.
type SessionEntry struct {
	Mode      string  `json:"mode"`
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"acc"`
	StartedAt string  `json:"started_at"`
	Duration  float64 `json:"duration"`
}

// QuizConfig defines one quiz session request.
type QuizConfig struct {
	Mode          Mode
	Count         int
	Order         string
	IncludeTags   []string
	ExcludeTags   []string
	SentenceRatio float64
}
