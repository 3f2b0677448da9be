// Package schedule implements the spaced-repetition item scheduler with
// O/Δ/X review marks and an interval table keyed by memory strength.
package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/minsu-seo/vocadrill/internal/model"
)

const dateLayout = "2006-01-02"

// MaxMemoryCount is the mastery ceiling; reaching it with a success mark
// completes the item.
const MaxMemoryCount = 3

// Intervals maps memory count to the number of days until the next review.
var Intervals = map[int]int{0: 1, 1: 3, 2: 7, 3: 30}

// Mark is a review outcome symbol.
type Mark string

const (
	MarkSuccess Mark = "O"
	MarkPartial Mark = "Δ"
	MarkFail    Mark = "X"
)

// ErrInvalidMark rejects review marks outside the three allowed symbols.
var ErrInvalidMark = errors.New(`mark must be "O", "Δ", or "X"`)

// ParseMark validates a user-supplied mark.
func ParseMark(s string) (Mark, error) {
	switch Mark(s) {
	case MarkSuccess, MarkPartial, MarkFail:
		return Mark(s), nil
	}
	return "", ErrInvalidMark
}

// HistoryEntry records one review event. History is append-only.
type HistoryEntry struct {
	Date   string `json:"date"`
	Status Mark   `json:"status"`
}

// Item is one piece of knowledge cycling through reviews.
type Item struct {
	Content        string         `json:"content"`
	Summary        string         `json:"summary"`
	ID             string         `json:"id"`
	InitialDate    string         `json:"initial_date"`
	LastReviewDate string         `json:"last_review_date"`
	NextReviewDate string         `json:"next_review_date"`
	MemoryCount    int            `json:"memory_count"`
	Status         Mark           `json:"status"`
	History        []HistoryEntry `json:"history"`
	Tags           model.TagList  `json:"tags"`
}

// NewItem creates an item due for its first review tomorrow.
func NewItem(content, summary string, tags []string, on time.Time) *Item {
	day := on.Format(dateLayout)
	return &Item{
		Content:        content,
		Summary:        summary,
		ID:             uuid.NewString(),
		InitialDate:    day,
		LastReviewDate: day,
		NextReviewDate: on.AddDate(0, 0, 1).Format(dateLayout),
		MemoryCount:    0,
		Status:         MarkFail,
		History:        []HistoryEntry{},
		Tags:           tags,
	}
}

// Review applies a mark: O bumps the memory count (capped), X resets it, Δ
// keeps it. The next review date is always recomputed from the interval
// table, and the review is appended to the history. An invalid mark is
// rejected before any state changes.
func (it *Item) Review(mark Mark, summaryUpdate string, on time.Time) error {
	if _, err := ParseMark(string(mark)); err != nil {
		return err
	}

	day := on.Format(dateLayout)
	it.Status = mark
	it.LastReviewDate = day
	it.History = append(it.History, HistoryEntry{Date: day, Status: mark})
	if summaryUpdate != "" {
		it.Summary = summaryUpdate
	}

	switch mark {
	case MarkSuccess:
		it.MemoryCount = min(it.MemoryCount+1, MaxMemoryCount)
	case MarkFail:
		it.MemoryCount = 0
	}

	it.NextReviewDate = on.AddDate(0, 0, Intervals[it.MemoryCount]).Format(dateLayout)
	return nil
}

// Completed reports whether the last review mastered the item.
func (it *Item) Completed() bool {
	return it.Status == MarkSuccess && it.MemoryCount == MaxMemoryCount
}

// IsDue reports whether the item should be reviewed on or before the given
// date. An unparseable stored date counts as due so the record surfaces for
// repair.
func (it *Item) IsDue(on time.Time) bool {
	next, err := time.Parse(dateLayout, it.NextReviewDate)
	if err != nil {
		return true
	}
	day, _ := time.Parse(dateLayout, on.Format(dateLayout))
	return !next.After(day)
}
