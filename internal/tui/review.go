package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minsu-seo/vocadrill/internal/schedule"
)

// ReviewModel walks the due scheduler items one at a time. A mark key
// (o / d / x) opens an optional summary edit; enter applies the review.
type ReviewModel struct {
	db    *schedule.DB
	items []*schedule.Item
	on    time.Time
	idx   int

	marking  bool
	revealed bool
	mark     schedule.Mark
	input    textinput.Model

	reviewed  int
	completed int
	width     int
}

// NewReviewModel prepares a review pass over the given due items, dated at
// the given day so backdated passes reschedule from that day.
func NewReviewModel(db *schedule.DB, items []*schedule.Item, on time.Time) *ReviewModel {
	input := textinput.New()
	input.Placeholder = "updated summary (enter keeps the old one)"
	input.Width = 50
	return &ReviewModel{db: db, items: items, on: on, input: input}
}

// Reviewed returns how many items were marked this pass.
func (m *ReviewModel) Reviewed() int { return m.reviewed }

// Completed returns how many items graduated to the completed pool.
func (m *ReviewModel) Completed() int { return m.completed }

// Init implements tea.Model.
func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.done() {
			return m, tea.Quit
		}
		if m.marking {
			return m.updateSummaryInput(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "o":
			return m.beginMark(schedule.MarkSuccess)
		case "d":
			return m.beginMark(schedule.MarkPartial)
		case "x":
			return m.beginMark(schedule.MarkFail)
		case "s":
			m.revealed = !m.revealed
			return m, nil
		}
	}
	return m, nil
}

func (m *ReviewModel) beginMark(mark schedule.Mark) (tea.Model, tea.Cmd) {
	m.marking = true
	m.mark = mark
	m.input.Reset()
	m.input.Focus()
	return m, textinput.Blink
}

func (m *ReviewModel) updateSummaryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.marking = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		item := m.items[m.idx]
		if err := m.db.ReviewOn(item, m.mark, strings.TrimSpace(m.input.Value()), m.on); err != nil {
			logErrf("failed to apply review: %v\n", err)
		} else {
			m.reviewed++
			if item.Completed() {
				m.completed++
			}
		}
		m.marking = false
		m.revealed = false
		m.input.Blur()
		m.idx++
		if m.done() {
			return m, tea.Quit
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReviewModel) done() bool {
	return m.idx >= len(m.items)
}

// View implements tea.Model.
func (m *ReviewModel) View() string {
	if m.done() {
		return ""
	}
	contentWidth := m.width - 2
	if contentWidth < 20 {
		contentWidth = 70
	}
	item := m.items[m.idx]

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("review %d/%d  strength %d/%d  due %s",
		m.idx+1, len(m.items), item.MemoryCount, schedule.MaxMemoryCount, item.NextReviewDate)))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(wrapText(item.Content, contentWidth)))
	b.WriteString("\n")
	if len(item.Tags) > 0 {
		b.WriteString(hintStyle.Render("tags: " + strings.Join(item.Tags, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.marking {
		b.WriteString(summaryStyle.Render(wrapText(item.Summary, contentWidth)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("marked %s. ", m.mark))
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter to apply, esc to cancel"))
	} else {
		if m.revealed && item.Summary != "" {
			b.WriteString(summaryStyle.Render(wrapText(item.Summary, contentWidth)))
			b.WriteString("\n\n")
		}
		b.WriteString(hintStyle.Render("o remembered / d partial / x forgot  ·  s summary  ·  q quit"))
	}
	b.WriteString("\n")
	return b.String()
}
