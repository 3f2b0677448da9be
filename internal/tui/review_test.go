package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minsu-seo/vocadrill/internal/schedule"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func reviewModelForTest(t *testing.T) (*ReviewModel, *schedule.DB) {
	t.Helper()
	db, err := schedule.OpenDB(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Add("visitor pattern", "double dispatch over a closed type set", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	items := db.DueItems(time.Now().AddDate(0, 0, 2), nil)
	if len(items) != 1 {
		t.Fatalf("expected one due item, got %d", len(items))
	}
	return NewReviewModel(db, items, time.Now()), db
}

func TestReviewMarkThenApply(t *testing.T) {
	m, db := reviewModelForTest(t)

	updated, _ := m.Update(key("o"))
	m = updated.(*ReviewModel)
	if !m.marking {
		t.Fatalf("mark key must open the summary edit")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*ReviewModel)
	if m.Reviewed() != 1 {
		t.Fatalf("expected one reviewed item, got %d", m.Reviewed())
	}
	if db.Active[0].MemoryCount != 1 {
		t.Fatalf("expected memory count 1, got %d", db.Active[0].MemoryCount)
	}
	if db.Active[0].Summary != "double dispatch over a closed type set" {
		t.Fatalf("empty edit must keep the summary, got %q", db.Active[0].Summary)
	}
}

func TestReviewEscCancelsMark(t *testing.T) {
	m, db := reviewModelForTest(t)

	updated, _ := m.Update(key("x"))
	m = updated.(*ReviewModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(*ReviewModel)

	if m.marking || m.Reviewed() != 0 {
		t.Fatalf("esc must cancel without reviewing")
	}
	if len(db.Active[0].History) != 0 {
		t.Fatalf("cancelled mark must not touch history")
	}
}

func TestReviewViewShowsContent(t *testing.T) {
	m, _ := reviewModelForTest(t)
	view := m.View()
	if !strings.Contains(view, "visitor pattern") {
		t.Fatalf("view missing item content:\n%s", view)
	}
	if strings.Contains(view, "double dispatch") {
		t.Fatalf("summary must stay hidden until revealed:\n%s", view)
	}

	updated, _ := m.Update(key("s"))
	m = updated.(*ReviewModel)
	if !strings.Contains(m.View(), "double dispatch") {
		t.Fatalf("s key must reveal the summary:\n%s", m.View())
	}
}
