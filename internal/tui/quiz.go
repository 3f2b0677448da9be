package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minsu-seo/vocadrill/internal/grade"
	"github.com/minsu-seo/vocadrill/internal/model"
	"github.com/minsu-seo/vocadrill/internal/quiz"
	"github.com/minsu-seo/vocadrill/internal/sessionlog"
	"github.com/minsu-seo/vocadrill/internal/speech"
	"github.com/minsu-seo/vocadrill/internal/store"
)

type quizState int

const (
	stateAnswering quizState = iota
	stateFeedback
)

type spokeMsg struct{}

// QuizModel drives one quiz session. Grading and counters live in the
// session engine; this model collects answers, persists after every graded
// item so an abort keeps its progress, and plays audio off the Update loop.
type QuizModel struct {
	session *quiz.Session
	words   map[string]*model.WordRecord
	store   *store.Store
	log     *sessionlog.Log
	speaker *speech.Speaker
	input   textinput.Model

	width  int
	height int

	state quizState
	// shown holds the prompt being graded; the session has already moved
	// on by the time the feedback view renders.
	shown    quiz.Prompt
	feedback string
	logged   bool
}

// NewQuizModel prepares the interactive quiz over an already-built session.
func NewQuizModel(session *quiz.Session, words map[string]*model.WordRecord, st *store.Store, log *sessionlog.Log, speaker *speech.Speaker) *QuizModel {
	input := textinput.New()
	input.Placeholder = "answer"
	input.Focus()
	input.Width = 40
	return &QuizModel{
		session: session,
		words:   words,
		store:   st,
		log:     log,
		speaker: speaker,
		input:   input,
	}
}

// Init implements tea.Model.
func (m *QuizModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.speakCurrent())
}

// Update implements tea.Model.
func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := m.width - 4; w > 0 && w < 60 {
			m.input.Width = w
		}
		return m, nil
	case spokeMsg:
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.finalize()
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *QuizModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.state == stateFeedback {
		if m.session.Done() {
			m.finalize()
			return m, tea.Quit
		}
		m.state = stateAnswering
		m.feedback = ""
		m.input.Reset()
		return m, m.speakCurrent()
	}

	prompt := m.session.Current()
	m.shown = prompt
	answer := m.input.Value()
	var result quiz.Result
	if prompt.Mode == model.ModeChoice {
		result = m.session.SubmitChoice(answer)
	} else {
		result = m.session.SubmitTyped(answer)
	}

	if result.Reprompt {
		m.input.Reset()
		return m, m.replay(prompt.Key)
	}

	m.feedback = renderFeedback(result)
	m.state = stateFeedback
	if err := m.store.Save(m.words); err != nil {
		logErrf("failed to save words: %v\n", err)
	}
	if result.Replay {
		return m, m.replay(prompt.Key)
	}
	return m, nil
}

func renderFeedback(result quiz.Result) string {
	switch result.Outcome {
	case grade.Correct:
		return correctStyle.Render("Correct!")
	case grade.Almost:
		return almostStyle.Render(fmt.Sprintf("Almost! It was %q.", result.Target))
	default:
		return wrongStyle.Render(fmt.Sprintf("Wrong. It was %q.", result.Target))
	}
}

// finalize appends the session log entry once. Word counters are already on
// disk from the per-item saves.
func (m *QuizModel) finalize() {
	if m.logged {
		return
	}
	m.logged = true
	entry := m.session.Summary(time.Now())
	if entry.Total == 0 {
		return
	}
	if err := m.log.Append(entry); err != nil {
		logErrf("failed to log session: %v\n", err)
	}
}

func (m *QuizModel) speakCurrent() tea.Cmd {
	if m.session.Done() {
		return nil
	}
	prompt := m.session.Current()
	// Recall quizzes from the definition; hearing the word would give the
	// answer away.
	if prompt.Mode == model.ModeRecall {
		return nil
	}
	return m.replay(prompt.Key)
}

func (m *QuizModel) replay(text string) tea.Cmd {
	speaker := m.speaker
	return func() tea.Msg {
		speaker.Speak(text)
		return spokeMsg{}
	}
}

// View implements tea.Model.
func (m *QuizModel) View() string {
	if m.session.Done() && m.state != stateFeedback {
		return ""
	}
	contentWidth := m.width - 2
	if contentWidth < 20 {
		contentWidth = 60
	}

	current, total := m.session.Progress()
	prompt := m.shown
	if m.state == stateAnswering {
		prompt = m.session.Current()
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %d/%d  correct %d", prompt.Mode, current, total, m.session.Correct())))
	b.WriteString("\n\n")

	switch prompt.Mode {
	case model.ModeChoice:
		b.WriteString(promptStyle.Render(prompt.Key))
		b.WriteString("\n")
		for i, opt := range prompt.Options {
			b.WriteString(optionStyle.Render(wrapText(fmt.Sprintf("%d. %s", i+1, opt), contentWidth)))
			b.WriteString("\n")
		}
	case model.ModeRecall:
		b.WriteString(promptStyle.Render(wrapText(prompt.Record.Definition, contentWidth)))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("type the word for this definition"))
		b.WriteString("\n")
	case model.ModeSentence:
		b.WriteString(hintStyle.Render("listen and type the sentence (empty answer replays once)"))
		b.WriteString("\n")
	default:
		if def := prompt.Record.Definition; def != "" {
			b.WriteString(hintStyle.Render(wrapText(def, contentWidth)))
			b.WriteString("\n")
		}
		b.WriteString(hintStyle.Render("listen and spell the word (empty answer replays once)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.state == stateFeedback {
		b.WriteString(m.feedback)
		b.WriteString("\n")
		if m.session.Done() {
			b.WriteString(hintStyle.Render("enter to finish"))
		} else {
			b.WriteString(hintStyle.Render("enter for the next one"))
		}
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	return b.String()
}
