// Package start implements the topic and level selection screen. It is
// the session's resting state: games begin, and finished games restart,
// from here.
package start

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	quizscreen "github.com/abhisek/grammiz/internal/screens/quizplay"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/abhisek/grammiz/internal/topics"
	"github.com/abhisek/grammiz/internal/ui/components"
	"github.com/abhisek/grammiz/internal/ui/layout"
	"github.com/abhisek/grammiz/internal/ui/theme"
)

// gameLoadedMsg carries a finished fetch back to the update goroutine,
// which alone applies it to the session.
type gameLoadedMsg struct {
	ticket    quiz.LoadTicket
	questions []quiz.Question
	err       error
}

// StartScreen lets the learner pick a topic and level and start a game.
type StartScreen struct {
	session *quiz.Session
	prefs   store.PrefsRepo
	topics  []topics.Topic

	menu    components.Menu
	loading bool
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen over the given session. The topic list
// comes from the registry; the cursor starts on the session's selected
// topic.
func New(session *quiz.Session, registry *topics.Registry, prefs store.PrefsRepo) *StartScreen {
	s := &StartScreen{
		session: session,
		prefs:   prefs,
		topics:  registry.ListAll(),
	}

	items := make([]components.MenuItem, len(s.topics))
	for i, t := range s.topics {
		items[i] = components.MenuItem{
			Label:  fmt.Sprintf("%s  %s — %s", t.Icon, t.Title, t.Description),
			Action: s.startGame,
		}
	}
	s.menu = components.NewMenu(items)
	for i, t := range s.topics {
		if t.ID == session.SelectedTopic {
			s.menu.Selected = i
			break
		}
	}
	return s
}

func (s *StartScreen) Init() tea.Cmd {
	return nil
}

func (s *StartScreen) Title() string {
	return "Choose a Topic"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	if s.loading {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "Tab", Description: "Level"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameLoadedMsg:
		s.loading = false
		s.session.CompleteLoad(msg.ticket, msg.questions, msg.err)
		if s.session.State == quiz.StatePlaying {
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(s.session)}
			}
		}
		// Load failed; the session carries the message, shown inline.
		return s, nil

	case tea.KeyMsg:
		if s.loading {
			return s, nil
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StartScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right", "l":
		s.toggleLevel()
		return s, nil
	}

	// The menu owns navigation and the enter action.
	before := s.menu.Selected
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	if s.menu.Selected != before {
		s.applyTopic()
	}
	return s, cmd
}

func (s *StartScreen) applyTopic() {
	s.session.SetTopic(s.topics[s.menu.Selected].ID)
	s.savePrefs()
}

func (s *StartScreen) toggleLevel() {
	if s.session.UserLevel == quiz.LevelA2 {
		s.session.SetLevel(quiz.LevelB1)
	} else {
		s.session.SetLevel(quiz.LevelA2)
	}
	s.savePrefs()
}

// savePrefs persists level and topic. Failures are ignored; preferences
// are a convenience, not state the game depends on.
func (s *StartScreen) savePrefs() {
	if s.prefs == nil {
		return
	}
	_ = s.prefs.Save(context.Background(), store.Prefs{
		UserLevel:     string(s.session.UserLevel),
		SelectedTopic: s.session.SelectedTopic,
	})
}

// startGame kicks off the question load. The blocking fetch runs on a
// command goroutine against a snapshot ticket; the session stays owned
// by the update goroutine.
func (s *StartScreen) startGame() tea.Cmd {
	s.session.SetTopic(s.topics[s.menu.Selected].ID)
	s.loading = true
	ticket := s.session.BeginLoad()
	return func() tea.Msg {
		questions, err := ticket.Fetch(context.Background())
		return gameLoadedMsg{ticket: ticket, questions: questions, err: err}
	}
}

func (s *StartScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	heading := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Was möchtest du üben?")
	b.WriteString(heading)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderLevelToggle()))
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Sätze werden erstellt..."))
	} else {
		button := components.NewButton("Start", true, nil)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button.View()))
	}

	// Inline load error, if the last start failed.
	if s.session.Err != "" && !s.loading {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.session.Err))
	}

	return b.String()
}

func (s *StartScreen) renderLevelToggle() string {
	render := func(level quiz.UserLevel, label string) string {
		if s.session.UserLevel == level {
			return theme.Selected.Render("[" + label + "]")
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + label + " ")
	}
	return fmt.Sprintf("Niveau:  %s  %s",
		render(quiz.LevelA2, "A2"),
		render(quiz.LevelB1, "B1"))
}
