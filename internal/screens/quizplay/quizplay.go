// Package quizplay implements the active game screen: one gap sentence
// at a time, answer input, feedback, and the quit confirmation dialog.
package quizplay

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/screens/results"
	"github.com/abhisek/grammiz/internal/ui/components"
	"github.com/abhisek/grammiz/internal/ui/layout"
)

// PlayScreen implements screen.Screen for a running game.
type PlayScreen struct {
	session *quiz.Session
	input   components.TextInput

	showingFeedback    bool
	showingQuitConfirm bool
	showHint           bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen over a session already in the playing state.
func New(session *quiz.Session) *PlayScreen {
	return &PlayScreen{
		session: session,
		input:   newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Antwort eingeben...", 40)
}

func (p *PlayScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PlayScreen) Title() string {
	return "Quiz"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	if p.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+H", Description: "Hint"},
		{Key: "Esc", Description: "Quit game"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if !p.showingFeedback && !p.showingQuitConfirm {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Quit confirmation dialog.
	if p.showingQuitConfirm {
		switch key {
		case "y", "Y":
			p.session.RestartGame()
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.showingQuitConfirm = false
		}
		return p, nil
	}

	// Feedback overlay. Any key moves on; advancing past the last
	// question finishes the game.
	if p.showingFeedback {
		return p.advance()
	}

	switch key {
	case "esc":
		p.showingQuitConfirm = true
		return p, nil
	case "ctrl+h":
		p.showHint = !p.showHint
		return p, nil
	case "enter":
		return p.submitAnswer()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// submitAnswer scores the typed answer and switches to feedback.
func (p *PlayScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := p.input.Value()
	if answer == "" {
		return p, nil
	}
	if _, ok := p.session.CurrentQuestion(); !ok {
		return p, nil
	}

	p.session.RecordAnswer(answer)

	last := p.session.History[len(p.session.History)-1]
	p.input.Submit(last.IsCorrect)
	p.showingFeedback = true
	return p, nil
}

// advance dismisses feedback and moves to the next question, or to the
// results screen when the game is over. The current question must have
// been answered; an unanswered one just drops the feedback overlay.
func (p *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	p.showingFeedback = false
	p.showHint = false

	if !p.session.Answered() {
		return p, nil
	}

	p.session.NextQuestion()
	if p.session.State == quiz.StateFinished {
		session := p.session
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(session)}
		}
	}

	p.input = newAnswerInput()
	return p, p.input.Init()
}
