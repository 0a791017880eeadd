// Package results displays the final score and a per-question review
// after a finished game.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/ui/layout"
	"github.com/abhisek/grammiz/internal/ui/theme"
)

// ResultsScreen shows the outcome of a finished session.
type ResultsScreen struct {
	session *quiz.Session

	// scroll is the index of the first visible review row.
	scroll int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen over a finished session.
func New(session *quiz.Session) *ResultsScreen {
	return &ResultsScreen{session: session}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.scroll > 0 {
			r.scroll--
		}
	case "down", "j":
		if r.scroll < len(r.session.History)-1 {
			r.scroll++
		}
	case "enter", "esc":
		// Back to topic selection either way; the session keeps level
		// and topic so "play again" is one keypress away there.
		r.session.RestartGame()
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	s := r.session

	var b strings.Builder

	correct := 0
	for _, rec := range s.History {
		if rec.IsCorrect {
			correct++
		}
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Geschafft!"))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if s.Score < 0 {
		scoreStyle = scoreStyle.Foreground(theme.Error)
	}
	statsLine := fmt.Sprintf("Punkte: %s        Richtig: %d/%d",
		scoreStyle.Render(fmt.Sprintf("%d", s.Score)),
		correct, len(s.History))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Deine Antworten")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(r.renderReview(width, height))

	return b.String()
}

// renderReview renders the scrollable per-question list. Each answered
// question gets two lines: the sentence with the blank filled, and what
// the learner typed when it was wrong.
func (r *ResultsScreen) renderReview(width, height int) string {
	history := r.session.History
	if len(history) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Keine Antworten aufgezeichnet.")
	}

	// Rough room left after the summary block; three lines per entry.
	visible := (height - 8) / 3
	if visible < 3 {
		visible = 3
	}

	start := r.scroll
	if start > len(history)-visible {
		start = len(history) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(history) {
		end = len(history)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		rec := history[i]
		q := rec.Question

		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !rec.IsCorrect {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}

		sentence := q.PreGap + " " +
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(q.Answer)
		if q.PostGap != "" {
			sentence += " " + q.PostGap
		}

		line := fmt.Sprintf("  %s %2d. %s", mark, i+1, sentence)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")

		detail := q.Translation
		if !rec.IsCorrect {
			detail = fmt.Sprintf("deine Antwort: %q", rec.UserInput)
			if q.Translation != "" {
				detail += "  ·  " + q.Translation
			}
		}
		if detail != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("        "+detail)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if end < len(history) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d weitere", len(history)-end)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
