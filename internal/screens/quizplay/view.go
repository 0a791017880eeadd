package quizplay

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if p.showingFeedback {
		return p.renderFeedback(width)
	}
	return p.renderQuestionView(width)
}

// renderQuestionView renders the active gap sentence and the input.
func (p *PlayScreen) renderQuestionView(width int) string {
	q, ok := p.session.CurrentQuestion()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading question...")
	}

	var b strings.Builder

	// Progress line: question counter left, score right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Frage %d/%d", p.session.CurrentQuestionIndex+1, len(p.session.Questions)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Punkte: %s", renderScore(p.session.Score)))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	// The sentence with a highlighted blank.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(renderGapSentence(q)))
	b.WriteString("\n\n")

	if p.showHint && q.Hint != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Italic(true).
			Render("Tipp: " + q.Hint))
		b.WriteString("\n\n")
	}

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Antwort: " + p.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderGapSentence joins PreGap and PostGap around a visible blank.
func renderGapSentence(q quiz.Question) string {
	blank := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Underline(true).
		Render("______")

	parts := make([]string, 0, 3)
	if q.PreGap != "" {
		parts = append(parts, q.PreGap)
	}
	parts = append(parts, blank)
	if q.PostGap != "" {
		parts = append(parts, q.PostGap)
	}
	return strings.Join(parts, " ")
}

// renderFeedback renders the result of the last answer.
func (p *PlayScreen) renderFeedback(width int) string {
	last := p.session.History[len(p.session.History)-1]
	q := last.Question

	var b strings.Builder
	b.WriteString("\n\n")

	if last.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Richtig! +%d", quiz.PointsCorrect)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("Leider falsch. -%d", quiz.PointsWrong)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Richtige Antwort: %s", lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(q.Answer))))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Deine Antwort: %s", last.UserInput)))
	}

	b.WriteString("\n\n")

	// Full sentence with the answer filled in, plus translation.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(filledSentence(q)))
	if q.Translation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.Translation))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Weiter mit beliebiger Taste..."))

	return b.String()
}

// filledSentence shows the complete sentence with the answer in place.
func filledSentence(q quiz.Question) string {
	parts := make([]string, 0, 3)
	if q.PreGap != "" {
		parts = append(parts, q.PreGap)
	}
	parts = append(parts, q.Answer)
	if q.PostGap != "" {
		parts = append(parts, q.PostGap)
	}
	return strings.Join(parts, " ")
}

// renderScore colors negative scores in the error color.
func renderScore(score int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if score < 0 {
		style = style.Foreground(theme.Error)
	}
	return style.Render(fmt.Sprintf("%d", score))
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Spiel wirklich beenden?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Der aktuelle Punktestand geht verloren."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Ja, beenden"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Nein, weiterspielen"))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
