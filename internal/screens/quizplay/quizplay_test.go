package quizplay

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/screens/results"
)

// stubSource serves a fixed question list.
type stubSource struct {
	questions []quiz.Question
}

func (s *stubSource) Fetch(_ context.Context, _ quiz.UserLevel, _ string) ([]quiz.Question, error) {
	return s.questions, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPlayScreen(t *testing.T, n int) *PlayScreen {
	t.Helper()
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			ID:          i + 1,
			PreGap:      "Das ist",
			PostGap:     "Hund.",
			Answer:      "mein",
			Translation: "That is my dog.",
			Hint:        "ich (Nominativ)",
		}
	}
	session := quiz.NewSession(&stubSource{questions: questions})
	session.StartGame(context.Background())
	if session.State != quiz.StatePlaying {
		t.Fatalf("session state = %v, want playing", session.State)
	}
	return New(session)
}

func TestPlayScreen_SubmitCorrect(t *testing.T) {
	p := testPlayScreen(t, 3)
	p.input.Model.SetValue("mein")

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	pp := scr.(*PlayScreen)

	if !pp.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if pp.session.Score != quiz.PointsCorrect {
		t.Errorf("score = %d, want %d", pp.session.Score, quiz.PointsCorrect)
	}
}

func TestPlayScreen_SubmitWrongShowsCorrection(t *testing.T) {
	p := testPlayScreen(t, 3)
	p.input.Model.SetValue("dein")

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	pp := scr.(*PlayScreen)

	if pp.session.Score != -quiz.PointsWrong {
		t.Errorf("score = %d, want %d", pp.session.Score, -quiz.PointsWrong)
	}

	view := pp.View(80, 24)
	if !contains(view, "mein") {
		t.Error("feedback should show the correct answer")
	}
	if !contains(view, "That is my dog.") {
		t.Error("feedback should show the translation")
	}
}

func TestPlayScreen_EmptySubmitIgnored(t *testing.T) {
	p := testPlayScreen(t, 3)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	pp := scr.(*PlayScreen)

	if pp.showingFeedback {
		t.Error("empty submit should not produce feedback")
	}
	if len(pp.session.History) != 0 {
		t.Errorf("history = %d entries, want 0", len(pp.session.History))
	}
}

func TestPlayScreen_AdvanceAfterFeedback(t *testing.T) {
	p := testPlayScreen(t, 3)
	p.input.Model.SetValue("mein")

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	pp := scr.(*PlayScreen)

	if pp.showingFeedback {
		t.Error("feedback should be dismissed")
	}
	if pp.session.CurrentQuestionIndex != 1 {
		t.Errorf("index = %d, want 1", pp.session.CurrentQuestionIndex)
	}
	if pp.input.Value() != "" {
		t.Error("input should be cleared for the next question")
	}
}

func TestPlayScreen_NoAdvanceWithoutAnswer(t *testing.T) {
	p := testPlayScreen(t, 3)
	p.showingFeedback = true

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress(' '))
	pp := scr.(*PlayScreen)

	if pp.showingFeedback {
		t.Error("feedback should be dismissed")
	}
	if pp.session.CurrentQuestionIndex != 0 {
		t.Errorf("index = %d, want 0 (unanswered question must not advance)", pp.session.CurrentQuestionIndex)
	}
	if pp.session.State != quiz.StatePlaying {
		t.Errorf("session state = %v, want playing", pp.session.State)
	}
}

func TestPlayScreen_LastQuestionGoesToResults(t *testing.T) {
	p := testPlayScreen(t, 1)
	p.input.Model.SetValue("mein")

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(keyPress(' '))

	if cmd == nil {
		t.Fatal("expected a command after finishing the last question")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", replaceMsg.Screen)
	}
	if p.session.State != quiz.StateFinished {
		t.Errorf("session state = %v, want finished", p.session.State)
	}
}

func TestPlayScreen_HintToggle(t *testing.T) {
	p := testPlayScreen(t, 3)

	if contains(p.View(80, 24), "Tipp:") {
		t.Error("hint should be hidden initially")
	}

	var scr screen.Screen = p
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	pp := scr.(*PlayScreen)

	if !contains(pp.View(80, 24), "Tipp:") {
		t.Error("hint should be visible after ctrl+h")
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	p := testPlayScreen(t, 3)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	pp := scr.(*PlayScreen)
	if !pp.showingQuitConfirm {
		t.Error("expected quit confirmation after esc")
	}

	scr, _ = pp.Update(keyPress('n'))
	pp = scr.(*PlayScreen)
	if pp.showingQuitConfirm {
		t.Error("expected quit confirmation dismissed after n")
	}
}

func TestPlayScreen_QuitConfirm_Yes(t *testing.T) {
	p := testPlayScreen(t, 3)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
	if p.session.State != quiz.StateIdle {
		t.Errorf("session state = %v, want idle after quit", p.session.State)
	}
}

func TestPlayScreen_ViewShowsProgress(t *testing.T) {
	p := testPlayScreen(t, 20)

	view := p.View(80, 24)
	if !contains(view, "Frage 1/20") {
		t.Error("expected question counter in view")
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
