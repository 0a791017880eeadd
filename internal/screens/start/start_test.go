package start

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/abhisek/grammiz/internal/topics"
)

// stubSource serves a fixed question list, or an error.
type stubSource struct {
	questions []quiz.Question
	err       error
}

func (s *stubSource) Fetch(_ context.Context, _ quiz.UserLevel, _ string) ([]quiz.Question, error) {
	return s.questions, s.err
}

// memPrefs records saved preferences in memory.
type memPrefs struct {
	saved []store.Prefs
}

func (m *memPrefs) Load(_ context.Context) (store.Prefs, error) {
	if len(m.saved) == 0 {
		return store.Prefs{}, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *memPrefs) Save(_ context.Context, p store.Prefs) error {
	m.saved = append(m.saved, p)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testStartScreen(source quiz.Source) (*StartScreen, *quiz.Session, *memPrefs) {
	session := quiz.NewSession(source)
	prefs := &memPrefs{}
	s := New(session, topics.Default(), prefs)
	return s, session, prefs
}

func okSource() *stubSource {
	return &stubSource{questions: []quiz.Question{
		{ID: 1, PreGap: "Das ist", PostGap: "Hund.", Answer: "mein"},
	}}
}

func TestStartScreen_CursorFollowsSessionTopic(t *testing.T) {
	session := quiz.NewSession(okSource())
	session.SetTopic("prepositionen")
	s := New(session, topics.Default(), nil)

	if s.topics[s.menu.Selected].ID != "prepositionen" {
		t.Errorf("selected topic = %q, want prepositionen", s.topics[s.menu.Selected].ID)
	}
}

func TestStartScreen_TopicNavigationUpdatesSession(t *testing.T) {
	s, session, prefs := testStartScreen(okSource())

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	ss := scr.(*StartScreen)

	if session.SelectedTopic != ss.topics[1].ID {
		t.Errorf("session topic = %q, want %q", session.SelectedTopic, ss.topics[1].ID)
	}
	if len(prefs.saved) != 1 {
		t.Fatalf("prefs saved %d times, want 1", len(prefs.saved))
	}
	if prefs.saved[0].SelectedTopic != ss.topics[1].ID {
		t.Errorf("persisted topic = %q, want %q", prefs.saved[0].SelectedTopic, ss.topics[1].ID)
	}
}

func TestStartScreen_LevelToggle(t *testing.T) {
	s, session, prefs := testStartScreen(okSource())

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyTab))

	if session.UserLevel != quiz.LevelB1 {
		t.Errorf("level = %v, want B1", session.UserLevel)
	}

	scr.Update(specialKey(tea.KeyTab))
	if session.UserLevel != quiz.LevelA2 {
		t.Errorf("level = %v, want A2 after second toggle", session.UserLevel)
	}
	if len(prefs.saved) != 2 {
		t.Errorf("prefs saved %d times, want 2", len(prefs.saved))
	}
}

func TestStartScreen_StartPushesPlayScreen(t *testing.T) {
	s, session, _ := testStartScreen(okSource())

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a load command from enter")
	}

	// The command runs the blocking load and reports completion.
	loaded := cmd()
	scr, cmd = scr.Update(loaded)
	if session.State != quiz.StatePlaying {
		t.Fatalf("session state = %v, want playing", session.State)
	}
	if cmd == nil {
		t.Fatal("expected a navigation command after a successful load")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg to the play screen")
	}
}

// gateSource blocks Fetch until release is closed.
type gateSource struct {
	release   chan struct{}
	questions []quiz.Question
}

func (g *gateSource) Fetch(_ context.Context, _ quiz.UserLevel, _ string) ([]quiz.Question, error) {
	<-g.release
	return g.questions, nil
}

func TestStartScreen_RendersWhileLoadInFlight(t *testing.T) {
	src := &gateSource{release: make(chan struct{}), questions: okSource().questions}
	s, session, _ := testStartScreen(src)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a load command from enter")
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	// The update goroutine keeps rendering and reading session state
	// while the fetch runs; only the completion message mutates the
	// session. The race detector checks the isolation.
	for i := 0; i < 10; i++ {
		s.View(80, 24)
	}
	if session.State != quiz.StateLoading {
		t.Fatalf("session state = %v during load, want loading", session.State)
	}
	close(src.release)

	scr, _ = scr.Update(<-done)
	if session.State != quiz.StatePlaying {
		t.Fatalf("session state = %v after completion, want playing", session.State)
	}
}

func TestStartScreen_LoadFailureShowsInlineError(t *testing.T) {
	s, session, _ := testStartScreen(&stubSource{err: errors.New("boom")})

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, cmd = scr.Update(cmd())

	if cmd != nil {
		t.Error("failed load should not navigate")
	}
	if session.State != quiz.StateIdle {
		t.Errorf("session state = %v, want idle", session.State)
	}

	ss := scr.(*StartScreen)
	view := ss.View(80, 24)
	if !strings.Contains(view, session.Err) {
		t.Error("expected the load error rendered inline")
	}
}

func TestStartScreen_KeysIgnoredWhileLoading(t *testing.T) {
	s, session, _ := testStartScreen(okSource())
	s.loading = true

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("keys should be ignored while loading")
	}
	if session.UserLevel != quiz.LevelA2 {
		t.Error("level should be unchanged while loading")
	}
}

func TestStartScreen_ViewListsTopics(t *testing.T) {
	s, _, _ := testStartScreen(okSource())

	view := s.View(80, 24)
	for _, topic := range topics.Default().ListAll() {
		if !strings.Contains(view, topic.Title) {
			t.Errorf("view missing topic %q", topic.Title)
		}
	}
	if !strings.Contains(view, "Niveau") {
		t.Error("view missing level toggle")
	}
}
