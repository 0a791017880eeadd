package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/abhisek/grammiz/internal/topics"
)

// memPrefs serves a fixed preference record, or an error.
type memPrefs struct {
	prefs store.Prefs
	err   error
}

func (m *memPrefs) Load(_ context.Context) (store.Prefs, error) {
	return m.prefs, m.err
}

func (m *memPrefs) Save(_ context.Context, p store.Prefs) error {
	m.prefs = p
	return nil
}

type noopSource struct{}

func (noopSource) Fetch(_ context.Context, _ quiz.UserLevel, _ string) ([]quiz.Question, error) {
	return nil, nil
}

func TestApplyPrefs_RestoresLevelAndTopic(t *testing.T) {
	prefs := &memPrefs{prefs: store.Prefs{UserLevel: "B1", SelectedTopic: "prepositionen"}}
	session := quiz.NewSession(noopSource{})

	applyPrefs(context.Background(), prefs, topics.Default(), session)

	if session.UserLevel != quiz.LevelB1 {
		t.Errorf("UserLevel = %q, want B1", session.UserLevel)
	}
	if session.SelectedTopic != "prepositionen" {
		t.Errorf("SelectedTopic = %q, want prepositionen", session.SelectedTopic)
	}
}

func TestApplyPrefs_StaleValuesDropped(t *testing.T) {
	prefs := &memPrefs{prefs: store.Prefs{UserLevel: "C1", SelectedTopic: "konjunktiv"}}
	session := quiz.NewSession(noopSource{})

	applyPrefs(context.Background(), prefs, topics.Default(), session)

	if session.UserLevel != quiz.LevelA2 {
		t.Errorf("UserLevel = %q, want the A2 default for an unknown level", session.UserLevel)
	}
	if session.SelectedTopic != quiz.DefaultTopicID {
		t.Errorf("SelectedTopic = %q, want the default for an unregistered topic", session.SelectedTopic)
	}
}

func TestApplyPrefs_EmptyRecordKeepsDefaults(t *testing.T) {
	session := quiz.NewSession(noopSource{})

	applyPrefs(context.Background(), &memPrefs{}, topics.Default(), session)

	if session.UserLevel != quiz.LevelA2 || session.SelectedTopic != quiz.DefaultTopicID {
		t.Error("expected defaults untouched by an empty preference record")
	}
}

func TestApplyPrefs_LoadErrorKeepsDefaults(t *testing.T) {
	prefs := &memPrefs{err: errors.New("db locked")}
	session := quiz.NewSession(noopSource{})

	applyPrefs(context.Background(), prefs, topics.Default(), session)

	if session.UserLevel != quiz.LevelA2 || session.SelectedTopic != quiz.DefaultTopicID {
		t.Error("expected defaults untouched when loading preferences fails")
	}
}
