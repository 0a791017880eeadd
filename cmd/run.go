package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/grammiz/internal/app"
	"github.com/abhisek/grammiz/internal/llm"
	"github.com/abhisek/grammiz/internal/questiongen"
	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/abhisek/grammiz/internal/topics"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	registry := topics.Default()

	// The LLM provider is optional; without one the quiz runs on the
	// built-in offline question pools.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider misconfigured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to offline questions.")
		provider = nil
	}

	source := questiongen.New(provider, registry, questiongen.DefaultConfig())
	session := quiz.NewSession(source)
	applyPrefs(ctx, st.PrefsRepo(), registry, session)

	return app.Run(app.Options{
		Session:   session,
		Registry:  registry,
		PrefsRepo: st.PrefsRepo(),
	})
}

// applyPrefs restores the persisted level and topic onto a fresh session.
// Unknown values are dropped so a stale database never breaks startup.
func applyPrefs(ctx context.Context, prefs store.PrefsRepo, registry *topics.Registry, session *quiz.Session) {
	p, err := prefs.Load(ctx)
	if err != nil {
		return
	}
	switch quiz.UserLevel(p.UserLevel) {
	case quiz.LevelA2, quiz.LevelB1:
		session.SetLevel(quiz.UserLevel(p.UserLevel))
	}
	if p.SelectedTopic != "" {
		if _, err := registry.Lookup(p.SelectedTopic); err == nil {
			session.SetTopic(p.SelectedTopic)
		}
	}
}
