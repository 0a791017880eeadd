package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	prefKeyUserLevel     = "user_level"
	prefKeySelectedTopic = "selected_topic"
)

// prefsRepo implements PrefsRepo over the prefs key-value table.
type prefsRepo struct {
	db *sql.DB
}

func (r *prefsRepo) Load(ctx context.Context) (Prefs, error) {
	var p Prefs

	level, err := r.get(ctx, prefKeyUserLevel)
	if err != nil {
		return Prefs{}, fmt.Errorf("load user level: %w", err)
	}
	p.UserLevel = level

	topic, err := r.get(ctx, prefKeySelectedTopic)
	if err != nil {
		return Prefs{}, fmt.Errorf("load selected topic: %w", err)
	}
	p.SelectedTopic = topic

	return p, nil
}

func (r *prefsRepo) Save(ctx context.Context, p Prefs) error {
	if err := r.set(ctx, prefKeyUserLevel, p.UserLevel); err != nil {
		return fmt.Errorf("save user level: %w", err)
	}
	if err := r.set(ctx, prefKeySelectedTopic, p.SelectedTopic); err != nil {
		return fmt.Errorf("save selected topic: %w", err)
	}
	return nil
}

func (r *prefsRepo) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM prefs WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *prefsRepo) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}
