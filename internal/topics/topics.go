// Package topics encapsulates everything topic-specific about the quiz:
// how to ask the content provider for questions on a grammar theme, and
// what to serve when the provider is unavailable. New topics are added by
// implementing Strategy and registering it; no other component changes.
package topics

import (
	"math/rand/v2"

	"github.com/abhisek/grammiz/internal/quiz"
)

// SessionSize is the number of questions every strategy yields per call.
const SessionSize = 20

// Topic is the static descriptive metadata of a registered topic,
// used to populate the topic-choice UI.
type Topic struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Strategy is the per-topic capability interface.
type Strategy interface {
	// Metadata returns the topic's static descriptive data.
	Metadata() Topic

	// BuildPrompt produces the natural-language generation instruction for
	// the content provider. The text varies by level (A2: short single
	// clauses, B1: subordinate clauses and extra cases) and may embed a
	// random thematic context for variety; the randomness affects prompt
	// text only, never correctness.
	BuildPrompt(level quiz.UserLevel) string

	// FallbackQuestions returns the offline question set for the level:
	// a hand-authored pool shuffled on every call and sized to exactly
	// SessionSize. It always succeeds.
	FallbackQuestions(level quiz.UserLevel) []quiz.Question
}

// sized returns a shuffled copy of pool cut or padded (by cycling the
// shuffled order) to exactly SessionSize questions.
func sized(pool []quiz.Question) []quiz.Question {
	shuffled := make([]quiz.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) >= SessionSize {
		return shuffled[:SessionSize]
	}

	out := make([]quiz.Question, 0, SessionSize)
	for len(out) < SessionSize {
		out = append(out, shuffled[len(out)%len(shuffled)])
	}
	return out
}

// pickContext selects a random thematic context for prompt variety.
func pickContext(contexts []string) string {
	return contexts[rand.IntN(len(contexts))]
}
