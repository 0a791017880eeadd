// Package questiongen turns topic strategies into playable question
// sets. It asks the configured LLM provider for fresh sentences and
// falls back to the topic's built-in pool whenever generation is
// unavailable or produces unusable output.
package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/grammiz/internal/llm"
	"github.com/abhisek/grammiz/internal/quiz"
	"github.com/abhisek/grammiz/internal/topics"
)

// Source produces question sets for a topic and level. It implements
// quiz.Source.
type Source struct {
	provider llm.Provider
	registry *topics.Registry
	config   Config
}

// New creates a Source. provider may be nil, in which case every fetch
// serves the topic's fallback pool (offline mode).
func New(provider llm.Provider, registry *topics.Registry, cfg Config) *Source {
	return &Source{provider: provider, registry: registry, config: cfg}
}

// questionOutput is one raw exercise from the LLM before sanitizing.
type questionOutput struct {
	PreGap      string `json:"preGap"`
	PostGap     string `json:"postGap"`
	Answer      string `json:"answer"`
	Translation string `json:"translation"`
	Hint        string `json:"hint"`
}

type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Fetch returns a question set for the topic at the given level. It
// never fails for a registered topic: any generation problem degrades
// to the topic's fallback pool. An unregistered topic id is an error.
func (s *Source) Fetch(ctx context.Context, level quiz.UserLevel, topicID string) ([]quiz.Question, error) {
	strategy, err := s.registry.Lookup(topicID)
	if err != nil {
		return nil, err
	}

	if s.provider == nil {
		return strategy.FallbackQuestions(level), nil
	}

	qs, err := s.generate(ctx, strategy, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: question generation failed, using built-in set: %v\n", err)
		return strategy.FallbackQuestions(level), nil
	}
	return qs, nil
}

func (s *Source) generate(ctx context.Context, strategy topics.Strategy, level quiz.UserLevel) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: strategy.BuildPrompt(level)},
		},
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var batch batchOutput
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	qs := sanitize(batch.Questions)
	if len(qs) == 0 {
		return nil, fmt.Errorf("LLM returned no usable questions")
	}
	return qs, nil
}

// sanitize filters out unusable exercises and assigns fresh sequential
// IDs, so duplicate or missing IDs from the model can never collide.
func sanitize(raw []questionOutput) []quiz.Question {
	var out []quiz.Question
	for _, r := range raw {
		answer := strings.TrimSpace(r.Answer)
		if answer == "" {
			continue
		}
		if strings.TrimSpace(r.PreGap) == "" && strings.TrimSpace(r.PostGap) == "" {
			continue
		}
		out = append(out, quiz.Question{
			ID:          len(out) + 1,
			PreGap:      strings.TrimSpace(r.PreGap),
			PostGap:     strings.TrimSpace(r.PostGap),
			Answer:      answer,
			Translation: strings.TrimSpace(r.Translation),
			Hint:        strings.TrimSpace(r.Hint),
		})
	}
	return out
}
