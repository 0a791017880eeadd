package questiongen

import "github.com/abhisek/grammiz/internal/llm"

// BatchSchema defines the JSON schema for a generated exercise batch.
// The root is an object (not a bare array) because some providers only
// accept object roots for structured output.
var BatchSchema = &llm.Schema{
	Name:        "grammar-questions",
	Description: "A batch of German gap-fill grammar exercises",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"preGap": map[string]any{
							"type":        "string",
							"description": "Sentence text before the gap. May be empty.",
						},
						"postGap": map[string]any{
							"type":        "string",
							"description": "Sentence text after the gap. May be empty.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The exact word or short phrase that fills the gap",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "English translation of the complete sentence",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "Short grammar cue, e.g. person and case",
						},
					},
					"required": []any{"preGap", "postGap", "answer", "translation", "hint"},
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
