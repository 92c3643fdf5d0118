package chat

import "github.com/abhisek/debugme/internal/llm"

// SuggestionSchema defines the JSON schema for next-lesson suggestions.
var SuggestionSchema = &llm.Schema{
	Name:        "lesson-suggestion",
	Description: "The single best next lesson for this learner with a short reason",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lessonId": map[string]any{
				"type":        "string",
				"description": "ID of the suggested lesson, taken from the lesson catalog",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "1-2 sentence explanation of why this lesson is next (progression, gaps, career goals)",
			},
			"confidence": map[string]any{
				"type": "string",
				"enum": []any{"low", "medium", "high"},
			},
		},
		"required":             []any{"lessonId", "reason", "confidence"},
		"additionalProperties": false,
	},
}
