package advisor

import "github.com/rsoarez/planista/internal/llm"

// AdviceSchema defines the JSON schema for study-coach advice.
var AdviceSchema = &llm.Schema{
	Name:        "study-advice",
	Description: "Coaching advice based on the learner's plan, backlog and performance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence assessment of the current study situation",
			},
			"focus_subjects": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 subject names that deserve extra attention this week",
			},
			"adjustments": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete schedule adjustments (5-15 words each)",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One or two sentences of grounded, non-generic encouragement",
			},
		},
		"required":             []any{"summary", "focus_subjects", "adjustments", "encouragement"},
		"additionalProperties": false,
	},
}
