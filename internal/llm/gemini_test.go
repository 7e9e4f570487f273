package llm

import "testing"

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // unmapped IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":  map[string]any{"type": "string"},
			"minutes":  map[string]any{"type": "integer"},
			"priority": map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
			"accuracies": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []any{"summary", "minutes"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["summary"].Type != "STRING" {
		t.Fatalf("summary type = %s, want STRING", schema.Properties["summary"].Type)
	}
	if schema.Properties["minutes"].Type != "INTEGER" {
		t.Fatalf("minutes type = %s, want INTEGER", schema.Properties["minutes"].Type)
	}
	if len(schema.Properties["priority"].Enum) != 3 {
		t.Fatalf("enum values = %d, want 3", len(schema.Properties["priority"].Enum))
	}
	if schema.Properties["accuracies"].Type != "ARRAY" {
		t.Fatalf("accuracies type = %s, want ARRAY", schema.Properties["accuracies"].Type)
	}
	if schema.Properties["accuracies"].Items.Type != "NUMBER" {
		t.Fatalf("accuracies items type = %s, want NUMBER", schema.Properties["accuracies"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("required = %d, want 2", len(schema.Required))
	}
}
