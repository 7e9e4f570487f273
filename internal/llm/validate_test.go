package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func adviceTestSchema() *Schema {
	return &Schema{
		Name:        "test-advice",
		Description: "minimal advice shape",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary":  map[string]any{"type": "string"},
				"minutes":  map[string]any{"type": "integer", "minimum": 0},
				"priority": map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
			},
			"required": []any{"summary", "minutes"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields", `{"summary":"keep going","minutes":45,"priority":"high"}`, false},
		{"optional omitted", `{"summary":"steady","minutes":30}`, false},
		{"missing required", `{"summary":"short"}`, true},
		{"wrong type", `{"summary":"s","minutes":"forty"}`, true},
		{"enum violation", `{"summary":"s","minutes":10,"priority":"urgent"}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(adviceTestSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("want ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should pass, got: %v", err)
	}
}

func TestValidateResponse_NestedStructures(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"accuracies": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number"},
				},
			},
			"required": []any{"subject", "accuracies"},
		},
	}

	valid := json.RawMessage(`{"subject":{"name":"Mathematics"},"accuracies":[0.9,0.85]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("valid nested document rejected: %v", err)
	}

	invalid := json.RawMessage(`{"subject":{"name":"Mathematics"},"accuracies":["a","b"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("wrong array item type should fail validation")
	}
}
