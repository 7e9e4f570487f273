package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured JSON from a prompt. Implementations wrap
// a single vendor SDK; cross-cutting behavior (retries, event logging)
// is layered on top via the decorators in this package.
type Provider interface {
	// Generate sends the request and returns the model's output. When the
	// request carries a Schema the provider asks for JSON conforming to it
	// and validates the result before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider was configured with.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. The coach is single-turn, so
	// in practice this holds one user message.
	Messages []Message

	// Schema, when non-nil, selects the provider's native structured
	// output mechanism. With a nil Schema the Content of the response is
	// the raw text wrapped as a JSON string.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape the model must produce.
type Schema struct {
	// Name identifies the schema to the vendor API (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case, e.g. "study-advice".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is validated JSON when the request had a Schema, otherwise
	// the raw text as a JSON string.
	Content json.RawMessage

	// Usage is the token count the vendor reported for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized across vendors to one of
	// "end", "max_tokens" or "error".
	StopReason string
}

// Usage is per-request token accounting.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
