package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rsoarez/planista/internal/llm"
)

// Service generates study-coach advice asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Advice
	err     error
	ready   bool
}

// NewService creates an advice generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestAdvice starts async advice generation. Only one request is
// in-flight at a time; new requests replace pending results.
func (s *Service) RequestAdvice(ctx context.Context, input AdviceInput) {
	go func() {
		advice, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = advice
		s.err = err
		s.ready = true
	}()
}

// ConsumeAdvice returns the pending advice if one is ready.
// Returns (nil, false) if nothing is ready yet. After consumption the
// pending slot is cleared.
func (s *Service) ConsumeAdvice() (*Advice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	advice := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return advice, advice != nil
}

// Generate produces advice synchronously.
func (s *Service) Generate(ctx context.Context, input AdviceInput) (*Advice, error) {
	return s.generate(ctx, input)
}

type adviceOutput struct {
	Summary       string   `json:"summary"`
	FocusSubjects []string `json:"focus_subjects"`
	Adjustments   []string `json:"adjustments"`
	Encouragement string   `json:"encouragement"`
}

func (s *Service) generate(ctx context.Context, input AdviceInput) (*Advice, error) {
	ctx = llm.WithPurpose(ctx, "coach")

	req := llm.Request{
		System: coachSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdviceUserMessage(input)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}

	return &Advice{
		Summary:       out.Summary,
		FocusSubjects: out.FocusSubjects,
		Adjustments:   out.Adjustments,
		Encouragement: out.Encouragement,
	}, nil
}
