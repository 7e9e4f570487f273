package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/llm"
	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/studyplan"
)

func validAdviceJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "Your backlog is under control but mathematics accuracy is slipping while its exam weight is the highest.",
		"focus_subjects": ["Mathematics"],
		"adjustments": [
			"shift one hour from history to mathematics",
			"schedule the pending mock exam this weekend"
		],
		"encouragement": "Your language accuracy climbed over the last two weeks. Keep that rhythm."
	}`)
}

func adviceInput() AdviceInput {
	return AdviceInput{
		Subjects: []studyplan.Subject{
			{ID: "s1", Name: "Mathematics", Priority: 9, Difficulty: 7, ExamWeight: 0.3},
			{ID: "s2", Name: "History", Priority: 5, Difficulty: 4, ExamWeight: 0.15},
		},
		Profiles: []*scoring.Profile{
			{SubjectID: "s1", AccuracyRate: 0.58, SessionCount: 12, Trend: -0.05},
			{SubjectID: "s2", AccuracyRate: 0.81, SessionCount: 9, Trend: 0.04},
		},
		BacklogCount:   2,
		BacklogMinutes: 100,
		DaysToExam:     45,
		PlannedUnits:   30,
		PlannedHours:   22.5,
		MockExamsNext:  1,
	}
}

func TestService_GeneratesAdvice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAdviceJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAdvice(t.Context(), adviceInput())

	var advice *Advice
	var ok bool
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		advice, ok = svc.ConsumeAdvice()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !ok || advice == nil {
		t.Fatal("expected advice to be generated")
	}
	if advice.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(advice.FocusSubjects) != 1 || advice.FocusSubjects[0] != "Mathematics" {
		t.Errorf("focus subjects = %v", advice.FocusSubjects)
	}
	if len(advice.Adjustments) != 2 {
		t.Errorf("expected 2 adjustments, got %d", len(advice.Adjustments))
	}
}

func TestService_PromptCarriesState(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAdviceJSON()})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), adviceInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Mathematics", "exam weight 30%", "2 overdue units", "Days until exam: 45", "declining"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != AdviceSchema {
		t.Error("expected advice schema on request")
	}
}

func TestService_PromptCarriesQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAdviceJSON()})
	svc := NewService(mock, DefaultConfig())

	in := adviceInput()
	in.Question = "Should I drop history until the mock exam?"
	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("generate: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Should I drop history until the mock exam?") {
		t.Error("prompt missing the learner's question")
	}

	// Without a question no learner-asks section appears.
	mock.AddResponse(llm.MockResponse{Content: validAdviceJSON()})
	if _, err := svc.Generate(context.Background(), adviceInput()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Contains(mock.Calls[1].Messages[0].Content, "The learner asks") {
		t.Error("unexpected question section in prompt")
	}
}

func TestService_ConsumeBeforeReady(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, ok := svc.ConsumeAdvice(); ok {
		t.Error("expected nothing to consume before a request")
	}
}

func TestService_GenerateErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), adviceInput()); err == nil {
		t.Error("expected error from failing provider")
	}
}

func TestService_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary": `)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), adviceInput()); err == nil {
		t.Error("expected parse error for malformed response")
	}
}
