package store

import (
	"context"
	"time"

	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/studyplan"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SubjectRepo manages the registered subjects.
type SubjectRepo interface {
	// Save creates the subject or overwrites it when the id exists.
	Save(ctx context.Context, s studyplan.Subject) error

	// Get returns the subject by id, or a not-found error.
	Get(ctx context.Context, subjectID string) (studyplan.Subject, error)

	// List returns all non-archived subjects in insertion order.
	List(ctx context.Context) ([]studyplan.Subject, error)

	// Archive hides a subject from planning without deleting its history.
	Archive(ctx context.Context, subjectID string) error
}

// UnitRepo manages the persisted study units.
type UnitRepo interface {
	// SaveUnits inserts freshly generated units.
	SaveUnits(ctx context.Context, units []studyplan.StudyUnit) error

	// ReplacePlan drops pending units dated inside the range and inserts
	// the replacement set. Completed and in-progress units are kept.
	ReplacePlan(ctx context.Context, from, to time.Time, units []studyplan.StudyUnit) error

	// Get returns the unit by id, or a not-found error.
	Get(ctx context.Context, unitID string) (studyplan.StudyUnit, error)

	// ListRange returns all units dated in [from, to], ordered by date
	// then start time.
	ListRange(ctx context.Context, from, to time.Time) ([]studyplan.StudyUnit, error)

	// ListPending returns scheduled, in-progress and rescheduled units.
	ListPending(ctx context.Context) ([]studyplan.StudyUnit, error)

	// SetStatus updates a unit's status, stamping CompletedAt for
	// completed units.
	SetStatus(ctx context.Context, unitID string, status studyplan.Status, at time.Time) error

	// ApplyMoves writes back units mutated by rescheduling, matched by
	// unit id.
	ApplyMoves(ctx context.Context, units []studyplan.StudyUnit) error
}

// CompletionEventData captures a finished or skipped unit.
type CompletionEventData struct {
	UnitID         string
	SubjectID      string
	Kind           string
	TopicName      string
	PlannedMinutes int
	SpentMinutes   int
	Accuracy       float64
	Skipped        bool
}

// RescheduleEventData captures one backlog move.
type RescheduleEventData struct {
	UnitID        string
	SubjectID     string
	FromDate      time.Time
	ToDate        time.Time
	DaysOverdue   int
	PriorityScore float64
	Reason        string
}

// PlanEventData captures one plan generation.
type PlanEventData struct {
	Fingerprint string
	RangeStart  time.Time
	RangeEnd    time.Time
	UnitCount   int
	TotalHours  float64
	CacheHit    bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request with its event metadata.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates request counts and token totals per label.
type LLMUsage struct {
	Label        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// CompletionEvent is a persisted completion with its event metadata.
type CompletionEvent struct {
	Sequence  int64
	Timestamp time.Time
	CompletionEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendCompletion records a finished or skipped unit.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// AppendReschedule records a backlog move.
	AppendReschedule(ctx context.Context, data RescheduleEventData) error

	// AppendPlan records a plan generation.
	AppendPlan(ctx context.Context, data PlanEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListCompletions returns completion events ordered by sequence.
	ListCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEvent, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM request event by row id.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// SnapshotData captures the adaptive state persisted in a snapshot.
type SnapshotData struct {
	Version  int                         `json:"version"`
	Profiles map[string]*scoring.Profile `json:"profiles"`
}

// Snapshot represents a point-in-time capture of adaptive state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages adaptive-state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
