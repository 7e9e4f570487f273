package scoring

import (
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

// trendWindow caps how many completion accuracies are retained per
// subject for trend computation.
const trendWindow = 14

// TopicProgress tracks mastery of one fine-grained topic within a subject.
type TopicProgress struct {
	Mastery        float64 // 0-100
	AccuracyRate   float64
	SessionsCount  int
	LastStudiedAt  time.Time
	NextReviewDate time.Time
}

// Profile is the long-lived rolling performance record for a subject.
// It is updated incrementally on each unit completion, never rebuilt.
type Profile struct {
	SubjectID           string
	AccuracyRate        float64
	ErrorRate           float64
	AverageFocus        float64
	AverageProductivity float64
	AverageDifficulty   float64
	LastStudiedAt       *time.Time
	SessionCount        int
	SessionsByKind      map[studyplan.UnitKind]int
	Trend               float64
	Topics              map[string]*TopicProgress

	// RecentAccuracies holds up to trendWindow completion accuracies,
	// oldest first, feeding the trend computation.
	RecentAccuracies []float64
}

// NewProfile returns a default profile for a subject seen for the first
// time.
func NewProfile(subjectID string) *Profile {
	return &Profile{
		SubjectID:      subjectID,
		SessionsByKind: make(map[studyplan.UnitKind]int),
		Topics:         make(map[string]*TopicProgress),
	}
}

// CompletionSnapshot is the single record handed back to the caller for
// persistence after each completion update.
type CompletionSnapshot struct {
	SubjectID      string
	UnitID         string
	Kind           studyplan.UnitKind
	Accuracy       float64
	FocusScore     float64
	Productivity   float64
	MinutesPlanned int
	MinutesSpent   int
	TopicName      string
	CompletedAt    time.Time
}

// Tracker holds profiles for all subjects, creating defaults lazily.
type Tracker struct {
	profiles map[string]*Profile
}

// NewTracker creates a tracker seeded with any existing profiles.
func NewTracker(existing []*Profile) *Tracker {
	t := &Tracker{profiles: make(map[string]*Profile)}
	for _, p := range existing {
		if p != nil && p.SubjectID != "" {
			t.profiles[p.SubjectID] = p
		}
	}
	return t
}

// Profile returns the profile for a subject, creating a default record
// if the subject has not been seen before.
func (t *Tracker) Profile(subjectID string) *Profile {
	if p, ok := t.profiles[subjectID]; ok {
		return p
	}
	p := NewProfile(subjectID)
	t.profiles[subjectID] = p
	return p
}

// All returns every tracked profile.
func (t *Tracker) All() []*Profile {
	out := make([]*Profile, 0, len(t.profiles))
	for _, p := range t.profiles {
		out = append(out, p)
	}
	return out
}

// RecordCompletion applies a completion update to the subject's profile
// and returns the snapshot for persistence.
func (t *Tracker) RecordCompletion(unit studyplan.StudyUnit, subject studyplan.Subject, minutesSpent int, now time.Time) CompletionSnapshot {
	p := t.Profile(subject.ID)
	return ApplyCompletionUpdate(p, unit, subject, minutesSpent, now)
}
