// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CompletionEvent is the predicate function for completionevent builders.
type CompletionEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PlanEvent is the predicate function for planevent builders.
type PlanEvent func(*sql.Selector)

// RescheduleEvent is the predicate function for rescheduleevent builders.
type RescheduleEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// StudyUnit is the predicate function for studyunit builders.
type StudyUnit func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)
