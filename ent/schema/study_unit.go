package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyUnit is a scheduled block of a plan. Units are written when a
// plan is persisted and mutated by completion and rescheduling.
type StudyUnit struct {
	ent.Schema
}

func (StudyUnit) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").
			Unique().
			NotEmpty().
			Comment("Deterministic UUID assigned at generation"),
		field.String("subject_id").
			NotEmpty().
			Comment("Owning subject, or the mock-exam pseudo subject"),
		field.String("related_subject_id").
			Default("").
			Comment("Real subject behind mock-exam and analysis units"),
		field.Time("date").
			Comment("Calendar day, UTC midnight"),
		field.Int("start_minute").
			Comment("Minutes since midnight"),
		field.Int("end_minute"),
		field.Int("duration_minutes"),
		field.Bool("is_break").
			Default(false),
		field.String("kind").
			NotEmpty().
			Comment("lesson, exercise, review, area_mock_exam, full_mock_exam, analysis"),
		field.String("session_type").
			Default(""),
		field.String("status").
			Default("scheduled").
			Comment("scheduled, in_progress, completed, skipped, rescheduled"),
		field.String("phase").
			Default("").
			Comment("base, deepening, consolidation"),
		field.String("topic_name").
			Default(""),
		field.Int("stage_index").
			Default(0),
		field.Int("stage_target").
			Default(0),
		field.Int("reschedule_count").
			Default(0),
		field.Time("original_date").
			Optional().
			Nillable().
			Comment("First scheduled date, set on the first move"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StudyUnit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id").Unique(),
		index.Fields("subject_id"),
		index.Fields("date"),
		index.Fields("status"),
	}
}
