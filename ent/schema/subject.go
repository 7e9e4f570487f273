package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subject is a registered topic of study. Unlike events, subjects are
// mutable current state; edits overwrite in place.
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").
			Unique().
			NotEmpty().
			Comment("UUID of the subject"),
		field.String("name").
			NotEmpty(),
		field.Int("priority").
			Default(5).
			Comment("1-10 subjective importance"),
		field.Int("difficulty").
			Default(5).
			Comment("1-10 perceived difficulty"),
		field.Float("weekly_target_hours").
			Default(0),
		field.String("area").
			Default("").
			Comment("quant, language, writing, science, humanities, other"),
		field.String("level").
			Default("intermediate").
			Comment("basic, intermediate, advanced"),
		field.Float("exam_weight").
			Default(0).
			Comment("0-1 share of the target exam"),
		field.Float("completed_hours").
			Default(0),
		field.Int("session_count").
			Default(0),
		field.Float("average_score").
			Default(0),
		field.Bool("archived").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id").Unique(),
		index.Fields("archived"),
	}
}
