package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a unit being finished or skipped. The adaptive
// profile is rebuilt from these, so they carry everything the scoring
// update needs.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").NotEmpty(),
		field.String("subject_id").NotEmpty(),
		field.String("kind").NotEmpty(),
		field.String("topic_name").Default(""),
		field.Int("planned_minutes").Default(0),
		field.Int("spent_minutes").Default(0),
		field.Float("accuracy").
			Default(0).
			Comment("0-1, reported or inferred from the unit kind"),
		field.Bool("skipped").
			Default(false).
			Comment("True when the unit ended without being studied"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("unit_id"),
	}
}
