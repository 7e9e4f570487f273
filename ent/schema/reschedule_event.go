package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RescheduleEvent records one unit move made by the backlog engine.
type RescheduleEvent struct {
	ent.Schema
}

func (RescheduleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RescheduleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").NotEmpty(),
		field.String("subject_id").NotEmpty(),
		field.Time("from_date"),
		field.Time("to_date"),
		field.Int("days_overdue").Default(0),
		field.Float("priority_score").
			Default(0).
			Comment("Backlog score at the time of the move"),
		field.String("reason").
			Default("").
			Comment("overdue, skipped, displaced"),
	}
}

func (RescheduleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id"),
		index.Fields("subject_id"),
	}
}
