package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent records each plan generation for audit and cache analytics.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("fingerprint").
			NotEmpty().
			Comment("sha256 of the canonical generation input"),
		field.Time("range_start"),
		field.Time("range_end"),
		field.Int("unit_count").Default(0),
		field.Float("total_hours").Default(0),
		field.Bool("cache_hit").Default(false),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint"),
	}
}
