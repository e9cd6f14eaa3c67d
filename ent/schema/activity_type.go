package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityType is the catalog of agricultural activities a project can run.
type ActivityType struct {
	ent.Schema
}

// Mixin of the ActivityType.
func (ActivityType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ActivityType.
func (ActivityType) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional(),
	}
}

// Edges of the ActivityType.
func (ActivityType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("projects", Project.Type),
	}
}

// Indexes of the ActivityType.
func (ActivityType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
