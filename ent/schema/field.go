package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Field holds the schema definition for a physical plot.
//
// The field row is the sole owner of the free_capacity counter. Projects
// and reservations never write it directly; every change goes through the
// capacity ledger inside a coordinator transaction, so that at rest
// free_capacity == total_capacity - sum(surface) over capacity-holding
// projects attached to the field.
type Field struct {
	ent.Schema
}

// Mixin of the Field.
func (Field) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Field.
func (Field) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("location").
			Optional(),
		field.Float("total_capacity").
			Min(0).
			Comment("Usable surface area in m²"),
		field.Float("free_capacity").
			Min(0).
			Comment("Derived counter: total minus surface of holding projects"),
		field.Enum("status").
			Values("ACTIVE", "INACTIVE").
			Default("ACTIVE"),
		field.String("soil_type").
			Optional(),
	}
}

// Edges of the Field.
func (Field) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("projects", Project.Type),
		edge.To("reservations", Reservation.Type),
	}
}

// Indexes of the Field.
func (Field) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("status"),
	}
}
