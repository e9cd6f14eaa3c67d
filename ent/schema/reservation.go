package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reservation holds the schema definition for a client's capacity request.
//
// PENDING is the only non-terminal state. A reservation never mutates
// capacity itself; approval creates the linked project, which is the
// actual capacity holder.
type Reservation struct {
	ent.Schema
}

// Mixin of the Reservation.
func (Reservation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Reservation.
func (Reservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("field_id").
			NotEmpty().
			Immutable(),
		field.String("client_id").
			NotEmpty().
			Immutable(),
		field.String("supervisor_id").
			Optional().
			Comment("Set exactly once, on approval"),
		field.Float("surface_requested").
			Positive().
			Comment("Requested surface area in m²"),
		field.Time("start_requested"),
		field.Time("end_requested"),
		field.Enum("status").
			Values("PENDING", "APPROVED", "REJECTED").
			Default("PENDING"),
		field.Time("decision_date").
			Optional().
			Nillable(),
		field.String("motivation").
			Optional().
			MaxLen(2048),
	}
}

// Edges of the Reservation.
func (Reservation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("field", Field.Type).
			Ref("reservations").
			Field("field_id").
			Unique().
			Required().
			Immutable(),
		edge.From("client", User.Type).
			Ref("reservations").
			Field("client_id").
			Unique().
			Required().
			Immutable(),
		edge.To("project", Project.Type).
			Unique().
			Comment("Set when approval creates the capacity-holding project"),
	}
}

// Indexes of the Reservation.
func (Reservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("field_id", "status"),
		index.Fields("client_id"),
	}
}
