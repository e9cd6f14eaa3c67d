package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the authoritative capacity holder.
//
// While status is one of A_LANCER, PROGRAMME or EN_COURS the project's
// surface is counted against its field's free capacity; FINALISE releases
// it. Status and surface mutations always run inside a coordinator
// transaction together with the ledger update.
type Project struct {
	ent.Schema
}

// Mixin of the Project.
func (Project) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("field_id").
			NotEmpty().
			Immutable(),
		field.String("client_id").
			NotEmpty(),
		field.String("supervisor_id").
			NotEmpty(),
		field.String("activity_type_id").
			Optional(),
		field.Float("surface").
			Positive().
			Comment("Allocated surface area in m²"),
		field.Time("start_date"),
		field.Time("end_date").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("A_LANCER", "PROGRAMME", "EN_COURS", "FINALISE").
			Default("A_LANCER"),
		field.String("progress_notes").
			Optional().
			MaxLen(4096),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("field", Field.Type).
			Ref("projects").
			Field("field_id").
			Unique().
			Required().
			Immutable(),
		edge.From("client", User.Type).
			Ref("client_projects").
			Field("client_id").
			Unique().
			Required(),
		edge.From("supervisor", User.Type).
			Ref("supervised_projects").
			Field("supervisor_id").
			Unique().
			Required(),
		edge.From("activity_type", ActivityType.Type).
			Ref("projects").
			Field("activity_type_id").
			Unique(),
		edge.From("reservation", Reservation.Type).
			Ref("project").
			Unique(),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("field_id", "status"),
		index.Fields("client_id"),
		index.Fields("supervisor_id"),
	}
}
