package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for platform accounts.
// Roles gate capabilities: only an ADMIN decides reservations, only a
// CLIENT submits them.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.String("full_name").
			Optional(),
		field.String("password_hash").
			Sensitive(),
		field.Enum("role").
			Values("ADMIN", "SUPERVISOR", "CLIENT").
			Default("CLIENT"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reservations", Reservation.Type),
		edge.To("client_projects", Project.Type),
		edge.To("supervised_projects", Project.Type),
		edge.To("notifications", Notification.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role"),
	}
}
