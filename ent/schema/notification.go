package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the in-app inbox.
//
// Notifications are written after the owning transaction commits and are
// strictly best-effort: a failed write never rolls back or fails the
// operation that triggered it.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only (notifications are append-only)
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Enum("type").
			Values(
				"RESERVATION_PENDING",
				"RESERVATION_APPROVED",
				"RESERVATION_REJECTED",
				"PROJECT_ASSIGNED",
				"PROJECT_STATUS_CHANGE",
			),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.String("resource_type").
			Optional().
			Comment("Related resource type (e.g. reservation, project)"),
		field.String("resource_id").
			Optional().
			Comment("Related resource ID for navigation"),
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "read"),
		index.Fields("created_at"),
	}
}
