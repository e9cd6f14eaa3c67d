// Code generated by ent, DO NOT EDIT.

package reservation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the reservation type in the database.
	Label = "reservation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFieldID holds the string denoting the field_id field in the database.
	FieldFieldID = "field_id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldSupervisorID holds the string denoting the supervisor_id field in the database.
	FieldSupervisorID = "supervisor_id"
	// FieldSurfaceRequested holds the string denoting the surface_requested field in the database.
	FieldSurfaceRequested = "surface_requested"
	// FieldStartRequested holds the string denoting the start_requested field in the database.
	FieldStartRequested = "start_requested"
	// FieldEndRequested holds the string denoting the end_requested field in the database.
	FieldEndRequested = "end_requested"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDecisionDate holds the string denoting the decision_date field in the database.
	FieldDecisionDate = "decision_date"
	// FieldMotivation holds the string denoting the motivation field in the database.
	FieldMotivation = "motivation"
	// EdgeField holds the string denoting the field edge name in mutations.
	EdgeField = "field"
	// EdgeClient holds the string denoting the client edge name in mutations.
	EdgeClient = "client"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// Table holds the table name of the reservation in the database.
	Table = "reservations"
	// FieldTable is the table that holds the field relation/edge.
	FieldTable = "reservations"
	// FieldInverseTable is the table name for the Field entity.
	// It exists in this package in order to avoid circular dependency with the "entfield" package.
	FieldInverseTable = "fields"
	// FieldColumn is the table column denoting the field relation/edge.
	FieldColumn = "field_id"
	// ClientTable is the table that holds the client relation/edge.
	ClientTable = "reservations"
	// ClientInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ClientInverseTable = "users"
	// ClientColumn is the table column denoting the client relation/edge.
	ClientColumn = "client_id"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "projects"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "reservation_project"
)

// Columns holds all SQL columns for reservation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFieldID,
	FieldClientID,
	FieldSupervisorID,
	FieldSurfaceRequested,
	FieldStartRequested,
	FieldEndRequested,
	FieldStatus,
	FieldDecisionDate,
	FieldMotivation,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// FieldIDValidator is a validator for the "field_id" field. It is called by the builders before save.
	FieldIDValidator func(string) error
	// ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	ClientIDValidator func(string) error
	// SurfaceRequestedValidator is a validator for the "surface_requested" field. It is called by the builders before save.
	SurfaceRequestedValidator func(float64) error
	// MotivationValidator is a validator for the "motivation" field. It is called by the builders before save.
	MotivationValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING  Status = "PENDING"
	StatusAPPROVED Status = "APPROVED"
	StatusREJECTED Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusAPPROVED, StatusREJECTED:
		return nil
	default:
		return fmt.Errorf("reservation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Reservation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFieldID orders the results by the field_id field.
func ByFieldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// BySupervisorID orders the results by the supervisor_id field.
func BySupervisorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupervisorID, opts...).ToFunc()
}

// BySurfaceRequested orders the results by the surface_requested field.
func BySurfaceRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurfaceRequested, opts...).ToFunc()
}

// ByStartRequested orders the results by the start_requested field.
func ByStartRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartRequested, opts...).ToFunc()
}

// ByEndRequested orders the results by the end_requested field.
func ByEndRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndRequested, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDecisionDate orders the results by the decision_date field.
func ByDecisionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionDate, opts...).ToFunc()
}

// ByMotivation orders the results by the motivation field.
func ByMotivation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMotivation, opts...).ToFunc()
}

// ByFieldField orders the results by field field.
func ByFieldField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFieldStep(), sql.OrderByField(field, opts...))
	}
}

// ByClientField orders the results by client field.
func ByClientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClientStep(), sql.OrderByField(field, opts...))
	}
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newFieldStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FieldInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FieldTable, FieldColumn),
	)
}
func newClientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
	)
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ProjectTable, ProjectColumn),
	)
}
