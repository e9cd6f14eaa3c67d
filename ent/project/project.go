// Code generated by ent, DO NOT EDIT.

package project

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
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
	// FieldActivityTypeID holds the string denoting the activity_type_id field in the database.
	FieldActivityTypeID = "activity_type_id"
	// FieldSurface holds the string denoting the surface field in the database.
	FieldSurface = "surface"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgressNotes holds the string denoting the progress_notes field in the database.
	FieldProgressNotes = "progress_notes"
	// EdgeField holds the string denoting the field edge name in mutations.
	EdgeField = "field"
	// EdgeClient holds the string denoting the client edge name in mutations.
	EdgeClient = "client"
	// EdgeSupervisor holds the string denoting the supervisor edge name in mutations.
	EdgeSupervisor = "supervisor"
	// EdgeActivityType holds the string denoting the activity_type edge name in mutations.
	EdgeActivityType = "activity_type"
	// EdgeReservation holds the string denoting the reservation edge name in mutations.
	EdgeReservation = "reservation"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// FieldTable is the table that holds the field relation/edge.
	FieldTable = "projects"
	// FieldInverseTable is the table name for the Field entity.
	// It exists in this package in order to avoid circular dependency with the "entfield" package.
	FieldInverseTable = "fields"
	// FieldColumn is the table column denoting the field relation/edge.
	FieldColumn = "field_id"
	// ClientTable is the table that holds the client relation/edge.
	ClientTable = "projects"
	// ClientInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ClientInverseTable = "users"
	// ClientColumn is the table column denoting the client relation/edge.
	ClientColumn = "client_id"
	// SupervisorTable is the table that holds the supervisor relation/edge.
	SupervisorTable = "projects"
	// SupervisorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	SupervisorInverseTable = "users"
	// SupervisorColumn is the table column denoting the supervisor relation/edge.
	SupervisorColumn = "supervisor_id"
	// ActivityTypeTable is the table that holds the activity_type relation/edge.
	ActivityTypeTable = "projects"
	// ActivityTypeInverseTable is the table name for the ActivityType entity.
	// It exists in this package in order to avoid circular dependency with the "activitytype" package.
	ActivityTypeInverseTable = "activity_types"
	// ActivityTypeColumn is the table column denoting the activity_type relation/edge.
	ActivityTypeColumn = "activity_type_id"
	// ReservationTable is the table that holds the reservation relation/edge.
	ReservationTable = "projects"
	// ReservationInverseTable is the table name for the Reservation entity.
	// It exists in this package in order to avoid circular dependency with the "reservation" package.
	ReservationInverseTable = "reservations"
	// ReservationColumn is the table column denoting the reservation relation/edge.
	ReservationColumn = "reservation_project"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFieldID,
	FieldClientID,
	FieldSupervisorID,
	FieldActivityTypeID,
	FieldSurface,
	FieldStartDate,
	FieldEndDate,
	FieldStatus,
	FieldProgressNotes,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "projects"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"reservation_project",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
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
	// SupervisorIDValidator is a validator for the "supervisor_id" field. It is called by the builders before save.
	SupervisorIDValidator func(string) error
	// SurfaceValidator is a validator for the "surface" field. It is called by the builders before save.
	SurfaceValidator func(float64) error
	// ProgressNotesValidator is a validator for the "progress_notes" field. It is called by the builders before save.
	ProgressNotesValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusA_LANCER is the default value of the Status enum.
const DefaultStatus = StatusA_LANCER

// Status values.
const (
	StatusA_LANCER  Status = "A_LANCER"
	StatusPROGRAMME Status = "PROGRAMME"
	StatusEN_COURS  Status = "EN_COURS"
	StatusFINALISE  Status = "FINALISE"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusA_LANCER, StatusPROGRAMME, StatusEN_COURS, StatusFINALISE:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Project queries.
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

// ByActivityTypeID orders the results by the activity_type_id field.
func ByActivityTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityTypeID, opts...).ToFunc()
}

// BySurface orders the results by the surface field.
func BySurface(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurface, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgressNotes orders the results by the progress_notes field.
func ByProgressNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressNotes, opts...).ToFunc()
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

// BySupervisorField orders the results by supervisor field.
func BySupervisorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSupervisorStep(), sql.OrderByField(field, opts...))
	}
}

// ByActivityTypeField orders the results by activity_type field.
func ByActivityTypeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivityTypeStep(), sql.OrderByField(field, opts...))
	}
}

// ByReservationField orders the results by reservation field.
func ByReservationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReservationStep(), sql.OrderByField(field, opts...))
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
func newSupervisorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SupervisorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SupervisorTable, SupervisorColumn),
	)
}
func newActivityTypeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivityTypeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ActivityTypeTable, ActivityTypeColumn),
	)
}
func newReservationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReservationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ReservationTable, ReservationColumn),
	)
}
