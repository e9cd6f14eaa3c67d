// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marwaELABIDI/ferme-platform/ent/activitytype"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	"github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/ent/reservation"
	"github.com/marwaELABIDI/ferme-platform/ent/user"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FieldID holds the value of the "field_id" field.
	FieldID string `json:"field_id,omitempty"`
	// ClientID holds the value of the "client_id" field.
	ClientID string `json:"client_id,omitempty"`
	// SupervisorID holds the value of the "supervisor_id" field.
	SupervisorID string `json:"supervisor_id,omitempty"`
	// ActivityTypeID holds the value of the "activity_type_id" field.
	ActivityTypeID string `json:"activity_type_id,omitempty"`
	// Allocated surface area in m²
	Surface float64 `json:"surface,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate *time.Time `json:"end_date,omitempty"`
	// Status holds the value of the "status" field.
	Status project.Status `json:"status,omitempty"`
	// ProgressNotes holds the value of the "progress_notes" field.
	ProgressNotes string `json:"progress_notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges               ProjectEdges `json:"edges"`
	reservation_project *string
	selectValues        sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Field holds the value of the field edge.
	Field *Field `json:"field,omitempty"`
	// Client holds the value of the client edge.
	Client *User `json:"client,omitempty"`
	// Supervisor holds the value of the supervisor edge.
	Supervisor *User `json:"supervisor,omitempty"`
	// ActivityType holds the value of the activity_type edge.
	ActivityType *ActivityType `json:"activity_type,omitempty"`
	// Reservation holds the value of the reservation edge.
	Reservation *Reservation `json:"reservation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// FieldOrErr returns the Field value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) FieldOrErr() (*Field, error) {
	if e.Field != nil {
		return e.Field, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: entfield.Label}
	}
	return nil, &NotLoadedError{edge: "field"}
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) ClientOrErr() (*User, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// SupervisorOrErr returns the Supervisor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) SupervisorOrErr() (*User, error) {
	if e.Supervisor != nil {
		return e.Supervisor, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "supervisor"}
}

// ActivityTypeOrErr returns the ActivityType value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) ActivityTypeOrErr() (*ActivityType, error) {
	if e.ActivityType != nil {
		return e.ActivityType, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: activitytype.Label}
	}
	return nil, &NotLoadedError{edge: "activity_type"}
}

// ReservationOrErr returns the Reservation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) ReservationOrErr() (*Reservation, error) {
	if e.Reservation != nil {
		return e.Reservation, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: reservation.Label}
	}
	return nil, &NotLoadedError{edge: "reservation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldSurface:
			values[i] = new(sql.NullFloat64)
		case project.FieldID, project.FieldFieldID, project.FieldClientID, project.FieldSupervisorID, project.FieldActivityTypeID, project.FieldStatus, project.FieldProgressNotes:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt, project.FieldStartDate, project.FieldEndDate:
			values[i] = new(sql.NullTime)
		case project.ForeignKeys[0]: // reservation_project
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case project.FieldFieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_id", values[i])
			} else if value.Valid {
				_m.FieldID = value.String
			}
		case project.FieldClientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = value.String
			}
		case project.FieldSupervisorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supervisor_id", values[i])
			} else if value.Valid {
				_m.SupervisorID = value.String
			}
		case project.FieldActivityTypeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_type_id", values[i])
			} else if value.Valid {
				_m.ActivityTypeID = value.String
			}
		case project.FieldSurface:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field surface", values[i])
			} else if value.Valid {
				_m.Surface = value.Float64
			}
		case project.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case project.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = new(time.Time)
				*_m.EndDate = value.Time
			}
		case project.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = project.Status(value.String)
			}
		case project.FieldProgressNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field progress_notes", values[i])
			} else if value.Valid {
				_m.ProgressNotes = value.String
			}
		case project.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_project", values[i])
			} else if value.Valid {
				_m.reservation_project = new(string)
				*_m.reservation_project = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryField queries the "field" edge of the Project entity.
func (_m *Project) QueryField() *FieldQuery {
	return NewProjectClient(_m.config).QueryField(_m)
}

// QueryClient queries the "client" edge of the Project entity.
func (_m *Project) QueryClient() *UserQuery {
	return NewProjectClient(_m.config).QueryClient(_m)
}

// QuerySupervisor queries the "supervisor" edge of the Project entity.
func (_m *Project) QuerySupervisor() *UserQuery {
	return NewProjectClient(_m.config).QuerySupervisor(_m)
}

// QueryActivityType queries the "activity_type" edge of the Project entity.
func (_m *Project) QueryActivityType() *ActivityTypeQuery {
	return NewProjectClient(_m.config).QueryActivityType(_m)
}

// QueryReservation queries the "reservation" edge of the Project entity.
func (_m *Project) QueryReservation() *ReservationQuery {
	return NewProjectClient(_m.config).QueryReservation(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("field_id=")
	builder.WriteString(_m.FieldID)
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(_m.ClientID)
	builder.WriteString(", ")
	builder.WriteString("supervisor_id=")
	builder.WriteString(_m.SupervisorID)
	builder.WriteString(", ")
	builder.WriteString("activity_type_id=")
	builder.WriteString(_m.ActivityTypeID)
	builder.WriteString(", ")
	builder.WriteString("surface=")
	builder.WriteString(fmt.Sprintf("%v", _m.Surface))
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndDate; v != nil {
		builder.WriteString("end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress_notes=")
	builder.WriteString(_m.ProgressNotes)
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
