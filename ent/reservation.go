// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	"github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/ent/reservation"
	"github.com/marwaELABIDI/ferme-platform/ent/user"
)

// Reservation is the model entity for the Reservation schema.
type Reservation struct {
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
	// Set exactly once, on approval
	SupervisorID string `json:"supervisor_id,omitempty"`
	// Requested surface area in m²
	SurfaceRequested float64 `json:"surface_requested,omitempty"`
	// StartRequested holds the value of the "start_requested" field.
	StartRequested time.Time `json:"start_requested,omitempty"`
	// EndRequested holds the value of the "end_requested" field.
	EndRequested time.Time `json:"end_requested,omitempty"`
	// Status holds the value of the "status" field.
	Status reservation.Status `json:"status,omitempty"`
	// DecisionDate holds the value of the "decision_date" field.
	DecisionDate *time.Time `json:"decision_date,omitempty"`
	// Motivation holds the value of the "motivation" field.
	Motivation string `json:"motivation,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReservationQuery when eager-loading is set.
	Edges        ReservationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReservationEdges holds the relations/edges for other nodes in the graph.
type ReservationEdges struct {
	// Field holds the value of the field edge.
	Field *Field `json:"field,omitempty"`
	// Client holds the value of the client edge.
	Client *User `json:"client,omitempty"`
	// Set when approval creates the capacity-holding project
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FieldOrErr returns the Field value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReservationEdges) FieldOrErr() (*Field, error) {
	if e.Field != nil {
		return e.Field, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: entfield.Label}
	}
	return nil, &NotLoadedError{edge: "field"}
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReservationEdges) ClientOrErr() (*User, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReservationEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Reservation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reservation.FieldSurfaceRequested:
			values[i] = new(sql.NullFloat64)
		case reservation.FieldID, reservation.FieldFieldID, reservation.FieldClientID, reservation.FieldSupervisorID, reservation.FieldStatus, reservation.FieldMotivation:
			values[i] = new(sql.NullString)
		case reservation.FieldCreatedAt, reservation.FieldUpdatedAt, reservation.FieldStartRequested, reservation.FieldEndRequested, reservation.FieldDecisionDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Reservation fields.
func (_m *Reservation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reservation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reservation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reservation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case reservation.FieldFieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_id", values[i])
			} else if value.Valid {
				_m.FieldID = value.String
			}
		case reservation.FieldClientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				_m.ClientID = value.String
			}
		case reservation.FieldSupervisorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supervisor_id", values[i])
			} else if value.Valid {
				_m.SupervisorID = value.String
			}
		case reservation.FieldSurfaceRequested:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field surface_requested", values[i])
			} else if value.Valid {
				_m.SurfaceRequested = value.Float64
			}
		case reservation.FieldStartRequested:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_requested", values[i])
			} else if value.Valid {
				_m.StartRequested = value.Time
			}
		case reservation.FieldEndRequested:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_requested", values[i])
			} else if value.Valid {
				_m.EndRequested = value.Time
			}
		case reservation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = reservation.Status(value.String)
			}
		case reservation.FieldDecisionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decision_date", values[i])
			} else if value.Valid {
				_m.DecisionDate = new(time.Time)
				*_m.DecisionDate = value.Time
			}
		case reservation.FieldMotivation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field motivation", values[i])
			} else if value.Valid {
				_m.Motivation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Reservation.
// This includes values selected through modifiers, order, etc.
func (_m *Reservation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryField queries the "field" edge of the Reservation entity.
func (_m *Reservation) QueryField() *FieldQuery {
	return NewReservationClient(_m.config).QueryField(_m)
}

// QueryClient queries the "client" edge of the Reservation entity.
func (_m *Reservation) QueryClient() *UserQuery {
	return NewReservationClient(_m.config).QueryClient(_m)
}

// QueryProject queries the "project" edge of the Reservation entity.
func (_m *Reservation) QueryProject() *ProjectQuery {
	return NewReservationClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this Reservation.
// Note that you need to call Reservation.Unwrap() before calling this method if this Reservation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Reservation) Update() *ReservationUpdateOne {
	return NewReservationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Reservation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Reservation) Unwrap() *Reservation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Reservation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Reservation) String() string {
	var builder strings.Builder
	builder.WriteString("Reservation(")
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
	builder.WriteString("surface_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.SurfaceRequested))
	builder.WriteString(", ")
	builder.WriteString("start_requested=")
	builder.WriteString(_m.StartRequested.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_requested=")
	builder.WriteString(_m.EndRequested.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.DecisionDate; v != nil {
		builder.WriteString("decision_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("motivation=")
	builder.WriteString(_m.Motivation)
	builder.WriteByte(')')
	return builder.String()
}

// Reservations is a parsable slice of Reservation.
type Reservations []*Reservation
