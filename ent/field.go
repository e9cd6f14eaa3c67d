// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
)

// Field is the model entity for the Field schema.
type Field struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Usable surface area in m²
	TotalCapacity float64 `json:"total_capacity,omitempty"`
	// Derived counter: total minus surface of holding projects
	FreeCapacity float64 `json:"free_capacity,omitempty"`
	// Status holds the value of the "status" field.
	Status entfield.Status `json:"status,omitempty"`
	// SoilType holds the value of the "soil_type" field.
	SoilType string `json:"soil_type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldQuery when eager-loading is set.
	Edges        FieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldEdges holds the relations/edges for other nodes in the graph.
type FieldEdges struct {
	// Projects holds the value of the projects edge.
	Projects []*Project `json:"projects,omitempty"`
	// Reservations holds the value of the reservations edge.
	Reservations []*Reservation `json:"reservations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectsOrErr returns the Projects value or an error if the edge
// was not loaded in eager-loading.
func (e FieldEdges) ProjectsOrErr() ([]*Project, error) {
	if e.loadedTypes[0] {
		return e.Projects, nil
	}
	return nil, &NotLoadedError{edge: "projects"}
}

// ReservationsOrErr returns the Reservations value or an error if the edge
// was not loaded in eager-loading.
func (e FieldEdges) ReservationsOrErr() ([]*Reservation, error) {
	if e.loadedTypes[1] {
		return e.Reservations, nil
	}
	return nil, &NotLoadedError{edge: "reservations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Field) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entfield.FieldTotalCapacity, entfield.FieldFreeCapacity:
			values[i] = new(sql.NullFloat64)
		case entfield.FieldID, entfield.FieldName, entfield.FieldLocation, entfield.FieldStatus, entfield.FieldSoilType:
			values[i] = new(sql.NullString)
		case entfield.FieldCreatedAt, entfield.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Field fields.
func (_m *Field) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entfield.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entfield.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entfield.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case entfield.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case entfield.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case entfield.FieldTotalCapacity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_capacity", values[i])
			} else if value.Valid {
				_m.TotalCapacity = value.Float64
			}
		case entfield.FieldFreeCapacity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field free_capacity", values[i])
			} else if value.Valid {
				_m.FreeCapacity = value.Float64
			}
		case entfield.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = entfield.Status(value.String)
			}
		case entfield.FieldSoilType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field soil_type", values[i])
			} else if value.Valid {
				_m.SoilType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Field.
// This includes values selected through modifiers, order, etc.
func (_m *Field) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProjects queries the "projects" edge of the Field entity.
func (_m *Field) QueryProjects() *ProjectQuery {
	return NewFieldClient(_m.config).QueryProjects(_m)
}

// QueryReservations queries the "reservations" edge of the Field entity.
func (_m *Field) QueryReservations() *ReservationQuery {
	return NewFieldClient(_m.config).QueryReservations(_m)
}

// Update returns a builder for updating this Field.
// Note that you need to call Field.Unwrap() before calling this method if this Field
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Field) Update() *FieldUpdateOne {
	return NewFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Field entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Field) Unwrap() *Field {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Field is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Field) String() string {
	var builder strings.Builder
	builder.WriteString("Field(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("total_capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCapacity))
	builder.WriteString(", ")
	builder.WriteString("free_capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreeCapacity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("soil_type=")
	builder.WriteString(_m.SoilType)
	builder.WriteByte(')')
	return builder.String()
}

// Fields is a parsable slice of Field.
type Fields []*Field
