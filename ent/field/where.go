// Code generated by ent, DO NOT EDIT.

package entfield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/marwaELABIDI/ferme-platform/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Field {
	return predicate.Field(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Field {
	return predicate.Field(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldName, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldLocation, v))
}

// TotalCapacity applies equality check predicate on the "total_capacity" field. It's identical to TotalCapacityEQ.
func TotalCapacity(v float64) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldTotalCapacity, v))
}

// FreeCapacity applies equality check predicate on the "free_capacity" field. It's identical to FreeCapacityEQ.
func FreeCapacity(v float64) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldFreeCapacity, v))
}

// SoilType applies equality check predicate on the "soil_type" field. It's identical to SoilTypeEQ.
func SoilType(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldSoilType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Field {
	return predicate.Field(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Field {
	return predicate.Field(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Field {
	return predicate.Field(sql.FieldContainsFold(FieldName, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Field {
	return predicate.Field(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Field {
	return predicate.Field(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Field {
	return predicate.Field(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Field {
	return predicate.Field(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Field {
	return predicate.Field(sql.FieldContainsFold(FieldLocation, v))
}

// TotalCapacityEQ applies the EQ predicate on the "total_capacity" field.
func TotalCapacityEQ(v float64) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldTotalCapacity, v))
}

// TotalCapacityNEQ applies the NEQ predicate on the "total_capacity" field.
func TotalCapacityNEQ(v float64) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldTotalCapacity, v))
}

// TotalCapacityIn applies the In predicate on the "total_capacity" field.
func TotalCapacityIn(vs ...float64) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldTotalCapacity, vs...))
}

// TotalCapacityNotIn applies the NotIn predicate on the "total_capacity" field.
func TotalCapacityNotIn(vs ...float64) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldTotalCapacity, vs...))
}

// TotalCapacityGT applies the GT predicate on the "total_capacity" field.
func TotalCapacityGT(v float64) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldTotalCapacity, v))
}

// TotalCapacityGTE applies the GTE predicate on the "total_capacity" field.
func TotalCapacityGTE(v float64) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldTotalCapacity, v))
}

// TotalCapacityLT applies the LT predicate on the "total_capacity" field.
func TotalCapacityLT(v float64) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldTotalCapacity, v))
}

// TotalCapacityLTE applies the LTE predicate on the "total_capacity" field.
func TotalCapacityLTE(v float64) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldTotalCapacity, v))
}

// FreeCapacityEQ applies the EQ predicate on the "free_capacity" field.
func FreeCapacityEQ(v float64) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldFreeCapacity, v))
}

// FreeCapacityNEQ applies the NEQ predicate on the "free_capacity" field.
func FreeCapacityNEQ(v float64) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldFreeCapacity, v))
}

// FreeCapacityIn applies the In predicate on the "free_capacity" field.
func FreeCapacityIn(vs ...float64) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldFreeCapacity, vs...))
}

// FreeCapacityNotIn applies the NotIn predicate on the "free_capacity" field.
func FreeCapacityNotIn(vs ...float64) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldFreeCapacity, vs...))
}

// FreeCapacityGT applies the GT predicate on the "free_capacity" field.
func FreeCapacityGT(v float64) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldFreeCapacity, v))
}

// FreeCapacityGTE applies the GTE predicate on the "free_capacity" field.
func FreeCapacityGTE(v float64) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldFreeCapacity, v))
}

// FreeCapacityLT applies the LT predicate on the "free_capacity" field.
func FreeCapacityLT(v float64) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldFreeCapacity, v))
}

// FreeCapacityLTE applies the LTE predicate on the "free_capacity" field.
func FreeCapacityLTE(v float64) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldFreeCapacity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldStatus, vs...))
}

// SoilTypeEQ applies the EQ predicate on the "soil_type" field.
func SoilTypeEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldEQ(FieldSoilType, v))
}

// SoilTypeNEQ applies the NEQ predicate on the "soil_type" field.
func SoilTypeNEQ(v string) predicate.Field {
	return predicate.Field(sql.FieldNEQ(FieldSoilType, v))
}

// SoilTypeIn applies the In predicate on the "soil_type" field.
func SoilTypeIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldIn(FieldSoilType, vs...))
}

// SoilTypeNotIn applies the NotIn predicate on the "soil_type" field.
func SoilTypeNotIn(vs ...string) predicate.Field {
	return predicate.Field(sql.FieldNotIn(FieldSoilType, vs...))
}

// SoilTypeGT applies the GT predicate on the "soil_type" field.
func SoilTypeGT(v string) predicate.Field {
	return predicate.Field(sql.FieldGT(FieldSoilType, v))
}

// SoilTypeGTE applies the GTE predicate on the "soil_type" field.
func SoilTypeGTE(v string) predicate.Field {
	return predicate.Field(sql.FieldGTE(FieldSoilType, v))
}

// SoilTypeLT applies the LT predicate on the "soil_type" field.
func SoilTypeLT(v string) predicate.Field {
	return predicate.Field(sql.FieldLT(FieldSoilType, v))
}

// SoilTypeLTE applies the LTE predicate on the "soil_type" field.
func SoilTypeLTE(v string) predicate.Field {
	return predicate.Field(sql.FieldLTE(FieldSoilType, v))
}

// SoilTypeContains applies the Contains predicate on the "soil_type" field.
func SoilTypeContains(v string) predicate.Field {
	return predicate.Field(sql.FieldContains(FieldSoilType, v))
}

// SoilTypeHasPrefix applies the HasPrefix predicate on the "soil_type" field.
func SoilTypeHasPrefix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasPrefix(FieldSoilType, v))
}

// SoilTypeHasSuffix applies the HasSuffix predicate on the "soil_type" field.
func SoilTypeHasSuffix(v string) predicate.Field {
	return predicate.Field(sql.FieldHasSuffix(FieldSoilType, v))
}

// SoilTypeIsNil applies the IsNil predicate on the "soil_type" field.
func SoilTypeIsNil() predicate.Field {
	return predicate.Field(sql.FieldIsNull(FieldSoilType))
}

// SoilTypeNotNil applies the NotNil predicate on the "soil_type" field.
func SoilTypeNotNil() predicate.Field {
	return predicate.Field(sql.FieldNotNull(FieldSoilType))
}

// SoilTypeEqualFold applies the EqualFold predicate on the "soil_type" field.
func SoilTypeEqualFold(v string) predicate.Field {
	return predicate.Field(sql.FieldEqualFold(FieldSoilType, v))
}

// SoilTypeContainsFold applies the ContainsFold predicate on the "soil_type" field.
func SoilTypeContainsFold(v string) predicate.Field {
	return predicate.Field(sql.FieldContainsFold(FieldSoilType, v))
}

// HasProjects applies the HasEdge predicate on the "projects" edge.
func HasProjects() predicate.Field {
	return predicate.Field(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProjectsTable, ProjectsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectsWith applies the HasEdge predicate on the "projects" edge with a given conditions (other predicates).
func HasProjectsWith(preds ...predicate.Project) predicate.Field {
	return predicate.Field(func(s *sql.Selector) {
		step := newProjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReservations applies the HasEdge predicate on the "reservations" edge.
func HasReservations() predicate.Field {
	return predicate.Field(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReservationsTable, ReservationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReservationsWith applies the HasEdge predicate on the "reservations" edge with a given conditions (other predicates).
func HasReservationsWith(preds ...predicate.Reservation) predicate.Field {
	return predicate.Field(func(s *sql.Selector) {
		step := newReservationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Field) predicate.Field {
	return predicate.Field(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Field) predicate.Field {
	return predicate.Field(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Field) predicate.Field {
	return predicate.Field(sql.NotPredicates(p))
}
