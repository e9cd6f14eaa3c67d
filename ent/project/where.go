// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/marwaELABIDI/ferme-platform/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldClientID, v))
}

// SupervisorID applies equality check predicate on the "supervisor_id" field. It's identical to SupervisorIDEQ.
func SupervisorID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSupervisorID, v))
}

// ActivityTypeID applies equality check predicate on the "activity_type_id" field. It's identical to ActivityTypeIDEQ.
func ActivityTypeID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldActivityTypeID, v))
}

// Surface applies equality check predicate on the "surface" field. It's identical to SurfaceEQ.
func Surface(v float64) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSurface, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldEndDate, v))
}

// ProgressNotes applies equality check predicate on the "progress_notes" field. It's identical to ProgressNotesEQ.
func ProgressNotes(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProgressNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// FieldIDEQ applies the EQ predicate on the "field_id" field.
func FieldIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldFieldID, v))
}

// FieldIDNEQ applies the NEQ predicate on the "field_id" field.
func FieldIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldFieldID, v))
}

// FieldIDIn applies the In predicate on the "field_id" field.
func FieldIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldFieldID, vs...))
}

// FieldIDNotIn applies the NotIn predicate on the "field_id" field.
func FieldIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldFieldID, vs...))
}

// FieldIDGT applies the GT predicate on the "field_id" field.
func FieldIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldFieldID, v))
}

// FieldIDGTE applies the GTE predicate on the "field_id" field.
func FieldIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldFieldID, v))
}

// FieldIDLT applies the LT predicate on the "field_id" field.
func FieldIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldFieldID, v))
}

// FieldIDLTE applies the LTE predicate on the "field_id" field.
func FieldIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldFieldID, v))
}

// FieldIDContains applies the Contains predicate on the "field_id" field.
func FieldIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldFieldID, v))
}

// FieldIDHasPrefix applies the HasPrefix predicate on the "field_id" field.
func FieldIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldFieldID, v))
}

// FieldIDHasSuffix applies the HasSuffix predicate on the "field_id" field.
func FieldIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldFieldID, v))
}

// FieldIDEqualFold applies the EqualFold predicate on the "field_id" field.
func FieldIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldFieldID, v))
}

// FieldIDContainsFold applies the ContainsFold predicate on the "field_id" field.
func FieldIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldFieldID, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldClientID, v))
}

// ClientIDContains applies the Contains predicate on the "client_id" field.
func ClientIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldClientID, v))
}

// ClientIDHasPrefix applies the HasPrefix predicate on the "client_id" field.
func ClientIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldClientID, v))
}

// ClientIDHasSuffix applies the HasSuffix predicate on the "client_id" field.
func ClientIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldClientID, v))
}

// ClientIDEqualFold applies the EqualFold predicate on the "client_id" field.
func ClientIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldClientID, v))
}

// ClientIDContainsFold applies the ContainsFold predicate on the "client_id" field.
func ClientIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldClientID, v))
}

// SupervisorIDEQ applies the EQ predicate on the "supervisor_id" field.
func SupervisorIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSupervisorID, v))
}

// SupervisorIDNEQ applies the NEQ predicate on the "supervisor_id" field.
func SupervisorIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldSupervisorID, v))
}

// SupervisorIDIn applies the In predicate on the "supervisor_id" field.
func SupervisorIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldSupervisorID, vs...))
}

// SupervisorIDNotIn applies the NotIn predicate on the "supervisor_id" field.
func SupervisorIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldSupervisorID, vs...))
}

// SupervisorIDGT applies the GT predicate on the "supervisor_id" field.
func SupervisorIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldSupervisorID, v))
}

// SupervisorIDGTE applies the GTE predicate on the "supervisor_id" field.
func SupervisorIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldSupervisorID, v))
}

// SupervisorIDLT applies the LT predicate on the "supervisor_id" field.
func SupervisorIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldSupervisorID, v))
}

// SupervisorIDLTE applies the LTE predicate on the "supervisor_id" field.
func SupervisorIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldSupervisorID, v))
}

// SupervisorIDContains applies the Contains predicate on the "supervisor_id" field.
func SupervisorIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldSupervisorID, v))
}

// SupervisorIDHasPrefix applies the HasPrefix predicate on the "supervisor_id" field.
func SupervisorIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldSupervisorID, v))
}

// SupervisorIDHasSuffix applies the HasSuffix predicate on the "supervisor_id" field.
func SupervisorIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldSupervisorID, v))
}

// SupervisorIDEqualFold applies the EqualFold predicate on the "supervisor_id" field.
func SupervisorIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldSupervisorID, v))
}

// SupervisorIDContainsFold applies the ContainsFold predicate on the "supervisor_id" field.
func SupervisorIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldSupervisorID, v))
}

// ActivityTypeIDEQ applies the EQ predicate on the "activity_type_id" field.
func ActivityTypeIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldActivityTypeID, v))
}

// ActivityTypeIDNEQ applies the NEQ predicate on the "activity_type_id" field.
func ActivityTypeIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldActivityTypeID, v))
}

// ActivityTypeIDIn applies the In predicate on the "activity_type_id" field.
func ActivityTypeIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldActivityTypeID, vs...))
}

// ActivityTypeIDNotIn applies the NotIn predicate on the "activity_type_id" field.
func ActivityTypeIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldActivityTypeID, vs...))
}

// ActivityTypeIDGT applies the GT predicate on the "activity_type_id" field.
func ActivityTypeIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldActivityTypeID, v))
}

// ActivityTypeIDGTE applies the GTE predicate on the "activity_type_id" field.
func ActivityTypeIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldActivityTypeID, v))
}

// ActivityTypeIDLT applies the LT predicate on the "activity_type_id" field.
func ActivityTypeIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldActivityTypeID, v))
}

// ActivityTypeIDLTE applies the LTE predicate on the "activity_type_id" field.
func ActivityTypeIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldActivityTypeID, v))
}

// ActivityTypeIDContains applies the Contains predicate on the "activity_type_id" field.
func ActivityTypeIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldActivityTypeID, v))
}

// ActivityTypeIDHasPrefix applies the HasPrefix predicate on the "activity_type_id" field.
func ActivityTypeIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldActivityTypeID, v))
}

// ActivityTypeIDHasSuffix applies the HasSuffix predicate on the "activity_type_id" field.
func ActivityTypeIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldActivityTypeID, v))
}

// ActivityTypeIDIsNil applies the IsNil predicate on the "activity_type_id" field.
func ActivityTypeIDIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldActivityTypeID))
}

// ActivityTypeIDNotNil applies the NotNil predicate on the "activity_type_id" field.
func ActivityTypeIDNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldActivityTypeID))
}

// ActivityTypeIDEqualFold applies the EqualFold predicate on the "activity_type_id" field.
func ActivityTypeIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldActivityTypeID, v))
}

// ActivityTypeIDContainsFold applies the ContainsFold predicate on the "activity_type_id" field.
func ActivityTypeIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldActivityTypeID, v))
}

// SurfaceEQ applies the EQ predicate on the "surface" field.
func SurfaceEQ(v float64) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSurface, v))
}

// SurfaceNEQ applies the NEQ predicate on the "surface" field.
func SurfaceNEQ(v float64) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldSurface, v))
}

// SurfaceIn applies the In predicate on the "surface" field.
func SurfaceIn(vs ...float64) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldSurface, vs...))
}

// SurfaceNotIn applies the NotIn predicate on the "surface" field.
func SurfaceNotIn(vs ...float64) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldSurface, vs...))
}

// SurfaceGT applies the GT predicate on the "surface" field.
func SurfaceGT(v float64) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldSurface, v))
}

// SurfaceGTE applies the GTE predicate on the "surface" field.
func SurfaceGTE(v float64) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldSurface, v))
}

// SurfaceLT applies the LT predicate on the "surface" field.
func SurfaceLT(v float64) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldSurface, v))
}

// SurfaceLTE applies the LTE predicate on the "surface" field.
func SurfaceLTE(v float64) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldSurface, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldEndDate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStatus, vs...))
}

// ProgressNotesEQ applies the EQ predicate on the "progress_notes" field.
func ProgressNotesEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProgressNotes, v))
}

// ProgressNotesNEQ applies the NEQ predicate on the "progress_notes" field.
func ProgressNotesNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldProgressNotes, v))
}

// ProgressNotesIn applies the In predicate on the "progress_notes" field.
func ProgressNotesIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldProgressNotes, vs...))
}

// ProgressNotesNotIn applies the NotIn predicate on the "progress_notes" field.
func ProgressNotesNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldProgressNotes, vs...))
}

// ProgressNotesGT applies the GT predicate on the "progress_notes" field.
func ProgressNotesGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldProgressNotes, v))
}

// ProgressNotesGTE applies the GTE predicate on the "progress_notes" field.
func ProgressNotesGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldProgressNotes, v))
}

// ProgressNotesLT applies the LT predicate on the "progress_notes" field.
func ProgressNotesLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldProgressNotes, v))
}

// ProgressNotesLTE applies the LTE predicate on the "progress_notes" field.
func ProgressNotesLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldProgressNotes, v))
}

// ProgressNotesContains applies the Contains predicate on the "progress_notes" field.
func ProgressNotesContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldProgressNotes, v))
}

// ProgressNotesHasPrefix applies the HasPrefix predicate on the "progress_notes" field.
func ProgressNotesHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldProgressNotes, v))
}

// ProgressNotesHasSuffix applies the HasSuffix predicate on the "progress_notes" field.
func ProgressNotesHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldProgressNotes, v))
}

// ProgressNotesIsNil applies the IsNil predicate on the "progress_notes" field.
func ProgressNotesIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldProgressNotes))
}

// ProgressNotesNotNil applies the NotNil predicate on the "progress_notes" field.
func ProgressNotesNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldProgressNotes))
}

// ProgressNotesEqualFold applies the EqualFold predicate on the "progress_notes" field.
func ProgressNotesEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldProgressNotes, v))
}

// ProgressNotesContainsFold applies the ContainsFold predicate on the "progress_notes" field.
func ProgressNotesContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldProgressNotes, v))
}

// HasField applies the HasEdge predicate on the "field" edge.
func HasField() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FieldTable, FieldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldWith applies the HasEdge predicate on the "field" edge with a given conditions (other predicates).
func HasFieldWith(preds ...predicate.Field) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newFieldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.User) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSupervisor applies the HasEdge predicate on the "supervisor" edge.
func HasSupervisor() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SupervisorTable, SupervisorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupervisorWith applies the HasEdge predicate on the "supervisor" edge with a given conditions (other predicates).
func HasSupervisorWith(preds ...predicate.User) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newSupervisorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivityType applies the HasEdge predicate on the "activity_type" edge.
func HasActivityType() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ActivityTypeTable, ActivityTypeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivityTypeWith applies the HasEdge predicate on the "activity_type" edge with a given conditions (other predicates).
func HasActivityTypeWith(preds ...predicate.ActivityType) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newActivityTypeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReservation applies the HasEdge predicate on the "reservation" edge.
func HasReservation() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ReservationTable, ReservationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReservationWith applies the HasEdge predicate on the "reservation" edge with a given conditions (other predicates).
func HasReservationWith(preds ...predicate.Reservation) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newReservationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
