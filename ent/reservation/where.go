// Code generated by ent, DO NOT EDIT.

package reservation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/marwaELABIDI/ferme-platform/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldClientID, v))
}

// SupervisorID applies equality check predicate on the "supervisor_id" field. It's identical to SupervisorIDEQ.
func SupervisorID(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldSupervisorID, v))
}

// SurfaceRequested applies equality check predicate on the "surface_requested" field. It's identical to SurfaceRequestedEQ.
func SurfaceRequested(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldSurfaceRequested, v))
}

// StartRequested applies equality check predicate on the "start_requested" field. It's identical to StartRequestedEQ.
func StartRequested(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldStartRequested, v))
}

// EndRequested applies equality check predicate on the "end_requested" field. It's identical to EndRequestedEQ.
func EndRequested(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldEndRequested, v))
}

// DecisionDate applies equality check predicate on the "decision_date" field. It's identical to DecisionDateEQ.
func DecisionDate(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldDecisionDate, v))
}

// Motivation applies equality check predicate on the "motivation" field. It's identical to MotivationEQ.
func Motivation(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldMotivation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldUpdatedAt, v))
}

// FieldIDEQ applies the EQ predicate on the "field_id" field.
func FieldIDEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldFieldID, v))
}

// FieldIDNEQ applies the NEQ predicate on the "field_id" field.
func FieldIDNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldFieldID, v))
}

// FieldIDIn applies the In predicate on the "field_id" field.
func FieldIDIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldFieldID, vs...))
}

// FieldIDNotIn applies the NotIn predicate on the "field_id" field.
func FieldIDNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldFieldID, vs...))
}

// FieldIDGT applies the GT predicate on the "field_id" field.
func FieldIDGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldFieldID, v))
}

// FieldIDGTE applies the GTE predicate on the "field_id" field.
func FieldIDGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldFieldID, v))
}

// FieldIDLT applies the LT predicate on the "field_id" field.
func FieldIDLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldFieldID, v))
}

// FieldIDLTE applies the LTE predicate on the "field_id" field.
func FieldIDLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldFieldID, v))
}

// FieldIDContains applies the Contains predicate on the "field_id" field.
func FieldIDContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldFieldID, v))
}

// FieldIDHasPrefix applies the HasPrefix predicate on the "field_id" field.
func FieldIDHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldFieldID, v))
}

// FieldIDHasSuffix applies the HasSuffix predicate on the "field_id" field.
func FieldIDHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldFieldID, v))
}

// FieldIDEqualFold applies the EqualFold predicate on the "field_id" field.
func FieldIDEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldFieldID, v))
}

// FieldIDContainsFold applies the ContainsFold predicate on the "field_id" field.
func FieldIDContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldFieldID, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldClientID, v))
}

// ClientIDContains applies the Contains predicate on the "client_id" field.
func ClientIDContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldClientID, v))
}

// ClientIDHasPrefix applies the HasPrefix predicate on the "client_id" field.
func ClientIDHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldClientID, v))
}

// ClientIDHasSuffix applies the HasSuffix predicate on the "client_id" field.
func ClientIDHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldClientID, v))
}

// ClientIDEqualFold applies the EqualFold predicate on the "client_id" field.
func ClientIDEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldClientID, v))
}

// ClientIDContainsFold applies the ContainsFold predicate on the "client_id" field.
func ClientIDContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldClientID, v))
}

// SupervisorIDEQ applies the EQ predicate on the "supervisor_id" field.
func SupervisorIDEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldSupervisorID, v))
}

// SupervisorIDNEQ applies the NEQ predicate on the "supervisor_id" field.
func SupervisorIDNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldSupervisorID, v))
}

// SupervisorIDIn applies the In predicate on the "supervisor_id" field.
func SupervisorIDIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldSupervisorID, vs...))
}

// SupervisorIDNotIn applies the NotIn predicate on the "supervisor_id" field.
func SupervisorIDNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldSupervisorID, vs...))
}

// SupervisorIDGT applies the GT predicate on the "supervisor_id" field.
func SupervisorIDGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldSupervisorID, v))
}

// SupervisorIDGTE applies the GTE predicate on the "supervisor_id" field.
func SupervisorIDGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldSupervisorID, v))
}

// SupervisorIDLT applies the LT predicate on the "supervisor_id" field.
func SupervisorIDLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldSupervisorID, v))
}

// SupervisorIDLTE applies the LTE predicate on the "supervisor_id" field.
func SupervisorIDLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldSupervisorID, v))
}

// SupervisorIDContains applies the Contains predicate on the "supervisor_id" field.
func SupervisorIDContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldSupervisorID, v))
}

// SupervisorIDHasPrefix applies the HasPrefix predicate on the "supervisor_id" field.
func SupervisorIDHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldSupervisorID, v))
}

// SupervisorIDHasSuffix applies the HasSuffix predicate on the "supervisor_id" field.
func SupervisorIDHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldSupervisorID, v))
}

// SupervisorIDIsNil applies the IsNil predicate on the "supervisor_id" field.
func SupervisorIDIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldSupervisorID))
}

// SupervisorIDNotNil applies the NotNil predicate on the "supervisor_id" field.
func SupervisorIDNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldSupervisorID))
}

// SupervisorIDEqualFold applies the EqualFold predicate on the "supervisor_id" field.
func SupervisorIDEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldSupervisorID, v))
}

// SupervisorIDContainsFold applies the ContainsFold predicate on the "supervisor_id" field.
func SupervisorIDContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldSupervisorID, v))
}

// SurfaceRequestedEQ applies the EQ predicate on the "surface_requested" field.
func SurfaceRequestedEQ(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldSurfaceRequested, v))
}

// SurfaceRequestedNEQ applies the NEQ predicate on the "surface_requested" field.
func SurfaceRequestedNEQ(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldSurfaceRequested, v))
}

// SurfaceRequestedIn applies the In predicate on the "surface_requested" field.
func SurfaceRequestedIn(vs ...float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldSurfaceRequested, vs...))
}

// SurfaceRequestedNotIn applies the NotIn predicate on the "surface_requested" field.
func SurfaceRequestedNotIn(vs ...float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldSurfaceRequested, vs...))
}

// SurfaceRequestedGT applies the GT predicate on the "surface_requested" field.
func SurfaceRequestedGT(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldSurfaceRequested, v))
}

// SurfaceRequestedGTE applies the GTE predicate on the "surface_requested" field.
func SurfaceRequestedGTE(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldSurfaceRequested, v))
}

// SurfaceRequestedLT applies the LT predicate on the "surface_requested" field.
func SurfaceRequestedLT(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldSurfaceRequested, v))
}

// SurfaceRequestedLTE applies the LTE predicate on the "surface_requested" field.
func SurfaceRequestedLTE(v float64) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldSurfaceRequested, v))
}

// StartRequestedEQ applies the EQ predicate on the "start_requested" field.
func StartRequestedEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldStartRequested, v))
}

// StartRequestedNEQ applies the NEQ predicate on the "start_requested" field.
func StartRequestedNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldStartRequested, v))
}

// StartRequestedIn applies the In predicate on the "start_requested" field.
func StartRequestedIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldStartRequested, vs...))
}

// StartRequestedNotIn applies the NotIn predicate on the "start_requested" field.
func StartRequestedNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldStartRequested, vs...))
}

// StartRequestedGT applies the GT predicate on the "start_requested" field.
func StartRequestedGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldStartRequested, v))
}

// StartRequestedGTE applies the GTE predicate on the "start_requested" field.
func StartRequestedGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldStartRequested, v))
}

// StartRequestedLT applies the LT predicate on the "start_requested" field.
func StartRequestedLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldStartRequested, v))
}

// StartRequestedLTE applies the LTE predicate on the "start_requested" field.
func StartRequestedLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldStartRequested, v))
}

// EndRequestedEQ applies the EQ predicate on the "end_requested" field.
func EndRequestedEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldEndRequested, v))
}

// EndRequestedNEQ applies the NEQ predicate on the "end_requested" field.
func EndRequestedNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldEndRequested, v))
}

// EndRequestedIn applies the In predicate on the "end_requested" field.
func EndRequestedIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldEndRequested, vs...))
}

// EndRequestedNotIn applies the NotIn predicate on the "end_requested" field.
func EndRequestedNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldEndRequested, vs...))
}

// EndRequestedGT applies the GT predicate on the "end_requested" field.
func EndRequestedGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldEndRequested, v))
}

// EndRequestedGTE applies the GTE predicate on the "end_requested" field.
func EndRequestedGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldEndRequested, v))
}

// EndRequestedLT applies the LT predicate on the "end_requested" field.
func EndRequestedLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldEndRequested, v))
}

// EndRequestedLTE applies the LTE predicate on the "end_requested" field.
func EndRequestedLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldEndRequested, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldStatus, vs...))
}

// DecisionDateEQ applies the EQ predicate on the "decision_date" field.
func DecisionDateEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldDecisionDate, v))
}

// DecisionDateNEQ applies the NEQ predicate on the "decision_date" field.
func DecisionDateNEQ(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldDecisionDate, v))
}

// DecisionDateIn applies the In predicate on the "decision_date" field.
func DecisionDateIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldDecisionDate, vs...))
}

// DecisionDateNotIn applies the NotIn predicate on the "decision_date" field.
func DecisionDateNotIn(vs ...time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldDecisionDate, vs...))
}

// DecisionDateGT applies the GT predicate on the "decision_date" field.
func DecisionDateGT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldDecisionDate, v))
}

// DecisionDateGTE applies the GTE predicate on the "decision_date" field.
func DecisionDateGTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldDecisionDate, v))
}

// DecisionDateLT applies the LT predicate on the "decision_date" field.
func DecisionDateLT(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldDecisionDate, v))
}

// DecisionDateLTE applies the LTE predicate on the "decision_date" field.
func DecisionDateLTE(v time.Time) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldDecisionDate, v))
}

// DecisionDateIsNil applies the IsNil predicate on the "decision_date" field.
func DecisionDateIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldDecisionDate))
}

// DecisionDateNotNil applies the NotNil predicate on the "decision_date" field.
func DecisionDateNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldDecisionDate))
}

// MotivationEQ applies the EQ predicate on the "motivation" field.
func MotivationEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEQ(FieldMotivation, v))
}

// MotivationNEQ applies the NEQ predicate on the "motivation" field.
func MotivationNEQ(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNEQ(FieldMotivation, v))
}

// MotivationIn applies the In predicate on the "motivation" field.
func MotivationIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldIn(FieldMotivation, vs...))
}

// MotivationNotIn applies the NotIn predicate on the "motivation" field.
func MotivationNotIn(vs ...string) predicate.Reservation {
	return predicate.Reservation(sql.FieldNotIn(FieldMotivation, vs...))
}

// MotivationGT applies the GT predicate on the "motivation" field.
func MotivationGT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGT(FieldMotivation, v))
}

// MotivationGTE applies the GTE predicate on the "motivation" field.
func MotivationGTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldGTE(FieldMotivation, v))
}

// MotivationLT applies the LT predicate on the "motivation" field.
func MotivationLT(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLT(FieldMotivation, v))
}

// MotivationLTE applies the LTE predicate on the "motivation" field.
func MotivationLTE(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldLTE(FieldMotivation, v))
}

// MotivationContains applies the Contains predicate on the "motivation" field.
func MotivationContains(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContains(FieldMotivation, v))
}

// MotivationHasPrefix applies the HasPrefix predicate on the "motivation" field.
func MotivationHasPrefix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasPrefix(FieldMotivation, v))
}

// MotivationHasSuffix applies the HasSuffix predicate on the "motivation" field.
func MotivationHasSuffix(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldHasSuffix(FieldMotivation, v))
}

// MotivationIsNil applies the IsNil predicate on the "motivation" field.
func MotivationIsNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldIsNull(FieldMotivation))
}

// MotivationNotNil applies the NotNil predicate on the "motivation" field.
func MotivationNotNil() predicate.Reservation {
	return predicate.Reservation(sql.FieldNotNull(FieldMotivation))
}

// MotivationEqualFold applies the EqualFold predicate on the "motivation" field.
func MotivationEqualFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldEqualFold(FieldMotivation, v))
}

// MotivationContainsFold applies the ContainsFold predicate on the "motivation" field.
func MotivationContainsFold(v string) predicate.Reservation {
	return predicate.Reservation(sql.FieldContainsFold(FieldMotivation, v))
}

// HasField applies the HasEdge predicate on the "field" edge.
func HasField() predicate.Reservation {
	return predicate.Reservation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FieldTable, FieldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldWith applies the HasEdge predicate on the "field" edge with a given conditions (other predicates).
func HasFieldWith(preds ...predicate.Field) predicate.Reservation {
	return predicate.Reservation(func(s *sql.Selector) {
		step := newFieldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Reservation {
	return predicate.Reservation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.User) predicate.Reservation {
	return predicate.Reservation(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Reservation {
	return predicate.Reservation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Reservation {
	return predicate.Reservation(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Reservation) predicate.Reservation {
	return predicate.Reservation(sql.NotPredicates(p))
}
