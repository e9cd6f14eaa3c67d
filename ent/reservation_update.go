// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marwaELABIDI/ferme-platform/ent/predicate"
	"github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/ent/reservation"
)

// ReservationUpdate is the builder for updating Reservation entities.
type ReservationUpdate struct {
	config
	hooks    []Hook
	mutation *ReservationMutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdate) Where(ps ...predicate.Reservation) *ReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdate) SetUpdatedAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupervisorID sets the "supervisor_id" field.
func (_u *ReservationUpdate) SetSupervisorID(v string) *ReservationUpdate {
	_u.mutation.SetSupervisorID(v)
	return _u
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableSupervisorID(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetSupervisorID(*v)
	}
	return _u
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (_u *ReservationUpdate) ClearSupervisorID() *ReservationUpdate {
	_u.mutation.ClearSupervisorID()
	return _u
}

// SetSurfaceRequested sets the "surface_requested" field.
func (_u *ReservationUpdate) SetSurfaceRequested(v float64) *ReservationUpdate {
	_u.mutation.ResetSurfaceRequested()
	_u.mutation.SetSurfaceRequested(v)
	return _u
}

// SetNillableSurfaceRequested sets the "surface_requested" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableSurfaceRequested(v *float64) *ReservationUpdate {
	if v != nil {
		_u.SetSurfaceRequested(*v)
	}
	return _u
}

// AddSurfaceRequested adds value to the "surface_requested" field.
func (_u *ReservationUpdate) AddSurfaceRequested(v float64) *ReservationUpdate {
	_u.mutation.AddSurfaceRequested(v)
	return _u
}

// SetStartRequested sets the "start_requested" field.
func (_u *ReservationUpdate) SetStartRequested(v time.Time) *ReservationUpdate {
	_u.mutation.SetStartRequested(v)
	return _u
}

// SetNillableStartRequested sets the "start_requested" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableStartRequested(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetStartRequested(*v)
	}
	return _u
}

// SetEndRequested sets the "end_requested" field.
func (_u *ReservationUpdate) SetEndRequested(v time.Time) *ReservationUpdate {
	_u.mutation.SetEndRequested(v)
	return _u
}

// SetNillableEndRequested sets the "end_requested" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableEndRequested(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetEndRequested(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationUpdate) SetStatus(v reservation.Status) *ReservationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableStatus(v *reservation.Status) *ReservationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecisionDate sets the "decision_date" field.
func (_u *ReservationUpdate) SetDecisionDate(v time.Time) *ReservationUpdate {
	_u.mutation.SetDecisionDate(v)
	return _u
}

// SetNillableDecisionDate sets the "decision_date" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableDecisionDate(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetDecisionDate(*v)
	}
	return _u
}

// ClearDecisionDate clears the value of the "decision_date" field.
func (_u *ReservationUpdate) ClearDecisionDate() *ReservationUpdate {
	_u.mutation.ClearDecisionDate()
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *ReservationUpdate) SetMotivation(v string) *ReservationUpdate {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableMotivation(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *ReservationUpdate) ClearMotivation() *ReservationUpdate {
	_u.mutation.ClearMotivation()
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *ReservationUpdate) SetProjectID(id string) *ReservationUpdate {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_u *ReservationUpdate) SetNillableProjectID(id *string) *ReservationUpdate {
	if id != nil {
		_u = _u.SetProjectID(*id)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ReservationUpdate) SetProject(v *Project) *ReservationUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdate) Mutation() *ReservationMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ReservationUpdate) ClearProject() *ReservationUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReservationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdate) check() error {
	if v, ok := _u.mutation.SurfaceRequested(); ok {
		if err := reservation.SurfaceRequestedValidator(v); err != nil {
			return &ValidationError{Name: "surface_requested", err: fmt.Errorf(`ent: validator failed for field "Reservation.surface_requested": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Motivation(); ok {
		if err := reservation.MotivationValidator(v); err != nil {
			return &ValidationError{Name: "motivation", err: fmt.Errorf(`ent: validator failed for field "Reservation.motivation": %w`, err)}
		}
	}
	if _u.mutation.FieldEdgeCleared() && len(_u.mutation.FieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reservation.field"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reservation.client"`)
	}
	return nil
}

func (_u *ReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SupervisorID(); ok {
		_spec.SetField(reservation.FieldSupervisorID, field.TypeString, value)
	}
	if _u.mutation.SupervisorIDCleared() {
		_spec.ClearField(reservation.FieldSupervisorID, field.TypeString)
	}
	if value, ok := _u.mutation.SurfaceRequested(); ok {
		_spec.SetField(reservation.FieldSurfaceRequested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSurfaceRequested(); ok {
		_spec.AddField(reservation.FieldSurfaceRequested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartRequested(); ok {
		_spec.SetField(reservation.FieldStartRequested, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndRequested(); ok {
		_spec.SetField(reservation.FieldEndRequested, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionDate(); ok {
		_spec.SetField(reservation.FieldDecisionDate, field.TypeTime, value)
	}
	if _u.mutation.DecisionDateCleared() {
		_spec.ClearField(reservation.FieldDecisionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(reservation.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(reservation.FieldMotivation, field.TypeString)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   reservation.ProjectTable,
			Columns: []string{reservation.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   reservation.ProjectTable,
			Columns: []string{reservation.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReservationUpdateOne is the builder for updating a single Reservation entity.
type ReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReservationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdateOne) SetUpdatedAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSupervisorID sets the "supervisor_id" field.
func (_u *ReservationUpdateOne) SetSupervisorID(v string) *ReservationUpdateOne {
	_u.mutation.SetSupervisorID(v)
	return _u
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableSupervisorID(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetSupervisorID(*v)
	}
	return _u
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (_u *ReservationUpdateOne) ClearSupervisorID() *ReservationUpdateOne {
	_u.mutation.ClearSupervisorID()
	return _u
}

// SetSurfaceRequested sets the "surface_requested" field.
func (_u *ReservationUpdateOne) SetSurfaceRequested(v float64) *ReservationUpdateOne {
	_u.mutation.ResetSurfaceRequested()
	_u.mutation.SetSurfaceRequested(v)
	return _u
}

// SetNillableSurfaceRequested sets the "surface_requested" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableSurfaceRequested(v *float64) *ReservationUpdateOne {
	if v != nil {
		_u.SetSurfaceRequested(*v)
	}
	return _u
}

// AddSurfaceRequested adds value to the "surface_requested" field.
func (_u *ReservationUpdateOne) AddSurfaceRequested(v float64) *ReservationUpdateOne {
	_u.mutation.AddSurfaceRequested(v)
	return _u
}

// SetStartRequested sets the "start_requested" field.
func (_u *ReservationUpdateOne) SetStartRequested(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetStartRequested(v)
	return _u
}

// SetNillableStartRequested sets the "start_requested" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableStartRequested(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetStartRequested(*v)
	}
	return _u
}

// SetEndRequested sets the "end_requested" field.
func (_u *ReservationUpdateOne) SetEndRequested(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetEndRequested(v)
	return _u
}

// SetNillableEndRequested sets the "end_requested" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableEndRequested(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetEndRequested(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationUpdateOne) SetStatus(v reservation.Status) *ReservationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableStatus(v *reservation.Status) *ReservationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecisionDate sets the "decision_date" field.
func (_u *ReservationUpdateOne) SetDecisionDate(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetDecisionDate(v)
	return _u
}

// SetNillableDecisionDate sets the "decision_date" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableDecisionDate(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetDecisionDate(*v)
	}
	return _u
}

// ClearDecisionDate clears the value of the "decision_date" field.
func (_u *ReservationUpdateOne) ClearDecisionDate() *ReservationUpdateOne {
	_u.mutation.ClearDecisionDate()
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *ReservationUpdateOne) SetMotivation(v string) *ReservationUpdateOne {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableMotivation(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *ReservationUpdateOne) ClearMotivation() *ReservationUpdateOne {
	_u.mutation.ClearMotivation()
	return _u
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_u *ReservationUpdateOne) SetProjectID(id string) *ReservationUpdateOne {
	_u.mutation.SetProjectID(id)
	return _u
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableProjectID(id *string) *ReservationUpdateOne {
	if id != nil {
		_u = _u.SetProjectID(*id)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ReservationUpdateOne) SetProject(v *Project) *ReservationUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdateOne) Mutation() *ReservationMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ReservationUpdateOne) ClearProject() *ReservationUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdateOne) Where(ps ...predicate.Reservation) *ReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReservationUpdateOne) Select(field string, fields ...string) *ReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reservation entity.
func (_u *ReservationUpdateOne) Save(ctx context.Context) (*Reservation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdateOne) SaveX(ctx context.Context) *Reservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdateOne) check() error {
	if v, ok := _u.mutation.SurfaceRequested(); ok {
		if err := reservation.SurfaceRequestedValidator(v); err != nil {
			return &ValidationError{Name: "surface_requested", err: fmt.Errorf(`ent: validator failed for field "Reservation.surface_requested": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Motivation(); ok {
		if err := reservation.MotivationValidator(v); err != nil {
			return &ValidationError{Name: "motivation", err: fmt.Errorf(`ent: validator failed for field "Reservation.motivation": %w`, err)}
		}
	}
	if _u.mutation.FieldEdgeCleared() && len(_u.mutation.FieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reservation.field"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reservation.client"`)
	}
	return nil
}

func (_u *ReservationUpdateOne) sqlSave(ctx context.Context) (_node *Reservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reservation.FieldID)
		for _, f := range fields {
			if !reservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reservation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SupervisorID(); ok {
		_spec.SetField(reservation.FieldSupervisorID, field.TypeString, value)
	}
	if _u.mutation.SupervisorIDCleared() {
		_spec.ClearField(reservation.FieldSupervisorID, field.TypeString)
	}
	if value, ok := _u.mutation.SurfaceRequested(); ok {
		_spec.SetField(reservation.FieldSurfaceRequested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSurfaceRequested(); ok {
		_spec.AddField(reservation.FieldSurfaceRequested, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartRequested(); ok {
		_spec.SetField(reservation.FieldStartRequested, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndRequested(); ok {
		_spec.SetField(reservation.FieldEndRequested, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecisionDate(); ok {
		_spec.SetField(reservation.FieldDecisionDate, field.TypeTime, value)
	}
	if _u.mutation.DecisionDateCleared() {
		_spec.ClearField(reservation.FieldDecisionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(reservation.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(reservation.FieldMotivation, field.TypeString)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   reservation.ProjectTable,
			Columns: []string{reservation.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   reservation.ProjectTable,
			Columns: []string{reservation.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Reservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
