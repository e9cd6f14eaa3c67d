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
	"github.com/marwaELABIDI/ferme-platform/ent/activitytype"
	"github.com/marwaELABIDI/ferme-platform/ent/predicate"
	"github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/ent/reservation"
	"github.com/marwaELABIDI/ferme-platform/ent/user"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ProjectUpdate) SetClientID(v string) *ProjectUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableClientID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSupervisorID sets the "supervisor_id" field.
func (_u *ProjectUpdate) SetSupervisorID(v string) *ProjectUpdate {
	_u.mutation.SetSupervisorID(v)
	return _u
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSupervisorID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetSupervisorID(*v)
	}
	return _u
}

// SetActivityTypeID sets the "activity_type_id" field.
func (_u *ProjectUpdate) SetActivityTypeID(v string) *ProjectUpdate {
	_u.mutation.SetActivityTypeID(v)
	return _u
}

// SetNillableActivityTypeID sets the "activity_type_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableActivityTypeID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetActivityTypeID(*v)
	}
	return _u
}

// ClearActivityTypeID clears the value of the "activity_type_id" field.
func (_u *ProjectUpdate) ClearActivityTypeID() *ProjectUpdate {
	_u.mutation.ClearActivityTypeID()
	return _u
}

// SetSurface sets the "surface" field.
func (_u *ProjectUpdate) SetSurface(v float64) *ProjectUpdate {
	_u.mutation.ResetSurface()
	_u.mutation.SetSurface(v)
	return _u
}

// SetNillableSurface sets the "surface" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSurface(v *float64) *ProjectUpdate {
	if v != nil {
		_u.SetSurface(*v)
	}
	return _u
}

// AddSurface adds value to the "surface" field.
func (_u *ProjectUpdate) AddSurface(v float64) *ProjectUpdate {
	_u.mutation.AddSurface(v)
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ProjectUpdate) SetStartDate(v time.Time) *ProjectUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStartDate(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ProjectUpdate) SetEndDate(v time.Time) *ProjectUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableEndDate(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ProjectUpdate) ClearEndDate() *ProjectUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdate) SetStatus(v project.Status) *ProjectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStatus(v *project.Status) *ProjectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgressNotes sets the "progress_notes" field.
func (_u *ProjectUpdate) SetProgressNotes(v string) *ProjectUpdate {
	_u.mutation.SetProgressNotes(v)
	return _u
}

// SetNillableProgressNotes sets the "progress_notes" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableProgressNotes(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetProgressNotes(*v)
	}
	return _u
}

// ClearProgressNotes clears the value of the "progress_notes" field.
func (_u *ProjectUpdate) ClearProgressNotes() *ProjectUpdate {
	_u.mutation.ClearProgressNotes()
	return _u
}

// SetClient sets the "client" edge to the User entity.
func (_u *ProjectUpdate) SetClient(v *User) *ProjectUpdate {
	return _u.SetClientID(v.ID)
}

// SetSupervisor sets the "supervisor" edge to the User entity.
func (_u *ProjectUpdate) SetSupervisor(v *User) *ProjectUpdate {
	return _u.SetSupervisorID(v.ID)
}

// SetActivityType sets the "activity_type" edge to the ActivityType entity.
func (_u *ProjectUpdate) SetActivityType(v *ActivityType) *ProjectUpdate {
	return _u.SetActivityTypeID(v.ID)
}

// SetReservationID sets the "reservation" edge to the Reservation entity by ID.
func (_u *ProjectUpdate) SetReservationID(id string) *ProjectUpdate {
	_u.mutation.SetReservationID(id)
	return _u
}

// SetNillableReservationID sets the "reservation" edge to the Reservation entity by ID if the given value is not nil.
func (_u *ProjectUpdate) SetNillableReservationID(id *string) *ProjectUpdate {
	if id != nil {
		_u = _u.SetReservationID(*id)
	}
	return _u
}

// SetReservation sets the "reservation" edge to the Reservation entity.
func (_u *ProjectUpdate) SetReservation(v *Reservation) *ProjectUpdate {
	return _u.SetReservationID(v.ID)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the User entity.
func (_u *ProjectUpdate) ClearClient() *ProjectUpdate {
	_u.mutation.ClearClient()
	return _u
}

// ClearSupervisor clears the "supervisor" edge to the User entity.
func (_u *ProjectUpdate) ClearSupervisor() *ProjectUpdate {
	_u.mutation.ClearSupervisor()
	return _u
}

// ClearActivityType clears the "activity_type" edge to the ActivityType entity.
func (_u *ProjectUpdate) ClearActivityType() *ProjectUpdate {
	_u.mutation.ClearActivityType()
	return _u
}

// ClearReservation clears the "reservation" edge to the Reservation entity.
func (_u *ProjectUpdate) ClearReservation() *ProjectUpdate {
	_u.mutation.ClearReservation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := project.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Project.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SupervisorID(); ok {
		if err := project.SupervisorIDValidator(v); err != nil {
			return &ValidationError{Name: "supervisor_id", err: fmt.Errorf(`ent: validator failed for field "Project.supervisor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Surface(); ok {
		if err := project.SurfaceValidator(v); err != nil {
			return &ValidationError{Name: "surface", err: fmt.Errorf(`ent: validator failed for field "Project.surface": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressNotes(); ok {
		if err := project.ProgressNotesValidator(v); err != nil {
			return &ValidationError{Name: "progress_notes", err: fmt.Errorf(`ent: validator failed for field "Project.progress_notes": %w`, err)}
		}
	}
	if _u.mutation.FieldEdgeCleared() && len(_u.mutation.FieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.field"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.client"`)
	}
	if _u.mutation.SupervisorCleared() && len(_u.mutation.SupervisorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.supervisor"`)
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Surface(); ok {
		_spec.SetField(project.FieldSurface, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSurface(); ok {
		_spec.AddField(project.FieldSurface, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(project.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(project.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(project.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProgressNotes(); ok {
		_spec.SetField(project.FieldProgressNotes, field.TypeString, value)
	}
	if _u.mutation.ProgressNotesCleared() {
		_spec.ClearField(project.FieldProgressNotes, field.TypeString)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.ClientTable,
			Columns: []string{project.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.ClientTable,
			Columns: []string{project.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SupervisorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.SupervisorTable,
			Columns: []string{project.SupervisorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupervisorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.SupervisorTable,
			Columns: []string{project.SupervisorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivityTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.ActivityTypeTable,
			Columns: []string{project.ActivityTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activitytype.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivityTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.ActivityTypeTable,
			Columns: []string{project.ActivityTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activitytype.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReservationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   project.ReservationTable,
			Columns: []string{project.ReservationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReservationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   project.ReservationTable,
			Columns: []string{project.ReservationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ProjectUpdateOne) SetClientID(v string) *ProjectUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableClientID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSupervisorID sets the "supervisor_id" field.
func (_u *ProjectUpdateOne) SetSupervisorID(v string) *ProjectUpdateOne {
	_u.mutation.SetSupervisorID(v)
	return _u
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSupervisorID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetSupervisorID(*v)
	}
	return _u
}

// SetActivityTypeID sets the "activity_type_id" field.
func (_u *ProjectUpdateOne) SetActivityTypeID(v string) *ProjectUpdateOne {
	_u.mutation.SetActivityTypeID(v)
	return _u
}

// SetNillableActivityTypeID sets the "activity_type_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableActivityTypeID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetActivityTypeID(*v)
	}
	return _u
}

// ClearActivityTypeID clears the value of the "activity_type_id" field.
func (_u *ProjectUpdateOne) ClearActivityTypeID() *ProjectUpdateOne {
	_u.mutation.ClearActivityTypeID()
	return _u
}

// SetSurface sets the "surface" field.
func (_u *ProjectUpdateOne) SetSurface(v float64) *ProjectUpdateOne {
	_u.mutation.ResetSurface()
	_u.mutation.SetSurface(v)
	return _u
}

// SetNillableSurface sets the "surface" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSurface(v *float64) *ProjectUpdateOne {
	if v != nil {
		_u.SetSurface(*v)
	}
	return _u
}

// AddSurface adds value to the "surface" field.
func (_u *ProjectUpdateOne) AddSurface(v float64) *ProjectUpdateOne {
	_u.mutation.AddSurface(v)
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ProjectUpdateOne) SetStartDate(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStartDate(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ProjectUpdateOne) SetEndDate(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableEndDate(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ProjectUpdateOne) ClearEndDate() *ProjectUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdateOne) SetStatus(v project.Status) *ProjectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStatus(v *project.Status) *ProjectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgressNotes sets the "progress_notes" field.
func (_u *ProjectUpdateOne) SetProgressNotes(v string) *ProjectUpdateOne {
	_u.mutation.SetProgressNotes(v)
	return _u
}

// SetNillableProgressNotes sets the "progress_notes" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableProgressNotes(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetProgressNotes(*v)
	}
	return _u
}

// ClearProgressNotes clears the value of the "progress_notes" field.
func (_u *ProjectUpdateOne) ClearProgressNotes() *ProjectUpdateOne {
	_u.mutation.ClearProgressNotes()
	return _u
}

// SetClient sets the "client" edge to the User entity.
func (_u *ProjectUpdateOne) SetClient(v *User) *ProjectUpdateOne {
	return _u.SetClientID(v.ID)
}

// SetSupervisor sets the "supervisor" edge to the User entity.
func (_u *ProjectUpdateOne) SetSupervisor(v *User) *ProjectUpdateOne {
	return _u.SetSupervisorID(v.ID)
}

// SetActivityType sets the "activity_type" edge to the ActivityType entity.
func (_u *ProjectUpdateOne) SetActivityType(v *ActivityType) *ProjectUpdateOne {
	return _u.SetActivityTypeID(v.ID)
}

// SetReservationID sets the "reservation" edge to the Reservation entity by ID.
func (_u *ProjectUpdateOne) SetReservationID(id string) *ProjectUpdateOne {
	_u.mutation.SetReservationID(id)
	return _u
}

// SetNillableReservationID sets the "reservation" edge to the Reservation entity by ID if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableReservationID(id *string) *ProjectUpdateOne {
	if id != nil {
		_u = _u.SetReservationID(*id)
	}
	return _u
}

// SetReservation sets the "reservation" edge to the Reservation entity.
func (_u *ProjectUpdateOne) SetReservation(v *Reservation) *ProjectUpdateOne {
	return _u.SetReservationID(v.ID)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the User entity.
func (_u *ProjectUpdateOne) ClearClient() *ProjectUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// ClearSupervisor clears the "supervisor" edge to the User entity.
func (_u *ProjectUpdateOne) ClearSupervisor() *ProjectUpdateOne {
	_u.mutation.ClearSupervisor()
	return _u
}

// ClearActivityType clears the "activity_type" edge to the ActivityType entity.
func (_u *ProjectUpdateOne) ClearActivityType() *ProjectUpdateOne {
	_u.mutation.ClearActivityType()
	return _u
}

// ClearReservation clears the "reservation" edge to the Reservation entity.
func (_u *ProjectUpdateOne) ClearReservation() *ProjectUpdateOne {
	_u.mutation.ClearReservation()
	return _u
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := project.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Project.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SupervisorID(); ok {
		if err := project.SupervisorIDValidator(v); err != nil {
			return &ValidationError{Name: "supervisor_id", err: fmt.Errorf(`ent: validator failed for field "Project.supervisor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Surface(); ok {
		if err := project.SurfaceValidator(v); err != nil {
			return &ValidationError{Name: "surface", err: fmt.Errorf(`ent: validator failed for field "Project.surface": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProgressNotes(); ok {
		if err := project.ProgressNotesValidator(v); err != nil {
			return &ValidationError{Name: "progress_notes", err: fmt.Errorf(`ent: validator failed for field "Project.progress_notes": %w`, err)}
		}
	}
	if _u.mutation.FieldEdgeCleared() && len(_u.mutation.FieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.field"`)
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.client"`)
	}
	if _u.mutation.SupervisorCleared() && len(_u.mutation.SupervisorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.supervisor"`)
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Surface(); ok {
		_spec.SetField(project.FieldSurface, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSurface(); ok {
		_spec.AddField(project.FieldSurface, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(project.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(project.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(project.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProgressNotes(); ok {
		_spec.SetField(project.FieldProgressNotes, field.TypeString, value)
	}
	if _u.mutation.ProgressNotesCleared() {
		_spec.ClearField(project.FieldProgressNotes, field.TypeString)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.ClientTable,
			Columns: []string{project.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.ClientTable,
			Columns: []string{project.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SupervisorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.SupervisorTable,
			Columns: []string{project.SupervisorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupervisorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.SupervisorTable,
			Columns: []string{project.SupervisorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivityTypeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.ActivityTypeTable,
			Columns: []string{project.ActivityTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activitytype.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivityTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.ActivityTypeTable,
			Columns: []string{project.ActivityTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activitytype.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReservationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   project.ReservationTable,
			Columns: []string{project.ReservationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReservationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   project.ReservationTable,
			Columns: []string{project.ReservationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
