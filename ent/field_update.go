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
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	"github.com/marwaELABIDI/ferme-platform/ent/predicate"
	"github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/ent/reservation"
)

// FieldUpdate is the builder for updating Field entities.
type FieldUpdate struct {
	config
	hooks    []Hook
	mutation *FieldMutation
}

// Where appends a list predicates to the FieldUpdate builder.
func (_u *FieldUpdate) Where(ps ...predicate.Field) *FieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldUpdate) SetUpdatedAt(v time.Time) *FieldUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FieldUpdate) SetName(v string) *FieldUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableName(v *string) *FieldUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *FieldUpdate) SetLocation(v string) *FieldUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableLocation(v *string) *FieldUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *FieldUpdate) ClearLocation() *FieldUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetTotalCapacity sets the "total_capacity" field.
func (_u *FieldUpdate) SetTotalCapacity(v float64) *FieldUpdate {
	_u.mutation.ResetTotalCapacity()
	_u.mutation.SetTotalCapacity(v)
	return _u
}

// SetNillableTotalCapacity sets the "total_capacity" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableTotalCapacity(v *float64) *FieldUpdate {
	if v != nil {
		_u.SetTotalCapacity(*v)
	}
	return _u
}

// AddTotalCapacity adds value to the "total_capacity" field.
func (_u *FieldUpdate) AddTotalCapacity(v float64) *FieldUpdate {
	_u.mutation.AddTotalCapacity(v)
	return _u
}

// SetFreeCapacity sets the "free_capacity" field.
func (_u *FieldUpdate) SetFreeCapacity(v float64) *FieldUpdate {
	_u.mutation.ResetFreeCapacity()
	_u.mutation.SetFreeCapacity(v)
	return _u
}

// SetNillableFreeCapacity sets the "free_capacity" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableFreeCapacity(v *float64) *FieldUpdate {
	if v != nil {
		_u.SetFreeCapacity(*v)
	}
	return _u
}

// AddFreeCapacity adds value to the "free_capacity" field.
func (_u *FieldUpdate) AddFreeCapacity(v float64) *FieldUpdate {
	_u.mutation.AddFreeCapacity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FieldUpdate) SetStatus(v entfield.Status) *FieldUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableStatus(v *entfield.Status) *FieldUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSoilType sets the "soil_type" field.
func (_u *FieldUpdate) SetSoilType(v string) *FieldUpdate {
	_u.mutation.SetSoilType(v)
	return _u
}

// SetNillableSoilType sets the "soil_type" field if the given value is not nil.
func (_u *FieldUpdate) SetNillableSoilType(v *string) *FieldUpdate {
	if v != nil {
		_u.SetSoilType(*v)
	}
	return _u
}

// ClearSoilType clears the value of the "soil_type" field.
func (_u *FieldUpdate) ClearSoilType() *FieldUpdate {
	_u.mutation.ClearSoilType()
	return _u
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *FieldUpdate) AddProjectIDs(ids ...string) *FieldUpdate {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *FieldUpdate) AddProjects(v ...*Project) *FieldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddReservationIDs adds the "reservations" edge to the Reservation entity by IDs.
func (_u *FieldUpdate) AddReservationIDs(ids ...string) *FieldUpdate {
	_u.mutation.AddReservationIDs(ids...)
	return _u
}

// AddReservations adds the "reservations" edges to the Reservation entity.
func (_u *FieldUpdate) AddReservations(v ...*Reservation) *FieldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReservationIDs(ids...)
}

// Mutation returns the FieldMutation object of the builder.
func (_u *FieldUpdate) Mutation() *FieldMutation {
	return _u.mutation
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *FieldUpdate) ClearProjects() *FieldUpdate {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *FieldUpdate) RemoveProjectIDs(ids ...string) *FieldUpdate {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *FieldUpdate) RemoveProjects(v ...*Project) *FieldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearReservations clears all "reservations" edges to the Reservation entity.
func (_u *FieldUpdate) ClearReservations() *FieldUpdate {
	_u.mutation.ClearReservations()
	return _u
}

// RemoveReservationIDs removes the "reservations" edge to Reservation entities by IDs.
func (_u *FieldUpdate) RemoveReservationIDs(ids ...string) *FieldUpdate {
	_u.mutation.RemoveReservationIDs(ids...)
	return _u
}

// RemoveReservations removes "reservations" edges to Reservation entities.
func (_u *FieldUpdate) RemoveReservations(v ...*Reservation) *FieldUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReservationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entfield.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := entfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Field.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCapacity(); ok {
		if err := entfield.TotalCapacityValidator(v); err != nil {
			return &ValidationError{Name: "total_capacity", err: fmt.Errorf(`ent: validator failed for field "Field.total_capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FreeCapacity(); ok {
		if err := entfield.FreeCapacityValidator(v); err != nil {
			return &ValidationError{Name: "free_capacity", err: fmt.Errorf(`ent: validator failed for field "Field.free_capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := entfield.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Field.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entfield.Table, entfield.Columns, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entfield.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(entfield.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(entfield.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.TotalCapacity(); ok {
		_spec.SetField(entfield.FieldTotalCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCapacity(); ok {
		_spec.AddField(entfield.FieldTotalCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FreeCapacity(); ok {
		_spec.SetField(entfield.FieldFreeCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreeCapacity(); ok {
		_spec.AddField(entfield.FieldFreeCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(entfield.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SoilType(); ok {
		_spec.SetField(entfield.FieldSoilType, field.TypeString, value)
	}
	if _u.mutation.SoilTypeCleared() {
		_spec.ClearField(entfield.FieldSoilType, field.TypeString)
	}
	if _u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ProjectsTable,
			Columns: []string{entfield.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ProjectsTable,
			Columns: []string{entfield.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ProjectsTable,
			Columns: []string{entfield.ProjectsColumn},
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
	if _u.mutation.ReservationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ReservationsTable,
			Columns: []string{entfield.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReservationsIDs(); len(nodes) > 0 && !_u.mutation.ReservationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ReservationsTable,
			Columns: []string{entfield.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReservationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ReservationsTable,
			Columns: []string{entfield.ReservationsColumn},
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
			err = &NotFoundError{entfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldUpdateOne is the builder for updating a single Field entity.
type FieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldUpdateOne) SetUpdatedAt(v time.Time) *FieldUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *FieldUpdateOne) SetName(v string) *FieldUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableName(v *string) *FieldUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *FieldUpdateOne) SetLocation(v string) *FieldUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableLocation(v *string) *FieldUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *FieldUpdateOne) ClearLocation() *FieldUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetTotalCapacity sets the "total_capacity" field.
func (_u *FieldUpdateOne) SetTotalCapacity(v float64) *FieldUpdateOne {
	_u.mutation.ResetTotalCapacity()
	_u.mutation.SetTotalCapacity(v)
	return _u
}

// SetNillableTotalCapacity sets the "total_capacity" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableTotalCapacity(v *float64) *FieldUpdateOne {
	if v != nil {
		_u.SetTotalCapacity(*v)
	}
	return _u
}

// AddTotalCapacity adds value to the "total_capacity" field.
func (_u *FieldUpdateOne) AddTotalCapacity(v float64) *FieldUpdateOne {
	_u.mutation.AddTotalCapacity(v)
	return _u
}

// SetFreeCapacity sets the "free_capacity" field.
func (_u *FieldUpdateOne) SetFreeCapacity(v float64) *FieldUpdateOne {
	_u.mutation.ResetFreeCapacity()
	_u.mutation.SetFreeCapacity(v)
	return _u
}

// SetNillableFreeCapacity sets the "free_capacity" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableFreeCapacity(v *float64) *FieldUpdateOne {
	if v != nil {
		_u.SetFreeCapacity(*v)
	}
	return _u
}

// AddFreeCapacity adds value to the "free_capacity" field.
func (_u *FieldUpdateOne) AddFreeCapacity(v float64) *FieldUpdateOne {
	_u.mutation.AddFreeCapacity(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FieldUpdateOne) SetStatus(v entfield.Status) *FieldUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableStatus(v *entfield.Status) *FieldUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSoilType sets the "soil_type" field.
func (_u *FieldUpdateOne) SetSoilType(v string) *FieldUpdateOne {
	_u.mutation.SetSoilType(v)
	return _u
}

// SetNillableSoilType sets the "soil_type" field if the given value is not nil.
func (_u *FieldUpdateOne) SetNillableSoilType(v *string) *FieldUpdateOne {
	if v != nil {
		_u.SetSoilType(*v)
	}
	return _u
}

// ClearSoilType clears the value of the "soil_type" field.
func (_u *FieldUpdateOne) ClearSoilType() *FieldUpdateOne {
	_u.mutation.ClearSoilType()
	return _u
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *FieldUpdateOne) AddProjectIDs(ids ...string) *FieldUpdateOne {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *FieldUpdateOne) AddProjects(v ...*Project) *FieldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddReservationIDs adds the "reservations" edge to the Reservation entity by IDs.
func (_u *FieldUpdateOne) AddReservationIDs(ids ...string) *FieldUpdateOne {
	_u.mutation.AddReservationIDs(ids...)
	return _u
}

// AddReservations adds the "reservations" edges to the Reservation entity.
func (_u *FieldUpdateOne) AddReservations(v ...*Reservation) *FieldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReservationIDs(ids...)
}

// Mutation returns the FieldMutation object of the builder.
func (_u *FieldUpdateOne) Mutation() *FieldMutation {
	return _u.mutation
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *FieldUpdateOne) ClearProjects() *FieldUpdateOne {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *FieldUpdateOne) RemoveProjectIDs(ids ...string) *FieldUpdateOne {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *FieldUpdateOne) RemoveProjects(v ...*Project) *FieldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearReservations clears all "reservations" edges to the Reservation entity.
func (_u *FieldUpdateOne) ClearReservations() *FieldUpdateOne {
	_u.mutation.ClearReservations()
	return _u
}

// RemoveReservationIDs removes the "reservations" edge to Reservation entities by IDs.
func (_u *FieldUpdateOne) RemoveReservationIDs(ids ...string) *FieldUpdateOne {
	_u.mutation.RemoveReservationIDs(ids...)
	return _u
}

// RemoveReservations removes "reservations" edges to Reservation entities.
func (_u *FieldUpdateOne) RemoveReservations(v ...*Reservation) *FieldUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReservationIDs(ids...)
}

// Where appends a list predicates to the FieldUpdate builder.
func (_u *FieldUpdateOne) Where(ps ...predicate.Field) *FieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldUpdateOne) Select(field string, fields ...string) *FieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Field entity.
func (_u *FieldUpdateOne) Save(ctx context.Context) (*Field, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldUpdateOne) SaveX(ctx context.Context) *Field {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entfield.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := entfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Field.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCapacity(); ok {
		if err := entfield.TotalCapacityValidator(v); err != nil {
			return &ValidationError{Name: "total_capacity", err: fmt.Errorf(`ent: validator failed for field "Field.total_capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FreeCapacity(); ok {
		if err := entfield.FreeCapacityValidator(v); err != nil {
			return &ValidationError{Name: "free_capacity", err: fmt.Errorf(`ent: validator failed for field "Field.free_capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := entfield.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Field.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldUpdateOne) sqlSave(ctx context.Context) (_node *Field, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entfield.Table, entfield.Columns, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Field.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entfield.FieldID)
		for _, f := range fields {
			if !entfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entfield.FieldID {
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
		_spec.SetField(entfield.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(entfield.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(entfield.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.TotalCapacity(); ok {
		_spec.SetField(entfield.FieldTotalCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCapacity(); ok {
		_spec.AddField(entfield.FieldTotalCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FreeCapacity(); ok {
		_spec.SetField(entfield.FieldFreeCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreeCapacity(); ok {
		_spec.AddField(entfield.FieldFreeCapacity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(entfield.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SoilType(); ok {
		_spec.SetField(entfield.FieldSoilType, field.TypeString, value)
	}
	if _u.mutation.SoilTypeCleared() {
		_spec.ClearField(entfield.FieldSoilType, field.TypeString)
	}
	if _u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ProjectsTable,
			Columns: []string{entfield.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ProjectsTable,
			Columns: []string{entfield.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ProjectsTable,
			Columns: []string{entfield.ProjectsColumn},
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
	if _u.mutation.ReservationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ReservationsTable,
			Columns: []string{entfield.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReservationsIDs(); len(nodes) > 0 && !_u.mutation.ReservationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ReservationsTable,
			Columns: []string{entfield.ReservationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReservationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entfield.ReservationsTable,
			Columns: []string{entfield.ReservationsColumn},
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
	_node = &Field{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
