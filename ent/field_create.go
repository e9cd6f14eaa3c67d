// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	"github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/ent/reservation"
)

// FieldCreate is the builder for creating a Field entity.
type FieldCreate struct {
	config
	mutation *FieldMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FieldCreate) SetCreatedAt(v time.Time) *FieldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FieldCreate) SetNillableCreatedAt(v *time.Time) *FieldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FieldCreate) SetUpdatedAt(v time.Time) *FieldCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FieldCreate) SetNillableUpdatedAt(v *time.Time) *FieldCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *FieldCreate) SetName(v string) *FieldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *FieldCreate) SetLocation(v string) *FieldCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *FieldCreate) SetNillableLocation(v *string) *FieldCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetTotalCapacity sets the "total_capacity" field.
func (_c *FieldCreate) SetTotalCapacity(v float64) *FieldCreate {
	_c.mutation.SetTotalCapacity(v)
	return _c
}

// SetFreeCapacity sets the "free_capacity" field.
func (_c *FieldCreate) SetFreeCapacity(v float64) *FieldCreate {
	_c.mutation.SetFreeCapacity(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FieldCreate) SetStatus(v entfield.Status) *FieldCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FieldCreate) SetNillableStatus(v *entfield.Status) *FieldCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSoilType sets the "soil_type" field.
func (_c *FieldCreate) SetSoilType(v string) *FieldCreate {
	_c.mutation.SetSoilType(v)
	return _c
}

// SetNillableSoilType sets the "soil_type" field if the given value is not nil.
func (_c *FieldCreate) SetNillableSoilType(v *string) *FieldCreate {
	if v != nil {
		_c.SetSoilType(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldCreate) SetID(v string) *FieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_c *FieldCreate) AddProjectIDs(ids ...string) *FieldCreate {
	_c.mutation.AddProjectIDs(ids...)
	return _c
}

// AddProjects adds the "projects" edges to the Project entity.
func (_c *FieldCreate) AddProjects(v ...*Project) *FieldCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProjectIDs(ids...)
}

// AddReservationIDs adds the "reservations" edge to the Reservation entity by IDs.
func (_c *FieldCreate) AddReservationIDs(ids ...string) *FieldCreate {
	_c.mutation.AddReservationIDs(ids...)
	return _c
}

// AddReservations adds the "reservations" edges to the Reservation entity.
func (_c *FieldCreate) AddReservations(v ...*Reservation) *FieldCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReservationIDs(ids...)
}

// Mutation returns the FieldMutation object of the builder.
func (_c *FieldCreate) Mutation() *FieldMutation {
	return _c.mutation
}

// Save creates the Field in the database.
func (_c *FieldCreate) Save(ctx context.Context) (*Field, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldCreate) SaveX(ctx context.Context) *Field {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entfield.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entfield.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := entfield.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Field.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Field.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Field.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := entfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Field.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCapacity(); !ok {
		return &ValidationError{Name: "total_capacity", err: errors.New(`ent: missing required field "Field.total_capacity"`)}
	}
	if v, ok := _c.mutation.TotalCapacity(); ok {
		if err := entfield.TotalCapacityValidator(v); err != nil {
			return &ValidationError{Name: "total_capacity", err: fmt.Errorf(`ent: validator failed for field "Field.total_capacity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FreeCapacity(); !ok {
		return &ValidationError{Name: "free_capacity", err: errors.New(`ent: missing required field "Field.free_capacity"`)}
	}
	if v, ok := _c.mutation.FreeCapacity(); ok {
		if err := entfield.FreeCapacityValidator(v); err != nil {
			return &ValidationError{Name: "free_capacity", err: fmt.Errorf(`ent: validator failed for field "Field.free_capacity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Field.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := entfield.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Field.status": %w`, err)}
		}
	}
	return nil
}

func (_c *FieldCreate) sqlSave(ctx context.Context) (*Field, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Field.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FieldCreate) createSpec() (*Field, *sqlgraph.CreateSpec) {
	var (
		_node = &Field{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entfield.Table, sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entfield.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entfield.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(entfield.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(entfield.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.TotalCapacity(); ok {
		_spec.SetField(entfield.FieldTotalCapacity, field.TypeFloat64, value)
		_node.TotalCapacity = value
	}
	if value, ok := _c.mutation.FreeCapacity(); ok {
		_spec.SetField(entfield.FieldFreeCapacity, field.TypeFloat64, value)
		_node.FreeCapacity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(entfield.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SoilType(); ok {
		_spec.SetField(entfield.FieldSoilType, field.TypeString, value)
		_node.SoilType = value
	}
	if nodes := _c.mutation.ProjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReservationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldCreateBulk is the builder for creating many Field entities in bulk.
type FieldCreateBulk struct {
	config
	err      error
	builders []*FieldCreate
}

// Save creates the Field entities in the database.
func (_c *FieldCreateBulk) Save(ctx context.Context) ([]*Field, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Field, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FieldCreateBulk) SaveX(ctx context.Context) []*Field {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
