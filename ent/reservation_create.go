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
	"github.com/marwaELABIDI/ferme-platform/ent/user"
)

// ReservationCreate is the builder for creating a Reservation entity.
type ReservationCreate struct {
	config
	mutation *ReservationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReservationCreate) SetCreatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableCreatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReservationCreate) SetUpdatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableUpdatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFieldID sets the "field_id" field.
func (_c *ReservationCreate) SetFieldID(v string) *ReservationCreate {
	_c.mutation.SetFieldID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ReservationCreate) SetClientID(v string) *ReservationCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetSupervisorID sets the "supervisor_id" field.
func (_c *ReservationCreate) SetSupervisorID(v string) *ReservationCreate {
	_c.mutation.SetSupervisorID(v)
	return _c
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableSupervisorID(v *string) *ReservationCreate {
	if v != nil {
		_c.SetSupervisorID(*v)
	}
	return _c
}

// SetSurfaceRequested sets the "surface_requested" field.
func (_c *ReservationCreate) SetSurfaceRequested(v float64) *ReservationCreate {
	_c.mutation.SetSurfaceRequested(v)
	return _c
}

// SetStartRequested sets the "start_requested" field.
func (_c *ReservationCreate) SetStartRequested(v time.Time) *ReservationCreate {
	_c.mutation.SetStartRequested(v)
	return _c
}

// SetEndRequested sets the "end_requested" field.
func (_c *ReservationCreate) SetEndRequested(v time.Time) *ReservationCreate {
	_c.mutation.SetEndRequested(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReservationCreate) SetStatus(v reservation.Status) *ReservationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableStatus(v *reservation.Status) *ReservationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDecisionDate sets the "decision_date" field.
func (_c *ReservationCreate) SetDecisionDate(v time.Time) *ReservationCreate {
	_c.mutation.SetDecisionDate(v)
	return _c
}

// SetNillableDecisionDate sets the "decision_date" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableDecisionDate(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetDecisionDate(*v)
	}
	return _c
}

// SetMotivation sets the "motivation" field.
func (_c *ReservationCreate) SetMotivation(v string) *ReservationCreate {
	_c.mutation.SetMotivation(v)
	return _c
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableMotivation(v *string) *ReservationCreate {
	if v != nil {
		_c.SetMotivation(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReservationCreate) SetID(v string) *ReservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetField sets the "field" edge to the Field entity.
func (_c *ReservationCreate) SetField(v *Field) *ReservationCreate {
	return _c.SetFieldID(v.ID)
}

// SetClient sets the "client" edge to the User entity.
func (_c *ReservationCreate) SetClient(v *User) *ReservationCreate {
	return _c.SetClientID(v.ID)
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *ReservationCreate) SetProjectID(id string) *ReservationCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetNillableProjectID sets the "project" edge to the Project entity by ID if the given value is not nil.
func (_c *ReservationCreate) SetNillableProjectID(id *string) *ReservationCreate {
	if id != nil {
		_c = _c.SetProjectID(*id)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ReservationCreate) SetProject(v *Project) *ReservationCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ReservationMutation object of the builder.
func (_c *ReservationCreate) Mutation() *ReservationMutation {
	return _c.mutation
}

// Save creates the Reservation in the database.
func (_c *ReservationCreate) Save(ctx context.Context) (*Reservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReservationCreate) SaveX(ctx context.Context) *Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReservationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reservation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reservation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reservation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReservationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reservation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Reservation.updated_at"`)}
	}
	if _, ok := _c.mutation.FieldID(); !ok {
		return &ValidationError{Name: "field_id", err: errors.New(`ent: missing required field "Reservation.field_id"`)}
	}
	if v, ok := _c.mutation.FieldID(); ok {
		if err := reservation.FieldIDValidator(v); err != nil {
			return &ValidationError{Name: "field_id", err: fmt.Errorf(`ent: validator failed for field "Reservation.field_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "Reservation.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := reservation.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "Reservation.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SurfaceRequested(); !ok {
		return &ValidationError{Name: "surface_requested", err: errors.New(`ent: missing required field "Reservation.surface_requested"`)}
	}
	if v, ok := _c.mutation.SurfaceRequested(); ok {
		if err := reservation.SurfaceRequestedValidator(v); err != nil {
			return &ValidationError{Name: "surface_requested", err: fmt.Errorf(`ent: validator failed for field "Reservation.surface_requested": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartRequested(); !ok {
		return &ValidationError{Name: "start_requested", err: errors.New(`ent: missing required field "Reservation.start_requested"`)}
	}
	if _, ok := _c.mutation.EndRequested(); !ok {
		return &ValidationError{Name: "end_requested", err: errors.New(`ent: missing required field "Reservation.end_requested"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Reservation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Motivation(); ok {
		if err := reservation.MotivationValidator(v); err != nil {
			return &ValidationError{Name: "motivation", err: fmt.Errorf(`ent: validator failed for field "Reservation.motivation": %w`, err)}
		}
	}
	if len(_c.mutation.FieldIDs()) == 0 {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required edge "Reservation.field"`)}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`ent: missing required edge "Reservation.client"`)}
	}
	return nil
}

func (_c *ReservationCreate) sqlSave(ctx context.Context) (*Reservation, error) {
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
			return nil, fmt.Errorf("unexpected Reservation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReservationCreate) createSpec() (*Reservation, *sqlgraph.CreateSpec) {
	var (
		_node = &Reservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reservation.Table, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reservation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SupervisorID(); ok {
		_spec.SetField(reservation.FieldSupervisorID, field.TypeString, value)
		_node.SupervisorID = value
	}
	if value, ok := _c.mutation.SurfaceRequested(); ok {
		_spec.SetField(reservation.FieldSurfaceRequested, field.TypeFloat64, value)
		_node.SurfaceRequested = value
	}
	if value, ok := _c.mutation.StartRequested(); ok {
		_spec.SetField(reservation.FieldStartRequested, field.TypeTime, value)
		_node.StartRequested = value
	}
	if value, ok := _c.mutation.EndRequested(); ok {
		_spec.SetField(reservation.FieldEndRequested, field.TypeTime, value)
		_node.EndRequested = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DecisionDate(); ok {
		_spec.SetField(reservation.FieldDecisionDate, field.TypeTime, value)
		_node.DecisionDate = &value
	}
	if value, ok := _c.mutation.Motivation(); ok {
		_spec.SetField(reservation.FieldMotivation, field.TypeString, value)
		_node.Motivation = value
	}
	if nodes := _c.mutation.FieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reservation.FieldTable,
			Columns: []string{reservation.FieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FieldID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reservation.ClientTable,
			Columns: []string{reservation.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReservationCreateBulk is the builder for creating many Reservation entities in bulk.
type ReservationCreateBulk struct {
	config
	err      error
	builders []*ReservationCreate
}

// Save creates the Reservation entities in the database.
func (_c *ReservationCreateBulk) Save(ctx context.Context) ([]*Reservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReservationMutation)
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
func (_c *ReservationCreateBulk) SaveX(ctx context.Context) []*Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
