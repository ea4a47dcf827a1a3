// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/unit"
	"github.com/google/uuid"
)

// UnitCreate is the builder for creating a Unit entity.
type UnitCreate struct {
	config
	mutation *UnitMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetItemID sets the "item_id" field.
func (_c *UnitCreate) SetItemID(v string) *UnitCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetUnitType sets the "unit_type" field.
func (_c *UnitCreate) SetUnitType(v string) *UnitCreate {
	_c.mutation.SetUnitType(v)
	return _c
}

// SetDepositKrw sets the "deposit_krw" field.
func (_c *UnitCreate) SetDepositKrw(v int64) *UnitCreate {
	_c.mutation.SetDepositKrw(v)
	return _c
}

// SetNillableDepositKrw sets the "deposit_krw" field if the given value is not nil.
func (_c *UnitCreate) SetNillableDepositKrw(v *int64) *UnitCreate {
	if v != nil {
		_c.SetDepositKrw(*v)
	}
	return _c
}

// SetRentKrw sets the "rent_krw" field.
func (_c *UnitCreate) SetRentKrw(v int64) *UnitCreate {
	_c.mutation.SetRentKrw(v)
	return _c
}

// SetNillableRentKrw sets the "rent_krw" field if the given value is not nil.
func (_c *UnitCreate) SetNillableRentKrw(v *int64) *UnitCreate {
	if v != nil {
		_c.SetRentKrw(*v)
	}
	return _c
}

// SetAreaM2 sets the "area_m2" field.
func (_c *UnitCreate) SetAreaM2(v float64) *UnitCreate {
	_c.mutation.SetAreaM2(v)
	return _c
}

// SetNillableAreaM2 sets the "area_m2" field if the given value is not nil.
func (_c *UnitCreate) SetNillableAreaM2(v *float64) *UnitCreate {
	if v != nil {
		_c.SetAreaM2(*v)
	}
	return _c
}

// SetSupply sets the "supply" field.
func (_c *UnitCreate) SetSupply(v int) *UnitCreate {
	_c.mutation.SetSupply(v)
	return _c
}

// SetNillableSupply sets the "supply" field if the given value is not nil.
func (_c *UnitCreate) SetNillableSupply(v *int) *UnitCreate {
	if v != nil {
		_c.SetSupply(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnitCreate) SetID(v uuid.UUID) *UnitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UnitCreate) SetNillableID(v *uuid.UUID) *UnitCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetItem sets the "item" edge to the Item entity.
func (_c *UnitCreate) SetItem(v *Item) *UnitCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the UnitMutation object of the builder.
func (_c *UnitCreate) Mutation() *UnitMutation {
	return _c.mutation
}

// Save creates the Unit in the database.
func (_c *UnitCreate) Save(ctx context.Context) (*Unit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnitCreate) SaveX(ctx context.Context) *Unit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnitCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := unit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnitCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Unit.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := unit.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Unit.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitType(); !ok {
		return &ValidationError{Name: "unit_type", err: errors.New(`ent: missing required field "Unit.unit_type"`)}
	}
	if v, ok := _c.mutation.UnitType(); ok {
		if err := unit.UnitTypeValidator(v); err != nil {
			return &ValidationError{Name: "unit_type", err: fmt.Errorf(`ent: validator failed for field "Unit.unit_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Supply(); ok {
		if err := unit.SupplyValidator(v); err != nil {
			return &ValidationError{Name: "supply", err: fmt.Errorf(`ent: validator failed for field "Unit.supply": %w`, err)}
		}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "Unit.item"`)}
	}
	return nil
}

func (_c *UnitCreate) sqlSave(ctx context.Context) (*Unit, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UnitCreate) createSpec() (*Unit, *sqlgraph.CreateSpec) {
	var (
		_node = &Unit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unit.Table, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UnitType(); ok {
		_spec.SetField(unit.FieldUnitType, field.TypeString, value)
		_node.UnitType = value
	}
	if value, ok := _c.mutation.DepositKrw(); ok {
		_spec.SetField(unit.FieldDepositKrw, field.TypeInt64, value)
		_node.DepositKrw = &value
	}
	if value, ok := _c.mutation.RentKrw(); ok {
		_spec.SetField(unit.FieldRentKrw, field.TypeInt64, value)
		_node.RentKrw = &value
	}
	if value, ok := _c.mutation.AreaM2(); ok {
		_spec.SetField(unit.FieldAreaM2, field.TypeFloat64, value)
		_node.AreaM2 = &value
	}
	if value, ok := _c.mutation.Supply(); ok {
		_spec.SetField(unit.FieldSupply, field.TypeInt, value)
		_node.Supply = &value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   unit.ItemTable,
			Columns: []string{unit.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(item.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Unit.Create().
//		SetItemID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnitUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *UnitCreate) OnConflict(opts ...sql.ConflictOption) *UnitUpsertOne {
	_c.conflict = opts
	return &UnitUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnitCreate) OnConflictColumns(columns ...string) *UnitUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnitUpsertOne{
		create: _c,
	}
}

type (
	// UnitUpsertOne is the builder for "upsert"-ing
	//  one Unit node.
	UnitUpsertOne struct {
		create *UnitCreate
	}

	// UnitUpsert is the "OnConflict" setter.
	UnitUpsert struct {
		*sql.UpdateSet
	}
)

// SetItemID sets the "item_id" field.
func (u *UnitUpsert) SetItemID(v string) *UnitUpsert {
	u.Set(unit.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *UnitUpsert) UpdateItemID() *UnitUpsert {
	u.SetExcluded(unit.FieldItemID)
	return u
}

// SetUnitType sets the "unit_type" field.
func (u *UnitUpsert) SetUnitType(v string) *UnitUpsert {
	u.Set(unit.FieldUnitType, v)
	return u
}

// UpdateUnitType sets the "unit_type" field to the value that was provided on create.
func (u *UnitUpsert) UpdateUnitType() *UnitUpsert {
	u.SetExcluded(unit.FieldUnitType)
	return u
}

// SetDepositKrw sets the "deposit_krw" field.
func (u *UnitUpsert) SetDepositKrw(v int64) *UnitUpsert {
	u.Set(unit.FieldDepositKrw, v)
	return u
}

// UpdateDepositKrw sets the "deposit_krw" field to the value that was provided on create.
func (u *UnitUpsert) UpdateDepositKrw() *UnitUpsert {
	u.SetExcluded(unit.FieldDepositKrw)
	return u
}

// AddDepositKrw adds v to the "deposit_krw" field.
func (u *UnitUpsert) AddDepositKrw(v int64) *UnitUpsert {
	u.Add(unit.FieldDepositKrw, v)
	return u
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (u *UnitUpsert) ClearDepositKrw() *UnitUpsert {
	u.SetNull(unit.FieldDepositKrw)
	return u
}

// SetRentKrw sets the "rent_krw" field.
func (u *UnitUpsert) SetRentKrw(v int64) *UnitUpsert {
	u.Set(unit.FieldRentKrw, v)
	return u
}

// UpdateRentKrw sets the "rent_krw" field to the value that was provided on create.
func (u *UnitUpsert) UpdateRentKrw() *UnitUpsert {
	u.SetExcluded(unit.FieldRentKrw)
	return u
}

// AddRentKrw adds v to the "rent_krw" field.
func (u *UnitUpsert) AddRentKrw(v int64) *UnitUpsert {
	u.Add(unit.FieldRentKrw, v)
	return u
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (u *UnitUpsert) ClearRentKrw() *UnitUpsert {
	u.SetNull(unit.FieldRentKrw)
	return u
}

// SetAreaM2 sets the "area_m2" field.
func (u *UnitUpsert) SetAreaM2(v float64) *UnitUpsert {
	u.Set(unit.FieldAreaM2, v)
	return u
}

// UpdateAreaM2 sets the "area_m2" field to the value that was provided on create.
func (u *UnitUpsert) UpdateAreaM2() *UnitUpsert {
	u.SetExcluded(unit.FieldAreaM2)
	return u
}

// AddAreaM2 adds v to the "area_m2" field.
func (u *UnitUpsert) AddAreaM2(v float64) *UnitUpsert {
	u.Add(unit.FieldAreaM2, v)
	return u
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (u *UnitUpsert) ClearAreaM2() *UnitUpsert {
	u.SetNull(unit.FieldAreaM2)
	return u
}

// SetSupply sets the "supply" field.
func (u *UnitUpsert) SetSupply(v int) *UnitUpsert {
	u.Set(unit.FieldSupply, v)
	return u
}

// UpdateSupply sets the "supply" field to the value that was provided on create.
func (u *UnitUpsert) UpdateSupply() *UnitUpsert {
	u.SetExcluded(unit.FieldSupply)
	return u
}

// AddSupply adds v to the "supply" field.
func (u *UnitUpsert) AddSupply(v int) *UnitUpsert {
	u.Add(unit.FieldSupply, v)
	return u
}

// ClearSupply clears the value of the "supply" field.
func (u *UnitUpsert) ClearSupply() *UnitUpsert {
	u.SetNull(unit.FieldSupply)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnitUpsertOne) UpdateNewValues() *UnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(unit.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Unit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UnitUpsertOne) Ignore() *UnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnitUpsertOne) DoNothing() *UnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnitCreate.OnConflict
// documentation for more info.
func (u *UnitUpsertOne) Update(set func(*UnitUpsert)) *UnitUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnitUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *UnitUpsertOne) SetItemID(v string) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateItemID() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateItemID()
	})
}

// SetUnitType sets the "unit_type" field.
func (u *UnitUpsertOne) SetUnitType(v string) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetUnitType(v)
	})
}

// UpdateUnitType sets the "unit_type" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateUnitType() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateUnitType()
	})
}

// SetDepositKrw sets the "deposit_krw" field.
func (u *UnitUpsertOne) SetDepositKrw(v int64) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetDepositKrw(v)
	})
}

// AddDepositKrw adds v to the "deposit_krw" field.
func (u *UnitUpsertOne) AddDepositKrw(v int64) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.AddDepositKrw(v)
	})
}

// UpdateDepositKrw sets the "deposit_krw" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateDepositKrw() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateDepositKrw()
	})
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (u *UnitUpsertOne) ClearDepositKrw() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.ClearDepositKrw()
	})
}

// SetRentKrw sets the "rent_krw" field.
func (u *UnitUpsertOne) SetRentKrw(v int64) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetRentKrw(v)
	})
}

// AddRentKrw adds v to the "rent_krw" field.
func (u *UnitUpsertOne) AddRentKrw(v int64) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.AddRentKrw(v)
	})
}

// UpdateRentKrw sets the "rent_krw" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateRentKrw() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateRentKrw()
	})
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (u *UnitUpsertOne) ClearRentKrw() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.ClearRentKrw()
	})
}

// SetAreaM2 sets the "area_m2" field.
func (u *UnitUpsertOne) SetAreaM2(v float64) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetAreaM2(v)
	})
}

// AddAreaM2 adds v to the "area_m2" field.
func (u *UnitUpsertOne) AddAreaM2(v float64) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.AddAreaM2(v)
	})
}

// UpdateAreaM2 sets the "area_m2" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateAreaM2() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateAreaM2()
	})
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (u *UnitUpsertOne) ClearAreaM2() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.ClearAreaM2()
	})
}

// SetSupply sets the "supply" field.
func (u *UnitUpsertOne) SetSupply(v int) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.SetSupply(v)
	})
}

// AddSupply adds v to the "supply" field.
func (u *UnitUpsertOne) AddSupply(v int) *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.AddSupply(v)
	})
}

// UpdateSupply sets the "supply" field to the value that was provided on create.
func (u *UnitUpsertOne) UpdateSupply() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateSupply()
	})
}

// ClearSupply clears the value of the "supply" field.
func (u *UnitUpsertOne) ClearSupply() *UnitUpsertOne {
	return u.Update(func(s *UnitUpsert) {
		s.ClearSupply()
	})
}

// Exec executes the query.
func (u *UnitUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnitCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnitUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UnitUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UnitUpsertOne.ID is not supported by MySQL driver. Use UnitUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UnitUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UnitCreateBulk is the builder for creating many Unit entities in bulk.
type UnitCreateBulk struct {
	config
	err      error
	builders []*UnitCreate
	conflict []sql.ConflictOption
}

// Save creates the Unit entities in the database.
func (_c *UnitCreateBulk) Save(ctx context.Context) ([]*Unit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Unit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *UnitCreateBulk) SaveX(ctx context.Context) []*Unit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Unit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnitUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *UnitCreateBulk) OnConflict(opts ...sql.ConflictOption) *UnitUpsertBulk {
	_c.conflict = opts
	return &UnitUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnitCreateBulk) OnConflictColumns(columns ...string) *UnitUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnitUpsertBulk{
		create: _c,
	}
}

// UnitUpsertBulk is the builder for "upsert"-ing
// a bulk of Unit nodes.
type UnitUpsertBulk struct {
	create *UnitCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnitUpsertBulk) UpdateNewValues() *UnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(unit.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Unit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UnitUpsertBulk) Ignore() *UnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnitUpsertBulk) DoNothing() *UnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnitCreateBulk.OnConflict
// documentation for more info.
func (u *UnitUpsertBulk) Update(set func(*UnitUpsert)) *UnitUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnitUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *UnitUpsertBulk) SetItemID(v string) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateItemID() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateItemID()
	})
}

// SetUnitType sets the "unit_type" field.
func (u *UnitUpsertBulk) SetUnitType(v string) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetUnitType(v)
	})
}

// UpdateUnitType sets the "unit_type" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateUnitType() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateUnitType()
	})
}

// SetDepositKrw sets the "deposit_krw" field.
func (u *UnitUpsertBulk) SetDepositKrw(v int64) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetDepositKrw(v)
	})
}

// AddDepositKrw adds v to the "deposit_krw" field.
func (u *UnitUpsertBulk) AddDepositKrw(v int64) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.AddDepositKrw(v)
	})
}

// UpdateDepositKrw sets the "deposit_krw" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateDepositKrw() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateDepositKrw()
	})
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (u *UnitUpsertBulk) ClearDepositKrw() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.ClearDepositKrw()
	})
}

// SetRentKrw sets the "rent_krw" field.
func (u *UnitUpsertBulk) SetRentKrw(v int64) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetRentKrw(v)
	})
}

// AddRentKrw adds v to the "rent_krw" field.
func (u *UnitUpsertBulk) AddRentKrw(v int64) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.AddRentKrw(v)
	})
}

// UpdateRentKrw sets the "rent_krw" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateRentKrw() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateRentKrw()
	})
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (u *UnitUpsertBulk) ClearRentKrw() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.ClearRentKrw()
	})
}

// SetAreaM2 sets the "area_m2" field.
func (u *UnitUpsertBulk) SetAreaM2(v float64) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetAreaM2(v)
	})
}

// AddAreaM2 adds v to the "area_m2" field.
func (u *UnitUpsertBulk) AddAreaM2(v float64) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.AddAreaM2(v)
	})
}

// UpdateAreaM2 sets the "area_m2" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateAreaM2() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateAreaM2()
	})
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (u *UnitUpsertBulk) ClearAreaM2() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.ClearAreaM2()
	})
}

// SetSupply sets the "supply" field.
func (u *UnitUpsertBulk) SetSupply(v int) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.SetSupply(v)
	})
}

// AddSupply adds v to the "supply" field.
func (u *UnitUpsertBulk) AddSupply(v int) *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.AddSupply(v)
	})
}

// UpdateSupply sets the "supply" field to the value that was provided on create.
func (u *UnitUpsertBulk) UpdateSupply() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.UpdateSupply()
	})
}

// ClearSupply clears the value of the "supply" field.
func (u *UnitUpsertBulk) ClearSupply() *UnitUpsertBulk {
	return u.Update(func(s *UnitUpsert) {
		s.ClearSupply()
	})
}

// Exec executes the query.
func (u *UnitUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UnitCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UnitCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnitUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
