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
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/tableraw"
	"github.com/google/uuid"
)

// TableRawCreate is the builder for creating a TableRaw entity.
type TableRawCreate struct {
	config
	mutation *TableRawMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetItemID sets the "item_id" field.
func (_c *TableRawCreate) SetItemID(v string) *TableRawCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetRecordID sets the "record_id" field.
func (_c *TableRawCreate) SetRecordID(v string) *TableRawCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *TableRawCreate) SetPath(v string) *TableRawCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *TableRawCreate) SetFormat(v string) *TableRawCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TableRawCreate) SetID(v uuid.UUID) *TableRawCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TableRawCreate) SetNillableID(v *uuid.UUID) *TableRawCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetItem sets the "item" edge to the Item entity.
func (_c *TableRawCreate) SetItem(v *Item) *TableRawCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the TableRawMutation object of the builder.
func (_c *TableRawCreate) Mutation() *TableRawMutation {
	return _c.mutation
}

// Save creates the TableRaw in the database.
func (_c *TableRawCreate) Save(ctx context.Context) (*TableRaw, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TableRawCreate) SaveX(ctx context.Context) *TableRaw {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableRawCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableRawCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TableRawCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := tableraw.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TableRawCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "TableRaw.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := tableraw.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "TableRaw.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "TableRaw.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := tableraw.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "TableRaw.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "TableRaw.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := tableraw.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "TableRaw.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "TableRaw.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := tableraw.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "TableRaw.format": %w`, err)}
		}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "TableRaw.item"`)}
	}
	return nil
}

func (_c *TableRawCreate) sqlSave(ctx context.Context) (*TableRaw, error) {
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

func (_c *TableRawCreate) createSpec() (*TableRaw, *sqlgraph.CreateSpec) {
	var (
		_node = &TableRaw{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tableraw.Table, sqlgraph.NewFieldSpec(tableraw.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(tableraw.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(tableraw.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(tableraw.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tableraw.ItemTable,
			Columns: []string{tableraw.ItemColumn},
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
//	client.TableRaw.Create().
//		SetItemID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TableRawUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *TableRawCreate) OnConflict(opts ...sql.ConflictOption) *TableRawUpsertOne {
	_c.conflict = opts
	return &TableRawUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TableRaw.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TableRawCreate) OnConflictColumns(columns ...string) *TableRawUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TableRawUpsertOne{
		create: _c,
	}
}

type (
	// TableRawUpsertOne is the builder for "upsert"-ing
	//  one TableRaw node.
	TableRawUpsertOne struct {
		create *TableRawCreate
	}

	// TableRawUpsert is the "OnConflict" setter.
	TableRawUpsert struct {
		*sql.UpdateSet
	}
)

// SetItemID sets the "item_id" field.
func (u *TableRawUpsert) SetItemID(v string) *TableRawUpsert {
	u.Set(tableraw.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *TableRawUpsert) UpdateItemID() *TableRawUpsert {
	u.SetExcluded(tableraw.FieldItemID)
	return u
}

// SetRecordID sets the "record_id" field.
func (u *TableRawUpsert) SetRecordID(v string) *TableRawUpsert {
	u.Set(tableraw.FieldRecordID, v)
	return u
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *TableRawUpsert) UpdateRecordID() *TableRawUpsert {
	u.SetExcluded(tableraw.FieldRecordID)
	return u
}

// SetPath sets the "path" field.
func (u *TableRawUpsert) SetPath(v string) *TableRawUpsert {
	u.Set(tableraw.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *TableRawUpsert) UpdatePath() *TableRawUpsert {
	u.SetExcluded(tableraw.FieldPath)
	return u
}

// SetFormat sets the "format" field.
func (u *TableRawUpsert) SetFormat(v string) *TableRawUpsert {
	u.Set(tableraw.FieldFormat, v)
	return u
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *TableRawUpsert) UpdateFormat() *TableRawUpsert {
	u.SetExcluded(tableraw.FieldFormat)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TableRaw.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tableraw.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TableRawUpsertOne) UpdateNewValues() *TableRawUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tableraw.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TableRaw.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TableRawUpsertOne) Ignore() *TableRawUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TableRawUpsertOne) DoNothing() *TableRawUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TableRawCreate.OnConflict
// documentation for more info.
func (u *TableRawUpsertOne) Update(set func(*TableRawUpsert)) *TableRawUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TableRawUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *TableRawUpsertOne) SetItemID(v string) *TableRawUpsertOne {
	return u.Update(func(s *TableRawUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *TableRawUpsertOne) UpdateItemID() *TableRawUpsertOne {
	return u.Update(func(s *TableRawUpsert) {
		s.UpdateItemID()
	})
}

// SetRecordID sets the "record_id" field.
func (u *TableRawUpsertOne) SetRecordID(v string) *TableRawUpsertOne {
	return u.Update(func(s *TableRawUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *TableRawUpsertOne) UpdateRecordID() *TableRawUpsertOne {
	return u.Update(func(s *TableRawUpsert) {
		s.UpdateRecordID()
	})
}

// SetPath sets the "path" field.
func (u *TableRawUpsertOne) SetPath(v string) *TableRawUpsertOne {
	return u.Update(func(s *TableRawUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *TableRawUpsertOne) UpdatePath() *TableRawUpsertOne {
	return u.Update(func(s *TableRawUpsert) {
		s.UpdatePath()
	})
}

// SetFormat sets the "format" field.
func (u *TableRawUpsertOne) SetFormat(v string) *TableRawUpsertOne {
	return u.Update(func(s *TableRawUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *TableRawUpsertOne) UpdateFormat() *TableRawUpsertOne {
	return u.Update(func(s *TableRawUpsert) {
		s.UpdateFormat()
	})
}

// Exec executes the query.
func (u *TableRawUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TableRawCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TableRawUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TableRawUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TableRawUpsertOne.ID is not supported by MySQL driver. Use TableRawUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TableRawUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TableRawCreateBulk is the builder for creating many TableRaw entities in bulk.
type TableRawCreateBulk struct {
	config
	err      error
	builders []*TableRawCreate
	conflict []sql.ConflictOption
}

// Save creates the TableRaw entities in the database.
func (_c *TableRawCreateBulk) Save(ctx context.Context) ([]*TableRaw, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TableRaw, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TableRawMutation)
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
func (_c *TableRawCreateBulk) SaveX(ctx context.Context) []*TableRaw {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TableRawCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TableRawCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TableRaw.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TableRawUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *TableRawCreateBulk) OnConflict(opts ...sql.ConflictOption) *TableRawUpsertBulk {
	_c.conflict = opts
	return &TableRawUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TableRaw.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TableRawCreateBulk) OnConflictColumns(columns ...string) *TableRawUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TableRawUpsertBulk{
		create: _c,
	}
}

// TableRawUpsertBulk is the builder for "upsert"-ing
// a bulk of TableRaw nodes.
type TableRawUpsertBulk struct {
	create *TableRawCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TableRaw.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tableraw.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TableRawUpsertBulk) UpdateNewValues() *TableRawUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tableraw.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TableRaw.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TableRawUpsertBulk) Ignore() *TableRawUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TableRawUpsertBulk) DoNothing() *TableRawUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TableRawCreateBulk.OnConflict
// documentation for more info.
func (u *TableRawUpsertBulk) Update(set func(*TableRawUpsert)) *TableRawUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TableRawUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *TableRawUpsertBulk) SetItemID(v string) *TableRawUpsertBulk {
	return u.Update(func(s *TableRawUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *TableRawUpsertBulk) UpdateItemID() *TableRawUpsertBulk {
	return u.Update(func(s *TableRawUpsert) {
		s.UpdateItemID()
	})
}

// SetRecordID sets the "record_id" field.
func (u *TableRawUpsertBulk) SetRecordID(v string) *TableRawUpsertBulk {
	return u.Update(func(s *TableRawUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *TableRawUpsertBulk) UpdateRecordID() *TableRawUpsertBulk {
	return u.Update(func(s *TableRawUpsert) {
		s.UpdateRecordID()
	})
}

// SetPath sets the "path" field.
func (u *TableRawUpsertBulk) SetPath(v string) *TableRawUpsertBulk {
	return u.Update(func(s *TableRawUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *TableRawUpsertBulk) UpdatePath() *TableRawUpsertBulk {
	return u.Update(func(s *TableRawUpsert) {
		s.UpdatePath()
	})
}

// SetFormat sets the "format" field.
func (u *TableRawUpsertBulk) SetFormat(v string) *TableRawUpsertBulk {
	return u.Update(func(s *TableRawUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *TableRawUpsertBulk) UpdateFormat() *TableRawUpsertBulk {
	return u.Update(func(s *TableRawUpsert) {
		s.UpdateFormat()
	})
}

// Exec executes the query.
func (u *TableRawUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TableRawCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TableRawCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TableRawUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
