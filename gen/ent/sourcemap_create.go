// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/sourcemap"
	"github.com/google/uuid"
)

// SourceMapCreate is the builder for creating a SourceMap entity.
type SourceMapCreate struct {
	config
	mutation *SourceMapMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetItemID sets the "item_id" field.
func (_c *SourceMapCreate) SetItemID(v string) *SourceMapCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetRecordID sets the "record_id" field.
func (_c *SourceMapCreate) SetRecordID(v string) *SourceMapCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *SourceMapCreate) SetPlatform(v string) *SourceMapCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetCrawledAt sets the "crawled_at" field.
func (_c *SourceMapCreate) SetCrawledAt(v time.Time) *SourceMapCreate {
	_c.mutation.SetCrawledAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SourceMapCreate) SetID(v uuid.UUID) *SourceMapCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SourceMapCreate) SetNillableID(v *uuid.UUID) *SourceMapCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetItem sets the "item" edge to the Item entity.
func (_c *SourceMapCreate) SetItem(v *Item) *SourceMapCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the SourceMapMutation object of the builder.
func (_c *SourceMapCreate) Mutation() *SourceMapMutation {
	return _c.mutation
}

// Save creates the SourceMap in the database.
func (_c *SourceMapCreate) Save(ctx context.Context) (*SourceMap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceMapCreate) SaveX(ctx context.Context) *SourceMap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceMapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceMapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceMapCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := sourcemap.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceMapCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "SourceMap.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := sourcemap.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "SourceMap.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "SourceMap.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := sourcemap.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "SourceMap.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "SourceMap.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := sourcemap.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "SourceMap.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CrawledAt(); !ok {
		return &ValidationError{Name: "crawled_at", err: errors.New(`ent: missing required field "SourceMap.crawled_at"`)}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "SourceMap.item"`)}
	}
	return nil
}

func (_c *SourceMapCreate) sqlSave(ctx context.Context) (*SourceMap, error) {
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

func (_c *SourceMapCreate) createSpec() (*SourceMap, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceMap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcemap.Table, sqlgraph.NewFieldSpec(sourcemap.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(sourcemap.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(sourcemap.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.CrawledAt(); ok {
		_spec.SetField(sourcemap.FieldCrawledAt, field.TypeTime, value)
		_node.CrawledAt = value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourcemap.ItemTable,
			Columns: []string{sourcemap.ItemColumn},
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
//	client.SourceMap.Create().
//		SetItemID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceMapUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceMapCreate) OnConflict(opts ...sql.ConflictOption) *SourceMapUpsertOne {
	_c.conflict = opts
	return &SourceMapUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceMap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceMapCreate) OnConflictColumns(columns ...string) *SourceMapUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceMapUpsertOne{
		create: _c,
	}
}

type (
	// SourceMapUpsertOne is the builder for "upsert"-ing
	//  one SourceMap node.
	SourceMapUpsertOne struct {
		create *SourceMapCreate
	}

	// SourceMapUpsert is the "OnConflict" setter.
	SourceMapUpsert struct {
		*sql.UpdateSet
	}
)

// SetItemID sets the "item_id" field.
func (u *SourceMapUpsert) SetItemID(v string) *SourceMapUpsert {
	u.Set(sourcemap.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *SourceMapUpsert) UpdateItemID() *SourceMapUpsert {
	u.SetExcluded(sourcemap.FieldItemID)
	return u
}

// SetPlatform sets the "platform" field.
func (u *SourceMapUpsert) SetPlatform(v string) *SourceMapUpsert {
	u.Set(sourcemap.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *SourceMapUpsert) UpdatePlatform() *SourceMapUpsert {
	u.SetExcluded(sourcemap.FieldPlatform)
	return u
}

// SetCrawledAt sets the "crawled_at" field.
func (u *SourceMapUpsert) SetCrawledAt(v time.Time) *SourceMapUpsert {
	u.Set(sourcemap.FieldCrawledAt, v)
	return u
}

// UpdateCrawledAt sets the "crawled_at" field to the value that was provided on create.
func (u *SourceMapUpsert) UpdateCrawledAt() *SourceMapUpsert {
	u.SetExcluded(sourcemap.FieldCrawledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SourceMap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcemap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceMapUpsertOne) UpdateNewValues() *SourceMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sourcemap.FieldID)
		}
		if _, exists := u.create.mutation.RecordID(); exists {
			s.SetIgnore(sourcemap.FieldRecordID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceMap.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceMapUpsertOne) Ignore() *SourceMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceMapUpsertOne) DoNothing() *SourceMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceMapCreate.OnConflict
// documentation for more info.
func (u *SourceMapUpsertOne) Update(set func(*SourceMapUpsert)) *SourceMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceMapUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *SourceMapUpsertOne) SetItemID(v string) *SourceMapUpsertOne {
	return u.Update(func(s *SourceMapUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *SourceMapUpsertOne) UpdateItemID() *SourceMapUpsertOne {
	return u.Update(func(s *SourceMapUpsert) {
		s.UpdateItemID()
	})
}

// SetPlatform sets the "platform" field.
func (u *SourceMapUpsertOne) SetPlatform(v string) *SourceMapUpsertOne {
	return u.Update(func(s *SourceMapUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *SourceMapUpsertOne) UpdatePlatform() *SourceMapUpsertOne {
	return u.Update(func(s *SourceMapUpsert) {
		s.UpdatePlatform()
	})
}

// SetCrawledAt sets the "crawled_at" field.
func (u *SourceMapUpsertOne) SetCrawledAt(v time.Time) *SourceMapUpsertOne {
	return u.Update(func(s *SourceMapUpsert) {
		s.SetCrawledAt(v)
	})
}

// UpdateCrawledAt sets the "crawled_at" field to the value that was provided on create.
func (u *SourceMapUpsertOne) UpdateCrawledAt() *SourceMapUpsertOne {
	return u.Update(func(s *SourceMapUpsert) {
		s.UpdateCrawledAt()
	})
}

// Exec executes the query.
func (u *SourceMapUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceMapCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceMapUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceMapUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceMapUpsertOne.ID is not supported by MySQL driver. Use SourceMapUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceMapUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceMapCreateBulk is the builder for creating many SourceMap entities in bulk.
type SourceMapCreateBulk struct {
	config
	err      error
	builders []*SourceMapCreate
	conflict []sql.ConflictOption
}

// Save creates the SourceMap entities in the database.
func (_c *SourceMapCreateBulk) Save(ctx context.Context) ([]*SourceMap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceMap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceMapMutation)
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
func (_c *SourceMapCreateBulk) SaveX(ctx context.Context) []*SourceMap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceMapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceMapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceMap.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceMapUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceMapCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceMapUpsertBulk {
	_c.conflict = opts
	return &SourceMapUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceMap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceMapCreateBulk) OnConflictColumns(columns ...string) *SourceMapUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceMapUpsertBulk{
		create: _c,
	}
}

// SourceMapUpsertBulk is the builder for "upsert"-ing
// a bulk of SourceMap nodes.
type SourceMapUpsertBulk struct {
	create *SourceMapCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SourceMap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcemap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceMapUpsertBulk) UpdateNewValues() *SourceMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sourcemap.FieldID)
			}
			if _, exists := b.mutation.RecordID(); exists {
				s.SetIgnore(sourcemap.FieldRecordID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceMap.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceMapUpsertBulk) Ignore() *SourceMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceMapUpsertBulk) DoNothing() *SourceMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceMapCreateBulk.OnConflict
// documentation for more info.
func (u *SourceMapUpsertBulk) Update(set func(*SourceMapUpsert)) *SourceMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceMapUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *SourceMapUpsertBulk) SetItemID(v string) *SourceMapUpsertBulk {
	return u.Update(func(s *SourceMapUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *SourceMapUpsertBulk) UpdateItemID() *SourceMapUpsertBulk {
	return u.Update(func(s *SourceMapUpsert) {
		s.UpdateItemID()
	})
}

// SetPlatform sets the "platform" field.
func (u *SourceMapUpsertBulk) SetPlatform(v string) *SourceMapUpsertBulk {
	return u.Update(func(s *SourceMapUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *SourceMapUpsertBulk) UpdatePlatform() *SourceMapUpsertBulk {
	return u.Update(func(s *SourceMapUpsert) {
		s.UpdatePlatform()
	})
}

// SetCrawledAt sets the "crawled_at" field.
func (u *SourceMapUpsertBulk) SetCrawledAt(v time.Time) *SourceMapUpsertBulk {
	return u.Update(func(s *SourceMapUpsert) {
		s.SetCrawledAt(v)
	})
}

// UpdateCrawledAt sets the "crawled_at" field to the value that was provided on create.
func (u *SourceMapUpsertBulk) UpdateCrawledAt() *SourceMapUpsertBulk {
	return u.Update(func(s *SourceMapUpsert) {
		s.UpdateCrawledAt()
	})
}

// Exec executes the query.
func (u *SourceMapUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceMapCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceMapCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceMapUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
