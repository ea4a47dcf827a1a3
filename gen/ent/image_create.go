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
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/image"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/google/uuid"
)

// ImageCreate is the builder for creating a Image entity.
type ImageCreate struct {
	config
	mutation *ImageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetItemID sets the "item_id" field.
func (_c *ImageCreate) SetItemID(v string) *ImageCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetRecordID sets the "record_id" field.
func (_c *ImageCreate) SetRecordID(v string) *ImageCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *ImageCreate) SetPath(v string) *ImageCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ImageCreate) SetRole(v string) *ImageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ImageCreate) SetID(v uuid.UUID) *ImageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImageCreate) SetNillableID(v *uuid.UUID) *ImageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetItem sets the "item" edge to the Item entity.
func (_c *ImageCreate) SetItem(v *Item) *ImageCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the ImageMutation object of the builder.
func (_c *ImageCreate) Mutation() *ImageMutation {
	return _c.mutation
}

// Save creates the Image in the database.
func (_c *ImageCreate) Save(ctx context.Context) (*Image, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImageCreate) SaveX(ctx context.Context) *Image {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImageCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := image.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImageCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Image.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := image.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Image.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "Image.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := image.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Image.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "Image.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := image.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Image.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Image.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := image.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Image.role": %w`, err)}
		}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "Image.item"`)}
	}
	return nil
}

func (_c *ImageCreate) sqlSave(ctx context.Context) (*Image, error) {
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

func (_c *ImageCreate) createSpec() (*Image, *sqlgraph.CreateSpec) {
	var (
		_node = &Image{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(image.Table, sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(image.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(image.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(image.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   image.ItemTable,
			Columns: []string{image.ItemColumn},
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
//	client.Image.Create().
//		SetItemID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ImageUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *ImageCreate) OnConflict(opts ...sql.ConflictOption) *ImageUpsertOne {
	_c.conflict = opts
	return &ImageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Image.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ImageCreate) OnConflictColumns(columns ...string) *ImageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ImageUpsertOne{
		create: _c,
	}
}

type (
	// ImageUpsertOne is the builder for "upsert"-ing
	//  one Image node.
	ImageUpsertOne struct {
		create *ImageCreate
	}

	// ImageUpsert is the "OnConflict" setter.
	ImageUpsert struct {
		*sql.UpdateSet
	}
)

// SetItemID sets the "item_id" field.
func (u *ImageUpsert) SetItemID(v string) *ImageUpsert {
	u.Set(image.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ImageUpsert) UpdateItemID() *ImageUpsert {
	u.SetExcluded(image.FieldItemID)
	return u
}

// SetRecordID sets the "record_id" field.
func (u *ImageUpsert) SetRecordID(v string) *ImageUpsert {
	u.Set(image.FieldRecordID, v)
	return u
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *ImageUpsert) UpdateRecordID() *ImageUpsert {
	u.SetExcluded(image.FieldRecordID)
	return u
}

// SetPath sets the "path" field.
func (u *ImageUpsert) SetPath(v string) *ImageUpsert {
	u.Set(image.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *ImageUpsert) UpdatePath() *ImageUpsert {
	u.SetExcluded(image.FieldPath)
	return u
}

// SetRole sets the "role" field.
func (u *ImageUpsert) SetRole(v string) *ImageUpsert {
	u.Set(image.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ImageUpsert) UpdateRole() *ImageUpsert {
	u.SetExcluded(image.FieldRole)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Image.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(image.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ImageUpsertOne) UpdateNewValues() *ImageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(image.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Image.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ImageUpsertOne) Ignore() *ImageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ImageUpsertOne) DoNothing() *ImageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ImageCreate.OnConflict
// documentation for more info.
func (u *ImageUpsertOne) Update(set func(*ImageUpsert)) *ImageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ImageUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *ImageUpsertOne) SetItemID(v string) *ImageUpsertOne {
	return u.Update(func(s *ImageUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ImageUpsertOne) UpdateItemID() *ImageUpsertOne {
	return u.Update(func(s *ImageUpsert) {
		s.UpdateItemID()
	})
}

// SetRecordID sets the "record_id" field.
func (u *ImageUpsertOne) SetRecordID(v string) *ImageUpsertOne {
	return u.Update(func(s *ImageUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *ImageUpsertOne) UpdateRecordID() *ImageUpsertOne {
	return u.Update(func(s *ImageUpsert) {
		s.UpdateRecordID()
	})
}

// SetPath sets the "path" field.
func (u *ImageUpsertOne) SetPath(v string) *ImageUpsertOne {
	return u.Update(func(s *ImageUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *ImageUpsertOne) UpdatePath() *ImageUpsertOne {
	return u.Update(func(s *ImageUpsert) {
		s.UpdatePath()
	})
}

// SetRole sets the "role" field.
func (u *ImageUpsertOne) SetRole(v string) *ImageUpsertOne {
	return u.Update(func(s *ImageUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ImageUpsertOne) UpdateRole() *ImageUpsertOne {
	return u.Update(func(s *ImageUpsert) {
		s.UpdateRole()
	})
}

// Exec executes the query.
func (u *ImageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ImageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ImageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ImageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ImageUpsertOne.ID is not supported by MySQL driver. Use ImageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ImageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ImageCreateBulk is the builder for creating many Image entities in bulk.
type ImageCreateBulk struct {
	config
	err      error
	builders []*ImageCreate
	conflict []sql.ConflictOption
}

// Save creates the Image entities in the database.
func (_c *ImageCreateBulk) Save(ctx context.Context) ([]*Image, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Image, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImageMutation)
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
func (_c *ImageCreateBulk) SaveX(ctx context.Context) []*Image {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Image.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ImageUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *ImageCreateBulk) OnConflict(opts ...sql.ConflictOption) *ImageUpsertBulk {
	_c.conflict = opts
	return &ImageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Image.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ImageCreateBulk) OnConflictColumns(columns ...string) *ImageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ImageUpsertBulk{
		create: _c,
	}
}

// ImageUpsertBulk is the builder for "upsert"-ing
// a bulk of Image nodes.
type ImageUpsertBulk struct {
	create *ImageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Image.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(image.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ImageUpsertBulk) UpdateNewValues() *ImageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(image.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Image.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ImageUpsertBulk) Ignore() *ImageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ImageUpsertBulk) DoNothing() *ImageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ImageCreateBulk.OnConflict
// documentation for more info.
func (u *ImageUpsertBulk) Update(set func(*ImageUpsert)) *ImageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ImageUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *ImageUpsertBulk) SetItemID(v string) *ImageUpsertBulk {
	return u.Update(func(s *ImageUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *ImageUpsertBulk) UpdateItemID() *ImageUpsertBulk {
	return u.Update(func(s *ImageUpsert) {
		s.UpdateItemID()
	})
}

// SetRecordID sets the "record_id" field.
func (u *ImageUpsertBulk) SetRecordID(v string) *ImageUpsertBulk {
	return u.Update(func(s *ImageUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *ImageUpsertBulk) UpdateRecordID() *ImageUpsertBulk {
	return u.Update(func(s *ImageUpsert) {
		s.UpdateRecordID()
	})
}

// SetPath sets the "path" field.
func (u *ImageUpsertBulk) SetPath(v string) *ImageUpsertBulk {
	return u.Update(func(s *ImageUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *ImageUpsertBulk) UpdatePath() *ImageUpsertBulk {
	return u.Update(func(s *ImageUpsert) {
		s.UpdatePath()
	})
}

// SetRole sets the "role" field.
func (u *ImageUpsertBulk) SetRole(v string) *ImageUpsertBulk {
	return u.Update(func(s *ImageUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ImageUpsertBulk) UpdateRole() *ImageUpsertBulk {
	return u.Update(func(s *ImageUpsert) {
		s.UpdateRole()
	})
}

// Exec executes the query.
func (u *ImageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ImageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ImageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ImageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
