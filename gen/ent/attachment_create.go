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
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/attachment"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/google/uuid"
)

// AttachmentCreate is the builder for creating a Attachment entity.
type AttachmentCreate struct {
	config
	mutation *AttachmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetItemID sets the "item_id" field.
func (_c *AttachmentCreate) SetItemID(v string) *AttachmentCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetRecordID sets the "record_id" field.
func (_c *AttachmentCreate) SetRecordID(v string) *AttachmentCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *AttachmentCreate) SetSourcePath(v string) *AttachmentCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *AttachmentCreate) SetFileExt(v string) *AttachmentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *AttachmentCreate) SetContentHash(v []byte) *AttachmentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AttachmentCreate) SetRole(v string) *AttachmentCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetTextPath sets the "text_path" field.
func (_c *AttachmentCreate) SetTextPath(v string) *AttachmentCreate {
	_c.mutation.SetTextPath(v)
	return _c
}

// SetNillableTextPath sets the "text_path" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableTextPath(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetTextPath(*v)
	}
	return _c
}

// SetIsOcr sets the "is_ocr" field.
func (_c *AttachmentCreate) SetIsOcr(v bool) *AttachmentCreate {
	_c.mutation.SetIsOcr(v)
	return _c
}

// SetNillableIsOcr sets the "is_ocr" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableIsOcr(v *bool) *AttachmentCreate {
	if v != nil {
		_c.SetIsOcr(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttachmentCreate) SetID(v uuid.UUID) *AttachmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableID(v *uuid.UUID) *AttachmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetItem sets the "item" edge to the Item entity.
func (_c *AttachmentCreate) SetItem(v *Item) *AttachmentCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_c *AttachmentCreate) Mutation() *AttachmentMutation {
	return _c.mutation
}

// Save creates the Attachment in the database.
func (_c *AttachmentCreate) Save(ctx context.Context) (*Attachment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttachmentCreate) SaveX(ctx context.Context) *Attachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttachmentCreate) defaults() {
	if _, ok := _c.mutation.IsOcr(); !ok {
		v := attachment.DefaultIsOcr
		_c.mutation.SetIsOcr(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attachment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttachmentCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Attachment.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := attachment.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Attachment.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "Attachment.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := attachment.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Attachment.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Attachment.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := attachment.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Attachment.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "Attachment.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := attachment.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Attachment.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Attachment.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := attachment.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Attachment.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Attachment.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := attachment.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Attachment.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsOcr(); !ok {
		return &ValidationError{Name: "is_ocr", err: errors.New(`ent: missing required field "Attachment.is_ocr"`)}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "Attachment.item"`)}
	}
	return nil
}

func (_c *AttachmentCreate) sqlSave(ctx context.Context) (*Attachment, error) {
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

func (_c *AttachmentCreate) createSpec() (*Attachment, *sqlgraph.CreateSpec) {
	var (
		_node = &Attachment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attachment.Table, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(attachment.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(attachment.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(attachment.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(attachment.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(attachment.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.TextPath(); ok {
		_spec.SetField(attachment.FieldTextPath, field.TypeString, value)
		_node.TextPath = &value
	}
	if value, ok := _c.mutation.IsOcr(); ok {
		_spec.SetField(attachment.FieldIsOcr, field.TypeBool, value)
		_node.IsOcr = value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.ItemTable,
			Columns: []string{attachment.ItemColumn},
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
//	client.Attachment.Create().
//		SetItemID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttachmentUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *AttachmentCreate) OnConflict(opts ...sql.ConflictOption) *AttachmentUpsertOne {
	_c.conflict = opts
	return &AttachmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttachmentCreate) OnConflictColumns(columns ...string) *AttachmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttachmentUpsertOne{
		create: _c,
	}
}

type (
	// AttachmentUpsertOne is the builder for "upsert"-ing
	//  one Attachment node.
	AttachmentUpsertOne struct {
		create *AttachmentCreate
	}

	// AttachmentUpsert is the "OnConflict" setter.
	AttachmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetItemID sets the "item_id" field.
func (u *AttachmentUpsert) SetItemID(v string) *AttachmentUpsert {
	u.Set(attachment.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateItemID() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldItemID)
	return u
}

// SetRecordID sets the "record_id" field.
func (u *AttachmentUpsert) SetRecordID(v string) *AttachmentUpsert {
	u.Set(attachment.FieldRecordID, v)
	return u
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateRecordID() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldRecordID)
	return u
}

// SetSourcePath sets the "source_path" field.
func (u *AttachmentUpsert) SetSourcePath(v string) *AttachmentUpsert {
	u.Set(attachment.FieldSourcePath, v)
	return u
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateSourcePath() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldSourcePath)
	return u
}

// SetFileExt sets the "file_ext" field.
func (u *AttachmentUpsert) SetFileExt(v string) *AttachmentUpsert {
	u.Set(attachment.FieldFileExt, v)
	return u
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateFileExt() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldFileExt)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *AttachmentUpsert) SetContentHash(v []byte) *AttachmentUpsert {
	u.Set(attachment.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateContentHash() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldContentHash)
	return u
}

// SetRole sets the "role" field.
func (u *AttachmentUpsert) SetRole(v string) *AttachmentUpsert {
	u.Set(attachment.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateRole() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldRole)
	return u
}

// SetTextPath sets the "text_path" field.
func (u *AttachmentUpsert) SetTextPath(v string) *AttachmentUpsert {
	u.Set(attachment.FieldTextPath, v)
	return u
}

// UpdateTextPath sets the "text_path" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateTextPath() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldTextPath)
	return u
}

// ClearTextPath clears the value of the "text_path" field.
func (u *AttachmentUpsert) ClearTextPath() *AttachmentUpsert {
	u.SetNull(attachment.FieldTextPath)
	return u
}

// SetIsOcr sets the "is_ocr" field.
func (u *AttachmentUpsert) SetIsOcr(v bool) *AttachmentUpsert {
	u.Set(attachment.FieldIsOcr, v)
	return u
}

// UpdateIsOcr sets the "is_ocr" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateIsOcr() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldIsOcr)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(attachment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AttachmentUpsertOne) UpdateNewValues() *AttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(attachment.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Attachment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttachmentUpsertOne) Ignore() *AttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttachmentUpsertOne) DoNothing() *AttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttachmentCreate.OnConflict
// documentation for more info.
func (u *AttachmentUpsertOne) Update(set func(*AttachmentUpsert)) *AttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttachmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *AttachmentUpsertOne) SetItemID(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateItemID() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateItemID()
	})
}

// SetRecordID sets the "record_id" field.
func (u *AttachmentUpsertOne) SetRecordID(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateRecordID() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateRecordID()
	})
}

// SetSourcePath sets the "source_path" field.
func (u *AttachmentUpsertOne) SetSourcePath(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetSourcePath(v)
	})
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateSourcePath() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateSourcePath()
	})
}

// SetFileExt sets the "file_ext" field.
func (u *AttachmentUpsertOne) SetFileExt(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetFileExt(v)
	})
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateFileExt() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateFileExt()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *AttachmentUpsertOne) SetContentHash(v []byte) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateContentHash() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateContentHash()
	})
}

// SetRole sets the "role" field.
func (u *AttachmentUpsertOne) SetRole(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateRole() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateRole()
	})
}

// SetTextPath sets the "text_path" field.
func (u *AttachmentUpsertOne) SetTextPath(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetTextPath(v)
	})
}

// UpdateTextPath sets the "text_path" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateTextPath() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateTextPath()
	})
}

// ClearTextPath clears the value of the "text_path" field.
func (u *AttachmentUpsertOne) ClearTextPath() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.ClearTextPath()
	})
}

// SetIsOcr sets the "is_ocr" field.
func (u *AttachmentUpsertOne) SetIsOcr(v bool) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetIsOcr(v)
	})
}

// UpdateIsOcr sets the "is_ocr" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateIsOcr() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateIsOcr()
	})
}

// Exec executes the query.
func (u *AttachmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttachmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttachmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttachmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AttachmentUpsertOne.ID is not supported by MySQL driver. Use AttachmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttachmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttachmentCreateBulk is the builder for creating many Attachment entities in bulk.
type AttachmentCreateBulk struct {
	config
	err      error
	builders []*AttachmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Attachment entities in the database.
func (_c *AttachmentCreateBulk) Save(ctx context.Context) ([]*Attachment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attachment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttachmentMutation)
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
func (_c *AttachmentCreateBulk) SaveX(ctx context.Context) []*Attachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Attachment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttachmentUpsert) {
//			SetItemID(v+v).
//		}).
//		Exec(ctx)
func (_c *AttachmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttachmentUpsertBulk {
	_c.conflict = opts
	return &AttachmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttachmentCreateBulk) OnConflictColumns(columns ...string) *AttachmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttachmentUpsertBulk{
		create: _c,
	}
}

// AttachmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Attachment nodes.
type AttachmentUpsertBulk struct {
	create *AttachmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(attachment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AttachmentUpsertBulk) UpdateNewValues() *AttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(attachment.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttachmentUpsertBulk) Ignore() *AttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttachmentUpsertBulk) DoNothing() *AttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttachmentCreateBulk.OnConflict
// documentation for more info.
func (u *AttachmentUpsertBulk) Update(set func(*AttachmentUpsert)) *AttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttachmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetItemID sets the "item_id" field.
func (u *AttachmentUpsertBulk) SetItemID(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateItemID() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateItemID()
	})
}

// SetRecordID sets the "record_id" field.
func (u *AttachmentUpsertBulk) SetRecordID(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetRecordID(v)
	})
}

// UpdateRecordID sets the "record_id" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateRecordID() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateRecordID()
	})
}

// SetSourcePath sets the "source_path" field.
func (u *AttachmentUpsertBulk) SetSourcePath(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetSourcePath(v)
	})
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateSourcePath() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateSourcePath()
	})
}

// SetFileExt sets the "file_ext" field.
func (u *AttachmentUpsertBulk) SetFileExt(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetFileExt(v)
	})
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateFileExt() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateFileExt()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *AttachmentUpsertBulk) SetContentHash(v []byte) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateContentHash() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateContentHash()
	})
}

// SetRole sets the "role" field.
func (u *AttachmentUpsertBulk) SetRole(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateRole() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateRole()
	})
}

// SetTextPath sets the "text_path" field.
func (u *AttachmentUpsertBulk) SetTextPath(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetTextPath(v)
	})
}

// UpdateTextPath sets the "text_path" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateTextPath() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateTextPath()
	})
}

// ClearTextPath clears the value of the "text_path" field.
func (u *AttachmentUpsertBulk) ClearTextPath() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.ClearTextPath()
	})
}

// SetIsOcr sets the "is_ocr" field.
func (u *AttachmentUpsertBulk) SetIsOcr(v bool) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetIsOcr(v)
	})
}

// UpdateIsOcr sets the "is_ocr" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateIsOcr() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateIsOcr()
	})
}

// Exec executes the query.
func (u *AttachmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttachmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttachmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttachmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
