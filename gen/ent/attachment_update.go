// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/attachment"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/predicate"
)

// AttachmentUpdate is the builder for updating Attachment entities.
type AttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *AttachmentMutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdate) Where(ps ...predicate.Attachment) *AttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttachmentUpdate) SetItemID(v string) *AttachmentUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableItemID(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *AttachmentUpdate) SetRecordID(v string) *AttachmentUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableRecordID(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *AttachmentUpdate) SetSourcePath(v string) *AttachmentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableSourcePath(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *AttachmentUpdate) SetFileExt(v string) *AttachmentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableFileExt(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *AttachmentUpdate) SetContentHash(v []byte) *AttachmentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *AttachmentUpdate) SetRole(v string) *AttachmentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableRole(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTextPath sets the "text_path" field.
func (_u *AttachmentUpdate) SetTextPath(v string) *AttachmentUpdate {
	_u.mutation.SetTextPath(v)
	return _u
}

// SetNillableTextPath sets the "text_path" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableTextPath(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetTextPath(*v)
	}
	return _u
}

// ClearTextPath clears the value of the "text_path" field.
func (_u *AttachmentUpdate) ClearTextPath() *AttachmentUpdate {
	_u.mutation.ClearTextPath()
	return _u
}

// SetIsOcr sets the "is_ocr" field.
func (_u *AttachmentUpdate) SetIsOcr(v bool) *AttachmentUpdate {
	_u.mutation.SetIsOcr(v)
	return _u
}

// SetNillableIsOcr sets the "is_ocr" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableIsOcr(v *bool) *AttachmentUpdate {
	if v != nil {
		_u.SetIsOcr(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *AttachmentUpdate) SetItem(v *Item) *AttachmentUpdate {
	return _u.SetItemID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdate) Mutation() *AttachmentMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *AttachmentUpdate) ClearItem() *AttachmentUpdate {
	_u.mutation.ClearItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttachmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attachment.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Attachment.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordID(); ok {
		if err := attachment.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Attachment.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := attachment.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Attachment.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := attachment.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Attachment.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := attachment.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Attachment.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := attachment.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Attachment.role": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attachment.item"`)
	}
	return nil
}

func (_u *AttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(attachment.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(attachment.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(attachment.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(attachment.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(attachment.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextPath(); ok {
		_spec.SetField(attachment.FieldTextPath, field.TypeString, value)
	}
	if _u.mutation.TextPathCleared() {
		_spec.ClearField(attachment.FieldTextPath, field.TypeString)
	}
	if value, ok := _u.mutation.IsOcr(); ok {
		_spec.SetField(attachment.FieldIsOcr, field.TypeBool, value)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttachmentUpdateOne is the builder for updating a single Attachment entity.
type AttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttachmentMutation
}

// SetItemID sets the "item_id" field.
func (_u *AttachmentUpdateOne) SetItemID(v string) *AttachmentUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableItemID(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *AttachmentUpdateOne) SetRecordID(v string) *AttachmentUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableRecordID(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *AttachmentUpdateOne) SetSourcePath(v string) *AttachmentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableSourcePath(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *AttachmentUpdateOne) SetFileExt(v string) *AttachmentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableFileExt(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *AttachmentUpdateOne) SetContentHash(v []byte) *AttachmentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *AttachmentUpdateOne) SetRole(v string) *AttachmentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableRole(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTextPath sets the "text_path" field.
func (_u *AttachmentUpdateOne) SetTextPath(v string) *AttachmentUpdateOne {
	_u.mutation.SetTextPath(v)
	return _u
}

// SetNillableTextPath sets the "text_path" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableTextPath(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetTextPath(*v)
	}
	return _u
}

// ClearTextPath clears the value of the "text_path" field.
func (_u *AttachmentUpdateOne) ClearTextPath() *AttachmentUpdateOne {
	_u.mutation.ClearTextPath()
	return _u
}

// SetIsOcr sets the "is_ocr" field.
func (_u *AttachmentUpdateOne) SetIsOcr(v bool) *AttachmentUpdateOne {
	_u.mutation.SetIsOcr(v)
	return _u
}

// SetNillableIsOcr sets the "is_ocr" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableIsOcr(v *bool) *AttachmentUpdateOne {
	if v != nil {
		_u.SetIsOcr(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *AttachmentUpdateOne) SetItem(v *Item) *AttachmentUpdateOne {
	return _u.SetItemID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdateOne) Mutation() *AttachmentMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *AttachmentUpdateOne) ClearItem() *AttachmentUpdateOne {
	_u.mutation.ClearItem()
	return _u
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdateOne) Where(ps ...predicate.Attachment) *AttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttachmentUpdateOne) Select(field string, fields ...string) *AttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attachment entity.
func (_u *AttachmentUpdateOne) Save(ctx context.Context) (*Attachment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdateOne) SaveX(ctx context.Context) *Attachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attachment.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Attachment.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordID(); ok {
		if err := attachment.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Attachment.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := attachment.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Attachment.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := attachment.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Attachment.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := attachment.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Attachment.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := attachment.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Attachment.role": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attachment.item"`)
	}
	return nil
}

func (_u *AttachmentUpdateOne) sqlSave(ctx context.Context) (_node *Attachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attachment.FieldID)
		for _, f := range fields {
			if !attachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attachment.FieldID {
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
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(attachment.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(attachment.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(attachment.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(attachment.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(attachment.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextPath(); ok {
		_spec.SetField(attachment.FieldTextPath, field.TypeString, value)
	}
	if _u.mutation.TextPathCleared() {
		_spec.ClearField(attachment.FieldTextPath, field.TypeString)
	}
	if value, ok := _u.mutation.IsOcr(); ok {
		_spec.SetField(attachment.FieldIsOcr, field.TypeBool, value)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
