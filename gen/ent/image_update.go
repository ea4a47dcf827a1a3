// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/image"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/predicate"
)

// ImageUpdate is the builder for updating Image entities.
type ImageUpdate struct {
	config
	hooks    []Hook
	mutation *ImageMutation
}

// Where appends a list predicates to the ImageUpdate builder.
func (_u *ImageUpdate) Where(ps ...predicate.Image) *ImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ImageUpdate) SetItemID(v string) *ImageUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ImageUpdate) SetNillableItemID(v *string) *ImageUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *ImageUpdate) SetRecordID(v string) *ImageUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ImageUpdate) SetNillableRecordID(v *string) *ImageUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *ImageUpdate) SetPath(v string) *ImageUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ImageUpdate) SetNillablePath(v *string) *ImageUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ImageUpdate) SetRole(v string) *ImageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ImageUpdate) SetNillableRole(v *string) *ImageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *ImageUpdate) SetItem(v *Item) *ImageUpdate {
	return _u.SetItemID(v.ID)
}

// Mutation returns the ImageMutation object of the builder.
func (_u *ImageUpdate) Mutation() *ImageMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *ImageUpdate) ClearItem() *ImageUpdate {
	_u.mutation.ClearItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImageUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := image.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Image.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordID(); ok {
		if err := image.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Image.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := image.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Image.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := image.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Image.role": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Image.item"`)
	}
	return nil
}

func (_u *ImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(image.Table, image.Columns, sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(image.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(image.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(image.FieldRole, field.TypeString, value)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{image.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImageUpdateOne is the builder for updating a single Image entity.
type ImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImageMutation
}

// SetItemID sets the "item_id" field.
func (_u *ImageUpdateOne) SetItemID(v string) *ImageUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ImageUpdateOne) SetNillableItemID(v *string) *ImageUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *ImageUpdateOne) SetRecordID(v string) *ImageUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ImageUpdateOne) SetNillableRecordID(v *string) *ImageUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *ImageUpdateOne) SetPath(v string) *ImageUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ImageUpdateOne) SetNillablePath(v *string) *ImageUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ImageUpdateOne) SetRole(v string) *ImageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ImageUpdateOne) SetNillableRole(v *string) *ImageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *ImageUpdateOne) SetItem(v *Item) *ImageUpdateOne {
	return _u.SetItemID(v.ID)
}

// Mutation returns the ImageMutation object of the builder.
func (_u *ImageUpdateOne) Mutation() *ImageMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *ImageUpdateOne) ClearItem() *ImageUpdateOne {
	_u.mutation.ClearItem()
	return _u
}

// Where appends a list predicates to the ImageUpdate builder.
func (_u *ImageUpdateOne) Where(ps ...predicate.Image) *ImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImageUpdateOne) Select(field string, fields ...string) *ImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Image entity.
func (_u *ImageUpdateOne) Save(ctx context.Context) (*Image, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImageUpdateOne) SaveX(ctx context.Context) *Image {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImageUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := image.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Image.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordID(); ok {
		if err := image.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "Image.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := image.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Image.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := image.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Image.role": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Image.item"`)
	}
	return nil
}

func (_u *ImageUpdateOne) sqlSave(ctx context.Context) (_node *Image, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(image.Table, image.Columns, sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Image.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, image.FieldID)
		for _, f := range fields {
			if !image.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != image.FieldID {
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
		_spec.SetField(image.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(image.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(image.FieldRole, field.TypeString, value)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Image{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{image.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
