// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/predicate"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/tableraw"
)

// TableRawUpdate is the builder for updating TableRaw entities.
type TableRawUpdate struct {
	config
	hooks    []Hook
	mutation *TableRawMutation
}

// Where appends a list predicates to the TableRawUpdate builder.
func (_u *TableRawUpdate) Where(ps ...predicate.TableRaw) *TableRawUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *TableRawUpdate) SetItemID(v string) *TableRawUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *TableRawUpdate) SetNillableItemID(v *string) *TableRawUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *TableRawUpdate) SetRecordID(v string) *TableRawUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *TableRawUpdate) SetNillableRecordID(v *string) *TableRawUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *TableRawUpdate) SetPath(v string) *TableRawUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *TableRawUpdate) SetNillablePath(v *string) *TableRawUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *TableRawUpdate) SetFormat(v string) *TableRawUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *TableRawUpdate) SetNillableFormat(v *string) *TableRawUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *TableRawUpdate) SetItem(v *Item) *TableRawUpdate {
	return _u.SetItemID(v.ID)
}

// Mutation returns the TableRawMutation object of the builder.
func (_u *TableRawUpdate) Mutation() *TableRawMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *TableRawUpdate) ClearItem() *TableRawUpdate {
	_u.mutation.ClearItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TableRawUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableRawUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TableRawUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableRawUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TableRawUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := tableraw.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "TableRaw.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordID(); ok {
		if err := tableraw.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "TableRaw.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := tableraw.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "TableRaw.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := tableraw.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "TableRaw.format": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TableRaw.item"`)
	}
	return nil
}

func (_u *TableRawUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tableraw.Table, tableraw.Columns, sqlgraph.NewFieldSpec(tableraw.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(tableraw.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(tableraw.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(tableraw.FieldFormat, field.TypeString, value)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tableraw.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TableRawUpdateOne is the builder for updating a single TableRaw entity.
type TableRawUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TableRawMutation
}

// SetItemID sets the "item_id" field.
func (_u *TableRawUpdateOne) SetItemID(v string) *TableRawUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *TableRawUpdateOne) SetNillableItemID(v *string) *TableRawUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *TableRawUpdateOne) SetRecordID(v string) *TableRawUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *TableRawUpdateOne) SetNillableRecordID(v *string) *TableRawUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *TableRawUpdateOne) SetPath(v string) *TableRawUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *TableRawUpdateOne) SetNillablePath(v *string) *TableRawUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *TableRawUpdateOne) SetFormat(v string) *TableRawUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *TableRawUpdateOne) SetNillableFormat(v *string) *TableRawUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *TableRawUpdateOne) SetItem(v *Item) *TableRawUpdateOne {
	return _u.SetItemID(v.ID)
}

// Mutation returns the TableRawMutation object of the builder.
func (_u *TableRawUpdateOne) Mutation() *TableRawMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *TableRawUpdateOne) ClearItem() *TableRawUpdateOne {
	_u.mutation.ClearItem()
	return _u
}

// Where appends a list predicates to the TableRawUpdate builder.
func (_u *TableRawUpdateOne) Where(ps ...predicate.TableRaw) *TableRawUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TableRawUpdateOne) Select(field string, fields ...string) *TableRawUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TableRaw entity.
func (_u *TableRawUpdateOne) Save(ctx context.Context) (*TableRaw, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TableRawUpdateOne) SaveX(ctx context.Context) *TableRaw {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TableRawUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TableRawUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TableRawUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := tableraw.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "TableRaw.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordID(); ok {
		if err := tableraw.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "TableRaw.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := tableraw.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "TableRaw.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := tableraw.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "TableRaw.format": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TableRaw.item"`)
	}
	return nil
}

func (_u *TableRawUpdateOne) sqlSave(ctx context.Context) (_node *TableRaw, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tableraw.Table, tableraw.Columns, sqlgraph.NewFieldSpec(tableraw.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TableRaw.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tableraw.FieldID)
		for _, f := range fields {
			if !tableraw.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tableraw.FieldID {
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
		_spec.SetField(tableraw.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(tableraw.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(tableraw.FieldFormat, field.TypeString, value)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TableRaw{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tableraw.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
