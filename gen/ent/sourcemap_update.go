// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/predicate"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/sourcemap"
)

// SourceMapUpdate is the builder for updating SourceMap entities.
type SourceMapUpdate struct {
	config
	hooks    []Hook
	mutation *SourceMapMutation
}

// Where appends a list predicates to the SourceMapUpdate builder.
func (_u *SourceMapUpdate) Where(ps ...predicate.SourceMap) *SourceMapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *SourceMapUpdate) SetItemID(v string) *SourceMapUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *SourceMapUpdate) SetNillableItemID(v *string) *SourceMapUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *SourceMapUpdate) SetPlatform(v string) *SourceMapUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SourceMapUpdate) SetNillablePlatform(v *string) *SourceMapUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetCrawledAt sets the "crawled_at" field.
func (_u *SourceMapUpdate) SetCrawledAt(v time.Time) *SourceMapUpdate {
	_u.mutation.SetCrawledAt(v)
	return _u
}

// SetNillableCrawledAt sets the "crawled_at" field if the given value is not nil.
func (_u *SourceMapUpdate) SetNillableCrawledAt(v *time.Time) *SourceMapUpdate {
	if v != nil {
		_u.SetCrawledAt(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *SourceMapUpdate) SetItem(v *Item) *SourceMapUpdate {
	return _u.SetItemID(v.ID)
}

// Mutation returns the SourceMapMutation object of the builder.
func (_u *SourceMapUpdate) Mutation() *SourceMapMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *SourceMapUpdate) ClearItem() *SourceMapUpdate {
	_u.mutation.ClearItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceMapUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceMapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceMapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceMapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceMapUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := sourcemap.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "SourceMap.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := sourcemap.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "SourceMap.platform": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceMap.item"`)
	}
	return nil
}

func (_u *SourceMapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcemap.Table, sourcemap.Columns, sqlgraph.NewFieldSpec(sourcemap.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(sourcemap.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.CrawledAt(); ok {
		_spec.SetField(sourcemap.FieldCrawledAt, field.TypeTime, value)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcemap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceMapUpdateOne is the builder for updating a single SourceMap entity.
type SourceMapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceMapMutation
}

// SetItemID sets the "item_id" field.
func (_u *SourceMapUpdateOne) SetItemID(v string) *SourceMapUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *SourceMapUpdateOne) SetNillableItemID(v *string) *SourceMapUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *SourceMapUpdateOne) SetPlatform(v string) *SourceMapUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SourceMapUpdateOne) SetNillablePlatform(v *string) *SourceMapUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetCrawledAt sets the "crawled_at" field.
func (_u *SourceMapUpdateOne) SetCrawledAt(v time.Time) *SourceMapUpdateOne {
	_u.mutation.SetCrawledAt(v)
	return _u
}

// SetNillableCrawledAt sets the "crawled_at" field if the given value is not nil.
func (_u *SourceMapUpdateOne) SetNillableCrawledAt(v *time.Time) *SourceMapUpdateOne {
	if v != nil {
		_u.SetCrawledAt(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *SourceMapUpdateOne) SetItem(v *Item) *SourceMapUpdateOne {
	return _u.SetItemID(v.ID)
}

// Mutation returns the SourceMapMutation object of the builder.
func (_u *SourceMapUpdateOne) Mutation() *SourceMapMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *SourceMapUpdateOne) ClearItem() *SourceMapUpdateOne {
	_u.mutation.ClearItem()
	return _u
}

// Where appends a list predicates to the SourceMapUpdate builder.
func (_u *SourceMapUpdateOne) Where(ps ...predicate.SourceMap) *SourceMapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceMapUpdateOne) Select(field string, fields ...string) *SourceMapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceMap entity.
func (_u *SourceMapUpdateOne) Save(ctx context.Context) (*SourceMap, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceMapUpdateOne) SaveX(ctx context.Context) *SourceMap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceMapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceMapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceMapUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := sourcemap.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "SourceMap.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := sourcemap.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "SourceMap.platform": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceMap.item"`)
	}
	return nil
}

func (_u *SourceMapUpdateOne) sqlSave(ctx context.Context) (_node *SourceMap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcemap.Table, sourcemap.Columns, sqlgraph.NewFieldSpec(sourcemap.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceMap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcemap.FieldID)
		for _, f := range fields {
			if !sourcemap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcemap.FieldID {
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
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(sourcemap.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.CrawledAt(); ok {
		_spec.SetField(sourcemap.FieldCrawledAt, field.TypeTime, value)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SourceMap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcemap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
