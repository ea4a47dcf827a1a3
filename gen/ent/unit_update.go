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
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/unit"
)

// UnitUpdate is the builder for updating Unit entities.
type UnitUpdate struct {
	config
	hooks    []Hook
	mutation *UnitMutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdate) Where(ps ...predicate.Unit) *UnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *UnitUpdate) SetItemID(v string) *UnitUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableItemID(v *string) *UnitUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetUnitType sets the "unit_type" field.
func (_u *UnitUpdate) SetUnitType(v string) *UnitUpdate {
	_u.mutation.SetUnitType(v)
	return _u
}

// SetNillableUnitType sets the "unit_type" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableUnitType(v *string) *UnitUpdate {
	if v != nil {
		_u.SetUnitType(*v)
	}
	return _u
}

// SetDepositKrw sets the "deposit_krw" field.
func (_u *UnitUpdate) SetDepositKrw(v int64) *UnitUpdate {
	_u.mutation.ResetDepositKrw()
	_u.mutation.SetDepositKrw(v)
	return _u
}

// SetNillableDepositKrw sets the "deposit_krw" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableDepositKrw(v *int64) *UnitUpdate {
	if v != nil {
		_u.SetDepositKrw(*v)
	}
	return _u
}

// AddDepositKrw adds value to the "deposit_krw" field.
func (_u *UnitUpdate) AddDepositKrw(v int64) *UnitUpdate {
	_u.mutation.AddDepositKrw(v)
	return _u
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (_u *UnitUpdate) ClearDepositKrw() *UnitUpdate {
	_u.mutation.ClearDepositKrw()
	return _u
}

// SetRentKrw sets the "rent_krw" field.
func (_u *UnitUpdate) SetRentKrw(v int64) *UnitUpdate {
	_u.mutation.ResetRentKrw()
	_u.mutation.SetRentKrw(v)
	return _u
}

// SetNillableRentKrw sets the "rent_krw" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableRentKrw(v *int64) *UnitUpdate {
	if v != nil {
		_u.SetRentKrw(*v)
	}
	return _u
}

// AddRentKrw adds value to the "rent_krw" field.
func (_u *UnitUpdate) AddRentKrw(v int64) *UnitUpdate {
	_u.mutation.AddRentKrw(v)
	return _u
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (_u *UnitUpdate) ClearRentKrw() *UnitUpdate {
	_u.mutation.ClearRentKrw()
	return _u
}

// SetAreaM2 sets the "area_m2" field.
func (_u *UnitUpdate) SetAreaM2(v float64) *UnitUpdate {
	_u.mutation.ResetAreaM2()
	_u.mutation.SetAreaM2(v)
	return _u
}

// SetNillableAreaM2 sets the "area_m2" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableAreaM2(v *float64) *UnitUpdate {
	if v != nil {
		_u.SetAreaM2(*v)
	}
	return _u
}

// AddAreaM2 adds value to the "area_m2" field.
func (_u *UnitUpdate) AddAreaM2(v float64) *UnitUpdate {
	_u.mutation.AddAreaM2(v)
	return _u
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (_u *UnitUpdate) ClearAreaM2() *UnitUpdate {
	_u.mutation.ClearAreaM2()
	return _u
}

// SetSupply sets the "supply" field.
func (_u *UnitUpdate) SetSupply(v int) *UnitUpdate {
	_u.mutation.ResetSupply()
	_u.mutation.SetSupply(v)
	return _u
}

// SetNillableSupply sets the "supply" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableSupply(v *int) *UnitUpdate {
	if v != nil {
		_u.SetSupply(*v)
	}
	return _u
}

// AddSupply adds value to the "supply" field.
func (_u *UnitUpdate) AddSupply(v int) *UnitUpdate {
	_u.mutation.AddSupply(v)
	return _u
}

// ClearSupply clears the value of the "supply" field.
func (_u *UnitUpdate) ClearSupply() *UnitUpdate {
	_u.mutation.ClearSupply()
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *UnitUpdate) SetItem(v *Item) *UnitUpdate {
	return _u.SetItemID(v.ID)
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdate) Mutation() *UnitMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *UnitUpdate) ClearItem() *UnitUpdate {
	_u.mutation.ClearItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := unit.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Unit.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitType(); ok {
		if err := unit.UnitTypeValidator(v); err != nil {
			return &ValidationError{Name: "unit_type", err: fmt.Errorf(`ent: validator failed for field "Unit.unit_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Supply(); ok {
		if err := unit.SupplyValidator(v); err != nil {
			return &ValidationError{Name: "supply", err: fmt.Errorf(`ent: validator failed for field "Unit.supply": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Unit.item"`)
	}
	return nil
}

func (_u *UnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitType(); ok {
		_spec.SetField(unit.FieldUnitType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepositKrw(); ok {
		_spec.SetField(unit.FieldDepositKrw, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDepositKrw(); ok {
		_spec.AddField(unit.FieldDepositKrw, field.TypeInt64, value)
	}
	if _u.mutation.DepositKrwCleared() {
		_spec.ClearField(unit.FieldDepositKrw, field.TypeInt64)
	}
	if value, ok := _u.mutation.RentKrw(); ok {
		_spec.SetField(unit.FieldRentKrw, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRentKrw(); ok {
		_spec.AddField(unit.FieldRentKrw, field.TypeInt64, value)
	}
	if _u.mutation.RentKrwCleared() {
		_spec.ClearField(unit.FieldRentKrw, field.TypeInt64)
	}
	if value, ok := _u.mutation.AreaM2(); ok {
		_spec.SetField(unit.FieldAreaM2, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaM2(); ok {
		_spec.AddField(unit.FieldAreaM2, field.TypeFloat64, value)
	}
	if _u.mutation.AreaM2Cleared() {
		_spec.ClearField(unit.FieldAreaM2, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Supply(); ok {
		_spec.SetField(unit.FieldSupply, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSupply(); ok {
		_spec.AddField(unit.FieldSupply, field.TypeInt, value)
	}
	if _u.mutation.SupplyCleared() {
		_spec.ClearField(unit.FieldSupply, field.TypeInt)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitUpdateOne is the builder for updating a single Unit entity.
type UnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitMutation
}

// SetItemID sets the "item_id" field.
func (_u *UnitUpdateOne) SetItemID(v string) *UnitUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableItemID(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetUnitType sets the "unit_type" field.
func (_u *UnitUpdateOne) SetUnitType(v string) *UnitUpdateOne {
	_u.mutation.SetUnitType(v)
	return _u
}

// SetNillableUnitType sets the "unit_type" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableUnitType(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetUnitType(*v)
	}
	return _u
}

// SetDepositKrw sets the "deposit_krw" field.
func (_u *UnitUpdateOne) SetDepositKrw(v int64) *UnitUpdateOne {
	_u.mutation.ResetDepositKrw()
	_u.mutation.SetDepositKrw(v)
	return _u
}

// SetNillableDepositKrw sets the "deposit_krw" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableDepositKrw(v *int64) *UnitUpdateOne {
	if v != nil {
		_u.SetDepositKrw(*v)
	}
	return _u
}

// AddDepositKrw adds value to the "deposit_krw" field.
func (_u *UnitUpdateOne) AddDepositKrw(v int64) *UnitUpdateOne {
	_u.mutation.AddDepositKrw(v)
	return _u
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (_u *UnitUpdateOne) ClearDepositKrw() *UnitUpdateOne {
	_u.mutation.ClearDepositKrw()
	return _u
}

// SetRentKrw sets the "rent_krw" field.
func (_u *UnitUpdateOne) SetRentKrw(v int64) *UnitUpdateOne {
	_u.mutation.ResetRentKrw()
	_u.mutation.SetRentKrw(v)
	return _u
}

// SetNillableRentKrw sets the "rent_krw" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableRentKrw(v *int64) *UnitUpdateOne {
	if v != nil {
		_u.SetRentKrw(*v)
	}
	return _u
}

// AddRentKrw adds value to the "rent_krw" field.
func (_u *UnitUpdateOne) AddRentKrw(v int64) *UnitUpdateOne {
	_u.mutation.AddRentKrw(v)
	return _u
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (_u *UnitUpdateOne) ClearRentKrw() *UnitUpdateOne {
	_u.mutation.ClearRentKrw()
	return _u
}

// SetAreaM2 sets the "area_m2" field.
func (_u *UnitUpdateOne) SetAreaM2(v float64) *UnitUpdateOne {
	_u.mutation.ResetAreaM2()
	_u.mutation.SetAreaM2(v)
	return _u
}

// SetNillableAreaM2 sets the "area_m2" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableAreaM2(v *float64) *UnitUpdateOne {
	if v != nil {
		_u.SetAreaM2(*v)
	}
	return _u
}

// AddAreaM2 adds value to the "area_m2" field.
func (_u *UnitUpdateOne) AddAreaM2(v float64) *UnitUpdateOne {
	_u.mutation.AddAreaM2(v)
	return _u
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (_u *UnitUpdateOne) ClearAreaM2() *UnitUpdateOne {
	_u.mutation.ClearAreaM2()
	return _u
}

// SetSupply sets the "supply" field.
func (_u *UnitUpdateOne) SetSupply(v int) *UnitUpdateOne {
	_u.mutation.ResetSupply()
	_u.mutation.SetSupply(v)
	return _u
}

// SetNillableSupply sets the "supply" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableSupply(v *int) *UnitUpdateOne {
	if v != nil {
		_u.SetSupply(*v)
	}
	return _u
}

// AddSupply adds value to the "supply" field.
func (_u *UnitUpdateOne) AddSupply(v int) *UnitUpdateOne {
	_u.mutation.AddSupply(v)
	return _u
}

// ClearSupply clears the value of the "supply" field.
func (_u *UnitUpdateOne) ClearSupply() *UnitUpdateOne {
	_u.mutation.ClearSupply()
	return _u
}

// SetItem sets the "item" edge to the Item entity.
func (_u *UnitUpdateOne) SetItem(v *Item) *UnitUpdateOne {
	return _u.SetItemID(v.ID)
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdateOne) Mutation() *UnitMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the Item entity.
func (_u *UnitUpdateOne) ClearItem() *UnitUpdateOne {
	_u.mutation.ClearItem()
	return _u
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdateOne) Where(ps ...predicate.Unit) *UnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitUpdateOne) Select(field string, fields ...string) *UnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Unit entity.
func (_u *UnitUpdateOne) Save(ctx context.Context) (*Unit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdateOne) SaveX(ctx context.Context) *Unit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := unit.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Unit.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitType(); ok {
		if err := unit.UnitTypeValidator(v); err != nil {
			return &ValidationError{Name: "unit_type", err: fmt.Errorf(`ent: validator failed for field "Unit.unit_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Supply(); ok {
		if err := unit.SupplyValidator(v); err != nil {
			return &ValidationError{Name: "supply", err: fmt.Errorf(`ent: validator failed for field "Unit.supply": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Unit.item"`)
	}
	return nil
}

func (_u *UnitUpdateOne) sqlSave(ctx context.Context) (_node *Unit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Unit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unit.FieldID)
		for _, f := range fields {
			if !unit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unit.FieldID {
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
	if value, ok := _u.mutation.UnitType(); ok {
		_spec.SetField(unit.FieldUnitType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepositKrw(); ok {
		_spec.SetField(unit.FieldDepositKrw, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDepositKrw(); ok {
		_spec.AddField(unit.FieldDepositKrw, field.TypeInt64, value)
	}
	if _u.mutation.DepositKrwCleared() {
		_spec.ClearField(unit.FieldDepositKrw, field.TypeInt64)
	}
	if value, ok := _u.mutation.RentKrw(); ok {
		_spec.SetField(unit.FieldRentKrw, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRentKrw(); ok {
		_spec.AddField(unit.FieldRentKrw, field.TypeInt64, value)
	}
	if _u.mutation.RentKrwCleared() {
		_spec.ClearField(unit.FieldRentKrw, field.TypeInt64)
	}
	if value, ok := _u.mutation.AreaM2(); ok {
		_spec.SetField(unit.FieldAreaM2, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaM2(); ok {
		_spec.AddField(unit.FieldAreaM2, field.TypeFloat64, value)
	}
	if _u.mutation.AreaM2Cleared() {
		_spec.ClearField(unit.FieldAreaM2, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Supply(); ok {
		_spec.SetField(unit.FieldSupply, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSupply(); ok {
		_spec.AddField(unit.FieldSupply, field.TypeInt, value)
	}
	if _u.mutation.SupplyCleared() {
		_spec.ClearField(unit.FieldSupply, field.TypeInt)
	}
	if _u.mutation.ItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Unit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
