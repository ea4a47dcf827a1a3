// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/attachment"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/image"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/sourcemap"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/tableraw"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/unit"
	"github.com/google/uuid"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlatform sets the "platform" field.
func (_c *ItemCreate) SetPlatform(v string) *ItemCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ItemCreate) SetTitle(v string) *ItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAddrRaw sets the "addr_raw" field.
func (_c *ItemCreate) SetAddrRaw(v string) *ItemCreate {
	_c.mutation.SetAddrRaw(v)
	return _c
}

// SetNillableAddrRaw sets the "addr_raw" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAddrRaw(v *string) *ItemCreate {
	if v != nil {
		_c.SetAddrRaw(*v)
	}
	return _c
}

// SetAddrStd sets the "addr_std" field.
func (_c *ItemCreate) SetAddrStd(v string) *ItemCreate {
	_c.mutation.SetAddrStd(v)
	return _c
}

// SetNillableAddrStd sets the "addr_std" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAddrStd(v *string) *ItemCreate {
	if v != nil {
		_c.SetAddrStd(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *ItemCreate) SetLat(v float64) *ItemCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *ItemCreate) SetNillableLat(v *float64) *ItemCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *ItemCreate) SetLng(v float64) *ItemCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *ItemCreate) SetNillableLng(v *float64) *ItemCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetDepositKrw sets the "deposit_krw" field.
func (_c *ItemCreate) SetDepositKrw(v int64) *ItemCreate {
	_c.mutation.SetDepositKrw(v)
	return _c
}

// SetNillableDepositKrw sets the "deposit_krw" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDepositKrw(v *int64) *ItemCreate {
	if v != nil {
		_c.SetDepositKrw(*v)
	}
	return _c
}

// SetRentKrw sets the "rent_krw" field.
func (_c *ItemCreate) SetRentKrw(v int64) *ItemCreate {
	_c.mutation.SetRentKrw(v)
	return _c
}

// SetNillableRentKrw sets the "rent_krw" field if the given value is not nil.
func (_c *ItemCreate) SetNillableRentKrw(v *int64) *ItemCreate {
	if v != nil {
		_c.SetRentKrw(*v)
	}
	return _c
}

// SetAreaM2 sets the "area_m2" field.
func (_c *ItemCreate) SetAreaM2(v float64) *ItemCreate {
	_c.mutation.SetAreaM2(v)
	return _c
}

// SetNillableAreaM2 sets the "area_m2" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAreaM2(v *float64) *ItemCreate {
	if v != nil {
		_c.SetAreaM2(*v)
	}
	return _c
}

// SetApplyStart sets the "apply_start" field.
func (_c *ItemCreate) SetApplyStart(v time.Time) *ItemCreate {
	_c.mutation.SetApplyStart(v)
	return _c
}

// SetNillableApplyStart sets the "apply_start" field if the given value is not nil.
func (_c *ItemCreate) SetNillableApplyStart(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetApplyStart(*v)
	}
	return _c
}

// SetApplyEnd sets the "apply_end" field.
func (_c *ItemCreate) SetApplyEnd(v time.Time) *ItemCreate {
	_c.mutation.SetApplyEnd(v)
	return _c
}

// SetNillableApplyEnd sets the "apply_end" field if the given value is not nil.
func (_c *ItemCreate) SetNillableApplyEnd(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetApplyEnd(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ItemCreate) SetCategory(v string) *ItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCategory(v *string) *ItemCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ItemCreate) SetStatus(v string) *ItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ItemCreate) SetNillableStatus(v *string) *ItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetListURL sets the "list_url" field.
func (_c *ItemCreate) SetListURL(v string) *ItemCreate {
	_c.mutation.SetListURL(v)
	return _c
}

// SetNillableListURL sets the "list_url" field if the given value is not nil.
func (_c *ItemCreate) SetNillableListURL(v *string) *ItemCreate {
	if v != nil {
		_c.SetListURL(*v)
	}
	return _c
}

// SetDetailURL sets the "detail_url" field.
func (_c *ItemCreate) SetDetailURL(v string) *ItemCreate {
	_c.mutation.SetDetailURL(v)
	return _c
}

// SetNillableDetailURL sets the "detail_url" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDetailURL(v *string) *ItemCreate {
	if v != nil {
		_c.SetDetailURL(*v)
	}
	return _c
}

// SetRawLeftovers sets the "raw_leftovers" field.
func (_c *ItemCreate) SetRawLeftovers(v json.RawMessage) *ItemCreate {
	_c.mutation.SetRawLeftovers(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *ItemCreate) SetFirstSeenAt(v time.Time) *ItemCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *ItemCreate) SetLastSeenAt(v time.Time) *ItemCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ItemCreate) SetCreatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCreatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItemCreate) SetUpdatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableUpdatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItemCreate) SetID(v string) *ItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUnitIDs adds the "units" edge to the Unit entity by IDs.
func (_c *ItemCreate) AddUnitIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddUnitIDs(ids...)
	return _c
}

// AddUnits adds the "units" edges to the Unit entity.
func (_c *ItemCreate) AddUnits(v ...*Unit) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUnitIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_c *ItemCreate) AddAttachmentIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddAttachmentIDs(ids...)
	return _c
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_c *ItemCreate) AddAttachments(v ...*Attachment) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttachmentIDs(ids...)
}

// AddImageIDs adds the "images" edge to the Image entity by IDs.
func (_c *ItemCreate) AddImageIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddImageIDs(ids...)
	return _c
}

// AddImages adds the "images" edges to the Image entity.
func (_c *ItemCreate) AddImages(v ...*Image) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddImageIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the TableRaw entity by IDs.
func (_c *ItemCreate) AddTableIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddTableIDs(ids...)
	return _c
}

// AddTables adds the "tables" edges to the TableRaw entity.
func (_c *ItemCreate) AddTables(v ...*TableRaw) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTableIDs(ids...)
}

// AddSourceIDs adds the "sources" edge to the SourceMap entity by IDs.
func (_c *ItemCreate) AddSourceIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddSourceIDs(ids...)
	return _c
}

// AddSources adds the "sources" edges to the SourceMap entity.
func (_c *ItemCreate) AddSources(v ...*SourceMap) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceIDs(ids...)
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := item.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := item.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Item.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := item.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Item.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Item.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := item.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Item.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := item.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Item.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "Item.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "Item.last_seen_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Item.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Item.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := item.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Item.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Item.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(item.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(item.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.AddrRaw(); ok {
		_spec.SetField(item.FieldAddrRaw, field.TypeString, value)
		_node.AddrRaw = value
	}
	if value, ok := _c.mutation.AddrStd(); ok {
		_spec.SetField(item.FieldAddrStd, field.TypeString, value)
		_node.AddrStd = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(item.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(item.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.DepositKrw(); ok {
		_spec.SetField(item.FieldDepositKrw, field.TypeInt64, value)
		_node.DepositKrw = &value
	}
	if value, ok := _c.mutation.RentKrw(); ok {
		_spec.SetField(item.FieldRentKrw, field.TypeInt64, value)
		_node.RentKrw = &value
	}
	if value, ok := _c.mutation.AreaM2(); ok {
		_spec.SetField(item.FieldAreaM2, field.TypeFloat64, value)
		_node.AreaM2 = &value
	}
	if value, ok := _c.mutation.ApplyStart(); ok {
		_spec.SetField(item.FieldApplyStart, field.TypeTime, value)
		_node.ApplyStart = &value
	}
	if value, ok := _c.mutation.ApplyEnd(); ok {
		_spec.SetField(item.FieldApplyEnd, field.TypeTime, value)
		_node.ApplyEnd = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ListURL(); ok {
		_spec.SetField(item.FieldListURL, field.TypeString, value)
		_node.ListURL = value
	}
	if value, ok := _c.mutation.DetailURL(); ok {
		_spec.SetField(item.FieldDetailURL, field.TypeString, value)
		_node.DetailURL = value
	}
	if value, ok := _c.mutation.RawLeftovers(); ok {
		_spec.SetField(item.FieldRawLeftovers, field.TypeJSON, value)
		_node.RawLeftovers = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(item.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(item.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UnitsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   item.UnitsTable,
			Columns: []string{item.UnitsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(unit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   item.AttachmentsTable,
			Columns: []string{item.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ImagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   item.ImagesTable,
			Columns: []string{item.ImagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(image.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TablesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   item.TablesTable,
			Columns: []string{item.TablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tableraw.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   item.SourcesTable,
			Columns: []string{item.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcemap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Item.Create().
//		SetPlatform(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *ItemCreate) OnConflict(opts ...sql.ConflictOption) *ItemUpsertOne {
	_c.conflict = opts
	return &ItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ItemCreate) OnConflictColumns(columns ...string) *ItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ItemUpsertOne{
		create: _c,
	}
}

type (
	// ItemUpsertOne is the builder for "upsert"-ing
	//  one Item node.
	ItemUpsertOne struct {
		create *ItemCreate
	}

	// ItemUpsert is the "OnConflict" setter.
	ItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlatform sets the "platform" field.
func (u *ItemUpsert) SetPlatform(v string) *ItemUpsert {
	u.Set(item.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *ItemUpsert) UpdatePlatform() *ItemUpsert {
	u.SetExcluded(item.FieldPlatform)
	return u
}

// SetTitle sets the "title" field.
func (u *ItemUpsert) SetTitle(v string) *ItemUpsert {
	u.Set(item.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ItemUpsert) UpdateTitle() *ItemUpsert {
	u.SetExcluded(item.FieldTitle)
	return u
}

// SetAddrRaw sets the "addr_raw" field.
func (u *ItemUpsert) SetAddrRaw(v string) *ItemUpsert {
	u.Set(item.FieldAddrRaw, v)
	return u
}

// UpdateAddrRaw sets the "addr_raw" field to the value that was provided on create.
func (u *ItemUpsert) UpdateAddrRaw() *ItemUpsert {
	u.SetExcluded(item.FieldAddrRaw)
	return u
}

// ClearAddrRaw clears the value of the "addr_raw" field.
func (u *ItemUpsert) ClearAddrRaw() *ItemUpsert {
	u.SetNull(item.FieldAddrRaw)
	return u
}

// SetAddrStd sets the "addr_std" field.
func (u *ItemUpsert) SetAddrStd(v string) *ItemUpsert {
	u.Set(item.FieldAddrStd, v)
	return u
}

// UpdateAddrStd sets the "addr_std" field to the value that was provided on create.
func (u *ItemUpsert) UpdateAddrStd() *ItemUpsert {
	u.SetExcluded(item.FieldAddrStd)
	return u
}

// ClearAddrStd clears the value of the "addr_std" field.
func (u *ItemUpsert) ClearAddrStd() *ItemUpsert {
	u.SetNull(item.FieldAddrStd)
	return u
}

// SetLat sets the "lat" field.
func (u *ItemUpsert) SetLat(v float64) *ItemUpsert {
	u.Set(item.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *ItemUpsert) UpdateLat() *ItemUpsert {
	u.SetExcluded(item.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *ItemUpsert) AddLat(v float64) *ItemUpsert {
	u.Add(item.FieldLat, v)
	return u
}

// ClearLat clears the value of the "lat" field.
func (u *ItemUpsert) ClearLat() *ItemUpsert {
	u.SetNull(item.FieldLat)
	return u
}

// SetLng sets the "lng" field.
func (u *ItemUpsert) SetLng(v float64) *ItemUpsert {
	u.Set(item.FieldLng, v)
	return u
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *ItemUpsert) UpdateLng() *ItemUpsert {
	u.SetExcluded(item.FieldLng)
	return u
}

// AddLng adds v to the "lng" field.
func (u *ItemUpsert) AddLng(v float64) *ItemUpsert {
	u.Add(item.FieldLng, v)
	return u
}

// ClearLng clears the value of the "lng" field.
func (u *ItemUpsert) ClearLng() *ItemUpsert {
	u.SetNull(item.FieldLng)
	return u
}

// SetDepositKrw sets the "deposit_krw" field.
func (u *ItemUpsert) SetDepositKrw(v int64) *ItemUpsert {
	u.Set(item.FieldDepositKrw, v)
	return u
}

// UpdateDepositKrw sets the "deposit_krw" field to the value that was provided on create.
func (u *ItemUpsert) UpdateDepositKrw() *ItemUpsert {
	u.SetExcluded(item.FieldDepositKrw)
	return u
}

// AddDepositKrw adds v to the "deposit_krw" field.
func (u *ItemUpsert) AddDepositKrw(v int64) *ItemUpsert {
	u.Add(item.FieldDepositKrw, v)
	return u
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (u *ItemUpsert) ClearDepositKrw() *ItemUpsert {
	u.SetNull(item.FieldDepositKrw)
	return u
}

// SetRentKrw sets the "rent_krw" field.
func (u *ItemUpsert) SetRentKrw(v int64) *ItemUpsert {
	u.Set(item.FieldRentKrw, v)
	return u
}

// UpdateRentKrw sets the "rent_krw" field to the value that was provided on create.
func (u *ItemUpsert) UpdateRentKrw() *ItemUpsert {
	u.SetExcluded(item.FieldRentKrw)
	return u
}

// AddRentKrw adds v to the "rent_krw" field.
func (u *ItemUpsert) AddRentKrw(v int64) *ItemUpsert {
	u.Add(item.FieldRentKrw, v)
	return u
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (u *ItemUpsert) ClearRentKrw() *ItemUpsert {
	u.SetNull(item.FieldRentKrw)
	return u
}

// SetAreaM2 sets the "area_m2" field.
func (u *ItemUpsert) SetAreaM2(v float64) *ItemUpsert {
	u.Set(item.FieldAreaM2, v)
	return u
}

// UpdateAreaM2 sets the "area_m2" field to the value that was provided on create.
func (u *ItemUpsert) UpdateAreaM2() *ItemUpsert {
	u.SetExcluded(item.FieldAreaM2)
	return u
}

// AddAreaM2 adds v to the "area_m2" field.
func (u *ItemUpsert) AddAreaM2(v float64) *ItemUpsert {
	u.Add(item.FieldAreaM2, v)
	return u
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (u *ItemUpsert) ClearAreaM2() *ItemUpsert {
	u.SetNull(item.FieldAreaM2)
	return u
}

// SetApplyStart sets the "apply_start" field.
func (u *ItemUpsert) SetApplyStart(v time.Time) *ItemUpsert {
	u.Set(item.FieldApplyStart, v)
	return u
}

// UpdateApplyStart sets the "apply_start" field to the value that was provided on create.
func (u *ItemUpsert) UpdateApplyStart() *ItemUpsert {
	u.SetExcluded(item.FieldApplyStart)
	return u
}

// ClearApplyStart clears the value of the "apply_start" field.
func (u *ItemUpsert) ClearApplyStart() *ItemUpsert {
	u.SetNull(item.FieldApplyStart)
	return u
}

// SetApplyEnd sets the "apply_end" field.
func (u *ItemUpsert) SetApplyEnd(v time.Time) *ItemUpsert {
	u.Set(item.FieldApplyEnd, v)
	return u
}

// UpdateApplyEnd sets the "apply_end" field to the value that was provided on create.
func (u *ItemUpsert) UpdateApplyEnd() *ItemUpsert {
	u.SetExcluded(item.FieldApplyEnd)
	return u
}

// ClearApplyEnd clears the value of the "apply_end" field.
func (u *ItemUpsert) ClearApplyEnd() *ItemUpsert {
	u.SetNull(item.FieldApplyEnd)
	return u
}

// SetCategory sets the "category" field.
func (u *ItemUpsert) SetCategory(v string) *ItemUpsert {
	u.Set(item.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ItemUpsert) UpdateCategory() *ItemUpsert {
	u.SetExcluded(item.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *ItemUpsert) ClearCategory() *ItemUpsert {
	u.SetNull(item.FieldCategory)
	return u
}

// SetStatus sets the "status" field.
func (u *ItemUpsert) SetStatus(v string) *ItemUpsert {
	u.Set(item.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ItemUpsert) UpdateStatus() *ItemUpsert {
	u.SetExcluded(item.FieldStatus)
	return u
}

// ClearStatus clears the value of the "status" field.
func (u *ItemUpsert) ClearStatus() *ItemUpsert {
	u.SetNull(item.FieldStatus)
	return u
}

// SetListURL sets the "list_url" field.
func (u *ItemUpsert) SetListURL(v string) *ItemUpsert {
	u.Set(item.FieldListURL, v)
	return u
}

// UpdateListURL sets the "list_url" field to the value that was provided on create.
func (u *ItemUpsert) UpdateListURL() *ItemUpsert {
	u.SetExcluded(item.FieldListURL)
	return u
}

// ClearListURL clears the value of the "list_url" field.
func (u *ItemUpsert) ClearListURL() *ItemUpsert {
	u.SetNull(item.FieldListURL)
	return u
}

// SetDetailURL sets the "detail_url" field.
func (u *ItemUpsert) SetDetailURL(v string) *ItemUpsert {
	u.Set(item.FieldDetailURL, v)
	return u
}

// UpdateDetailURL sets the "detail_url" field to the value that was provided on create.
func (u *ItemUpsert) UpdateDetailURL() *ItemUpsert {
	u.SetExcluded(item.FieldDetailURL)
	return u
}

// ClearDetailURL clears the value of the "detail_url" field.
func (u *ItemUpsert) ClearDetailURL() *ItemUpsert {
	u.SetNull(item.FieldDetailURL)
	return u
}

// SetRawLeftovers sets the "raw_leftovers" field.
func (u *ItemUpsert) SetRawLeftovers(v json.RawMessage) *ItemUpsert {
	u.Set(item.FieldRawLeftovers, v)
	return u
}

// UpdateRawLeftovers sets the "raw_leftovers" field to the value that was provided on create.
func (u *ItemUpsert) UpdateRawLeftovers() *ItemUpsert {
	u.SetExcluded(item.FieldRawLeftovers)
	return u
}

// ClearRawLeftovers clears the value of the "raw_leftovers" field.
func (u *ItemUpsert) ClearRawLeftovers() *ItemUpsert {
	u.SetNull(item.FieldRawLeftovers)
	return u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *ItemUpsert) SetFirstSeenAt(v time.Time) *ItemUpsert {
	u.Set(item.FieldFirstSeenAt, v)
	return u
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *ItemUpsert) UpdateFirstSeenAt() *ItemUpsert {
	u.SetExcluded(item.FieldFirstSeenAt)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ItemUpsert) SetLastSeenAt(v time.Time) *ItemUpsert {
	u.Set(item.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ItemUpsert) UpdateLastSeenAt() *ItemUpsert {
	u.SetExcluded(item.FieldLastSeenAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ItemUpsert) SetCreatedAt(v time.Time) *ItemUpsert {
	u.Set(item.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ItemUpsert) UpdateCreatedAt() *ItemUpsert {
	u.SetExcluded(item.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemUpsert) SetUpdatedAt(v time.Time) *ItemUpsert {
	u.Set(item.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemUpsert) UpdateUpdatedAt() *ItemUpsert {
	u.SetExcluded(item.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(item.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ItemUpsertOne) UpdateNewValues() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(item.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ItemUpsertOne) Ignore() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemUpsertOne) DoNothing() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemCreate.OnConflict
// documentation for more info.
func (u *ItemUpsertOne) Update(set func(*ItemUpsert)) *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *ItemUpsertOne) SetPlatform(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdatePlatform() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdatePlatform()
	})
}

// SetTitle sets the "title" field.
func (u *ItemUpsertOne) SetTitle(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateTitle() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateTitle()
	})
}

// SetAddrRaw sets the "addr_raw" field.
func (u *ItemUpsertOne) SetAddrRaw(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetAddrRaw(v)
	})
}

// UpdateAddrRaw sets the "addr_raw" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateAddrRaw() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateAddrRaw()
	})
}

// ClearAddrRaw clears the value of the "addr_raw" field.
func (u *ItemUpsertOne) ClearAddrRaw() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearAddrRaw()
	})
}

// SetAddrStd sets the "addr_std" field.
func (u *ItemUpsertOne) SetAddrStd(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetAddrStd(v)
	})
}

// UpdateAddrStd sets the "addr_std" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateAddrStd() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateAddrStd()
	})
}

// ClearAddrStd clears the value of the "addr_std" field.
func (u *ItemUpsertOne) ClearAddrStd() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearAddrStd()
	})
}

// SetLat sets the "lat" field.
func (u *ItemUpsertOne) SetLat(v float64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *ItemUpsertOne) AddLat(v float64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateLat() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *ItemUpsertOne) ClearLat() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *ItemUpsertOne) SetLng(v float64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *ItemUpsertOne) AddLng(v float64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateLng() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *ItemUpsertOne) ClearLng() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearLng()
	})
}

// SetDepositKrw sets the "deposit_krw" field.
func (u *ItemUpsertOne) SetDepositKrw(v int64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetDepositKrw(v)
	})
}

// AddDepositKrw adds v to the "deposit_krw" field.
func (u *ItemUpsertOne) AddDepositKrw(v int64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.AddDepositKrw(v)
	})
}

// UpdateDepositKrw sets the "deposit_krw" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateDepositKrw() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateDepositKrw()
	})
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (u *ItemUpsertOne) ClearDepositKrw() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearDepositKrw()
	})
}

// SetRentKrw sets the "rent_krw" field.
func (u *ItemUpsertOne) SetRentKrw(v int64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetRentKrw(v)
	})
}

// AddRentKrw adds v to the "rent_krw" field.
func (u *ItemUpsertOne) AddRentKrw(v int64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.AddRentKrw(v)
	})
}

// UpdateRentKrw sets the "rent_krw" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateRentKrw() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateRentKrw()
	})
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (u *ItemUpsertOne) ClearRentKrw() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearRentKrw()
	})
}

// SetAreaM2 sets the "area_m2" field.
func (u *ItemUpsertOne) SetAreaM2(v float64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetAreaM2(v)
	})
}

// AddAreaM2 adds v to the "area_m2" field.
func (u *ItemUpsertOne) AddAreaM2(v float64) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.AddAreaM2(v)
	})
}

// UpdateAreaM2 sets the "area_m2" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateAreaM2() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateAreaM2()
	})
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (u *ItemUpsertOne) ClearAreaM2() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearAreaM2()
	})
}

// SetApplyStart sets the "apply_start" field.
func (u *ItemUpsertOne) SetApplyStart(v time.Time) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetApplyStart(v)
	})
}

// UpdateApplyStart sets the "apply_start" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateApplyStart() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateApplyStart()
	})
}

// ClearApplyStart clears the value of the "apply_start" field.
func (u *ItemUpsertOne) ClearApplyStart() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearApplyStart()
	})
}

// SetApplyEnd sets the "apply_end" field.
func (u *ItemUpsertOne) SetApplyEnd(v time.Time) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetApplyEnd(v)
	})
}

// UpdateApplyEnd sets the "apply_end" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateApplyEnd() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateApplyEnd()
	})
}

// ClearApplyEnd clears the value of the "apply_end" field.
func (u *ItemUpsertOne) ClearApplyEnd() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearApplyEnd()
	})
}

// SetCategory sets the "category" field.
func (u *ItemUpsertOne) SetCategory(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateCategory() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *ItemUpsertOne) ClearCategory() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearCategory()
	})
}

// SetStatus sets the "status" field.
func (u *ItemUpsertOne) SetStatus(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateStatus() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *ItemUpsertOne) ClearStatus() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearStatus()
	})
}

// SetListURL sets the "list_url" field.
func (u *ItemUpsertOne) SetListURL(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetListURL(v)
	})
}

// UpdateListURL sets the "list_url" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateListURL() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateListURL()
	})
}

// ClearListURL clears the value of the "list_url" field.
func (u *ItemUpsertOne) ClearListURL() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearListURL()
	})
}

// SetDetailURL sets the "detail_url" field.
func (u *ItemUpsertOne) SetDetailURL(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetDetailURL(v)
	})
}

// UpdateDetailURL sets the "detail_url" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateDetailURL() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateDetailURL()
	})
}

// ClearDetailURL clears the value of the "detail_url" field.
func (u *ItemUpsertOne) ClearDetailURL() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearDetailURL()
	})
}

// SetRawLeftovers sets the "raw_leftovers" field.
func (u *ItemUpsertOne) SetRawLeftovers(v json.RawMessage) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetRawLeftovers(v)
	})
}

// UpdateRawLeftovers sets the "raw_leftovers" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateRawLeftovers() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateRawLeftovers()
	})
}

// ClearRawLeftovers clears the value of the "raw_leftovers" field.
func (u *ItemUpsertOne) ClearRawLeftovers() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearRawLeftovers()
	})
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *ItemUpsertOne) SetFirstSeenAt(v time.Time) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetFirstSeenAt(v)
	})
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateFirstSeenAt() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateFirstSeenAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ItemUpsertOne) SetLastSeenAt(v time.Time) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateLastSeenAt() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ItemUpsertOne) SetCreatedAt(v time.Time) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateCreatedAt() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemUpsertOne) SetUpdatedAt(v time.Time) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateUpdatedAt() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ItemUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ItemUpsertOne.ID is not supported by MySQL driver. Use ItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ItemUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
	conflict []sql.ConflictOption
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Item.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *ItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ItemUpsertBulk {
	_c.conflict = opts
	return &ItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ItemCreateBulk) OnConflictColumns(columns ...string) *ItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ItemUpsertBulk{
		create: _c,
	}
}

// ItemUpsertBulk is the builder for "upsert"-ing
// a bulk of Item nodes.
type ItemUpsertBulk struct {
	create *ItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(item.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ItemUpsertBulk) UpdateNewValues() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(item.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ItemUpsertBulk) Ignore() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemUpsertBulk) DoNothing() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemCreateBulk.OnConflict
// documentation for more info.
func (u *ItemUpsertBulk) Update(set func(*ItemUpsert)) *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *ItemUpsertBulk) SetPlatform(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdatePlatform() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdatePlatform()
	})
}

// SetTitle sets the "title" field.
func (u *ItemUpsertBulk) SetTitle(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateTitle() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateTitle()
	})
}

// SetAddrRaw sets the "addr_raw" field.
func (u *ItemUpsertBulk) SetAddrRaw(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetAddrRaw(v)
	})
}

// UpdateAddrRaw sets the "addr_raw" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateAddrRaw() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateAddrRaw()
	})
}

// ClearAddrRaw clears the value of the "addr_raw" field.
func (u *ItemUpsertBulk) ClearAddrRaw() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearAddrRaw()
	})
}

// SetAddrStd sets the "addr_std" field.
func (u *ItemUpsertBulk) SetAddrStd(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetAddrStd(v)
	})
}

// UpdateAddrStd sets the "addr_std" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateAddrStd() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateAddrStd()
	})
}

// ClearAddrStd clears the value of the "addr_std" field.
func (u *ItemUpsertBulk) ClearAddrStd() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearAddrStd()
	})
}

// SetLat sets the "lat" field.
func (u *ItemUpsertBulk) SetLat(v float64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *ItemUpsertBulk) AddLat(v float64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateLat() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *ItemUpsertBulk) ClearLat() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *ItemUpsertBulk) SetLng(v float64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *ItemUpsertBulk) AddLng(v float64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateLng() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *ItemUpsertBulk) ClearLng() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearLng()
	})
}

// SetDepositKrw sets the "deposit_krw" field.
func (u *ItemUpsertBulk) SetDepositKrw(v int64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetDepositKrw(v)
	})
}

// AddDepositKrw adds v to the "deposit_krw" field.
func (u *ItemUpsertBulk) AddDepositKrw(v int64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.AddDepositKrw(v)
	})
}

// UpdateDepositKrw sets the "deposit_krw" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateDepositKrw() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateDepositKrw()
	})
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (u *ItemUpsertBulk) ClearDepositKrw() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearDepositKrw()
	})
}

// SetRentKrw sets the "rent_krw" field.
func (u *ItemUpsertBulk) SetRentKrw(v int64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetRentKrw(v)
	})
}

// AddRentKrw adds v to the "rent_krw" field.
func (u *ItemUpsertBulk) AddRentKrw(v int64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.AddRentKrw(v)
	})
}

// UpdateRentKrw sets the "rent_krw" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateRentKrw() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateRentKrw()
	})
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (u *ItemUpsertBulk) ClearRentKrw() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearRentKrw()
	})
}

// SetAreaM2 sets the "area_m2" field.
func (u *ItemUpsertBulk) SetAreaM2(v float64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetAreaM2(v)
	})
}

// AddAreaM2 adds v to the "area_m2" field.
func (u *ItemUpsertBulk) AddAreaM2(v float64) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.AddAreaM2(v)
	})
}

// UpdateAreaM2 sets the "area_m2" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateAreaM2() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateAreaM2()
	})
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (u *ItemUpsertBulk) ClearAreaM2() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearAreaM2()
	})
}

// SetApplyStart sets the "apply_start" field.
func (u *ItemUpsertBulk) SetApplyStart(v time.Time) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetApplyStart(v)
	})
}

// UpdateApplyStart sets the "apply_start" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateApplyStart() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateApplyStart()
	})
}

// ClearApplyStart clears the value of the "apply_start" field.
func (u *ItemUpsertBulk) ClearApplyStart() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearApplyStart()
	})
}

// SetApplyEnd sets the "apply_end" field.
func (u *ItemUpsertBulk) SetApplyEnd(v time.Time) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetApplyEnd(v)
	})
}

// UpdateApplyEnd sets the "apply_end" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateApplyEnd() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateApplyEnd()
	})
}

// ClearApplyEnd clears the value of the "apply_end" field.
func (u *ItemUpsertBulk) ClearApplyEnd() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearApplyEnd()
	})
}

// SetCategory sets the "category" field.
func (u *ItemUpsertBulk) SetCategory(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateCategory() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *ItemUpsertBulk) ClearCategory() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearCategory()
	})
}

// SetStatus sets the "status" field.
func (u *ItemUpsertBulk) SetStatus(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateStatus() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateStatus()
	})
}

// ClearStatus clears the value of the "status" field.
func (u *ItemUpsertBulk) ClearStatus() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearStatus()
	})
}

// SetListURL sets the "list_url" field.
func (u *ItemUpsertBulk) SetListURL(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetListURL(v)
	})
}

// UpdateListURL sets the "list_url" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateListURL() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateListURL()
	})
}

// ClearListURL clears the value of the "list_url" field.
func (u *ItemUpsertBulk) ClearListURL() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearListURL()
	})
}

// SetDetailURL sets the "detail_url" field.
func (u *ItemUpsertBulk) SetDetailURL(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetDetailURL(v)
	})
}

// UpdateDetailURL sets the "detail_url" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateDetailURL() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateDetailURL()
	})
}

// ClearDetailURL clears the value of the "detail_url" field.
func (u *ItemUpsertBulk) ClearDetailURL() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearDetailURL()
	})
}

// SetRawLeftovers sets the "raw_leftovers" field.
func (u *ItemUpsertBulk) SetRawLeftovers(v json.RawMessage) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetRawLeftovers(v)
	})
}

// UpdateRawLeftovers sets the "raw_leftovers" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateRawLeftovers() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateRawLeftovers()
	})
}

// ClearRawLeftovers clears the value of the "raw_leftovers" field.
func (u *ItemUpsertBulk) ClearRawLeftovers() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearRawLeftovers()
	})
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *ItemUpsertBulk) SetFirstSeenAt(v time.Time) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetFirstSeenAt(v)
	})
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateFirstSeenAt() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateFirstSeenAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *ItemUpsertBulk) SetLastSeenAt(v time.Time) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateLastSeenAt() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ItemUpsertBulk) SetCreatedAt(v time.Time) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateCreatedAt() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemUpsertBulk) SetUpdatedAt(v time.Time) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateUpdatedAt() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
