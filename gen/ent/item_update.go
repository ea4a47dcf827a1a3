// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/attachment"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/image"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/predicate"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/sourcemap"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/tableraw"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/unit"
	"github.com/google/uuid"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *ItemUpdate) SetPlatform(v string) *ItemUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *ItemUpdate) SetNillablePlatform(v *string) *ItemUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ItemUpdate) SetTitle(v string) *ItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableTitle(v *string) *ItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAddrRaw sets the "addr_raw" field.
func (_u *ItemUpdate) SetAddrRaw(v string) *ItemUpdate {
	_u.mutation.SetAddrRaw(v)
	return _u
}

// SetNillableAddrRaw sets the "addr_raw" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAddrRaw(v *string) *ItemUpdate {
	if v != nil {
		_u.SetAddrRaw(*v)
	}
	return _u
}

// ClearAddrRaw clears the value of the "addr_raw" field.
func (_u *ItemUpdate) ClearAddrRaw() *ItemUpdate {
	_u.mutation.ClearAddrRaw()
	return _u
}

// SetAddrStd sets the "addr_std" field.
func (_u *ItemUpdate) SetAddrStd(v string) *ItemUpdate {
	_u.mutation.SetAddrStd(v)
	return _u
}

// SetNillableAddrStd sets the "addr_std" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAddrStd(v *string) *ItemUpdate {
	if v != nil {
		_u.SetAddrStd(*v)
	}
	return _u
}

// ClearAddrStd clears the value of the "addr_std" field.
func (_u *ItemUpdate) ClearAddrStd() *ItemUpdate {
	_u.mutation.ClearAddrStd()
	return _u
}

// SetLat sets the "lat" field.
func (_u *ItemUpdate) SetLat(v float64) *ItemUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableLat(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *ItemUpdate) AddLat(v float64) *ItemUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *ItemUpdate) ClearLat() *ItemUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *ItemUpdate) SetLng(v float64) *ItemUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableLng(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *ItemUpdate) AddLng(v float64) *ItemUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *ItemUpdate) ClearLng() *ItemUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetDepositKrw sets the "deposit_krw" field.
func (_u *ItemUpdate) SetDepositKrw(v int64) *ItemUpdate {
	_u.mutation.ResetDepositKrw()
	_u.mutation.SetDepositKrw(v)
	return _u
}

// SetNillableDepositKrw sets the "deposit_krw" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDepositKrw(v *int64) *ItemUpdate {
	if v != nil {
		_u.SetDepositKrw(*v)
	}
	return _u
}

// AddDepositKrw adds value to the "deposit_krw" field.
func (_u *ItemUpdate) AddDepositKrw(v int64) *ItemUpdate {
	_u.mutation.AddDepositKrw(v)
	return _u
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (_u *ItemUpdate) ClearDepositKrw() *ItemUpdate {
	_u.mutation.ClearDepositKrw()
	return _u
}

// SetRentKrw sets the "rent_krw" field.
func (_u *ItemUpdate) SetRentKrw(v int64) *ItemUpdate {
	_u.mutation.ResetRentKrw()
	_u.mutation.SetRentKrw(v)
	return _u
}

// SetNillableRentKrw sets the "rent_krw" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableRentKrw(v *int64) *ItemUpdate {
	if v != nil {
		_u.SetRentKrw(*v)
	}
	return _u
}

// AddRentKrw adds value to the "rent_krw" field.
func (_u *ItemUpdate) AddRentKrw(v int64) *ItemUpdate {
	_u.mutation.AddRentKrw(v)
	return _u
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (_u *ItemUpdate) ClearRentKrw() *ItemUpdate {
	_u.mutation.ClearRentKrw()
	return _u
}

// SetAreaM2 sets the "area_m2" field.
func (_u *ItemUpdate) SetAreaM2(v float64) *ItemUpdate {
	_u.mutation.ResetAreaM2()
	_u.mutation.SetAreaM2(v)
	return _u
}

// SetNillableAreaM2 sets the "area_m2" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAreaM2(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetAreaM2(*v)
	}
	return _u
}

// AddAreaM2 adds value to the "area_m2" field.
func (_u *ItemUpdate) AddAreaM2(v float64) *ItemUpdate {
	_u.mutation.AddAreaM2(v)
	return _u
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (_u *ItemUpdate) ClearAreaM2() *ItemUpdate {
	_u.mutation.ClearAreaM2()
	return _u
}

// SetApplyStart sets the "apply_start" field.
func (_u *ItemUpdate) SetApplyStart(v time.Time) *ItemUpdate {
	_u.mutation.SetApplyStart(v)
	return _u
}

// SetNillableApplyStart sets the "apply_start" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableApplyStart(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetApplyStart(*v)
	}
	return _u
}

// ClearApplyStart clears the value of the "apply_start" field.
func (_u *ItemUpdate) ClearApplyStart() *ItemUpdate {
	_u.mutation.ClearApplyStart()
	return _u
}

// SetApplyEnd sets the "apply_end" field.
func (_u *ItemUpdate) SetApplyEnd(v time.Time) *ItemUpdate {
	_u.mutation.SetApplyEnd(v)
	return _u
}

// SetNillableApplyEnd sets the "apply_end" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableApplyEnd(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetApplyEnd(*v)
	}
	return _u
}

// ClearApplyEnd clears the value of the "apply_end" field.
func (_u *ItemUpdate) ClearApplyEnd() *ItemUpdate {
	_u.mutation.ClearApplyEnd()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ItemUpdate) SetCategory(v string) *ItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCategory(v *string) *ItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ItemUpdate) ClearCategory() *ItemUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ItemUpdate) SetStatus(v string) *ItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableStatus(v *string) *ItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ItemUpdate) ClearStatus() *ItemUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetListURL sets the "list_url" field.
func (_u *ItemUpdate) SetListURL(v string) *ItemUpdate {
	_u.mutation.SetListURL(v)
	return _u
}

// SetNillableListURL sets the "list_url" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableListURL(v *string) *ItemUpdate {
	if v != nil {
		_u.SetListURL(*v)
	}
	return _u
}

// ClearListURL clears the value of the "list_url" field.
func (_u *ItemUpdate) ClearListURL() *ItemUpdate {
	_u.mutation.ClearListURL()
	return _u
}

// SetDetailURL sets the "detail_url" field.
func (_u *ItemUpdate) SetDetailURL(v string) *ItemUpdate {
	_u.mutation.SetDetailURL(v)
	return _u
}

// SetNillableDetailURL sets the "detail_url" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDetailURL(v *string) *ItemUpdate {
	if v != nil {
		_u.SetDetailURL(*v)
	}
	return _u
}

// ClearDetailURL clears the value of the "detail_url" field.
func (_u *ItemUpdate) ClearDetailURL() *ItemUpdate {
	_u.mutation.ClearDetailURL()
	return _u
}

// SetRawLeftovers sets the "raw_leftovers" field.
func (_u *ItemUpdate) SetRawLeftovers(v json.RawMessage) *ItemUpdate {
	_u.mutation.SetRawLeftovers(v)
	return _u
}

// AppendRawLeftovers appends value to the "raw_leftovers" field.
func (_u *ItemUpdate) AppendRawLeftovers(v json.RawMessage) *ItemUpdate {
	_u.mutation.AppendRawLeftovers(v)
	return _u
}

// ClearRawLeftovers clears the value of the "raw_leftovers" field.
func (_u *ItemUpdate) ClearRawLeftovers() *ItemUpdate {
	_u.mutation.ClearRawLeftovers()
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *ItemUpdate) SetFirstSeenAt(v time.Time) *ItemUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableFirstSeenAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ItemUpdate) SetLastSeenAt(v time.Time) *ItemUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableLastSeenAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ItemUpdate) SetCreatedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCreatedAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemUpdate) SetUpdatedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUnitIDs adds the "units" edge to the Unit entity by IDs.
func (_u *ItemUpdate) AddUnitIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddUnitIDs(ids...)
	return _u
}

// AddUnits adds the "units" edges to the Unit entity.
func (_u *ItemUpdate) AddUnits(v ...*Unit) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUnitIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *ItemUpdate) AddAttachmentIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *ItemUpdate) AddAttachments(v ...*Attachment) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddImageIDs adds the "images" edge to the Image entity by IDs.
func (_u *ItemUpdate) AddImageIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the Image entity.
func (_u *ItemUpdate) AddImages(v ...*Image) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the TableRaw entity by IDs.
func (_u *ItemUpdate) AddTableIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddTableIDs(ids...)
	return _u
}

// AddTables adds the "tables" edges to the TableRaw entity.
func (_u *ItemUpdate) AddTables(v ...*TableRaw) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTableIDs(ids...)
}

// AddSourceIDs adds the "sources" edge to the SourceMap entity by IDs.
func (_u *ItemUpdate) AddSourceIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the SourceMap entity.
func (_u *ItemUpdate) AddSources(v ...*SourceMap) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// ClearUnits clears all "units" edges to the Unit entity.
func (_u *ItemUpdate) ClearUnits() *ItemUpdate {
	_u.mutation.ClearUnits()
	return _u
}

// RemoveUnitIDs removes the "units" edge to Unit entities by IDs.
func (_u *ItemUpdate) RemoveUnitIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveUnitIDs(ids...)
	return _u
}

// RemoveUnits removes "units" edges to Unit entities.
func (_u *ItemUpdate) RemoveUnits(v ...*Unit) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUnitIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *ItemUpdate) ClearAttachments() *ItemUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *ItemUpdate) RemoveAttachmentIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *ItemUpdate) RemoveAttachments(v ...*Attachment) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearImages clears all "images" edges to the Image entity.
func (_u *ItemUpdate) ClearImages() *ItemUpdate {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to Image entities by IDs.
func (_u *ItemUpdate) RemoveImageIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to Image entities.
func (_u *ItemUpdate) RemoveImages(v ...*Image) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// ClearTables clears all "tables" edges to the TableRaw entity.
func (_u *ItemUpdate) ClearTables() *ItemUpdate {
	_u.mutation.ClearTables()
	return _u
}

// RemoveTableIDs removes the "tables" edge to TableRaw entities by IDs.
func (_u *ItemUpdate) RemoveTableIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveTableIDs(ids...)
	return _u
}

// RemoveTables removes "tables" edges to TableRaw entities.
func (_u *ItemUpdate) RemoveTables(v ...*TableRaw) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTableIDs(ids...)
}

// ClearSources clears all "sources" edges to the SourceMap entity.
func (_u *ItemUpdate) ClearSources() *ItemUpdate {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to SourceMap entities by IDs.
func (_u *ItemUpdate) RemoveSourceIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to SourceMap entities.
func (_u *ItemUpdate) RemoveSources(v ...*SourceMap) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := item.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := item.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Item.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := item.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Item.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := item.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Item.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(item.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(item.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AddrRaw(); ok {
		_spec.SetField(item.FieldAddrRaw, field.TypeString, value)
	}
	if _u.mutation.AddrRawCleared() {
		_spec.ClearField(item.FieldAddrRaw, field.TypeString)
	}
	if value, ok := _u.mutation.AddrStd(); ok {
		_spec.SetField(item.FieldAddrStd, field.TypeString, value)
	}
	if _u.mutation.AddrStdCleared() {
		_spec.ClearField(item.FieldAddrStd, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(item.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(item.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(item.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(item.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(item.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(item.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DepositKrw(); ok {
		_spec.SetField(item.FieldDepositKrw, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDepositKrw(); ok {
		_spec.AddField(item.FieldDepositKrw, field.TypeInt64, value)
	}
	if _u.mutation.DepositKrwCleared() {
		_spec.ClearField(item.FieldDepositKrw, field.TypeInt64)
	}
	if value, ok := _u.mutation.RentKrw(); ok {
		_spec.SetField(item.FieldRentKrw, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRentKrw(); ok {
		_spec.AddField(item.FieldRentKrw, field.TypeInt64, value)
	}
	if _u.mutation.RentKrwCleared() {
		_spec.ClearField(item.FieldRentKrw, field.TypeInt64)
	}
	if value, ok := _u.mutation.AreaM2(); ok {
		_spec.SetField(item.FieldAreaM2, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaM2(); ok {
		_spec.AddField(item.FieldAreaM2, field.TypeFloat64, value)
	}
	if _u.mutation.AreaM2Cleared() {
		_spec.ClearField(item.FieldAreaM2, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ApplyStart(); ok {
		_spec.SetField(item.FieldApplyStart, field.TypeTime, value)
	}
	if _u.mutation.ApplyStartCleared() {
		_spec.ClearField(item.FieldApplyStart, field.TypeTime)
	}
	if value, ok := _u.mutation.ApplyEnd(); ok {
		_spec.SetField(item.FieldApplyEnd, field.TypeTime, value)
	}
	if _u.mutation.ApplyEndCleared() {
		_spec.ClearField(item.FieldApplyEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(item.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(item.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ListURL(); ok {
		_spec.SetField(item.FieldListURL, field.TypeString, value)
	}
	if _u.mutation.ListURLCleared() {
		_spec.ClearField(item.FieldListURL, field.TypeString)
	}
	if value, ok := _u.mutation.DetailURL(); ok {
		_spec.SetField(item.FieldDetailURL, field.TypeString, value)
	}
	if _u.mutation.DetailURLCleared() {
		_spec.ClearField(item.FieldDetailURL, field.TypeString)
	}
	if value, ok := _u.mutation.RawLeftovers(); ok {
		_spec.SetField(item.FieldRawLeftovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawLeftovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldRawLeftovers, value)
		})
	}
	if _u.mutation.RawLeftoversCleared() {
		_spec.ClearField(item.FieldRawLeftovers, field.TypeJSON)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(item.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(item.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UnitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUnitsIDs(); len(nodes) > 0 && !_u.mutation.UnitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTablesIDs(); len(nodes) > 0 && !_u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TablesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetPlatform sets the "platform" field.
func (_u *ItemUpdateOne) SetPlatform(v string) *ItemUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillablePlatform(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ItemUpdateOne) SetTitle(v string) *ItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableTitle(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAddrRaw sets the "addr_raw" field.
func (_u *ItemUpdateOne) SetAddrRaw(v string) *ItemUpdateOne {
	_u.mutation.SetAddrRaw(v)
	return _u
}

// SetNillableAddrRaw sets the "addr_raw" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAddrRaw(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetAddrRaw(*v)
	}
	return _u
}

// ClearAddrRaw clears the value of the "addr_raw" field.
func (_u *ItemUpdateOne) ClearAddrRaw() *ItemUpdateOne {
	_u.mutation.ClearAddrRaw()
	return _u
}

// SetAddrStd sets the "addr_std" field.
func (_u *ItemUpdateOne) SetAddrStd(v string) *ItemUpdateOne {
	_u.mutation.SetAddrStd(v)
	return _u
}

// SetNillableAddrStd sets the "addr_std" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAddrStd(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetAddrStd(*v)
	}
	return _u
}

// ClearAddrStd clears the value of the "addr_std" field.
func (_u *ItemUpdateOne) ClearAddrStd() *ItemUpdateOne {
	_u.mutation.ClearAddrStd()
	return _u
}

// SetLat sets the "lat" field.
func (_u *ItemUpdateOne) SetLat(v float64) *ItemUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableLat(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *ItemUpdateOne) AddLat(v float64) *ItemUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *ItemUpdateOne) ClearLat() *ItemUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *ItemUpdateOne) SetLng(v float64) *ItemUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableLng(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *ItemUpdateOne) AddLng(v float64) *ItemUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *ItemUpdateOne) ClearLng() *ItemUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetDepositKrw sets the "deposit_krw" field.
func (_u *ItemUpdateOne) SetDepositKrw(v int64) *ItemUpdateOne {
	_u.mutation.ResetDepositKrw()
	_u.mutation.SetDepositKrw(v)
	return _u
}

// SetNillableDepositKrw sets the "deposit_krw" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDepositKrw(v *int64) *ItemUpdateOne {
	if v != nil {
		_u.SetDepositKrw(*v)
	}
	return _u
}

// AddDepositKrw adds value to the "deposit_krw" field.
func (_u *ItemUpdateOne) AddDepositKrw(v int64) *ItemUpdateOne {
	_u.mutation.AddDepositKrw(v)
	return _u
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (_u *ItemUpdateOne) ClearDepositKrw() *ItemUpdateOne {
	_u.mutation.ClearDepositKrw()
	return _u
}

// SetRentKrw sets the "rent_krw" field.
func (_u *ItemUpdateOne) SetRentKrw(v int64) *ItemUpdateOne {
	_u.mutation.ResetRentKrw()
	_u.mutation.SetRentKrw(v)
	return _u
}

// SetNillableRentKrw sets the "rent_krw" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableRentKrw(v *int64) *ItemUpdateOne {
	if v != nil {
		_u.SetRentKrw(*v)
	}
	return _u
}

// AddRentKrw adds value to the "rent_krw" field.
func (_u *ItemUpdateOne) AddRentKrw(v int64) *ItemUpdateOne {
	_u.mutation.AddRentKrw(v)
	return _u
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (_u *ItemUpdateOne) ClearRentKrw() *ItemUpdateOne {
	_u.mutation.ClearRentKrw()
	return _u
}

// SetAreaM2 sets the "area_m2" field.
func (_u *ItemUpdateOne) SetAreaM2(v float64) *ItemUpdateOne {
	_u.mutation.ResetAreaM2()
	_u.mutation.SetAreaM2(v)
	return _u
}

// SetNillableAreaM2 sets the "area_m2" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAreaM2(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetAreaM2(*v)
	}
	return _u
}

// AddAreaM2 adds value to the "area_m2" field.
func (_u *ItemUpdateOne) AddAreaM2(v float64) *ItemUpdateOne {
	_u.mutation.AddAreaM2(v)
	return _u
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (_u *ItemUpdateOne) ClearAreaM2() *ItemUpdateOne {
	_u.mutation.ClearAreaM2()
	return _u
}

// SetApplyStart sets the "apply_start" field.
func (_u *ItemUpdateOne) SetApplyStart(v time.Time) *ItemUpdateOne {
	_u.mutation.SetApplyStart(v)
	return _u
}

// SetNillableApplyStart sets the "apply_start" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableApplyStart(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetApplyStart(*v)
	}
	return _u
}

// ClearApplyStart clears the value of the "apply_start" field.
func (_u *ItemUpdateOne) ClearApplyStart() *ItemUpdateOne {
	_u.mutation.ClearApplyStart()
	return _u
}

// SetApplyEnd sets the "apply_end" field.
func (_u *ItemUpdateOne) SetApplyEnd(v time.Time) *ItemUpdateOne {
	_u.mutation.SetApplyEnd(v)
	return _u
}

// SetNillableApplyEnd sets the "apply_end" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableApplyEnd(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetApplyEnd(*v)
	}
	return _u
}

// ClearApplyEnd clears the value of the "apply_end" field.
func (_u *ItemUpdateOne) ClearApplyEnd() *ItemUpdateOne {
	_u.mutation.ClearApplyEnd()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ItemUpdateOne) SetCategory(v string) *ItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCategory(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ItemUpdateOne) ClearCategory() *ItemUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ItemUpdateOne) SetStatus(v string) *ItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableStatus(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ItemUpdateOne) ClearStatus() *ItemUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetListURL sets the "list_url" field.
func (_u *ItemUpdateOne) SetListURL(v string) *ItemUpdateOne {
	_u.mutation.SetListURL(v)
	return _u
}

// SetNillableListURL sets the "list_url" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableListURL(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetListURL(*v)
	}
	return _u
}

// ClearListURL clears the value of the "list_url" field.
func (_u *ItemUpdateOne) ClearListURL() *ItemUpdateOne {
	_u.mutation.ClearListURL()
	return _u
}

// SetDetailURL sets the "detail_url" field.
func (_u *ItemUpdateOne) SetDetailURL(v string) *ItemUpdateOne {
	_u.mutation.SetDetailURL(v)
	return _u
}

// SetNillableDetailURL sets the "detail_url" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDetailURL(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetDetailURL(*v)
	}
	return _u
}

// ClearDetailURL clears the value of the "detail_url" field.
func (_u *ItemUpdateOne) ClearDetailURL() *ItemUpdateOne {
	_u.mutation.ClearDetailURL()
	return _u
}

// SetRawLeftovers sets the "raw_leftovers" field.
func (_u *ItemUpdateOne) SetRawLeftovers(v json.RawMessage) *ItemUpdateOne {
	_u.mutation.SetRawLeftovers(v)
	return _u
}

// AppendRawLeftovers appends value to the "raw_leftovers" field.
func (_u *ItemUpdateOne) AppendRawLeftovers(v json.RawMessage) *ItemUpdateOne {
	_u.mutation.AppendRawLeftovers(v)
	return _u
}

// ClearRawLeftovers clears the value of the "raw_leftovers" field.
func (_u *ItemUpdateOne) ClearRawLeftovers() *ItemUpdateOne {
	_u.mutation.ClearRawLeftovers()
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *ItemUpdateOne) SetFirstSeenAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableFirstSeenAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *ItemUpdateOne) SetLastSeenAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableLastSeenAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ItemUpdateOne) SetCreatedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCreatedAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemUpdateOne) SetUpdatedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUnitIDs adds the "units" edge to the Unit entity by IDs.
func (_u *ItemUpdateOne) AddUnitIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddUnitIDs(ids...)
	return _u
}

// AddUnits adds the "units" edges to the Unit entity.
func (_u *ItemUpdateOne) AddUnits(v ...*Unit) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUnitIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *ItemUpdateOne) AddAttachmentIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *ItemUpdateOne) AddAttachments(v ...*Attachment) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddImageIDs adds the "images" edge to the Image entity by IDs.
func (_u *ItemUpdateOne) AddImageIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddImageIDs(ids...)
	return _u
}

// AddImages adds the "images" edges to the Image entity.
func (_u *ItemUpdateOne) AddImages(v ...*Image) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImageIDs(ids...)
}

// AddTableIDs adds the "tables" edge to the TableRaw entity by IDs.
func (_u *ItemUpdateOne) AddTableIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddTableIDs(ids...)
	return _u
}

// AddTables adds the "tables" edges to the TableRaw entity.
func (_u *ItemUpdateOne) AddTables(v ...*TableRaw) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTableIDs(ids...)
}

// AddSourceIDs adds the "sources" edge to the SourceMap entity by IDs.
func (_u *ItemUpdateOne) AddSourceIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the SourceMap entity.
func (_u *ItemUpdateOne) AddSources(v ...*SourceMap) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// ClearUnits clears all "units" edges to the Unit entity.
func (_u *ItemUpdateOne) ClearUnits() *ItemUpdateOne {
	_u.mutation.ClearUnits()
	return _u
}

// RemoveUnitIDs removes the "units" edge to Unit entities by IDs.
func (_u *ItemUpdateOne) RemoveUnitIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveUnitIDs(ids...)
	return _u
}

// RemoveUnits removes "units" edges to Unit entities.
func (_u *ItemUpdateOne) RemoveUnits(v ...*Unit) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUnitIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *ItemUpdateOne) ClearAttachments() *ItemUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *ItemUpdateOne) RemoveAttachmentIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *ItemUpdateOne) RemoveAttachments(v ...*Attachment) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearImages clears all "images" edges to the Image entity.
func (_u *ItemUpdateOne) ClearImages() *ItemUpdateOne {
	_u.mutation.ClearImages()
	return _u
}

// RemoveImageIDs removes the "images" edge to Image entities by IDs.
func (_u *ItemUpdateOne) RemoveImageIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveImageIDs(ids...)
	return _u
}

// RemoveImages removes "images" edges to Image entities.
func (_u *ItemUpdateOne) RemoveImages(v ...*Image) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImageIDs(ids...)
}

// ClearTables clears all "tables" edges to the TableRaw entity.
func (_u *ItemUpdateOne) ClearTables() *ItemUpdateOne {
	_u.mutation.ClearTables()
	return _u
}

// RemoveTableIDs removes the "tables" edge to TableRaw entities by IDs.
func (_u *ItemUpdateOne) RemoveTableIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveTableIDs(ids...)
	return _u
}

// RemoveTables removes "tables" edges to TableRaw entities.
func (_u *ItemUpdateOne) RemoveTables(v ...*TableRaw) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTableIDs(ids...)
}

// ClearSources clears all "sources" edges to the SourceMap entity.
func (_u *ItemUpdateOne) ClearSources() *ItemUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to SourceMap entities by IDs.
func (_u *ItemUpdateOne) RemoveSourceIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to SourceMap entities.
func (_u *ItemUpdateOne) RemoveSources(v ...*SourceMap) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := item.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := item.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Item.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := item.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Item.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := item.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Item.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
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
		_spec.SetField(item.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(item.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.AddrRaw(); ok {
		_spec.SetField(item.FieldAddrRaw, field.TypeString, value)
	}
	if _u.mutation.AddrRawCleared() {
		_spec.ClearField(item.FieldAddrRaw, field.TypeString)
	}
	if value, ok := _u.mutation.AddrStd(); ok {
		_spec.SetField(item.FieldAddrStd, field.TypeString, value)
	}
	if _u.mutation.AddrStdCleared() {
		_spec.ClearField(item.FieldAddrStd, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(item.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(item.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(item.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(item.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(item.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(item.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DepositKrw(); ok {
		_spec.SetField(item.FieldDepositKrw, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDepositKrw(); ok {
		_spec.AddField(item.FieldDepositKrw, field.TypeInt64, value)
	}
	if _u.mutation.DepositKrwCleared() {
		_spec.ClearField(item.FieldDepositKrw, field.TypeInt64)
	}
	if value, ok := _u.mutation.RentKrw(); ok {
		_spec.SetField(item.FieldRentKrw, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRentKrw(); ok {
		_spec.AddField(item.FieldRentKrw, field.TypeInt64, value)
	}
	if _u.mutation.RentKrwCleared() {
		_spec.ClearField(item.FieldRentKrw, field.TypeInt64)
	}
	if value, ok := _u.mutation.AreaM2(); ok {
		_spec.SetField(item.FieldAreaM2, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaM2(); ok {
		_spec.AddField(item.FieldAreaM2, field.TypeFloat64, value)
	}
	if _u.mutation.AreaM2Cleared() {
		_spec.ClearField(item.FieldAreaM2, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ApplyStart(); ok {
		_spec.SetField(item.FieldApplyStart, field.TypeTime, value)
	}
	if _u.mutation.ApplyStartCleared() {
		_spec.ClearField(item.FieldApplyStart, field.TypeTime)
	}
	if value, ok := _u.mutation.ApplyEnd(); ok {
		_spec.SetField(item.FieldApplyEnd, field.TypeTime, value)
	}
	if _u.mutation.ApplyEndCleared() {
		_spec.ClearField(item.FieldApplyEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(item.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(item.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ListURL(); ok {
		_spec.SetField(item.FieldListURL, field.TypeString, value)
	}
	if _u.mutation.ListURLCleared() {
		_spec.ClearField(item.FieldListURL, field.TypeString)
	}
	if value, ok := _u.mutation.DetailURL(); ok {
		_spec.SetField(item.FieldDetailURL, field.TypeString, value)
	}
	if _u.mutation.DetailURLCleared() {
		_spec.ClearField(item.FieldDetailURL, field.TypeString)
	}
	if value, ok := _u.mutation.RawLeftovers(); ok {
		_spec.SetField(item.FieldRawLeftovers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawLeftovers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldRawLeftovers, value)
		})
	}
	if _u.mutation.RawLeftoversCleared() {
		_spec.ClearField(item.FieldRawLeftovers, field.TypeJSON)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(item.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(item.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UnitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUnitsIDs(); len(nodes) > 0 && !_u.mutation.UnitsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UnitsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImagesIDs(); len(nodes) > 0 && !_u.mutation.ImagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTablesIDs(); len(nodes) > 0 && !_u.mutation.TablesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TablesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
