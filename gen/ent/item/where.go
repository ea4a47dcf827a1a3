// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldID, id))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPlatform, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTitle, v))
}

// AddrRaw applies equality check predicate on the "addr_raw" field. It's identical to AddrRawEQ.
func AddrRaw(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAddrRaw, v))
}

// AddrStd applies equality check predicate on the "addr_std" field. It's identical to AddrStdEQ.
func AddrStd(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAddrStd, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLat, v))
}

// Lng applies equality check predicate on the "lng" field. It's identical to LngEQ.
func Lng(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLng, v))
}

// DepositKrw applies equality check predicate on the "deposit_krw" field. It's identical to DepositKrwEQ.
func DepositKrw(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDepositKrw, v))
}

// RentKrw applies equality check predicate on the "rent_krw" field. It's identical to RentKrwEQ.
func RentKrw(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldRentKrw, v))
}

// AreaM2 applies equality check predicate on the "area_m2" field. It's identical to AreaM2EQ.
func AreaM2(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAreaM2, v))
}

// ApplyStart applies equality check predicate on the "apply_start" field. It's identical to ApplyStartEQ.
func ApplyStart(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldApplyStart, v))
}

// ApplyEnd applies equality check predicate on the "apply_end" field. It's identical to ApplyEndEQ.
func ApplyEnd(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldApplyEnd, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCategory, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStatus, v))
}

// ListURL applies equality check predicate on the "list_url" field. It's identical to ListURLEQ.
func ListURL(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldListURL, v))
}

// DetailURL applies equality check predicate on the "detail_url" field. It's identical to DetailURLEQ.
func DetailURL(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDetailURL, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLastSeenAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldPlatform, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldTitle, v))
}

// AddrRawEQ applies the EQ predicate on the "addr_raw" field.
func AddrRawEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAddrRaw, v))
}

// AddrRawNEQ applies the NEQ predicate on the "addr_raw" field.
func AddrRawNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAddrRaw, v))
}

// AddrRawIn applies the In predicate on the "addr_raw" field.
func AddrRawIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAddrRaw, vs...))
}

// AddrRawNotIn applies the NotIn predicate on the "addr_raw" field.
func AddrRawNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAddrRaw, vs...))
}

// AddrRawGT applies the GT predicate on the "addr_raw" field.
func AddrRawGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAddrRaw, v))
}

// AddrRawGTE applies the GTE predicate on the "addr_raw" field.
func AddrRawGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAddrRaw, v))
}

// AddrRawLT applies the LT predicate on the "addr_raw" field.
func AddrRawLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAddrRaw, v))
}

// AddrRawLTE applies the LTE predicate on the "addr_raw" field.
func AddrRawLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAddrRaw, v))
}

// AddrRawContains applies the Contains predicate on the "addr_raw" field.
func AddrRawContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldAddrRaw, v))
}

// AddrRawHasPrefix applies the HasPrefix predicate on the "addr_raw" field.
func AddrRawHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldAddrRaw, v))
}

// AddrRawHasSuffix applies the HasSuffix predicate on the "addr_raw" field.
func AddrRawHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldAddrRaw, v))
}

// AddrRawIsNil applies the IsNil predicate on the "addr_raw" field.
func AddrRawIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldAddrRaw))
}

// AddrRawNotNil applies the NotNil predicate on the "addr_raw" field.
func AddrRawNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldAddrRaw))
}

// AddrRawEqualFold applies the EqualFold predicate on the "addr_raw" field.
func AddrRawEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldAddrRaw, v))
}

// AddrRawContainsFold applies the ContainsFold predicate on the "addr_raw" field.
func AddrRawContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldAddrRaw, v))
}

// AddrStdEQ applies the EQ predicate on the "addr_std" field.
func AddrStdEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAddrStd, v))
}

// AddrStdNEQ applies the NEQ predicate on the "addr_std" field.
func AddrStdNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAddrStd, v))
}

// AddrStdIn applies the In predicate on the "addr_std" field.
func AddrStdIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAddrStd, vs...))
}

// AddrStdNotIn applies the NotIn predicate on the "addr_std" field.
func AddrStdNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAddrStd, vs...))
}

// AddrStdGT applies the GT predicate on the "addr_std" field.
func AddrStdGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAddrStd, v))
}

// AddrStdGTE applies the GTE predicate on the "addr_std" field.
func AddrStdGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAddrStd, v))
}

// AddrStdLT applies the LT predicate on the "addr_std" field.
func AddrStdLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAddrStd, v))
}

// AddrStdLTE applies the LTE predicate on the "addr_std" field.
func AddrStdLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAddrStd, v))
}

// AddrStdContains applies the Contains predicate on the "addr_std" field.
func AddrStdContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldAddrStd, v))
}

// AddrStdHasPrefix applies the HasPrefix predicate on the "addr_std" field.
func AddrStdHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldAddrStd, v))
}

// AddrStdHasSuffix applies the HasSuffix predicate on the "addr_std" field.
func AddrStdHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldAddrStd, v))
}

// AddrStdIsNil applies the IsNil predicate on the "addr_std" field.
func AddrStdIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldAddrStd))
}

// AddrStdNotNil applies the NotNil predicate on the "addr_std" field.
func AddrStdNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldAddrStd))
}

// AddrStdEqualFold applies the EqualFold predicate on the "addr_std" field.
func AddrStdEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldAddrStd, v))
}

// AddrStdContainsFold applies the ContainsFold predicate on the "addr_std" field.
func AddrStdContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldAddrStd, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldLat))
}

// LngEQ applies the EQ predicate on the "lng" field.
func LngEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLng, v))
}

// LngNEQ applies the NEQ predicate on the "lng" field.
func LngNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldLng, v))
}

// LngIn applies the In predicate on the "lng" field.
func LngIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldLng, vs...))
}

// LngNotIn applies the NotIn predicate on the "lng" field.
func LngNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldLng, vs...))
}

// LngGT applies the GT predicate on the "lng" field.
func LngGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldLng, v))
}

// LngGTE applies the GTE predicate on the "lng" field.
func LngGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldLng, v))
}

// LngLT applies the LT predicate on the "lng" field.
func LngLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldLng, v))
}

// LngLTE applies the LTE predicate on the "lng" field.
func LngLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldLng, v))
}

// LngIsNil applies the IsNil predicate on the "lng" field.
func LngIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldLng))
}

// LngNotNil applies the NotNil predicate on the "lng" field.
func LngNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldLng))
}

// DepositKrwEQ applies the EQ predicate on the "deposit_krw" field.
func DepositKrwEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDepositKrw, v))
}

// DepositKrwNEQ applies the NEQ predicate on the "deposit_krw" field.
func DepositKrwNEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDepositKrw, v))
}

// DepositKrwIn applies the In predicate on the "deposit_krw" field.
func DepositKrwIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDepositKrw, vs...))
}

// DepositKrwNotIn applies the NotIn predicate on the "deposit_krw" field.
func DepositKrwNotIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDepositKrw, vs...))
}

// DepositKrwGT applies the GT predicate on the "deposit_krw" field.
func DepositKrwGT(v int64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDepositKrw, v))
}

// DepositKrwGTE applies the GTE predicate on the "deposit_krw" field.
func DepositKrwGTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDepositKrw, v))
}

// DepositKrwLT applies the LT predicate on the "deposit_krw" field.
func DepositKrwLT(v int64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDepositKrw, v))
}

// DepositKrwLTE applies the LTE predicate on the "deposit_krw" field.
func DepositKrwLTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDepositKrw, v))
}

// DepositKrwIsNil applies the IsNil predicate on the "deposit_krw" field.
func DepositKrwIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldDepositKrw))
}

// DepositKrwNotNil applies the NotNil predicate on the "deposit_krw" field.
func DepositKrwNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldDepositKrw))
}

// RentKrwEQ applies the EQ predicate on the "rent_krw" field.
func RentKrwEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldRentKrw, v))
}

// RentKrwNEQ applies the NEQ predicate on the "rent_krw" field.
func RentKrwNEQ(v int64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldRentKrw, v))
}

// RentKrwIn applies the In predicate on the "rent_krw" field.
func RentKrwIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldRentKrw, vs...))
}

// RentKrwNotIn applies the NotIn predicate on the "rent_krw" field.
func RentKrwNotIn(vs ...int64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldRentKrw, vs...))
}

// RentKrwGT applies the GT predicate on the "rent_krw" field.
func RentKrwGT(v int64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldRentKrw, v))
}

// RentKrwGTE applies the GTE predicate on the "rent_krw" field.
func RentKrwGTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldRentKrw, v))
}

// RentKrwLT applies the LT predicate on the "rent_krw" field.
func RentKrwLT(v int64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldRentKrw, v))
}

// RentKrwLTE applies the LTE predicate on the "rent_krw" field.
func RentKrwLTE(v int64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldRentKrw, v))
}

// RentKrwIsNil applies the IsNil predicate on the "rent_krw" field.
func RentKrwIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldRentKrw))
}

// RentKrwNotNil applies the NotNil predicate on the "rent_krw" field.
func RentKrwNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldRentKrw))
}

// AreaM2EQ applies the EQ predicate on the "area_m2" field.
func AreaM2EQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAreaM2, v))
}

// AreaM2NEQ applies the NEQ predicate on the "area_m2" field.
func AreaM2NEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAreaM2, v))
}

// AreaM2In applies the In predicate on the "area_m2" field.
func AreaM2In(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAreaM2, vs...))
}

// AreaM2NotIn applies the NotIn predicate on the "area_m2" field.
func AreaM2NotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAreaM2, vs...))
}

// AreaM2GT applies the GT predicate on the "area_m2" field.
func AreaM2GT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAreaM2, v))
}

// AreaM2GTE applies the GTE predicate on the "area_m2" field.
func AreaM2GTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAreaM2, v))
}

// AreaM2LT applies the LT predicate on the "area_m2" field.
func AreaM2LT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAreaM2, v))
}

// AreaM2LTE applies the LTE predicate on the "area_m2" field.
func AreaM2LTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAreaM2, v))
}

// AreaM2IsNil applies the IsNil predicate on the "area_m2" field.
func AreaM2IsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldAreaM2))
}

// AreaM2NotNil applies the NotNil predicate on the "area_m2" field.
func AreaM2NotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldAreaM2))
}

// ApplyStartEQ applies the EQ predicate on the "apply_start" field.
func ApplyStartEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldApplyStart, v))
}

// ApplyStartNEQ applies the NEQ predicate on the "apply_start" field.
func ApplyStartNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldApplyStart, v))
}

// ApplyStartIn applies the In predicate on the "apply_start" field.
func ApplyStartIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldApplyStart, vs...))
}

// ApplyStartNotIn applies the NotIn predicate on the "apply_start" field.
func ApplyStartNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldApplyStart, vs...))
}

// ApplyStartGT applies the GT predicate on the "apply_start" field.
func ApplyStartGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldApplyStart, v))
}

// ApplyStartGTE applies the GTE predicate on the "apply_start" field.
func ApplyStartGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldApplyStart, v))
}

// ApplyStartLT applies the LT predicate on the "apply_start" field.
func ApplyStartLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldApplyStart, v))
}

// ApplyStartLTE applies the LTE predicate on the "apply_start" field.
func ApplyStartLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldApplyStart, v))
}

// ApplyStartIsNil applies the IsNil predicate on the "apply_start" field.
func ApplyStartIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldApplyStart))
}

// ApplyStartNotNil applies the NotNil predicate on the "apply_start" field.
func ApplyStartNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldApplyStart))
}

// ApplyEndEQ applies the EQ predicate on the "apply_end" field.
func ApplyEndEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldApplyEnd, v))
}

// ApplyEndNEQ applies the NEQ predicate on the "apply_end" field.
func ApplyEndNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldApplyEnd, v))
}

// ApplyEndIn applies the In predicate on the "apply_end" field.
func ApplyEndIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldApplyEnd, vs...))
}

// ApplyEndNotIn applies the NotIn predicate on the "apply_end" field.
func ApplyEndNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldApplyEnd, vs...))
}

// ApplyEndGT applies the GT predicate on the "apply_end" field.
func ApplyEndGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldApplyEnd, v))
}

// ApplyEndGTE applies the GTE predicate on the "apply_end" field.
func ApplyEndGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldApplyEnd, v))
}

// ApplyEndLT applies the LT predicate on the "apply_end" field.
func ApplyEndLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldApplyEnd, v))
}

// ApplyEndLTE applies the LTE predicate on the "apply_end" field.
func ApplyEndLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldApplyEnd, v))
}

// ApplyEndIsNil applies the IsNil predicate on the "apply_end" field.
func ApplyEndIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldApplyEnd))
}

// ApplyEndNotNil applies the NotNil predicate on the "apply_end" field.
func ApplyEndNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldApplyEnd))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldCategory, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldStatus, v))
}

// ListURLEQ applies the EQ predicate on the "list_url" field.
func ListURLEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldListURL, v))
}

// ListURLNEQ applies the NEQ predicate on the "list_url" field.
func ListURLNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldListURL, v))
}

// ListURLIn applies the In predicate on the "list_url" field.
func ListURLIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldListURL, vs...))
}

// ListURLNotIn applies the NotIn predicate on the "list_url" field.
func ListURLNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldListURL, vs...))
}

// ListURLGT applies the GT predicate on the "list_url" field.
func ListURLGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldListURL, v))
}

// ListURLGTE applies the GTE predicate on the "list_url" field.
func ListURLGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldListURL, v))
}

// ListURLLT applies the LT predicate on the "list_url" field.
func ListURLLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldListURL, v))
}

// ListURLLTE applies the LTE predicate on the "list_url" field.
func ListURLLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldListURL, v))
}

// ListURLContains applies the Contains predicate on the "list_url" field.
func ListURLContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldListURL, v))
}

// ListURLHasPrefix applies the HasPrefix predicate on the "list_url" field.
func ListURLHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldListURL, v))
}

// ListURLHasSuffix applies the HasSuffix predicate on the "list_url" field.
func ListURLHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldListURL, v))
}

// ListURLIsNil applies the IsNil predicate on the "list_url" field.
func ListURLIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldListURL))
}

// ListURLNotNil applies the NotNil predicate on the "list_url" field.
func ListURLNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldListURL))
}

// ListURLEqualFold applies the EqualFold predicate on the "list_url" field.
func ListURLEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldListURL, v))
}

// ListURLContainsFold applies the ContainsFold predicate on the "list_url" field.
func ListURLContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldListURL, v))
}

// DetailURLEQ applies the EQ predicate on the "detail_url" field.
func DetailURLEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDetailURL, v))
}

// DetailURLNEQ applies the NEQ predicate on the "detail_url" field.
func DetailURLNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDetailURL, v))
}

// DetailURLIn applies the In predicate on the "detail_url" field.
func DetailURLIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDetailURL, vs...))
}

// DetailURLNotIn applies the NotIn predicate on the "detail_url" field.
func DetailURLNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDetailURL, vs...))
}

// DetailURLGT applies the GT predicate on the "detail_url" field.
func DetailURLGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDetailURL, v))
}

// DetailURLGTE applies the GTE predicate on the "detail_url" field.
func DetailURLGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDetailURL, v))
}

// DetailURLLT applies the LT predicate on the "detail_url" field.
func DetailURLLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDetailURL, v))
}

// DetailURLLTE applies the LTE predicate on the "detail_url" field.
func DetailURLLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDetailURL, v))
}

// DetailURLContains applies the Contains predicate on the "detail_url" field.
func DetailURLContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldDetailURL, v))
}

// DetailURLHasPrefix applies the HasPrefix predicate on the "detail_url" field.
func DetailURLHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldDetailURL, v))
}

// DetailURLHasSuffix applies the HasSuffix predicate on the "detail_url" field.
func DetailURLHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldDetailURL, v))
}

// DetailURLIsNil applies the IsNil predicate on the "detail_url" field.
func DetailURLIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldDetailURL))
}

// DetailURLNotNil applies the NotNil predicate on the "detail_url" field.
func DetailURLNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldDetailURL))
}

// DetailURLEqualFold applies the EqualFold predicate on the "detail_url" field.
func DetailURLEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldDetailURL, v))
}

// DetailURLContainsFold applies the ContainsFold predicate on the "detail_url" field.
func DetailURLContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldDetailURL, v))
}

// RawLeftoversIsNil applies the IsNil predicate on the "raw_leftovers" field.
func RawLeftoversIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldRawLeftovers))
}

// RawLeftoversNotNil applies the NotNil predicate on the "raw_leftovers" field.
func RawLeftoversNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldRawLeftovers))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldLastSeenAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUnits applies the HasEdge predicate on the "units" edge.
func HasUnits() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UnitsTable, UnitsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUnitsWith applies the HasEdge predicate on the "units" edge with a given conditions (other predicates).
func HasUnitsWith(preds ...predicate.Unit) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newUnitsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttachments applies the HasEdge predicate on the "attachments" edge.
func HasAttachments() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttachmentsWith applies the HasEdge predicate on the "attachments" edge with a given conditions (other predicates).
func HasAttachmentsWith(preds ...predicate.Attachment) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newAttachmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImages applies the HasEdge predicate on the "images" edge.
func HasImages() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImagesWith applies the HasEdge predicate on the "images" edge with a given conditions (other predicates).
func HasImagesWith(preds ...predicate.Image) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newImagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTables applies the HasEdge predicate on the "tables" edge.
func HasTables() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TablesTable, TablesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTablesWith applies the HasEdge predicate on the "tables" edge with a given conditions (other predicates).
func HasTablesWith(preds ...predicate.TableRaw) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newTablesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSources applies the HasEdge predicate on the "sources" edge.
func HasSources() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourcesWith applies the HasEdge predicate on the "sources" edge with a given conditions (other predicates).
func HasSourcesWith(preds ...predicate.SourceMap) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newSourcesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
