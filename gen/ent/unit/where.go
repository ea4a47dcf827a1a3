// Code generated by ent, DO NOT EDIT.

package unit

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldItemID, v))
}

// UnitType applies equality check predicate on the "unit_type" field. It's identical to UnitTypeEQ.
func UnitType(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldUnitType, v))
}

// DepositKrw applies equality check predicate on the "deposit_krw" field. It's identical to DepositKrwEQ.
func DepositKrw(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldDepositKrw, v))
}

// RentKrw applies equality check predicate on the "rent_krw" field. It's identical to RentKrwEQ.
func RentKrw(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldRentKrw, v))
}

// AreaM2 applies equality check predicate on the "area_m2" field. It's identical to AreaM2EQ.
func AreaM2(v float64) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldAreaM2, v))
}

// Supply applies equality check predicate on the "supply" field. It's identical to SupplyEQ.
func Supply(v int) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldSupply, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldItemID, v))
}

// UnitTypeEQ applies the EQ predicate on the "unit_type" field.
func UnitTypeEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldUnitType, v))
}

// UnitTypeNEQ applies the NEQ predicate on the "unit_type" field.
func UnitTypeNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldUnitType, v))
}

// UnitTypeIn applies the In predicate on the "unit_type" field.
func UnitTypeIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldUnitType, vs...))
}

// UnitTypeNotIn applies the NotIn predicate on the "unit_type" field.
func UnitTypeNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldUnitType, vs...))
}

// UnitTypeGT applies the GT predicate on the "unit_type" field.
func UnitTypeGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldUnitType, v))
}

// UnitTypeGTE applies the GTE predicate on the "unit_type" field.
func UnitTypeGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldUnitType, v))
}

// UnitTypeLT applies the LT predicate on the "unit_type" field.
func UnitTypeLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldUnitType, v))
}

// UnitTypeLTE applies the LTE predicate on the "unit_type" field.
func UnitTypeLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldUnitType, v))
}

// UnitTypeContains applies the Contains predicate on the "unit_type" field.
func UnitTypeContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldUnitType, v))
}

// UnitTypeHasPrefix applies the HasPrefix predicate on the "unit_type" field.
func UnitTypeHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldUnitType, v))
}

// UnitTypeHasSuffix applies the HasSuffix predicate on the "unit_type" field.
func UnitTypeHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldUnitType, v))
}

// UnitTypeEqualFold applies the EqualFold predicate on the "unit_type" field.
func UnitTypeEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldUnitType, v))
}

// UnitTypeContainsFold applies the ContainsFold predicate on the "unit_type" field.
func UnitTypeContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldUnitType, v))
}

// DepositKrwEQ applies the EQ predicate on the "deposit_krw" field.
func DepositKrwEQ(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldDepositKrw, v))
}

// DepositKrwNEQ applies the NEQ predicate on the "deposit_krw" field.
func DepositKrwNEQ(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldDepositKrw, v))
}

// DepositKrwIn applies the In predicate on the "deposit_krw" field.
func DepositKrwIn(vs ...int64) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldDepositKrw, vs...))
}

// DepositKrwNotIn applies the NotIn predicate on the "deposit_krw" field.
func DepositKrwNotIn(vs ...int64) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldDepositKrw, vs...))
}

// DepositKrwGT applies the GT predicate on the "deposit_krw" field.
func DepositKrwGT(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldDepositKrw, v))
}

// DepositKrwGTE applies the GTE predicate on the "deposit_krw" field.
func DepositKrwGTE(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldDepositKrw, v))
}

// DepositKrwLT applies the LT predicate on the "deposit_krw" field.
func DepositKrwLT(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldDepositKrw, v))
}

// DepositKrwLTE applies the LTE predicate on the "deposit_krw" field.
func DepositKrwLTE(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldDepositKrw, v))
}

// DepositKrwIsNil applies the IsNil predicate on the "deposit_krw" field.
func DepositKrwIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldDepositKrw))
}

// DepositKrwNotNil applies the NotNil predicate on the "deposit_krw" field.
func DepositKrwNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldDepositKrw))
}

// RentKrwEQ applies the EQ predicate on the "rent_krw" field.
func RentKrwEQ(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldRentKrw, v))
}

// RentKrwNEQ applies the NEQ predicate on the "rent_krw" field.
func RentKrwNEQ(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldRentKrw, v))
}

// RentKrwIn applies the In predicate on the "rent_krw" field.
func RentKrwIn(vs ...int64) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldRentKrw, vs...))
}

// RentKrwNotIn applies the NotIn predicate on the "rent_krw" field.
func RentKrwNotIn(vs ...int64) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldRentKrw, vs...))
}

// RentKrwGT applies the GT predicate on the "rent_krw" field.
func RentKrwGT(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldRentKrw, v))
}

// RentKrwGTE applies the GTE predicate on the "rent_krw" field.
func RentKrwGTE(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldRentKrw, v))
}

// RentKrwLT applies the LT predicate on the "rent_krw" field.
func RentKrwLT(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldRentKrw, v))
}

// RentKrwLTE applies the LTE predicate on the "rent_krw" field.
func RentKrwLTE(v int64) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldRentKrw, v))
}

// RentKrwIsNil applies the IsNil predicate on the "rent_krw" field.
func RentKrwIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldRentKrw))
}

// RentKrwNotNil applies the NotNil predicate on the "rent_krw" field.
func RentKrwNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldRentKrw))
}

// AreaM2EQ applies the EQ predicate on the "area_m2" field.
func AreaM2EQ(v float64) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldAreaM2, v))
}

// AreaM2NEQ applies the NEQ predicate on the "area_m2" field.
func AreaM2NEQ(v float64) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldAreaM2, v))
}

// AreaM2In applies the In predicate on the "area_m2" field.
func AreaM2In(vs ...float64) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldAreaM2, vs...))
}

// AreaM2NotIn applies the NotIn predicate on the "area_m2" field.
func AreaM2NotIn(vs ...float64) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldAreaM2, vs...))
}

// AreaM2GT applies the GT predicate on the "area_m2" field.
func AreaM2GT(v float64) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldAreaM2, v))
}

// AreaM2GTE applies the GTE predicate on the "area_m2" field.
func AreaM2GTE(v float64) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldAreaM2, v))
}

// AreaM2LT applies the LT predicate on the "area_m2" field.
func AreaM2LT(v float64) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldAreaM2, v))
}

// AreaM2LTE applies the LTE predicate on the "area_m2" field.
func AreaM2LTE(v float64) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldAreaM2, v))
}

// AreaM2IsNil applies the IsNil predicate on the "area_m2" field.
func AreaM2IsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldAreaM2))
}

// AreaM2NotNil applies the NotNil predicate on the "area_m2" field.
func AreaM2NotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldAreaM2))
}

// SupplyEQ applies the EQ predicate on the "supply" field.
func SupplyEQ(v int) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldSupply, v))
}

// SupplyNEQ applies the NEQ predicate on the "supply" field.
func SupplyNEQ(v int) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldSupply, v))
}

// SupplyIn applies the In predicate on the "supply" field.
func SupplyIn(vs ...int) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldSupply, vs...))
}

// SupplyNotIn applies the NotIn predicate on the "supply" field.
func SupplyNotIn(vs ...int) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldSupply, vs...))
}

// SupplyGT applies the GT predicate on the "supply" field.
func SupplyGT(v int) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldSupply, v))
}

// SupplyGTE applies the GTE predicate on the "supply" field.
func SupplyGTE(v int) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldSupply, v))
}

// SupplyLT applies the LT predicate on the "supply" field.
func SupplyLT(v int) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldSupply, v))
}

// SupplyLTE applies the LTE predicate on the "supply" field.
func SupplyLTE(v int) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldSupply, v))
}

// SupplyIsNil applies the IsNil predicate on the "supply" field.
func SupplyIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldSupply))
}

// SupplyNotNil applies the NotNil predicate on the "supply" field.
func SupplyNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldSupply))
}

// HasItem applies the HasEdge predicate on the "item" edge.
func HasItem() predicate.Unit {
	return predicate.Unit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ItemTable, ItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemWith applies the HasEdge predicate on the "item" edge with a given conditions (other predicates).
func HasItemWith(preds ...predicate.Item) predicate.Unit {
	return predicate.Unit(func(s *sql.Selector) {
		step := newItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.NotPredicates(p))
}
