// Code generated by ent, DO NOT EDIT.

package unit

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the unit type in the database.
	Label = "unit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldUnitType holds the string denoting the unit_type field in the database.
	FieldUnitType = "unit_type"
	// FieldDepositKrw holds the string denoting the deposit_krw field in the database.
	FieldDepositKrw = "deposit_krw"
	// FieldRentKrw holds the string denoting the rent_krw field in the database.
	FieldRentKrw = "rent_krw"
	// FieldAreaM2 holds the string denoting the area_m2 field in the database.
	FieldAreaM2 = "area_m2"
	// FieldSupply holds the string denoting the supply field in the database.
	FieldSupply = "supply"
	// EdgeItem holds the string denoting the item edge name in mutations.
	EdgeItem = "item"
	// ItemFieldID holds the string denoting the ID field of the Item.
	ItemFieldID = "item_id"
	// Table holds the table name of the unit in the database.
	Table = "units"
	// ItemTable is the table that holds the item relation/edge.
	ItemTable = "units"
	// ItemInverseTable is the table name for the Item entity.
	// It exists in this package in order to avoid circular dependency with the "item" package.
	ItemInverseTable = "items"
	// ItemColumn is the table column denoting the item relation/edge.
	ItemColumn = "item_id"
)

// Columns holds all SQL columns for unit fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldUnitType,
	FieldDepositKrw,
	FieldRentKrw,
	FieldAreaM2,
	FieldSupply,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// UnitTypeValidator is a validator for the "unit_type" field. It is called by the builders before save.
	UnitTypeValidator func(string) error
	// SupplyValidator is a validator for the "supply" field. It is called by the builders before save.
	SupplyValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Unit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByUnitType orders the results by the unit_type field.
func ByUnitType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitType, opts...).ToFunc()
}

// ByDepositKrw orders the results by the deposit_krw field.
func ByDepositKrw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepositKrw, opts...).ToFunc()
}

// ByRentKrw orders the results by the rent_krw field.
func ByRentKrw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRentKrw, opts...).ToFunc()
}

// ByAreaM2 orders the results by the area_m2 field.
func ByAreaM2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAreaM2, opts...).ToFunc()
}

// BySupply orders the results by the supply field.
func BySupply(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupply, opts...).ToFunc()
}

// ByItemField orders the results by item field.
func ByItemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemStep(), sql.OrderByField(field, opts...))
	}
}
func newItemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemInverseTable, ItemFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ItemTable, ItemColumn),
	)
}
