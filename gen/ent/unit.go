// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/unit"
	"github.com/google/uuid"
)

// Unit is the model entity for the Unit schema.
type Unit struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// UnitType holds the value of the "unit_type" field.
	UnitType string `json:"unit_type,omitempty"`
	// DepositKrw holds the value of the "deposit_krw" field.
	DepositKrw *int64 `json:"deposit_krw,omitempty"`
	// RentKrw holds the value of the "rent_krw" field.
	RentKrw *int64 `json:"rent_krw,omitempty"`
	// AreaM2 holds the value of the "area_m2" field.
	AreaM2 *float64 `json:"area_m2,omitempty"`
	// Supply holds the value of the "supply" field.
	Supply *int `json:"supply,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UnitQuery when eager-loading is set.
	Edges        UnitEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UnitEdges holds the relations/edges for other nodes in the graph.
type UnitEdges struct {
	// Item holds the value of the item edge.
	Item *Item `json:"item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemOrErr returns the Item value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UnitEdges) ItemOrErr() (*Item, error) {
	if e.Item != nil {
		return e.Item, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: item.Label}
	}
	return nil, &NotLoadedError{edge: "item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Unit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unit.FieldAreaM2:
			values[i] = new(sql.NullFloat64)
		case unit.FieldDepositKrw, unit.FieldRentKrw, unit.FieldSupply:
			values[i] = new(sql.NullInt64)
		case unit.FieldItemID, unit.FieldUnitType:
			values[i] = new(sql.NullString)
		case unit.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Unit fields.
func (_m *Unit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unit.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case unit.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case unit.FieldUnitType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_type", values[i])
			} else if value.Valid {
				_m.UnitType = value.String
			}
		case unit.FieldDepositKrw:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deposit_krw", values[i])
			} else if value.Valid {
				_m.DepositKrw = new(int64)
				*_m.DepositKrw = value.Int64
			}
		case unit.FieldRentKrw:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rent_krw", values[i])
			} else if value.Valid {
				_m.RentKrw = new(int64)
				*_m.RentKrw = value.Int64
			}
		case unit.FieldAreaM2:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area_m2", values[i])
			} else if value.Valid {
				_m.AreaM2 = new(float64)
				*_m.AreaM2 = value.Float64
			}
		case unit.FieldSupply:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field supply", values[i])
			} else if value.Valid {
				_m.Supply = new(int)
				*_m.Supply = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Unit.
// This includes values selected through modifiers, order, etc.
func (_m *Unit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItem queries the "item" edge of the Unit entity.
func (_m *Unit) QueryItem() *ItemQuery {
	return NewUnitClient(_m.config).QueryItem(_m)
}

// Update returns a builder for updating this Unit.
// Note that you need to call Unit.Unwrap() before calling this method if this Unit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Unit) Update() *UnitUpdateOne {
	return NewUnitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Unit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Unit) Unwrap() *Unit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Unit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Unit) String() string {
	var builder strings.Builder
	builder.WriteString("Unit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("unit_type=")
	builder.WriteString(_m.UnitType)
	builder.WriteString(", ")
	if v := _m.DepositKrw; v != nil {
		builder.WriteString("deposit_krw=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RentKrw; v != nil {
		builder.WriteString("rent_krw=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AreaM2; v != nil {
		builder.WriteString("area_m2=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Supply; v != nil {
		builder.WriteString("supply=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Units is a parsable slice of Unit.
type Units []*Unit
