// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/sourcemap"
	"github.com/google/uuid"
)

// SourceMap is the model entity for the SourceMap schema.
type SourceMap struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// RecordID holds the value of the "record_id" field.
	RecordID string `json:"record_id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// CrawledAt holds the value of the "crawled_at" field.
	CrawledAt time.Time `json:"crawled_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceMapQuery when eager-loading is set.
	Edges        SourceMapEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceMapEdges holds the relations/edges for other nodes in the graph.
type SourceMapEdges struct {
	// Item holds the value of the item edge.
	Item *Item `json:"item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemOrErr returns the Item value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceMapEdges) ItemOrErr() (*Item, error) {
	if e.Item != nil {
		return e.Item, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: item.Label}
	}
	return nil, &NotLoadedError{edge: "item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceMap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcemap.FieldItemID, sourcemap.FieldRecordID, sourcemap.FieldPlatform:
			values[i] = new(sql.NullString)
		case sourcemap.FieldCrawledAt:
			values[i] = new(sql.NullTime)
		case sourcemap.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceMap fields.
func (_m *SourceMap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcemap.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sourcemap.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case sourcemap.FieldRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value.Valid {
				_m.RecordID = value.String
			}
		case sourcemap.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case sourcemap.FieldCrawledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field crawled_at", values[i])
			} else if value.Valid {
				_m.CrawledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SourceMap.
// This includes values selected through modifiers, order, etc.
func (_m *SourceMap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItem queries the "item" edge of the SourceMap entity.
func (_m *SourceMap) QueryItem() *ItemQuery {
	return NewSourceMapClient(_m.config).QueryItem(_m)
}

// Update returns a builder for updating this SourceMap.
// Note that you need to call SourceMap.Unwrap() before calling this method if this SourceMap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceMap) Update() *SourceMapUpdateOne {
	return NewSourceMapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceMap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceMap) Unwrap() *SourceMap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceMap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceMap) String() string {
	var builder strings.Builder
	builder.WriteString("SourceMap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("record_id=")
	builder.WriteString(_m.RecordID)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("crawled_at=")
	builder.WriteString(_m.CrawledAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceMaps is a parsable slice of SourceMap.
type SourceMaps []*SourceMap
