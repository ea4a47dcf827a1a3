// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// AddrRaw holds the value of the "addr_raw" field.
	AddrRaw string `json:"addr_raw,omitempty"`
	// AddrStd holds the value of the "addr_std" field.
	AddrStd string `json:"addr_std,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lng holds the value of the "lng" field.
	Lng *float64 `json:"lng,omitempty"`
	// DepositKrw holds the value of the "deposit_krw" field.
	DepositKrw *int64 `json:"deposit_krw,omitempty"`
	// RentKrw holds the value of the "rent_krw" field.
	RentKrw *int64 `json:"rent_krw,omitempty"`
	// AreaM2 holds the value of the "area_m2" field.
	AreaM2 *float64 `json:"area_m2,omitempty"`
	// ApplyStart holds the value of the "apply_start" field.
	ApplyStart *time.Time `json:"apply_start,omitempty"`
	// ApplyEnd holds the value of the "apply_end" field.
	ApplyEnd *time.Time `json:"apply_end,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ListURL holds the value of the "list_url" field.
	ListURL string `json:"list_url,omitempty"`
	// DetailURL holds the value of the "detail_url" field.
	DetailURL string `json:"detail_url,omitempty"`
	// RawLeftovers holds the value of the "raw_leftovers" field.
	RawLeftovers json.RawMessage `json:"raw_leftovers,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ItemQuery when eager-loading is set.
	Edges        ItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ItemEdges holds the relations/edges for other nodes in the graph.
type ItemEdges struct {
	// Units holds the value of the units edge.
	Units []*Unit `json:"units,omitempty"`
	// Attachments holds the value of the attachments edge.
	Attachments []*Attachment `json:"attachments,omitempty"`
	// Images holds the value of the images edge.
	Images []*Image `json:"images,omitempty"`
	// Tables holds the value of the tables edge.
	Tables []*TableRaw `json:"tables,omitempty"`
	// Sources holds the value of the sources edge.
	Sources []*SourceMap `json:"sources,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// UnitsOrErr returns the Units value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) UnitsOrErr() ([]*Unit, error) {
	if e.loadedTypes[0] {
		return e.Units, nil
	}
	return nil, &NotLoadedError{edge: "units"}
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) AttachmentsOrErr() ([]*Attachment, error) {
	if e.loadedTypes[1] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// ImagesOrErr returns the Images value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) ImagesOrErr() ([]*Image, error) {
	if e.loadedTypes[2] {
		return e.Images, nil
	}
	return nil, &NotLoadedError{edge: "images"}
}

// TablesOrErr returns the Tables value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) TablesOrErr() ([]*TableRaw, error) {
	if e.loadedTypes[3] {
		return e.Tables, nil
	}
	return nil, &NotLoadedError{edge: "tables"}
}

// SourcesOrErr returns the Sources value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) SourcesOrErr() ([]*SourceMap, error) {
	if e.loadedTypes[4] {
		return e.Sources, nil
	}
	return nil, &NotLoadedError{edge: "sources"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldRawLeftovers:
			values[i] = new([]byte)
		case item.FieldLat, item.FieldLng, item.FieldAreaM2:
			values[i] = new(sql.NullFloat64)
		case item.FieldDepositKrw, item.FieldRentKrw:
			values[i] = new(sql.NullInt64)
		case item.FieldID, item.FieldPlatform, item.FieldTitle, item.FieldAddrRaw, item.FieldAddrStd, item.FieldCategory, item.FieldStatus, item.FieldListURL, item.FieldDetailURL:
			values[i] = new(sql.NullString)
		case item.FieldApplyStart, item.FieldApplyEnd, item.FieldFirstSeenAt, item.FieldLastSeenAt, item.FieldCreatedAt, item.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (_m *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case item.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case item.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case item.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case item.FieldAddrRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field addr_raw", values[i])
			} else if value.Valid {
				_m.AddrRaw = value.String
			}
		case item.FieldAddrStd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field addr_std", values[i])
			} else if value.Valid {
				_m.AddrStd = value.String
			}
		case item.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case item.FieldLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lng", values[i])
			} else if value.Valid {
				_m.Lng = new(float64)
				*_m.Lng = value.Float64
			}
		case item.FieldDepositKrw:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deposit_krw", values[i])
			} else if value.Valid {
				_m.DepositKrw = new(int64)
				*_m.DepositKrw = value.Int64
			}
		case item.FieldRentKrw:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rent_krw", values[i])
			} else if value.Valid {
				_m.RentKrw = new(int64)
				*_m.RentKrw = value.Int64
			}
		case item.FieldAreaM2:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area_m2", values[i])
			} else if value.Valid {
				_m.AreaM2 = new(float64)
				*_m.AreaM2 = value.Float64
			}
		case item.FieldApplyStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field apply_start", values[i])
			} else if value.Valid {
				_m.ApplyStart = new(time.Time)
				*_m.ApplyStart = value.Time
			}
		case item.FieldApplyEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field apply_end", values[i])
			} else if value.Valid {
				_m.ApplyEnd = new(time.Time)
				*_m.ApplyEnd = value.Time
			}
		case item.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case item.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case item.FieldListURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field list_url", values[i])
			} else if value.Valid {
				_m.ListURL = value.String
			}
		case item.FieldDetailURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail_url", values[i])
			} else if value.Valid {
				_m.DetailURL = value.String
			}
		case item.FieldRawLeftovers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_leftovers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawLeftovers); err != nil {
					return fmt.Errorf("unmarshal field raw_leftovers: %w", err)
				}
			}
		case item.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case item.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case item.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case item.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (_m *Item) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUnits queries the "units" edge of the Item entity.
func (_m *Item) QueryUnits() *UnitQuery {
	return NewItemClient(_m.config).QueryUnits(_m)
}

// QueryAttachments queries the "attachments" edge of the Item entity.
func (_m *Item) QueryAttachments() *AttachmentQuery {
	return NewItemClient(_m.config).QueryAttachments(_m)
}

// QueryImages queries the "images" edge of the Item entity.
func (_m *Item) QueryImages() *ImageQuery {
	return NewItemClient(_m.config).QueryImages(_m)
}

// QueryTables queries the "tables" edge of the Item entity.
func (_m *Item) QueryTables() *TableRawQuery {
	return NewItemClient(_m.config).QueryTables(_m)
}

// QuerySources queries the "sources" edge of the Item entity.
func (_m *Item) QuerySources() *SourceMapQuery {
	return NewItemClient(_m.config).QuerySources(_m)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Item) Update() *ItemUpdateOne {
	return NewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Item) Unwrap() *Item {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("addr_raw=")
	builder.WriteString(_m.AddrRaw)
	builder.WriteString(", ")
	builder.WriteString("addr_std=")
	builder.WriteString(_m.AddrStd)
	builder.WriteString(", ")
	if v := _m.Lat; v != nil {
		builder.WriteString("lat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Lng; v != nil {
		builder.WriteString("lng=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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
	if v := _m.ApplyStart; v != nil {
		builder.WriteString("apply_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ApplyEnd; v != nil {
		builder.WriteString("apply_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("list_url=")
	builder.WriteString(_m.ListURL)
	builder.WriteString(", ")
	builder.WriteString("detail_url=")
	builder.WriteString(_m.DetailURL)
	builder.WriteString(", ")
	builder.WriteString("raw_leftovers=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawLeftovers))
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
