// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/attachment"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/google/uuid"
)

// Attachment is the model entity for the Attachment schema.
type Attachment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// RecordID holds the value of the "record_id" field.
	RecordID string `json:"record_id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// TextPath holds the value of the "text_path" field.
	TextPath *string `json:"text_path,omitempty"`
	// IsOcr holds the value of the "is_ocr" field.
	IsOcr bool `json:"is_ocr,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttachmentQuery when eager-loading is set.
	Edges        AttachmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttachmentEdges holds the relations/edges for other nodes in the graph.
type AttachmentEdges struct {
	// Item holds the value of the item edge.
	Item *Item `json:"item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemOrErr returns the Item value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttachmentEdges) ItemOrErr() (*Item, error) {
	if e.Item != nil {
		return e.Item, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: item.Label}
	}
	return nil, &NotLoadedError{edge: "item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attachment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attachment.FieldContentHash:
			values[i] = new([]byte)
		case attachment.FieldIsOcr:
			values[i] = new(sql.NullBool)
		case attachment.FieldItemID, attachment.FieldRecordID, attachment.FieldSourcePath, attachment.FieldFileExt, attachment.FieldRole, attachment.FieldTextPath:
			values[i] = new(sql.NullString)
		case attachment.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attachment fields.
func (_m *Attachment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attachment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case attachment.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case attachment.FieldRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value.Valid {
				_m.RecordID = value.String
			}
		case attachment.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case attachment.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case attachment.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case attachment.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case attachment.FieldTextPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_path", values[i])
			} else if value.Valid {
				_m.TextPath = new(string)
				*_m.TextPath = value.String
			}
		case attachment.FieldIsOcr:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_ocr", values[i])
			} else if value.Valid {
				_m.IsOcr = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Attachment.
// This includes values selected through modifiers, order, etc.
func (_m *Attachment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItem queries the "item" edge of the Attachment entity.
func (_m *Attachment) QueryItem() *ItemQuery {
	return NewAttachmentClient(_m.config).QueryItem(_m)
}

// Update returns a builder for updating this Attachment.
// Note that you need to call Attachment.Unwrap() before calling this method if this Attachment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attachment) Update() *AttachmentUpdateOne {
	return NewAttachmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attachment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attachment) Unwrap() *Attachment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attachment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attachment) String() string {
	var builder strings.Builder
	builder.WriteString("Attachment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("record_id=")
	builder.WriteString(_m.RecordID)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	if v := _m.TextPath; v != nil {
		builder.WriteString("text_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_ocr=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsOcr))
	builder.WriteByte(')')
	return builder.String()
}

// Attachments is a parsable slice of Attachment.
type Attachments []*Attachment
