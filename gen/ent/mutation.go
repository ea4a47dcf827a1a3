// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/attachment"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/image"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/item"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/predicate"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/sourcemap"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/tableraw"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/unit"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttachment = "Attachment"
	TypeImage      = "Image"
	TypeItem       = "Item"
	TypeSourceMap  = "SourceMap"
	TypeTableRaw   = "TableRaw"
	TypeUnit       = "Unit"
)

// AttachmentMutation represents an operation that mutates the Attachment nodes in the graph.
type AttachmentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	record_id     *string
	source_path   *string
	file_ext      *string
	content_hash  *[]byte
	role          *string
	text_path     *string
	is_ocr        *bool
	clearedFields map[string]struct{}
	item          *string
	cleareditem   bool
	done          bool
	oldValue      func(context.Context) (*Attachment, error)
	predicates    []predicate.Attachment
}

var _ ent.Mutation = (*AttachmentMutation)(nil)

// attachmentOption allows management of the mutation configuration using functional options.
type attachmentOption func(*AttachmentMutation)

// newAttachmentMutation creates new mutation for the Attachment entity.
func newAttachmentMutation(c config, op Op, opts ...attachmentOption) *AttachmentMutation {
	m := &AttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttachmentID sets the ID field of the mutation.
func withAttachmentID(id uuid.UUID) attachmentOption {
	return func(m *AttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Attachment
		)
		m.oldValue = func(ctx context.Context) (*Attachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttachment sets the old Attachment of the mutation.
func withAttachment(node *Attachment) attachmentOption {
	return func(m *AttachmentMutation) {
		m.oldValue = func(context.Context) (*Attachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attachment entities.
func (m *AttachmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttachmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttachmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *AttachmentMutation) SetItemID(s string) {
	m.item = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AttachmentMutation) ItemID() (r string, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AttachmentMutation) ResetItemID() {
	m.item = nil
}

// SetRecordID sets the "record_id" field.
func (m *AttachmentMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *AttachmentMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *AttachmentMutation) ResetRecordID() {
	m.record_id = nil
}

// SetSourcePath sets the "source_path" field.
func (m *AttachmentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *AttachmentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *AttachmentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *AttachmentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *AttachmentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *AttachmentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetContentHash sets the "content_hash" field.
func (m *AttachmentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *AttachmentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *AttachmentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetRole sets the "role" field.
func (m *AttachmentMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AttachmentMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AttachmentMutation) ResetRole() {
	m.role = nil
}

// SetTextPath sets the "text_path" field.
func (m *AttachmentMutation) SetTextPath(s string) {
	m.text_path = &s
}

// TextPath returns the value of the "text_path" field in the mutation.
func (m *AttachmentMutation) TextPath() (r string, exists bool) {
	v := m.text_path
	if v == nil {
		return
	}
	return *v, true
}

// OldTextPath returns the old "text_path" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldTextPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextPath: %w", err)
	}
	return oldValue.TextPath, nil
}

// ClearTextPath clears the value of the "text_path" field.
func (m *AttachmentMutation) ClearTextPath() {
	m.text_path = nil
	m.clearedFields[attachment.FieldTextPath] = struct{}{}
}

// TextPathCleared returns if the "text_path" field was cleared in this mutation.
func (m *AttachmentMutation) TextPathCleared() bool {
	_, ok := m.clearedFields[attachment.FieldTextPath]
	return ok
}

// ResetTextPath resets all changes to the "text_path" field.
func (m *AttachmentMutation) ResetTextPath() {
	m.text_path = nil
	delete(m.clearedFields, attachment.FieldTextPath)
}

// SetIsOcr sets the "is_ocr" field.
func (m *AttachmentMutation) SetIsOcr(b bool) {
	m.is_ocr = &b
}

// IsOcr returns the value of the "is_ocr" field in the mutation.
func (m *AttachmentMutation) IsOcr() (r bool, exists bool) {
	v := m.is_ocr
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOcr returns the old "is_ocr" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldIsOcr(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOcr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOcr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOcr: %w", err)
	}
	return oldValue.IsOcr, nil
}

// ResetIsOcr resets all changes to the "is_ocr" field.
func (m *AttachmentMutation) ResetIsOcr() {
	m.is_ocr = nil
}

// ClearItem clears the "item" edge to the Item entity.
func (m *AttachmentMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[attachment.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the Item entity was cleared.
func (m *AttachmentMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *AttachmentMutation) ItemIDs() (ids []string) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *AttachmentMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// Where appends a list predicates to the AttachmentMutation builder.
func (m *AttachmentMutation) Where(ps ...predicate.Attachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attachment).
func (m *AttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttachmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.item != nil {
		fields = append(fields, attachment.FieldItemID)
	}
	if m.record_id != nil {
		fields = append(fields, attachment.FieldRecordID)
	}
	if m.source_path != nil {
		fields = append(fields, attachment.FieldSourcePath)
	}
	if m.file_ext != nil {
		fields = append(fields, attachment.FieldFileExt)
	}
	if m.content_hash != nil {
		fields = append(fields, attachment.FieldContentHash)
	}
	if m.role != nil {
		fields = append(fields, attachment.FieldRole)
	}
	if m.text_path != nil {
		fields = append(fields, attachment.FieldTextPath)
	}
	if m.is_ocr != nil {
		fields = append(fields, attachment.FieldIsOcr)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldItemID:
		return m.ItemID()
	case attachment.FieldRecordID:
		return m.RecordID()
	case attachment.FieldSourcePath:
		return m.SourcePath()
	case attachment.FieldFileExt:
		return m.FileExt()
	case attachment.FieldContentHash:
		return m.ContentHash()
	case attachment.FieldRole:
		return m.Role()
	case attachment.FieldTextPath:
		return m.TextPath()
	case attachment.FieldIsOcr:
		return m.IsOcr()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attachment.FieldItemID:
		return m.OldItemID(ctx)
	case attachment.FieldRecordID:
		return m.OldRecordID(ctx)
	case attachment.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case attachment.FieldFileExt:
		return m.OldFileExt(ctx)
	case attachment.FieldContentHash:
		return m.OldContentHash(ctx)
	case attachment.FieldRole:
		return m.OldRole(ctx)
	case attachment.FieldTextPath:
		return m.OldTextPath(ctx)
	case attachment.FieldIsOcr:
		return m.OldIsOcr(ctx)
	}
	return nil, fmt.Errorf("unknown Attachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case attachment.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case attachment.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case attachment.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case attachment.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case attachment.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case attachment.FieldTextPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextPath(v)
		return nil
	case attachment.FieldIsOcr:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOcr(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttachmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttachmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Attachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttachmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attachment.FieldTextPath) {
		fields = append(fields, attachment.FieldTextPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttachmentMutation) ClearField(name string) error {
	switch name {
	case attachment.FieldTextPath:
		m.ClearTextPath()
		return nil
	}
	return fmt.Errorf("unknown Attachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttachmentMutation) ResetField(name string) error {
	switch name {
	case attachment.FieldItemID:
		m.ResetItemID()
		return nil
	case attachment.FieldRecordID:
		m.ResetRecordID()
		return nil
	case attachment.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case attachment.FieldFileExt:
		m.ResetFileExt()
		return nil
	case attachment.FieldContentHash:
		m.ResetContentHash()
		return nil
	case attachment.FieldRole:
		m.ResetRole()
		return nil
	case attachment.FieldTextPath:
		m.ResetTextPath()
		return nil
	case attachment.FieldIsOcr:
		m.ResetIsOcr()
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.item != nil {
		edges = append(edges, attachment.EdgeItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attachment.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditem {
		edges = append(edges, attachment.EdgeItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case attachment.EdgeItem:
		return m.cleareditem
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttachmentMutation) ClearEdge(name string) error {
	switch name {
	case attachment.EdgeItem:
		m.ClearItem()
		return nil
	}
	return fmt.Errorf("unknown Attachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttachmentMutation) ResetEdge(name string) error {
	switch name {
	case attachment.EdgeItem:
		m.ResetItem()
		return nil
	}
	return fmt.Errorf("unknown Attachment edge %s", name)
}

// ImageMutation represents an operation that mutates the Image nodes in the graph.
type ImageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	record_id     *string
	_path         *string
	role          *string
	clearedFields map[string]struct{}
	item          *string
	cleareditem   bool
	done          bool
	oldValue      func(context.Context) (*Image, error)
	predicates    []predicate.Image
}

var _ ent.Mutation = (*ImageMutation)(nil)

// imageOption allows management of the mutation configuration using functional options.
type imageOption func(*ImageMutation)

// newImageMutation creates new mutation for the Image entity.
func newImageMutation(c config, op Op, opts ...imageOption) *ImageMutation {
	m := &ImageMutation{
		config:        c,
		op:            op,
		typ:           TypeImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImageID sets the ID field of the mutation.
func withImageID(id uuid.UUID) imageOption {
	return func(m *ImageMutation) {
		var (
			err   error
			once  sync.Once
			value *Image
		)
		m.oldValue = func(ctx context.Context) (*Image, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Image.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImage sets the old Image of the mutation.
func withImage(node *Image) imageOption {
	return func(m *ImageMutation) {
		m.oldValue = func(context.Context) (*Image, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Image entities.
func (m *ImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Image.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *ImageMutation) SetItemID(s string) {
	m.item = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ImageMutation) ItemID() (r string, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ImageMutation) ResetItemID() {
	m.item = nil
}

// SetRecordID sets the "record_id" field.
func (m *ImageMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *ImageMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *ImageMutation) ResetRecordID() {
	m.record_id = nil
}

// SetPath sets the "path" field.
func (m *ImageMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ImageMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ImageMutation) ResetPath() {
	m._path = nil
}

// SetRole sets the "role" field.
func (m *ImageMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *ImageMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Image entity.
// If the Image object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImageMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ImageMutation) ResetRole() {
	m.role = nil
}

// ClearItem clears the "item" edge to the Item entity.
func (m *ImageMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[image.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the Item entity was cleared.
func (m *ImageMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *ImageMutation) ItemIDs() (ids []string) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *ImageMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// Where appends a list predicates to the ImageMutation builder.
func (m *ImageMutation) Where(ps ...predicate.Image) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Image, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Image).
func (m *ImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.item != nil {
		fields = append(fields, image.FieldItemID)
	}
	if m.record_id != nil {
		fields = append(fields, image.FieldRecordID)
	}
	if m._path != nil {
		fields = append(fields, image.FieldPath)
	}
	if m.role != nil {
		fields = append(fields, image.FieldRole)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case image.FieldItemID:
		return m.ItemID()
	case image.FieldRecordID:
		return m.RecordID()
	case image.FieldPath:
		return m.Path()
	case image.FieldRole:
		return m.Role()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case image.FieldItemID:
		return m.OldItemID(ctx)
	case image.FieldRecordID:
		return m.OldRecordID(ctx)
	case image.FieldPath:
		return m.OldPath(ctx)
	case image.FieldRole:
		return m.OldRole(ctx)
	}
	return nil, fmt.Errorf("unknown Image field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case image.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case image.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case image.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case image.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	}
	return fmt.Errorf("unknown Image field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Image numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Image nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImageMutation) ResetField(name string) error {
	switch name {
	case image.FieldItemID:
		m.ResetItemID()
		return nil
	case image.FieldRecordID:
		m.ResetRecordID()
		return nil
	case image.FieldPath:
		m.ResetPath()
		return nil
	case image.FieldRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown Image field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.item != nil {
		edges = append(edges, image.EdgeItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case image.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditem {
		edges = append(edges, image.EdgeItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImageMutation) EdgeCleared(name string) bool {
	switch name {
	case image.EdgeItem:
		return m.cleareditem
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImageMutation) ClearEdge(name string) error {
	switch name {
	case image.EdgeItem:
		m.ClearItem()
		return nil
	}
	return fmt.Errorf("unknown Image unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImageMutation) ResetEdge(name string) error {
	switch name {
	case image.EdgeItem:
		m.ResetItem()
		return nil
	}
	return fmt.Errorf("unknown Image edge %s", name)
}

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	platform            *string
	title               *string
	addr_raw            *string
	addr_std            *string
	lat                 *float64
	addlat              *float64
	lng                 *float64
	addlng              *float64
	deposit_krw         *int64
	adddeposit_krw      *int64
	rent_krw            *int64
	addrent_krw         *int64
	area_m2             *float64
	addarea_m2          *float64
	apply_start         *time.Time
	apply_end           *time.Time
	category            *string
	status              *string
	list_url            *string
	detail_url          *string
	raw_leftovers       *json.RawMessage
	appendraw_leftovers json.RawMessage
	first_seen_at       *time.Time
	last_seen_at        *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	units               map[uuid.UUID]struct{}
	removedunits        map[uuid.UUID]struct{}
	clearedunits        bool
	attachments         map[uuid.UUID]struct{}
	removedattachments  map[uuid.UUID]struct{}
	clearedattachments  bool
	images              map[uuid.UUID]struct{}
	removedimages       map[uuid.UUID]struct{}
	clearedimages       bool
	tables              map[uuid.UUID]struct{}
	removedtables       map[uuid.UUID]struct{}
	clearedtables       bool
	sources             map[uuid.UUID]struct{}
	removedsources      map[uuid.UUID]struct{}
	clearedsources      bool
	done                bool
	oldValue            func(context.Context) (*Item, error)
	predicates          []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id string) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Item entities.
func (m *ItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *ItemMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *ItemMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *ItemMutation) ResetPlatform() {
	m.platform = nil
}

// SetTitle sets the "title" field.
func (m *ItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ItemMutation) ResetTitle() {
	m.title = nil
}

// SetAddrRaw sets the "addr_raw" field.
func (m *ItemMutation) SetAddrRaw(s string) {
	m.addr_raw = &s
}

// AddrRaw returns the value of the "addr_raw" field in the mutation.
func (m *ItemMutation) AddrRaw() (r string, exists bool) {
	v := m.addr_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldAddrRaw returns the old "addr_raw" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAddrRaw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddrRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddrRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddrRaw: %w", err)
	}
	return oldValue.AddrRaw, nil
}

// ClearAddrRaw clears the value of the "addr_raw" field.
func (m *ItemMutation) ClearAddrRaw() {
	m.addr_raw = nil
	m.clearedFields[item.FieldAddrRaw] = struct{}{}
}

// AddrRawCleared returns if the "addr_raw" field was cleared in this mutation.
func (m *ItemMutation) AddrRawCleared() bool {
	_, ok := m.clearedFields[item.FieldAddrRaw]
	return ok
}

// ResetAddrRaw resets all changes to the "addr_raw" field.
func (m *ItemMutation) ResetAddrRaw() {
	m.addr_raw = nil
	delete(m.clearedFields, item.FieldAddrRaw)
}

// SetAddrStd sets the "addr_std" field.
func (m *ItemMutation) SetAddrStd(s string) {
	m.addr_std = &s
}

// AddrStd returns the value of the "addr_std" field in the mutation.
func (m *ItemMutation) AddrStd() (r string, exists bool) {
	v := m.addr_std
	if v == nil {
		return
	}
	return *v, true
}

// OldAddrStd returns the old "addr_std" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAddrStd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddrStd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddrStd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddrStd: %w", err)
	}
	return oldValue.AddrStd, nil
}

// ClearAddrStd clears the value of the "addr_std" field.
func (m *ItemMutation) ClearAddrStd() {
	m.addr_std = nil
	m.clearedFields[item.FieldAddrStd] = struct{}{}
}

// AddrStdCleared returns if the "addr_std" field was cleared in this mutation.
func (m *ItemMutation) AddrStdCleared() bool {
	_, ok := m.clearedFields[item.FieldAddrStd]
	return ok
}

// ResetAddrStd resets all changes to the "addr_std" field.
func (m *ItemMutation) ResetAddrStd() {
	m.addr_std = nil
	delete(m.clearedFields, item.FieldAddrStd)
}

// SetLat sets the "lat" field.
func (m *ItemMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *ItemMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *ItemMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *ItemMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *ItemMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[item.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *ItemMutation) LatCleared() bool {
	_, ok := m.clearedFields[item.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *ItemMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, item.FieldLat)
}

// SetLng sets the "lng" field.
func (m *ItemMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *ItemMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *ItemMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *ItemMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *ItemMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[item.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *ItemMutation) LngCleared() bool {
	_, ok := m.clearedFields[item.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *ItemMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, item.FieldLng)
}

// SetDepositKrw sets the "deposit_krw" field.
func (m *ItemMutation) SetDepositKrw(i int64) {
	m.deposit_krw = &i
	m.adddeposit_krw = nil
}

// DepositKrw returns the value of the "deposit_krw" field in the mutation.
func (m *ItemMutation) DepositKrw() (r int64, exists bool) {
	v := m.deposit_krw
	if v == nil {
		return
	}
	return *v, true
}

// OldDepositKrw returns the old "deposit_krw" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDepositKrw(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepositKrw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepositKrw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepositKrw: %w", err)
	}
	return oldValue.DepositKrw, nil
}

// AddDepositKrw adds i to the "deposit_krw" field.
func (m *ItemMutation) AddDepositKrw(i int64) {
	if m.adddeposit_krw != nil {
		*m.adddeposit_krw += i
	} else {
		m.adddeposit_krw = &i
	}
}

// AddedDepositKrw returns the value that was added to the "deposit_krw" field in this mutation.
func (m *ItemMutation) AddedDepositKrw() (r int64, exists bool) {
	v := m.adddeposit_krw
	if v == nil {
		return
	}
	return *v, true
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (m *ItemMutation) ClearDepositKrw() {
	m.deposit_krw = nil
	m.adddeposit_krw = nil
	m.clearedFields[item.FieldDepositKrw] = struct{}{}
}

// DepositKrwCleared returns if the "deposit_krw" field was cleared in this mutation.
func (m *ItemMutation) DepositKrwCleared() bool {
	_, ok := m.clearedFields[item.FieldDepositKrw]
	return ok
}

// ResetDepositKrw resets all changes to the "deposit_krw" field.
func (m *ItemMutation) ResetDepositKrw() {
	m.deposit_krw = nil
	m.adddeposit_krw = nil
	delete(m.clearedFields, item.FieldDepositKrw)
}

// SetRentKrw sets the "rent_krw" field.
func (m *ItemMutation) SetRentKrw(i int64) {
	m.rent_krw = &i
	m.addrent_krw = nil
}

// RentKrw returns the value of the "rent_krw" field in the mutation.
func (m *ItemMutation) RentKrw() (r int64, exists bool) {
	v := m.rent_krw
	if v == nil {
		return
	}
	return *v, true
}

// OldRentKrw returns the old "rent_krw" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldRentKrw(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRentKrw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRentKrw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRentKrw: %w", err)
	}
	return oldValue.RentKrw, nil
}

// AddRentKrw adds i to the "rent_krw" field.
func (m *ItemMutation) AddRentKrw(i int64) {
	if m.addrent_krw != nil {
		*m.addrent_krw += i
	} else {
		m.addrent_krw = &i
	}
}

// AddedRentKrw returns the value that was added to the "rent_krw" field in this mutation.
func (m *ItemMutation) AddedRentKrw() (r int64, exists bool) {
	v := m.addrent_krw
	if v == nil {
		return
	}
	return *v, true
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (m *ItemMutation) ClearRentKrw() {
	m.rent_krw = nil
	m.addrent_krw = nil
	m.clearedFields[item.FieldRentKrw] = struct{}{}
}

// RentKrwCleared returns if the "rent_krw" field was cleared in this mutation.
func (m *ItemMutation) RentKrwCleared() bool {
	_, ok := m.clearedFields[item.FieldRentKrw]
	return ok
}

// ResetRentKrw resets all changes to the "rent_krw" field.
func (m *ItemMutation) ResetRentKrw() {
	m.rent_krw = nil
	m.addrent_krw = nil
	delete(m.clearedFields, item.FieldRentKrw)
}

// SetAreaM2 sets the "area_m2" field.
func (m *ItemMutation) SetAreaM2(f float64) {
	m.area_m2 = &f
	m.addarea_m2 = nil
}

// AreaM2 returns the value of the "area_m2" field in the mutation.
func (m *ItemMutation) AreaM2() (r float64, exists bool) {
	v := m.area_m2
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaM2 returns the old "area_m2" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAreaM2(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaM2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaM2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaM2: %w", err)
	}
	return oldValue.AreaM2, nil
}

// AddAreaM2 adds f to the "area_m2" field.
func (m *ItemMutation) AddAreaM2(f float64) {
	if m.addarea_m2 != nil {
		*m.addarea_m2 += f
	} else {
		m.addarea_m2 = &f
	}
}

// AddedAreaM2 returns the value that was added to the "area_m2" field in this mutation.
func (m *ItemMutation) AddedAreaM2() (r float64, exists bool) {
	v := m.addarea_m2
	if v == nil {
		return
	}
	return *v, true
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (m *ItemMutation) ClearAreaM2() {
	m.area_m2 = nil
	m.addarea_m2 = nil
	m.clearedFields[item.FieldAreaM2] = struct{}{}
}

// AreaM2Cleared returns if the "area_m2" field was cleared in this mutation.
func (m *ItemMutation) AreaM2Cleared() bool {
	_, ok := m.clearedFields[item.FieldAreaM2]
	return ok
}

// ResetAreaM2 resets all changes to the "area_m2" field.
func (m *ItemMutation) ResetAreaM2() {
	m.area_m2 = nil
	m.addarea_m2 = nil
	delete(m.clearedFields, item.FieldAreaM2)
}

// SetApplyStart sets the "apply_start" field.
func (m *ItemMutation) SetApplyStart(t time.Time) {
	m.apply_start = &t
}

// ApplyStart returns the value of the "apply_start" field in the mutation.
func (m *ItemMutation) ApplyStart() (r time.Time, exists bool) {
	v := m.apply_start
	if v == nil {
		return
	}
	return *v, true
}

// OldApplyStart returns the old "apply_start" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldApplyStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplyStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplyStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplyStart: %w", err)
	}
	return oldValue.ApplyStart, nil
}

// ClearApplyStart clears the value of the "apply_start" field.
func (m *ItemMutation) ClearApplyStart() {
	m.apply_start = nil
	m.clearedFields[item.FieldApplyStart] = struct{}{}
}

// ApplyStartCleared returns if the "apply_start" field was cleared in this mutation.
func (m *ItemMutation) ApplyStartCleared() bool {
	_, ok := m.clearedFields[item.FieldApplyStart]
	return ok
}

// ResetApplyStart resets all changes to the "apply_start" field.
func (m *ItemMutation) ResetApplyStart() {
	m.apply_start = nil
	delete(m.clearedFields, item.FieldApplyStart)
}

// SetApplyEnd sets the "apply_end" field.
func (m *ItemMutation) SetApplyEnd(t time.Time) {
	m.apply_end = &t
}

// ApplyEnd returns the value of the "apply_end" field in the mutation.
func (m *ItemMutation) ApplyEnd() (r time.Time, exists bool) {
	v := m.apply_end
	if v == nil {
		return
	}
	return *v, true
}

// OldApplyEnd returns the old "apply_end" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldApplyEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplyEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplyEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplyEnd: %w", err)
	}
	return oldValue.ApplyEnd, nil
}

// ClearApplyEnd clears the value of the "apply_end" field.
func (m *ItemMutation) ClearApplyEnd() {
	m.apply_end = nil
	m.clearedFields[item.FieldApplyEnd] = struct{}{}
}

// ApplyEndCleared returns if the "apply_end" field was cleared in this mutation.
func (m *ItemMutation) ApplyEndCleared() bool {
	_, ok := m.clearedFields[item.FieldApplyEnd]
	return ok
}

// ResetApplyEnd resets all changes to the "apply_end" field.
func (m *ItemMutation) ResetApplyEnd() {
	m.apply_end = nil
	delete(m.clearedFields, item.FieldApplyEnd)
}

// SetCategory sets the "category" field.
func (m *ItemMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ItemMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ItemMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[item.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ItemMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[item.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ItemMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, item.FieldCategory)
}

// SetStatus sets the "status" field.
func (m *ItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ItemMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[item.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ItemMutation) StatusCleared() bool {
	_, ok := m.clearedFields[item.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ItemMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, item.FieldStatus)
}

// SetListURL sets the "list_url" field.
func (m *ItemMutation) SetListURL(s string) {
	m.list_url = &s
}

// ListURL returns the value of the "list_url" field in the mutation.
func (m *ItemMutation) ListURL() (r string, exists bool) {
	v := m.list_url
	if v == nil {
		return
	}
	return *v, true
}

// OldListURL returns the old "list_url" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldListURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListURL: %w", err)
	}
	return oldValue.ListURL, nil
}

// ClearListURL clears the value of the "list_url" field.
func (m *ItemMutation) ClearListURL() {
	m.list_url = nil
	m.clearedFields[item.FieldListURL] = struct{}{}
}

// ListURLCleared returns if the "list_url" field was cleared in this mutation.
func (m *ItemMutation) ListURLCleared() bool {
	_, ok := m.clearedFields[item.FieldListURL]
	return ok
}

// ResetListURL resets all changes to the "list_url" field.
func (m *ItemMutation) ResetListURL() {
	m.list_url = nil
	delete(m.clearedFields, item.FieldListURL)
}

// SetDetailURL sets the "detail_url" field.
func (m *ItemMutation) SetDetailURL(s string) {
	m.detail_url = &s
}

// DetailURL returns the value of the "detail_url" field in the mutation.
func (m *ItemMutation) DetailURL() (r string, exists bool) {
	v := m.detail_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDetailURL returns the old "detail_url" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDetailURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetailURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetailURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetailURL: %w", err)
	}
	return oldValue.DetailURL, nil
}

// ClearDetailURL clears the value of the "detail_url" field.
func (m *ItemMutation) ClearDetailURL() {
	m.detail_url = nil
	m.clearedFields[item.FieldDetailURL] = struct{}{}
}

// DetailURLCleared returns if the "detail_url" field was cleared in this mutation.
func (m *ItemMutation) DetailURLCleared() bool {
	_, ok := m.clearedFields[item.FieldDetailURL]
	return ok
}

// ResetDetailURL resets all changes to the "detail_url" field.
func (m *ItemMutation) ResetDetailURL() {
	m.detail_url = nil
	delete(m.clearedFields, item.FieldDetailURL)
}

// SetRawLeftovers sets the "raw_leftovers" field.
func (m *ItemMutation) SetRawLeftovers(jm json.RawMessage) {
	m.raw_leftovers = &jm
	m.appendraw_leftovers = nil
}

// RawLeftovers returns the value of the "raw_leftovers" field in the mutation.
func (m *ItemMutation) RawLeftovers() (r json.RawMessage, exists bool) {
	v := m.raw_leftovers
	if v == nil {
		return
	}
	return *v, true
}

// OldRawLeftovers returns the old "raw_leftovers" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldRawLeftovers(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawLeftovers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawLeftovers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawLeftovers: %w", err)
	}
	return oldValue.RawLeftovers, nil
}

// AppendRawLeftovers adds jm to the "raw_leftovers" field.
func (m *ItemMutation) AppendRawLeftovers(jm json.RawMessage) {
	m.appendraw_leftovers = append(m.appendraw_leftovers, jm...)
}

// AppendedRawLeftovers returns the list of values that were appended to the "raw_leftovers" field in this mutation.
func (m *ItemMutation) AppendedRawLeftovers() (json.RawMessage, bool) {
	if len(m.appendraw_leftovers) == 0 {
		return nil, false
	}
	return m.appendraw_leftovers, true
}

// ClearRawLeftovers clears the value of the "raw_leftovers" field.
func (m *ItemMutation) ClearRawLeftovers() {
	m.raw_leftovers = nil
	m.appendraw_leftovers = nil
	m.clearedFields[item.FieldRawLeftovers] = struct{}{}
}

// RawLeftoversCleared returns if the "raw_leftovers" field was cleared in this mutation.
func (m *ItemMutation) RawLeftoversCleared() bool {
	_, ok := m.clearedFields[item.FieldRawLeftovers]
	return ok
}

// ResetRawLeftovers resets all changes to the "raw_leftovers" field.
func (m *ItemMutation) ResetRawLeftovers() {
	m.raw_leftovers = nil
	m.appendraw_leftovers = nil
	delete(m.clearedFields, item.FieldRawLeftovers)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *ItemMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *ItemMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *ItemMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *ItemMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *ItemMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *ItemMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUnitIDs adds the "units" edge to the Unit entity by ids.
func (m *ItemMutation) AddUnitIDs(ids ...uuid.UUID) {
	if m.units == nil {
		m.units = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.units[ids[i]] = struct{}{}
	}
}

// ClearUnits clears the "units" edge to the Unit entity.
func (m *ItemMutation) ClearUnits() {
	m.clearedunits = true
}

// UnitsCleared reports if the "units" edge to the Unit entity was cleared.
func (m *ItemMutation) UnitsCleared() bool {
	return m.clearedunits
}

// RemoveUnitIDs removes the "units" edge to the Unit entity by IDs.
func (m *ItemMutation) RemoveUnitIDs(ids ...uuid.UUID) {
	if m.removedunits == nil {
		m.removedunits = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.units, ids[i])
		m.removedunits[ids[i]] = struct{}{}
	}
}

// RemovedUnits returns the removed IDs of the "units" edge to the Unit entity.
func (m *ItemMutation) RemovedUnitsIDs() (ids []uuid.UUID) {
	for id := range m.removedunits {
		ids = append(ids, id)
	}
	return
}

// UnitsIDs returns the "units" edge IDs in the mutation.
func (m *ItemMutation) UnitsIDs() (ids []uuid.UUID) {
	for id := range m.units {
		ids = append(ids, id)
	}
	return
}

// ResetUnits resets all changes to the "units" edge.
func (m *ItemMutation) ResetUnits() {
	m.units = nil
	m.clearedunits = false
	m.removedunits = nil
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by ids.
func (m *ItemMutation) AddAttachmentIDs(ids ...uuid.UUID) {
	if m.attachments == nil {
		m.attachments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the Attachment entity.
func (m *ItemMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the Attachment entity was cleared.
func (m *ItemMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the Attachment entity by IDs.
func (m *ItemMutation) RemoveAttachmentIDs(ids ...uuid.UUID) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the Attachment entity.
func (m *ItemMutation) RemovedAttachmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *ItemMutation) AttachmentsIDs() (ids []uuid.UUID) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *ItemMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// AddImageIDs adds the "images" edge to the Image entity by ids.
func (m *ItemMutation) AddImageIDs(ids ...uuid.UUID) {
	if m.images == nil {
		m.images = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.images[ids[i]] = struct{}{}
	}
}

// ClearImages clears the "images" edge to the Image entity.
func (m *ItemMutation) ClearImages() {
	m.clearedimages = true
}

// ImagesCleared reports if the "images" edge to the Image entity was cleared.
func (m *ItemMutation) ImagesCleared() bool {
	return m.clearedimages
}

// RemoveImageIDs removes the "images" edge to the Image entity by IDs.
func (m *ItemMutation) RemoveImageIDs(ids ...uuid.UUID) {
	if m.removedimages == nil {
		m.removedimages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.images, ids[i])
		m.removedimages[ids[i]] = struct{}{}
	}
}

// RemovedImages returns the removed IDs of the "images" edge to the Image entity.
func (m *ItemMutation) RemovedImagesIDs() (ids []uuid.UUID) {
	for id := range m.removedimages {
		ids = append(ids, id)
	}
	return
}

// ImagesIDs returns the "images" edge IDs in the mutation.
func (m *ItemMutation) ImagesIDs() (ids []uuid.UUID) {
	for id := range m.images {
		ids = append(ids, id)
	}
	return
}

// ResetImages resets all changes to the "images" edge.
func (m *ItemMutation) ResetImages() {
	m.images = nil
	m.clearedimages = false
	m.removedimages = nil
}

// AddTableIDs adds the "tables" edge to the TableRaw entity by ids.
func (m *ItemMutation) AddTableIDs(ids ...uuid.UUID) {
	if m.tables == nil {
		m.tables = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tables[ids[i]] = struct{}{}
	}
}

// ClearTables clears the "tables" edge to the TableRaw entity.
func (m *ItemMutation) ClearTables() {
	m.clearedtables = true
}

// TablesCleared reports if the "tables" edge to the TableRaw entity was cleared.
func (m *ItemMutation) TablesCleared() bool {
	return m.clearedtables
}

// RemoveTableIDs removes the "tables" edge to the TableRaw entity by IDs.
func (m *ItemMutation) RemoveTableIDs(ids ...uuid.UUID) {
	if m.removedtables == nil {
		m.removedtables = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tables, ids[i])
		m.removedtables[ids[i]] = struct{}{}
	}
}

// RemovedTables returns the removed IDs of the "tables" edge to the TableRaw entity.
func (m *ItemMutation) RemovedTablesIDs() (ids []uuid.UUID) {
	for id := range m.removedtables {
		ids = append(ids, id)
	}
	return
}

// TablesIDs returns the "tables" edge IDs in the mutation.
func (m *ItemMutation) TablesIDs() (ids []uuid.UUID) {
	for id := range m.tables {
		ids = append(ids, id)
	}
	return
}

// ResetTables resets all changes to the "tables" edge.
func (m *ItemMutation) ResetTables() {
	m.tables = nil
	m.clearedtables = false
	m.removedtables = nil
}

// AddSourceIDs adds the "sources" edge to the SourceMap entity by ids.
func (m *ItemMutation) AddSourceIDs(ids ...uuid.UUID) {
	if m.sources == nil {
		m.sources = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sources[ids[i]] = struct{}{}
	}
}

// ClearSources clears the "sources" edge to the SourceMap entity.
func (m *ItemMutation) ClearSources() {
	m.clearedsources = true
}

// SourcesCleared reports if the "sources" edge to the SourceMap entity was cleared.
func (m *ItemMutation) SourcesCleared() bool {
	return m.clearedsources
}

// RemoveSourceIDs removes the "sources" edge to the SourceMap entity by IDs.
func (m *ItemMutation) RemoveSourceIDs(ids ...uuid.UUID) {
	if m.removedsources == nil {
		m.removedsources = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sources, ids[i])
		m.removedsources[ids[i]] = struct{}{}
	}
}

// RemovedSources returns the removed IDs of the "sources" edge to the SourceMap entity.
func (m *ItemMutation) RemovedSourcesIDs() (ids []uuid.UUID) {
	for id := range m.removedsources {
		ids = append(ids, id)
	}
	return
}

// SourcesIDs returns the "sources" edge IDs in the mutation.
func (m *ItemMutation) SourcesIDs() (ids []uuid.UUID) {
	for id := range m.sources {
		ids = append(ids, id)
	}
	return
}

// ResetSources resets all changes to the "sources" edge.
func (m *ItemMutation) ResetSources() {
	m.sources = nil
	m.clearedsources = false
	m.removedsources = nil
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.platform != nil {
		fields = append(fields, item.FieldPlatform)
	}
	if m.title != nil {
		fields = append(fields, item.FieldTitle)
	}
	if m.addr_raw != nil {
		fields = append(fields, item.FieldAddrRaw)
	}
	if m.addr_std != nil {
		fields = append(fields, item.FieldAddrStd)
	}
	if m.lat != nil {
		fields = append(fields, item.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, item.FieldLng)
	}
	if m.deposit_krw != nil {
		fields = append(fields, item.FieldDepositKrw)
	}
	if m.rent_krw != nil {
		fields = append(fields, item.FieldRentKrw)
	}
	if m.area_m2 != nil {
		fields = append(fields, item.FieldAreaM2)
	}
	if m.apply_start != nil {
		fields = append(fields, item.FieldApplyStart)
	}
	if m.apply_end != nil {
		fields = append(fields, item.FieldApplyEnd)
	}
	if m.category != nil {
		fields = append(fields, item.FieldCategory)
	}
	if m.status != nil {
		fields = append(fields, item.FieldStatus)
	}
	if m.list_url != nil {
		fields = append(fields, item.FieldListURL)
	}
	if m.detail_url != nil {
		fields = append(fields, item.FieldDetailURL)
	}
	if m.raw_leftovers != nil {
		fields = append(fields, item.FieldRawLeftovers)
	}
	if m.first_seen_at != nil {
		fields = append(fields, item.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, item.FieldLastSeenAt)
	}
	if m.created_at != nil {
		fields = append(fields, item.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, item.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldPlatform:
		return m.Platform()
	case item.FieldTitle:
		return m.Title()
	case item.FieldAddrRaw:
		return m.AddrRaw()
	case item.FieldAddrStd:
		return m.AddrStd()
	case item.FieldLat:
		return m.Lat()
	case item.FieldLng:
		return m.Lng()
	case item.FieldDepositKrw:
		return m.DepositKrw()
	case item.FieldRentKrw:
		return m.RentKrw()
	case item.FieldAreaM2:
		return m.AreaM2()
	case item.FieldApplyStart:
		return m.ApplyStart()
	case item.FieldApplyEnd:
		return m.ApplyEnd()
	case item.FieldCategory:
		return m.Category()
	case item.FieldStatus:
		return m.Status()
	case item.FieldListURL:
		return m.ListURL()
	case item.FieldDetailURL:
		return m.DetailURL()
	case item.FieldRawLeftovers:
		return m.RawLeftovers()
	case item.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case item.FieldLastSeenAt:
		return m.LastSeenAt()
	case item.FieldCreatedAt:
		return m.CreatedAt()
	case item.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldPlatform:
		return m.OldPlatform(ctx)
	case item.FieldTitle:
		return m.OldTitle(ctx)
	case item.FieldAddrRaw:
		return m.OldAddrRaw(ctx)
	case item.FieldAddrStd:
		return m.OldAddrStd(ctx)
	case item.FieldLat:
		return m.OldLat(ctx)
	case item.FieldLng:
		return m.OldLng(ctx)
	case item.FieldDepositKrw:
		return m.OldDepositKrw(ctx)
	case item.FieldRentKrw:
		return m.OldRentKrw(ctx)
	case item.FieldAreaM2:
		return m.OldAreaM2(ctx)
	case item.FieldApplyStart:
		return m.OldApplyStart(ctx)
	case item.FieldApplyEnd:
		return m.OldApplyEnd(ctx)
	case item.FieldCategory:
		return m.OldCategory(ctx)
	case item.FieldStatus:
		return m.OldStatus(ctx)
	case item.FieldListURL:
		return m.OldListURL(ctx)
	case item.FieldDetailURL:
		return m.OldDetailURL(ctx)
	case item.FieldRawLeftovers:
		return m.OldRawLeftovers(ctx)
	case item.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case item.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case item.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case item.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case item.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case item.FieldAddrRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddrRaw(v)
		return nil
	case item.FieldAddrStd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddrStd(v)
		return nil
	case item.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case item.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case item.FieldDepositKrw:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepositKrw(v)
		return nil
	case item.FieldRentKrw:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRentKrw(v)
		return nil
	case item.FieldAreaM2:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaM2(v)
		return nil
	case item.FieldApplyStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplyStart(v)
		return nil
	case item.FieldApplyEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplyEnd(v)
		return nil
	case item.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case item.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case item.FieldListURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListURL(v)
		return nil
	case item.FieldDetailURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetailURL(v)
		return nil
	case item.FieldRawLeftovers:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawLeftovers(v)
		return nil
	case item.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case item.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case item.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case item.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	var fields []string
	if m.addlat != nil {
		fields = append(fields, item.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, item.FieldLng)
	}
	if m.adddeposit_krw != nil {
		fields = append(fields, item.FieldDepositKrw)
	}
	if m.addrent_krw != nil {
		fields = append(fields, item.FieldRentKrw)
	}
	if m.addarea_m2 != nil {
		fields = append(fields, item.FieldAreaM2)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case item.FieldLat:
		return m.AddedLat()
	case item.FieldLng:
		return m.AddedLng()
	case item.FieldDepositKrw:
		return m.AddedDepositKrw()
	case item.FieldRentKrw:
		return m.AddedRentKrw()
	case item.FieldAreaM2:
		return m.AddedAreaM2()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case item.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case item.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	case item.FieldDepositKrw:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepositKrw(v)
		return nil
	case item.FieldRentKrw:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRentKrw(v)
		return nil
	case item.FieldAreaM2:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAreaM2(v)
		return nil
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(item.FieldAddrRaw) {
		fields = append(fields, item.FieldAddrRaw)
	}
	if m.FieldCleared(item.FieldAddrStd) {
		fields = append(fields, item.FieldAddrStd)
	}
	if m.FieldCleared(item.FieldLat) {
		fields = append(fields, item.FieldLat)
	}
	if m.FieldCleared(item.FieldLng) {
		fields = append(fields, item.FieldLng)
	}
	if m.FieldCleared(item.FieldDepositKrw) {
		fields = append(fields, item.FieldDepositKrw)
	}
	if m.FieldCleared(item.FieldRentKrw) {
		fields = append(fields, item.FieldRentKrw)
	}
	if m.FieldCleared(item.FieldAreaM2) {
		fields = append(fields, item.FieldAreaM2)
	}
	if m.FieldCleared(item.FieldApplyStart) {
		fields = append(fields, item.FieldApplyStart)
	}
	if m.FieldCleared(item.FieldApplyEnd) {
		fields = append(fields, item.FieldApplyEnd)
	}
	if m.FieldCleared(item.FieldCategory) {
		fields = append(fields, item.FieldCategory)
	}
	if m.FieldCleared(item.FieldStatus) {
		fields = append(fields, item.FieldStatus)
	}
	if m.FieldCleared(item.FieldListURL) {
		fields = append(fields, item.FieldListURL)
	}
	if m.FieldCleared(item.FieldDetailURL) {
		fields = append(fields, item.FieldDetailURL)
	}
	if m.FieldCleared(item.FieldRawLeftovers) {
		fields = append(fields, item.FieldRawLeftovers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	switch name {
	case item.FieldAddrRaw:
		m.ClearAddrRaw()
		return nil
	case item.FieldAddrStd:
		m.ClearAddrStd()
		return nil
	case item.FieldLat:
		m.ClearLat()
		return nil
	case item.FieldLng:
		m.ClearLng()
		return nil
	case item.FieldDepositKrw:
		m.ClearDepositKrw()
		return nil
	case item.FieldRentKrw:
		m.ClearRentKrw()
		return nil
	case item.FieldAreaM2:
		m.ClearAreaM2()
		return nil
	case item.FieldApplyStart:
		m.ClearApplyStart()
		return nil
	case item.FieldApplyEnd:
		m.ClearApplyEnd()
		return nil
	case item.FieldCategory:
		m.ClearCategory()
		return nil
	case item.FieldStatus:
		m.ClearStatus()
		return nil
	case item.FieldListURL:
		m.ClearListURL()
		return nil
	case item.FieldDetailURL:
		m.ClearDetailURL()
		return nil
	case item.FieldRawLeftovers:
		m.ClearRawLeftovers()
		return nil
	}
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldPlatform:
		m.ResetPlatform()
		return nil
	case item.FieldTitle:
		m.ResetTitle()
		return nil
	case item.FieldAddrRaw:
		m.ResetAddrRaw()
		return nil
	case item.FieldAddrStd:
		m.ResetAddrStd()
		return nil
	case item.FieldLat:
		m.ResetLat()
		return nil
	case item.FieldLng:
		m.ResetLng()
		return nil
	case item.FieldDepositKrw:
		m.ResetDepositKrw()
		return nil
	case item.FieldRentKrw:
		m.ResetRentKrw()
		return nil
	case item.FieldAreaM2:
		m.ResetAreaM2()
		return nil
	case item.FieldApplyStart:
		m.ResetApplyStart()
		return nil
	case item.FieldApplyEnd:
		m.ResetApplyEnd()
		return nil
	case item.FieldCategory:
		m.ResetCategory()
		return nil
	case item.FieldStatus:
		m.ResetStatus()
		return nil
	case item.FieldListURL:
		m.ResetListURL()
		return nil
	case item.FieldDetailURL:
		m.ResetDetailURL()
		return nil
	case item.FieldRawLeftovers:
		m.ResetRawLeftovers()
		return nil
	case item.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case item.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case item.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case item.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.units != nil {
		edges = append(edges, item.EdgeUnits)
	}
	if m.attachments != nil {
		edges = append(edges, item.EdgeAttachments)
	}
	if m.images != nil {
		edges = append(edges, item.EdgeImages)
	}
	if m.tables != nil {
		edges = append(edges, item.EdgeTables)
	}
	if m.sources != nil {
		edges = append(edges, item.EdgeSources)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case item.EdgeUnits:
		ids := make([]ent.Value, 0, len(m.units))
		for id := range m.units {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeImages:
		ids := make([]ent.Value, 0, len(m.images))
		for id := range m.images {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeTables:
		ids := make([]ent.Value, 0, len(m.tables))
		for id := range m.tables {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeSources:
		ids := make([]ent.Value, 0, len(m.sources))
		for id := range m.sources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedunits != nil {
		edges = append(edges, item.EdgeUnits)
	}
	if m.removedattachments != nil {
		edges = append(edges, item.EdgeAttachments)
	}
	if m.removedimages != nil {
		edges = append(edges, item.EdgeImages)
	}
	if m.removedtables != nil {
		edges = append(edges, item.EdgeTables)
	}
	if m.removedsources != nil {
		edges = append(edges, item.EdgeSources)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case item.EdgeUnits:
		ids := make([]ent.Value, 0, len(m.removedunits))
		for id := range m.removedunits {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeImages:
		ids := make([]ent.Value, 0, len(m.removedimages))
		for id := range m.removedimages {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeTables:
		ids := make([]ent.Value, 0, len(m.removedtables))
		for id := range m.removedtables {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeSources:
		ids := make([]ent.Value, 0, len(m.removedsources))
		for id := range m.removedsources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedunits {
		edges = append(edges, item.EdgeUnits)
	}
	if m.clearedattachments {
		edges = append(edges, item.EdgeAttachments)
	}
	if m.clearedimages {
		edges = append(edges, item.EdgeImages)
	}
	if m.clearedtables {
		edges = append(edges, item.EdgeTables)
	}
	if m.clearedsources {
		edges = append(edges, item.EdgeSources)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	switch name {
	case item.EdgeUnits:
		return m.clearedunits
	case item.EdgeAttachments:
		return m.clearedattachments
	case item.EdgeImages:
		return m.clearedimages
	case item.EdgeTables:
		return m.clearedtables
	case item.EdgeSources:
		return m.clearedsources
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	switch name {
	case item.EdgeUnits:
		m.ResetUnits()
		return nil
	case item.EdgeAttachments:
		m.ResetAttachments()
		return nil
	case item.EdgeImages:
		m.ResetImages()
		return nil
	case item.EdgeTables:
		m.ResetTables()
		return nil
	case item.EdgeSources:
		m.ResetSources()
		return nil
	}
	return fmt.Errorf("unknown Item edge %s", name)
}

// SourceMapMutation represents an operation that mutates the SourceMap nodes in the graph.
type SourceMapMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	record_id     *string
	platform      *string
	crawled_at    *time.Time
	clearedFields map[string]struct{}
	item          *string
	cleareditem   bool
	done          bool
	oldValue      func(context.Context) (*SourceMap, error)
	predicates    []predicate.SourceMap
}

var _ ent.Mutation = (*SourceMapMutation)(nil)

// sourcemapOption allows management of the mutation configuration using functional options.
type sourcemapOption func(*SourceMapMutation)

// newSourceMapMutation creates new mutation for the SourceMap entity.
func newSourceMapMutation(c config, op Op, opts ...sourcemapOption) *SourceMapMutation {
	m := &SourceMapMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceMap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceMapID sets the ID field of the mutation.
func withSourceMapID(id uuid.UUID) sourcemapOption {
	return func(m *SourceMapMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceMap
		)
		m.oldValue = func(ctx context.Context) (*SourceMap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceMap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceMap sets the old SourceMap of the mutation.
func withSourceMap(node *SourceMap) sourcemapOption {
	return func(m *SourceMapMutation) {
		m.oldValue = func(context.Context) (*SourceMap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceMap entities.
func (m *SourceMapMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMapMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMapMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceMap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *SourceMapMutation) SetItemID(s string) {
	m.item = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *SourceMapMutation) ItemID() (r string, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the SourceMap entity.
// If the SourceMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMapMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *SourceMapMutation) ResetItemID() {
	m.item = nil
}

// SetRecordID sets the "record_id" field.
func (m *SourceMapMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *SourceMapMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the SourceMap entity.
// If the SourceMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMapMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *SourceMapMutation) ResetRecordID() {
	m.record_id = nil
}

// SetPlatform sets the "platform" field.
func (m *SourceMapMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *SourceMapMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the SourceMap entity.
// If the SourceMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMapMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *SourceMapMutation) ResetPlatform() {
	m.platform = nil
}

// SetCrawledAt sets the "crawled_at" field.
func (m *SourceMapMutation) SetCrawledAt(t time.Time) {
	m.crawled_at = &t
}

// CrawledAt returns the value of the "crawled_at" field in the mutation.
func (m *SourceMapMutation) CrawledAt() (r time.Time, exists bool) {
	v := m.crawled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCrawledAt returns the old "crawled_at" field's value of the SourceMap entity.
// If the SourceMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMapMutation) OldCrawledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrawledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrawledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrawledAt: %w", err)
	}
	return oldValue.CrawledAt, nil
}

// ResetCrawledAt resets all changes to the "crawled_at" field.
func (m *SourceMapMutation) ResetCrawledAt() {
	m.crawled_at = nil
}

// ClearItem clears the "item" edge to the Item entity.
func (m *SourceMapMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[sourcemap.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the Item entity was cleared.
func (m *SourceMapMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *SourceMapMutation) ItemIDs() (ids []string) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *SourceMapMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// Where appends a list predicates to the SourceMapMutation builder.
func (m *SourceMapMutation) Where(ps ...predicate.SourceMap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceMap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceMap).
func (m *SourceMapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMapMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.item != nil {
		fields = append(fields, sourcemap.FieldItemID)
	}
	if m.record_id != nil {
		fields = append(fields, sourcemap.FieldRecordID)
	}
	if m.platform != nil {
		fields = append(fields, sourcemap.FieldPlatform)
	}
	if m.crawled_at != nil {
		fields = append(fields, sourcemap.FieldCrawledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcemap.FieldItemID:
		return m.ItemID()
	case sourcemap.FieldRecordID:
		return m.RecordID()
	case sourcemap.FieldPlatform:
		return m.Platform()
	case sourcemap.FieldCrawledAt:
		return m.CrawledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcemap.FieldItemID:
		return m.OldItemID(ctx)
	case sourcemap.FieldRecordID:
		return m.OldRecordID(ctx)
	case sourcemap.FieldPlatform:
		return m.OldPlatform(ctx)
	case sourcemap.FieldCrawledAt:
		return m.OldCrawledAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceMap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcemap.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case sourcemap.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case sourcemap.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case sourcemap.FieldCrawledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrawledAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceMap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMapMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMapMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMapMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SourceMap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMapMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMapMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceMap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMapMutation) ResetField(name string) error {
	switch name {
	case sourcemap.FieldItemID:
		m.ResetItemID()
		return nil
	case sourcemap.FieldRecordID:
		m.ResetRecordID()
		return nil
	case sourcemap.FieldPlatform:
		m.ResetPlatform()
		return nil
	case sourcemap.FieldCrawledAt:
		m.ResetCrawledAt()
		return nil
	}
	return fmt.Errorf("unknown SourceMap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMapMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.item != nil {
		edges = append(edges, sourcemap.EdgeItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMapMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcemap.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMapMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditem {
		edges = append(edges, sourcemap.EdgeItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMapMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcemap.EdgeItem:
		return m.cleareditem
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMapMutation) ClearEdge(name string) error {
	switch name {
	case sourcemap.EdgeItem:
		m.ClearItem()
		return nil
	}
	return fmt.Errorf("unknown SourceMap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMapMutation) ResetEdge(name string) error {
	switch name {
	case sourcemap.EdgeItem:
		m.ResetItem()
		return nil
	}
	return fmt.Errorf("unknown SourceMap edge %s", name)
}

// TableRawMutation represents an operation that mutates the TableRaw nodes in the graph.
type TableRawMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	record_id     *string
	_path         *string
	format        *string
	clearedFields map[string]struct{}
	item          *string
	cleareditem   bool
	done          bool
	oldValue      func(context.Context) (*TableRaw, error)
	predicates    []predicate.TableRaw
}

var _ ent.Mutation = (*TableRawMutation)(nil)

// tablerawOption allows management of the mutation configuration using functional options.
type tablerawOption func(*TableRawMutation)

// newTableRawMutation creates new mutation for the TableRaw entity.
func newTableRawMutation(c config, op Op, opts ...tablerawOption) *TableRawMutation {
	m := &TableRawMutation{
		config:        c,
		op:            op,
		typ:           TypeTableRaw,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTableRawID sets the ID field of the mutation.
func withTableRawID(id uuid.UUID) tablerawOption {
	return func(m *TableRawMutation) {
		var (
			err   error
			once  sync.Once
			value *TableRaw
		)
		m.oldValue = func(ctx context.Context) (*TableRaw, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TableRaw.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTableRaw sets the old TableRaw of the mutation.
func withTableRaw(node *TableRaw) tablerawOption {
	return func(m *TableRawMutation) {
		m.oldValue = func(context.Context) (*TableRaw, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TableRawMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TableRawMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TableRaw entities.
func (m *TableRawMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TableRawMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TableRawMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TableRaw.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *TableRawMutation) SetItemID(s string) {
	m.item = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *TableRawMutation) ItemID() (r string, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the TableRaw entity.
// If the TableRaw object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableRawMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *TableRawMutation) ResetItemID() {
	m.item = nil
}

// SetRecordID sets the "record_id" field.
func (m *TableRawMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *TableRawMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the TableRaw entity.
// If the TableRaw object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableRawMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *TableRawMutation) ResetRecordID() {
	m.record_id = nil
}

// SetPath sets the "path" field.
func (m *TableRawMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *TableRawMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the TableRaw entity.
// If the TableRaw object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableRawMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *TableRawMutation) ResetPath() {
	m._path = nil
}

// SetFormat sets the "format" field.
func (m *TableRawMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *TableRawMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the TableRaw entity.
// If the TableRaw object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TableRawMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *TableRawMutation) ResetFormat() {
	m.format = nil
}

// ClearItem clears the "item" edge to the Item entity.
func (m *TableRawMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[tableraw.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the Item entity was cleared.
func (m *TableRawMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *TableRawMutation) ItemIDs() (ids []string) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *TableRawMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// Where appends a list predicates to the TableRawMutation builder.
func (m *TableRawMutation) Where(ps ...predicate.TableRaw) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TableRawMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TableRawMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TableRaw, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TableRawMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TableRawMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TableRaw).
func (m *TableRawMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TableRawMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.item != nil {
		fields = append(fields, tableraw.FieldItemID)
	}
	if m.record_id != nil {
		fields = append(fields, tableraw.FieldRecordID)
	}
	if m._path != nil {
		fields = append(fields, tableraw.FieldPath)
	}
	if m.format != nil {
		fields = append(fields, tableraw.FieldFormat)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TableRawMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tableraw.FieldItemID:
		return m.ItemID()
	case tableraw.FieldRecordID:
		return m.RecordID()
	case tableraw.FieldPath:
		return m.Path()
	case tableraw.FieldFormat:
		return m.Format()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TableRawMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tableraw.FieldItemID:
		return m.OldItemID(ctx)
	case tableraw.FieldRecordID:
		return m.OldRecordID(ctx)
	case tableraw.FieldPath:
		return m.OldPath(ctx)
	case tableraw.FieldFormat:
		return m.OldFormat(ctx)
	}
	return nil, fmt.Errorf("unknown TableRaw field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TableRawMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tableraw.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case tableraw.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case tableraw.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case tableraw.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	}
	return fmt.Errorf("unknown TableRaw field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TableRawMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TableRawMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TableRawMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TableRaw numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TableRawMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TableRawMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TableRawMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TableRaw nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TableRawMutation) ResetField(name string) error {
	switch name {
	case tableraw.FieldItemID:
		m.ResetItemID()
		return nil
	case tableraw.FieldRecordID:
		m.ResetRecordID()
		return nil
	case tableraw.FieldPath:
		m.ResetPath()
		return nil
	case tableraw.FieldFormat:
		m.ResetFormat()
		return nil
	}
	return fmt.Errorf("unknown TableRaw field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TableRawMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.item != nil {
		edges = append(edges, tableraw.EdgeItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TableRawMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tableraw.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TableRawMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TableRawMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TableRawMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditem {
		edges = append(edges, tableraw.EdgeItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TableRawMutation) EdgeCleared(name string) bool {
	switch name {
	case tableraw.EdgeItem:
		return m.cleareditem
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TableRawMutation) ClearEdge(name string) error {
	switch name {
	case tableraw.EdgeItem:
		m.ClearItem()
		return nil
	}
	return fmt.Errorf("unknown TableRaw unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TableRawMutation) ResetEdge(name string) error {
	switch name {
	case tableraw.EdgeItem:
		m.ResetItem()
		return nil
	}
	return fmt.Errorf("unknown TableRaw edge %s", name)
}

// UnitMutation represents an operation that mutates the Unit nodes in the graph.
type UnitMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	unit_type      *string
	deposit_krw    *int64
	adddeposit_krw *int64
	rent_krw       *int64
	addrent_krw    *int64
	area_m2        *float64
	addarea_m2     *float64
	supply         *int
	addsupply      *int
	clearedFields  map[string]struct{}
	item           *string
	cleareditem    bool
	done           bool
	oldValue       func(context.Context) (*Unit, error)
	predicates     []predicate.Unit
}

var _ ent.Mutation = (*UnitMutation)(nil)

// unitOption allows management of the mutation configuration using functional options.
type unitOption func(*UnitMutation)

// newUnitMutation creates new mutation for the Unit entity.
func newUnitMutation(c config, op Op, opts ...unitOption) *UnitMutation {
	m := &UnitMutation{
		config:        c,
		op:            op,
		typ:           TypeUnit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitID sets the ID field of the mutation.
func withUnitID(id uuid.UUID) unitOption {
	return func(m *UnitMutation) {
		var (
			err   error
			once  sync.Once
			value *Unit
		)
		m.oldValue = func(ctx context.Context) (*Unit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Unit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnit sets the old Unit of the mutation.
func withUnit(node *Unit) unitOption {
	return func(m *UnitMutation) {
		m.oldValue = func(context.Context) (*Unit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Unit entities.
func (m *UnitMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Unit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *UnitMutation) SetItemID(s string) {
	m.item = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *UnitMutation) ItemID() (r string, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *UnitMutation) ResetItemID() {
	m.item = nil
}

// SetUnitType sets the "unit_type" field.
func (m *UnitMutation) SetUnitType(s string) {
	m.unit_type = &s
}

// UnitType returns the value of the "unit_type" field in the mutation.
func (m *UnitMutation) UnitType() (r string, exists bool) {
	v := m.unit_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitType returns the old "unit_type" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldUnitType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitType: %w", err)
	}
	return oldValue.UnitType, nil
}

// ResetUnitType resets all changes to the "unit_type" field.
func (m *UnitMutation) ResetUnitType() {
	m.unit_type = nil
}

// SetDepositKrw sets the "deposit_krw" field.
func (m *UnitMutation) SetDepositKrw(i int64) {
	m.deposit_krw = &i
	m.adddeposit_krw = nil
}

// DepositKrw returns the value of the "deposit_krw" field in the mutation.
func (m *UnitMutation) DepositKrw() (r int64, exists bool) {
	v := m.deposit_krw
	if v == nil {
		return
	}
	return *v, true
}

// OldDepositKrw returns the old "deposit_krw" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldDepositKrw(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepositKrw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepositKrw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepositKrw: %w", err)
	}
	return oldValue.DepositKrw, nil
}

// AddDepositKrw adds i to the "deposit_krw" field.
func (m *UnitMutation) AddDepositKrw(i int64) {
	if m.adddeposit_krw != nil {
		*m.adddeposit_krw += i
	} else {
		m.adddeposit_krw = &i
	}
}

// AddedDepositKrw returns the value that was added to the "deposit_krw" field in this mutation.
func (m *UnitMutation) AddedDepositKrw() (r int64, exists bool) {
	v := m.adddeposit_krw
	if v == nil {
		return
	}
	return *v, true
}

// ClearDepositKrw clears the value of the "deposit_krw" field.
func (m *UnitMutation) ClearDepositKrw() {
	m.deposit_krw = nil
	m.adddeposit_krw = nil
	m.clearedFields[unit.FieldDepositKrw] = struct{}{}
}

// DepositKrwCleared returns if the "deposit_krw" field was cleared in this mutation.
func (m *UnitMutation) DepositKrwCleared() bool {
	_, ok := m.clearedFields[unit.FieldDepositKrw]
	return ok
}

// ResetDepositKrw resets all changes to the "deposit_krw" field.
func (m *UnitMutation) ResetDepositKrw() {
	m.deposit_krw = nil
	m.adddeposit_krw = nil
	delete(m.clearedFields, unit.FieldDepositKrw)
}

// SetRentKrw sets the "rent_krw" field.
func (m *UnitMutation) SetRentKrw(i int64) {
	m.rent_krw = &i
	m.addrent_krw = nil
}

// RentKrw returns the value of the "rent_krw" field in the mutation.
func (m *UnitMutation) RentKrw() (r int64, exists bool) {
	v := m.rent_krw
	if v == nil {
		return
	}
	return *v, true
}

// OldRentKrw returns the old "rent_krw" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldRentKrw(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRentKrw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRentKrw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRentKrw: %w", err)
	}
	return oldValue.RentKrw, nil
}

// AddRentKrw adds i to the "rent_krw" field.
func (m *UnitMutation) AddRentKrw(i int64) {
	if m.addrent_krw != nil {
		*m.addrent_krw += i
	} else {
		m.addrent_krw = &i
	}
}

// AddedRentKrw returns the value that was added to the "rent_krw" field in this mutation.
func (m *UnitMutation) AddedRentKrw() (r int64, exists bool) {
	v := m.addrent_krw
	if v == nil {
		return
	}
	return *v, true
}

// ClearRentKrw clears the value of the "rent_krw" field.
func (m *UnitMutation) ClearRentKrw() {
	m.rent_krw = nil
	m.addrent_krw = nil
	m.clearedFields[unit.FieldRentKrw] = struct{}{}
}

// RentKrwCleared returns if the "rent_krw" field was cleared in this mutation.
func (m *UnitMutation) RentKrwCleared() bool {
	_, ok := m.clearedFields[unit.FieldRentKrw]
	return ok
}

// ResetRentKrw resets all changes to the "rent_krw" field.
func (m *UnitMutation) ResetRentKrw() {
	m.rent_krw = nil
	m.addrent_krw = nil
	delete(m.clearedFields, unit.FieldRentKrw)
}

// SetAreaM2 sets the "area_m2" field.
func (m *UnitMutation) SetAreaM2(f float64) {
	m.area_m2 = &f
	m.addarea_m2 = nil
}

// AreaM2 returns the value of the "area_m2" field in the mutation.
func (m *UnitMutation) AreaM2() (r float64, exists bool) {
	v := m.area_m2
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaM2 returns the old "area_m2" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldAreaM2(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaM2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaM2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaM2: %w", err)
	}
	return oldValue.AreaM2, nil
}

// AddAreaM2 adds f to the "area_m2" field.
func (m *UnitMutation) AddAreaM2(f float64) {
	if m.addarea_m2 != nil {
		*m.addarea_m2 += f
	} else {
		m.addarea_m2 = &f
	}
}

// AddedAreaM2 returns the value that was added to the "area_m2" field in this mutation.
func (m *UnitMutation) AddedAreaM2() (r float64, exists bool) {
	v := m.addarea_m2
	if v == nil {
		return
	}
	return *v, true
}

// ClearAreaM2 clears the value of the "area_m2" field.
func (m *UnitMutation) ClearAreaM2() {
	m.area_m2 = nil
	m.addarea_m2 = nil
	m.clearedFields[unit.FieldAreaM2] = struct{}{}
}

// AreaM2Cleared returns if the "area_m2" field was cleared in this mutation.
func (m *UnitMutation) AreaM2Cleared() bool {
	_, ok := m.clearedFields[unit.FieldAreaM2]
	return ok
}

// ResetAreaM2 resets all changes to the "area_m2" field.
func (m *UnitMutation) ResetAreaM2() {
	m.area_m2 = nil
	m.addarea_m2 = nil
	delete(m.clearedFields, unit.FieldAreaM2)
}

// SetSupply sets the "supply" field.
func (m *UnitMutation) SetSupply(i int) {
	m.supply = &i
	m.addsupply = nil
}

// Supply returns the value of the "supply" field in the mutation.
func (m *UnitMutation) Supply() (r int, exists bool) {
	v := m.supply
	if v == nil {
		return
	}
	return *v, true
}

// OldSupply returns the old "supply" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldSupply(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupply is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupply requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupply: %w", err)
	}
	return oldValue.Supply, nil
}

// AddSupply adds i to the "supply" field.
func (m *UnitMutation) AddSupply(i int) {
	if m.addsupply != nil {
		*m.addsupply += i
	} else {
		m.addsupply = &i
	}
}

// AddedSupply returns the value that was added to the "supply" field in this mutation.
func (m *UnitMutation) AddedSupply() (r int, exists bool) {
	v := m.addsupply
	if v == nil {
		return
	}
	return *v, true
}

// ClearSupply clears the value of the "supply" field.
func (m *UnitMutation) ClearSupply() {
	m.supply = nil
	m.addsupply = nil
	m.clearedFields[unit.FieldSupply] = struct{}{}
}

// SupplyCleared returns if the "supply" field was cleared in this mutation.
func (m *UnitMutation) SupplyCleared() bool {
	_, ok := m.clearedFields[unit.FieldSupply]
	return ok
}

// ResetSupply resets all changes to the "supply" field.
func (m *UnitMutation) ResetSupply() {
	m.supply = nil
	m.addsupply = nil
	delete(m.clearedFields, unit.FieldSupply)
}

// ClearItem clears the "item" edge to the Item entity.
func (m *UnitMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[unit.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the Item entity was cleared.
func (m *UnitMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *UnitMutation) ItemIDs() (ids []string) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *UnitMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// Where appends a list predicates to the UnitMutation builder.
func (m *UnitMutation) Where(ps ...predicate.Unit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Unit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Unit).
func (m *UnitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.item != nil {
		fields = append(fields, unit.FieldItemID)
	}
	if m.unit_type != nil {
		fields = append(fields, unit.FieldUnitType)
	}
	if m.deposit_krw != nil {
		fields = append(fields, unit.FieldDepositKrw)
	}
	if m.rent_krw != nil {
		fields = append(fields, unit.FieldRentKrw)
	}
	if m.area_m2 != nil {
		fields = append(fields, unit.FieldAreaM2)
	}
	if m.supply != nil {
		fields = append(fields, unit.FieldSupply)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unit.FieldItemID:
		return m.ItemID()
	case unit.FieldUnitType:
		return m.UnitType()
	case unit.FieldDepositKrw:
		return m.DepositKrw()
	case unit.FieldRentKrw:
		return m.RentKrw()
	case unit.FieldAreaM2:
		return m.AreaM2()
	case unit.FieldSupply:
		return m.Supply()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unit.FieldItemID:
		return m.OldItemID(ctx)
	case unit.FieldUnitType:
		return m.OldUnitType(ctx)
	case unit.FieldDepositKrw:
		return m.OldDepositKrw(ctx)
	case unit.FieldRentKrw:
		return m.OldRentKrw(ctx)
	case unit.FieldAreaM2:
		return m.OldAreaM2(ctx)
	case unit.FieldSupply:
		return m.OldSupply(ctx)
	}
	return nil, fmt.Errorf("unknown Unit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unit.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case unit.FieldUnitType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitType(v)
		return nil
	case unit.FieldDepositKrw:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepositKrw(v)
		return nil
	case unit.FieldRentKrw:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRentKrw(v)
		return nil
	case unit.FieldAreaM2:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaM2(v)
		return nil
	case unit.FieldSupply:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupply(v)
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitMutation) AddedFields() []string {
	var fields []string
	if m.adddeposit_krw != nil {
		fields = append(fields, unit.FieldDepositKrw)
	}
	if m.addrent_krw != nil {
		fields = append(fields, unit.FieldRentKrw)
	}
	if m.addarea_m2 != nil {
		fields = append(fields, unit.FieldAreaM2)
	}
	if m.addsupply != nil {
		fields = append(fields, unit.FieldSupply)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case unit.FieldDepositKrw:
		return m.AddedDepositKrw()
	case unit.FieldRentKrw:
		return m.AddedRentKrw()
	case unit.FieldAreaM2:
		return m.AddedAreaM2()
	case unit.FieldSupply:
		return m.AddedSupply()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case unit.FieldDepositKrw:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepositKrw(v)
		return nil
	case unit.FieldRentKrw:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRentKrw(v)
		return nil
	case unit.FieldAreaM2:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAreaM2(v)
		return nil
	case unit.FieldSupply:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupply(v)
		return nil
	}
	return fmt.Errorf("unknown Unit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unit.FieldDepositKrw) {
		fields = append(fields, unit.FieldDepositKrw)
	}
	if m.FieldCleared(unit.FieldRentKrw) {
		fields = append(fields, unit.FieldRentKrw)
	}
	if m.FieldCleared(unit.FieldAreaM2) {
		fields = append(fields, unit.FieldAreaM2)
	}
	if m.FieldCleared(unit.FieldSupply) {
		fields = append(fields, unit.FieldSupply)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitMutation) ClearField(name string) error {
	switch name {
	case unit.FieldDepositKrw:
		m.ClearDepositKrw()
		return nil
	case unit.FieldRentKrw:
		m.ClearRentKrw()
		return nil
	case unit.FieldAreaM2:
		m.ClearAreaM2()
		return nil
	case unit.FieldSupply:
		m.ClearSupply()
		return nil
	}
	return fmt.Errorf("unknown Unit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitMutation) ResetField(name string) error {
	switch name {
	case unit.FieldItemID:
		m.ResetItemID()
		return nil
	case unit.FieldUnitType:
		m.ResetUnitType()
		return nil
	case unit.FieldDepositKrw:
		m.ResetDepositKrw()
		return nil
	case unit.FieldRentKrw:
		m.ResetRentKrw()
		return nil
	case unit.FieldAreaM2:
		m.ResetAreaM2()
		return nil
	case unit.FieldSupply:
		m.ResetSupply()
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.item != nil {
		edges = append(edges, unit.EdgeItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case unit.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditem {
		edges = append(edges, unit.EdgeItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitMutation) EdgeCleared(name string) bool {
	switch name {
	case unit.EdgeItem:
		return m.cleareditem
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitMutation) ClearEdge(name string) error {
	switch name {
	case unit.EdgeItem:
		m.ClearItem()
		return nil
	}
	return fmt.Errorf("unknown Unit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitMutation) ResetEdge(name string) error {
	switch name {
	case unit.EdgeItem:
		m.ResetItem()
		return nil
	}
	return fmt.Errorf("unknown Unit edge %s", name)
}
