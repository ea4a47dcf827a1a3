// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAddrRaw holds the string denoting the addr_raw field in the database.
	FieldAddrRaw = "addr_raw"
	// FieldAddrStd holds the string denoting the addr_std field in the database.
	FieldAddrStd = "addr_std"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLng holds the string denoting the lng field in the database.
	FieldLng = "lng"
	// FieldDepositKrw holds the string denoting the deposit_krw field in the database.
	FieldDepositKrw = "deposit_krw"
	// FieldRentKrw holds the string denoting the rent_krw field in the database.
	FieldRentKrw = "rent_krw"
	// FieldAreaM2 holds the string denoting the area_m2 field in the database.
	FieldAreaM2 = "area_m2"
	// FieldApplyStart holds the string denoting the apply_start field in the database.
	FieldApplyStart = "apply_start"
	// FieldApplyEnd holds the string denoting the apply_end field in the database.
	FieldApplyEnd = "apply_end"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldListURL holds the string denoting the list_url field in the database.
	FieldListURL = "list_url"
	// FieldDetailURL holds the string denoting the detail_url field in the database.
	FieldDetailURL = "detail_url"
	// FieldRawLeftovers holds the string denoting the raw_leftovers field in the database.
	FieldRawLeftovers = "raw_leftovers"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUnits holds the string denoting the units edge name in mutations.
	EdgeUnits = "units"
	// EdgeAttachments holds the string denoting the attachments edge name in mutations.
	EdgeAttachments = "attachments"
	// EdgeImages holds the string denoting the images edge name in mutations.
	EdgeImages = "images"
	// EdgeTables holds the string denoting the tables edge name in mutations.
	EdgeTables = "tables"
	// EdgeSources holds the string denoting the sources edge name in mutations.
	EdgeSources = "sources"
	// UnitFieldID holds the string denoting the ID field of the Unit.
	UnitFieldID = "id"
	// AttachmentFieldID holds the string denoting the ID field of the Attachment.
	AttachmentFieldID = "id"
	// ImageFieldID holds the string denoting the ID field of the Image.
	ImageFieldID = "id"
	// TableRawFieldID holds the string denoting the ID field of the TableRaw.
	TableRawFieldID = "id"
	// SourceMapFieldID holds the string denoting the ID field of the SourceMap.
	SourceMapFieldID = "id"
	// Table holds the table name of the item in the database.
	Table = "items"
	// UnitsTable is the table that holds the units relation/edge.
	UnitsTable = "units"
	// UnitsInverseTable is the table name for the Unit entity.
	// It exists in this package in order to avoid circular dependency with the "unit" package.
	UnitsInverseTable = "units"
	// UnitsColumn is the table column denoting the units relation/edge.
	UnitsColumn = "item_id"
	// AttachmentsTable is the table that holds the attachments relation/edge.
	AttachmentsTable = "attachments"
	// AttachmentsInverseTable is the table name for the Attachment entity.
	// It exists in this package in order to avoid circular dependency with the "attachment" package.
	AttachmentsInverseTable = "attachments"
	// AttachmentsColumn is the table column denoting the attachments relation/edge.
	AttachmentsColumn = "item_id"
	// ImagesTable is the table that holds the images relation/edge.
	ImagesTable = "images"
	// ImagesInverseTable is the table name for the Image entity.
	// It exists in this package in order to avoid circular dependency with the "image" package.
	ImagesInverseTable = "images"
	// ImagesColumn is the table column denoting the images relation/edge.
	ImagesColumn = "item_id"
	// TablesTable is the table that holds the tables relation/edge.
	TablesTable = "tables_raw"
	// TablesInverseTable is the table name for the TableRaw entity.
	// It exists in this package in order to avoid circular dependency with the "tableraw" package.
	TablesInverseTable = "tables_raw"
	// TablesColumn is the table column denoting the tables relation/edge.
	TablesColumn = "item_id"
	// SourcesTable is the table that holds the sources relation/edge.
	SourcesTable = "source_map"
	// SourcesInverseTable is the table name for the SourceMap entity.
	// It exists in this package in order to avoid circular dependency with the "sourcemap" package.
	SourcesInverseTable = "source_map"
	// SourcesColumn is the table column denoting the sources relation/edge.
	SourcesColumn = "item_id"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldPlatform,
	FieldTitle,
	FieldAddrRaw,
	FieldAddrStd,
	FieldLat,
	FieldLng,
	FieldDepositKrw,
	FieldRentKrw,
	FieldAreaM2,
	FieldApplyStart,
	FieldApplyEnd,
	FieldCategory,
	FieldStatus,
	FieldListURL,
	FieldDetailURL,
	FieldRawLeftovers,
	FieldFirstSeenAt,
	FieldLastSeenAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	PlatformValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAddrRaw orders the results by the addr_raw field.
func ByAddrRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddrRaw, opts...).ToFunc()
}

// ByAddrStd orders the results by the addr_std field.
func ByAddrStd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddrStd, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLng orders the results by the lng field.
func ByLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLng, opts...).ToFunc()
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

// ByApplyStart orders the results by the apply_start field.
func ByApplyStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplyStart, opts...).ToFunc()
}

// ByApplyEnd orders the results by the apply_end field.
func ByApplyEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplyEnd, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByListURL orders the results by the list_url field.
func ByListURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListURL, opts...).ToFunc()
}

// ByDetailURL orders the results by the detail_url field.
func ByDetailURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetailURL, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUnitsCount orders the results by units count.
func ByUnitsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUnitsStep(), opts...)
	}
}

// ByUnits orders the results by units terms.
func ByUnits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUnitsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttachmentsCount orders the results by attachments count.
func ByAttachmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttachmentsStep(), opts...)
	}
}

// ByAttachments orders the results by attachments terms.
func ByAttachments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttachmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByImagesCount orders the results by images count.
func ByImagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImagesStep(), opts...)
	}
}

// ByImages orders the results by images terms.
func ByImages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTablesCount orders the results by tables count.
func ByTablesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTablesStep(), opts...)
	}
}

// ByTables orders the results by tables terms.
func ByTables(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTablesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySourcesCount orders the results by sources count.
func BySourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourcesStep(), opts...)
	}
}

// BySources orders the results by sources terms.
func BySources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUnitsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UnitsInverseTable, UnitFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UnitsTable, UnitsColumn),
	)
}
func newAttachmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttachmentsInverseTable, AttachmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
	)
}
func newImagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImagesInverseTable, ImageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
	)
}
func newTablesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TablesInverseTable, TableRawFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TablesTable, TablesColumn),
	)
}
func newSourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourcesInverseTable, SourceMapFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
	)
}
