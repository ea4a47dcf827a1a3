// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "record_id", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "role", Type: field.TypeString},
		{Name: "text_path", Type: field.TypeString, Nullable: true},
		{Name: "is_ocr", Type: field.TypeBool, Default: false},
		{Name: "item_id", Type: field.TypeString},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attachments_items_attachments",
				Columns:    []*schema.Column{AttachmentsColumns[8]},
				RefColumns: []*schema.Column{ItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_item_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{AttachmentsColumns[8], AttachmentsColumns[4]},
			},
			{
				Name:    "attachment_record_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[1]},
			},
		},
	}
	// ImagesColumns holds the columns for the "images" table.
	ImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "record_id", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
	}
	// ImagesTable holds the schema information for the "images" table.
	ImagesTable = &schema.Table{
		Name:       "images",
		Columns:    ImagesColumns,
		PrimaryKey: []*schema.Column{ImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "images_items_images",
				Columns:    []*schema.Column{ImagesColumns[4]},
				RefColumns: []*schema.Column{ItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "image_item_id_path",
				Unique:  true,
				Columns: []*schema.Column{ImagesColumns[4], ImagesColumns[2]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "addr_raw", Type: field.TypeString, Nullable: true},
		{Name: "addr_std", Type: field.TypeString, Nullable: true},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "double precision"}},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "double precision"}},
		{Name: "deposit_krw", Type: field.TypeInt64, Nullable: true},
		{Name: "rent_krw", Type: field.TypeInt64, Nullable: true},
		{Name: "area_m2", Type: field.TypeFloat64, Nullable: true},
		{Name: "apply_start", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "apply_end", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "list_url", Type: field.TypeString, Nullable: true},
		{Name: "detail_url", Type: field.TypeString, Nullable: true},
		{Name: "raw_leftovers", Type: field.TypeJSON, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_platform_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[1], ItemsColumns[18]},
			},
			{
				Name:    "item_category",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[12]},
			},
		},
	}
	// SourceMapColumns holds the columns for the "source_map" table.
	SourceMapColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "record_id", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "crawled_at", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
	}
	// SourceMapTable holds the schema information for the "source_map" table.
	SourceMapTable = &schema.Table{
		Name:       "source_map",
		Columns:    SourceMapColumns,
		PrimaryKey: []*schema.Column{SourceMapColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_map_items_sources",
				Columns:    []*schema.Column{SourceMapColumns[4]},
				RefColumns: []*schema.Column{ItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcemap_record_id",
				Unique:  true,
				Columns: []*schema.Column{SourceMapColumns[1]},
			},
			{
				Name:    "sourcemap_item_id_record_id",
				Unique:  true,
				Columns: []*schema.Column{SourceMapColumns[4], SourceMapColumns[1]},
			},
		},
	}
	// TablesRawColumns holds the columns for the "tables_raw" table.
	TablesRawColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "record_id", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
	}
	// TablesRawTable holds the schema information for the "tables_raw" table.
	TablesRawTable = &schema.Table{
		Name:       "tables_raw",
		Columns:    TablesRawColumns,
		PrimaryKey: []*schema.Column{TablesRawColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tables_raw_items_tables",
				Columns:    []*schema.Column{TablesRawColumns[4]},
				RefColumns: []*schema.Column{ItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tableraw_item_id_path",
				Unique:  true,
				Columns: []*schema.Column{TablesRawColumns[4], TablesRawColumns[2]},
			},
		},
	}
	// UnitsColumns holds the columns for the "units" table.
	UnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "unit_type", Type: field.TypeString},
		{Name: "deposit_krw", Type: field.TypeInt64, Nullable: true},
		{Name: "rent_krw", Type: field.TypeInt64, Nullable: true},
		{Name: "area_m2", Type: field.TypeFloat64, Nullable: true},
		{Name: "supply", Type: field.TypeInt, Nullable: true},
		{Name: "item_id", Type: field.TypeString},
	}
	// UnitsTable holds the schema information for the "units" table.
	UnitsTable = &schema.Table{
		Name:       "units",
		Columns:    UnitsColumns,
		PrimaryKey: []*schema.Column{UnitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "units_items_units",
				Columns:    []*schema.Column{UnitsColumns[6]},
				RefColumns: []*schema.Column{ItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "unit_item_id_unit_type",
				Unique:  true,
				Columns: []*schema.Column{UnitsColumns[6], UnitsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttachmentsTable,
		ImagesTable,
		ItemsTable,
		SourceMapTable,
		TablesRawTable,
		UnitsTable,
	}
)

func init() {
	AttachmentsTable.ForeignKeys[0].RefTable = ItemsTable
	AttachmentsTable.Annotation = &entsql.Annotation{
		Table: "attachments",
	}
	ImagesTable.ForeignKeys[0].RefTable = ItemsTable
	ImagesTable.Annotation = &entsql.Annotation{
		Table: "images",
	}
	ItemsTable.Annotation = &entsql.Annotation{
		Table: "items",
	}
	SourceMapTable.ForeignKeys[0].RefTable = ItemsTable
	SourceMapTable.Annotation = &entsql.Annotation{
		Table: "source_map",
	}
	TablesRawTable.ForeignKeys[0].RefTable = ItemsTable
	TablesRawTable.Annotation = &entsql.Annotation{
		Table: "tables_raw",
	}
	UnitsTable.ForeignKeys[0].RefTable = ItemsTable
	UnitsTable.Annotation = &entsql.Annotation{
		Table: "units",
	}
}
