package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/db/ent/schema/utils"
)

// Item is the canonical listing. Its id is the logical item_id
// (platform:nativeKey or composite hash) and is immutable: merges and
// geocode refinements update fields, never the key.
type Item struct{ ent.Schema }

func (Item) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "items"},
	}
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").NotEmpty().Immutable().
			StorageKey("item_id"),
		field.String("platform").NotEmpty().
			Validate(utils.EnumValidator(constants.PlatformCodes...)),
		field.String("title").NotEmpty(),
		field.String("addr_raw").Optional(),
		field.String("addr_std").Optional(),
		field.Float("lat").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "double precision"}),
		field.Float("lng").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "double precision"}),
		field.Int64("deposit_krw").Optional().Nillable(),
		field.Int64("rent_krw").Optional().Nillable(),
		field.Float("area_m2").Optional().Nillable(),
		field.Time("apply_start").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("apply_end").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("category").Optional().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.String("status").Optional(),
		field.String("list_url").Optional(),
		field.String("detail_url").Optional(),
		// raw strings that failed normalization, kept for audit
		field.JSON("raw_leftovers", json.RawMessage{}).Optional(),
		field.Time("first_seen_at"),
		field.Time("last_seen_at"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Item) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("units", Unit.Type),
		edge.To("attachments", Attachment.Type),
		edge.To("images", Image.Type),
		edge.To("tables", TableRaw.Type),
		edge.To("sources", SourceMap.Type),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "last_seen_at"),
		index.Fields("category"),
	}
}
