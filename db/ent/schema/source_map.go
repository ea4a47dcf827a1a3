package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/db/ent/schema/utils"
)

// SourceMap is the provenance ledger: one row per raw record, mapping it
// to the item it resolved into. record_id is globally unique (a record
// belongs to exactly one item) and rows are never deleted; the
// append-only guard lives in the repository layer.
type SourceMap struct{ ent.Schema }

func (SourceMap) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "source_map"},
	}
}

func (SourceMap) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("item_id").NotEmpty(),
		field.String("record_id").NotEmpty().Immutable(),
		field.String("platform").NotEmpty().
			Validate(utils.EnumValidator(constants.PlatformCodes...)),
		field.Time("crawled_at"),
	}
}

func (SourceMap) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", Item.Type).
			Ref("sources").
			Field("item_id").
			Required().
			Unique(),
	}
}

func (SourceMap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("record_id").Unique(),
		index.Fields("item_id", "record_id").Unique(),
	}
}
