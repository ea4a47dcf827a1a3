package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/daehong-lab/gonggo-pipeline/db/ent/schema/utils"
)

// TableRaw is a crawled table file (unit tables, schedules) registered
// verbatim next to its parent item.
type TableRaw struct{ ent.Schema }

func (TableRaw) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tables_raw"},
	}
}

func (TableRaw) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("item_id").NotEmpty(),
		field.String("record_id").NotEmpty(),
		field.String("path").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator("json", "csv", "xlsx")),
	}
}

func (TableRaw) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", Item.Type).
			Ref("tables").
			Field("item_id").
			Required().
			Unique(),
	}
}

func (TableRaw) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "path").Unique(),
	}
}
