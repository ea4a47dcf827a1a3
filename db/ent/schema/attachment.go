package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/db/ent/schema/utils"
)

// Attachment is a document artifact following its parent item. The
// logical key is (item_id, content_hash): the same bytes re-crawled
// under a new record_id upsert onto the existing row.
type Attachment struct{ ent.Schema }

func (Attachment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attachments"},
	}
}

func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("item_id").NotEmpty(),
		field.String("record_id").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("role").NotEmpty().
			Validate(utils.EnumValidator(constants.ArtifactRoles...)),
		// NULL when the whole extraction chain failed
		field.String("text_path").Optional().Nillable(),
		field.Bool("is_ocr").Default(false),
	}
}

func (Attachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", Item.Type).
			Ref("attachments").
			Field("item_id").
			Required().
			Unique(),
	}
}

func (Attachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "content_hash").Unique(),
		index.Fields("record_id"),
	}
}
