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

type Image struct{ ent.Schema }

func (Image) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "images"},
	}
}

func (Image) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("item_id").NotEmpty(),
		field.String("record_id").NotEmpty(),
		field.String("path").NotEmpty(),
		field.String("role").NotEmpty().
			Validate(utils.EnumValidator(constants.ArtifactRoles...)),
	}
}

func (Image) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("item", Item.Type).
			Ref("images").
			Field("item_id").
			Required().
			Unique(),
	}
}

func (Image) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "path").Unique(),
	}
}
