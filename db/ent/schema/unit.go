package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Unit is one priced sub-offer within an item, keyed logically by
// (item_id, unit_type).
type Unit struct{ ent.Schema }

func (Unit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "units"},
	}
}

func (Unit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the logical-key index can include it
		field.String("item_id").NotEmpty(),
		field.String("unit_type").NotEmpty(),
		field.Int64("deposit_krw").Optional().Nillable(),
		field.Int64("rent_krw").Optional().Nillable(),
		field.Float("area_m2").Optional().Nillable(),
		field.Int("supply").Optional().Nillable().NonNegative(),
	}
}

func (Unit) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY units -> ONE item
		edge.From("item", Item.Type).
			Ref("units").
			Field("item_id").
			Required().
			Unique(),
	}
}

func (Unit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "unit_type").Unique(),
	}
}
