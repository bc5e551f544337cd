package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DataLineage holds the schema definition for the DataLineage entity.
// Provenance and storage-tier metadata for a single produced data item.
type DataLineage struct {
	ent.Schema
}

// Fields of the DataLineage.
func (DataLineage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("data_id").
			Unique().
			Immutable(),
		field.String("source").
			Comment("Producer id (agent or external driver)"),
		field.Enum("source_type").
			Values("sensor", "processor", "event", "manual"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_accessed").
			Default(time.Now),
		field.Enum("current_tier").
			Values("hot", "warm", "cold", "frozen").
			Default("hot"),
		field.JSON("dependencies", []string{}).
			Optional(),
		field.JSON("consumers", []string{}).
			Optional(),
		field.Float("quality_score").
			Optional().
			Nillable(),
		field.Int("schema_version").
			Default(1),
	}
}

// Indexes of the DataLineage.
func (DataLineage) Indexes() []ent.Index {
	return []ent.Index{
		// Staleness scans per tier
		index.Fields("current_tier", "last_accessed"),
		index.Fields("source"),
		index.Fields("created_at"),
	}
}
