package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CellState holds the schema definition for the CellState entity.
// One row per schedulable cell (scheduler job / pipeline skill), tracking
// execution counters and the last known error.
type CellState struct {
	ent.Schema
}

// Fields of the CellState.
func (CellState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("skill_id").
			Unique().
			Immutable(),
		field.Enum("state").
			Values("idle", "scheduled", "running", "degraded", "stopped").
			Default("idle"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("last_run").
			Optional().
			Nillable(),
		field.Time("next_run").
			Optional().
			Nillable(),
		field.Int("run_count").
			Default(0),
		field.Int("success_count").
			Default(0),
		field.Int("fail_count").
			Default(0),
		field.Int64("avg_duration_ms").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("last_error_at").
			Optional().
			Nillable(),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the CellState.
func (CellState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
	}
}
