package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentState holds the schema definition for the AgentState entity.
// Persisted execution health for each pipeline agent (Q1–Q4 × P0–P2 plus
// the evolution and lifecycle agents).
type AgentState struct {
	ent.Schema
}

// Fields of the AgentState.
func (AgentState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("status").
			Values("idle", "active", "degraded", "disabled").
			Default("idle"),
		field.Float("energy_level").
			Default(1.0).
			Comment("0–1 synthetic load indicator, decays with consecutive failures"),
		field.Float("stress_level").
			Default(0.0),
		field.Int("tasks_completed").
			Default(0),
		field.Int("tasks_failed").
			Default(0),
		field.Int64("avg_response_time_ms").
			Default(0),
		field.Time("last_executed").
			Optional().
			Nillable(),
		field.JSON("skill_states", map[string]interface{}{}).
			Optional().
			Comment("Per-skill counters nested under the owning agent"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentState.
func (AgentState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
