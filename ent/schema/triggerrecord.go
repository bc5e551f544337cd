package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriggerRecord holds the schema definition for the TriggerRecord entity.
// One row per scheduled (or manually triggered) job execution.
type TriggerRecord struct {
	ent.Schema
}

// Fields of the TriggerRecord.
func (TriggerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("trigger_id").
			Comment("Job id (p0_daily_sync, p3_evolution, data_lifecycle)"),
		field.Time("scheduled_time"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "running", "success", "failed", "retrying").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.String("error").
			Optional().
			Nillable(),
		field.String("outcome_summary").
			Optional().
			Nillable(),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Comment("Job-specific outcome payload (session id, counts, ...)"),
		field.Int64("processing_time_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TriggerRecord.
func (TriggerRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Latest-first history per job
		index.Fields("trigger_id", "created_at"),
		index.Fields("status"),
	}
}
