package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MeridianMetric holds the schema definition for the MeridianMetric entity.
// Time-series rows flushed by the bus metrics collector once a minute;
// consumed by the lifecycle agent's back-pressure monitor.
type MeridianMetric struct {
	ent.Schema
}

// Fields of the MeridianMetric.
func (MeridianMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("meridian_id"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.Int64("packets_sent").
			Default(0),
		field.Int64("packets_received").
			Default(0),
		field.Int64("packets_dropped").
			Default(0),
		field.Int("queue_size").
			Default(0),
		field.Int64("blockages").
			Default(0).
			Comment("Publishes that hit the block timeout"),
		field.Float("throughput_per_sec").
			Default(0),
		field.Float("latency_ms").
			Default(0),
		field.Float("error_rate").
			Default(0),
	}
}

// Indexes of the MeridianMetric.
func (MeridianMetric) Indexes() []ent.Index {
	return []ent.Index{
		// Latest-first scans per meridian
		index.Fields("meridian_id", "timestamp"),
		index.Fields("timestamp"),
	}
}
