// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/meridianmetric"
)

// MeridianMetric is the model entity for the MeridianMetric schema.
type MeridianMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// MeridianID holds the value of the "meridian_id" field.
	MeridianID string `json:"meridian_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// PacketsSent holds the value of the "packets_sent" field.
	PacketsSent int64 `json:"packets_sent,omitempty"`
	// PacketsReceived holds the value of the "packets_received" field.
	PacketsReceived int64 `json:"packets_received,omitempty"`
	// PacketsDropped holds the value of the "packets_dropped" field.
	PacketsDropped int64 `json:"packets_dropped,omitempty"`
	// QueueSize holds the value of the "queue_size" field.
	QueueSize int `json:"queue_size,omitempty"`
	// Publishes that hit the block timeout
	Blockages int64 `json:"blockages,omitempty"`
	// ThroughputPerSec holds the value of the "throughput_per_sec" field.
	ThroughputPerSec float64 `json:"throughput_per_sec,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs float64 `json:"latency_ms,omitempty"`
	// ErrorRate holds the value of the "error_rate" field.
	ErrorRate    float64 `json:"error_rate,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeridianMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meridianmetric.FieldThroughputPerSec, meridianmetric.FieldLatencyMs, meridianmetric.FieldErrorRate:
			values[i] = new(sql.NullFloat64)
		case meridianmetric.FieldID, meridianmetric.FieldPacketsSent, meridianmetric.FieldPacketsReceived, meridianmetric.FieldPacketsDropped, meridianmetric.FieldQueueSize, meridianmetric.FieldBlockages:
			values[i] = new(sql.NullInt64)
		case meridianmetric.FieldMeridianID:
			values[i] = new(sql.NullString)
		case meridianmetric.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeridianMetric fields.
func (_m *MeridianMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meridianmetric.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case meridianmetric.FieldMeridianID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meridian_id", values[i])
			} else if value.Valid {
				_m.MeridianID = value.String
			}
		case meridianmetric.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case meridianmetric.FieldPacketsSent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field packets_sent", values[i])
			} else if value.Valid {
				_m.PacketsSent = value.Int64
			}
		case meridianmetric.FieldPacketsReceived:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field packets_received", values[i])
			} else if value.Valid {
				_m.PacketsReceived = value.Int64
			}
		case meridianmetric.FieldPacketsDropped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field packets_dropped", values[i])
			} else if value.Valid {
				_m.PacketsDropped = value.Int64
			}
		case meridianmetric.FieldQueueSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field queue_size", values[i])
			} else if value.Valid {
				_m.QueueSize = int(value.Int64)
			}
		case meridianmetric.FieldBlockages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blockages", values[i])
			} else if value.Valid {
				_m.Blockages = value.Int64
			}
		case meridianmetric.FieldThroughputPerSec:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field throughput_per_sec", values[i])
			} else if value.Valid {
				_m.ThroughputPerSec = value.Float64
			}
		case meridianmetric.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Float64
			}
		case meridianmetric.FieldErrorRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field error_rate", values[i])
			} else if value.Valid {
				_m.ErrorRate = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MeridianMetric.
// This includes values selected through modifiers, order, etc.
func (_m *MeridianMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MeridianMetric.
// Note that you need to call MeridianMetric.Unwrap() before calling this method if this MeridianMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MeridianMetric) Update() *MeridianMetricUpdateOne {
	return NewMeridianMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MeridianMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MeridianMetric) Unwrap() *MeridianMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MeridianMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MeridianMetric) String() string {
	var builder strings.Builder
	builder.WriteString("MeridianMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meridian_id=")
	builder.WriteString(_m.MeridianID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("packets_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.PacketsSent))
	builder.WriteString(", ")
	builder.WriteString("packets_received=")
	builder.WriteString(fmt.Sprintf("%v", _m.PacketsReceived))
	builder.WriteString(", ")
	builder.WriteString("packets_dropped=")
	builder.WriteString(fmt.Sprintf("%v", _m.PacketsDropped))
	builder.WriteString(", ")
	builder.WriteString("queue_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueueSize))
	builder.WriteString(", ")
	builder.WriteString("blockages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Blockages))
	builder.WriteString(", ")
	builder.WriteString("throughput_per_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThroughputPerSec))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("error_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorRate))
	builder.WriteByte(')')
	return builder.String()
}

// MeridianMetrics is a parsable slice of MeridianMetric.
type MeridianMetrics []*MeridianMetric
