// Code generated by ent, DO NOT EDIT.

package meridianmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the meridianmetric type in the database.
	Label = "meridian_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMeridianID holds the string denoting the meridian_id field in the database.
	FieldMeridianID = "meridian_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPacketsSent holds the string denoting the packets_sent field in the database.
	FieldPacketsSent = "packets_sent"
	// FieldPacketsReceived holds the string denoting the packets_received field in the database.
	FieldPacketsReceived = "packets_received"
	// FieldPacketsDropped holds the string denoting the packets_dropped field in the database.
	FieldPacketsDropped = "packets_dropped"
	// FieldQueueSize holds the string denoting the queue_size field in the database.
	FieldQueueSize = "queue_size"
	// FieldBlockages holds the string denoting the blockages field in the database.
	FieldBlockages = "blockages"
	// FieldThroughputPerSec holds the string denoting the throughput_per_sec field in the database.
	FieldThroughputPerSec = "throughput_per_sec"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldErrorRate holds the string denoting the error_rate field in the database.
	FieldErrorRate = "error_rate"
	// Table holds the table name of the meridianmetric in the database.
	Table = "meridian_metrics"
)

// Columns holds all SQL columns for meridianmetric fields.
var Columns = []string{
	FieldID,
	FieldMeridianID,
	FieldTimestamp,
	FieldPacketsSent,
	FieldPacketsReceived,
	FieldPacketsDropped,
	FieldQueueSize,
	FieldBlockages,
	FieldThroughputPerSec,
	FieldLatencyMs,
	FieldErrorRate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultPacketsSent holds the default value on creation for the "packets_sent" field.
	DefaultPacketsSent int64
	// DefaultPacketsReceived holds the default value on creation for the "packets_received" field.
	DefaultPacketsReceived int64
	// DefaultPacketsDropped holds the default value on creation for the "packets_dropped" field.
	DefaultPacketsDropped int64
	// DefaultQueueSize holds the default value on creation for the "queue_size" field.
	DefaultQueueSize int
	// DefaultBlockages holds the default value on creation for the "blockages" field.
	DefaultBlockages int64
	// DefaultThroughputPerSec holds the default value on creation for the "throughput_per_sec" field.
	DefaultThroughputPerSec float64
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs float64
	// DefaultErrorRate holds the default value on creation for the "error_rate" field.
	DefaultErrorRate float64
)

// OrderOption defines the ordering options for the MeridianMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMeridianID orders the results by the meridian_id field.
func ByMeridianID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeridianID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPacketsSent orders the results by the packets_sent field.
func ByPacketsSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPacketsSent, opts...).ToFunc()
}

// ByPacketsReceived orders the results by the packets_received field.
func ByPacketsReceived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPacketsReceived, opts...).ToFunc()
}

// ByPacketsDropped orders the results by the packets_dropped field.
func ByPacketsDropped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPacketsDropped, opts...).ToFunc()
}

// ByQueueSize orders the results by the queue_size field.
func ByQueueSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueSize, opts...).ToFunc()
}

// ByBlockages orders the results by the blockages field.
func ByBlockages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockages, opts...).ToFunc()
}

// ByThroughputPerSec orders the results by the throughput_per_sec field.
func ByThroughputPerSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThroughputPerSec, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByErrorRate orders the results by the error_rate field.
func ByErrorRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRate, opts...).ToFunc()
}
