// Code generated by ent, DO NOT EDIT.

package meridianmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldID, id))
}

// MeridianID applies equality check predicate on the "meridian_id" field. It's identical to MeridianIDEQ.
func MeridianID(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldMeridianID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldTimestamp, v))
}

// PacketsSent applies equality check predicate on the "packets_sent" field. It's identical to PacketsSentEQ.
func PacketsSent(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldPacketsSent, v))
}

// PacketsReceived applies equality check predicate on the "packets_received" field. It's identical to PacketsReceivedEQ.
func PacketsReceived(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldPacketsReceived, v))
}

// PacketsDropped applies equality check predicate on the "packets_dropped" field. It's identical to PacketsDroppedEQ.
func PacketsDropped(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldPacketsDropped, v))
}

// QueueSize applies equality check predicate on the "queue_size" field. It's identical to QueueSizeEQ.
func QueueSize(v int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldQueueSize, v))
}

// Blockages applies equality check predicate on the "blockages" field. It's identical to BlockagesEQ.
func Blockages(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldBlockages, v))
}

// ThroughputPerSec applies equality check predicate on the "throughput_per_sec" field. It's identical to ThroughputPerSecEQ.
func ThroughputPerSec(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldThroughputPerSec, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldLatencyMs, v))
}

// ErrorRate applies equality check predicate on the "error_rate" field. It's identical to ErrorRateEQ.
func ErrorRate(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldErrorRate, v))
}

// MeridianIDEQ applies the EQ predicate on the "meridian_id" field.
func MeridianIDEQ(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldMeridianID, v))
}

// MeridianIDNEQ applies the NEQ predicate on the "meridian_id" field.
func MeridianIDNEQ(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldMeridianID, v))
}

// MeridianIDIn applies the In predicate on the "meridian_id" field.
func MeridianIDIn(vs ...string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldMeridianID, vs...))
}

// MeridianIDNotIn applies the NotIn predicate on the "meridian_id" field.
func MeridianIDNotIn(vs ...string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldMeridianID, vs...))
}

// MeridianIDGT applies the GT predicate on the "meridian_id" field.
func MeridianIDGT(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldMeridianID, v))
}

// MeridianIDGTE applies the GTE predicate on the "meridian_id" field.
func MeridianIDGTE(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldMeridianID, v))
}

// MeridianIDLT applies the LT predicate on the "meridian_id" field.
func MeridianIDLT(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldMeridianID, v))
}

// MeridianIDLTE applies the LTE predicate on the "meridian_id" field.
func MeridianIDLTE(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldMeridianID, v))
}

// MeridianIDContains applies the Contains predicate on the "meridian_id" field.
func MeridianIDContains(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldContains(FieldMeridianID, v))
}

// MeridianIDHasPrefix applies the HasPrefix predicate on the "meridian_id" field.
func MeridianIDHasPrefix(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldHasPrefix(FieldMeridianID, v))
}

// MeridianIDHasSuffix applies the HasSuffix predicate on the "meridian_id" field.
func MeridianIDHasSuffix(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldHasSuffix(FieldMeridianID, v))
}

// MeridianIDEqualFold applies the EqualFold predicate on the "meridian_id" field.
func MeridianIDEqualFold(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEqualFold(FieldMeridianID, v))
}

// MeridianIDContainsFold applies the ContainsFold predicate on the "meridian_id" field.
func MeridianIDContainsFold(v string) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldContainsFold(FieldMeridianID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldTimestamp, v))
}

// PacketsSentEQ applies the EQ predicate on the "packets_sent" field.
func PacketsSentEQ(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldPacketsSent, v))
}

// PacketsSentNEQ applies the NEQ predicate on the "packets_sent" field.
func PacketsSentNEQ(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldPacketsSent, v))
}

// PacketsSentIn applies the In predicate on the "packets_sent" field.
func PacketsSentIn(vs ...int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldPacketsSent, vs...))
}

// PacketsSentNotIn applies the NotIn predicate on the "packets_sent" field.
func PacketsSentNotIn(vs ...int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldPacketsSent, vs...))
}

// PacketsSentGT applies the GT predicate on the "packets_sent" field.
func PacketsSentGT(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldPacketsSent, v))
}

// PacketsSentGTE applies the GTE predicate on the "packets_sent" field.
func PacketsSentGTE(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldPacketsSent, v))
}

// PacketsSentLT applies the LT predicate on the "packets_sent" field.
func PacketsSentLT(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldPacketsSent, v))
}

// PacketsSentLTE applies the LTE predicate on the "packets_sent" field.
func PacketsSentLTE(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldPacketsSent, v))
}

// PacketsReceivedEQ applies the EQ predicate on the "packets_received" field.
func PacketsReceivedEQ(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldPacketsReceived, v))
}

// PacketsReceivedNEQ applies the NEQ predicate on the "packets_received" field.
func PacketsReceivedNEQ(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldPacketsReceived, v))
}

// PacketsReceivedIn applies the In predicate on the "packets_received" field.
func PacketsReceivedIn(vs ...int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldPacketsReceived, vs...))
}

// PacketsReceivedNotIn applies the NotIn predicate on the "packets_received" field.
func PacketsReceivedNotIn(vs ...int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldPacketsReceived, vs...))
}

// PacketsReceivedGT applies the GT predicate on the "packets_received" field.
func PacketsReceivedGT(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldPacketsReceived, v))
}

// PacketsReceivedGTE applies the GTE predicate on the "packets_received" field.
func PacketsReceivedGTE(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldPacketsReceived, v))
}

// PacketsReceivedLT applies the LT predicate on the "packets_received" field.
func PacketsReceivedLT(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldPacketsReceived, v))
}

// PacketsReceivedLTE applies the LTE predicate on the "packets_received" field.
func PacketsReceivedLTE(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldPacketsReceived, v))
}

// PacketsDroppedEQ applies the EQ predicate on the "packets_dropped" field.
func PacketsDroppedEQ(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldPacketsDropped, v))
}

// PacketsDroppedNEQ applies the NEQ predicate on the "packets_dropped" field.
func PacketsDroppedNEQ(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldPacketsDropped, v))
}

// PacketsDroppedIn applies the In predicate on the "packets_dropped" field.
func PacketsDroppedIn(vs ...int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldPacketsDropped, vs...))
}

// PacketsDroppedNotIn applies the NotIn predicate on the "packets_dropped" field.
func PacketsDroppedNotIn(vs ...int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldPacketsDropped, vs...))
}

// PacketsDroppedGT applies the GT predicate on the "packets_dropped" field.
func PacketsDroppedGT(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldPacketsDropped, v))
}

// PacketsDroppedGTE applies the GTE predicate on the "packets_dropped" field.
func PacketsDroppedGTE(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldPacketsDropped, v))
}

// PacketsDroppedLT applies the LT predicate on the "packets_dropped" field.
func PacketsDroppedLT(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldPacketsDropped, v))
}

// PacketsDroppedLTE applies the LTE predicate on the "packets_dropped" field.
func PacketsDroppedLTE(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldPacketsDropped, v))
}

// QueueSizeEQ applies the EQ predicate on the "queue_size" field.
func QueueSizeEQ(v int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldQueueSize, v))
}

// QueueSizeNEQ applies the NEQ predicate on the "queue_size" field.
func QueueSizeNEQ(v int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldQueueSize, v))
}

// QueueSizeIn applies the In predicate on the "queue_size" field.
func QueueSizeIn(vs ...int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldQueueSize, vs...))
}

// QueueSizeNotIn applies the NotIn predicate on the "queue_size" field.
func QueueSizeNotIn(vs ...int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldQueueSize, vs...))
}

// QueueSizeGT applies the GT predicate on the "queue_size" field.
func QueueSizeGT(v int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldQueueSize, v))
}

// QueueSizeGTE applies the GTE predicate on the "queue_size" field.
func QueueSizeGTE(v int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldQueueSize, v))
}

// QueueSizeLT applies the LT predicate on the "queue_size" field.
func QueueSizeLT(v int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldQueueSize, v))
}

// QueueSizeLTE applies the LTE predicate on the "queue_size" field.
func QueueSizeLTE(v int) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldQueueSize, v))
}

// BlockagesEQ applies the EQ predicate on the "blockages" field.
func BlockagesEQ(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldBlockages, v))
}

// BlockagesNEQ applies the NEQ predicate on the "blockages" field.
func BlockagesNEQ(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldBlockages, v))
}

// BlockagesIn applies the In predicate on the "blockages" field.
func BlockagesIn(vs ...int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldBlockages, vs...))
}

// BlockagesNotIn applies the NotIn predicate on the "blockages" field.
func BlockagesNotIn(vs ...int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldBlockages, vs...))
}

// BlockagesGT applies the GT predicate on the "blockages" field.
func BlockagesGT(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldBlockages, v))
}

// BlockagesGTE applies the GTE predicate on the "blockages" field.
func BlockagesGTE(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldBlockages, v))
}

// BlockagesLT applies the LT predicate on the "blockages" field.
func BlockagesLT(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldBlockages, v))
}

// BlockagesLTE applies the LTE predicate on the "blockages" field.
func BlockagesLTE(v int64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldBlockages, v))
}

// ThroughputPerSecEQ applies the EQ predicate on the "throughput_per_sec" field.
func ThroughputPerSecEQ(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldThroughputPerSec, v))
}

// ThroughputPerSecNEQ applies the NEQ predicate on the "throughput_per_sec" field.
func ThroughputPerSecNEQ(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldThroughputPerSec, v))
}

// ThroughputPerSecIn applies the In predicate on the "throughput_per_sec" field.
func ThroughputPerSecIn(vs ...float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldThroughputPerSec, vs...))
}

// ThroughputPerSecNotIn applies the NotIn predicate on the "throughput_per_sec" field.
func ThroughputPerSecNotIn(vs ...float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldThroughputPerSec, vs...))
}

// ThroughputPerSecGT applies the GT predicate on the "throughput_per_sec" field.
func ThroughputPerSecGT(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldThroughputPerSec, v))
}

// ThroughputPerSecGTE applies the GTE predicate on the "throughput_per_sec" field.
func ThroughputPerSecGTE(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldThroughputPerSec, v))
}

// ThroughputPerSecLT applies the LT predicate on the "throughput_per_sec" field.
func ThroughputPerSecLT(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldThroughputPerSec, v))
}

// ThroughputPerSecLTE applies the LTE predicate on the "throughput_per_sec" field.
func ThroughputPerSecLTE(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldThroughputPerSec, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldLatencyMs, v))
}

// ErrorRateEQ applies the EQ predicate on the "error_rate" field.
func ErrorRateEQ(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldEQ(FieldErrorRate, v))
}

// ErrorRateNEQ applies the NEQ predicate on the "error_rate" field.
func ErrorRateNEQ(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNEQ(FieldErrorRate, v))
}

// ErrorRateIn applies the In predicate on the "error_rate" field.
func ErrorRateIn(vs ...float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldIn(FieldErrorRate, vs...))
}

// ErrorRateNotIn applies the NotIn predicate on the "error_rate" field.
func ErrorRateNotIn(vs ...float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldNotIn(FieldErrorRate, vs...))
}

// ErrorRateGT applies the GT predicate on the "error_rate" field.
func ErrorRateGT(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGT(FieldErrorRate, v))
}

// ErrorRateGTE applies the GTE predicate on the "error_rate" field.
func ErrorRateGTE(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldGTE(FieldErrorRate, v))
}

// ErrorRateLT applies the LT predicate on the "error_rate" field.
func ErrorRateLT(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLT(FieldErrorRate, v))
}

// ErrorRateLTE applies the LTE predicate on the "error_rate" field.
func ErrorRateLTE(v float64) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.FieldLTE(FieldErrorRate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeridianMetric) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeridianMetric) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeridianMetric) predicate.MeridianMetric {
	return predicate.MeridianMetric(sql.NotPredicates(p))
}
