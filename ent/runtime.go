// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jackeyunjie/growthd/ent/agentstate"
	"github.com/jackeyunjie/growthd/ent/cellstate"
	"github.com/jackeyunjie/growthd/ent/datalineage"
	"github.com/jackeyunjie/growthd/ent/meridianmetric"
	"github.com/jackeyunjie/growthd/ent/schema"
	"github.com/jackeyunjie/growthd/ent/triggerrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentstateFields := schema.AgentState{}.Fields()
	_ = agentstateFields
	// agentstateDescEnergyLevel is the schema descriptor for energy_level field.
	agentstateDescEnergyLevel := agentstateFields[3].Descriptor()
	// agentstate.DefaultEnergyLevel holds the default value on creation for the energy_level field.
	agentstate.DefaultEnergyLevel = agentstateDescEnergyLevel.Default.(float64)
	// agentstateDescStressLevel is the schema descriptor for stress_level field.
	agentstateDescStressLevel := agentstateFields[4].Descriptor()
	// agentstate.DefaultStressLevel holds the default value on creation for the stress_level field.
	agentstate.DefaultStressLevel = agentstateDescStressLevel.Default.(float64)
	// agentstateDescTasksCompleted is the schema descriptor for tasks_completed field.
	agentstateDescTasksCompleted := agentstateFields[5].Descriptor()
	// agentstate.DefaultTasksCompleted holds the default value on creation for the tasks_completed field.
	agentstate.DefaultTasksCompleted = agentstateDescTasksCompleted.Default.(int)
	// agentstateDescTasksFailed is the schema descriptor for tasks_failed field.
	agentstateDescTasksFailed := agentstateFields[6].Descriptor()
	// agentstate.DefaultTasksFailed holds the default value on creation for the tasks_failed field.
	agentstate.DefaultTasksFailed = agentstateDescTasksFailed.Default.(int)
	// agentstateDescAvgResponseTimeMs is the schema descriptor for avg_response_time_ms field.
	agentstateDescAvgResponseTimeMs := agentstateFields[7].Descriptor()
	// agentstate.DefaultAvgResponseTimeMs holds the default value on creation for the avg_response_time_ms field.
	agentstate.DefaultAvgResponseTimeMs = agentstateDescAvgResponseTimeMs.Default.(int64)
	// agentstateDescCreatedAt is the schema descriptor for created_at field.
	agentstateDescCreatedAt := agentstateFields[10].Descriptor()
	// agentstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentstate.DefaultCreatedAt = agentstateDescCreatedAt.Default.(func() time.Time)
	// agentstateDescUpdatedAt is the schema descriptor for updated_at field.
	agentstateDescUpdatedAt := agentstateFields[11].Descriptor()
	// agentstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentstate.DefaultUpdatedAt = agentstateDescUpdatedAt.Default.(func() time.Time)
	// agentstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentstate.UpdateDefaultUpdatedAt = agentstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	cellstateFields := schema.CellState{}.Fields()
	_ = cellstateFields
	// cellstateDescCreatedAt is the schema descriptor for created_at field.
	cellstateDescCreatedAt := cellstateFields[2].Descriptor()
	// cellstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	cellstate.DefaultCreatedAt = cellstateDescCreatedAt.Default.(func() time.Time)
	// cellstateDescUpdatedAt is the schema descriptor for updated_at field.
	cellstateDescUpdatedAt := cellstateFields[3].Descriptor()
	// cellstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cellstate.DefaultUpdatedAt = cellstateDescUpdatedAt.Default.(func() time.Time)
	// cellstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cellstate.UpdateDefaultUpdatedAt = cellstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cellstateDescRunCount is the schema descriptor for run_count field.
	cellstateDescRunCount := cellstateFields[6].Descriptor()
	// cellstate.DefaultRunCount holds the default value on creation for the run_count field.
	cellstate.DefaultRunCount = cellstateDescRunCount.Default.(int)
	// cellstateDescSuccessCount is the schema descriptor for success_count field.
	cellstateDescSuccessCount := cellstateFields[7].Descriptor()
	// cellstate.DefaultSuccessCount holds the default value on creation for the success_count field.
	cellstate.DefaultSuccessCount = cellstateDescSuccessCount.Default.(int)
	// cellstateDescFailCount is the schema descriptor for fail_count field.
	cellstateDescFailCount := cellstateFields[8].Descriptor()
	// cellstate.DefaultFailCount holds the default value on creation for the fail_count field.
	cellstate.DefaultFailCount = cellstateDescFailCount.Default.(int)
	// cellstateDescAvgDurationMs is the schema descriptor for avg_duration_ms field.
	cellstateDescAvgDurationMs := cellstateFields[9].Descriptor()
	// cellstate.DefaultAvgDurationMs holds the default value on creation for the avg_duration_ms field.
	cellstate.DefaultAvgDurationMs = cellstateDescAvgDurationMs.Default.(int64)
	datalineageFields := schema.DataLineage{}.Fields()
	_ = datalineageFields
	// datalineageDescCreatedAt is the schema descriptor for created_at field.
	datalineageDescCreatedAt := datalineageFields[3].Descriptor()
	// datalineage.DefaultCreatedAt holds the default value on creation for the created_at field.
	datalineage.DefaultCreatedAt = datalineageDescCreatedAt.Default.(func() time.Time)
	// datalineageDescLastAccessed is the schema descriptor for last_accessed field.
	datalineageDescLastAccessed := datalineageFields[4].Descriptor()
	// datalineage.DefaultLastAccessed holds the default value on creation for the last_accessed field.
	datalineage.DefaultLastAccessed = datalineageDescLastAccessed.Default.(func() time.Time)
	// datalineageDescSchemaVersion is the schema descriptor for schema_version field.
	datalineageDescSchemaVersion := datalineageFields[9].Descriptor()
	// datalineage.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	datalineage.DefaultSchemaVersion = datalineageDescSchemaVersion.Default.(int)
	meridianmetricFields := schema.MeridianMetric{}.Fields()
	_ = meridianmetricFields
	// meridianmetricDescTimestamp is the schema descriptor for timestamp field.
	meridianmetricDescTimestamp := meridianmetricFields[1].Descriptor()
	// meridianmetric.DefaultTimestamp holds the default value on creation for the timestamp field.
	meridianmetric.DefaultTimestamp = meridianmetricDescTimestamp.Default.(func() time.Time)
	// meridianmetricDescPacketsSent is the schema descriptor for packets_sent field.
	meridianmetricDescPacketsSent := meridianmetricFields[2].Descriptor()
	// meridianmetric.DefaultPacketsSent holds the default value on creation for the packets_sent field.
	meridianmetric.DefaultPacketsSent = meridianmetricDescPacketsSent.Default.(int64)
	// meridianmetricDescPacketsReceived is the schema descriptor for packets_received field.
	meridianmetricDescPacketsReceived := meridianmetricFields[3].Descriptor()
	// meridianmetric.DefaultPacketsReceived holds the default value on creation for the packets_received field.
	meridianmetric.DefaultPacketsReceived = meridianmetricDescPacketsReceived.Default.(int64)
	// meridianmetricDescPacketsDropped is the schema descriptor for packets_dropped field.
	meridianmetricDescPacketsDropped := meridianmetricFields[4].Descriptor()
	// meridianmetric.DefaultPacketsDropped holds the default value on creation for the packets_dropped field.
	meridianmetric.DefaultPacketsDropped = meridianmetricDescPacketsDropped.Default.(int64)
	// meridianmetricDescQueueSize is the schema descriptor for queue_size field.
	meridianmetricDescQueueSize := meridianmetricFields[5].Descriptor()
	// meridianmetric.DefaultQueueSize holds the default value on creation for the queue_size field.
	meridianmetric.DefaultQueueSize = meridianmetricDescQueueSize.Default.(int)
	// meridianmetricDescBlockages is the schema descriptor for blockages field.
	meridianmetricDescBlockages := meridianmetricFields[6].Descriptor()
	// meridianmetric.DefaultBlockages holds the default value on creation for the blockages field.
	meridianmetric.DefaultBlockages = meridianmetricDescBlockages.Default.(int64)
	// meridianmetricDescThroughputPerSec is the schema descriptor for throughput_per_sec field.
	meridianmetricDescThroughputPerSec := meridianmetricFields[7].Descriptor()
	// meridianmetric.DefaultThroughputPerSec holds the default value on creation for the throughput_per_sec field.
	meridianmetric.DefaultThroughputPerSec = meridianmetricDescThroughputPerSec.Default.(float64)
	// meridianmetricDescLatencyMs is the schema descriptor for latency_ms field.
	meridianmetricDescLatencyMs := meridianmetricFields[8].Descriptor()
	// meridianmetric.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	meridianmetric.DefaultLatencyMs = meridianmetricDescLatencyMs.Default.(float64)
	// meridianmetricDescErrorRate is the schema descriptor for error_rate field.
	meridianmetricDescErrorRate := meridianmetricFields[9].Descriptor()
	// meridianmetric.DefaultErrorRate holds the default value on creation for the error_rate field.
	meridianmetric.DefaultErrorRate = meridianmetricDescErrorRate.Default.(float64)
	triggerrecordFields := schema.TriggerRecord{}.Fields()
	_ = triggerrecordFields
	// triggerrecordDescRetryCount is the schema descriptor for retry_count field.
	triggerrecordDescRetryCount := triggerrecordFields[6].Descriptor()
	// triggerrecord.DefaultRetryCount holds the default value on creation for the retry_count field.
	triggerrecord.DefaultRetryCount = triggerrecordDescRetryCount.Default.(int)
	// triggerrecordDescProcessingTimeMs is the schema descriptor for processing_time_ms field.
	triggerrecordDescProcessingTimeMs := triggerrecordFields[10].Descriptor()
	// triggerrecord.DefaultProcessingTimeMs holds the default value on creation for the processing_time_ms field.
	triggerrecord.DefaultProcessingTimeMs = triggerrecordDescProcessingTimeMs.Default.(int64)
	// triggerrecordDescCreatedAt is the schema descriptor for created_at field.
	triggerrecordDescCreatedAt := triggerrecordFields[11].Descriptor()
	// triggerrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	triggerrecord.DefaultCreatedAt = triggerrecordDescCreatedAt.Default.(func() time.Time)
}
