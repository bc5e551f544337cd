// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentStatesColumns holds the columns for the "agent_states" table.
	AgentStatesColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "active", "degraded", "disabled"}, Default: "idle"},
		{Name: "energy_level", Type: field.TypeFloat64, Default: 1},
		{Name: "stress_level", Type: field.TypeFloat64, Default: 0},
		{Name: "tasks_completed", Type: field.TypeInt, Default: 0},
		{Name: "tasks_failed", Type: field.TypeInt, Default: 0},
		{Name: "avg_response_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "last_executed", Type: field.TypeTime, Nullable: true},
		{Name: "skill_states", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentStatesTable holds the schema information for the "agent_states" table.
	AgentStatesTable = &schema.Table{
		Name:       "agent_states",
		Columns:    AgentStatesColumns,
		PrimaryKey: []*schema.Column{AgentStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentstate_status",
				Unique:  false,
				Columns: []*schema.Column{AgentStatesColumns[2]},
			},
		},
	}
	// CellStatesColumns holds the columns for the "cell_states" table.
	CellStatesColumns = []*schema.Column{
		{Name: "skill_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"idle", "scheduled", "running", "degraded", "stopped"}, Default: "idle"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "last_run", Type: field.TypeTime, Nullable: true},
		{Name: "next_run", Type: field.TypeTime, Nullable: true},
		{Name: "run_count", Type: field.TypeInt, Default: 0},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "fail_count", Type: field.TypeInt, Default: 0},
		{Name: "avg_duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "last_error_at", Type: field.TypeTime, Nullable: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// CellStatesTable holds the schema information for the "cell_states" table.
	CellStatesTable = &schema.Table{
		Name:       "cell_states",
		Columns:    CellStatesColumns,
		PrimaryKey: []*schema.Column{CellStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cellstate_state",
				Unique:  false,
				Columns: []*schema.Column{CellStatesColumns[1]},
			},
		},
	}
	// DataLineagesColumns holds the columns for the "data_lineages" table.
	DataLineagesColumns = []*schema.Column{
		{Name: "data_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"sensor", "processor", "event", "manual"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_accessed", Type: field.TypeTime},
		{Name: "current_tier", Type: field.TypeEnum, Enums: []string{"hot", "warm", "cold", "frozen"}, Default: "hot"},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "consumers", Type: field.TypeJSON, Nullable: true},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
	}
	// DataLineagesTable holds the schema information for the "data_lineages" table.
	DataLineagesTable = &schema.Table{
		Name:       "data_lineages",
		Columns:    DataLineagesColumns,
		PrimaryKey: []*schema.Column{DataLineagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "datalineage_current_tier_last_accessed",
				Unique:  false,
				Columns: []*schema.Column{DataLineagesColumns[5], DataLineagesColumns[4]},
			},
			{
				Name:    "datalineage_source",
				Unique:  false,
				Columns: []*schema.Column{DataLineagesColumns[1]},
			},
			{
				Name:    "datalineage_created_at",
				Unique:  false,
				Columns: []*schema.Column{DataLineagesColumns[3]},
			},
		},
	}
	// MeridianMetricsColumns holds the columns for the "meridian_metrics" table.
	MeridianMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "meridian_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "packets_sent", Type: field.TypeInt64, Default: 0},
		{Name: "packets_received", Type: field.TypeInt64, Default: 0},
		{Name: "packets_dropped", Type: field.TypeInt64, Default: 0},
		{Name: "queue_size", Type: field.TypeInt, Default: 0},
		{Name: "blockages", Type: field.TypeInt64, Default: 0},
		{Name: "throughput_per_sec", Type: field.TypeFloat64, Default: 0},
		{Name: "latency_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "error_rate", Type: field.TypeFloat64, Default: 0},
	}
	// MeridianMetricsTable holds the schema information for the "meridian_metrics" table.
	MeridianMetricsTable = &schema.Table{
		Name:       "meridian_metrics",
		Columns:    MeridianMetricsColumns,
		PrimaryKey: []*schema.Column{MeridianMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meridianmetric_meridian_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MeridianMetricsColumns[1], MeridianMetricsColumns[2]},
			},
			{
				Name:    "meridianmetric_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MeridianMetricsColumns[2]},
			},
		},
	}
	// TriggerRecordsColumns holds the columns for the "trigger_records" table.
	TriggerRecordsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "trigger_id", Type: field.TypeString},
		{Name: "scheduled_time", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "success", "failed", "retrying"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "outcome_summary", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TriggerRecordsTable holds the schema information for the "trigger_records" table.
	TriggerRecordsTable = &schema.Table{
		Name:       "trigger_records",
		Columns:    TriggerRecordsColumns,
		PrimaryKey: []*schema.Column{TriggerRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "triggerrecord_trigger_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TriggerRecordsColumns[1], TriggerRecordsColumns[11]},
			},
			{
				Name:    "triggerrecord_status",
				Unique:  false,
				Columns: []*schema.Column{TriggerRecordsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentStatesTable,
		CellStatesTable,
		DataLineagesTable,
		MeridianMetricsTable,
		TriggerRecordsTable,
	}
)

func init() {
}
