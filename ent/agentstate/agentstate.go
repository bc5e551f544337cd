// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentstate type in the database.
	Label = "agent_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEnergyLevel holds the string denoting the energy_level field in the database.
	FieldEnergyLevel = "energy_level"
	// FieldStressLevel holds the string denoting the stress_level field in the database.
	FieldStressLevel = "stress_level"
	// FieldTasksCompleted holds the string denoting the tasks_completed field in the database.
	FieldTasksCompleted = "tasks_completed"
	// FieldTasksFailed holds the string denoting the tasks_failed field in the database.
	FieldTasksFailed = "tasks_failed"
	// FieldAvgResponseTimeMs holds the string denoting the avg_response_time_ms field in the database.
	FieldAvgResponseTimeMs = "avg_response_time_ms"
	// FieldLastExecuted holds the string denoting the last_executed field in the database.
	FieldLastExecuted = "last_executed"
	// FieldSkillStates holds the string denoting the skill_states field in the database.
	FieldSkillStates = "skill_states"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentstate in the database.
	Table = "agent_states"
)

// Columns holds all SQL columns for agentstate fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldStatus,
	FieldEnergyLevel,
	FieldStressLevel,
	FieldTasksCompleted,
	FieldTasksFailed,
	FieldAvgResponseTimeMs,
	FieldLastExecuted,
	FieldSkillStates,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultEnergyLevel holds the default value on creation for the "energy_level" field.
	DefaultEnergyLevel float64
	// DefaultStressLevel holds the default value on creation for the "stress_level" field.
	DefaultStressLevel float64
	// DefaultTasksCompleted holds the default value on creation for the "tasks_completed" field.
	DefaultTasksCompleted int
	// DefaultTasksFailed holds the default value on creation for the "tasks_failed" field.
	DefaultTasksFailed int
	// DefaultAvgResponseTimeMs holds the default value on creation for the "avg_response_time_ms" field.
	DefaultAvgResponseTimeMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle     Status = "idle"
	StatusActive   Status = "active"
	StatusDegraded Status = "degraded"
	StatusDisabled Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusActive, StatusDegraded, StatusDisabled:
		return nil
	default:
		return fmt.Errorf("agentstate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEnergyLevel orders the results by the energy_level field.
func ByEnergyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnergyLevel, opts...).ToFunc()
}

// ByStressLevel orders the results by the stress_level field.
func ByStressLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStressLevel, opts...).ToFunc()
}

// ByTasksCompleted orders the results by the tasks_completed field.
func ByTasksCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksCompleted, opts...).ToFunc()
}

// ByTasksFailed orders the results by the tasks_failed field.
func ByTasksFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksFailed, opts...).ToFunc()
}

// ByAvgResponseTimeMs orders the results by the avg_response_time_ms field.
func ByAvgResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgResponseTimeMs, opts...).ToFunc()
}

// ByLastExecuted orders the results by the last_executed field.
func ByLastExecuted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExecuted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
