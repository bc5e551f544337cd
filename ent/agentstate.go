// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/agentstate"
)

// AgentState is the model entity for the AgentState schema.
type AgentState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status agentstate.Status `json:"status,omitempty"`
	// 0–1 synthetic load indicator, decays with consecutive failures
	EnergyLevel float64 `json:"energy_level,omitempty"`
	// StressLevel holds the value of the "stress_level" field.
	StressLevel float64 `json:"stress_level,omitempty"`
	// TasksCompleted holds the value of the "tasks_completed" field.
	TasksCompleted int `json:"tasks_completed,omitempty"`
	// TasksFailed holds the value of the "tasks_failed" field.
	TasksFailed int `json:"tasks_failed,omitempty"`
	// AvgResponseTimeMs holds the value of the "avg_response_time_ms" field.
	AvgResponseTimeMs int64 `json:"avg_response_time_ms,omitempty"`
	// LastExecuted holds the value of the "last_executed" field.
	LastExecuted *time.Time `json:"last_executed,omitempty"`
	// Per-skill counters nested under the owning agent
	SkillStates map[string]interface{} `json:"skill_states,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldSkillStates:
			values[i] = new([]byte)
		case agentstate.FieldEnergyLevel, agentstate.FieldStressLevel:
			values[i] = new(sql.NullFloat64)
		case agentstate.FieldTasksCompleted, agentstate.FieldTasksFailed, agentstate.FieldAvgResponseTimeMs:
			values[i] = new(sql.NullInt64)
		case agentstate.FieldID, agentstate.FieldName, agentstate.FieldStatus:
			values[i] = new(sql.NullString)
		case agentstate.FieldLastExecuted, agentstate.FieldCreatedAt, agentstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentState fields.
func (_m *AgentState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentstate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agentstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentstate.Status(value.String)
			}
		case agentstate.FieldEnergyLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field energy_level", values[i])
			} else if value.Valid {
				_m.EnergyLevel = value.Float64
			}
		case agentstate.FieldStressLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stress_level", values[i])
			} else if value.Valid {
				_m.StressLevel = value.Float64
			}
		case agentstate.FieldTasksCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_completed", values[i])
			} else if value.Valid {
				_m.TasksCompleted = int(value.Int64)
			}
		case agentstate.FieldTasksFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_failed", values[i])
			} else if value.Valid {
				_m.TasksFailed = int(value.Int64)
			}
		case agentstate.FieldAvgResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_response_time_ms", values[i])
			} else if value.Valid {
				_m.AvgResponseTimeMs = value.Int64
			}
		case agentstate.FieldLastExecuted:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_executed", values[i])
			} else if value.Valid {
				_m.LastExecuted = new(time.Time)
				*_m.LastExecuted = value.Time
			}
		case agentstate.FieldSkillStates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_states", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkillStates); err != nil {
					return fmt.Errorf("unmarshal field skill_states: %w", err)
				}
			}
		case agentstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentState.
// This includes values selected through modifiers, order, etc.
func (_m *AgentState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentState.
// Note that you need to call AgentState.Unwrap() before calling this method if this AgentState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentState) Update() *AgentStateUpdateOne {
	return NewAgentStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentState) Unwrap() *AgentState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentState) String() string {
	var builder strings.Builder
	builder.WriteString("AgentState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("energy_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnergyLevel))
	builder.WriteString(", ")
	builder.WriteString("stress_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.StressLevel))
	builder.WriteString(", ")
	builder.WriteString("tasks_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCompleted))
	builder.WriteString(", ")
	builder.WriteString("tasks_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksFailed))
	builder.WriteString(", ")
	builder.WriteString("avg_response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgResponseTimeMs))
	builder.WriteString(", ")
	if v := _m.LastExecuted; v != nil {
		builder.WriteString("last_executed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("skill_states=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillStates))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentStates is a parsable slice of AgentState.
type AgentStates []*AgentState
