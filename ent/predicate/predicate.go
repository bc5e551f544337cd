// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentState is the predicate function for agentstate builders.
type AgentState func(*sql.Selector)

// CellState is the predicate function for cellstate builders.
type CellState func(*sql.Selector)

// DataLineage is the predicate function for datalineage builders.
type DataLineage func(*sql.Selector)

// MeridianMetric is the predicate function for meridianmetric builders.
type MeridianMetric func(*sql.Selector)

// TriggerRecord is the predicate function for triggerrecord builders.
type TriggerRecord func(*sql.Selector)
