// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldName, v))
}

// EnergyLevel applies equality check predicate on the "energy_level" field. It's identical to EnergyLevelEQ.
func EnergyLevel(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldEnergyLevel, v))
}

// StressLevel applies equality check predicate on the "stress_level" field. It's identical to StressLevelEQ.
func StressLevel(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldStressLevel, v))
}

// TasksCompleted applies equality check predicate on the "tasks_completed" field. It's identical to TasksCompletedEQ.
func TasksCompleted(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksFailed applies equality check predicate on the "tasks_failed" field. It's identical to TasksFailedEQ.
func TasksFailed(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldTasksFailed, v))
}

// AvgResponseTimeMs applies equality check predicate on the "avg_response_time_ms" field. It's identical to AvgResponseTimeMsEQ.
func AvgResponseTimeMs(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldAvgResponseTimeMs, v))
}

// LastExecuted applies equality check predicate on the "last_executed" field. It's identical to LastExecutedEQ.
func LastExecuted(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLastExecuted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldStatus, vs...))
}

// EnergyLevelEQ applies the EQ predicate on the "energy_level" field.
func EnergyLevelEQ(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldEnergyLevel, v))
}

// EnergyLevelNEQ applies the NEQ predicate on the "energy_level" field.
func EnergyLevelNEQ(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldEnergyLevel, v))
}

// EnergyLevelIn applies the In predicate on the "energy_level" field.
func EnergyLevelIn(vs ...float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldEnergyLevel, vs...))
}

// EnergyLevelNotIn applies the NotIn predicate on the "energy_level" field.
func EnergyLevelNotIn(vs ...float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldEnergyLevel, vs...))
}

// EnergyLevelGT applies the GT predicate on the "energy_level" field.
func EnergyLevelGT(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldEnergyLevel, v))
}

// EnergyLevelGTE applies the GTE predicate on the "energy_level" field.
func EnergyLevelGTE(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldEnergyLevel, v))
}

// EnergyLevelLT applies the LT predicate on the "energy_level" field.
func EnergyLevelLT(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldEnergyLevel, v))
}

// EnergyLevelLTE applies the LTE predicate on the "energy_level" field.
func EnergyLevelLTE(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldEnergyLevel, v))
}

// StressLevelEQ applies the EQ predicate on the "stress_level" field.
func StressLevelEQ(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldStressLevel, v))
}

// StressLevelNEQ applies the NEQ predicate on the "stress_level" field.
func StressLevelNEQ(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldStressLevel, v))
}

// StressLevelIn applies the In predicate on the "stress_level" field.
func StressLevelIn(vs ...float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldStressLevel, vs...))
}

// StressLevelNotIn applies the NotIn predicate on the "stress_level" field.
func StressLevelNotIn(vs ...float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldStressLevel, vs...))
}

// StressLevelGT applies the GT predicate on the "stress_level" field.
func StressLevelGT(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldStressLevel, v))
}

// StressLevelGTE applies the GTE predicate on the "stress_level" field.
func StressLevelGTE(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldStressLevel, v))
}

// StressLevelLT applies the LT predicate on the "stress_level" field.
func StressLevelLT(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldStressLevel, v))
}

// StressLevelLTE applies the LTE predicate on the "stress_level" field.
func StressLevelLTE(v float64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldStressLevel, v))
}

// TasksCompletedEQ applies the EQ predicate on the "tasks_completed" field.
func TasksCompletedEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksCompletedNEQ applies the NEQ predicate on the "tasks_completed" field.
func TasksCompletedNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldTasksCompleted, v))
}

// TasksCompletedIn applies the In predicate on the "tasks_completed" field.
func TasksCompletedIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldTasksCompleted, vs...))
}

// TasksCompletedNotIn applies the NotIn predicate on the "tasks_completed" field.
func TasksCompletedNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldTasksCompleted, vs...))
}

// TasksCompletedGT applies the GT predicate on the "tasks_completed" field.
func TasksCompletedGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldTasksCompleted, v))
}

// TasksCompletedGTE applies the GTE predicate on the "tasks_completed" field.
func TasksCompletedGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldTasksCompleted, v))
}

// TasksCompletedLT applies the LT predicate on the "tasks_completed" field.
func TasksCompletedLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldTasksCompleted, v))
}

// TasksCompletedLTE applies the LTE predicate on the "tasks_completed" field.
func TasksCompletedLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldTasksCompleted, v))
}

// TasksFailedEQ applies the EQ predicate on the "tasks_failed" field.
func TasksFailedEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldTasksFailed, v))
}

// TasksFailedNEQ applies the NEQ predicate on the "tasks_failed" field.
func TasksFailedNEQ(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldTasksFailed, v))
}

// TasksFailedIn applies the In predicate on the "tasks_failed" field.
func TasksFailedIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldTasksFailed, vs...))
}

// TasksFailedNotIn applies the NotIn predicate on the "tasks_failed" field.
func TasksFailedNotIn(vs ...int) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldTasksFailed, vs...))
}

// TasksFailedGT applies the GT predicate on the "tasks_failed" field.
func TasksFailedGT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldTasksFailed, v))
}

// TasksFailedGTE applies the GTE predicate on the "tasks_failed" field.
func TasksFailedGTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldTasksFailed, v))
}

// TasksFailedLT applies the LT predicate on the "tasks_failed" field.
func TasksFailedLT(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldTasksFailed, v))
}

// TasksFailedLTE applies the LTE predicate on the "tasks_failed" field.
func TasksFailedLTE(v int) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldTasksFailed, v))
}

// AvgResponseTimeMsEQ applies the EQ predicate on the "avg_response_time_ms" field.
func AvgResponseTimeMsEQ(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldAvgResponseTimeMs, v))
}

// AvgResponseTimeMsNEQ applies the NEQ predicate on the "avg_response_time_ms" field.
func AvgResponseTimeMsNEQ(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldAvgResponseTimeMs, v))
}

// AvgResponseTimeMsIn applies the In predicate on the "avg_response_time_ms" field.
func AvgResponseTimeMsIn(vs ...int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldAvgResponseTimeMs, vs...))
}

// AvgResponseTimeMsNotIn applies the NotIn predicate on the "avg_response_time_ms" field.
func AvgResponseTimeMsNotIn(vs ...int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldAvgResponseTimeMs, vs...))
}

// AvgResponseTimeMsGT applies the GT predicate on the "avg_response_time_ms" field.
func AvgResponseTimeMsGT(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldAvgResponseTimeMs, v))
}

// AvgResponseTimeMsGTE applies the GTE predicate on the "avg_response_time_ms" field.
func AvgResponseTimeMsGTE(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldAvgResponseTimeMs, v))
}

// AvgResponseTimeMsLT applies the LT predicate on the "avg_response_time_ms" field.
func AvgResponseTimeMsLT(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldAvgResponseTimeMs, v))
}

// AvgResponseTimeMsLTE applies the LTE predicate on the "avg_response_time_ms" field.
func AvgResponseTimeMsLTE(v int64) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldAvgResponseTimeMs, v))
}

// LastExecutedEQ applies the EQ predicate on the "last_executed" field.
func LastExecutedEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldLastExecuted, v))
}

// LastExecutedNEQ applies the NEQ predicate on the "last_executed" field.
func LastExecutedNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldLastExecuted, v))
}

// LastExecutedIn applies the In predicate on the "last_executed" field.
func LastExecutedIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldLastExecuted, vs...))
}

// LastExecutedNotIn applies the NotIn predicate on the "last_executed" field.
func LastExecutedNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldLastExecuted, vs...))
}

// LastExecutedGT applies the GT predicate on the "last_executed" field.
func LastExecutedGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldLastExecuted, v))
}

// LastExecutedGTE applies the GTE predicate on the "last_executed" field.
func LastExecutedGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldLastExecuted, v))
}

// LastExecutedLT applies the LT predicate on the "last_executed" field.
func LastExecutedLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldLastExecuted, v))
}

// LastExecutedLTE applies the LTE predicate on the "last_executed" field.
func LastExecutedLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldLastExecuted, v))
}

// LastExecutedIsNil applies the IsNil predicate on the "last_executed" field.
func LastExecutedIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldLastExecuted))
}

// LastExecutedNotNil applies the NotNil predicate on the "last_executed" field.
func LastExecutedNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldLastExecuted))
}

// SkillStatesIsNil applies the IsNil predicate on the "skill_states" field.
func SkillStatesIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldSkillStates))
}

// SkillStatesNotNil applies the NotNil predicate on the "skill_states" field.
func SkillStatesNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldSkillStates))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.NotPredicates(p))
}
