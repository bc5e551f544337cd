// Code generated by ent, DO NOT EDIT.

package cellstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CellState {
	return predicate.CellState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CellState {
	return predicate.CellState(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldUpdatedAt, v))
}

// LastRun applies equality check predicate on the "last_run" field. It's identical to LastRunEQ.
func LastRun(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldLastRun, v))
}

// NextRun applies equality check predicate on the "next_run" field. It's identical to NextRunEQ.
func NextRun(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldNextRun, v))
}

// RunCount applies equality check predicate on the "run_count" field. It's identical to RunCountEQ.
func RunCount(v int) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldRunCount, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldSuccessCount, v))
}

// FailCount applies equality check predicate on the "fail_count" field. It's identical to FailCountEQ.
func FailCount(v int) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldFailCount, v))
}

// AvgDurationMs applies equality check predicate on the "avg_duration_ms" field. It's identical to AvgDurationMsEQ.
func AvgDurationMs(v int64) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldAvgDurationMs, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldLastError, v))
}

// LastErrorAt applies equality check predicate on the "last_error_at" field. It's identical to LastErrorAtEQ.
func LastErrorAt(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldLastErrorAt, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldState, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldUpdatedAt, v))
}

// LastRunEQ applies the EQ predicate on the "last_run" field.
func LastRunEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldLastRun, v))
}

// LastRunNEQ applies the NEQ predicate on the "last_run" field.
func LastRunNEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldLastRun, v))
}

// LastRunIn applies the In predicate on the "last_run" field.
func LastRunIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldLastRun, vs...))
}

// LastRunNotIn applies the NotIn predicate on the "last_run" field.
func LastRunNotIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldLastRun, vs...))
}

// LastRunGT applies the GT predicate on the "last_run" field.
func LastRunGT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldLastRun, v))
}

// LastRunGTE applies the GTE predicate on the "last_run" field.
func LastRunGTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldLastRun, v))
}

// LastRunLT applies the LT predicate on the "last_run" field.
func LastRunLT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldLastRun, v))
}

// LastRunLTE applies the LTE predicate on the "last_run" field.
func LastRunLTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldLastRun, v))
}

// LastRunIsNil applies the IsNil predicate on the "last_run" field.
func LastRunIsNil() predicate.CellState {
	return predicate.CellState(sql.FieldIsNull(FieldLastRun))
}

// LastRunNotNil applies the NotNil predicate on the "last_run" field.
func LastRunNotNil() predicate.CellState {
	return predicate.CellState(sql.FieldNotNull(FieldLastRun))
}

// NextRunEQ applies the EQ predicate on the "next_run" field.
func NextRunEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldNextRun, v))
}

// NextRunNEQ applies the NEQ predicate on the "next_run" field.
func NextRunNEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldNextRun, v))
}

// NextRunIn applies the In predicate on the "next_run" field.
func NextRunIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldNextRun, vs...))
}

// NextRunNotIn applies the NotIn predicate on the "next_run" field.
func NextRunNotIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldNextRun, vs...))
}

// NextRunGT applies the GT predicate on the "next_run" field.
func NextRunGT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldNextRun, v))
}

// NextRunGTE applies the GTE predicate on the "next_run" field.
func NextRunGTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldNextRun, v))
}

// NextRunLT applies the LT predicate on the "next_run" field.
func NextRunLT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldNextRun, v))
}

// NextRunLTE applies the LTE predicate on the "next_run" field.
func NextRunLTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldNextRun, v))
}

// NextRunIsNil applies the IsNil predicate on the "next_run" field.
func NextRunIsNil() predicate.CellState {
	return predicate.CellState(sql.FieldIsNull(FieldNextRun))
}

// NextRunNotNil applies the NotNil predicate on the "next_run" field.
func NextRunNotNil() predicate.CellState {
	return predicate.CellState(sql.FieldNotNull(FieldNextRun))
}

// RunCountEQ applies the EQ predicate on the "run_count" field.
func RunCountEQ(v int) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldRunCount, v))
}

// RunCountNEQ applies the NEQ predicate on the "run_count" field.
func RunCountNEQ(v int) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldRunCount, v))
}

// RunCountIn applies the In predicate on the "run_count" field.
func RunCountIn(vs ...int) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldRunCount, vs...))
}

// RunCountNotIn applies the NotIn predicate on the "run_count" field.
func RunCountNotIn(vs ...int) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldRunCount, vs...))
}

// RunCountGT applies the GT predicate on the "run_count" field.
func RunCountGT(v int) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldRunCount, v))
}

// RunCountGTE applies the GTE predicate on the "run_count" field.
func RunCountGTE(v int) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldRunCount, v))
}

// RunCountLT applies the LT predicate on the "run_count" field.
func RunCountLT(v int) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldRunCount, v))
}

// RunCountLTE applies the LTE predicate on the "run_count" field.
func RunCountLTE(v int) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldRunCount, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldSuccessCount, v))
}

// FailCountEQ applies the EQ predicate on the "fail_count" field.
func FailCountEQ(v int) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldFailCount, v))
}

// FailCountNEQ applies the NEQ predicate on the "fail_count" field.
func FailCountNEQ(v int) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldFailCount, v))
}

// FailCountIn applies the In predicate on the "fail_count" field.
func FailCountIn(vs ...int) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldFailCount, vs...))
}

// FailCountNotIn applies the NotIn predicate on the "fail_count" field.
func FailCountNotIn(vs ...int) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldFailCount, vs...))
}

// FailCountGT applies the GT predicate on the "fail_count" field.
func FailCountGT(v int) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldFailCount, v))
}

// FailCountGTE applies the GTE predicate on the "fail_count" field.
func FailCountGTE(v int) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldFailCount, v))
}

// FailCountLT applies the LT predicate on the "fail_count" field.
func FailCountLT(v int) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldFailCount, v))
}

// FailCountLTE applies the LTE predicate on the "fail_count" field.
func FailCountLTE(v int) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldFailCount, v))
}

// AvgDurationMsEQ applies the EQ predicate on the "avg_duration_ms" field.
func AvgDurationMsEQ(v int64) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldAvgDurationMs, v))
}

// AvgDurationMsNEQ applies the NEQ predicate on the "avg_duration_ms" field.
func AvgDurationMsNEQ(v int64) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldAvgDurationMs, v))
}

// AvgDurationMsIn applies the In predicate on the "avg_duration_ms" field.
func AvgDurationMsIn(vs ...int64) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldAvgDurationMs, vs...))
}

// AvgDurationMsNotIn applies the NotIn predicate on the "avg_duration_ms" field.
func AvgDurationMsNotIn(vs ...int64) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldAvgDurationMs, vs...))
}

// AvgDurationMsGT applies the GT predicate on the "avg_duration_ms" field.
func AvgDurationMsGT(v int64) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldAvgDurationMs, v))
}

// AvgDurationMsGTE applies the GTE predicate on the "avg_duration_ms" field.
func AvgDurationMsGTE(v int64) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldAvgDurationMs, v))
}

// AvgDurationMsLT applies the LT predicate on the "avg_duration_ms" field.
func AvgDurationMsLT(v int64) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldAvgDurationMs, v))
}

// AvgDurationMsLTE applies the LTE predicate on the "avg_duration_ms" field.
func AvgDurationMsLTE(v int64) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldAvgDurationMs, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.CellState {
	return predicate.CellState(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.CellState {
	return predicate.CellState(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.CellState {
	return predicate.CellState(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.CellState {
	return predicate.CellState(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.CellState {
	return predicate.CellState(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.CellState {
	return predicate.CellState(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.CellState {
	return predicate.CellState(sql.FieldContainsFold(FieldLastError, v))
}

// LastErrorAtEQ applies the EQ predicate on the "last_error_at" field.
func LastErrorAtEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldEQ(FieldLastErrorAt, v))
}

// LastErrorAtNEQ applies the NEQ predicate on the "last_error_at" field.
func LastErrorAtNEQ(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNEQ(FieldLastErrorAt, v))
}

// LastErrorAtIn applies the In predicate on the "last_error_at" field.
func LastErrorAtIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldIn(FieldLastErrorAt, vs...))
}

// LastErrorAtNotIn applies the NotIn predicate on the "last_error_at" field.
func LastErrorAtNotIn(vs ...time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldNotIn(FieldLastErrorAt, vs...))
}

// LastErrorAtGT applies the GT predicate on the "last_error_at" field.
func LastErrorAtGT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGT(FieldLastErrorAt, v))
}

// LastErrorAtGTE applies the GTE predicate on the "last_error_at" field.
func LastErrorAtGTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldGTE(FieldLastErrorAt, v))
}

// LastErrorAtLT applies the LT predicate on the "last_error_at" field.
func LastErrorAtLT(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLT(FieldLastErrorAt, v))
}

// LastErrorAtLTE applies the LTE predicate on the "last_error_at" field.
func LastErrorAtLTE(v time.Time) predicate.CellState {
	return predicate.CellState(sql.FieldLTE(FieldLastErrorAt, v))
}

// LastErrorAtIsNil applies the IsNil predicate on the "last_error_at" field.
func LastErrorAtIsNil() predicate.CellState {
	return predicate.CellState(sql.FieldIsNull(FieldLastErrorAt))
}

// LastErrorAtNotNil applies the NotNil predicate on the "last_error_at" field.
func LastErrorAtNotNil() predicate.CellState {
	return predicate.CellState(sql.FieldNotNull(FieldLastErrorAt))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.CellState {
	return predicate.CellState(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.CellState {
	return predicate.CellState(sql.FieldNotNull(FieldConfig))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.CellState {
	return predicate.CellState(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.CellState {
	return predicate.CellState(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CellState) predicate.CellState {
	return predicate.CellState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CellState) predicate.CellState {
	return predicate.CellState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CellState) predicate.CellState {
	return predicate.CellState(sql.NotPredicates(p))
}
