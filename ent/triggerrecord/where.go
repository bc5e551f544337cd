// Code generated by ent, DO NOT EDIT.

package triggerrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldContainsFold(FieldID, id))
}

// TriggerID applies equality check predicate on the "trigger_id" field. It's identical to TriggerIDEQ.
func TriggerID(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldTriggerID, v))
}

// ScheduledTime applies equality check predicate on the "scheduled_time" field. It's identical to ScheduledTimeEQ.
func ScheduledTime(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldScheduledTime, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldRetryCount, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldError, v))
}

// OutcomeSummary applies equality check predicate on the "outcome_summary" field. It's identical to OutcomeSummaryEQ.
func OutcomeSummary(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldOutcomeSummary, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// TriggerIDEQ applies the EQ predicate on the "trigger_id" field.
func TriggerIDEQ(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldTriggerID, v))
}

// TriggerIDNEQ applies the NEQ predicate on the "trigger_id" field.
func TriggerIDNEQ(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldTriggerID, v))
}

// TriggerIDIn applies the In predicate on the "trigger_id" field.
func TriggerIDIn(vs ...string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldTriggerID, vs...))
}

// TriggerIDNotIn applies the NotIn predicate on the "trigger_id" field.
func TriggerIDNotIn(vs ...string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldTriggerID, vs...))
}

// TriggerIDGT applies the GT predicate on the "trigger_id" field.
func TriggerIDGT(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldTriggerID, v))
}

// TriggerIDGTE applies the GTE predicate on the "trigger_id" field.
func TriggerIDGTE(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldTriggerID, v))
}

// TriggerIDLT applies the LT predicate on the "trigger_id" field.
func TriggerIDLT(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldTriggerID, v))
}

// TriggerIDLTE applies the LTE predicate on the "trigger_id" field.
func TriggerIDLTE(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldTriggerID, v))
}

// TriggerIDContains applies the Contains predicate on the "trigger_id" field.
func TriggerIDContains(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldContains(FieldTriggerID, v))
}

// TriggerIDHasPrefix applies the HasPrefix predicate on the "trigger_id" field.
func TriggerIDHasPrefix(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldHasPrefix(FieldTriggerID, v))
}

// TriggerIDHasSuffix applies the HasSuffix predicate on the "trigger_id" field.
func TriggerIDHasSuffix(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldHasSuffix(FieldTriggerID, v))
}

// TriggerIDEqualFold applies the EqualFold predicate on the "trigger_id" field.
func TriggerIDEqualFold(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEqualFold(FieldTriggerID, v))
}

// TriggerIDContainsFold applies the ContainsFold predicate on the "trigger_id" field.
func TriggerIDContainsFold(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldContainsFold(FieldTriggerID, v))
}

// ScheduledTimeEQ applies the EQ predicate on the "scheduled_time" field.
func ScheduledTimeEQ(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldScheduledTime, v))
}

// ScheduledTimeNEQ applies the NEQ predicate on the "scheduled_time" field.
func ScheduledTimeNEQ(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldScheduledTime, v))
}

// ScheduledTimeIn applies the In predicate on the "scheduled_time" field.
func ScheduledTimeIn(vs ...time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldScheduledTime, vs...))
}

// ScheduledTimeNotIn applies the NotIn predicate on the "scheduled_time" field.
func ScheduledTimeNotIn(vs ...time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldScheduledTime, vs...))
}

// ScheduledTimeGT applies the GT predicate on the "scheduled_time" field.
func ScheduledTimeGT(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldScheduledTime, v))
}

// ScheduledTimeGTE applies the GTE predicate on the "scheduled_time" field.
func ScheduledTimeGTE(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldScheduledTime, v))
}

// ScheduledTimeLT applies the LT predicate on the "scheduled_time" field.
func ScheduledTimeLT(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldScheduledTime, v))
}

// ScheduledTimeLTE applies the LTE predicate on the "scheduled_time" field.
func ScheduledTimeLTE(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldScheduledTime, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotNull(FieldCompletedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldRetryCount, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldContainsFold(FieldError, v))
}

// OutcomeSummaryEQ applies the EQ predicate on the "outcome_summary" field.
func OutcomeSummaryEQ(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldOutcomeSummary, v))
}

// OutcomeSummaryNEQ applies the NEQ predicate on the "outcome_summary" field.
func OutcomeSummaryNEQ(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldOutcomeSummary, v))
}

// OutcomeSummaryIn applies the In predicate on the "outcome_summary" field.
func OutcomeSummaryIn(vs ...string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldOutcomeSummary, vs...))
}

// OutcomeSummaryNotIn applies the NotIn predicate on the "outcome_summary" field.
func OutcomeSummaryNotIn(vs ...string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldOutcomeSummary, vs...))
}

// OutcomeSummaryGT applies the GT predicate on the "outcome_summary" field.
func OutcomeSummaryGT(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldOutcomeSummary, v))
}

// OutcomeSummaryGTE applies the GTE predicate on the "outcome_summary" field.
func OutcomeSummaryGTE(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldOutcomeSummary, v))
}

// OutcomeSummaryLT applies the LT predicate on the "outcome_summary" field.
func OutcomeSummaryLT(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldOutcomeSummary, v))
}

// OutcomeSummaryLTE applies the LTE predicate on the "outcome_summary" field.
func OutcomeSummaryLTE(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldOutcomeSummary, v))
}

// OutcomeSummaryContains applies the Contains predicate on the "outcome_summary" field.
func OutcomeSummaryContains(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldContains(FieldOutcomeSummary, v))
}

// OutcomeSummaryHasPrefix applies the HasPrefix predicate on the "outcome_summary" field.
func OutcomeSummaryHasPrefix(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldHasPrefix(FieldOutcomeSummary, v))
}

// OutcomeSummaryHasSuffix applies the HasSuffix predicate on the "outcome_summary" field.
func OutcomeSummaryHasSuffix(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldHasSuffix(FieldOutcomeSummary, v))
}

// OutcomeSummaryIsNil applies the IsNil predicate on the "outcome_summary" field.
func OutcomeSummaryIsNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIsNull(FieldOutcomeSummary))
}

// OutcomeSummaryNotNil applies the NotNil predicate on the "outcome_summary" field.
func OutcomeSummaryNotNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotNull(FieldOutcomeSummary))
}

// OutcomeSummaryEqualFold applies the EqualFold predicate on the "outcome_summary" field.
func OutcomeSummaryEqualFold(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEqualFold(FieldOutcomeSummary, v))
}

// OutcomeSummaryContainsFold applies the ContainsFold predicate on the "outcome_summary" field.
func OutcomeSummaryContainsFold(v string) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldContainsFold(FieldOutcomeSummary, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotNull(FieldData))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int64) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriggerRecord) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriggerRecord) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriggerRecord) predicate.TriggerRecord {
	return predicate.TriggerRecord(sql.NotPredicates(p))
}
