// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jackeyunjie/growthd/ent/predicate"
	"github.com/jackeyunjie/growthd/ent/triggerrecord"
)

// TriggerRecordUpdate is the builder for updating TriggerRecord entities.
type TriggerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerRecordMutation
}

// Where appends a list predicates to the TriggerRecordUpdate builder.
func (_u *TriggerRecordUpdate) Where(ps ...predicate.TriggerRecord) *TriggerRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *TriggerRecordUpdate) SetTriggerID(v string) *TriggerRecordUpdate {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableTriggerID(v *string) *TriggerRecordUpdate {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *TriggerRecordUpdate) SetScheduledTime(v time.Time) *TriggerRecordUpdate {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableScheduledTime(v *time.Time) *TriggerRecordUpdate {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TriggerRecordUpdate) SetStartedAt(v time.Time) *TriggerRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableStartedAt(v *time.Time) *TriggerRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TriggerRecordUpdate) ClearStartedAt() *TriggerRecordUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TriggerRecordUpdate) SetCompletedAt(v time.Time) *TriggerRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableCompletedAt(v *time.Time) *TriggerRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TriggerRecordUpdate) ClearCompletedAt() *TriggerRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TriggerRecordUpdate) SetStatus(v triggerrecord.Status) *TriggerRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableStatus(v *triggerrecord.Status) *TriggerRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TriggerRecordUpdate) SetRetryCount(v int) *TriggerRecordUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableRetryCount(v *int) *TriggerRecordUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TriggerRecordUpdate) AddRetryCount(v int) *TriggerRecordUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetError sets the "error" field.
func (_u *TriggerRecordUpdate) SetError(v string) *TriggerRecordUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableError(v *string) *TriggerRecordUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TriggerRecordUpdate) ClearError() *TriggerRecordUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetOutcomeSummary sets the "outcome_summary" field.
func (_u *TriggerRecordUpdate) SetOutcomeSummary(v string) *TriggerRecordUpdate {
	_u.mutation.SetOutcomeSummary(v)
	return _u
}

// SetNillableOutcomeSummary sets the "outcome_summary" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableOutcomeSummary(v *string) *TriggerRecordUpdate {
	if v != nil {
		_u.SetOutcomeSummary(*v)
	}
	return _u
}

// ClearOutcomeSummary clears the value of the "outcome_summary" field.
func (_u *TriggerRecordUpdate) ClearOutcomeSummary() *TriggerRecordUpdate {
	_u.mutation.ClearOutcomeSummary()
	return _u
}

// SetData sets the "data" field.
func (_u *TriggerRecordUpdate) SetData(v map[string]interface{}) *TriggerRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *TriggerRecordUpdate) ClearData() *TriggerRecordUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *TriggerRecordUpdate) SetProcessingTimeMs(v int64) *TriggerRecordUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *TriggerRecordUpdate) SetNillableProcessingTimeMs(v *int64) *TriggerRecordUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *TriggerRecordUpdate) AddProcessingTimeMs(v int64) *TriggerRecordUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// Mutation returns the TriggerRecordMutation object of the builder.
func (_u *TriggerRecordUpdate) Mutation() *TriggerRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := triggerrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerrecord.Table, triggerrecord.Columns, sqlgraph.NewFieldSpec(triggerrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(triggerrecord.FieldTriggerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(triggerrecord.FieldScheduledTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(triggerrecord.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(triggerrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(triggerrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(triggerrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triggerrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(triggerrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(triggerrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(triggerrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(triggerrecord.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeSummary(); ok {
		_spec.SetField(triggerrecord.FieldOutcomeSummary, field.TypeString, value)
	}
	if _u.mutation.OutcomeSummaryCleared() {
		_spec.ClearField(triggerrecord.FieldOutcomeSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(triggerrecord.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(triggerrecord.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(triggerrecord.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(triggerrecord.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerRecordUpdateOne is the builder for updating a single TriggerRecord entity.
type TriggerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerRecordMutation
}

// SetTriggerID sets the "trigger_id" field.
func (_u *TriggerRecordUpdateOne) SetTriggerID(v string) *TriggerRecordUpdateOne {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableTriggerID(v *string) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// SetScheduledTime sets the "scheduled_time" field.
func (_u *TriggerRecordUpdateOne) SetScheduledTime(v time.Time) *TriggerRecordUpdateOne {
	_u.mutation.SetScheduledTime(v)
	return _u
}

// SetNillableScheduledTime sets the "scheduled_time" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableScheduledTime(v *time.Time) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetScheduledTime(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TriggerRecordUpdateOne) SetStartedAt(v time.Time) *TriggerRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableStartedAt(v *time.Time) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TriggerRecordUpdateOne) ClearStartedAt() *TriggerRecordUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TriggerRecordUpdateOne) SetCompletedAt(v time.Time) *TriggerRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TriggerRecordUpdateOne) ClearCompletedAt() *TriggerRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TriggerRecordUpdateOne) SetStatus(v triggerrecord.Status) *TriggerRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableStatus(v *triggerrecord.Status) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TriggerRecordUpdateOne) SetRetryCount(v int) *TriggerRecordUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableRetryCount(v *int) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TriggerRecordUpdateOne) AddRetryCount(v int) *TriggerRecordUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetError sets the "error" field.
func (_u *TriggerRecordUpdateOne) SetError(v string) *TriggerRecordUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableError(v *string) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TriggerRecordUpdateOne) ClearError() *TriggerRecordUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetOutcomeSummary sets the "outcome_summary" field.
func (_u *TriggerRecordUpdateOne) SetOutcomeSummary(v string) *TriggerRecordUpdateOne {
	_u.mutation.SetOutcomeSummary(v)
	return _u
}

// SetNillableOutcomeSummary sets the "outcome_summary" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableOutcomeSummary(v *string) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetOutcomeSummary(*v)
	}
	return _u
}

// ClearOutcomeSummary clears the value of the "outcome_summary" field.
func (_u *TriggerRecordUpdateOne) ClearOutcomeSummary() *TriggerRecordUpdateOne {
	_u.mutation.ClearOutcomeSummary()
	return _u
}

// SetData sets the "data" field.
func (_u *TriggerRecordUpdateOne) SetData(v map[string]interface{}) *TriggerRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *TriggerRecordUpdateOne) ClearData() *TriggerRecordUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *TriggerRecordUpdateOne) SetProcessingTimeMs(v int64) *TriggerRecordUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *TriggerRecordUpdateOne) SetNillableProcessingTimeMs(v *int64) *TriggerRecordUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *TriggerRecordUpdateOne) AddProcessingTimeMs(v int64) *TriggerRecordUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// Mutation returns the TriggerRecordMutation object of the builder.
func (_u *TriggerRecordUpdateOne) Mutation() *TriggerRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriggerRecordUpdate builder.
func (_u *TriggerRecordUpdateOne) Where(ps ...predicate.TriggerRecord) *TriggerRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerRecordUpdateOne) Select(field string, fields ...string) *TriggerRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriggerRecord entity.
func (_u *TriggerRecordUpdateOne) Save(ctx context.Context) (*TriggerRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerRecordUpdateOne) SaveX(ctx context.Context) *TriggerRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := triggerrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriggerRecordUpdateOne) sqlSave(ctx context.Context) (_node *TriggerRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triggerrecord.Table, triggerrecord.Columns, sqlgraph.NewFieldSpec(triggerrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriggerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triggerrecord.FieldID)
		for _, f := range fields {
			if !triggerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triggerrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(triggerrecord.FieldTriggerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduledTime(); ok {
		_spec.SetField(triggerrecord.FieldScheduledTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(triggerrecord.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(triggerrecord.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(triggerrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(triggerrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triggerrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(triggerrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(triggerrecord.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(triggerrecord.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(triggerrecord.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeSummary(); ok {
		_spec.SetField(triggerrecord.FieldOutcomeSummary, field.TypeString, value)
	}
	if _u.mutation.OutcomeSummaryCleared() {
		_spec.ClearField(triggerrecord.FieldOutcomeSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(triggerrecord.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(triggerrecord.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(triggerrecord.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(triggerrecord.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	_node = &TriggerRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triggerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
