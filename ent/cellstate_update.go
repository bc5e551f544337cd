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
	"github.com/jackeyunjie/growthd/ent/cellstate"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// CellStateUpdate is the builder for updating CellState entities.
type CellStateUpdate struct {
	config
	hooks    []Hook
	mutation *CellStateMutation
}

// Where appends a list predicates to the CellStateUpdate builder.
func (_u *CellStateUpdate) Where(ps ...predicate.CellState) *CellStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *CellStateUpdate) SetState(v cellstate.State) *CellStateUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableState(v *cellstate.State) *CellStateUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CellStateUpdate) SetUpdatedAt(v time.Time) *CellStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastRun sets the "last_run" field.
func (_u *CellStateUpdate) SetLastRun(v time.Time) *CellStateUpdate {
	_u.mutation.SetLastRun(v)
	return _u
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableLastRun(v *time.Time) *CellStateUpdate {
	if v != nil {
		_u.SetLastRun(*v)
	}
	return _u
}

// ClearLastRun clears the value of the "last_run" field.
func (_u *CellStateUpdate) ClearLastRun() *CellStateUpdate {
	_u.mutation.ClearLastRun()
	return _u
}

// SetNextRun sets the "next_run" field.
func (_u *CellStateUpdate) SetNextRun(v time.Time) *CellStateUpdate {
	_u.mutation.SetNextRun(v)
	return _u
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableNextRun(v *time.Time) *CellStateUpdate {
	if v != nil {
		_u.SetNextRun(*v)
	}
	return _u
}

// ClearNextRun clears the value of the "next_run" field.
func (_u *CellStateUpdate) ClearNextRun() *CellStateUpdate {
	_u.mutation.ClearNextRun()
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *CellStateUpdate) SetRunCount(v int) *CellStateUpdate {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableRunCount(v *int) *CellStateUpdate {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *CellStateUpdate) AddRunCount(v int) *CellStateUpdate {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *CellStateUpdate) SetSuccessCount(v int) *CellStateUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableSuccessCount(v *int) *CellStateUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *CellStateUpdate) AddSuccessCount(v int) *CellStateUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailCount sets the "fail_count" field.
func (_u *CellStateUpdate) SetFailCount(v int) *CellStateUpdate {
	_u.mutation.ResetFailCount()
	_u.mutation.SetFailCount(v)
	return _u
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableFailCount(v *int) *CellStateUpdate {
	if v != nil {
		_u.SetFailCount(*v)
	}
	return _u
}

// AddFailCount adds value to the "fail_count" field.
func (_u *CellStateUpdate) AddFailCount(v int) *CellStateUpdate {
	_u.mutation.AddFailCount(v)
	return _u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_u *CellStateUpdate) SetAvgDurationMs(v int64) *CellStateUpdate {
	_u.mutation.ResetAvgDurationMs()
	_u.mutation.SetAvgDurationMs(v)
	return _u
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableAvgDurationMs(v *int64) *CellStateUpdate {
	if v != nil {
		_u.SetAvgDurationMs(*v)
	}
	return _u
}

// AddAvgDurationMs adds value to the "avg_duration_ms" field.
func (_u *CellStateUpdate) AddAvgDurationMs(v int64) *CellStateUpdate {
	_u.mutation.AddAvgDurationMs(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *CellStateUpdate) SetLastError(v string) *CellStateUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableLastError(v *string) *CellStateUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *CellStateUpdate) ClearLastError() *CellStateUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetLastErrorAt sets the "last_error_at" field.
func (_u *CellStateUpdate) SetLastErrorAt(v time.Time) *CellStateUpdate {
	_u.mutation.SetLastErrorAt(v)
	return _u
}

// SetNillableLastErrorAt sets the "last_error_at" field if the given value is not nil.
func (_u *CellStateUpdate) SetNillableLastErrorAt(v *time.Time) *CellStateUpdate {
	if v != nil {
		_u.SetLastErrorAt(*v)
	}
	return _u
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (_u *CellStateUpdate) ClearLastErrorAt() *CellStateUpdate {
	_u.mutation.ClearLastErrorAt()
	return _u
}

// SetConfig sets the "config" field.
func (_u *CellStateUpdate) SetConfig(v map[string]interface{}) *CellStateUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *CellStateUpdate) ClearConfig() *CellStateUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CellStateUpdate) SetMetadata(v map[string]interface{}) *CellStateUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CellStateUpdate) ClearMetadata() *CellStateUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the CellStateMutation object of the builder.
func (_u *CellStateUpdate) Mutation() *CellStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CellStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CellStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CellStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cellstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellStateUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := cellstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CellState.state": %w`, err)}
		}
	}
	return nil
}

func (_u *CellStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cellstate.Table, cellstate.Columns, sqlgraph.NewFieldSpec(cellstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(cellstate.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cellstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastRun(); ok {
		_spec.SetField(cellstate.FieldLastRun, field.TypeTime, value)
	}
	if _u.mutation.LastRunCleared() {
		_spec.ClearField(cellstate.FieldLastRun, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRun(); ok {
		_spec.SetField(cellstate.FieldNextRun, field.TypeTime, value)
	}
	if _u.mutation.NextRunCleared() {
		_spec.ClearField(cellstate.FieldNextRun, field.TypeTime)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(cellstate.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(cellstate.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(cellstate.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(cellstate.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailCount(); ok {
		_spec.SetField(cellstate.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailCount(); ok {
		_spec.AddField(cellstate.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgDurationMs(); ok {
		_spec.SetField(cellstate.FieldAvgDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationMs(); ok {
		_spec.AddField(cellstate.FieldAvgDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(cellstate.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(cellstate.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorAt(); ok {
		_spec.SetField(cellstate.FieldLastErrorAt, field.TypeTime, value)
	}
	if _u.mutation.LastErrorAtCleared() {
		_spec.ClearField(cellstate.FieldLastErrorAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(cellstate.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(cellstate.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(cellstate.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(cellstate.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cellstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CellStateUpdateOne is the builder for updating a single CellState entity.
type CellStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CellStateMutation
}

// SetState sets the "state" field.
func (_u *CellStateUpdateOne) SetState(v cellstate.State) *CellStateUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableState(v *cellstate.State) *CellStateUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CellStateUpdateOne) SetUpdatedAt(v time.Time) *CellStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastRun sets the "last_run" field.
func (_u *CellStateUpdateOne) SetLastRun(v time.Time) *CellStateUpdateOne {
	_u.mutation.SetLastRun(v)
	return _u
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableLastRun(v *time.Time) *CellStateUpdateOne {
	if v != nil {
		_u.SetLastRun(*v)
	}
	return _u
}

// ClearLastRun clears the value of the "last_run" field.
func (_u *CellStateUpdateOne) ClearLastRun() *CellStateUpdateOne {
	_u.mutation.ClearLastRun()
	return _u
}

// SetNextRun sets the "next_run" field.
func (_u *CellStateUpdateOne) SetNextRun(v time.Time) *CellStateUpdateOne {
	_u.mutation.SetNextRun(v)
	return _u
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableNextRun(v *time.Time) *CellStateUpdateOne {
	if v != nil {
		_u.SetNextRun(*v)
	}
	return _u
}

// ClearNextRun clears the value of the "next_run" field.
func (_u *CellStateUpdateOne) ClearNextRun() *CellStateUpdateOne {
	_u.mutation.ClearNextRun()
	return _u
}

// SetRunCount sets the "run_count" field.
func (_u *CellStateUpdateOne) SetRunCount(v int) *CellStateUpdateOne {
	_u.mutation.ResetRunCount()
	_u.mutation.SetRunCount(v)
	return _u
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableRunCount(v *int) *CellStateUpdateOne {
	if v != nil {
		_u.SetRunCount(*v)
	}
	return _u
}

// AddRunCount adds value to the "run_count" field.
func (_u *CellStateUpdateOne) AddRunCount(v int) *CellStateUpdateOne {
	_u.mutation.AddRunCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *CellStateUpdateOne) SetSuccessCount(v int) *CellStateUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableSuccessCount(v *int) *CellStateUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *CellStateUpdateOne) AddSuccessCount(v int) *CellStateUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailCount sets the "fail_count" field.
func (_u *CellStateUpdateOne) SetFailCount(v int) *CellStateUpdateOne {
	_u.mutation.ResetFailCount()
	_u.mutation.SetFailCount(v)
	return _u
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableFailCount(v *int) *CellStateUpdateOne {
	if v != nil {
		_u.SetFailCount(*v)
	}
	return _u
}

// AddFailCount adds value to the "fail_count" field.
func (_u *CellStateUpdateOne) AddFailCount(v int) *CellStateUpdateOne {
	_u.mutation.AddFailCount(v)
	return _u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_u *CellStateUpdateOne) SetAvgDurationMs(v int64) *CellStateUpdateOne {
	_u.mutation.ResetAvgDurationMs()
	_u.mutation.SetAvgDurationMs(v)
	return _u
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableAvgDurationMs(v *int64) *CellStateUpdateOne {
	if v != nil {
		_u.SetAvgDurationMs(*v)
	}
	return _u
}

// AddAvgDurationMs adds value to the "avg_duration_ms" field.
func (_u *CellStateUpdateOne) AddAvgDurationMs(v int64) *CellStateUpdateOne {
	_u.mutation.AddAvgDurationMs(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *CellStateUpdateOne) SetLastError(v string) *CellStateUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableLastError(v *string) *CellStateUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *CellStateUpdateOne) ClearLastError() *CellStateUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetLastErrorAt sets the "last_error_at" field.
func (_u *CellStateUpdateOne) SetLastErrorAt(v time.Time) *CellStateUpdateOne {
	_u.mutation.SetLastErrorAt(v)
	return _u
}

// SetNillableLastErrorAt sets the "last_error_at" field if the given value is not nil.
func (_u *CellStateUpdateOne) SetNillableLastErrorAt(v *time.Time) *CellStateUpdateOne {
	if v != nil {
		_u.SetLastErrorAt(*v)
	}
	return _u
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (_u *CellStateUpdateOne) ClearLastErrorAt() *CellStateUpdateOne {
	_u.mutation.ClearLastErrorAt()
	return _u
}

// SetConfig sets the "config" field.
func (_u *CellStateUpdateOne) SetConfig(v map[string]interface{}) *CellStateUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *CellStateUpdateOne) ClearConfig() *CellStateUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CellStateUpdateOne) SetMetadata(v map[string]interface{}) *CellStateUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CellStateUpdateOne) ClearMetadata() *CellStateUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the CellStateMutation object of the builder.
func (_u *CellStateUpdateOne) Mutation() *CellStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CellStateUpdate builder.
func (_u *CellStateUpdateOne) Where(ps ...predicate.CellState) *CellStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CellStateUpdateOne) Select(field string, fields ...string) *CellStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CellState entity.
func (_u *CellStateUpdateOne) Save(ctx context.Context) (*CellState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CellStateUpdateOne) SaveX(ctx context.Context) *CellState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CellStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CellStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CellStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cellstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CellStateUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := cellstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CellState.state": %w`, err)}
		}
	}
	return nil
}

func (_u *CellStateUpdateOne) sqlSave(ctx context.Context) (_node *CellState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cellstate.Table, cellstate.Columns, sqlgraph.NewFieldSpec(cellstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CellState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cellstate.FieldID)
		for _, f := range fields {
			if !cellstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cellstate.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(cellstate.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cellstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastRun(); ok {
		_spec.SetField(cellstate.FieldLastRun, field.TypeTime, value)
	}
	if _u.mutation.LastRunCleared() {
		_spec.ClearField(cellstate.FieldLastRun, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRun(); ok {
		_spec.SetField(cellstate.FieldNextRun, field.TypeTime, value)
	}
	if _u.mutation.NextRunCleared() {
		_spec.ClearField(cellstate.FieldNextRun, field.TypeTime)
	}
	if value, ok := _u.mutation.RunCount(); ok {
		_spec.SetField(cellstate.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRunCount(); ok {
		_spec.AddField(cellstate.FieldRunCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(cellstate.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(cellstate.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailCount(); ok {
		_spec.SetField(cellstate.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailCount(); ok {
		_spec.AddField(cellstate.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgDurationMs(); ok {
		_spec.SetField(cellstate.FieldAvgDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationMs(); ok {
		_spec.AddField(cellstate.FieldAvgDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(cellstate.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(cellstate.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorAt(); ok {
		_spec.SetField(cellstate.FieldLastErrorAt, field.TypeTime, value)
	}
	if _u.mutation.LastErrorAtCleared() {
		_spec.ClearField(cellstate.FieldLastErrorAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(cellstate.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(cellstate.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(cellstate.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(cellstate.FieldMetadata, field.TypeJSON)
	}
	_node = &CellState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cellstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
