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
	"github.com/jackeyunjie/growthd/ent/agentstate"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// AgentStateUpdate is the builder for updating AgentState entities.
type AgentStateUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStateMutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdate) Where(ps ...predicate.AgentState) *AgentStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentStateUpdate) SetName(v string) *AgentStateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableName(v *string) *AgentStateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStateUpdate) SetStatus(v agentstate.Status) *AgentStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableStatus(v *agentstate.Status) *AgentStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEnergyLevel sets the "energy_level" field.
func (_u *AgentStateUpdate) SetEnergyLevel(v float64) *AgentStateUpdate {
	_u.mutation.ResetEnergyLevel()
	_u.mutation.SetEnergyLevel(v)
	return _u
}

// SetNillableEnergyLevel sets the "energy_level" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableEnergyLevel(v *float64) *AgentStateUpdate {
	if v != nil {
		_u.SetEnergyLevel(*v)
	}
	return _u
}

// AddEnergyLevel adds value to the "energy_level" field.
func (_u *AgentStateUpdate) AddEnergyLevel(v float64) *AgentStateUpdate {
	_u.mutation.AddEnergyLevel(v)
	return _u
}

// SetStressLevel sets the "stress_level" field.
func (_u *AgentStateUpdate) SetStressLevel(v float64) *AgentStateUpdate {
	_u.mutation.ResetStressLevel()
	_u.mutation.SetStressLevel(v)
	return _u
}

// SetNillableStressLevel sets the "stress_level" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableStressLevel(v *float64) *AgentStateUpdate {
	if v != nil {
		_u.SetStressLevel(*v)
	}
	return _u
}

// AddStressLevel adds value to the "stress_level" field.
func (_u *AgentStateUpdate) AddStressLevel(v float64) *AgentStateUpdate {
	_u.mutation.AddStressLevel(v)
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *AgentStateUpdate) SetTasksCompleted(v int) *AgentStateUpdate {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableTasksCompleted(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *AgentStateUpdate) AddTasksCompleted(v int) *AgentStateUpdate {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *AgentStateUpdate) SetTasksFailed(v int) *AgentStateUpdate {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableTasksFailed(v *int) *AgentStateUpdate {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *AgentStateUpdate) AddTasksFailed(v int) *AgentStateUpdate {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetAvgResponseTimeMs sets the "avg_response_time_ms" field.
func (_u *AgentStateUpdate) SetAvgResponseTimeMs(v int64) *AgentStateUpdate {
	_u.mutation.ResetAvgResponseTimeMs()
	_u.mutation.SetAvgResponseTimeMs(v)
	return _u
}

// SetNillableAvgResponseTimeMs sets the "avg_response_time_ms" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableAvgResponseTimeMs(v *int64) *AgentStateUpdate {
	if v != nil {
		_u.SetAvgResponseTimeMs(*v)
	}
	return _u
}

// AddAvgResponseTimeMs adds value to the "avg_response_time_ms" field.
func (_u *AgentStateUpdate) AddAvgResponseTimeMs(v int64) *AgentStateUpdate {
	_u.mutation.AddAvgResponseTimeMs(v)
	return _u
}

// SetLastExecuted sets the "last_executed" field.
func (_u *AgentStateUpdate) SetLastExecuted(v time.Time) *AgentStateUpdate {
	_u.mutation.SetLastExecuted(v)
	return _u
}

// SetNillableLastExecuted sets the "last_executed" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableLastExecuted(v *time.Time) *AgentStateUpdate {
	if v != nil {
		_u.SetLastExecuted(*v)
	}
	return _u
}

// ClearLastExecuted clears the value of the "last_executed" field.
func (_u *AgentStateUpdate) ClearLastExecuted() *AgentStateUpdate {
	_u.mutation.ClearLastExecuted()
	return _u
}

// SetSkillStates sets the "skill_states" field.
func (_u *AgentStateUpdate) SetSkillStates(v map[string]interface{}) *AgentStateUpdate {
	_u.mutation.SetSkillStates(v)
	return _u
}

// ClearSkillStates clears the value of the "skill_states" field.
func (_u *AgentStateUpdate) ClearSkillStates() *AgentStateUpdate {
	_u.mutation.ClearSkillStates()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentStateUpdate) SetUpdatedAt(v time.Time) *AgentStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdate) Mutation() *AgentStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentstate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EnergyLevel(); ok {
		_spec.SetField(agentstate.FieldEnergyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnergyLevel(); ok {
		_spec.AddField(agentstate.FieldEnergyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StressLevel(); ok {
		_spec.SetField(agentstate.FieldStressLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStressLevel(); ok {
		_spec.AddField(agentstate.FieldStressLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(agentstate.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(agentstate.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(agentstate.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(agentstate.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseTimeMs(); ok {
		_spec.SetField(agentstate.FieldAvgResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseTimeMs(); ok {
		_spec.AddField(agentstate.FieldAvgResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastExecuted(); ok {
		_spec.SetField(agentstate.FieldLastExecuted, field.TypeTime, value)
	}
	if _u.mutation.LastExecutedCleared() {
		_spec.ClearField(agentstate.FieldLastExecuted, field.TypeTime)
	}
	if value, ok := _u.mutation.SkillStates(); ok {
		_spec.SetField(agentstate.FieldSkillStates, field.TypeJSON, value)
	}
	if _u.mutation.SkillStatesCleared() {
		_spec.ClearField(agentstate.FieldSkillStates, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStateUpdateOne is the builder for updating a single AgentState entity.
type AgentStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStateMutation
}

// SetName sets the "name" field.
func (_u *AgentStateUpdateOne) SetName(v string) *AgentStateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableName(v *string) *AgentStateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStateUpdateOne) SetStatus(v agentstate.Status) *AgentStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableStatus(v *agentstate.Status) *AgentStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEnergyLevel sets the "energy_level" field.
func (_u *AgentStateUpdateOne) SetEnergyLevel(v float64) *AgentStateUpdateOne {
	_u.mutation.ResetEnergyLevel()
	_u.mutation.SetEnergyLevel(v)
	return _u
}

// SetNillableEnergyLevel sets the "energy_level" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableEnergyLevel(v *float64) *AgentStateUpdateOne {
	if v != nil {
		_u.SetEnergyLevel(*v)
	}
	return _u
}

// AddEnergyLevel adds value to the "energy_level" field.
func (_u *AgentStateUpdateOne) AddEnergyLevel(v float64) *AgentStateUpdateOne {
	_u.mutation.AddEnergyLevel(v)
	return _u
}

// SetStressLevel sets the "stress_level" field.
func (_u *AgentStateUpdateOne) SetStressLevel(v float64) *AgentStateUpdateOne {
	_u.mutation.ResetStressLevel()
	_u.mutation.SetStressLevel(v)
	return _u
}

// SetNillableStressLevel sets the "stress_level" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableStressLevel(v *float64) *AgentStateUpdateOne {
	if v != nil {
		_u.SetStressLevel(*v)
	}
	return _u
}

// AddStressLevel adds value to the "stress_level" field.
func (_u *AgentStateUpdateOne) AddStressLevel(v float64) *AgentStateUpdateOne {
	_u.mutation.AddStressLevel(v)
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *AgentStateUpdateOne) SetTasksCompleted(v int) *AgentStateUpdateOne {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableTasksCompleted(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *AgentStateUpdateOne) AddTasksCompleted(v int) *AgentStateUpdateOne {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *AgentStateUpdateOne) SetTasksFailed(v int) *AgentStateUpdateOne {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableTasksFailed(v *int) *AgentStateUpdateOne {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *AgentStateUpdateOne) AddTasksFailed(v int) *AgentStateUpdateOne {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetAvgResponseTimeMs sets the "avg_response_time_ms" field.
func (_u *AgentStateUpdateOne) SetAvgResponseTimeMs(v int64) *AgentStateUpdateOne {
	_u.mutation.ResetAvgResponseTimeMs()
	_u.mutation.SetAvgResponseTimeMs(v)
	return _u
}

// SetNillableAvgResponseTimeMs sets the "avg_response_time_ms" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableAvgResponseTimeMs(v *int64) *AgentStateUpdateOne {
	if v != nil {
		_u.SetAvgResponseTimeMs(*v)
	}
	return _u
}

// AddAvgResponseTimeMs adds value to the "avg_response_time_ms" field.
func (_u *AgentStateUpdateOne) AddAvgResponseTimeMs(v int64) *AgentStateUpdateOne {
	_u.mutation.AddAvgResponseTimeMs(v)
	return _u
}

// SetLastExecuted sets the "last_executed" field.
func (_u *AgentStateUpdateOne) SetLastExecuted(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetLastExecuted(v)
	return _u
}

// SetNillableLastExecuted sets the "last_executed" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableLastExecuted(v *time.Time) *AgentStateUpdateOne {
	if v != nil {
		_u.SetLastExecuted(*v)
	}
	return _u
}

// ClearLastExecuted clears the value of the "last_executed" field.
func (_u *AgentStateUpdateOne) ClearLastExecuted() *AgentStateUpdateOne {
	_u.mutation.ClearLastExecuted()
	return _u
}

// SetSkillStates sets the "skill_states" field.
func (_u *AgentStateUpdateOne) SetSkillStates(v map[string]interface{}) *AgentStateUpdateOne {
	_u.mutation.SetSkillStates(v)
	return _u
}

// ClearSkillStates clears the value of the "skill_states" field.
func (_u *AgentStateUpdateOne) ClearSkillStates() *AgentStateUpdateOne {
	_u.mutation.ClearSkillStates()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentStateUpdateOne) SetUpdatedAt(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdateOne) Mutation() *AgentStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdateOne) Where(ps ...predicate.AgentState) *AgentStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStateUpdateOne) Select(field string, fields ...string) *AgentStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentState entity.
func (_u *AgentStateUpdateOne) Save(ctx context.Context) (*AgentState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdateOne) SaveX(ctx context.Context) *AgentState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentStateUpdateOne) sqlSave(ctx context.Context) (_node *AgentState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstate.FieldID)
		for _, f := range fields {
			if !agentstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstate.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentstate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EnergyLevel(); ok {
		_spec.SetField(agentstate.FieldEnergyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEnergyLevel(); ok {
		_spec.AddField(agentstate.FieldEnergyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StressLevel(); ok {
		_spec.SetField(agentstate.FieldStressLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStressLevel(); ok {
		_spec.AddField(agentstate.FieldStressLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(agentstate.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(agentstate.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(agentstate.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(agentstate.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgResponseTimeMs(); ok {
		_spec.SetField(agentstate.FieldAvgResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgResponseTimeMs(); ok {
		_spec.AddField(agentstate.FieldAvgResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastExecuted(); ok {
		_spec.SetField(agentstate.FieldLastExecuted, field.TypeTime, value)
	}
	if _u.mutation.LastExecutedCleared() {
		_spec.ClearField(agentstate.FieldLastExecuted, field.TypeTime)
	}
	if value, ok := _u.mutation.SkillStates(); ok {
		_spec.SetField(agentstate.FieldSkillStates, field.TypeJSON, value)
	}
	if _u.mutation.SkillStatesCleared() {
		_spec.ClearField(agentstate.FieldSkillStates, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
