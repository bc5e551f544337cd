// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jackeyunjie/growthd/ent/agentstate"
)

// AgentStateCreate is the builder for creating a AgentState entity.
type AgentStateCreate struct {
	config
	mutation *AgentStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *AgentStateCreate) SetName(v string) *AgentStateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentStateCreate) SetStatus(v agentstate.Status) *AgentStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableStatus(v *agentstate.Status) *AgentStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEnergyLevel sets the "energy_level" field.
func (_c *AgentStateCreate) SetEnergyLevel(v float64) *AgentStateCreate {
	_c.mutation.SetEnergyLevel(v)
	return _c
}

// SetNillableEnergyLevel sets the "energy_level" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableEnergyLevel(v *float64) *AgentStateCreate {
	if v != nil {
		_c.SetEnergyLevel(*v)
	}
	return _c
}

// SetStressLevel sets the "stress_level" field.
func (_c *AgentStateCreate) SetStressLevel(v float64) *AgentStateCreate {
	_c.mutation.SetStressLevel(v)
	return _c
}

// SetNillableStressLevel sets the "stress_level" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableStressLevel(v *float64) *AgentStateCreate {
	if v != nil {
		_c.SetStressLevel(*v)
	}
	return _c
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_c *AgentStateCreate) SetTasksCompleted(v int) *AgentStateCreate {
	_c.mutation.SetTasksCompleted(v)
	return _c
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableTasksCompleted(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetTasksCompleted(*v)
	}
	return _c
}

// SetTasksFailed sets the "tasks_failed" field.
func (_c *AgentStateCreate) SetTasksFailed(v int) *AgentStateCreate {
	_c.mutation.SetTasksFailed(v)
	return _c
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableTasksFailed(v *int) *AgentStateCreate {
	if v != nil {
		_c.SetTasksFailed(*v)
	}
	return _c
}

// SetAvgResponseTimeMs sets the "avg_response_time_ms" field.
func (_c *AgentStateCreate) SetAvgResponseTimeMs(v int64) *AgentStateCreate {
	_c.mutation.SetAvgResponseTimeMs(v)
	return _c
}

// SetNillableAvgResponseTimeMs sets the "avg_response_time_ms" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableAvgResponseTimeMs(v *int64) *AgentStateCreate {
	if v != nil {
		_c.SetAvgResponseTimeMs(*v)
	}
	return _c
}

// SetLastExecuted sets the "last_executed" field.
func (_c *AgentStateCreate) SetLastExecuted(v time.Time) *AgentStateCreate {
	_c.mutation.SetLastExecuted(v)
	return _c
}

// SetNillableLastExecuted sets the "last_executed" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableLastExecuted(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetLastExecuted(*v)
	}
	return _c
}

// SetSkillStates sets the "skill_states" field.
func (_c *AgentStateCreate) SetSkillStates(v map[string]interface{}) *AgentStateCreate {
	_c.mutation.SetSkillStates(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentStateCreate) SetCreatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableCreatedAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentStateCreate) SetUpdatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableUpdatedAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStateCreate) SetID(v string) *AgentStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentStateMutation object of the builder.
func (_c *AgentStateCreate) Mutation() *AgentStateMutation {
	return _c.mutation
}

// Save creates the AgentState in the database.
func (_c *AgentStateCreate) Save(ctx context.Context) (*AgentState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStateCreate) SaveX(ctx context.Context) *AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EnergyLevel(); !ok {
		v := agentstate.DefaultEnergyLevel
		_c.mutation.SetEnergyLevel(v)
	}
	if _, ok := _c.mutation.StressLevel(); !ok {
		v := agentstate.DefaultStressLevel
		_c.mutation.SetStressLevel(v)
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		v := agentstate.DefaultTasksCompleted
		_c.mutation.SetTasksCompleted(v)
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		v := agentstate.DefaultTasksFailed
		_c.mutation.SetTasksFailed(v)
	}
	if _, ok := _c.mutation.AvgResponseTimeMs(); !ok {
		v := agentstate.DefaultAvgResponseTimeMs
		_c.mutation.SetAvgResponseTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AgentState.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnergyLevel(); !ok {
		return &ValidationError{Name: "energy_level", err: errors.New(`ent: missing required field "AgentState.energy_level"`)}
	}
	if _, ok := _c.mutation.StressLevel(); !ok {
		return &ValidationError{Name: "stress_level", err: errors.New(`ent: missing required field "AgentState.stress_level"`)}
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		return &ValidationError{Name: "tasks_completed", err: errors.New(`ent: missing required field "AgentState.tasks_completed"`)}
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		return &ValidationError{Name: "tasks_failed", err: errors.New(`ent: missing required field "AgentState.tasks_failed"`)}
	}
	if _, ok := _c.mutation.AvgResponseTimeMs(); !ok {
		return &ValidationError{Name: "avg_response_time_ms", err: errors.New(`ent: missing required field "AgentState.avg_response_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentState.updated_at"`)}
	}
	return nil
}

func (_c *AgentStateCreate) sqlSave(ctx context.Context) (*AgentState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStateCreate) createSpec() (*AgentState, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstate.Table, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentstate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EnergyLevel(); ok {
		_spec.SetField(agentstate.FieldEnergyLevel, field.TypeFloat64, value)
		_node.EnergyLevel = value
	}
	if value, ok := _c.mutation.StressLevel(); ok {
		_spec.SetField(agentstate.FieldStressLevel, field.TypeFloat64, value)
		_node.StressLevel = value
	}
	if value, ok := _c.mutation.TasksCompleted(); ok {
		_spec.SetField(agentstate.FieldTasksCompleted, field.TypeInt, value)
		_node.TasksCompleted = value
	}
	if value, ok := _c.mutation.TasksFailed(); ok {
		_spec.SetField(agentstate.FieldTasksFailed, field.TypeInt, value)
		_node.TasksFailed = value
	}
	if value, ok := _c.mutation.AvgResponseTimeMs(); ok {
		_spec.SetField(agentstate.FieldAvgResponseTimeMs, field.TypeInt64, value)
		_node.AvgResponseTimeMs = value
	}
	if value, ok := _c.mutation.LastExecuted(); ok {
		_spec.SetField(agentstate.FieldLastExecuted, field.TypeTime, value)
		_node.LastExecuted = &value
	}
	if value, ok := _c.mutation.SkillStates(); ok {
		_spec.SetField(agentstate.FieldSkillStates, field.TypeJSON, value)
		_node.SkillStates = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentState.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentStateUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentStateCreate) OnConflict(opts ...sql.ConflictOption) *AgentStateUpsertOne {
	_c.conflict = opts
	return &AgentStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentStateCreate) OnConflictColumns(columns ...string) *AgentStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentStateUpsertOne{
		create: _c,
	}
}

type (
	// AgentStateUpsertOne is the builder for "upsert"-ing
	//  one AgentState node.
	AgentStateUpsertOne struct {
		create *AgentStateCreate
	}

	// AgentStateUpsert is the "OnConflict" setter.
	AgentStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *AgentStateUpsert) SetName(v string) *AgentStateUpsert {
	u.Set(agentstate.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateName() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldName)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentStateUpsert) SetStatus(v agentstate.Status) *AgentStateUpsert {
	u.Set(agentstate.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateStatus() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldStatus)
	return u
}

// SetEnergyLevel sets the "energy_level" field.
func (u *AgentStateUpsert) SetEnergyLevel(v float64) *AgentStateUpsert {
	u.Set(agentstate.FieldEnergyLevel, v)
	return u
}

// UpdateEnergyLevel sets the "energy_level" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateEnergyLevel() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldEnergyLevel)
	return u
}

// AddEnergyLevel adds v to the "energy_level" field.
func (u *AgentStateUpsert) AddEnergyLevel(v float64) *AgentStateUpsert {
	u.Add(agentstate.FieldEnergyLevel, v)
	return u
}

// SetStressLevel sets the "stress_level" field.
func (u *AgentStateUpsert) SetStressLevel(v float64) *AgentStateUpsert {
	u.Set(agentstate.FieldStressLevel, v)
	return u
}

// UpdateStressLevel sets the "stress_level" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateStressLevel() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldStressLevel)
	return u
}

// AddStressLevel adds v to the "stress_level" field.
func (u *AgentStateUpsert) AddStressLevel(v float64) *AgentStateUpsert {
	u.Add(agentstate.FieldStressLevel, v)
	return u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (u *AgentStateUpsert) SetTasksCompleted(v int) *AgentStateUpsert {
	u.Set(agentstate.FieldTasksCompleted, v)
	return u
}

// UpdateTasksCompleted sets the "tasks_completed" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateTasksCompleted() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldTasksCompleted)
	return u
}

// AddTasksCompleted adds v to the "tasks_completed" field.
func (u *AgentStateUpsert) AddTasksCompleted(v int) *AgentStateUpsert {
	u.Add(agentstate.FieldTasksCompleted, v)
	return u
}

// SetTasksFailed sets the "tasks_failed" field.
func (u *AgentStateUpsert) SetTasksFailed(v int) *AgentStateUpsert {
	u.Set(agentstate.FieldTasksFailed, v)
	return u
}

// UpdateTasksFailed sets the "tasks_failed" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateTasksFailed() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldTasksFailed)
	return u
}

// AddTasksFailed adds v to the "tasks_failed" field.
func (u *AgentStateUpsert) AddTasksFailed(v int) *AgentStateUpsert {
	u.Add(agentstate.FieldTasksFailed, v)
	return u
}

// SetAvgResponseTimeMs sets the "avg_response_time_ms" field.
func (u *AgentStateUpsert) SetAvgResponseTimeMs(v int64) *AgentStateUpsert {
	u.Set(agentstate.FieldAvgResponseTimeMs, v)
	return u
}

// UpdateAvgResponseTimeMs sets the "avg_response_time_ms" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateAvgResponseTimeMs() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldAvgResponseTimeMs)
	return u
}

// AddAvgResponseTimeMs adds v to the "avg_response_time_ms" field.
func (u *AgentStateUpsert) AddAvgResponseTimeMs(v int64) *AgentStateUpsert {
	u.Add(agentstate.FieldAvgResponseTimeMs, v)
	return u
}

// SetLastExecuted sets the "last_executed" field.
func (u *AgentStateUpsert) SetLastExecuted(v time.Time) *AgentStateUpsert {
	u.Set(agentstate.FieldLastExecuted, v)
	return u
}

// UpdateLastExecuted sets the "last_executed" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateLastExecuted() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldLastExecuted)
	return u
}

// ClearLastExecuted clears the value of the "last_executed" field.
func (u *AgentStateUpsert) ClearLastExecuted() *AgentStateUpsert {
	u.SetNull(agentstate.FieldLastExecuted)
	return u
}

// SetSkillStates sets the "skill_states" field.
func (u *AgentStateUpsert) SetSkillStates(v map[string]interface{}) *AgentStateUpsert {
	u.Set(agentstate.FieldSkillStates, v)
	return u
}

// UpdateSkillStates sets the "skill_states" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateSkillStates() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldSkillStates)
	return u
}

// ClearSkillStates clears the value of the "skill_states" field.
func (u *AgentStateUpsert) ClearSkillStates() *AgentStateUpsert {
	u.SetNull(agentstate.FieldSkillStates)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentStateUpsert) SetUpdatedAt(v time.Time) *AgentStateUpsert {
	u.Set(agentstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateUpdatedAt() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentStateUpsertOne) UpdateNewValues() *AgentStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentstate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentstate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentStateUpsertOne) Ignore() *AgentStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentStateUpsertOne) DoNothing() *AgentStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentStateCreate.OnConflict
// documentation for more info.
func (u *AgentStateUpsertOne) Update(set func(*AgentStateUpsert)) *AgentStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentStateUpsertOne) SetName(v string) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateName() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateName()
	})
}

// SetStatus sets the "status" field.
func (u *AgentStateUpsertOne) SetStatus(v agentstate.Status) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateStatus() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateStatus()
	})
}

// SetEnergyLevel sets the "energy_level" field.
func (u *AgentStateUpsertOne) SetEnergyLevel(v float64) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetEnergyLevel(v)
	})
}

// AddEnergyLevel adds v to the "energy_level" field.
func (u *AgentStateUpsertOne) AddEnergyLevel(v float64) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddEnergyLevel(v)
	})
}

// UpdateEnergyLevel sets the "energy_level" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateEnergyLevel() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateEnergyLevel()
	})
}

// SetStressLevel sets the "stress_level" field.
func (u *AgentStateUpsertOne) SetStressLevel(v float64) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetStressLevel(v)
	})
}

// AddStressLevel adds v to the "stress_level" field.
func (u *AgentStateUpsertOne) AddStressLevel(v float64) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddStressLevel(v)
	})
}

// UpdateStressLevel sets the "stress_level" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateStressLevel() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateStressLevel()
	})
}

// SetTasksCompleted sets the "tasks_completed" field.
func (u *AgentStateUpsertOne) SetTasksCompleted(v int) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetTasksCompleted(v)
	})
}

// AddTasksCompleted adds v to the "tasks_completed" field.
func (u *AgentStateUpsertOne) AddTasksCompleted(v int) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddTasksCompleted(v)
	})
}

// UpdateTasksCompleted sets the "tasks_completed" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateTasksCompleted() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateTasksCompleted()
	})
}

// SetTasksFailed sets the "tasks_failed" field.
func (u *AgentStateUpsertOne) SetTasksFailed(v int) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetTasksFailed(v)
	})
}

// AddTasksFailed adds v to the "tasks_failed" field.
func (u *AgentStateUpsertOne) AddTasksFailed(v int) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddTasksFailed(v)
	})
}

// UpdateTasksFailed sets the "tasks_failed" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateTasksFailed() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateTasksFailed()
	})
}

// SetAvgResponseTimeMs sets the "avg_response_time_ms" field.
func (u *AgentStateUpsertOne) SetAvgResponseTimeMs(v int64) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetAvgResponseTimeMs(v)
	})
}

// AddAvgResponseTimeMs adds v to the "avg_response_time_ms" field.
func (u *AgentStateUpsertOne) AddAvgResponseTimeMs(v int64) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddAvgResponseTimeMs(v)
	})
}

// UpdateAvgResponseTimeMs sets the "avg_response_time_ms" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateAvgResponseTimeMs() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateAvgResponseTimeMs()
	})
}

// SetLastExecuted sets the "last_executed" field.
func (u *AgentStateUpsertOne) SetLastExecuted(v time.Time) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetLastExecuted(v)
	})
}

// UpdateLastExecuted sets the "last_executed" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateLastExecuted() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateLastExecuted()
	})
}

// ClearLastExecuted clears the value of the "last_executed" field.
func (u *AgentStateUpsertOne) ClearLastExecuted() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.ClearLastExecuted()
	})
}

// SetSkillStates sets the "skill_states" field.
func (u *AgentStateUpsertOne) SetSkillStates(v map[string]interface{}) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetSkillStates(v)
	})
}

// UpdateSkillStates sets the "skill_states" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateSkillStates() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateSkillStates()
	})
}

// ClearSkillStates clears the value of the "skill_states" field.
func (u *AgentStateUpsertOne) ClearSkillStates() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.ClearSkillStates()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentStateUpsertOne) SetUpdatedAt(v time.Time) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateUpdatedAt() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentStateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentStateUpsertOne.ID is not supported by MySQL driver. Use AgentStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentStateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentStateCreateBulk is the builder for creating many AgentState entities in bulk.
type AgentStateCreateBulk struct {
	config
	err      error
	builders []*AgentStateCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentState entities in the database.
func (_c *AgentStateCreateBulk) Save(ctx context.Context) ([]*AgentState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentStateCreateBulk) SaveX(ctx context.Context) []*AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentStateUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentStateUpsertBulk {
	_c.conflict = opts
	return &AgentStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentStateCreateBulk) OnConflictColumns(columns ...string) *AgentStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentStateUpsertBulk{
		create: _c,
	}
}

// AgentStateUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentState nodes.
type AgentStateUpsertBulk struct {
	create *AgentStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentStateUpsertBulk) UpdateNewValues() *AgentStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentstate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentstate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentStateUpsertBulk) Ignore() *AgentStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentStateUpsertBulk) DoNothing() *AgentStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentStateCreateBulk.OnConflict
// documentation for more info.
func (u *AgentStateUpsertBulk) Update(set func(*AgentStateUpsert)) *AgentStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentStateUpsertBulk) SetName(v string) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateName() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateName()
	})
}

// SetStatus sets the "status" field.
func (u *AgentStateUpsertBulk) SetStatus(v agentstate.Status) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateStatus() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateStatus()
	})
}

// SetEnergyLevel sets the "energy_level" field.
func (u *AgentStateUpsertBulk) SetEnergyLevel(v float64) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetEnergyLevel(v)
	})
}

// AddEnergyLevel adds v to the "energy_level" field.
func (u *AgentStateUpsertBulk) AddEnergyLevel(v float64) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddEnergyLevel(v)
	})
}

// UpdateEnergyLevel sets the "energy_level" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateEnergyLevel() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateEnergyLevel()
	})
}

// SetStressLevel sets the "stress_level" field.
func (u *AgentStateUpsertBulk) SetStressLevel(v float64) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetStressLevel(v)
	})
}

// AddStressLevel adds v to the "stress_level" field.
func (u *AgentStateUpsertBulk) AddStressLevel(v float64) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddStressLevel(v)
	})
}

// UpdateStressLevel sets the "stress_level" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateStressLevel() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateStressLevel()
	})
}

// SetTasksCompleted sets the "tasks_completed" field.
func (u *AgentStateUpsertBulk) SetTasksCompleted(v int) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetTasksCompleted(v)
	})
}

// AddTasksCompleted adds v to the "tasks_completed" field.
func (u *AgentStateUpsertBulk) AddTasksCompleted(v int) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddTasksCompleted(v)
	})
}

// UpdateTasksCompleted sets the "tasks_completed" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateTasksCompleted() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateTasksCompleted()
	})
}

// SetTasksFailed sets the "tasks_failed" field.
func (u *AgentStateUpsertBulk) SetTasksFailed(v int) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetTasksFailed(v)
	})
}

// AddTasksFailed adds v to the "tasks_failed" field.
func (u *AgentStateUpsertBulk) AddTasksFailed(v int) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddTasksFailed(v)
	})
}

// UpdateTasksFailed sets the "tasks_failed" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateTasksFailed() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateTasksFailed()
	})
}

// SetAvgResponseTimeMs sets the "avg_response_time_ms" field.
func (u *AgentStateUpsertBulk) SetAvgResponseTimeMs(v int64) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetAvgResponseTimeMs(v)
	})
}

// AddAvgResponseTimeMs adds v to the "avg_response_time_ms" field.
func (u *AgentStateUpsertBulk) AddAvgResponseTimeMs(v int64) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.AddAvgResponseTimeMs(v)
	})
}

// UpdateAvgResponseTimeMs sets the "avg_response_time_ms" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateAvgResponseTimeMs() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateAvgResponseTimeMs()
	})
}

// SetLastExecuted sets the "last_executed" field.
func (u *AgentStateUpsertBulk) SetLastExecuted(v time.Time) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetLastExecuted(v)
	})
}

// UpdateLastExecuted sets the "last_executed" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateLastExecuted() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateLastExecuted()
	})
}

// ClearLastExecuted clears the value of the "last_executed" field.
func (u *AgentStateUpsertBulk) ClearLastExecuted() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.ClearLastExecuted()
	})
}

// SetSkillStates sets the "skill_states" field.
func (u *AgentStateUpsertBulk) SetSkillStates(v map[string]interface{}) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetSkillStates(v)
	})
}

// UpdateSkillStates sets the "skill_states" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateSkillStates() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateSkillStates()
	})
}

// ClearSkillStates clears the value of the "skill_states" field.
func (u *AgentStateUpsertBulk) ClearSkillStates() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.ClearSkillStates()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentStateUpsertBulk) SetUpdatedAt(v time.Time) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateUpdatedAt() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
