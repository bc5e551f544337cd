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
	"github.com/jackeyunjie/growthd/ent/cellstate"
)

// CellStateCreate is the builder for creating a CellState entity.
type CellStateCreate struct {
	config
	mutation *CellStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetState sets the "state" field.
func (_c *CellStateCreate) SetState(v cellstate.State) *CellStateCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableState(v *cellstate.State) *CellStateCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CellStateCreate) SetCreatedAt(v time.Time) *CellStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableCreatedAt(v *time.Time) *CellStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CellStateCreate) SetUpdatedAt(v time.Time) *CellStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableUpdatedAt(v *time.Time) *CellStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLastRun sets the "last_run" field.
func (_c *CellStateCreate) SetLastRun(v time.Time) *CellStateCreate {
	_c.mutation.SetLastRun(v)
	return _c
}

// SetNillableLastRun sets the "last_run" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableLastRun(v *time.Time) *CellStateCreate {
	if v != nil {
		_c.SetLastRun(*v)
	}
	return _c
}

// SetNextRun sets the "next_run" field.
func (_c *CellStateCreate) SetNextRun(v time.Time) *CellStateCreate {
	_c.mutation.SetNextRun(v)
	return _c
}

// SetNillableNextRun sets the "next_run" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableNextRun(v *time.Time) *CellStateCreate {
	if v != nil {
		_c.SetNextRun(*v)
	}
	return _c
}

// SetRunCount sets the "run_count" field.
func (_c *CellStateCreate) SetRunCount(v int) *CellStateCreate {
	_c.mutation.SetRunCount(v)
	return _c
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableRunCount(v *int) *CellStateCreate {
	if v != nil {
		_c.SetRunCount(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *CellStateCreate) SetSuccessCount(v int) *CellStateCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableSuccessCount(v *int) *CellStateCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFailCount sets the "fail_count" field.
func (_c *CellStateCreate) SetFailCount(v int) *CellStateCreate {
	_c.mutation.SetFailCount(v)
	return _c
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableFailCount(v *int) *CellStateCreate {
	if v != nil {
		_c.SetFailCount(*v)
	}
	return _c
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_c *CellStateCreate) SetAvgDurationMs(v int64) *CellStateCreate {
	_c.mutation.SetAvgDurationMs(v)
	return _c
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableAvgDurationMs(v *int64) *CellStateCreate {
	if v != nil {
		_c.SetAvgDurationMs(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *CellStateCreate) SetLastError(v string) *CellStateCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableLastError(v *string) *CellStateCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetLastErrorAt sets the "last_error_at" field.
func (_c *CellStateCreate) SetLastErrorAt(v time.Time) *CellStateCreate {
	_c.mutation.SetLastErrorAt(v)
	return _c
}

// SetNillableLastErrorAt sets the "last_error_at" field if the given value is not nil.
func (_c *CellStateCreate) SetNillableLastErrorAt(v *time.Time) *CellStateCreate {
	if v != nil {
		_c.SetLastErrorAt(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *CellStateCreate) SetConfig(v map[string]interface{}) *CellStateCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CellStateCreate) SetMetadata(v map[string]interface{}) *CellStateCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CellStateCreate) SetID(v string) *CellStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CellStateMutation object of the builder.
func (_c *CellStateCreate) Mutation() *CellStateMutation {
	return _c.mutation
}

// Save creates the CellState in the database.
func (_c *CellStateCreate) Save(ctx context.Context) (*CellState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CellStateCreate) SaveX(ctx context.Context) *CellState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CellStateCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := cellstate.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cellstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cellstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		v := cellstate.DefaultRunCount
		_c.mutation.SetRunCount(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := cellstate.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FailCount(); !ok {
		v := cellstate.DefaultFailCount
		_c.mutation.SetFailCount(v)
	}
	if _, ok := _c.mutation.AvgDurationMs(); !ok {
		v := cellstate.DefaultAvgDurationMs
		_c.mutation.SetAvgDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CellStateCreate) check() error {
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CellState.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := cellstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CellState.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CellState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CellState.updated_at"`)}
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		return &ValidationError{Name: "run_count", err: errors.New(`ent: missing required field "CellState.run_count"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "CellState.success_count"`)}
	}
	if _, ok := _c.mutation.FailCount(); !ok {
		return &ValidationError{Name: "fail_count", err: errors.New(`ent: missing required field "CellState.fail_count"`)}
	}
	if _, ok := _c.mutation.AvgDurationMs(); !ok {
		return &ValidationError{Name: "avg_duration_ms", err: errors.New(`ent: missing required field "CellState.avg_duration_ms"`)}
	}
	return nil
}

func (_c *CellStateCreate) sqlSave(ctx context.Context) (*CellState, error) {
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
			return nil, fmt.Errorf("unexpected CellState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CellStateCreate) createSpec() (*CellState, *sqlgraph.CreateSpec) {
	var (
		_node = &CellState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cellstate.Table, sqlgraph.NewFieldSpec(cellstate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(cellstate.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cellstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cellstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LastRun(); ok {
		_spec.SetField(cellstate.FieldLastRun, field.TypeTime, value)
		_node.LastRun = &value
	}
	if value, ok := _c.mutation.NextRun(); ok {
		_spec.SetField(cellstate.FieldNextRun, field.TypeTime, value)
		_node.NextRun = &value
	}
	if value, ok := _c.mutation.RunCount(); ok {
		_spec.SetField(cellstate.FieldRunCount, field.TypeInt, value)
		_node.RunCount = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(cellstate.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FailCount(); ok {
		_spec.SetField(cellstate.FieldFailCount, field.TypeInt, value)
		_node.FailCount = value
	}
	if value, ok := _c.mutation.AvgDurationMs(); ok {
		_spec.SetField(cellstate.FieldAvgDurationMs, field.TypeInt64, value)
		_node.AvgDurationMs = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(cellstate.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.LastErrorAt(); ok {
		_spec.SetField(cellstate.FieldLastErrorAt, field.TypeTime, value)
		_node.LastErrorAt = &value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(cellstate.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(cellstate.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CellState.Create().
//		SetState(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CellStateUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *CellStateCreate) OnConflict(opts ...sql.ConflictOption) *CellStateUpsertOne {
	_c.conflict = opts
	return &CellStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CellState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CellStateCreate) OnConflictColumns(columns ...string) *CellStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CellStateUpsertOne{
		create: _c,
	}
}

type (
	// CellStateUpsertOne is the builder for "upsert"-ing
	//  one CellState node.
	CellStateUpsertOne struct {
		create *CellStateCreate
	}

	// CellStateUpsert is the "OnConflict" setter.
	CellStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *CellStateUpsert) SetState(v cellstate.State) *CellStateUpsert {
	u.Set(cellstate.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateState() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldState)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellStateUpsert) SetUpdatedAt(v time.Time) *CellStateUpsert {
	u.Set(cellstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateUpdatedAt() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldUpdatedAt)
	return u
}

// SetLastRun sets the "last_run" field.
func (u *CellStateUpsert) SetLastRun(v time.Time) *CellStateUpsert {
	u.Set(cellstate.FieldLastRun, v)
	return u
}

// UpdateLastRun sets the "last_run" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateLastRun() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldLastRun)
	return u
}

// ClearLastRun clears the value of the "last_run" field.
func (u *CellStateUpsert) ClearLastRun() *CellStateUpsert {
	u.SetNull(cellstate.FieldLastRun)
	return u
}

// SetNextRun sets the "next_run" field.
func (u *CellStateUpsert) SetNextRun(v time.Time) *CellStateUpsert {
	u.Set(cellstate.FieldNextRun, v)
	return u
}

// UpdateNextRun sets the "next_run" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateNextRun() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldNextRun)
	return u
}

// ClearNextRun clears the value of the "next_run" field.
func (u *CellStateUpsert) ClearNextRun() *CellStateUpsert {
	u.SetNull(cellstate.FieldNextRun)
	return u
}

// SetRunCount sets the "run_count" field.
func (u *CellStateUpsert) SetRunCount(v int) *CellStateUpsert {
	u.Set(cellstate.FieldRunCount, v)
	return u
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateRunCount() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldRunCount)
	return u
}

// AddRunCount adds v to the "run_count" field.
func (u *CellStateUpsert) AddRunCount(v int) *CellStateUpsert {
	u.Add(cellstate.FieldRunCount, v)
	return u
}

// SetSuccessCount sets the "success_count" field.
func (u *CellStateUpsert) SetSuccessCount(v int) *CellStateUpsert {
	u.Set(cellstate.FieldSuccessCount, v)
	return u
}

// UpdateSuccessCount sets the "success_count" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateSuccessCount() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldSuccessCount)
	return u
}

// AddSuccessCount adds v to the "success_count" field.
func (u *CellStateUpsert) AddSuccessCount(v int) *CellStateUpsert {
	u.Add(cellstate.FieldSuccessCount, v)
	return u
}

// SetFailCount sets the "fail_count" field.
func (u *CellStateUpsert) SetFailCount(v int) *CellStateUpsert {
	u.Set(cellstate.FieldFailCount, v)
	return u
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateFailCount() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldFailCount)
	return u
}

// AddFailCount adds v to the "fail_count" field.
func (u *CellStateUpsert) AddFailCount(v int) *CellStateUpsert {
	u.Add(cellstate.FieldFailCount, v)
	return u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *CellStateUpsert) SetAvgDurationMs(v int64) *CellStateUpsert {
	u.Set(cellstate.FieldAvgDurationMs, v)
	return u
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateAvgDurationMs() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldAvgDurationMs)
	return u
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *CellStateUpsert) AddAvgDurationMs(v int64) *CellStateUpsert {
	u.Add(cellstate.FieldAvgDurationMs, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *CellStateUpsert) SetLastError(v string) *CellStateUpsert {
	u.Set(cellstate.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateLastError() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *CellStateUpsert) ClearLastError() *CellStateUpsert {
	u.SetNull(cellstate.FieldLastError)
	return u
}

// SetLastErrorAt sets the "last_error_at" field.
func (u *CellStateUpsert) SetLastErrorAt(v time.Time) *CellStateUpsert {
	u.Set(cellstate.FieldLastErrorAt, v)
	return u
}

// UpdateLastErrorAt sets the "last_error_at" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateLastErrorAt() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldLastErrorAt)
	return u
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (u *CellStateUpsert) ClearLastErrorAt() *CellStateUpsert {
	u.SetNull(cellstate.FieldLastErrorAt)
	return u
}

// SetConfig sets the "config" field.
func (u *CellStateUpsert) SetConfig(v map[string]interface{}) *CellStateUpsert {
	u.Set(cellstate.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateConfig() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *CellStateUpsert) ClearConfig() *CellStateUpsert {
	u.SetNull(cellstate.FieldConfig)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *CellStateUpsert) SetMetadata(v map[string]interface{}) *CellStateUpsert {
	u.Set(cellstate.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CellStateUpsert) UpdateMetadata() *CellStateUpsert {
	u.SetExcluded(cellstate.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CellStateUpsert) ClearMetadata() *CellStateUpsert {
	u.SetNull(cellstate.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CellState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cellstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CellStateUpsertOne) UpdateNewValues() *CellStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cellstate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(cellstate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CellState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CellStateUpsertOne) Ignore() *CellStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CellStateUpsertOne) DoNothing() *CellStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CellStateCreate.OnConflict
// documentation for more info.
func (u *CellStateUpsertOne) Update(set func(*CellStateUpsert)) *CellStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CellStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *CellStateUpsertOne) SetState(v cellstate.State) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateState() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateState()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellStateUpsertOne) SetUpdatedAt(v time.Time) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateUpdatedAt() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLastRun sets the "last_run" field.
func (u *CellStateUpsertOne) SetLastRun(v time.Time) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetLastRun(v)
	})
}

// UpdateLastRun sets the "last_run" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateLastRun() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateLastRun()
	})
}

// ClearLastRun clears the value of the "last_run" field.
func (u *CellStateUpsertOne) ClearLastRun() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearLastRun()
	})
}

// SetNextRun sets the "next_run" field.
func (u *CellStateUpsertOne) SetNextRun(v time.Time) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetNextRun(v)
	})
}

// UpdateNextRun sets the "next_run" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateNextRun() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateNextRun()
	})
}

// ClearNextRun clears the value of the "next_run" field.
func (u *CellStateUpsertOne) ClearNextRun() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearNextRun()
	})
}

// SetRunCount sets the "run_count" field.
func (u *CellStateUpsertOne) SetRunCount(v int) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetRunCount(v)
	})
}

// AddRunCount adds v to the "run_count" field.
func (u *CellStateUpsertOne) AddRunCount(v int) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.AddRunCount(v)
	})
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateRunCount() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateRunCount()
	})
}

// SetSuccessCount sets the "success_count" field.
func (u *CellStateUpsertOne) SetSuccessCount(v int) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetSuccessCount(v)
	})
}

// AddSuccessCount adds v to the "success_count" field.
func (u *CellStateUpsertOne) AddSuccessCount(v int) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.AddSuccessCount(v)
	})
}

// UpdateSuccessCount sets the "success_count" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateSuccessCount() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateSuccessCount()
	})
}

// SetFailCount sets the "fail_count" field.
func (u *CellStateUpsertOne) SetFailCount(v int) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetFailCount(v)
	})
}

// AddFailCount adds v to the "fail_count" field.
func (u *CellStateUpsertOne) AddFailCount(v int) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.AddFailCount(v)
	})
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateFailCount() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateFailCount()
	})
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *CellStateUpsertOne) SetAvgDurationMs(v int64) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetAvgDurationMs(v)
	})
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *CellStateUpsertOne) AddAvgDurationMs(v int64) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.AddAvgDurationMs(v)
	})
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateAvgDurationMs() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateAvgDurationMs()
	})
}

// SetLastError sets the "last_error" field.
func (u *CellStateUpsertOne) SetLastError(v string) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateLastError() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *CellStateUpsertOne) ClearLastError() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearLastError()
	})
}

// SetLastErrorAt sets the "last_error_at" field.
func (u *CellStateUpsertOne) SetLastErrorAt(v time.Time) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetLastErrorAt(v)
	})
}

// UpdateLastErrorAt sets the "last_error_at" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateLastErrorAt() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateLastErrorAt()
	})
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (u *CellStateUpsertOne) ClearLastErrorAt() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearLastErrorAt()
	})
}

// SetConfig sets the "config" field.
func (u *CellStateUpsertOne) SetConfig(v map[string]interface{}) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateConfig() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *CellStateUpsertOne) ClearConfig() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearConfig()
	})
}

// SetMetadata sets the "metadata" field.
func (u *CellStateUpsertOne) SetMetadata(v map[string]interface{}) *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CellStateUpsertOne) UpdateMetadata() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CellStateUpsertOne) ClearMetadata() *CellStateUpsertOne {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *CellStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CellStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CellStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CellStateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CellStateUpsertOne.ID is not supported by MySQL driver. Use CellStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CellStateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CellStateCreateBulk is the builder for creating many CellState entities in bulk.
type CellStateCreateBulk struct {
	config
	err      error
	builders []*CellStateCreate
	conflict []sql.ConflictOption
}

// Save creates the CellState entities in the database.
func (_c *CellStateCreateBulk) Save(ctx context.Context) ([]*CellState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CellState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CellStateMutation)
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
func (_c *CellStateCreateBulk) SaveX(ctx context.Context) []*CellState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CellStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CellStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CellState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CellStateUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *CellStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CellStateUpsertBulk {
	_c.conflict = opts
	return &CellStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CellState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CellStateCreateBulk) OnConflictColumns(columns ...string) *CellStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CellStateUpsertBulk{
		create: _c,
	}
}

// CellStateUpsertBulk is the builder for "upsert"-ing
// a bulk of CellState nodes.
type CellStateUpsertBulk struct {
	create *CellStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CellState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cellstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CellStateUpsertBulk) UpdateNewValues() *CellStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cellstate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(cellstate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CellState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CellStateUpsertBulk) Ignore() *CellStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CellStateUpsertBulk) DoNothing() *CellStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CellStateCreateBulk.OnConflict
// documentation for more info.
func (u *CellStateUpsertBulk) Update(set func(*CellStateUpsert)) *CellStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CellStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *CellStateUpsertBulk) SetState(v cellstate.State) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateState() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateState()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CellStateUpsertBulk) SetUpdatedAt(v time.Time) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateUpdatedAt() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLastRun sets the "last_run" field.
func (u *CellStateUpsertBulk) SetLastRun(v time.Time) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetLastRun(v)
	})
}

// UpdateLastRun sets the "last_run" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateLastRun() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateLastRun()
	})
}

// ClearLastRun clears the value of the "last_run" field.
func (u *CellStateUpsertBulk) ClearLastRun() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearLastRun()
	})
}

// SetNextRun sets the "next_run" field.
func (u *CellStateUpsertBulk) SetNextRun(v time.Time) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetNextRun(v)
	})
}

// UpdateNextRun sets the "next_run" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateNextRun() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateNextRun()
	})
}

// ClearNextRun clears the value of the "next_run" field.
func (u *CellStateUpsertBulk) ClearNextRun() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearNextRun()
	})
}

// SetRunCount sets the "run_count" field.
func (u *CellStateUpsertBulk) SetRunCount(v int) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetRunCount(v)
	})
}

// AddRunCount adds v to the "run_count" field.
func (u *CellStateUpsertBulk) AddRunCount(v int) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.AddRunCount(v)
	})
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateRunCount() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateRunCount()
	})
}

// SetSuccessCount sets the "success_count" field.
func (u *CellStateUpsertBulk) SetSuccessCount(v int) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetSuccessCount(v)
	})
}

// AddSuccessCount adds v to the "success_count" field.
func (u *CellStateUpsertBulk) AddSuccessCount(v int) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.AddSuccessCount(v)
	})
}

// UpdateSuccessCount sets the "success_count" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateSuccessCount() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateSuccessCount()
	})
}

// SetFailCount sets the "fail_count" field.
func (u *CellStateUpsertBulk) SetFailCount(v int) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetFailCount(v)
	})
}

// AddFailCount adds v to the "fail_count" field.
func (u *CellStateUpsertBulk) AddFailCount(v int) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.AddFailCount(v)
	})
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateFailCount() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateFailCount()
	})
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *CellStateUpsertBulk) SetAvgDurationMs(v int64) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetAvgDurationMs(v)
	})
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *CellStateUpsertBulk) AddAvgDurationMs(v int64) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.AddAvgDurationMs(v)
	})
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateAvgDurationMs() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateAvgDurationMs()
	})
}

// SetLastError sets the "last_error" field.
func (u *CellStateUpsertBulk) SetLastError(v string) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateLastError() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *CellStateUpsertBulk) ClearLastError() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearLastError()
	})
}

// SetLastErrorAt sets the "last_error_at" field.
func (u *CellStateUpsertBulk) SetLastErrorAt(v time.Time) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetLastErrorAt(v)
	})
}

// UpdateLastErrorAt sets the "last_error_at" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateLastErrorAt() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateLastErrorAt()
	})
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (u *CellStateUpsertBulk) ClearLastErrorAt() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearLastErrorAt()
	})
}

// SetConfig sets the "config" field.
func (u *CellStateUpsertBulk) SetConfig(v map[string]interface{}) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateConfig() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *CellStateUpsertBulk) ClearConfig() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearConfig()
	})
}

// SetMetadata sets the "metadata" field.
func (u *CellStateUpsertBulk) SetMetadata(v map[string]interface{}) *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *CellStateUpsertBulk) UpdateMetadata() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *CellStateUpsertBulk) ClearMetadata() *CellStateUpsertBulk {
	return u.Update(func(s *CellStateUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *CellStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CellStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CellStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CellStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
