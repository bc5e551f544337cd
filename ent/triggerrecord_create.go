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
	"github.com/jackeyunjie/growthd/ent/triggerrecord"
)

// TriggerRecordCreate is the builder for creating a TriggerRecord entity.
type TriggerRecordCreate struct {
	config
	mutation *TriggerRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTriggerID sets the "trigger_id" field.
func (_c *TriggerRecordCreate) SetTriggerID(v string) *TriggerRecordCreate {
	_c.mutation.SetTriggerID(v)
	return _c
}

// SetScheduledTime sets the "scheduled_time" field.
func (_c *TriggerRecordCreate) SetScheduledTime(v time.Time) *TriggerRecordCreate {
	_c.mutation.SetScheduledTime(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TriggerRecordCreate) SetStartedAt(v time.Time) *TriggerRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TriggerRecordCreate) SetNillableStartedAt(v *time.Time) *TriggerRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TriggerRecordCreate) SetCompletedAt(v time.Time) *TriggerRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TriggerRecordCreate) SetNillableCompletedAt(v *time.Time) *TriggerRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TriggerRecordCreate) SetStatus(v triggerrecord.Status) *TriggerRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TriggerRecordCreate) SetNillableStatus(v *triggerrecord.Status) *TriggerRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TriggerRecordCreate) SetRetryCount(v int) *TriggerRecordCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TriggerRecordCreate) SetNillableRetryCount(v *int) *TriggerRecordCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *TriggerRecordCreate) SetError(v string) *TriggerRecordCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *TriggerRecordCreate) SetNillableError(v *string) *TriggerRecordCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetOutcomeSummary sets the "outcome_summary" field.
func (_c *TriggerRecordCreate) SetOutcomeSummary(v string) *TriggerRecordCreate {
	_c.mutation.SetOutcomeSummary(v)
	return _c
}

// SetNillableOutcomeSummary sets the "outcome_summary" field if the given value is not nil.
func (_c *TriggerRecordCreate) SetNillableOutcomeSummary(v *string) *TriggerRecordCreate {
	if v != nil {
		_c.SetOutcomeSummary(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *TriggerRecordCreate) SetData(v map[string]interface{}) *TriggerRecordCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *TriggerRecordCreate) SetProcessingTimeMs(v int64) *TriggerRecordCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *TriggerRecordCreate) SetNillableProcessingTimeMs(v *int64) *TriggerRecordCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerRecordCreate) SetCreatedAt(v time.Time) *TriggerRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriggerRecordCreate) SetNillableCreatedAt(v *time.Time) *TriggerRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerRecordCreate) SetID(v string) *TriggerRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TriggerRecordMutation object of the builder.
func (_c *TriggerRecordCreate) Mutation() *TriggerRecordMutation {
	return _c.mutation
}

// Save creates the TriggerRecord in the database.
func (_c *TriggerRecordCreate) Save(ctx context.Context) (*TriggerRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerRecordCreate) SaveX(ctx context.Context) *TriggerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := triggerrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := triggerrecord.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		v := triggerrecord.DefaultProcessingTimeMs
		_c.mutation.SetProcessingTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triggerrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerRecordCreate) check() error {
	if _, ok := _c.mutation.TriggerID(); !ok {
		return &ValidationError{Name: "trigger_id", err: errors.New(`ent: missing required field "TriggerRecord.trigger_id"`)}
	}
	if _, ok := _c.mutation.ScheduledTime(); !ok {
		return &ValidationError{Name: "scheduled_time", err: errors.New(`ent: missing required field "TriggerRecord.scheduled_time"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TriggerRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := triggerrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriggerRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "TriggerRecord.retry_count"`)}
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		return &ValidationError{Name: "processing_time_ms", err: errors.New(`ent: missing required field "TriggerRecord.processing_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TriggerRecord.created_at"`)}
	}
	return nil
}

func (_c *TriggerRecordCreate) sqlSave(ctx context.Context) (*TriggerRecord, error) {
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
			return nil, fmt.Errorf("unexpected TriggerRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerRecordCreate) createSpec() (*TriggerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &TriggerRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triggerrecord.Table, sqlgraph.NewFieldSpec(triggerrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TriggerID(); ok {
		_spec.SetField(triggerrecord.FieldTriggerID, field.TypeString, value)
		_node.TriggerID = value
	}
	if value, ok := _c.mutation.ScheduledTime(); ok {
		_spec.SetField(triggerrecord.FieldScheduledTime, field.TypeTime, value)
		_node.ScheduledTime = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(triggerrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(triggerrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(triggerrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(triggerrecord.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(triggerrecord.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.OutcomeSummary(); ok {
		_spec.SetField(triggerrecord.FieldOutcomeSummary, field.TypeString, value)
		_node.OutcomeSummary = &value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(triggerrecord.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(triggerrecord.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triggerrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TriggerRecord.Create().
//		SetTriggerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriggerRecordUpsert) {
//			SetTriggerID(v+v).
//		}).
//		Exec(ctx)
func (_c *TriggerRecordCreate) OnConflict(opts ...sql.ConflictOption) *TriggerRecordUpsertOne {
	_c.conflict = opts
	return &TriggerRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TriggerRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriggerRecordCreate) OnConflictColumns(columns ...string) *TriggerRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriggerRecordUpsertOne{
		create: _c,
	}
}

type (
	// TriggerRecordUpsertOne is the builder for "upsert"-ing
	//  one TriggerRecord node.
	TriggerRecordUpsertOne struct {
		create *TriggerRecordCreate
	}

	// TriggerRecordUpsert is the "OnConflict" setter.
	TriggerRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetTriggerID sets the "trigger_id" field.
func (u *TriggerRecordUpsert) SetTriggerID(v string) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldTriggerID, v)
	return u
}

// UpdateTriggerID sets the "trigger_id" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateTriggerID() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldTriggerID)
	return u
}

// SetScheduledTime sets the "scheduled_time" field.
func (u *TriggerRecordUpsert) SetScheduledTime(v time.Time) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldScheduledTime, v)
	return u
}

// UpdateScheduledTime sets the "scheduled_time" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateScheduledTime() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldScheduledTime)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TriggerRecordUpsert) SetStartedAt(v time.Time) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateStartedAt() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TriggerRecordUpsert) ClearStartedAt() *TriggerRecordUpsert {
	u.SetNull(triggerrecord.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TriggerRecordUpsert) SetCompletedAt(v time.Time) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateCompletedAt() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TriggerRecordUpsert) ClearCompletedAt() *TriggerRecordUpsert {
	u.SetNull(triggerrecord.FieldCompletedAt)
	return u
}

// SetStatus sets the "status" field.
func (u *TriggerRecordUpsert) SetStatus(v triggerrecord.Status) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateStatus() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldStatus)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *TriggerRecordUpsert) SetRetryCount(v int) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateRetryCount() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TriggerRecordUpsert) AddRetryCount(v int) *TriggerRecordUpsert {
	u.Add(triggerrecord.FieldRetryCount, v)
	return u
}

// SetError sets the "error" field.
func (u *TriggerRecordUpsert) SetError(v string) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateError() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *TriggerRecordUpsert) ClearError() *TriggerRecordUpsert {
	u.SetNull(triggerrecord.FieldError)
	return u
}

// SetOutcomeSummary sets the "outcome_summary" field.
func (u *TriggerRecordUpsert) SetOutcomeSummary(v string) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldOutcomeSummary, v)
	return u
}

// UpdateOutcomeSummary sets the "outcome_summary" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateOutcomeSummary() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldOutcomeSummary)
	return u
}

// ClearOutcomeSummary clears the value of the "outcome_summary" field.
func (u *TriggerRecordUpsert) ClearOutcomeSummary() *TriggerRecordUpsert {
	u.SetNull(triggerrecord.FieldOutcomeSummary)
	return u
}

// SetData sets the "data" field.
func (u *TriggerRecordUpsert) SetData(v map[string]interface{}) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateData() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldData)
	return u
}

// ClearData clears the value of the "data" field.
func (u *TriggerRecordUpsert) ClearData() *TriggerRecordUpsert {
	u.SetNull(triggerrecord.FieldData)
	return u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *TriggerRecordUpsert) SetProcessingTimeMs(v int64) *TriggerRecordUpsert {
	u.Set(triggerrecord.FieldProcessingTimeMs, v)
	return u
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *TriggerRecordUpsert) UpdateProcessingTimeMs() *TriggerRecordUpsert {
	u.SetExcluded(triggerrecord.FieldProcessingTimeMs)
	return u
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *TriggerRecordUpsert) AddProcessingTimeMs(v int64) *TriggerRecordUpsert {
	u.Add(triggerrecord.FieldProcessingTimeMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TriggerRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triggerrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriggerRecordUpsertOne) UpdateNewValues() *TriggerRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(triggerrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(triggerrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TriggerRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TriggerRecordUpsertOne) Ignore() *TriggerRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriggerRecordUpsertOne) DoNothing() *TriggerRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriggerRecordCreate.OnConflict
// documentation for more info.
func (u *TriggerRecordUpsertOne) Update(set func(*TriggerRecordUpsert)) *TriggerRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriggerRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetTriggerID sets the "trigger_id" field.
func (u *TriggerRecordUpsertOne) SetTriggerID(v string) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetTriggerID(v)
	})
}

// UpdateTriggerID sets the "trigger_id" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateTriggerID() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateTriggerID()
	})
}

// SetScheduledTime sets the "scheduled_time" field.
func (u *TriggerRecordUpsertOne) SetScheduledTime(v time.Time) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetScheduledTime(v)
	})
}

// UpdateScheduledTime sets the "scheduled_time" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateScheduledTime() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateScheduledTime()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TriggerRecordUpsertOne) SetStartedAt(v time.Time) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateStartedAt() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TriggerRecordUpsertOne) ClearStartedAt() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TriggerRecordUpsertOne) SetCompletedAt(v time.Time) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateCompletedAt() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TriggerRecordUpsertOne) ClearCompletedAt() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearCompletedAt()
	})
}

// SetStatus sets the "status" field.
func (u *TriggerRecordUpsertOne) SetStatus(v triggerrecord.Status) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateStatus() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TriggerRecordUpsertOne) SetRetryCount(v int) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TriggerRecordUpsertOne) AddRetryCount(v int) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateRetryCount() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateRetryCount()
	})
}

// SetError sets the "error" field.
func (u *TriggerRecordUpsertOne) SetError(v string) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateError() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *TriggerRecordUpsertOne) ClearError() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearError()
	})
}

// SetOutcomeSummary sets the "outcome_summary" field.
func (u *TriggerRecordUpsertOne) SetOutcomeSummary(v string) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetOutcomeSummary(v)
	})
}

// UpdateOutcomeSummary sets the "outcome_summary" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateOutcomeSummary() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateOutcomeSummary()
	})
}

// ClearOutcomeSummary clears the value of the "outcome_summary" field.
func (u *TriggerRecordUpsertOne) ClearOutcomeSummary() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearOutcomeSummary()
	})
}

// SetData sets the "data" field.
func (u *TriggerRecordUpsertOne) SetData(v map[string]interface{}) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateData() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *TriggerRecordUpsertOne) ClearData() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearData()
	})
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *TriggerRecordUpsertOne) SetProcessingTimeMs(v int64) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetProcessingTimeMs(v)
	})
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *TriggerRecordUpsertOne) AddProcessingTimeMs(v int64) *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.AddProcessingTimeMs(v)
	})
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *TriggerRecordUpsertOne) UpdateProcessingTimeMs() *TriggerRecordUpsertOne {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateProcessingTimeMs()
	})
}

// Exec executes the query.
func (u *TriggerRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TriggerRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriggerRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TriggerRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TriggerRecordUpsertOne.ID is not supported by MySQL driver. Use TriggerRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TriggerRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TriggerRecordCreateBulk is the builder for creating many TriggerRecord entities in bulk.
type TriggerRecordCreateBulk struct {
	config
	err      error
	builders []*TriggerRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the TriggerRecord entities in the database.
func (_c *TriggerRecordCreateBulk) Save(ctx context.Context) ([]*TriggerRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriggerRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerRecordMutation)
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
func (_c *TriggerRecordCreateBulk) SaveX(ctx context.Context) []*TriggerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TriggerRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriggerRecordUpsert) {
//			SetTriggerID(v+v).
//		}).
//		Exec(ctx)
func (_c *TriggerRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *TriggerRecordUpsertBulk {
	_c.conflict = opts
	return &TriggerRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TriggerRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriggerRecordCreateBulk) OnConflictColumns(columns ...string) *TriggerRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriggerRecordUpsertBulk{
		create: _c,
	}
}

// TriggerRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of TriggerRecord nodes.
type TriggerRecordUpsertBulk struct {
	create *TriggerRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TriggerRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(triggerrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriggerRecordUpsertBulk) UpdateNewValues() *TriggerRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(triggerrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(triggerrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TriggerRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TriggerRecordUpsertBulk) Ignore() *TriggerRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriggerRecordUpsertBulk) DoNothing() *TriggerRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriggerRecordCreateBulk.OnConflict
// documentation for more info.
func (u *TriggerRecordUpsertBulk) Update(set func(*TriggerRecordUpsert)) *TriggerRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriggerRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetTriggerID sets the "trigger_id" field.
func (u *TriggerRecordUpsertBulk) SetTriggerID(v string) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetTriggerID(v)
	})
}

// UpdateTriggerID sets the "trigger_id" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateTriggerID() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateTriggerID()
	})
}

// SetScheduledTime sets the "scheduled_time" field.
func (u *TriggerRecordUpsertBulk) SetScheduledTime(v time.Time) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetScheduledTime(v)
	})
}

// UpdateScheduledTime sets the "scheduled_time" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateScheduledTime() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateScheduledTime()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TriggerRecordUpsertBulk) SetStartedAt(v time.Time) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateStartedAt() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TriggerRecordUpsertBulk) ClearStartedAt() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TriggerRecordUpsertBulk) SetCompletedAt(v time.Time) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateCompletedAt() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TriggerRecordUpsertBulk) ClearCompletedAt() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearCompletedAt()
	})
}

// SetStatus sets the "status" field.
func (u *TriggerRecordUpsertBulk) SetStatus(v triggerrecord.Status) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateStatus() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TriggerRecordUpsertBulk) SetRetryCount(v int) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TriggerRecordUpsertBulk) AddRetryCount(v int) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateRetryCount() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateRetryCount()
	})
}

// SetError sets the "error" field.
func (u *TriggerRecordUpsertBulk) SetError(v string) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateError() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *TriggerRecordUpsertBulk) ClearError() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearError()
	})
}

// SetOutcomeSummary sets the "outcome_summary" field.
func (u *TriggerRecordUpsertBulk) SetOutcomeSummary(v string) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetOutcomeSummary(v)
	})
}

// UpdateOutcomeSummary sets the "outcome_summary" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateOutcomeSummary() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateOutcomeSummary()
	})
}

// ClearOutcomeSummary clears the value of the "outcome_summary" field.
func (u *TriggerRecordUpsertBulk) ClearOutcomeSummary() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearOutcomeSummary()
	})
}

// SetData sets the "data" field.
func (u *TriggerRecordUpsertBulk) SetData(v map[string]interface{}) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateData() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *TriggerRecordUpsertBulk) ClearData() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.ClearData()
	})
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *TriggerRecordUpsertBulk) SetProcessingTimeMs(v int64) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.SetProcessingTimeMs(v)
	})
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *TriggerRecordUpsertBulk) AddProcessingTimeMs(v int64) *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.AddProcessingTimeMs(v)
	})
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *TriggerRecordUpsertBulk) UpdateProcessingTimeMs() *TriggerRecordUpsertBulk {
	return u.Update(func(s *TriggerRecordUpsert) {
		s.UpdateProcessingTimeMs()
	})
}

// Exec executes the query.
func (u *TriggerRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TriggerRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TriggerRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriggerRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
