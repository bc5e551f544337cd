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
	"github.com/jackeyunjie/growthd/ent/meridianmetric"
)

// MeridianMetricCreate is the builder for creating a MeridianMetric entity.
type MeridianMetricCreate struct {
	config
	mutation *MeridianMetricMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMeridianID sets the "meridian_id" field.
func (_c *MeridianMetricCreate) SetMeridianID(v string) *MeridianMetricCreate {
	_c.mutation.SetMeridianID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MeridianMetricCreate) SetTimestamp(v time.Time) *MeridianMetricCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillableTimestamp(v *time.Time) *MeridianMetricCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPacketsSent sets the "packets_sent" field.
func (_c *MeridianMetricCreate) SetPacketsSent(v int64) *MeridianMetricCreate {
	_c.mutation.SetPacketsSent(v)
	return _c
}

// SetNillablePacketsSent sets the "packets_sent" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillablePacketsSent(v *int64) *MeridianMetricCreate {
	if v != nil {
		_c.SetPacketsSent(*v)
	}
	return _c
}

// SetPacketsReceived sets the "packets_received" field.
func (_c *MeridianMetricCreate) SetPacketsReceived(v int64) *MeridianMetricCreate {
	_c.mutation.SetPacketsReceived(v)
	return _c
}

// SetNillablePacketsReceived sets the "packets_received" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillablePacketsReceived(v *int64) *MeridianMetricCreate {
	if v != nil {
		_c.SetPacketsReceived(*v)
	}
	return _c
}

// SetPacketsDropped sets the "packets_dropped" field.
func (_c *MeridianMetricCreate) SetPacketsDropped(v int64) *MeridianMetricCreate {
	_c.mutation.SetPacketsDropped(v)
	return _c
}

// SetNillablePacketsDropped sets the "packets_dropped" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillablePacketsDropped(v *int64) *MeridianMetricCreate {
	if v != nil {
		_c.SetPacketsDropped(*v)
	}
	return _c
}

// SetQueueSize sets the "queue_size" field.
func (_c *MeridianMetricCreate) SetQueueSize(v int) *MeridianMetricCreate {
	_c.mutation.SetQueueSize(v)
	return _c
}

// SetNillableQueueSize sets the "queue_size" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillableQueueSize(v *int) *MeridianMetricCreate {
	if v != nil {
		_c.SetQueueSize(*v)
	}
	return _c
}

// SetBlockages sets the "blockages" field.
func (_c *MeridianMetricCreate) SetBlockages(v int64) *MeridianMetricCreate {
	_c.mutation.SetBlockages(v)
	return _c
}

// SetNillableBlockages sets the "blockages" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillableBlockages(v *int64) *MeridianMetricCreate {
	if v != nil {
		_c.SetBlockages(*v)
	}
	return _c
}

// SetThroughputPerSec sets the "throughput_per_sec" field.
func (_c *MeridianMetricCreate) SetThroughputPerSec(v float64) *MeridianMetricCreate {
	_c.mutation.SetThroughputPerSec(v)
	return _c
}

// SetNillableThroughputPerSec sets the "throughput_per_sec" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillableThroughputPerSec(v *float64) *MeridianMetricCreate {
	if v != nil {
		_c.SetThroughputPerSec(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *MeridianMetricCreate) SetLatencyMs(v float64) *MeridianMetricCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillableLatencyMs(v *float64) *MeridianMetricCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetErrorRate sets the "error_rate" field.
func (_c *MeridianMetricCreate) SetErrorRate(v float64) *MeridianMetricCreate {
	_c.mutation.SetErrorRate(v)
	return _c
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_c *MeridianMetricCreate) SetNillableErrorRate(v *float64) *MeridianMetricCreate {
	if v != nil {
		_c.SetErrorRate(*v)
	}
	return _c
}

// Mutation returns the MeridianMetricMutation object of the builder.
func (_c *MeridianMetricCreate) Mutation() *MeridianMetricMutation {
	return _c.mutation
}

// Save creates the MeridianMetric in the database.
func (_c *MeridianMetricCreate) Save(ctx context.Context) (*MeridianMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeridianMetricCreate) SaveX(ctx context.Context) *MeridianMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeridianMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeridianMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeridianMetricCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := meridianmetric.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PacketsSent(); !ok {
		v := meridianmetric.DefaultPacketsSent
		_c.mutation.SetPacketsSent(v)
	}
	if _, ok := _c.mutation.PacketsReceived(); !ok {
		v := meridianmetric.DefaultPacketsReceived
		_c.mutation.SetPacketsReceived(v)
	}
	if _, ok := _c.mutation.PacketsDropped(); !ok {
		v := meridianmetric.DefaultPacketsDropped
		_c.mutation.SetPacketsDropped(v)
	}
	if _, ok := _c.mutation.QueueSize(); !ok {
		v := meridianmetric.DefaultQueueSize
		_c.mutation.SetQueueSize(v)
	}
	if _, ok := _c.mutation.Blockages(); !ok {
		v := meridianmetric.DefaultBlockages
		_c.mutation.SetBlockages(v)
	}
	if _, ok := _c.mutation.ThroughputPerSec(); !ok {
		v := meridianmetric.DefaultThroughputPerSec
		_c.mutation.SetThroughputPerSec(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := meridianmetric.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorRate(); !ok {
		v := meridianmetric.DefaultErrorRate
		_c.mutation.SetErrorRate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeridianMetricCreate) check() error {
	if _, ok := _c.mutation.MeridianID(); !ok {
		return &ValidationError{Name: "meridian_id", err: errors.New(`ent: missing required field "MeridianMetric.meridian_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MeridianMetric.timestamp"`)}
	}
	if _, ok := _c.mutation.PacketsSent(); !ok {
		return &ValidationError{Name: "packets_sent", err: errors.New(`ent: missing required field "MeridianMetric.packets_sent"`)}
	}
	if _, ok := _c.mutation.PacketsReceived(); !ok {
		return &ValidationError{Name: "packets_received", err: errors.New(`ent: missing required field "MeridianMetric.packets_received"`)}
	}
	if _, ok := _c.mutation.PacketsDropped(); !ok {
		return &ValidationError{Name: "packets_dropped", err: errors.New(`ent: missing required field "MeridianMetric.packets_dropped"`)}
	}
	if _, ok := _c.mutation.QueueSize(); !ok {
		return &ValidationError{Name: "queue_size", err: errors.New(`ent: missing required field "MeridianMetric.queue_size"`)}
	}
	if _, ok := _c.mutation.Blockages(); !ok {
		return &ValidationError{Name: "blockages", err: errors.New(`ent: missing required field "MeridianMetric.blockages"`)}
	}
	if _, ok := _c.mutation.ThroughputPerSec(); !ok {
		return &ValidationError{Name: "throughput_per_sec", err: errors.New(`ent: missing required field "MeridianMetric.throughput_per_sec"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "MeridianMetric.latency_ms"`)}
	}
	if _, ok := _c.mutation.ErrorRate(); !ok {
		return &ValidationError{Name: "error_rate", err: errors.New(`ent: missing required field "MeridianMetric.error_rate"`)}
	}
	return nil
}

func (_c *MeridianMetricCreate) sqlSave(ctx context.Context) (*MeridianMetric, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeridianMetricCreate) createSpec() (*MeridianMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &MeridianMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meridianmetric.Table, sqlgraph.NewFieldSpec(meridianmetric.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.MeridianID(); ok {
		_spec.SetField(meridianmetric.FieldMeridianID, field.TypeString, value)
		_node.MeridianID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(meridianmetric.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PacketsSent(); ok {
		_spec.SetField(meridianmetric.FieldPacketsSent, field.TypeInt64, value)
		_node.PacketsSent = value
	}
	if value, ok := _c.mutation.PacketsReceived(); ok {
		_spec.SetField(meridianmetric.FieldPacketsReceived, field.TypeInt64, value)
		_node.PacketsReceived = value
	}
	if value, ok := _c.mutation.PacketsDropped(); ok {
		_spec.SetField(meridianmetric.FieldPacketsDropped, field.TypeInt64, value)
		_node.PacketsDropped = value
	}
	if value, ok := _c.mutation.QueueSize(); ok {
		_spec.SetField(meridianmetric.FieldQueueSize, field.TypeInt, value)
		_node.QueueSize = value
	}
	if value, ok := _c.mutation.Blockages(); ok {
		_spec.SetField(meridianmetric.FieldBlockages, field.TypeInt64, value)
		_node.Blockages = value
	}
	if value, ok := _c.mutation.ThroughputPerSec(); ok {
		_spec.SetField(meridianmetric.FieldThroughputPerSec, field.TypeFloat64, value)
		_node.ThroughputPerSec = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(meridianmetric.FieldLatencyMs, field.TypeFloat64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.ErrorRate(); ok {
		_spec.SetField(meridianmetric.FieldErrorRate, field.TypeFloat64, value)
		_node.ErrorRate = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MeridianMetric.Create().
//		SetMeridianID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MeridianMetricUpsert) {
//			SetMeridianID(v+v).
//		}).
//		Exec(ctx)
func (_c *MeridianMetricCreate) OnConflict(opts ...sql.ConflictOption) *MeridianMetricUpsertOne {
	_c.conflict = opts
	return &MeridianMetricUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MeridianMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MeridianMetricCreate) OnConflictColumns(columns ...string) *MeridianMetricUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MeridianMetricUpsertOne{
		create: _c,
	}
}

type (
	// MeridianMetricUpsertOne is the builder for "upsert"-ing
	//  one MeridianMetric node.
	MeridianMetricUpsertOne struct {
		create *MeridianMetricCreate
	}

	// MeridianMetricUpsert is the "OnConflict" setter.
	MeridianMetricUpsert struct {
		*sql.UpdateSet
	}
)

// SetMeridianID sets the "meridian_id" field.
func (u *MeridianMetricUpsert) SetMeridianID(v string) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldMeridianID, v)
	return u
}

// UpdateMeridianID sets the "meridian_id" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdateMeridianID() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldMeridianID)
	return u
}

// SetPacketsSent sets the "packets_sent" field.
func (u *MeridianMetricUpsert) SetPacketsSent(v int64) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldPacketsSent, v)
	return u
}

// UpdatePacketsSent sets the "packets_sent" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdatePacketsSent() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldPacketsSent)
	return u
}

// AddPacketsSent adds v to the "packets_sent" field.
func (u *MeridianMetricUpsert) AddPacketsSent(v int64) *MeridianMetricUpsert {
	u.Add(meridianmetric.FieldPacketsSent, v)
	return u
}

// SetPacketsReceived sets the "packets_received" field.
func (u *MeridianMetricUpsert) SetPacketsReceived(v int64) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldPacketsReceived, v)
	return u
}

// UpdatePacketsReceived sets the "packets_received" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdatePacketsReceived() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldPacketsReceived)
	return u
}

// AddPacketsReceived adds v to the "packets_received" field.
func (u *MeridianMetricUpsert) AddPacketsReceived(v int64) *MeridianMetricUpsert {
	u.Add(meridianmetric.FieldPacketsReceived, v)
	return u
}

// SetPacketsDropped sets the "packets_dropped" field.
func (u *MeridianMetricUpsert) SetPacketsDropped(v int64) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldPacketsDropped, v)
	return u
}

// UpdatePacketsDropped sets the "packets_dropped" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdatePacketsDropped() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldPacketsDropped)
	return u
}

// AddPacketsDropped adds v to the "packets_dropped" field.
func (u *MeridianMetricUpsert) AddPacketsDropped(v int64) *MeridianMetricUpsert {
	u.Add(meridianmetric.FieldPacketsDropped, v)
	return u
}

// SetQueueSize sets the "queue_size" field.
func (u *MeridianMetricUpsert) SetQueueSize(v int) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldQueueSize, v)
	return u
}

// UpdateQueueSize sets the "queue_size" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdateQueueSize() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldQueueSize)
	return u
}

// AddQueueSize adds v to the "queue_size" field.
func (u *MeridianMetricUpsert) AddQueueSize(v int) *MeridianMetricUpsert {
	u.Add(meridianmetric.FieldQueueSize, v)
	return u
}

// SetBlockages sets the "blockages" field.
func (u *MeridianMetricUpsert) SetBlockages(v int64) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldBlockages, v)
	return u
}

// UpdateBlockages sets the "blockages" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdateBlockages() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldBlockages)
	return u
}

// AddBlockages adds v to the "blockages" field.
func (u *MeridianMetricUpsert) AddBlockages(v int64) *MeridianMetricUpsert {
	u.Add(meridianmetric.FieldBlockages, v)
	return u
}

// SetThroughputPerSec sets the "throughput_per_sec" field.
func (u *MeridianMetricUpsert) SetThroughputPerSec(v float64) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldThroughputPerSec, v)
	return u
}

// UpdateThroughputPerSec sets the "throughput_per_sec" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdateThroughputPerSec() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldThroughputPerSec)
	return u
}

// AddThroughputPerSec adds v to the "throughput_per_sec" field.
func (u *MeridianMetricUpsert) AddThroughputPerSec(v float64) *MeridianMetricUpsert {
	u.Add(meridianmetric.FieldThroughputPerSec, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *MeridianMetricUpsert) SetLatencyMs(v float64) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdateLatencyMs() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *MeridianMetricUpsert) AddLatencyMs(v float64) *MeridianMetricUpsert {
	u.Add(meridianmetric.FieldLatencyMs, v)
	return u
}

// SetErrorRate sets the "error_rate" field.
func (u *MeridianMetricUpsert) SetErrorRate(v float64) *MeridianMetricUpsert {
	u.Set(meridianmetric.FieldErrorRate, v)
	return u
}

// UpdateErrorRate sets the "error_rate" field to the value that was provided on create.
func (u *MeridianMetricUpsert) UpdateErrorRate() *MeridianMetricUpsert {
	u.SetExcluded(meridianmetric.FieldErrorRate)
	return u
}

// AddErrorRate adds v to the "error_rate" field.
func (u *MeridianMetricUpsert) AddErrorRate(v float64) *MeridianMetricUpsert {
	u.Add(meridianmetric.FieldErrorRate, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MeridianMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MeridianMetricUpsertOne) UpdateNewValues() *MeridianMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(meridianmetric.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MeridianMetric.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MeridianMetricUpsertOne) Ignore() *MeridianMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MeridianMetricUpsertOne) DoNothing() *MeridianMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MeridianMetricCreate.OnConflict
// documentation for more info.
func (u *MeridianMetricUpsertOne) Update(set func(*MeridianMetricUpsert)) *MeridianMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MeridianMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetMeridianID sets the "meridian_id" field.
func (u *MeridianMetricUpsertOne) SetMeridianID(v string) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetMeridianID(v)
	})
}

// UpdateMeridianID sets the "meridian_id" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdateMeridianID() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateMeridianID()
	})
}

// SetPacketsSent sets the "packets_sent" field.
func (u *MeridianMetricUpsertOne) SetPacketsSent(v int64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetPacketsSent(v)
	})
}

// AddPacketsSent adds v to the "packets_sent" field.
func (u *MeridianMetricUpsertOne) AddPacketsSent(v int64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddPacketsSent(v)
	})
}

// UpdatePacketsSent sets the "packets_sent" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdatePacketsSent() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdatePacketsSent()
	})
}

// SetPacketsReceived sets the "packets_received" field.
func (u *MeridianMetricUpsertOne) SetPacketsReceived(v int64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetPacketsReceived(v)
	})
}

// AddPacketsReceived adds v to the "packets_received" field.
func (u *MeridianMetricUpsertOne) AddPacketsReceived(v int64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddPacketsReceived(v)
	})
}

// UpdatePacketsReceived sets the "packets_received" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdatePacketsReceived() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdatePacketsReceived()
	})
}

// SetPacketsDropped sets the "packets_dropped" field.
func (u *MeridianMetricUpsertOne) SetPacketsDropped(v int64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetPacketsDropped(v)
	})
}

// AddPacketsDropped adds v to the "packets_dropped" field.
func (u *MeridianMetricUpsertOne) AddPacketsDropped(v int64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddPacketsDropped(v)
	})
}

// UpdatePacketsDropped sets the "packets_dropped" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdatePacketsDropped() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdatePacketsDropped()
	})
}

// SetQueueSize sets the "queue_size" field.
func (u *MeridianMetricUpsertOne) SetQueueSize(v int) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetQueueSize(v)
	})
}

// AddQueueSize adds v to the "queue_size" field.
func (u *MeridianMetricUpsertOne) AddQueueSize(v int) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddQueueSize(v)
	})
}

// UpdateQueueSize sets the "queue_size" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdateQueueSize() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateQueueSize()
	})
}

// SetBlockages sets the "blockages" field.
func (u *MeridianMetricUpsertOne) SetBlockages(v int64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetBlockages(v)
	})
}

// AddBlockages adds v to the "blockages" field.
func (u *MeridianMetricUpsertOne) AddBlockages(v int64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddBlockages(v)
	})
}

// UpdateBlockages sets the "blockages" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdateBlockages() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateBlockages()
	})
}

// SetThroughputPerSec sets the "throughput_per_sec" field.
func (u *MeridianMetricUpsertOne) SetThroughputPerSec(v float64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetThroughputPerSec(v)
	})
}

// AddThroughputPerSec adds v to the "throughput_per_sec" field.
func (u *MeridianMetricUpsertOne) AddThroughputPerSec(v float64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddThroughputPerSec(v)
	})
}

// UpdateThroughputPerSec sets the "throughput_per_sec" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdateThroughputPerSec() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateThroughputPerSec()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *MeridianMetricUpsertOne) SetLatencyMs(v float64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *MeridianMetricUpsertOne) AddLatencyMs(v float64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdateLatencyMs() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetErrorRate sets the "error_rate" field.
func (u *MeridianMetricUpsertOne) SetErrorRate(v float64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetErrorRate(v)
	})
}

// AddErrorRate adds v to the "error_rate" field.
func (u *MeridianMetricUpsertOne) AddErrorRate(v float64) *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddErrorRate(v)
	})
}

// UpdateErrorRate sets the "error_rate" field to the value that was provided on create.
func (u *MeridianMetricUpsertOne) UpdateErrorRate() *MeridianMetricUpsertOne {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateErrorRate()
	})
}

// Exec executes the query.
func (u *MeridianMetricUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MeridianMetricCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MeridianMetricUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MeridianMetricUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MeridianMetricUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MeridianMetricCreateBulk is the builder for creating many MeridianMetric entities in bulk.
type MeridianMetricCreateBulk struct {
	config
	err      error
	builders []*MeridianMetricCreate
	conflict []sql.ConflictOption
}

// Save creates the MeridianMetric entities in the database.
func (_c *MeridianMetricCreateBulk) Save(ctx context.Context) ([]*MeridianMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MeridianMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeridianMetricMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *MeridianMetricCreateBulk) SaveX(ctx context.Context) []*MeridianMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeridianMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeridianMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MeridianMetric.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MeridianMetricUpsert) {
//			SetMeridianID(v+v).
//		}).
//		Exec(ctx)
func (_c *MeridianMetricCreateBulk) OnConflict(opts ...sql.ConflictOption) *MeridianMetricUpsertBulk {
	_c.conflict = opts
	return &MeridianMetricUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MeridianMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MeridianMetricCreateBulk) OnConflictColumns(columns ...string) *MeridianMetricUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MeridianMetricUpsertBulk{
		create: _c,
	}
}

// MeridianMetricUpsertBulk is the builder for "upsert"-ing
// a bulk of MeridianMetric nodes.
type MeridianMetricUpsertBulk struct {
	create *MeridianMetricCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MeridianMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MeridianMetricUpsertBulk) UpdateNewValues() *MeridianMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(meridianmetric.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MeridianMetric.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MeridianMetricUpsertBulk) Ignore() *MeridianMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MeridianMetricUpsertBulk) DoNothing() *MeridianMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MeridianMetricCreateBulk.OnConflict
// documentation for more info.
func (u *MeridianMetricUpsertBulk) Update(set func(*MeridianMetricUpsert)) *MeridianMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MeridianMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetMeridianID sets the "meridian_id" field.
func (u *MeridianMetricUpsertBulk) SetMeridianID(v string) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetMeridianID(v)
	})
}

// UpdateMeridianID sets the "meridian_id" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdateMeridianID() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateMeridianID()
	})
}

// SetPacketsSent sets the "packets_sent" field.
func (u *MeridianMetricUpsertBulk) SetPacketsSent(v int64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetPacketsSent(v)
	})
}

// AddPacketsSent adds v to the "packets_sent" field.
func (u *MeridianMetricUpsertBulk) AddPacketsSent(v int64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddPacketsSent(v)
	})
}

// UpdatePacketsSent sets the "packets_sent" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdatePacketsSent() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdatePacketsSent()
	})
}

// SetPacketsReceived sets the "packets_received" field.
func (u *MeridianMetricUpsertBulk) SetPacketsReceived(v int64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetPacketsReceived(v)
	})
}

// AddPacketsReceived adds v to the "packets_received" field.
func (u *MeridianMetricUpsertBulk) AddPacketsReceived(v int64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddPacketsReceived(v)
	})
}

// UpdatePacketsReceived sets the "packets_received" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdatePacketsReceived() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdatePacketsReceived()
	})
}

// SetPacketsDropped sets the "packets_dropped" field.
func (u *MeridianMetricUpsertBulk) SetPacketsDropped(v int64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetPacketsDropped(v)
	})
}

// AddPacketsDropped adds v to the "packets_dropped" field.
func (u *MeridianMetricUpsertBulk) AddPacketsDropped(v int64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddPacketsDropped(v)
	})
}

// UpdatePacketsDropped sets the "packets_dropped" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdatePacketsDropped() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdatePacketsDropped()
	})
}

// SetQueueSize sets the "queue_size" field.
func (u *MeridianMetricUpsertBulk) SetQueueSize(v int) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetQueueSize(v)
	})
}

// AddQueueSize adds v to the "queue_size" field.
func (u *MeridianMetricUpsertBulk) AddQueueSize(v int) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddQueueSize(v)
	})
}

// UpdateQueueSize sets the "queue_size" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdateQueueSize() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateQueueSize()
	})
}

// SetBlockages sets the "blockages" field.
func (u *MeridianMetricUpsertBulk) SetBlockages(v int64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetBlockages(v)
	})
}

// AddBlockages adds v to the "blockages" field.
func (u *MeridianMetricUpsertBulk) AddBlockages(v int64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddBlockages(v)
	})
}

// UpdateBlockages sets the "blockages" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdateBlockages() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateBlockages()
	})
}

// SetThroughputPerSec sets the "throughput_per_sec" field.
func (u *MeridianMetricUpsertBulk) SetThroughputPerSec(v float64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetThroughputPerSec(v)
	})
}

// AddThroughputPerSec adds v to the "throughput_per_sec" field.
func (u *MeridianMetricUpsertBulk) AddThroughputPerSec(v float64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddThroughputPerSec(v)
	})
}

// UpdateThroughputPerSec sets the "throughput_per_sec" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdateThroughputPerSec() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateThroughputPerSec()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *MeridianMetricUpsertBulk) SetLatencyMs(v float64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *MeridianMetricUpsertBulk) AddLatencyMs(v float64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdateLatencyMs() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetErrorRate sets the "error_rate" field.
func (u *MeridianMetricUpsertBulk) SetErrorRate(v float64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.SetErrorRate(v)
	})
}

// AddErrorRate adds v to the "error_rate" field.
func (u *MeridianMetricUpsertBulk) AddErrorRate(v float64) *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.AddErrorRate(v)
	})
}

// UpdateErrorRate sets the "error_rate" field to the value that was provided on create.
func (u *MeridianMetricUpsertBulk) UpdateErrorRate() *MeridianMetricUpsertBulk {
	return u.Update(func(s *MeridianMetricUpsert) {
		s.UpdateErrorRate()
	})
}

// Exec executes the query.
func (u *MeridianMetricUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MeridianMetricCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MeridianMetricCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MeridianMetricUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
