// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jackeyunjie/growthd/ent/meridianmetric"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// MeridianMetricUpdate is the builder for updating MeridianMetric entities.
type MeridianMetricUpdate struct {
	config
	hooks    []Hook
	mutation *MeridianMetricMutation
}

// Where appends a list predicates to the MeridianMetricUpdate builder.
func (_u *MeridianMetricUpdate) Where(ps ...predicate.MeridianMetric) *MeridianMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeridianID sets the "meridian_id" field.
func (_u *MeridianMetricUpdate) SetMeridianID(v string) *MeridianMetricUpdate {
	_u.mutation.SetMeridianID(v)
	return _u
}

// SetNillableMeridianID sets the "meridian_id" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillableMeridianID(v *string) *MeridianMetricUpdate {
	if v != nil {
		_u.SetMeridianID(*v)
	}
	return _u
}

// SetPacketsSent sets the "packets_sent" field.
func (_u *MeridianMetricUpdate) SetPacketsSent(v int64) *MeridianMetricUpdate {
	_u.mutation.ResetPacketsSent()
	_u.mutation.SetPacketsSent(v)
	return _u
}

// SetNillablePacketsSent sets the "packets_sent" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillablePacketsSent(v *int64) *MeridianMetricUpdate {
	if v != nil {
		_u.SetPacketsSent(*v)
	}
	return _u
}

// AddPacketsSent adds value to the "packets_sent" field.
func (_u *MeridianMetricUpdate) AddPacketsSent(v int64) *MeridianMetricUpdate {
	_u.mutation.AddPacketsSent(v)
	return _u
}

// SetPacketsReceived sets the "packets_received" field.
func (_u *MeridianMetricUpdate) SetPacketsReceived(v int64) *MeridianMetricUpdate {
	_u.mutation.ResetPacketsReceived()
	_u.mutation.SetPacketsReceived(v)
	return _u
}

// SetNillablePacketsReceived sets the "packets_received" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillablePacketsReceived(v *int64) *MeridianMetricUpdate {
	if v != nil {
		_u.SetPacketsReceived(*v)
	}
	return _u
}

// AddPacketsReceived adds value to the "packets_received" field.
func (_u *MeridianMetricUpdate) AddPacketsReceived(v int64) *MeridianMetricUpdate {
	_u.mutation.AddPacketsReceived(v)
	return _u
}

// SetPacketsDropped sets the "packets_dropped" field.
func (_u *MeridianMetricUpdate) SetPacketsDropped(v int64) *MeridianMetricUpdate {
	_u.mutation.ResetPacketsDropped()
	_u.mutation.SetPacketsDropped(v)
	return _u
}

// SetNillablePacketsDropped sets the "packets_dropped" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillablePacketsDropped(v *int64) *MeridianMetricUpdate {
	if v != nil {
		_u.SetPacketsDropped(*v)
	}
	return _u
}

// AddPacketsDropped adds value to the "packets_dropped" field.
func (_u *MeridianMetricUpdate) AddPacketsDropped(v int64) *MeridianMetricUpdate {
	_u.mutation.AddPacketsDropped(v)
	return _u
}

// SetQueueSize sets the "queue_size" field.
func (_u *MeridianMetricUpdate) SetQueueSize(v int) *MeridianMetricUpdate {
	_u.mutation.ResetQueueSize()
	_u.mutation.SetQueueSize(v)
	return _u
}

// SetNillableQueueSize sets the "queue_size" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillableQueueSize(v *int) *MeridianMetricUpdate {
	if v != nil {
		_u.SetQueueSize(*v)
	}
	return _u
}

// AddQueueSize adds value to the "queue_size" field.
func (_u *MeridianMetricUpdate) AddQueueSize(v int) *MeridianMetricUpdate {
	_u.mutation.AddQueueSize(v)
	return _u
}

// SetBlockages sets the "blockages" field.
func (_u *MeridianMetricUpdate) SetBlockages(v int64) *MeridianMetricUpdate {
	_u.mutation.ResetBlockages()
	_u.mutation.SetBlockages(v)
	return _u
}

// SetNillableBlockages sets the "blockages" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillableBlockages(v *int64) *MeridianMetricUpdate {
	if v != nil {
		_u.SetBlockages(*v)
	}
	return _u
}

// AddBlockages adds value to the "blockages" field.
func (_u *MeridianMetricUpdate) AddBlockages(v int64) *MeridianMetricUpdate {
	_u.mutation.AddBlockages(v)
	return _u
}

// SetThroughputPerSec sets the "throughput_per_sec" field.
func (_u *MeridianMetricUpdate) SetThroughputPerSec(v float64) *MeridianMetricUpdate {
	_u.mutation.ResetThroughputPerSec()
	_u.mutation.SetThroughputPerSec(v)
	return _u
}

// SetNillableThroughputPerSec sets the "throughput_per_sec" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillableThroughputPerSec(v *float64) *MeridianMetricUpdate {
	if v != nil {
		_u.SetThroughputPerSec(*v)
	}
	return _u
}

// AddThroughputPerSec adds value to the "throughput_per_sec" field.
func (_u *MeridianMetricUpdate) AddThroughputPerSec(v float64) *MeridianMetricUpdate {
	_u.mutation.AddThroughputPerSec(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *MeridianMetricUpdate) SetLatencyMs(v float64) *MeridianMetricUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillableLatencyMs(v *float64) *MeridianMetricUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *MeridianMetricUpdate) AddLatencyMs(v float64) *MeridianMetricUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *MeridianMetricUpdate) SetErrorRate(v float64) *MeridianMetricUpdate {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *MeridianMetricUpdate) SetNillableErrorRate(v *float64) *MeridianMetricUpdate {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *MeridianMetricUpdate) AddErrorRate(v float64) *MeridianMetricUpdate {
	_u.mutation.AddErrorRate(v)
	return _u
}

// Mutation returns the MeridianMetricMutation object of the builder.
func (_u *MeridianMetricUpdate) Mutation() *MeridianMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeridianMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeridianMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeridianMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeridianMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeridianMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(meridianmetric.Table, meridianmetric.Columns, sqlgraph.NewFieldSpec(meridianmetric.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MeridianID(); ok {
		_spec.SetField(meridianmetric.FieldMeridianID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PacketsSent(); ok {
		_spec.SetField(meridianmetric.FieldPacketsSent, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPacketsSent(); ok {
		_spec.AddField(meridianmetric.FieldPacketsSent, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PacketsReceived(); ok {
		_spec.SetField(meridianmetric.FieldPacketsReceived, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPacketsReceived(); ok {
		_spec.AddField(meridianmetric.FieldPacketsReceived, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PacketsDropped(); ok {
		_spec.SetField(meridianmetric.FieldPacketsDropped, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPacketsDropped(); ok {
		_spec.AddField(meridianmetric.FieldPacketsDropped, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.QueueSize(); ok {
		_spec.SetField(meridianmetric.FieldQueueSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueueSize(); ok {
		_spec.AddField(meridianmetric.FieldQueueSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Blockages(); ok {
		_spec.SetField(meridianmetric.FieldBlockages, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBlockages(); ok {
		_spec.AddField(meridianmetric.FieldBlockages, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ThroughputPerSec(); ok {
		_spec.SetField(meridianmetric.FieldThroughputPerSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThroughputPerSec(); ok {
		_spec.AddField(meridianmetric.FieldThroughputPerSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(meridianmetric.FieldLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(meridianmetric.FieldLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(meridianmetric.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(meridianmetric.FieldErrorRate, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meridianmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeridianMetricUpdateOne is the builder for updating a single MeridianMetric entity.
type MeridianMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeridianMetricMutation
}

// SetMeridianID sets the "meridian_id" field.
func (_u *MeridianMetricUpdateOne) SetMeridianID(v string) *MeridianMetricUpdateOne {
	_u.mutation.SetMeridianID(v)
	return _u
}

// SetNillableMeridianID sets the "meridian_id" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillableMeridianID(v *string) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetMeridianID(*v)
	}
	return _u
}

// SetPacketsSent sets the "packets_sent" field.
func (_u *MeridianMetricUpdateOne) SetPacketsSent(v int64) *MeridianMetricUpdateOne {
	_u.mutation.ResetPacketsSent()
	_u.mutation.SetPacketsSent(v)
	return _u
}

// SetNillablePacketsSent sets the "packets_sent" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillablePacketsSent(v *int64) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetPacketsSent(*v)
	}
	return _u
}

// AddPacketsSent adds value to the "packets_sent" field.
func (_u *MeridianMetricUpdateOne) AddPacketsSent(v int64) *MeridianMetricUpdateOne {
	_u.mutation.AddPacketsSent(v)
	return _u
}

// SetPacketsReceived sets the "packets_received" field.
func (_u *MeridianMetricUpdateOne) SetPacketsReceived(v int64) *MeridianMetricUpdateOne {
	_u.mutation.ResetPacketsReceived()
	_u.mutation.SetPacketsReceived(v)
	return _u
}

// SetNillablePacketsReceived sets the "packets_received" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillablePacketsReceived(v *int64) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetPacketsReceived(*v)
	}
	return _u
}

// AddPacketsReceived adds value to the "packets_received" field.
func (_u *MeridianMetricUpdateOne) AddPacketsReceived(v int64) *MeridianMetricUpdateOne {
	_u.mutation.AddPacketsReceived(v)
	return _u
}

// SetPacketsDropped sets the "packets_dropped" field.
func (_u *MeridianMetricUpdateOne) SetPacketsDropped(v int64) *MeridianMetricUpdateOne {
	_u.mutation.ResetPacketsDropped()
	_u.mutation.SetPacketsDropped(v)
	return _u
}

// SetNillablePacketsDropped sets the "packets_dropped" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillablePacketsDropped(v *int64) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetPacketsDropped(*v)
	}
	return _u
}

// AddPacketsDropped adds value to the "packets_dropped" field.
func (_u *MeridianMetricUpdateOne) AddPacketsDropped(v int64) *MeridianMetricUpdateOne {
	_u.mutation.AddPacketsDropped(v)
	return _u
}

// SetQueueSize sets the "queue_size" field.
func (_u *MeridianMetricUpdateOne) SetQueueSize(v int) *MeridianMetricUpdateOne {
	_u.mutation.ResetQueueSize()
	_u.mutation.SetQueueSize(v)
	return _u
}

// SetNillableQueueSize sets the "queue_size" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillableQueueSize(v *int) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetQueueSize(*v)
	}
	return _u
}

// AddQueueSize adds value to the "queue_size" field.
func (_u *MeridianMetricUpdateOne) AddQueueSize(v int) *MeridianMetricUpdateOne {
	_u.mutation.AddQueueSize(v)
	return _u
}

// SetBlockages sets the "blockages" field.
func (_u *MeridianMetricUpdateOne) SetBlockages(v int64) *MeridianMetricUpdateOne {
	_u.mutation.ResetBlockages()
	_u.mutation.SetBlockages(v)
	return _u
}

// SetNillableBlockages sets the "blockages" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillableBlockages(v *int64) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetBlockages(*v)
	}
	return _u
}

// AddBlockages adds value to the "blockages" field.
func (_u *MeridianMetricUpdateOne) AddBlockages(v int64) *MeridianMetricUpdateOne {
	_u.mutation.AddBlockages(v)
	return _u
}

// SetThroughputPerSec sets the "throughput_per_sec" field.
func (_u *MeridianMetricUpdateOne) SetThroughputPerSec(v float64) *MeridianMetricUpdateOne {
	_u.mutation.ResetThroughputPerSec()
	_u.mutation.SetThroughputPerSec(v)
	return _u
}

// SetNillableThroughputPerSec sets the "throughput_per_sec" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillableThroughputPerSec(v *float64) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetThroughputPerSec(*v)
	}
	return _u
}

// AddThroughputPerSec adds value to the "throughput_per_sec" field.
func (_u *MeridianMetricUpdateOne) AddThroughputPerSec(v float64) *MeridianMetricUpdateOne {
	_u.mutation.AddThroughputPerSec(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *MeridianMetricUpdateOne) SetLatencyMs(v float64) *MeridianMetricUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillableLatencyMs(v *float64) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *MeridianMetricUpdateOne) AddLatencyMs(v float64) *MeridianMetricUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorRate sets the "error_rate" field.
func (_u *MeridianMetricUpdateOne) SetErrorRate(v float64) *MeridianMetricUpdateOne {
	_u.mutation.ResetErrorRate()
	_u.mutation.SetErrorRate(v)
	return _u
}

// SetNillableErrorRate sets the "error_rate" field if the given value is not nil.
func (_u *MeridianMetricUpdateOne) SetNillableErrorRate(v *float64) *MeridianMetricUpdateOne {
	if v != nil {
		_u.SetErrorRate(*v)
	}
	return _u
}

// AddErrorRate adds value to the "error_rate" field.
func (_u *MeridianMetricUpdateOne) AddErrorRate(v float64) *MeridianMetricUpdateOne {
	_u.mutation.AddErrorRate(v)
	return _u
}

// Mutation returns the MeridianMetricMutation object of the builder.
func (_u *MeridianMetricUpdateOne) Mutation() *MeridianMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the MeridianMetricUpdate builder.
func (_u *MeridianMetricUpdateOne) Where(ps ...predicate.MeridianMetric) *MeridianMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeridianMetricUpdateOne) Select(field string, fields ...string) *MeridianMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MeridianMetric entity.
func (_u *MeridianMetricUpdateOne) Save(ctx context.Context) (*MeridianMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeridianMetricUpdateOne) SaveX(ctx context.Context) *MeridianMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeridianMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeridianMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeridianMetricUpdateOne) sqlSave(ctx context.Context) (_node *MeridianMetric, err error) {
	_spec := sqlgraph.NewUpdateSpec(meridianmetric.Table, meridianmetric.Columns, sqlgraph.NewFieldSpec(meridianmetric.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MeridianMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meridianmetric.FieldID)
		for _, f := range fields {
			if !meridianmetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meridianmetric.FieldID {
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
	if value, ok := _u.mutation.MeridianID(); ok {
		_spec.SetField(meridianmetric.FieldMeridianID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PacketsSent(); ok {
		_spec.SetField(meridianmetric.FieldPacketsSent, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPacketsSent(); ok {
		_spec.AddField(meridianmetric.FieldPacketsSent, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PacketsReceived(); ok {
		_spec.SetField(meridianmetric.FieldPacketsReceived, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPacketsReceived(); ok {
		_spec.AddField(meridianmetric.FieldPacketsReceived, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PacketsDropped(); ok {
		_spec.SetField(meridianmetric.FieldPacketsDropped, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPacketsDropped(); ok {
		_spec.AddField(meridianmetric.FieldPacketsDropped, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.QueueSize(); ok {
		_spec.SetField(meridianmetric.FieldQueueSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueueSize(); ok {
		_spec.AddField(meridianmetric.FieldQueueSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Blockages(); ok {
		_spec.SetField(meridianmetric.FieldBlockages, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBlockages(); ok {
		_spec.AddField(meridianmetric.FieldBlockages, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ThroughputPerSec(); ok {
		_spec.SetField(meridianmetric.FieldThroughputPerSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThroughputPerSec(); ok {
		_spec.AddField(meridianmetric.FieldThroughputPerSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(meridianmetric.FieldLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(meridianmetric.FieldLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorRate(); ok {
		_spec.SetField(meridianmetric.FieldErrorRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorRate(); ok {
		_spec.AddField(meridianmetric.FieldErrorRate, field.TypeFloat64, value)
	}
	_node = &MeridianMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meridianmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
