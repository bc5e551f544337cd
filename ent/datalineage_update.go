// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jackeyunjie/growthd/ent/datalineage"
	"github.com/jackeyunjie/growthd/ent/predicate"
)

// DataLineageUpdate is the builder for updating DataLineage entities.
type DataLineageUpdate struct {
	config
	hooks    []Hook
	mutation *DataLineageMutation
}

// Where appends a list predicates to the DataLineageUpdate builder.
func (_u *DataLineageUpdate) Where(ps ...predicate.DataLineage) *DataLineageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *DataLineageUpdate) SetSource(v string) *DataLineageUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DataLineageUpdate) SetNillableSource(v *string) *DataLineageUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DataLineageUpdate) SetSourceType(v datalineage.SourceType) *DataLineageUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DataLineageUpdate) SetNillableSourceType(v *datalineage.SourceType) *DataLineageUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *DataLineageUpdate) SetLastAccessed(v time.Time) *DataLineageUpdate {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *DataLineageUpdate) SetNillableLastAccessed(v *time.Time) *DataLineageUpdate {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// SetCurrentTier sets the "current_tier" field.
func (_u *DataLineageUpdate) SetCurrentTier(v datalineage.CurrentTier) *DataLineageUpdate {
	_u.mutation.SetCurrentTier(v)
	return _u
}

// SetNillableCurrentTier sets the "current_tier" field if the given value is not nil.
func (_u *DataLineageUpdate) SetNillableCurrentTier(v *datalineage.CurrentTier) *DataLineageUpdate {
	if v != nil {
		_u.SetCurrentTier(*v)
	}
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *DataLineageUpdate) SetDependencies(v []string) *DataLineageUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *DataLineageUpdate) AppendDependencies(v []string) *DataLineageUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *DataLineageUpdate) ClearDependencies() *DataLineageUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetConsumers sets the "consumers" field.
func (_u *DataLineageUpdate) SetConsumers(v []string) *DataLineageUpdate {
	_u.mutation.SetConsumers(v)
	return _u
}

// AppendConsumers appends value to the "consumers" field.
func (_u *DataLineageUpdate) AppendConsumers(v []string) *DataLineageUpdate {
	_u.mutation.AppendConsumers(v)
	return _u
}

// ClearConsumers clears the value of the "consumers" field.
func (_u *DataLineageUpdate) ClearConsumers() *DataLineageUpdate {
	_u.mutation.ClearConsumers()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *DataLineageUpdate) SetQualityScore(v float64) *DataLineageUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *DataLineageUpdate) SetNillableQualityScore(v *float64) *DataLineageUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *DataLineageUpdate) AddQualityScore(v float64) *DataLineageUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *DataLineageUpdate) ClearQualityScore() *DataLineageUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *DataLineageUpdate) SetSchemaVersion(v int) *DataLineageUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *DataLineageUpdate) SetNillableSchemaVersion(v *int) *DataLineageUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *DataLineageUpdate) AddSchemaVersion(v int) *DataLineageUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// Mutation returns the DataLineageMutation object of the builder.
func (_u *DataLineageUpdate) Mutation() *DataLineageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DataLineageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataLineageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DataLineageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataLineageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataLineageUpdate) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := datalineage.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "DataLineage.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentTier(); ok {
		if err := datalineage.CurrentTierValidator(v); err != nil {
			return &ValidationError{Name: "current_tier", err: fmt.Errorf(`ent: validator failed for field "DataLineage.current_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *DataLineageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datalineage.Table, datalineage.Columns, sqlgraph.NewFieldSpec(datalineage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(datalineage.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(datalineage.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(datalineage.FieldLastAccessed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CurrentTier(); ok {
		_spec.SetField(datalineage.FieldCurrentTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(datalineage.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, datalineage.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(datalineage.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Consumers(); ok {
		_spec.SetField(datalineage.FieldConsumers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsumers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, datalineage.FieldConsumers, value)
		})
	}
	if _u.mutation.ConsumersCleared() {
		_spec.ClearField(datalineage.FieldConsumers, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(datalineage.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(datalineage.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(datalineage.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(datalineage.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(datalineage.FieldSchemaVersion, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datalineage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DataLineageUpdateOne is the builder for updating a single DataLineage entity.
type DataLineageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataLineageMutation
}

// SetSource sets the "source" field.
func (_u *DataLineageUpdateOne) SetSource(v string) *DataLineageUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DataLineageUpdateOne) SetNillableSource(v *string) *DataLineageUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DataLineageUpdateOne) SetSourceType(v datalineage.SourceType) *DataLineageUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DataLineageUpdateOne) SetNillableSourceType(v *datalineage.SourceType) *DataLineageUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *DataLineageUpdateOne) SetLastAccessed(v time.Time) *DataLineageUpdateOne {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *DataLineageUpdateOne) SetNillableLastAccessed(v *time.Time) *DataLineageUpdateOne {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// SetCurrentTier sets the "current_tier" field.
func (_u *DataLineageUpdateOne) SetCurrentTier(v datalineage.CurrentTier) *DataLineageUpdateOne {
	_u.mutation.SetCurrentTier(v)
	return _u
}

// SetNillableCurrentTier sets the "current_tier" field if the given value is not nil.
func (_u *DataLineageUpdateOne) SetNillableCurrentTier(v *datalineage.CurrentTier) *DataLineageUpdateOne {
	if v != nil {
		_u.SetCurrentTier(*v)
	}
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *DataLineageUpdateOne) SetDependencies(v []string) *DataLineageUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *DataLineageUpdateOne) AppendDependencies(v []string) *DataLineageUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *DataLineageUpdateOne) ClearDependencies() *DataLineageUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetConsumers sets the "consumers" field.
func (_u *DataLineageUpdateOne) SetConsumers(v []string) *DataLineageUpdateOne {
	_u.mutation.SetConsumers(v)
	return _u
}

// AppendConsumers appends value to the "consumers" field.
func (_u *DataLineageUpdateOne) AppendConsumers(v []string) *DataLineageUpdateOne {
	_u.mutation.AppendConsumers(v)
	return _u
}

// ClearConsumers clears the value of the "consumers" field.
func (_u *DataLineageUpdateOne) ClearConsumers() *DataLineageUpdateOne {
	_u.mutation.ClearConsumers()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *DataLineageUpdateOne) SetQualityScore(v float64) *DataLineageUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *DataLineageUpdateOne) SetNillableQualityScore(v *float64) *DataLineageUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *DataLineageUpdateOne) AddQualityScore(v float64) *DataLineageUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *DataLineageUpdateOne) ClearQualityScore() *DataLineageUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *DataLineageUpdateOne) SetSchemaVersion(v int) *DataLineageUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *DataLineageUpdateOne) SetNillableSchemaVersion(v *int) *DataLineageUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *DataLineageUpdateOne) AddSchemaVersion(v int) *DataLineageUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// Mutation returns the DataLineageMutation object of the builder.
func (_u *DataLineageUpdateOne) Mutation() *DataLineageMutation {
	return _u.mutation
}

// Where appends a list predicates to the DataLineageUpdate builder.
func (_u *DataLineageUpdateOne) Where(ps ...predicate.DataLineage) *DataLineageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DataLineageUpdateOne) Select(field string, fields ...string) *DataLineageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DataLineage entity.
func (_u *DataLineageUpdateOne) Save(ctx context.Context) (*DataLineage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataLineageUpdateOne) SaveX(ctx context.Context) *DataLineage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DataLineageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataLineageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataLineageUpdateOne) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := datalineage.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "DataLineage.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentTier(); ok {
		if err := datalineage.CurrentTierValidator(v); err != nil {
			return &ValidationError{Name: "current_tier", err: fmt.Errorf(`ent: validator failed for field "DataLineage.current_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *DataLineageUpdateOne) sqlSave(ctx context.Context) (_node *DataLineage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datalineage.Table, datalineage.Columns, sqlgraph.NewFieldSpec(datalineage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataLineage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datalineage.FieldID)
		for _, f := range fields {
			if !datalineage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datalineage.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(datalineage.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(datalineage.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(datalineage.FieldLastAccessed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CurrentTier(); ok {
		_spec.SetField(datalineage.FieldCurrentTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(datalineage.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, datalineage.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(datalineage.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Consumers(); ok {
		_spec.SetField(datalineage.FieldConsumers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsumers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, datalineage.FieldConsumers, value)
		})
	}
	if _u.mutation.ConsumersCleared() {
		_spec.ClearField(datalineage.FieldConsumers, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(datalineage.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(datalineage.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(datalineage.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(datalineage.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(datalineage.FieldSchemaVersion, field.TypeInt, value)
	}
	_node = &DataLineage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datalineage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
