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
	"github.com/jackeyunjie/growthd/ent/datalineage"
)

// DataLineageCreate is the builder for creating a DataLineage entity.
type DataLineageCreate struct {
	config
	mutation *DataLineageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSource sets the "source" field.
func (_c *DataLineageCreate) SetSource(v string) *DataLineageCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *DataLineageCreate) SetSourceType(v datalineage.SourceType) *DataLineageCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DataLineageCreate) SetCreatedAt(v time.Time) *DataLineageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DataLineageCreate) SetNillableCreatedAt(v *time.Time) *DataLineageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastAccessed sets the "last_accessed" field.
func (_c *DataLineageCreate) SetLastAccessed(v time.Time) *DataLineageCreate {
	_c.mutation.SetLastAccessed(v)
	return _c
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_c *DataLineageCreate) SetNillableLastAccessed(v *time.Time) *DataLineageCreate {
	if v != nil {
		_c.SetLastAccessed(*v)
	}
	return _c
}

// SetCurrentTier sets the "current_tier" field.
func (_c *DataLineageCreate) SetCurrentTier(v datalineage.CurrentTier) *DataLineageCreate {
	_c.mutation.SetCurrentTier(v)
	return _c
}

// SetNillableCurrentTier sets the "current_tier" field if the given value is not nil.
func (_c *DataLineageCreate) SetNillableCurrentTier(v *datalineage.CurrentTier) *DataLineageCreate {
	if v != nil {
		_c.SetCurrentTier(*v)
	}
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *DataLineageCreate) SetDependencies(v []string) *DataLineageCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetConsumers sets the "consumers" field.
func (_c *DataLineageCreate) SetConsumers(v []string) *DataLineageCreate {
	_c.mutation.SetConsumers(v)
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *DataLineageCreate) SetQualityScore(v float64) *DataLineageCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *DataLineageCreate) SetNillableQualityScore(v *float64) *DataLineageCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *DataLineageCreate) SetSchemaVersion(v int) *DataLineageCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *DataLineageCreate) SetNillableSchemaVersion(v *int) *DataLineageCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DataLineageCreate) SetID(v string) *DataLineageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DataLineageMutation object of the builder.
func (_c *DataLineageCreate) Mutation() *DataLineageMutation {
	return _c.mutation
}

// Save creates the DataLineage in the database.
func (_c *DataLineageCreate) Save(ctx context.Context) (*DataLineage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DataLineageCreate) SaveX(ctx context.Context) *DataLineage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataLineageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataLineageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DataLineageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := datalineage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastAccessed(); !ok {
		v := datalineage.DefaultLastAccessed()
		_c.mutation.SetLastAccessed(v)
	}
	if _, ok := _c.mutation.CurrentTier(); !ok {
		v := datalineage.DefaultCurrentTier
		_c.mutation.SetCurrentTier(v)
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := datalineage.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DataLineageCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "DataLineage.source"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "DataLineage.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := datalineage.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "DataLineage.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DataLineage.created_at"`)}
	}
	if _, ok := _c.mutation.LastAccessed(); !ok {
		return &ValidationError{Name: "last_accessed", err: errors.New(`ent: missing required field "DataLineage.last_accessed"`)}
	}
	if _, ok := _c.mutation.CurrentTier(); !ok {
		return &ValidationError{Name: "current_tier", err: errors.New(`ent: missing required field "DataLineage.current_tier"`)}
	}
	if v, ok := _c.mutation.CurrentTier(); ok {
		if err := datalineage.CurrentTierValidator(v); err != nil {
			return &ValidationError{Name: "current_tier", err: fmt.Errorf(`ent: validator failed for field "DataLineage.current_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "DataLineage.schema_version"`)}
	}
	return nil
}

func (_c *DataLineageCreate) sqlSave(ctx context.Context) (*DataLineage, error) {
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
			return nil, fmt.Errorf("unexpected DataLineage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DataLineageCreate) createSpec() (*DataLineage, *sqlgraph.CreateSpec) {
	var (
		_node = &DataLineage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(datalineage.Table, sqlgraph.NewFieldSpec(datalineage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(datalineage.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(datalineage.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(datalineage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastAccessed(); ok {
		_spec.SetField(datalineage.FieldLastAccessed, field.TypeTime, value)
		_node.LastAccessed = value
	}
	if value, ok := _c.mutation.CurrentTier(); ok {
		_spec.SetField(datalineage.FieldCurrentTier, field.TypeEnum, value)
		_node.CurrentTier = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(datalineage.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.Consumers(); ok {
		_spec.SetField(datalineage.FieldConsumers, field.TypeJSON, value)
		_node.Consumers = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(datalineage.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = &value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(datalineage.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DataLineage.Create().
//		SetSource(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DataLineageUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *DataLineageCreate) OnConflict(opts ...sql.ConflictOption) *DataLineageUpsertOne {
	_c.conflict = opts
	return &DataLineageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DataLineage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DataLineageCreate) OnConflictColumns(columns ...string) *DataLineageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DataLineageUpsertOne{
		create: _c,
	}
}

type (
	// DataLineageUpsertOne is the builder for "upsert"-ing
	//  one DataLineage node.
	DataLineageUpsertOne struct {
		create *DataLineageCreate
	}

	// DataLineageUpsert is the "OnConflict" setter.
	DataLineageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSource sets the "source" field.
func (u *DataLineageUpsert) SetSource(v string) *DataLineageUpsert {
	u.Set(datalineage.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DataLineageUpsert) UpdateSource() *DataLineageUpsert {
	u.SetExcluded(datalineage.FieldSource)
	return u
}

// SetSourceType sets the "source_type" field.
func (u *DataLineageUpsert) SetSourceType(v datalineage.SourceType) *DataLineageUpsert {
	u.Set(datalineage.FieldSourceType, v)
	return u
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *DataLineageUpsert) UpdateSourceType() *DataLineageUpsert {
	u.SetExcluded(datalineage.FieldSourceType)
	return u
}

// SetLastAccessed sets the "last_accessed" field.
func (u *DataLineageUpsert) SetLastAccessed(v time.Time) *DataLineageUpsert {
	u.Set(datalineage.FieldLastAccessed, v)
	return u
}

// UpdateLastAccessed sets the "last_accessed" field to the value that was provided on create.
func (u *DataLineageUpsert) UpdateLastAccessed() *DataLineageUpsert {
	u.SetExcluded(datalineage.FieldLastAccessed)
	return u
}

// SetCurrentTier sets the "current_tier" field.
func (u *DataLineageUpsert) SetCurrentTier(v datalineage.CurrentTier) *DataLineageUpsert {
	u.Set(datalineage.FieldCurrentTier, v)
	return u
}

// UpdateCurrentTier sets the "current_tier" field to the value that was provided on create.
func (u *DataLineageUpsert) UpdateCurrentTier() *DataLineageUpsert {
	u.SetExcluded(datalineage.FieldCurrentTier)
	return u
}

// SetDependencies sets the "dependencies" field.
func (u *DataLineageUpsert) SetDependencies(v []string) *DataLineageUpsert {
	u.Set(datalineage.FieldDependencies, v)
	return u
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *DataLineageUpsert) UpdateDependencies() *DataLineageUpsert {
	u.SetExcluded(datalineage.FieldDependencies)
	return u
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *DataLineageUpsert) ClearDependencies() *DataLineageUpsert {
	u.SetNull(datalineage.FieldDependencies)
	return u
}

// SetConsumers sets the "consumers" field.
func (u *DataLineageUpsert) SetConsumers(v []string) *DataLineageUpsert {
	u.Set(datalineage.FieldConsumers, v)
	return u
}

// UpdateConsumers sets the "consumers" field to the value that was provided on create.
func (u *DataLineageUpsert) UpdateConsumers() *DataLineageUpsert {
	u.SetExcluded(datalineage.FieldConsumers)
	return u
}

// ClearConsumers clears the value of the "consumers" field.
func (u *DataLineageUpsert) ClearConsumers() *DataLineageUpsert {
	u.SetNull(datalineage.FieldConsumers)
	return u
}

// SetQualityScore sets the "quality_score" field.
func (u *DataLineageUpsert) SetQualityScore(v float64) *DataLineageUpsert {
	u.Set(datalineage.FieldQualityScore, v)
	return u
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *DataLineageUpsert) UpdateQualityScore() *DataLineageUpsert {
	u.SetExcluded(datalineage.FieldQualityScore)
	return u
}

// AddQualityScore adds v to the "quality_score" field.
func (u *DataLineageUpsert) AddQualityScore(v float64) *DataLineageUpsert {
	u.Add(datalineage.FieldQualityScore, v)
	return u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *DataLineageUpsert) ClearQualityScore() *DataLineageUpsert {
	u.SetNull(datalineage.FieldQualityScore)
	return u
}

// SetSchemaVersion sets the "schema_version" field.
func (u *DataLineageUpsert) SetSchemaVersion(v int) *DataLineageUpsert {
	u.Set(datalineage.FieldSchemaVersion, v)
	return u
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *DataLineageUpsert) UpdateSchemaVersion() *DataLineageUpsert {
	u.SetExcluded(datalineage.FieldSchemaVersion)
	return u
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *DataLineageUpsert) AddSchemaVersion(v int) *DataLineageUpsert {
	u.Add(datalineage.FieldSchemaVersion, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DataLineage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(datalineage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DataLineageUpsertOne) UpdateNewValues() *DataLineageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(datalineage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(datalineage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DataLineage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DataLineageUpsertOne) Ignore() *DataLineageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DataLineageUpsertOne) DoNothing() *DataLineageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DataLineageCreate.OnConflict
// documentation for more info.
func (u *DataLineageUpsertOne) Update(set func(*DataLineageUpsert)) *DataLineageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DataLineageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *DataLineageUpsertOne) SetSource(v string) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DataLineageUpsertOne) UpdateSource() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateSource()
	})
}

// SetSourceType sets the "source_type" field.
func (u *DataLineageUpsertOne) SetSourceType(v datalineage.SourceType) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *DataLineageUpsertOne) UpdateSourceType() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateSourceType()
	})
}

// SetLastAccessed sets the "last_accessed" field.
func (u *DataLineageUpsertOne) SetLastAccessed(v time.Time) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetLastAccessed(v)
	})
}

// UpdateLastAccessed sets the "last_accessed" field to the value that was provided on create.
func (u *DataLineageUpsertOne) UpdateLastAccessed() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateLastAccessed()
	})
}

// SetCurrentTier sets the "current_tier" field.
func (u *DataLineageUpsertOne) SetCurrentTier(v datalineage.CurrentTier) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetCurrentTier(v)
	})
}

// UpdateCurrentTier sets the "current_tier" field to the value that was provided on create.
func (u *DataLineageUpsertOne) UpdateCurrentTier() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateCurrentTier()
	})
}

// SetDependencies sets the "dependencies" field.
func (u *DataLineageUpsertOne) SetDependencies(v []string) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetDependencies(v)
	})
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *DataLineageUpsertOne) UpdateDependencies() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateDependencies()
	})
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *DataLineageUpsertOne) ClearDependencies() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.ClearDependencies()
	})
}

// SetConsumers sets the "consumers" field.
func (u *DataLineageUpsertOne) SetConsumers(v []string) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetConsumers(v)
	})
}

// UpdateConsumers sets the "consumers" field to the value that was provided on create.
func (u *DataLineageUpsertOne) UpdateConsumers() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateConsumers()
	})
}

// ClearConsumers clears the value of the "consumers" field.
func (u *DataLineageUpsertOne) ClearConsumers() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.ClearConsumers()
	})
}

// SetQualityScore sets the "quality_score" field.
func (u *DataLineageUpsertOne) SetQualityScore(v float64) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetQualityScore(v)
	})
}

// AddQualityScore adds v to the "quality_score" field.
func (u *DataLineageUpsertOne) AddQualityScore(v float64) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.AddQualityScore(v)
	})
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *DataLineageUpsertOne) UpdateQualityScore() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateQualityScore()
	})
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *DataLineageUpsertOne) ClearQualityScore() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.ClearQualityScore()
	})
}

// SetSchemaVersion sets the "schema_version" field.
func (u *DataLineageUpsertOne) SetSchemaVersion(v int) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetSchemaVersion(v)
	})
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *DataLineageUpsertOne) AddSchemaVersion(v int) *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.AddSchemaVersion(v)
	})
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *DataLineageUpsertOne) UpdateSchemaVersion() *DataLineageUpsertOne {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateSchemaVersion()
	})
}

// Exec executes the query.
func (u *DataLineageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DataLineageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DataLineageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DataLineageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DataLineageUpsertOne.ID is not supported by MySQL driver. Use DataLineageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DataLineageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DataLineageCreateBulk is the builder for creating many DataLineage entities in bulk.
type DataLineageCreateBulk struct {
	config
	err      error
	builders []*DataLineageCreate
	conflict []sql.ConflictOption
}

// Save creates the DataLineage entities in the database.
func (_c *DataLineageCreateBulk) Save(ctx context.Context) ([]*DataLineage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DataLineage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataLineageMutation)
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
func (_c *DataLineageCreateBulk) SaveX(ctx context.Context) []*DataLineage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataLineageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataLineageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DataLineage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DataLineageUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *DataLineageCreateBulk) OnConflict(opts ...sql.ConflictOption) *DataLineageUpsertBulk {
	_c.conflict = opts
	return &DataLineageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DataLineage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DataLineageCreateBulk) OnConflictColumns(columns ...string) *DataLineageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DataLineageUpsertBulk{
		create: _c,
	}
}

// DataLineageUpsertBulk is the builder for "upsert"-ing
// a bulk of DataLineage nodes.
type DataLineageUpsertBulk struct {
	create *DataLineageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DataLineage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(datalineage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DataLineageUpsertBulk) UpdateNewValues() *DataLineageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(datalineage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(datalineage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DataLineage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DataLineageUpsertBulk) Ignore() *DataLineageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DataLineageUpsertBulk) DoNothing() *DataLineageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DataLineageCreateBulk.OnConflict
// documentation for more info.
func (u *DataLineageUpsertBulk) Update(set func(*DataLineageUpsert)) *DataLineageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DataLineageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *DataLineageUpsertBulk) SetSource(v string) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DataLineageUpsertBulk) UpdateSource() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateSource()
	})
}

// SetSourceType sets the "source_type" field.
func (u *DataLineageUpsertBulk) SetSourceType(v datalineage.SourceType) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *DataLineageUpsertBulk) UpdateSourceType() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateSourceType()
	})
}

// SetLastAccessed sets the "last_accessed" field.
func (u *DataLineageUpsertBulk) SetLastAccessed(v time.Time) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetLastAccessed(v)
	})
}

// UpdateLastAccessed sets the "last_accessed" field to the value that was provided on create.
func (u *DataLineageUpsertBulk) UpdateLastAccessed() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateLastAccessed()
	})
}

// SetCurrentTier sets the "current_tier" field.
func (u *DataLineageUpsertBulk) SetCurrentTier(v datalineage.CurrentTier) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetCurrentTier(v)
	})
}

// UpdateCurrentTier sets the "current_tier" field to the value that was provided on create.
func (u *DataLineageUpsertBulk) UpdateCurrentTier() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateCurrentTier()
	})
}

// SetDependencies sets the "dependencies" field.
func (u *DataLineageUpsertBulk) SetDependencies(v []string) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetDependencies(v)
	})
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *DataLineageUpsertBulk) UpdateDependencies() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateDependencies()
	})
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *DataLineageUpsertBulk) ClearDependencies() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.ClearDependencies()
	})
}

// SetConsumers sets the "consumers" field.
func (u *DataLineageUpsertBulk) SetConsumers(v []string) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetConsumers(v)
	})
}

// UpdateConsumers sets the "consumers" field to the value that was provided on create.
func (u *DataLineageUpsertBulk) UpdateConsumers() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateConsumers()
	})
}

// ClearConsumers clears the value of the "consumers" field.
func (u *DataLineageUpsertBulk) ClearConsumers() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.ClearConsumers()
	})
}

// SetQualityScore sets the "quality_score" field.
func (u *DataLineageUpsertBulk) SetQualityScore(v float64) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetQualityScore(v)
	})
}

// AddQualityScore adds v to the "quality_score" field.
func (u *DataLineageUpsertBulk) AddQualityScore(v float64) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.AddQualityScore(v)
	})
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *DataLineageUpsertBulk) UpdateQualityScore() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateQualityScore()
	})
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *DataLineageUpsertBulk) ClearQualityScore() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.ClearQualityScore()
	})
}

// SetSchemaVersion sets the "schema_version" field.
func (u *DataLineageUpsertBulk) SetSchemaVersion(v int) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.SetSchemaVersion(v)
	})
}

// AddSchemaVersion adds v to the "schema_version" field.
func (u *DataLineageUpsertBulk) AddSchemaVersion(v int) *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.AddSchemaVersion(v)
	})
}

// UpdateSchemaVersion sets the "schema_version" field to the value that was provided on create.
func (u *DataLineageUpsertBulk) UpdateSchemaVersion() *DataLineageUpsertBulk {
	return u.Update(func(s *DataLineageUpsert) {
		s.UpdateSchemaVersion()
	})
}

// Exec executes the query.
func (u *DataLineageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DataLineageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DataLineageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DataLineageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
