// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/agentstate"
	"github.com/jackeyunjie/growthd/ent/cellstate"
	"github.com/jackeyunjie/growthd/ent/datalineage"
	"github.com/jackeyunjie/growthd/ent/meridianmetric"
	"github.com/jackeyunjie/growthd/ent/predicate"
	"github.com/jackeyunjie/growthd/ent/triggerrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentState     = "AgentState"
	TypeCellState      = "CellState"
	TypeDataLineage    = "DataLineage"
	TypeMeridianMetric = "MeridianMetric"
	TypeTriggerRecord  = "TriggerRecord"
)

// AgentStateMutation represents an operation that mutates the AgentState nodes in the graph.
type AgentStateMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	name                    *string
	status                  *agentstate.Status
	energy_level            *float64
	addenergy_level         *float64
	stress_level            *float64
	addstress_level         *float64
	tasks_completed         *int
	addtasks_completed      *int
	tasks_failed            *int
	addtasks_failed         *int
	avg_response_time_ms    *int64
	addavg_response_time_ms *int64
	last_executed           *time.Time
	skill_states            *map[string]interface{}
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*AgentState, error)
	predicates              []predicate.AgentState
}

var _ ent.Mutation = (*AgentStateMutation)(nil)

// agentstateOption allows management of the mutation configuration using functional options.
type agentstateOption func(*AgentStateMutation)

// newAgentStateMutation creates new mutation for the AgentState entity.
func newAgentStateMutation(c config, op Op, opts ...agentstateOption) *AgentStateMutation {
	m := &AgentStateMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStateID sets the ID field of the mutation.
func withAgentStateID(id string) agentstateOption {
	return func(m *AgentStateMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentState
		)
		m.oldValue = func(ctx context.Context) (*AgentState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentState sets the old AgentState of the mutation.
func withAgentState(node *AgentState) agentstateOption {
	return func(m *AgentStateMutation) {
		m.oldValue = func(context.Context) (*AgentState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentState entities.
func (m *AgentStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentStateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentStateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentStateMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *AgentStateMutation) SetStatus(a agentstate.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentStateMutation) Status() (r agentstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldStatus(ctx context.Context) (v agentstate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentStateMutation) ResetStatus() {
	m.status = nil
}

// SetEnergyLevel sets the "energy_level" field.
func (m *AgentStateMutation) SetEnergyLevel(f float64) {
	m.energy_level = &f
	m.addenergy_level = nil
}

// EnergyLevel returns the value of the "energy_level" field in the mutation.
func (m *AgentStateMutation) EnergyLevel() (r float64, exists bool) {
	v := m.energy_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEnergyLevel returns the old "energy_level" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldEnergyLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnergyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnergyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnergyLevel: %w", err)
	}
	return oldValue.EnergyLevel, nil
}

// AddEnergyLevel adds f to the "energy_level" field.
func (m *AgentStateMutation) AddEnergyLevel(f float64) {
	if m.addenergy_level != nil {
		*m.addenergy_level += f
	} else {
		m.addenergy_level = &f
	}
}

// AddedEnergyLevel returns the value that was added to the "energy_level" field in this mutation.
func (m *AgentStateMutation) AddedEnergyLevel() (r float64, exists bool) {
	v := m.addenergy_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetEnergyLevel resets all changes to the "energy_level" field.
func (m *AgentStateMutation) ResetEnergyLevel() {
	m.energy_level = nil
	m.addenergy_level = nil
}

// SetStressLevel sets the "stress_level" field.
func (m *AgentStateMutation) SetStressLevel(f float64) {
	m.stress_level = &f
	m.addstress_level = nil
}

// StressLevel returns the value of the "stress_level" field in the mutation.
func (m *AgentStateMutation) StressLevel() (r float64, exists bool) {
	v := m.stress_level
	if v == nil {
		return
	}
	return *v, true
}

// OldStressLevel returns the old "stress_level" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldStressLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStressLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStressLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStressLevel: %w", err)
	}
	return oldValue.StressLevel, nil
}

// AddStressLevel adds f to the "stress_level" field.
func (m *AgentStateMutation) AddStressLevel(f float64) {
	if m.addstress_level != nil {
		*m.addstress_level += f
	} else {
		m.addstress_level = &f
	}
}

// AddedStressLevel returns the value that was added to the "stress_level" field in this mutation.
func (m *AgentStateMutation) AddedStressLevel() (r float64, exists bool) {
	v := m.addstress_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetStressLevel resets all changes to the "stress_level" field.
func (m *AgentStateMutation) ResetStressLevel() {
	m.stress_level = nil
	m.addstress_level = nil
}

// SetTasksCompleted sets the "tasks_completed" field.
func (m *AgentStateMutation) SetTasksCompleted(i int) {
	m.tasks_completed = &i
	m.addtasks_completed = nil
}

// TasksCompleted returns the value of the "tasks_completed" field in the mutation.
func (m *AgentStateMutation) TasksCompleted() (r int, exists bool) {
	v := m.tasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCompleted returns the old "tasks_completed" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldTasksCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCompleted: %w", err)
	}
	return oldValue.TasksCompleted, nil
}

// AddTasksCompleted adds i to the "tasks_completed" field.
func (m *AgentStateMutation) AddTasksCompleted(i int) {
	if m.addtasks_completed != nil {
		*m.addtasks_completed += i
	} else {
		m.addtasks_completed = &i
	}
}

// AddedTasksCompleted returns the value that was added to the "tasks_completed" field in this mutation.
func (m *AgentStateMutation) AddedTasksCompleted() (r int, exists bool) {
	v := m.addtasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCompleted resets all changes to the "tasks_completed" field.
func (m *AgentStateMutation) ResetTasksCompleted() {
	m.tasks_completed = nil
	m.addtasks_completed = nil
}

// SetTasksFailed sets the "tasks_failed" field.
func (m *AgentStateMutation) SetTasksFailed(i int) {
	m.tasks_failed = &i
	m.addtasks_failed = nil
}

// TasksFailed returns the value of the "tasks_failed" field in the mutation.
func (m *AgentStateMutation) TasksFailed() (r int, exists bool) {
	v := m.tasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksFailed returns the old "tasks_failed" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldTasksFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksFailed: %w", err)
	}
	return oldValue.TasksFailed, nil
}

// AddTasksFailed adds i to the "tasks_failed" field.
func (m *AgentStateMutation) AddTasksFailed(i int) {
	if m.addtasks_failed != nil {
		*m.addtasks_failed += i
	} else {
		m.addtasks_failed = &i
	}
}

// AddedTasksFailed returns the value that was added to the "tasks_failed" field in this mutation.
func (m *AgentStateMutation) AddedTasksFailed() (r int, exists bool) {
	v := m.addtasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksFailed resets all changes to the "tasks_failed" field.
func (m *AgentStateMutation) ResetTasksFailed() {
	m.tasks_failed = nil
	m.addtasks_failed = nil
}

// SetAvgResponseTimeMs sets the "avg_response_time_ms" field.
func (m *AgentStateMutation) SetAvgResponseTimeMs(i int64) {
	m.avg_response_time_ms = &i
	m.addavg_response_time_ms = nil
}

// AvgResponseTimeMs returns the value of the "avg_response_time_ms" field in the mutation.
func (m *AgentStateMutation) AvgResponseTimeMs() (r int64, exists bool) {
	v := m.avg_response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgResponseTimeMs returns the old "avg_response_time_ms" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldAvgResponseTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgResponseTimeMs: %w", err)
	}
	return oldValue.AvgResponseTimeMs, nil
}

// AddAvgResponseTimeMs adds i to the "avg_response_time_ms" field.
func (m *AgentStateMutation) AddAvgResponseTimeMs(i int64) {
	if m.addavg_response_time_ms != nil {
		*m.addavg_response_time_ms += i
	} else {
		m.addavg_response_time_ms = &i
	}
}

// AddedAvgResponseTimeMs returns the value that was added to the "avg_response_time_ms" field in this mutation.
func (m *AgentStateMutation) AddedAvgResponseTimeMs() (r int64, exists bool) {
	v := m.addavg_response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgResponseTimeMs resets all changes to the "avg_response_time_ms" field.
func (m *AgentStateMutation) ResetAvgResponseTimeMs() {
	m.avg_response_time_ms = nil
	m.addavg_response_time_ms = nil
}

// SetLastExecuted sets the "last_executed" field.
func (m *AgentStateMutation) SetLastExecuted(t time.Time) {
	m.last_executed = &t
}

// LastExecuted returns the value of the "last_executed" field in the mutation.
func (m *AgentStateMutation) LastExecuted() (r time.Time, exists bool) {
	v := m.last_executed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExecuted returns the old "last_executed" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldLastExecuted(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExecuted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExecuted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExecuted: %w", err)
	}
	return oldValue.LastExecuted, nil
}

// ClearLastExecuted clears the value of the "last_executed" field.
func (m *AgentStateMutation) ClearLastExecuted() {
	m.last_executed = nil
	m.clearedFields[agentstate.FieldLastExecuted] = struct{}{}
}

// LastExecutedCleared returns if the "last_executed" field was cleared in this mutation.
func (m *AgentStateMutation) LastExecutedCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldLastExecuted]
	return ok
}

// ResetLastExecuted resets all changes to the "last_executed" field.
func (m *AgentStateMutation) ResetLastExecuted() {
	m.last_executed = nil
	delete(m.clearedFields, agentstate.FieldLastExecuted)
}

// SetSkillStates sets the "skill_states" field.
func (m *AgentStateMutation) SetSkillStates(value map[string]interface{}) {
	m.skill_states = &value
}

// SkillStates returns the value of the "skill_states" field in the mutation.
func (m *AgentStateMutation) SkillStates() (r map[string]interface{}, exists bool) {
	v := m.skill_states
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillStates returns the old "skill_states" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldSkillStates(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillStates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillStates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillStates: %w", err)
	}
	return oldValue.SkillStates, nil
}

// ClearSkillStates clears the value of the "skill_states" field.
func (m *AgentStateMutation) ClearSkillStates() {
	m.skill_states = nil
	m.clearedFields[agentstate.FieldSkillStates] = struct{}{}
}

// SkillStatesCleared returns if the "skill_states" field was cleared in this mutation.
func (m *AgentStateMutation) SkillStatesCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldSkillStates]
	return ok
}

// ResetSkillStates resets all changes to the "skill_states" field.
func (m *AgentStateMutation) ResetSkillStates() {
	m.skill_states = nil
	delete(m.clearedFields, agentstate.FieldSkillStates)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentStateMutation builder.
func (m *AgentStateMutation) Where(ps ...predicate.AgentState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentState).
func (m *AgentStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, agentstate.FieldName)
	}
	if m.status != nil {
		fields = append(fields, agentstate.FieldStatus)
	}
	if m.energy_level != nil {
		fields = append(fields, agentstate.FieldEnergyLevel)
	}
	if m.stress_level != nil {
		fields = append(fields, agentstate.FieldStressLevel)
	}
	if m.tasks_completed != nil {
		fields = append(fields, agentstate.FieldTasksCompleted)
	}
	if m.tasks_failed != nil {
		fields = append(fields, agentstate.FieldTasksFailed)
	}
	if m.avg_response_time_ms != nil {
		fields = append(fields, agentstate.FieldAvgResponseTimeMs)
	}
	if m.last_executed != nil {
		fields = append(fields, agentstate.FieldLastExecuted)
	}
	if m.skill_states != nil {
		fields = append(fields, agentstate.FieldSkillStates)
	}
	if m.created_at != nil {
		fields = append(fields, agentstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldName:
		return m.Name()
	case agentstate.FieldStatus:
		return m.Status()
	case agentstate.FieldEnergyLevel:
		return m.EnergyLevel()
	case agentstate.FieldStressLevel:
		return m.StressLevel()
	case agentstate.FieldTasksCompleted:
		return m.TasksCompleted()
	case agentstate.FieldTasksFailed:
		return m.TasksFailed()
	case agentstate.FieldAvgResponseTimeMs:
		return m.AvgResponseTimeMs()
	case agentstate.FieldLastExecuted:
		return m.LastExecuted()
	case agentstate.FieldSkillStates:
		return m.SkillStates()
	case agentstate.FieldCreatedAt:
		return m.CreatedAt()
	case agentstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstate.FieldName:
		return m.OldName(ctx)
	case agentstate.FieldStatus:
		return m.OldStatus(ctx)
	case agentstate.FieldEnergyLevel:
		return m.OldEnergyLevel(ctx)
	case agentstate.FieldStressLevel:
		return m.OldStressLevel(ctx)
	case agentstate.FieldTasksCompleted:
		return m.OldTasksCompleted(ctx)
	case agentstate.FieldTasksFailed:
		return m.OldTasksFailed(ctx)
	case agentstate.FieldAvgResponseTimeMs:
		return m.OldAvgResponseTimeMs(ctx)
	case agentstate.FieldLastExecuted:
		return m.OldLastExecuted(ctx)
	case agentstate.FieldSkillStates:
		return m.OldSkillStates(ctx)
	case agentstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentstate.FieldStatus:
		v, ok := value.(agentstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentstate.FieldEnergyLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnergyLevel(v)
		return nil
	case agentstate.FieldStressLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStressLevel(v)
		return nil
	case agentstate.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCompleted(v)
		return nil
	case agentstate.FieldTasksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksFailed(v)
		return nil
	case agentstate.FieldAvgResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgResponseTimeMs(v)
		return nil
	case agentstate.FieldLastExecuted:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExecuted(v)
		return nil
	case agentstate.FieldSkillStates:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillStates(v)
		return nil
	case agentstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStateMutation) AddedFields() []string {
	var fields []string
	if m.addenergy_level != nil {
		fields = append(fields, agentstate.FieldEnergyLevel)
	}
	if m.addstress_level != nil {
		fields = append(fields, agentstate.FieldStressLevel)
	}
	if m.addtasks_completed != nil {
		fields = append(fields, agentstate.FieldTasksCompleted)
	}
	if m.addtasks_failed != nil {
		fields = append(fields, agentstate.FieldTasksFailed)
	}
	if m.addavg_response_time_ms != nil {
		fields = append(fields, agentstate.FieldAvgResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldEnergyLevel:
		return m.AddedEnergyLevel()
	case agentstate.FieldStressLevel:
		return m.AddedStressLevel()
	case agentstate.FieldTasksCompleted:
		return m.AddedTasksCompleted()
	case agentstate.FieldTasksFailed:
		return m.AddedTasksFailed()
	case agentstate.FieldAvgResponseTimeMs:
		return m.AddedAvgResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldEnergyLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnergyLevel(v)
		return nil
	case agentstate.FieldStressLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStressLevel(v)
		return nil
	case agentstate.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCompleted(v)
		return nil
	case agentstate.FieldTasksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksFailed(v)
		return nil
	case agentstate.FieldAvgResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstate.FieldLastExecuted) {
		fields = append(fields, agentstate.FieldLastExecuted)
	}
	if m.FieldCleared(agentstate.FieldSkillStates) {
		fields = append(fields, agentstate.FieldSkillStates)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStateMutation) ClearField(name string) error {
	switch name {
	case agentstate.FieldLastExecuted:
		m.ClearLastExecuted()
		return nil
	case agentstate.FieldSkillStates:
		m.ClearSkillStates()
		return nil
	}
	return fmt.Errorf("unknown AgentState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStateMutation) ResetField(name string) error {
	switch name {
	case agentstate.FieldName:
		m.ResetName()
		return nil
	case agentstate.FieldStatus:
		m.ResetStatus()
		return nil
	case agentstate.FieldEnergyLevel:
		m.ResetEnergyLevel()
		return nil
	case agentstate.FieldStressLevel:
		m.ResetStressLevel()
		return nil
	case agentstate.FieldTasksCompleted:
		m.ResetTasksCompleted()
		return nil
	case agentstate.FieldTasksFailed:
		m.ResetTasksFailed()
		return nil
	case agentstate.FieldAvgResponseTimeMs:
		m.ResetAvgResponseTimeMs()
		return nil
	case agentstate.FieldLastExecuted:
		m.ResetLastExecuted()
		return nil
	case agentstate.FieldSkillStates:
		m.ResetSkillStates()
		return nil
	case agentstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentState edge %s", name)
}

// CellStateMutation represents an operation that mutates the CellState nodes in the graph.
type CellStateMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	state              *cellstate.State
	created_at         *time.Time
	updated_at         *time.Time
	last_run           *time.Time
	next_run           *time.Time
	run_count          *int
	addrun_count       *int
	success_count      *int
	addsuccess_count   *int
	fail_count         *int
	addfail_count      *int
	avg_duration_ms    *int64
	addavg_duration_ms *int64
	last_error         *string
	last_error_at      *time.Time
	_config            *map[string]interface{}
	metadata           *map[string]interface{}
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CellState, error)
	predicates         []predicate.CellState
}

var _ ent.Mutation = (*CellStateMutation)(nil)

// cellstateOption allows management of the mutation configuration using functional options.
type cellstateOption func(*CellStateMutation)

// newCellStateMutation creates new mutation for the CellState entity.
func newCellStateMutation(c config, op Op, opts ...cellstateOption) *CellStateMutation {
	m := &CellStateMutation{
		config:        c,
		op:            op,
		typ:           TypeCellState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCellStateID sets the ID field of the mutation.
func withCellStateID(id string) cellstateOption {
	return func(m *CellStateMutation) {
		var (
			err   error
			once  sync.Once
			value *CellState
		)
		m.oldValue = func(ctx context.Context) (*CellState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CellState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCellState sets the old CellState of the mutation.
func withCellState(node *CellState) cellstateOption {
	return func(m *CellStateMutation) {
		m.oldValue = func(context.Context) (*CellState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CellStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CellStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CellState entities.
func (m *CellStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CellStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CellStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CellState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetState sets the "state" field.
func (m *CellStateMutation) SetState(c cellstate.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *CellStateMutation) State() (r cellstate.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldState(ctx context.Context) (v cellstate.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CellStateMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CellStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CellStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CellStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CellStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CellStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CellStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLastRun sets the "last_run" field.
func (m *CellStateMutation) SetLastRun(t time.Time) {
	m.last_run = &t
}

// LastRun returns the value of the "last_run" field in the mutation.
func (m *CellStateMutation) LastRun() (r time.Time, exists bool) {
	v := m.last_run
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRun returns the old "last_run" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldLastRun(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRun: %w", err)
	}
	return oldValue.LastRun, nil
}

// ClearLastRun clears the value of the "last_run" field.
func (m *CellStateMutation) ClearLastRun() {
	m.last_run = nil
	m.clearedFields[cellstate.FieldLastRun] = struct{}{}
}

// LastRunCleared returns if the "last_run" field was cleared in this mutation.
func (m *CellStateMutation) LastRunCleared() bool {
	_, ok := m.clearedFields[cellstate.FieldLastRun]
	return ok
}

// ResetLastRun resets all changes to the "last_run" field.
func (m *CellStateMutation) ResetLastRun() {
	m.last_run = nil
	delete(m.clearedFields, cellstate.FieldLastRun)
}

// SetNextRun sets the "next_run" field.
func (m *CellStateMutation) SetNextRun(t time.Time) {
	m.next_run = &t
}

// NextRun returns the value of the "next_run" field in the mutation.
func (m *CellStateMutation) NextRun() (r time.Time, exists bool) {
	v := m.next_run
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRun returns the old "next_run" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldNextRun(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRun: %w", err)
	}
	return oldValue.NextRun, nil
}

// ClearNextRun clears the value of the "next_run" field.
func (m *CellStateMutation) ClearNextRun() {
	m.next_run = nil
	m.clearedFields[cellstate.FieldNextRun] = struct{}{}
}

// NextRunCleared returns if the "next_run" field was cleared in this mutation.
func (m *CellStateMutation) NextRunCleared() bool {
	_, ok := m.clearedFields[cellstate.FieldNextRun]
	return ok
}

// ResetNextRun resets all changes to the "next_run" field.
func (m *CellStateMutation) ResetNextRun() {
	m.next_run = nil
	delete(m.clearedFields, cellstate.FieldNextRun)
}

// SetRunCount sets the "run_count" field.
func (m *CellStateMutation) SetRunCount(i int) {
	m.run_count = &i
	m.addrun_count = nil
}

// RunCount returns the value of the "run_count" field in the mutation.
func (m *CellStateMutation) RunCount() (r int, exists bool) {
	v := m.run_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRunCount returns the old "run_count" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldRunCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunCount: %w", err)
	}
	return oldValue.RunCount, nil
}

// AddRunCount adds i to the "run_count" field.
func (m *CellStateMutation) AddRunCount(i int) {
	if m.addrun_count != nil {
		*m.addrun_count += i
	} else {
		m.addrun_count = &i
	}
}

// AddedRunCount returns the value that was added to the "run_count" field in this mutation.
func (m *CellStateMutation) AddedRunCount() (r int, exists bool) {
	v := m.addrun_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRunCount resets all changes to the "run_count" field.
func (m *CellStateMutation) ResetRunCount() {
	m.run_count = nil
	m.addrun_count = nil
}

// SetSuccessCount sets the "success_count" field.
func (m *CellStateMutation) SetSuccessCount(i int) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *CellStateMutation) SuccessCount() (r int, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldSuccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *CellStateMutation) AddSuccessCount(i int) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *CellStateMutation) AddedSuccessCount() (r int, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *CellStateMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetFailCount sets the "fail_count" field.
func (m *CellStateMutation) SetFailCount(i int) {
	m.fail_count = &i
	m.addfail_count = nil
}

// FailCount returns the value of the "fail_count" field in the mutation.
func (m *CellStateMutation) FailCount() (r int, exists bool) {
	v := m.fail_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailCount returns the old "fail_count" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldFailCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailCount: %w", err)
	}
	return oldValue.FailCount, nil
}

// AddFailCount adds i to the "fail_count" field.
func (m *CellStateMutation) AddFailCount(i int) {
	if m.addfail_count != nil {
		*m.addfail_count += i
	} else {
		m.addfail_count = &i
	}
}

// AddedFailCount returns the value that was added to the "fail_count" field in this mutation.
func (m *CellStateMutation) AddedFailCount() (r int, exists bool) {
	v := m.addfail_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailCount resets all changes to the "fail_count" field.
func (m *CellStateMutation) ResetFailCount() {
	m.fail_count = nil
	m.addfail_count = nil
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (m *CellStateMutation) SetAvgDurationMs(i int64) {
	m.avg_duration_ms = &i
	m.addavg_duration_ms = nil
}

// AvgDurationMs returns the value of the "avg_duration_ms" field in the mutation.
func (m *CellStateMutation) AvgDurationMs() (r int64, exists bool) {
	v := m.avg_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgDurationMs returns the old "avg_duration_ms" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldAvgDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgDurationMs: %w", err)
	}
	return oldValue.AvgDurationMs, nil
}

// AddAvgDurationMs adds i to the "avg_duration_ms" field.
func (m *CellStateMutation) AddAvgDurationMs(i int64) {
	if m.addavg_duration_ms != nil {
		*m.addavg_duration_ms += i
	} else {
		m.addavg_duration_ms = &i
	}
}

// AddedAvgDurationMs returns the value that was added to the "avg_duration_ms" field in this mutation.
func (m *CellStateMutation) AddedAvgDurationMs() (r int64, exists bool) {
	v := m.addavg_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgDurationMs resets all changes to the "avg_duration_ms" field.
func (m *CellStateMutation) ResetAvgDurationMs() {
	m.avg_duration_ms = nil
	m.addavg_duration_ms = nil
}

// SetLastError sets the "last_error" field.
func (m *CellStateMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *CellStateMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *CellStateMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[cellstate.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *CellStateMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[cellstate.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *CellStateMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, cellstate.FieldLastError)
}

// SetLastErrorAt sets the "last_error_at" field.
func (m *CellStateMutation) SetLastErrorAt(t time.Time) {
	m.last_error_at = &t
}

// LastErrorAt returns the value of the "last_error_at" field in the mutation.
func (m *CellStateMutation) LastErrorAt() (r time.Time, exists bool) {
	v := m.last_error_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorAt returns the old "last_error_at" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldLastErrorAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorAt: %w", err)
	}
	return oldValue.LastErrorAt, nil
}

// ClearLastErrorAt clears the value of the "last_error_at" field.
func (m *CellStateMutation) ClearLastErrorAt() {
	m.last_error_at = nil
	m.clearedFields[cellstate.FieldLastErrorAt] = struct{}{}
}

// LastErrorAtCleared returns if the "last_error_at" field was cleared in this mutation.
func (m *CellStateMutation) LastErrorAtCleared() bool {
	_, ok := m.clearedFields[cellstate.FieldLastErrorAt]
	return ok
}

// ResetLastErrorAt resets all changes to the "last_error_at" field.
func (m *CellStateMutation) ResetLastErrorAt() {
	m.last_error_at = nil
	delete(m.clearedFields, cellstate.FieldLastErrorAt)
}

// SetConfig sets the "config" field.
func (m *CellStateMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *CellStateMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *CellStateMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[cellstate.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *CellStateMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[cellstate.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *CellStateMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, cellstate.FieldConfig)
}

// SetMetadata sets the "metadata" field.
func (m *CellStateMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CellStateMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the CellState entity.
// If the CellState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CellStateMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CellStateMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[cellstate.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CellStateMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[cellstate.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CellStateMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, cellstate.FieldMetadata)
}

// Where appends a list predicates to the CellStateMutation builder.
func (m *CellStateMutation) Where(ps ...predicate.CellState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CellStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CellStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CellState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CellStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CellStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CellState).
func (m *CellStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CellStateMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.state != nil {
		fields = append(fields, cellstate.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, cellstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cellstate.FieldUpdatedAt)
	}
	if m.last_run != nil {
		fields = append(fields, cellstate.FieldLastRun)
	}
	if m.next_run != nil {
		fields = append(fields, cellstate.FieldNextRun)
	}
	if m.run_count != nil {
		fields = append(fields, cellstate.FieldRunCount)
	}
	if m.success_count != nil {
		fields = append(fields, cellstate.FieldSuccessCount)
	}
	if m.fail_count != nil {
		fields = append(fields, cellstate.FieldFailCount)
	}
	if m.avg_duration_ms != nil {
		fields = append(fields, cellstate.FieldAvgDurationMs)
	}
	if m.last_error != nil {
		fields = append(fields, cellstate.FieldLastError)
	}
	if m.last_error_at != nil {
		fields = append(fields, cellstate.FieldLastErrorAt)
	}
	if m._config != nil {
		fields = append(fields, cellstate.FieldConfig)
	}
	if m.metadata != nil {
		fields = append(fields, cellstate.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CellStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cellstate.FieldState:
		return m.State()
	case cellstate.FieldCreatedAt:
		return m.CreatedAt()
	case cellstate.FieldUpdatedAt:
		return m.UpdatedAt()
	case cellstate.FieldLastRun:
		return m.LastRun()
	case cellstate.FieldNextRun:
		return m.NextRun()
	case cellstate.FieldRunCount:
		return m.RunCount()
	case cellstate.FieldSuccessCount:
		return m.SuccessCount()
	case cellstate.FieldFailCount:
		return m.FailCount()
	case cellstate.FieldAvgDurationMs:
		return m.AvgDurationMs()
	case cellstate.FieldLastError:
		return m.LastError()
	case cellstate.FieldLastErrorAt:
		return m.LastErrorAt()
	case cellstate.FieldConfig:
		return m.Config()
	case cellstate.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CellStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cellstate.FieldState:
		return m.OldState(ctx)
	case cellstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cellstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case cellstate.FieldLastRun:
		return m.OldLastRun(ctx)
	case cellstate.FieldNextRun:
		return m.OldNextRun(ctx)
	case cellstate.FieldRunCount:
		return m.OldRunCount(ctx)
	case cellstate.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case cellstate.FieldFailCount:
		return m.OldFailCount(ctx)
	case cellstate.FieldAvgDurationMs:
		return m.OldAvgDurationMs(ctx)
	case cellstate.FieldLastError:
		return m.OldLastError(ctx)
	case cellstate.FieldLastErrorAt:
		return m.OldLastErrorAt(ctx)
	case cellstate.FieldConfig:
		return m.OldConfig(ctx)
	case cellstate.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown CellState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cellstate.FieldState:
		v, ok := value.(cellstate.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case cellstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cellstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case cellstate.FieldLastRun:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRun(v)
		return nil
	case cellstate.FieldNextRun:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRun(v)
		return nil
	case cellstate.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunCount(v)
		return nil
	case cellstate.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case cellstate.FieldFailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailCount(v)
		return nil
	case cellstate.FieldAvgDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgDurationMs(v)
		return nil
	case cellstate.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case cellstate.FieldLastErrorAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorAt(v)
		return nil
	case cellstate.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case cellstate.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown CellState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CellStateMutation) AddedFields() []string {
	var fields []string
	if m.addrun_count != nil {
		fields = append(fields, cellstate.FieldRunCount)
	}
	if m.addsuccess_count != nil {
		fields = append(fields, cellstate.FieldSuccessCount)
	}
	if m.addfail_count != nil {
		fields = append(fields, cellstate.FieldFailCount)
	}
	if m.addavg_duration_ms != nil {
		fields = append(fields, cellstate.FieldAvgDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CellStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cellstate.FieldRunCount:
		return m.AddedRunCount()
	case cellstate.FieldSuccessCount:
		return m.AddedSuccessCount()
	case cellstate.FieldFailCount:
		return m.AddedFailCount()
	case cellstate.FieldAvgDurationMs:
		return m.AddedAvgDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CellStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cellstate.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunCount(v)
		return nil
	case cellstate.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	case cellstate.FieldFailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailCount(v)
		return nil
	case cellstate.FieldAvgDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown CellState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CellStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cellstate.FieldLastRun) {
		fields = append(fields, cellstate.FieldLastRun)
	}
	if m.FieldCleared(cellstate.FieldNextRun) {
		fields = append(fields, cellstate.FieldNextRun)
	}
	if m.FieldCleared(cellstate.FieldLastError) {
		fields = append(fields, cellstate.FieldLastError)
	}
	if m.FieldCleared(cellstate.FieldLastErrorAt) {
		fields = append(fields, cellstate.FieldLastErrorAt)
	}
	if m.FieldCleared(cellstate.FieldConfig) {
		fields = append(fields, cellstate.FieldConfig)
	}
	if m.FieldCleared(cellstate.FieldMetadata) {
		fields = append(fields, cellstate.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CellStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CellStateMutation) ClearField(name string) error {
	switch name {
	case cellstate.FieldLastRun:
		m.ClearLastRun()
		return nil
	case cellstate.FieldNextRun:
		m.ClearNextRun()
		return nil
	case cellstate.FieldLastError:
		m.ClearLastError()
		return nil
	case cellstate.FieldLastErrorAt:
		m.ClearLastErrorAt()
		return nil
	case cellstate.FieldConfig:
		m.ClearConfig()
		return nil
	case cellstate.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown CellState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CellStateMutation) ResetField(name string) error {
	switch name {
	case cellstate.FieldState:
		m.ResetState()
		return nil
	case cellstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cellstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case cellstate.FieldLastRun:
		m.ResetLastRun()
		return nil
	case cellstate.FieldNextRun:
		m.ResetNextRun()
		return nil
	case cellstate.FieldRunCount:
		m.ResetRunCount()
		return nil
	case cellstate.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case cellstate.FieldFailCount:
		m.ResetFailCount()
		return nil
	case cellstate.FieldAvgDurationMs:
		m.ResetAvgDurationMs()
		return nil
	case cellstate.FieldLastError:
		m.ResetLastError()
		return nil
	case cellstate.FieldLastErrorAt:
		m.ResetLastErrorAt()
		return nil
	case cellstate.FieldConfig:
		m.ResetConfig()
		return nil
	case cellstate.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown CellState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CellStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CellStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CellStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CellStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CellStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CellStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CellStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CellState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CellStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CellState edge %s", name)
}

// DataLineageMutation represents an operation that mutates the DataLineage nodes in the graph.
type DataLineageMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	source             *string
	source_type        *datalineage.SourceType
	created_at         *time.Time
	last_accessed      *time.Time
	current_tier       *datalineage.CurrentTier
	dependencies       *[]string
	appenddependencies []string
	consumers          *[]string
	appendconsumers    []string
	quality_score      *float64
	addquality_score   *float64
	schema_version     *int
	addschema_version  *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*DataLineage, error)
	predicates         []predicate.DataLineage
}

var _ ent.Mutation = (*DataLineageMutation)(nil)

// datalineageOption allows management of the mutation configuration using functional options.
type datalineageOption func(*DataLineageMutation)

// newDataLineageMutation creates new mutation for the DataLineage entity.
func newDataLineageMutation(c config, op Op, opts ...datalineageOption) *DataLineageMutation {
	m := &DataLineageMutation{
		config:        c,
		op:            op,
		typ:           TypeDataLineage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataLineageID sets the ID field of the mutation.
func withDataLineageID(id string) datalineageOption {
	return func(m *DataLineageMutation) {
		var (
			err   error
			once  sync.Once
			value *DataLineage
		)
		m.oldValue = func(ctx context.Context) (*DataLineage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataLineage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataLineage sets the old DataLineage of the mutation.
func withDataLineage(node *DataLineage) datalineageOption {
	return func(m *DataLineageMutation) {
		m.oldValue = func(context.Context) (*DataLineage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataLineageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataLineageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DataLineage entities.
func (m *DataLineageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataLineageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataLineageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataLineage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *DataLineageMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *DataLineageMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *DataLineageMutation) ResetSource() {
	m.source = nil
}

// SetSourceType sets the "source_type" field.
func (m *DataLineageMutation) SetSourceType(dt datalineage.SourceType) {
	m.source_type = &dt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *DataLineageMutation) SourceType() (r datalineage.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldSourceType(ctx context.Context) (v datalineage.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *DataLineageMutation) ResetSourceType() {
	m.source_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DataLineageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DataLineageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DataLineageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastAccessed sets the "last_accessed" field.
func (m *DataLineageMutation) SetLastAccessed(t time.Time) {
	m.last_accessed = &t
}

// LastAccessed returns the value of the "last_accessed" field in the mutation.
func (m *DataLineageMutation) LastAccessed() (r time.Time, exists bool) {
	v := m.last_accessed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessed returns the old "last_accessed" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldLastAccessed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessed: %w", err)
	}
	return oldValue.LastAccessed, nil
}

// ResetLastAccessed resets all changes to the "last_accessed" field.
func (m *DataLineageMutation) ResetLastAccessed() {
	m.last_accessed = nil
}

// SetCurrentTier sets the "current_tier" field.
func (m *DataLineageMutation) SetCurrentTier(dt datalineage.CurrentTier) {
	m.current_tier = &dt
}

// CurrentTier returns the value of the "current_tier" field in the mutation.
func (m *DataLineageMutation) CurrentTier() (r datalineage.CurrentTier, exists bool) {
	v := m.current_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTier returns the old "current_tier" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldCurrentTier(ctx context.Context) (v datalineage.CurrentTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTier: %w", err)
	}
	return oldValue.CurrentTier, nil
}

// ResetCurrentTier resets all changes to the "current_tier" field.
func (m *DataLineageMutation) ResetCurrentTier() {
	m.current_tier = nil
}

// SetDependencies sets the "dependencies" field.
func (m *DataLineageMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *DataLineageMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *DataLineageMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *DataLineageMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *DataLineageMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[datalineage.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *DataLineageMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[datalineage.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *DataLineageMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, datalineage.FieldDependencies)
}

// SetConsumers sets the "consumers" field.
func (m *DataLineageMutation) SetConsumers(s []string) {
	m.consumers = &s
	m.appendconsumers = nil
}

// Consumers returns the value of the "consumers" field in the mutation.
func (m *DataLineageMutation) Consumers() (r []string, exists bool) {
	v := m.consumers
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumers returns the old "consumers" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldConsumers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumers: %w", err)
	}
	return oldValue.Consumers, nil
}

// AppendConsumers adds s to the "consumers" field.
func (m *DataLineageMutation) AppendConsumers(s []string) {
	m.appendconsumers = append(m.appendconsumers, s...)
}

// AppendedConsumers returns the list of values that were appended to the "consumers" field in this mutation.
func (m *DataLineageMutation) AppendedConsumers() ([]string, bool) {
	if len(m.appendconsumers) == 0 {
		return nil, false
	}
	return m.appendconsumers, true
}

// ClearConsumers clears the value of the "consumers" field.
func (m *DataLineageMutation) ClearConsumers() {
	m.consumers = nil
	m.appendconsumers = nil
	m.clearedFields[datalineage.FieldConsumers] = struct{}{}
}

// ConsumersCleared returns if the "consumers" field was cleared in this mutation.
func (m *DataLineageMutation) ConsumersCleared() bool {
	_, ok := m.clearedFields[datalineage.FieldConsumers]
	return ok
}

// ResetConsumers resets all changes to the "consumers" field.
func (m *DataLineageMutation) ResetConsumers() {
	m.consumers = nil
	m.appendconsumers = nil
	delete(m.clearedFields, datalineage.FieldConsumers)
}

// SetQualityScore sets the "quality_score" field.
func (m *DataLineageMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *DataLineageMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldQualityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *DataLineageMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *DataLineageMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *DataLineageMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[datalineage.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *DataLineageMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[datalineage.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *DataLineageMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, datalineage.FieldQualityScore)
}

// SetSchemaVersion sets the "schema_version" field.
func (m *DataLineageMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *DataLineageMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the DataLineage entity.
// If the DataLineage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLineageMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *DataLineageMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *DataLineageMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *DataLineageMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// Where appends a list predicates to the DataLineageMutation builder.
func (m *DataLineageMutation) Where(ps ...predicate.DataLineage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataLineageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataLineageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataLineage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataLineageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataLineageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataLineage).
func (m *DataLineageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataLineageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source != nil {
		fields = append(fields, datalineage.FieldSource)
	}
	if m.source_type != nil {
		fields = append(fields, datalineage.FieldSourceType)
	}
	if m.created_at != nil {
		fields = append(fields, datalineage.FieldCreatedAt)
	}
	if m.last_accessed != nil {
		fields = append(fields, datalineage.FieldLastAccessed)
	}
	if m.current_tier != nil {
		fields = append(fields, datalineage.FieldCurrentTier)
	}
	if m.dependencies != nil {
		fields = append(fields, datalineage.FieldDependencies)
	}
	if m.consumers != nil {
		fields = append(fields, datalineage.FieldConsumers)
	}
	if m.quality_score != nil {
		fields = append(fields, datalineage.FieldQualityScore)
	}
	if m.schema_version != nil {
		fields = append(fields, datalineage.FieldSchemaVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataLineageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datalineage.FieldSource:
		return m.Source()
	case datalineage.FieldSourceType:
		return m.SourceType()
	case datalineage.FieldCreatedAt:
		return m.CreatedAt()
	case datalineage.FieldLastAccessed:
		return m.LastAccessed()
	case datalineage.FieldCurrentTier:
		return m.CurrentTier()
	case datalineage.FieldDependencies:
		return m.Dependencies()
	case datalineage.FieldConsumers:
		return m.Consumers()
	case datalineage.FieldQualityScore:
		return m.QualityScore()
	case datalineage.FieldSchemaVersion:
		return m.SchemaVersion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataLineageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datalineage.FieldSource:
		return m.OldSource(ctx)
	case datalineage.FieldSourceType:
		return m.OldSourceType(ctx)
	case datalineage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case datalineage.FieldLastAccessed:
		return m.OldLastAccessed(ctx)
	case datalineage.FieldCurrentTier:
		return m.OldCurrentTier(ctx)
	case datalineage.FieldDependencies:
		return m.OldDependencies(ctx)
	case datalineage.FieldConsumers:
		return m.OldConsumers(ctx)
	case datalineage.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case datalineage.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	}
	return nil, fmt.Errorf("unknown DataLineage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataLineageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datalineage.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case datalineage.FieldSourceType:
		v, ok := value.(datalineage.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case datalineage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case datalineage.FieldLastAccessed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessed(v)
		return nil
	case datalineage.FieldCurrentTier:
		v, ok := value.(datalineage.CurrentTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTier(v)
		return nil
	case datalineage.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case datalineage.FieldConsumers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumers(v)
		return nil
	case datalineage.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case datalineage.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	}
	return fmt.Errorf("unknown DataLineage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataLineageMutation) AddedFields() []string {
	var fields []string
	if m.addquality_score != nil {
		fields = append(fields, datalineage.FieldQualityScore)
	}
	if m.addschema_version != nil {
		fields = append(fields, datalineage.FieldSchemaVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataLineageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case datalineage.FieldQualityScore:
		return m.AddedQualityScore()
	case datalineage.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataLineageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case datalineage.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case datalineage.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	}
	return fmt.Errorf("unknown DataLineage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataLineageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(datalineage.FieldDependencies) {
		fields = append(fields, datalineage.FieldDependencies)
	}
	if m.FieldCleared(datalineage.FieldConsumers) {
		fields = append(fields, datalineage.FieldConsumers)
	}
	if m.FieldCleared(datalineage.FieldQualityScore) {
		fields = append(fields, datalineage.FieldQualityScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataLineageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataLineageMutation) ClearField(name string) error {
	switch name {
	case datalineage.FieldDependencies:
		m.ClearDependencies()
		return nil
	case datalineage.FieldConsumers:
		m.ClearConsumers()
		return nil
	case datalineage.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	}
	return fmt.Errorf("unknown DataLineage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataLineageMutation) ResetField(name string) error {
	switch name {
	case datalineage.FieldSource:
		m.ResetSource()
		return nil
	case datalineage.FieldSourceType:
		m.ResetSourceType()
		return nil
	case datalineage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case datalineage.FieldLastAccessed:
		m.ResetLastAccessed()
		return nil
	case datalineage.FieldCurrentTier:
		m.ResetCurrentTier()
		return nil
	case datalineage.FieldDependencies:
		m.ResetDependencies()
		return nil
	case datalineage.FieldConsumers:
		m.ResetConsumers()
		return nil
	case datalineage.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case datalineage.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	}
	return fmt.Errorf("unknown DataLineage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataLineageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataLineageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataLineageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataLineageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataLineageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataLineageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataLineageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DataLineage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataLineageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DataLineage edge %s", name)
}

// MeridianMetricMutation represents an operation that mutates the MeridianMetric nodes in the graph.
type MeridianMetricMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	meridian_id           *string
	timestamp             *time.Time
	packets_sent          *int64
	addpackets_sent       *int64
	packets_received      *int64
	addpackets_received   *int64
	packets_dropped       *int64
	addpackets_dropped    *int64
	queue_size            *int
	addqueue_size         *int
	blockages             *int64
	addblockages          *int64
	throughput_per_sec    *float64
	addthroughput_per_sec *float64
	latency_ms            *float64
	addlatency_ms         *float64
	error_rate            *float64
	adderror_rate         *float64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*MeridianMetric, error)
	predicates            []predicate.MeridianMetric
}

var _ ent.Mutation = (*MeridianMetricMutation)(nil)

// meridianmetricOption allows management of the mutation configuration using functional options.
type meridianmetricOption func(*MeridianMetricMutation)

// newMeridianMetricMutation creates new mutation for the MeridianMetric entity.
func newMeridianMetricMutation(c config, op Op, opts ...meridianmetricOption) *MeridianMetricMutation {
	m := &MeridianMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeMeridianMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeridianMetricID sets the ID field of the mutation.
func withMeridianMetricID(id int) meridianmetricOption {
	return func(m *MeridianMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *MeridianMetric
		)
		m.oldValue = func(ctx context.Context) (*MeridianMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MeridianMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeridianMetric sets the old MeridianMetric of the mutation.
func withMeridianMetric(node *MeridianMetric) meridianmetricOption {
	return func(m *MeridianMetricMutation) {
		m.oldValue = func(context.Context) (*MeridianMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeridianMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeridianMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeridianMetricMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeridianMetricMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MeridianMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeridianID sets the "meridian_id" field.
func (m *MeridianMetricMutation) SetMeridianID(s string) {
	m.meridian_id = &s
}

// MeridianID returns the value of the "meridian_id" field in the mutation.
func (m *MeridianMetricMutation) MeridianID() (r string, exists bool) {
	v := m.meridian_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeridianID returns the old "meridian_id" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldMeridianID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeridianID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeridianID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeridianID: %w", err)
	}
	return oldValue.MeridianID, nil
}

// ResetMeridianID resets all changes to the "meridian_id" field.
func (m *MeridianMetricMutation) ResetMeridianID() {
	m.meridian_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MeridianMetricMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MeridianMetricMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MeridianMetricMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetPacketsSent sets the "packets_sent" field.
func (m *MeridianMetricMutation) SetPacketsSent(i int64) {
	m.packets_sent = &i
	m.addpackets_sent = nil
}

// PacketsSent returns the value of the "packets_sent" field in the mutation.
func (m *MeridianMetricMutation) PacketsSent() (r int64, exists bool) {
	v := m.packets_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldPacketsSent returns the old "packets_sent" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldPacketsSent(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPacketsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPacketsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPacketsSent: %w", err)
	}
	return oldValue.PacketsSent, nil
}

// AddPacketsSent adds i to the "packets_sent" field.
func (m *MeridianMetricMutation) AddPacketsSent(i int64) {
	if m.addpackets_sent != nil {
		*m.addpackets_sent += i
	} else {
		m.addpackets_sent = &i
	}
}

// AddedPacketsSent returns the value that was added to the "packets_sent" field in this mutation.
func (m *MeridianMetricMutation) AddedPacketsSent() (r int64, exists bool) {
	v := m.addpackets_sent
	if v == nil {
		return
	}
	return *v, true
}

// ResetPacketsSent resets all changes to the "packets_sent" field.
func (m *MeridianMetricMutation) ResetPacketsSent() {
	m.packets_sent = nil
	m.addpackets_sent = nil
}

// SetPacketsReceived sets the "packets_received" field.
func (m *MeridianMetricMutation) SetPacketsReceived(i int64) {
	m.packets_received = &i
	m.addpackets_received = nil
}

// PacketsReceived returns the value of the "packets_received" field in the mutation.
func (m *MeridianMetricMutation) PacketsReceived() (r int64, exists bool) {
	v := m.packets_received
	if v == nil {
		return
	}
	return *v, true
}

// OldPacketsReceived returns the old "packets_received" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldPacketsReceived(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPacketsReceived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPacketsReceived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPacketsReceived: %w", err)
	}
	return oldValue.PacketsReceived, nil
}

// AddPacketsReceived adds i to the "packets_received" field.
func (m *MeridianMetricMutation) AddPacketsReceived(i int64) {
	if m.addpackets_received != nil {
		*m.addpackets_received += i
	} else {
		m.addpackets_received = &i
	}
}

// AddedPacketsReceived returns the value that was added to the "packets_received" field in this mutation.
func (m *MeridianMetricMutation) AddedPacketsReceived() (r int64, exists bool) {
	v := m.addpackets_received
	if v == nil {
		return
	}
	return *v, true
}

// ResetPacketsReceived resets all changes to the "packets_received" field.
func (m *MeridianMetricMutation) ResetPacketsReceived() {
	m.packets_received = nil
	m.addpackets_received = nil
}

// SetPacketsDropped sets the "packets_dropped" field.
func (m *MeridianMetricMutation) SetPacketsDropped(i int64) {
	m.packets_dropped = &i
	m.addpackets_dropped = nil
}

// PacketsDropped returns the value of the "packets_dropped" field in the mutation.
func (m *MeridianMetricMutation) PacketsDropped() (r int64, exists bool) {
	v := m.packets_dropped
	if v == nil {
		return
	}
	return *v, true
}

// OldPacketsDropped returns the old "packets_dropped" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldPacketsDropped(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPacketsDropped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPacketsDropped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPacketsDropped: %w", err)
	}
	return oldValue.PacketsDropped, nil
}

// AddPacketsDropped adds i to the "packets_dropped" field.
func (m *MeridianMetricMutation) AddPacketsDropped(i int64) {
	if m.addpackets_dropped != nil {
		*m.addpackets_dropped += i
	} else {
		m.addpackets_dropped = &i
	}
}

// AddedPacketsDropped returns the value that was added to the "packets_dropped" field in this mutation.
func (m *MeridianMetricMutation) AddedPacketsDropped() (r int64, exists bool) {
	v := m.addpackets_dropped
	if v == nil {
		return
	}
	return *v, true
}

// ResetPacketsDropped resets all changes to the "packets_dropped" field.
func (m *MeridianMetricMutation) ResetPacketsDropped() {
	m.packets_dropped = nil
	m.addpackets_dropped = nil
}

// SetQueueSize sets the "queue_size" field.
func (m *MeridianMetricMutation) SetQueueSize(i int) {
	m.queue_size = &i
	m.addqueue_size = nil
}

// QueueSize returns the value of the "queue_size" field in the mutation.
func (m *MeridianMetricMutation) QueueSize() (r int, exists bool) {
	v := m.queue_size
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueSize returns the old "queue_size" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldQueueSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueSize: %w", err)
	}
	return oldValue.QueueSize, nil
}

// AddQueueSize adds i to the "queue_size" field.
func (m *MeridianMetricMutation) AddQueueSize(i int) {
	if m.addqueue_size != nil {
		*m.addqueue_size += i
	} else {
		m.addqueue_size = &i
	}
}

// AddedQueueSize returns the value that was added to the "queue_size" field in this mutation.
func (m *MeridianMetricMutation) AddedQueueSize() (r int, exists bool) {
	v := m.addqueue_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetQueueSize resets all changes to the "queue_size" field.
func (m *MeridianMetricMutation) ResetQueueSize() {
	m.queue_size = nil
	m.addqueue_size = nil
}

// SetBlockages sets the "blockages" field.
func (m *MeridianMetricMutation) SetBlockages(i int64) {
	m.blockages = &i
	m.addblockages = nil
}

// Blockages returns the value of the "blockages" field in the mutation.
func (m *MeridianMetricMutation) Blockages() (r int64, exists bool) {
	v := m.blockages
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockages returns the old "blockages" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldBlockages(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockages: %w", err)
	}
	return oldValue.Blockages, nil
}

// AddBlockages adds i to the "blockages" field.
func (m *MeridianMetricMutation) AddBlockages(i int64) {
	if m.addblockages != nil {
		*m.addblockages += i
	} else {
		m.addblockages = &i
	}
}

// AddedBlockages returns the value that was added to the "blockages" field in this mutation.
func (m *MeridianMetricMutation) AddedBlockages() (r int64, exists bool) {
	v := m.addblockages
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlockages resets all changes to the "blockages" field.
func (m *MeridianMetricMutation) ResetBlockages() {
	m.blockages = nil
	m.addblockages = nil
}

// SetThroughputPerSec sets the "throughput_per_sec" field.
func (m *MeridianMetricMutation) SetThroughputPerSec(f float64) {
	m.throughput_per_sec = &f
	m.addthroughput_per_sec = nil
}

// ThroughputPerSec returns the value of the "throughput_per_sec" field in the mutation.
func (m *MeridianMetricMutation) ThroughputPerSec() (r float64, exists bool) {
	v := m.throughput_per_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldThroughputPerSec returns the old "throughput_per_sec" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldThroughputPerSec(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThroughputPerSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThroughputPerSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThroughputPerSec: %w", err)
	}
	return oldValue.ThroughputPerSec, nil
}

// AddThroughputPerSec adds f to the "throughput_per_sec" field.
func (m *MeridianMetricMutation) AddThroughputPerSec(f float64) {
	if m.addthroughput_per_sec != nil {
		*m.addthroughput_per_sec += f
	} else {
		m.addthroughput_per_sec = &f
	}
}

// AddedThroughputPerSec returns the value that was added to the "throughput_per_sec" field in this mutation.
func (m *MeridianMetricMutation) AddedThroughputPerSec() (r float64, exists bool) {
	v := m.addthroughput_per_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetThroughputPerSec resets all changes to the "throughput_per_sec" field.
func (m *MeridianMetricMutation) ResetThroughputPerSec() {
	m.throughput_per_sec = nil
	m.addthroughput_per_sec = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *MeridianMetricMutation) SetLatencyMs(f float64) {
	m.latency_ms = &f
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *MeridianMetricMutation) LatencyMs() (r float64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldLatencyMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds f to the "latency_ms" field.
func (m *MeridianMetricMutation) AddLatencyMs(f float64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += f
	} else {
		m.addlatency_ms = &f
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *MeridianMetricMutation) AddedLatencyMs() (r float64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *MeridianMetricMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetErrorRate sets the "error_rate" field.
func (m *MeridianMetricMutation) SetErrorRate(f float64) {
	m.error_rate = &f
	m.adderror_rate = nil
}

// ErrorRate returns the value of the "error_rate" field in the mutation.
func (m *MeridianMetricMutation) ErrorRate() (r float64, exists bool) {
	v := m.error_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorRate returns the old "error_rate" field's value of the MeridianMetric entity.
// If the MeridianMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeridianMetricMutation) OldErrorRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorRate: %w", err)
	}
	return oldValue.ErrorRate, nil
}

// AddErrorRate adds f to the "error_rate" field.
func (m *MeridianMetricMutation) AddErrorRate(f float64) {
	if m.adderror_rate != nil {
		*m.adderror_rate += f
	} else {
		m.adderror_rate = &f
	}
}

// AddedErrorRate returns the value that was added to the "error_rate" field in this mutation.
func (m *MeridianMetricMutation) AddedErrorRate() (r float64, exists bool) {
	v := m.adderror_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorRate resets all changes to the "error_rate" field.
func (m *MeridianMetricMutation) ResetErrorRate() {
	m.error_rate = nil
	m.adderror_rate = nil
}

// Where appends a list predicates to the MeridianMetricMutation builder.
func (m *MeridianMetricMutation) Where(ps ...predicate.MeridianMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeridianMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeridianMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MeridianMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeridianMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeridianMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MeridianMetric).
func (m *MeridianMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeridianMetricMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.meridian_id != nil {
		fields = append(fields, meridianmetric.FieldMeridianID)
	}
	if m.timestamp != nil {
		fields = append(fields, meridianmetric.FieldTimestamp)
	}
	if m.packets_sent != nil {
		fields = append(fields, meridianmetric.FieldPacketsSent)
	}
	if m.packets_received != nil {
		fields = append(fields, meridianmetric.FieldPacketsReceived)
	}
	if m.packets_dropped != nil {
		fields = append(fields, meridianmetric.FieldPacketsDropped)
	}
	if m.queue_size != nil {
		fields = append(fields, meridianmetric.FieldQueueSize)
	}
	if m.blockages != nil {
		fields = append(fields, meridianmetric.FieldBlockages)
	}
	if m.throughput_per_sec != nil {
		fields = append(fields, meridianmetric.FieldThroughputPerSec)
	}
	if m.latency_ms != nil {
		fields = append(fields, meridianmetric.FieldLatencyMs)
	}
	if m.error_rate != nil {
		fields = append(fields, meridianmetric.FieldErrorRate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeridianMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meridianmetric.FieldMeridianID:
		return m.MeridianID()
	case meridianmetric.FieldTimestamp:
		return m.Timestamp()
	case meridianmetric.FieldPacketsSent:
		return m.PacketsSent()
	case meridianmetric.FieldPacketsReceived:
		return m.PacketsReceived()
	case meridianmetric.FieldPacketsDropped:
		return m.PacketsDropped()
	case meridianmetric.FieldQueueSize:
		return m.QueueSize()
	case meridianmetric.FieldBlockages:
		return m.Blockages()
	case meridianmetric.FieldThroughputPerSec:
		return m.ThroughputPerSec()
	case meridianmetric.FieldLatencyMs:
		return m.LatencyMs()
	case meridianmetric.FieldErrorRate:
		return m.ErrorRate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeridianMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meridianmetric.FieldMeridianID:
		return m.OldMeridianID(ctx)
	case meridianmetric.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case meridianmetric.FieldPacketsSent:
		return m.OldPacketsSent(ctx)
	case meridianmetric.FieldPacketsReceived:
		return m.OldPacketsReceived(ctx)
	case meridianmetric.FieldPacketsDropped:
		return m.OldPacketsDropped(ctx)
	case meridianmetric.FieldQueueSize:
		return m.OldQueueSize(ctx)
	case meridianmetric.FieldBlockages:
		return m.OldBlockages(ctx)
	case meridianmetric.FieldThroughputPerSec:
		return m.OldThroughputPerSec(ctx)
	case meridianmetric.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case meridianmetric.FieldErrorRate:
		return m.OldErrorRate(ctx)
	}
	return nil, fmt.Errorf("unknown MeridianMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeridianMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meridianmetric.FieldMeridianID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeridianID(v)
		return nil
	case meridianmetric.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case meridianmetric.FieldPacketsSent:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPacketsSent(v)
		return nil
	case meridianmetric.FieldPacketsReceived:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPacketsReceived(v)
		return nil
	case meridianmetric.FieldPacketsDropped:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPacketsDropped(v)
		return nil
	case meridianmetric.FieldQueueSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueSize(v)
		return nil
	case meridianmetric.FieldBlockages:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockages(v)
		return nil
	case meridianmetric.FieldThroughputPerSec:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThroughputPerSec(v)
		return nil
	case meridianmetric.FieldLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case meridianmetric.FieldErrorRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorRate(v)
		return nil
	}
	return fmt.Errorf("unknown MeridianMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeridianMetricMutation) AddedFields() []string {
	var fields []string
	if m.addpackets_sent != nil {
		fields = append(fields, meridianmetric.FieldPacketsSent)
	}
	if m.addpackets_received != nil {
		fields = append(fields, meridianmetric.FieldPacketsReceived)
	}
	if m.addpackets_dropped != nil {
		fields = append(fields, meridianmetric.FieldPacketsDropped)
	}
	if m.addqueue_size != nil {
		fields = append(fields, meridianmetric.FieldQueueSize)
	}
	if m.addblockages != nil {
		fields = append(fields, meridianmetric.FieldBlockages)
	}
	if m.addthroughput_per_sec != nil {
		fields = append(fields, meridianmetric.FieldThroughputPerSec)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, meridianmetric.FieldLatencyMs)
	}
	if m.adderror_rate != nil {
		fields = append(fields, meridianmetric.FieldErrorRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeridianMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case meridianmetric.FieldPacketsSent:
		return m.AddedPacketsSent()
	case meridianmetric.FieldPacketsReceived:
		return m.AddedPacketsReceived()
	case meridianmetric.FieldPacketsDropped:
		return m.AddedPacketsDropped()
	case meridianmetric.FieldQueueSize:
		return m.AddedQueueSize()
	case meridianmetric.FieldBlockages:
		return m.AddedBlockages()
	case meridianmetric.FieldThroughputPerSec:
		return m.AddedThroughputPerSec()
	case meridianmetric.FieldLatencyMs:
		return m.AddedLatencyMs()
	case meridianmetric.FieldErrorRate:
		return m.AddedErrorRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeridianMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case meridianmetric.FieldPacketsSent:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPacketsSent(v)
		return nil
	case meridianmetric.FieldPacketsReceived:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPacketsReceived(v)
		return nil
	case meridianmetric.FieldPacketsDropped:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPacketsDropped(v)
		return nil
	case meridianmetric.FieldQueueSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQueueSize(v)
		return nil
	case meridianmetric.FieldBlockages:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlockages(v)
		return nil
	case meridianmetric.FieldThroughputPerSec:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThroughputPerSec(v)
		return nil
	case meridianmetric.FieldLatencyMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case meridianmetric.FieldErrorRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorRate(v)
		return nil
	}
	return fmt.Errorf("unknown MeridianMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeridianMetricMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeridianMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeridianMetricMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MeridianMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeridianMetricMutation) ResetField(name string) error {
	switch name {
	case meridianmetric.FieldMeridianID:
		m.ResetMeridianID()
		return nil
	case meridianmetric.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case meridianmetric.FieldPacketsSent:
		m.ResetPacketsSent()
		return nil
	case meridianmetric.FieldPacketsReceived:
		m.ResetPacketsReceived()
		return nil
	case meridianmetric.FieldPacketsDropped:
		m.ResetPacketsDropped()
		return nil
	case meridianmetric.FieldQueueSize:
		m.ResetQueueSize()
		return nil
	case meridianmetric.FieldBlockages:
		m.ResetBlockages()
		return nil
	case meridianmetric.FieldThroughputPerSec:
		m.ResetThroughputPerSec()
		return nil
	case meridianmetric.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case meridianmetric.FieldErrorRate:
		m.ResetErrorRate()
		return nil
	}
	return fmt.Errorf("unknown MeridianMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeridianMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeridianMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeridianMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeridianMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeridianMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeridianMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeridianMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MeridianMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeridianMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MeridianMetric edge %s", name)
}

// TriggerRecordMutation represents an operation that mutates the TriggerRecord nodes in the graph.
type TriggerRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	trigger_id            *string
	scheduled_time        *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	status                *triggerrecord.Status
	retry_count           *int
	addretry_count        *int
	error                 *string
	outcome_summary       *string
	data                  *map[string]interface{}
	processing_time_ms    *int64
	addprocessing_time_ms *int64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*TriggerRecord, error)
	predicates            []predicate.TriggerRecord
}

var _ ent.Mutation = (*TriggerRecordMutation)(nil)

// triggerrecordOption allows management of the mutation configuration using functional options.
type triggerrecordOption func(*TriggerRecordMutation)

// newTriggerRecordMutation creates new mutation for the TriggerRecord entity.
func newTriggerRecordMutation(c config, op Op, opts ...triggerrecordOption) *TriggerRecordMutation {
	m := &TriggerRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeTriggerRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriggerRecordID sets the ID field of the mutation.
func withTriggerRecordID(id string) triggerrecordOption {
	return func(m *TriggerRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *TriggerRecord
		)
		m.oldValue = func(ctx context.Context) (*TriggerRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TriggerRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriggerRecord sets the old TriggerRecord of the mutation.
func withTriggerRecord(node *TriggerRecord) triggerrecordOption {
	return func(m *TriggerRecordMutation) {
		m.oldValue = func(context.Context) (*TriggerRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriggerRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriggerRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TriggerRecord entities.
func (m *TriggerRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriggerRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriggerRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TriggerRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTriggerID sets the "trigger_id" field.
func (m *TriggerRecordMutation) SetTriggerID(s string) {
	m.trigger_id = &s
}

// TriggerID returns the value of the "trigger_id" field in the mutation.
func (m *TriggerRecordMutation) TriggerID() (r string, exists bool) {
	v := m.trigger_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerID returns the old "trigger_id" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldTriggerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerID: %w", err)
	}
	return oldValue.TriggerID, nil
}

// ResetTriggerID resets all changes to the "trigger_id" field.
func (m *TriggerRecordMutation) ResetTriggerID() {
	m.trigger_id = nil
}

// SetScheduledTime sets the "scheduled_time" field.
func (m *TriggerRecordMutation) SetScheduledTime(t time.Time) {
	m.scheduled_time = &t
}

// ScheduledTime returns the value of the "scheduled_time" field in the mutation.
func (m *TriggerRecordMutation) ScheduledTime() (r time.Time, exists bool) {
	v := m.scheduled_time
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledTime returns the old "scheduled_time" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldScheduledTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledTime: %w", err)
	}
	return oldValue.ScheduledTime, nil
}

// ResetScheduledTime resets all changes to the "scheduled_time" field.
func (m *TriggerRecordMutation) ResetScheduledTime() {
	m.scheduled_time = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TriggerRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TriggerRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TriggerRecordMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[triggerrecord.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TriggerRecordMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[triggerrecord.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TriggerRecordMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, triggerrecord.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TriggerRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TriggerRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TriggerRecordMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[triggerrecord.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TriggerRecordMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[triggerrecord.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TriggerRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, triggerrecord.FieldCompletedAt)
}

// SetStatus sets the "status" field.
func (m *TriggerRecordMutation) SetStatus(t triggerrecord.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TriggerRecordMutation) Status() (r triggerrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldStatus(ctx context.Context) (v triggerrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TriggerRecordMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *TriggerRecordMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TriggerRecordMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TriggerRecordMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TriggerRecordMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TriggerRecordMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetError sets the "error" field.
func (m *TriggerRecordMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TriggerRecordMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TriggerRecordMutation) ClearError() {
	m.error = nil
	m.clearedFields[triggerrecord.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TriggerRecordMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[triggerrecord.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TriggerRecordMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, triggerrecord.FieldError)
}

// SetOutcomeSummary sets the "outcome_summary" field.
func (m *TriggerRecordMutation) SetOutcomeSummary(s string) {
	m.outcome_summary = &s
}

// OutcomeSummary returns the value of the "outcome_summary" field in the mutation.
func (m *TriggerRecordMutation) OutcomeSummary() (r string, exists bool) {
	v := m.outcome_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeSummary returns the old "outcome_summary" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldOutcomeSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeSummary: %w", err)
	}
	return oldValue.OutcomeSummary, nil
}

// ClearOutcomeSummary clears the value of the "outcome_summary" field.
func (m *TriggerRecordMutation) ClearOutcomeSummary() {
	m.outcome_summary = nil
	m.clearedFields[triggerrecord.FieldOutcomeSummary] = struct{}{}
}

// OutcomeSummaryCleared returns if the "outcome_summary" field was cleared in this mutation.
func (m *TriggerRecordMutation) OutcomeSummaryCleared() bool {
	_, ok := m.clearedFields[triggerrecord.FieldOutcomeSummary]
	return ok
}

// ResetOutcomeSummary resets all changes to the "outcome_summary" field.
func (m *TriggerRecordMutation) ResetOutcomeSummary() {
	m.outcome_summary = nil
	delete(m.clearedFields, triggerrecord.FieldOutcomeSummary)
}

// SetData sets the "data" field.
func (m *TriggerRecordMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *TriggerRecordMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *TriggerRecordMutation) ClearData() {
	m.data = nil
	m.clearedFields[triggerrecord.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *TriggerRecordMutation) DataCleared() bool {
	_, ok := m.clearedFields[triggerrecord.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *TriggerRecordMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, triggerrecord.FieldData)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *TriggerRecordMutation) SetProcessingTimeMs(i int64) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *TriggerRecordMutation) ProcessingTimeMs() (r int64, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldProcessingTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *TriggerRecordMutation) AddProcessingTimeMs(i int64) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *TriggerRecordMutation) AddedProcessingTimeMs() (r int64, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *TriggerRecordMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TriggerRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriggerRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TriggerRecord entity.
// If the TriggerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriggerRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriggerRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TriggerRecordMutation builder.
func (m *TriggerRecordMutation) Where(ps ...predicate.TriggerRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriggerRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriggerRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TriggerRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriggerRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriggerRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TriggerRecord).
func (m *TriggerRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriggerRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.trigger_id != nil {
		fields = append(fields, triggerrecord.FieldTriggerID)
	}
	if m.scheduled_time != nil {
		fields = append(fields, triggerrecord.FieldScheduledTime)
	}
	if m.started_at != nil {
		fields = append(fields, triggerrecord.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, triggerrecord.FieldCompletedAt)
	}
	if m.status != nil {
		fields = append(fields, triggerrecord.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, triggerrecord.FieldRetryCount)
	}
	if m.error != nil {
		fields = append(fields, triggerrecord.FieldError)
	}
	if m.outcome_summary != nil {
		fields = append(fields, triggerrecord.FieldOutcomeSummary)
	}
	if m.data != nil {
		fields = append(fields, triggerrecord.FieldData)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, triggerrecord.FieldProcessingTimeMs)
	}
	if m.created_at != nil {
		fields = append(fields, triggerrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriggerRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triggerrecord.FieldTriggerID:
		return m.TriggerID()
	case triggerrecord.FieldScheduledTime:
		return m.ScheduledTime()
	case triggerrecord.FieldStartedAt:
		return m.StartedAt()
	case triggerrecord.FieldCompletedAt:
		return m.CompletedAt()
	case triggerrecord.FieldStatus:
		return m.Status()
	case triggerrecord.FieldRetryCount:
		return m.RetryCount()
	case triggerrecord.FieldError:
		return m.Error()
	case triggerrecord.FieldOutcomeSummary:
		return m.OutcomeSummary()
	case triggerrecord.FieldData:
		return m.Data()
	case triggerrecord.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case triggerrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriggerRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triggerrecord.FieldTriggerID:
		return m.OldTriggerID(ctx)
	case triggerrecord.FieldScheduledTime:
		return m.OldScheduledTime(ctx)
	case triggerrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case triggerrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case triggerrecord.FieldStatus:
		return m.OldStatus(ctx)
	case triggerrecord.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case triggerrecord.FieldError:
		return m.OldError(ctx)
	case triggerrecord.FieldOutcomeSummary:
		return m.OldOutcomeSummary(ctx)
	case triggerrecord.FieldData:
		return m.OldData(ctx)
	case triggerrecord.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case triggerrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TriggerRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triggerrecord.FieldTriggerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerID(v)
		return nil
	case triggerrecord.FieldScheduledTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledTime(v)
		return nil
	case triggerrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case triggerrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case triggerrecord.FieldStatus:
		v, ok := value.(triggerrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case triggerrecord.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case triggerrecord.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case triggerrecord.FieldOutcomeSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeSummary(v)
		return nil
	case triggerrecord.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case triggerrecord.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case triggerrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TriggerRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriggerRecordMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, triggerrecord.FieldRetryCount)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, triggerrecord.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriggerRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case triggerrecord.FieldRetryCount:
		return m.AddedRetryCount()
	case triggerrecord.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriggerRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case triggerrecord.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case triggerrecord.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown TriggerRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriggerRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triggerrecord.FieldStartedAt) {
		fields = append(fields, triggerrecord.FieldStartedAt)
	}
	if m.FieldCleared(triggerrecord.FieldCompletedAt) {
		fields = append(fields, triggerrecord.FieldCompletedAt)
	}
	if m.FieldCleared(triggerrecord.FieldError) {
		fields = append(fields, triggerrecord.FieldError)
	}
	if m.FieldCleared(triggerrecord.FieldOutcomeSummary) {
		fields = append(fields, triggerrecord.FieldOutcomeSummary)
	}
	if m.FieldCleared(triggerrecord.FieldData) {
		fields = append(fields, triggerrecord.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriggerRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriggerRecordMutation) ClearField(name string) error {
	switch name {
	case triggerrecord.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case triggerrecord.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case triggerrecord.FieldError:
		m.ClearError()
		return nil
	case triggerrecord.FieldOutcomeSummary:
		m.ClearOutcomeSummary()
		return nil
	case triggerrecord.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown TriggerRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriggerRecordMutation) ResetField(name string) error {
	switch name {
	case triggerrecord.FieldTriggerID:
		m.ResetTriggerID()
		return nil
	case triggerrecord.FieldScheduledTime:
		m.ResetScheduledTime()
		return nil
	case triggerrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case triggerrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case triggerrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case triggerrecord.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case triggerrecord.FieldError:
		m.ResetError()
		return nil
	case triggerrecord.FieldOutcomeSummary:
		m.ResetOutcomeSummary()
		return nil
	case triggerrecord.FieldData:
		m.ResetData()
		return nil
	case triggerrecord.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case triggerrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TriggerRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriggerRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriggerRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriggerRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriggerRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriggerRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriggerRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriggerRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TriggerRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriggerRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TriggerRecord edge %s", name)
}
