// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jackeyunjie/growthd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/jackeyunjie/growthd/ent/agentstate"
	"github.com/jackeyunjie/growthd/ent/cellstate"
	"github.com/jackeyunjie/growthd/ent/datalineage"
	"github.com/jackeyunjie/growthd/ent/meridianmetric"
	"github.com/jackeyunjie/growthd/ent/triggerrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentState is the client for interacting with the AgentState builders.
	AgentState *AgentStateClient
	// CellState is the client for interacting with the CellState builders.
	CellState *CellStateClient
	// DataLineage is the client for interacting with the DataLineage builders.
	DataLineage *DataLineageClient
	// MeridianMetric is the client for interacting with the MeridianMetric builders.
	MeridianMetric *MeridianMetricClient
	// TriggerRecord is the client for interacting with the TriggerRecord builders.
	TriggerRecord *TriggerRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentState = NewAgentStateClient(c.config)
	c.CellState = NewCellStateClient(c.config)
	c.DataLineage = NewDataLineageClient(c.config)
	c.MeridianMetric = NewMeridianMetricClient(c.config)
	c.TriggerRecord = NewTriggerRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentState:     NewAgentStateClient(cfg),
		CellState:      NewCellStateClient(cfg),
		DataLineage:    NewDataLineageClient(cfg),
		MeridianMetric: NewMeridianMetricClient(cfg),
		TriggerRecord:  NewTriggerRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentState:     NewAgentStateClient(cfg),
		CellState:      NewCellStateClient(cfg),
		DataLineage:    NewDataLineageClient(cfg),
		MeridianMetric: NewMeridianMetricClient(cfg),
		TriggerRecord:  NewTriggerRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentState.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AgentState.Use(hooks...)
	c.CellState.Use(hooks...)
	c.DataLineage.Use(hooks...)
	c.MeridianMetric.Use(hooks...)
	c.TriggerRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AgentState.Intercept(interceptors...)
	c.CellState.Intercept(interceptors...)
	c.DataLineage.Intercept(interceptors...)
	c.MeridianMetric.Intercept(interceptors...)
	c.TriggerRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentStateMutation:
		return c.AgentState.mutate(ctx, m)
	case *CellStateMutation:
		return c.CellState.mutate(ctx, m)
	case *DataLineageMutation:
		return c.DataLineage.mutate(ctx, m)
	case *MeridianMetricMutation:
		return c.MeridianMetric.mutate(ctx, m)
	case *TriggerRecordMutation:
		return c.TriggerRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentStateClient is a client for the AgentState schema.
type AgentStateClient struct {
	config
}

// NewAgentStateClient returns a client for the AgentState from the given config.
func NewAgentStateClient(c config) *AgentStateClient {
	return &AgentStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstate.Hooks(f(g(h())))`.
func (c *AgentStateClient) Use(hooks ...Hook) {
	c.hooks.AgentState = append(c.hooks.AgentState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstate.Intercept(f(g(h())))`.
func (c *AgentStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentState = append(c.inters.AgentState, interceptors...)
}

// Create returns a builder for creating a AgentState entity.
func (c *AgentStateClient) Create() *AgentStateCreate {
	mutation := newAgentStateMutation(c.config, OpCreate)
	return &AgentStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentState entities.
func (c *AgentStateClient) CreateBulk(builders ...*AgentStateCreate) *AgentStateCreateBulk {
	return &AgentStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStateClient) MapCreateBulk(slice any, setFunc func(*AgentStateCreate, int)) *AgentStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStateCreateBulk{err: fmt.Errorf("calling to AgentStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentState.
func (c *AgentStateClient) Update() *AgentStateUpdate {
	mutation := newAgentStateMutation(c.config, OpUpdate)
	return &AgentStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStateClient) UpdateOne(_m *AgentState) *AgentStateUpdateOne {
	mutation := newAgentStateMutation(c.config, OpUpdateOne, withAgentState(_m))
	return &AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStateClient) UpdateOneID(id string) *AgentStateUpdateOne {
	mutation := newAgentStateMutation(c.config, OpUpdateOne, withAgentStateID(id))
	return &AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentState.
func (c *AgentStateClient) Delete() *AgentStateDelete {
	mutation := newAgentStateMutation(c.config, OpDelete)
	return &AgentStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStateClient) DeleteOne(_m *AgentState) *AgentStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStateClient) DeleteOneID(id string) *AgentStateDeleteOne {
	builder := c.Delete().Where(agentstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStateDeleteOne{builder}
}

// Query returns a query builder for AgentState.
func (c *AgentStateClient) Query() *AgentStateQuery {
	return &AgentStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentState},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentState entity by its id.
func (c *AgentStateClient) Get(ctx context.Context, id string) (*AgentState, error) {
	return c.Query().Where(agentstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStateClient) GetX(ctx context.Context, id string) *AgentState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentStateClient) Hooks() []Hook {
	return c.hooks.AgentState
}

// Interceptors returns the client interceptors.
func (c *AgentStateClient) Interceptors() []Interceptor {
	return c.inters.AgentState
}

func (c *AgentStateClient) mutate(ctx context.Context, m *AgentStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentState mutation op: %q", m.Op())
	}
}

// CellStateClient is a client for the CellState schema.
type CellStateClient struct {
	config
}

// NewCellStateClient returns a client for the CellState from the given config.
func NewCellStateClient(c config) *CellStateClient {
	return &CellStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cellstate.Hooks(f(g(h())))`.
func (c *CellStateClient) Use(hooks ...Hook) {
	c.hooks.CellState = append(c.hooks.CellState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cellstate.Intercept(f(g(h())))`.
func (c *CellStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.CellState = append(c.inters.CellState, interceptors...)
}

// Create returns a builder for creating a CellState entity.
func (c *CellStateClient) Create() *CellStateCreate {
	mutation := newCellStateMutation(c.config, OpCreate)
	return &CellStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CellState entities.
func (c *CellStateClient) CreateBulk(builders ...*CellStateCreate) *CellStateCreateBulk {
	return &CellStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CellStateClient) MapCreateBulk(slice any, setFunc func(*CellStateCreate, int)) *CellStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CellStateCreateBulk{err: fmt.Errorf("calling to CellStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CellStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CellStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CellState.
func (c *CellStateClient) Update() *CellStateUpdate {
	mutation := newCellStateMutation(c.config, OpUpdate)
	return &CellStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CellStateClient) UpdateOne(_m *CellState) *CellStateUpdateOne {
	mutation := newCellStateMutation(c.config, OpUpdateOne, withCellState(_m))
	return &CellStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CellStateClient) UpdateOneID(id string) *CellStateUpdateOne {
	mutation := newCellStateMutation(c.config, OpUpdateOne, withCellStateID(id))
	return &CellStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CellState.
func (c *CellStateClient) Delete() *CellStateDelete {
	mutation := newCellStateMutation(c.config, OpDelete)
	return &CellStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CellStateClient) DeleteOne(_m *CellState) *CellStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CellStateClient) DeleteOneID(id string) *CellStateDeleteOne {
	builder := c.Delete().Where(cellstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CellStateDeleteOne{builder}
}

// Query returns a query builder for CellState.
func (c *CellStateClient) Query() *CellStateQuery {
	return &CellStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCellState},
		inters: c.Interceptors(),
	}
}

// Get returns a CellState entity by its id.
func (c *CellStateClient) Get(ctx context.Context, id string) (*CellState, error) {
	return c.Query().Where(cellstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CellStateClient) GetX(ctx context.Context, id string) *CellState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CellStateClient) Hooks() []Hook {
	return c.hooks.CellState
}

// Interceptors returns the client interceptors.
func (c *CellStateClient) Interceptors() []Interceptor {
	return c.inters.CellState
}

func (c *CellStateClient) mutate(ctx context.Context, m *CellStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CellStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CellStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CellStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CellStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CellState mutation op: %q", m.Op())
	}
}

// DataLineageClient is a client for the DataLineage schema.
type DataLineageClient struct {
	config
}

// NewDataLineageClient returns a client for the DataLineage from the given config.
func NewDataLineageClient(c config) *DataLineageClient {
	return &DataLineageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `datalineage.Hooks(f(g(h())))`.
func (c *DataLineageClient) Use(hooks ...Hook) {
	c.hooks.DataLineage = append(c.hooks.DataLineage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `datalineage.Intercept(f(g(h())))`.
func (c *DataLineageClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataLineage = append(c.inters.DataLineage, interceptors...)
}

// Create returns a builder for creating a DataLineage entity.
func (c *DataLineageClient) Create() *DataLineageCreate {
	mutation := newDataLineageMutation(c.config, OpCreate)
	return &DataLineageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataLineage entities.
func (c *DataLineageClient) CreateBulk(builders ...*DataLineageCreate) *DataLineageCreateBulk {
	return &DataLineageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataLineageClient) MapCreateBulk(slice any, setFunc func(*DataLineageCreate, int)) *DataLineageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataLineageCreateBulk{err: fmt.Errorf("calling to DataLineageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataLineageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataLineageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataLineage.
func (c *DataLineageClient) Update() *DataLineageUpdate {
	mutation := newDataLineageMutation(c.config, OpUpdate)
	return &DataLineageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataLineageClient) UpdateOne(_m *DataLineage) *DataLineageUpdateOne {
	mutation := newDataLineageMutation(c.config, OpUpdateOne, withDataLineage(_m))
	return &DataLineageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataLineageClient) UpdateOneID(id string) *DataLineageUpdateOne {
	mutation := newDataLineageMutation(c.config, OpUpdateOne, withDataLineageID(id))
	return &DataLineageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataLineage.
func (c *DataLineageClient) Delete() *DataLineageDelete {
	mutation := newDataLineageMutation(c.config, OpDelete)
	return &DataLineageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataLineageClient) DeleteOne(_m *DataLineage) *DataLineageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataLineageClient) DeleteOneID(id string) *DataLineageDeleteOne {
	builder := c.Delete().Where(datalineage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataLineageDeleteOne{builder}
}

// Query returns a query builder for DataLineage.
func (c *DataLineageClient) Query() *DataLineageQuery {
	return &DataLineageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataLineage},
		inters: c.Interceptors(),
	}
}

// Get returns a DataLineage entity by its id.
func (c *DataLineageClient) Get(ctx context.Context, id string) (*DataLineage, error) {
	return c.Query().Where(datalineage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataLineageClient) GetX(ctx context.Context, id string) *DataLineage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DataLineageClient) Hooks() []Hook {
	return c.hooks.DataLineage
}

// Interceptors returns the client interceptors.
func (c *DataLineageClient) Interceptors() []Interceptor {
	return c.inters.DataLineage
}

func (c *DataLineageClient) mutate(ctx context.Context, m *DataLineageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataLineageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataLineageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataLineageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataLineageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataLineage mutation op: %q", m.Op())
	}
}

// MeridianMetricClient is a client for the MeridianMetric schema.
type MeridianMetricClient struct {
	config
}

// NewMeridianMetricClient returns a client for the MeridianMetric from the given config.
func NewMeridianMetricClient(c config) *MeridianMetricClient {
	return &MeridianMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meridianmetric.Hooks(f(g(h())))`.
func (c *MeridianMetricClient) Use(hooks ...Hook) {
	c.hooks.MeridianMetric = append(c.hooks.MeridianMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meridianmetric.Intercept(f(g(h())))`.
func (c *MeridianMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.MeridianMetric = append(c.inters.MeridianMetric, interceptors...)
}

// Create returns a builder for creating a MeridianMetric entity.
func (c *MeridianMetricClient) Create() *MeridianMetricCreate {
	mutation := newMeridianMetricMutation(c.config, OpCreate)
	return &MeridianMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MeridianMetric entities.
func (c *MeridianMetricClient) CreateBulk(builders ...*MeridianMetricCreate) *MeridianMetricCreateBulk {
	return &MeridianMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeridianMetricClient) MapCreateBulk(slice any, setFunc func(*MeridianMetricCreate, int)) *MeridianMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeridianMetricCreateBulk{err: fmt.Errorf("calling to MeridianMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeridianMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeridianMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MeridianMetric.
func (c *MeridianMetricClient) Update() *MeridianMetricUpdate {
	mutation := newMeridianMetricMutation(c.config, OpUpdate)
	return &MeridianMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeridianMetricClient) UpdateOne(_m *MeridianMetric) *MeridianMetricUpdateOne {
	mutation := newMeridianMetricMutation(c.config, OpUpdateOne, withMeridianMetric(_m))
	return &MeridianMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeridianMetricClient) UpdateOneID(id int) *MeridianMetricUpdateOne {
	mutation := newMeridianMetricMutation(c.config, OpUpdateOne, withMeridianMetricID(id))
	return &MeridianMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MeridianMetric.
func (c *MeridianMetricClient) Delete() *MeridianMetricDelete {
	mutation := newMeridianMetricMutation(c.config, OpDelete)
	return &MeridianMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeridianMetricClient) DeleteOne(_m *MeridianMetric) *MeridianMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeridianMetricClient) DeleteOneID(id int) *MeridianMetricDeleteOne {
	builder := c.Delete().Where(meridianmetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeridianMetricDeleteOne{builder}
}

// Query returns a query builder for MeridianMetric.
func (c *MeridianMetricClient) Query() *MeridianMetricQuery {
	return &MeridianMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeridianMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a MeridianMetric entity by its id.
func (c *MeridianMetricClient) Get(ctx context.Context, id int) (*MeridianMetric, error) {
	return c.Query().Where(meridianmetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeridianMetricClient) GetX(ctx context.Context, id int) *MeridianMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeridianMetricClient) Hooks() []Hook {
	return c.hooks.MeridianMetric
}

// Interceptors returns the client interceptors.
func (c *MeridianMetricClient) Interceptors() []Interceptor {
	return c.inters.MeridianMetric
}

func (c *MeridianMetricClient) mutate(ctx context.Context, m *MeridianMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeridianMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeridianMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeridianMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeridianMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MeridianMetric mutation op: %q", m.Op())
	}
}

// TriggerRecordClient is a client for the TriggerRecord schema.
type TriggerRecordClient struct {
	config
}

// NewTriggerRecordClient returns a client for the TriggerRecord from the given config.
func NewTriggerRecordClient(c config) *TriggerRecordClient {
	return &TriggerRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `triggerrecord.Hooks(f(g(h())))`.
func (c *TriggerRecordClient) Use(hooks ...Hook) {
	c.hooks.TriggerRecord = append(c.hooks.TriggerRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `triggerrecord.Intercept(f(g(h())))`.
func (c *TriggerRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.TriggerRecord = append(c.inters.TriggerRecord, interceptors...)
}

// Create returns a builder for creating a TriggerRecord entity.
func (c *TriggerRecordClient) Create() *TriggerRecordCreate {
	mutation := newTriggerRecordMutation(c.config, OpCreate)
	return &TriggerRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TriggerRecord entities.
func (c *TriggerRecordClient) CreateBulk(builders ...*TriggerRecordCreate) *TriggerRecordCreateBulk {
	return &TriggerRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TriggerRecordClient) MapCreateBulk(slice any, setFunc func(*TriggerRecordCreate, int)) *TriggerRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TriggerRecordCreateBulk{err: fmt.Errorf("calling to TriggerRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TriggerRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TriggerRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TriggerRecord.
func (c *TriggerRecordClient) Update() *TriggerRecordUpdate {
	mutation := newTriggerRecordMutation(c.config, OpUpdate)
	return &TriggerRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TriggerRecordClient) UpdateOne(_m *TriggerRecord) *TriggerRecordUpdateOne {
	mutation := newTriggerRecordMutation(c.config, OpUpdateOne, withTriggerRecord(_m))
	return &TriggerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TriggerRecordClient) UpdateOneID(id string) *TriggerRecordUpdateOne {
	mutation := newTriggerRecordMutation(c.config, OpUpdateOne, withTriggerRecordID(id))
	return &TriggerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TriggerRecord.
func (c *TriggerRecordClient) Delete() *TriggerRecordDelete {
	mutation := newTriggerRecordMutation(c.config, OpDelete)
	return &TriggerRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TriggerRecordClient) DeleteOne(_m *TriggerRecord) *TriggerRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TriggerRecordClient) DeleteOneID(id string) *TriggerRecordDeleteOne {
	builder := c.Delete().Where(triggerrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TriggerRecordDeleteOne{builder}
}

// Query returns a query builder for TriggerRecord.
func (c *TriggerRecordClient) Query() *TriggerRecordQuery {
	return &TriggerRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTriggerRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a TriggerRecord entity by its id.
func (c *TriggerRecordClient) Get(ctx context.Context, id string) (*TriggerRecord, error) {
	return c.Query().Where(triggerrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TriggerRecordClient) GetX(ctx context.Context, id string) *TriggerRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TriggerRecordClient) Hooks() []Hook {
	return c.hooks.TriggerRecord
}

// Interceptors returns the client interceptors.
func (c *TriggerRecordClient) Interceptors() []Interceptor {
	return c.inters.TriggerRecord
}

func (c *TriggerRecordClient) mutate(ctx context.Context, m *TriggerRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TriggerRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TriggerRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TriggerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TriggerRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TriggerRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentState, CellState, DataLineage, MeridianMetric, TriggerRecord []ent.Hook
	}
	inters struct {
		AgentState, CellState, DataLineage, MeridianMetric,
		TriggerRecord []ent.Interceptor
	}
)
