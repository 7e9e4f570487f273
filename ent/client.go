// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/rsoarez/planista/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/completionevent"
	"github.com/rsoarez/planista/ent/llmrequestevent"
	"github.com/rsoarez/planista/ent/planevent"
	"github.com/rsoarez/planista/ent/rescheduleevent"
	"github.com/rsoarez/planista/ent/snapshot"
	"github.com/rsoarez/planista/ent/studyunit"
	"github.com/rsoarez/planista/ent/subject"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CompletionEvent is the client for interacting with the CompletionEvent builders.
	CompletionEvent *CompletionEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PlanEvent is the client for interacting with the PlanEvent builders.
	PlanEvent *PlanEventClient
	// RescheduleEvent is the client for interacting with the RescheduleEvent builders.
	RescheduleEvent *RescheduleEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// StudyUnit is the client for interacting with the StudyUnit builders.
	StudyUnit *StudyUnitClient
	// Subject is the client for interacting with the Subject builders.
	Subject *SubjectClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CompletionEvent = NewCompletionEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PlanEvent = NewPlanEventClient(c.config)
	c.RescheduleEvent = NewRescheduleEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.StudyUnit = NewStudyUnitClient(c.config)
	c.Subject = NewSubjectClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		CompletionEvent: NewCompletionEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PlanEvent:       NewPlanEventClient(cfg),
		RescheduleEvent: NewRescheduleEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		StudyUnit:       NewStudyUnitClient(cfg),
		Subject:         NewSubjectClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		CompletionEvent: NewCompletionEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PlanEvent:       NewPlanEventClient(cfg),
		RescheduleEvent: NewRescheduleEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		StudyUnit:       NewStudyUnitClient(cfg),
		Subject:         NewSubjectClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CompletionEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.CompletionEvent, c.LLMRequestEvent, c.PlanEvent, c.RescheduleEvent,
		c.Snapshot, c.StudyUnit, c.Subject,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CompletionEvent, c.LLMRequestEvent, c.PlanEvent, c.RescheduleEvent,
		c.Snapshot, c.StudyUnit, c.Subject,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompletionEventMutation:
		return c.CompletionEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PlanEventMutation:
		return c.PlanEvent.mutate(ctx, m)
	case *RescheduleEventMutation:
		return c.RescheduleEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *StudyUnitMutation:
		return c.StudyUnit.mutate(ctx, m)
	case *SubjectMutation:
		return c.Subject.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompletionEventClient is a client for the CompletionEvent schema.
type CompletionEventClient struct {
	config
}

// NewCompletionEventClient returns a client for the CompletionEvent from the given config.
func NewCompletionEventClient(c config) *CompletionEventClient {
	return &CompletionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completionevent.Hooks(f(g(h())))`.
func (c *CompletionEventClient) Use(hooks ...Hook) {
	c.hooks.CompletionEvent = append(c.hooks.CompletionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completionevent.Intercept(f(g(h())))`.
func (c *CompletionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompletionEvent = append(c.inters.CompletionEvent, interceptors...)
}

// Create returns a builder for creating a CompletionEvent entity.
func (c *CompletionEventClient) Create() *CompletionEventCreate {
	mutation := newCompletionEventMutation(c.config, OpCreate)
	return &CompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompletionEvent entities.
func (c *CompletionEventClient) CreateBulk(builders ...*CompletionEventCreate) *CompletionEventCreateBulk {
	return &CompletionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionEventClient) MapCreateBulk(slice any, setFunc func(*CompletionEventCreate, int)) *CompletionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionEventCreateBulk{err: fmt.Errorf("calling to CompletionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompletionEvent.
func (c *CompletionEventClient) Update() *CompletionEventUpdate {
	mutation := newCompletionEventMutation(c.config, OpUpdate)
	return &CompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionEventClient) UpdateOne(_m *CompletionEvent) *CompletionEventUpdateOne {
	mutation := newCompletionEventMutation(c.config, OpUpdateOne, withCompletionEvent(_m))
	return &CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionEventClient) UpdateOneID(id int) *CompletionEventUpdateOne {
	mutation := newCompletionEventMutation(c.config, OpUpdateOne, withCompletionEventID(id))
	return &CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompletionEvent.
func (c *CompletionEventClient) Delete() *CompletionEventDelete {
	mutation := newCompletionEventMutation(c.config, OpDelete)
	return &CompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionEventClient) DeleteOne(_m *CompletionEvent) *CompletionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionEventClient) DeleteOneID(id int) *CompletionEventDeleteOne {
	builder := c.Delete().Where(completionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionEventDeleteOne{builder}
}

// Query returns a query builder for CompletionEvent.
func (c *CompletionEventClient) Query() *CompletionEventQuery {
	return &CompletionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CompletionEvent entity by its id.
func (c *CompletionEventClient) Get(ctx context.Context, id int) (*CompletionEvent, error) {
	return c.Query().Where(completionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionEventClient) GetX(ctx context.Context, id int) *CompletionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompletionEventClient) Hooks() []Hook {
	return c.hooks.CompletionEvent
}

// Interceptors returns the client interceptors.
func (c *CompletionEventClient) Interceptors() []Interceptor {
	return c.inters.CompletionEvent
}

func (c *CompletionEventClient) mutate(ctx context.Context, m *CompletionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompletionEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PlanEventClient is a client for the PlanEvent schema.
type PlanEventClient struct {
	config
}

// NewPlanEventClient returns a client for the PlanEvent from the given config.
func NewPlanEventClient(c config) *PlanEventClient {
	return &PlanEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `planevent.Hooks(f(g(h())))`.
func (c *PlanEventClient) Use(hooks ...Hook) {
	c.hooks.PlanEvent = append(c.hooks.PlanEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `planevent.Intercept(f(g(h())))`.
func (c *PlanEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlanEvent = append(c.inters.PlanEvent, interceptors...)
}

// Create returns a builder for creating a PlanEvent entity.
func (c *PlanEventClient) Create() *PlanEventCreate {
	mutation := newPlanEventMutation(c.config, OpCreate)
	return &PlanEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlanEvent entities.
func (c *PlanEventClient) CreateBulk(builders ...*PlanEventCreate) *PlanEventCreateBulk {
	return &PlanEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanEventClient) MapCreateBulk(slice any, setFunc func(*PlanEventCreate, int)) *PlanEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanEventCreateBulk{err: fmt.Errorf("calling to PlanEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlanEvent.
func (c *PlanEventClient) Update() *PlanEventUpdate {
	mutation := newPlanEventMutation(c.config, OpUpdate)
	return &PlanEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanEventClient) UpdateOne(_m *PlanEvent) *PlanEventUpdateOne {
	mutation := newPlanEventMutation(c.config, OpUpdateOne, withPlanEvent(_m))
	return &PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanEventClient) UpdateOneID(id int) *PlanEventUpdateOne {
	mutation := newPlanEventMutation(c.config, OpUpdateOne, withPlanEventID(id))
	return &PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlanEvent.
func (c *PlanEventClient) Delete() *PlanEventDelete {
	mutation := newPlanEventMutation(c.config, OpDelete)
	return &PlanEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanEventClient) DeleteOne(_m *PlanEvent) *PlanEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanEventClient) DeleteOneID(id int) *PlanEventDeleteOne {
	builder := c.Delete().Where(planevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanEventDeleteOne{builder}
}

// Query returns a query builder for PlanEvent.
func (c *PlanEventClient) Query() *PlanEventQuery {
	return &PlanEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlanEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PlanEvent entity by its id.
func (c *PlanEventClient) Get(ctx context.Context, id int) (*PlanEvent, error) {
	return c.Query().Where(planevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanEventClient) GetX(ctx context.Context, id int) *PlanEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlanEventClient) Hooks() []Hook {
	return c.hooks.PlanEvent
}

// Interceptors returns the client interceptors.
func (c *PlanEventClient) Interceptors() []Interceptor {
	return c.inters.PlanEvent
}

func (c *PlanEventClient) mutate(ctx context.Context, m *PlanEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlanEvent mutation op: %q", m.Op())
	}
}

// RescheduleEventClient is a client for the RescheduleEvent schema.
type RescheduleEventClient struct {
	config
}

// NewRescheduleEventClient returns a client for the RescheduleEvent from the given config.
func NewRescheduleEventClient(c config) *RescheduleEventClient {
	return &RescheduleEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rescheduleevent.Hooks(f(g(h())))`.
func (c *RescheduleEventClient) Use(hooks ...Hook) {
	c.hooks.RescheduleEvent = append(c.hooks.RescheduleEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rescheduleevent.Intercept(f(g(h())))`.
func (c *RescheduleEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RescheduleEvent = append(c.inters.RescheduleEvent, interceptors...)
}

// Create returns a builder for creating a RescheduleEvent entity.
func (c *RescheduleEventClient) Create() *RescheduleEventCreate {
	mutation := newRescheduleEventMutation(c.config, OpCreate)
	return &RescheduleEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RescheduleEvent entities.
func (c *RescheduleEventClient) CreateBulk(builders ...*RescheduleEventCreate) *RescheduleEventCreateBulk {
	return &RescheduleEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RescheduleEventClient) MapCreateBulk(slice any, setFunc func(*RescheduleEventCreate, int)) *RescheduleEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RescheduleEventCreateBulk{err: fmt.Errorf("calling to RescheduleEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RescheduleEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RescheduleEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RescheduleEvent.
func (c *RescheduleEventClient) Update() *RescheduleEventUpdate {
	mutation := newRescheduleEventMutation(c.config, OpUpdate)
	return &RescheduleEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RescheduleEventClient) UpdateOne(_m *RescheduleEvent) *RescheduleEventUpdateOne {
	mutation := newRescheduleEventMutation(c.config, OpUpdateOne, withRescheduleEvent(_m))
	return &RescheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RescheduleEventClient) UpdateOneID(id int) *RescheduleEventUpdateOne {
	mutation := newRescheduleEventMutation(c.config, OpUpdateOne, withRescheduleEventID(id))
	return &RescheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RescheduleEvent.
func (c *RescheduleEventClient) Delete() *RescheduleEventDelete {
	mutation := newRescheduleEventMutation(c.config, OpDelete)
	return &RescheduleEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RescheduleEventClient) DeleteOne(_m *RescheduleEvent) *RescheduleEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RescheduleEventClient) DeleteOneID(id int) *RescheduleEventDeleteOne {
	builder := c.Delete().Where(rescheduleevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RescheduleEventDeleteOne{builder}
}

// Query returns a query builder for RescheduleEvent.
func (c *RescheduleEventClient) Query() *RescheduleEventQuery {
	return &RescheduleEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRescheduleEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RescheduleEvent entity by its id.
func (c *RescheduleEventClient) Get(ctx context.Context, id int) (*RescheduleEvent, error) {
	return c.Query().Where(rescheduleevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RescheduleEventClient) GetX(ctx context.Context, id int) *RescheduleEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RescheduleEventClient) Hooks() []Hook {
	return c.hooks.RescheduleEvent
}

// Interceptors returns the client interceptors.
func (c *RescheduleEventClient) Interceptors() []Interceptor {
	return c.inters.RescheduleEvent
}

func (c *RescheduleEventClient) mutate(ctx context.Context, m *RescheduleEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RescheduleEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RescheduleEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RescheduleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RescheduleEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RescheduleEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// StudyUnitClient is a client for the StudyUnit schema.
type StudyUnitClient struct {
	config
}

// NewStudyUnitClient returns a client for the StudyUnit from the given config.
func NewStudyUnitClient(c config) *StudyUnitClient {
	return &StudyUnitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studyunit.Hooks(f(g(h())))`.
func (c *StudyUnitClient) Use(hooks ...Hook) {
	c.hooks.StudyUnit = append(c.hooks.StudyUnit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studyunit.Intercept(f(g(h())))`.
func (c *StudyUnitClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyUnit = append(c.inters.StudyUnit, interceptors...)
}

// Create returns a builder for creating a StudyUnit entity.
func (c *StudyUnitClient) Create() *StudyUnitCreate {
	mutation := newStudyUnitMutation(c.config, OpCreate)
	return &StudyUnitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyUnit entities.
func (c *StudyUnitClient) CreateBulk(builders ...*StudyUnitCreate) *StudyUnitCreateBulk {
	return &StudyUnitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyUnitClient) MapCreateBulk(slice any, setFunc func(*StudyUnitCreate, int)) *StudyUnitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyUnitCreateBulk{err: fmt.Errorf("calling to StudyUnitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyUnitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyUnitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyUnit.
func (c *StudyUnitClient) Update() *StudyUnitUpdate {
	mutation := newStudyUnitMutation(c.config, OpUpdate)
	return &StudyUnitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyUnitClient) UpdateOne(_m *StudyUnit) *StudyUnitUpdateOne {
	mutation := newStudyUnitMutation(c.config, OpUpdateOne, withStudyUnit(_m))
	return &StudyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyUnitClient) UpdateOneID(id int) *StudyUnitUpdateOne {
	mutation := newStudyUnitMutation(c.config, OpUpdateOne, withStudyUnitID(id))
	return &StudyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyUnit.
func (c *StudyUnitClient) Delete() *StudyUnitDelete {
	mutation := newStudyUnitMutation(c.config, OpDelete)
	return &StudyUnitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyUnitClient) DeleteOne(_m *StudyUnit) *StudyUnitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyUnitClient) DeleteOneID(id int) *StudyUnitDeleteOne {
	builder := c.Delete().Where(studyunit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyUnitDeleteOne{builder}
}

// Query returns a query builder for StudyUnit.
func (c *StudyUnitClient) Query() *StudyUnitQuery {
	return &StudyUnitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyUnit},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyUnit entity by its id.
func (c *StudyUnitClient) Get(ctx context.Context, id int) (*StudyUnit, error) {
	return c.Query().Where(studyunit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyUnitClient) GetX(ctx context.Context, id int) *StudyUnit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyUnitClient) Hooks() []Hook {
	return c.hooks.StudyUnit
}

// Interceptors returns the client interceptors.
func (c *StudyUnitClient) Interceptors() []Interceptor {
	return c.inters.StudyUnit
}

func (c *StudyUnitClient) mutate(ctx context.Context, m *StudyUnitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyUnitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyUnitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyUnitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyUnit mutation op: %q", m.Op())
	}
}

// SubjectClient is a client for the Subject schema.
type SubjectClient struct {
	config
}

// NewSubjectClient returns a client for the Subject from the given config.
func NewSubjectClient(c config) *SubjectClient {
	return &SubjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subject.Hooks(f(g(h())))`.
func (c *SubjectClient) Use(hooks ...Hook) {
	c.hooks.Subject = append(c.hooks.Subject, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subject.Intercept(f(g(h())))`.
func (c *SubjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subject = append(c.inters.Subject, interceptors...)
}

// Create returns a builder for creating a Subject entity.
func (c *SubjectClient) Create() *SubjectCreate {
	mutation := newSubjectMutation(c.config, OpCreate)
	return &SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subject entities.
func (c *SubjectClient) CreateBulk(builders ...*SubjectCreate) *SubjectCreateBulk {
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectClient) MapCreateBulk(slice any, setFunc func(*SubjectCreate, int)) *SubjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectCreateBulk{err: fmt.Errorf("calling to SubjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subject.
func (c *SubjectClient) Update() *SubjectUpdate {
	mutation := newSubjectMutation(c.config, OpUpdate)
	return &SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectClient) UpdateOne(_m *Subject) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubject(_m))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectClient) UpdateOneID(id int) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubjectID(id))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subject.
func (c *SubjectClient) Delete() *SubjectDelete {
	mutation := newSubjectMutation(c.config, OpDelete)
	return &SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectClient) DeleteOne(_m *Subject) *SubjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectClient) DeleteOneID(id int) *SubjectDeleteOne {
	builder := c.Delete().Where(subject.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectDeleteOne{builder}
}

// Query returns a query builder for Subject.
func (c *SubjectClient) Query() *SubjectQuery {
	return &SubjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubject},
		inters: c.Interceptors(),
	}
}

// Get returns a Subject entity by its id.
func (c *SubjectClient) Get(ctx context.Context, id int) (*Subject, error) {
	return c.Query().Where(subject.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectClient) GetX(ctx context.Context, id int) *Subject {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubjectClient) Hooks() []Hook {
	return c.hooks.Subject
}

// Interceptors returns the client interceptors.
func (c *SubjectClient) Interceptors() []Interceptor {
	return c.inters.Subject
}

func (c *SubjectClient) mutate(ctx context.Context, m *SubjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subject mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CompletionEvent, LLMRequestEvent, PlanEvent, RescheduleEvent, Snapshot,
		StudyUnit, Subject []ent.Hook
	}
	inters struct {
		CompletionEvent, LLMRequestEvent, PlanEvent, RescheduleEvent, Snapshot,
		StudyUnit, Subject []ent.Interceptor
	}
)
