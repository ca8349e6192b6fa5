package exprctx

import (
	"log/slog"

	"github.com/randalmurphal/exprlang/pkg/config"
	"github.com/randalmurphal/exprlang/pkg/diag"
	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/operator"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// Function is a host-supplied callable, invoked by Reference (with no
// arguments) or Call (with the evaluated argument list) nodes.
type Function func(args []value.Value) (value.Value, error)

// Context holds the variable and function bindings an evaluation
// consults and mutates, plus a handle to the operator table used for
// dispatch and redirection. The zero Context is not usable; construct
// one with New.
type Context struct {
	vars  map[string]value.Value
	funcs map[string]Function
	table *operator.Table

	// Ambient observability plumbing, set by the root package's
	// ContextOption functions. All are nil-safe no-ops by default so
	// a Context built directly with New (bypassing the facade) never
	// needs to care about them.
	logger  *slog.Logger
	spans   diag.SpanManager
	metrics diag.MetricsRecorder
	config  config.Config
}

// New creates an empty Context backed by table. Pass operator.DefaultTable()
// to get the engine's builtin operator set.
func New(table *operator.Table) *Context {
	if table == nil {
		table = operator.DefaultTable()
	}
	return &Context{
		vars:    make(map[string]value.Value),
		funcs:   make(map[string]Function),
		table:   table,
		spans:   diag.NoopSpanManager{},
		metrics: diag.NoopMetrics{},
		config:  config.New(nil),
	}
}

// Logger returns the Context's logger, or nil if none was configured;
// diag's helpers are nil-safe and treat a nil logger as disabled.
func (c *Context) Logger() *slog.Logger { return c.logger }

// SetLogger installs logger, used by the root package's WithLogger option.
func (c *Context) SetLogger(logger *slog.Logger) { c.logger = logger }

// Spans returns the Context's SpanManager, defaulting to a no-op.
func (c *Context) Spans() diag.SpanManager { return c.spans }

// SetSpans installs mgr, used by the root package's WithTracing option.
func (c *Context) SetSpans(mgr diag.SpanManager) {
	if mgr == nil {
		mgr = diag.NoopSpanManager{}
	}
	c.spans = mgr
}

// Metrics returns the Context's MetricsRecorder, defaulting to a no-op.
func (c *Context) Metrics() diag.MetricsRecorder { return c.metrics }

// SetMetrics installs rec, used by the root package's WithMetrics option.
func (c *Context) SetMetrics(rec diag.MetricsRecorder) {
	if rec == nil {
		rec = diag.NoopMetrics{}
	}
	c.metrics = rec
}

// Config returns the Context's ambient configuration (§6.1).
func (c *Context) Config() config.Config { return c.config }

// SetConfig installs cfg, used by the root package's WithConfig option.
func (c *Context) SetConfig(cfg config.Config) { c.config = cfg }

// Table returns the operator table this Context dispatches through.
func (c *Context) Table() *operator.Table {
	return c.table
}

// Bind sets the variable name to val, overwriting any prior binding.
func (c *Context) Bind(name string, val value.Value) {
	c.vars[name] = val
}

// Lookup returns the variable bound to name and whether it is bound.
func (c *Context) Lookup(name string) (value.Value, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Unbind removes name from the variable map, if present.
func (c *Context) Unbind(name string) {
	delete(c.vars, name)
}

// BindFunc registers fn under name, overwriting any prior binding.
func (c *Context) BindFunc(name string, fn Function) {
	c.funcs[name] = fn
}

// LookupFunc returns the function bound to name and whether it is bound.
func (c *Context) LookupFunc(name string) (Function, bool) {
	fn, ok := c.funcs[name]
	return fn, ok
}

// UnbindFunc removes name from the function map, if present.
func (c *Context) UnbindFunc(name string) {
	delete(c.funcs, name)
}

// RedirectOperator replaces symbol's handler in this Context's
// operator table, preserving its precedence and arity (§4.3). It
// reports an Internal error if symbol/arity is not already registered.
func (c *Context) RedirectOperator(symbol string, arity operator.Arity, handler operator.Handler) error {
	if err := c.table.Redirect(symbol, arity, handler); err != nil {
		return err
	}
	return nil
}

// Resolve implements the Reference lookup rule from §4.5: a bare
// identifier first resolves against the variable map; failing that,
// against a zero-argument function, which is invoked immediately;
// failing both, it reports a Resolve error.
func (c *Context) Resolve(name string) (value.Value, error) {
	if v, ok := c.vars[name]; ok {
		return v, nil
	}
	if fn, ok := c.funcs[name]; ok {
		return fn(nil)
	}
	return value.Value{}, errs.ResolveError("undefined variable or function %q", name)
}

// ResolveFunc looks up a function for a Call node, returning a Resolve
// error if name is unbound.
func (c *Context) ResolveFunc(name string) (Function, error) {
	fn, ok := c.funcs[name]
	if !ok {
		return nil, errs.ResolveError("undefined function %q", name)
	}
	return fn, nil
}
