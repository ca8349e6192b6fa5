package exprctx

import (
	"sync/atomic"

	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// DepthGuard returns a zero-argument Function a host can bind under a
// name of its choosing (e.g. "guard") and call at the top of a
// recursive user expression to bound recursion depth by call count.
// The engine itself imposes no such limit (§5); this is a host-side
// opt-in helper only.
//
// Every call increments an internal counter; each call that brings it
// past max returns an Arity error (the counter keeps counting). The
// counter is not reset between calls — a host that wants a fresh
// budget per Execute call should construct a new guard per call.
func DepthGuard(max int) Function {
	var calls int64
	return func(_ []value.Value) (value.Value, error) {
		n := atomic.AddInt64(&calls, 1)
		if int(n) > max {
			return value.Value{}, errs.ArityError("guard", "exceeded call depth limit of %d", max)
		}
		return value.None, nil
	}
}
