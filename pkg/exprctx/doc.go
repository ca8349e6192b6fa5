// Package exprctx defines Context, the host-supplied bindings
// consulted by package eval: variables, functions, and a handle to
// the operator table used for redirection.
//
// A Context is not safe for concurrent mutation. Assignment operators
// write into the variable map during a single Execute/ExecuteAST
// call, so the engine treats a Context as single-writer per call
// (§5). A Context with no assignment operators in the expressions run
// against it may be shared read-only across goroutines, matching the
// operator table's own RWMutex-guarded read path.
package exprctx
