/*
Package operator implements the operator registry: the symbol/word →
precedence, arity, and handler table the parser consults for
precedence climbing and the evaluator consults to execute a Binary or
Unary node.

Entries live in a registry.Registry[string, *Entry] — the teacher's
generic thread-safe registry, reused directly rather than rebuilt,
since a Table is read-heavy (one lookup per operator node evaluated)
and occasionally redirected by a host before evaluation begins.

Redirection (Table.Redirect) replaces only a registered entry's
handler; precedence and associativity are copied from the existing
entry and cannot be changed by the call, so redirecting "+" can never
change where "+" binds relative to "*".
*/
package operator
