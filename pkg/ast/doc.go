/*
Package ast defines the compiled expression tree.

Per the engine's design preference for a monomorphic hot path, a Node
is a single tagged struct carrying a Kind and a union of typed fields
(the field a given Kind uses), rather than a tree of polymorphic
node types. This is grounded on the ExprNode/ExprNodeType shape in the
retrieved jinja-go expression package — the only file in the corpus
building exactly this kind of tagged-struct expression tree — adapted
to this language's own node shapes (Ternary, Chain, Index, assignment
handled as ordinary Binary nodes, and so on).

A Node is immutable once built and owns its children exclusively; it
holds no reference into the source text it was parsed from.
*/
package ast
