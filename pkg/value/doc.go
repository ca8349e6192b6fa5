/*
Package value defines the dynamically typed value every exprlang
expression produces.

# Variants

A Value is one of six variants, tagged by Kind: Number, Bool, String,
List, Map, and None. Number is backed by math/big.Rat rather than a
machine float so that decimal literals like 1.23 round-trip exactly
through parsing and display (see DESIGN.md for why no third-party
decimal library is used instead).

# Equality, Truthiness, Ordering

Equal implements the cross-variant comparison rules: same-variant
values compare structurally, None equals only None, and every other
cross-variant pair is unequal. Truthy implements the coercion-to-bool
rules used by conditionals and the short-circuit logical operators.
Less defines ordering for Number/Number and String/String pairs only;
any other pair is a Type error.

# Hashability

Only Number, Bool, and String may be used as Map keys. Value itself
holds a slice for List, so it is not comparable and is not used as a
Go map key; Map stores each entry under a canonical string encoding
of its key (see hashKey), so equal Numbers written differently land on
the same entry.
*/
package value
