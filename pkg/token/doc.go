/*
Package token implements the lexical tokenizer: a byte-stream scanner
that turns expression source text into a stream of Tokens with
one-token lookahead.

# Scanning rules

Numbers are a maximal run of digits, '.', 'e'/'E', '+'/'-' subject to
the disambiguation rule in Lexer.isOperandExpecting: a leading sign
only starts a number when the previous significant token was absent or
was an operator/open-bracket/comma/colon/question/semicolon, and
'e'/'E' is only number-internal when it immediately follows a digit.
Strings are single- or double-quoted with backslash escapes.
Identifiers that spell a word-operator become an OP token only in the
position their fixity expects: "not" where an operand is expected,
"beginWith", "endWith" and "in" where an operator is expected;
elsewhere they stay plain identifiers, and other identifiers never
flip. Symbol operators use longest-match.

The scanning loop and its per-class helpers are grounded on the
Lexer/Token design in the retrieved jinja-go expression package,
adapted to this language's own token kinds and number grammar.
*/
package token
