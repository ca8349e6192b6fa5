package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Lex, "lex"},
		{Parse, "parse"},
		{Resolve, "resolve"},
		{Type, "type"},
		{Arithmetic, "arithmetic"},
		{Arity, "arity"},
		{Internal, "internal"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestIsCompileTime(t *testing.T) {
	assert.True(t, Lex.IsCompileTime())
	assert.True(t, Parse.IsCompileTime())
	assert.False(t, Resolve.IsCompileTime())
	assert.False(t, Type.IsCompileTime())
	assert.False(t, Arithmetic.IsCompileTime())
	assert.False(t, Arity.IsCompileTime())
	assert.False(t, Internal.IsCompileTime())
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "plain",
			err:  New(Resolve, "undefined variable %q", "x"),
			want: `resolve: undefined variable "x"`,
		},
		{
			name: "with offset",
			err:  NewAt(Lex, 3, "unterminated string"),
			want: "lex: unterminated string (offset 3)",
		},
		{
			name: "with op",
			err:  ArithmeticError("/", "division by zero"),
			want: `arithmetic: division by zero (op "/")`,
		},
		{
			name: "with op and offset",
			err:  &Error{Kind: Type, Message: "bad operand", Op: "+", Offset: 7},
			want: `type: bad operand (op "+", offset 7)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	err := ParseError(5, "unexpected token")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, Parse, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "matches", 0))
	})

	t.Run("plain cause becomes Type error tagged with op/offset", func(t *testing.T) {
		cause := errors.New("boom")
		wrapped := Wrap(cause, "matches", 4)
		assert.Equal(t, Type, wrapped.Kind)
		assert.Equal(t, "matches", wrapped.Op)
		assert.Equal(t, 4, wrapped.Offset)
		assert.Equal(t, cause, wrapped.Unwrap())
	})

	t.Run("already-typed cause keeps its kind but fills in op/offset", func(t *testing.T) {
		cause := New(Arithmetic, "division by zero")
		wrapped := Wrap(cause, "/", 10)
		assert.Equal(t, Arithmetic, wrapped.Kind)
		assert.Equal(t, "/", wrapped.Op)
		assert.Equal(t, 10, wrapped.Offset)
	})

	t.Run("does not override an existing op/offset", func(t *testing.T) {
		cause := &Error{Kind: Arity, Message: "too few args", Op: "min", Offset: 2}
		wrapped := Wrap(cause, "max", 99)
		assert.Equal(t, "min", wrapped.Op)
		assert.Equal(t, 2, wrapped.Offset)
	})
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Lex, LexError(0, "x").Kind)
	assert.Equal(t, Parse, ParseError(0, "x").Kind)
	assert.Equal(t, Resolve, ResolveError("x").Kind)
	assert.Equal(t, Type, TypeError("+", "x").Kind)
	assert.Equal(t, Arithmetic, ArithmeticError("/", "x").Kind)
	assert.Equal(t, Arity, ArityError("min", "x").Kind)
	assert.Equal(t, Internal, InternalError("x").Kind)
}

func TestErrorsAsSupport(t *testing.T) {
	wrapped := Wrap(New(Type, "bad type"), "beginWith", 1)
	var target *Error
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, Type, target.Kind)
}
