package value_test

import (
	"testing"

	"github.com/randalmurphal/exprlang/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"integer", "42", true},
		{"decimal", "1.23", true},
		{"negative", "-0.5", true},
		{"exponent", "1e3", true},
		{"signed exponent", "1.5e-2", true},
		{"garbage", "abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := value.NumberFromString(tt.in)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, lit := range []string{"1.23", "-0.5", "1000", "1e3"} {
		v, ok := value.NumberFromString(lit)
		require.True(t, ok)
		reparsed, ok := value.NumberFromString(v.Text())
		require.True(t, ok)
		assert.True(t, value.Equal(v, reparsed))
	}

	s := value.String("hello")
	assert.Equal(t, "hello", s.Text())

	b := value.Bool(true)
	assert.Equal(t, "true", b.Display())
}

func TestTruthy(t *testing.T) {
	zero, _ := value.NumberFromString("0")
	nonzero, _ := value.NumberFromString("1")

	tests := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"bool true", value.Bool(true), true},
		{"bool false", value.Bool(false), false},
		{"zero number", zero, false},
		{"nonzero number", nonzero, true},
		{"empty string", value.String(""), false},
		{"nonempty string", value.String("x"), true},
		{"empty list", value.List(nil), false},
		{"nonempty list", value.List([]value.Value{value.Bool(true)}), true},
		{"none", value.None, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Truthy())
		})
	}
}

func TestEqual(t *testing.T) {
	a, _ := value.NumberFromString("1.50")
	b, _ := value.NumberFromString("1.5")
	assert.True(t, value.Equal(a, b))

	assert.True(t, value.Equal(value.None, value.None))
	assert.False(t, value.Equal(value.None, value.NumberFromInt64(0)))
	assert.False(t, value.Equal(value.String("1"), value.NumberFromInt64(1)))

	l1 := value.List([]value.Value{value.NumberFromInt64(1), value.String("x")})
	l2 := value.List([]value.Value{value.NumberFromInt64(1), value.String("x")})
	assert.True(t, value.Equal(l1, l2))
}

func TestMap(t *testing.T) {
	m := value.NewMap()
	require.NoError(t, m.Set(value.String("k"), value.NumberFromInt64(3)))

	got, ok := m.Get(value.String("k"))
	require.True(t, ok)
	assert.True(t, value.Equal(value.NumberFromInt64(3), got))

	_, ok = m.Get(value.String("missing"))
	assert.False(t, ok)

	mv := value.MapValue(m)
	assert.True(t, mv.Truthy())
}

func TestMapKeyHashesByValueNotPointer(t *testing.T) {
	m := value.NewMap()
	k1, _ := value.NumberFromString("1.50")
	k2, _ := value.NumberFromString("1.5")
	require.NoError(t, m.Set(k1, value.String("first")))
	require.NoError(t, m.Set(k2, value.String("second")))
	assert.Equal(t, 1, m.Len())
}

func TestHashable(t *testing.T) {
	assert.True(t, value.NumberFromInt64(1).Hashable())
	assert.True(t, value.Bool(true).Hashable())
	assert.True(t, value.String("x").Hashable())
	assert.False(t, value.List(nil).Hashable())
	assert.False(t, value.MapValue(nil).Hashable())
}

func TestOrderable(t *testing.T) {
	n1, n2 := value.NumberFromInt64(1), value.NumberFromInt64(2)
	assert.True(t, value.Orderable(n1, n2))
	assert.True(t, value.Less(n1, n2))

	s1, s2 := value.String("a"), value.String("b")
	assert.True(t, value.Orderable(s1, s2))
	assert.True(t, value.Less(s1, s2))

	assert.False(t, value.Orderable(n1, s1))
}

func TestIsInt(t *testing.T) {
	whole, _ := value.NumberFromString("4")
	frac, _ := value.NumberFromString("4.5")
	assert.True(t, whole.IsInt())
	assert.False(t, frac.IsInt())
}
