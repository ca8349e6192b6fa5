package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/exprlang/pkg/builtin"
	"github.com/randalmurphal/exprlang/pkg/value"
)

func TestMin(t *testing.T) {
	v, err := builtin.Min([]value.Value{value.NumberFromInt64(3), value.NumberFromInt64(1), value.NumberFromInt64(2)})
	require.NoError(t, err)
	n, _ := v.AsNumber()
	assert.Equal(t, int64(1), n.Num().Int64())
}

func TestMax(t *testing.T) {
	v, err := builtin.Max([]value.Value{value.NumberFromInt64(3), value.NumberFromInt64(1), value.NumberFromInt64(2)})
	require.NoError(t, err)
	n, _ := v.AsNumber()
	assert.Equal(t, int64(3), n.Num().Int64())
}

func TestMinRequiresAtLeastOneArg(t *testing.T) {
	_, err := builtin.Min(nil)
	assert.Error(t, err)
}

func TestAbs(t *testing.T) {
	neg, _ := value.NumberFromString("-4.5")
	v, err := builtin.Abs([]value.Value{neg})
	require.NoError(t, err)
	want, _ := value.NumberFromString("4.5")
	assert.True(t, value.Equal(want, v))
}

func TestLenString(t *testing.T) {
	v, err := builtin.Len([]value.Value{value.String("hello")})
	require.NoError(t, err)
	n, _ := v.AsNumber()
	assert.Equal(t, int64(5), n.Num().Int64())
}

func TestLenList(t *testing.T) {
	v, err := builtin.Len([]value.Value{value.List([]value.Value{value.NumberFromInt64(1), value.NumberFromInt64(2)})})
	require.NoError(t, err)
	n, _ := v.AsNumber()
	assert.Equal(t, int64(2), n.Num().Int64())
}

func TestLenMap(t *testing.T) {
	m := value.NewMap()
	require.NoError(t, m.Set(value.String("a"), value.NumberFromInt64(1)))
	v, err := builtin.Len([]value.Value{value.MapValue(m)})
	require.NoError(t, err)
	n, _ := v.AsNumber()
	assert.Equal(t, int64(1), n.Num().Int64())
}

func TestLenRejectsUnsupportedType(t *testing.T) {
	_, err := builtin.Len([]value.Value{value.Bool(true)})
	assert.Error(t, err)
}

func TestContainsString(t *testing.T) {
	v, err := builtin.Contains([]value.Value{value.String("hello world"), value.String("wor")})
	require.NoError(t, err)
	b, _ := v.AsBool()
	assert.True(t, b)
}

func TestContainsList(t *testing.T) {
	list := value.List([]value.Value{value.NumberFromInt64(1), value.NumberFromInt64(2)})
	v, err := builtin.Contains([]value.Value{list, value.NumberFromInt64(2)})
	require.NoError(t, err)
	b, _ := v.AsBool()
	assert.True(t, b)
}

func TestHumanizeInteger(t *testing.T) {
	v, err := builtin.Humanize([]value.Value{value.NumberFromInt64(1234567)})
	require.NoError(t, err)
	s, _ := v.AsString()
	assert.Equal(t, "1,234,567", s)
}

func TestAllRegistersReservedNames(t *testing.T) {
	fns := builtin.All()
	for _, name := range []string{"min", "max", "abs", "len", "print", "contains", "humanize"} {
		_, ok := fns[name]
		assert.True(t, ok, "missing reserved function %q", name)
	}
}
