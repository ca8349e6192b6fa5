package value

import "math/big"

// Kind tags the variant a Value holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindNumber
	KindBool
	KindString
	KindList
	KindMap
)

// String returns the variant name, used in type-error messages.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Value is the dynamically typed value produced by every compiled
// expression. The zero Value is None.
type Value struct {
	kind Kind
	num  *big.Rat
	b    bool
	s    string
	list []Value
	m    *Map
}

// None is the absence-of-value variant.
var None = Value{kind: KindNone}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Number constructs a Number value from an arbitrary-precision rational.
func Number(r *big.Rat) Value {
	return Value{kind: KindNumber, num: r}
}

// NumberFromInt64 constructs an integral Number value.
func NumberFromInt64(n int64) Value {
	return Value{kind: KindNumber, num: big.NewRat(n, 1)}
}

// NumberFromString parses a decimal literal of the form
// [+-]?digits(.digits)?([eE][+-]?digits)? into a Number value. It
// reports ok=false if s is not a valid decimal.
func NumberFromString(s string) (Value, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Value{}, false
	}
	return Number(r), true
}

// Bool constructs a Bool value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String constructs a String value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// List constructs a List value from already-evaluated elements. The
// slice is owned by the returned Value and must not be mutated by the
// caller afterward.
func List(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindList, list: elems}
}

// MapValue constructs a Map value from an already-built Map.
func MapValue(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

// AsNumber returns the underlying rational and true if v is a Number.
func (v Value) AsNumber() (*big.Rat, bool) {
	if v.kind != KindNumber {
		return nil, false
	}
	return v.num, true
}

// AsBool returns the underlying bool and true if v is a Bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsString returns the underlying string and true if v is a String.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsList returns the underlying elements and true if v is a List.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// AsMap returns the underlying Map and true if v is a Map.
func (v Value) AsMap() (*Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// Hashable reports whether v may be used as a Map key (Number, Bool,
// or String).
func (v Value) Hashable() bool {
	switch v.kind {
	case KindNumber, KindBool, KindString:
		return true
	default:
		return false
	}
}

// IsInt reports whether v is a Number with an integral value, as
// required by the bitwise operator family.
func (v Value) IsInt() bool {
	return v.kind == KindNumber && v.num.IsInt()
}
