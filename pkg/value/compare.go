package value

// Truthy implements the bool-coercion rule used by conditionals and
// the short-circuit logical operators: Bool passes through; Number is
// truthy if non-zero; String is truthy if non-empty; List/Map are
// truthy if non-empty; None is always false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num.Sign() != 0
	case KindString:
		return v.s != ""
	case KindList:
		return len(v.list) > 0
	case KindMap:
		return v.m.Len() > 0
	case KindNone:
		return false
	default:
		return false
	}
}

// Equal implements same-variant structural equality. None equals only
// None. Any other cross-variant pair is unequal, except that two
// Numbers always compare numerically regardless of how each was
// parsed.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindNumber:
		return a.num.Cmp(b.num) == 0
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if a.m.Len() != b.m.Len() {
			return false
		}
		equal := true
		a.m.Range(func(key, av Value) bool {
			bv, ok := b.m.Get(key)
			if !ok || !Equal(av, bv) {
				equal = false
				return false
			}
			return true
		})
		return equal
	default:
		return false
	}
}

// Less reports whether a orders before b. Ordering is defined only
// for Number/Number and String/String pairs; callers must check Kind
// equality and variant before calling (see orderCheck in package
// operator, which surfaces a Type error otherwise).
func Less(a, b Value) bool {
	switch a.kind {
	case KindNumber:
		return a.num.Cmp(b.num) < 0
	case KindString:
		return a.s < b.s
	default:
		return false
	}
}

// Orderable reports whether a and b are a Number/Number or
// String/String pair, the only pairs Less is defined for.
func Orderable(a, b Value) bool {
	return a.kind == b.kind && (a.kind == KindNumber || a.kind == KindString)
}
