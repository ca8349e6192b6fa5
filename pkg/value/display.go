package value

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Display renders v for diagnostics: error messages, print(), and
// logging. It is never used for round-trip parsing — Text returns the
// exact, non-humanized form that parses back to an equal Value, while
// Display may humanize large integral numbers with thousands
// separators for readability.
func (v Value) Display() string {
	switch v.kind {
	case KindNone:
		return "None"
	case KindNumber:
		return displayNumber(v.num)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindString:
		return v.s
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.literalText()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		var parts []string
		v.m.Range(func(key, val Value) bool {
			parts = append(parts, key.literalText()+": "+val.literalText())
			return true
		})
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// Text returns the exact text of v. For a Number it is big.Rat's
// RatString form: an integer ("1000") or a reduced fraction ("123/100"
// for 1.23), not decimal notation; NumberFromString parses either back
// to an equal Value. For other variants it is literalText, so a String
// comes back single-quoted.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return v.num.RatString()
	default:
		return v.literalText()
	}
}

// literalText is the non-humanized rendering used inside List/Map
// Display so nested numbers don't carry thousands separators that
// would break round-tripping a nested literal.
func (v Value) literalText() string {
	switch v.kind {
	case KindString:
		return "'" + v.s + "'"
	case KindNumber:
		return v.num.RatString()
	default:
		return v.Display()
	}
}

// displayNumber renders r with thousands separators when it is a
// whole number that fits in an int64 and is large enough for grouping
// to help readability; small or fractional numbers, and whole numbers
// beyond the int64 range, render plainly.
func displayNumber(r *big.Rat) string {
	if r.IsInt() {
		n := r.Num()
		if n.IsInt64() {
			return humanize.Comma(n.Int64())
		}
		return n.String()
	}
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}
