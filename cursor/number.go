package cursor

import (
	"math"
	"strconv"
	"strings"
)

// defaultPrecision is the number of fractional digits a Number is formatted
// to when no override is given: 10 significant fractional digits, with
// trailing zeros stripped.
const defaultPrecision = 10

// Number is a decoded float32 value with the serialization rule SCSP's
// exported JSON documents expect: a value equal to its own integer
// truncation is emitted bare (no decimal point); anything else is
// formatted to a fixed number of fractional digits with trailing zeros
// stripped.
//
// Number never holds NaN; Cursor.Float32 rejects NaN at read time.
type Number struct {
	value     float64
	precision int
}

// NewNumber wraps v using the default precision (10 fractional digits).
func NewNumber(v float64) Number {
	return Number{value: v, precision: defaultPrecision}
}

// NewNumberWithPrecision wraps v using a caller-supplied fractional-digit
// precision, for the handful of fields (skeleton width/height) that the
// original tool rounds to a coarser precision than everything else.
func NewNumberWithPrecision(v float64, precision int) Number {
	return Number{value: v, precision: precision}
}

// Float64 returns the underlying value for arithmetic (deform deltas,
// default-value comparisons, curve fitting).
func (n Number) Float64() float64 {
	return n.value
}

// Format renders n per the normalization rule: bare integer text if n is
// a whole number, otherwise fixed-precision decimal text with trailing
// zeros (and a bare trailing decimal point) stripped.
func (n Number) Format() string {
	v := n.value

	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatInt(int64(v), 10)
	}

	s := strconv.FormatFloat(v, 'f', n.precision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")

	return s
}

// MarshalJSON emits n as a bare JSON number per Format, not a quoted string.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Format()), nil
}
