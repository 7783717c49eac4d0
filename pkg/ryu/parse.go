package ryu

import (
	"math"

	"github.com/zeebo/errs"

	"ryugo/internal/core"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("ryu")

var (
	// ErrSyntax is returned when input is not a decimal floating point
	// literal of the form [+-]digits[.digits][(e|E)[+-]digits].
	ErrSyntax = Error.New("invalid syntax")

	// ErrTooLong is returned when the mantissa has more than 17
	// significant digits or the exponent more than four. Inputs that long
	// cannot be converted by the fixed-width fast path; they are rejected
	// rather than silently rounded twice.
	ErrTooLong = Error.New("too many digits")
)

// ParseFloat64 converts the shortest-form (or any plain decimal) literal s
// to the nearest float64, rounding half to even. Values beyond the float64
// range convert to a signed infinity or zero without error, mirroring the
// conversion core's semantics.
func ParseFloat64(s string) (float64, error) {
	if len(s) == 0 {
		return 0, ErrSyntax
	}
	i := 0
	sign := false
	if s[0] == '-' || s[0] == '+' {
		sign = s[0] == '-'
		i++
	}

	// Mantissa: digits with at most one dot. Leading zeros are free;
	// every later digit counts against the 17-digit budget.
	var m10 uint64
	m10Digits := 0
	dotIndex := -1
	anyDigit := false
	for ; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if dotIndex >= 0 {
				return 0, ErrSyntax
			}
			dotIndex = i
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		anyDigit = true
		if m10Digits >= 17 {
			return 0, ErrTooLong
		}
		m10 = 10*m10 + uint64(c-'0')
		if m10 != 0 {
			m10Digits++
		}
	}
	if !anyDigit {
		return 0, ErrSyntax
	}
	mantEnd := i

	var expVal int32
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expSign := false
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			expSign = s[i] == '-'
			i++
		}
		if i == len(s) {
			return 0, ErrSyntax
		}
		expDigits := 0
		for ; i < len(s); i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return 0, ErrSyntax
			}
			if expDigits > 3 {
				return 0, ErrTooLong
			}
			expVal = 10*expVal + int32(c-'0')
			if expVal != 0 {
				expDigits++
			}
		}
		if expSign {
			expVal = -expVal
		}
	}
	if i != len(s) {
		return 0, ErrSyntax
	}

	e10 := expVal
	if dotIndex >= 0 {
		e10 -= int32(mantEnd - dotIndex - 1)
	}

	return math.Float64frombits(core.Float64FromDecimal(sign, m10, e10)), nil
}
