// Package ryu converts floating point values to and from their shortest
// round-trip decimal string form.
//
// Formatting output is byte-for-byte identical to
// strconv.FormatFloat(f, 'g', -1, 64) (respectively 32): the fewest digits
// that parse back to exactly the same value, printed in fixed notation for
// moderate exponents and scientific notation otherwise.
package ryu

import (
	"math"

	"ryugo/internal/core"
)

// FormatFloat64 returns the shortest decimal string that round-trips to f.
func FormatFloat64(f float64) string {
	var buf [32]byte
	return string(AppendFloat64(buf[:0], f))
}

// AppendFloat64 appends the shortest decimal form of f to buf and returns
// the extended buffer. It does not allocate if buf has space for 25 more
// bytes.
func AppendFloat64(buf []byte, f float64) []byte {
	b := math.Float64bits(f)
	sign := b>>(Float64ExponentBits+Float64MantissaBits) != 0
	ieeeExponent := uint32(b>>Float64MantissaBits) & (1<<Float64ExponentBits - 1)
	ieeeMantissa := b & (1<<Float64MantissaBits - 1)

	if ieeeExponent == 1<<Float64ExponentBits-1 {
		return appendNonFinite(buf, sign, ieeeMantissa != 0)
	}
	if ieeeMantissa == 0 && ieeeExponent == 0 {
		if sign {
			buf = append(buf, '-')
		}
		return append(buf, '0')
	}

	d := core.Float64ToDecimal(ieeeMantissa, ieeeExponent)
	return appendDecimal(buf, sign, d.Mantissa, d.Exponent)
}

// FormatFloat32 returns the shortest decimal string that round-trips to f.
func FormatFloat32(f float32) string {
	var buf [24]byte
	return string(AppendFloat32(buf[:0], f))
}

// AppendFloat32 appends the shortest decimal form of f to buf and returns
// the extended buffer.
func AppendFloat32(buf []byte, f float32) []byte {
	b := math.Float32bits(f)
	sign := b>>(Float32ExponentBits+Float32MantissaBits) != 0
	ieeeExponent := b >> Float32MantissaBits & (1<<Float32ExponentBits - 1)
	ieeeMantissa := b & (1<<Float32MantissaBits - 1)

	if ieeeExponent == 1<<Float32ExponentBits-1 {
		return appendNonFinite(buf, sign, ieeeMantissa != 0)
	}
	if ieeeMantissa == 0 && ieeeExponent == 0 {
		if sign {
			buf = append(buf, '-')
		}
		return append(buf, '0')
	}

	d := core.Float32ToDecimal(ieeeMantissa, ieeeExponent)
	return appendDecimal(buf, sign, uint64(d.Mantissa), d.Exponent)
}

func appendNonFinite(buf []byte, sign, nan bool) []byte {
	if nan {
		return append(buf, "NaN"...)
	}
	if sign {
		return append(buf, "-Inf"...)
	}
	return append(buf, "+Inf"...)
}

// IEEE layout constants, re-exported for callers that slice bit patterns.
const (
	Float64MantissaBits = core.Float64MantissaBits
	Float64ExponentBits = core.Float64ExponentBits
	Float32MantissaBits = core.Float32MantissaBits
	Float32ExponentBits = core.Float32ExponentBits
)
