// Package core implements the integer kernels behind shortest round-trip
// conversion between binary floating point and decimal, following
// Ulf Adams, "Ryū: Fast Float-to-String Conversion"
// (doi:10.1145/3192366.3192369).
//
// Everything here is a pure function over fixed-width integers. The hot
// paths are allocation-free and branch-light; preconditions are checked
// only when the ryudebug build tag is set.
package core

import "math/bits"

// Div5 returns x / 5.
func Div5(x uint64) uint64 {
	return x / 5
}

// Div10 returns x / 10.
func Div10(x uint64) uint64 {
	return x / 10
}

// Div100 returns x / 100.
func Div100(x uint64) uint64 {
	return x / 100
}

// Pow5Factor returns the largest p such that 5^p divides v.
// v must not be 0.
func Pow5Factor(v uint64) uint32 {
	if debugAsserts && v == 0 {
		panic("core: Pow5Factor of zero")
	}
	count := uint32(0)
	for {
		q := Div5(v)
		// The remainder of dividing by 5 fits well within 32 bits, so the
		// truncated subtraction never wraps for any reachable v.
		r := uint32(v) - 5*uint32(q)
		if r != 0 {
			break
		}
		v = q
		count++
	}
	return count
}

// MultipleOfPowerOf5 reports whether v is divisible by 5^p.
// v must not be 0.
func MultipleOfPowerOf5(v uint64, p uint32) bool {
	return Pow5Factor(v) >= p
}

// MultipleOfPowerOf2 reports whether v is divisible by 2^p.
// v must not be 0 and p must be < 64.
func MultipleOfPowerOf2(v uint64, p uint32) bool {
	if debugAsserts && v == 0 {
		panic("core: MultipleOfPowerOf2 of zero")
	}
	if debugAsserts && p >= 64 {
		panic("core: MultipleOfPowerOf2 shift out of range")
	}
	return v&(1<<p-1) == 0
}

// MulShift64 computes (m * mul) >> j truncated to 64 bits, where mul is a
// 128-bit constant given as {low, high} words and j >= 64.
//
// Only the high word of m*mul[0] enters the sum; the low word is dropped.
// That truncation is part of the conversion algorithm's contract: the
// multiplier tables carry enough bits that the result is still exact where
// the algorithm needs it to be. Do not "fix" this with a full 128x128
// product.
func MulShift64(m uint64, mul [2]uint64, j uint32) uint64 {
	if debugAsserts && j < 64 {
		panic("core: MulShift64 shift below 64")
	}
	b0Hi, _ := bits.Mul64(m, mul[0])
	b2Hi, b2Lo := bits.Mul64(m, mul[1])
	sumLo, carry := bits.Add64(b2Lo, b0Hi, 0)
	sumHi := b2Hi + carry
	d := j - 64
	// d < 64 for every shift the conversion algorithm produces, and the
	// d == 0 case falls out of Go's shift semantics (sumHi<<64 is 0).
	return sumHi<<(64-d) | sumLo>>d
}

// MulShiftAll64 computes the three multiply-shift results the shortest
// round-trip search needs in one call: the returned vr is the scaled
// midpoint 4m * mul >> j, vp the scaled upper bound from 4m+2, and vm the
// scaled lower bound from 4m-1-mmShift. mmShift is 0 or 1 depending on
// whether the lower neighbor of the float is half or a full ULP away.
//
// Callers guarantee m is large enough that 4m-1-mmShift cannot underflow;
// every IEEE mantissa reaching this function satisfies that.
func MulShiftAll64(m uint64, mul [2]uint64, j uint32, mmShift uint32) (vr, vp, vm uint64) {
	vp = MulShift64(4*m+2, mul, j)
	vm = MulShift64(4*m-1-uint64(mmShift), mul, j)
	vr = MulShift64(4*m, mul, j)
	return vr, vp, vm
}
