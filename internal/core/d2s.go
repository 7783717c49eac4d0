package core

// IEEE 754 binary64 layout.
const (
	Float64MantissaBits = 52
	Float64ExponentBits = 11
	Float64Bias         = 1023
)

// Decimal64 is a decimal floating point value Mantissa * 10^Exponent with
// the shortest mantissa that round-trips to the original binary64 value.
// The mantissa has at most 17 digits and no trailing zero digits.
type Decimal64 struct {
	Mantissa uint64
	Exponent int32
}

// Float64ToDecimal converts the mantissa and biased exponent fields of a
// finite, non-zero float64 to its shortest decimal representation.
func Float64ToDecimal(ieeeMantissa uint64, ieeeExponent uint32) Decimal64 {
	var e2 int32
	var m2 uint64
	if ieeeExponent == 0 {
		// Subnormal. The extra -2 makes room for the scaled bounds below.
		e2 = 1 - Float64Bias - Float64MantissaBits - 2
		m2 = ieeeMantissa
	} else {
		e2 = int32(ieeeExponent) - Float64Bias - Float64MantissaBits - 2
		m2 = uint64(1)<<Float64MantissaBits | ieeeMantissa
	}
	even := m2&1 == 0
	acceptBounds := even

	// Determine the interval of information-preserving outputs. The scaled
	// midpoint is mv = 4*m2; the lower neighbor is half an ULP away unless
	// the value sits on the bottom edge of its binade.
	mv := 4 * m2
	mmShift := uint32(0)
	if ieeeMantissa != 0 || ieeeExponent <= 1 {
		mmShift = 1
	}

	// Convert the interval to a decimal power base using the 128-bit
	// multiplier tables.
	var vr, vp, vm uint64
	var e10 int32
	var vmIsTrailingZeros, vrIsTrailingZeros bool
	if e2 >= 0 {
		q := log10Pow2(e2)
		if e2 > 3 {
			q--
		}
		e10 = int32(q)
		k := pow5InvBitcount + pow5Bits(int32(q)) - 1
		i := uint32(-e2 + int32(q) + k)
		vr, vp, vm = MulShiftAll64(m2, pow5InvSplit[q], i, mmShift)
		if q <= 21 {
			// At most one of mv, mv+2 and mv-1-mmShift is a multiple of 5^q.
			if uint32(mv)-5*uint32(Div5(mv)) == 0 {
				vrIsTrailingZeros = MultipleOfPowerOf5(mv, q)
			} else if acceptBounds {
				vmIsTrailingZeros = MultipleOfPowerOf5(mv-1-uint64(mmShift), q)
			} else if MultipleOfPowerOf5(mv+2, q) {
				vp--
			}
		}
	} else {
		q := log10Pow5(-e2)
		if -e2 > 1 {
			q--
		}
		e10 = int32(q) + e2
		i := -e2 - int32(q)
		k := pow5Bits(i) - pow5Bitcount
		j := uint32(int32(q) - k)
		vr, vp, vm = MulShiftAll64(m2, pow5Split[i], j, mmShift)
		if q <= 1 {
			// {vr,vp,vm} has trailing zeros iff {mv,mv+2,mv-1-mmShift} has at
			// least q trailing zero bits. mv = 4*m2 always has two.
			vrIsTrailingZeros = true
			if acceptBounds {
				vmIsTrailingZeros = mmShift == 1
			} else {
				vp--
			}
		} else if q < 63 {
			// vr has q trailing zeros iff mv has at least q trailing zero
			// bits; the factor-of-5 count cannot fall short here.
			vrIsTrailingZeros = MultipleOfPowerOf2(mv, q)
		}
	}

	// Shorten: strip digits while the whole interval agrees, then round.
	var removed int32
	var output uint64
	if vmIsTrailingZeros || vrIsTrailingZeros {
		// Rare path (~0.7% of inputs): exactness bookkeeping matters.
		var lastRemovedDigit uint8
		for {
			vpDiv10 := Div10(vp)
			vmDiv10 := Div10(vm)
			if vpDiv10 <= vmDiv10 {
				break
			}
			vmMod10 := uint32(vm) - 10*uint32(vmDiv10)
			vrDiv10 := Div10(vr)
			vrMod10 := uint32(vr) - 10*uint32(vrDiv10)
			vmIsTrailingZeros = vmIsTrailingZeros && vmMod10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = uint8(vrMod10)
			vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
			removed++
		}
		if vmIsTrailingZeros {
			for {
				vmDiv10 := Div10(vm)
				vmMod10 := uint32(vm) - 10*uint32(vmDiv10)
				if vmMod10 != 0 {
					break
				}
				vpDiv10 := Div10(vp)
				vrDiv10 := Div10(vr)
				vrMod10 := uint32(vr) - 10*uint32(vrDiv10)
				vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = uint8(vrMod10)
				vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
				removed++
			}
		}
		if vrIsTrailingZeros && lastRemovedDigit == 5 && vr%2 == 0 {
			// The exact value ends in ...500...0: round half to even.
			lastRemovedDigit = 4
		}
		output = vr
		if (vr == vm && (!acceptBounds || !vmIsTrailingZeros)) || lastRemovedDigit >= 5 {
			output++
		}
	} else {
		// Common path: only track whether the dropped tail rounds up.
		roundUp := false
		vpDiv100 := Div100(vp)
		vmDiv100 := Div100(vm)
		if vpDiv100 > vmDiv100 {
			vrDiv100 := Div100(vr)
			vrMod100 := uint32(vr) - 100*uint32(vrDiv100)
			roundUp = vrMod100 >= 50
			vr, vp, vm = vrDiv100, vpDiv100, vmDiv100
			removed += 2
		}
		for {
			vpDiv10 := Div10(vp)
			vmDiv10 := Div10(vm)
			if vpDiv10 <= vmDiv10 {
				break
			}
			vrDiv10 := Div10(vr)
			vrMod10 := uint32(vr) - 10*uint32(vrDiv10)
			roundUp = vrMod10 >= 5
			vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
			removed++
		}
		output = vr
		if vr == vm || roundUp {
			output++
		}
	}

	return Decimal64{Mantissa: output, Exponent: e10 + removed}
}

// DecimalLength17 returns the number of decimal digits of v.
// v must be less than 10^17.
func DecimalLength17(v uint64) uint32 {
	if debugAsserts && v >= 100000000000000000 {
		panic("core: DecimalLength17 input too large")
	}
	switch {
	case v >= 10000000000000000:
		return 17
	case v >= 1000000000000000:
		return 16
	case v >= 100000000000000:
		return 15
	case v >= 10000000000000:
		return 14
	case v >= 1000000000000:
		return 13
	case v >= 100000000000:
		return 12
	case v >= 10000000000:
		return 11
	case v >= 1000000000:
		return 10
	case v >= 100000000:
		return 9
	case v >= 10000000:
		return 8
	case v >= 1000000:
		return 7
	case v >= 100000:
		return 6
	case v >= 10000:
		return 5
	case v >= 1000:
		return 4
	case v >= 100:
		return 3
	case v >= 10:
		return 2
	default:
		return 1
	}
}
