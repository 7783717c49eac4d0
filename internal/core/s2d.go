package core

// Float64FromDecimal converts m10 * 10^e10 to the bit pattern of the
// nearest float64, rounding half to even. m10 must have at most 17 decimal
// digits; sign selects the sign bit of the result. Values below half the
// smallest subnormal return a signed zero; values at or above 10^309
// return a signed infinity.
func Float64FromDecimal(sign bool, m10 uint64, e10 int32) uint64 {
	signBit := uint64(0)
	if sign {
		signBit = 1 << (Float64ExponentBits + Float64MantissaBits)
	}
	if m10 == 0 {
		return signBit
	}
	digits := int32(DecimalLength17(m10))
	if digits+e10 <= -324 {
		// Smaller than half the smallest subnormal.
		return signBit
	}
	if digits+e10 >= 310 {
		return signBit | (uint64(1)<<Float64ExponentBits-1)<<Float64MantissaBits
	}

	// Convert m10 * 10^e10 to m2 * 2^e2 with mantissaBits+1 significant
	// bits and a sticky flag telling whether the conversion was exact.
	var e2 int32
	var m2 uint64
	var trailingZeros bool
	if e10 >= 0 {
		// The length guard above keeps e10 within the pow5Split table.
		e2 = floorLog2(m10) + e10 + log2Pow5(e10) - (Float64MantissaBits + 1)
		j := e2 - e10 - ceilLog2Pow5(e10) + pow5Bitcount
		m2 = MulShift64(m10, pow5Split[e10], uint32(j))
		trailingZeros = e2 < e10 ||
			(e2-e10 < 64 && MultipleOfPowerOf2(m10, uint32(e2-e10)))
	} else {
		e2 = floorLog2(m10) + e10 - ceilLog2Pow5(-e10) - (Float64MantissaBits + 1)
		j := e2 - e10 + ceilLog2Pow5(-e10) - 1 + pow5InvBitcount
		m2 = MulShift64(m10, pow5InvSplit[-e10], uint32(j))
		trailingZeros = MultipleOfPowerOf5(m10, uint32(-e10))
	}

	ieeeE2 := e2 + Float64Bias + floorLog2(m2)
	if ieeeE2 < 0 {
		ieeeE2 = 0
	}
	if ieeeE2 > 0x7fe {
		return signBit | (uint64(1)<<Float64ExponentBits-1)<<Float64MantissaBits
	}

	// Discard the extra bits, folding exactness into the rounding decision.
	adjE2 := ieeeE2
	if adjE2 == 0 {
		adjE2 = 1
	}
	shift := uint32(adjE2 - e2 - Float64Bias - Float64MantissaBits)
	trailingZeros = trailingZeros && m2&(1<<(shift-1)-1) == 0
	lastRemovedBit := m2 >> (shift - 1) & 1
	roundUp := lastRemovedBit == 1 && (!trailingZeros || m2>>shift&1 == 1)

	ieeeM2 := m2>>shift + boolToU64(roundUp)
	ieeeM2 &= uint64(1)<<Float64MantissaBits - 1
	if ieeeM2 == 0 && roundUp {
		// Rounding carried all the way out of the mantissa.
		ieeeE2++
	}
	return signBit | uint64(ieeeE2)<<Float64MantissaBits | ieeeM2
}

func boolToU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
