package core

// IEEE 754 binary32 layout.
const (
	Float32MantissaBits = 23
	Float32ExponentBits = 8
	Float32Bias         = 127
)

// Decimal32 is the float32 counterpart of Decimal64: the shortest
// round-tripping decimal value Mantissa * 10^Exponent, at most 9 digits.
type Decimal32 struct {
	Mantissa uint32
	Exponent int32
}

// mulShift32 computes (m * factor) >> shift truncated to 32 bits, for
// 32 < shift < 64. The 96-bit product is assembled from two 64-bit halves;
// the low 32 bits of m*factorLo are dropped, mirroring MulShift64.
func mulShift32(m uint32, factor uint64, shift int32) uint32 {
	if debugAsserts && (shift <= 32 || shift >= 64) {
		panic("core: mulShift32 shift out of range")
	}
	factorLo := uint32(factor)
	factorHi := uint32(factor >> 32)
	bits0 := uint64(m) * uint64(factorLo)
	bits1 := uint64(m) * uint64(factorHi)
	sum := bits0>>32 + bits1
	return uint32(sum >> uint32(shift-32))
}

func mulPow5InvDivPow2(m uint32, q uint32, j int32) uint32 {
	return mulShift32(m, pow5InvSplitF[q], j)
}

func mulPow5DivPow2(m uint32, i uint32, j int32) uint32 {
	return mulShift32(m, pow5SplitF[i], j)
}

// pow5Factor32 returns the largest p such that 5^p divides v. v must not be 0.
func pow5Factor32(v uint32) uint32 {
	if debugAsserts && v == 0 {
		panic("core: pow5Factor32 of zero")
	}
	count := uint32(0)
	for {
		q := v / 5
		if v-5*q != 0 {
			break
		}
		v = q
		count++
	}
	return count
}

// multipleOfPowerOf5F32 reports whether v is divisible by 5^p. v must not be 0.
func multipleOfPowerOf5F32(v uint32, p uint32) bool {
	return pow5Factor32(v) >= p
}

// multipleOfPowerOf2F32 reports whether v is divisible by 2^p.
// v must not be 0 and p must be < 32.
func multipleOfPowerOf2F32(v uint32, p uint32) bool {
	if debugAsserts && (v == 0 || p >= 32) {
		panic("core: multipleOfPowerOf2F32 precondition")
	}
	return v&(1<<p-1) == 0
}

// Float32ToDecimal converts the mantissa and biased exponent fields of a
// finite, non-zero float32 to its shortest decimal representation.
func Float32ToDecimal(ieeeMantissa uint32, ieeeExponent uint32) Decimal32 {
	var e2 int32
	var m2 uint32
	if ieeeExponent == 0 {
		e2 = 1 - Float32Bias - Float32MantissaBits - 2
		m2 = ieeeMantissa
	} else {
		e2 = int32(ieeeExponent) - Float32Bias - Float32MantissaBits - 2
		m2 = uint32(1)<<Float32MantissaBits | ieeeMantissa
	}
	even := m2&1 == 0
	acceptBounds := even

	mv := 4 * m2
	mp := 4*m2 + 2
	mmShift := uint32(0)
	if ieeeMantissa != 0 || ieeeExponent <= 1 {
		mmShift = 1
	}
	mm := 4*m2 - 1 - mmShift

	var vr, vp, vm uint32
	var e10 int32
	var vmIsTrailingZeros, vrIsTrailingZeros bool
	var lastRemovedDigit uint8
	if e2 >= 0 {
		q := log10Pow2(e2)
		e10 = int32(q)
		k := pow5InvBitcountF + pow5Bits(int32(q)) - 1
		i := -e2 + int32(q) + k
		vr = mulPow5InvDivPow2(mv, q, i)
		vp = mulPow5InvDivPow2(mp, q, i)
		vm = mulPow5InvDivPow2(mm, q, i)
		if q != 0 && (vp-1)/10 <= vm/10 {
			// Output digit count is about to drop below vr's length; peek at
			// the digit that scaling by one less power of ten would expose.
			l := pow5InvBitcountF + pow5Bits(int32(q)-1) - 1
			lastRemovedDigit = uint8(mulPow5InvDivPow2(mv, q-1, -e2+int32(q)-1+l) % 10)
		}
		if q <= 9 {
			// Only one of mv, mp and mm can be a multiple of 5^q, if any.
			if mv%5 == 0 {
				vrIsTrailingZeros = multipleOfPowerOf5F32(mv, q)
			} else if acceptBounds {
				vmIsTrailingZeros = multipleOfPowerOf5F32(mm, q)
			} else if multipleOfPowerOf5F32(mp, q) {
				vp--
			}
		}
	} else {
		q := log10Pow5(-e2)
		e10 = int32(q) + e2
		i := uint32(-e2 - int32(q))
		k := pow5Bits(int32(i)) - pow5BitcountF
		j := int32(q) - k
		vr = mulPow5DivPow2(mv, i, j)
		vp = mulPow5DivPow2(mp, i, j)
		vm = mulPow5DivPow2(mm, i, j)
		if q != 0 && (vp-1)/10 <= vm/10 {
			j = int32(q) - 1 - (pow5Bits(int32(i)+1) - pow5BitcountF)
			lastRemovedDigit = uint8(mulPow5DivPow2(mv, i+1, j) % 10)
		}
		if q <= 1 {
			vrIsTrailingZeros = true
			if acceptBounds {
				vmIsTrailingZeros = mmShift == 1
			} else {
				vp--
			}
		} else if q < 31 {
			vrIsTrailingZeros = multipleOfPowerOf2F32(mv, q-1)
		}
	}

	var removed int32
	var output uint32
	if vmIsTrailingZeros || vrIsTrailingZeros {
		for vp/10 > vm/10 {
			vmIsTrailingZeros = vmIsTrailingZeros && vm%10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = uint8(vr % 10)
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		if vmIsTrailingZeros {
			for vm%10 == 0 {
				vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = uint8(vr % 10)
				vr /= 10
				vp /= 10
				vm /= 10
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
		for vp/10 > vm/10 {
			lastRemovedDigit = uint8(vr % 10)
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		output = vr
		if vr == vm || lastRemovedDigit >= 5 {
			output++
		}
	}

	return Decimal32{Mantissa: output, Exponent: e10 + removed}
}

// DecimalLength9 returns the number of decimal digits of v.
// v must be less than 10^9.
func DecimalLength9(v uint32) uint32 {
	if debugAsserts && v >= 1000000000 {
		panic("core: DecimalLength9 input too large")
	}
	switch {
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
