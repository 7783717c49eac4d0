package core

import "math/bits"

// Fixed-point approximations of the base-2/base-5/base-10 logarithm
// relations the conversion paths need. Each is exact over the stated input
// range, which covers every exponent a float32 or float64 can produce.

// pow5Bits returns the bit length of 5^e, i.e. floor(log2(5^e)) + 1.
// Valid for 0 <= e <= 3528.
func pow5Bits(e int32) int32 {
	return int32((uint32(e)*1217359)>>19) + 1
}

// log2Pow5 returns floor(log2(5^e)). Valid for 0 <= e <= 3528.
func log2Pow5(e int32) int32 {
	return int32((uint32(e) * 1217359) >> 19)
}

// ceilLog2Pow5 returns floor(log2(5^e)) + 1, which is ceil(log2(5^e)) for
// every e > 0. Valid for 0 <= e <= 3528.
func ceilLog2Pow5(e int32) int32 {
	return log2Pow5(e) + 1
}

// log10Pow2 returns floor(log10(2^e)). Valid for 0 <= e <= 1650.
func log10Pow2(e int32) uint32 {
	return (uint32(e) * 78913) >> 18
}

// log10Pow5 returns floor(log10(5^e)). Valid for 0 <= e <= 2620.
func log10Pow5(e int32) uint32 {
	return (uint32(e) * 732923) >> 20
}

// floorLog2 returns floor(log2(v)) for v > 0.
func floorLog2(v uint64) int32 {
	return int32(bits.Len64(v)) - 1
}
