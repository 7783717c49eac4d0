package core

import (
	"math"
	"math/big"
	"testing"
)

func TestDivHelpers(t *testing.T) {
	cases := []uint64{
		0, 1, 4, 5, 9, 10, 99, 100, 101,
		1<<32 - 1, 1 << 32, 1<<53 - 1,
		math.MaxUint64 - 1, math.MaxUint64,
	}
	for _, v := range cases {
		if got, want := Div5(v), v/5; got != want {
			t.Errorf("Div5(%d) = %d, want %d", v, got, want)
		}
		if got, want := Div10(v), v/10; got != want {
			t.Errorf("Div10(%d) = %d, want %d", v, got, want)
		}
		if got, want := Div100(v), v/100; got != want {
			t.Errorf("Div100(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestPow5Factor(t *testing.T) {
	cases := []struct {
		v    uint64
		want uint32
	}{
		{1, 0},
		{2, 0},
		{5, 1},
		{25, 2},
		{3125, 5},
		{3120, 1},
		{7, 0},
		{10, 1},
		{1 << 40, 0},
	}
	for _, c := range cases {
		if got := Pow5Factor(c.v); got != c.want {
			t.Errorf("Pow5Factor(%d) = %d, want %d", c.v, got, c.want)
		}
	}

	// Exact powers of five up to the largest that fits in 64 bits.
	p := uint64(1)
	for i := uint32(0); i <= 27; i++ {
		if got := Pow5Factor(p); got != i {
			t.Errorf("Pow5Factor(5^%d) = %d, want %d", i, got, i)
		}
		if p > math.MaxUint64/5 {
			break
		}
		p *= 5
	}
}

func TestMultipleOfPowerOf5(t *testing.T) {
	for p := uint32(0); p <= 20; p++ {
		pow := uint64(1)
		for i := uint32(0); i < p; i++ {
			pow *= 5
		}
		values := []uint64{1, 2, 3, pow, 2 * pow, 3 * pow, pow + 1, 6 * pow}
		for _, v := range values {
			want := v%pow == 0
			if got := MultipleOfPowerOf5(v, p); got != want {
				t.Errorf("MultipleOfPowerOf5(%d, %d) = %v, want %v", v, p, got, want)
			}
		}
	}
}

func TestMultipleOfPowerOf2(t *testing.T) {
	cases := []struct {
		v    uint64
		p    uint32
		want bool
	}{
		{1024, 10, true},
		{1024, 11, false},
		{1023, 0, true},
		{1023, 1, false},
		{math.MaxUint64, 0, true},
		{math.MaxUint64, 1, false},
		{1 << 63, 63, true},
		{1 << 63, 62, true},
	}
	for _, c := range cases {
		if got := MultipleOfPowerOf2(c.v, c.p); got != c.want {
			t.Errorf("MultipleOfPowerOf2(%d, %d) = %v, want %v", c.v, c.p, got, c.want)
		}
	}
}

// mulShift64Ref computes truncate64((m * mul) >> j) with arbitrary
// precision, where mul is the 128-bit value mul[1]<<64 | mul[0].
func mulShift64Ref(m uint64, mul [2]uint64, j uint32) uint64 {
	z := new(big.Int).SetUint64(mul[1])
	z.Lsh(z, 64)
	z.Add(z, new(big.Int).SetUint64(mul[0]))
	z.Mul(z, new(big.Int).SetUint64(m))
	z.Rsh(z, uint(j))
	z.And(z, new(big.Int).SetUint64(math.MaxUint64))
	return z.Uint64()
}

func TestMulShift64Known(t *testing.T) {
	cases := []struct {
		m    uint64
		mul  [2]uint64
		j    uint32
		want uint64
	}{
		{0x10000000000000, [2]uint64{1, 0x2000000000000000}, 64, 0},
		{0x1999999999999a, [2]uint64{0, 0x1900000000000000}, 80, 0x00000a0000000000},
		{0x40000000000004, [2]uint64{0xda7edf82dd794bc1, 0x12e3b40a0e9b4f7d}, 85, 0x1d36a1582b7f00d9},
		{0xffffffffffffffff, [2]uint64{0x78e1316e60a48310, 0x18b40a4eec437c52}, 127, 0x3168149dd886f8a4},
		{0xffffffffffffffff, [2]uint64{0x0958f94b348498a1, 0x12ab168cc36cacbf}, 127, 0x25562d1986d9597d},
		{0x2bdc545d6b4b87, [2]uint64{0x0b2784c4ce0bf38a, 0x1249ad2594c37ceb}, 90, 0x3d61c682d397758f},
	}
	for _, c := range cases {
		if got := MulShift64(c.m, c.mul, c.j); got != c.want {
			t.Errorf("MulShift64(0x%x, {0x%x, 0x%x}, %d) = 0x%x, want 0x%x",
				c.m, c.mul[0], c.mul[1], c.j, got, c.want)
		}
		if ref := mulShift64Ref(c.m, c.mul, c.j); ref != c.want {
			t.Fatalf("reference disagrees with expected value for m=0x%x: 0x%x vs 0x%x",
				c.m, ref, c.want)
		}
	}
}

func TestMulShift64AgainstReference(t *testing.T) {
	// Sweep real table entries against randomized mantissas instead of
	// synthetic multipliers, so the shift amounts match real usage.
	seed := uint64(0x5eed)
	for i := 0; i < 2000; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		m := seed | 1<<54 // mantissa-sized, always in range
		m &= 1<<55 - 1

		idx := int(seed>>40) % len(pow5Split)
		j := uint32(64 + idx%61)
		mul := pow5Split[idx]
		if got, want := MulShift64(m, mul, j), mulShift64Ref(m, mul, j); got != want {
			t.Fatalf("MulShift64(0x%x, pow5Split[%d], %d) = 0x%x, want 0x%x", m, idx, j, got, want)
		}

		idx = int(seed>>24) % len(pow5InvSplit)
		mul = pow5InvSplit[idx]
		if got, want := MulShift64(m, mul, j), mulShift64Ref(m, mul, j); got != want {
			t.Fatalf("MulShift64(0x%x, pow5InvSplit[%d], %d) = 0x%x, want 0x%x", m, idx, j, got, want)
		}
	}
}

func TestMulShiftAll64MatchesSingleShifts(t *testing.T) {
	seed := uint64(0xabcdef)
	for i := 0; i < 2000; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		m := (seed & (1<<54 - 1)) | 1<<52
		mmShift := uint32(seed>>60) & 1

		idx := int(seed>>32) % len(pow5InvSplit)
		mul := pow5InvSplit[idx]
		j := uint32(64 + int(seed>>56)%60)

		vr, vp, vm := MulShiftAll64(m, mul, j, mmShift)
		if want := MulShift64(4*m, mul, j); vr != want {
			t.Fatalf("vr = 0x%x, want 0x%x (m=0x%x idx=%d j=%d)", vr, want, m, idx, j)
		}
		if want := MulShift64(4*m+2, mul, j); vp != want {
			t.Fatalf("vp = 0x%x, want 0x%x (m=0x%x idx=%d j=%d)", vp, want, m, idx, j)
		}
		if want := MulShift64(4*m-1-uint64(mmShift), mul, j); vm != want {
			t.Fatalf("vm = 0x%x, want 0x%x (m=0x%x idx=%d j=%d mmShift=%d)", vm, want, m, idx, j, mmShift)
		}
	}
}

func TestLogHelpers(t *testing.T) {
	for e := int32(1); e <= 3528; e++ {
		exact := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(e)), nil).BitLen()
		if got := pow5Bits(e); got != int32(exact) {
			t.Fatalf("pow5Bits(%d) = %d, want %d", e, got, exact)
		}
	}
	for e := int32(0); e <= 1650; e++ {
		want := int32(len(new(big.Int).Lsh(big.NewInt(1), uint(e)).Text(10))) - 1
		if got := log10Pow2(e); got != uint32(want) {
			t.Fatalf("log10Pow2(%d) = %d, want %d", e, got, want)
		}
	}
	for e := int32(0); e <= 2620; e++ {
		want := int32(len(new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(e)), nil).Text(10))) - 1
		if got := log10Pow5(e); got != uint32(want) {
			t.Fatalf("log10Pow5(%d) = %d, want %d", e, got, want)
		}
	}
	for _, c := range []struct {
		v    uint64
		want int32
	}{{1, 0}, {2, 1}, {3, 1}, {1 << 52, 52}, {math.MaxUint64, 63}} {
		if got := floorLog2(c.v); got != c.want {
			t.Errorf("floorLog2(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}
