package core

import (
	"fmt"
	"math"
	"strconv"
	"testing"
)

func decimal64Of(f float64) Decimal64 {
	bits := math.Float64bits(f)
	return Float64ToDecimal(bits&(1<<Float64MantissaBits-1), uint32(bits>>Float64MantissaBits)&(1<<Float64ExponentBits-1))
}

func TestFloat64ToDecimalKnown(t *testing.T) {
	cases := []struct {
		f    float64
		want Decimal64
	}{
		{1.0, Decimal64{1, 0}},
		{0.1, Decimal64{1, -1}},
		{2.5, Decimal64{25, -1}},
		{1e300, Decimal64{1, 300}},
		{math.Pi, Decimal64{3141592653589793, -15}},
		{5e-324, Decimal64{5, -324}},
		{math.MaxFloat64, Decimal64{17976931348623157, 292}},
		{123456.7, Decimal64{1234567, -1}},
	}
	for _, c := range cases {
		got := decimal64Of(c.f)
		if got != c.want {
			t.Errorf("Float64ToDecimal(%v) = {%d, %d}, want {%d, %d}",
				c.f, got.Mantissa, got.Exponent, c.want.Mantissa, c.want.Exponent)
		}
	}
}

func TestFloat64ToDecimalRoundTrip(t *testing.T) {
	check := func(bits uint64) {
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return
		}
		bits &^= 1 << 63 // sign handled by callers, not by the kernel
		f = math.Float64frombits(bits)
		if f == 0 {
			return
		}
		d := decimal64Of(f)
		back, err := strconv.ParseFloat(fmt.Sprintf("%de%d", d.Mantissa, d.Exponent), 64)
		if err != nil {
			t.Fatalf("bits 0x%016x: parse back: %v", bits, err)
		}
		if math.Float64bits(back) != bits {
			t.Fatalf("bits 0x%016x (%v): decimal {%d, %d} parses to 0x%016x",
				bits, f, d.Mantissa, d.Exponent, math.Float64bits(back))
		}
	}

	// Structured edge patterns.
	edges := []uint64{
		0x0000000000000001, // smallest subnormal
		0x000fffffffffffff, // largest subnormal
		0x0010000000000000, // smallest normal
		0x001fffffffffffff,
		0x3ff0000000000000, // 1.0
		0x3fefffffffffffff,
		0x4340000000000000, // 2^53
		0x7fefffffffffffff, // max finite
		0x0010000000000001,
	}
	for _, b := range edges {
		check(b)
	}

	// Deterministic pseudo-random sweep of the bit space.
	seed := uint64(42)
	for i := 0; i < 50000; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		check(seed)
	}
}

func TestDecimalLength17(t *testing.T) {
	cases := []struct {
		v    uint64
		want uint32
	}{
		{1, 1}, {9, 1}, {10, 2}, {99, 2}, {100, 3},
		{9999999999999999, 16}, {10000000000000000, 17}, {99999999999999999, 17},
	}
	for _, c := range cases {
		if got := DecimalLength17(c.v); got != c.want {
			t.Errorf("DecimalLength17(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}
