package ryu_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ryugo/internal/util"
	"ryugo/pkg/ryu"
)

func TestFormatFloat64Known(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{1, "1"},
		{-1, "-1"},
		{0.1, "0.1"},
		{2.5, "2.5"},
		{-123456.7, "-123456.7"},
		{123456.7, "123456.7"},
		{1e6, "1e+06"},
		{1234567, "1.234567e+06"},
		{1e-4, "0.0001"},
		{1e-5, "1e-05"},
		{math.Pi, "3.141592653589793"},
		{5e-324, "5e-324"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{1e300, "1e+300"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ryu.FormatFloat64(c.f), "f = %v", c.f)
	}
}

func TestFormatFloat64MatchesStrconv(t *testing.T) {
	check := func(bits uint64) {
		f := math.Float64frombits(bits)
		want := strconv.FormatFloat(f, 'g', -1, 64)
		require.Equal(t, want, ryu.FormatFloat64(f), "bits = 0x%016x", bits)
	}

	for _, bits := range []uint64{
		0x0000000000000000, 0x8000000000000000,
		0x0000000000000001, 0x000fffffffffffff, 0x0010000000000000,
		0x3ff0000000000000, 0x7fefffffffffffff,
		0x7ff0000000000000, 0xfff0000000000000,
		0x7ff8000000000001, // NaN
		0x4340000000000000, // 2^53
		0x412e848000000000, // 1e6
		0x416312d000000000,
	} {
		check(bits)
	}

	for _, bits := range util.Uint64s(0x64f0, 50000) {
		check(bits)
	}
}

func TestFormatFloat32MatchesStrconv(t *testing.T) {
	check := func(bits uint32) {
		f := math.Float32frombits(bits)
		want := strconv.FormatFloat(float64(f), 'g', -1, 32)
		require.Equal(t, want, ryu.FormatFloat32(f), "bits = 0x%08x", bits)
	}

	for _, bits := range []uint32{
		0x00000000, 0x80000000, 0x00000001, 0x007fffff, 0x00800000,
		0x3f800000, 0x7f7fffff, 0x7f800000, 0xff800000, 0x7fc00000,
		0x3e99999a, // 0.3
		0x40490fdb, // pi
		0x501502f9, // 1e10
	} {
		check(bits)
	}

	for _, bits := range util.Uint64s(0x32f0, 50000) {
		check(uint32(bits))
	}
}

func TestAppendFloat64(t *testing.T) {
	buf := []byte("x=")
	buf = ryu.AppendFloat64(buf, 0.25)
	assert.Equal(t, "x=0.25", string(buf))

	buf = ryu.AppendFloat32(buf[:0], 1.5)
	assert.Equal(t, "1.5", string(buf))
}

func TestParseFloat64(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"1", 1},
		{"+1", 1},
		{"-1", -1},
		{"0.1", 0.1},
		{"1e6", 1e6},
		{"1E6", 1e6},
		{"1e+06", 1e6},
		{"1.234567e+06", 1234567},
		{"123456.7", 123456.7},
		{"0.0001", 1e-4},
		{"3.141592653589793", math.Pi},
		{"5e-324", 5e-324},
		{"1.7976931348623157e+308", math.MaxFloat64},
		{"2.2250738585072011e-308", math.Float64frombits(0x000fffffffffffff)},
		{"2.2250738585072014e-308", math.Float64frombits(0x0010000000000000)},
		{"00042", 42},
		{"42.", 42},
		{".5", 0.5},
	}
	for _, c := range cases {
		got, err := ryu.ParseFloat64(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, math.Float64bits(c.want), math.Float64bits(got), "input %q", c.in)
	}
}

func TestParseFloat64Saturation(t *testing.T) {
	// Out-of-range values saturate rather than error.
	f, err := ryu.ParseFloat64("1e309")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))

	f, err = ryu.ParseFloat64("-1e309")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, -1))

	f, err = ryu.ParseFloat64("1e-400")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), math.Float64bits(f))

	f, err = ryu.ParseFloat64("-1e-400")
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, math.Float64bits(f))
}

func TestParseFloat64Errors(t *testing.T) {
	syntax := []string{
		"", "abc", "-", "+", ".", "e5", "1e", "1e+", "1.2.3", "1e4.5",
		"1 ", " 1", "0x10", "NaN", "Inf", "1e5x",
	}
	for _, in := range syntax {
		_, err := ryu.ParseFloat64(in)
		assert.ErrorIs(t, err, ryu.ErrSyntax, "input %q", in)
	}

	long := []string{
		"123456789012345678",  // 18 significant digits
		"1.23456789012345678", // same, with a dot
		"0.000123456789012345678",
		"1e12345",
	}
	for _, in := range long {
		_, err := ryu.ParseFloat64(in)
		assert.ErrorIs(t, err, ryu.ErrTooLong, "input %q", in)
	}

	for _, in := range append(syntax, long...) {
		_, err := ryu.ParseFloat64(in)
		assert.True(t, ryu.Error.Has(err), "input %q: error not in class: %v", in, err)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, bits := range util.Uint64s(0xca11, 50000) {
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		s := ryu.FormatFloat64(f)
		g, err := ryu.ParseFloat64(s)
		require.NoError(t, err, "formatted %q", s)
		require.Equal(t, bits, math.Float64bits(g), "formatted %q", s)
	}
}

func BenchmarkFormatFloat64(b *testing.B) {
	samples := util.Uint64s(0xbe7c, 1024)
	b.ResetTimer()
	var buf [32]byte
	for i := 0; i < b.N; i++ {
		f := math.Float64frombits(samples[i&1023])
		ryu.AppendFloat64(buf[:0], f)
	}
}

func BenchmarkFormatFloat64Strconv(b *testing.B) {
	samples := util.Uint64s(0xbe7c, 1024)
	b.ResetTimer()
	var buf [32]byte
	for i := 0; i < b.N; i++ {
		f := math.Float64frombits(samples[i&1023])
		strconv.AppendFloat(buf[:0], f, 'g', -1, 64)
	}
}

func BenchmarkParseFloat64(b *testing.B) {
	samples := make([]string, 1024)
	for i, bits := range util.Uint64s(0xbe7c, 1024) {
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			f = 0.5
		}
		samples[i] = ryu.FormatFloat64(f)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ryu.ParseFloat64(samples[i&1023]); err != nil {
			b.Fatal(err)
		}
	}
}
