package core

import (
	"math/big"
	"testing"
)

func refPow5(i int) *big.Int {
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(i)), nil)
}

// refSplit is 5^i normalized to exactly n bits, truncating low bits for
// large i and shifting up for small i.
func refSplit(i, n int) *big.Int {
	p := refPow5(i)
	l := p.BitLen()
	if l <= n {
		return p.Lsh(p, uint(n-l))
	}
	return p.Rsh(p, uint(l-n))
}

// refInv is floor(2^(bitlen(5^i)-1+n)/5^i) + 1.
func refInv(i, n int) *big.Int {
	p := refPow5(i)
	v := new(big.Int).Lsh(big.NewInt(1), uint(p.BitLen()-1+n))
	v.Div(v, p)
	return v.Add(v, big.NewInt(1))
}

func refWords(v *big.Int) (lo, hi uint64) {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	lo = new(big.Int).And(v, mask).Uint64()
	hi = new(big.Int).Rsh(v, 64).Uint64()
	return lo, hi
}

func TestPow5SplitEntries(t *testing.T) {
	for i := range pow5Split {
		lo, hi := refWords(refSplit(i, pow5Bitcount))
		if pow5Split[i][0] != lo || pow5Split[i][1] != hi {
			t.Fatalf("pow5Split[%d] = {0x%016x, 0x%016x}, want {0x%016x, 0x%016x}",
				i, pow5Split[i][0], pow5Split[i][1], lo, hi)
		}
	}
}

func TestPow5InvSplitEntries(t *testing.T) {
	for i := range pow5InvSplit {
		lo, hi := refWords(refInv(i, pow5InvBitcount))
		if pow5InvSplit[i][0] != lo || pow5InvSplit[i][1] != hi {
			t.Fatalf("pow5InvSplit[%d] = {0x%016x, 0x%016x}, want {0x%016x, 0x%016x}",
				i, pow5InvSplit[i][0], pow5InvSplit[i][1], lo, hi)
		}
	}
}

func TestPow5SplitFEntries(t *testing.T) {
	for i := range pow5SplitF {
		want := refSplit(i, pow5BitcountF).Uint64()
		if pow5SplitF[i] != want {
			t.Fatalf("pow5SplitF[%d] = 0x%016x, want 0x%016x", i, pow5SplitF[i], want)
		}
	}
	for i := range pow5InvSplitF {
		want := refInv(i, pow5InvBitcountF).Uint64()
		if pow5InvSplitF[i] != want {
			t.Fatalf("pow5InvSplitF[%d] = 0x%016x, want 0x%016x", i, pow5InvSplitF[i], want)
		}
	}
}

func TestTableAnchors(t *testing.T) {
	// Spot values that pin down the normalization conventions.
	if pow5Split[0] != [2]uint64{0, 0x1000000000000000} {
		t.Errorf("pow5Split[0] = %#x", pow5Split[0])
	}
	if pow5InvSplit[0] != [2]uint64{1, 1 << 61} {
		t.Errorf("pow5InvSplit[0] = %#x", pow5InvSplit[0])
	}
	if pow5InvSplit[1] != [2]uint64{11068046444225730970, 1844674407370955161} {
		t.Errorf("pow5InvSplit[1] = %#x", pow5InvSplit[1])
	}
	if pow5InvSplitF[0] != 576460752303423489 {
		t.Errorf("pow5InvSplitF[0] = %d", pow5InvSplitF[0])
	}
}
