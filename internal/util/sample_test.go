package util

import "testing"

func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(123)
	b := NewSampler(123)
	for i := 0; i < 100; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("streams diverged at %d: %x vs %x", i, va, vb)
		}
		if At(123, uint64(i)) != va {
			t.Fatalf("At(123, %d) disagrees with Next", i)
		}
	}
}

func TestSamplerSeedsDiffer(t *testing.T) {
	same := 0
	for i := uint64(0); i < 1000; i++ {
		if At(1, i) == At(2, i) {
			same++
		}
	}
	if same > 0 {
		t.Errorf("seeds 1 and 2 collided on %d of 1000 indices", same)
	}
}

func TestUint64s(t *testing.T) {
	vs := Uint64s(7, 50)
	if len(vs) != 50 {
		t.Fatalf("len = %d, want 50", len(vs))
	}
	for i, v := range vs {
		if v != At(7, uint64(i)) {
			t.Errorf("Uint64s[%d] = %x, want %x", i, v, At(7, uint64(i)))
		}
	}
}

func TestProgressLoggerDisabled(t *testing.T) {
	pl := NewProgressLogger(10, "t: ", false)
	for i := 0; i < 10; i++ {
		pl.Log()
	}
	pl.Finalize() // must not print or panic when disabled
}
