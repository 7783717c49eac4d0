package util

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sampler yields a deterministic, seed-keyed stream of pseudo-random
// 64-bit values. Streams are reproducible across runs and platforms, which
// keeps randomized conversion tests and benchmarks replayable from just a
// seed and an index.
type Sampler struct {
	seed uint64
	next uint64
}

// NewSampler returns a sampler for the given seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{seed: seed}
}

// Next returns the next value of the stream.
func (s *Sampler) Next() uint64 {
	v := At(s.seed, s.next)
	s.next++
	return v
}

// At returns element i of the stream for seed without advancing anything.
func At(seed, i uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], i)
	return xxhash.Sum64(buf[:])
}

// Uint64s returns the first n values of the stream for seed.
func Uint64s(seed uint64, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = At(seed, uint64(i))
	}
	return out
}
