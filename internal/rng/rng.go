// Package rng provides the random sources used by the body generators.
package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// Source is a stream of uniform random numbers.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
}

// globalSource delegates to the math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Default returns the process-wide unseeded source.
func Default() Source {
	return globalSource{}
}

// NewSeeded returns a PCG-backed source. Equal seeds give equal streams.
func NewSeeded(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// FromUUID derives a seeded source from a UUID, so a run can be replayed by
// passing the same identifier again.
func FromUUID(id uuid.UUID) Source {
	hash := sha256.Sum256(append(id[:], []byte("stargen")...))
	return NewSeeded(
		binary.BigEndian.Uint64(hash[0:8]),
		binary.BigEndian.Uint64(hash[8:16]),
	)
}

// ParseSeed parses a --seed value. "new" mints a fresh random UUID.
func ParseSeed(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "new") {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return id, nil
}

// Uniform samples a float64 in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Fixed replays a fixed list of values, cycling when exhausted.
// IntN maps the next value onto [0, n).
type Fixed struct {
	values []float64
	pos    int
}

// NewFixed creates a Fixed source. Values should lie in [0, 1).
func NewFixed(values ...float64) *Fixed {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &Fixed{values: values}
}

// Float64 returns the next value in the stream.
func (f *Fixed) Float64() float64 {
	v := f.values[f.pos%len(f.values)]
	f.pos++
	return v
}

// IntN returns floor(next * n), clamped to n-1.
func (f *Fixed) IntN(n int) int {
	i := int(f.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
