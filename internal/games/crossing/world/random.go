package world

import (
	"errors"
	"math/rand"
)

var (
	// ErrNoRandomSource is returned by New when no RandomSource is supplied.
	ErrNoRandomSource = errors.New("world: no random source")
	// ErrEmptySequence is returned by NewScripted for an empty value list.
	ErrEmptySequence = errors.New("world: scripted source needs at least one value")
	// ErrValueOutOfRange is returned by NewScripted for values outside [0, 1).
	ErrValueOutOfRange = errors.New("world: scripted value outside [0, 1)")
)

// RandomSource supplies the randomness consumed by lane generation and
// train timers. Implementations are not expected to be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntRange returns a uniform integer in [lo, hi]. hi < lo yields lo.
	IntRange(lo, hi int) int
	// Choice returns an index into weights, picked with probability
	// proportional to its weight. Callers pass at least one positive weight.
	Choice(weights []float64) int
}

// SeededSource is a RandomSource backed by math/rand.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeeded creates a source that produces the same sequence for the same seed.
func NewSeeded(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// Float64 implements RandomSource.
func (s *SeededSource) Float64() float64 {
	return s.rng.Float64()
}

// IntRange implements RandomSource.
func (s *SeededSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Choice implements RandomSource.
func (s *SeededSource) Choice(weights []float64) int {
	return weightedIndex(weights, s.Float64())
}

// ScriptedSource replays a fixed list of values in a loop.
// Integer and weighted draws are derived from the next value, so a test can
// steer generation precisely.
type ScriptedSource struct {
	values []float64
	next   int
}

// NewScripted creates a source cycling through values. Every value must lie in [0, 1).
func NewScripted(values ...float64) (*ScriptedSource, error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	for _, v := range values {
		if v < 0 || v >= 1 {
			return nil, ErrValueOutOfRange
		}
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	return &ScriptedSource{values: vals}, nil
}

// Float64 implements RandomSource.
func (s *ScriptedSource) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// IntRange implements RandomSource.
func (s *ScriptedSource) IntRange(lo, hi int) int {
	v := s.Float64()
	if hi <= lo {
		return lo
	}
	n := lo + int(v*float64(hi-lo+1))
	if n > hi {
		n = hi
	}
	return n
}

// Choice implements RandomSource.
func (s *ScriptedSource) Choice(weights []float64) int {
	return weightedIndex(weights, s.Float64())
}

// weightedIndex maps a uniform draw u onto the cumulative weights.
func weightedIndex(weights []float64, u float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	x := u * total
	acc := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		last = i
		if x < acc {
			return i
		}
	}
	return last
}

// pick returns a uniformly chosen element of xs.
func pick(rng RandomSource, xs []float64) float64 {
	return xs[rng.IntRange(0, len(xs)-1)]
}

// uniform returns a value in [lo, hi).
func uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// sign returns -1 or 1 with equal probability.
func sign(rng RandomSource) int {
	if rng.IntRange(0, 1) == 0 {
		return -1
	}
	return 1
}
