package payoff

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Source produces integers in an inclusive range. Implementations carry
// mutable state and are not safe for concurrent draws; wrap with
// NewLockedSource when a source must be shared.
type Source interface {
	NextInRange(low, high int) (int, error)
}

// RandSource draws from a private *rand.Rand.
type RandSource struct {
	rand  *rand.Rand
	seed  int64
	draws int
}

// NewDeterministicSource returns a source whose sequence depends only on seed
// and the order of draws.
func NewDeterministicSource(seed int64) *RandSource {
	return &RandSource{rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewEntropySource returns a source seeded from crypto/rand. Every call yields
// an independent generator; no process-wide state is shared.
func NewEntropySource() *RandSource {
	return NewDeterministicSource(entropySeed())
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// NextInRange returns v with low <= v <= high.
func (s *RandSource) NextInRange(low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("%d > %d: %w", low, high, ErrInvalidRange)
	}
	s.draws++
	span := uint64(uint(high-low)) + 1
	if span == 0 {
		// [math.MinInt64, math.MaxInt64]
		return int(s.rand.Uint64()), nil
	}
	return low + int(uniform(s.rand, span)), nil
}

// Seed returns the seed the source was created with.
func (s *RandSource) Seed() int64 { return s.seed }

// Draws returns how many values have been produced.
func (s *RandSource) Draws() int { return s.draws }

// uniform returns a value in [0, n) without modulo bias.
func uniform(r *rand.Rand, n uint64) uint64 {
	if n <= 1<<62 {
		return uint64(r.Int63n(int64(n)))
	}
	limit := ^uint64(0) - (^uint64(0) % n)
	for {
		v := r.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// LockedSource serializes draws on an underlying Source.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) NextInRange(low, high int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.NextInRange(low, high)
}

// Randomness selects how a Builder samples unspecified payoffs. The zero value
// is non-deterministic.
type Randomness struct {
	deterministic bool
	seed          int64
}

// Deterministic samples from a generator seeded with seed.
func Deterministic(seed int64) Randomness {
	return Randomness{deterministic: true, seed: seed}
}

// NonDeterministic samples from a generator seeded with process entropy.
func NonDeterministic() Randomness {
	return Randomness{}
}

// Seed reports the seed and whether the mode is deterministic.
func (r Randomness) Seed() (int64, bool) {
	return r.seed, r.deterministic
}

// NewSource returns a fresh source for this mode.
func (r Randomness) NewSource() *RandSource {
	if r.deterministic {
		return NewDeterministicSource(r.seed)
	}
	return NewEntropySource()
}

func (r Randomness) String() string {
	if r.deterministic {
		return fmt.Sprintf("deterministic(seed=%d)", r.seed)
	}
	return "non-deterministic"
}
