package rng

// Source is a deterministic pseudo-random generator seeded with a single
// 32-bit value. Two Sources built from the same seed produce identical
// sequences forever, which is what makes daily runs reproducible. The whole
// run draws from one Source; nothing in the engine touches math/rand.
//
// The core step is the mulberry32 mixer: tiny state, good enough
// distribution for content rolls, and trivially serializable.
type Source struct {
	state uint32
}

// New returns a Source seeded with the given value.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Restore rebuilds a Source from a previously captured state.
func Restore(state uint32) *Source {
	return &Source{state: state}
}

// State exposes the generator state for save snapshots.
func (s *Source) State() uint32 {
	return s.state
}

// Float returns the next draw in [0, 1).
func (s *Source) Float() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// Intn returns a draw in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float() * float64(n))
}

// Between returns a draw in [min, max] inclusive.
func (s *Source) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.Float() < p
}

// Shuffle performs a Fisher-Yates shuffle over n elements.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}

// WeightedIndex picks an index proportionally to the given weights.
// Zero-weight entries are never picked. Returns -1 for an empty or
// all-zero table.
func (s *Source) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	roll := s.Intn(total)
	current := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		current += w
		if roll < current {
			return i
		}
	}
	return len(weights) - 1
}
