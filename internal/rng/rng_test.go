package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float(), b.Float(), "draw %d diverged", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	diverged := false
	for i := 0; i < 5; i++ {
		if a.Float() != b.Float() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "seeds 1 and 2 produced identical opening draws")
}

func TestFloatRange(t *testing.T) {
	s := New(99)
	for i := 0; i < 1000; i++ {
		f := s.Float()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestRestoreResumesSequence(t *testing.T) {
	a := New(777)
	for i := 0; i < 10; i++ {
		a.Float()
	}

	b := Restore(a.State())
	assert.Equal(t, a.Float(), b.Float())
	assert.Equal(t, a.Float(), b.Float())
}

func TestIntnBounds(t *testing.T) {
	s := New(5)
	for i := 0; i < 500; i++ {
		v := s.Intn(6)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 6)
	}
	assert.Equal(t, 0, s.Intn(0))
}

func TestBetweenInclusive(t *testing.T) {
	s := New(8)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := s.Between(2, 4)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestWeightedIndex(t *testing.T) {
	s := New(42)

	assert.Equal(t, -1, s.WeightedIndex(nil))
	assert.Equal(t, -1, s.WeightedIndex([]int{0, 0}))

	// A zero-weight entry must never be picked.
	for i := 0; i < 300; i++ {
		idx := s.WeightedIndex([]int{10, 0, 5})
		require.NotEqual(t, 1, idx)
	}
}

func TestShuffleIsDeterministic(t *testing.T) {
	mk := func(seed uint32) []int {
		s := New(seed)
		vals := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		s.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		return vals
	}

	assert.Equal(t, mk(31337), mk(31337))
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, mk(31337))
}
