package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	origin := Hex{0, 0}

	assert.Equal(t, 0, Distance(origin, origin))
	assert.Equal(t, 1, Distance(origin, Hex{1, 0}))
	assert.Equal(t, 1, Distance(origin, Hex{0, 1}))
	assert.Equal(t, 2, Distance(origin, Hex{1, 1}))
	assert.Equal(t, 3, Distance(origin, Hex{3, 0}))
	assert.Equal(t, 3, Distance(Hex{-1, -1}, Hex{1, 0}))
}

func TestNeighbors(t *testing.T) {
	ns := Neighbors(Hex{2, -1})
	require.Len(t, ns, 6)

	seen := map[Hex]bool{}
	for _, n := range ns {
		assert.Equal(t, 1, Distance(Hex{2, -1}, n))
		seen[n] = true
	}
	assert.Len(t, seen, 6, "neighbors must be distinct")
}

func TestAllHexesCount(t *testing.T) {
	for r := 0; r <= 4; r++ {
		want := 3*r*r + 3*r + 1
		assert.Len(t, AllHexes(r), want, "radius %d", r)
	}
}

func TestRangeCentered(t *testing.T) {
	center := Hex{5, -2}
	for _, h := range Range(center, 2) {
		assert.True(t, InRange(center, h, 2))
	}
	assert.Len(t, Range(center, 2), 19)
}

func TestStepTowardShortensDistance(t *testing.T) {
	from := Hex{0, 0}
	to := Hex{3, -2}

	steps := 0
	for from != to {
		next := StepToward(from, to)
		require.Equal(t, Distance(from, to)-1, Distance(next, to))
		from = next
		steps++
		require.Less(t, steps, 20, "walk did not terminate")
	}
	assert.Equal(t, 5, steps)
}

func TestStepTowardAtTarget(t *testing.T) {
	h := Hex{1, 1}
	assert.Equal(t, h, StepToward(h, h))
}

func TestStepTowardDeterministic(t *testing.T) {
	// Ties exist on exact diagonals; the walk must still be stable.
	a := StepToward(Hex{0, 0}, Hex{2, 2})
	b := StepToward(Hex{0, 0}, Hex{2, 2})
	assert.Equal(t, a, b)
}
