package worldmap

import (
	"encoding/json"
	"testing"

	"shatteredmirror/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStructure(t *testing.T) {
	for act := 1; act <= 3; act++ {
		for seed := uint32(1); seed <= 50; seed++ {
			m := Generate(act, rng.New(seed))
			require.True(t, m.Valid(), "act %d seed %d produced an invalid map", act, seed)
		}
	}
}

func TestGenerateRowShape(t *testing.T) {
	m := Generate(1, rng.New(7))

	require.Len(t, m.Rows, RowCount)
	assert.Len(t, m.Rows[0], 1)
	assert.Equal(t, NodeStart, m.Rows[0][0].Type)
	assert.Len(t, m.Rows[RowCount-1], 1)
	assert.Equal(t, NodeBoss, m.Rows[RowCount-1][0].Type)

	for row := 1; row < RowCount-1; row++ {
		assert.GreaterOrEqual(t, len(m.Rows[row]), 2)
		assert.LessOrEqual(t, len(m.Rows[row]), 4)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(2, rng.New(4242))
	b := Generate(2, rng.New(4242))

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestGenerateRestAndShopPresent(t *testing.T) {
	for seed := uint32(100); seed < 140; seed++ {
		m := Generate(3, rng.New(seed))
		rests, shops := 0, 0
		for _, row := range m.Rows {
			for _, n := range row {
				switch n.Type {
				case NodeRest:
					rests++
				case NodeShop:
					shops++
				}
			}
		}
		require.GreaterOrEqual(t, rests, 1, "seed %d has no rest node", seed)
		require.GreaterOrEqual(t, shops, 1, "seed %d has no shop node", seed)
	}
}

func TestNoEliteBeforeRowFour(t *testing.T) {
	for seed := uint32(1); seed <= 30; seed++ {
		m := Generate(1, rng.New(seed))
		for row := 1; row < 4; row++ {
			for _, n := range m.Rows[row] {
				require.NotEqual(t, NodeElite, n.Type, "seed %d elite at row %d", seed, row)
			}
		}
	}
}
