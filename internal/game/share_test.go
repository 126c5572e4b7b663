package game_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shatteredmirror/internal/game"
	"shatteredmirror/internal/worldmap"
)

func TestShareGridContract(t *testing.T) {
	r := fullRun(t, 31)
	r.Act = 2
	r.Floor = 9
	r.FloorLog = []game.FloorResult{
		{Floor: 1, Node: worldmap.NodeCombat, Won: true},
		{Floor: 2, Node: worldmap.NodeEvent, Won: true},
		{Floor: 3, Node: worldmap.NodeElite, Won: true},
		{Floor: 4, Node: worldmap.NodeRest, Won: true},
		{Floor: 5, Node: worldmap.NodeShop, Won: true},
		{Floor: 6, Node: worldmap.NodeCombat, Won: true},
	}

	text := game.GenerateShareGrid(r, "daily")

	// The title and URL substrings are the stable contract; glyph layout
	// is cosmetic.
	assert.Contains(t, text, "Shattered Mirror Daily")
	assert.Contains(t, text, "Act 2")
	assert.Contains(t, text, "Floor 9")
	assert.Contains(t, text, game.ShareURL+"/daily")

	lines := strings.Split(text, "\n")
	assert.GreaterOrEqual(t, len(lines), 3)
}

func TestShareGridOutcomeGlyphs(t *testing.T) {
	r := fullRun(t, 31)
	r.FloorLog = []game.FloorResult{{Floor: 1, Node: worldmap.NodeCombat, Won: false}}
	r.State = game.StateGameOver

	text := game.GenerateShareGrid(r, "run")
	assert.Contains(t, text, "💀")

	r.State = game.StateVictory
	text = game.GenerateShareGrid(r, "run")
	assert.Contains(t, text, "🏆")
}

func TestShareGridModes(t *testing.T) {
	r := fullRun(t, 31)

	assert.Contains(t, game.GenerateShareGrid(r, "puzzle"), "Shattered Mirror Puzzle")
	assert.Contains(t, game.GenerateShareGrid(r, "run"), "Shattered Mirror Run")
	assert.Contains(t, game.GenerateShareGrid(r, "run"), "Score ")
}
