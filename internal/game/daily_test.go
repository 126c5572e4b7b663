package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/content"
	"shatteredmirror/internal/game"
)

func TestDailySeedStablePerDate(t *testing.T) {
	noon := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	night := time.Date(2026, 8, 23, 23, 59, 0, 0, time.FixedZone("X", 0))
	nextDay := time.Date(2026, 8, 24, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, game.DailySeed(noon), game.DailySeed(night))
	assert.NotEqual(t, game.DailySeed(noon), game.DailySeed(nextDay))
	assert.NotEqual(t, game.DailySeed(noon), game.PuzzleSeed(noon))
}

func TestDailyRunsMatchAcrossPlayers(t *testing.T) {
	date := time.Date(2026, 8, 23, 6, 0, 0, 0, time.UTC)

	a := game.NewDailyRun(date, content.DefaultLibrary(), config.DefaultBalance(), 0)
	b := game.NewDailyRun(date, content.DefaultLibrary(), config.DefaultBalance(), 0)

	assert.True(t, a.Daily)
	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, a.DailyMods, b.DailyMods)
	assert.Equal(t, a.Rng.State(), b.Rng.State())
}

func TestPuzzleRunStartsInCombat(t *testing.T) {
	date := time.Date(2026, 8, 23, 6, 0, 0, 0, time.UTC)

	r := game.NewPuzzleRun(date, content.DefaultLibrary(), config.DefaultBalance())

	require.NotNil(t, r.Encounter)
	assert.Equal(t, game.StateCombat, r.State)
	assert.GreaterOrEqual(t, r.Act, 1)
	assert.LessOrEqual(t, r.Act, 3)
	require.Len(t, r.Encounter.Enemies, 1)
	assert.Equal(t, game.TierElite, r.Encounter.Enemies[0].Tier)
}
