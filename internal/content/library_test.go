package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shatteredmirror/internal/game"
)

func TestLibraryTableSizes(t *testing.T) {
	lib := DefaultLibrary()

	assert.GreaterOrEqual(t, len(lib.Cards), 85)
	assert.GreaterOrEqual(t, len(lib.Enemies), 30)
	assert.GreaterOrEqual(t, len(lib.Relics), 30)
	assert.GreaterOrEqual(t, len(lib.Potions), 10)
	assert.GreaterOrEqual(t, len(lib.Events), 10)
	assert.Len(t, lib.Ascensions, 20)
	assert.GreaterOrEqual(t, len(lib.DailyMods), 12)
}

func TestLibraryUniqueIDs(t *testing.T) {
	lib := DefaultLibrary()

	seen := map[string]bool{}
	for _, c := range lib.Cards {
		assert.False(t, seen[c.ID], "duplicate card id %q", c.ID)
		seen[c.ID] = true
	}
	seen = map[string]bool{}
	for _, e := range lib.Enemies {
		assert.False(t, seen[e.ID], "duplicate enemy id %q", e.ID)
		seen[e.ID] = true
	}
	seen = map[string]bool{}
	for _, r := range lib.Relics {
		assert.False(t, seen[r.ID], "duplicate relic id %q", r.ID)
		seen[r.ID] = true
	}
	seen = map[string]bool{}
	for _, p := range lib.Potions {
		assert.False(t, seen[p.ID], "duplicate potion id %q", p.ID)
		seen[p.ID] = true
	}
}

func TestStarterDeckResolves(t *testing.T) {
	lib := DefaultLibrary()

	require.Len(t, lib.StarterDeck, 10)
	for _, id := range lib.StarterDeck {
		_, ok := lib.Card(id)
		assert.True(t, ok, "starter card %q missing from table", id)
	}
}

func TestEveryActAndTierHasEnemies(t *testing.T) {
	lib := DefaultLibrary()

	for act := 1; act <= 3; act++ {
		assert.GreaterOrEqual(t, len(lib.EnemiesBy(act, game.TierNormal)), 3, "act %d normals", act)
		assert.GreaterOrEqual(t, len(lib.EnemiesBy(act, game.TierElite)), 2, "act %d elites", act)
		assert.GreaterOrEqual(t, len(lib.EnemiesBy(act, game.TierBoss)), 1, "act %d bosses", act)
	}
}

func TestEnemiesHaveIntents(t *testing.T) {
	lib := DefaultLibrary()

	for _, e := range lib.Enemies {
		assert.NotNil(t, e.GetIntent, "enemy %q has no intent", e.ID)
		assert.Positive(t, e.MaxHP, "enemy %q has no hp", e.ID)
	}
}

func TestPlayableCardsHaveEffects(t *testing.T) {
	lib := DefaultLibrary()

	for _, c := range lib.Cards {
		if c.Unplayable {
			assert.Nil(t, c.Effect, "unplayable card %q has an effect", c.ID)
			continue
		}
		assert.NotNil(t, c.Effect, "card %q has no effect", c.ID)
	}
}

// Fusion is total: every pair of playable cards, in either order, has a
// result, and explicit recipes shadow synthesis.
func TestFusionTotality(t *testing.T) {
	lib := DefaultLibrary()

	var ids []string
	for _, c := range lib.Cards {
		if !c.Unplayable && !c.Fused {
			ids = append(ids, c.ID)
		}
	}
	for _, a := range ids {
		for _, b := range ids {
			def, ok := lib.FusedCard(a, b)
			require.True(t, ok, "fusion %q + %q undefined", a, b)
			assert.True(t, def.Fused)
			assert.NotEmpty(t, def.ID)

			flipped, ok := lib.FusedCard(b, a)
			require.True(t, ok)
			assert.Equal(t, def.ID, flipped.ID, "fusion of %q and %q is order-dependent", a, b)
		}
	}
}

func TestExplicitRecipesResolve(t *testing.T) {
	lib := DefaultLibrary()

	def, ok := lib.FusedCard("shard_strike", "shard_strike")
	require.True(t, ok)
	assert.Equal(t, "twin_fang", def.ID)
	assert.True(t, def.Fused)

	def, ok = lib.FusedCard("shard_strike", "venom_lash")
	require.True(t, ok)
	assert.Equal(t, "toxic_edge", def.ID)
}

func TestRarityPoolsNonEmpty(t *testing.T) {
	lib := DefaultLibrary()

	for _, rarity := range []game.Rarity{game.RarityCommon, game.RarityUncommon, game.RarityRare} {
		assert.NotEmpty(t, lib.CardsBy(rarity), "no %s cards", rarity)
	}
}
