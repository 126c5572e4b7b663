package game_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/content"
	"shatteredmirror/internal/game"
	"shatteredmirror/internal/worldmap"
)

func fullRun(t *testing.T, seed uint32) *game.Run {
	t.Helper()
	return game.NewRun(seed, content.DefaultLibrary(), config.DefaultBalance(), game.Options{})
}

func TestNewRunOpeningState(t *testing.T) {
	r := fullRun(t, 99)

	assert.Equal(t, game.StateMap, r.State)
	assert.Equal(t, 1, r.Act)
	assert.Zero(t, r.Floor)
	assert.Equal(t, 72, r.HP)
	assert.Equal(t, 99, r.Gold)
	assert.Len(t, r.Deck, 10)
	assert.Len(t, r.Potions, 3)
	assert.True(t, r.Map.Valid())
	assert.Equal(t, game.Position{}, r.Pos)
}

func TestSameSeedSameRun(t *testing.T) {
	a := fullRun(t, 555)
	b := fullRun(t, 555)

	mapA, err := json.Marshal(a.Map)
	require.NoError(t, err)
	mapB, err := json.Marshal(b.Map)
	require.NoError(t, err)
	assert.Equal(t, mapA, mapB)
	assert.Equal(t, a.Rng.State(), b.Rng.State())
}

func TestEnterNodeFollowsEdgesOnly(t *testing.T) {
	r := fullRun(t, 99)

	// Jumping two rows or entering row 1 from nowhere is inert.
	assert.False(t, r.EnterNode(2, 0))
	assert.False(t, r.EnterNode(0, 0))

	moves := r.AvailableMoves()
	require.NotEmpty(t, moves)

	// A column not connected from start is rejected.
	connected := map[int]bool{}
	for _, m := range moves {
		connected[m.Col] = true
	}
	for col := 0; col < len(r.Map.Rows[1]); col++ {
		if !connected[col] {
			assert.False(t, r.EnterNode(1, col))
		}
	}

	require.True(t, r.EnterNode(moves[0].Row, moves[0].Col))
	assert.Equal(t, 1, r.Floor)
	assert.True(t, r.Visited[moves[0]])
}

func TestRestHeal(t *testing.T) {
	r := fullRun(t, 99)
	r.State = game.StateRest
	r.HP = 30

	require.True(t, r.RestHeal())

	// 30% of 72 = 21
	assert.Equal(t, 51, r.HP)
	assert.Equal(t, game.StateMap, r.State)
}

func TestRestUpgradeInsteadOfHeal(t *testing.T) {
	r := fullRun(t, 99)
	r.State = game.StateRest

	require.True(t, r.RestUpgrade(0))
	assert.True(t, r.Deck[0].Upgraded)
	assert.Equal(t, game.StateMap, r.State)

	// Already-upgraded cards are rejected, and only at a rest site.
	r.State = game.StateRest
	assert.False(t, r.RestUpgrade(0))
	r.State = game.StateMap
	assert.False(t, r.RestUpgrade(1))
}

func TestShopFlow(t *testing.T) {
	r := shopRun(t)
	require.NotNil(t, r.Shop)
	require.NotEmpty(t, r.Shop.Cards)

	deckBefore := len(r.Deck)
	require.True(t, r.ShopBuyCard(0))
	assert.Len(t, r.Deck, deckBefore+1)
	assert.True(t, r.Shop.Cards[0].Sold)
	assert.False(t, r.ShopBuyCard(0), "sold items stay sold")

	require.True(t, r.ShopRemoveCard(0))
	assert.Len(t, r.Deck, deckBefore)
	assert.False(t, r.ShopRemoveCard(0), "removal is once per shop")

	require.True(t, r.LeaveShop())
	assert.Equal(t, game.StateMap, r.State)
	assert.Nil(t, r.Shop)
}

// shopRun walks fresh runs across seeds until one reaches a shop without
// fighting, so the shop is stocked through the real node-entry path.
func shopRun(t *testing.T) *game.Run {
	t.Helper()
	for seed := uint32(1); seed < 500; seed++ {
		r := game.NewRun(seed, content.DefaultLibrary(), config.DefaultBalance(), game.Options{})
		r.Gold = 10000
		if walkToShop(r) {
			return r
		}
	}
	t.Fatal("no seed reached a shop combat-free")
	return nil
}

// walkToShop drives a fresh run along the map, fighting nothing, until it
// lands on a shop; combat nodes make it give up (returns false).
func walkToShop(r *game.Run) bool {
	for hops := 0; hops < 14; hops++ {
		moves := r.AvailableMoves()
		if len(moves) == 0 {
			return false
		}
		// Prefer a shop, else any non-combat node.
		pick := -1
		for i, m := range moves {
			switch r.Map.Rows[m.Row][m.Col].Type {
			case worldmap.NodeShop:
				pick = i
			case worldmap.NodeRest, worldmap.NodeEvent:
				if pick == -1 {
					pick = i
				}
			}
		}
		if pick == -1 {
			return false
		}
		m := moves[pick]
		isShop := r.Map.Rows[m.Row][m.Col].Type == worldmap.NodeShop
		if !r.EnterNode(m.Row, m.Col) {
			return false
		}
		if isShop {
			return true
		}
		// Clear the intermediate node.
		switch r.State {
		case game.StateRest:
			r.RestHeal()
		case game.StateEvent:
			if ev, ok := r.CurrentEvent(); ok && len(ev.Choices) > 0 {
				r.ChooseEventOption(len(ev.Choices) - 1)
			}
		}
		if r.State != game.StateMap {
			return false
		}
	}
	return false
}

func TestPotionLifecycle(t *testing.T) {
	r := fullRun(t, 99)

	require.True(t, r.AddPotion("mending_draught"))
	require.True(t, r.AddPotion("quicksilver_vial"))

	// Combat-only potion outside combat is inert.
	assert.False(t, r.UsePotion(1, -1))

	r.HP = 40
	require.True(t, r.UsePotion(0, -1))
	assert.Equal(t, 60, r.HP)
	assert.Empty(t, r.Potions[0], "slot frees on use")

	// Empty slot.
	assert.False(t, r.UsePotion(0, -1))
}

func TestPotionSlotsCap(t *testing.T) {
	r := fullRun(t, 99)

	require.True(t, r.AddPotion("mending_draught"))
	require.True(t, r.AddPotion("mending_draught"))
	require.True(t, r.AddPotion("mending_draught"))
	assert.False(t, r.AddPotion("mending_draught"), "slots are full")
}

func TestAddRelicFiresPickupOnce(t *testing.T) {
	r := fullRun(t, 99)

	maxBefore := r.MaxHP
	require.True(t, r.AddRelic("cracked_locket"))
	assert.Equal(t, maxBefore+8, r.MaxHP)

	assert.False(t, r.AddRelic("cracked_locket"), "relics are unique")
	assert.Equal(t, maxBefore+8, r.MaxHP)
}

func TestGoldPctScalesEarnings(t *testing.T) {
	r := fullRun(t, 99)
	r.GoldPct = 150
	r.Gold = 0

	r.AddGold(100)
	assert.Equal(t, 150, r.Gold)

	// Spending is never scaled.
	require.True(t, r.SpendGold(150))
	assert.Zero(t, r.Gold)
	assert.False(t, r.SpendGold(1))
}

func TestDamagePlayerKillsRun(t *testing.T) {
	r := fullRun(t, 99)
	r.HP = 5

	r.DamagePlayer(9)

	assert.Zero(t, r.HP)
	assert.Equal(t, game.StateGameOver, r.State)
}

func TestFuseCardsReplacesPairWithResult(t *testing.T) {
	r := fullRun(t, 99)
	deckBefore := len(r.Deck)

	// Starter deck has shard strikes at 0 and 1: explicit recipe.
	require.True(t, r.FuseCards(0, 1))

	assert.Len(t, r.Deck, deckBefore-1)
	assert.Equal(t, "twin_fang", r.Deck[len(r.Deck)-1].ID)

	def, ok := r.Library().Card("twin_fang")
	require.True(t, ok)
	assert.True(t, def.Fused)
}

func TestFuseCardsSynthesisFallback(t *testing.T) {
	r := fullRun(t, 99)

	// shard_strike + quicksilver has no explicit recipe.
	strikeIdx, quickIdx := -1, -1
	for i, c := range r.Deck {
		switch c.ID {
		case "shard_strike":
			if strikeIdx == -1 {
				strikeIdx = i
			}
		case "quicksilver":
			quickIdx = i
		}
	}
	require.GreaterOrEqual(t, strikeIdx, 0)
	require.GreaterOrEqual(t, quickIdx, 0)

	require.True(t, r.FuseCards(strikeIdx, quickIdx))
	fusedID := r.Deck[len(r.Deck)-1].ID
	assert.Contains(t, fusedID, "fused_")

	def, ok := r.Library().Card(fusedID)
	require.True(t, ok)
	assert.True(t, def.Fused)
	assert.NotNil(t, def.Effect)
}

func TestFuseCardsRejectsBadInput(t *testing.T) {
	r := fullRun(t, 99)

	assert.False(t, r.FuseCards(0, 0), "same index")
	assert.False(t, r.FuseCards(-1, 1))
	assert.False(t, r.FuseCards(0, 99))

	r.State = game.StateCombat
	assert.False(t, r.FuseCards(0, 1), "no fusing mid-combat")
}

func TestScore(t *testing.T) {
	r := fullRun(t, 99)
	r.Floor = 7
	r.EnemiesDefeated = 4
	r.Ascension = 2

	// 7*10 + 4*5 + 2*25 = 140
	assert.Equal(t, 140, r.Score())

	r.State = game.StateVictory
	assert.Equal(t, 390, r.Score())
}

func TestAscensionTiersApplyCumulatively(t *testing.T) {
	lib := content.DefaultLibrary()
	base := game.NewRun(42, lib, config.DefaultBalance(), game.Options{})
	asc := game.NewRun(42, content.DefaultLibrary(), config.DefaultBalance(), game.Options{Ascension: 4})

	assert.Equal(t, 100, base.EnemyHPPct)
	assert.Equal(t, 105, asc.EnemyHPPct)
	assert.Equal(t, base.Gold-15, asc.Gold)
	assert.Equal(t, 1, asc.EnemyStrengthBonus)
	assert.Equal(t, base.MaxHP-5, asc.MaxHP)
}

func TestDailyRunsShareSeedAndMods(t *testing.T) {
	lib := content.DefaultLibrary()
	a := game.NewRun(777, lib, config.DefaultBalance(), game.Options{Daily: true})
	b := game.NewRun(777, content.DefaultLibrary(), config.DefaultBalance(), game.Options{Daily: true})

	require.Len(t, a.DailyMods, 2)
	assert.Equal(t, a.DailyMods, b.DailyMods)
	assert.NotEqual(t, a.DailyMods[0], a.DailyMods[1], "mods are distinct")
}
