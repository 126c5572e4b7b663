package content

import (
	"shatteredmirror/internal/game"
)

// DailyMods returns the pool of rule twists. A daily run draws two
// distinct mods from this list by seed.
func DailyMods() []game.DailyMod {
	return []game.DailyMod{
		{ID: "gilded_age", Name: "Gilded Age", Apply: func(r *game.Run) { r.GoldPct += 100 }},
		{ID: "overclocked", Name: "Overclocked", Apply: func(r *game.Run) { r.BonusEnergy++ }},
		{ID: "open_hand", Name: "Open Hand", Apply: func(r *game.Run) { r.BonusDraw++ }},
		{ID: "flea_market", Name: "Flea Market", Apply: func(r *game.Run) { r.CardCostCap = 1 }},
		{ID: "packrat", Name: "Packrat", Apply: func(r *game.Run) { r.RetainHand = true }},
		{ID: "stonewall", Name: "Stonewall", Apply: func(r *game.Run) { r.KeepBlock = true }},
		{ID: "evergreen", Name: "Evergreen", Apply: func(r *game.Run) { r.StartStatuses[game.StatusRegen] += 3 }},
		{ID: "hedgehog", Name: "Hedgehog", Apply: func(r *game.Run) { r.StartStatuses[game.StatusThorns] += 2 }},
		{ID: "glass_bones", Name: "Glass Bones", Apply: func(r *game.Run) {
			r.MaxHP = r.MaxHP * 2 / 3
			if r.HP > r.MaxHP {
				r.HP = r.MaxHP
			}
		}},
		{ID: "giants", Name: "Giants", Apply: func(r *game.Run) { r.EnemyHPPct += 50 }},
		{ID: "cornered_beasts", Name: "Cornered Beasts", Apply: func(r *game.Run) { r.EnemyStrengthBonus += 2 }},
		{ID: "heirloom", Name: "Heirloom", Apply: func(r *game.Run) {
			relics := r.Library().Relics
			if len(relics) > 0 {
				r.AddRelic(relics[r.Rng.Intn(len(relics))].ID)
			}
		}},
		{ID: "masterwork", Name: "Masterwork", Apply: func(r *game.Run) {
			for i := range r.Deck {
				r.Deck[i].Upgraded = true
			}
		}},
		{ID: "bloodless", Name: "Bloodless", Apply: func(r *game.Run) { r.HealPerVictory += 3 }},
	}
}
