package content

import (
	"shatteredmirror/internal/game"
)

// Events returns the event table. Choices resolve immediately and the run
// returns to the map; anything random draws from the run PRNG so the same
// seed and choice always produce the same outcome.
func Events() []game.EventDef {
	return []game.EventDef{
		{
			ID: "abandoned_till", Name: "Abandoned Till",
			Text: "A shopkeeper's till sits open and unattended.",
			Choices: []game.EventChoice{
				{Label: "Take the gold (gain 55 gold, lose 6 hp)", Apply: func(r *game.Run) {
					r.AddGold(55)
					r.DamagePlayer(6)
				}},
				{Label: "Leave it", Apply: func(r *game.Run) {}},
			},
		},
		{
			ID: "healing_spring", Name: "Healing Spring",
			Text: "Water pools in a cracked basin, impossibly clear.",
			Choices: []game.EventChoice{
				{Label: "Drink (heal 18 hp)", Apply: func(r *game.Run) { r.HealPlayer(18) }},
				{Label: "Bathe (heal 8 hp, gain 4 max hp)", Apply: func(r *game.Run) {
					r.RaiseMaxHP(4)
					r.HealPlayer(8)
				}},
			},
		},
		{
			ID: "forgotten_shrine", Name: "Forgotten Shrine",
			Text: "An altar of fused glass hums when you approach.",
			Choices: []game.EventChoice{
				{Label: "Pray (upgrade a random card)", Apply: func(r *game.Run) {
					if len(r.Deck) == 0 {
						return
					}
					// Only un-upgraded cards are candidates.
					var idxs []int
					for i, c := range r.Deck {
						if !c.Upgraded {
							idxs = append(idxs, i)
						}
					}
					if len(idxs) > 0 {
						r.UpgradeCard(idxs[r.Rng.Intn(len(idxs))])
					}
				}},
				{Label: "Desecrate (gain 40 gold, gain a Doubt)", Apply: func(r *game.Run) {
					r.AddGold(40)
					r.AddCardToDeck("curse_doubt")
				}},
			},
		},
		{
			ID: "glass_gardener", Name: "Glass Gardener",
			Text: "A stooped figure tends rows of growing mirrors and offers to prune your collection.",
			Choices: []game.EventChoice{
				{Label: "Accept (remove a random card)", Apply: func(r *game.Run) {
					if len(r.Deck) > 1 {
						r.RemoveCardFromDeck(r.Rng.Intn(len(r.Deck)))
					}
				}},
				{Label: "Decline", Apply: func(r *game.Run) {}},
			},
		},
		{
			ID: "wandering_peddler", Name: "Wandering Peddler",
			Text: "A peddler rattles a crate of stoppered bottles.",
			Choices: []game.EventChoice{
				{Label: "Buy a potion (30 gold)", Apply: func(r *game.Run) {
					if !r.SpendGold(30) {
						return
					}
					pots := r.Library().Potions
					if len(pots) > 0 {
						r.AddPotion(pots[r.Rng.Intn(len(pots))].ID)
					}
				}},
				{Label: "Walk on", Apply: func(r *game.Run) {}},
			},
		},
		{
			ID: "shard_gamble", Name: "Shard Gamble",
			Text: "A masked stranger shuffles three mirrored cups over a sliver of gold.",
			Choices: []game.EventChoice{
				{Label: "Play (50 gold: half chance to triple it)", Apply: func(r *game.Run) {
					if !r.SpendGold(50) {
						return
					}
					if r.Rng.Chance(0.5) {
						r.AddGold(150)
					}
				}},
				{Label: "Refuse", Apply: func(r *game.Run) {}},
			},
		},
		{
			ID: "reliquary_niche", Name: "Reliquary Niche",
			Text: "Behind a loose pane, something glints in a dusty niche.",
			Choices: []game.EventChoice{
				{Label: "Reach in (gain a random relic, lose 10 hp)", Apply: func(r *game.Run) {
					var owned = map[string]bool{}
					for _, id := range r.Relics {
						owned[id] = true
					}
					var pool []string
					for _, rl := range r.Library().Relics {
						if !owned[rl.ID] {
							pool = append(pool, rl.ID)
						}
					}
					if len(pool) == 0 {
						return
					}
					r.DamagePlayer(10)
					if r.State != game.StateGameOver {
						r.AddRelic(pool[r.Rng.Intn(len(pool))])
					}
				}},
				{Label: "Leave it", Apply: func(r *game.Run) {}},
			},
		},
		{
			ID: "hall_of_echoes", Name: "Hall of Echoes",
			Text: "Your reflection repeats a card back at you from a hundred angles.",
			Choices: []game.EventChoice{
				{Label: "Listen (duplicate a random card)", Apply: func(r *game.Run) {
					if len(r.Deck) == 0 {
						return
					}
					c := r.Deck[r.Rng.Intn(len(r.Deck))]
					r.AddCardToDeck(c.ID)
				}},
				{Label: "Cover your ears", Apply: func(r *game.Run) {}},
			},
		},
		{
			ID: "seven_year_pact", Name: "Seven-Year Pact",
			Text: "A broken mirror offers power for a price it will collect later.",
			Choices: []game.EventChoice{
				{Label: "Sign (gain 12 max hp, gain a Seven Years)", Apply: func(r *game.Run) {
					r.RaiseMaxHP(12)
					r.AddCardToDeck("curse_seven_years")
				}},
				{Label: "Shatter it (gain 25 gold)", Apply: func(r *game.Run) { r.AddGold(25) }},
			},
		},
		{
			ID: "dusty_workshop", Name: "Dusty Workshop",
			Text: "Fusion tongs and a cold crucible wait on a workbench.",
			Choices: []game.EventChoice{
				{Label: "Fuse your first two cards", Apply: func(r *game.Run) {
					if len(r.Deck) >= 2 {
						r.FuseCards(0, 1)
					}
				}},
				{Label: "Pocket the tongs (gain 20 gold)", Apply: func(r *game.Run) { r.AddGold(20) }},
			},
		},
		{
			ID: "silent_choir", Name: "Silent Choir",
			Text: "Robed figures of frosted glass part to let you pass, palms out.",
			Choices: []game.EventChoice{
				{Label: "Donate 25 gold (heal to full)", Apply: func(r *game.Run) {
					if r.SpendGold(25) {
						r.HealPlayer(r.MaxHP)
					}
				}},
				{Label: "Push through (lose 5 hp)", Apply: func(r *game.Run) { r.DamagePlayer(5) }},
			},
		},
	}
}
