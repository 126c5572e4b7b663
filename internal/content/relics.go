package content

import (
	"shatteredmirror/internal/game"
)

// Relics returns the relic table. Hooks fire in acquisition order; each
// relic uses at most one hook so stacking order stays easy to reason about.
func Relics() []game.RelicDef {
	return []game.RelicDef{
		// Pickup: permanent run modifiers.
		{
			ID: "cracked_locket", Name: "Cracked Locket", Rarity: game.RarityCommon,
			Text:     "Gain 8 max hp.",
			OnPickup: func(r *game.Run) { r.RaiseMaxHP(8) },
		},
		{
			ID: "merchants_ring", Name: "Merchant's Ring", Rarity: game.RarityCommon,
			Text:     "Gain 75 gold.",
			OnPickup: func(r *game.Run) { r.AddGold(75) },
		},
		{
			ID: "gilded_frame", Name: "Gilded Frame", Rarity: game.RarityUncommon,
			Text:     "Gain 25% more gold.",
			OnPickup: func(r *game.Run) { r.GoldPct += 25 },
		},
		{
			ID: "prism_core", Name: "Prism Core", Rarity: game.RarityRare,
			Text:     "Gain 1 energy each turn.",
			OnPickup: func(r *game.Run) { r.BonusEnergy++ },
		},
		{
			ID: "librarians_monocle", Name: "Librarian's Monocle", Rarity: game.RarityUncommon,
			Text:     "Draw 1 more card each turn.",
			OnPickup: func(r *game.Run) { r.BonusDraw++ },
		},
		{
			ID: "patient_hourglass", Name: "Patient Hourglass", Rarity: game.RarityRare,
			Text:     "Your hand is not discarded at end of turn.",
			OnPickup: func(r *game.Run) { r.RetainHand = true },
		},
		{
			ID: "frozen_pane", Name: "Frozen Pane", Rarity: game.RarityRare,
			Text:     "Block carries over between turns.",
			OnPickup: func(r *game.Run) { r.KeepBlock = true },
		},
		{
			ID: "surgeons_thread", Name: "Surgeon's Thread", Rarity: game.RarityUncommon,
			Text:     "Heal 5 hp after each victory.",
			OnPickup: func(r *game.Run) { r.HealPerVictory += 5 },
		},
		{
			ID: "dimming_lens", Name: "Dimming Lens", Rarity: game.RarityRare,
			Text:     "Cards never cost more than 2 energy.",
			OnPickup: func(r *game.Run) { r.CardCostCap = 2 },
		},
		{
			ID: "whetstone_sliver", Name: "Whetstone Sliver", Rarity: game.RarityCommon,
			Text:     "Start each combat with 1 strength.",
			OnPickup: func(r *game.Run) { r.StartStatuses[game.StatusStrength]++ },
		},
		{
			ID: "dancers_anklet", Name: "Dancer's Anklet", Rarity: game.RarityCommon,
			Text:     "Start each combat with 1 dexterity.",
			OnPickup: func(r *game.Run) { r.StartStatuses[game.StatusDexterity]++ },
		},
		{
			ID: "thorned_band", Name: "Thorned Band", Rarity: game.RarityUncommon,
			Text:     "Start each combat with 2 thorns.",
			OnPickup: func(r *game.Run) { r.StartStatuses[game.StatusThorns] += 2 },
		},
		{
			ID: "warding_charm", Name: "Warding Charm", Rarity: game.RarityUncommon,
			Text:     "Start each combat with 1 artifact.",
			OnPickup: func(r *game.Run) { r.StartStatuses[game.StatusArtifact]++ },
		},
		{
			ID: "iron_lattice", Name: "Iron Lattice", Rarity: game.RarityUncommon,
			Text:     "Start each combat with 2 metallicize.",
			OnPickup: func(r *game.Run) { r.StartStatuses[game.StatusMetallicize] += 2 },
		},
		{
			ID: "slow_drip_vial", Name: "Slow-Drip Vial", Rarity: game.RarityUncommon,
			Text:     "Start each combat with 3 regen.",
			OnPickup: func(r *game.Run) { r.StartStatuses[game.StatusRegen] += 3 },
		},

		// Combat start.
		{
			ID: "polished_buckler", Name: "Polished Buckler", Rarity: game.RarityCommon,
			Text:          "Gain 8 block when combat starts.",
			OnCombatStart: func(r *game.Run) { r.PlayerBlock(8) },
		},
		{
			ID: "shattered_chime", Name: "Shattered Chime", Rarity: game.RarityUncommon,
			Text: "Enemies start combat with 1 vulnerable.",
			OnCombatStart: func(r *game.Run) {
				for _, en := range r.Encounter.LivingEnemies() {
					game.ApplyStatus(&en.Participant, game.StatusVulnerable, 1)
				}
			},
		},
		{
			ID: "smoke_phial", Name: "Smoke Phial", Rarity: game.RarityUncommon,
			Text: "Enemies start combat with 1 weak.",
			OnCombatStart: func(r *game.Run) {
				for _, en := range r.Encounter.LivingEnemies() {
					game.ApplyStatus(&en.Participant, game.StatusWeak, 1)
				}
			},
		},
		{
			ID: "first_spark", Name: "First Spark", Rarity: game.RarityCommon,
			Text:          "Your first attack each combat deals 4 more damage.",
			OnCombatStart: func(r *game.Run) { r.Encounter.Player.NextAttackBonus += 4 },
		},
		{
			ID: "opening_gambit", Name: "Opening Gambit", Rarity: game.RarityRare,
			Text:          "Draw 2 extra cards when combat starts.",
			OnCombatStart: func(r *game.Run) { r.DrawCards(2) },
		},

		// Turn start.
		{
			ID: "humming_shard", Name: "Humming Shard", Rarity: game.RarityCommon,
			Text:        "Gain 2 block at the start of each turn.",
			OnTurnStart: func(r *game.Run) { r.PlayerBlock(2) },
		},
		{
			ID: "restless_quill", Name: "Restless Quill", Rarity: game.RarityUncommon,
			Text: "Draw 1 extra card on turn 1 of each combat.",
			OnTurnStart: func(r *game.Run) {
				if r.Encounter.Turn == 1 {
					r.DrawCards(1)
				}
			},
		},
		{
			ID: "metronome", Name: "Metronome", Rarity: game.RarityRare,
			Text: "Every third turn, gain 1 energy.",
			OnTurnStart: func(r *game.Run) {
				if r.Encounter.Turn%3 == 0 {
					r.GainEnergy(1)
				}
			},
		},

		// Card played.
		{
			ID: "echo_bell", Name: "Echo Bell", Rarity: game.RarityUncommon,
			Text: "Every third card you play each turn, gain 3 block.",
			OnCardPlayed: func(r *game.Run, card game.CardDef) {
				if r.Encounter != nil && r.Encounter.Player.CardsPlayedThisTurn%3 == 0 {
					r.PlayerBlock(3)
				}
			},
		},
		{
			ID: "power_conduit", Name: "Power Conduit", Rarity: game.RarityRare,
			Text: "Playing a power grants 1 strength.",
			OnCardPlayed: func(r *game.Run, card game.CardDef) {
				if card.Power && r.Encounter != nil {
					game.ApplyStatus(r.Encounter.Player, game.StatusStrength, 1)
				}
			},
		},
		{
			ID: "spent_casing", Name: "Spent Casing", Rarity: game.RarityCommon,
			Text: "Playing a 0-cost card grants 1 block.",
			OnCardPlayed: func(r *game.Run, card game.CardDef) {
				if card.Cost == 0 && r.Encounter != nil {
					r.PlayerBlock(1)
				}
			},
		},

		// Damage dealt.
		{
			ID: "leech_crystal", Name: "Leech Crystal", Rarity: game.RarityRare,
			Text: "Hits dealing 10 or more hp damage heal you 2.",
			OnDamageDealt: func(r *game.Run, target *game.Participant, amount int) {
				if amount >= 10 {
					game.Heal(r.Encounter.Player, 2)
				}
			},
		},
		{
			ID: "bounty_sigil", Name: "Bounty Sigil", Rarity: game.RarityUncommon,
			Text: "Gain 8 gold whenever your attack kills an enemy.",
			OnDamageDealt: func(r *game.Run, target *game.Participant, amount int) {
				if target.HP == 0 {
					r.AddGold(8)
				}
			},
		},
		{
			ID: "cruel_mirror", Name: "Cruel Mirror", Rarity: game.RarityUncommon,
			Text: "Hits against vulnerable enemies apply 1 poison.",
			OnDamageDealt: func(r *game.Run, target *game.Participant, amount int) {
				if target.Status(game.StatusVulnerable) > 0 && target.Alive() {
					game.ApplyStatus(target, game.StatusPoison, 1)
				}
			},
		},

		// Boss relics: bigger swings.
		{
			ID: "sealed_reliquary", Name: "Sealed Reliquary", Rarity: game.RarityRare,
			Text:     "Gain 20 max hp.",
			OnPickup: func(r *game.Run) { r.RaiseMaxHP(20) },
		},
		{
			ID: "conductors_baton", Name: "Conductor's Baton", Rarity: game.RarityRare,
			Text:     "Start each combat with 1 energized.",
			OnPickup: func(r *game.Run) { r.StartStatuses[game.StatusEnergized]++ },
		},
		{
			ID: "vault_key", Name: "Vault Key", Rarity: game.RarityRare,
			Text:     "Gain 150 gold.",
			OnPickup: func(r *game.Run) { r.AddGold(150) },
		},
		{
			ID: "ritual_candle", Name: "Ritual Candle", Rarity: game.RarityRare,
			Text:     "Start each combat with 1 ritual.",
			OnPickup: func(r *game.Run) { r.StartStatuses[game.StatusRitual]++ },
		},
	}
}
