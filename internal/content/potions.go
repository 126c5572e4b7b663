package content

import (
	"shatteredmirror/internal/game"
)

// Potions returns the potion table. Drink returns false when the potion
// cannot apply (wrong context, dead target); the slot is only consumed on
// success.
func Potions() []game.PotionDef {
	return []game.PotionDef{
		{
			ID: "mending_draught", Name: "Mending Draught", Text: "Heal 20 hp.",
			Drink: func(r *game.Run, _ *game.Participant) bool {
				r.HealPlayer(20)
				return true
			},
		},
		{
			ID: "quicksilver_vial", Name: "Quicksilver Vial", Text: "Gain 2 energy.", CombatOnly: true,
			Drink: func(r *game.Run, _ *game.Participant) bool {
				r.GainEnergy(2)
				return true
			},
		},
		{
			ID: "bottled_fury", Name: "Bottled Fury", Text: "Gain 2 strength.", CombatOnly: true,
			Drink: func(r *game.Run, _ *game.Participant) bool {
				game.ApplyStatus(r.Encounter.Player, game.StatusStrength, 2)
				return true
			},
		},
		{
			ID: "bottled_grace", Name: "Bottled Grace", Text: "Gain 2 dexterity.", CombatOnly: true,
			Drink: func(r *game.Run, _ *game.Participant) bool {
				game.ApplyStatus(r.Encounter.Player, game.StatusDexterity, 2)
				return true
			},
		},
		{
			ID: "wall_in_a_jar", Name: "Wall in a Jar", Text: "Gain 12 block.", CombatOnly: true,
			Drink: func(r *game.Run, _ *game.Participant) bool {
				r.PlayerBlock(12)
				return true
			},
		},
		{
			ID: "venom_flask", Name: "Venom Flask", Text: "Apply 6 poison.", CombatOnly: true, Targeted: true,
			Drink: func(r *game.Run, target *game.Participant) bool {
				if target == nil || !target.Alive() {
					return false
				}
				game.ApplyStatus(target, game.StatusPoison, 6)
				return true
			},
		},
		{
			ID: "flask_of_cracks", Name: "Flask of Cracks", Text: "Apply 3 vulnerable.", CombatOnly: true, Targeted: true,
			Drink: func(r *game.Run, target *game.Participant) bool {
				if target == nil || !target.Alive() {
					return false
				}
				game.ApplyStatus(target, game.StatusVulnerable, 3)
				return true
			},
		},
		{
			ID: "ink_of_insight", Name: "Ink of Insight", Text: "Draw 3 cards.", CombatOnly: true,
			Drink: func(r *game.Run, _ *game.Participant) bool {
				r.DrawCards(3)
				return true
			},
		},
		{
			ID: "liquid_bronze", Name: "Liquid Bronze", Text: "Gain 3 thorns.", CombatOnly: true,
			Drink: func(r *game.Run, _ *game.Participant) bool {
				game.ApplyStatus(r.Encounter.Player, game.StatusThorns, 3)
				return true
			},
		},
		{
			ID: "distilled_echo", Name: "Distilled Echo", Text: "Your next attack deals 8 more damage.", CombatOnly: true,
			Drink: func(r *game.Run, _ *game.Participant) bool {
				r.Encounter.Player.NextAttackBonus += 8
				return true
			},
		},
		{
			ID: "regrowth_tonic", Name: "Regrowth Tonic", Text: "Gain 5 regen.", CombatOnly: true,
			Drink: func(r *game.Run, _ *game.Participant) bool {
				game.ApplyStatus(r.Encounter.Player, game.StatusRegen, 5)
				return true
			},
		},
		{
			ID: "midas_dram", Name: "Midas Dram", Text: "Gain 40 gold.",
			Drink: func(r *game.Run, _ *game.Participant) bool {
				r.AddGold(40)
				return true
			},
		},
	}
}
