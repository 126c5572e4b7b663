package content

import (
	"shatteredmirror/internal/game"
)

// Ascensions returns the twenty difficulty tiers. A run at ascension N
// applies every tier up to and including N, so each step stays small.
func Ascensions() []game.AscensionMod {
	return []game.AscensionMod{
		{Level: 1, Name: "Tougher foes", Apply: func(r *game.Run) { r.EnemyHPPct += 5 }},
		{Level: 2, Name: "Lean purse", Apply: func(r *game.Run) { r.Gold -= 15 }},
		{Level: 3, Name: "Sharpened claws", Apply: func(r *game.Run) { r.EnemyStrengthBonus++ }},
		{Level: 4, Name: "Thin blood", Apply: func(r *game.Run) {
			r.MaxHP -= 5
			if r.HP > r.MaxHP {
				r.HP = r.MaxHP
			}
		}},
		{Level: 5, Name: "Tougher foes II", Apply: func(r *game.Run) { r.EnemyHPPct += 5 }},
		{Level: 6, Name: "Stingy hoards", Apply: func(r *game.Run) { r.GoldPct -= 10 }},
		{Level: 7, Name: "Nagging doubt", Apply: func(r *game.Run) { r.AddCardToDeck("curse_doubt") }},
		{Level: 8, Name: "Tougher foes III", Apply: func(r *game.Run) { r.EnemyHPPct += 5 }},
		{Level: 9, Name: "Thin blood II", Apply: func(r *game.Run) {
			r.MaxHP -= 5
			if r.HP > r.MaxHP {
				r.HP = r.MaxHP
			}
		}},
		{Level: 10, Name: "Sharpened claws II", Apply: func(r *game.Run) { r.EnemyStrengthBonus++ }},
		{Level: 11, Name: "Lean purse II", Apply: func(r *game.Run) { r.Gold -= 15 }},
		{Level: 12, Name: "Tougher foes IV", Apply: func(r *game.Run) { r.EnemyHPPct += 10 }},
		{Level: 13, Name: "Stingy hoards II", Apply: func(r *game.Run) { r.GoldPct -= 10 }},
		{Level: 14, Name: "Seven years of it", Apply: func(r *game.Run) { r.AddCardToDeck("curse_seven_years") }},
		{Level: 15, Name: "Thin blood III", Apply: func(r *game.Run) {
			r.MaxHP -= 8
			if r.HP > r.MaxHP {
				r.HP = r.MaxHP
			}
		}},
		{Level: 16, Name: "Sharpened claws III", Apply: func(r *game.Run) { r.EnemyStrengthBonus++ }},
		{Level: 17, Name: "Tougher foes V", Apply: func(r *game.Run) { r.EnemyHPPct += 10 }},
		{Level: 18, Name: "Slow hands", Apply: func(r *game.Run) { r.BonusDraw-- }},
		{Level: 19, Name: "Nagging doubt II", Apply: func(r *game.Run) { r.AddCardToDeck("curse_doubt") }},
		{Level: 20, Name: "The mirror bites back", Apply: func(r *game.Run) {
			r.EnemyHPPct += 10
			r.EnemyStrengthBonus++
		}},
	}
}
