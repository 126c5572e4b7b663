package content

import (
	"shatteredmirror/internal/game"
)

// FusionRecipes returns the hand-tuned fusion results. Any pair not
// listed here still fuses through generic synthesis; these are the
// combinations worth a bespoke card.
func FusionRecipes() map[game.FusionKey]game.CardDef {
	recipes := []game.CardDef{
		{
			ID: "twin_fang", Name: "Twin Fang", Colony: game.ColonyGleam, Rarity: game.RarityUncommon,
			Cost: 1, Target: game.TargetEnemy, Text: "Deal 7 damage twice.",
			Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
				d := 7
				if up {
					d = 10
				}
				r.AttackEnemy(target, d)
				if target.Alive() {
					r.AttackEnemy(target, d)
				}
				return game.EffectPlayed
			},
		},
		{
			ID: "mirror_wall", Name: "Mirror Wall", Colony: game.ColonyGleam, Rarity: game.RarityUncommon,
			Cost: 1, Target: game.TargetNone, Text: "Gain 12 block and 1 thorns.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				b := 12
				if up {
					b = 16
				}
				r.PlayerBlock(b)
				game.ApplyStatus(r.Encounter.Player, game.StatusThorns, 1)
				return game.EffectPlayed
			},
		},
		{
			ID: "toxic_edge", Name: "Toxic Edge", Colony: game.ColonyUmbra, Rarity: game.RarityUncommon,
			Cost: 1, Target: game.TargetEnemy, Text: "Deal 8 damage. Apply 4 poison.",
			Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
				d, s := 8, 4
				if up {
					d, s = 11, 6
				}
				r.AttackEnemy(target, d)
				if target.Alive() {
					game.ApplyStatus(target, game.StatusPoison, s)
				}
				return game.EffectPlayed
			},
		},
		{
			ID: "tempo_theft", Name: "Tempo Theft", Colony: game.ColonyResonant, Rarity: game.RarityRare,
			Cost: 0, Target: game.TargetEnemy, Text: "Deal 6 damage. Gain 1 energy. Draw 1 card.",
			Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
				d := 6
				if up {
					d = 9
				}
				r.AttackEnemy(target, d)
				r.GainEnergy(1)
				r.DrawCards(1)
				return game.EffectPlayed
			},
		},
		{
			ID: "patient_venom", Name: "Patient Venom", Colony: game.ColonyUmbra, Rarity: game.RarityRare,
			Cost: 1, Target: game.TargetAllEnemies, Text: "Apply 5 poison and 1 weak to every enemy.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				s := 5
				if up {
					s = 7
				}
				for _, en := range r.Encounter.LivingEnemies() {
					game.ApplyStatus(&en.Participant, game.StatusPoison, s)
					game.ApplyStatus(&en.Participant, game.StatusWeak, 1)
				}
				return game.EffectPlayed
			},
		},
	}

	return map[game.FusionKey]game.CardDef{
		game.NewFusionKey("shard_strike", "shard_strike"):  recipes[0],
		game.NewFusionKey("glass_guard", "glass_guard"):    recipes[1],
		game.NewFusionKey("venom_lash", "shard_strike"):    recipes[2],
		game.NewFusionKey("quicksilver", "resonant_strike"): recipes[3],
		game.NewFusionKey("black_amalgam", "enfeebling_fog"): recipes[4],
	}
}
