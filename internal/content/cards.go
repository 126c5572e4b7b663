package content

import (
	"shatteredmirror/internal/game"
)

// Card construction helpers. Most cards are one of a few shapes; the
// bespoke ones get their own effect closures below.

func attackCard(id, name string, colony game.Colony, rarity game.Rarity, cost, dmg, upDmg, reach int, text string) game.CardDef {
	return game.CardDef{
		ID: id, Name: name, Colony: colony, Rarity: rarity, Cost: cost,
		Target: game.TargetEnemy, Range: reach, Text: text,
		Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
			d := dmg
			if up {
				d = upDmg
			}
			r.AttackEnemy(target, d)
			return game.EffectPlayed
		},
	}
}

func blockCard(id, name string, colony game.Colony, rarity game.Rarity, cost, blk, upBlk int, text string) game.CardDef {
	return game.CardDef{
		ID: id, Name: name, Colony: colony, Rarity: rarity, Cost: cost,
		Target: game.TargetNone, Text: text,
		Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
			b := blk
			if up {
				b = upBlk
			}
			r.PlayerBlock(b)
			return game.EffectPlayed
		},
	}
}

func aoeCard(id, name string, colony game.Colony, rarity game.Rarity, cost, dmg, upDmg int, text string) game.CardDef {
	return game.CardDef{
		ID: id, Name: name, Colony: colony, Rarity: rarity, Cost: cost,
		Target: game.TargetAllEnemies, Text: text,
		Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
			d := dmg
			if up {
				d = upDmg
			}
			r.AttackAllEnemies(d)
			return game.EffectPlayed
		},
	}
}

// hexCard attacks and lands a status on the same target.
func hexCard(id, name string, colony game.Colony, rarity game.Rarity, cost, dmg, upDmg int, status string, stacks, upStacks int, text string) game.CardDef {
	return game.CardDef{
		ID: id, Name: name, Colony: colony, Rarity: rarity, Cost: cost,
		Target: game.TargetEnemy, Text: text,
		Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
			d, s := dmg, stacks
			if up {
				d, s = upDmg, upStacks
			}
			if d > 0 {
				r.AttackEnemy(target, d)
			}
			if target.Alive() {
				game.ApplyStatus(target, status, s)
			}
			return game.EffectPlayed
		},
	}
}

// selfCard grants the player stacks of a status.
func selfCard(id, name string, colony game.Colony, rarity game.Rarity, cost int, status string, stacks, upStacks int, power bool, text string) game.CardDef {
	return game.CardDef{
		ID: id, Name: name, Colony: colony, Rarity: rarity, Cost: cost,
		Target: game.TargetNone, Power: power, Text: text,
		Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
			s := stacks
			if up {
				s = upStacks
			}
			game.ApplyStatus(r.Encounter.Player, status, s)
			return game.EffectPlayed
		},
	}
}

func curseCard(id, name string, ethereal bool, text string) game.CardDef {
	return game.CardDef{
		ID: id, Name: name, Colony: game.ColonyNeutral, Rarity: game.RarityCommon,
		Cost: 0, Target: game.TargetNone, Unplayable: true, Ethereal: ethereal, Text: text,
	}
}

// StarterDeck is every new run's opening ten cards.
func StarterDeck() []string {
	return []string{
		"shard_strike", "shard_strike", "shard_strike", "shard_strike", "shard_strike",
		"glass_guard", "glass_guard", "glass_guard", "glass_guard",
		"quicksilver",
	}
}

// Cards returns the full card table.
func Cards() []game.CardDef {
	cards := []game.CardDef{
		// Starters.
		attackCard("shard_strike", "Shard Strike", game.ColonyGleam, game.RarityStarter, 1, 6, 9, 0, "Deal 6 damage."),
		blockCard("glass_guard", "Glass Guard", game.ColonyGleam, game.RarityStarter, 1, 5, 8, "Gain 5 block."),
		{
			ID: "quicksilver", Name: "Quicksilver", Colony: game.ColonyResonant, Rarity: game.RarityStarter,
			Cost: 0, Target: game.TargetNone, Text: "Draw 2 cards.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				n := 2
				if up {
					n = 3
				}
				r.DrawCards(n)
				return game.EffectPlayed
			},
		},

		// Gleam: direct damage and shields.
		attackCard("sliver", "Sliver", game.ColonyGleam, game.RarityCommon, 0, 3, 6, 0, "Deal 3 damage."),
		attackCard("facet_jab", "Facet Jab", game.ColonyGleam, game.RarityCommon, 1, 8, 11, 0, "Deal 8 damage."),
		attackCard("splinter_shot", "Splinter Shot", game.ColonyGleam, game.RarityCommon, 1, 5, 7, 3, "Deal 5 damage at range 3."),
		attackCard("mirror_lance", "Mirror Lance", game.ColonyGleam, game.RarityUncommon, 2, 14, 19, 0, "Deal 14 damage."),
		attackCard("prism_ram", "Prism Ram", game.ColonyGleam, game.RarityUncommon, 2, 11, 15, 1, "Deal 11 damage to an adjacent enemy."),
		attackCard("annihilating_gleam", "Annihilating Gleam", game.ColonyGleam, game.RarityRare, 3, 26, 34, 0, "Deal 26 damage."),
		aoeCard("shatter_wave", "Shatter Wave", game.ColonyGleam, game.RarityCommon, 1, 4, 6, "Deal 4 damage to every enemy."),
		aoeCard("glass_storm", "Glass Storm", game.ColonyGleam, game.RarityUncommon, 2, 8, 11, "Deal 8 damage to every enemy."),
		aoeCard("kaleidoburst", "Kaleidoburst", game.ColonyGleam, game.RarityRare, 3, 14, 18, "Deal 14 damage to every enemy."),
		blockCard("pane_shield", "Pane Shield", game.ColonyGleam, game.RarityCommon, 1, 8, 11, "Gain 8 block."),
		blockCard("silvered_wall", "Silvered Wall", game.ColonyGleam, game.RarityUncommon, 2, 14, 19, "Gain 14 block."),
		blockCard("bulwark_of_panes", "Bulwark of Panes", game.ColonyGleam, game.RarityRare, 3, 24, 30, "Gain 24 block."),
		hexCard("crack_armor", "Crack Armor", game.ColonyGleam, game.RarityCommon, 1, 5, 7, game.StatusVulnerable, 1, 2, "Deal 5 damage. Apply 1 vulnerable."),
		hexCard("blinding_flash", "Blinding Flash", game.ColonyGleam, game.RarityCommon, 1, 4, 6, game.StatusWeak, 1, 2, "Deal 4 damage. Apply 1 weak."),
		hexCard("sunder", "Sunder", game.ColonyGleam, game.RarityUncommon, 2, 9, 12, game.StatusVulnerable, 2, 3, "Deal 9 damage. Apply 2 vulnerable."),
		selfCard("tempered_edge", "Tempered Edge", game.ColonyGleam, game.RarityUncommon, 1, game.StatusStrength, 2, 3, false, "Gain 2 strength."),
		selfCard("mirror_plating", "Mirror Plating", game.ColonyGleam, game.RarityUncommon, 1, game.StatusMetallicize, 3, 4, true, "Each turn end, gain 3 block."),
		selfCard("crystal_skin", "Crystal Skin", game.ColonyGleam, game.RarityUncommon, 1, game.StatusThorns, 3, 5, true, "Attackers take 3 damage."),
		selfCard("flawless_form", "Flawless Form", game.ColonyGleam, game.RarityRare, 2, game.StatusArtifact, 2, 3, false, "Gain 2 artifact."),

		// Umbra: poison and slow debuffs.
		hexCard("venom_lash", "Venom Lash", game.ColonyUmbra, game.RarityCommon, 1, 4, 6, game.StatusPoison, 3, 4, "Deal 4 damage. Apply 3 poison."),
		hexCard("creeping_tarnish", "Creeping Tarnish", game.ColonyUmbra, game.RarityCommon, 0, 0, 0, game.StatusPoison, 2, 3, "Apply 2 poison."),
		hexCard("black_amalgam", "Black Amalgam", game.ColonyUmbra, game.RarityUncommon, 1, 0, 0, game.StatusPoison, 6, 8, "Apply 6 poison."),
		hexCard("corrode", "Corrode", game.ColonyUmbra, game.RarityUncommon, 1, 6, 8, game.StatusPoison, 4, 5, "Deal 6 damage. Apply 4 poison."),
		hexCard("enfeebling_fog", "Enfeebling Fog", game.ColonyUmbra, game.RarityCommon, 1, 0, 0, game.StatusWeak, 2, 3, "Apply 2 weak."),
		hexCard("brittle_curse", "Brittle Curse", game.ColonyUmbra, game.RarityCommon, 1, 0, 0, game.StatusFrail, 2, 3, "Apply 2 frail."),
		attackCard("night_needle", "Night Needle", game.ColonyUmbra, game.RarityCommon, 1, 7, 10, 0, "Deal 7 damage."),
		attackCard("shadow_rend", "Shadow Rend", game.ColonyUmbra, game.RarityUncommon, 2, 13, 17, 0, "Deal 13 damage."),
		blockCard("umbral_veil", "Umbral Veil", game.ColonyUmbra, game.RarityCommon, 1, 7, 10, "Gain 7 block."),
		selfCard("tarnished_rite", "Tarnished Rite", game.ColonyUmbra, game.RarityUncommon, 1, game.StatusRitual, 1, 2, true, "Each turn end, gain 1 strength."),
		selfCard("mercury_blood", "Mercury Blood", game.ColonyUmbra, game.RarityUncommon, 1, game.StatusRegen, 4, 6, false, "Gain 4 regen."),

		// Resonant: tempo, draw, energy, movement.
		blockCard("echo_barrier", "Echo Barrier", game.ColonyResonant, game.RarityCommon, 1, 6, 9, "Gain 6 block."),
		attackCard("resonant_strike", "Resonant Strike", game.ColonyResonant, game.RarityCommon, 1, 6, 8, 0, "Deal 6 damage."),
		selfCard("harmonic_poise", "Harmonic Poise", game.ColonyResonant, game.RarityCommon, 1, game.StatusDexterity, 2, 3, false, "Gain 2 dexterity."),
		selfCard("standing_wave", "Standing Wave", game.ColonyResonant, game.RarityUncommon, 1, game.StatusEnergized, 1, 2, true, "Each turn start, gain 1 energy."),
	}

	cards = append(cards, bespokeCards()...)
	cards = append(cards, fillerCards()...)
	cards = append(cards,
		curseCard("curse_doubt", "Doubt", false, "Unplayable."),
		curseCard("curse_seven_years", "Seven Years", true, "Unplayable. Ethereal."),
	)
	return cards
}

// bespokeCards are the effects the helpers cannot express.
func bespokeCards() []game.CardDef {
	return []game.CardDef{
		{
			ID: "advance", Name: "Advance", Colony: game.ColonyResonant, Rarity: game.RarityCommon,
			Cost: 0, Target: game.TargetNone, Text: "Move 1 hex toward the nearest enemy. Draw 1 card.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				if !r.MovePlayerStep(false) {
					return game.EffectFizzled
				}
				n := 1
				if up {
					n = 2
				}
				r.DrawCards(n)
				return game.EffectPlayed
			},
		},
		{
			ID: "withdraw", Name: "Withdraw", Colony: game.ColonyResonant, Rarity: game.RarityCommon,
			Cost: 0, Target: game.TargetNone, Text: "Move 1 hex away from the nearest enemy. Gain 3 block.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				r.MovePlayerStep(true)
				b := 3
				if up {
					b = 5
				}
				r.PlayerBlock(b)
				return game.EffectPlayed
			},
		},
		{
			ID: "momentum", Name: "Momentum", Colony: game.ColonyResonant, Rarity: game.RarityUncommon,
			Cost: 1, Target: game.TargetEnemy, Text: "Deal 5 damage, plus 4 per hex moved this turn.",
			Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
				per := 4
				if up {
					per = 6
				}
				r.AttackEnemy(target, 5+per*r.Encounter.Player.HexesMovedThisTurn)
				return game.EffectPlayed
			},
		},
		{
			ID: "crescendo", Name: "Crescendo", Colony: game.ColonyResonant, Rarity: game.RarityUncommon,
			Cost: 1, Target: game.TargetEnemy, Text: "Deal 3 damage, plus 3 per card played this turn.",
			Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
				per := 3
				if up {
					per = 4
				}
				r.AttackEnemy(target, 3+per*r.Encounter.Player.CardsPlayedThisTurn)
				return game.EffectPlayed
			},
		},
		{
			ID: "overture", Name: "Overture", Colony: game.ColonyResonant, Rarity: game.RarityCommon,
			Cost: 1, Target: game.TargetNone, Text: "Draw 3 cards.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				n := 3
				if up {
					n = 4
				}
				r.DrawCards(n)
				return game.EffectPlayed
			},
		},
		{
			ID: "surge", Name: "Surge", Colony: game.ColonyResonant, Rarity: game.RarityUncommon,
			Cost: 0, Target: game.TargetNone, Exhaust: true, Text: "Gain 2 energy. Exhaust.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				n := 2
				if up {
					n = 3
				}
				r.GainEnergy(n)
				return game.EffectPlayed
			},
		},
		{
			ID: "fading_echo", Name: "Fading Echo", Colony: game.ColonyResonant, Rarity: game.RarityCommon,
			Cost: 0, Target: game.TargetEnemy, Ethereal: true, Text: "Deal 9 damage. Ethereal.",
			Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
				d := 9
				if up {
					d = 13
				}
				r.AttackEnemy(target, d)
				return game.EffectPlayed
			},
		},
		{
			ID: "borrowed_time", Name: "Borrowed Time", Colony: game.ColonyUmbra, Rarity: game.RarityUncommon,
			Cost: 1, Target: game.TargetNone, Ethereal: true, Text: "Gain 12 block. Ethereal.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				b := 12
				if up {
					b = 16
				}
				r.PlayerBlock(b)
				return game.EffectPlayed
			},
		},
		{
			ID: "final_polish", Name: "Final Polish", Colony: game.ColonyGleam, Rarity: game.RarityRare,
			Cost: 2, Target: game.TargetNone, Exhaust: true, Text: "Gain strength equal to cards played this turn. Exhaust.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				n := r.Encounter.Player.CardsPlayedThisTurn
				if up {
					n += 2
				}
				game.ApplyStatus(r.Encounter.Player, game.StatusStrength, n)
				return game.EffectPlayed
			},
		},
		{
			ID: "vengeful_spikes", Name: "Vengeful Spikes", Colony: game.ColonyUmbra, Rarity: game.RarityRare,
			Cost: 2, Target: game.TargetAllEnemies, Text: "Apply 4 poison to every enemy.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				s := 4
				if up {
					s = 6
				}
				for _, en := range r.Encounter.LivingEnemies() {
					game.ApplyStatus(&en.Participant, game.StatusPoison, s)
				}
				return game.EffectPlayed
			},
		},
		{
			ID: "lights_out", Name: "Lights Out", Colony: game.ColonyUmbra, Rarity: game.RarityRare,
			Cost: 2, Target: game.TargetAllEnemies, Text: "Apply 2 weak and 2 frail to every enemy.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				s := 2
				if up {
					s = 3
				}
				for _, en := range r.Encounter.LivingEnemies() {
					game.ApplyStatus(&en.Participant, game.StatusWeak, s)
					game.ApplyStatus(&en.Participant, game.StatusFrail, s)
				}
				return game.EffectPlayed
			},
		},
		{
			ID: "perfect_reflection", Name: "Perfect Reflection", Colony: game.ColonyGleam, Rarity: game.RarityRare,
			Cost: 1, Target: game.TargetNone, Exhaust: true, Text: "Gain block equal to your missing hp. Exhaust.",
			Effect: func(r *game.Run, _ bool, _ *game.Participant) game.EffectResult {
				p := r.Encounter.Player
				r.PlayerBlock(p.MaxHP - p.HP)
				return game.EffectPlayed
			},
		},
		{
			ID: "shatterpoint", Name: "Shatterpoint", Colony: game.ColonyGleam, Rarity: game.RarityRare,
			Cost: 3, Target: game.TargetEnemy, Exhaust: true, Text: "Deal damage equal to the target's missing hp. Exhaust.",
			Effect: func(r *game.Run, _ bool, target *game.Participant) game.EffectResult {
				r.AttackEnemy(target, target.MaxHP-target.HP)
				return game.EffectPlayed
			},
		},
		{
			ID: "glass_cannon", Name: "Glass Cannon", Colony: game.ColonyGleam, Rarity: game.RarityUncommon,
			Cost: 1, Target: game.TargetEnemy, Text: "Deal 16 damage. Apply 2 frail to yourself.",
			Effect: func(r *game.Run, up bool, target *game.Participant) game.EffectResult {
				d := 16
				if up {
					d = 21
				}
				r.AttackEnemy(target, d)
				game.ApplyStatus(r.Encounter.Player, game.StatusFrail, 2)
				return game.EffectPlayed
			},
		},
		{
			ID: "charged_edge", Name: "Charged Edge", Colony: game.ColonyResonant, Rarity: game.RarityCommon,
			Cost: 1, Target: game.TargetNone, Text: "Your next attack deals 6 more damage.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				n := 6
				if up {
					n = 9
				}
				r.Encounter.Player.NextAttackBonus += n
				return game.EffectPlayed
			},
		},
		{
			ID: "mirror_image", Name: "Mirror Image", Colony: game.ColonyResonant, Rarity: game.RarityRare,
			Cost: 2, Target: game.TargetNone, Power: true, Text: "Each turn start, gain 1 energy and 2 block.",
			Effect: func(r *game.Run, up bool, _ *game.Participant) game.EffectResult {
				p := r.Encounter.Player
				game.ApplyStatus(p, game.StatusEnergized, 1)
				s := 2
				if up {
					s = 4
				}
				game.ApplyStatus(p, game.StatusMetallicize, s)
				return game.EffectPlayed
			},
		},
	}
}

// fillerCards rounds the pools out so every rarity and colony has
// reasonable depth for rewards and shops.
func fillerCards() []game.CardDef {
	return []game.CardDef{
		attackCard("keen_fragment", "Keen Fragment", game.ColonyGleam, game.RarityCommon, 1, 9, 12, 1, "Deal 9 damage to an adjacent enemy."),
		attackCard("twin_glint", "Twin Glint", game.ColonyGleam, game.RarityUncommon, 1, 10, 13, 0, "Deal 10 damage."),
		attackCard("refracted_bolt", "Refracted Bolt", game.ColonyResonant, game.RarityCommon, 1, 7, 9, 4, "Deal 7 damage at range 4."),
		attackCard("dissonant_chord", "Dissonant Chord", game.ColonyResonant, game.RarityUncommon, 2, 12, 16, 0, "Deal 12 damage."),
		attackCard("pale_cut", "Pale Cut", game.ColonyUmbra, game.RarityCommon, 0, 4, 7, 0, "Deal 4 damage."),
		attackCard("gloom_fang", "Gloom Fang", game.ColonyUmbra, game.RarityUncommon, 1, 9, 12, 0, "Deal 9 damage."),
		attackCard("cold_read", "Cold Read", game.ColonyNeutral, game.RarityCommon, 1, 6, 9, 0, "Deal 6 damage."),
		attackCard("improvised_shiv", "Improvised Shiv", game.ColonyNeutral, game.RarityCommon, 0, 4, 6, 1, "Deal 4 damage to an adjacent enemy."),
		blockCard("dull_mirror", "Dull Mirror", game.ColonyNeutral, game.RarityCommon, 1, 6, 9, "Gain 6 block."),
		blockCard("standing_frame", "Standing Frame", game.ColonyNeutral, game.RarityUncommon, 2, 13, 17, "Gain 13 block."),
		blockCard("quiet_poise", "Quiet Poise", game.ColonyResonant, game.RarityCommon, 1, 7, 10, "Gain 7 block."),
		blockCard("leaden_veil", "Leaden Veil", game.ColonyUmbra, game.RarityUncommon, 2, 15, 20, "Gain 15 block."),
		hexCard("grit_in_the_glass", "Grit in the Glass", game.ColonyUmbra, game.RarityCommon, 1, 3, 5, game.StatusPoison, 2, 3, "Deal 3 damage. Apply 2 poison."),
		hexCard("spiteful_shard", "Spiteful Shard", game.ColonyUmbra, game.RarityUncommon, 2, 10, 13, game.StatusWeak, 2, 3, "Deal 10 damage. Apply 2 weak."),
		hexCard("fracture_line", "Fracture Line", game.ColonyGleam, game.RarityUncommon, 2, 8, 10, game.StatusVulnerable, 2, 3, "Deal 8 damage. Apply 2 vulnerable."),
		hexCard("slow_rot", "Slow Rot", game.ColonyUmbra, game.RarityRare, 2, 0, 0, game.StatusPoison, 10, 13, "Apply 10 poison."),
		selfCard("polished_resolve", "Polished Resolve", game.ColonyGleam, game.RarityCommon, 1, game.StatusDexterity, 1, 2, false, "Gain 1 dexterity."),
		selfCard("inner_light", "Inner Light", game.ColonyResonant, game.RarityRare, 2, game.StatusRegen, 8, 11, false, "Gain 8 regen."),
		selfCard("warding_chime", "Warding Chime", game.ColonyResonant, game.RarityUncommon, 1, game.StatusArtifact, 1, 2, false, "Gain 1 artifact."),
		selfCard("hardened_heart", "Hardened Heart", game.ColonyNeutral, game.RarityUncommon, 1, game.StatusStrength, 1, 2, false, "Gain 1 strength."),
		selfCard("thorn_halo", "Thorn Halo", game.ColonyUmbra, game.RarityUncommon, 1, game.StatusThorns, 2, 4, true, "Attackers take 2 damage."),
		selfCard("unbroken_rhythm", "Unbroken Rhythm", game.ColonyResonant, game.RarityRare, 3, game.StatusRitual, 2, 3, true, "Each turn end, gain 2 strength."),
		aoeCard("ring_of_slivers", "Ring of Slivers", game.ColonyNeutral, game.RarityUncommon, 2, 7, 10, "Deal 7 damage to every enemy."),
		aoeCard("break_the_set", "Break the Set", game.ColonyUmbra, game.RarityRare, 3, 12, 16, "Deal 12 damage to every enemy."),
		attackCard("lucky_sliver", "Lucky Sliver", game.ColonyNeutral, game.RarityCommon, 1, 7, 10, 0, "Deal 7 damage."),
		attackCard("heavy_pane", "Heavy Pane", game.ColonyGleam, game.RarityCommon, 2, 12, 16, 1, "Deal 12 damage to an adjacent enemy."),
		attackCard("long_glint", "Long Glint", game.ColonyGleam, game.RarityCommon, 1, 6, 8, 5, "Deal 6 damage at range 5."),
		attackCard("murmur", "Murmur", game.ColonyResonant, game.RarityCommon, 0, 3, 5, 2, "Deal 3 damage at range 2."),
		blockCard("braced_shard", "Braced Shard", game.ColonyGleam, game.RarityCommon, 1, 9, 12, "Gain 9 block."),
		blockCard("resonant_hull", "Resonant Hull", game.ColonyResonant, game.RarityRare, 3, 22, 28, "Gain 22 block."),
		hexCard("mirror_rot", "Mirror Rot", game.ColonyUmbra, game.RarityCommon, 1, 2, 4, game.StatusFrail, 1, 2, "Deal 2 damage. Apply 1 frail."),
		hexCard("blight_needle", "Blight Needle", game.ColonyUmbra, game.RarityCommon, 1, 5, 7, game.StatusPoison, 3, 4, "Deal 5 damage. Apply 3 poison."),
		selfCard("steadfast_gleam", "Steadfast Gleam", game.ColonyGleam, game.RarityRare, 2, game.StatusMetallicize, 5, 7, true, "Each turn end, gain 5 block."),
		selfCard("patient_study", "Patient Study", game.ColonyNeutral, game.RarityRare, 2, game.StatusEnergized, 1, 2, true, "Each turn start, gain 1 energy."),
	}
}
