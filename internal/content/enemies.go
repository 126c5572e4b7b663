package content

import (
	"shatteredmirror/internal/game"
	"shatteredmirror/internal/hexgrid"
)

// Intent patterns. Each returns an IntentFunc; the combat loop calls it
// exactly once per enemy per turn, so any PRNG draws happen once.

// chaser closes to reach, then attacks.
func chaser(dmg, reach int) game.IntentFunc {
	return func(self *game.Enemy, r *game.Run) game.Intent {
		player := r.Encounter.Player
		if hexgrid.Distance(self.Pos, player.Pos) > reach {
			return game.Intent{Kind: game.IntentMove, To: hexgrid.StepToward(self.Pos, player.Pos)}
		}
		return game.Intent{Kind: game.IntentAttack, Value: dmg}
	}
}

// turtler blocks every cadence-th turn, otherwise behaves like a chaser.
func turtler(dmg, blk, reach, cadence int) game.IntentFunc {
	attack := chaser(dmg, reach)
	return func(self *game.Enemy, r *game.Run) game.Intent {
		if r.Encounter.Turn%cadence == 0 {
			return game.Intent{Kind: game.IntentBlock, Value: blk}
		}
		return attack(self, r)
	}
}

// brute rolls between a heavy and a light hit once in range.
func brute(heavy, light, reach int) game.IntentFunc {
	return func(self *game.Enemy, r *game.Run) game.Intent {
		player := r.Encounter.Player
		if hexgrid.Distance(self.Pos, player.Pos) > reach {
			return game.Intent{Kind: game.IntentMove, To: hexgrid.StepToward(self.Pos, player.Pos)}
		}
		if r.Rng.Chance(0.4) {
			return game.Intent{Kind: game.IntentAttack, Value: heavy}
		}
		return game.Intent{Kind: game.IntentAttack, Value: light}
	}
}

// skirmisher attacks from range and retreats when the player closes in.
func skirmisher(dmg, reach int) game.IntentFunc {
	return func(self *game.Enemy, r *game.Run) game.Intent {
		player := r.Encounter.Player
		dist := hexgrid.Distance(self.Pos, player.Pos)
		if dist <= 1 {
			// Step directly away, staying inside the arena.
			away := self.Pos
			best := dist
			for _, n := range hexgrid.Neighbors(self.Pos) {
				if !hexgrid.InRange(hexgrid.Hex{}, n, r.Balance().ArenaRadius) {
					continue
				}
				if d := hexgrid.Distance(n, player.Pos); d > best {
					away, best = n, d
				}
			}
			if away != self.Pos {
				return game.Intent{Kind: game.IntentMove, To: away}
			}
		}
		if dist > reach {
			return game.Intent{Kind: game.IntentMove, To: hexgrid.StepToward(self.Pos, player.Pos)}
		}
		return game.Intent{Kind: game.IntentAttack, Value: dmg}
	}
}

// ramper opens with a block, then attacks harder every round.
func ramper(base, step, cap, reach int) game.IntentFunc {
	return func(self *game.Enemy, r *game.Run) game.Intent {
		player := r.Encounter.Player
		if r.Encounter.Turn == 1 {
			return game.Intent{Kind: game.IntentBlock, Value: base}
		}
		if hexgrid.Distance(self.Pos, player.Pos) > reach {
			return game.Intent{Kind: game.IntentMove, To: hexgrid.StepToward(self.Pos, player.Pos)}
		}
		dmg := base + step*(r.Encounter.Turn-2)
		if dmg > cap {
			dmg = cap
		}
		return game.Intent{Kind: game.IntentAttack, Value: dmg}
	}
}

func enemy(id, name string, act int, tier game.Tier, hp int, glyph string, intent game.IntentFunc) game.EnemyDef {
	return game.EnemyDef{ID: id, Name: name, Act: act, Tier: tier, MaxHP: hp, Glyph: glyph, GetIntent: intent}
}

// Enemies returns the full bestiary: three acts, three tiers each.
func Enemies() []game.EnemyDef {
	return []game.EnemyDef{
		// Act 1 — the Foyer.
		enemy("mirrorling", "Mirrorling", 1, game.TierNormal, 14, "m", chaser(5, 1)),
		enemy("glass_hound", "Glass Hound", 1, game.TierNormal, 18, "h", chaser(7, 1)),
		enemy("dust_wisp", "Dust Wisp", 1, game.TierNormal, 11, "w", skirmisher(4, 3)),
		enemy("frame_crawler", "Frame Crawler", 1, game.TierNormal, 22, "c", turtler(6, 6, 1, 3)),
		enemy("shard_tosser", "Shard Tosser", 1, game.TierNormal, 16, "t", skirmisher(6, 2)),
		enemy("cracked_page", "Cracked Page", 1, game.TierNormal, 13, "p", brute(9, 4, 1)),
		enemy("gleam_tyrant", "Gleam Tyrant", 1, game.TierElite, 48, "T", brute(14, 8, 1)),
		enemy("pane_warden", "Pane Warden", 1, game.TierElite, 56, "W", turtler(10, 12, 1, 2)),
		enemy("the_curator", "The Curator", 1, game.TierBoss, 110, "C", ramper(8, 3, 26, 2)),
		enemy("queen_of_slivers", "Queen of Slivers", 1, game.TierBoss, 96, "Q", brute(18, 10, 2)),

		// Act 2 — the Gallery.
		enemy("umbral_stalker", "Umbral Stalker", 2, game.TierNormal, 30, "s", chaser(10, 1)),
		enemy("leaden_golem", "Leaden Golem", 2, game.TierNormal, 44, "g", turtler(9, 10, 1, 2)),
		enemy("echo_chorus", "Echo Chorus", 2, game.TierNormal, 26, "e", skirmisher(8, 3)),
		enemy("tarnished_knight", "Tarnished Knight", 2, game.TierNormal, 38, "k", brute(14, 7, 1)),
		enemy("gallery_ghoul", "Gallery Ghoul", 2, game.TierNormal, 33, "u", chaser(11, 1)),
		enemy("split_reflection", "Split Reflection", 2, game.TierNormal, 24, "r", skirmisher(9, 2)),
		enemy("mirror_knight", "Mirror Knight", 2, game.TierElite, 88, "K", turtler(16, 16, 1, 2)),
		enemy("chandelier_horror", "Chandelier Horror", 2, game.TierElite, 76, "H", brute(22, 12, 2)),
		enemy("the_framed_king", "The Framed King", 2, game.TierBoss, 180, "F", ramper(12, 4, 36, 2)),
		enemy("mother_of_panes", "Mother of Panes", 2, game.TierBoss, 160, "M", brute(26, 15, 2)),

		// Act 3 — the Vault.
		enemy("vault_sentinel", "Vault Sentinel", 3, game.TierNormal, 52, "v", turtler(14, 14, 1, 2)),
		enemy("resonant_maw", "Resonant Maw", 3, game.TierNormal, 58, "a", chaser(16, 1)),
		enemy("silver_revenant", "Silver Revenant", 3, game.TierNormal, 45, "n", brute(20, 11, 1)),
		enemy("prism_lurker", "Prism Lurker", 3, game.TierNormal, 40, "l", skirmisher(13, 3)),
		enemy("hollow_double", "Hollow Double", 3, game.TierNormal, 48, "d", chaser(15, 1)),
		enemy("glasswright", "Glasswright", 3, game.TierNormal, 43, "i", skirmisher(12, 2)),
		enemy("vault_colossus", "Vault Colossus", 3, game.TierElite, 130, "V", brute(30, 18, 1)),
		enemy("choir_of_shards", "Choir of Shards", 3, game.TierElite, 112, "S", ramper(14, 5, 40, 2)),
		enemy("the_first_fracture", "The First Fracture", 3, game.TierBoss, 260, "X", ramper(16, 5, 48, 2)),
		enemy("mirror_of_mirrors", "Mirror of Mirrors", 3, game.TierBoss, 230, "O", brute(34, 20, 2)),
	}
}
