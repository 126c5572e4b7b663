package game

// FusionKey addresses a recipe by unordered card-id pair.
type FusionKey struct {
	A string
	B string
}

// NewFusionKey normalizes the pair so (a,b) and (b,a) hit the same recipe.
func NewFusionKey(a, b string) FusionKey {
	if b < a {
		a, b = b, a
	}
	return FusionKey{A: a, B: b}
}

// FusedCard returns the fusion result for two card ids. Explicit recipes
// win; any other pair of known cards falls back to generic synthesis, so
// every pair has a defined result. Only unknown ids fail.
func (l *Library) FusedCard(a, b string) (CardDef, bool) {
	ca, okA := l.Card(a)
	cb, okB := l.Card(b)
	if !okA || !okB {
		return CardDef{}, false
	}
	key := NewFusionKey(a, b)
	if l.Fusions != nil {
		if def, ok := l.Fusions[key]; ok {
			def.Fused = true
			return def, true
		}
	}
	return synthesizeFusion(key, ca, cb), true
}

// synthesizeFusion blends two cards deterministically: averaged cost,
// both effects in key order, the stricter targeting of the two.
func synthesizeFusion(key FusionKey, a, b CardDef) CardDef {
	// Key order, not argument order, so both call directions agree.
	if a.ID != key.A {
		a, b = b, a
	}

	def := CardDef{
		ID:     "fused_" + key.A + "__" + key.B,
		Name:   a.Name + " // " + b.Name,
		Colony: ColonyNeutral,
		Rarity: higherRarity(a.Rarity, b.Rarity),
		Cost:   (a.Cost + b.Cost) / 2,
		Text:   a.Text + " Then: " + b.Text,
		Fused:  true,
	}
	if a.Colony == b.Colony {
		def.Colony = a.Colony
	}
	if a.Target == TargetEnemy || b.Target == TargetEnemy {
		def.Target = TargetEnemy
		def.Range = maxRange(a, b)
	} else if a.Target == TargetSelf || b.Target == TargetSelf {
		def.Target = TargetSelf
	} else {
		def.Target = TargetNone
	}
	def.Exhaust = a.Exhaust || b.Exhaust
	def.Ethereal = a.Ethereal || b.Ethereal

	effA, effB := a.Effect, b.Effect
	def.Effect = func(r *Run, upgraded bool, target *Participant) EffectResult {
		result := EffectFizzled
		for _, eff := range []CardEffect{effA, effB} {
			if eff == nil {
				continue
			}
			switch eff(r, upgraded, target) {
			case EffectVictory:
				return EffectVictory
			case EffectPlayed:
				result = EffectPlayed
			}
		}
		return result
	}
	return def
}

func higherRarity(a, b Rarity) Rarity {
	rank := map[Rarity]int{RarityStarter: 0, RarityCommon: 1, RarityUncommon: 2, RarityRare: 3}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

func maxRange(a, b CardDef) int {
	// Zero means unlimited, which dominates.
	if a.Target == TargetEnemy && a.Range == 0 {
		return 0
	}
	if b.Target == TargetEnemy && b.Range == 0 {
		return 0
	}
	if b.Range > a.Range {
		return b.Range
	}
	return a.Range
}
