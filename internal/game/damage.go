package game

// This file is the only place hp and block change. Every card, intent,
// relic and potion that hurts or shields a participant routes through
// DealDamage / GainBlock (status ticks use the loseHP/Heal primitives
// below), so modifier interactions stay auditable in one spot.

// DealDamage applies an attack from attacker to target and returns the hp
// actually lost. Magnitude is base + nextAttackBonus + strength, reduced a
// quarter (floored) if the attacker is weak, then raised half (floored) if
// the target is vulnerable. Block absorbs first; the remainder hits hp,
// floored at zero. The attacker's nextAttackBonus is consumed. Thorns on
// the target strike the attacker back without reflecting further.
func DealDamage(attacker, target *Participant, base int) int {
	magnitude := base + attacker.NextAttackBonus + attacker.Status(StatusStrength)
	if attacker.Status(StatusWeak) > 0 {
		magnitude = magnitude * 3 / 4
	}
	if target.Status(StatusVulnerable) > 0 {
		magnitude = magnitude * 3 / 2
	}
	if magnitude < 0 {
		magnitude = 0
	}
	attacker.NextAttackBonus = 0

	absorbed := magnitude
	if absorbed > target.Block {
		absorbed = target.Block
	}
	target.Block -= absorbed
	dealt := magnitude - absorbed
	if dealt > target.HP {
		dealt = target.HP
	}
	target.HP -= dealt

	if thorns := target.Status(StatusThorns); thorns > 0 && attacker != target {
		spiked := thorns
		if spiked > attacker.Block {
			hp := spiked - attacker.Block
			attacker.Block = 0
			loseHP(attacker, hp)
		} else {
			attacker.Block -= spiked
		}
	}

	return dealt
}

// GainBlock grants block to p: base + dexterity, reduced a quarter
// (floored) if frail, never negative.
func GainBlock(p *Participant, base int) int {
	magnitude := base + p.Status(StatusDexterity)
	if p.Status(StatusFrail) > 0 {
		magnitude = magnitude * 3 / 4
	}
	if magnitude < 0 {
		magnitude = 0
	}
	p.Block += magnitude
	return magnitude
}

// Heal restores hp up to MaxHP and returns the amount restored.
func Heal(p *Participant, amount int) int {
	if amount < 0 {
		amount = 0
	}
	if p.HP+amount > p.MaxHP {
		amount = p.MaxHP - p.HP
	}
	p.HP += amount
	return amount
}

// loseHP is the direct hp loss primitive for effects that ignore block
// (poison, thorns). Floors at zero.
func loseHP(p *Participant, amount int) {
	if amount <= 0 {
		return
	}
	if amount > p.HP {
		amount = p.HP
	}
	p.HP -= amount
}
