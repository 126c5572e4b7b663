package game

import (
	"shatteredmirror/internal/hexgrid"
)

// Participant is anything standing on the arena: the player or an enemy.
type Participant struct {
	Name  string      `json:"name"`
	Pos   hexgrid.Hex `json:"pos"`
	HP    int         `json:"hp"`
	MaxHP int         `json:"max_hp"`
	Block int         `json:"block"`

	// Player only.
	Energy    int `json:"energy,omitempty"`
	MaxEnergy int `json:"max_energy,omitempty"`

	Statuses map[string]int `json:"statuses"`

	// NextAttackBonus is added to the next damage dealt through the
	// pipeline and consumed by it.
	NextAttackBonus int `json:"next_attack_bonus,omitempty"`

	// Per-turn counters read by conditional card effects.
	CardsPlayedThisTurn int `json:"cards_played_this_turn"`
	HexesMovedThisTurn  int `json:"hexes_moved_this_turn"`
}

func newParticipant(name string, pos hexgrid.Hex, hp int) *Participant {
	return &Participant{
		Name:     name,
		Pos:      pos,
		HP:       hp,
		MaxHP:    hp,
		Statuses: map[string]int{},
	}
}

// Alive reports whether the participant still acts. Death occurs exactly
// when hp reaches 0.
func (p *Participant) Alive() bool {
	return p.HP > 0
}

// Status returns the stack count for the named effect, zero if absent.
func (p *Participant) Status(name string) int {
	if p.Statuses == nil {
		return 0
	}
	return p.Statuses[name]
}

func (p *Participant) setStatus(name string, stacks int) {
	if p.Statuses == nil {
		p.Statuses = map[string]int{}
	}
	if stacks <= 0 {
		delete(p.Statuses, name)
		return
	}
	p.Statuses[name] = stacks
}

// Enemy is a participant with a definition, a tier and a declared intent.
type Enemy struct {
	Participant
	DefID  string `json:"def_id"`
	Tier   Tier   `json:"tier"`
	Act    int    `json:"act"`
	Intent Intent `json:"intent"`

	def EnemyDef
}

// Def returns the enemy's immutable definition.
func (e *Enemy) Def() EnemyDef {
	return e.def
}
