package game

import (
	"shatteredmirror/internal/hexgrid"
)

// Colony is a card's thematic grouping, used for deck-archetype filtering
// and reward pools.
type Colony string

const (
	ColonyGleam    Colony = "gleam"    // direct damage and block
	ColonyUmbra    Colony = "umbra"    // poison and debuffs
	ColonyResonant Colony = "resonant" // scaling and energy
	ColonyNeutral  Colony = "neutral"
)

type Rarity string

const (
	RarityStarter  Rarity = "starter"
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

type Tier string

const (
	TierNormal Tier = "normal"
	TierElite  Tier = "elite"
	TierBoss   Tier = "boss"
)

// TargetMode describes what a card needs aimed at it before it can resolve.
type TargetMode string

const (
	TargetNone       TargetMode = "none"
	TargetEnemy      TargetMode = "enemy"
	TargetAllEnemies TargetMode = "all_enemies"
	TargetSelf       TargetMode = "self"
)

// EffectResult is the outcome of a card effect.
type EffectResult int

const (
	EffectFizzled EffectResult = iota
	EffectPlayed
	EffectVictory // the effect ends the encounter outright (puzzle cards)
)

// CardEffect mutates the run/encounter when a card resolves. upgraded is
// the played instance's flag; target is nil for untargeted cards.
type CardEffect func(r *Run, upgraded bool, target *Participant) EffectResult

// CardDef is the immutable definition of a card. Instances in a deck are
// DeckCard values referencing it by ID.
type CardDef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Colony Colony `json:"colony"`
	Rarity Rarity `json:"rarity"`
	Cost   int    `json:"cost"`
	Text   string `json:"text"`

	Target TargetMode `json:"target"`
	// Range limits enemy targeting to hexes within this distance of the
	// player. Zero means the whole arena.
	Range int `json:"range,omitempty"`

	Power      bool `json:"power,omitempty"`
	Exhaust    bool `json:"exhaust,omitempty"`
	Unplayable bool `json:"unplayable,omitempty"`
	Ethereal   bool `json:"ethereal,omitempty"`
	Fused      bool `json:"fused,omitempty"`

	Effect CardEffect `json:"-"`
}

// ValidTargets returns the participants this card may be aimed at in the
// current encounter. Untargeted cards return nil.
func (c CardDef) ValidTargets(r *Run) []*Participant {
	e := r.Encounter
	if e == nil {
		return nil
	}
	switch c.Target {
	case TargetSelf:
		return []*Participant{e.Player}
	case TargetEnemy:
		var out []*Participant
		for _, en := range e.Enemies {
			if !en.Alive() {
				continue
			}
			if c.Range > 0 && hexgrid.Distance(e.Player.Pos, en.Pos) > c.Range {
				continue
			}
			out = append(out, &en.Participant)
		}
		return out
	default:
		return nil
	}
}

// DeckCard is a lightweight card instance living in the run deck and the
// combat piles.
type DeckCard struct {
	ID       string `json:"id"`
	Upgraded bool   `json:"upgraded"`
}

// IntentKind enumerates the closed set of enemy actions.
type IntentKind string

const (
	IntentAttack IntentKind = "attack"
	IntentBlock  IntentKind = "block"
	IntentMove   IntentKind = "move"
)

// Intent is an enemy's declared next action, shown to the player before it
// resolves.
type Intent struct {
	Kind  IntentKind  `json:"kind"`
	Value int         `json:"value,omitempty"`
	To    hexgrid.Hex `json:"to,omitempty"`
}

// IntentFunc computes an enemy's next intent. It is called exactly once
// per enemy per turn and must be a pure function of (self, run) including
// the run's PRNG stream.
type IntentFunc func(self *Enemy, r *Run) Intent

// EnemyDef is the immutable definition of an enemy type.
type EnemyDef struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Act       int        `json:"act"`
	Tier      Tier       `json:"tier"`
	MaxHP     int        `json:"max_hp"`
	Glyph     string     `json:"glyph"`
	GetIntent IntentFunc `json:"-"`
}

// Relic hooks fire at fixed trigger points, in relic acquisition order.
type RelicDef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
	Text   string `json:"text"`

	OnPickup      func(r *Run)                                  `json:"-"`
	OnCombatStart func(r *Run)                                  `json:"-"`
	OnTurnStart   func(r *Run)                                  `json:"-"`
	OnCardPlayed  func(r *Run, card CardDef)                    `json:"-"`
	OnDamageDealt func(r *Run, target *Participant, amount int) `json:"-"`
}

// PotionDef is a single-use slot item. Drink receives a nil target for
// untargeted potions; combat-only potions fizzle outside an encounter.
type PotionDef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Text       string `json:"text"`
	CombatOnly bool   `json:"combat_only"`
	Targeted   bool   `json:"targeted"`

	Drink func(r *Run, target *Participant) bool `json:"-"`
}

type EventChoice struct {
	Label string       `json:"label"`
	Apply func(r *Run) `json:"-"`
}

type EventDef struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Text    string        `json:"text"`
	Choices []EventChoice `json:"choices"`
}

// AscensionMod is one difficulty tier. Tiers apply cumulatively at run
// start: ascension 7 applies levels 1 through 7.
type AscensionMod struct {
	Level int          `json:"level"`
	Name  string       `json:"name"`
	Apply func(r *Run) `json:"-"`
}

// DailyMod is a rule twist selected by the daily seed.
type DailyMod struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Apply func(r *Run) `json:"-"`
}

// Library bundles every content table. The run controller and the combat
// machine consult it for definitions; content packages build it.
type Library struct {
	Cards      []CardDef
	Enemies    []EnemyDef
	Relics     []RelicDef
	Potions    []PotionDef
	Events     []EventDef
	Ascensions []AscensionMod
	DailyMods  []DailyMod

	// StarterDeck lists card IDs (with counts by repetition) every new
	// run begins with.
	StarterDeck []string

	// Fusions maps an unordered card-id pair to an explicit result.
	Fusions map[FusionKey]CardDef

	cardIndex  map[string]CardDef
	enemyIndex map[string]EnemyDef
	relicIndex map[string]RelicDef
	potIndex   map[string]PotionDef
}

// BuildIndexes must be called once after the tables are populated.
func (l *Library) BuildIndexes() {
	l.cardIndex = make(map[string]CardDef, len(l.Cards))
	for _, c := range l.Cards {
		l.cardIndex[c.ID] = c
	}
	l.enemyIndex = make(map[string]EnemyDef, len(l.Enemies))
	for _, e := range l.Enemies {
		l.enemyIndex[e.ID] = e
	}
	l.relicIndex = make(map[string]RelicDef, len(l.Relics))
	for _, rl := range l.Relics {
		l.relicIndex[rl.ID] = rl
	}
	l.potIndex = make(map[string]PotionDef, len(l.Potions))
	for _, p := range l.Potions {
		l.potIndex[p.ID] = p
	}
}

func (l *Library) Card(id string) (CardDef, bool) {
	c, ok := l.cardIndex[id]
	return c, ok
}

// registerCard makes a synthesized card (fusion results) resolvable for
// the rest of the run.
func (l *Library) registerCard(c CardDef) {
	if _, exists := l.cardIndex[c.ID]; exists {
		return
	}
	l.Cards = append(l.Cards, c)
	l.cardIndex[c.ID] = c
}

func (l *Library) Enemy(id string) (EnemyDef, bool) {
	e, ok := l.enemyIndex[id]
	return e, ok
}

func (l *Library) Relic(id string) (RelicDef, bool) {
	r, ok := l.relicIndex[id]
	return r, ok
}

func (l *Library) Potion(id string) (PotionDef, bool) {
	p, ok := l.potIndex[id]
	return p, ok
}

// EnemiesBy returns enemy definitions matching act and tier, in table order.
func (l *Library) EnemiesBy(act int, tier Tier) []EnemyDef {
	var out []EnemyDef
	for _, e := range l.Enemies {
		if e.Act == act && e.Tier == tier {
			out = append(out, e)
		}
	}
	return out
}

// CardsBy returns card definitions of the given rarity, excluding
// starters, unplayables and fused results.
func (l *Library) CardsBy(rarity Rarity) []CardDef {
	var out []CardDef
	for _, c := range l.Cards {
		if c.Rarity == rarity && !c.Fused && !c.Unplayable {
			out = append(out, c)
		}
	}
	return out
}
