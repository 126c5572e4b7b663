package game

import (
	"shatteredmirror/internal/hexgrid"
)

// Phase is the combat state machine's current state.
type Phase string

const (
	PhasePlayer  Phase = "player"
	PhaseEnemy   Phase = "enemy"
	PhaseVictory Phase = "victory"
	PhaseDefeat  Phase = "defeat"
)

// Encounter is one combat: piles, arena, phase and turn counter. It is
// created by StartEncounter and owned by the Run until the next encounter
// begins; dead enemies stay in Enemies for post-combat inspection.
type Encounter struct {
	Player  *Participant `json:"player"`
	Enemies []*Enemy     `json:"enemies"`

	Draw    []DeckCard `json:"draw"`
	Hand    []DeckCard `json:"hand"`
	Discard []DeckCard `json:"discard"`
	Exhaust []DeckCard `json:"exhaust"`

	Phase Phase `json:"phase"`
	Turn  int   `json:"turn"`
}

// LivingEnemies returns the enemies still in the fight, in spawn order.
func (e *Encounter) LivingEnemies() []*Enemy {
	var out []*Enemy
	for _, en := range e.Enemies {
		if en.Alive() {
			out = append(out, en)
		}
	}
	return out
}

var defaultSpawns = []hexgrid.Hex{{Q: 2, R: 0}, {Q: 2, R: -1}, {Q: 1, R: 1}, {Q: 3, R: -2}}

// playerSpawn is the player's fixed opening hex.
var playerSpawn = hexgrid.Hex{Q: -2, R: 0}

// StartEncounter opens a combat against the given enemy types. Positions
// may be nil, in which case the default spawn spread is used. Returns
// false for unknown enemy ids or an empty lineup; the run is untouched on
// failure.
func (r *Run) StartEncounter(enemyIDs []string, positions []hexgrid.Hex) bool {
	if len(enemyIDs) == 0 {
		return false
	}

	enemies := make([]*Enemy, 0, len(enemyIDs))
	for i, id := range enemyIDs {
		def, ok := r.lib.Enemy(id)
		if !ok {
			return false
		}
		pos := defaultSpawns[i%len(defaultSpawns)]
		if i < len(positions) {
			pos = positions[i]
		}
		hp := def.MaxHP * r.EnemyHPPct / 100
		if hp < 1 {
			hp = 1
		}
		en := &Enemy{
			Participant: *newParticipant(def.Name, pos, hp),
			DefID:       def.ID,
			Tier:        def.Tier,
			Act:         def.Act,
			def:         def,
		}
		if r.EnemyStrengthBonus > 0 {
			en.setStatus(StatusStrength, r.EnemyStrengthBonus)
		}
		enemies = append(enemies, en)
	}

	player := newParticipant("player", playerSpawn, r.HP)
	player.MaxHP = r.MaxHP
	player.MaxEnergy = r.cfg.BaseEnergy + r.BonusEnergy
	player.Energy = player.MaxEnergy

	e := &Encounter{
		Player:  player,
		Enemies: enemies,
		Phase:   PhasePlayer,
		Turn:    1,
	}

	e.Draw = make([]DeckCard, len(r.Deck))
	copy(e.Draw, r.Deck)
	r.Rng.Shuffle(len(e.Draw), func(i, j int) { e.Draw[i], e.Draw[j] = e.Draw[j], e.Draw[i] })

	r.Encounter = e
	r.State = StateCombat

	// Opening statuses granted by relics and modifiers, applied in
	// definition order so runs replay identically.
	for _, def := range statusTable {
		if stacks := r.StartStatuses[def.Name]; stacks > 0 {
			ApplyStatus(player, def.Name, stacks)
		}
	}
	r.fireOnCombatStart()

	r.drawCards(r.handSize())
	r.refreshIntents()
	return true
}

func (r *Run) handSize() int {
	return r.cfg.HandSize + r.BonusDraw
}

// drawCards moves up to n cards from draw to hand, reshuffling the
// discard pile into draw when it runs dry. Overdraw past the hand cap
// burns to discard.
func (r *Run) drawCards(n int) {
	e := r.Encounter
	for i := 0; i < n; i++ {
		if len(e.Draw) == 0 {
			if len(e.Discard) == 0 {
				return
			}
			e.Draw = e.Discard
			e.Discard = nil
			r.Rng.Shuffle(len(e.Draw), func(a, b int) { e.Draw[a], e.Draw[b] = e.Draw[b], e.Draw[a] })
		}
		card := e.Draw[len(e.Draw)-1]
		e.Draw = e.Draw[:len(e.Draw)-1]
		if len(e.Hand) >= r.cfg.MaxHandCards {
			e.Discard = append(e.Discard, card)
			continue
		}
		e.Hand = append(e.Hand, card)
	}
}

// cardCost is the energy price of a card this run (daily modifiers may
// cap it).
func (r *Run) cardCost(def CardDef) int {
	cost := def.Cost
	if r.CardCostCap >= 0 && cost > r.CardCostCap {
		cost = r.CardCostCap
	}
	return cost
}

// PlayCard plays the hand card at handIndex against target (nil for
// untargeted cards). Illegal plays are inert and return false: wrong
// phase, bad index, unplayable keyword, unpayable cost or invalid target.
func (r *Run) PlayCard(handIndex int, target *Participant) bool {
	e := r.Encounter
	if e == nil || e.Phase != PhasePlayer {
		return false
	}
	if handIndex < 0 || handIndex >= len(e.Hand) {
		return false
	}
	card := e.Hand[handIndex]
	def, ok := r.lib.Card(card.ID)
	if !ok || def.Unplayable {
		return false
	}
	cost := r.cardCost(def)
	if e.Player.Energy < cost {
		return false
	}
	if def.Target == TargetEnemy {
		if target == nil {
			return false
		}
		legal := false
		for _, t := range def.ValidTargets(r) {
			if t == target {
				legal = true
				break
			}
		}
		if !legal {
			return false
		}
	}

	e.Player.Energy -= cost
	e.Hand = append(e.Hand[:handIndex], e.Hand[handIndex+1:]...)

	result := EffectPlayed
	if def.Effect != nil {
		result = def.Effect(r, card.Upgraded, target)
	}

	e.Player.CardsPlayedThisTurn++
	r.fireOnCardPlayed(def)

	// Powers leave the combat deck once played; exhaust cards too.
	if def.Exhaust || def.Power {
		e.Exhaust = append(e.Exhaust, card)
	} else {
		e.Discard = append(e.Discard, card)
	}

	if result == EffectVictory {
		for _, en := range e.Enemies {
			en.HP = 0
		}
	}
	r.checkCombatEnd()
	return true
}

// PlayCardAt is PlayCard addressed by enemy index, for callers that do
// not hold participant pointers.
func (r *Run) PlayCardAt(handIndex, enemyIndex int) bool {
	e := r.Encounter
	if e == nil {
		return false
	}
	var target *Participant
	if enemyIndex >= 0 && enemyIndex < len(e.Enemies) {
		target = &e.Enemies[enemyIndex].Participant
	}
	return r.PlayCard(handIndex, target)
}

// EndPlayerTurn closes the player phase: turn-end ticks, hand discard
// (unplayed ethereal cards exhaust instead; a retention effect keeps the
// rest), then the enemy phase and the next player turn run to completion.
func (r *Run) EndPlayerTurn() bool {
	e := r.Encounter
	if e == nil || e.Phase != PhasePlayer {
		return false
	}

	TickStatuses(e.Player, TickTurnEnd)

	var kept []DeckCard
	for _, card := range e.Hand {
		def, ok := r.lib.Card(card.ID)
		switch {
		case ok && def.Ethereal:
			e.Exhaust = append(e.Exhaust, card)
		case r.RetainHand:
			kept = append(kept, card)
		default:
			e.Discard = append(e.Discard, card)
		}
	}
	e.Hand = kept

	e.Phase = PhaseEnemy
	r.enemyPhase()
	if e.Phase == PhaseVictory || e.Phase == PhaseDefeat {
		return true
	}
	r.startPlayerTurn()
	return true
}

// enemyPhase resolves each living enemy's declared intent in spawn order,
// then its turn-end ticks.
func (r *Run) enemyPhase() {
	e := r.Encounter
	for _, en := range e.Enemies {
		if !en.Alive() {
			continue
		}

		// Own turn start: block from last turn expires.
		en.Block = 0
		en.HexesMovedThisTurn = 0

		switch en.Intent.Kind {
		case IntentAttack:
			DealDamage(&en.Participant, e.Player, en.Intent.Value)
		case IntentBlock:
			GainBlock(&en.Participant, en.Intent.Value)
		case IntentMove:
			to := en.Intent.To
			if to == en.Pos {
				to = hexgrid.StepToward(en.Pos, e.Player.Pos)
			}
			if to != en.Pos {
				en.Pos = to
				en.HexesMovedThisTurn++
			}
		}

		if e.Player.HP == 0 {
			e.Phase = PhaseDefeat
			r.finishCombat(false)
			return
		}

		TickStatuses(&en.Participant, TickTurnEnd)
		r.checkCombatEnd()
		if e.Phase != PhaseEnemy {
			return
		}
	}
}

// startPlayerTurn opens the next player turn: block reset (unless
// retained), energy restore, turn-start ticks on everyone, draw to hand
// size, fresh intents, relic hooks.
func (r *Run) startPlayerTurn() {
	e := r.Encounter
	p := e.Player

	e.Phase = PhasePlayer
	e.Turn++

	if !r.KeepBlock {
		p.Block = 0
	}
	p.CardsPlayedThisTurn = 0
	p.HexesMovedThisTurn = 0
	p.Energy = p.MaxEnergy

	TickStatuses(p, TickTurnStart)
	if p.HP == 0 {
		e.Phase = PhaseDefeat
		r.finishCombat(false)
		return
	}
	for _, en := range e.Enemies {
		if en.Alive() {
			TickStatuses(&en.Participant, TickTurnStart)
		}
	}
	r.checkCombatEnd()
	if e.Phase != PhasePlayer {
		return
	}

	r.drawCards(r.handSize())
	r.refreshIntents()
	r.fireOnTurnStart()
}

// refreshIntents asks each living enemy for its next declared action,
// exactly once per enemy per turn.
func (r *Run) refreshIntents() {
	e := r.Encounter
	for _, en := range e.Enemies {
		if !en.Alive() {
			continue
		}
		if en.def.GetIntent == nil {
			en.Intent = Intent{Kind: IntentBlock, Value: 5}
			continue
		}
		en.Intent = en.def.GetIntent(en, r)
	}
}

// checkCombatEnd detects terminal states after any effect resolution; an
// effect may kill the last enemy mid-card.
func (r *Run) checkCombatEnd() {
	e := r.Encounter
	if e == nil || e.Phase == PhaseVictory || e.Phase == PhaseDefeat {
		return
	}
	if e.Player.HP == 0 {
		e.Phase = PhaseDefeat
		r.finishCombat(false)
		return
	}
	if len(e.LivingEnemies()) == 0 {
		e.Phase = PhaseVictory
		r.finishCombat(true)
	}
}

// --- helpers card effects route through ---

// AttackEnemy deals weapon damage from the player through the pipeline
// and fires damage-dealt relic hooks.
func (r *Run) AttackEnemy(target *Participant, base int) int {
	e := r.Encounter
	if e == nil || target == nil {
		return 0
	}
	dealt := DealDamage(e.Player, target, base)
	r.fireOnDamageDealt(target, dealt)
	r.checkCombatEnd()
	return dealt
}

// AttackAllEnemies hits every living enemy in spawn order.
func (r *Run) AttackAllEnemies(base int) {
	e := r.Encounter
	if e == nil {
		return
	}
	for _, en := range e.Enemies {
		if !en.Alive() {
			continue
		}
		dealt := DealDamage(e.Player, &en.Participant, base)
		r.fireOnDamageDealt(&en.Participant, dealt)
	}
	r.checkCombatEnd()
}

// PlayerBlock grants the player block through the pipeline.
func (r *Run) PlayerBlock(base int) int {
	if r.Encounter == nil {
		return 0
	}
	return GainBlock(r.Encounter.Player, base)
}

// DrawCards draws n cards mid-turn.
func (r *Run) DrawCards(n int) {
	if r.Encounter == nil {
		return
	}
	r.drawCards(n)
}

// GainEnergy adds energy this turn.
func (r *Run) GainEnergy(n int) {
	if r.Encounter == nil || n <= 0 {
		return
	}
	r.Encounter.Player.Energy += n
}

// MovePlayerStep moves the player one hex toward (or away from) the
// nearest living enemy and bumps the per-turn movement counter.
func (r *Run) MovePlayerStep(away bool) bool {
	e := r.Encounter
	if e == nil {
		return false
	}
	nearest := r.NearestEnemy()
	if nearest == nil {
		return false
	}
	var next hexgrid.Hex
	if away {
		// Step to the neighbor that maximizes distance from the threat.
		next = e.Player.Pos
		best := hexgrid.Distance(e.Player.Pos, nearest.Pos)
		for _, n := range hexgrid.Neighbors(e.Player.Pos) {
			if d := hexgrid.Distance(n, nearest.Pos); d > best {
				best = d
				next = n
			}
		}
	} else {
		next = hexgrid.StepToward(e.Player.Pos, nearest.Pos)
	}
	if next == e.Player.Pos {
		return false
	}
	e.Player.Pos = next
	e.Player.HexesMovedThisTurn++
	return true
}

// NearestEnemy returns the closest living enemy by hex distance, spawn
// order breaking ties.
func (r *Run) NearestEnemy() *Enemy {
	e := r.Encounter
	if e == nil {
		return nil
	}
	var nearest *Enemy
	best := 1 << 30
	for _, en := range e.Enemies {
		if !en.Alive() {
			continue
		}
		if d := hexgrid.Distance(e.Player.Pos, en.Pos); d < best {
			best = d
			nearest = en
		}
	}
	return nearest
}
