package game

// Status effect names. These are the twelve counters a participant can
// carry; everything else in combat is derived from them.
const (
	StatusStrength    = "strength"    // adds to outgoing attack damage
	StatusDexterity   = "dexterity"   // adds to gained block
	StatusVulnerable  = "vulnerable"  // incoming attacks x1.5, decays
	StatusWeak        = "weak"        // outgoing attacks x0.75, decays
	StatusFrail       = "frail"       // gained block x0.75, decays
	StatusPoison      = "poison"      // turn start: lose stacks hp, decrement
	StatusRegen       = "regen"       // turn start: heal stacks, decrement
	StatusArtifact    = "artifact"    // consumes itself to cancel one debuff
	StatusThorns      = "thorns"      // attackers take stacks damage back
	StatusRitual      = "ritual"      // turn end: gain stacks strength
	StatusMetallicize = "metallicize" // turn end: gain stacks block
	StatusEnergized   = "energized"   // turn start: gain stacks energy, clear
)

// TickPhase keys a status tick to a point in the turn.
type TickPhase string

const (
	TickNever     TickPhase = ""
	TickTurnStart TickPhase = "turnStart"
	TickTurnEnd   TickPhase = "turnEnd"
)

type StatusDef struct {
	Name   string
	Debuff bool
	Phase  TickPhase
	OnTick func(p *Participant)
}

// statusTable is the definition-order table: when several effects tick in
// the same phase they resolve in this order.
var statusTable = []StatusDef{
	{Name: StatusStrength},
	{Name: StatusDexterity},
	{Name: StatusVulnerable, Debuff: true, Phase: TickTurnEnd, OnTick: decayTick(StatusVulnerable)},
	{Name: StatusWeak, Debuff: true, Phase: TickTurnEnd, OnTick: decayTick(StatusWeak)},
	{Name: StatusFrail, Debuff: true, Phase: TickTurnEnd, OnTick: decayTick(StatusFrail)},
	{Name: StatusPoison, Debuff: true, Phase: TickTurnStart, OnTick: poisonTick},
	{Name: StatusRegen, Phase: TickTurnStart, OnTick: regenTick},
	{Name: StatusArtifact},
	{Name: StatusThorns},
	{Name: StatusRitual, Phase: TickTurnEnd, OnTick: ritualTick},
	{Name: StatusMetallicize, Phase: TickTurnEnd, OnTick: metallicizeTick},
	{Name: StatusEnergized, Phase: TickTurnStart, OnTick: energizedTick},
}

var statusIndex = func() map[string]StatusDef {
	m := make(map[string]StatusDef, len(statusTable))
	for _, d := range statusTable {
		m[d.Name] = d
	}
	return m
}()

// StatusNames returns the twelve effect names in definition order.
func StatusNames() []string {
	out := make([]string, len(statusTable))
	for i, d := range statusTable {
		out[i] = d.Name
	}
	return out
}

// ApplyStatus adds stacks of the named effect to p. An artifact charge on
// the receiver cancels one incoming debuff application and is consumed by
// doing so. Returns true when the application stuck.
func ApplyStatus(p *Participant, name string, amount int) bool {
	def, ok := statusIndex[name]
	if !ok {
		return false
	}
	if def.Debuff && amount > 0 && p.Status(StatusArtifact) > 0 {
		p.setStatus(StatusArtifact, p.Status(StatusArtifact)-1)
		return false
	}
	p.setStatus(name, p.Status(name)+amount)
	return true
}

// TickStatuses resolves every effect keyed to the given phase, in
// definition order.
func TickStatuses(p *Participant, phase TickPhase) {
	for _, def := range statusTable {
		if def.Phase != phase || def.OnTick == nil {
			continue
		}
		if p.Status(def.Name) <= 0 {
			continue
		}
		def.OnTick(p)
	}
}

func decayTick(name string) func(p *Participant) {
	return func(p *Participant) {
		p.setStatus(name, p.Status(name)-1)
	}
}

func poisonTick(p *Participant) {
	stacks := p.Status(StatusPoison)
	loseHP(p, stacks)
	p.setStatus(StatusPoison, stacks-1)
}

func regenTick(p *Participant) {
	stacks := p.Status(StatusRegen)
	Heal(p, stacks)
	p.setStatus(StatusRegen, stacks-1)
}

func ritualTick(p *Participant) {
	p.setStatus(StatusStrength, p.Status(StatusStrength)+p.Status(StatusRitual))
}

func metallicizeTick(p *Participant) {
	GainBlock(p, p.Status(StatusMetallicize))
}

func energizedTick(p *Participant) {
	p.Energy += p.Status(StatusEnergized)
	p.setStatus(StatusEnergized, 0)
}
