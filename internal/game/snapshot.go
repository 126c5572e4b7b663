package game

import (
	"fmt"
	"sort"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/rng"
	"shatteredmirror/internal/worldmap"
)

// Snapshot is the serializable unit of save/load: the whole run between
// nodes. Encounters are not snapshotted; a restored run resumes on the
// map at its current position.
type Snapshot struct {
	Seed     uint32 `json:"seed"`
	RngState uint32 `json:"rng_state"`

	Deck    []DeckCard `json:"deck"`
	Relics  []string   `json:"relics"`
	Gold    int        `json:"gold"`
	HP      int        `json:"hp"`
	MaxHP   int        `json:"max_hp"`
	Potions []string   `json:"potions"`

	Act       int      `json:"act"`
	Floor     int      `json:"floor"`
	Ascension int      `json:"ascension"`
	Daily     bool     `json:"daily"`
	DailyMods []string `json:"daily_mods,omitempty"`

	Map     *worldmap.Map `json:"map"`
	Pos     Position      `json:"pos"`
	Visited []Position    `json:"visited"`

	EnemiesDefeated int           `json:"enemies_defeated"`
	FloorLog        []FloorResult `json:"floor_log"`

	BonusDraw          int            `json:"bonus_draw,omitempty"`
	BonusEnergy        int            `json:"bonus_energy,omitempty"`
	RetainHand         bool           `json:"retain_hand,omitempty"`
	KeepBlock          bool           `json:"keep_block,omitempty"`
	StartStatuses      map[string]int `json:"start_statuses,omitempty"`
	EnemyHPPct         int            `json:"enemy_hp_pct"`
	EnemyStrengthBonus int            `json:"enemy_strength_bonus,omitempty"`
	GoldPct            int            `json:"gold_pct"`
	HealPerVictory     int            `json:"heal_per_victory,omitempty"`
	CardCostCap        int            `json:"card_cost_cap"`
}

// Snapshot captures the run's persistent state.
func (r *Run) Snapshot() Snapshot {
	visited := make([]Position, 0, len(r.Visited))
	for pos := range r.Visited {
		visited = append(visited, pos)
	}
	sort.Slice(visited, func(i, j int) bool {
		if visited[i].Row != visited[j].Row {
			return visited[i].Row < visited[j].Row
		}
		return visited[i].Col < visited[j].Col
	})

	deck := make([]DeckCard, len(r.Deck))
	copy(deck, r.Deck)
	relics := make([]string, len(r.Relics))
	copy(relics, r.Relics)
	potions := make([]string, len(r.Potions))
	copy(potions, r.Potions)
	log := make([]FloorResult, len(r.FloorLog))
	copy(log, r.FloorLog)

	statuses := make(map[string]int, len(r.StartStatuses))
	for k, v := range r.StartStatuses {
		statuses[k] = v
	}

	return Snapshot{
		Seed:               r.Seed,
		RngState:           r.Rng.State(),
		Deck:               deck,
		Relics:             relics,
		Gold:               r.Gold,
		HP:                 r.HP,
		MaxHP:              r.MaxHP,
		Potions:            potions,
		Act:                r.Act,
		Floor:              r.Floor,
		Ascension:          r.Ascension,
		Daily:              r.Daily,
		DailyMods:          append([]string(nil), r.DailyMods...),
		Map:                r.Map,
		Pos:                r.Pos,
		Visited:            visited,
		EnemiesDefeated:    r.EnemiesDefeated,
		FloorLog:           log,
		BonusDraw:          r.BonusDraw,
		BonusEnergy:        r.BonusEnergy,
		RetainHand:         r.RetainHand,
		KeepBlock:          r.KeepBlock,
		StartStatuses:      statuses,
		EnemyHPPct:         r.EnemyHPPct,
		EnemyStrengthBonus: r.EnemyStrengthBonus,
		GoldPct:            r.GoldPct,
		HealPerVictory:     r.HealPerVictory,
		CardCostCap:        r.CardCostCap,
	}
}

// FromSnapshot rebuilds a run against the given library and balance.
// Unknown card or relic ids mean the save does not match the content
// tables and the snapshot is rejected.
func FromSnapshot(s Snapshot, lib *Library, bal config.Balance) (*Run, error) {
	for _, card := range s.Deck {
		if _, ok := lib.Card(card.ID); ok {
			continue
		}
		// Fusion results are synthesized at runtime; rebuild them from
		// the id instead of rejecting the save.
		if !rehydrateFused(lib, card.ID) {
			return nil, fmt.Errorf("snapshot references unknown card %q", card.ID)
		}
	}
	for _, id := range s.Relics {
		if _, ok := lib.Relic(id); !ok {
			return nil, fmt.Errorf("snapshot references unknown relic %q", id)
		}
	}
	if s.Map == nil || !s.Map.Valid() {
		return nil, fmt.Errorf("snapshot map is missing or malformed")
	}
	if s.Pos.Row < 0 || s.Pos.Row >= len(s.Map.Rows) || s.Pos.Col < 0 || s.Pos.Col >= len(s.Map.Rows[s.Pos.Row]) {
		return nil, fmt.Errorf("snapshot position out of bounds")
	}

	visited := make(map[Position]bool, len(s.Visited))
	for _, pos := range s.Visited {
		visited[pos] = true
	}
	statuses := make(map[string]int, len(s.StartStatuses))
	for k, v := range s.StartStatuses {
		statuses[k] = v
	}

	potions := s.Potions
	if len(potions) < bal.PotionSlots {
		padded := make([]string, bal.PotionSlots)
		copy(padded, potions)
		potions = padded
	}

	r := &Run{
		Seed:               s.Seed,
		Rng:                rng.Restore(s.RngState),
		lib:                lib,
		cfg:                bal,
		Deck:               append([]DeckCard(nil), s.Deck...),
		Relics:             append([]string(nil), s.Relics...),
		Gold:               s.Gold,
		HP:                 s.HP,
		MaxHP:              s.MaxHP,
		Potions:            potions,
		Act:                s.Act,
		Floor:              s.Floor,
		Ascension:          s.Ascension,
		Daily:              s.Daily,
		DailyMods:          append([]string(nil), s.DailyMods...),
		Map:                s.Map,
		Pos:                s.Pos,
		Visited:            visited,
		EnemiesDefeated:    s.EnemiesDefeated,
		FloorLog:           append([]FloorResult(nil), s.FloorLog...),
		BonusDraw:          s.BonusDraw,
		BonusEnergy:        s.BonusEnergy,
		RetainHand:         s.RetainHand,
		KeepBlock:          s.KeepBlock,
		StartStatuses:      statuses,
		EnemyHPPct:         s.EnemyHPPct,
		EnemyStrengthBonus: s.EnemyStrengthBonus,
		GoldPct:            s.GoldPct,
		HealPerVictory:     s.HealPerVictory,
		CardCostCap:        s.CardCostCap,
		State:              StateMap,
	}
	if r.EnemyHPPct == 0 {
		r.EnemyHPPct = 100
	}
	if r.GoldPct == 0 {
		r.GoldPct = 100
	}
	return r, nil
}

// rehydrateFused re-synthesizes a fused card from its id. Fused ids are
// "fused_<a>__<b>"; component ids may themselves contain "__" when
// fusions nest, so every split point is tried.
func rehydrateFused(lib *Library, id string) bool {
	const prefix = "fused_"
	if len(id) <= len(prefix) || id[:len(prefix)] != prefix {
		return false
	}
	body := id[len(prefix):]
	for i := 0; i+2 <= len(body); i++ {
		if body[i:i+2] != "__" {
			continue
		}
		a, b := body[:i], body[i+2:]
		if a == "" || b == "" {
			continue
		}
		if _, ok := lib.Card(a); !ok && !rehydrateFused(lib, a) {
			continue
		}
		if _, ok := lib.Card(b); !ok && !rehydrateFused(lib, b) {
			continue
		}
		if def, ok := lib.FusedCard(a, b); ok && def.ID == id {
			lib.registerCard(def)
			return true
		}
	}
	return false
}
