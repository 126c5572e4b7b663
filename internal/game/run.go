package game

import (
	"shatteredmirror/internal/config"
	"shatteredmirror/internal/rng"
	"shatteredmirror/internal/worldmap"
)

// RunState is the run controller's top-level state.
type RunState string

const (
	StateMap      RunState = "map"
	StateCombat   RunState = "combat"
	StateReward   RunState = "reward"
	StateRest     RunState = "rest"
	StateShop     RunState = "shop"
	StateEvent    RunState = "event"
	StateGameOver RunState = "game_over"
	StateVictory  RunState = "victory"
)

// Position addresses a map node.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// FloorResult is one line of the share grid.
type FloorResult struct {
	Floor int               `json:"floor"`
	Node  worldmap.NodeType `json:"node"`
	Won   bool              `json:"won"`
}

// Reward is the pending loot screen after a won combat.
type Reward struct {
	Gold    int        `json:"gold"`
	Cards   []DeckCard `json:"cards"`
	RelicID string     `json:"relic_id,omitempty"`
}

type ShopCard struct {
	Card  DeckCard `json:"card"`
	Price int      `json:"price"`
	Sold  bool     `json:"sold"`
}

type ShopRelic struct {
	RelicID string `json:"relic_id"`
	Price   int    `json:"price"`
	Sold    bool   `json:"sold"`
}

type ShopPotion struct {
	PotionID string `json:"potion_id"`
	Price    int    `json:"price"`
	Sold     bool   `json:"sold"`
}

type ShopStock struct {
	Cards        []ShopCard  `json:"cards"`
	Relics       []ShopRelic `json:"relics"`
	Potions      []ShopPotion `json:"potions"`
	RemovalPrice int         `json:"removal_price"`
	RemovalUsed  bool        `json:"removal_used"`
}

// Run owns one playthrough: deck, relics, resources, map position and the
// active encounter. All engine functions hang off it; there is no ambient
// global, so tests can drive several runs side by side.
type Run struct {
	Seed uint32      `json:"seed"`
	Rng  *rng.Source `json:"-"`

	lib *Library
	cfg config.Balance

	Deck    []DeckCard `json:"deck"`
	Relics  []string   `json:"relics"`
	Gold    int        `json:"gold"`
	HP      int        `json:"hp"`
	MaxHP   int        `json:"max_hp"`
	Potions []string   `json:"potions"`

	Act       int  `json:"act"`
	Floor     int  `json:"floor"`
	Ascension int  `json:"ascension"`
	Daily     bool `json:"daily"`
	DailyMods []string `json:"daily_mods,omitempty"`

	Map     *worldmap.Map     `json:"map"`
	Pos     Position          `json:"pos"`
	Visited map[Position]bool `json:"-"`

	State     RunState          `json:"state"`
	NodeType  worldmap.NodeType `json:"node_type,omitempty"`
	Encounter *Encounter        `json:"encounter,omitempty"`
	Reward    *Reward           `json:"reward,omitempty"`
	Shop      *ShopStock        `json:"shop,omitempty"`
	EventID   string            `json:"event_id,omitempty"`

	EnemiesDefeated int           `json:"enemies_defeated"`
	FloorLog        []FloorResult `json:"floor_log"`

	// Run-wide modifiers set by relics, ascension tiers and daily mods.
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

// Options selects run-level variants at creation.
type Options struct {
	Ascension int
	Daily     bool
}

// NewRun builds a fresh run from a seed. The seed plus the sequence of
// commands fully determines everything that follows.
func NewRun(seed uint32, lib *Library, bal config.Balance, opts Options) *Run {
	r := &Run{
		Seed:          seed,
		Rng:           rng.New(seed),
		lib:           lib,
		cfg:           bal,
		Gold:          bal.StartingGold,
		HP:            bal.StartingHP,
		MaxHP:         bal.StartingHP,
		Potions:       make([]string, bal.PotionSlots),
		Act:           1,
		Ascension:     opts.Ascension,
		Daily:         opts.Daily,
		Visited:       map[Position]bool{},
		StartStatuses: map[string]int{},
		EnemyHPPct:    100,
		GoldPct:       100,
		CardCostCap:   -1,
		State:         StateMap,
	}

	r.Deck = make([]DeckCard, 0, len(lib.StarterDeck))
	for _, id := range lib.StarterDeck {
		r.Deck = append(r.Deck, DeckCard{ID: id})
	}

	// Ascension tiers are cumulative: level N applies mods 1..N.
	for _, mod := range lib.Ascensions {
		if mod.Level <= opts.Ascension && mod.Apply != nil {
			mod.Apply(r)
		}
	}

	if opts.Daily && len(lib.DailyMods) > 0 {
		// Two distinct seed-selected twists.
		first := r.Rng.Intn(len(lib.DailyMods))
		second := r.Rng.Intn(len(lib.DailyMods))
		if second == first {
			second = (second + 1) % len(lib.DailyMods)
		}
		for _, idx := range []int{first, second} {
			mod := lib.DailyMods[idx]
			r.DailyMods = append(r.DailyMods, mod.ID)
			if mod.Apply != nil {
				mod.Apply(r)
			}
		}
	}

	r.Map = worldmap.Generate(1, r.Rng)
	r.Pos = Position{Row: 0, Col: 0}
	r.Visited[r.Pos] = true
	return r
}

// Library exposes the content tables backing this run.
func (r *Run) Library() *Library {
	return r.lib
}

// Balance exposes the tuning the run was built with.
func (r *Run) Balance() config.Balance {
	return r.cfg
}

// AvailableMoves lists the next-row nodes reachable from the current
// position. Empty unless the run is on the map.
func (r *Run) AvailableMoves() []Position {
	if r.State != StateMap || r.Map == nil {
		return nil
	}
	node := r.Map.Rows[r.Pos.Row][r.Pos.Col]
	out := make([]Position, 0, len(node.Next))
	for _, col := range node.Next {
		out = append(out, Position{Row: r.Pos.Row + 1, Col: col})
	}
	return out
}

// EnterNode moves to a connected node on the next row and dispatches on
// its type. Illegal moves are inert.
func (r *Run) EnterNode(row, col int) bool {
	if r.State != StateMap || r.Map == nil {
		return false
	}
	if row != r.Pos.Row+1 || row >= len(r.Map.Rows) {
		return false
	}
	current := r.Map.Rows[r.Pos.Row][r.Pos.Col]
	connected := false
	for _, k := range current.Next {
		if k == col {
			connected = true
			break
		}
	}
	if !connected {
		return false
	}

	r.Pos = Position{Row: row, Col: col}
	r.Visited[r.Pos] = true
	r.Floor++
	node := r.Map.Rows[row][col]
	r.NodeType = node.Type

	switch node.Type {
	case worldmap.NodeCombat:
		return r.StartEncounter(r.GenerateCombatEnemies(), nil)
	case worldmap.NodeElite:
		return r.StartEncounter(r.GenerateEliteEnemies(), nil)
	case worldmap.NodeBoss:
		return r.StartEncounter(r.GenerateBossEnemies(), nil)
	case worldmap.NodeRest:
		r.State = StateRest
	case worldmap.NodeShop:
		r.rollShop()
		r.State = StateShop
	case worldmap.NodeEvent:
		r.rollEvent()
		r.State = StateEvent
	}
	return true
}

// GenerateCombatEnemies picks this floor's normal lineup from the act's
// pool: one to three enemies, more in the later rows.
func (r *Run) GenerateCombatEnemies() []string {
	pool := r.lib.EnemiesBy(r.Act, TierNormal)
	if len(pool) == 0 {
		return nil
	}
	count := 1 + r.Rng.Intn(2)
	if r.Pos.Row >= 8 {
		count++
	}
	if count > 3 {
		count = 3
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, pool[r.Rng.Intn(len(pool))].ID)
	}
	return ids
}

// GenerateEliteEnemies picks one elite from the act's pool.
func (r *Run) GenerateEliteEnemies() []string {
	pool := r.lib.EnemiesBy(r.Act, TierElite)
	if len(pool) == 0 {
		return nil
	}
	return []string{pool[r.Rng.Intn(len(pool))].ID}
}

// GenerateBossEnemies picks the act boss.
func (r *Run) GenerateBossEnemies() []string {
	pool := r.lib.EnemiesBy(r.Act, TierBoss)
	if len(pool) == 0 {
		return nil
	}
	return []string{pool[r.Rng.Intn(len(pool))].ID}
}

// finishCombat closes the encounter in either direction: syncs hp, logs
// the floor, rolls rewards on a win.
func (r *Run) finishCombat(won bool) {
	e := r.Encounter
	r.FloorLog = append(r.FloorLog, FloorResult{Floor: r.Floor, Node: r.NodeType, Won: won})

	if !won {
		r.HP = 0
		r.State = StateGameOver
		return
	}

	r.HP = e.Player.HP
	for _, en := range e.Enemies {
		if !en.Alive() {
			r.EnemiesDefeated++
		}
	}
	if r.HealPerVictory > 0 {
		r.HealPlayer(r.HealPerVictory)
	}

	reward := &Reward{Cards: r.rollCardChoices()}
	switch r.NodeType {
	case worldmap.NodeElite:
		reward.Gold = r.Rng.Between(r.cfg.EliteGoldMin, r.cfg.EliteGoldMax)
		reward.RelicID = r.rollRelicDrop()
	case worldmap.NodeBoss:
		reward.Gold = r.Rng.Between(r.cfg.BossGoldMin, r.cfg.BossGoldMax)
		reward.RelicID = r.rollRelicDrop()
	default:
		reward.Gold = r.Rng.Between(r.cfg.CombatGoldMin, r.cfg.CombatGoldMax)
	}
	r.AddGold(reward.Gold)
	if reward.RelicID != "" {
		r.AddRelic(reward.RelicID)
	}
	r.Reward = reward
	r.State = StateReward
}

// rollCardChoices draws three reward options weighted by rarity.
func (r *Run) rollCardChoices() []DeckCard {
	rarities := []Rarity{RarityCommon, RarityUncommon, RarityRare}
	weights := []int{60, 30, 10}
	if r.NodeType == worldmap.NodeElite || r.NodeType == worldmap.NodeBoss {
		weights = []int{35, 40, 25}
	}

	out := make([]DeckCard, 0, 3)
	seen := map[string]bool{}
	for len(out) < 3 {
		pool := r.lib.CardsBy(rarities[r.Rng.WeightedIndex(weights)])
		if len(pool) == 0 {
			break
		}
		pick := pool[r.Rng.Intn(len(pool))]
		if seen[pick.ID] {
			continue
		}
		seen[pick.ID] = true
		out = append(out, DeckCard{ID: pick.ID})
	}
	return out
}

// rollRelicDrop picks a relic the run does not own yet.
func (r *Run) rollRelicDrop() string {
	owned := map[string]bool{}
	for _, id := range r.Relics {
		owned[id] = true
	}
	var pool []string
	for _, rel := range r.lib.Relics {
		if !owned[rel.ID] {
			pool = append(pool, rel.ID)
		}
	}
	if len(pool) == 0 {
		return ""
	}
	return pool[r.Rng.Intn(len(pool))]
}

// TakeRewardCard adds the chosen reward card to the deck and leaves the
// loot screen.
func (r *Run) TakeRewardCard(idx int) bool {
	if r.State != StateReward || r.Reward == nil {
		return false
	}
	if idx < 0 || idx >= len(r.Reward.Cards) {
		return false
	}
	r.Deck = append(r.Deck, r.Reward.Cards[idx])
	r.closeReward()
	return true
}

// SkipRewardCard leaves the loot screen without taking a card.
func (r *Run) SkipRewardCard() bool {
	if r.State != StateReward {
		return false
	}
	r.closeReward()
	return true
}

func (r *Run) closeReward() {
	r.Reward = nil
	if r.NodeType == worldmap.NodeBoss {
		r.advanceAct()
		return
	}
	r.State = StateMap
}

// advanceAct moves to the next act map, or ends the run in victory after
// act 3's boss.
func (r *Run) advanceAct() {
	if r.Act >= 3 {
		r.State = StateVictory
		return
	}
	r.Act++
	r.Map = worldmap.Generate(r.Act, r.Rng)
	r.Pos = Position{Row: 0, Col: 0}
	r.Visited = map[Position]bool{r.Pos: true}
	r.State = StateMap
}

// --- rest site ---

// RestHeal heals a percentage of max hp and returns to the map.
func (r *Run) RestHeal() bool {
	if r.State != StateRest {
		return false
	}
	r.HealPlayer(r.MaxHP * r.cfg.RestHealPct / 100)
	r.State = StateMap
	return true
}

// RestUpgrade upgrades one deck card instead of healing.
func (r *Run) RestUpgrade(deckIdx int) bool {
	if r.State != StateRest {
		return false
	}
	if deckIdx < 0 || deckIdx >= len(r.Deck) || r.Deck[deckIdx].Upgraded {
		return false
	}
	r.Deck[deckIdx].Upgraded = true
	r.State = StateMap
	return true
}

// --- shop ---

func (r *Run) rollShop() {
	stock := &ShopStock{RemovalPrice: r.cfg.CardRemovePrice}

	rarities := []Rarity{RarityCommon, RarityCommon, RarityCommon, RarityUncommon, RarityRare}
	for _, rarity := range rarities {
		pool := r.lib.CardsBy(rarity)
		if len(pool) == 0 {
			continue
		}
		pick := pool[r.Rng.Intn(len(pool))]
		stock.Cards = append(stock.Cards, ShopCard{
			Card:  DeckCard{ID: pick.ID},
			Price: r.cardPrice(rarity),
		})
	}

	if id := r.rollRelicDrop(); id != "" {
		stock.Relics = append(stock.Relics, ShopRelic{RelicID: id, Price: r.cfg.RelicPrice})
	}
	for i := 0; i < 2 && len(r.lib.Potions) > 0; i++ {
		pick := r.lib.Potions[r.Rng.Intn(len(r.lib.Potions))]
		stock.Potions = append(stock.Potions, ShopPotion{PotionID: pick.ID, Price: r.cfg.PotionPrice})
	}

	r.Shop = stock
}

func (r *Run) cardPrice(rarity Rarity) int {
	switch rarity {
	case RarityUncommon:
		return r.cfg.CardPriceUncommon
	case RarityRare:
		return r.cfg.CardPriceRare
	default:
		return r.cfg.CardPriceCommon
	}
}

func (r *Run) ShopBuyCard(idx int) bool {
	if r.State != StateShop || r.Shop == nil || idx < 0 || idx >= len(r.Shop.Cards) {
		return false
	}
	item := &r.Shop.Cards[idx]
	if item.Sold || r.Gold < item.Price {
		return false
	}
	r.Gold -= item.Price
	item.Sold = true
	r.Deck = append(r.Deck, item.Card)
	return true
}

func (r *Run) ShopBuyRelic(idx int) bool {
	if r.State != StateShop || r.Shop == nil || idx < 0 || idx >= len(r.Shop.Relics) {
		return false
	}
	item := &r.Shop.Relics[idx]
	if item.Sold || r.Gold < item.Price {
		return false
	}
	r.Gold -= item.Price
	item.Sold = true
	r.AddRelic(item.RelicID)
	return true
}

func (r *Run) ShopBuyPotion(idx int) bool {
	if r.State != StateShop || r.Shop == nil || idx < 0 || idx >= len(r.Shop.Potions) {
		return false
	}
	item := &r.Shop.Potions[idx]
	if item.Sold || r.Gold < item.Price {
		return false
	}
	if !r.AddPotion(item.PotionID) {
		return false
	}
	r.Gold -= item.Price
	item.Sold = true
	return true
}

// ShopRemoveCard pays to delete one deck card, once per shop.
func (r *Run) ShopRemoveCard(deckIdx int) bool {
	if r.State != StateShop || r.Shop == nil || r.Shop.RemovalUsed {
		return false
	}
	if r.Gold < r.Shop.RemovalPrice {
		return false
	}
	if !r.RemoveCardFromDeck(deckIdx) {
		return false
	}
	r.Gold -= r.Shop.RemovalPrice
	r.Shop.RemovalUsed = true
	return true
}

func (r *Run) LeaveShop() bool {
	if r.State != StateShop {
		return false
	}
	r.Shop = nil
	r.State = StateMap
	return true
}

// --- events ---

func (r *Run) rollEvent() {
	if len(r.lib.Events) == 0 {
		r.EventID = ""
		return
	}
	r.EventID = r.lib.Events[r.Rng.Intn(len(r.lib.Events))].ID
}

// CurrentEvent returns the active event definition.
func (r *Run) CurrentEvent() (EventDef, bool) {
	if r.State != StateEvent {
		return EventDef{}, false
	}
	for _, ev := range r.lib.Events {
		if ev.ID == r.EventID {
			return ev, true
		}
	}
	return EventDef{}, false
}

// ChooseEventOption applies one event choice and returns to the map
// (unless the choice killed the run).
func (r *Run) ChooseEventOption(idx int) bool {
	ev, ok := r.CurrentEvent()
	if !ok || idx < 0 || idx >= len(ev.Choices) {
		return false
	}
	if apply := ev.Choices[idx].Apply; apply != nil {
		apply(r)
	}
	r.EventID = ""
	if r.State == StateEvent {
		r.State = StateMap
	}
	return true
}

// --- potions ---

// AddPotion places a potion in the first free slot.
func (r *Run) AddPotion(id string) bool {
	if _, ok := r.lib.Potion(id); !ok {
		return false
	}
	for i, slot := range r.Potions {
		if slot == "" {
			r.Potions[i] = id
			return true
		}
	}
	return false
}

// UsePotion drinks the potion in the given slot. enemyIndex addresses the
// target for targeted potions; pass -1 otherwise.
func (r *Run) UsePotion(slot, enemyIndex int) bool {
	if slot < 0 || slot >= len(r.Potions) || r.Potions[slot] == "" {
		return false
	}
	def, ok := r.lib.Potion(r.Potions[slot])
	if !ok {
		return false
	}
	if def.CombatOnly && (r.Encounter == nil || r.State != StateCombat) {
		return false
	}
	var target *Participant
	if def.Targeted {
		e := r.Encounter
		if e == nil || enemyIndex < 0 || enemyIndex >= len(e.Enemies) || !e.Enemies[enemyIndex].Alive() {
			return false
		}
		target = &e.Enemies[enemyIndex].Participant
	}
	if def.Drink == nil || !def.Drink(r, target) {
		return false
	}
	r.Potions[slot] = ""
	return true
}

// --- deck and resources ---

// AddGold credits gold, scaled by the run's gold modifier.
func (r *Run) AddGold(amount int) {
	if amount <= 0 {
		return
	}
	r.Gold += amount * r.GoldPct / 100
}

// SpendGold debits gold if affordable.
func (r *Run) SpendGold(amount int) bool {
	if amount < 0 || r.Gold < amount {
		return false
	}
	r.Gold -= amount
	return true
}

// DamagePlayer hurts the run-level hp pool (events, curses). Outside
// combat only; in combat the pipeline owns hp.
func (r *Run) DamagePlayer(amount int) {
	if amount <= 0 {
		return
	}
	r.HP -= amount
	if r.HP <= 0 {
		r.HP = 0
		r.State = StateGameOver
	}
}

// HealPlayer restores run-level hp up to the max.
func (r *Run) HealPlayer(amount int) {
	if amount <= 0 {
		return
	}
	r.HP += amount
	if r.HP > r.MaxHP {
		r.HP = r.MaxHP
	}
}

// RaiseMaxHP grows the hp pool and heals by the same amount.
func (r *Run) RaiseMaxHP(amount int) {
	r.MaxHP += amount
	if r.MaxHP < 1 {
		r.MaxHP = 1
	}
	if amount > 0 {
		r.HP += amount
	}
	if r.HP > r.MaxHP {
		r.HP = r.MaxHP
	}
}

// AddCardToDeck appends a card by id.
func (r *Run) AddCardToDeck(id string) bool {
	if _, ok := r.lib.Card(id); !ok {
		return false
	}
	r.Deck = append(r.Deck, DeckCard{ID: id})
	return true
}

// RemoveCardFromDeck deletes the card at the index.
func (r *Run) RemoveCardFromDeck(idx int) bool {
	if idx < 0 || idx >= len(r.Deck) {
		return false
	}
	r.Deck = append(r.Deck[:idx], r.Deck[idx+1:]...)
	return true
}

// UpgradeCard flags a deck card as upgraded.
func (r *Run) UpgradeCard(idx int) bool {
	if idx < 0 || idx >= len(r.Deck) || r.Deck[idx].Upgraded {
		return false
	}
	r.Deck[idx].Upgraded = true
	return true
}

// AddRelic appends a relic (acquisition order matters: hooks fire in it)
// and fires its pickup hook.
func (r *Run) AddRelic(id string) bool {
	def, ok := r.lib.Relic(id)
	if !ok {
		return false
	}
	for _, owned := range r.Relics {
		if owned == id {
			return false
		}
	}
	r.Relics = append(r.Relics, id)
	if def.OnPickup != nil {
		def.OnPickup(r)
	}
	return true
}

// --- relic hook dispatch, always in acquisition order ---

func (r *Run) fireOnCombatStart() {
	for _, id := range r.Relics {
		if def, ok := r.lib.Relic(id); ok && def.OnCombatStart != nil {
			def.OnCombatStart(r)
		}
	}
}

func (r *Run) fireOnTurnStart() {
	for _, id := range r.Relics {
		if def, ok := r.lib.Relic(id); ok && def.OnTurnStart != nil {
			def.OnTurnStart(r)
		}
	}
}

func (r *Run) fireOnCardPlayed(card CardDef) {
	for _, id := range r.Relics {
		if def, ok := r.lib.Relic(id); ok && def.OnCardPlayed != nil {
			def.OnCardPlayed(r, card)
		}
	}
}

func (r *Run) fireOnDamageDealt(target *Participant, amount int) {
	if amount <= 0 {
		return
	}
	for _, id := range r.Relics {
		if def, ok := r.lib.Relic(id); ok && def.OnDamageDealt != nil {
			def.OnDamageDealt(r, target, amount)
		}
	}
}

// --- fusion ---

// FuseCards merges two distinct deck cards into one fused card. Only
// between encounters.
func (r *Run) FuseCards(i, j int) bool {
	if r.State == StateCombat || i == j {
		return false
	}
	if i < 0 || j < 0 || i >= len(r.Deck) || j >= len(r.Deck) {
		return false
	}
	fused, ok := r.lib.FusedCard(r.Deck[i].ID, r.Deck[j].ID)
	if !ok {
		return false
	}
	r.lib.registerCard(fused)
	if i < j {
		i, j = j, i
	}
	// Remove the higher index first so the lower stays valid.
	r.Deck = append(r.Deck[:i], r.Deck[i+1:]...)
	r.Deck = append(r.Deck[:j], r.Deck[j+1:]...)
	r.Deck = append(r.Deck, DeckCard{ID: fused.ID})
	return true
}

// Score folds the run's progress into a single integer.
func (r *Run) Score() int {
	score := r.Floor*r.cfg.ScorePerFloor +
		r.EnemiesDefeated*r.cfg.ScorePerKill +
		r.Ascension*r.cfg.ScorePerAscension
	if r.State == StateVictory {
		score += r.cfg.ScoreVictoryBonus
	}
	return score
}
