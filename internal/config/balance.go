package config

// Balance holds the engine's gameplay tuning knobs. Everything here is a
// plain number so daily modifiers and ascension tiers can scale it.
type Balance struct {
	// Combat
	HandSize     int `yaml:"hand_size" json:"hand_size"`
	BaseEnergy   int `yaml:"base_energy" json:"base_energy"`
	PotionSlots  int `yaml:"potion_slots" json:"potion_slots"`
	ArenaRadius  int `yaml:"arena_radius" json:"arena_radius"`
	MaxHandCards int `yaml:"max_hand_cards" json:"max_hand_cards"`

	// Run start
	StartingHP   int `yaml:"starting_hp" json:"starting_hp"`
	StartingGold int `yaml:"starting_gold" json:"starting_gold"`

	// Rewards
	CombatGoldMin int `yaml:"combat_gold_min" json:"combat_gold_min"`
	CombatGoldMax int `yaml:"combat_gold_max" json:"combat_gold_max"`
	EliteGoldMin  int `yaml:"elite_gold_min" json:"elite_gold_min"`
	EliteGoldMax  int `yaml:"elite_gold_max" json:"elite_gold_max"`
	BossGoldMin   int `yaml:"boss_gold_min" json:"boss_gold_min"`
	BossGoldMax   int `yaml:"boss_gold_max" json:"boss_gold_max"`

	// Rest site
	RestHealPct int `yaml:"rest_heal_pct" json:"rest_heal_pct"`

	// Shop
	CardPriceCommon   int `yaml:"card_price_common" json:"card_price_common"`
	CardPriceUncommon int `yaml:"card_price_uncommon" json:"card_price_uncommon"`
	CardPriceRare     int `yaml:"card_price_rare" json:"card_price_rare"`
	RelicPrice        int `yaml:"relic_price" json:"relic_price"`
	PotionPrice       int `yaml:"potion_price" json:"potion_price"`
	CardRemovePrice   int `yaml:"card_remove_price" json:"card_remove_price"`

	// Score
	ScorePerFloor     int `yaml:"score_per_floor" json:"score_per_floor"`
	ScorePerKill      int `yaml:"score_per_kill" json:"score_per_kill"`
	ScorePerAscension int `yaml:"score_per_ascension" json:"score_per_ascension"`
	ScoreVictoryBonus int `yaml:"score_victory_bonus" json:"score_victory_bonus"`
}

// DefaultBalance returns the shipped tuning.
func DefaultBalance() Balance {
	return Balance{
		HandSize:          5,
		BaseEnergy:        3,
		PotionSlots:       3,
		ArenaRadius:       3,
		MaxHandCards:      10,
		StartingHP:        72,
		StartingGold:      99,
		CombatGoldMin:     10,
		CombatGoldMax:     20,
		EliteGoldMin:      25,
		EliteGoldMax:      40,
		BossGoldMin:       95,
		BossGoldMax:       105,
		RestHealPct:       30,
		CardPriceCommon:   50,
		CardPriceUncommon: 75,
		CardPriceRare:     135,
		RelicPrice:        160,
		PotionPrice:       55,
		CardRemovePrice:   75,
		ScorePerFloor:     10,
		ScorePerKill:      5,
		ScorePerAscension: 25,
		ScoreVictoryBonus: 250,
	}
}
