package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string  `yaml:"version" json:"version"`
	Balance Balance `yaml:"balance" json:"balance"`
}

func (c *Config) ApplyDefaults() {
	def := DefaultBalance()
	if c.Balance.HandSize <= 0 {
		c.Balance.HandSize = def.HandSize
	}
	if c.Balance.BaseEnergy <= 0 {
		c.Balance.BaseEnergy = def.BaseEnergy
	}
	if c.Balance.PotionSlots <= 0 {
		c.Balance.PotionSlots = def.PotionSlots
	}
	if c.Balance.ArenaRadius <= 0 {
		c.Balance.ArenaRadius = def.ArenaRadius
	}
	if c.Balance.MaxHandCards <= 0 {
		c.Balance.MaxHandCards = def.MaxHandCards
	}
	if c.Balance.StartingHP <= 0 {
		c.Balance.StartingHP = def.StartingHP
	}
	if c.Balance.StartingGold <= 0 {
		c.Balance.StartingGold = def.StartingGold
	}
	if c.Balance.RestHealPct <= 0 {
		c.Balance.RestHealPct = def.RestHealPct
	}
	if c.Balance.CombatGoldMax <= 0 {
		c.Balance.CombatGoldMin = def.CombatGoldMin
		c.Balance.CombatGoldMax = def.CombatGoldMax
	}
	if c.Balance.EliteGoldMax <= 0 {
		c.Balance.EliteGoldMin = def.EliteGoldMin
		c.Balance.EliteGoldMax = def.EliteGoldMax
	}
	if c.Balance.BossGoldMax <= 0 {
		c.Balance.BossGoldMin = def.BossGoldMin
		c.Balance.BossGoldMax = def.BossGoldMax
	}
	if c.Balance.CardPriceCommon <= 0 {
		c.Balance.CardPriceCommon = def.CardPriceCommon
	}
	if c.Balance.CardPriceUncommon <= 0 {
		c.Balance.CardPriceUncommon = def.CardPriceUncommon
	}
	if c.Balance.CardPriceRare <= 0 {
		c.Balance.CardPriceRare = def.CardPriceRare
	}
	if c.Balance.RelicPrice <= 0 {
		c.Balance.RelicPrice = def.RelicPrice
	}
	if c.Balance.PotionPrice <= 0 {
		c.Balance.PotionPrice = def.PotionPrice
	}
	if c.Balance.CardRemovePrice <= 0 {
		c.Balance.CardRemovePrice = def.CardRemovePrice
	}
	if c.Balance.ScorePerFloor <= 0 {
		c.Balance.ScorePerFloor = def.ScorePerFloor
	}
	if c.Balance.ScorePerKill <= 0 {
		c.Balance.ScorePerKill = def.ScorePerKill
	}
	if c.Balance.ScorePerAscension <= 0 {
		c.Balance.ScorePerAscension = def.ScorePerAscension
	}
	if c.Balance.ScoreVictoryBonus <= 0 {
		c.Balance.ScoreVictoryBonus = def.ScoreVictoryBonus
	}
}

// Default returns a fully populated Config.
func Default() *Config {
	c := &Config{Version: "1"}
	c.ApplyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
