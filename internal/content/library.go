// Package content defines the game's data tables: cards, enemies,
// relics, potions, events, ascension tiers, daily modifiers and fusion
// recipes. Everything here is declarative; the rules live in the game
// package.
package content

import (
	"shatteredmirror/internal/game"
)

// DefaultLibrary assembles the complete content set.
func DefaultLibrary() *game.Library {
	lib := &game.Library{
		Cards:       Cards(),
		Enemies:     Enemies(),
		Relics:      Relics(),
		Potions:     Potions(),
		Events:      Events(),
		Ascensions:  Ascensions(),
		DailyMods:   DailyMods(),
		StarterDeck: StarterDeck(),
		Fusions:     FusionRecipes(),
	}
	lib.BuildIndexes()
	return lib
}
