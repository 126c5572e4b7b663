package game

import (
	"hash/fnv"
	"time"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/worldmap"
)

// DailySeed derives the shared seed for a calendar date: every player on
// the same UTC day generates the same map and encounters.
func DailySeed(t time.Time) uint32 {
	h := fnv.New32a()
	h.Write([]byte(t.UTC().Format("2006-01-02")))
	return h.Sum32()
}

// PuzzleSeed keys the fixed single-combat scenario off the same calendar.
func PuzzleSeed(t time.Time) uint32 {
	h := fnv.New32a()
	h.Write([]byte("puzzle-" + t.UTC().Format("2006-01-02")))
	return h.Sum32()
}

// NewDailyRun builds the shared daily-challenge run for a date.
func NewDailyRun(t time.Time, lib *Library, bal config.Balance, ascension int) *Run {
	return NewRun(DailySeed(t), lib, bal, Options{Ascension: ascension, Daily: true})
}

// NewPuzzleRun builds the date's puzzle: one elite fight, no map.
func NewPuzzleRun(t time.Time, lib *Library, bal config.Balance) *Run {
	r := NewRun(PuzzleSeed(t), lib, bal, Options{})
	r.Act = 1 + r.Rng.Intn(3)
	r.NodeType = worldmap.NodeElite
	if !r.StartEncounter(r.GenerateEliteEnemies(), nil) {
		r.StartEncounter(r.GenerateCombatEnemies(), nil)
	}
	return r
}
