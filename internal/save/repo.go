// Package save persists run snapshots and cross-run progression.
package save

import (
	"sync"

	"shatteredmirror/internal/game"
)

// MetaRecord is the progression that survives individual runs.
type MetaRecord struct {
	BestScore         int `json:"best_score"`
	Wins              int `json:"wins"`
	Runs              int `json:"runs"`
	AscensionUnlocked int `json:"ascension_unlocked"`
}

// RecordResult folds a finished run into the record: counters, best
// score, and the next ascension tier on a win.
func (m *MetaRecord) RecordResult(score, ascension int, won bool) {
	m.Runs++
	if won {
		m.Wins++
		if ascension >= m.AscensionUnlocked {
			m.AscensionUnlocked = ascension + 1
		}
	}
	if score > m.BestScore {
		m.BestScore = score
	}
}

// Repository is the interface for run persistence. Runs are saved
// between nodes; a missing save reports ok=false, not an error.
type Repository interface {
	// SaveRun stores the profile's in-progress run.
	SaveRun(profile string, s game.Snapshot) error

	// LoadRun returns the profile's in-progress run, if any.
	LoadRun(profile string) (game.Snapshot, bool, error)

	// ClearRun discards the profile's in-progress run. Meta is untouched.
	ClearRun(profile string) error

	// SaveMeta stores the profile's cross-run progression.
	SaveMeta(profile string, m MetaRecord) error

	// LoadMeta returns the profile's progression, zero-valued if absent.
	LoadMeta(profile string) (MetaRecord, error)
}

// MemoryRepo is an in-memory implementation of Repository.
type MemoryRepo struct {
	mu   sync.RWMutex
	runs map[string]game.Snapshot
	meta map[string]MetaRecord
}

// NewMemoryRepo creates a new in-memory save repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		runs: make(map[string]game.Snapshot),
		meta: make(map[string]MetaRecord),
	}
}

func (r *MemoryRepo) SaveRun(profile string, s game.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[profile] = s
	return nil
}

func (r *MemoryRepo) LoadRun(profile string) (game.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.runs[profile]
	return s, ok, nil
}

func (r *MemoryRepo) ClearRun(profile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runs, profile)
	return nil
}

func (r *MemoryRepo) SaveMeta(profile string, m MetaRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meta[profile] = m
	return nil
}

func (r *MemoryRepo) LoadMeta(profile string) (MetaRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.meta[profile], nil
}
