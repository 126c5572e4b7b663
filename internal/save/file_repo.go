package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"shatteredmirror/internal/game"
)

// FileRepo persists runs and meta records to JSON files, one pair per
// profile under the data directory.
type FileRepo struct {
	mu      sync.RWMutex
	dataDir string
}

// NewFileRepo creates a new file-based save repository.
// dataDir is the directory where save files will be stored.
func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &FileRepo{dataDir: dataDir}, nil
}

func (r *FileRepo) runPath(profile string) string {
	return filepath.Join(r.dataDir, profile+".run.json")
}

func (r *FileRepo) metaPath(profile string) string {
	return filepath.Join(r.dataDir, profile+".meta.json")
}

func (r *FileRepo) SaveRun(profile string, s game.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.runPath(profile), data, 0644)
}

// LoadRun reads the profile's run file. Missing or corrupt files report
// no save rather than an error: a bad save must never brick a profile.
func (r *FileRepo) LoadRun(profile string) (game.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.runPath(profile))
	if err != nil {
		if os.IsNotExist(err) {
			return game.Snapshot{}, false, nil
		}
		return game.Snapshot{}, false, err
	}

	var s game.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return game.Snapshot{}, false, nil
	}
	return s, true, nil
}

func (r *FileRepo) ClearRun(profile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.runPath(profile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (r *FileRepo) SaveMeta(profile string, m MetaRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.metaPath(profile), data, 0644)
}

func (r *FileRepo) LoadMeta(profile string) (MetaRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.metaPath(profile))
	if err != nil {
		if os.IsNotExist(err) {
			return MetaRecord{}, nil
		}
		return MetaRecord{}, err
	}

	var m MetaRecord
	if err := json.Unmarshal(data, &m); err != nil {
		return MetaRecord{}, nil
	}
	return m, nil
}
