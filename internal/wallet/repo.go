package wallet

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repository.
type MemoryRepo struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

// NewMemoryRepo creates a new in-memory wallet repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{accounts: make(map[string]Account)}
}

func (r *MemoryRepo) LoadAccount(profile string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a := r.accounts[profile]
	return cloneAccount(a), nil
}

func (r *MemoryRepo) SaveAccount(profile string, a Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[profile] = cloneAccount(a)
	return nil
}

func cloneAccount(a Account) Account {
	if a.Owned == nil {
		return a
	}
	owned := make(map[string]bool, len(a.Owned))
	for k, v := range a.Owned {
		owned[k] = v
	}
	a.Owned = owned
	return a
}

// FileRepo persists wallet accounts to JSON files.
type FileRepo struct {
	mu      sync.RWMutex
	dataDir string
}

// NewFileRepo creates a new file-based wallet repository.
// dataDir is the directory where account files will be stored.
func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &FileRepo{dataDir: dataDir}, nil
}

func (r *FileRepo) filePath(profile string) string {
	return filepath.Join(r.dataDir, profile+".wallet.json")
}

// LoadAccount reads the profile's account, zero-valued when missing or
// unparseable.
func (r *FileRepo) LoadAccount(profile string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filePath(profile))
	if err != nil {
		if os.IsNotExist(err) {
			return Account{}, nil
		}
		return Account{}, err
	}
	var a Account
	if err := json.Unmarshal(data, &a); err != nil {
		return Account{}, nil
	}
	return a, nil
}

func (r *FileRepo) SaveAccount(profile string, a Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.filePath(profile), data, 0644)
}
