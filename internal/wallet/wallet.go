// Package wallet keeps the cosmetic-currency ledger. It is a collaborator
// next to the engine, never inside it: combat and run logic read a
// balance at most, they never mint or spend shards themselves.
package wallet

import (
	"errors"
	"sort"
	"sync"
)

var (
	// ErrInsufficientShards rejects a spend larger than the balance.
	ErrInsufficientShards = errors.New("wallet: insufficient shards")
	// ErrUnknownCosmetic rejects a purchase of an unlisted item.
	ErrUnknownCosmetic = errors.New("wallet: unknown cosmetic")
	// ErrAlreadyOwned rejects buying the same cosmetic twice.
	ErrAlreadyOwned = errors.New("wallet: cosmetic already owned")
)

// Account is one profile's ledger state.
type Account struct {
	Shards int             `json:"shards"`
	Owned  map[string]bool `json:"owned,omitempty"`
	Earned int             `json:"earned_total"`
	Spent  int             `json:"spent_total"`
}

// Cosmetic is a purchasable entry in the catalog.
type Cosmetic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// DefaultCatalog is the purchasable cosmetic set.
func DefaultCatalog() []Cosmetic {
	return []Cosmetic{
		{ID: "frame_bronze", Name: "Bronze Frame", Price: 50},
		{ID: "frame_silver", Name: "Silver Frame", Price: 120},
		{ID: "frame_gold", Name: "Gold Frame", Price: 300},
		{ID: "back_umbra", Name: "Umbra Card Back", Price: 80},
		{ID: "back_gleam", Name: "Gleam Card Back", Price: 80},
		{ID: "back_resonant", Name: "Resonant Card Back", Price: 80},
		{ID: "glyph_crown", Name: "Crown Glyph", Price: 200},
	}
}

// Repository persists wallet accounts.
type Repository interface {
	LoadAccount(profile string) (Account, error)
	SaveAccount(profile string, a Account) error
}

// Service is the ledger API. Safe for concurrent use; each operation is
// a load-mutate-save under one lock.
type Service struct {
	mu      sync.Mutex
	repo    Repository
	catalog map[string]Cosmetic
}

// NewService creates a ledger over the given repository and catalog.
// A nil catalog uses DefaultCatalog.
func NewService(repo Repository, catalog []Cosmetic) *Service {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	byID := make(map[string]Cosmetic, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}
	return &Service{repo: repo, catalog: byID}
}

// Balance returns the profile's current shard count.
func (s *Service) Balance(profile string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.repo.LoadAccount(profile)
	if err != nil {
		return 0, err
	}
	return a.Shards, nil
}

// EarnShards credits the profile. Non-positive amounts are inert.
func (s *Service) EarnShards(profile string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.repo.LoadAccount(profile)
	if err != nil {
		return 0, err
	}
	if amount > 0 {
		a.Shards += amount
		a.Earned += amount
		if err := s.repo.SaveAccount(profile, a); err != nil {
			return 0, err
		}
	}
	return a.Shards, nil
}

// SpendShards debits the profile, rejecting overdrafts.
func (s *Service) SpendShards(profile string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.repo.LoadAccount(profile)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return a.Shards, nil
	}
	if a.Shards < amount {
		return a.Shards, ErrInsufficientShards
	}
	a.Shards -= amount
	a.Spent += amount
	if err := s.repo.SaveAccount(profile, a); err != nil {
		return 0, err
	}
	return a.Shards, nil
}

// PurchaseCosmetic spends the catalog price and marks the item owned.
func (s *Service) PurchaseCosmetic(profile, cosmeticID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.catalog[cosmeticID]
	if !ok {
		return ErrUnknownCosmetic
	}
	a, err := s.repo.LoadAccount(profile)
	if err != nil {
		return err
	}
	if a.Owned[cosmeticID] {
		return ErrAlreadyOwned
	}
	if a.Shards < item.Price {
		return ErrInsufficientShards
	}
	a.Shards -= item.Price
	a.Spent += item.Price
	if a.Owned == nil {
		a.Owned = make(map[string]bool)
	}
	a.Owned[cosmeticID] = true
	return s.repo.SaveAccount(profile, a)
}

// Owned returns the profile's purchased cosmetic ids, sorted.
func (s *Service) Owned(profile string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.repo.LoadAccount(profile)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(a.Owned))
	for id := range a.Owned {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// Catalog returns the purchasable items, sorted by id.
func (s *Service) Catalog() []Cosmetic {
	out := make([]Cosmetic, 0, len(s.catalog))
	for _, c := range s.catalog {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
