package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func services(t *testing.T) map[string]*Service {
	t.Helper()
	fr, err := NewFileRepo(t.TempDir())
	require.NoError(t, err)
	return map[string]*Service{
		"memory": NewService(NewMemoryRepo(), nil),
		"file":   NewService(fr, nil),
	}
}

func TestEarnAndSpend(t *testing.T) {
	for name, svc := range services(t) {
		t.Run(name, func(t *testing.T) {
			bal, err := svc.EarnShards("p1", 100)
			require.NoError(t, err)
			assert.Equal(t, 100, bal)

			bal, err = svc.SpendShards("p1", 30)
			require.NoError(t, err)
			assert.Equal(t, 70, bal)

			bal, err = svc.Balance("p1")
			require.NoError(t, err)
			assert.Equal(t, 70, bal)
		})
	}
}

func TestOverdraftRejected(t *testing.T) {
	for name, svc := range services(t) {
		t.Run(name, func(t *testing.T) {
			_, err := svc.EarnShards("p1", 20)
			require.NoError(t, err)

			bal, err := svc.SpendShards("p1", 50)
			assert.ErrorIs(t, err, ErrInsufficientShards)
			assert.Equal(t, 20, bal)
		})
	}
}

func TestNonPositiveAmountsInert(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil)

	bal, err := svc.EarnShards("p1", -5)
	require.NoError(t, err)
	assert.Zero(t, bal)

	bal, err = svc.SpendShards("p1", 0)
	require.NoError(t, err)
	assert.Zero(t, bal)
}

func TestPurchaseCosmetic(t *testing.T) {
	for name, svc := range services(t) {
		t.Run(name, func(t *testing.T) {
			_, err := svc.EarnShards("p1", 200)
			require.NoError(t, err)

			require.NoError(t, svc.PurchaseCosmetic("p1", "back_umbra"))

			owned, err := svc.Owned("p1")
			require.NoError(t, err)
			assert.Equal(t, []string{"back_umbra"}, owned)

			bal, err := svc.Balance("p1")
			require.NoError(t, err)
			assert.Equal(t, 120, bal)

			assert.ErrorIs(t, svc.PurchaseCosmetic("p1", "back_umbra"), ErrAlreadyOwned)
			assert.ErrorIs(t, svc.PurchaseCosmetic("p1", "frame_gold"), ErrInsufficientShards)
			assert.ErrorIs(t, svc.PurchaseCosmetic("p1", "no_such_thing"), ErrUnknownCosmetic)
		})
	}
}

func TestAccountsAreIndependent(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil)

	_, err := svc.EarnShards("a", 50)
	require.NoError(t, err)

	bal, err := svc.Balance("b")
	require.NoError(t, err)
	assert.Zero(t, bal)
}
