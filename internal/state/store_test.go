package state_test

import (
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedsDefaults(t *testing.T) {
	snapshot := testutil.NewStore().Snapshot()

	assert.Equal(t, 25000.0, snapshot.CarPrice)
	assert.Equal(t, "90210", snapshot.ZipCode)
	assert.Equal(t, state.PaymentTypeDealer, snapshot.PaymentType)
	assert.Equal(t, 650.0, snapshot.TaxesAndFees.TotalFees)

	// The initial zip cascade has already run.
	assert.Equal(t, 6.5, snapshot.TaxesAndFees.TaxRate)
	assert.InDelta(t, 1625, snapshot.TaxesAndFees.TaxAmount, 0.01)
	assert.InDelta(t, 27275, snapshot.TotalCost, 0.01)
	assert.Equal(t, 60, snapshot.EstimateAccuracy)
}

func TestNewStoreCustomDefaults(t *testing.T) {
	store := state.NewStore(zap.NewNop(), state.Defaults{CarPrice: 35000, ZipCode: "10001"})
	snapshot := store.Snapshot()

	assert.Equal(t, 35000.0, snapshot.CarPrice)
	assert.Equal(t, 6.2, snapshot.TaxesAndFees.TaxRate)
	assert.InDelta(t, 2170, snapshot.TaxesAndFees.TaxAmount, 0.01)
	assert.Equal(t, 65, snapshot.EstimateAccuracy, "non-default zip contributes to accuracy")
}

func TestApplyReturnsIsolatedSnapshot(t *testing.T) {
	store := testutil.NewStore()
	snapshot := store.Apply(state.UpdateSelectedAddons{Addons: map[string]state.Addon{
		"warranty": {ID: "warranty", Name: "Extended warranty", Price: 1200},
	}})

	snapshot.SelectedAddons["mats"] = state.Addon{ID: "mats", Name: "All-weather mats", Price: 150}
	require.Len(t, store.Snapshot().SelectedAddons, 1)
}

func TestApplySerializesConcurrentWriters(t *testing.T) {
	store := testutil.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(price float64) {
			defer wg.Done()
			store.Apply(state.SetCarPrice{Price: price})
		}(float64(20000 + i*100))
	}
	wg.Wait()

	snapshot := store.Snapshot()
	assert.GreaterOrEqual(t, snapshot.CarPrice, 20000.0)
	assert.LessOrEqual(t, snapshot.CarPrice, 24900.0)
}
