// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/autofi/finance-estimator/internal/state"
	"go.uber.org/zap"
)

// NewStore builds a store with the built-in defaults and a no-op logger.
func NewStore() *state.Store {
	return state.NewStore(zap.NewNop(), state.Defaults{})
}

// Snapshot applies the given actions in order to a fresh store and returns
// the resulting state.
func Snapshot(actions ...state.Action) state.FinanceState {
	store := NewStore()
	for _, action := range actions {
		store.Apply(action)
	}
	return store.Snapshot()
}

// Float returns a pointer to the given value, for building patch payloads.
func Float(value float64) *float64 {
	return &value
}

// Int returns a pointer to the given value, for building patch payloads.
func Int(value int) *int {
	return &value
}
