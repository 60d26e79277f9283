package state

import (
	"sync"

	"go.uber.org/zap"
)

// Store owns one FinanceState for the lifetime of an estimating session.
// All mutations go through Apply, which serializes transitions behind a
// mutex: the reducer's invariants assume atomic, non-interleaved updates,
// so the store enforces a single-writer discipline even when shared.
type Store struct {
	mu     sync.Mutex
	logger *zap.Logger
	state  FinanceState
}

// NewStore builds a store seeded from the defaults and runs the initial
// zip-code cascade so the first snapshot already carries an estimated tax
// rate and derived metrics.
func NewStore(logger *zap.Logger, defaults Defaults) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	seeded := initialState(defaults)
	seeded = Reduce(seeded, SetZipCode{Zip: seeded.ZipCode})

	return &Store{logger: logger, state: seeded}
}

// Apply runs one action through the reducer and returns the resulting
// snapshot. The returned state is a copy; callers cannot reach the owned
// aggregate through it.
func (st *Store) Apply(action Action) FinanceState {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.state = Reduce(st.state, action)

	st.logger.Debug("applied action",
		zap.String("op", "state.Apply"),
		zap.String("action", ActionName(action)),
		zap.Float64("monthlyPayment", st.state.MonthlyPayment),
		zap.Float64("totalCost", st.state.TotalCost),
		zap.Int("estimateAccuracy", st.state.EstimateAccuracy),
	)

	return st.state.Clone()
}

// Snapshot returns a copy of the current state.
func (st *Store) Snapshot() FinanceState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.Clone()
}
