package main

import (
	"testing"

	"go.uber.org/zap"

	"github.com/autofi/finance-estimator/internal/config"
	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/internal/suggest"
	"github.com/autofi/finance-estimator/pkg/adapters"
	"github.com/autofi/finance-estimator/pkg/validation"
)

// TestExampleConfigEndToEnd loads the example configuration exactly as main()
// does and replays its deal through the store.
func TestExampleConfigEndToEnd(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	conf, err := config.LoadConfiguration("config.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Fatalf("example config should validate cleanly, got %v", warnings)
	}

	if conf.Deal == nil {
		t.Fatal("example config is missing a deal")
	}

	store := state.NewStore(logger, conf.StateDefaults())
	snapshot := adapters.Replay(store, *conf.Deal)

	if snapshot.CarPrice != 28000 {
		t.Errorf("carPrice = %v, want 28000", snapshot.CarPrice)
	}
	if snapshot.TaxesAndFees.TaxRate != 5.7 {
		t.Errorf("taxRate = %v, want 5.7 for zip 30301", snapshot.TaxesAndFees.TaxRate)
	}
	if snapshot.LoanDetails.InterestRate != 5.9 {
		t.Errorf("interestRate = %v, want 5.9 for a 735 dealer deal", snapshot.LoanDetails.InterestRate)
	}
	if snapshot.TradeIn.NetValue != 2500 {
		t.Errorf("tradeIn.netValue = %v, want 2500", snapshot.TradeIn.NetValue)
	}
	if snapshot.MonthlyPayment <= 0 {
		t.Errorf("monthlyPayment = %v, want > 0 with a full term and rate", snapshot.MonthlyPayment)
	}
	if snapshot.EstimateAccuracy != 95 {
		t.Errorf("estimateAccuracy = %v, want 95 for a fully specified deal", snapshot.EstimateAccuracy)
	}

	result := suggest.Resolve(snapshot)
	if !result.GoalSet {
		t.Fatal("expected the locked monthly payment goal to be set")
	}
	if result.GoalField != state.LockMonthlyPayment {
		t.Errorf("goalField = %v, want monthlyPayment", result.GoalField)
	}
	if !result.GoalAchieved && len(result.Suggestions) == 0 {
		t.Error("unmet goal should come with suggestions")
	}

	if warnings := validation.ValidateDeal(adapters.ValidationInfo(*conf.Deal)); len(warnings) != 0 {
		t.Errorf("example deal should produce no warnings, got %v", warnings)
	}
}
