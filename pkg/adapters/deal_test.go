package adapters_test

import (
	"testing"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/pkg/adapters"
	"github.com/autofi/finance-estimator/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealActionsOrdering(t *testing.T) {
	deal := adapters.Deal{
		CarPrice:     testutil.Float(28000),
		PaymentType:  "outside",
		ZipCode:      "30301",
		CreditScore:  testutil.Int(735),
		InterestRate: testutil.Float(4.25),
		TermMonths:   testutil.Int(60),
		TaxRate:      testutil.Float(8.0),
	}

	actions := adapters.DealActions(deal)
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = state.ActionName(action)
	}

	// Price lands before the zip cascade, credit score before the quoted
	// rate, and fee overrides after the cascade.
	assert.Equal(t, []string{
		state.ActionSetCarPrice,
		state.ActionSetPaymentType,
		state.ActionSetZipCode,
		state.ActionSetCreditScore,
		state.ActionSetLoanDetails,
		state.ActionSetTaxesAndFees,
	}, names)
}

func TestDealActionsEmptyDeal(t *testing.T) {
	assert.Empty(t, adapters.DealActions(adapters.Deal{}))
}

func TestDealActionsSkipsInvalidPaymentType(t *testing.T) {
	actions := adapters.DealActions(adapters.Deal{PaymentType: "crypto"})
	assert.Empty(t, actions)
}

func TestDealActionsSkipsInvalidLockField(t *testing.T) {
	actions := adapters.DealActions(adapters.Deal{
		LockField: "carPrice",
		LockValue: testutil.Float(20000),
	})
	assert.Empty(t, actions)
}

func TestReplayQuotedRateOverridesSuggestion(t *testing.T) {
	snapshot := adapters.Replay(testutil.NewStore(), adapters.Deal{
		CreditScore:  testutil.Int(735),
		InterestRate: testutil.Float(4.25),
	})
	assert.Equal(t, 4.25, snapshot.LoanDetails.InterestRate)
}

func TestReplayFeeOverrideSurvivesZipCascade(t *testing.T) {
	snapshot := adapters.Replay(testutil.NewStore(), adapters.Deal{
		CarPrice: testutil.Float(30000),
		ZipCode:  "30301",
		TaxRate:  testutil.Float(8.0),
	})

	assert.Equal(t, 8.0, snapshot.TaxesAndFees.TaxRate)
	assert.InDelta(t, 2400, snapshot.TaxesAndFees.TaxAmount, 0.01)
}

func TestReplayFullDeal(t *testing.T) {
	snapshot := adapters.Replay(testutil.NewStore(), adapters.Deal{
		CarPrice:     testutil.Float(28000),
		PaymentType:  "dealer",
		ZipCode:      "30301",
		DownPayment:  testutil.Float(3000),
		TermMonths:   testutil.Int(60),
		InterestRate: testutil.Float(5.9),
		TradeInValue: testutil.Float(4000),
		TradeInOwed:  testutil.Float(1500),
		Addons: []state.Addon{
			{Name: "Extended warranty", Price: 1200},
			{ID: "mats", Name: "All-weather mats", Price: 150},
		},
		Discounts: testutil.Float(500),
		LockField: "monthlyPayment",
		LockValue: testutil.Float(400),
	})

	assert.Equal(t, 28000.0, snapshot.CarPrice)
	assert.Equal(t, 5.7, snapshot.TaxesAndFees.TaxRate)
	assert.Equal(t, 2500.0, snapshot.TradeIn.NetValue)
	assert.Equal(t, 1350.0, snapshot.AddonsTotal)
	assert.Equal(t, 500.0, snapshot.Discounts)
	assert.Equal(t, state.LockMonthlyPayment, snapshot.LockedField)
	assert.Equal(t, 400.0, snapshot.LockedValue)
	assert.Greater(t, snapshot.MonthlyPayment, 0.0)

	// Addons without an ID get generated ones; explicit IDs are kept.
	require.Len(t, snapshot.SelectedAddons, 2)
	assert.Contains(t, snapshot.SelectedAddons, "mats")
	assert.Contains(t, snapshot.SelectedAddons, "addon-1")
}

func TestValidationInfoFlattensDeal(t *testing.T) {
	info := adapters.ValidationInfo(adapters.Deal{
		CarPrice:    testutil.Float(28000),
		PaymentType: "dealer",
		ZipCode:     "30301",
		TermMonths:  testutil.Int(60),
		CreditScore: testutil.Int(735),
		Addons: []state.Addon{
			{Name: "Extended warranty", Price: 1200},
			{Name: "All-weather mats", Price: 150},
		},
	})

	assert.Equal(t, 28000.0, info.CarPrice)
	assert.Equal(t, "dealer", info.PaymentType)
	assert.Equal(t, 60, info.TermMonths)
	assert.Equal(t, 735, info.CreditScore)
	assert.Equal(t, 1350.0, info.AddonsTotal)
}
