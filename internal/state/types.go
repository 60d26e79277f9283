// Package state implements the financial state store: a single FinanceState
// aggregate mutated exclusively through a closed set of actions, with every
// transition followed by a recomputation of the derived payment metrics.
package state

import (
	"github.com/autofi/finance-estimator/pkg/constants"
	"github.com/autofi/finance-estimator/pkg/finance"
)

// PaymentType selects the financing channel for a purchase.
type PaymentType string

const (
	// PaymentTypeDealer finances through the dealer.
	PaymentTypeDealer PaymentType = "dealer"

	// PaymentTypeOutside finances through an outside lender.
	PaymentTypeOutside PaymentType = "outside"

	// PaymentTypeCash pays in full with no financing.
	PaymentTypeCash PaymentType = "cash"
)

// Valid reports whether p is one of the known payment types.
func (p PaymentType) Valid() bool {
	return p == PaymentTypeDealer || p == PaymentTypeOutside || p == PaymentTypeCash
}

// Channel maps a payment type onto a rate-lookup channel. Cash purchases
// never look up rates; they fall through to the dealer channel.
func (p PaymentType) Channel() finance.Channel {
	if p == PaymentTypeOutside {
		return finance.ChannelOutside
	}
	return finance.ChannelDealer
}

// LockableField names a derived value a buyer can set a goal against.
type LockableField string

const (
	// LockMonthlyPayment targets the monthly payment.
	LockMonthlyPayment LockableField = "monthlyPayment"

	// LockTotalCost targets the total purchase cost.
	LockTotalCost LockableField = "totalCost"
)

// LoanDetails holds the financing terms entered by the buyer.
// MonthlyPaymentGoal is optional; zero means no goal is set.
type LoanDetails struct {
	DownPayment        float64 `json:"downPayment"`
	TermMonths         int     `json:"termMonths"`
	InterestRate       float64 `json:"interestRate"`
	MonthlyPaymentGoal float64 `json:"monthlyPaymentGoal,omitempty"`
}

// TradeIn holds the trade-in vehicle figures. NetValue is derived: the
// value less the amount still owed, floored at zero.
type TradeIn struct {
	Value      float64 `json:"value"`
	OwedAmount float64 `json:"owedAmount"`
	NetValue   float64 `json:"netValue"`
}

// TaxesAndFees holds tax and fee figures. TotalFees is derived from the
// four individual fees.
type TaxesAndFees struct {
	TaxRate         float64 `json:"taxRate"`
	TaxAmount       float64 `json:"taxAmount"`
	RegistrationFee float64 `json:"registrationFee"`
	DocumentFee     float64 `json:"documentFee"`
	DealerFee       float64 `json:"dealerFee"`
	OtherFees       float64 `json:"otherFees"`
	TotalFees       float64 `json:"totalFees"`
}

// Addon is a selected accessory or package.
type Addon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FinanceState is the single aggregate owned by the Store. MonthlyPayment,
// TotalCost, and EstimateAccuracy are fully derived and recomputed after
// every action; a zero MonthlyPayment on a financed purchase means the
// inputs are incomplete, not that an error occurred.
type FinanceState struct {
	CarPrice         float64          `json:"carPrice"`
	PaymentType      PaymentType      `json:"paymentType"`
	LoanDetails      LoanDetails      `json:"loanDetails"`
	TradeIn          TradeIn          `json:"tradeIn"`
	TaxesAndFees     TaxesAndFees     `json:"taxesAndFees"`
	ZipCode          string           `json:"zipCode"`
	CreditScore      int              `json:"creditScore,omitempty"`
	AddonsTotal      float64          `json:"addonsTotal"`
	Discounts        float64          `json:"discounts"`
	SelectedAddons   map[string]Addon `json:"selectedAddons"`
	MonthlyPayment   float64          `json:"monthlyPayment"`
	TotalCost        float64          `json:"totalCost"`
	EstimateAccuracy int              `json:"estimateAccuracy"`
	LockedField      LockableField    `json:"lockedField,omitempty"`
	LockedValue      float64          `json:"lockedValue,omitempty"`
}

// Clone returns a copy of the state that shares nothing with the original,
// so callers can hold snapshots without aliasing the store's map.
func (s FinanceState) Clone() FinanceState {
	clone := s
	clone.SelectedAddons = cloneAddons(s.SelectedAddons)
	return clone
}

func cloneAddons(addons map[string]Addon) map[string]Addon {
	cloned := make(map[string]Addon, len(addons))
	for id, addon := range addons {
		cloned[id] = addon
	}
	return cloned
}

// Defaults configures the starting values that vary between deployments.
// Zero values fall back to the package defaults.
type Defaults struct {
	CarPrice float64
	ZipCode  string
}

// initialState builds the state a session starts from: dealer financing, no
// loan terms, and the default fee schedule. Tax rate and amount stay zero
// until the first zip-code cascade runs.
func initialState(defaults Defaults) FinanceState {
	carPrice := defaults.CarPrice
	if carPrice == 0 {
		carPrice = constants.DefaultCarPrice
	}
	zipCode := defaults.ZipCode
	if zipCode == "" {
		zipCode = constants.DefaultZipCode
	}

	registration := constants.DefaultRegistrationFee
	document := constants.DefaultDocumentFee
	dealer := constants.DefaultDealerFee

	return FinanceState{
		CarPrice:    carPrice,
		PaymentType: PaymentTypeDealer,
		TaxesAndFees: TaxesAndFees{
			RegistrationFee: registration,
			DocumentFee:     document,
			DealerFee:       dealer,
			TotalFees:       registration + document + dealer,
		},
		ZipCode:          zipCode,
		EstimateAccuracy: constants.BaseAccuracy,
		SelectedAddons:   map[string]Addon{},
	}
}
