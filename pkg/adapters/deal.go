// Package adapters converts externally supplied deal descriptions into the
// action sequences the state store consumes.
package adapters

import (
	"fmt"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/pkg/finance"
	"github.com/autofi/finance-estimator/pkg/validation"
)

// Deal describes a purchase in one document, as loaded from the YAML config
// or posted to the one-shot estimate endpoint. Pointer fields distinguish
// "not provided" from an explicit zero.
type Deal struct {
	CarPrice           *float64      `yaml:"carPrice" json:"carPrice,omitempty"`
	PaymentType        string        `yaml:"paymentType" json:"paymentType,omitempty"`
	DownPayment        *float64      `yaml:"downPayment" json:"downPayment,omitempty"`
	TermMonths         *int          `yaml:"termMonths" json:"termMonths,omitempty"`
	InterestRate       *float64      `yaml:"interestRate" json:"interestRate,omitempty"`
	MonthlyPaymentGoal *float64      `yaml:"monthlyPaymentGoal" json:"monthlyPaymentGoal,omitempty"`
	TradeInValue       *float64      `yaml:"tradeInValue" json:"tradeInValue,omitempty"`
	TradeInOwed        *float64      `yaml:"tradeInOwed" json:"tradeInOwed,omitempty"`
	ZipCode            string        `yaml:"zipCode" json:"zipCode,omitempty"`
	CreditScore        *int          `yaml:"creditScore" json:"creditScore,omitempty"`
	TaxRate            *float64      `yaml:"taxRate" json:"taxRate,omitempty"`
	RegistrationFee    *float64      `yaml:"registrationFee" json:"registrationFee,omitempty"`
	DocumentFee        *float64      `yaml:"documentFee" json:"documentFee,omitempty"`
	DealerFee          *float64      `yaml:"dealerFee" json:"dealerFee,omitempty"`
	OtherFees          *float64      `yaml:"otherFees" json:"otherFees,omitempty"`
	Addons             []state.Addon `yaml:"addons" json:"addons,omitempty"`
	Discounts          *float64      `yaml:"discounts" json:"discounts,omitempty"`
	LockField          string        `yaml:"lockField" json:"lockField,omitempty"`
	LockValue          *float64      `yaml:"lockValue" json:"lockValue,omitempty"`
}

// DealActions translates a deal into an ordered action sequence. Ordering
// matters: the price must land before the zip-code cascade estimates taxes,
// the credit score before any explicit interest rate so a quoted rate
// overrides the suggested one, and fee overrides after the zip cascade so
// they are not clobbered by it.
func DealActions(deal Deal) []state.Action {
	var actions []state.Action

	if deal.CarPrice != nil {
		actions = append(actions, state.SetCarPrice{Price: *deal.CarPrice})
	}
	if deal.PaymentType != "" {
		paymentType := state.PaymentType(deal.PaymentType)
		if paymentType.Valid() {
			actions = append(actions, state.SetPaymentType{Type: paymentType})
		}
	}
	if deal.ZipCode != "" {
		actions = append(actions, state.SetZipCode{Zip: deal.ZipCode})
	}
	if deal.CreditScore != nil {
		actions = append(actions, state.SetCreditScore{Score: *deal.CreditScore})
	}

	loanPatch := state.LoanDetailsPatch{
		DownPayment:        deal.DownPayment,
		TermMonths:         deal.TermMonths,
		InterestRate:       deal.InterestRate,
		MonthlyPaymentGoal: deal.MonthlyPaymentGoal,
	}
	if loanPatch != (state.LoanDetailsPatch{}) {
		actions = append(actions, state.SetLoanDetails{Patch: loanPatch})
	}

	if deal.TradeInValue != nil || deal.TradeInOwed != nil {
		actions = append(actions, state.SetTradeIn{Patch: state.TradeInPatch{
			Value:      deal.TradeInValue,
			OwedAmount: deal.TradeInOwed,
		}})
	}

	feePatch := state.TaxesAndFeesPatch{
		TaxRate:         deal.TaxRate,
		RegistrationFee: deal.RegistrationFee,
		DocumentFee:     deal.DocumentFee,
		DealerFee:       deal.DealerFee,
		OtherFees:       deal.OtherFees,
	}
	if feePatch != (state.TaxesAndFeesPatch{}) {
		actions = append(actions, state.SetTaxesAndFees{Patch: feePatch})
	}

	if len(deal.Addons) > 0 {
		selected := make(map[string]state.Addon, len(deal.Addons))
		total := 0.0
		for i, addon := range deal.Addons {
			if addon.ID == "" {
				addon.ID = fmt.Sprintf("addon-%d", i+1)
			}
			selected[addon.ID] = addon
			total += addon.Price
		}
		actions = append(actions,
			state.UpdateSelectedAddons{Addons: selected},
			state.UpdateAddonsTotal{Amount: total},
		)
	}

	if deal.Discounts != nil {
		actions = append(actions, state.UpdateDiscounts{Amount: *deal.Discounts})
	}

	if deal.LockField != "" && deal.LockValue != nil {
		field := state.LockableField(deal.LockField)
		if field == state.LockMonthlyPayment || field == state.LockTotalCost {
			actions = append(actions, state.LockField{Target: &state.LockTarget{
				Field: field,
				Value: *deal.LockValue,
			}})
		}
	}

	return actions
}

// Replay applies a deal to a store and returns the final snapshot. An
// explicit tax rate is followed by a tax amount computed against the settled
// vehicle price, the same pairing the interactive callers dispatch.
func Replay(store *state.Store, deal Deal) state.FinanceState {
	for _, action := range DealActions(deal) {
		store.Apply(action)
	}
	if deal.TaxRate != nil {
		amount := finance.TaxAmount(store.Snapshot().CarPrice, *deal.TaxRate)
		store.Apply(state.SetTaxesAndFees{Patch: state.TaxesAndFeesPatch{TaxAmount: &amount}})
	}
	return store.Snapshot()
}

// ValidationInfo converts a deal into the flat form the validation package
// inspects.
func ValidationInfo(deal Deal) validation.DealInfo {
	info := validation.DealInfo{
		PaymentType: deal.PaymentType,
		ZipCode:     deal.ZipCode,
	}
	if deal.CarPrice != nil {
		info.CarPrice = *deal.CarPrice
	}
	if deal.TermMonths != nil {
		info.TermMonths = *deal.TermMonths
	}
	if deal.InterestRate != nil {
		info.InterestRate = *deal.InterestRate
	}
	if deal.DownPayment != nil {
		info.DownPayment = *deal.DownPayment
	}
	if deal.TradeInValue != nil {
		info.TradeInValue = *deal.TradeInValue
	}
	if deal.TradeInOwed != nil {
		info.TradeInOwed = *deal.TradeInOwed
	}
	if deal.CreditScore != nil {
		info.CreditScore = *deal.CreditScore
	}
	if deal.Discounts != nil {
		info.Discounts = *deal.Discounts
	}
	for _, addon := range deal.Addons {
		info.AddonsTotal += addon.Price
	}
	return info
}
