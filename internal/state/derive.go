package state

import (
	"github.com/autofi/finance-estimator/pkg/constants"
	"github.com/autofi/finance-estimator/pkg/finance"
)

// Recompute re-derives MonthlyPayment, TotalCost, and EstimateAccuracy from
// a snapshot. It runs at the end of every reducer branch so derived values
// can never drift from the inputs.
//
// On the financed branch the amount financed starts from the vehicle price
// plus add-ons less discounts. A zero term or rate leaves MonthlyPayment at
// 0, which callers display as an incomplete estimate; the loan amount is
// not clamped and goes negative when the buyer overpays up front.
func Recompute(s FinanceState) FinanceState {
	if s.PaymentType == PaymentTypeCash {
		s.MonthlyPayment = 0
		s.TotalCost = s.CarPrice + s.TaxesAndFees.TaxAmount + s.TaxesAndFees.TotalFees +
			s.AddonsTotal - s.Discounts - s.TradeIn.NetValue
		s.EstimateAccuracy = constants.CashAccuracy
		return s
	}

	financedBase := s.CarPrice + s.AddonsTotal - s.Discounts
	loanAmount := finance.LoanAmount(
		financedBase,
		s.LoanDetails.DownPayment,
		s.TradeIn.Value,
		s.TradeIn.OwedAmount,
		s.TaxesAndFees.TaxAmount,
		s.TaxesAndFees.TotalFees,
	)

	if s.LoanDetails.TermMonths > 0 && s.LoanDetails.InterestRate > 0 {
		s.MonthlyPayment = finance.MonthlyPayment(loanAmount, s.LoanDetails.InterestRate, s.LoanDetails.TermMonths)
	} else {
		s.MonthlyPayment = 0
	}

	if s.MonthlyPayment > 0 {
		s.TotalCost = s.LoanDetails.DownPayment + finance.TotalLoanCost(s.MonthlyPayment, s.LoanDetails.TermMonths)
	} else {
		s.TotalCost = s.LoanDetails.DownPayment + loanAmount
	}

	s.EstimateAccuracy = estimateAccuracy(s)
	return s
}

// estimateAccuracy scores how completely the financed estimate is filled
// in. Each entered field adds its fixed weight; the comparison for the
// interest rate is "greater than zero", which coincides with "differs from
// the default" because the default rate is zero.
func estimateAccuracy(s FinanceState) int {
	score := constants.BaseAccuracy
	if s.LoanDetails.DownPayment > 0 {
		score += constants.DownPaymentWeight
	}
	if s.LoanDetails.InterestRate > 0 {
		score += constants.InterestRateWeight
	}
	if s.LoanDetails.TermMonths > 0 {
		score += constants.TermWeight
	}
	if s.TradeIn.Value > 0 {
		score += constants.TradeInWeight
	}
	if s.ZipCode != constants.DefaultZipCode {
		score += constants.ZipCodeWeight
	}
	if s.PaymentType == PaymentTypeOutside {
		score += constants.OutsideChannelWeight
	}
	if score > constants.AccuracyCap {
		score = constants.AccuracyCap
	}
	return score
}
