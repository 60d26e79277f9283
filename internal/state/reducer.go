package state

import (
	"github.com/autofi/finance-estimator/pkg/finance"
	"github.com/autofi/finance-estimator/pkg/mathutil"
)

// Reduce applies one action to a state snapshot and returns the next
// snapshot with all derived metrics recomputed. It is a total function:
// every known action is handled, and unknown action values return the
// state unchanged rather than an error. The input is never mutated.
func Reduce(s FinanceState, action Action) FinanceState {
	switch a := action.(type) {
	case SetCarPrice:
		s.CarPrice = a.Price

	case SetPaymentType:
		s.PaymentType = a.Type
		if s.CreditScore > 0 && a.Type != PaymentTypeCash {
			s.LoanDetails.InterestRate = finance.RateForCreditScore(s.CreditScore, a.Type.Channel())
		}

	case SetLoanDetails:
		s.LoanDetails = mergeLoanDetails(s.LoanDetails, a.Patch)

	case SetTradeIn:
		tradeIn := s.TradeIn
		if a.Patch.Value != nil {
			tradeIn.Value = *a.Patch.Value
		}
		if a.Patch.OwedAmount != nil {
			tradeIn.OwedAmount = *a.Patch.OwedAmount
		}
		tradeIn.NetValue = mathutil.Max(0, tradeIn.Value-tradeIn.OwedAmount)
		s.TradeIn = tradeIn

	case SetTaxesAndFees:
		s.TaxesAndFees = mergeTaxesAndFees(s.TaxesAndFees, a.Patch)

	case SetZipCode:
		taxRate := finance.EstimateTaxRate(a.Zip)
		s.ZipCode = a.Zip
		s.TaxesAndFees.TaxRate = taxRate
		s.TaxesAndFees.TaxAmount = finance.TaxAmount(s.CarPrice, taxRate)

	case SetCreditScore:
		s.CreditScore = a.Score
		if a.Score > 0 && s.PaymentType != PaymentTypeCash {
			s.LoanDetails.InterestRate = finance.RateForCreditScore(a.Score, s.PaymentType.Channel())
		}

	case UpdateAddonsTotal:
		s.AddonsTotal = mathutil.Max(0, a.Amount)

	case UpdateDiscounts:
		s.Discounts = mathutil.Max(0, a.Amount)

	case UpdateSelectedAddons:
		s.SelectedAddons = cloneAddons(a.Addons)

	case LockField:
		if a.Target == nil {
			s.LockedField = ""
			s.LockedValue = 0
		} else {
			s.LockedField = a.Target.Field
			s.LockedValue = a.Target.Value
		}

	case ResetForm:
		s = initialState(Defaults{CarPrice: s.CarPrice, ZipCode: s.ZipCode})

	default:
		return s
	}

	return Recompute(s)
}

func mergeLoanDetails(details LoanDetails, patch LoanDetailsPatch) LoanDetails {
	if patch.DownPayment != nil {
		details.DownPayment = *patch.DownPayment
	}
	if patch.TermMonths != nil {
		details.TermMonths = *patch.TermMonths
	}
	if patch.InterestRate != nil {
		details.InterestRate = *patch.InterestRate
	}
	if patch.MonthlyPaymentGoal != nil {
		details.MonthlyPaymentGoal = *patch.MonthlyPaymentGoal
	}
	return details
}

func mergeTaxesAndFees(fees TaxesAndFees, patch TaxesAndFeesPatch) TaxesAndFees {
	if patch.TaxRate != nil {
		fees.TaxRate = *patch.TaxRate
	}
	if patch.TaxAmount != nil {
		fees.TaxAmount = *patch.TaxAmount
	}
	if patch.RegistrationFee != nil {
		fees.RegistrationFee = *patch.RegistrationFee
	}
	if patch.DocumentFee != nil {
		fees.DocumentFee = *patch.DocumentFee
	}
	if patch.DealerFee != nil {
		fees.DealerFee = *patch.DealerFee
	}
	if patch.OtherFees != nil {
		fees.OtherFees = *patch.OtherFees
	}
	fees.TotalFees = fees.RegistrationFee + fees.DocumentFee + fees.DealerFee + fees.OtherFees
	return fees
}
