// Package finance provides the pure financial math behind the estimator:
// amortization, loan-amount composition, tax estimation, and the credit
// score to interest rate mapping. All functions are stateless and
// deterministic for given inputs.
package finance

import (
	"math"

	"github.com/autofi/finance-estimator/pkg/constants"
	"github.com/autofi/finance-estimator/pkg/mathutil"
)

// Channel identifies the financing source used for rate lookups.
type Channel string

const (
	// ChannelDealer is financing arranged through the dealer.
	ChannelDealer Channel = "dealer"

	// ChannelOutside is financing from an outside lender.
	ChannelOutside Channel = "outside"
)

// baseTaxRates maps the first digit of a zip code to an estimated combined
// sales tax rate in percent. A coarse placeholder, not a real tax table.
var baseTaxRates = [10]float64{5.5, 6.2, 6.8, 5.7, 6.3, 7.2, 4.9, 6.0, 5.3, 6.5}

// MonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula. Callers must not invoke it with a zero
// term; a zero term signals an incomplete estimate upstream.
func MonthlyPayment(loanAmount, annualRatePercent float64, termMonths int) float64 {
	monthlyRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	if monthlyRate == 0 {
		// For zero interest, simply divide the principal by term
		return loanAmount / float64(termMonths)
	}

	power := math.Pow(1.00+monthlyRate, float64(termMonths))
	return loanAmount * monthlyRate * power / (power - 1.00)
}

// TotalLoanCost returns the sum of all payments over the loan term.
func TotalLoanCost(monthlyPayment float64, termMonths int) float64 {
	return monthlyPayment * float64(termMonths)
}

// LoanAmount composes the amount financed: price plus taxes and fees, less
// the down payment and trade-in equity. The result may be negative when the
// buyer overpays up front; callers do not clamp it.
func LoanAmount(carPrice, downPayment, tradeInValue, tradeInOwed, taxes, fees float64) float64 {
	tradeInEquity := mathutil.Max(0, tradeInValue-tradeInOwed)
	return carPrice + taxes + fees - downPayment - tradeInEquity
}

// EstimateTaxRate estimates a combined sales tax rate in percent from the
// first digit of a zip code, falling back to a flat rate when the zip does
// not start with a digit.
func EstimateTaxRate(zipCode string) float64 {
	if zipCode == "" {
		return constants.FallbackTaxRate
	}
	digit := zipCode[0] - '0'
	if digit > 9 {
		return constants.FallbackTaxRate
	}
	return baseTaxRates[digit]
}

// TaxAmount calculates the sales tax owed on a vehicle price.
func TaxAmount(carPrice, taxRatePercent float64) float64 {
	return mathutil.ApplyPercentage(carPrice, taxRatePercent)
}

// RateForCreditScore suggests an APR in percent for a credit score and
// financing channel. Outside lenders beat the dealer rate in every bucket.
func RateForCreditScore(creditScore int, channel Channel) float64 {
	outside := channel == ChannelOutside
	switch {
	case creditScore >= 720:
		if outside {
			return 4.9
		}
		return 5.9
	case creditScore >= 690:
		if outside {
			return 5.9
		}
		return 6.9
	case creditScore >= 630:
		if outside {
			return 7.9
		}
		return 8.9
	default:
		if outside {
			return 10.9
		}
		return 11.9
	}
}

// EstimateFees estimates registration, documentation, and dealer fees from
// the vehicle price before real figures are entered. The dealer fee scales
// with price up to a cap.
func EstimateFees(carPrice float64) float64 {
	dealerFee := mathutil.Min(carPrice*constants.DealerFeeRate, constants.DealerFeeCap)
	return constants.EstimatedRegistrationFee + constants.EstimatedDocumentFee + dealerFee
}

// PaymentRange bounds a monthly payment and total cost before the buyer has
// entered loan terms.
type PaymentRange struct {
	MinMonthly float64
	MaxMonthly float64
	MinTotal   float64
	MaxTotal   float64
}

// EstimatePaymentRange produces the pre-quote payment band for a vehicle
// price given a down payment percentage, term, and an APR range.
func EstimatePaymentRange(carPrice, downPaymentPercent float64, termMonths int, minRate, maxRate float64) PaymentRange {
	downPayment := mathutil.ApplyPercentage(carPrice, downPaymentPercent)
	loanAmount := carPrice - downPayment

	minMonthly := MonthlyPayment(loanAmount, minRate, termMonths)
	maxMonthly := MonthlyPayment(loanAmount, maxRate, termMonths)

	return PaymentRange{
		MinMonthly: minMonthly,
		MaxMonthly: maxMonthly,
		MinTotal:   TotalLoanCost(minMonthly, termMonths) + downPayment,
		MaxTotal:   TotalLoanCost(maxMonthly, termMonths) + downPayment,
	}
}
