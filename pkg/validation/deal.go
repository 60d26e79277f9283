package validation

import (
	"fmt"

	"github.com/autofi/finance-estimator/pkg/constants"
)

// DealInfo carries the fields of a deal description that validation cares
// about. Callers convert their own deal structures into this form.
type DealInfo struct {
	CarPrice     float64
	PaymentType  string
	TermMonths   int
	InterestRate float64
	DownPayment  float64
	TradeInValue float64
	TradeInOwed  float64
	ZipCode      string
	CreditScore  int
	AddonsTotal  float64
	Discounts    float64
}

// ValidateDeal inspects a deal description and returns human-readable
// warnings. Warnings never block an estimate; questionable values are
// still computed and flagged here instead.
func ValidateDeal(deal DealInfo) []string {
	var warnings []string

	if deal.CarPrice < 0 {
		warnings = append(warnings, fmt.Sprintf("vehicle price %.2f is negative", deal.CarPrice))
	}
	switch deal.PaymentType {
	case "", "dealer", "outside", "cash":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown payment type %q; expected dealer, outside, or cash", deal.PaymentType))
	}
	if deal.TermMonths < 0 {
		warnings = append(warnings, fmt.Sprintf("loan term %d months is negative", deal.TermMonths))
	}
	if deal.TermMonths > constants.MaxTermMonths {
		warnings = append(warnings, fmt.Sprintf("loan term %d months exceeds the typical maximum of %d", deal.TermMonths, constants.MaxTermMonths))
	}
	if deal.InterestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("interest rate %.2f%% is negative", deal.InterestRate))
	}
	if deal.DownPayment < 0 {
		warnings = append(warnings, fmt.Sprintf("down payment %.2f is negative", deal.DownPayment))
	}
	if deal.DownPayment > deal.CarPrice && deal.CarPrice > 0 {
		warnings = append(warnings, "down payment exceeds the vehicle price; the amount financed will be negative")
	}
	if deal.TradeInOwed > deal.TradeInValue {
		warnings = append(warnings, "trade-in owes more than its value; net equity will be 0")
	}
	if deal.ZipCode != "" {
		if err := ValidateZipCode(deal.ZipCode); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if deal.CreditScore != 0 && (deal.CreditScore < 300 || deal.CreditScore > 850) {
		warnings = append(warnings, fmt.Sprintf("credit score %d is outside the usual 300-850 range", deal.CreditScore))
	}
	if deal.AddonsTotal < 0 {
		warnings = append(warnings, "add-ons total is negative and will be treated as 0")
	}
	if deal.Discounts < 0 {
		warnings = append(warnings, "discounts are negative and will be treated as 0")
	}

	return warnings
}
