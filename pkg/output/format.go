// Package output provides utilities for formatting and displaying purchase
// estimates.
package output

import (
	"fmt"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/internal/suggest"
	"github.com/autofi/finance-estimator/pkg/constants"
	"github.com/autofi/finance-estimator/pkg/finance"
	"github.com/autofi/finance-estimator/pkg/format"
	"github.com/autofi/finance-estimator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable
// estimate summary. A financed estimate with incomplete terms renders a
// pre-quote payment band instead of a single monthly payment.
func PrettyFormat(snapshot state.FinanceState, result suggest.Result) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Purchase estimate ---\n")
	printLine(p, "Vehicle price", snapshot.CarPrice)
	if !mathutil.IsZero(snapshot.AddonsTotal) {
		printLine(p, "Add-ons", snapshot.AddonsTotal)
	}
	if !mathutil.IsZero(snapshot.Discounts) {
		printLine(p, "Discounts", -snapshot.Discounts)
	}
	if !mathutil.IsZero(snapshot.TradeIn.NetValue) {
		printLine(p, "Trade-in equity", -snapshot.TradeIn.NetValue)
	}
	printLine(p, fmt.Sprintf("Sales tax (%.1f%%)", snapshot.TaxesAndFees.TaxRate), snapshot.TaxesAndFees.TaxAmount)
	printLine(p, "Fees", snapshot.TaxesAndFees.TotalFees)

	if snapshot.PaymentType == state.PaymentTypeCash {
		fmt.Printf("Payment          | cash\n")
	} else {
		printLine(p, "Down payment", snapshot.LoanDetails.DownPayment)
		if snapshot.MonthlyPayment > 0 {
			_, _ = p.Printf("Monthly payment  | $%.2f for %d months\n",
				snapshot.MonthlyPayment, snapshot.LoanDetails.TermMonths)
		} else {
			band := finance.EstimatePaymentRange(snapshot.CarPrice,
				constants.PreQuoteDownPaymentPercent, constants.PreQuoteTermMonths,
				constants.PreQuoteMinRate, constants.PreQuoteMaxRate)
			_, _ = p.Printf("Monthly payment  | $%.2f to $%.2f estimated over %d months (enter a term and rate to refine)\n",
				band.MinMonthly, band.MaxMonthly, constants.PreQuoteTermMonths)
		}
	}

	printLine(p, "Total cost", snapshot.TotalCost)
	fmt.Printf("Confidence       | %d%%\n", snapshot.EstimateAccuracy)

	printSuggestions(result)
}

func printLine(p *message.Printer, label string, amount float64) {
	rounded := mathutil.Round(amount)
	if rounded < 0 {
		_, _ = p.Printf("%-16s | -$%.2f\n", label, -rounded)
		return
	}
	_, _ = p.Printf("%-16s | $%.2f\n", label, rounded)
}

func printSuggestions(result suggest.Result) {
	if !result.GoalSet {
		return
	}
	if result.GoalAchieved {
		fmt.Printf("\nGoal of %s met (current: %s)\n",
			format.Currency(result.Goal), format.Currency(result.Current))
		return
	}
	fmt.Printf("\nSuggestions to reach %s (current: %s):\n",
		format.Currency(result.Goal), format.Currency(result.Current))
	for _, suggestion := range result.Suggestions {
		fmt.Printf("  - %s\n", format.Sanitize(suggestion.Text))
	}
}

// CsvFormat outputs the estimate in comma-separated value format.
func CsvFormat(snapshot state.FinanceState, result suggest.Result) {
	fmt.Printf("\"field\",\"value\"\n")
	rows := [][2]string{
		{"carPrice", csvAmount(snapshot.CarPrice)},
		{"paymentType", string(snapshot.PaymentType)},
		{"downPayment", csvAmount(snapshot.LoanDetails.DownPayment)},
		{"termMonths", fmt.Sprintf("%d", snapshot.LoanDetails.TermMonths)},
		{"interestRate", fmt.Sprintf("%.2f", snapshot.LoanDetails.InterestRate)},
		{"tradeInNetValue", csvAmount(snapshot.TradeIn.NetValue)},
		{"taxRate", fmt.Sprintf("%.2f", snapshot.TaxesAndFees.TaxRate)},
		{"taxAmount", csvAmount(snapshot.TaxesAndFees.TaxAmount)},
		{"totalFees", csvAmount(snapshot.TaxesAndFees.TotalFees)},
		{"addonsTotal", csvAmount(snapshot.AddonsTotal)},
		{"discounts", csvAmount(snapshot.Discounts)},
		{"monthlyPayment", csvAmount(snapshot.MonthlyPayment)},
		{"totalCost", csvAmount(snapshot.TotalCost)},
		{"estimateAccuracy", fmt.Sprintf("%d", snapshot.EstimateAccuracy)},
	}
	for _, row := range rows {
		fmt.Printf("\"%s\",\"%s\"\n", row[0], row[1])
	}
	if result.GoalSet && !result.GoalAchieved {
		for _, suggestion := range result.Suggestions {
			fmt.Printf("\"suggestion:%s\",\"%s\"\n", suggestion.Field, format.PreciseCurrency(suggestion.Target))
		}
	}
}

func csvAmount(amount float64) string {
	return fmt.Sprintf("%.2f", mathutil.Round(amount))
}
