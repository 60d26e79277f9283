package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/internal/suggest"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func financedSnapshot() state.FinanceState {
	return state.FinanceState{
		CarPrice:    25000,
		PaymentType: state.PaymentTypeDealer,
		LoanDetails: state.LoanDetails{DownPayment: 2500, TermMonths: 60, InterestRate: 5.9},
		TaxesAndFees: state.TaxesAndFees{
			TaxRate:   6.5,
			TaxAmount: 1625,
			TotalFees: 650,
		},
		ZipCode:          "90210",
		MonthlyPayment:   434.10,
		TotalCost:        28546,
		EstimateAccuracy: 90,
	}
}

func TestPrettyFormat(t *testing.T) {
	output := captureStdout(t, func() {
		PrettyFormat(financedSnapshot(), suggest.Result{})
	})

	if !strings.Contains(output, "--- Purchase estimate ---") {
		t.Errorf("PrettyFormat missing header")
	}
	if !strings.Contains(output, "$25,000.00") {
		t.Errorf("PrettyFormat missing vehicle price")
	}
	if !strings.Contains(output, "Sales tax (6.5%)") {
		t.Errorf("PrettyFormat missing tax rate label")
	}
	if !strings.Contains(output, "$434.10 for 60 months") {
		t.Errorf("PrettyFormat missing monthly payment")
	}
	if !strings.Contains(output, "Confidence       | 90%") {
		t.Errorf("PrettyFormat missing confidence line")
	}
}

func TestPrettyFormatGroupsThousands(t *testing.T) {
	snapshot := financedSnapshot()
	snapshot.TradeIn.NetValue = 2500

	output := captureStdout(t, func() {
		PrettyFormat(snapshot, suggest.Result{})
	})

	if !strings.Contains(output, "Total cost       | $28,546.00") {
		t.Errorf("PrettyFormat missing grouped total cost, got:\n%s", output)
	}
	if !strings.Contains(output, "Trade-in equity  | -$2,500.00") {
		t.Errorf("PrettyFormat missing grouped negative trade-in line, got:\n%s", output)
	}
}

func TestPrettyFormatIncompleteTermsShowsBand(t *testing.T) {
	snapshot := financedSnapshot()
	snapshot.MonthlyPayment = 0
	snapshot.LoanDetails.TermMonths = 0
	snapshot.LoanDetails.InterestRate = 0

	output := captureStdout(t, func() {
		PrettyFormat(snapshot, suggest.Result{})
	})

	if !strings.Contains(output, "estimated over 60 months") {
		t.Errorf("PrettyFormat should render a pre-quote band for an incomplete estimate, got:\n%s", output)
	}
	if !strings.Contains(output, "Monthly payment  | $4") {
		t.Errorf("PrettyFormat band should start around $400 for a $25,000 vehicle, got:\n%s", output)
	}
}

func TestPrettyFormatCashPurchase(t *testing.T) {
	snapshot := financedSnapshot()
	snapshot.PaymentType = state.PaymentTypeCash
	snapshot.MonthlyPayment = 0

	output := captureStdout(t, func() {
		PrettyFormat(snapshot, suggest.Result{})
	})

	if !strings.Contains(output, "Payment          | cash") {
		t.Errorf("PrettyFormat missing cash payment line")
	}
	if strings.Contains(output, "Monthly payment") {
		t.Errorf("PrettyFormat should not show a monthly payment line for cash")
	}
}

func TestPrettyFormatSuggestions(t *testing.T) {
	result := suggest.Result{
		GoalSet:               true,
		GoalField:             state.LockMonthlyPayment,
		Goal:                  400,
		Current:               434.10,
		AdditionalDownPayment: 2046,
		Suggestions: []suggest.Suggestion{
			{Field: "downPayment", Target: 4546, Text: "Increase your down payment to $4,546"},
			{Field: "termMonths", Target: 72, Text: "Extend your loan term to 72 months"},
		},
	}

	output := captureStdout(t, func() {
		PrettyFormat(financedSnapshot(), result)
	})

	if !strings.Contains(output, "Suggestions to reach $400 (current: $434):") {
		t.Errorf("PrettyFormat missing suggestions header, got:\n%s", output)
	}
	if !strings.Contains(output, "- Increase your down payment to $4,546") {
		t.Errorf("PrettyFormat missing down payment suggestion")
	}
	if !strings.Contains(output, "- Extend your loan term to 72 months") {
		t.Errorf("PrettyFormat missing term suggestion")
	}
}

func TestPrettyFormatGoalAchieved(t *testing.T) {
	result := suggest.Result{
		GoalSet:      true,
		GoalField:    state.LockMonthlyPayment,
		Goal:         500,
		Current:      434.10,
		GoalAchieved: true,
	}

	output := captureStdout(t, func() {
		PrettyFormat(financedSnapshot(), result)
	})

	if !strings.Contains(output, "Goal of $500 met (current: $434)") {
		t.Errorf("PrettyFormat missing goal-met line, got:\n%s", output)
	}
}

func TestCsvFormat(t *testing.T) {
	result := suggest.Result{
		GoalSet: true,
		Suggestions: []suggest.Suggestion{
			{Field: "downPayment", Target: 4546, Text: "Increase your down payment to $4,546"},
		},
	}

	output := captureStdout(t, func() {
		CsvFormat(financedSnapshot(), result)
	})

	if !strings.Contains(output, "\"field\",\"value\"") {
		t.Errorf("CsvFormat missing header row")
	}
	if !strings.Contains(output, "\"carPrice\",\"25000.00\"") {
		t.Errorf("CsvFormat missing car price row")
	}
	if !strings.Contains(output, "\"monthlyPayment\",\"434.10\"") {
		t.Errorf("CsvFormat missing monthly payment row")
	}
	if !strings.Contains(output, "\"estimateAccuracy\",\"90\"") {
		t.Errorf("CsvFormat missing accuracy row")
	}
	if !strings.Contains(output, "\"suggestion:downPayment\",\"$4,546.00\"") {
		t.Errorf("CsvFormat missing suggestion row")
	}
}
