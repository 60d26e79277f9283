// Package suggest computes heuristic adjustment suggestions for a payment
// or total-cost goal. The resolver is a read-only projection over a state
// snapshot; it never mutates anything and never performs an exact solve.
package suggest

import (
	"fmt"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/pkg/constants"
	"github.com/autofi/finance-estimator/pkg/format"
)

// Suggestion is one proposed parameter adjustment.
type Suggestion struct {
	Field  string  `json:"field"`
	Target float64 `json:"target"`
	Text   string  `json:"text"`
}

// Result is the resolver output for one snapshot. When no goal is set,
// GoalSet is false and everything else is zero. When the goal is already
// met, GoalAchieved is true and no suggestions are emitted.
type Result struct {
	GoalSet               bool                `json:"goalSet"`
	GoalField             state.LockableField `json:"goalField,omitempty"`
	Goal                  float64             `json:"goal,omitempty"`
	Current               float64             `json:"current,omitempty"`
	GoalAchieved          bool                `json:"goalAchieved"`
	AdditionalDownPayment float64             `json:"additionalDownPayment,omitempty"`
	Suggestions           []Suggestion        `json:"suggestions,omitempty"`
}

// Resolve projects suggestions from a snapshot. The shortfall for a
// monthly-payment goal is spread over the term as an additional down
// payment — a linear approximation that ignores interest-rate convexity.
func Resolve(s state.FinanceState) Result {
	field, goal, ok := goalFor(s)
	if !ok {
		return Result{}
	}

	current := s.MonthlyPayment
	if field == state.LockTotalCost {
		current = s.TotalCost
	}

	result := Result{
		GoalSet:   true,
		GoalField: field,
		Goal:      goal,
		Current:   current,
	}

	if current <= goal {
		result.GoalAchieved = true
		return result
	}

	additional := current - goal
	if field == state.LockMonthlyPayment {
		additional = (current - goal) * float64(s.LoanDetails.TermMonths)
	}
	result.AdditionalDownPayment = additional

	downTarget := s.LoanDetails.DownPayment + additional
	result.Suggestions = append(result.Suggestions, Suggestion{
		Field:  "downPayment",
		Target: downTarget,
		Text:   "Increase your down payment to " + format.Currency(downTarget),
	})

	if s.LoanDetails.TermMonths < constants.MaxTermMonths {
		termTarget := s.LoanDetails.TermMonths + constants.TermExtensionStep
		if termTarget > constants.MaxTermMonths {
			termTarget = constants.MaxTermMonths
		}
		result.Suggestions = append(result.Suggestions, Suggestion{
			Field:  "termMonths",
			Target: float64(termTarget),
			Text:   fmt.Sprintf("Extend your loan term to %d months", termTarget),
		})
	}

	priceTarget := s.CarPrice - additional
	result.Suggestions = append(result.Suggestions, Suggestion{
		Field:  "carPrice",
		Target: priceTarget,
		Text:   "Look for vehicles around " + format.Currency(priceTarget),
	})

	return result
}

// goalFor picks the active goal: an explicit field lock wins, otherwise a
// standalone monthly payment goal from the loan details.
func goalFor(s state.FinanceState) (state.LockableField, float64, bool) {
	if s.LockedField != "" && s.LockedValue > 0 {
		return s.LockedField, s.LockedValue, true
	}
	if s.LoanDetails.MonthlyPaymentGoal > 0 {
		return state.LockMonthlyPayment, s.LoanDetails.MonthlyPaymentGoal, true
	}
	return "", 0, false
}
