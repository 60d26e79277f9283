package state

// Action is the closed set of state mutations. Concrete action types live
// in this package only; anything else passed to Reduce is a no-op.
type Action interface {
	isAction()
}

// Wire names for the action set, shared by the HTTP API and logs.
const (
	ActionSetCarPrice          = "SET_CAR_PRICE"
	ActionSetPaymentType       = "SET_PAYMENT_TYPE"
	ActionSetLoanDetails       = "SET_LOAN_DETAILS"
	ActionSetTradeIn           = "SET_TRADE_IN"
	ActionSetTaxesAndFees      = "SET_TAXES_AND_FEES"
	ActionSetZipCode           = "SET_ZIP_CODE"
	ActionSetCreditScore       = "SET_CREDIT_SCORE"
	ActionUpdateAddonsTotal    = "UPDATE_ADDONS_TOTAL"
	ActionUpdateDiscounts      = "UPDATE_DISCOUNTS"
	ActionUpdateSelectedAddons = "UPDATE_SELECTED_ADDONS"
	ActionLockField            = "LOCK_FIELD"
	ActionResetForm            = "RESET_FORM"
)

// SetCarPrice replaces the base vehicle price.
type SetCarPrice struct {
	Price float64
}

// SetPaymentType switches the financing channel. When a credit score is
// already set and the new channel is financed, the interest rate is
// re-suggested for the new channel.
type SetPaymentType struct {
	Type PaymentType
}

// LoanDetailsPatch is a partial update of LoanDetails; nil fields are left
// untouched. Merging is a shallow field-by-field overwrite.
type LoanDetailsPatch struct {
	DownPayment        *float64
	TermMonths         *int
	InterestRate       *float64
	MonthlyPaymentGoal *float64
}

// SetLoanDetails merges a partial payload into the loan details.
type SetLoanDetails struct {
	Patch LoanDetailsPatch
}

// TradeInPatch is a partial update of the trade-in figures. NetValue is
// never patched directly; it is re-derived on every trade-in change.
type TradeInPatch struct {
	Value      *float64
	OwedAmount *float64
}

// SetTradeIn merges a partial payload into the trade-in and re-derives the
// net equity.
type SetTradeIn struct {
	Patch TradeInPatch
}

// TaxesAndFeesPatch is a partial update of taxes and fees. TotalFees is
// never patched directly; it is re-derived from the four fee fields.
type TaxesAndFeesPatch struct {
	TaxRate         *float64
	TaxAmount       *float64
	RegistrationFee *float64
	DocumentFee     *float64
	DealerFee       *float64
	OtherFees       *float64
}

// SetTaxesAndFees merges a partial payload into the taxes and fees and
// re-derives the fee total.
type SetTaxesAndFees struct {
	Patch TaxesAndFeesPatch
}

// SetZipCode replaces the zip code and re-estimates the tax rate and amount.
type SetZipCode struct {
	Zip string
}

// SetCreditScore records the buyer's credit score and, on a financed
// purchase, re-suggests the interest rate for the current channel.
type SetCreditScore struct {
	Score int
}

// UpdateAddonsTotal replaces the aggregate add-on amount.
type UpdateAddonsTotal struct {
	Amount float64
}

// UpdateDiscounts replaces the aggregate discount amount.
type UpdateDiscounts struct {
	Amount float64
}

// UpdateSelectedAddons replaces the selected add-on map wholesale.
type UpdateSelectedAddons struct {
	Addons map[string]Addon
}

// LockTarget is a goal for a derived value.
type LockTarget struct {
	Field LockableField
	Value float64
}

// LockField sets or clears the goal lock. A nil target clears it; setting
// a second field replaces the first, so at most one field is locked.
type LockField struct {
	Target *LockTarget
}

// ResetForm restores the documented defaults while preserving the current
// car price and zip code.
type ResetForm struct{}

func (SetCarPrice) isAction()          {}
func (SetPaymentType) isAction()       {}
func (SetLoanDetails) isAction()       {}
func (SetTradeIn) isAction()           {}
func (SetTaxesAndFees) isAction()      {}
func (SetZipCode) isAction()           {}
func (SetCreditScore) isAction()       {}
func (UpdateAddonsTotal) isAction()    {}
func (UpdateDiscounts) isAction()      {}
func (UpdateSelectedAddons) isAction() {}
func (LockField) isAction()            {}
func (ResetForm) isAction()            {}

// ActionName returns the wire name for an action, or "UNKNOWN" for action
// values this package does not recognize.
func ActionName(action Action) string {
	switch action.(type) {
	case SetCarPrice:
		return ActionSetCarPrice
	case SetPaymentType:
		return ActionSetPaymentType
	case SetLoanDetails:
		return ActionSetLoanDetails
	case SetTradeIn:
		return ActionSetTradeIn
	case SetTaxesAndFees:
		return ActionSetTaxesAndFees
	case SetZipCode:
		return ActionSetZipCode
	case SetCreditScore:
		return ActionSetCreditScore
	case UpdateAddonsTotal:
		return ActionUpdateAddonsTotal
	case UpdateDiscounts:
		return ActionUpdateDiscounts
	case UpdateSelectedAddons:
		return ActionUpdateSelectedAddons
	case LockField:
		return ActionLockField
	case ResetForm:
		return ActionResetForm
	default:
		return "UNKNOWN"
	}
}
