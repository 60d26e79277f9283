package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/autofi/finance-estimator/internal/state"
	"github.com/autofi/finance-estimator/pkg/validation"
)

// actionEnvelope is the wire form of an action: a type tag plus a payload
// whose shape depends on the type.
type actionEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// looseNumber accepts a JSON number or a numeric string. Invalid text
// coerces to zero at this boundary so the state engine never sees
// non-numeric values.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			*n = 0
			return nil
		}
		*n = looseNumber(validation.ParseAmount(text))
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		*n = 0
		return nil
	}
	*n = looseNumber(value)
	return nil
}

type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	var value looseNumber
	if err := value.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = looseInt(value)
	return nil
}

// looseOptional is looseNumber for optional fields: invalid numeric text
// yields no value at all instead of zero, so garbage in an optional field
// leaves the stored value untouched.
type looseOptional struct {
	value *float64
}

func (o *looseOptional) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		o.value = nil
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			o.value = nil
			return nil
		}
		o.value = validation.ParseOptionalAmount(text)
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		o.value = nil
		return nil
	}
	o.value = &value
	return nil
}

type loanDetailsPayload struct {
	DownPayment        *looseNumber  `json:"downPayment"`
	TermMonths         *looseInt     `json:"termMonths"`
	InterestRate       *looseNumber  `json:"interestRate"`
	MonthlyPaymentGoal looseOptional `json:"monthlyPaymentGoal"`
}

type tradeInPayload struct {
	Value      *looseNumber `json:"value"`
	OwedAmount *looseNumber `json:"owedAmount"`
}

type taxesAndFeesPayload struct {
	TaxRate         *looseNumber `json:"taxRate"`
	TaxAmount       *looseNumber `json:"taxAmount"`
	RegistrationFee *looseNumber `json:"registrationFee"`
	DocumentFee     *looseNumber `json:"documentFee"`
	DealerFee       *looseNumber `json:"dealerFee"`
	OtherFees       *looseNumber `json:"otherFees"`
}

type addonPayload struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price looseNumber `json:"price"`
}

type lockPayload struct {
	Field string      `json:"field"`
	Value looseNumber `json:"value"`
}

// decodeAction maps an envelope onto a state action. The second return is
// false when the action type is unknown; per the action contract unknown
// types are a no-op, not an error. Payloads that cannot be decoded at all
// return an error.
func decodeAction(envelope actionEnvelope) (state.Action, bool, error) {
	switch envelope.Type {
	case state.ActionSetCarPrice:
		var price looseNumber
		if err := unmarshalPayload(envelope.Payload, &price); err != nil {
			return nil, true, err
		}
		return state.SetCarPrice{Price: float64(price)}, true, nil

	case state.ActionSetPaymentType:
		var raw string
		if err := unmarshalPayload(envelope.Payload, &raw); err != nil {
			return nil, true, err
		}
		paymentType := state.PaymentType(raw)
		if !paymentType.Valid() {
			return nil, true, fmt.Errorf("invalid payment type %q", raw)
		}
		return state.SetPaymentType{Type: paymentType}, true, nil

	case state.ActionSetLoanDetails:
		var payload loanDetailsPayload
		if err := unmarshalPayload(envelope.Payload, &payload); err != nil {
			return nil, true, err
		}
		return state.SetLoanDetails{Patch: state.LoanDetailsPatch{
			DownPayment:        floatPtr(payload.DownPayment),
			TermMonths:         intPtr(payload.TermMonths),
			InterestRate:       floatPtr(payload.InterestRate),
			MonthlyPaymentGoal: payload.MonthlyPaymentGoal.value,
		}}, true, nil

	case state.ActionSetTradeIn:
		var payload tradeInPayload
		if err := unmarshalPayload(envelope.Payload, &payload); err != nil {
			return nil, true, err
		}
		return state.SetTradeIn{Patch: state.TradeInPatch{
			Value:      floatPtr(payload.Value),
			OwedAmount: floatPtr(payload.OwedAmount),
		}}, true, nil

	case state.ActionSetTaxesAndFees:
		var payload taxesAndFeesPayload
		if err := unmarshalPayload(envelope.Payload, &payload); err != nil {
			return nil, true, err
		}
		return state.SetTaxesAndFees{Patch: state.TaxesAndFeesPatch{
			TaxRate:         floatPtr(payload.TaxRate),
			TaxAmount:       floatPtr(payload.TaxAmount),
			RegistrationFee: floatPtr(payload.RegistrationFee),
			DocumentFee:     floatPtr(payload.DocumentFee),
			DealerFee:       floatPtr(payload.DealerFee),
			OtherFees:       floatPtr(payload.OtherFees),
		}}, true, nil

	case state.ActionSetZipCode:
		var zip string
		if err := unmarshalPayload(envelope.Payload, &zip); err != nil {
			return nil, true, err
		}
		if err := validation.ValidateZipCode(zip); err != nil {
			return nil, true, err
		}
		return state.SetZipCode{Zip: zip}, true, nil

	case state.ActionSetCreditScore:
		var score looseInt
		if err := unmarshalPayload(envelope.Payload, &score); err != nil {
			return nil, true, err
		}
		return state.SetCreditScore{Score: int(score)}, true, nil

	case state.ActionUpdateAddonsTotal:
		var amount looseNumber
		if err := unmarshalPayload(envelope.Payload, &amount); err != nil {
			return nil, true, err
		}
		return state.UpdateAddonsTotal{Amount: float64(amount)}, true, nil

	case state.ActionUpdateDiscounts:
		var amount looseNumber
		if err := unmarshalPayload(envelope.Payload, &amount); err != nil {
			return nil, true, err
		}
		return state.UpdateDiscounts{Amount: float64(amount)}, true, nil

	case state.ActionUpdateSelectedAddons:
		var payload map[string]addonPayload
		if err := unmarshalPayload(envelope.Payload, &payload); err != nil {
			return nil, true, err
		}
		addons := make(map[string]state.Addon, len(payload))
		for id, addon := range payload {
			if addon.ID == "" {
				addon.ID = id
			}
			addons[id] = state.Addon{ID: addon.ID, Name: addon.Name, Price: float64(addon.Price)}
		}
		return state.UpdateSelectedAddons{Addons: addons}, true, nil

	case state.ActionLockField:
		if isNullPayload(envelope.Payload) {
			return state.LockField{}, true, nil
		}
		var payload lockPayload
		if err := unmarshalPayload(envelope.Payload, &payload); err != nil {
			return nil, true, err
		}
		field := state.LockableField(payload.Field)
		if field != state.LockMonthlyPayment && field != state.LockTotalCost {
			return nil, true, fmt.Errorf("invalid lockable field %q", payload.Field)
		}
		return state.LockField{Target: &state.LockTarget{Field: field, Value: float64(payload.Value)}}, true, nil

	case state.ActionResetForm:
		return state.ResetForm{}, true, nil

	default:
		return nil, false, nil
	}
}

func unmarshalPayload(payload json.RawMessage, target interface{}) error {
	if isNullPayload(payload) {
		return fmt.Errorf("missing action payload")
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("malformed action payload: %w", err)
	}
	return nil
}

func isNullPayload(payload json.RawMessage) bool {
	return len(payload) == 0 || strings.TrimSpace(string(payload)) == "null"
}

func floatPtr(n *looseNumber) *float64 {
	if n == nil {
		return nil
	}
	value := float64(*n)
	return &value
}

func intPtr(n *looseInt) *int {
	if n == nil {
		return nil
	}
	value := int(*n)
	return &value
}
