package validation

import (
	"strconv"
	"strings"
)

// ParseAmount converts free-form numeric text into a monetary amount.
// Currency symbols and separators are stripped; anything that still fails
// to parse coerces to 0 so the state engine never sees non-numeric input.
func ParseAmount(text string) float64 {
	cleaned := cleanNumericText(text)
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseOptionalAmount is ParseAmount for optional fields (e.g. a monthly
// payment goal): empty or unparseable text yields nil rather than zero.
func ParseOptionalAmount(text string) *float64 {
	cleaned := cleanNumericText(text)
	if cleaned == "" {
		return nil
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &value
}

func cleanNumericText(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return cleaned
}
