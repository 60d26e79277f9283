// Package validation provides boundary validation and input coercion
// utilities. The state engine never defends against malformed input; this
// package is the boundary where text becomes numbers.
package validation

import (
	"fmt"

	"github.com/autofi/finance-estimator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateZipCode checks that a zip code is exactly five ASCII digits.
func ValidateZipCode(zipCode string) error {
	if len(zipCode) != 5 {
		return fmt.Errorf("expected a 5-digit zip code, got %q", zipCode)
	}
	for _, c := range zipCode {
		if c < '0' || c > '9' {
			return fmt.Errorf("expected a 5-digit zip code, got %q", zipCode)
		}
	}
	return nil
}
