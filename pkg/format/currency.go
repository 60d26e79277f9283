// Package format provides currency string formatting for estimator output.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var duplicateDollarSigns = regexp.MustCompile(`\$\$+`)

// Currency returns a whole-dollar currency string with a dollar sign and
// thousands separators (e.g., "-$1,234"). Estimates are displayed without
// cents.
func Currency(amount float64) string {
	rounded := math.Round(math.Abs(amount))
	formatted := groupThousands(fmt.Sprintf("%.0f", rounded))
	if amount < 0 && rounded != 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// PreciseCurrency returns a currency string with two decimal places
// (e.g., "-$1,234.56"), used for logs and CSV output.
func PreciseCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", math.Abs(amount))
	parts := strings.SplitN(formatted, ".", 2)
	intPart := groupThousands(parts[0])
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}
	if amount < 0 {
		return "-$" + intPart + "." + decPart
	}
	return "$" + intPart + "." + decPart
}

// Sanitize collapses duplicated dollar-sign artifacts ("$$1,234") produced
// when calling code concatenates its own symbol in front of an already
// formatted amount.
func Sanitize(s string) string {
	return duplicateDollarSigns.ReplaceAllString(s, "$$")
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
