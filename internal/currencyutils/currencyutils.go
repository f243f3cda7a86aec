// Package currencyutils provides the amount parsing and formatting used
// throughout the application. Amounts are always handled as decimals;
// float64 never enters financial math.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses the textual amount of an export cell into a decimal
// value. An empty string parses to zero: blank cells carry no amount and
// must not abort a run. Any other string that does not survive
// standardization is an error.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts the export's currency notation ("$1,234.56")
// to a plain decimal string. Only the dollar sign and the thousands commas
// are removed, plus surrounding whitespace; anything else is left for the
// decimal parser to accept or reject.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.ReplaceAll(amountStr, "$", "")
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	return amountStr
}

// FormatUSD renders an amount the way the summary reports display money:
// a dollar sign, comma-grouped integer digits, and exactly two decimal
// places. Negative amounts keep the minus sign after the dollar sign,
// e.g. "$-1,234.50".
func FormatUSD(amount decimal.Decimal) string {
	return "$" + groupThousands(amount.StringFixed(2))
}

// groupThousands inserts commas into the integer digits of a fixed-point
// decimal string. A leading sign stays in front of the first group.
func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") || strings.HasPrefix(fixed, "+") {
		sign, fixed = fixed[:1], fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
