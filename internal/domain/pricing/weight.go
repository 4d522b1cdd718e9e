package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseWeight parses a user-typed weight in kilograms. Cashiers enter weights
// with either a comma or a dot as the decimal separator ("2,5" or "2.5").
// Anything unparsable (empty input, stray characters, doubled separators)
// means "no weight entered" and yields zero; it is never an error.
func ParseWeight(text string) decimal.Decimal {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if normalized == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
