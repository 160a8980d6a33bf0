package money

import "fmt"

// FormatMinor renders an amount of minor units (cents) as a decimal string,
// e.g. -100050 -> "-1000.50". Used for display payloads only; arithmetic stays
// in integer minor units everywhere.
func FormatMinor(value int64) string {
	negative := value < 0
	if negative {
		value = -value
	}
	whole := value / 100
	frac := value % 100
	formatted := fmt.Sprintf("%d.%02d", whole, frac)
	if negative {
		return "-" + formatted
	}
	return formatted
}
