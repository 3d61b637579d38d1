package utils

import (
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimals shown for amounts (millimes).
const AmountPrecision = 3

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatAmount formats an amount for display on invoices.
// Example: amount 1500 returns "1500.000"
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, AmountPrecision)
}
