package utils

import (
	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of minor units per major unit, as a power of ten.
const MinorUnitExponent = 2

// MinorToMajor converts an amount in minor currency units to a decimal in major units.
// Example: 123456 returns 1234.56
func MinorToMajor(amount int64) decimal.Decimal {
	return decimal.New(amount, -MinorUnitExponent)
}

// FormatMinorUnits formats a minor-unit amount with fixed precision.
// Example: 10000 returns "100.00", 5 returns "0.05"
func FormatMinorUnits(amount int64) string {
	return MinorToMajor(amount).StringFixed(MinorUnitExponent)
}
