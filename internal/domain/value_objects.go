package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent converts a whole-number percentage into a ratio, 15 -> 0.15.
func Percent(p int) decimal.Decimal {
	return decimal.NewFromInt(int64(p)).Div(hundred)
}

// ApplyDiscount returns amount reduced by the given ratio.
func ApplyDiscount(amount, ratio decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Sub(ratio))
}

// MaxAmount returns the larger of a and b.
func MaxAmount(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// MinAmount returns the smaller of a and b.
func MinAmount(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
