package domain

import "github.com/shopspring/decimal"

// Strategy names the way an order ended up being paid
type Strategy string

const (
	StrategyNone          Strategy = "NONE"
	StrategyFullPoints    Strategy = "FULL_POINTS"
	StrategyPartialPoints Strategy = "PARTIAL_POINTS"
	StrategyPromoCard     Strategy = "PROMO_CARD"
	StrategyFallbackCard  Strategy = "FALLBACK_CARD"
)

// Allocation is the payment decision for a single order. At most one card
// is charged. PointsAmount and CardAmount add up to Cost, except on a
// partial points payment whose points exceed the discounted total: all of
// them are spent and the card is charged nothing.
type Allocation struct {
	OrderID  string
	Strategy Strategy

	PointsMethodID string
	PointsAmount   decimal.Decimal

	CardMethodID string
	CardAmount   decimal.Decimal

	Cost decimal.Decimal
}

// Debit is a single charge against a payment method
type Debit struct {
	MethodID string
	Amount   decimal.Decimal
}

// Unpaid is the allocation of an order no strategy could pay.
func Unpaid(orderID string) Allocation {
	return Allocation{
		OrderID:  orderID,
		Strategy: StrategyNone,
	}
}

func (a Allocation) IsPaid() bool {
	return a.Strategy != StrategyNone
}

// Debits lists the non-zero charges of the allocation, points first.
func (a Allocation) Debits() []Debit {
	debits := make([]Debit, 0, 2)
	if a.PointsMethodID != "" && a.PointsAmount.IsPositive() {
		debits = append(debits, Debit{MethodID: a.PointsMethodID, Amount: a.PointsAmount})
	}
	if a.CardMethodID != "" && a.CardAmount.IsPositive() {
		debits = append(debits, Debit{MethodID: a.CardMethodID, Amount: a.CardAmount})
	}
	return debits
}
