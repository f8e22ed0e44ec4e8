package domain

import "github.com/shopspring/decimal"

// Role tells the allocator how a payment method may be used
type Role string

const (
	// RolePoints marks the loyalty points balance; it can pay an order in full or in part.
	RolePoints Role = "POINTS"
	// RoleCard marks every other method; it only ever pays an order in full.
	RoleCard Role = "CARD"
)

// PaymentMethod is a source of funds with a spending limit for the whole run.
type PaymentMethod struct {
	ID       string
	Discount int
	Limit    decimal.Decimal
}

func NewPaymentMethod(id string, discount int, limit decimal.Decimal) (*PaymentMethod, error) {
	if id == "" {
		return nil, NewMissingRequiredFieldError("payment method id")
	}
	if discount < 0 || discount > 100 {
		return nil, NewInvalidDiscountError(discount)
	}
	if limit.IsNegative() {
		return nil, NewInvalidAmountError("limit", limit)
	}

	return &PaymentMethod{
		ID:       id,
		Discount: discount,
		Limit:    limit,
	}, nil
}

// DiscountedPrice is what paying amount in full with this method costs.
func (m *PaymentMethod) DiscountedPrice(amount decimal.Decimal) decimal.Decimal {
	return ApplyDiscount(amount, Percent(m.Discount))
}

// FindPaymentMethod returns the first method with the given id, or nil.
func FindPaymentMethod(methods []*PaymentMethod, id string) *PaymentMethod {
	for _, m := range methods {
		if m.ID == id {
			return m
		}
	}
	return nil
}
