// Package domain holds the orders, payment methods and running limits an
// allocation run works on.
package domain

import "github.com/shopspring/decimal"

// Order is a customer order waiting to be paid. Immutable once built.
type Order struct {
	ID         string
	Value      decimal.Decimal
	Promotions []string
}

func NewOrder(id string, value decimal.Decimal, promotions []string) (*Order, error) {
	if id == "" {
		return nil, NewMissingRequiredFieldError("order id")
	}
	if value.IsNegative() {
		return nil, NewInvalidAmountError("order value", value)
	}
	if promotions == nil {
		promotions = []string{}
	}

	return &Order{
		ID:         id,
		Value:      value,
		Promotions: promotions,
	}, nil
}
