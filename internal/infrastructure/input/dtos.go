package input

import "github.com/shopspring/decimal"

// OrderRecord is the wire shape of an order. Value may be a JSON number or a
// numeric string.
type OrderRecord struct {
	ID         string          `json:"id" validate:"required"`
	Value      decimal.Decimal `json:"value"`
	Promotions []string        `json:"promotions,omitempty" validate:"omitempty,dive,required"`
}

// PaymentMethodRecord is the wire shape of a payment method. Discount must
// hold a whole number of percent.
type PaymentMethodRecord struct {
	ID       string          `json:"id" validate:"required"`
	Discount decimal.Decimal `json:"discount"`
	Limit    decimal.Decimal `json:"limit"`
}
