package testhelpers

import (
	"testing"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Amount parses a decimal literal such as "100.00"
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// NewOrder builds a valid order for testing
func NewOrder(t *testing.T, id, value string, promotions ...string) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(id, Amount(t, value), promotions)
	require.NoError(t, err)
	return order
}

// NewMethod builds a valid payment method for testing
func NewMethod(t *testing.T, id string, discount int, limit string) *domain.PaymentMethod {
	t.Helper()
	method, err := domain.NewPaymentMethod(id, discount, Amount(t, limit))
	require.NoError(t, err)
	return method
}

// Points builds the default loyalty points method
func Points(t *testing.T, discount int, limit string) *domain.PaymentMethod {
	t.Helper()
	return NewMethod(t, "PUNKTY", discount, limit)
}

// NewLedger builds a ledger over methods
func NewLedger(t *testing.T, methods ...*domain.PaymentMethod) *domain.Ledger {
	t.Helper()
	ledger, err := domain.NewLedger(methods)
	require.NoError(t, err)
	return ledger
}

// RequireAmount compares decimals by value, so 85 and 85.00 are equal
func RequireAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.Truef(t, Amount(t, expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}
