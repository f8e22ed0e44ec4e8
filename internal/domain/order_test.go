package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order successfully", func(t *testing.T) {
		order, err := domain.NewOrder("ORDER1", dec(t, "100.00"), []string{"mZysk"})

		require.NoError(t, err)
		assert.Equal(t, "ORDER1", order.ID)
		assert.True(t, dec(t, "100").Equal(order.Value))
		assert.Equal(t, []string{"mZysk"}, order.Promotions)
	})

	t.Run("missing promotions become an empty list", func(t *testing.T) {
		order, err := domain.NewOrder("ORDER1", dec(t, "10"), nil)

		require.NoError(t, err)
		assert.NotNil(t, order.Promotions)
		assert.Empty(t, order.Promotions)
	})

	t.Run("accepts a zero value", func(t *testing.T) {
		_, err := domain.NewOrder("ORDER1", decimal.Zero, nil)
		assert.NoError(t, err)
	})

	t.Run("rejects empty order ID", func(t *testing.T) {
		_, err := domain.NewOrder("", dec(t, "10"), nil)

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField))
	})

	t.Run("rejects negative value", func(t *testing.T) {
		_, err := domain.NewOrder("ORDER1", dec(t, "-0.01"), nil)

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidAmount))
	})
}

func TestIsErrorCode(t *testing.T) {
	inner := domain.NewInvalidDiscountError(150)
	err := fmt.Errorf("read: %w", domain.NewInvalidRecordError("pm", 0, inner))

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidRecord))
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidDiscount))
	assert.False(t, domain.IsErrorCode(err, domain.ErrCodeInvalidAmount))
	assert.False(t, domain.IsErrorCode(errors.New("plain"), domain.ErrCodeInvalidAmount))
	assert.False(t, domain.IsErrorCode(nil, domain.ErrCodeInvalidAmount))
}
