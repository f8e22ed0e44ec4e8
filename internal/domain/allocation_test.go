package domain_test

import (
	"testing"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocation_Debits(t *testing.T) {
	t.Run("lists points before the card", func(t *testing.T) {
		a := domain.Allocation{
			Strategy:       domain.StrategyPartialPoints,
			PointsMethodID: "PUNKTY",
			PointsAmount:   dec(t, "15"),
			CardMethodID:   "mZysk",
			CardAmount:     dec(t, "30"),
		}

		debits := a.Debits()

		require.Len(t, debits, 2)
		assert.Equal(t, "PUNKTY", debits[0].MethodID)
		assert.Equal(t, "mZysk", debits[1].MethodID)
	})

	t.Run("unpaid allocation has no debits", func(t *testing.T) {
		a := domain.Unpaid("ORDER1")

		assert.False(t, a.IsPaid())
		assert.Equal(t, domain.StrategyNone, a.Strategy)
		assert.Empty(t, a.Debits())
	})
}

func TestPercentAndDiscount(t *testing.T) {
	assert.True(t, dec(t, "0.15").Equal(domain.Percent(15)))
	assert.True(t, dec(t, "160").Equal(domain.ApplyDiscount(dec(t, "200"), domain.Percent(20))))
	assert.True(t, dec(t, "1").Equal(domain.MinAmount(dec(t, "1"), dec(t, "2"))))
	assert.True(t, dec(t, "1").Equal(domain.MinAmount(dec(t, "2"), dec(t, "1"))))
	assert.True(t, dec(t, "2").Equal(domain.MaxAmount(dec(t, "1"), dec(t, "2"))))
	assert.True(t, dec(t, "0").Equal(domain.MaxAmount(dec(t, "-5"), dec(t, "0"))))
}
