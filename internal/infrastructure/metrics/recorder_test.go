package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveAllocation(t *testing.T) {
	recorder := metrics.NewRecorder("allocator", []string{"PUNKTY", "mZysk"})

	recorder.ObserveAllocation(domain.Allocation{
		OrderID:        "ORDER1",
		Strategy:       domain.StrategyPartialPoints,
		PointsMethodID: "PUNKTY",
		PointsAmount:   decimal.RequireFromString("15"),
		CardMethodID:   "mZysk",
		CardAmount:     decimal.RequireFromString("30.5"),
		Cost:           decimal.RequireFromString("45.5"),
	})
	recorder.ObserveAllocation(domain.Unpaid("ORDER2"))

	count, err := testutil.GatherAndCount(recorder.Registry(), "allocator_orders_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `allocator_orders_total{strategy="PARTIAL_POINTS"} 1`)
	assert.Contains(t, body, `allocator_orders_total{strategy="NONE"} 1`)
	assert.Contains(t, body, `allocator_charged_amount_total{method="PUNKTY"} 15`)
	assert.Contains(t, body, `allocator_charged_amount_total{method="mZysk"} 30.5`)
}

func TestRecorder_SeparateRegistries(t *testing.T) {
	a := metrics.NewRecorder("allocator", nil)
	b := metrics.NewRecorder("allocator", nil)

	a.ObserveAllocation(domain.Unpaid("ORDER1"))

	count, err := testutil.GatherAndCount(b.Registry())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRecorder_UnknownMethodsShareOneLabel(t *testing.T) {
	recorder := metrics.NewRecorder("allocator", []string{"PUNKTY"})

	for _, id := range []string{"card-1", "card-2", "card-3"} {
		recorder.ObserveAllocation(domain.Allocation{
			OrderID:      "ORDER-" + id,
			Strategy:     domain.StrategyFallbackCard,
			CardMethodID: id,
			CardAmount:   decimal.RequireFromString("10"),
			Cost:         decimal.RequireFromString("10"),
		})
	}

	count, err := testutil.GatherAndCount(recorder.Registry(), "allocator_charged_amount_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `allocator_charged_amount_total{method="other"} 30`)
	assert.NotContains(t, rec.Body.String(), "card-1")
}
