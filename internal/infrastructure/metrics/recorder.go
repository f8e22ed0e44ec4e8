// Package metrics exports allocation outcomes to Prometheus.
package metrics

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OtherMethod labels charges to methods outside the known set, so request
// bodies cannot grow the number of series.
const OtherMethod = "other"

type Recorder struct {
	orders   *prometheus.CounterVec
	charged  *prometheus.CounterVec
	registry *prometheus.Registry
	known    map[string]struct{}
}

var _ application.AllocationRecorder = (*Recorder)(nil)

// NewRecorder registers the allocation counters on a private registry.
// Only methods listed in knownMethods get their own label value.
func NewRecorder(namespace string, knownMethods []string) *Recorder {
	registry := prometheus.NewRegistry()
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_total",
		Help:      "Orders allocated, by payment strategy.",
	}, []string{"strategy"})
	charged := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charged_amount_total",
		Help:      "Amount charged, by payment method.",
	}, []string{"method"})
	registry.MustRegister(orders, charged)

	known := make(map[string]struct{}, len(knownMethods))
	for _, id := range knownMethods {
		known[id] = struct{}{}
	}

	return &Recorder{
		orders:   orders,
		charged:  charged,
		registry: registry,
		known:    known,
	}
}

func (r *Recorder) ObserveAllocation(a domain.Allocation) {
	r.orders.WithLabelValues(string(a.Strategy)).Inc()
	for _, d := range a.Debits() {
		r.charged.WithLabelValues(r.methodLabel(d.MethodID)).Add(d.Amount.InexactFloat64())
	}
}

func (r *Recorder) methodLabel(methodID string) string {
	if _, ok := r.known[methodID]; ok {
		return methodID
	}
	return OtherMethod
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
