package application

import "github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"

// AllocationRecorder is the port for allocation metrics.
type AllocationRecorder interface {
	ObserveAllocation(allocation domain.Allocation)
}

// NopRecorder discards every observation.
type NopRecorder struct{}

func (NopRecorder) ObserveAllocation(domain.Allocation) {}
