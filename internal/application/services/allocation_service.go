package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/google/uuid"
)

// AllocationResult is the outcome of one run
type AllocationResult struct {
	RunID       string
	Allocations []domain.Allocation
	Spent       *domain.SpentTotals
}

// Unpaid counts the orders no strategy could pay.
func (r *AllocationResult) Unpaid() int {
	n := 0
	for _, a := range r.Allocations {
		if !a.IsPaid() {
			n++
		}
	}
	return n
}

type AllocationService struct {
	allocator *OrderAllocator
	recorder  application.AllocationRecorder
	logger    *slog.Logger
}

func NewAllocationService(
	allocator *OrderAllocator,
	recorder application.AllocationRecorder,
	logger *slog.Logger,
) *AllocationService {
	if recorder == nil {
		recorder = application.NopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AllocationService{
		allocator: allocator,
		recorder:  recorder,
		logger:    logger,
	}
}

// Allocate pays every order of the command in sequence against a fresh
// ledger. Orders nobody can pay are skipped and reported as unpaid.
func (s *AllocationService) Allocate(ctx context.Context, cmd AllocateCommand) (*AllocationResult, error) {
	ledger, err := domain.NewLedger(cmd.PaymentMethods)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	runID := uuid.New().String()
	logger := s.logger.With("run_id", runID)
	logger.InfoContext(ctx, "allocation run started",
		"orders", len(cmd.Orders),
		"payment_methods", len(cmd.PaymentMethods),
	)

	result := &AllocationResult{
		RunID:       runID,
		Allocations: make([]domain.Allocation, 0, len(cmd.Orders)),
		Spent:       domain.NewSpentTotals(),
	}

	for _, order := range cmd.Orders {
		alloc := s.allocator.Allocate(order, cmd.PaymentMethods, ledger)
		ledger.Apply(alloc)
		result.Spent.Record(alloc)
		result.Allocations = append(result.Allocations, alloc)
		s.recorder.ObserveAllocation(alloc)

		if !alloc.IsPaid() {
			logger.InfoContext(ctx, "order left unpaid",
				"order_id", order.ID,
				"value", order.Value.StringFixed(2),
			)
			continue
		}
		logger.DebugContext(ctx, "order allocated",
			"order_id", order.ID,
			"strategy", alloc.Strategy,
			"cost", alloc.Cost.StringFixed(2),
			"points", alloc.PointsAmount.StringFixed(2),
			"card_id", alloc.CardMethodID,
			"card", alloc.CardAmount.StringFixed(2),
		)
	}

	logger.InfoContext(ctx, "allocation run finished",
		"paid", len(result.Allocations)-result.Unpaid(),
		"unpaid", result.Unpaid(),
		"methods_charged", result.Spent.Len(),
	)

	return result, nil
}
