package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application/services"
)

// AllocationService runs one allocation batch
type AllocationService interface {
	Allocate(ctx context.Context, cmd services.AllocateCommand) (*services.AllocationResult, error)
}

type Handlers struct {
	allocationService AllocationService
	logger            *slog.Logger
}

func NewHandlers(allocationService AllocationService, logger *slog.Logger) *Handlers {
	return &Handlers{
		allocationService: allocationService,
		logger:            logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/allocations", h.HandleAllocate)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
}
