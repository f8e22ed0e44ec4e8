package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application/services"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/infrastructure/input"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/interfaces/rest"
)

// maxBodyBytes caps the batch a single request may submit
const maxBodyBytes = 10 << 20

type AllocateRequest struct {
	Orders         []input.OrderRecord         `json:"orders"`
	PaymentMethods []input.PaymentMethodRecord `json:"paymentMethods"`
}

// HandleAllocate runs one allocation batch over the submitted orders and
// payment methods and returns the spent totals and per-order decisions.
func (h *Handlers) HandleAllocate(w http.ResponseWriter, r *http.Request) {
	var req AllocateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("decode request body: %w", err)), h.logger)
		return
	}

	orders, err := input.ToOrders("orders", req.Orders)
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	methods, err := input.ToPaymentMethods("paymentMethods", req.PaymentMethods)
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	result, err := h.allocationService.Allocate(r.Context(), services.AllocateCommand{
		Orders:         orders,
		PaymentMethods: methods,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.APIResponse{
		Success: true,
		Data:    rest.ToAPIAllocationRun(result),
	})
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.APIResponse{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}
