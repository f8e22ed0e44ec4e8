package rest

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application/services"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
)

type APIResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type APIAllocationRun struct {
	RunID  string          `json:"runId"`
	Spent  []APISpent      `json:"spent"`
	Orders []APIAllocation `json:"orders"`
}

type APISpent struct {
	MethodID string `json:"methodId"`
	Amount   string `json:"amount"`
}

type APIDebit struct {
	MethodID string `json:"methodId"`
	Amount   string `json:"amount"`
}

type APIAllocation struct {
	OrderID  string    `json:"orderId"`
	Strategy string    `json:"strategy"`
	Cost     string    `json:"cost,omitempty"`
	Points   *APIDebit `json:"points,omitempty"`
	Card     *APIDebit `json:"card,omitempty"`
}

func ToAPIAllocationRun(result *services.AllocationResult) APIAllocationRun {
	run := APIAllocationRun{
		RunID:  result.RunID,
		Spent:  ToAPISpent(result.Spent),
		Orders: make([]APIAllocation, 0, len(result.Allocations)),
	}
	for _, a := range result.Allocations {
		run.Orders = append(run.Orders, ToAPIAllocation(a))
	}
	return run
}

func ToAPIAllocation(a domain.Allocation) APIAllocation {
	apiAllocation := APIAllocation{
		OrderID:  a.OrderID,
		Strategy: string(a.Strategy),
	}
	if !a.IsPaid() {
		return apiAllocation
	}

	apiAllocation.Cost = a.Cost.StringFixed(2)
	if a.PointsMethodID != "" {
		apiAllocation.Points = &APIDebit{MethodID: a.PointsMethodID, Amount: a.PointsAmount.StringFixed(2)}
	}
	if a.CardMethodID != "" {
		apiAllocation.Card = &APIDebit{MethodID: a.CardMethodID, Amount: a.CardAmount.StringFixed(2)}
	}
	return apiAllocation
}

func ToAPISpent(spent *domain.SpentTotals) []APISpent {
	entries := spent.Entries()
	out := make([]APISpent, 0, len(entries))
	for _, e := range entries {
		out = append(out, APISpent{MethodID: e.MethodID, Amount: e.Amount.StringFixed(2)})
	}
	return out
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
