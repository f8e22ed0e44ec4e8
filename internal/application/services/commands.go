package services

import "github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"

// AllocateCommand is one batch run: orders are paid in the given order and
// the method order decides ties.
type AllocateCommand struct {
	Orders         []*domain.Order
	PaymentMethods []*domain.PaymentMethod
}
