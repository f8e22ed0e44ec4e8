// Package input decodes the orders and payment methods files of a run.
package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
)

func ReadOrdersFile(path string) ([]*domain.Order, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("open orders file: %w", err)
	}
	defer f.Close()

	return ReadOrders(path, f)
}

func ReadPaymentMethodsFile(path string) ([]*domain.PaymentMethod, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("open payment methods file: %w", err)
	}
	defer f.Close()

	return ReadPaymentMethods(path, f)
}

// ReadOrders decodes a JSON array of orders; source names the input in errors.
func ReadOrders(source string, r io.Reader) ([]*domain.Order, error) {
	var records []OrderRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return ToOrders(source, records)
}

// ReadPaymentMethods decodes a JSON array of payment methods.
func ReadPaymentMethods(source string, r io.Reader) ([]*domain.PaymentMethod, error) {
	var records []PaymentMethodRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return ToPaymentMethods(source, records)
}
