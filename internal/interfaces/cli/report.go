// Package cli renders allocation results for the command line.
package cli

import (
	"fmt"
	"io"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
)

// WriteSpent prints one "<method> <amount>" line per charged method, amounts
// with two decimals, in the order methods were first charged.
func WriteSpent(w io.Writer, spent *domain.SpentTotals) error {
	for _, e := range spent.Entries() {
		if _, err := fmt.Fprintf(w, "%s %s\n", e.MethodID, e.Amount.StringFixed(2)); err != nil {
			return fmt.Errorf("write spent entry %s: %w", e.MethodID, err)
		}
	}
	return nil
}
