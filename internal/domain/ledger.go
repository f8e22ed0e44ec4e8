package domain

import "github.com/shopspring/decimal"

// Ledger tracks how much each payment method may still be charged during a run.
// It is owned by a single run and is not safe for concurrent use.
type Ledger struct {
	remaining map[string]decimal.Decimal
}

func NewLedger(methods []*PaymentMethod) (*Ledger, error) {
	remaining := make(map[string]decimal.Decimal, len(methods))
	for _, m := range methods {
		if _, exists := remaining[m.ID]; exists {
			return nil, NewDuplicatePaymentMethodError(m.ID)
		}
		remaining[m.ID] = m.Limit
	}
	return &Ledger{remaining: remaining}, nil
}

// Remaining returns the unspent limit of a method, zero for unknown methods.
func (l *Ledger) Remaining(methodID string) decimal.Decimal {
	if amount, ok := l.remaining[methodID]; ok {
		return amount
	}
	return decimal.Zero
}

// Covers reports whether the method can still be charged amount.
func (l *Ledger) Covers(methodID string, amount decimal.Decimal) bool {
	return l.Remaining(methodID).GreaterThanOrEqual(amount)
}

// Debit lowers the remaining limit of a method. The caller must not debit
// more than Remaining(methodID).
func (l *Ledger) Debit(methodID string, amount decimal.Decimal) {
	l.remaining[methodID] = l.Remaining(methodID).Sub(amount)
}

// Apply debits every charge of an allocation.
func (l *Ledger) Apply(a Allocation) {
	for _, d := range a.Debits() {
		l.Debit(d.MethodID, d.Amount)
	}
}
