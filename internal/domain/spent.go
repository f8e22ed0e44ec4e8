package domain

import "github.com/shopspring/decimal"

// SpentEntry is the total charged to one payment method
type SpentEntry struct {
	MethodID string
	Amount   decimal.Decimal
}

// SpentTotals accumulates charges per payment method in first-charged order.
type SpentTotals struct {
	order   []string
	amounts map[string]decimal.Decimal
}

func NewSpentTotals() *SpentTotals {
	return &SpentTotals{amounts: make(map[string]decimal.Decimal)}
}

// Add records a charge. Zero and negative amounts are ignored so a method
// that was never really charged never shows up.
func (s *SpentTotals) Add(methodID string, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	current, ok := s.amounts[methodID]
	if !ok {
		s.order = append(s.order, methodID)
	}
	s.amounts[methodID] = current.Add(amount)
}

// Record adds every debit of an allocation.
func (s *SpentTotals) Record(a Allocation) {
	for _, d := range a.Debits() {
		s.Add(d.MethodID, d.Amount)
	}
}

func (s *SpentTotals) Get(methodID string) (decimal.Decimal, bool) {
	amount, ok := s.amounts[methodID]
	return amount, ok
}

func (s *SpentTotals) Len() int {
	return len(s.order)
}

// Entries returns the totals in the order methods were first charged.
func (s *SpentTotals) Entries() []SpentEntry {
	entries := make([]SpentEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, SpentEntry{MethodID: id, Amount: s.amounts[id]})
	}
	return entries
}
