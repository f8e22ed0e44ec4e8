package services

import (
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/shopspring/decimal"
)

// OrderAllocator picks the cheapest way to pay a single order.
//
// Strategies are evaluated in a fixed order (full points, partial points with
// a card, promotion card) and a candidate only replaces the current best when
// it is strictly cheaper, so the earliest strategy and the earliest method in
// list order win ties. A full undiscounted card payment is tried only when
// none of them is feasible.
type OrderAllocator struct {
	policy Policy
}

func NewOrderAllocator(policy Policy) *OrderAllocator {
	return &OrderAllocator{policy: policy}
}

// Policy returns the rules the allocator was built with.
func (a *OrderAllocator) Policy() Policy {
	return a.policy
}

// candidate keeps the running best allocation
type candidate struct {
	best  domain.Allocation
	found bool
}

func (c *candidate) offer(alloc domain.Allocation) {
	if !c.found || alloc.Cost.LessThan(c.best.Cost) {
		c.best = alloc
		c.found = true
	}
}

// Allocate decides how to pay order given the remaining limits in ledger.
// It does not touch the ledger; the caller applies the returned debits.
func (a *OrderAllocator) Allocate(order *domain.Order, methods []*domain.PaymentMethod, ledger *domain.Ledger) domain.Allocation {
	var c candidate

	points := domain.FindPaymentMethod(methods, a.policy.PointsMethodID)
	if points != nil {
		a.fullPoints(&c, order, points, ledger)
		a.partialPoints(&c, order, points, methods, ledger)
	}
	a.promotions(&c, order, methods, ledger)

	if c.found {
		return c.best
	}

	if alloc, ok := a.fallback(order, methods, ledger); ok {
		return alloc
	}
	return domain.Unpaid(order.ID)
}

func (a *OrderAllocator) fullPoints(c *candidate, order *domain.Order, points *domain.PaymentMethod, ledger *domain.Ledger) {
	if !ledger.Covers(points.ID, order.Value) {
		return
	}
	cost := points.DiscountedPrice(order.Value)
	c.offer(domain.Allocation{
		OrderID:        order.ID,
		Strategy:       domain.StrategyFullPoints,
		PointsMethodID: points.ID,
		PointsAmount:   cost,
		Cost:           cost,
	})
}

func (a *OrderAllocator) partialPoints(
	c *candidate,
	order *domain.Order,
	points *domain.PaymentMethod,
	methods []*domain.PaymentMethod,
	ledger *domain.Ledger,
) {
	minPoints := order.Value.Mul(a.policy.MinPointsRatio)
	available := domain.MinAmount(ledger.Remaining(points.ID), order.Value)
	if available.LessThan(minPoints) {
		return
	}

	discounted := domain.ApplyDiscount(order.Value, a.policy.PartialPointsDiscount)
	// all available points are spent, even past the discounted total
	cardAmount := domain.MaxAmount(discounted.Sub(available), decimal.Zero)

	for _, card := range methods {
		if a.policy.RoleOf(card) != domain.RoleCard {
			continue
		}
		if !ledger.Covers(card.ID, cardAmount) {
			continue
		}
		c.offer(domain.Allocation{
			OrderID:        order.ID,
			Strategy:       domain.StrategyPartialPoints,
			PointsMethodID: points.ID,
			PointsAmount:   available,
			CardMethodID:   card.ID,
			CardAmount:     cardAmount,
			Cost:           discounted,
		})
	}
}

func (a *OrderAllocator) promotions(c *candidate, order *domain.Order, methods []*domain.PaymentMethod, ledger *domain.Ledger) {
	for _, promo := range order.Promotions {
		card := domain.FindPaymentMethod(methods, promo)
		if card == nil || !ledger.Covers(card.ID, order.Value) {
			continue
		}
		cost := card.DiscountedPrice(order.Value)
		c.offer(domain.Allocation{
			OrderID:      order.ID,
			Strategy:     domain.StrategyPromoCard,
			CardMethodID: card.ID,
			CardAmount:   cost,
			Cost:         cost,
		})
	}
}

func (a *OrderAllocator) fallback(order *domain.Order, methods []*domain.PaymentMethod, ledger *domain.Ledger) (domain.Allocation, bool) {
	for _, card := range methods {
		if a.policy.RoleOf(card) != domain.RoleCard {
			continue
		}
		if ledger.Covers(card.ID, order.Value) {
			return domain.Allocation{
				OrderID:      order.ID,
				Strategy:     domain.StrategyFallbackCard,
				CardMethodID: card.ID,
				CardAmount:   order.Value,
				Cost:         order.Value,
			}, true
		}
	}
	return domain.Allocation{}, false
}
