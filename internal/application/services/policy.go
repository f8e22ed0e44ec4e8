package services

import (
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultPointsMethodID         = "PUNKTY"
	DefaultMinPointsPercent       = 10
	DefaultPartialDiscountPercent = 10
)

// Policy holds the fixed rules of the points program.
type Policy struct {
	// PointsMethodID is the reserved id of the loyalty points method.
	PointsMethodID string
	// MinPointsRatio is the share of the order value points must cover
	// before a partial points payment is allowed.
	MinPointsRatio decimal.Decimal
	// PartialPointsDiscount applies to the whole order on a partial points
	// payment, whatever discount the points method itself declares.
	PartialPointsDiscount decimal.Decimal
}

func NewPolicy(pointsMethodID string, minPointsPercent, partialDiscountPercent int) Policy {
	return Policy{
		PointsMethodID:        pointsMethodID,
		MinPointsRatio:        domain.Percent(minPointsPercent),
		PartialPointsDiscount: domain.Percent(partialDiscountPercent),
	}
}

func DefaultPolicy() Policy {
	return NewPolicy(DefaultPointsMethodID, DefaultMinPointsPercent, DefaultPartialDiscountPercent)
}

func (p Policy) RoleOf(m *domain.PaymentMethod) domain.Role {
	if m.ID == p.PointsMethodID {
		return domain.RolePoints
	}
	return domain.RoleCard
}
