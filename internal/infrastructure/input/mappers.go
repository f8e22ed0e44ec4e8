package input

import (
	"fmt"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

var maxDiscount = decimal.NewFromInt(100)

// ToOrders - Records → Domain
func ToOrders(source string, records []OrderRecord) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, domain.NewInvalidRecordError(source, i, err)
		}
		order, err := domain.NewOrder(r.ID, r.Value, r.Promotions)
		if err != nil {
			return nil, domain.NewInvalidRecordError(source, i, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ToPaymentMethods - Records → Domain
func ToPaymentMethods(source string, records []PaymentMethodRecord) ([]*domain.PaymentMethod, error) {
	methods := make([]*domain.PaymentMethod, 0, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, domain.NewInvalidRecordError(source, i, err)
		}
		if r.Discount.LessThan(decimal.Zero) || r.Discount.GreaterThan(maxDiscount) {
			return nil, domain.NewInvalidRecordError(source, i, domain.NewInvalidDecimalDiscountError(r.Discount))
		}
		if !r.Discount.IsInteger() {
			return nil, domain.NewInvalidRecordError(source, i,
				fmt.Errorf("discount %s is not a whole percentage", r.Discount.String()))
		}
		method, err := domain.NewPaymentMethod(r.ID, int(r.Discount.IntPart()), r.Limit)
		if err != nil {
			return nil, domain.NewInvalidRecordError(source, i, err)
		}
		methods = append(methods, method)
	}
	return methods, nil
}
