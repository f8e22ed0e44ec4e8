package domain

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeMissingRequiredField   = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidAmount          = "INVALID_AMOUNT"
	ErrCodeInvalidDiscount        = "INVALID_DISCOUNT"
	ErrCodeDuplicatePaymentMethod = "DUPLICATE_PAYMENT_METHOD"
	ErrCodeInvalidRecord          = "INVALID_RECORD"
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidAmountError(field string, amount decimal.Decimal) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid %s %s: must not be negative", field, amount.String()),
	}
}

func NewInvalidDiscountError(discount int) *DomainError {
	return newInvalidDiscountError(strconv.Itoa(discount))
}

// NewInvalidDecimalDiscountError reports a discount rejected before it could
// be narrowed to a whole percentage.
func NewInvalidDecimalDiscountError(discount decimal.Decimal) *DomainError {
	return newInvalidDiscountError(discount.String())
}

func newInvalidDiscountError(discount string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidDiscount,
		Message: fmt.Sprintf("invalid discount %s: must be between 0 and 100", discount),
	}
}

func NewDuplicatePaymentMethodError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicatePaymentMethod,
		Message: fmt.Sprintf("payment method %s is declared more than once", id),
	}
}

// NewInvalidRecordError wraps a decoding or validation failure of an input record.
func NewInvalidRecordError(source string, index int, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidRecord,
		Message: fmt.Sprintf("%s[%d] is invalid", source, index),
		Err:     err,
	}
}

// IsErrorCode checks if any DomainError in the chain carries code, so a
// record error still matches the field error it wraps.
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	for errors.As(err, &domainErr) {
		if domainErr.Code == code {
			return true
		}
		err = domainErr.Err
	}
	return false
}
