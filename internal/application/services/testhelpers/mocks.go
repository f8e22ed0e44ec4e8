package testhelpers

import (
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockRecorder struct {
	mock.Mock
}

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{}
}

func (m *MockRecorder) ObserveAllocation(allocation domain.Allocation) {
	m.Called(allocation)
}
