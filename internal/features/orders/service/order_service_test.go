package service

import (
	"context"
	"errors"
	"testing"

	"order-status/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderProvider is a mock implementation of ports.OrderProvider.
type MockOrderProvider struct {
	mock.Mock
}

func (m *MockOrderProvider) GetOrder(ctx context.Context, orderID string) (*domain.UpstreamOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpstreamOrder), args.Error(1)
}

func TestOrderService_Lookup(t *testing.T) {
	ctx := context.Background()
	stored := &domain.UpstreamOrder{
		ID:            "ORD-1",
		Status:        "Shipped",
		CustomerPhone: "555-123-4567",
		Items:         domain.UpstreamItems{{Name: "Widget", Quantity: 3}},
	}

	t.Run("Success", func(t *testing.T) {
		provider := new(MockOrderProvider)
		provider.On("GetOrder", ctx, "ORD-1").Return(stored, nil).Once()

		order, err := NewOrderService(provider).Lookup(ctx, domain.LookupRequest{OrderID: "ORD-1"})
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", order.ID)
		assert.Equal(t, "Shipped", order.Status)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 3.0, order.Items[0].Qty)
		provider.AssertExpectations(t)
	})

	t.Run("PhoneMatches", func(t *testing.T) {
		provider := new(MockOrderProvider)
		provider.On("GetOrder", ctx, "ORD-1").Return(stored, nil).Once()

		order, err := NewOrderService(provider).Lookup(ctx, domain.LookupRequest{OrderID: "ORD-1", PhoneNumber: "9995554567"})
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", order.ID)
	})

	t.Run("PhoneMismatch", func(t *testing.T) {
		provider := new(MockOrderProvider)
		provider.On("GetOrder", ctx, "ORD-1").Return(stored, nil).Once()

		order, err := NewOrderService(provider).Lookup(ctx, domain.LookupRequest{OrderID: "ORD-1", PhoneNumber: "9999999999"})
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domain.ErrVerificationMismatch)
	})

	t.Run("NotFound", func(t *testing.T) {
		provider := new(MockOrderProvider)
		provider.On("GetOrder", ctx, "missing").Return(nil, domain.ErrOrderNotFound).Once()

		_, err := NewOrderService(provider).Lookup(ctx, domain.LookupRequest{OrderID: "missing"})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("NilOrderIsNotFound", func(t *testing.T) {
		provider := new(MockOrderProvider)
		provider.On("GetOrder", ctx, "ORD-1").Return(nil, nil).Once()

		_, err := NewOrderService(provider).Lookup(ctx, domain.LookupRequest{OrderID: "ORD-1"})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("ProviderError", func(t *testing.T) {
		provider := new(MockOrderProvider)
		backendErr := &domain.BackendError{StatusCode: 500, Body: "boom"}
		provider.On("GetOrder", ctx, "ORD-1").Return(nil, backendErr).Once()

		_, err := NewOrderService(provider).Lookup(ctx, domain.LookupRequest{OrderID: "ORD-1"})
		var target *domain.BackendError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, 500, target.StatusCode)
	})
}
