package service

import (
	"context"

	"order-status/internal/features/orders/domain"
	"order-status/internal/features/orders/ports"
)

// OrderService handles the business logic for looking up and verifying orders.
type OrderService struct {
	// provider is the interface for fetching order data from the order API.
	provider ports.OrderProvider
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(provider ports.OrderProvider) *OrderService {
	return &OrderService{
		provider: provider,
	}
}

// Lookup retrieves the order, checks the caller's phone against it when both
// are known and returns the normalized order.
func (s *OrderService) Lookup(ctx context.Context, req domain.LookupRequest) (*domain.NormalizedOrder, error) {
	order, err := s.provider.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	if err := VerifyPhone(req.PhoneNumber, string(order.CustomerPhone)); err != nil {
		return nil, err
	}

	return Normalize(order, req), nil
}
