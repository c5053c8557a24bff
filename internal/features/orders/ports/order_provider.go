package ports

import (
	"context"

	"order-status/internal/features/orders/domain"
)

// OrderProvider defines the interface for retrieving orders from the order-management system.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// GetOrder retrieves an order by its identifier.
	// Implementations return domain.ErrOrderNotFound for unknown orders and
	// *domain.BackendError for other upstream failures.
	GetOrder(ctx context.Context, orderID string) (*domain.UpstreamOrder, error)
}

// OrderLookupService defines the primary port for order status lookups.
type OrderLookupService interface {
	// Lookup fetches, verifies and normalizes a single order.
	Lookup(ctx context.Context, req domain.LookupRequest) (*domain.NormalizedOrder, error)
}
