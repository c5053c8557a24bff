package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"order-status/internal/core/cache"
	"order-status/internal/core/logger"
	"order-status/internal/features/orders/domain"
	"order-status/internal/features/orders/ports"

	"go.uber.org/zap"
)

const orderCacheKeyPrefix = "order:"

// CachedOrderProvider serves recently fetched orders from a cache.
// Only successful lookups are cached; cache failures fall through to the wrapped provider.
type CachedOrderProvider struct {
	next  ports.OrderProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedOrderProvider wraps next with a read-through cache.
func NewCachedOrderProvider(next ports.OrderProvider, c cache.Cache, ttl time.Duration) *CachedOrderProvider {
	return &CachedOrderProvider{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

// GetOrder implements ports.OrderProvider.
func (p *CachedOrderProvider) GetOrder(ctx context.Context, orderID string) (*domain.UpstreamOrder, error) {
	key := orderCacheKeyPrefix + orderID

	data, err := p.cache.Get(ctx, key)
	switch {
	case err == nil:
		order, decodeErr := domain.DecodeUpstreamOrder(data)
		if decodeErr == nil {
			logger.Get().Debug("Order served from cache", zap.String("order_id", orderID))
			return order, nil
		}
		logger.Get().Warn("Discarding unreadable cached order", zap.String("order_id", orderID), zap.Error(decodeErr))
		if err := p.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Order cache delete failed", zap.String("order_id", orderID), zap.Error(err))
		}
	case !errors.Is(err, cache.ErrCacheMiss):
		logger.Get().Warn("Order cache read failed", zap.String("order_id", orderID), zap.Error(err))
	}

	order, err := p.next.GetOrder(ctx, orderID)
	if err != nil || order == nil {
		return order, err
	}

	data, err = json.Marshal(order)
	if err != nil {
		logger.Get().Warn("Failed to encode order for cache", zap.String("order_id", orderID), zap.Error(err))
		return order, nil
	}

	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		logger.Get().Warn("Order cache write failed", zap.String("order_id", orderID), zap.Error(err))
	}

	return order, nil
}
