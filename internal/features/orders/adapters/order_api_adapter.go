package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"order-status/internal/core/config"
	"order-status/internal/core/httpclient"
	"order-status/internal/features/orders/domain"
)

// maxBodyBytes is the largest order response accepted; larger ones fail with httpclient.ErrBodyTooLarge.
const maxBodyBytes = 1 << 20

// maxErrorBodyBytes caps the upstream error body embedded in BackendError.
const maxErrorBodyBytes = 64 << 10

// OrderAPIAdapter implements the OrderProvider interface against the order-management REST API.
type OrderAPIAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the order API connection details.
	config config.OrderAPIConfig
}

// NewOrderAPIAdapter creates a new instance of OrderAPIAdapter.
func NewOrderAPIAdapter(cfg config.OrderAPIConfig) *OrderAPIAdapter {
	return &OrderAPIAdapter{
		client: httpclient.NewClient("order-api", cfg.Timeout),
		config: cfg,
	}
}

// GetOrder fetches a single order. It makes exactly one request and never retries.
func (a *OrderAPIAdapter) GetOrder(ctx context.Context, orderID string) (*domain.UpstreamOrder, error) {
	if missing := a.config.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s not set", domain.ErrConfigMissing, strings.Join(missing, ", "))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.orderURL(orderID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrOrderNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, err := httpclient.ReadBodyPrefix(resp, maxErrorBodyBytes)
		if err != nil {
			return nil, err
		}
		return nil, &domain.BackendError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	body, err := httpclient.ReadBody(resp, maxBodyBytes)
	if err != nil {
		return nil, err
	}

	return domain.DecodeUpstreamOrder(body)
}

// orderURL joins the base URL, without trailing slashes, and the escaped order ID.
func (a *OrderAPIAdapter) orderURL(orderID string) string {
	return strings.TrimRight(a.config.URL, "/") + "/" + url.PathEscape(orderID)
}
