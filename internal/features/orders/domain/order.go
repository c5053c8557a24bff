package domain

// DefaultStatus is reported when the order API sends no status.
const DefaultStatus = "Unknown"

// NormalizedOrder is the stable order shape returned to callers.
// Nullable fields are pointers so that absent values encode as null.
// Text fields the order API sends as numbers are returned as their decimal
// string, e.g. an epoch estimated_delivery of 1761350400 becomes "1761350400".
type NormalizedOrder struct {
	// ID is the order identifier.
	ID string `json:"id"`
	// Status is the upstream order status, or DefaultStatus. Always a string.
	Status string `json:"status"`
	// EstimatedDelivery is the expected delivery date as sent upstream; numbers become strings.
	EstimatedDelivery *string `json:"estimated_delivery"`
	// LastUpdate is the time of the last upstream change as sent upstream; numbers become strings.
	LastUpdate *string `json:"last_update"`
	// Items preserves the upstream item order. Never nil.
	Items []OrderItem `json:"items"`
	// Shipping holds the carrier details.
	Shipping ShippingInfo `json:"shipping"`
	// CustomerName is the order's name, else the caller's, else null.
	CustomerName *string `json:"customer_name"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Name *string `json:"name"`
	// Qty is the quantity as sent upstream, fractional or not; 1 when absent.
	Qty float64 `json:"qty"`
}

// ShippingInfo holds shipment tracking details.
type ShippingInfo struct {
	Carrier *string `json:"carrier"`
	// TrackingNumber is a string even when the carrier's number is numeric upstream.
	TrackingNumber *string `json:"tracking_number"`
	TrackingURL    *string `json:"tracking_url"`
}
