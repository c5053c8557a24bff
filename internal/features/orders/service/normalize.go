package service

import (
	"order-status/internal/features/orders/domain"
)

// Normalize maps an upstream order onto the stable response shape.
// Every field has a fallback, so any decoded order is accepted.
func Normalize(order *domain.UpstreamOrder, req domain.LookupRequest) *domain.NormalizedOrder {
	out := &domain.NormalizedOrder{
		ID:                string(firstText(order.ID, order.OrderID, domain.Text(req.OrderID))),
		Status:            string(firstText(order.Status, domain.DefaultStatus)),
		EstimatedDelivery: order.EstimatedDelivery.Ptr(),
		LastUpdate:        order.LastUpdate.Ptr(),
		Items:             mapItems(order.Items),
		CustomerName:      firstText(order.CustomerName, domain.Text(req.CustomerName)).Ptr(),
	}

	if order.Shipping != nil {
		out.Shipping = domain.ShippingInfo{
			Carrier:        order.Shipping.Carrier.Ptr(),
			TrackingNumber: order.Shipping.TrackingNumber.Ptr(),
			TrackingURL:    order.Shipping.TrackingURL.Ptr(),
		}
	}

	return out
}

// mapItems keeps the upstream order of items; quantity falls back from qty to quantity to 1.
func mapItems(items domain.UpstreamItems) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		qty := item.Qty
		if qty == 0 {
			qty = item.Quantity
		}
		if qty == 0 {
			qty = 1
		}
		out = append(out, domain.OrderItem{
			Name: item.Name.Ptr(),
			Qty:  float64(qty),
		})
	}
	return out
}

func firstText(values ...domain.Text) domain.Text {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
