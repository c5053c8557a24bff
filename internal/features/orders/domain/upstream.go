package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UpstreamOrder is the order record returned by the order API.
// Every field is optional; unusable values decode as absent instead of failing.
type UpstreamOrder struct {
	ID                Text              `json:"id"`
	OrderID           Text              `json:"order_id"`
	Status            Text              `json:"status"`
	EstimatedDelivery Text              `json:"estimated_delivery"`
	LastUpdate        Text              `json:"last_update"`
	Items             UpstreamItems     `json:"items"`
	Shipping          *UpstreamShipping `json:"shipping"`
	CustomerPhone     Text              `json:"customer_phone"`
	CustomerName      Text              `json:"customer_name"`
}

// UpstreamItem is a line item as sent by the order API.
type UpstreamItem struct {
	Name     Text  `json:"name"`
	Qty      Count `json:"qty"`
	Quantity Count `json:"quantity"`
}

// UnmarshalJSON leaves the item empty when the value is not an object.
func (i *UpstreamItem) UnmarshalJSON(b []byte) error {
	if !isObject(b) {
		*i = UpstreamItem{}
		return nil
	}
	type plain UpstreamItem
	return json.Unmarshal(b, (*plain)(i))
}

// UpstreamItems is the items list. Anything but an array decodes as no items.
type UpstreamItems []UpstreamItem

// UnmarshalJSON implements json.Unmarshaler.
func (l *UpstreamItems) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '[' {
		*l = nil
		return nil
	}
	var items []UpstreamItem
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// UpstreamShipping holds the carrier details of an order.
type UpstreamShipping struct {
	Carrier        Text `json:"carrier"`
	TrackingNumber Text `json:"tracking_number"`
	TrackingURL    Text `json:"tracking_url"`
}

// UnmarshalJSON leaves the shipping details empty when the value is not an object.
func (s *UpstreamShipping) UnmarshalJSON(b []byte) error {
	if !isObject(b) {
		*s = UpstreamShipping{}
		return nil
	}
	type plain UpstreamShipping
	return json.Unmarshal(b, (*plain)(s))
}

// DecodeUpstreamOrder parses an order API response body.
// The body must be a JSON object.
func DecodeUpstreamOrder(body []byte) (*UpstreamOrder, error) {
	if !isObject(body) {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrMalformedUpstream)
	}
	var order UpstreamOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUpstream, err)
	}
	return &order, nil
}

// Text is a loosely typed scalar. It decodes from a JSON string or number;
// null, booleans, arrays and objects decode as the empty Text, which means absent.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*t = ""
	if len(b) == 0 {
		return nil
	}
	switch {
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = Text(n.String())
	}
	return nil
}

// Ptr returns nil for an absent value, which encodes as JSON null.
func (t Text) Ptr() *string {
	if t == "" {
		return nil
	}
	s := string(t)
	return &s
}

// Count is a loosely typed quantity. It decodes from a JSON number or a numeric
// string and keeps the value as sent; anything else decodes as 0, which means absent.
type Count float64

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(b []byte) error {
	var t Text
	if err := t.UnmarshalJSON(b); err != nil {
		return err
	}
	*c = 0
	f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*c = Count(f)
	return nil
}

func isObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}
