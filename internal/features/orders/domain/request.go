package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LookupRequest is a caller's order status query.
type LookupRequest struct {
	// OrderID identifies the order upstream. Always non-empty once parsed.
	OrderID string `json:"order_id"`
	// PhoneNumber is an optional, loosely formatted phone used for last-4 verification.
	PhoneNumber string `json:"phone_number,omitempty"`
	// CustomerName is an optional display name used when the order has none.
	CustomerName string `json:"customer_name,omitempty"`
}

// NewLookupRequest validates already extracted values.
func NewLookupRequest(orderID, phoneNumber, customerName string) (LookupRequest, error) {
	if orderID == "" {
		return LookupRequest{}, ErrInvalidInput
	}
	return LookupRequest{
		OrderID:      orderID,
		PhoneNumber:  phoneNumber,
		CustomerName: customerName,
	}, nil
}

// ParseLookupRequest decodes a JSON request body.
// An empty body counts as an empty object. order_id must be a non-empty string;
// the optional fields are ignored when they are not strings.
func ParseLookupRequest(body []byte) (LookupRequest, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return LookupRequest{}, ErrInvalidInput
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return LookupRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	orderID, ok := stringField(fields, "order_id")
	if !ok {
		return LookupRequest{}, ErrInvalidInput
	}

	phone, _ := stringField(fields, "phone_number")
	name, _ := stringField(fields, "customer_name")

	return NewLookupRequest(orderID, phone, name)
}

// stringField returns the named member when it is a JSON string.
func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
