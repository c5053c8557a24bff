package handler

import (
	"fmt"
	"net/url"

	"order-status/internal/features/orders/domain"
	"order-status/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order status lookups.
type OrderHandler struct {
	// service performs the lookup pipeline.
	service ports.OrderLookupService
	// hideInternalErrors replaces unexpected failure details with a generic message.
	hideInternalErrors bool
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s ports.OrderLookupService, hideInternalErrors bool) *OrderHandler {
	return &OrderHandler{
		service:            s,
		hideInternalErrors: hideInternalErrors,
	}
}

// GetOrderStatus handles the JSON lookup request.
// @Summary Look up an order's status
// @Description Fetches the order from the order API, optionally verifies the last 4 digits of the caller's phone and returns a normalized order. Every outcome uses the same envelope.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body domain.LookupRequest true "Lookup request"
// @Success 200 {object} domain.Envelope "ok, not_found or verification mismatch"
// @Failure 400 {object} domain.Envelope "INVALID_INPUT"
// @Failure 500 {object} domain.Envelope "CONFIG_ERROR or UNHANDLED_EXCEPTION"
// @Failure 502 {object} domain.Envelope "BACKEND_ERROR"
// @Router /orders/status [post]
// @Router / [post]
func (h *OrderHandler) GetOrderStatus(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = h.respond(c, nil, fmt.Errorf("panic: %v", r))
		}
	}()

	req, parseErr := domain.ParseLookupRequest(c.Body())
	if parseErr != nil {
		return h.respond(c, nil, parseErr)
	}

	order, lookupErr := h.service.Lookup(c.UserContext(), req)
	return h.respond(c, order, lookupErr)
}

// GetOrder handles a lookup addressed by path.
// @Summary Get order status by ID
// @Description Same lookup as POST /orders/status with the order ID in the path.
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Param phone_number query string false "Phone number for last-4 verification"
// @Param customer_name query string false "Fallback customer name"
// @Success 200 {object} domain.Envelope
// @Failure 400 {object} domain.Envelope
// @Failure 500 {object} domain.Envelope
// @Failure 502 {object} domain.Envelope
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = h.respond(c, nil, fmt.Errorf("panic: %v", r))
		}
	}()

	orderID, unescapeErr := url.PathUnescape(c.Params("id"))
	if unescapeErr != nil {
		return h.respond(c, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, unescapeErr))
	}

	req, parseErr := domain.NewLookupRequest(orderID, c.Query("phone_number"), c.Query("customer_name"))
	if parseErr != nil {
		return h.respond(c, nil, parseErr)
	}

	order, lookupErr := h.service.Lookup(c.UserContext(), req)
	return h.respond(c, order, lookupErr)
}
