package handler

import (
	"errors"
	"fmt"
	"net/http"

	"order-status/internal/core/logger"
	"order-status/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal error"

// errNoOrder marks a lookup that returned neither an order nor an error.
var errNoOrder = errors.New("lookup returned no order")

// respond logs the outcome and writes its envelope.
func (h *OrderHandler) respond(c *fiber.Ctx, order *domain.NormalizedOrder, err error) error {
	status, envelope := buildEnvelope(order, err, h.hideInternalErrors)

	log := logger.WithRayID(rayID(c))
	switch envelope.ErrorCode {
	case "":
		log.Debug("Order lookup succeeded", zap.String("order_id", order.ID))
	case domain.ErrorCodeOrderNotFound, domain.ErrorCodeVerificationMismatch, domain.ErrorCodeInvalidInput:
		log.Info("Order lookup rejected", zap.String("error_code", string(envelope.ErrorCode)), zap.Error(err))
	case domain.ErrorCodeBackend:
		log.Warn("Order API returned an error", zap.Error(err))
	default:
		log.Error("Order lookup failed", zap.String("error_code", string(envelope.ErrorCode)), zap.Error(err))
	}

	return c.Status(status).JSON(envelope)
}

// buildEnvelope maps a lookup outcome to its HTTP status and envelope.
func buildEnvelope(order *domain.NormalizedOrder, err error, hideInternalErrors bool) (int, domain.Envelope) {
	if err == nil && order != nil {
		return http.StatusOK, domain.OKEnvelope(order)
	}

	var backendErr *domain.BackendError

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, domain.ErrorEnvelope(domain.ErrorCodeInvalidInput, "Missing or invalid order_id")
	case errors.Is(err, domain.ErrConfigMissing):
		return http.StatusInternalServerError, domain.ErrorEnvelope(domain.ErrorCodeConfig, "Missing ORDER_API_URL or ORDER_API_KEY")
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusOK, domain.NotFoundEnvelope(domain.ErrorCodeOrderNotFound, "Order not found")
	case errors.Is(err, domain.ErrVerificationMismatch):
		return http.StatusOK, domain.NotFoundEnvelope(domain.ErrorCodeVerificationMismatch, "Provided phone does not match order")
	case errors.As(err, &backendErr):
		return http.StatusBadGateway, domain.ErrorEnvelope(domain.ErrorCodeBackend,
			fmt.Sprintf("Upstream error: %d %s", backendErr.StatusCode, backendErr.Body))
	}

	if err == nil {
		err = errNoOrder
	}
	message := err.Error()
	if hideInternalErrors {
		message = internalErrorMessage
	}
	return http.StatusInternalServerError, domain.ErrorEnvelope(domain.ErrorCodeUnhandled, message)
}

// rayID returns the request ID set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
