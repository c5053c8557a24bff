package httpclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"order-status/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound call made to an upstream.
type LoggingRoundTripper struct {
	// Upstream names the remote service in log entries.
	Upstream string
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details. Header values are never logged.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Get().With(
		zap.String("upstream", lrt.Upstream),
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
	)

	log.Debug("HTTP Request Started")

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
// A zero timeout leaves the call bounded only by the request context.
func NewClient(upstream string, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Upstream: upstream,
			Proxied:  http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

// ErrBodyTooLarge is returned by ReadBody when a response body exceeds the limit.
var ErrBodyTooLarge = errors.New("response body too large")

// ReadBody reads a whole response body, failing with ErrBodyTooLarge instead of
// returning a body longer than limit bytes.
func ReadBody(resp *http.Response, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrBodyTooLarge, limit)
	}
	return body, nil
}

// ReadBodyPrefix reads at most limit bytes of a response body and drops the rest.
// Use it for bodies that are only reported, such as upstream error pages.
func ReadBodyPrefix(resp *http.Response, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
