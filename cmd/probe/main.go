// Command probe sends a single lookup to a running order-status server and
// prints the HTTP status and response body.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"order-status/internal/core/httpclient"
	"order-status/internal/core/logger"
	"order-status/internal/features/orders/domain"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	url := pflag.String("url", "http://localhost:8080/", "lookup endpoint")
	orderID := pflag.String("order-id", "ORD-TEST-123", "order to look up")
	phone := pflag.String("phone", "9999999999", "phone number for last-4 verification")
	name := pflag.String("name", "", "fallback customer name")
	timeout := pflag.Duration("timeout", 15*time.Second, "request timeout")
	verbose := pflag.BoolP("verbose", "v", false, "log the outbound request")
	pflag.Parse()

	level := "error"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init("development", level); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	payload, err := json.Marshal(domain.LookupRequest{
		OrderID:      *orderID,
		PhoneNumber:  *phone,
		CustomerName: *name,
	})
	if err != nil {
		logger.Get().Fatal("Failed to encode request", zap.Error(err))
	}

	client := httpclient.NewClient("order-status", *timeout)
	resp, err := client.Post(*url, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error connecting to order-status:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := httpclient.ReadBodyPrefix(resp, 1<<20)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("status", resp.StatusCode)
	fmt.Println(string(body))

	if resp.StatusCode >= http.StatusInternalServerError {
		os.Exit(2)
	}
}
