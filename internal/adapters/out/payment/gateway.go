// Package payment talks to the external payment provider. Only refunds
// are issued from this service; charges happen upstream during order
// placement.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"movebox/internal/core/domain/model/kernel"
)

// Gateway implements ports.PaymentGateway over the provider's HTTP API.
type Gateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewGateway creates a gateway for the provider at baseURL. A nil
// client falls back to a default with a timeout.
func NewGateway(client *http.Client, baseURL, apiKey string) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Gateway{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type refundRequest struct {
	PaymentRef  string `json:"payment_ref"`
	AmountCents int64  `json:"amount_cents"`
}

// Refund returns the amount against the given payment reference.
func (g *Gateway) Refund(ctx context.Context, paymentRef string, amount kernel.Money) error {
	body, err := json.Marshal(refundRequest{
		PaymentRef:  paymentRef,
		AmountCents: amount.Cents(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/refunds", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("refund for %s returned status %d", paymentRef, resp.StatusCode)
	}

	return nil
}
