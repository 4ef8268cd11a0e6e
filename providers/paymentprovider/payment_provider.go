package paymentprovider

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"assetverse/providers"
)

// Client for the external payment gateway. The gateway is treated as an
// opaque collaborator: one charge call, the transaction id comes back on
// success, anything else is a failure.
type gatewayPaymentProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewPaymentProvider(baseURL, apiKey string) providers.PaymentProvider {
	return &gatewayPaymentProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chargeRequestBody struct {
	Email       string `json:"email"`
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type chargeResponseBody struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

func (p *gatewayPaymentProvider) Charge(ctx context.Context, req providers.ChargeReq) (providers.ChargeRes, error) {
	body, err := jsoniter.Marshal(chargeRequestBody{
		Email:       req.Email,
		AmountCents: req.AmountCents,
		Currency:    "usd",
		Description: req.Description,
	})
	if err != nil {
		return providers.ChargeRes{}, fmt.Errorf("failed to encode charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return providers.ChargeRes{}, fmt.Errorf("failed to build charge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return providers.ChargeRes{}, fmt.Errorf("charge call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return providers.ChargeRes{}, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var chargeRes chargeResponseBody
	if err := jsoniter.NewDecoder(resp.Body).Decode(&chargeRes); err != nil {
		return providers.ChargeRes{}, fmt.Errorf("failed to decode charge response: %w", err)
	}
	if chargeRes.Status != "succeeded" {
		return providers.ChargeRes{}, fmt.Errorf("charge not completed, status %q", chargeRes.Status)
	}

	return providers.ChargeRes{TransactionID: chargeRes.TransactionID}, nil
}
