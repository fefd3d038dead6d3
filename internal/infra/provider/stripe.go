package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/commands"
)

const stripeBaseURL = "https://api.stripe.com"

// StripeClient speaks the form-encoded payment intents API.
type StripeClient struct {
	http      *httpClient
	secretKey string
}

func NewStripeClient(cfg config.ProvidersConfig) *StripeClient {
	return &StripeClient{
		http:      newHTTPClient(cfg),
		secretKey: cfg.StripeSecretKey,
	}
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func (s *StripeClient) CreateIntent(
	ctx context.Context,
	amountCents int64,
	currency string,
	metadata map[string]string,
	idempotencyKey string,
) (*commands.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", fmt.Sprintf("%d", amountCents))
	form.Set("currency", currency)

	automatic, err := json.Marshal(map[string]bool{"enabled": true})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode payment methods")
	}
	form.Set("automatic_payment_methods", string(automatic))
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	headers := bearer(s.secretKey)
	headers["Idempotency-Key"] = idempotencyKey

	var resp stripeIntentResponse
	if err := s.http.doForm(ctx, stripeBaseURL+"/v1/payment_intents", headers, form, &resp); err != nil {
		return nil, errs.Wrap(err, "stripe create intent failed")
	}
	return toPaymentIntent(resp), nil
}

func (s *StripeClient) RetrieveIntent(ctx context.Context, id string) (*commands.PaymentIntent, error) {
	var resp stripeIntentResponse
	if err := s.http.doJSON(ctx, http.MethodGet, stripeBaseURL+"/v1/payment_intents/"+id, bearer(s.secretKey), nil, &resp); err != nil {
		return nil, errs.Wrap(err, "stripe retrieve intent failed")
	}
	return toPaymentIntent(resp), nil
}

func toPaymentIntent(resp stripeIntentResponse) *commands.PaymentIntent {
	return &commands.PaymentIntent{
		ID:           resp.ID,
		ClientSecret: resp.ClientSecret,
		Status:       resp.Status,
		AmountCents:  resp.Amount,
		Currency:     resp.Currency,
	}
}
