package response

import "droidforge/internal/usecase/commands"

type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
}

func FromPaymentIntent(pi *commands.PaymentIntent) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       pi.Status,
		AmountCents:  pi.AmountCents,
		Currency:     pi.Currency,
	}
}
