package request

type UpdateAPIKeysRequest struct {
	Keys map[string]string `json:"keys" binding:"required"`
}

type CreatePaymentIntentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type NewsletterSubscribeRequest struct {
	Email      string   `json:"email" binding:"required,email"`
	Categories []string `json:"categories"`
}
