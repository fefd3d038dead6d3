package response

import (
	"github.com/google/uuid"
)

type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
}
