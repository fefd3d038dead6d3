package response

import "github.com/google/uuid"

type ContactSubmissionResponse struct {
	ID      uuid.UUID `json:"id"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
