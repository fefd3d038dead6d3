package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/pkg/errs"
)

type ContactCommands interface {
	SubmitMessage(ctx context.Context, req reqdto.ContactMessageRequest) (uuid.UUID, error)
	SubscribeNewsletter(ctx context.Context, req reqdto.NewsletterSubscribeRequest) error
}

type contactCommandsImpl struct {
	contactRepo ContactRepository
}

func NewContactCommands(contactRepo ContactRepository) ContactCommands {
	return &contactCommandsImpl{contactRepo: contactRepo}
}

func (c *contactCommandsImpl) SubmitMessage(ctx context.Context, req reqdto.ContactMessageRequest) (uuid.UUID, error) {
	id, err := c.contactRepo.CreateSubmission(ctx, req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

// SubscribeNewsletter upserts; re-subscribing a lapsed address reactivates
// it and merges any newly requested categories.
func (c *contactCommandsImpl) SubscribeNewsletter(ctx context.Context, req reqdto.NewsletterSubscribeRequest) error {
	if err := c.contactRepo.UpsertSubscription(ctx, req.Email, req.Categories); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
