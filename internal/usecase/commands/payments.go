package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/queries"
)

type PaymentCommands interface {
	CreateIntent(ctx context.Context, userID uuid.UUID, req reqdto.CreatePaymentIntentRequest) (*PaymentIntent, error)
	ConfirmPayment(ctx context.Context, userID uuid.UUID, orderID uuid.UUID, req reqdto.ConfirmPaymentRequest) (*queries.OrderView, error)
}

type paymentCommandsImpl struct {
	gateway      PaymentGateway
	orderRepo    OrderRepository
	orderQueries queries.OrderQueries
	db           *pgxpool.Pool
}

func NewPaymentCommands(
	gateway PaymentGateway,
	orderRepo OrderRepository,
	orderQueries queries.OrderQueries,
	db *pgxpool.Pool,
) PaymentCommands {
	return &paymentCommandsImpl{
		gateway:      gateway,
		orderRepo:    orderRepo,
		orderQueries: orderQueries,
		db:           db,
	}
}

func (p *paymentCommandsImpl) CreateIntent(
	ctx context.Context,
	userID uuid.UUID,
	req reqdto.CreatePaymentIntentRequest,
) (*PaymentIntent, error) {
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	// The user id doubles as the idempotency scope; one idempotency key per
	// user+amount pair prevents duplicate intents on client retries.
	idempotencyKey := uuid.NewSHA1(userID, []byte(fmt.Sprintf("%s:%d", currency, req.AmountCents))).String()

	intent, err := p.gateway.CreateIntent(ctx, req.AmountCents, currency, map[string]string{
		"user_id": userID.String(),
	}, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentFailure)
	}
	return intent, nil
}

// ConfirmPayment verifies the intent with the gateway before attaching it
// and flipping the order to paid.
func (p *paymentCommandsImpl) ConfirmPayment(
	ctx context.Context,
	userID uuid.UUID,
	orderID uuid.UUID,
	req reqdto.ConfirmPaymentRequest,
) (*queries.OrderView, error) {
	intent, err := p.gateway.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentFailure)
	}
	if intent.Status != "succeeded" {
		return nil, errs.ErrPaymentFailure
	}

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	entity, err := p.orderRepo.FindForUpdate(ctx, tx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !entity.IsOwnedBy(userID) {
		return nil, errs.ErrOrderNotFound
	}

	if err := p.orderRepo.AttachPaymentIntent(ctx, tx, orderID, intent.ID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return p.orderQueries.GetByID(ctx, userID, orderID)
}
