package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"droidforge/internal/domain/order"
	"droidforge/internal/domain/printer"
	"droidforge/internal/domain/user"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/pkg/clock"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/queries"
)

const (
	CallStatusScheduled = "scheduled"
	CallStatusCompleted = "completed"
	CallStatusFailed    = "failed"
)

type MatchingPrinterSource interface {
	FindActive(ctx context.Context) ([]*printer.Printer, error)
}

type OrderCommands interface {
	Create(ctx context.Context, userID uuid.UUID, req reqdto.CreateOrderRequest) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRole user.Role, orderID uuid.UUID, req reqdto.UpdateOrderStatusRequest) error
}

type orderCommandsImpl struct {
	orderRepo    OrderRepository
	modelRepo    ModelRepository
	commRepo     CommunicationRepository
	printers     MatchingPrinterSource
	orderQueries queries.OrderQueries
	generation   config.GenerationConfig
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewOrderCommands(
	orderRepo OrderRepository,
	modelRepo ModelRepository,
	commRepo CommunicationRepository,
	printers MatchingPrinterSource,
	orderQueries queries.OrderQueries,
	cfg config.Config,
	db *pgxpool.Pool,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:    orderRepo,
		modelRepo:    modelRepo,
		commRepo:     commRepo,
		printers:     printers,
		orderQueries: orderQueries,
		generation:   cfg.Generation,
		db:           db,
		clock:        clock,
	}
}

// Create recomputes every total server-side; client figures are accepted
// only when they match to the cent.
func (o *orderCommandsImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	req reqdto.CreateOrderRequest,
) (*queries.OrderView, error) {
	now := o.clock.Now()
	entity, err := order.NewOrder(
		userID,
		req.ToItems(),
		req.Subtotal, req.Tax, req.Shipping, req.Total,
		req.Address(),
		req.TimelapseOptIn,
		req.PaymentIntentID,
		req.Prefs(),
		now,
	)
	if err != nil {
		if errors.Is(err, order.ErrTotalsMismatch) {
			return nil, errs.Mark(err, errs.ErrPricingMismatch)
		}
		return nil, err
	}

	o.assignNearestPrinter(ctx, entity, req.Latitude, req.Longitude)

	tx, err := o.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := o.orderRepo.Create(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := o.bumpReuseCounters(ctx, tx, entity); err != nil {
		return nil, err
	}

	if entity.WantsAICall() {
		if err := o.scheduleThankYouCall(ctx, tx, entity, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return o.orderQueries.GetByID(ctx, userID, entity.ID())
}

func (o *orderCommandsImpl) UpdateStatus(
	ctx context.Context,
	actorID uuid.UUID,
	actorRole user.Role,
	orderID uuid.UUID,
	req reqdto.UpdateOrderStatusRequest,
) error {
	status, err := order.NewStatus(req.Status)
	if err != nil {
		return err
	}

	tx, err := o.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	entity, err := o.orderRepo.FindForUpdate(ctx, tx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrOrderNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !entity.IsOwnedBy(actorID) && actorRole != user.RoleAdmin && actorRole != user.RolePrinterOwner {
		return errs.ErrOrderNotFound
	}

	if err := entity.UpdateStatus(status, req.TrackingNumber); err != nil {
		return err
	}
	if err := o.orderRepo.UpdateStatus(ctx, tx, orderID, entity.Status(), entity.TrackingNumber()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// assignNearestPrinter is best-effort: geocoding absent or no capable
// printer leaves the order unassigned instead of failing checkout.
func (o *orderCommandsImpl) assignNearestPrinter(ctx context.Context, entity *order.Order, lat, lon *float64) {
	if lat == nil || lon == nil {
		return
	}
	active, err := o.printers.FindActive(ctx)
	if err != nil {
		slog.Warn("printer matching skipped", "order_number", entity.OrderNumber(), "error", err.Error())
		return
	}
	match := printer.Nearest(*lat, *lon, entity.RequiredMaterials(), active)
	if match == nil {
		return
	}
	entity.AssignPrinter(match.Printer.ID())
}

func (o *orderCommandsImpl) bumpReuseCounters(ctx context.Context, tx db.DBTX, entity *order.Order) error {
	for _, item := range entity.Items() {
		if !item.IsReusedModel || item.ModelID == nil {
			continue
		}
		if err := o.modelRepo.IncrementReuses(ctx, tx, *item.ModelID, item.Quantity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (o *orderCommandsImpl) scheduleThankYouCall(ctx context.Context, tx db.DBTX, entity *order.Order, now time.Time) error {
	prefs := entity.CommunicationPrefs()
	call := ScheduledCall{
		ID:          uuid.New(),
		OrderID:     entity.ID(),
		PhoneNumber: *prefs.PhoneNumber,
		Script:      buildThankYouScript(entity),
		Status:      CallStatusScheduled,
		RunAt:       now.Add(o.generation.CallLeadTime),
	}
	if err := o.commRepo.Schedule(ctx, tx, call); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func buildThankYouScript(entity *order.Order) string {
	name := entity.ShippingAddress().Name
	itemCount := 0
	for _, item := range entity.Items() {
		itemCount += item.Quantity
	}
	return fmt.Sprintf(
		"Hi %s, thank you for your order %s with DroidForge. We are printing %d item(s) and will text you tracking details as soon as they ship.",
		name, entity.OrderNumber(), itemCount,
	)
}
