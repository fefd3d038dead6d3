package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"droidforge/internal/domain/printer"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra"
	"droidforge/internal/pkg/clock"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/queries"
)

type PrinterCommands interface {
	SubmitApplication(ctx context.Context, userID uuid.UUID, req reqdto.SubmitApplicationRequest) (*queries.ApplicationView, error)
	ReviewApplication(ctx context.Context, applicationID uuid.UUID, req reqdto.ReviewApplicationRequest) error
}

type printerCommandsImpl struct {
	printerRepo    PrinterRepository
	printerQueries queries.PrinterQueries
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewPrinterCommands(
	printerRepo PrinterRepository,
	printerQueries queries.PrinterQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) PrinterCommands {
	return &printerCommandsImpl{
		printerRepo:    printerRepo,
		printerQueries: printerQueries,
		db:             db,
		clock:          clock,
	}
}

// SubmitApplication allows one live application per user; only a rejection
// opens the door for a resubmission.
func (p *printerCommandsImpl) SubmitApplication(
	ctx context.Context,
	userID uuid.UUID,
	req reqdto.SubmitApplicationRequest,
) (*queries.ApplicationView, error) {
	existing, err := p.printerRepo.FindLiveApplicationByUser(ctx, userID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return nil, errs.ErrApplicationExists
	}

	application, err := printer.NewApplication(
		userID,
		req.PersonalInfoDomain(),
		req.PrinterInfoDomain(),
		req.ExperienceDomain(),
		req.AvailabilityDomain(),
		req.Motivation,
		p.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := p.printerRepo.CreateApplication(ctx, p.db, application); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrApplicationExists
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return p.printerQueries.ApplicationByUser(ctx, userID)
}

// ReviewApplication approves or rejects. Approval creates the network
// printer from the application data in the same transaction.
func (p *printerCommandsImpl) ReviewApplication(
	ctx context.Context,
	applicationID uuid.UUID,
	req reqdto.ReviewApplicationRequest,
) error {
	application, err := p.printerRepo.FindApplication(ctx, applicationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrApplicationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	now := p.clock.Now()
	if req.Approve {
		created, err := application.Approve(req.Latitude, req.Longitude, now, req.Notes)
		if err != nil {
			return err
		}
		if err := p.printerRepo.Create(ctx, tx, created); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	} else {
		application.Reject(now, req.Notes)
	}

	if err := p.printerRepo.UpdateApplication(ctx, tx, application); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
