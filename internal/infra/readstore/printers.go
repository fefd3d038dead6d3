package readstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"droidforge/internal/domain/printer"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/queries"
)

const printerColumns = `
	id, owner_id, name, location, capabilities, status, commission_rate,
	completed_orders, rating, is_verified, created_at, updated_at`

type PrinterReadStore struct {
	db db.DBTX
}

func NewPrinterReadStore(db db.DBTX) *PrinterReadStore {
	return &PrinterReadStore{db: db}
}

func (s *PrinterReadStore) FindActive(ctx context.Context) ([]*printer.Printer, error) {
	return s.query(ctx, `SELECT `+printerColumns+` FROM printers WHERE status = 'active' ORDER BY created_at`)
}

func (s *PrinterReadStore) FindAll(ctx context.Context) ([]*printer.Printer, error) {
	return s.query(ctx, `SELECT `+printerColumns+` FROM printers ORDER BY created_at`)
}

func (s *PrinterReadStore) FindByLocation(ctx context.Context, country string, state *string) ([]*printer.Printer, error) {
	if state != nil {
		return s.query(ctx, `
			SELECT `+printerColumns+` FROM printers
			WHERE location->>'country' = $1 AND location->>'state' = $2
			ORDER BY created_at`, country, *state)
	}
	return s.query(ctx, `
		SELECT `+printerColumns+` FROM printers
		WHERE location->>'country' = $1
		ORDER BY created_at`, country)
}

func (s *PrinterReadStore) FindApplicationByUser(ctx context.Context, userID uuid.UUID) (*queries.ApplicationView, error) {
	var view queries.ApplicationView
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, status, submitted_at, reviewed_at, review_notes
		FROM printer_applications
		WHERE user_id = $1
		ORDER BY submitted_at DESC LIMIT 1`, userID).
		Scan(&view.ID, &view.UserID, &view.Status, &view.SubmittedAt, &view.ReviewedAt, &view.ReviewNotes)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "printer application not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find printer application", err)
	}
	return &view, nil
}

func (s *PrinterReadStore) query(ctx context.Context, sql string, args ...any) ([]*printer.Printer, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query printers", err)
	}
	defer rows.Close()

	var printers []*printer.Printer
	for rows.Next() {
		p, err := scanPrinter(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan printer row", err)
		}
		printers = append(printers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate printer rows", err)
	}
	return printers, nil
}

type locationDoc struct {
	Country   string  `json:"country"`
	State     *string `json:"state,omitempty"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type capabilitiesDoc struct {
	Materials []string `json:"materials"`
	MaxSize   struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	} `json:"max_size"`
	Precision        float64  `json:"precision"`
	SupportedFormats []string `json:"supported_formats"`
}

func scanPrinter(row pgx.Row) (*printer.Printer, error) {
	var (
		id, ownerID      uuid.UUID
		name, status     string
		locationJSON     []byte
		capabilitiesJSON []byte
		commissionRate   float64
		completedOrders  int
		rating           float64
		isVerified       bool
		createdAt        time.Time
		updatedAt        time.Time
	)
	err := row.Scan(
		&id, &ownerID, &name, &locationJSON, &capabilitiesJSON, &status,
		&commissionRate, &completedOrders, &rating, &isVerified, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	var loc locationDoc
	if err := json.Unmarshal(locationJSON, &loc); err != nil {
		return nil, err
	}
	var caps capabilitiesDoc
	if err := json.Unmarshal(capabilitiesJSON, &caps); err != nil {
		return nil, err
	}

	return printer.ReconstructPrinter(
		id, ownerID, name,
		printer.Location{
			Country:   loc.Country,
			State:     loc.State,
			City:      loc.City,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		},
		printer.Capabilities{
			Materials: caps.Materials,
			MaxSize: printer.BuildVolume{
				X: caps.MaxSize.X,
				Y: caps.MaxSize.Y,
				Z: caps.MaxSize.Z,
			},
			Precision:        caps.Precision,
			SupportedFormats: caps.SupportedFormats,
		},
		printer.Status(status),
		commissionRate, completedOrders, rating, isVerified,
		createdAt, updatedAt,
	), nil
}
