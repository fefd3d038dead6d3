package queries

import (
	"context"

	"droidforge/internal/domain/printer"
	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
)

type PrinterReadStore interface {
	FindActive(ctx context.Context) ([]*printer.Printer, error)
	FindAll(ctx context.Context) ([]*printer.Printer, error)
	FindByLocation(ctx context.Context, country string, state *string) ([]*printer.Printer, error)
	FindApplicationByUser(ctx context.Context, userID uuid.UUID) (*ApplicationView, error)
}

type NearestParams struct {
	Latitude  float64
	Longitude float64
	Materials []string
}

type PrinterQueries interface {
	ListActive(ctx context.Context) ([]*PrinterView, error)
	ListByLocation(ctx context.Context, country string, state *string) ([]*PrinterView, error)
	FindNearest(ctx context.Context, params NearestParams) (*NearestPrinterView, error)
	Stats(ctx context.Context) (*PrinterStatsView, error)
	ApplicationByUser(ctx context.Context, userID uuid.UUID) (*ApplicationView, error)
}

type printerQueriesImpl struct {
	store PrinterReadStore
}

func NewPrinterQueries(store PrinterReadStore) PrinterQueries {
	return &printerQueriesImpl{store: store}
}

func (q *printerQueriesImpl) ListActive(ctx context.Context) ([]*PrinterView, error) {
	printers, err := q.store.FindActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active printers")
	}
	return toPrinterViews(printers), nil
}

func (q *printerQueriesImpl) ListByLocation(ctx context.Context, country string, state *string) ([]*PrinterView, error) {
	var (
		printers []*printer.Printer
		err      error
	)
	if country == "" {
		printers, err = q.store.FindAll(ctx)
	} else {
		printers, err = q.store.FindByLocation(ctx, country, state)
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to list printers by location")
	}
	return toPrinterViews(printers), nil
}

// FindNearest runs the matching computation over the current active set.
// A nil view with nil error means no printer satisfies the material filter.
func (q *printerQueriesImpl) FindNearest(ctx context.Context, params NearestParams) (*NearestPrinterView, error) {
	printers, err := q.store.FindActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load active printers")
	}

	match := printer.Nearest(params.Latitude, params.Longitude, params.Materials, printers)
	if match == nil {
		return nil, nil
	}

	return &NearestPrinterView{
		Printer:    *toPrinterView(match.Printer),
		DistanceKm: match.DistanceKm,
	}, nil
}

func (q *printerQueriesImpl) Stats(ctx context.Context) (*PrinterStatsView, error) {
	printers, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load printers")
	}

	stats := &PrinterStatsView{
		TotalPrinters:     len(printers),
		PrintersByCountry: map[string]int{},
	}
	var ratingSum float64
	for _, p := range printers {
		if !p.IsActive() {
			continue
		}
		stats.ActivePrinters++
		stats.PrintersByCountry[p.Location().Country]++
		ratingSum += p.Rating()
		stats.TotalCompletedOrders += p.CompletedOrders()
	}
	if stats.ActivePrinters > 0 {
		stats.AverageRating = ratingSum / float64(stats.ActivePrinters)
	}
	return stats, nil
}

func (q *printerQueriesImpl) ApplicationByUser(ctx context.Context, userID uuid.UUID) (*ApplicationView, error) {
	view, err := q.store.FindApplicationByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrApplicationNotFound
		}
		return nil, errs.Wrap(err, "failed to find printer application")
	}
	return view, nil
}

func toPrinterViews(printers []*printer.Printer) []*PrinterView {
	views := make([]*PrinterView, len(printers))
	for i, p := range printers {
		views[i] = toPrinterView(p)
	}
	return views
}

func toPrinterView(p *printer.Printer) *PrinterView {
	loc := p.Location()
	caps := p.Capabilities()
	return &PrinterView{
		ID:      p.ID(),
		OwnerID: p.OwnerID(),
		Name:    p.Name(),
		Location: LocationView{
			Country:   loc.Country,
			State:     loc.State,
			City:      loc.City,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		},
		Capabilities: CapabilitiesView{
			Materials:        caps.Materials,
			MaxSize:          BuildVolumeView{X: caps.MaxSize.X, Y: caps.MaxSize.Y, Z: caps.MaxSize.Z},
			Precision:        caps.Precision,
			SupportedFormats: caps.SupportedFormats,
		},
		Status:          p.Status().String(),
		CommissionRate:  p.CommissionRate(),
		CompletedOrders: p.CompletedOrders(),
		Rating:          p.Rating(),
		IsVerified:      p.IsVerified(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}
