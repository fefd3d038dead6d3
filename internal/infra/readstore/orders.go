package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/queries"
)

const orderColumns = `
	id, user_id, order_number, items, subtotal, tax, shipping, total, status,
	shipping_address, timelapse_opt_in, tracking_number, payment_intent_id,
	assigned_printer_id, production_steps, created_at, updated_at`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return s.scanOne(row)
}

func (s *OrderReadStore) FindByNumber(ctx context.Context, orderNumber string) (*queries.OrderView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)
	return s.scanOne(row)
}

func (s *OrderReadStore) scanOne(row pgx.Row) (*queries.OrderView, error) {
	view, err := scanOrderView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find order", err)
	}
	return view, nil
}

func (s *OrderReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, order_number, total, status, jsonb_array_length(items), created_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list user orders", err)
	}
	return collectOrderListItems(rows)
}

func (s *OrderReadStore) FindByPrinter(ctx context.Context, printerID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, order_number, total, status, jsonb_array_length(items), created_at
		FROM orders WHERE assigned_printer_id = $1 ORDER BY created_at DESC`, printerID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list printer orders", err)
	}
	return collectOrderListItems(rows)
}

func collectOrderListItems(rows pgx.Rows) ([]*queries.OrderListItem, error) {
	defer rows.Close()
	var items []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.OrderNumber, &item.Total, &item.Status, &item.ItemCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan order row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate order rows", err)
	}
	return items, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var (
		view                queries.OrderView
		itemsJSON           []byte
		addressJSON         []byte
		productionStepsJSON []byte
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.OrderNumber, &itemsJSON,
		&view.Subtotal, &view.Tax, &view.Shipping, &view.Total, &view.Status,
		&addressJSON, &view.TimelapseOptIn, &view.TrackingNumber,
		&view.PaymentIntentID, &view.AssignedPrinterID, &productionStepsJSON,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &view.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addressJSON, &view.ShippingAddress); err != nil {
		return nil, err
	}
	if productionStepsJSON != nil {
		if err := json.Unmarshal(productionStepsJSON, &view.ProductionSteps); err != nil {
			return nil, err
		}
	}
	return &view, nil
}
