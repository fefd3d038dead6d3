package writerepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"droidforge/internal/domain/order"
	"droidforge/internal/domain/pricing"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
)

type orderItemDoc struct {
	Type          string     `json:"type"`
	ModelID       *uuid.UUID `json:"model_id,omitempty"`
	Quantity      int        `json:"quantity"`
	Size          string     `json:"size"`
	Material      string     `json:"material"`
	Color         *string    `json:"color,omitempty"`
	Price         float64    `json:"price"`
	IsReusedModel bool       `json:"is_reused_model"`
}

type shippingAddressDoc struct {
	Name     string  `json:"name"`
	Address1 string  `json:"address1"`
	Address2 *string `json:"address2,omitempty"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	ZipCode  string  `json:"zip_code"`
	Country  string  `json:"country"`
}

type productionStepDoc struct {
	Step      string    `json:"step"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Details   *string   `json:"details,omitempty"`
}

type commPrefsDoc struct {
	Email       bool    `json:"email"`
	SMS         bool    `json:"sms"`
	AIPhoneCall bool    `json:"ai_phone_call"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	items, err := json.Marshal(encodeOrderItems(o.Items()))
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode order items", err)
	}
	address, err := json.Marshal(encodeShippingAddress(o.ShippingAddress()))
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode shipping address", err)
	}
	prefs, err := encodeCommPrefs(o.CommunicationPrefs())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode communication preferences", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, user_id, order_number, items, subtotal, tax, shipping, total,
			status, shipping_address, timelapse_opt_in, process_visibility,
			payment_intent_id, assigned_printer_id, communication_prefs,
			production_steps, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, '[]', now(), now())`,
		o.ID(), o.UserID(), o.OrderNumber(), items,
		o.Subtotal(), o.Tax(), o.Shipping(), o.Total(),
		o.Status().String(), address, o.TimelapseOptIn(), o.ProcessVisibility(),
		o.PaymentIntentID(), o.AssignedPrinterID(), prefs)
	if err != nil {
		return wrapWriteErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, user_id, order_number, items, subtotal, tax, shipping, total,
		       status, shipping_address, timelapse_opt_in, process_visibility,
		       tracking_number, payment_intent_id, assigned_printer_id,
		       communication_prefs, production_steps, created_at, updated_at
		FROM orders WHERE id = $1 FOR UPDATE`, id)

	var (
		orderID, userID   uuid.UUID
		orderNumber       string
		itemsJSON         []byte
		subtotal          float64
		tax               float64
		shipping          float64
		total             float64
		status            string
		addressJSON       []byte
		timelapseOptIn    bool
		processVisibility bool
		trackingNumber    *string
		paymentIntentID   *string
		assignedPrinterID *uuid.UUID
		prefsJSON         []byte
		stepsJSON         []byte
		createdAt         time.Time
		updatedAt         time.Time
	)
	err := row.Scan(
		&orderID, &userID, &orderNumber, &itemsJSON, &subtotal, &tax, &shipping, &total,
		&status, &addressJSON, &timelapseOptIn, &processVisibility,
		&trackingNumber, &paymentIntentID, &assignedPrinterID,
		&prefsJSON, &stepsJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock order", err)
	}

	var itemDocs []orderItemDoc
	if err := json.Unmarshal(itemsJSON, &itemDocs); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode order items", err)
	}
	var addressDoc shippingAddressDoc
	if err := json.Unmarshal(addressJSON, &addressDoc); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode shipping address", err)
	}
	var stepDocs []productionStepDoc
	if stepsJSON != nil {
		if err := json.Unmarshal(stepsJSON, &stepDocs); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode production steps", err)
		}
	}
	var prefs *order.CommunicationPreferences
	if prefsJSON != nil {
		var doc commPrefsDoc
		if err := json.Unmarshal(prefsJSON, &doc); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode communication preferences", err)
		}
		prefs = &order.CommunicationPreferences{
			Email:       doc.Email,
			SMS:         doc.SMS,
			AIPhoneCall: doc.AIPhoneCall,
			PhoneNumber: doc.PhoneNumber,
		}
	}

	orderStatus, err := order.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "order row holds unknown status", err)
	}

	return order.ReconstructOrder(
		orderID, userID, orderNumber,
		decodeOrderItems(itemDocs),
		subtotal, tax, shipping, total,
		orderStatus,
		order.ShippingAddress{
			Name:     addressDoc.Name,
			Address1: addressDoc.Address1,
			Address2: addressDoc.Address2,
			City:     addressDoc.City,
			State:    addressDoc.State,
			ZipCode:  addressDoc.ZipCode,
			Country:  addressDoc.Country,
		},
		timelapseOptIn, processVisibility,
		trackingNumber, paymentIntentID, assignedPrinterID,
		decodeProductionSteps(stepDocs),
		prefs,
		createdAt, updatedAt,
	), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status, trackingNumber *string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE orders SET
			status = $2,
			tracking_number = COALESCE($3, tracking_number),
			production_steps = production_steps || jsonb_build_array(jsonb_build_object(
				'step', $2::text, 'status', 'completed', 'timestamp', now())),
			updated_at = now()
		WHERE id = $1`,
		id, status.String(), trackingNumber)
	if err != nil {
		return wrapWriteErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}

func (r *OrderRepository) AttachPaymentIntent(ctx context.Context, tx db.DBTX, id uuid.UUID, paymentIntentID string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE orders SET payment_intent_id = $2, status = 'paid', updated_at = now()
		WHERE id = $1`, id, paymentIntentID)
	if err != nil {
		return wrapWriteErr("failed to attach payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}

func encodeOrderItems(items []order.Item) []orderItemDoc {
	docs := make([]orderItemDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, orderItemDoc{
			Type:          item.Type,
			ModelID:       item.ModelID,
			Quantity:      item.Quantity,
			Size:          string(item.Size),
			Material:      string(item.Material),
			Color:         item.Color,
			Price:         item.Price,
			IsReusedModel: item.IsReusedModel,
		})
	}
	return docs
}

func decodeOrderItems(docs []orderItemDoc) []order.Item {
	items := make([]order.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, order.Item{
			Type:          doc.Type,
			ModelID:       doc.ModelID,
			Quantity:      doc.Quantity,
			Size:          pricing.Size(doc.Size),
			Material:      pricing.Material(doc.Material),
			Color:         doc.Color,
			Price:         doc.Price,
			IsReusedModel: doc.IsReusedModel,
		})
	}
	return items
}

func decodeProductionSteps(docs []productionStepDoc) []order.ProductionStep {
	if len(docs) == 0 {
		return nil
	}
	steps := make([]order.ProductionStep, 0, len(docs))
	for _, doc := range docs {
		steps = append(steps, order.ProductionStep{
			Step:      doc.Step,
			Status:    doc.Status,
			Timestamp: doc.Timestamp,
			Details:   doc.Details,
		})
	}
	return steps
}

func encodeShippingAddress(a order.ShippingAddress) shippingAddressDoc {
	return shippingAddressDoc{
		Name:     a.Name,
		Address1: a.Address1,
		Address2: a.Address2,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
	}
}

func encodeCommPrefs(p *order.CommunicationPreferences) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(commPrefsDoc{
		Email:       p.Email,
		SMS:         p.SMS,
		AIPhoneCall: p.AIPhoneCall,
		PhoneNumber: p.PhoneNumber,
	})
}
