package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"droidforge/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNoItems        = errors.New("order must contain at least one item")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrTotalsMismatch = errors.New("client totals do not match computed pricing")
)

// Item is one order line. ModelID references a generation job when the item
// prints an existing (possibly reused) model.
type Item struct {
	Type          string
	ModelID       *uuid.UUID
	Quantity      int
	Size          pricing.Size
	Material      pricing.Material
	Color         *string
	Price         float64
	IsReusedModel bool
}

type ShippingAddress struct {
	Name     string
	Address1 string
	Address2 *string
	City     string
	State    string
	ZipCode  string
	Country  string
}

type ProductionStep struct {
	Step      string
	Status    string
	Timestamp time.Time
	Details   *string
}

type CommunicationPreferences struct {
	Email       bool
	SMS         bool
	AIPhoneCall bool
	PhoneNumber *string
}

type Order struct {
	id                 uuid.UUID
	userID             uuid.UUID
	orderNumber        string
	items              []Item
	subtotal           float64
	tax                float64
	shipping           float64
	total              float64
	status             Status
	shippingAddress    ShippingAddress
	timelapseOptIn     bool
	processVisibility  bool
	trackingNumber     *string
	paymentIntentID    *string
	assignedPrinterID  *uuid.UUID
	productionSteps    []ProductionStep
	communicationPrefs *CommunicationPreferences
	createdAt          time.Time
	updatedAt          time.Time
}

// NewOrder validates the submitted line items against the pricing engine and
// builds the order. Client-supplied totals must agree with the recomputed
// breakdown to the cent. Orders arriving with a payment intent start paid.
func NewOrder(
	userID uuid.UUID,
	items []Item,
	subtotal, tax, shipping, total float64,
	address ShippingAddress,
	timelapseOptIn bool,
	paymentIntentID *string,
	commPrefs *CommunicationPreferences,
	now time.Time,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	var wantSubtotal, wantTax, wantShipping, wantTotal float64
	for _, item := range items {
		q, err := pricing.Calculate(item.Size, item.Material, item.Quantity, item.IsReusedModel)
		if err != nil {
			return nil, err
		}
		wantSubtotal += q.Subtotal
	}
	wantSubtotal = round2(wantSubtotal)
	wantTax = round2(wantSubtotal * 0.08)
	wantShipping = 9.99
	if wantSubtotal > 50 {
		wantShipping = 0
	}
	wantTotal = round2(wantSubtotal + wantTax + wantShipping)

	if !centsEqual(subtotal, wantSubtotal) || !centsEqual(tax, wantTax) ||
		!centsEqual(shipping, wantShipping) || !centsEqual(total, wantTotal) {
		return nil, ErrTotalsMismatch
	}

	status := StatusPending
	if paymentIntentID != nil && *paymentIntentID != "" {
		status = StatusPaid
	}

	return &Order{
		id:                 uuid.New(),
		userID:             userID,
		orderNumber:        GenerateOrderNumber(now),
		items:              items,
		subtotal:           wantSubtotal,
		tax:                wantTax,
		shipping:           wantShipping,
		total:              wantTotal,
		status:             status,
		shippingAddress:    address,
		timelapseOptIn:     timelapseOptIn,
		paymentIntentID:    paymentIntentID,
		communicationPrefs: commPrefs,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	orderNumber string,
	items []Item,
	subtotal, tax, shipping, total float64,
	status Status,
	address ShippingAddress,
	timelapseOptIn, processVisibility bool,
	trackingNumber, paymentIntentID *string,
	assignedPrinterID *uuid.UUID,
	productionSteps []ProductionStep,
	commPrefs *CommunicationPreferences,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:                 id,
		userID:             userID,
		orderNumber:        orderNumber,
		items:              items,
		subtotal:           subtotal,
		tax:                tax,
		shipping:           shipping,
		total:              total,
		status:             status,
		shippingAddress:    address,
		timelapseOptIn:     timelapseOptIn,
		processVisibility:  processVisibility,
		trackingNumber:     trackingNumber,
		paymentIntentID:    paymentIntentID,
		assignedPrinterID:  assignedPrinterID,
		productionSteps:    productionSteps,
		communicationPrefs: commPrefs,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// GenerateOrderNumber yields the customer-facing order number, "DF" plus the
// last 8 digits of the unix millisecond timestamp.
func GenerateOrderNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "DF" + ms
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

// AssignPrinter records the fulfillment printer chosen by the matcher.
func (o *Order) AssignPrinter(printerID uuid.UUID) {
	o.assignedPrinterID = &printerID
}

func (o *Order) UpdateStatus(status Status, trackingNumber *string) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	o.status = status
	if trackingNumber != nil {
		o.trackingNumber = trackingNumber
	}
	return nil
}

// RequiredMaterials returns the distinct materials across all items, used to
// filter candidate printers.
func (o *Order) RequiredMaterials() []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range o.items {
		m := string(item.Material)
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

func (o *Order) WantsAICall() bool {
	return o.communicationPrefs != nil && o.communicationPrefs.AIPhoneCall && o.communicationPrefs.PhoneNumber != nil
}

func (o *Order) ID() uuid.UUID                                 { return o.id }
func (o *Order) UserID() uuid.UUID                             { return o.userID }
func (o *Order) OrderNumber() string                           { return o.orderNumber }
func (o *Order) Items() []Item                                 { return o.items }
func (o *Order) Subtotal() float64                             { return o.subtotal }
func (o *Order) Tax() float64                                  { return o.tax }
func (o *Order) Shipping() float64                             { return o.shipping }
func (o *Order) Total() float64                                { return o.total }
func (o *Order) Status() Status                                { return o.status }
func (o *Order) ShippingAddress() ShippingAddress              { return o.shippingAddress }
func (o *Order) TimelapseOptIn() bool                          { return o.timelapseOptIn }
func (o *Order) ProcessVisibility() bool                       { return o.processVisibility }
func (o *Order) TrackingNumber() *string                       { return o.trackingNumber }
func (o *Order) PaymentIntentID() *string                      { return o.paymentIntentID }
func (o *Order) AssignedPrinterID() *uuid.UUID                 { return o.assignedPrinterID }
func (o *Order) ProductionSteps() []ProductionStep             { return o.productionSteps }
func (o *Order) CommunicationPrefs() *CommunicationPreferences { return o.communicationPrefs }
func (o *Order) CreatedAt() time.Time                          { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                          { return o.updatedAt }

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func centsEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
