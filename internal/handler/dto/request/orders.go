package request

import (
	"github.com/google/uuid"

	"droidforge/internal/domain/order"
	"droidforge/internal/domain/pricing"
)

type OrderItemRequest struct {
	Type          string     `json:"type" binding:"required,oneof=generated reused"`
	ModelID       *uuid.UUID `json:"model_id,omitempty"`
	Quantity      int        `json:"quantity" binding:"required,min=1"`
	Size          string     `json:"size" binding:"required"`
	Material      string     `json:"material" binding:"required"`
	Color         *string    `json:"color,omitempty"`
	Price         float64    `json:"price" binding:"required"`
	IsReusedModel bool       `json:"is_reused_model"`
}

type ShippingAddressRequest struct {
	Name     string  `json:"name" binding:"required"`
	Address1 string  `json:"address1" binding:"required"`
	Address2 *string `json:"address2,omitempty"`
	City     string  `json:"city" binding:"required"`
	State    string  `json:"state" binding:"required"`
	ZipCode  string  `json:"zip_code" binding:"required"`
	Country  string  `json:"country" binding:"required"`
}

type CommunicationPreferencesRequest struct {
	Email       bool    `json:"email"`
	SMS         bool    `json:"sms"`
	AIPhoneCall bool    `json:"ai_phone_call"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type CreateOrderRequest struct {
	Items              []OrderItemRequest               `json:"items" binding:"required,min=1,dive"`
	Subtotal           float64                          `json:"subtotal" binding:"required"`
	Tax                float64                          `json:"tax"`
	Shipping           float64                          `json:"shipping"`
	Total              float64                          `json:"total" binding:"required"`
	ShippingAddress    ShippingAddressRequest           `json:"shipping_address" binding:"required"`
	TimelapseOptIn     bool                             `json:"timelapse_opt_in"`
	PaymentIntentID    *string                          `json:"payment_intent_id,omitempty"`
	CommunicationPrefs *CommunicationPreferencesRequest `json:"communication_prefs,omitempty"`
	// Geocoded shipping coordinates; printer matching is skipped without them.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r CreateOrderRequest) ToItems() []order.Item {
	items := make([]order.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, order.Item{
			Type:          it.Type,
			ModelID:       it.ModelID,
			Quantity:      it.Quantity,
			Size:          pricing.Size(it.Size),
			Material:      pricing.Material(it.Material),
			Color:         it.Color,
			Price:         it.Price,
			IsReusedModel: it.IsReusedModel,
		})
	}
	return items
}

func (r CreateOrderRequest) Address() order.ShippingAddress {
	return order.ShippingAddress{
		Name:     r.ShippingAddress.Name,
		Address1: r.ShippingAddress.Address1,
		Address2: r.ShippingAddress.Address2,
		City:     r.ShippingAddress.City,
		State:    r.ShippingAddress.State,
		ZipCode:  r.ShippingAddress.ZipCode,
		Country:  r.ShippingAddress.Country,
	}
}

func (r CreateOrderRequest) Prefs() *order.CommunicationPreferences {
	if r.CommunicationPrefs == nil {
		return nil
	}
	return &order.CommunicationPreferences{
		Email:       r.CommunicationPrefs.Email,
		SMS:         r.CommunicationPrefs.SMS,
		AIPhoneCall: r.CommunicationPrefs.AIPhoneCall,
		PhoneNumber: r.CommunicationPrefs.PhoneNumber,
	}
}

type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" binding:"required"`
	TrackingNumber *string `json:"tracking_number,omitempty"`
}
