package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ModelView struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	Title          string         `json:"title"`
	Prompt         string         `json:"prompt"`
	EnhancedPrompt *string        `json:"enhanced_prompt,omitempty"`
	Generator      string         `json:"generator"`
	Status         string         `json:"status"`
	ConceptImageID *uuid.UUID     `json:"concept_image_id,omitempty"`
	Settings       SettingsView   `json:"settings"`
	GenerationData *MeshStatsView `json:"generation_data,omitempty"`
	IsPublic       bool           `json:"is_public"`
	IsFeatured     bool           `json:"is_featured"`
	IsReusable     bool           `json:"is_reusable"`
	Tags           []string       `json:"tags"`
	Likes          int            `json:"likes"`
	Downloads      int            `json:"downloads"`
	Reuses         int            `json:"reuses"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type SettingsView struct {
	Style        string `json:"style"`
	Complexity   string `json:"complexity"`
	Size         string `json:"size"`
	Material     string `json:"material"`
	Printability string `json:"printability"`
	Supports     bool   `json:"supports"`
	HollowFill   int    `json:"hollow_fill"`
}

type MeshStatsView struct {
	Vertices     int `json:"vertices"`
	Faces        int `json:"faces"`
	FileSizeMB   int `json:"file_size_mb"`
	PrintTimeMin int `json:"print_time_min"`
}

type ConceptImageView struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Prompt     string    `json:"prompt"`
	ImageURL   string    `json:"image_url"`
	Generator  string    `json:"generator"`
	Status     string    `json:"status"`
	IsSelected bool      `json:"is_selected"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderItemView struct {
	Type          string     `json:"type"`
	ModelID       *uuid.UUID `json:"model_id,omitempty"`
	Quantity      int        `json:"quantity"`
	Size          string     `json:"size"`
	Material      string     `json:"material"`
	Color         *string    `json:"color,omitempty"`
	Price         float64    `json:"price"`
	IsReusedModel bool       `json:"is_reused_model"`
}

type ShippingAddressView struct {
	Name     string  `json:"name"`
	Address1 string  `json:"address1"`
	Address2 *string `json:"address2,omitempty"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	ZipCode  string  `json:"zip_code"`
	Country  string  `json:"country"`
}

type ProductionStepView struct {
	Step      string    `json:"step"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Details   *string   `json:"details,omitempty"`
}

type OrderView struct {
	ID                uuid.UUID            `json:"id"`
	UserID            uuid.UUID            `json:"user_id"`
	OrderNumber       string               `json:"order_number"`
	Items             []OrderItemView      `json:"items"`
	Subtotal          float64              `json:"subtotal"`
	Tax               float64              `json:"tax"`
	Shipping          float64              `json:"shipping"`
	Total             float64              `json:"total"`
	Status            string               `json:"status"`
	ShippingAddress   ShippingAddressView  `json:"shipping_address"`
	TimelapseOptIn    bool                 `json:"timelapse_opt_in"`
	TrackingNumber    *string              `json:"tracking_number,omitempty"`
	PaymentIntentID   *string              `json:"payment_intent_id,omitempty"`
	AssignedPrinterID *uuid.UUID           `json:"assigned_printer_id,omitempty"`
	ProductionSteps   []ProductionStepView `json:"production_steps,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

type OrderListItem struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Total       float64   `json:"total"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type LocationView struct {
	Country   string  `json:"country"`
	State     *string `json:"state,omitempty"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BuildVolumeView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type CapabilitiesView struct {
	Materials        []string        `json:"materials"`
	MaxSize          BuildVolumeView `json:"max_size"`
	Precision        float64         `json:"precision"`
	SupportedFormats []string        `json:"supported_formats"`
}

type PrinterView struct {
	ID              uuid.UUID        `json:"id"`
	OwnerID         uuid.UUID        `json:"owner_id"`
	Name            string           `json:"name"`
	Location        LocationView     `json:"location"`
	Capabilities    CapabilitiesView `json:"capabilities"`
	Status          string           `json:"status"`
	CommissionRate  float64          `json:"commission_rate"`
	CompletedOrders int              `json:"completed_orders"`
	Rating          float64          `json:"rating"`
	IsVerified      bool             `json:"is_verified"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type NearestPrinterView struct {
	Printer    PrinterView `json:"printer"`
	DistanceKm float64     `json:"distance_km"`
}

type PrinterStatsView struct {
	TotalPrinters        int            `json:"total_printers"`
	ActivePrinters       int            `json:"active_printers"`
	PrintersByCountry    map[string]int `json:"printers_by_country"`
	AverageRating        float64        `json:"average_rating"`
	TotalCompletedOrders int            `json:"total_completed_orders"`
}

type ApplicationView struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNotes *string    `json:"review_notes,omitempty"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type ProfileView struct {
	UserID                   uuid.UUID `json:"user_id"`
	Email                    string    `json:"email"`
	Role                     string    `json:"role"`
	FreeGenerationsUsed      int       `json:"free_generations_used"`
	FreeGenerationsRemaining int       `json:"free_generations_remaining"`
	SubscriptionTier         string    `json:"subscription_tier"`
	APIKeyProviders          []string  `json:"api_key_providers"`
	CreatedAt                time.Time `json:"created_at"`
}
