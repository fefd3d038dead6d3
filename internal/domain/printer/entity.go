package printer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid printer status")
	ErrNoMaterials      = errors.New("printer must support at least one material")
	ErrInvalidCommision = errors.New("commission rate must be between 0 and 1")
)

type Location struct {
	Country   string
	State     *string
	City      string
	Latitude  float64
	Longitude float64
}

type BuildVolume struct {
	X float64
	Y float64
	Z float64
}

type Capabilities struct {
	Materials        []string
	MaxSize          BuildVolume
	Precision        float64
	SupportedFormats []string
}

// SupportsAll reports whether every required material is printable.
func (c Capabilities) SupportsAll(required []string) bool {
	for _, m := range required {
		found := false
		for _, have := range c.Materials {
			if have == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Printer is a network-registered machine owned by an individual operator.
// Created on application approval; never deleted in normal operation.
type Printer struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	name            string
	location        Location
	capabilities    Capabilities
	status          Status
	commissionRate  float64
	completedOrders int
	rating          float64
	isVerified      bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPrinter(ownerID uuid.UUID, name string, loc Location, caps Capabilities, commissionRate float64) (*Printer, error) {
	if len(caps.Materials) == 0 {
		return nil, ErrNoMaterials
	}
	if commissionRate < 0 || commissionRate > 1 {
		return nil, ErrInvalidCommision
	}

	return &Printer{
		id:             uuid.New(),
		ownerID:        ownerID,
		name:           name,
		location:       loc,
		capabilities:   caps,
		status:         StatusActive,
		commissionRate: commissionRate,
	}, nil
}

func ReconstructPrinter(
	id, ownerID uuid.UUID,
	name string,
	loc Location,
	caps Capabilities,
	status Status,
	commissionRate float64,
	completedOrders int,
	rating float64,
	isVerified bool,
	createdAt, updatedAt time.Time,
) *Printer {
	return &Printer{
		id:              id,
		ownerID:         ownerID,
		name:            name,
		location:        loc,
		capabilities:    caps,
		status:          status,
		commissionRate:  commissionRate,
		completedOrders: completedOrders,
		rating:          rating,
		isVerified:      isVerified,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Printer) IsActive() bool {
	return p.status == StatusActive
}

func (p *Printer) ID() uuid.UUID              { return p.id }
func (p *Printer) OwnerID() uuid.UUID         { return p.ownerID }
func (p *Printer) Name() string               { return p.name }
func (p *Printer) Location() Location         { return p.location }
func (p *Printer) Capabilities() Capabilities { return p.capabilities }
func (p *Printer) Status() Status             { return p.status }
func (p *Printer) CommissionRate() float64    { return p.commissionRate }
func (p *Printer) CompletedOrders() int       { return p.completedOrders }
func (p *Printer) Rating() float64            { return p.rating }
func (p *Printer) IsVerified() bool           { return p.isVerified }
func (p *Printer) CreatedAt() time.Time       { return p.createdAt }
func (p *Printer) UpdatedAt() time.Time       { return p.updatedAt }
