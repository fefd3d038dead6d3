package printer

import (
	"time"

	"github.com/google/uuid"
)

type ApplicantAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

type PersonalInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   ApplicantAddress
}

type PrinterInfo struct {
	Brand               string
	Model               string
	YearPurchased       int
	Materials           []string
	MaxBuildVolume      BuildVolume
	HasEnclosure        bool
	AdditionalEquipment []string
}

type Experience struct {
	YearsExperience        int
	PreviousCommercialWork bool
	Specializations        []string
	PortfolioURLs          []string
}

type Availability struct {
	HoursPerWeek      int
	PreferredSchedule string
	VacationPlanning  string
}

// Application is a request to join the printer network. One live
// (pending or approved) application per user; a rejected one may be
// superseded by a new submission.
type Application struct {
	id           uuid.UUID
	userID       uuid.UUID
	personalInfo PersonalInfo
	printerInfo  PrinterInfo
	experience   Experience
	availability Availability
	motivation   string
	status       ApplicationStatus
	submittedAt  time.Time
	reviewedAt   *time.Time
	reviewNotes  *string
}

func NewApplication(
	userID uuid.UUID,
	personal PersonalInfo,
	info PrinterInfo,
	exp Experience,
	avail Availability,
	motivation string,
	submittedAt time.Time,
) (*Application, error) {
	if len(info.Materials) == 0 {
		return nil, ErrNoMaterials
	}

	return &Application{
		id:           uuid.New(),
		userID:       userID,
		personalInfo: personal,
		printerInfo:  info,
		experience:   exp,
		availability: avail,
		motivation:   motivation,
		status:       ApplicationPending,
		submittedAt:  submittedAt,
	}, nil
}

func ReconstructApplication(
	id, userID uuid.UUID,
	personal PersonalInfo,
	info PrinterInfo,
	exp Experience,
	avail Availability,
	motivation string,
	status ApplicationStatus,
	submittedAt time.Time,
	reviewedAt *time.Time,
	reviewNotes *string,
) *Application {
	return &Application{
		id:           id,
		userID:       userID,
		personalInfo: personal,
		printerInfo:  info,
		experience:   exp,
		availability: avail,
		motivation:   motivation,
		status:       status,
		submittedAt:  submittedAt,
		reviewedAt:   reviewedAt,
		reviewNotes:  reviewNotes,
	}
}

// DefaultCommissionRate applied to printers created from approved
// applications until the operator negotiates otherwise.
const DefaultCommissionRate = 0.15

// Approve produces the network printer backed by this application. The
// printer is placed at the applicant's address coordinates supplied by the
// reviewer (applications carry no geocode of their own).
func (a *Application) Approve(lat, lon float64, reviewedAt time.Time, notes *string) (*Printer, error) {
	state := a.personalInfo.Address.State
	loc := Location{
		Country:   a.personalInfo.Address.Country,
		State:     &state,
		City:      a.personalInfo.Address.City,
		Latitude:  lat,
		Longitude: lon,
	}
	caps := Capabilities{
		Materials:        a.printerInfo.Materials,
		MaxSize:          a.printerInfo.MaxBuildVolume,
		Precision:        0.1,
		SupportedFormats: []string{"stl", "obj", "3mf"},
	}

	p, err := NewPrinter(a.userID, a.printerInfo.Brand+" "+a.printerInfo.Model, loc, caps, DefaultCommissionRate)
	if err != nil {
		return nil, err
	}

	a.status = ApplicationApproved
	a.reviewedAt = &reviewedAt
	a.reviewNotes = notes
	return p, nil
}

func (a *Application) Reject(reviewedAt time.Time, notes *string) {
	a.status = ApplicationRejected
	a.reviewedAt = &reviewedAt
	a.reviewNotes = notes
}

func (a *Application) ID() uuid.UUID              { return a.id }
func (a *Application) UserID() uuid.UUID          { return a.userID }
func (a *Application) PersonalInfo() PersonalInfo { return a.personalInfo }
func (a *Application) PrinterInfo() PrinterInfo   { return a.printerInfo }
func (a *Application) Experience() Experience     { return a.experience }
func (a *Application) Availability() Availability { return a.availability }
func (a *Application) Motivation() string         { return a.motivation }
func (a *Application) Status() ApplicationStatus  { return a.status }
func (a *Application) SubmittedAt() time.Time     { return a.submittedAt }
func (a *Application) ReviewedAt() *time.Time     { return a.reviewedAt }
func (a *Application) ReviewNotes() *string       { return a.reviewNotes }
