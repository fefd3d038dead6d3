package writerepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"droidforge/internal/domain/printer"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
)

type printerLocationDoc struct {
	Country   string  `json:"country"`
	State     *string `json:"state,omitempty"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type buildVolumeDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type printerCapabilitiesDoc struct {
	Materials        []string       `json:"materials"`
	MaxSize          buildVolumeDoc `json:"max_size"`
	Precision        float64        `json:"precision"`
	SupportedFormats []string       `json:"supported_formats"`
}

// applicationDoc is the full submission stored as one jsonb document.
// Reviews only touch the status columns, so the document never mutates.
type applicationDoc struct {
	PersonalInfo struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   struct {
			Street  string `json:"street"`
			City    string `json:"city"`
			State   string `json:"state"`
			ZipCode string `json:"zip_code"`
			Country string `json:"country"`
		} `json:"address"`
	} `json:"personal_info"`
	PrinterInfo struct {
		Brand               string         `json:"brand"`
		Model               string         `json:"model"`
		YearPurchased       int            `json:"year_purchased"`
		Materials           []string       `json:"materials"`
		MaxBuildVolume      buildVolumeDoc `json:"max_build_volume"`
		HasEnclosure        bool           `json:"has_enclosure"`
		AdditionalEquipment []string       `json:"additional_equipment"`
	} `json:"printer_info"`
	Experience struct {
		YearsExperience        int      `json:"years_experience"`
		PreviousCommercialWork bool     `json:"previous_commercial_work"`
		Specializations        []string `json:"specializations"`
		PortfolioURLs          []string `json:"portfolio_urls"`
	} `json:"experience"`
	Availability struct {
		HoursPerWeek      int    `json:"hours_per_week"`
		PreferredSchedule string `json:"preferred_schedule"`
		VacationPlanning  string `json:"vacation_planning"`
	} `json:"availability"`
	Motivation string `json:"motivation"`
}

type PrinterRepository struct {
	db db.DBTX
}

func NewPrinterRepository(db db.DBTX) *PrinterRepository {
	return &PrinterRepository{db: db}
}

func (r *PrinterRepository) Create(ctx context.Context, tx db.DBTX, p *printer.Printer) error {
	loc := p.Location()
	caps := p.Capabilities()
	locationJSON, err := json.Marshal(printerLocationDoc{
		Country:   loc.Country,
		State:     loc.State,
		City:      loc.City,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	})
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode printer location", err)
	}
	capabilitiesJSON, err := json.Marshal(printerCapabilitiesDoc{
		Materials:        caps.Materials,
		MaxSize:          buildVolumeDoc{X: caps.MaxSize.X, Y: caps.MaxSize.Y, Z: caps.MaxSize.Z},
		Precision:        caps.Precision,
		SupportedFormats: caps.SupportedFormats,
	})
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode printer capabilities", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO printers (
			id, owner_id, name, location, capabilities, status, commission_rate,
			completed_orders, rating, is_verified, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, false, now(), now())`,
		p.ID(), p.OwnerID(), p.Name(), locationJSON, capabilitiesJSON,
		p.Status().String(), p.CommissionRate())
	if err != nil {
		return wrapWriteErr("failed to create printer", err)
	}
	return nil
}

func (r *PrinterRepository) CreateApplication(ctx context.Context, tx db.DBTX, a *printer.Application) error {
	doc, err := json.Marshal(encodeApplicationDoc(a))
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode application", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO printer_applications (id, user_id, application_data, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID(), a.UserID(), doc, a.Status().String(), a.SubmittedAt())
	if err != nil {
		return wrapWriteErr("failed to create printer application", err)
	}
	return nil
}

func (r *PrinterRepository) FindApplication(ctx context.Context, id uuid.UUID) (*printer.Application, error) {
	return r.scanApplication(ctx, `
		SELECT id, user_id, application_data, status, submitted_at, reviewed_at, review_notes
		FROM printer_applications WHERE id = $1`, id)
}

func (r *PrinterRepository) FindLiveApplicationByUser(ctx context.Context, userID uuid.UUID) (*printer.Application, error) {
	return r.scanApplication(ctx, `
		SELECT id, user_id, application_data, status, submitted_at, reviewed_at, review_notes
		FROM printer_applications
		WHERE user_id = $1 AND status IN ('pending', 'approved')
		ORDER BY submitted_at DESC LIMIT 1`, userID)
}

func (r *PrinterRepository) UpdateApplication(ctx context.Context, tx db.DBTX, a *printer.Application) error {
	tag, err := tx.Exec(ctx, `
		UPDATE printer_applications
		SET status = $2, reviewed_at = $3, review_notes = $4
		WHERE id = $1`,
		a.ID(), a.Status().String(), a.ReviewedAt(), a.ReviewNotes())
	if err != nil {
		return wrapWriteErr("failed to update printer application", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "printer application not found", nil)
	}
	return nil
}

func (r *PrinterRepository) scanApplication(ctx context.Context, sql string, arg any) (*printer.Application, error) {
	var (
		id, userID  uuid.UUID
		docJSON     []byte
		status      string
		submittedAt time.Time
		reviewedAt  *time.Time
		reviewNotes *string
	)
	err := r.db.QueryRow(ctx, sql, arg).
		Scan(&id, &userID, &docJSON, &status, &submittedAt, &reviewedAt, &reviewNotes)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "printer application not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find printer application", err)
	}

	var doc applicationDoc
	if err := json.Unmarshal(docJSON, &doc); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode application", err)
	}

	return printer.ReconstructApplication(
		id, userID,
		printer.PersonalInfo{
			FirstName: doc.PersonalInfo.FirstName,
			LastName:  doc.PersonalInfo.LastName,
			Email:     doc.PersonalInfo.Email,
			Phone:     doc.PersonalInfo.Phone,
			Address: printer.ApplicantAddress{
				Street:  doc.PersonalInfo.Address.Street,
				City:    doc.PersonalInfo.Address.City,
				State:   doc.PersonalInfo.Address.State,
				ZipCode: doc.PersonalInfo.Address.ZipCode,
				Country: doc.PersonalInfo.Address.Country,
			},
		},
		printer.PrinterInfo{
			Brand:         doc.PrinterInfo.Brand,
			Model:         doc.PrinterInfo.Model,
			YearPurchased: doc.PrinterInfo.YearPurchased,
			Materials:     doc.PrinterInfo.Materials,
			MaxBuildVolume: printer.BuildVolume{
				X: doc.PrinterInfo.MaxBuildVolume.X,
				Y: doc.PrinterInfo.MaxBuildVolume.Y,
				Z: doc.PrinterInfo.MaxBuildVolume.Z,
			},
			HasEnclosure:        doc.PrinterInfo.HasEnclosure,
			AdditionalEquipment: doc.PrinterInfo.AdditionalEquipment,
		},
		printer.Experience{
			YearsExperience:        doc.Experience.YearsExperience,
			PreviousCommercialWork: doc.Experience.PreviousCommercialWork,
			Specializations:        doc.Experience.Specializations,
			PortfolioURLs:          doc.Experience.PortfolioURLs,
		},
		printer.Availability{
			HoursPerWeek:      doc.Availability.HoursPerWeek,
			PreferredSchedule: doc.Availability.PreferredSchedule,
			VacationPlanning:  doc.Availability.VacationPlanning,
		},
		doc.Motivation,
		printer.ApplicationStatus(status),
		submittedAt, reviewedAt, reviewNotes,
	), nil
}

func encodeApplicationDoc(a *printer.Application) applicationDoc {
	var doc applicationDoc
	personal := a.PersonalInfo()
	doc.PersonalInfo.FirstName = personal.FirstName
	doc.PersonalInfo.LastName = personal.LastName
	doc.PersonalInfo.Email = personal.Email
	doc.PersonalInfo.Phone = personal.Phone
	doc.PersonalInfo.Address.Street = personal.Address.Street
	doc.PersonalInfo.Address.City = personal.Address.City
	doc.PersonalInfo.Address.State = personal.Address.State
	doc.PersonalInfo.Address.ZipCode = personal.Address.ZipCode
	doc.PersonalInfo.Address.Country = personal.Address.Country

	info := a.PrinterInfo()
	doc.PrinterInfo.Brand = info.Brand
	doc.PrinterInfo.Model = info.Model
	doc.PrinterInfo.YearPurchased = info.YearPurchased
	doc.PrinterInfo.Materials = info.Materials
	doc.PrinterInfo.MaxBuildVolume = buildVolumeDoc{X: info.MaxBuildVolume.X, Y: info.MaxBuildVolume.Y, Z: info.MaxBuildVolume.Z}
	doc.PrinterInfo.HasEnclosure = info.HasEnclosure
	doc.PrinterInfo.AdditionalEquipment = info.AdditionalEquipment

	exp := a.Experience()
	doc.Experience.YearsExperience = exp.YearsExperience
	doc.Experience.PreviousCommercialWork = exp.PreviousCommercialWork
	doc.Experience.Specializations = exp.Specializations
	doc.Experience.PortfolioURLs = exp.PortfolioURLs

	avail := a.Availability()
	doc.Availability.HoursPerWeek = avail.HoursPerWeek
	doc.Availability.PreferredSchedule = avail.PreferredSchedule
	doc.Availability.VacationPlanning = avail.VacationPlanning

	doc.Motivation = a.Motivation()
	return doc
}
