package request

import (
	"droidforge/internal/domain/printer"
)

type ApplicantAddressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type PersonalInfoRequest struct {
	FirstName string                  `json:"first_name" binding:"required"`
	LastName  string                  `json:"last_name" binding:"required"`
	Email     string                  `json:"email" binding:"required,email"`
	Phone     string                  `json:"phone" binding:"required"`
	Address   ApplicantAddressRequest `json:"address" binding:"required"`
}

type BuildVolumeRequest struct {
	X float64 `json:"x" binding:"required,gt=0"`
	Y float64 `json:"y" binding:"required,gt=0"`
	Z float64 `json:"z" binding:"required,gt=0"`
}

type PrinterInfoRequest struct {
	Brand               string             `json:"brand" binding:"required"`
	Model               string             `json:"model" binding:"required"`
	YearPurchased       int                `json:"year_purchased" binding:"required"`
	Materials           []string           `json:"materials" binding:"required,min=1"`
	MaxBuildVolume      BuildVolumeRequest `json:"max_build_volume" binding:"required"`
	HasEnclosure        bool               `json:"has_enclosure"`
	AdditionalEquipment []string           `json:"additional_equipment"`
}

type ExperienceRequest struct {
	YearsExperience        int      `json:"years_experience" binding:"min=0"`
	PreviousCommercialWork bool     `json:"previous_commercial_work"`
	Specializations        []string `json:"specializations"`
	PortfolioURLs          []string `json:"portfolio_urls"`
}

type AvailabilityRequest struct {
	HoursPerWeek      int    `json:"hours_per_week" binding:"required,min=1"`
	PreferredSchedule string `json:"preferred_schedule"`
	VacationPlanning  string `json:"vacation_planning"`
}

type SubmitApplicationRequest struct {
	PersonalInfo PersonalInfoRequest `json:"personal_info" binding:"required"`
	PrinterInfo  PrinterInfoRequest  `json:"printer_info" binding:"required"`
	Experience   ExperienceRequest   `json:"experience" binding:"required"`
	Availability AvailabilityRequest `json:"availability" binding:"required"`
	Motivation   string              `json:"motivation" binding:"required"`
}

func (r SubmitApplicationRequest) PersonalInfoDomain() printer.PersonalInfo {
	return printer.PersonalInfo{
		FirstName: r.PersonalInfo.FirstName,
		LastName:  r.PersonalInfo.LastName,
		Email:     r.PersonalInfo.Email,
		Phone:     r.PersonalInfo.Phone,
		Address: printer.ApplicantAddress{
			Street:  r.PersonalInfo.Address.Street,
			City:    r.PersonalInfo.Address.City,
			State:   r.PersonalInfo.Address.State,
			ZipCode: r.PersonalInfo.Address.ZipCode,
			Country: r.PersonalInfo.Address.Country,
		},
	}
}

func (r SubmitApplicationRequest) PrinterInfoDomain() printer.PrinterInfo {
	return printer.PrinterInfo{
		Brand:         r.PrinterInfo.Brand,
		Model:         r.PrinterInfo.Model,
		YearPurchased: r.PrinterInfo.YearPurchased,
		Materials:     r.PrinterInfo.Materials,
		MaxBuildVolume: printer.BuildVolume{
			X: r.PrinterInfo.MaxBuildVolume.X,
			Y: r.PrinterInfo.MaxBuildVolume.Y,
			Z: r.PrinterInfo.MaxBuildVolume.Z,
		},
		HasEnclosure:        r.PrinterInfo.HasEnclosure,
		AdditionalEquipment: r.PrinterInfo.AdditionalEquipment,
	}
}

func (r SubmitApplicationRequest) ExperienceDomain() printer.Experience {
	return printer.Experience{
		YearsExperience:        r.Experience.YearsExperience,
		PreviousCommercialWork: r.Experience.PreviousCommercialWork,
		Specializations:        r.Experience.Specializations,
		PortfolioURLs:          r.Experience.PortfolioURLs,
	}
}

func (r SubmitApplicationRequest) AvailabilityDomain() printer.Availability {
	return printer.Availability{
		HoursPerWeek:      r.Availability.HoursPerWeek,
		PreferredSchedule: r.Availability.PreferredSchedule,
		VacationPlanning:  r.Availability.VacationPlanning,
	}
}

type ReviewApplicationRequest struct {
	Approve   bool    `json:"approve"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Notes     *string `json:"notes,omitempty"`
}
