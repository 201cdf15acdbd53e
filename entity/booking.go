package entity

import (
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle states. Bookings are created "new" and only ever change
// status, they are never hard-deleted.
const (
	BookingStatusNew       = "new"
	BookingStatusProcessed = "processed"
	BookingStatusCancelled = "cancelled"
)

// BookingDetail is the contact-info record shared by every booking type.
type BookingDetail struct {
	gorm.Model

	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	AdditionalNote string `json:"additional_note"`
}

type ArtisanBooking struct {
	gorm.Model

	ReferenceNo string    `gorm:"uniqueIndex" json:"reference_no"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	PackageID   uint      `json:"package_id"`
	Status      string    `gorm:"default:'new'" json:"status"`

	ArtisanID       uint `gorm:"index;not null" json:"artisan_id"`
	BookingDetailID uint `gorm:"not null" json:"booking_detail_id"`

	Artisan       Artisan       `gorm:"foreignKey:ArtisanID" json:"artisan,omitempty"`
	BookingDetail BookingDetail `gorm:"foreignKey:BookingDetailID" json:"booking_detail,omitempty"`
}

type FairBooking struct {
	gorm.Model

	ReferenceNo     string    `gorm:"uniqueIndex" json:"reference_no"`
	EventDate       time.Time `json:"event_date"`
	NumberOfTickets int       `json:"number_of_tickets"`
	TicketType      string    `json:"ticket_type"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `gorm:"default:'new'" json:"status"`

	EventID         uint `gorm:"index" json:"event_id"`
	FairID          uint `gorm:"index;not null" json:"fair_id"`
	BookingDetailID uint `gorm:"not null" json:"booking_detail_id"`

	Event         FairEvent     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Fair          Fair          `gorm:"foreignKey:FairID" json:"fair,omitempty"`
	BookingDetail BookingDetail `gorm:"foreignKey:BookingDetailID" json:"booking_detail,omitempty"`
}

type EcoTransitBooking struct {
	gorm.Model

	ReferenceNo        string    `gorm:"uniqueIndex" json:"reference_no"`
	TravelDate         time.Time `json:"travel_date"`
	NumberOfPassengers int       `json:"number_of_passengers"`
	Distance           float64   `json:"distance"`
	TotalAmount        float64   `json:"total_amount"`
	Status             string    `gorm:"default:'new'" json:"status"`

	OptionID        uint `gorm:"index;not null" json:"option_id"`
	TransitID       uint `gorm:"index;not null" json:"transit_id"`
	BookingDetailID uint `gorm:"not null" json:"booking_detail_id"`

	Option        EcoTransitOption `gorm:"foreignKey:OptionID" json:"option,omitempty"`
	Transit       EcoTransit       `gorm:"foreignKey:TransitID" json:"transit,omitempty"`
	BookingDetail BookingDetail    `gorm:"foreignKey:BookingDetailID" json:"booking_detail,omitempty"`
}

type LanguageBooking struct {
	gorm.Model

	ReferenceNo string    `gorm:"uniqueIndex" json:"reference_no"`
	BookingDate time.Time `json:"booking_date"`
	Hours       int       `json:"hours"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `gorm:"default:'new'" json:"status"`

	LanguageServiceID uint `gorm:"index;not null" json:"language_service_id"`
	BookingDetailID   uint `gorm:"not null" json:"booking_detail_id"`

	LanguageService LanguageService `gorm:"foreignKey:LanguageServiceID" json:"language_service,omitempty"`
	BookingDetail   BookingDetail   `gorm:"foreignKey:BookingDetailID" json:"booking_detail,omitempty"`
}
