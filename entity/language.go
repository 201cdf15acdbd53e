package entity

import (
	"gorm.io/gorm"
)

type LanguageService struct {
	gorm.Model

	ProfileName    string   `json:"profile_name" binding:"required"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Description    string   `json:"description"`
	Experience     string   `json:"experience"`
	Languages      []string `gorm:"serializer:json" json:"languages"`
	Specialization []string `gorm:"serializer:json" json:"specialization"`

	HourlyRate      float64  `json:"hourly_rate"`
	MinBookingHours int      `json:"min_booking_hours"`
	MaxBookingHours int      `json:"max_booking_hours"`
	Availability    []string `gorm:"serializer:json" json:"availability"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`

	Location      string   `json:"location"`
	ServiceMode   []string `gorm:"serializer:json" json:"service_mode"`
	Certification []string `gorm:"serializer:json" json:"certification"`
	Qualification string   `json:"qualification"`
	ProfileImage  string   `json:"profile_image"`
	Portfolio     []string `gorm:"serializer:json" json:"portfolio"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`
}
