package entity

import (
	"time"

	"gorm.io/gorm"
)

type Fair struct {
	gorm.Model

	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `json:"dp"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`

	Events []FairEvent `gorm:"foreignKey:FairID" json:"events,omitempty"`
}

// Fair event type / location enums, stored uppercased.
const (
	FairTypeCraft    = "CRAFT"
	FairTypeCulture  = "CULTURE"
	FairTypeSeasonal = "SEASONAL"

	FairLocationLocal         = "LOCAL"
	FairLocationNational      = "NATIONAL"
	FairLocationInternational = "INTERNATIONAL"
)

type FairEvent struct {
	gorm.Model

	FairID    uint      `gorm:"index;not null" json:"fair_id"`
	Title     string    `json:"title" binding:"required"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	FairType  string    `json:"fair_type"`
	Location  string    `json:"location"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`

	Description string `json:"description"`
	Vanue       string `json:"vanue"`
	Organizer   string `json:"organizer"`

	Fair Fair `gorm:"foreignKey:FairID" json:"fair,omitempty"`
}
