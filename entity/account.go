package entity

import (
	"gorm.io/gorm"
)

// Account types. Every registered party gets exactly one account and one
// profile row of the matching type.
const (
	AccountArtisan      = "ARTISAN"
	AccountFairs        = "FAIRS"
	AccountSafari       = "SAFARI"
	AccountEcoTransit   = "ECO_TRANSIT"
	AccountLanguage     = "LANGUAGE"
	AccountHotel        = "HOTEL"
	AccountRestaurant   = "RESTAURANT"
	AccountTravelPlaner = "TRAVEL_PLANER"
	AccountBusiness     = "BUSINESS"
)

type Account struct {
	gorm.Model

	Email       string `gorm:"uniqueIndex;not null" json:"email" binding:"required,email"`
	Password    string `gorm:"not null" json:"-"` // bcrypt hash
	AccountType string `gorm:"not null" json:"account_type"`
}
