package entity

import (
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model

	Name        string  `json:"name" binding:"required"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`
}
