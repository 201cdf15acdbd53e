package entity

import (
	"gorm.io/gorm"
)

type TravelPlaner struct {
	gorm.Model

	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	PriceRange  string   `json:"price_range"`
	Language    []string `gorm:"serializer:json" json:"language"`
	Speciality  []string `gorm:"serializer:json" json:"speciality"`
	DP          string   `json:"dp"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`
}
