package entity

import (
	"gorm.io/gorm"
)

type EcoTransit struct {
	gorm.Model

	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `gorm:"default:'/placeholder.png'" json:"dp"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`

	Options []EcoTransitOption `gorm:"foreignKey:TransitID" json:"options,omitempty"`
}

// EcoTransitOption carries the base fee every booking total is computed from.
type EcoTransitOption struct {
	gorm.Model

	TransitID   uint    `gorm:"index;not null" json:"transit_id"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	BaseFee     float64 `json:"base_fee" binding:"required,gt=0"`

	Transit EcoTransit `gorm:"foreignKey:TransitID" json:"transit,omitempty"`
}
