package entity

import (
	"gorm.io/gorm"
)

type Artisan struct {
	gorm.Model

	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `json:"dp"`

	Experience  string `json:"experience"`
	Education   string `json:"education"`
	Certificate string `json:"certificate"`
	Training    string `json:"training"`
	Recognition string `json:"recognition"`

	CraftID    uint `gorm:"index" json:"craft_id"`
	SubCraftID uint `gorm:"index" json:"sub_craft_id"`
	IsActive   bool `gorm:"default:true" json:"is_active"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`

	Craft    Craft    `gorm:"foreignKey:CraftID" json:"craft,omitempty"`
	SubCraft SubCraft `gorm:"foreignKey:SubCraftID" json:"sub_craft,omitempty"`
}

// Portfolio holds the artisan's image gallery. Updates replace the whole
// list, they never merge.
type Portfolio struct {
	gorm.Model

	ArtisanID uint     `gorm:"uniqueIndex;not null" json:"artisan_id"`
	Images    []string `gorm:"serializer:json" json:"images"`
}
