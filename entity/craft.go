package entity

import (
	"gorm.io/gorm"
)

// Craft / SubCraft form the two-level taxonomy artisans register under.
// Rows are reconciled from the static catalog; slugs are derived from the
// display names and are the reconciliation key.
type Craft struct {
	gorm.Model

	CraftName string `gorm:"not null" json:"craft_name"`
	CraftSlug string `gorm:"uniqueIndex;not null" json:"craft_slug"`

	SubCrafts []SubCraft `gorm:"foreignKey:CraftID;constraint:OnDelete:CASCADE" json:"sub_crafts,omitempty"`
}

type SubCraft struct {
	gorm.Model

	CraftID      uint   `gorm:"index;not null" json:"craft_id"`
	SubCraftName string `gorm:"not null" json:"sub_craft_name"`
	SubCraftSlug string `gorm:"uniqueIndex;not null" json:"sub_craft_slug"`
}
