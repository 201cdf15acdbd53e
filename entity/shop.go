package entity

import (
	"gorm.io/gorm"
)

type Shop struct {
	gorm.Model

	BusinessName string `json:"business_name" binding:"required"`
	ShopName     string `json:"shop_name"`
	VendorType   string `json:"vendor_type"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`

	OwnerName   string `json:"owner_name"`
	PhoneNumber string `json:"phone_number"`
	Website     string `json:"website"`
	Description string `json:"description"`

	ProductCategories []string `gorm:"serializer:json" json:"product_categories"`
	IsGICertified     bool     `json:"is_gi_certified"`
	IsHandmade        string   `json:"is_handmade"`
	PickupOptions     []string `gorm:"serializer:json" json:"pickup_options"`
	DeliveryTime      string   `json:"delivery_time"`
	DeliveryFee       string   `json:"delivery_fee"`
	PricingStructure  string   `json:"pricing_structure"`
	OrderProcessing   string   `json:"order_processing"`
	PaymentMethods    []string `gorm:"serializer:json" json:"payment_methods"`
	ReturnPolicy      string   `json:"return_policy"`
	StockAvailability string   `json:"stock_availability"`

	OffersCustomization bool     `json:"offers_customization"`
	PackagingType       string   `json:"packaging_type"`
	ShopTiming          string   `json:"shop_timing"`
	WorkingDays         []string `gorm:"serializer:json" json:"working_days"`

	AgreedToTerms     bool `json:"agreed_to_terms"`
	AgreedToBlacklist bool `json:"agreed_to_blacklist"`

	DP       string `json:"dp"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"foreignKey:AccountID" json:"-"`
}
