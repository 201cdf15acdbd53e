package entity

import (
	"gorm.io/gorm"
)

// Vendor is a standalone supplier record with its own credentials, separate
// from the Account/profile pairs.
type Vendor struct {
	gorm.Model

	BusinessName  string `json:"business_name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `gorm:"uniqueIndex;not null" json:"email" binding:"required,email"`
	Password      string `gorm:"not null" json:"-"`
	PhoneNumber   string `json:"phone_number"`
	BusinessType  string `json:"business_type"`
	Location      string `json:"location"`

	YearsOfExperience   int    `json:"years_of_experience"`
	BusinessDescription string `json:"business_description"`

	IDCard               string `json:"id_card"`
	GICertificate        string `json:"gi_certificate"`
	SampleProductPhoto   string `json:"sample_product_photo"`
	BusinessRegistration string `json:"business_registration"`
}
