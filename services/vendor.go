package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/asadnavaid07/artstay-backend-asad/config"
	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

// VendorService handles the standalone supplier directory. Vendors carry
// their own credentials and are not part of the Account/profile pairs.
type VendorService struct {
	db *gorm.DB
}

func NewVendorService(db *gorm.DB) *VendorService {
	return &VendorService{db: db}
}

type VendorRegistration struct {
	BusinessName  string `json:"business_name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	BusinessType  string `json:"business_type" binding:"required"`
	Location      string `json:"location" binding:"required"`

	YearsOfExperience   int    `json:"years_of_experience"`
	BusinessDescription string `json:"business_description" binding:"required"`

	IDCard               string `json:"id_card" binding:"required"`
	GICertificate        string `json:"gi_certificate"`
	SampleProductPhoto   string `json:"sample_product_photo" binding:"required"`
	BusinessRegistration string `json:"business_registration"`
}

func (s *VendorService) Register(p VendorRegistration) error {
	var existing entity.Vendor
	err := s.db.Where("email = ?", p.Email).First(&existing).Error
	if err == nil {
		return Conflict("Vendor already exists with this email")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := config.HashPassword(p.Password)
	if err != nil {
		return err
	}

	return s.db.Create(&entity.Vendor{
		BusinessName:         p.BusinessName,
		ContactPerson:        p.ContactPerson,
		Email:                p.Email,
		Password:             hashed,
		PhoneNumber:          p.PhoneNumber,
		BusinessType:         p.BusinessType,
		Location:             p.Location,
		YearsOfExperience:    p.YearsOfExperience,
		BusinessDescription:  p.BusinessDescription,
		IDCard:               p.IDCard,
		GICertificate:        p.GICertificate,
		SampleProductPhoto:   p.SampleProductPhoto,
		BusinessRegistration: p.BusinessRegistration,
	}).Error
}

type VendorLoginResult struct {
	VendorID     uint   `json:"vendor_id"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	BusinessType string `json:"business_type"`
}

func (s *VendorService) Login(email, password string) (*VendorLoginResult, error) {
	var vendor entity.Vendor
	err := s.db.Where("email = ?", email).First(&vendor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Unauthorized("Vendor not found")
	}
	if err != nil {
		return nil, err
	}
	if !config.CheckPasswordHash(password, vendor.Password) {
		return nil, Unauthorized("Invalid password")
	}

	return &VendorLoginResult{
		VendorID:     vendor.ID,
		BusinessName: vendor.BusinessName,
		Email:        vendor.Email,
		BusinessType: vendor.BusinessType,
	}, nil
}
