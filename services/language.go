package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

type LanguageServiceSvc struct {
	db *gorm.DB
}

func NewLanguageService(db *gorm.DB) *LanguageServiceSvc {
	return &LanguageServiceSvc{db: db}
}

func (s *LanguageServiceSvc) GetByID(serviceID uint) (*entity.LanguageService, error) {
	var svc entity.LanguageService
	err := s.db.First(&svc, serviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Language service not found")
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *LanguageServiceSvc) GetAll() ([]entity.LanguageService, error) {
	var services []entity.LanguageService
	err := s.db.Order("created_at DESC").Find(&services).Error
	return services, err
}

func (s *LanguageServiceSvc) ApplicationStatus(accountID uint) (*entity.LanguageService, error) {
	var svc entity.LanguageService
	err := s.db.Where("account_id = ?", accountID).First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || isMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *LanguageServiceSvc) ToggleStatus(serviceID uint, status bool) error {
	return s.db.Model(&entity.LanguageService{}).Where("id = ?", serviceID).
		Update("is_active", status).Error
}

func (s *LanguageServiceSvc) Delete(serviceID uint) error {
	return s.db.Delete(&entity.LanguageService{}, serviceID).Error
}

type LanguageFilters struct {
	Languages       []string `json:"languages"`
	Specializations []string `json:"specializations"`
	Locations       []string `json:"locations"`
}

func (s *LanguageServiceSvc) Filters() (*LanguageFilters, error) {
	var services []entity.LanguageService
	err := s.db.Where("is_active = ?", true).Find(&services).Error
	if err != nil {
		return nil, err
	}

	langSet := map[string]struct{}{}
	specSet := map[string]struct{}{}
	locSet := map[string]struct{}{}
	for _, svc := range services {
		for _, l := range svc.Languages {
			if l != "" {
				langSet[l] = struct{}{}
			}
		}
		for _, sp := range svc.Specialization {
			if sp != "" {
				specSet[sp] = struct{}{}
			}
		}
		if svc.Location != "" {
			locSet[svc.Location] = struct{}{}
		}
	}

	filters := &LanguageFilters{}
	for l := range langSet {
		filters.Languages = append(filters.Languages, l)
	}
	for sp := range specSet {
		filters.Specializations = append(filters.Specializations, sp)
	}
	for l := range locSet {
		filters.Locations = append(filters.Locations, l)
	}
	sort.Strings(filters.Languages)
	sort.Strings(filters.Specializations)
	sort.Strings(filters.Locations)
	return filters, nil
}

type LanguageBookingPayload struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	AdditionalNote string `json:"additional_note"`

	LanguageServiceID uint      `json:"language_service_id" binding:"required"`
	BookingDate       time.Time `json:"booking_date" binding:"required"`
	Hours             int       `json:"hours" binding:"required,gt=0"`
}

// CreateBooking prices the session from the interpreter's hourly rate; a
// missing service record aborts before anything is written.
func (s *LanguageServiceSvc) CreateBooking(p LanguageBookingPayload) (*entity.LanguageBooking, error) {
	var svc entity.LanguageService
	err := s.db.First(&svc, p.LanguageServiceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Language service not found")
	}
	if err != nil {
		return nil, err
	}

	detail := entity.BookingDetail{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		AdditionalNote: p.AdditionalNote,
	}
	if err := s.db.Create(&detail).Error; err != nil {
		return nil, err
	}

	booking := entity.LanguageBooking{
		ReferenceNo:       uuid.NewString(),
		BookingDate:       p.BookingDate,
		Hours:             p.Hours,
		TotalAmount:       float64(p.Hours) * svc.HourlyRate,
		Status:            entity.BookingStatusNew,
		LanguageServiceID: p.LanguageServiceID,
		BookingDetailID:   detail.ID,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

type LanguageExplorationCriteria struct {
	Language       string `json:"language"`
	Specialization string `json:"specialization"`
	Location       string `json:"location"`
}

// FindExploration matches serialized list columns by substring, which is how
// the storefront free-text facets behave.
func (s *LanguageServiceSvc) FindExploration(p LanguageExplorationCriteria) ([]entity.LanguageService, error) {
	q := s.db.Where("is_active = ?", true)
	if p.Language != "" {
		q = q.Where("LOWER(languages) LIKE ?", "%"+strings.ToLower(p.Language)+"%")
	}
	if p.Specialization != "" {
		q = q.Where("LOWER(specialization) LIKE ?", "%"+strings.ToLower(p.Specialization)+"%")
	}
	if p.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(p.Location)+"%")
	}

	var services []entity.LanguageService
	if err := q.Find(&services).Error; err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, NoMatch("No language exploration found")
	}
	return services, nil
}
