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

type EcoTransitService struct {
	db *gorm.DB
}

func NewEcoTransitService(db *gorm.DB) *EcoTransitService {
	return &EcoTransitService{db: db}
}

func (s *EcoTransitService) GetAll() ([]entity.EcoTransit, error) {
	var transits []entity.EcoTransit
	err := s.db.Preload("Options").Order("created_at DESC").Find(&transits).Error
	return transits, err
}

func (s *EcoTransitService) Detail(transitID uint) (*entity.EcoTransit, error) {
	var transit entity.EcoTransit
	err := s.db.Preload("Options").First(&transit, transitID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Eco transit not found")
	}
	if err != nil {
		return nil, err
	}
	return &transit, nil
}

func (s *EcoTransitService) ApplicationStatus(accountID uint) (*entity.EcoTransit, error) {
	var transit entity.EcoTransit
	err := s.db.Where("account_id = ?", accountID).First(&transit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || isMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transit, nil
}

func (s *EcoTransitService) ToggleStatus(transitID uint, status bool) error {
	return s.db.Model(&entity.EcoTransit{}).Where("id = ?", transitID).
		Update("is_active", status).Error
}

type EcoTransitOptionPayload struct {
	TransitID   uint    `json:"transit_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	BaseFee     float64 `json:"base_fee" binding:"required,gt=0"`
}

func (s *EcoTransitService) CreateOption(p EcoTransitOptionPayload) (*entity.EcoTransitOption, error) {
	option := entity.EcoTransitOption{
		TransitID:   p.TransitID,
		Title:       p.Title,
		Description: p.Description,
		BaseFee:     p.BaseFee,
	}
	if err := s.db.Create(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (s *EcoTransitService) OptionsByTransit(transitID uint) ([]entity.EcoTransitOption, error) {
	var options []entity.EcoTransitOption
	err := s.db.Where("transit_id = ?", transitID).Find(&options).Error
	return options, err
}

type EcoTransitBookingPayload struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	AdditionalNote string `json:"additional_note"`

	OptionID           uint      `json:"option_id" binding:"required"`
	TransitID          uint      `json:"transit_id" binding:"required"`
	TravelDate         time.Time `json:"travel_date" binding:"required"`
	NumberOfPassengers int       `json:"number_of_passengers" binding:"required,gt=0"`
	Distance           float64   `json:"distance" binding:"required,gt=0"`
}

// CreateBooking resolves the fee basis first; without an option the booking
// is never created. Total = distance × base fee × passengers.
func (s *EcoTransitService) CreateBooking(p EcoTransitBookingPayload) (*entity.EcoTransitBooking, error) {
	var option entity.EcoTransitOption
	err := s.db.First(&option, p.OptionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Eco transit option not found")
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

	booking := entity.EcoTransitBooking{
		ReferenceNo:        uuid.NewString(),
		TravelDate:         p.TravelDate,
		NumberOfPassengers: p.NumberOfPassengers,
		Distance:           p.Distance,
		TotalAmount:        p.Distance * option.BaseFee * float64(p.NumberOfPassengers),
		Status:             entity.BookingStatusNew,
		OptionID:           p.OptionID,
		TransitID:          p.TransitID,
		BookingDetailID:    detail.ID,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *EcoTransitService) BookingsByTransit(transitID uint) ([]entity.EcoTransitBooking, error) {
	var bookings []entity.EcoTransitBooking
	err := s.db.Where("transit_id = ?", transitID).
		Preload("BookingDetail").Preload("Option").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

type EcoTransitFilters struct {
	Locations    []string `json:"locations"`
	VehicleTypes []string `json:"vehicleTypes"`
	PriceRanges  []string `json:"priceRanges"`
}

// Filters aggregates the facets the storefront search form is built from.
func (s *EcoTransitService) Filters() (*EcoTransitFilters, error) {
	var transits []entity.EcoTransit
	err := s.db.Preload("Options").Where("is_active = ?", true).Find(&transits).Error
	if err != nil {
		return nil, err
	}

	locationSet := map[string]struct{}{}
	vehicleSet := map[string]struct{}{}
	var fees []float64
	for _, t := range transits {
		if t.Address != "" && t.Address != "none" {
			locationSet[t.Address] = struct{}{}
		}
		for _, o := range t.Options {
			if o.Title != "" && o.Title != "none" {
				vehicleSet[o.Title] = struct{}{}
			}
			if o.BaseFee > 0 {
				fees = append(fees, o.BaseFee)
			}
		}
	}

	filters := &EcoTransitFilters{
		Locations:    make([]string, 0, len(locationSet)),
		VehicleTypes: make([]string, 0, len(vehicleSet)),
		PriceRanges:  []string{},
	}
	for l := range locationSet {
		filters.Locations = append(filters.Locations, l)
	}
	for v := range vehicleSet {
		filters.VehicleTypes = append(filters.VehicleTypes, v)
	}
	sort.Strings(filters.Locations)
	sort.Strings(filters.VehicleTypes)

	if len(fees) > 0 {
		minFee, maxFee := fees[0], fees[0]
		inBand := func(lo, hi float64) bool {
			for _, f := range fees {
				if f >= lo && f < hi {
					return true
				}
			}
			return false
		}
		for _, f := range fees {
			if f < minFee {
				minFee = f
			}
			if f > maxFee {
				maxFee = f
			}
		}
		if minFee < 50 {
			filters.PriceRanges = append(filters.PriceRanges, "Under $50")
		}
		if inBand(50, 100) {
			filters.PriceRanges = append(filters.PriceRanges, "$50-$100")
		}
		if inBand(100, 200) {
			filters.PriceRanges = append(filters.PriceRanges, "$100-$200")
		}
		if maxFee >= 200 {
			filters.PriceRanges = append(filters.PriceRanges, "$200+")
		}
	}
	return filters, nil
}

type EcoTransitAdventureCriteria struct {
	Pickup        string  `json:"pickup"`
	Destination   string  `json:"destination"`
	VehicleType   string  `json:"vehicle_type"`
	PackageOption float64 `json:"package_option"`
}

// FindAdventure builds a conjunctive filter from whichever criteria are
// present; absent fields impose no constraint.
func (s *EcoTransitService) FindAdventure(p EcoTransitAdventureCriteria) ([]entity.EcoTransitOption, error) {
	q := s.db.Preload("Transit").
		Joins("JOIN eco_transits ON eco_transits.id = eco_transit_options.transit_id")
	if p.VehicleType != "" {
		q = q.Where("LOWER(eco_transit_options.title) = LOWER(?)", p.VehicleType)
	}
	if p.PackageOption > 0 {
		q = q.Where("eco_transit_options.base_fee <= ?", p.PackageOption)
	}
	if p.Pickup != "" {
		q = q.Where("LOWER(eco_transits.address) LIKE ?", "%"+strings.ToLower(p.Pickup)+"%")
	}
	if p.Destination != "" {
		q = q.Where("LOWER(eco_transits.address) LIKE ?", "%"+strings.ToLower(p.Destination)+"%")
	}

	var adventures []entity.EcoTransitOption
	if err := q.Find(&adventures).Error; err != nil {
		return nil, err
	}
	if len(adventures) == 0 {
		return nil, NoMatch("No Eco transit adventure found")
	}
	return adventures, nil
}
