package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

type ArtisanService struct {
	db *gorm.DB
}

func NewArtisanService(db *gorm.DB) *ArtisanService {
	return &ArtisanService{db: db}
}

// ApplicationStatus returns the profile row for an account, or nil when the
// seller has not submitted one yet. A missing table counts as "not submitted"
// so the endpoint stays up before migrations have run.
func (s *ArtisanService) ApplicationStatus(accountID uint) (*entity.Artisan, error) {
	var artisan entity.Artisan
	err := s.db.Preload("Craft").Preload("SubCraft").
		Where("account_id = ?", accountID).First(&artisan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || isMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artisan, nil
}

func (s *ArtisanService) DetailByAccountID(accountID uint) (*entity.Artisan, error) {
	return s.ApplicationStatus(accountID)
}

func (s *ArtisanService) DetailByArtisanID(artisanID uint) (*entity.Artisan, error) {
	var artisan entity.Artisan
	err := s.db.Preload("Craft").Preload("SubCraft").First(&artisan, artisanID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Artisan not found")
	}
	if err != nil {
		return nil, err
	}
	return &artisan, nil
}

// ToggleStatus flips visibility only. Related bookings are untouched.
func (s *ArtisanService) ToggleStatus(artisanID uint, status bool) error {
	return s.db.Model(&entity.Artisan{}).Where("id = ?", artisanID).
		Update("is_active", status).Error
}

func (s *ArtisanService) GetAll() ([]entity.Artisan, error) {
	var artisans []entity.Artisan
	err := s.db.Preload("Craft").Preload("SubCraft").
		Order("created_at DESC").Find(&artisans).Error
	return artisans, err
}

type ArtisanPage struct {
	Artisans []entity.Artisan `json:"artisans"`
	Metadata PageMetadata     `json:"metadata"`
}

func (s *ArtisanService) Pagination(limit, cursor int) (*ArtisanPage, error) {
	limit, skip := normalizePage(limit, cursor)

	var total int64
	if err := s.db.Model(&entity.Artisan{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var artisans []entity.Artisan
	err := s.db.Preload("Craft").Preload("SubCraft").
		Order("created_at DESC").Limit(limit).Offset(skip).
		Find(&artisans).Error
	if err != nil {
		return nil, err
	}

	return &ArtisanPage{
		Artisans: artisans,
		Metadata: buildPageMetadata(total, limit, skip),
	}, nil
}

// ReplacePortfolio swaps the whole image list. Images are never merged with
// the previous set.
func (s *ArtisanService) ReplacePortfolio(accountID uint, images []string) error {
	var artisan entity.Artisan
	err := s.db.Select("id").Where("account_id = ?", accountID).First(&artisan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Artisan not found")
	}
	if err != nil {
		return err
	}

	var portfolio entity.Portfolio
	err = s.db.Where("artisan_id = ?", artisan.ID).First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&entity.Portfolio{ArtisanID: artisan.ID, Images: images}).Error
	}
	if err != nil {
		return err
	}
	portfolio.Images = images
	return s.db.Save(&portfolio).Error
}

func (s *ArtisanService) PortfolioByArtisanID(artisanID uint) (*entity.Portfolio, error) {
	var portfolio entity.Portfolio
	err := s.db.Where("artisan_id = ?", artisanID).First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

func (s *ArtisanService) PortfolioByAccountID(accountID uint) (*entity.Portfolio, error) {
	var artisan entity.Artisan
	err := s.db.Select("id").Where("account_id = ?", accountID).First(&artisan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Artisan not found")
	}
	if err != nil {
		return nil, err
	}
	return s.PortfolioByArtisanID(artisan.ID)
}

type ArtisanBookingPayload struct {
	FirstName      string    `json:"first_name" binding:"required"`
	LastName       string    `json:"last_name" binding:"required"`
	Email          string    `json:"email" binding:"required,email"`
	Phone          string    `json:"phone"`
	AdditionalNote string    `json:"additional_note"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	PackageID      uint      `json:"package_id"`
	ArtisanID      uint      `json:"artisan_id" binding:"required"`
}

// CreateBooking writes the shared contact record first, then the booking row
// referencing it.
func (s *ArtisanService) CreateBooking(p ArtisanBookingPayload) error {
	detail := entity.BookingDetail{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		AdditionalNote: p.AdditionalNote,
	}
	if err := s.db.Create(&detail).Error; err != nil {
		return err
	}

	return s.db.Create(&entity.ArtisanBooking{
		ReferenceNo:     uuid.NewString(),
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		PackageID:       p.PackageID,
		Status:          entity.BookingStatusNew,
		ArtisanID:       p.ArtisanID,
		BookingDetailID: detail.ID,
	}).Error
}

func (s *ArtisanService) BookingsByAccount(accountID uint) ([]entity.ArtisanBooking, error) {
	var bookings []entity.ArtisanBooking
	err := s.db.
		Joins("JOIN artisans ON artisans.id = artisan_bookings.artisan_id").
		Where("artisans.account_id = ?", accountID).
		Preload("BookingDetail").Preload("Artisan").
		Order("artisan_bookings.created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// BookedDates lists occupied ranges for the availability calendar. Cancelled
// bookings free their dates.
func (s *ArtisanService) BookedDates(artisanID uint) ([]DateRange, error) {
	var bookings []entity.ArtisanBooking
	err := s.db.Select("start_date", "end_date").
		Where("artisan_id = ? AND status <> ?", artisanID, entity.BookingStatusCancelled).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	dates := make([]DateRange, 0, len(bookings))
	for _, b := range bookings {
		dates = append(dates, DateRange{StartDate: b.StartDate, EndDate: b.EndDate})
	}
	return dates, nil
}

type ArtisanCraftCriteria struct {
	Craft    string `json:"craft" binding:"required"`
	SubCraft string `json:"sub_craft" binding:"required"`
}

func (s *ArtisanService) FindByCraft(p ArtisanCraftCriteria) ([]entity.Artisan, error) {
	var craft entity.Craft
	err := s.db.Where("LOWER(craft_name) = LOWER(?)", p.Craft).First(&craft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NoMatch("No artisan craft found")
	}
	if err != nil {
		return nil, err
	}

	var subCraft entity.SubCraft
	err = s.db.Where("LOWER(sub_craft_name) = LOWER(?) AND craft_id = ?", p.SubCraft, craft.ID).
		First(&subCraft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NoMatch("No artisan craft found")
	}
	if err != nil {
		return nil, err
	}

	var artisans []entity.Artisan
	err = s.db.Preload("Craft").Preload("SubCraft").
		Where("craft_id = ? AND sub_craft_id = ?", craft.ID, subCraft.ID).
		Find(&artisans).Error
	if err != nil {
		return nil, err
	}
	if len(artisans) == 0 {
		return nil, NoMatch("No artisan craft found")
	}
	return artisans, nil
}

type NearbyArtisanCriteria struct {
	Craft    string `json:"craft" binding:"required"`
	Location struct {
		Country string `json:"country"`
		State   string `json:"state"`
		City    string `json:"city"`
	} `json:"location"`
}

// FindNearby matches each provided location part against the artisan address
// with case-insensitive containment. Absent parts impose no constraint.
func (s *ArtisanService) FindNearby(p NearbyArtisanCriteria) ([]entity.Artisan, error) {
	var craft entity.Craft
	err := s.db.Where("LOWER(craft_name) = LOWER(?)", p.Craft).First(&craft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NoMatch("No artisan craft found")
	}
	if err != nil {
		return nil, err
	}

	q := s.db.Preload("Craft").Preload("SubCraft").Where("craft_id = ?", craft.ID)
	for _, part := range []string{p.Location.Country, p.Location.State, p.Location.City} {
		if part != "" {
			q = q.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(part)+"%")
		}
	}

	var artisans []entity.Artisan
	if err := q.Find(&artisans).Error; err != nil {
		return nil, err
	}
	if len(artisans) == 0 {
		return nil, NoMatch("No artisan craft found")
	}
	return artisans, nil
}

type TraditionalTourCriteria struct {
	Destination string `json:"destination"`
}

func (s *ArtisanService) FindTraditionalTour(p TraditionalTourCriteria) ([]entity.Artisan, error) {
	q := s.db.Preload("Craft").Preload("SubCraft")
	if p.Destination != "" {
		q = q.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(p.Destination)+"%")
	}

	var tours []entity.Artisan
	if err := q.Find(&tours).Error; err != nil {
		return nil, err
	}
	if len(tours) == 0 {
		return nil, NoMatch("No Traditional tour found")
	}
	return tours, nil
}

type SustainableTourCriteria struct {
	AccommodationType string `json:"accommodation_type"`
}

func (s *ArtisanService) FindSustainableLivingTour(p SustainableTourCriteria) ([]entity.Artisan, error) {
	q := s.db.Preload("Craft").Preload("SubCraft")
	if p.AccommodationType != "" {
		q = q.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(p.AccommodationType)+"%")
	}

	var tours []entity.Artisan
	if err := q.Find(&tours).Error; err != nil {
		return nil, err
	}
	if len(tours) == 0 {
		return nil, NoMatch("No sustainable living tour found")
	}
	return tours, nil
}
