package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

type FairService struct {
	db *gorm.DB
}

func NewFairService(db *gorm.DB) *FairService {
	return &FairService{db: db}
}

func (s *FairService) ApplicationStatus(accountID uint) (*entity.Fair, error) {
	var fair entity.Fair
	err := s.db.Where("account_id = ?", accountID).First(&fair).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || isMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fair, nil
}

func (s *FairService) ProfileByAccountID(accountID uint) (*entity.Fair, error) {
	return s.ApplicationStatus(accountID)
}

func (s *FairService) DetailByID(fairID uint) (*entity.Fair, error) {
	var fair entity.Fair
	err := s.db.Preload("Events").First(&fair, fairID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Fair not found")
	}
	if err != nil {
		return nil, err
	}
	return &fair, nil
}

func (s *FairService) GetAll() ([]entity.Fair, error) {
	var fairs []entity.Fair
	err := s.db.Order("created_at DESC").Find(&fairs).Error
	return fairs, err
}

type FairPage struct {
	Fairs    []entity.Fair `json:"fairs"`
	Metadata PageMetadata  `json:"metadata"`
}

func (s *FairService) Pagination(limit, cursor int) (*FairPage, error) {
	limit, skip := normalizePage(limit, cursor)

	var total int64
	if err := s.db.Model(&entity.Fair{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var fairs []entity.Fair
	err := s.db.Order("created_at DESC").Limit(limit).Offset(skip).Find(&fairs).Error
	if err != nil {
		return nil, err
	}

	return &FairPage{
		Fairs:    fairs,
		Metadata: buildPageMetadata(total, limit, skip),
	}, nil
}

func (s *FairService) ToggleStatus(fairID uint, status bool) error {
	return s.db.Model(&entity.Fair{}).Where("id = ?", fairID).
		Update("is_active", status).Error
}

type FairEventPayload struct {
	AccountID   uint      `json:"account_id"`
	Title       string    `json:"title" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	FairType    string    `json:"fair_type" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	Description string    `json:"description"`
	Vanue       string    `json:"vanue"`
	Organizer   string    `json:"organizer"`
}

func (s *FairService) CreateEvent(p FairEventPayload) error {
	var fair entity.Fair
	err := s.db.Select("id").Where("account_id = ?", p.AccountID).First(&fair).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Fair seller not found")
	}
	if err != nil {
		return err
	}

	return s.db.Create(&entity.FairEvent{
		FairID:      fair.ID,
		Title:       p.Title,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		FairType:    strings.ToUpper(p.FairType),
		Location:    strings.ToUpper(p.Location),
		Longitude:   p.Longitude,
		Latitude:    p.Latitude,
		Description: p.Description,
		Vanue:       p.Vanue,
		Organizer:   p.Organizer,
	}).Error
}

type FairEventUpdate struct {
	EventID uint `json:"event_id" binding:"required"`
	FairEventPayload
}

func (s *FairService) UpdateEvent(p FairEventUpdate) error {
	var event entity.FairEvent
	err := s.db.First(&event, p.EventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Fair event not found")
	}
	if err != nil {
		return err
	}

	event.Title = p.Title
	event.StartDate = p.StartDate
	event.EndDate = p.EndDate
	event.FairType = strings.ToUpper(p.FairType)
	event.Location = strings.ToUpper(p.Location)
	event.Longitude = p.Longitude
	event.Latitude = p.Latitude
	event.Description = p.Description
	event.Vanue = p.Vanue
	event.Organizer = p.Organizer
	return s.db.Save(&event).Error
}

func (s *FairService) EventsByAccount(accountID uint) ([]entity.FairEvent, error) {
	var events []entity.FairEvent
	err := s.db.
		Joins("JOIN fairs ON fairs.id = fair_events.fair_id").
		Where("fairs.account_id = ?", accountID).
		Find(&events).Error
	return events, err
}

func (s *FairService) EventByID(eventID uint) (*entity.FairEvent, error) {
	var event entity.FairEvent
	err := s.db.First(&event, eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Fair event not found")
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

type FairBookingPayload struct {
	FirstName       string    `json:"first_name" binding:"required"`
	LastName        string    `json:"last_name" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Phone           string    `json:"phone"`
	AdditionalNote  string    `json:"additional_note"`
	EventDate       time.Time `json:"event_date" binding:"required"`
	NumberOfTickets int       `json:"number_of_tickets" binding:"required,gt=0"`
	TicketType      string    `json:"ticket_type"`
	TotalAmount     float64   `json:"total_amount"`
	EventID         uint      `json:"event_id"`
	FairID          uint      `json:"fair_id" binding:"required"`
}

type FairBookingResult struct {
	BookingID       uint `json:"booking_id"`
	BookingDetailID uint `json:"booking_detail_id"`
}

func (s *FairService) CreateBooking(p FairBookingPayload) (*FairBookingResult, error) {
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

	booking := entity.FairBooking{
		ReferenceNo:     uuid.NewString(),
		EventDate:       p.EventDate,
		NumberOfTickets: p.NumberOfTickets,
		TicketType:      p.TicketType,
		TotalAmount:     p.TotalAmount,
		Status:          entity.BookingStatusNew,
		EventID:         p.EventID,
		FairID:          p.FairID,
		BookingDetailID: detail.ID,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}

	return &FairBookingResult{BookingID: booking.ID, BookingDetailID: detail.ID}, nil
}

func (s *FairService) BookingsByAccount(accountID uint) ([]entity.FairBooking, error) {
	var bookings []entity.FairBooking
	err := s.db.
		Joins("JOIN fairs ON fairs.id = fair_bookings.fair_id").
		Where("fairs.account_id = ?", accountID).
		Preload("BookingDetail").Preload("Event").Preload("Fair").
		Order("fair_bookings.created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

type FairCriteria struct {
	EventLocation string     `json:"event_location"`
	EventType     string     `json:"event_type"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

// FindByCriteria filters events by location/type enums and by overlap with
// the requested date window.
func (s *FairService) FindByCriteria(p FairCriteria) ([]entity.FairEvent, error) {
	q := s.db.Preload("Fair").Order("start_date ASC")
	if p.EventLocation != "" {
		q = q.Where("location = ?", strings.ToUpper(p.EventLocation))
	}
	if p.EventType != "" {
		q = q.Where("fair_type = ?", strings.ToUpper(p.EventType))
	}
	if p.StartDate != nil {
		q = q.Where("end_date >= ?", *p.StartDate)
	}
	if p.EndDate != nil {
		q = q.Where("start_date <= ?", *p.EndDate)
	}

	var events []entity.FairEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, NoMatch("No fair found")
	}
	return events, nil
}
