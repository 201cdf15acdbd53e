package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

func TestLanguageBookingPricedFromHourlyRate(t *testing.T) {
	db := newTestDB(t)
	svc := NewLanguageService(db)

	interpreter := entity.LanguageService{
		ProfileName: "Kashmiri Guide",
		HourlyRate:  15,
		AccountID:   1,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&interpreter).Error)

	booking, err := svc.CreateBooking(LanguageBookingPayload{
		FirstName: "Guest", LastName: "One", Email: "g@example.com",
		LanguageServiceID: interpreter.ID,
		BookingDate:       time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Hours:             4,
	})
	require.NoError(t, err)
	assert.Equal(t, 60.0, booking.TotalAmount)
	assert.Equal(t, entity.BookingStatusNew, booking.Status)
}

func TestLanguageBookingMissingService(t *testing.T) {
	db := newTestDB(t)
	svc := NewLanguageService(db)

	_, err := svc.CreateBooking(LanguageBookingPayload{
		FirstName: "Guest", LastName: "One", Email: "g@example.com",
		LanguageServiceID: 77,
		BookingDate:       time.Now(),
		Hours:             2,
	})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Language service not found", err.Error())
}

func TestLanguageFiltersAggregateActiveOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewLanguageService(db)

	require.NoError(t, db.Create(&entity.LanguageService{
		ProfileName: "A", AccountID: 1, IsActive: true,
		Languages:      []string{"Kashmiri", "Urdu"},
		Specialization: []string{"Heritage Tours"},
		Location:       "Srinagar",
	}).Error)
	inactive := entity.LanguageService{
		ProfileName: "B", AccountID: 2, IsActive: true,
		Languages: []string{"French"},
		Location:  "Paris",
	}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	filters, err := svc.Filters()
	require.NoError(t, err)
	assert.Equal(t, []string{"Kashmiri", "Urdu"}, filters.Languages)
	assert.Equal(t, []string{"Heritage Tours"}, filters.Specializations)
	assert.Equal(t, []string{"Srinagar"}, filters.Locations)
}

func TestLanguageFindExplorationNoMatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewLanguageService(db)

	_, err := svc.FindExploration(LanguageExplorationCriteria{Language: "Latin"})
	require.Error(t, err)
	assert.Equal(t, KindNoMatch, KindOf(err))
	assert.Equal(t, "No language exploration found", err.Error())
}

func TestLanguageFindExplorationSubstring(t *testing.T) {
	db := newTestDB(t)
	svc := NewLanguageService(db)

	require.NoError(t, db.Create(&entity.LanguageService{
		ProfileName: "A", AccountID: 1, IsActive: true,
		Languages: []string{"Kashmiri"},
		Location:  "Srinagar",
	}).Error)

	list, err := svc.FindExploration(LanguageExplorationCriteria{Language: "kashmiri", Location: "srinagar"})
	require.NoError(t, err)
	require.Len(t, list, 1)
}
