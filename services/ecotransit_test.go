package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

func TestEcoTransitBookingTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewEcoTransitService(db)

	transit := entity.EcoTransit{Name: "Valley Rides", AccountID: 1, IsActive: true}
	require.NoError(t, db.Create(&transit).Error)
	option := entity.EcoTransitOption{TransitID: transit.ID, Title: "E-Rickshaw", BaseFee: 5}
	require.NoError(t, db.Create(&option).Error)

	booking, err := svc.CreateBooking(EcoTransitBookingPayload{
		FirstName:          "Omar",
		LastName:           "Shah",
		Email:              "omar@example.com",
		OptionID:           option.ID,
		TransitID:          transit.ID,
		TravelDate:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		NumberOfPassengers: 2,
		Distance:           10,
	})
	require.NoError(t, err)

	// 10 km at a 5 base fee for 2 passengers.
	assert.Equal(t, 100.0, booking.TotalAmount)
	assert.Equal(t, entity.BookingStatusNew, booking.Status)
	assert.NotEmpty(t, booking.ReferenceNo)
}

func TestEcoTransitBookingMissingOption(t *testing.T) {
	db := newTestDB(t)
	svc := NewEcoTransitService(db)

	_, err := svc.CreateBooking(EcoTransitBookingPayload{
		FirstName:          "Omar",
		LastName:           "Shah",
		Email:              "omar@example.com",
		OptionID:           42,
		TransitID:          1,
		TravelDate:         time.Now(),
		NumberOfPassengers: 1,
		Distance:           3,
	})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Eco transit option not found", err.Error())

	var details int64
	require.NoError(t, db.Model(&entity.BookingDetail{}).Count(&details).Error)
	assert.Equal(t, int64(0), details, "nothing may be written when the option is missing")
}

func TestEcoTransitFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewEcoTransitService(db)

	transit := entity.EcoTransit{Name: "Valley Rides", Address: "Srinagar", AccountID: 1, IsActive: true}
	require.NoError(t, db.Create(&transit).Error)
	require.NoError(t, db.Create(&entity.EcoTransitOption{TransitID: transit.ID, Title: "Shikara", BaseFee: 30}).Error)
	require.NoError(t, db.Create(&entity.EcoTransitOption{TransitID: transit.ID, Title: "E-Bus", BaseFee: 250}).Error)

	hidden := entity.EcoTransit{Name: "Hidden", Address: "Gulmarg", AccountID: 2, IsActive: true}
	require.NoError(t, db.Create(&hidden).Error)
	require.NoError(t, db.Model(&hidden).Update("is_active", false).Error)

	filters, err := svc.Filters()
	require.NoError(t, err)
	assert.Equal(t, []string{"Srinagar"}, filters.Locations)
	assert.Equal(t, []string{"E-Bus", "Shikara"}, filters.VehicleTypes)
	assert.Contains(t, filters.PriceRanges, "Under $50")
	assert.Contains(t, filters.PriceRanges, "$200+")
}

func TestEcoTransitFindAdventureNoMatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewEcoTransitService(db)

	_, err := svc.FindAdventure(EcoTransitAdventureCriteria{VehicleType: "Submarine"})
	require.Error(t, err)
	assert.Equal(t, KindNoMatch, KindOf(err))
	assert.Equal(t, "No Eco transit adventure found", err.Error())
}

func TestEcoTransitApplicationStatusMissingTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewEcoTransitService(db)

	require.NoError(t, db.Migrator().DropTable(&entity.EcoTransit{}))

	transit, err := svc.ApplicationStatus(1)
	require.NoError(t, err)
	assert.Nil(t, transit)
}
