package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

func TestFairCreateEventUppercasesEnums(t *testing.T) {
	db := newTestDB(t)
	svc := NewFairService(db)

	fair := entity.Fair{FirstName: "F", LastName: "S", AccountID: 3, IsActive: true}
	require.NoError(t, db.Create(&fair).Error)

	require.NoError(t, svc.CreateEvent(FairEventPayload{
		AccountID: 3,
		Title:     "Autumn Craft Fair",
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		FairType:  "craft",
		Location:  "local",
	}))

	var event entity.FairEvent
	require.NoError(t, db.First(&event).Error)
	assert.Equal(t, entity.FairTypeCraft, event.FairType)
	assert.Equal(t, entity.FairLocationLocal, event.Location)
	assert.Equal(t, fair.ID, event.FairID)
}

func TestFairCreateEventUnknownSeller(t *testing.T) {
	db := newTestDB(t)
	svc := NewFairService(db)

	err := svc.CreateEvent(FairEventPayload{
		AccountID: 42,
		Title:     "Ghost Fair",
		StartDate: time.Now(),
		EndDate:   time.Now(),
		FairType:  "craft",
		Location:  "local",
	})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Fair seller not found", err.Error())
}

func TestFairFindByCriteriaDateOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewFairService(db)

	fair := entity.Fair{FirstName: "F", LastName: "S", AccountID: 1, IsActive: true}
	require.NoError(t, db.Create(&fair).Error)

	mk := func(title string, start, end time.Time) {
		require.NoError(t, db.Create(&entity.FairEvent{
			FairID:    fair.ID,
			Title:     title,
			StartDate: start,
			EndDate:   end,
			FairType:  entity.FairTypeCraft,
			Location:  entity.FairLocationLocal,
		}).Error)
	}
	day := func(d int) time.Time { return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC) }
	mk("overlapping", day(1), day(10))
	mk("before window", day(1), day(2))
	mk("after window", day(20), day(25))

	start, end := day(5), day(15)
	events, err := svc.FindByCriteria(FairCriteria{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "overlapping", events[0].Title)
}

func TestFairFindByCriteriaNoMatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewFairService(db)

	_, err := svc.FindByCriteria(FairCriteria{EventLocation: "international"})
	require.Error(t, err)
	assert.Equal(t, KindNoMatch, KindOf(err))
	assert.Equal(t, "No fair found", err.Error())
}

func TestFairCreateBookingReturnsIdentifiers(t *testing.T) {
	db := newTestDB(t)
	svc := NewFairService(db)

	fair := entity.Fair{FirstName: "F", LastName: "S", AccountID: 1, IsActive: true}
	require.NoError(t, db.Create(&fair).Error)

	result, err := svc.CreateBooking(FairBookingPayload{
		FirstName: "Guest", LastName: "One", Email: "g@example.com",
		EventDate:       time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
		NumberOfTickets: 2,
		TotalAmount:     40,
		FairID:          fair.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, result.BookingID)
	assert.NotZero(t, result.BookingDetailID)

	var booking entity.FairBooking
	require.NoError(t, db.First(&booking, result.BookingID).Error)
	assert.Equal(t, entity.BookingStatusNew, booking.Status)
}
