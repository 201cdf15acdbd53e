package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

func TestArtisanToggleStatusKeepsBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	artisan := entity.Artisan{FirstName: "Aisha", LastName: "Mir", AccountID: 1, IsActive: true}
	require.NoError(t, db.Create(&artisan).Error)

	require.NoError(t, svc.CreateBooking(ArtisanBookingPayload{
		FirstName: "Guest", LastName: "One", Email: "g@example.com",
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 0, 2),
		ArtisanID: artisan.ID,
	}))

	require.NoError(t, svc.ToggleStatus(artisan.ID, false))

	var got entity.Artisan
	require.NoError(t, db.First(&got, artisan.ID).Error)
	assert.False(t, got.IsActive)

	var bookings int64
	require.NoError(t, db.Model(&entity.ArtisanBooking{}).Where("artisan_id = ?", artisan.ID).Count(&bookings).Error)
	assert.Equal(t, int64(1), bookings, "deactivation must not touch bookings")
}

func TestArtisanReplacePortfolio(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	artisan := entity.Artisan{FirstName: "A", LastName: "B", AccountID: 7, IsActive: true}
	require.NoError(t, db.Create(&artisan).Error)

	require.NoError(t, svc.ReplacePortfolio(7, []string{"a.jpg", "b.jpg"}))
	require.NoError(t, svc.ReplacePortfolio(7, []string{"c.jpg"}))

	portfolio, err := svc.PortfolioByArtisanID(artisan.ID)
	require.NoError(t, err)
	require.NotNil(t, portfolio)
	assert.Equal(t, []string{"c.jpg"}, portfolio.Images, "replacement must not merge with the old list")

	var count int64
	require.NoError(t, db.Model(&entity.Portfolio{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestArtisanReplacePortfolioUnknownAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	err := svc.ReplacePortfolio(99, []string{"a.jpg"})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestArtisanBookedDatesExcludeCancelled(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	artisan := entity.Artisan{FirstName: "A", LastName: "B", AccountID: 1, IsActive: true}
	require.NoError(t, db.Create(&artisan).Error)

	mk := func(status string, day int) {
		detail := entity.BookingDetail{FirstName: "G", LastName: "X", Email: "g@example.com"}
		require.NoError(t, db.Create(&detail).Error)
		require.NoError(t, db.Create(&entity.ArtisanBooking{
			ReferenceNo:     fmt.Sprintf("%s-%d", status, day),
			StartDate:       time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2026, 9, day+1, 0, 0, 0, 0, time.UTC),
			Status:          status,
			ArtisanID:       artisan.ID,
			BookingDetailID: detail.ID,
		}).Error)
	}
	mk(entity.BookingStatusNew, 1)
	mk(entity.BookingStatusProcessed, 5)
	mk(entity.BookingStatusCancelled, 10)

	dates, err := svc.BookedDates(artisan.ID)
	require.NoError(t, err)
	require.Len(t, dates, 2, "cancelled bookings free their dates")
}

func TestArtisanApplicationStatusAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	artisan, err := svc.ApplicationStatus(123)
	require.NoError(t, err)
	assert.Nil(t, artisan)
}

func TestArtisanFindByCraftNoMatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	_, err := svc.FindByCraft(ArtisanCraftCriteria{Craft: "Glasswork", SubCraft: "Stained"})
	require.Error(t, err)
	assert.Equal(t, KindNoMatch, KindOf(err))
	assert.Equal(t, "No artisan craft found", err.Error())
}

func TestArtisanFindByCraftCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	craft := entity.Craft{CraftName: "Weaving", CraftSlug: "weaving"}
	require.NoError(t, db.Create(&craft).Error)
	sub := entity.SubCraft{CraftID: craft.ID, SubCraftName: "Pashmina Shawl", SubCraftSlug: "weaving-pashmina-shawl"}
	require.NoError(t, db.Create(&sub).Error)
	require.NoError(t, db.Create(&entity.Artisan{
		FirstName: "A", LastName: "B", AccountID: 1,
		CraftID: craft.ID, SubCraftID: sub.ID, IsActive: true,
	}).Error)

	artisans, err := svc.FindByCraft(ArtisanCraftCriteria{Craft: "weaving", SubCraft: "PASHMINA SHAWL"})
	require.NoError(t, err)
	require.Len(t, artisans, 1)
}

func TestArtisanFindNearbyLocationContainment(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	craft := entity.Craft{CraftName: "Weaving", CraftSlug: "weaving"}
	require.NoError(t, db.Create(&craft).Error)
	require.NoError(t, db.Create(&entity.Artisan{
		FirstName: "A", LastName: "B", AccountID: 1,
		Address: "Zadibal, Srinagar, Jammu and Kashmir, India",
		CraftID: craft.ID, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&entity.Artisan{
		FirstName: "C", LastName: "D", AccountID: 2,
		Address: "Leh, Ladakh, India",
		CraftID: craft.ID, IsActive: true,
	}).Error)

	var criteria NearbyArtisanCriteria
	criteria.Craft = "Weaving"
	criteria.Location.City = "srinagar"

	artisans, err := svc.FindNearby(criteria)
	require.NoError(t, err)
	require.Len(t, artisans, 1)
	assert.Equal(t, "A", artisans[0].FirstName)
}

func TestArtisanPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewArtisanService(db)

	for i := 1; i <= 7; i++ {
		require.NoError(t, db.Create(&entity.Artisan{
			FirstName: "A", LastName: "B", AccountID: uint(i), IsActive: true,
		}).Error)
	}

	page, err := svc.Pagination(3, 3)
	require.NoError(t, err)
	assert.Len(t, page.Artisans, 3)
	assert.Equal(t, int64(7), page.Metadata.TotalItems)
	assert.Equal(t, 2, page.Metadata.CurrentPage)
	assert.Equal(t, 3, page.Metadata.TotalPages)
	assert.True(t, page.Metadata.HasNextPage)
	require.NotNil(t, page.Metadata.Cursor)
	assert.Equal(t, "6", *page.Metadata.Cursor)
}
