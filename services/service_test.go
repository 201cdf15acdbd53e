package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

// newTestDB opens a fresh in-memory database named after the test so tests
// never share state, and migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Account{},
		&entity.Craft{},
		&entity.SubCraft{},
		&entity.Artisan{},
		&entity.Portfolio{},
		&entity.Fair{},
		&entity.FairEvent{},
		&entity.EcoTransit{},
		&entity.EcoTransitOption{},
		&entity.LanguageService{},
		&entity.Shop{},
		&entity.Restaurant{},
		&entity.TravelPlaner{},
		&entity.Hotel{},
		&entity.Vendor{},
		&entity.BookingDetail{},
		&entity.ArtisanBooking{},
		&entity.FairBooking{},
		&entity.EcoTransitBooking{},
		&entity.LanguageBooking{},
	))
	return db
}
