package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

var db *gorm.DB

func DB() *gorm.DB { return db }

func newGormLogger() gormLogger.Interface {
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// ConnectionDB opens Postgres when DATABASE_URL is set, otherwise a local
// SQLite file.
func ConnectionDB(cfg *Config) {
	var err error
	lg := newGormLogger()

	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{Logger: lg})
		if err != nil {
			panic("❌ Failed to connect PostgreSQL")
		}
		fmt.Println("✅ Connected to PostgreSQL")
		return
	}

	db, err = gorm.Open(sqlite.Open("artstay.db?cache=shared"), &gorm.Config{Logger: lg})
	if err != nil {
		panic("❌ Failed to connect SQLite")
	}
	fmt.Println("✅ Connected to SQLite")
}

func SetupDatabase() {
	if err := db.AutoMigrate(
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
	); err != nil {
		panic(err)
	}

	db.Exec(`CREATE INDEX IF NOT EXISTS idx_fair_events_start_date ON fair_events(start_date)`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_fair_events_end_date ON fair_events(end_date)`)

	fmt.Println("✅ All tables migrated successfully")
}
