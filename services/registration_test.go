package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadnavaid07/artstay-backend-asad/config"
	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

func TestCreateArtisanWritesAccountAndProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	err := svc.CreateArtisan(ArtisanRegistration{
		Email:     "weaver@example.com",
		Password:  "secret123",
		FirstName: "Aisha",
		LastName:  "Mir",
		Address:   "Srinagar",
	})
	require.NoError(t, err)

	var account entity.Account
	require.NoError(t, db.Where("email = ?", "weaver@example.com").First(&account).Error)
	assert.Equal(t, entity.AccountArtisan, account.AccountType)
	assert.NotEqual(t, "secret123", account.Password, "password must be stored hashed")
	assert.True(t, config.CheckPasswordHash("secret123", account.Password))

	var artisan entity.Artisan
	require.NoError(t, db.Where("account_id = ?", account.ID).First(&artisan).Error)
	assert.Equal(t, "Aisha", artisan.FirstName)
	assert.True(t, artisan.IsActive)
}

func TestCreateArtisanDuplicateEmailConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	p := ArtisanRegistration{Email: "dup@example.com", Password: "pw", FirstName: "A", LastName: "B"}
	require.NoError(t, svc.CreateArtisan(p))

	err := svc.CreateArtisan(p)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Contains(t, err.Error(), "already exists")

	var count int64
	require.NoError(t, db.Model(&entity.Account{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateArtisanRollsBackAccountOnProfileFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	require.NoError(t, db.Migrator().DropTable(&entity.Artisan{}))

	err := svc.CreateArtisan(ArtisanRegistration{
		Email:     "orphan@example.com",
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Account{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "profile failure must not leave an orphan account")
}

func TestUpdateArtisanUpsertsMissingProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	require.NoError(t, db.Create(&entity.Account{
		Email: "late@example.com", Password: "x", AccountType: entity.AccountArtisan,
	}).Error)
	var account entity.Account
	require.NoError(t, db.Where("email = ?", "late@example.com").First(&account).Error)

	err := svc.UpdateArtisan(ArtisanUpdate{AccountID: account.ID, FirstName: "Late", LastName: "Joiner"})
	require.NoError(t, err)

	var artisan entity.Artisan
	require.NoError(t, db.Where("account_id = ?", account.ID).First(&artisan).Error)
	assert.Equal(t, "Late", artisan.FirstName)

	err = svc.UpdateArtisan(ArtisanUpdate{AccountID: account.ID, FirstName: "Renamed", LastName: "Joiner"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Artisan{}).Where("account_id = ?", account.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "update must not create a second profile row")
	require.NoError(t, db.Where("account_id = ?", account.ID).First(&artisan).Error)
	assert.Equal(t, "Renamed", artisan.FirstName)
}

func TestCreateEcoTransitDefaultsDP(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	require.NoError(t, svc.CreateEcoTransit(EcoTransitRegistration{
		Email: "rides@example.com", Password: "pw", Name: "Valley Rides",
	}))

	var transit entity.EcoTransit
	require.NoError(t, db.Where("name = ?", "Valley Rides").First(&transit).Error)
	assert.Equal(t, "/placeholder.png", transit.DP)
}

func TestCreateShopReturnsIdentifiers(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	result, err := svc.CreateShop(ShopRegistration{
		Email:        "shop@example.com",
		Password:     "pw",
		BusinessName: "Heritage Crafts",
		WorkingDays:  []string{"Mon", "Tue"},
	})
	require.NoError(t, err)
	assert.NotZero(t, result.AccountID)
	assert.NotZero(t, result.ShopID)
	assert.Equal(t, "shop@example.com", result.Email)
}

func TestUpdateRestaurantMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistrationService(db)

	err := svc.UpdateRestaurant(RestaurantUpdate{RestaurantID: 99, Name: "Ghost"})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
