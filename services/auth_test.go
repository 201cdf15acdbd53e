package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadnavaid07/artstay-backend-asad/config"
	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

const testSecret = "test-secret"

func TestLoginSuccessIssuesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	hashed, err := config.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Account{
		Email: "seller@example.com", Password: hashed, AccountType: entity.AccountArtisan,
	}).Error)

	result, err := svc.Login(LoginPayload{Email: "seller@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", result.Email)
	assert.Equal(t, entity.AccountArtisan, result.AccountType)
	assert.NotZero(t, result.AccountID)

	parsed, err := jwt.Parse(result.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(result.AccountID), claims["account_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	hashed, err := config.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Account{
		Email: "seller@example.com", Password: hashed, AccountType: entity.AccountArtisan,
	}).Error)

	_, err = svc.Login(LoginPayload{Email: "seller@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	_, err := svc.Login(LoginPayload{Email: "nobody@example.com", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, "Invalid email or password", err.Error(),
		"unknown email and wrong password must be indistinguishable")
}

func TestVendorRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewVendorService(db)

	reg := VendorRegistration{
		BusinessName:        "Heritage Copperware",
		ContactPerson:       "N. Bhat",
		Email:               "vendor@example.com",
		Password:            "pw123456",
		PhoneNumber:         "0000000000",
		BusinessType:        "Metal Work",
		Location:            "Srinagar",
		BusinessDescription: "Hand-engraved copper",
		IDCard:              "id.jpg",
		SampleProductPhoto:  "sample.jpg",
	}
	require.NoError(t, svc.Register(reg))

	err := svc.Register(reg)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "Vendor already exists with this email", err.Error())

	result, err := svc.Login("vendor@example.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "Heritage Copperware", result.BusinessName)
	assert.Equal(t, "Metal Work", result.BusinessType)

	_, err = svc.Login("vendor@example.com", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid password", err.Error())

	_, err = svc.Login("ghost@example.com", "pw123456")
	require.Error(t, err)
	assert.Equal(t, "Vendor not found", err.Error())
}
