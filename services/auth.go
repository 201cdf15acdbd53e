package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/asadnavaid07/artstay-backend-asad/config"
	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

// AuthService verifies credentials and issues session tokens. Login failures
// never reveal whether the email or the password was wrong.
type AuthService struct {
	db     *gorm.DB
	secret string
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{db: db, secret: secret}
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token       string `json:"token"`
	AccountID   uint   `json:"account_id"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
}

func (s *AuthService) Login(p LoginPayload) (*LoginResult, error) {
	var account entity.Account
	err := s.db.Where("email = ?", p.Email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if !config.CheckPasswordHash(p.Password, account.Password) {
		return nil, Unauthorized("Invalid email or password")
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:       token,
		AccountID:   account.ID,
		Email:       account.Email,
		AccountType: account.AccountType,
	}, nil
}

func (s *AuthService) issueToken(accountID uint) (string, error) {
	claims := jwt.MapClaims{
		"account_id": accountID,
		"iat":        jwt.NewNumericDate(time.Now()),
		"exp":        jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
