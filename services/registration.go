package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/asadnavaid07/artstay-backend-asad/config"
	"github.com/asadnavaid07/artstay-backend-asad/entity"
)

// RegistrationService creates and updates seller profiles. A registration is
// an Account row plus the matching profile row, written in one transaction so
// a profile failure never leaves an orphan account behind.
type RegistrationService struct {
	db *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// register hashes the credential, creates the account, then hands the new
// account id to makeProfile inside the same transaction.
func (s *RegistrationService) register(email, password, accountType string, makeProfile func(tx *gorm.DB, accountID uint) error) (uint, error) {
	hashed, err := config.HashPassword(password)
	if err != nil {
		return 0, err
	}

	var accountID uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		account := entity.Account{
			Email:       email,
			Password:    hashed,
			AccountType: accountType,
		}
		if err := tx.Create(&account).Error; err != nil {
			if isUniqueViolation(err) {
				return Conflict("An account with this email already exists. Please use a different email or log in with your existing account.")
			}
			return err
		}
		accountID = account.ID
		return makeProfile(tx, account.ID)
	})
	if err != nil {
		return 0, err
	}
	return accountID, nil
}

type ArtisanRegistration struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `json:"dp"`
	Experience  string `json:"experience"`
	Education   string `json:"education"`
	Certificate string `json:"certificate"`
	Training    string `json:"training"`
	Recognition string `json:"recognition"`
	CraftID     uint   `json:"craft_id"`
	SubCraftID  uint   `json:"sub_craft_id"`
}

func (s *RegistrationService) CreateArtisan(p ArtisanRegistration) error {
	_, err := s.register(p.Email, p.Password, entity.AccountArtisan, func(tx *gorm.DB, accountID uint) error {
		return tx.Create(&entity.Artisan{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Address:     p.Address,
			Description: p.Description,
			DP:          p.DP,
			Experience:  p.Experience,
			Education:   p.Education,
			Certificate: p.Certificate,
			Training:    p.Training,
			Recognition: p.Recognition,
			CraftID:     p.CraftID,
			SubCraftID:  p.SubCraftID,
			AccountID:   accountID,
			IsActive:    true,
		}).Error
	})
	return err
}

type ArtisanUpdate struct {
	AccountID   uint   `json:"account_id" binding:"required"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `json:"dp"`
	Experience  string `json:"experience"`
	Education   string `json:"education"`
	Certificate string `json:"certificate"`
	Training    string `json:"training"`
	Recognition string `json:"recognition"`
	CraftID     uint   `json:"craft_id"`
	SubCraftID  uint   `json:"sub_craft_id"`
}

// UpdateArtisan upserts the profile row: registration and profile completion
// are separate steps, so a missing row is created instead of rejected.
func (s *RegistrationService) UpdateArtisan(p ArtisanUpdate) error {
	var artisan entity.Artisan
	err := s.db.Where("account_id = ?", p.AccountID).First(&artisan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&entity.Artisan{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Address:     p.Address,
			Description: p.Description,
			DP:          p.DP,
			Experience:  p.Experience,
			Education:   p.Education,
			Certificate: p.Certificate,
			Training:    p.Training,
			Recognition: p.Recognition,
			CraftID:     p.CraftID,
			SubCraftID:  p.SubCraftID,
			AccountID:   p.AccountID,
			IsActive:    true,
		}).Error
	}
	if err != nil {
		return err
	}

	artisan.FirstName = p.FirstName
	artisan.LastName = p.LastName
	artisan.Address = p.Address
	artisan.Description = p.Description
	artisan.DP = p.DP
	artisan.Experience = p.Experience
	artisan.Education = p.Education
	artisan.Certificate = p.Certificate
	artisan.Training = p.Training
	artisan.Recognition = p.Recognition
	artisan.CraftID = p.CraftID
	artisan.SubCraftID = p.SubCraftID
	return s.db.Save(&artisan).Error
}

type SellerRegistration struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `json:"dp"`
}

func (s *RegistrationService) CreateFair(p SellerRegistration) error {
	_, err := s.register(p.Email, p.Password, entity.AccountFairs, func(tx *gorm.DB, accountID uint) error {
		return tx.Create(&entity.Fair{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Address:     p.Address,
			Description: p.Description,
			DP:          p.DP,
			AccountID:   accountID,
			IsActive:    true,
		}).Error
	})
	return err
}

type SellerUpdate struct {
	AccountID   uint   `json:"account_id" binding:"required"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `json:"dp"`
}

func (s *RegistrationService) UpdateFair(p SellerUpdate) error {
	var fair entity.Fair
	err := s.db.Where("account_id = ?", p.AccountID).First(&fair).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&entity.Fair{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Address:     p.Address,
			Description: p.Description,
			DP:          p.DP,
			AccountID:   p.AccountID,
			IsActive:    true,
		}).Error
	}
	if err != nil {
		return err
	}

	fair.FirstName = p.FirstName
	fair.LastName = p.LastName
	fair.Address = p.Address
	fair.Description = p.Description
	fair.DP = p.DP
	return s.db.Save(&fair).Error
}

type EcoTransitRegistration struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `json:"dp"`
}

func (s *RegistrationService) CreateEcoTransit(p EcoTransitRegistration) error {
	dp := p.DP
	if dp == "" {
		dp = "/placeholder.png"
	}
	_, err := s.register(p.Email, p.Password, entity.AccountEcoTransit, func(tx *gorm.DB, accountID uint) error {
		return tx.Create(&entity.EcoTransit{
			Name:        p.Name,
			Address:     p.Address,
			Description: p.Description,
			DP:          dp,
			AccountID:   accountID,
			IsActive:    true,
		}).Error
	})
	return err
}

type EcoTransitUpdate struct {
	AccountID   uint   `json:"account_id" binding:"required"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	DP          string `json:"dp"`
}

func (s *RegistrationService) UpdateEcoTransit(p EcoTransitUpdate) error {
	var transit entity.EcoTransit
	err := s.db.Where("account_id = ?", p.AccountID).First(&transit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&entity.EcoTransit{
			Name:        p.Name,
			Address:     p.Address,
			Description: p.Description,
			DP:          p.DP,
			AccountID:   p.AccountID,
			IsActive:    true,
		}).Error
	}
	if err != nil {
		return err
	}

	transit.Name = p.Name
	transit.Address = p.Address
	transit.Description = p.Description
	transit.DP = p.DP
	return s.db.Save(&transit).Error
}

type ShopRegistration struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`

	BusinessName string `json:"business_name" binding:"required"`
	ShopName     string `json:"shop_name"`
	VendorType   string `json:"vendor_type"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zip_code"`
	OwnerName    string `json:"owner_name"`
	PhoneNumber  string `json:"phone_number"`
	Website      string `json:"website"`
	Description  string `json:"description"`

	ProductCategories []string `json:"product_categories"`
	IsGICertified     bool     `json:"is_gi_certified"`
	IsHandmade        string   `json:"is_handmade"`
	PickupOptions     []string `json:"pickup_options"`
	DeliveryTime      string   `json:"delivery_time"`
	DeliveryFee       string   `json:"delivery_fee"`
	PricingStructure  string   `json:"pricing_structure"`
	OrderProcessing   string   `json:"order_processing"`
	PaymentMethods    []string `json:"payment_methods"`
	ReturnPolicy      string   `json:"return_policy"`
	StockAvailability string   `json:"stock_availability"`

	OffersCustomization bool     `json:"offers_customization"`
	PackagingType       string   `json:"packaging_type"`
	ShopTiming          string   `json:"shop_timing"`
	WorkingDays         []string `json:"working_days"`

	AgreedToTerms     bool   `json:"agreed_to_terms"`
	AgreedToBlacklist bool   `json:"agreed_to_blacklist"`
	DP                string `json:"dp"`
}

// ShopRegistrationResult is returned to the caller so the storefront can jump
// straight into the seller dashboard.
type ShopRegistrationResult struct {
	AccountID uint   `json:"account_id"`
	ShopID    uint   `json:"shop_id"`
	Email     string `json:"email"`
}

func (s *RegistrationService) CreateShop(p ShopRegistration) (*ShopRegistrationResult, error) {
	var shopID uint
	accountID, err := s.register(p.Email, p.Password, entity.AccountBusiness, func(tx *gorm.DB, accountID uint) error {
		shop := entity.Shop{
			BusinessName:        p.BusinessName,
			ShopName:            p.ShopName,
			VendorType:          p.VendorType,
			Address:             p.Address,
			City:                p.City,
			State:               p.State,
			Country:             p.Country,
			ZipCode:             p.ZipCode,
			OwnerName:           p.OwnerName,
			PhoneNumber:         p.PhoneNumber,
			Website:             p.Website,
			Description:         p.Description,
			ProductCategories:   p.ProductCategories,
			IsGICertified:       p.IsGICertified,
			IsHandmade:          p.IsHandmade,
			PickupOptions:       p.PickupOptions,
			DeliveryTime:        p.DeliveryTime,
			DeliveryFee:         p.DeliveryFee,
			PricingStructure:    p.PricingStructure,
			OrderProcessing:     p.OrderProcessing,
			PaymentMethods:      p.PaymentMethods,
			ReturnPolicy:        p.ReturnPolicy,
			StockAvailability:   p.StockAvailability,
			OffersCustomization: p.OffersCustomization,
			PackagingType:       p.PackagingType,
			ShopTiming:          p.ShopTiming,
			WorkingDays:         p.WorkingDays,
			AgreedToTerms:       p.AgreedToTerms,
			AgreedToBlacklist:   p.AgreedToBlacklist,
			DP:                  p.DP,
			AccountID:           accountID,
			IsActive:            true,
		}
		if err := tx.Create(&shop).Error; err != nil {
			return err
		}
		shopID = shop.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ShopRegistrationResult{AccountID: accountID, ShopID: shopID, Email: p.Email}, nil
}

type ShopUpdate struct {
	AccountID uint `json:"account_id" binding:"required"`
	ShopRegistration
}

func (s *RegistrationService) UpdateShop(p ShopUpdate) error {
	var shop entity.Shop
	err := s.db.Where("account_id = ?", p.AccountID).First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&entity.Shop{
			BusinessName:        p.BusinessName,
			ShopName:            p.ShopName,
			VendorType:          p.VendorType,
			Address:             p.Address,
			City:                p.City,
			State:               p.State,
			Country:             p.Country,
			ZipCode:             p.ZipCode,
			OwnerName:           p.OwnerName,
			PhoneNumber:         p.PhoneNumber,
			Website:             p.Website,
			Description:         p.Description,
			ProductCategories:   p.ProductCategories,
			IsGICertified:       p.IsGICertified,
			IsHandmade:          p.IsHandmade,
			PickupOptions:       p.PickupOptions,
			DeliveryTime:        p.DeliveryTime,
			DeliveryFee:         p.DeliveryFee,
			PricingStructure:    p.PricingStructure,
			OrderProcessing:     p.OrderProcessing,
			PaymentMethods:      p.PaymentMethods,
			ReturnPolicy:        p.ReturnPolicy,
			StockAvailability:   p.StockAvailability,
			OffersCustomization: p.OffersCustomization,
			PackagingType:       p.PackagingType,
			ShopTiming:          p.ShopTiming,
			WorkingDays:         p.WorkingDays,
			AgreedToTerms:       p.AgreedToTerms,
			AgreedToBlacklist:   p.AgreedToBlacklist,
			DP:                  p.DP,
			AccountID:           p.AccountID,
			IsActive:            true,
		}).Error
	}
	if err != nil {
		return err
	}

	shop.BusinessName = p.BusinessName
	shop.ShopName = p.ShopName
	shop.VendorType = p.VendorType
	shop.Address = p.Address
	shop.City = p.City
	shop.State = p.State
	shop.Country = p.Country
	shop.ZipCode = p.ZipCode
	shop.OwnerName = p.OwnerName
	shop.PhoneNumber = p.PhoneNumber
	shop.Website = p.Website
	shop.Description = p.Description
	shop.ProductCategories = p.ProductCategories
	shop.IsGICertified = p.IsGICertified
	shop.IsHandmade = p.IsHandmade
	shop.PickupOptions = p.PickupOptions
	shop.DeliveryTime = p.DeliveryTime
	shop.DeliveryFee = p.DeliveryFee
	shop.PricingStructure = p.PricingStructure
	shop.OrderProcessing = p.OrderProcessing
	shop.PaymentMethods = p.PaymentMethods
	shop.ReturnPolicy = p.ReturnPolicy
	shop.StockAvailability = p.StockAvailability
	shop.OffersCustomization = p.OffersCustomization
	shop.PackagingType = p.PackagingType
	shop.ShopTiming = p.ShopTiming
	shop.WorkingDays = p.WorkingDays
	shop.DP = p.DP
	return s.db.Save(&shop).Error
}

type RestaurantRegistration struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Cuisine     []string `json:"cuisine"`
	PriceRange  string   `json:"price_range"`
	Image       string   `json:"image"`
}

func (s *RegistrationService) CreateRestaurant(p RestaurantRegistration) error {
	_, err := s.register(p.Email, p.Password, entity.AccountRestaurant, func(tx *gorm.DB, accountID uint) error {
		return tx.Create(&entity.Restaurant{
			Name:        p.Name,
			Description: p.Description,
			Location:    p.Location,
			Cuisine:     p.Cuisine,
			PriceRange:  p.PriceRange,
			Image:       p.Image,
			AccountID:   accountID,
			IsActive:    true,
		}).Error
	})
	return err
}

type RestaurantUpdate struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	PriceRange   string `json:"price_range"`
	Image        string `json:"image"`
}

func (s *RegistrationService) UpdateRestaurant(p RestaurantUpdate) error {
	var restaurant entity.Restaurant
	if err := s.db.First(&restaurant, p.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Restaurant not found")
		}
		return err
	}
	restaurant.Name = p.Name
	restaurant.Description = p.Description
	restaurant.Location = p.Location
	restaurant.PriceRange = p.PriceRange
	restaurant.Image = p.Image
	return s.db.Save(&restaurant).Error
}

type TravelPlanerRegistration struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	PriceRange  string   `json:"price_range"`
	Language    []string `json:"language"`
	Speciality  []string `json:"speciality"`
	DP          string   `json:"dp"`
}

func (s *RegistrationService) CreateTravelPlaner(p TravelPlanerRegistration) error {
	_, err := s.register(p.Email, p.Password, entity.AccountTravelPlaner, func(tx *gorm.DB, accountID uint) error {
		return tx.Create(&entity.TravelPlaner{
			Name:        p.Name,
			Description: p.Description,
			Location:    p.Location,
			PriceRange:  p.PriceRange,
			Language:    p.Language,
			Speciality:  p.Speciality,
			DP:          p.DP,
			AccountID:   accountID,
			IsActive:    true,
		}).Error
	})
	return err
}

type TravelPlanerUpdate struct {
	AccountID   uint     `json:"account_id" binding:"required"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	PriceRange  string   `json:"price_range"`
	Language    []string `json:"language"`
	Speciality  []string `json:"speciality"`
	DP          string   `json:"dp"`
}

func (s *RegistrationService) UpdateTravelPlaner(p TravelPlanerUpdate) error {
	var planer entity.TravelPlaner
	if err := s.db.Where("account_id = ?", p.AccountID).First(&planer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Travel planer not found")
		}
		return err
	}
	planer.Name = p.Name
	planer.Description = p.Description
	planer.Location = p.Location
	planer.PriceRange = p.PriceRange
	planer.Language = p.Language
	planer.Speciality = p.Speciality
	planer.DP = p.DP
	return s.db.Save(&planer).Error
}

type HotelRegistration struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required"`
	HotelName   string  `json:"hotel_name" binding:"required"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Phone       string  `json:"phone"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
}

func (s *RegistrationService) CreateHotel(p HotelRegistration) error {
	_, err := s.register(p.Email, p.Password, entity.AccountHotel, func(tx *gorm.DB, accountID uint) error {
		return tx.Create(&entity.Hotel{
			Name:        p.HotelName,
			Address:     p.Address,
			Description: p.Description,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Email:       p.Email,
			Phone:       p.Phone,
			Longitude:   p.Longitude,
			Latitude:    p.Latitude,
			CheckIn:     p.CheckIn,
			CheckOut:    p.CheckOut,
			AccountID:   accountID,
			IsActive:    true,
		}).Error
	})
	return err
}

type LanguageServiceRegistration struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`

	ProfileName    string   `json:"profile_name" binding:"required"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Description    string   `json:"description"`
	Experience     string   `json:"experience"`
	Languages      []string `json:"languages"`
	Specialization []string `json:"specialization"`

	HourlyRate      float64  `json:"hourly_rate"`
	MinBookingHours int      `json:"min_booking_hours"`
	MaxBookingHours int      `json:"max_booking_hours"`
	Availability    []string `json:"availability"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`

	Location      string   `json:"location"`
	ServiceMode   []string `json:"service_mode"`
	Certification []string `json:"certification"`
	Qualification string   `json:"qualification"`
	ProfileImage  string   `json:"profile_image"`
	Portfolio     []string `json:"portfolio"`
}

func (s *RegistrationService) CreateLanguageService(p LanguageServiceRegistration) error {
	_, err := s.register(p.Email, p.Password, entity.AccountLanguage, func(tx *gorm.DB, accountID uint) error {
		return tx.Create(&entity.LanguageService{
			ProfileName:     p.ProfileName,
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			Description:     p.Description,
			Experience:      p.Experience,
			Languages:       p.Languages,
			Specialization:  p.Specialization,
			HourlyRate:      p.HourlyRate,
			MinBookingHours: p.MinBookingHours,
			MaxBookingHours: p.MaxBookingHours,
			Availability:    p.Availability,
			StartTime:       p.StartTime,
			EndTime:         p.EndTime,
			Location:        p.Location,
			ServiceMode:     p.ServiceMode,
			Certification:   p.Certification,
			Qualification:   p.Qualification,
			ProfileImage:    p.ProfileImage,
			Portfolio:       p.Portfolio,
			AccountID:       accountID,
			IsActive:        true,
		}).Error
	})
	return err
}
