package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadnavaid07/artstay-backend-asad/services"
)

// RegisterController handles seller onboarding for every profile type.
// Creates and profile updates both answer 201 on success.
type RegisterController struct {
	svc *services.RegistrationService
}

func NewRegisterController(svc *services.RegistrationService) *RegisterController {
	return &RegisterController{svc: svc}
}

func (ctl *RegisterController) CreateArtisan(c *gin.Context) {
	var p services.ArtisanRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.CreateArtisan(p); err != nil {
		failure(c, err, "Failed to create artisan")
		return
	}
	success(c, http.StatusCreated, "artisan created", nil)
}

func (ctl *RegisterController) UpdateArtisan(c *gin.Context) {
	var p services.ArtisanUpdate
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.UpdateArtisan(p); err != nil {
		failure(c, err, "Failed to update artisan")
		return
	}
	success(c, http.StatusCreated, "artisan updated", nil)
}

func (ctl *RegisterController) CreateFair(c *gin.Context) {
	var p services.SellerRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.CreateFair(p); err != nil {
		failure(c, err, "Failed to create fair")
		return
	}
	success(c, http.StatusCreated, "fair created", nil)
}

func (ctl *RegisterController) UpdateFair(c *gin.Context) {
	var p services.SellerUpdate
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.UpdateFair(p); err != nil {
		failure(c, err, "Failed to update fair")
		return
	}
	success(c, http.StatusCreated, "fair updated", nil)
}

func (ctl *RegisterController) CreateEcoTransit(c *gin.Context) {
	var p services.EcoTransitRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.CreateEcoTransit(p); err != nil {
		failure(c, err, "Failed to create eco transit")
		return
	}
	success(c, http.StatusCreated, "eco transit created", nil)
}

func (ctl *RegisterController) UpdateEcoTransit(c *gin.Context) {
	var p services.EcoTransitUpdate
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.UpdateEcoTransit(p); err != nil {
		failure(c, err, "Failed to update eco transit")
		return
	}
	success(c, http.StatusCreated, "eco transit updated", nil)
}

func (ctl *RegisterController) CreateShop(c *gin.Context) {
	var p services.ShopRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	result, err := ctl.svc.CreateShop(p)
	if err != nil {
		failure(c, err, "Failed to register vendor")
		return
	}
	success(c, http.StatusCreated, "Vendor registration successful", result)
}

func (ctl *RegisterController) UpdateShop(c *gin.Context) {
	var p services.ShopUpdate
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.UpdateShop(p); err != nil {
		failure(c, err, "Failed to update shop")
		return
	}
	success(c, http.StatusCreated, "shop updated", nil)
}

func (ctl *RegisterController) CreateRestaurant(c *gin.Context) {
	var p services.RestaurantRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.CreateRestaurant(p); err != nil {
		failure(c, err, "Failed to create restaurant")
		return
	}
	success(c, http.StatusCreated, "restaurant created", nil)
}

func (ctl *RegisterController) UpdateRestaurant(c *gin.Context) {
	var p services.RestaurantUpdate
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.UpdateRestaurant(p); err != nil {
		failure(c, err, "Failed to update restaurant")
		return
	}
	success(c, http.StatusCreated, "restaurant updated", nil)
}

func (ctl *RegisterController) CreateTravelPlaner(c *gin.Context) {
	var p services.TravelPlanerRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.CreateTravelPlaner(p); err != nil {
		failure(c, err, "Failed to create travel planer")
		return
	}
	success(c, http.StatusCreated, "travel planer created", nil)
}

func (ctl *RegisterController) UpdateTravelPlaner(c *gin.Context) {
	var p services.TravelPlanerUpdate
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.UpdateTravelPlaner(p); err != nil {
		failure(c, err, "Failed to update travel planer")
		return
	}
	success(c, http.StatusCreated, "travel planer updated", nil)
}

func (ctl *RegisterController) CreateHotel(c *gin.Context) {
	var p services.HotelRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.CreateHotel(p); err != nil {
		failure(c, err, "Failed to create hotel")
		return
	}
	success(c, http.StatusCreated, "Hotel created successfully", nil)
}

func (ctl *RegisterController) CreateLanguageService(c *gin.Context) {
	var p services.LanguageServiceRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.CreateLanguageService(p); err != nil {
		failure(c, err, "Failed to create language service")
		return
	}
	success(c, http.StatusCreated, "Language service created successfully", nil)
}
