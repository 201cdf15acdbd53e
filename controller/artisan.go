package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asadnavaid07/artstay-backend-asad/services"
)

type ArtisanController struct {
	svc *services.ArtisanService
}

func NewArtisanController(svc *services.ArtisanService) *ArtisanController {
	return &ArtisanController{svc: svc}
}

// Pagination reads ?limit= and ?cursor= as an offset page. Out-of-range
// values fall back to the defaults inside the service.
func (ctl *ArtisanController) Pagination(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	cursor, _ := strconv.Atoi(c.DefaultQuery("cursor", "0"))

	page, err := ctl.svc.Pagination(limit, cursor)
	if err != nil {
		failure(c, err, "Failed to fetch artisans")
		return
	}
	success(c, http.StatusOK, "artisans fetched", page)
}

func (ctl *ArtisanController) GetAll(c *gin.Context) {
	artisans, err := ctl.svc.GetAll()
	if err != nil {
		failure(c, err, "Failed to fetch artisans")
		return
	}
	success(c, http.StatusOK, "artisans fetched", artisans)
}

func (ctl *ArtisanController) Detail(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	artisan, err := ctl.svc.DetailByAccountID(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch artisan")
		return
	}
	success(c, http.StatusOK, "artisan detail", artisan)
}

func (ctl *ArtisanController) DetailByArtisanID(c *gin.Context) {
	artisanID, ok := uintParam(c, "artisanId")
	if !ok {
		return
	}
	artisan, err := ctl.svc.DetailByArtisanID(artisanID)
	if err != nil {
		failure(c, err, "Failed to fetch artisan")
		return
	}
	success(c, http.StatusOK, "artisan detail", artisan)
}

func (ctl *ArtisanController) ApplicationStatus(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	artisan, err := ctl.svc.ApplicationStatus(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch application status")
		return
	}
	// 201 on a read is odd but the storefront depends on it.
	success(c, http.StatusCreated, "application status", artisan)
}

type toggleStatusPayload struct {
	ID     uint  `json:"id" binding:"required"`
	Status *bool `json:"status" binding:"required"`
}

func (ctl *ArtisanController) ToggleStatus(c *gin.Context) {
	var p toggleStatusPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.ToggleStatus(p.ID, *p.Status); err != nil {
		failure(c, err, "Failed to update artisan status")
		return
	}
	success(c, http.StatusOK, "artisan status updated", nil)
}

type portfolioPayload struct {
	AccountID uint     `json:"account_id" binding:"required"`
	Images    []string `json:"images" binding:"required"`
}

func (ctl *ArtisanController) ReplacePortfolio(c *gin.Context) {
	var p portfolioPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.ReplacePortfolio(p.AccountID, p.Images); err != nil {
		failure(c, err, "Failed to update portfolio")
		return
	}
	success(c, http.StatusCreated, "portfolio updated", nil)
}

func (ctl *ArtisanController) PortfolioByAccount(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	portfolio, err := ctl.svc.PortfolioByAccountID(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch portfolio")
		return
	}
	success(c, http.StatusOK, "portfolio fetched", portfolio)
}

func (ctl *ArtisanController) PortfolioByArtisan(c *gin.Context) {
	artisanID, ok := uintParam(c, "artisanId")
	if !ok {
		return
	}
	portfolio, err := ctl.svc.PortfolioByArtisanID(artisanID)
	if err != nil {
		failure(c, err, "Failed to fetch portfolio")
		return
	}
	success(c, http.StatusOK, "portfolio fetched", portfolio)
}

func (ctl *ArtisanController) CreateBooking(c *gin.Context) {
	var p services.ArtisanBookingPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.CreateBooking(p); err != nil {
		failure(c, err, "Failed to create booking")
		return
	}
	success(c, http.StatusCreated, "booking created", nil)
}

func (ctl *ArtisanController) BookingsByAccount(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	bookings, err := ctl.svc.BookingsByAccount(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch bookings")
		return
	}
	success(c, http.StatusOK, "bookings fetched", bookings)
}

func (ctl *ArtisanController) BookedDates(c *gin.Context) {
	artisanID, ok := uintParam(c, "artisanId")
	if !ok {
		return
	}
	dates, err := ctl.svc.BookedDates(artisanID)
	if err != nil {
		failure(c, err, "Failed to fetch booked dates")
		return
	}
	success(c, http.StatusOK, "booked dates fetched", dates)
}

func (ctl *ArtisanController) FindByCraft(c *gin.Context) {
	var p services.ArtisanCraftCriteria
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	artisans, err := ctl.svc.FindByCraft(p)
	if err != nil {
		failure(c, err, "Failed to find artisans")
		return
	}
	success(c, http.StatusOK, "artisans found", artisans)
}

func (ctl *ArtisanController) FindNearby(c *gin.Context) {
	var p services.NearbyArtisanCriteria
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	artisans, err := ctl.svc.FindNearby(p)
	if err != nil {
		failure(c, err, "Failed to find artisans")
		return
	}
	success(c, http.StatusOK, "artisans found", artisans)
}

func (ctl *ArtisanController) FindTraditionalTour(c *gin.Context) {
	var p services.TraditionalTourCriteria
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	tours, err := ctl.svc.FindTraditionalTour(p)
	if err != nil {
		failure(c, err, "Failed to find tours")
		return
	}
	success(c, http.StatusOK, "tours found", tours)
}

func (ctl *ArtisanController) FindSustainableLivingTour(c *gin.Context) {
	var p services.SustainableTourCriteria
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	tours, err := ctl.svc.FindSustainableLivingTour(p)
	if err != nil {
		failure(c, err, "Failed to find tours")
		return
	}
	success(c, http.StatusOK, "tours found", tours)
}
