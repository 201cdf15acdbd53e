package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadnavaid07/artstay-backend-asad/services"
)

type EcoTransitController struct {
	svc *services.EcoTransitService
}

func NewEcoTransitController(svc *services.EcoTransitService) *EcoTransitController {
	return &EcoTransitController{svc: svc}
}

func (ctl *EcoTransitController) GetAll(c *gin.Context) {
	transits, err := ctl.svc.GetAll()
	if err != nil {
		failure(c, err, "Failed to fetch eco transits")
		return
	}
	success(c, http.StatusOK, "eco transits fetched", transits)
}

func (ctl *EcoTransitController) Detail(c *gin.Context) {
	transitID, ok := uintParam(c, "transitId")
	if !ok {
		return
	}
	transit, err := ctl.svc.Detail(transitID)
	if err != nil {
		failure(c, err, "Failed to fetch eco transit")
		return
	}
	success(c, http.StatusOK, "eco transit detail", transit)
}

func (ctl *EcoTransitController) ApplicationStatus(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	transit, err := ctl.svc.ApplicationStatus(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch application status")
		return
	}
	success(c, http.StatusCreated, "application status", transit)
}

func (ctl *EcoTransitController) ToggleStatus(c *gin.Context) {
	var p toggleStatusPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.ToggleStatus(p.ID, *p.Status); err != nil {
		failure(c, err, "Failed to update eco transit status")
		return
	}
	success(c, http.StatusOK, "eco transit status updated", nil)
}

func (ctl *EcoTransitController) CreateOption(c *gin.Context) {
	var p services.EcoTransitOptionPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	option, err := ctl.svc.CreateOption(p)
	if err != nil {
		failure(c, err, "Failed to create eco transit option")
		return
	}
	success(c, http.StatusCreated, "eco transit option created", option)
}

func (ctl *EcoTransitController) OptionsByTransit(c *gin.Context) {
	transitID, ok := uintParam(c, "transitId")
	if !ok {
		return
	}
	options, err := ctl.svc.OptionsByTransit(transitID)
	if err != nil {
		failure(c, err, "Failed to fetch eco transit options")
		return
	}
	success(c, http.StatusOK, "eco transit options fetched", options)
}

func (ctl *EcoTransitController) CreateBooking(c *gin.Context) {
	var p services.EcoTransitBookingPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	booking, err := ctl.svc.CreateBooking(p)
	if err != nil {
		failure(c, err, "Failed to create booking")
		return
	}
	success(c, http.StatusCreated, "booking created", booking)
}

func (ctl *EcoTransitController) BookingsByTransit(c *gin.Context) {
	transitID, ok := uintParam(c, "transitId")
	if !ok {
		return
	}
	bookings, err := ctl.svc.BookingsByTransit(transitID)
	if err != nil {
		failure(c, err, "Failed to fetch bookings")
		return
	}
	success(c, http.StatusOK, "bookings fetched", bookings)
}

func (ctl *EcoTransitController) Filters(c *gin.Context) {
	filters, err := ctl.svc.Filters()
	if err != nil {
		failure(c, err, "Failed to fetch filters")
		return
	}
	success(c, http.StatusOK, "filters fetched", filters)
}

func (ctl *EcoTransitController) FindAdventure(c *gin.Context) {
	var p services.EcoTransitAdventureCriteria
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	adventures, err := ctl.svc.FindAdventure(p)
	if err != nil {
		failure(c, err, "Failed to find eco transit adventures")
		return
	}
	success(c, http.StatusOK, "eco transit adventures found", adventures)
}
