package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asadnavaid07/artstay-backend-asad/middleware"
	"github.com/asadnavaid07/artstay-backend-asad/services"
)

type FairController struct {
	svc *services.FairService
}

func NewFairController(svc *services.FairService) *FairController {
	return &FairController{svc: svc}
}

func (ctl *FairController) Pagination(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	cursor, _ := strconv.Atoi(c.DefaultQuery("cursor", "0"))

	page, err := ctl.svc.Pagination(limit, cursor)
	if err != nil {
		failure(c, err, "Failed to fetch fairs")
		return
	}
	success(c, http.StatusOK, "fairs fetched", page)
}

func (ctl *FairController) GetAll(c *gin.Context) {
	fairs, err := ctl.svc.GetAll()
	if err != nil {
		failure(c, err, "Failed to fetch fairs")
		return
	}
	success(c, http.StatusOK, "fairs fetched", fairs)
}

func (ctl *FairController) ApplicationStatus(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	fair, err := ctl.svc.ApplicationStatus(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch application status")
		return
	}
	success(c, http.StatusCreated, "application status", fair)
}

func (ctl *FairController) Profile(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	fair, err := ctl.svc.ProfileByAccountID(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch fair profile")
		return
	}
	success(c, http.StatusOK, "fair profile", fair)
}

func (ctl *FairController) Detail(c *gin.Context) {
	fairID, ok := uintParam(c, "fairId")
	if !ok {
		return
	}
	fair, err := ctl.svc.DetailByID(fairID)
	if err != nil {
		failure(c, err, "Failed to fetch fair")
		return
	}
	success(c, http.StatusOK, "fair detail", fair)
}

func (ctl *FairController) ToggleStatus(c *gin.Context) {
	var p toggleStatusPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.ToggleStatus(p.ID, *p.Status); err != nil {
		failure(c, err, "Failed to update fair status")
		return
	}
	success(c, http.StatusOK, "fair status updated", nil)
}

// CreateEvent takes the seller identity from the session, not the body.
func (ctl *FairController) CreateEvent(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var p services.FairEventPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	p.AccountID = accountID

	if err := ctl.svc.CreateEvent(p); err != nil {
		failure(c, err, "Failed to create fair event")
		return
	}
	success(c, http.StatusCreated, "fair event created", nil)
}

func (ctl *FairController) UpdateEvent(c *gin.Context) {
	var p services.FairEventUpdate
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.UpdateEvent(p); err != nil {
		failure(c, err, "Failed to update fair event")
		return
	}
	success(c, http.StatusCreated, "fair event updated", nil)
}

func (ctl *FairController) EventsByAccount(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	events, err := ctl.svc.EventsByAccount(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch fair events")
		return
	}
	success(c, http.StatusOK, "fair events fetched", events)
}

func (ctl *FairController) EventByID(c *gin.Context) {
	eventID, ok := uintParam(c, "eventId")
	if !ok {
		return
	}
	event, err := ctl.svc.EventByID(eventID)
	if err != nil {
		failure(c, err, "Failed to fetch fair event")
		return
	}
	success(c, http.StatusOK, "fair event fetched", event)
}

func (ctl *FairController) CreateBooking(c *gin.Context) {
	var p services.FairBookingPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	result, err := ctl.svc.CreateBooking(p)
	if err != nil {
		failure(c, err, "Failed to create booking")
		return
	}
	success(c, http.StatusCreated, "booking created", result)
}

func (ctl *FairController) BookingsByAccount(c *gin.Context) {
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

func (ctl *FairController) FindFair(c *gin.Context) {
	var p services.FairCriteria
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	events, err := ctl.svc.FindByCriteria(p)
	if err != nil {
		failure(c, err, "Failed to find fairs")
		return
	}
	success(c, http.StatusOK, "fairs found", events)
}
