package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadnavaid07/artstay-backend-asad/services"
)

type LanguageController struct {
	svc *services.LanguageServiceSvc
}

func NewLanguageController(svc *services.LanguageServiceSvc) *LanguageController {
	return &LanguageController{svc: svc}
}

func (ctl *LanguageController) GetAll(c *gin.Context) {
	list, err := ctl.svc.GetAll()
	if err != nil {
		failure(c, err, "Failed to fetch language services")
		return
	}
	success(c, http.StatusOK, "language services fetched", list)
}

func (ctl *LanguageController) GetByID(c *gin.Context) {
	serviceID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	svc, err := ctl.svc.GetByID(serviceID)
	if err != nil {
		failure(c, err, "Failed to fetch language service")
		return
	}
	success(c, http.StatusOK, "language service fetched", svc)
}

func (ctl *LanguageController) ApplicationStatus(c *gin.Context) {
	accountID, ok := uintParam(c, "accountId")
	if !ok {
		return
	}
	svc, err := ctl.svc.ApplicationStatus(accountID)
	if err != nil {
		failure(c, err, "Failed to fetch application status")
		return
	}
	success(c, http.StatusCreated, "application status", svc)
}

func (ctl *LanguageController) ToggleStatus(c *gin.Context) {
	var p toggleStatusPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.ToggleStatus(p.ID, *p.Status); err != nil {
		failure(c, err, "Failed to update language service status")
		return
	}
	success(c, http.StatusOK, "language service status updated", nil)
}

func (ctl *LanguageController) Delete(c *gin.Context) {
	serviceID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.svc.Delete(serviceID); err != nil {
		failure(c, err, "Failed to delete language service")
		return
	}
	success(c, http.StatusOK, "language service deleted", nil)
}

func (ctl *LanguageController) Filters(c *gin.Context) {
	filters, err := ctl.svc.Filters()
	if err != nil {
		failure(c, err, "Failed to fetch filters")
		return
	}
	success(c, http.StatusOK, "filters fetched", filters)
}

func (ctl *LanguageController) CreateBooking(c *gin.Context) {
	var p services.LanguageBookingPayload
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

func (ctl *LanguageController) FindExploration(c *gin.Context) {
	var p services.LanguageExplorationCriteria
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	list, err := ctl.svc.FindExploration(p)
	if err != nil {
		failure(c, err, "Failed to find language explorations")
		return
	}
	success(c, http.StatusOK, "language explorations found", list)
}
