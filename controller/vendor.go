package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadnavaid07/artstay-backend-asad/services"
)

type VendorController struct {
	svc *services.VendorService
}

func NewVendorController(svc *services.VendorService) *VendorController {
	return &VendorController{svc: svc}
}

func (ctl *VendorController) Register(c *gin.Context) {
	var p services.VendorRegistration
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if err := ctl.svc.Register(p); err != nil {
		failure(c, err, "Failed to register vendor")
		return
	}
	success(c, http.StatusCreated, "Vendor registered successfully", nil)
}

type vendorLoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *VendorController) Login(c *gin.Context) {
	var p vendorLoginPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	result, err := ctl.svc.Login(p.Email, p.Password)
	if err != nil {
		failure(c, err, "Login failed")
		return
	}
	success(c, http.StatusOK, "Login successful", result)
}
