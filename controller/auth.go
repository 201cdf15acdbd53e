package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadnavaid07/artstay-backend-asad/services"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

func (ctl *AuthController) Login(c *gin.Context) {
	var p services.LoginPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	result, err := ctl.svc.Login(p)
	if err != nil {
		failure(c, err, "Login failed")
		return
	}
	success(c, http.StatusOK, "Login successful", result)
}
