package controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asadnavaid07/artstay-backend-asad/services"
)

// Envelope is the uniform response body every endpoint writes.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

// failure logs the error and translates its kind into a transport status.
// This is the only place service failures become HTTP responses.
func failure(c *gin.Context, err error, fallback string) {
	log.Printf("[%s %s] %v", c.Request.Method, c.Request.URL.Path, err)

	message := fallback
	if err != nil && err.Error() != "" {
		message = err.Error()
	}

	code := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindNotFound:
		code = http.StatusNotFound
	case services.KindUnauthorized:
		code = http.StatusUnauthorized
	case services.KindNoMatch:
		code = http.StatusBadRequest
	}

	c.JSON(code, Envelope{Status: "error", Message: message, Data: nil})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Envelope{Status: "error", Message: err.Error(), Data: nil})
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, err)
		return 0, false
	}
	return uint(v), true
}
