package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/sportsmeet/internal/common/errs"
	"github.com/gin-gonic/gin"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Message string `json:"message"`
}

// statusFor maps an error's kind to an HTTP status
func statusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON message. Server-side failures are logged
// and answered with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, errorResponse{Message: message})
}

// bindJSON decodes the request body, answering 400 when it is malformed
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondError(c, errs.Validationf("invalid request body: %v", err))
		return false
	}
	return true
}

// pathID parses the :id route parameter, answering 400 when it is not a number
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, errs.Validationf("invalid id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

var errRouteNotFound = errs.NotFound("route not found")

func notFound(c *gin.Context) {
	respondError(c, errRouteNotFound)
}
