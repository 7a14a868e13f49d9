package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/schemas"
	"hotel-management-backend/services"
)

// JSONDetail writes the error envelope every failure uses: a human-readable
// detail string.
func JSONDetail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"detail": message})
}

// RespondServiceError maps a service error onto its HTTP status: 404 for
// missing resources, 400 for state conflicts, 422 for validation failures,
// 500 otherwise.
func RespondServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		JSONDetail(c, http.StatusNotFound, notFound.Message)
		return
	}
	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		JSONDetail(c, http.StatusBadRequest, conflict.Message)
		return
	}
	var validation *schemas.ValidationError
	if errors.As(err, &validation) {
		JSONDetail(c, http.StatusUnprocessableEntity, validation.Message)
		return
	}
	JSONDetail(c, http.StatusInternalServerError, "Internal server error")
}
