package handlers

import (
	"errors"
	"net/http"

	apperrors "fitness-community-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// self returns the request path for inclusion in response envelopes
func self(c *gin.Context) string {
	return c.Request.URL.Path
}

// statusOf maps application errors to HTTP status codes
func statusOf(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		return http.StatusConflict
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusForbidden
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsDependency(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes an error envelope with the outcome flag set to false
func fail(c *gin.Context, err error, flag string) {
	c.JSON(statusOf(err), gin.H{
		"self":  self(c),
		flag:    false,
		"error": err.Error(),
	})
}
