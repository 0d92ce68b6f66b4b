package controller

import (
	"errors"
	"net/http"
	"strings"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError is the single place translating service and repository errors
// into HTTP statuses and the response envelope.
func respondError(c *gin.Context, err error, entity string) {
	var verr *services.ValidationError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, models.APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: entity + " not found",
			Error: &models.APIError{
				Type:    "NotFoundError",
				Details: entity + " not found",
			},
		})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: verr.Message,
				Field:   verr.Field,
			},
		})
	case errors.Is(err, services.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Invalid email or password",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: err.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "An unexpected error occurred",
			Error: &models.APIError{
				Type:    "InternalError",
				Details: err.Error(),
			},
		})
	}
}

// respondBadRequest reports a malformed body or query parameter
func respondBadRequest(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		Error: &models.APIError{
			Type:    "ValidationError",
			Details: details,
		},
	})
}

// respondData wraps a successful payload in the envelope
func respondData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, models.APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// claimsFrom pulls the authenticated account claims set by the auth
// middleware; ok is false when the route is misconfigured.
func claimsFrom(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get("jwt_claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}

// formatValidationErrors formats validator errors into readable messages
func formatValidationErrors(err error) string {
	var errorMessages []string

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				errorMessages = append(errorMessages, fieldError.Field()+" is required")
			case "min":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at least "+fieldError.Param()+" characters/items")
			case "max":
				errorMessages = append(errorMessages, fieldError.Field()+" must be at most "+fieldError.Param()+" characters/items")
			case "email":
				errorMessages = append(errorMessages, fieldError.Field()+" must be a valid email address")
			case "oneof":
				errorMessages = append(errorMessages, fieldError.Field()+" must be one of: "+strings.ReplaceAll(fieldError.Param(), " ", ", "))
			default:
				errorMessages = append(errorMessages, fieldError.Field()+" is invalid")
			}
		}
	}

	return strings.Join(errorMessages, "; ")
}
