package handlers

import (
	"errors"
	"net/http"

	"pointage-backend/internal/auth"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// getActor resolves the acting identity set by the auth middleware,
// answering 401 when it is missing.
func getActor(c *gin.Context) (service.Actor, bool) {
	actor, ok := auth.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrActorNotFound.Error()})
	}
	return actor, ok
}

// respondError maps a service error to an HTTP status. The cascade case
// keeps its progress counts in the body so clients know a retry is safe.
func respondError(c *gin.Context, err error) {
	if cascade, ok := apperrors.AsPartialCascade(err); ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     cascade.Error(),
			"operation": cascade.Op,
			"completed": cascade.Completed,
			"attempted": cascade.Attempted,
			"retriable": true,
		})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPeriodClosed),
		errors.Is(err, apperrors.ErrFicheHasSignatures):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTrajetCodeRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
