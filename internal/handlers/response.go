package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenroots/treefund-backend/internal/apperrors"
)

// respondError maps domain errors to HTTP responses. Validation failures name
// the failing field; authorization failures stay generic; upstream failures
// are reported as transient so the client knows a retry is safe.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var upstreamErr *apperrors.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
	case errors.Is(err, apperrors.ErrNotPermitted):
		c.JSON(http.StatusForbidden, gin.H{"error": "not permitted"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
