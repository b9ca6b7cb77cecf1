package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/carebook-dev/carebook/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps the service taxonomy to status codes. Unexpected errors
// are logged with full detail and surfaced as a generic failure only.
func respondError(ctx *gin.Context, err error) {
	if !apperrors.Expected(err) {
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
