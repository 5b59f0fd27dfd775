package handlers

import (
	"errors"
	"net/http"

	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps engine sentinel errors onto HTTP status codes.
// Anything unrecognized is a storage-level failure and becomes a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrDuplicatePayment),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrSlotConflict),
		errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondCreateError is the mapping for create endpoints. There an absent
// customer, table or menu item was referenced by the request body, not the
// URL, so it is the caller's bad request rather than a missing resource.
func respondCreateError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	respondServiceError(c, err)
}
