package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

type ReservationRequest struct {
	CustomerID      uint      `json:"customer_id" binding:"required"`
	TableID         uint      `json:"table_id" binding:"required"`
	ReservationDate time.Time `json:"reservation_date" binding:"required"`
	NumberOfGuests  int       `json:"number_of_guests" binding:"required,min=1"`
	Notes           string    `json:"notes"`
}

func (r ReservationRequest) toInput() services.ReservationInput {
	return services.ReservationInput{
		CustomerID:      r.CustomerID,
		TableID:         r.TableID,
		ReservationDate: r.ReservationDate,
		NumberOfGuests:  r.NumberOfGuests,
		Notes:           r.Notes,
	}
}

// CreateReservation books a pending reservation on a table
func CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := services.NewReservationService(config.DB).Create(req.toInput())
	if err != nil {
		respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation created successfully",
		"reservation": reservation,
	})
}

// ListReservations returns reservations filtered by status and/or date
func ListReservations(c *gin.Context) {
	var date *time.Time
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	reservations, err := services.NewReservationService(config.DB).List(c.Query("status"), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// UpcomingReservations returns the next live reservations
func UpcomingReservations(c *gin.Context) {
	reservations, err := services.NewReservationService(config.DB).Upcoming(10)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// GetReservation returns a single reservation
func GetReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	reservation, err := services.NewReservationService(config.DB).Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// UpdateReservation edits a non-terminal reservation
func UpdateReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := services.NewReservationService(config.DB).Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Reservation updated",
		"reservation": reservation,
	})
}

type UpdateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
}

// UpdateReservationStatus applies a transition and its table side effect
func UpdateReservationStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := services.NewReservationService(config.DB).UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation status updated",
		"status":  reservation.Status,
	})
}

// DeleteReservation removes a pending or cancelled reservation
func DeleteReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := services.NewReservationService(config.DB).Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
