package handlers

import (
	"net/http"

	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the full state machines for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var orderInfo []gin.H
	for _, t := range statemachine.AllOrderTransitions() {
		orderInfo = append(orderInfo, gin.H{"from": t.From, "to": t.To})
	}
	var reservationInfo []gin.H
	for _, t := range statemachine.AllReservationTransitions() {
		reservationInfo = append(reservationInfo, gin.H{"from": t.From, "to": t.To})
	}

	c.JSON(http.StatusOK, gin.H{
		"order": gin.H{
			"transitions":     orderInfo,
			"terminal_states": []string{"Paid", "Cancelled"},
		},
		"reservation": gin.H{
			"transitions":     reservationInfo,
			"terminal_states": []string{"Cancelled", "Completed"},
		},
		"description": "Restaurant POS Order and Reservation Lifecycle State Machines",
	})
}
