package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

// ListEmployees returns all staff accounts — admin only
func ListEmployees(c *gin.Context) {
	var employees []models.Employee
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(employees), "employees": employees})
}

type SetEmployeeActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetEmployeeActive activates or deactivates a staff account — admin only
func SetEmployeeActive(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.First(&employee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var req SetEmployeeActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&employee).Update("is_active", *req.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Employee updated",
		"is_active": *req.IsActive,
	})
}
