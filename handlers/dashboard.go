package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStatistics returns the back-office landing page numbers
func GetDashboardStatistics(c *gin.Context) {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var totalOrders, pendingOrders, preparingOrders, servedOrders int64
	config.DB.Model(&models.Order{}).Count(&totalOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderPending).Count(&pendingOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderPreparing).Count(&preparingOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderServed).Count(&servedOrders)

	var todayRevenue, monthRevenue float64
	config.DB.Model(&models.Order{}).
		Where("status = ? AND order_date >= ?", models.OrderPaid, today).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&todayRevenue)
	config.DB.Model(&models.Order{}).
		Where("status = ? AND order_date >= ?", models.OrderPaid, startOfMonth).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&monthRevenue)

	var availableTables, occupiedTables int64
	config.DB.Model(&models.Table{}).Where("status = ?", models.TableAvailable).Count(&availableTables)
	config.DB.Model(&models.Table{}).Where("status = ?", models.TableOccupied).Count(&occupiedTables)

	var recentOrders []models.Order
	config.DB.Preload("Table").Order("order_date desc").Limit(5).Find(&recentOrders)

	c.JSON(http.StatusOK, gin.H{
		"total_orders":     totalOrders,
		"pending_orders":   pendingOrders,
		"preparing_orders": preparingOrders,
		"served_orders":    servedOrders,
		"today_revenue":    todayRevenue,
		"month_revenue":    monthRevenue,
		"available_tables": availableTables,
		"occupied_tables":  occupiedTables,
		"recent_orders":    recentOrders,
	})
}

// GetRevenue returns per-day paid revenue over a period (week/month/year)
func GetRevenue(c *gin.Context) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	var startDate time.Time
	switch c.DefaultQuery("period", "week") {
	case "month":
		startDate = now.AddDate(0, 0, -30)
	case "year":
		startDate = now.AddDate(-1, 0, 0)
	default:
		startDate = now.AddDate(0, 0, -7)
	}

	type dailyRevenue struct {
		Date       string  `json:"date"`
		Revenue    float64 `json:"revenue"`
		OrderCount int     `json:"order_count"`
	}
	var rows []dailyRevenue
	config.DB.Model(&models.Order{}).
		Select("DATE(order_date) as date, SUM(total_amount) as revenue, COUNT(*) as order_count").
		Where("status = ? AND order_date >= ?", models.OrderPaid, startDate).
		Group("DATE(order_date)").
		Order("date").
		Scan(&rows)

	c.JSON(http.StatusOK, gin.H{"revenue": rows})
}

// GetPopularItems returns the most ordered dishes
func GetPopularItems(c *gin.Context) {
	limit := 10
	type popularItem struct {
		MenuItemID   uint    `json:"menu_item_id"`
		Name         string  `json:"name"`
		TotalOrdered int     `json:"total_ordered"`
		Revenue      float64 `json:"revenue"`
	}
	var rows []popularItem
	config.DB.Model(&models.OrderLine{}).
		Select("order_lines.menu_item_id, menu_items.name, SUM(order_lines.quantity) as total_ordered, SUM(order_lines.quantity * order_lines.price) as revenue").
		Joins("JOIN menu_items ON menu_items.id = order_lines.menu_item_id").
		Group("order_lines.menu_item_id, menu_items.name").
		Order("total_ordered desc").
		Limit(limit).
		Scan(&rows)

	c.JSON(http.StatusOK, gin.H{"popular_items": rows})
}
