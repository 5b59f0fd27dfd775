package handlers

import (
	"net/http"
	"strconv"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	TableID    uint   `json:"table_id" binding:"required"`
	CustomerID *uint  `json:"customer_id"`
	Notes      string `json:"notes"`
	Items      []struct {
		MenuItemID uint   `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required,min=1"`
		Notes      string `json:"notes"`
	} `json:"items" binding:"required,min=1"`
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// CreateOrder opens a new order on a table and marks it Occupied
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.CreateOrderInput{
		TableID:    req.TableID,
		CustomerID: req.CustomerID,
		Notes:      req.Notes,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, services.CreateOrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
	}

	order, err := services.NewOrderService(config.DB).Create(in)
	if err != nil {
		respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListOrders returns all orders, optionally filtered by status
func ListOrders(c *gin.Context) {
	orders, err := services.NewOrderService(config.DB).List(c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Dashboard summary: counts per status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetOrder returns a single order with lines, payment, table and customer
func GetOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := services.NewOrderService(config.DB).Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order along the kitchen flow
func UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService(config.DB).UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"status":  order.Status,
	})
}

type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// PayOrder settles the order, frees the table and accrues loyalty points
func PayOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req PayOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	payment, err := services.NewPaymentService(config.DB).Pay(id, req.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment recorded",
		"payment": payment,
	})
}

// CancelOrder cancels an unpaid order and frees its table
func CancelOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := services.NewOrderService(config.DB).Cancel(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
