package routes

import (
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (no auth needed)
		public.GET("/menu", handlers.ListMenuItems)
		public.GET("/menu/:id", handlers.GetMenuItem)
		public.GET("/categories", handlers.ListCategories)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated staff routes ─────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Orders — the core lifecycle
		auth.POST("/orders", handlers.CreateOrder)
		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
		auth.PATCH("/orders/:id/status", handlers.UpdateOrderStatus)
		auth.POST("/orders/:id/pay", handlers.PayOrder)
		auth.DELETE("/orders/:id", handlers.CancelOrder)

		// Reservations
		auth.POST("/reservations", handlers.CreateReservation)
		auth.GET("/reservations", handlers.ListReservations)
		auth.GET("/reservations/upcoming", handlers.UpcomingReservations)
		auth.GET("/reservations/:id", handlers.GetReservation)
		auth.PUT("/reservations/:id", handlers.UpdateReservation)
		auth.PATCH("/reservations/:id/status", handlers.UpdateReservationStatus)
		auth.DELETE("/reservations/:id", handlers.DeleteReservation)

		// Tables — floor view
		auth.GET("/tables", handlers.ListTables)
		auth.GET("/tables/statistics", handlers.GetTableStatistics)
		auth.GET("/tables/:id", handlers.GetTable)
		auth.GET("/tables/:id/current-order", handlers.GetTableCurrentOrder)
		auth.PATCH("/tables/:id/status", handlers.UpdateTableStatus)

		// Customers
		auth.GET("/customers", handlers.ListCustomers)
		auth.GET("/customers/:id", handlers.GetCustomer)
		auth.POST("/customers", handlers.CreateCustomer)
		auth.PUT("/customers/:id", handlers.UpdateCustomer)
	}

	// ── Manager/Admin routes ───────────────────────────────────────
	manager := r.Group("/api")
	manager.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
	{
		// Table management
		manager.POST("/tables", handlers.CreateTable)
		manager.PUT("/tables/:id", handlers.UpdateTable)
		manager.DELETE("/tables/:id", handlers.DeleteTable)

		// Menu management
		manager.POST("/menu", handlers.CreateMenuItem)
		manager.PUT("/menu/:id", handlers.UpdateMenuItem)
		manager.DELETE("/menu/:id", handlers.DeleteMenuItem)
		manager.POST("/categories", handlers.CreateCategory)

		// Loyalty adjustments
		manager.PATCH("/customers/:id/loyalty", handlers.AdjustLoyaltyPoints)

		// Dashboard
		manager.GET("/dashboard/statistics", handlers.GetDashboardStatistics)
		manager.GET("/dashboard/revenue", handlers.GetRevenue)
		manager.GET("/dashboard/popular-items", handlers.GetPopularItems)
	}

	// ── Admin-only routes ──────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/employees", handlers.ListEmployees)
		admin.PATCH("/employees/:id/active", handlers.SetEmployeeActive)
	}
}
