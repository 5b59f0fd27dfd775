package seeders

import (
	"log"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates reference data on first boot. Every insert goes through
// FirstOrCreate so re-running is harmless.
func Seed() {
	// ============= Seed Employees =============
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Seed: failed to hash admin password:", err)
		return
	}
	admin := models.Employee{
		Username:     "admin",
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		Email:        "admin@restaurant.local",
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	config.DB.FirstOrCreate(&admin, models.Employee{Username: admin.Username})

	// ============= Seed Categories =============
	categories := []models.Category{
		{Name: "Appetizers", Description: "Starters and small plates"},
		{Name: "Main Courses", Description: "Main dishes"},
		{Name: "Desserts", Description: "Sweet endings"},
		{Name: "Beverages", Description: "Drinks"},
	}
	for i := range categories {
		config.DB.FirstOrCreate(&categories[i], models.Category{Name: categories[i].Name})
	}

	// ============= Seed Menu Items =============
	items := []models.MenuItem{
		{Name: "Goi cuon", Description: "Fresh spring rolls with shrimp and pork", Price: 30000, CategoryID: categories[0].ID, IsAvailable: true},
		{Name: "Nem ran", Description: "Crispy fried spring rolls", Price: 35000, CategoryID: categories[0].ID, IsAvailable: true},
		{Name: "Pho bo", Description: "Hanoi beef noodle soup", Price: 55000, CategoryID: categories[1].ID, IsAvailable: true},
		{Name: "Com tam", Description: "Broken rice with grilled pork", Price: 45000, CategoryID: categories[1].ID, IsAvailable: true},
		{Name: "Bun cha", Description: "Grilled pork with vermicelli", Price: 50000, CategoryID: categories[1].ID, IsAvailable: true},
		{Name: "Che ba mau", Description: "Three-color dessert", Price: 20000, CategoryID: categories[2].ID, IsAvailable: true},
		{Name: "Ca phe sua da", Description: "Iced milk coffee", Price: 25000, CategoryID: categories[3].ID, IsAvailable: true},
		{Name: "Tra da", Description: "Iced tea", Price: 5000, CategoryID: categories[3].ID, IsAvailable: true},
	}
	for i := range items {
		config.DB.FirstOrCreate(&items[i], models.MenuItem{Name: items[i].Name})
	}

	// ============= Seed Tables =============
	tables := []models.Table{
		{TableNumber: "T01", Capacity: 4, Status: models.TableAvailable, Location: "Indoor"},
		{TableNumber: "T02", Capacity: 4, Status: models.TableAvailable, Location: "Indoor"},
		{TableNumber: "T03", Capacity: 2, Status: models.TableAvailable, Location: "Indoor"},
		{TableNumber: "T04", Capacity: 6, Status: models.TableAvailable, Location: "Outdoor"},
		{TableNumber: "T05", Capacity: 8, Status: models.TableAvailable, Location: "VIP"},
	}
	for i := range tables {
		config.DB.FirstOrCreate(&tables[i], models.Table{TableNumber: tables[i].TableNumber})
	}

	log.Println("Seed data loaded")
}
