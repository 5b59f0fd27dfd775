package models

import "time"

type Customer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Phone         string    `json:"phone" gorm:"uniqueIndex;not null"`
	Email         string    `json:"email"`
	LoyaltyPoints int       `json:"loyalty_points" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
