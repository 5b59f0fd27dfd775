package models

import (
	"time"
)

// EmployeeRole defines allowed staff roles in the system
type EmployeeRole string

const (
	RoleAdmin   EmployeeRole = "Admin"
	RoleManager EmployeeRole = "Manager"
	RoleStaff   EmployeeRole = "Staff"
	RoleChef    EmployeeRole = "Chef"
)

type Employee struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Username     string       `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string       `json:"-" gorm:"not null"`
	FullName     string       `json:"full_name" gorm:"not null"`
	Email        string       `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string       `json:"phone"`
	Role         EmployeeRole `json:"role" gorm:"not null;default:'Staff'"`
	IsActive     bool         `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
