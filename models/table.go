package models

import "time"

// TableStatus represents the seating status of a dining table
type TableStatus string

const (
	TableAvailable TableStatus = "Available"
	TableOccupied  TableStatus = "Occupied"
	TableReserved  TableStatus = "Reserved"
)

type Table struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	TableNumber string      `json:"table_number" gorm:"uniqueIndex;not null"`
	Capacity    int         `json:"capacity" gorm:"not null"`
	Status      TableStatus `json:"status" gorm:"not null;default:'Available'"`
	Location    string      `json:"location"` // Indoor, Outdoor, VIP
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
