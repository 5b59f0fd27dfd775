package models

import "time"

// ReservationStatus represents the lifecycle of a table reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationCompleted ReservationStatus = "Completed"
)

// IsTerminal reports whether no further status change is permitted.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationCancelled || s == ReservationCompleted
}

type Reservation struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	CustomerID      uint              `json:"customer_id" gorm:"not null"`
	Customer        Customer          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	TableID         uint              `json:"table_id" gorm:"not null;index"`
	Table           Table             `json:"table,omitempty" gorm:"foreignKey:TableID"`
	ReservationDate time.Time         `json:"reservation_date" gorm:"not null"`
	NumberOfGuests  int               `json:"number_of_guests" gorm:"not null"`
	Status          ReservationStatus `json:"status" gorm:"not null;default:'Pending'"`
	Notes           string            `json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
