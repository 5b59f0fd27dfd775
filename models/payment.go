package models

import "time"

// PaymentStatus mirrors the payment provider outcome; in-house payments
// are recorded as Completed immediately.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

// Payment is 1:1 with an order. The unique index on OrderID is the last
// line of defense against two concurrent pay requests both inserting.
type Payment struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	OrderID       uint          `json:"order_id" gorm:"uniqueIndex;not null"`
	Reference     string        `json:"reference" gorm:"uniqueIndex;not null"`
	Amount        float64       `json:"amount" gorm:"not null"`
	PaymentMethod string        `json:"payment_method" gorm:"not null;default:'Cash'"` // Cash, Card, MoMo, ZaloPay
	PaymentDate   time.Time     `json:"payment_date"`
	Status        PaymentStatus `json:"status" gorm:"not null;default:'Completed'"`
}
