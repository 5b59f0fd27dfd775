package models

import "time"

// OrderStatus represents all possible states of a dine-in order
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderServed    OrderStatus = "Served"
	OrderPaid      OrderStatus = "Paid"
	OrderCancelled OrderStatus = "Cancelled"
)

// IsTerminal reports whether no further status change is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderPaid || s == OrderCancelled
}

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	TableID     uint        `json:"table_id" gorm:"not null"`
	Table       Table       `json:"table,omitempty" gorm:"foreignKey:TableID"`
	CustomerID  *uint       `json:"customer_id"`
	Customer    *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	OrderDate   time.Time   `json:"order_date"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'Pending'"`
	TotalAmount float64     `json:"total_amount"` // frozen at creation, never recomputed
	Notes       string      `json:"notes"`
	Lines       []OrderLine `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
	Payment     *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderLine struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"` // snapshot price at time of order
	Notes      string   `json:"notes"`
}
