package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"
)

// OrderService drives the order lifecycle and keeps the owning table's
// status consistent with it. Every multi-aggregate write happens inside
// a single transaction.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type CreateOrderItem struct {
	MenuItemID uint
	Quantity   int
	Notes      string
}

type CreateOrderInput struct {
	TableID    uint
	CustomerID *uint
	Notes      string
	Items      []CreateOrderItem
}

// round2 keeps monetary values at 2 fractional digits
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Create validates the table and every menu item, snapshots unit prices,
// computes the frozen total, and persists order + lines + table status
// (Occupied) as one unit.
func (s *OrderService) Create(in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for menu item %d", ErrInvalidInput, it.MenuItemID)
		}
	}

	unlock := lockTable(in.TableID)
	defer unlock()

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, in.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: table %d", ErrNotFound, in.TableID)
			}
			return err
		}

		if in.CustomerID != nil {
			var customer models.Customer
			if err := tx.First(&customer, *in.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: customer %d", ErrNotFound, *in.CustomerID)
				}
				return err
			}
		}

		var lines []models.OrderLine
		var total float64
		for _, it := range in.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, it.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: menu item %d", ErrItemUnavailable, it.MenuItemID)
				}
				return err
			}
			if !menuItem.IsAvailable {
				return fmt.Errorf("%w: %q", ErrItemUnavailable, menuItem.Name)
			}
			total += menuItem.Price * float64(it.Quantity)
			lines = append(lines, models.OrderLine{
				MenuItemID: menuItem.ID,
				Quantity:   it.Quantity,
				Price:      menuItem.Price,
				Notes:      it.Notes,
			})
		}

		order = models.Order{
			TableID:     in.TableID,
			CustomerID:  in.CustomerID,
			OrderDate:   time.Now().UTC(),
			Status:      models.OrderPending,
			TotalAmount: round2(total),
			Notes:       in.Notes,
			Lines:       lines,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Model(&table).Update("status", models.TableOccupied).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Lines.MenuItem").Preload("Table").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order along the kitchen flow. Paid and Cancelled
// are reached only through Pay and Cancel, which carry the table side
// effects; requesting them here is rejected.
func (s *OrderService) UpdateStatus(orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !statemachine.IsOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}

	if status == models.OrderPaid || status == models.OrderCancelled {
		return nil, fmt.Errorf("%w: %s is set through the pay/cancel operations", ErrInvalidTransition, status)
	}
	if err := statemachine.CanTransitionOrder(order.Status, status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	if err := s.DB.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Cancel moves an order to Cancelled and frees its table in one unit.
// Paid orders, or orders that already carry a payment, cannot be cancelled.
func (s *OrderService) Cancel(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Payment").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
			}
			return err
		}

		if order.Status == models.OrderPaid {
			return fmt.Errorf("%w: cannot cancel a paid order", ErrConflict)
		}
		if order.Payment != nil {
			return fmt.Errorf("%w: cannot cancel an order with a payment", ErrConflict)
		}
		if order.Status == models.OrderCancelled {
			return fmt.Errorf("%w: order is already cancelled", ErrConflict)
		}

		if err := tx.Model(&order).Update("status", models.OrderCancelled).Error; err != nil {
			return err
		}
		return tx.Model(&models.Table{}).Where("id = ?", order.TableID).
			Update("status", models.TableAvailable).Error
	})
}

// Get returns a single order with its lines, table, customer and payment.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Lines.MenuItem").Preload("Table").
		Preload("Customer").Preload("Payment").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders, optionally filtered by status, newest first.
func (s *OrderService) List(status string) ([]models.Order, error) {
	var orders []models.Order
	query := s.DB.Preload("Lines.MenuItem").Preload("Table").Preload("Customer")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("order_date desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
