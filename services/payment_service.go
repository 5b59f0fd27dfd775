package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant-pos-api/models"
)

// loyaltyDivisor converts an order total into loyalty points: one point
// per 10,000 of revenue, matching the front-desk policy.
const loyaltyDivisor = 10000

// PaymentService records the single payment of an order. Payment creation
// is the only trigger that marks an order Paid and frees its table; the
// three writes are one atomic unit.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// Pay settles the order. Two concurrent calls can both pass the in-memory
// checks; the unique index on payments.order_id makes the second insert
// fail and the transaction roll back, so exactly one payment ever exists.
func (s *PaymentService) Pay(orderID uint, method string) (*models.Payment, error) {
	if method == "" {
		method = "Cash"
	}

	var payment models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Payment").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
			}
			return err
		}

		if order.Status == models.OrderPaid {
			return ErrAlreadyPaid
		}
		if order.Status == models.OrderCancelled {
			return fmt.Errorf("%w: cannot pay a cancelled order", ErrConflict)
		}
		if order.Payment != nil {
			return ErrDuplicatePayment
		}

		payment = models.Payment{
			OrderID:       order.ID,
			Reference:     uuid.NewString(),
			Amount:        order.TotalAmount,
			PaymentMethod: method,
			PaymentDate:   time.Now().UTC(),
			Status:        models.PaymentCompleted,
		}
		if err := tx.Create(&payment).Error; err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint") {
				return ErrDuplicatePayment
			}
			return err
		}

		if err := tx.Model(&order).Update("status", models.OrderPaid).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Table{}).Where("id = ?", order.TableID).
			Update("status", models.TableAvailable).Error; err != nil {
			return err
		}

		if order.CustomerID != nil {
			points := int(order.TotalAmount) / loyaltyDivisor
			if points > 0 {
				if err := tx.Model(&models.Customer{}).Where("id = ?", *order.CustomerID).
					Update("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
