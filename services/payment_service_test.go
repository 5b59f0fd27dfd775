package services

import (
	"errors"
	"testing"

	"restaurant-pos-api/models"
)

func TestPayOrderSettlesAndFreesTable(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 50000, true)

	order, err := NewOrderService(db).Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	payment, err := NewPaymentService(db).Pay(order.ID, "Card")
	if err != nil {
		t.Fatalf("pay: %v", err)
	}

	if payment.Amount != 100000 {
		t.Errorf("payment amount = %v, want 100000", payment.Amount)
	}
	if payment.PaymentMethod != "Card" {
		t.Errorf("method = %v, want Card", payment.PaymentMethod)
	}
	if payment.Status != models.PaymentCompleted {
		t.Errorf("payment status = %v, want Completed", payment.Status)
	}
	if payment.Reference == "" {
		t.Error("payment reference is empty")
	}

	reloaded, err := NewOrderService(db).Get(order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.Status != models.OrderPaid {
		t.Errorf("order status = %v, want Paid", reloaded.Status)
	}
	if got := tableStatus(t, db, table.ID); got != models.TableAvailable {
		t.Errorf("table status = %v, want Available", got)
	}
}

func TestPayOrderDefaultsToCash(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Tra da", 5000, true)

	order, err := NewOrderService(db).Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	payment, err := NewPaymentService(db).Pay(order.ID, "")
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if payment.PaymentMethod != "Cash" {
		t.Errorf("method = %v, want Cash", payment.PaymentMethod)
	}
}

func TestPayOrderIsIdempotentChecked(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 50000, true)

	order, err := NewOrderService(db).Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	svc := NewPaymentService(db)
	if _, err := svc.Pay(order.ID, "Cash"); err != nil {
		t.Fatalf("first pay: %v", err)
	}
	if _, err := svc.Pay(order.ID, "Cash"); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("second pay err = %v, want ErrAlreadyPaid", err)
	}

	var count int64
	db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("payments = %d, want exactly 1", count)
	}
}

func TestPayOrderConcurrentCallsSettleOnce(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 50000, true)

	order, err := NewOrderService(db).Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	svc := NewPaymentService(db)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.Pay(order.ID, "Cash")
			errs <- err
		}()
	}

	var succeeded, rejected int
	for i := 0; i < 2; i++ {
		switch err := <-errs; {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadyPaid), errors.Is(err, ErrDuplicatePayment):
			rejected++
		default:
			t.Errorf("unexpected err: %v", err)
		}
	}
	if succeeded != 1 || rejected != 1 {
		t.Errorf("succeeded = %d, rejected = %d, want 1 and 1", succeeded, rejected)
	}

	var count int64
	db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("payments = %d, want exactly 1", count)
	}
	if got := tableStatus(t, db, table.ID); got != models.TableAvailable {
		t.Errorf("table status = %v, want Available", got)
	}
}

func TestPayOrderErrors(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 50000, true)

	orderSvc := NewOrderService(db)
	cancelled, err := orderSvc.Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := orderSvc.Cancel(cancelled.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	svc := NewPaymentService(db)
	tests := []struct {
		name    string
		orderID uint
		wantErr error
	}{
		{"unknown order", 9999, ErrNotFound},
		{"cancelled order", cancelled.ID, ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Pay(tt.orderID, "Cash"); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPayOrderAccruesLoyaltyPoints(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	customer := seedCustomer(t, db, "Nguyen Van A", "0900000001")
	item := seedMenuItem(t, db, "Pho bo", 55000, true)

	order, err := NewOrderService(db).Create(CreateOrderInput{
		TableID:    table.ID,
		CustomerID: &customer.ID,
		Items:      []CreateOrderItem{{MenuItemID: item.ID, Quantity: 2}}, // 110000
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := NewPaymentService(db).Pay(order.ID, "MoMo"); err != nil {
		t.Fatalf("pay: %v", err)
	}

	var reloaded models.Customer
	if err := db.First(&reloaded, customer.ID).Error; err != nil {
		t.Fatalf("reload customer: %v", err)
	}
	if reloaded.LoyaltyPoints != 11 {
		t.Errorf("loyalty points = %d, want 11", reloaded.LoyaltyPoints)
	}
}
