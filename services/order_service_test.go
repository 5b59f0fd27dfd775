package services

import (
	"errors"
	"testing"

	"restaurant-pos-api/models"
)

func TestCreateOrderComputesTotalAndOccupiesTable(t *testing.T) {
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

	if order.TotalAmount != 100000 {
		t.Errorf("total = %v, want 100000", order.TotalAmount)
	}
	if order.Status != models.OrderPending {
		t.Errorf("status = %v, want Pending", order.Status)
	}
	if len(order.Lines) != 1 || order.Lines[0].Price != 50000 {
		t.Errorf("lines = %+v, want one line with snapshot price 50000", order.Lines)
	}
	if got := tableStatus(t, db, table.ID); got != models.TableOccupied {
		t.Errorf("table status = %v, want Occupied", got)
	}
}

func TestCreateOrderPriceSnapshotSurvivesMenuEdit(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Bun cha", 50000, true)

	svc := NewOrderService(db)
	order, err := svc.Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Raise the menu price after the order exists
	if err := db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Update("price", 99000).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	reloaded, err := svc.Get(order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.TotalAmount != 150000 {
		t.Errorf("total = %v, want frozen 150000", reloaded.TotalAmount)
	}
	if reloaded.Lines[0].Price != 50000 {
		t.Errorf("line price = %v, want snapshot 50000", reloaded.Lines[0].Price)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	available := seedMenuItem(t, db, "Com tam", 45000, true)
	archived := seedMenuItem(t, db, "Nem ran", 35000, false)

	tests := []struct {
		name    string
		input   CreateOrderInput
		wantErr error
	}{
		{
			name:    "no items",
			input:   CreateOrderInput{TableID: table.ID},
			wantErr: ErrEmptyOrder,
		},
		{
			name: "zero quantity",
			input: CreateOrderInput{
				TableID: table.ID,
				Items:   []CreateOrderItem{{MenuItemID: available.ID, Quantity: 0}},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "table absent",
			input: CreateOrderInput{
				TableID: 9999,
				Items:   []CreateOrderItem{{MenuItemID: available.ID, Quantity: 1}},
			},
			wantErr: ErrNotFound,
		},
		{
			name: "menu item absent",
			input: CreateOrderInput{
				TableID: table.ID,
				Items:   []CreateOrderItem{{MenuItemID: 9999, Quantity: 1}},
			},
			wantErr: ErrItemUnavailable,
		},
		{
			name: "menu item archived",
			input: CreateOrderInput{
				TableID: table.ID,
				Items:   []CreateOrderItem{{MenuItemID: archived.ID, Quantity: 1}},
			},
			wantErr: ErrItemUnavailable,
		},
	}

	svc := NewOrderService(db)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// A rejected create must persist nothing
	var orderCount, lineCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderLine{}).Count(&lineCount)
	if orderCount != 0 || lineCount != 0 {
		t.Errorf("persisted %d orders, %d lines after failed creates, want 0, 0", orderCount, lineCount)
	}
	if got := tableStatus(t, db, table.ID); got != models.TableAvailable {
		t.Errorf("table status = %v, want untouched Available", got)
	}
}

func TestUpdateOrderStatusKitchenFlow(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 55000, true)

	svc := NewOrderService(db)
	order, err := svc.Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	for _, next := range []models.OrderStatus{models.OrderPreparing, models.OrderServed} {
		updated, err := svc.UpdateStatus(order.ID, next)
		if err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
		if updated.Status != next {
			t.Errorf("status = %v, want %v", updated.Status, next)
		}
		// Kitchen transitions leave the table alone
		if got := tableStatus(t, db, table.ID); got != models.TableOccupied {
			t.Errorf("table status = %v after %s, want Occupied", got, next)
		}
	}
}

func TestUpdateOrderStatusRejections(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 55000, true)

	svc := NewOrderService(db)
	order, err := svc.Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	tests := []struct {
		name    string
		orderID uint
		status  models.OrderStatus
		wantErr error
	}{
		{"unknown order", 9999, models.OrderPreparing, ErrNotFound},
		{"status outside enum", order.ID, "Delivered", ErrInvalidStatus},
		{"skip to served", order.ID, models.OrderServed, ErrInvalidTransition},
		{"paid via status update", order.ID, models.OrderPaid, ErrInvalidTransition},
		{"cancelled via status update", order.ID, models.OrderCancelled, ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateStatus(tt.orderID, tt.status)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateOrderStatusTerminalOrdersAreFrozen(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 55000, true)

	svc := NewOrderService(db)
	order, err := svc.Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := svc.Cancel(order.ID); err != nil {
		t.Fatalf("cancel order: %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, models.OrderPreparing); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition from Cancelled", err)
	}
}

func TestCancelOrderFreesTable(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 55000, true)

	svc := NewOrderService(db)
	order, err := svc.Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := svc.Cancel(order.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	reloaded, err := svc.Get(order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.Status != models.OrderCancelled {
		t.Errorf("status = %v, want Cancelled", reloaded.Status)
	}
	if got := tableStatus(t, db, table.ID); got != models.TableAvailable {
		t.Errorf("table status = %v, want Available", got)
	}
}

func TestCancelPaidOrderFailsAndChangesNothing(t *testing.T) {
	db := newTestDB(t)
	table := seedTable(t, db, "T01", 4)
	item := seedMenuItem(t, db, "Pho bo", 55000, true)

	orderSvc := NewOrderService(db)
	order, err := orderSvc.Create(CreateOrderInput{
		TableID: table.ID,
		Items:   []CreateOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := NewPaymentService(db).Pay(order.ID, "Cash"); err != nil {
		t.Fatalf("pay: %v", err)
	}

	if err := orderSvc.Cancel(order.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("cancel paid order err = %v, want ErrConflict", err)
	}

	reloaded, err := orderSvc.Get(order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if reloaded.Status != models.OrderPaid {
		t.Errorf("status = %v, want still Paid", reloaded.Status)
	}
	if got := tableStatus(t, db, table.ID); got != models.TableAvailable {
		t.Errorf("table status = %v, want still Available", got)
	}
}
