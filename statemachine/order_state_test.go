package statemachine

import (
	"testing"

	"restaurant-pos-api/models"
)

func TestCanTransitionOrder(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{"pending to preparing", models.OrderPending, models.OrderPreparing, false},
		{"preparing to served", models.OrderPreparing, models.OrderServed, false},
		{"served to paid", models.OrderServed, models.OrderPaid, false},
		{"pending to paid", models.OrderPending, models.OrderPaid, false},
		{"pending to cancelled", models.OrderPending, models.OrderCancelled, false},
		{"served to cancelled", models.OrderServed, models.OrderCancelled, false},
		{"pending skips to served", models.OrderPending, models.OrderServed, true},
		{"served back to preparing", models.OrderServed, models.OrderPreparing, true},
		{"paid is terminal", models.OrderPaid, models.OrderPreparing, true},
		{"cancelled is terminal", models.OrderCancelled, models.OrderPending, true},
		{"cancelled cannot be paid", models.OrderCancelled, models.OrderPaid, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransitionOrder(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("CanTransitionOrder(%s, %s) = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestOrderTerminalStatesHaveNoExits(t *testing.T) {
	for _, status := range []models.OrderStatus{models.OrderPaid, models.OrderCancelled} {
		if nexts := ValidOrderTransitionsFrom(status); len(nexts) != 0 {
			t.Errorf("%s has exits %v, want none", status, nexts)
		}
		if !status.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false, want true", status)
		}
	}
}

func TestIsOrderStatus(t *testing.T) {
	for _, valid := range []models.OrderStatus{
		models.OrderPending, models.OrderPreparing, models.OrderServed,
		models.OrderPaid, models.OrderCancelled,
	} {
		if !IsOrderStatus(valid) {
			t.Errorf("IsOrderStatus(%s) = false, want true", valid)
		}
	}
	for _, invalid := range []models.OrderStatus{"", "pending", "Delivered"} {
		if IsOrderStatus(invalid) {
			t.Errorf("IsOrderStatus(%q) = true, want false", invalid)
		}
	}
}
