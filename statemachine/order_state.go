package statemachine

import (
	"errors"

	"restaurant-pos-api/models"
)

// OrderTransition defines a valid order state change
type OrderTransition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validOrderTransitions is the authoritative state machine definition.
// Paid and Cancelled are terminal: nothing leaves them.
var validOrderTransitions = []OrderTransition{
	// Kitchen flow
	{From: models.OrderPending, To: models.OrderPreparing},
	{From: models.OrderPreparing, To: models.OrderServed},
	// Payment closes a served order
	{From: models.OrderServed, To: models.OrderPaid},
	// Any non-terminal order can still be cancelled
	{From: models.OrderPending, To: models.OrderCancelled},
	{From: models.OrderPreparing, To: models.OrderCancelled},
	{From: models.OrderServed, To: models.OrderCancelled},
	// Walk-ins frequently pay before the kitchen flow finishes
	{From: models.OrderPending, To: models.OrderPaid},
	{From: models.OrderPreparing, To: models.OrderPaid},
}

type orderTransitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var orderTransitionMap = func() map[orderTransitionKey]bool {
	m := make(map[orderTransitionKey]bool)
	for _, t := range validOrderTransitions {
		m[orderTransitionKey{t.From, t.To}] = true
	}
	return m
}()

var orderStatuses = map[models.OrderStatus]bool{
	models.OrderPending:   true,
	models.OrderPreparing: true,
	models.OrderServed:    true,
	models.OrderPaid:      true,
	models.OrderCancelled: true,
}

// IsOrderStatus checks membership of the enumerated order status set
func IsOrderStatus(s models.OrderStatus) bool {
	return orderStatuses[s]
}

// ValidOrderTransitionsFrom returns all valid next states from a given state
func ValidOrderTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validOrderTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransitionOrder checks whether an order may move from one state to another
func CanTransitionOrder(from, to models.OrderStatus) error {
	if orderTransitionMap[orderTransitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " +
			describeOrderValidFrom(from),
	)
}

func describeOrderValidFrom(status models.OrderStatus) string {
	nexts := ValidOrderTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllOrderTransitions returns the full state machine for documentation
func AllOrderTransitions() []OrderTransition {
	return validOrderTransitions
}
