package services

import "errors"

// Sentinel errors returned by the engine. Handlers translate these to
// HTTP status codes; messages wrapped around them are client-facing.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrItemUnavailable   = errors.New("menu item unavailable")
	ErrAlreadyPaid       = errors.New("order already paid")
	ErrDuplicatePayment  = errors.New("payment already exists")
	ErrCapacityExceeded  = errors.New("guest count exceeds table capacity")
	ErrInvalidDate       = errors.New("reservation date must be in the future")
	ErrSlotConflict      = errors.New("table already reserved for this time slot")
	ErrConflict          = errors.New("operation conflicts with current state")
)
