package statemachine

import (
	"errors"

	"restaurant-pos-api/models"
)

// ReservationTransition defines a valid reservation state change
type ReservationTransition struct {
	From models.ReservationStatus
	To   models.ReservationStatus
}

var validReservationTransitions = []ReservationTransition{
	{From: models.ReservationPending, To: models.ReservationConfirmed},
	{From: models.ReservationPending, To: models.ReservationCancelled},
	{From: models.ReservationConfirmed, To: models.ReservationCancelled},
	{From: models.ReservationConfirmed, To: models.ReservationCompleted},
}

type reservationTransitionKey struct {
	From models.ReservationStatus
	To   models.ReservationStatus
}

var reservationTransitionMap = func() map[reservationTransitionKey]bool {
	m := make(map[reservationTransitionKey]bool)
	for _, t := range validReservationTransitions {
		m[reservationTransitionKey{t.From, t.To}] = true
	}
	return m
}()

var reservationStatuses = map[models.ReservationStatus]bool{
	models.ReservationPending:   true,
	models.ReservationConfirmed: true,
	models.ReservationCancelled: true,
	models.ReservationCompleted: true,
}

// IsReservationStatus checks membership of the enumerated reservation status set
func IsReservationStatus(s models.ReservationStatus) bool {
	return reservationStatuses[s]
}

// ValidReservationTransitionsFrom returns all valid next states from a given state
func ValidReservationTransitionsFrom(status models.ReservationStatus) []models.ReservationStatus {
	var nexts []models.ReservationStatus
	seen := map[models.ReservationStatus]bool{}
	for _, t := range validReservationTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransitionReservation checks whether a reservation may move between two states
func CanTransitionReservation(from, to models.ReservationStatus) error {
	if reservationTransitionMap[reservationTransitionKey{From: from, To: to}] {
		return nil
	}
	msg := "invalid transition: " + string(from) + " -> " + string(to)
	nexts := ValidReservationTransitionsFrom(from)
	if len(nexts) == 0 {
		return errors.New(msg + ". " + string(from) + " is a terminal state")
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return errors.New(msg + ". Valid transitions from " + string(from) + " are: " + result)
}

// AllReservationTransitions returns the full state machine for documentation
func AllReservationTransitions() []ReservationTransition {
	return validReservationTransitions
}
