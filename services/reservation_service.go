package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"
)

// slotWindow is the minimum separation between two reservations on the
// same table on the same calendar day.
const slotWindow = 2 * time.Hour

// ReservationService schedules reservations and keeps table status in
// step with confirmation, cancellation and completion.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type ReservationInput struct {
	CustomerID      uint
	TableID         uint
	ReservationDate time.Time
	NumberOfGuests  int
	Notes           string
}

// checkSlot reports ErrSlotConflict when another non-Cancelled reservation
// for the table falls within slotWindow on the same calendar date.
// excludeID skips the reservation being edited.
func checkSlot(tx *gorm.DB, tableID uint, date time.Time, excludeID uint) error {
	var existing []models.Reservation
	query := tx.Where("table_id = ? AND status <> ?", tableID, models.ReservationCancelled)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Find(&existing).Error; err != nil {
		return err
	}
	for _, r := range existing {
		sameDay := r.ReservationDate.UTC().Truncate(24*time.Hour).
			Equal(date.UTC().Truncate(24 * time.Hour))
		gap := r.ReservationDate.Sub(date)
		if gap < 0 {
			gap = -gap
		}
		if sameDay && gap < slotWindow {
			return fmt.Errorf("%w: conflicts with reservation %d at %s",
				ErrSlotConflict, r.ID, r.ReservationDate.UTC().Format(time.RFC3339))
		}
	}
	return nil
}

func (s *ReservationService) validateRefs(tx *gorm.DB, in ReservationInput) (*models.Table, error) {
	var customer models.Customer
	if err := tx.First(&customer, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, in.CustomerID)
		}
		return nil, err
	}
	var table models.Table
	if err := tx.First(&table, in.TableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: table %d", ErrNotFound, in.TableID)
		}
		return nil, err
	}
	if in.NumberOfGuests < 1 {
		return nil, fmt.Errorf("%w: number of guests must be at least 1", ErrInvalidInput)
	}
	if in.NumberOfGuests > table.Capacity {
		return nil, fmt.Errorf("%w: table %s seats %d", ErrCapacityExceeded, table.TableNumber, table.Capacity)
	}
	return &table, nil
}

// Create books a Pending reservation. The table is not touched until the
// reservation is confirmed. The slot check and the insert are serialized
// per table so two overlapping requests cannot both pass.
func (s *ReservationService) Create(in ReservationInput) (*models.Reservation, error) {
	unlock := lockTable(in.TableID)
	defer unlock()

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.validateRefs(tx, in); err != nil {
			return err
		}
		if !in.ReservationDate.After(time.Now()) {
			return ErrInvalidDate
		}
		if err := checkSlot(tx, in.TableID, in.ReservationDate, 0); err != nil {
			return err
		}
		reservation = models.Reservation{
			CustomerID:      in.CustomerID,
			TableID:         in.TableID,
			ReservationDate: in.ReservationDate.UTC(),
			NumberOfGuests:  in.NumberOfGuests,
			Status:          models.ReservationPending,
			Notes:           in.Notes,
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Customer").Preload("Table").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Update edits a non-terminal reservation, re-running reference, capacity
// and slot validation against the new values.
func (s *ReservationService) Update(reservationID uint, in ReservationInput) (*models.Reservation, error) {
	unlock := lockTable(in.TableID)
	defer unlock()

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, reservationID)
			}
			return err
		}
		if reservation.Status.IsTerminal() {
			return fmt.Errorf("%w: cannot update a %s reservation", ErrConflict, reservation.Status)
		}
		if _, err := s.validateRefs(tx, in); err != nil {
			return err
		}
		if err := checkSlot(tx, in.TableID, in.ReservationDate, reservation.ID); err != nil {
			return err
		}
		return tx.Model(&reservation).Updates(map[string]interface{}{
			"customer_id":      in.CustomerID,
			"table_id":         in.TableID,
			"reservation_date": in.ReservationDate.UTC(),
			"number_of_guests": in.NumberOfGuests,
			"notes":            in.Notes,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Customer").Preload("Table").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateStatus applies a reservation transition and its table side effect:
// Confirmed marks the table Reserved; Cancelled or Completed puts it back
// to Available, but only when it was Reserved, so a table occupied by an
// unrelated order is left alone.
func (s *ReservationService) UpdateStatus(reservationID uint, status models.ReservationStatus) (*models.Reservation, error) {
	if !statemachine.IsReservationStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Table").First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, reservationID)
			}
			return err
		}
		if err := statemachine.CanTransitionReservation(reservation.Status, status); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		if err := tx.Model(&reservation).Update("status", status).Error; err != nil {
			return err
		}

		switch status {
		case models.ReservationConfirmed:
			return tx.Model(&models.Table{}).Where("id = ?", reservation.TableID).
				Update("status", models.TableReserved).Error
		case models.ReservationCancelled, models.ReservationCompleted:
			if reservation.Table.Status == models.TableReserved {
				return tx.Model(&models.Table{}).Where("id = ?", reservation.TableID).
					Update("status", models.TableAvailable).Error
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Delete removes a Pending or Cancelled reservation and releases the
// table if it was held as Reserved.
func (s *ReservationService) Delete(reservationID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.Preload("Table").First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, reservationID)
			}
			return err
		}
		if reservation.Status != models.ReservationPending && reservation.Status != models.ReservationCancelled {
			return fmt.Errorf("%w: only pending or cancelled reservations can be deleted", ErrConflict)
		}
		if reservation.Table.Status == models.TableReserved {
			if err := tx.Model(&models.Table{}).Where("id = ?", reservation.TableID).
				Update("status", models.TableAvailable).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&reservation).Error
	})
}

// Get returns a single reservation with customer and table.
func (s *ReservationService) Get(reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Customer").Preload("Table").First(&reservation, reservationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: reservation %d", ErrNotFound, reservationID)
		}
		return nil, err
	}
	return &reservation, nil
}

// List returns reservations filtered by status and/or calendar date.
func (s *ReservationService) List(status string, date *time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	query := s.DB.Preload("Customer").Preload("Table")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if date != nil {
		start := date.UTC().Truncate(24 * time.Hour)
		query = query.Where("reservation_date >= ? AND reservation_date < ?", start, start.Add(24*time.Hour))
	}
	if err := query.Order("reservation_date desc").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// Upcoming returns the next future reservations that are still live.
func (s *ReservationService) Upcoming(limit int) ([]models.Reservation, error) {
	if limit <= 0 {
		limit = 10
	}
	var reservations []models.Reservation
	err := s.DB.Preload("Customer").Preload("Table").
		Where("reservation_date >= ? AND status NOT IN ?",
			time.Now().UTC(),
			[]models.ReservationStatus{models.ReservationCancelled, models.ReservationCompleted}).
		Order("reservation_date asc").
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
