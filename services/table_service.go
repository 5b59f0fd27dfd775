package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"
)

// TableService owns direct table status changes and the delete guard.
// Lifecycle-driven status changes come in through the order and
// reservation services, which write the table inside their own
// transactions.
type TableService struct {
	DB *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{DB: db}
}

// SetStatus validates the enum and persists the new status.
func (s *TableService) SetStatus(tableID uint, status models.TableStatus) (*models.Table, error) {
	if !statemachine.IsTableStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	var table models.Table
	if err := s.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: table %d", ErrNotFound, tableID)
		}
		return nil, err
	}
	if err := s.DB.Model(&table).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// Delete removes a table unless some order referencing it is still live.
func (s *TableService) Delete(tableID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: table %d", ErrNotFound, tableID)
			}
			return err
		}

		var active int64
		err := tx.Model(&models.Order{}).
			Where("table_id = ? AND status NOT IN ?", tableID,
				[]models.OrderStatus{models.OrderPaid, models.OrderCancelled}).
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			return fmt.Errorf("%w: table has active orders", ErrConflict)
		}
		return tx.Delete(&table).Error
	})
}

// CurrentOrder returns the newest live order seated at the table.
func (s *TableService) CurrentOrder(tableID uint) (*models.Order, error) {
	var table models.Table
	if err := s.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: table %d", ErrNotFound, tableID)
		}
		return nil, err
	}

	var order models.Order
	err := s.DB.Preload("Lines.MenuItem").Preload("Customer").
		Where("table_id = ? AND status NOT IN ?", tableID,
			[]models.OrderStatus{models.OrderPaid, models.OrderCancelled}).
		Order("order_date desc").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no active order for table %d", ErrNotFound, tableID)
		}
		return nil, err
	}
	return &order, nil
}

// TableStatistics is the floor overview used by the dashboard.
type TableStatistics struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Occupied  int64 `json:"occupied"`
	Reserved  int64 `json:"reserved"`
}

func (s *TableService) Statistics() (*TableStatistics, error) {
	var stats TableStatistics
	if err := s.DB.Model(&models.Table{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	counts := map[models.TableStatus]*int64{
		models.TableAvailable: &stats.Available,
		models.TableOccupied:  &stats.Occupied,
		models.TableReserved:  &stats.Reserved,
	}
	for status, dst := range counts {
		if err := s.DB.Model(&models.Table{}).Where("status = ?", status).Count(dst).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
