package statemachine

import "restaurant-pos-api/models"

// Table status has no ordering between states: any enumerated value can
// follow any other, driven by order and reservation lifecycle events.
// Only membership is validated here.
var tableStatuses = map[models.TableStatus]bool{
	models.TableAvailable: true,
	models.TableOccupied:  true,
	models.TableReserved:  true,
}

// IsTableStatus checks membership of the enumerated table status set
func IsTableStatus(s models.TableStatus) bool {
	return tableStatuses[s]
}
