package repository

import "agrosync/entities"

type WarehouseRepository interface {
	Create(w *entities.Warehouse) error
	Update(w *entities.Warehouse) error
	Delete(id uint, uid string) error
	FindByID(id uint) (*entities.Warehouse, error)
	List(uid string) ([]entities.Warehouse, error)
	// FirstForUser is the intake default-selection policy: the caller's
	// oldest active warehouse.
	FirstForUser(uid string) (*entities.Warehouse, error)
}
