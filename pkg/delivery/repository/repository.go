package repository

import "agrosync/entities"

type Repo interface {
	// CreateWithFarmerCount persists the delivery and bumps the owning
	// farmer's deliveries_count with a SQL-level increment, both inside one
	// transaction.
	CreateWithFarmerCount(d *entities.Delivery) error
	Update(d *entities.Delivery) error
	// FindByID joins through farmers so only uid's deliveries are visible.
	FindByID(id, uid string) (*entities.Delivery, error)
	List(uid string) ([]entities.Delivery, error)
	IDExists(id string) (bool, error)
	Delete(id string) error
}
