package repository

import "agrosync/entities"

type ProductRepository interface {
	Create(p *entities.Product) error
	List() ([]entities.Product, error)
	FindByID(id uint) (*entities.Product, error)
	// FirstActive backs the intake default when no product is supplied.
	FirstActive() (*entities.Product, error)
}
