package repository

import "agrosync/entities"

// Reads and deletes join through the owning farmer so each user only sees
// lands of their own farmers.
type LandRepository interface {
	Create(l *entities.Land) error
	Update(l *entities.Land) error
	Delete(id uint, uid string) error
	FindByID(id uint, uid string) (*entities.Land, error)
	// List returns the lands of all farmers owned by uid.
	List(uid string) ([]entities.Land, error)
}
