package repository

import "agrosync/entities"

type FarmerRepository interface {
	Create(f *entities.Farmer) error
	Update(f *entities.Farmer) error
	Delete(id uint, uid string) error
	FindByID(id uint, uid string) (*entities.Farmer, error)
	List(uid string) ([]entities.Farmer, error)
}
