package repositoryImp

import (
	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/product/repository"
)

type productRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &productRepo{db} }

func (r *productRepo) Create(p *entities.Product) error { return r.db.Create(p).Error }

func (r *productRepo) List() ([]entities.Product, error) {
	var list []entities.Product
	err := r.db.Order("id asc").Find(&list).Error
	return list, err
}

func (r *productRepo) FindByID(id uint) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FirstActive() (*entities.Product, error) {
	var p entities.Product
	err := r.db.Where("status = ?", entities.CatalogActive).Order("id asc").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
