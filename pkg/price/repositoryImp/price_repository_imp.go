package repositoryImp

import (
	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/price/repository"
)

type priceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PriceRepository { return &priceRepo{db} }

func (r *priceRepo) List() ([]entities.Price, error) {
	var list []entities.Price
	err := r.db.Order("quality asc").Find(&list).Error
	return list, err
}

func (r *priceRepo) UpdateByQuality(quality string, price float64) (*entities.Price, error) {
	var p entities.Price
	if err := r.db.Where("quality = ?", quality).First(&p).Error; err != nil {
		return nil, err
	}
	p.Price = price
	if err := r.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
