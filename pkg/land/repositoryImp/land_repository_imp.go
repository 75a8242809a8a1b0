package repositoryImp

import (
	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/land/repository"
)

type landRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LandRepository { return &landRepo{db} }

func (r *landRepo) Create(l *entities.Land) error { return r.db.Create(l).Error }

func (r *landRepo) Update(l *entities.Land) error { return r.db.Save(l).Error }

func (r *landRepo) Delete(id uint, uid string) error {
	return r.db.
		Where("id = ? AND farmer_id IN (?)",
			id, r.db.Model(&entities.Farmer{}).Select("id").Where("user_id = ?", uid)).
		Delete(&entities.Land{}).Error
}

func (r *landRepo) FindByID(id uint, uid string) (*entities.Land, error) {
	var l entities.Land
	err := r.db.Preload("Farmer").Preload("Product").Preload("IrrigationType").
		Preload("District.Province.Department").
		Joins("JOIN farmers ON farmers.id = lands.farmer_id").
		Where("lands.id = ? AND farmers.user_id = ?", id, uid).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *landRepo) List(uid string) ([]entities.Land, error) {
	var list []entities.Land
	err := r.db.Preload("Farmer").Preload("Product").Preload("IrrigationType").
		Preload("District.Province.Department").
		Joins("JOIN farmers ON farmers.id = lands.farmer_id").
		Where("farmers.user_id = ?", uid).
		Order("lands.id asc").Find(&list).Error
	return list, err
}
