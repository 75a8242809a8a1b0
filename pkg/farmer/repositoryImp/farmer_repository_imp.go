package repositoryImp

import (
	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

func (r *farmerRepo) Create(f *entities.Farmer) error { return r.db.Create(f).Error }

func (r *farmerRepo) Update(f *entities.Farmer) error { return r.db.Save(f).Error }

func (r *farmerRepo) Delete(id uint, uid string) error {
	return r.db.Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Farmer{}).Error
}

func (r *farmerRepo) FindByID(id uint, uid string) (*entities.Farmer, error) {
	var f entities.Farmer
	err := r.db.Preload("DocumentType").Preload("District.Province.Department").
		Where("id = ? AND user_id = ?", id, uid).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) List(uid string) ([]entities.Farmer, error) {
	var list []entities.Farmer
	err := r.db.Preload("DocumentType").Preload("District.Province.Department").
		Where("user_id = ?", uid).Order("id asc").Find(&list).Error
	return list, err
}
