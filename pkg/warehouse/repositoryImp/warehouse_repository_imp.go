package repositoryImp

import (
	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/warehouse/repository"
)

type warehouseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WarehouseRepository { return &warehouseRepo{db} }

func (r *warehouseRepo) Create(w *entities.Warehouse) error { return r.db.Create(w).Error }

func (r *warehouseRepo) Update(w *entities.Warehouse) error { return r.db.Save(w).Error }

func (r *warehouseRepo) Delete(id uint, uid string) error {
	return r.db.Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Warehouse{}).Error
}

func (r *warehouseRepo) FindByID(id uint) (*entities.Warehouse, error) {
	var w entities.Warehouse
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *warehouseRepo) List(uid string) ([]entities.Warehouse, error) {
	var list []entities.Warehouse
	err := r.db.Where("user_id = ?", uid).Order("id asc").Find(&list).Error
	return list, err
}

func (r *warehouseRepo) FirstForUser(uid string) (*entities.Warehouse, error) {
	var w entities.Warehouse
	err := r.db.Where("user_id = ? AND status = ?", uid, entities.CatalogActive).
		Order("id asc").First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}
