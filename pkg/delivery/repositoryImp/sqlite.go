package repositoryImp

import (
	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/delivery/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) CreateWithFarmerCount(d *entities.Delivery) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		// atomic increment, safe under concurrent intakes for the same farmer
		return tx.Model(&entities.Farmer{}).Where("id = ?", d.FarmerID).
			UpdateColumn("deliveries_count", gorm.Expr("deliveries_count + ?", 1)).Error
	})
}

func (r *sqliteRepo) Update(d *entities.Delivery) error { return r.db.Save(d).Error }

func (r *sqliteRepo) FindByID(id, uid string) (*entities.Delivery, error) {
	var out entities.Delivery
	err := r.db.Preload("Farmer").Preload("Land").Preload("Product").Preload("Warehouse").
		Joins("JOIN farmers ON farmers.id = deliveries.farmer_id").
		Where("deliveries.id = ? AND farmers.user_id = ?", id, uid).First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) List(uid string) ([]entities.Delivery, error) {
	var list []entities.Delivery
	err := r.db.Preload("Farmer").Preload("Land").Preload("Product").Preload("Warehouse").
		Joins("JOIN farmers ON farmers.id = deliveries.farmer_id").
		Where("farmers.user_id = ?", uid).
		Order("deliveries.date desc, deliveries.id asc").Find(&list).Error
	return list, err
}

func (r *sqliteRepo) IDExists(id string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Delivery{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *sqliteRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.Delivery{}).Error
}
