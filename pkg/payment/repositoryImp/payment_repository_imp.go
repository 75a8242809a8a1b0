package repositoryImp

import (
	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/payment/repository"
)

type paymentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PaymentRepository { return &paymentRepo{db} }

func (r *paymentRepo) Sync(deliveryID string, amount float64, defaults entities.Payment) (*entities.Payment, error) {
	var p entities.Payment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		defaults.DeliveryID = deliveryID
		defaults.Amount = amount
		if err := tx.Where(entities.Payment{DeliveryID: deliveryID}).
			Attrs(defaults).FirstOrCreate(&p).Error; err != nil {
			return err
		}
		if p.Amount != amount {
			if err := tx.Model(&p).UpdateColumn("amount", amount).Error; err != nil {
				return err
			}
			p.Amount = amount
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) FindByDelivery(deliveryID string) (*entities.Payment, error) {
	var p entities.Payment
	if err := r.db.Where("delivery_id = ?", deliveryID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) List(uid string) ([]entities.Payment, error) {
	var list []entities.Payment
	err := r.db.Preload("Delivery.Farmer").
		Joins("JOIN deliveries ON deliveries.id = payments.delivery_id").
		Joins("JOIN farmers ON farmers.id = deliveries.farmer_id").
		Where("farmers.user_id = ?", uid).
		Order("payments.date desc").Find(&list).Error
	return list, err
}

func (r *paymentRepo) Delete(id uint, uid string) error {
	var p entities.Payment
	err := r.db.
		Joins("JOIN deliveries ON deliveries.id = payments.delivery_id").
		Joins("JOIN farmers ON farmers.id = deliveries.farmer_id").
		Where("payments.id = ? AND farmers.user_id = ?", id, uid).
		First(&p).Error
	if err != nil {
		return err
	}
	return r.db.Delete(&p).Error
}
