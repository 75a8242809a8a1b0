package repository

import "agrosync/entities"

type PaymentRepository interface {
	// Sync is the atomic get-or-create for a delivery's payment: when no
	// payment exists one is created with the given defaults; when one exists
	// only the amount is brought in line. Runs as a single transaction.
	Sync(deliveryID string, amount float64, defaults entities.Payment) (*entities.Payment, error)
	FindByDelivery(deliveryID string) (*entities.Payment, error)
	List(uid string) ([]entities.Payment, error)
	// Delete only removes a payment reachable from uid's own deliveries;
	// anything else reports record not found.
	Delete(id uint, uid string) error
}
