package service

import "agrosync/entities"

// Reconciler keeps a delivery's payment record in line with its settled
// total. Reconcile is idempotent: repeated calls with an unchanged
// total_payment change nothing after the first sync.
type Reconciler interface {
	Reconcile(d *entities.Delivery) (*entities.Payment, error)
}
