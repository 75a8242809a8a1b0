package serviceImp

import (
	"time"

	"agrosync/entities"
	repo "agrosync/pkg/payment/repository"
	"agrosync/pkg/payment/service"
)

type reconciler struct {
	r   repo.PaymentRepository
	now func() time.Time
}

func New(r repo.PaymentRepository) service.Reconciler {
	return &reconciler{r: r, now: time.Now}
}

// NewWithClock exists for tests that need a fixed payment date.
func NewWithClock(r repo.PaymentRepository, now func() time.Time) service.Reconciler {
	return &reconciler{r: r, now: now}
}

func (s *reconciler) Reconcile(d *entities.Delivery) (*entities.Payment, error) {
	if d.TotalPayment == nil || *d.TotalPayment <= 0 {
		return nil, nil
	}
	defaults := entities.Payment{
		Date:      s.now().Format("2006-01-02 15:04:05"),
		Method:    entities.PaymentMethodTransfer,
		Status:    entities.PaymentPending,
		Reference: "PAY-AUTO-" + d.ID,
	}
	return s.r.Sync(d.ID, *d.TotalPayment, defaults)
}
