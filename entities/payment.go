package entities

import "time"

const (
	PaymentPending   = "Pendiente"
	PaymentCompleted = "Completado"

	PaymentMethodTransfer = "Transferencia"
)

// Payment is the settlement record for a delivery. The unique index on
// DeliveryID guarantees at most one payment per delivery at the store level.
type Payment struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	DeliveryID string  `gorm:"uniqueIndex;size:50" json:"deliveryId"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Method     string  `json:"method"`
	Reference  string  `json:"reference"`
	Status     string  `json:"status"`

	Delivery *Delivery `gorm:"foreignKey:DeliveryID" json:"-"`

	// Flattened for read payloads (not persisted)
	FarmerName string `gorm:"-" json:"farmerName,omitempty"`
	FarmerID   uint   `gorm:"-" json:"farmerId,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
