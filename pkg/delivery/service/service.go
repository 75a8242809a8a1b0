package service

import (
	"errors"

	"agrosync/entities"
)

var (
	ErrFarmerNotFound    = errors.New("farmer not found")
	ErrLandNotFound      = errors.New("land not found")
	ErrLandNotOwned      = errors.New("land does not belong to farmer")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrDeliveryNotFound  = errors.New("delivery not found")
)

// IntakeInput captures a new lot at the scale. Weight is the single measured
// value; its meaning (fresh or dry) follows ProductState.
type IntakeInput struct {
	FarmerID     uint     `json:"farmerId"`
	LandID       uint     `json:"landId"`
	WarehouseID  *uint    `json:"warehouseId"`
	ProductID    *uint    `json:"productId"`
	ProductState string   `json:"product_state"` // baba|seco, defaults to seco
	Weight       float64  `json:"weight"`
	PricePerKg   *float64 `json:"price_per_kg"`
	Date         string   `json:"date"`
	Notes        string   `json:"notes"`
}

// RevisionPatch is a quality-control edit: any subset of fields. When Weight
// or ProductState is present the weight triple is re-derived; changing only
// the state reinterprets the stored weight under the new state.
type RevisionPatch struct {
	Weight         *float64 `json:"weight"`
	ProductState   *string  `json:"product_state"`
	PricePerKg     *float64 `json:"price_per_kg"`
	TotalPayment   *float64 `json:"total_payment"`
	Status         *string  `json:"status"`
	Date           *string  `json:"date"`
	Notes          *string  `json:"notes"`
	LocationDetail *string  `json:"location_detail"`
	FarmerID       *uint    `json:"farmerId"`
	LandID         *uint    `json:"landId"`
	WarehouseID    *uint    `json:"warehouseId"`
}

// Every lookup is scoped to the calling user: a delivery belonging to
// another user's farmer is indistinguishable from a missing one.
type Service interface {
	Intake(uid string, in IntakeInput) (*entities.Delivery, error)
	// Revise applies the patch and returns the fully re-read delivery so
	// callers see every derived value.
	Revise(uid, id string, p RevisionPatch) (*entities.Delivery, error)
	Get(uid, id string) (*entities.Delivery, error)
	List(uid string) ([]entities.Delivery, error)
	Delete(uid, id string) error
}
