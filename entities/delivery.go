package entities

import "time"

const (
	StateFresh = "baba" // as-harvested, before drying
	StateDry   = "seco"

	DeliveryPending   = "Pendiente"
	DeliveryCompleted = "Completado"
)

// Delivery is one intake lot. Weight always holds the dry-equivalent
// kilograms; WeightFresh is set only when the lot was weighed as fresh
// (baba) product, in which case Weight == *WeightFresh * ConversionFactor.
type Delivery struct {
	ID               string   `gorm:"primaryKey;size:50" json:"id"`
	FarmerID         uint     `gorm:"index" json:"farmerId"`
	LandID           *uint    `json:"landId"`
	ProductID        *uint    `json:"productId"`
	WarehouseID      *uint    `json:"warehouseId"`
	ProductState     string   `json:"product_state"` // baba|seco
	Weight           float64  `json:"weight"`        // dry-equivalent kg
	WeightFresh      *float64 `json:"weight_fresh"`
	ConversionFactor float64  `json:"conversion_factor"`
	PricePerKg       *float64 `json:"price_per_kg"`
	TotalPayment     *float64 `json:"total_payment"`
	Status           string   `gorm:"index" json:"status"`
	Date             string   `gorm:"index" json:"date"` // kept as captured, never reformatted
	Notes            string   `json:"notes"`
	LocationDetail   string   `json:"location_detail"`

	Farmer    *Farmer    `gorm:"foreignKey:FarmerID" json:"-"`
	Land      *Land      `gorm:"foreignKey:LandID" json:"-"`
	Product   *Product   `gorm:"foreignKey:ProductID" json:"-"`
	Warehouse *Warehouse `gorm:"foreignKey:WarehouseID" json:"-"`

	// Flattened names for list/detail payloads (not persisted)
	FarmerName    string `gorm:"-" json:"farmer,omitempty"`
	LandName      string `gorm:"-" json:"landName,omitempty"`
	WarehouseName string `gorm:"-" json:"warehouseName,omitempty"`
	ProductLabel  string `gorm:"-" json:"product,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
