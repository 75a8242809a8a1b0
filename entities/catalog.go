package entities

import "time"

const CatalogActive = "Activo"

// Product is a globally shared crop catalog entry (e.g. Cacao CCN-51).
type Product struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Variety string `json:"variety"`
	Status  string `json:"status"`
}

// Price maps a quality grade to a price per kilogram. Values are supplied
// externally; nothing here computes them.
type Price struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Quality string  `gorm:"uniqueIndex" json:"quality"`
	Price   float64 `json:"price"`
}

type Warehouse struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	UserID     string   `gorm:"index" json:"user_id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	CapacityKG *float64 `json:"capacity"`
	Location   string   `json:"location"`
	Status     string   `json:"status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
