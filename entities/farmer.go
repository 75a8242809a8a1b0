package entities

import "time"

type Farmer struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         string `gorm:"index" json:"user_id"`
	Name           string `json:"name"`
	Document       string `json:"document"`
	DocumentTypeID *uint  `json:"-"`
	Phone          string `json:"phone"`
	DistrictID     *uint  `json:"-"`
	Zone           string `json:"zone"`
	Status         string `json:"status"` // Activo|Inactivo
	// Monotonic audit counter: every intake ever created for this farmer,
	// bumped with an atomic SQL increment, never decremented.
	DeliveriesCount int `json:"deliveries_count"`

	DocumentType *DocumentType `gorm:"foreignKey:DocumentTypeID" json:"-"`
	District     *District     `gorm:"foreignKey:DistrictID" json:"-"`

	// Flattened location/document names for read payloads (not persisted)
	DocumentTypeCode string `gorm:"-" json:"document_type,omitempty"`
	DistrictName     string `gorm:"-" json:"district,omitempty"`
	ProvinceName     string `gorm:"-" json:"province,omitempty"`
	DepartmentName   string `gorm:"-" json:"department,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
