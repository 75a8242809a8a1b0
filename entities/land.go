package entities

import "time"

type Land struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	Name             string   `json:"name"`
	FarmerID         uint     `gorm:"index" json:"farmerId"`
	DistrictID       *uint    `json:"-"`
	Location         string   `json:"location"`
	AreaHa           *float64 `json:"area"`
	AltitudeM        *float64 `json:"altitude"`
	IrrigationTypeID *uint    `json:"-"`
	ProductID        *uint    `json:"productId"`
	Status           string   `json:"status"` // Activo|Inactivo

	Farmer         *Farmer         `gorm:"foreignKey:FarmerID" json:"-"`
	District       *District       `gorm:"foreignKey:DistrictID" json:"-"`
	IrrigationType *IrrigationType `gorm:"foreignKey:IrrigationTypeID" json:"-"`
	Product        *Product        `gorm:"foreignKey:ProductID" json:"-"`

	// Flattened names for read payloads (not persisted)
	FarmerName         string `gorm:"-" json:"farmer,omitempty"`
	CropName           string `gorm:"-" json:"cropName,omitempty"`
	CropVariety        string `gorm:"-" json:"cropVariety,omitempty"`
	DistrictName       string `gorm:"-" json:"district,omitempty"`
	ProvinceName       string `gorm:"-" json:"province,omitempty"`
	DepartmentName     string `gorm:"-" json:"department,omitempty"`
	IrrigationTypeName string `gorm:"-" json:"irrigation_type,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
