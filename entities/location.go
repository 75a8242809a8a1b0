package entities

// DocumentType is a flat lookup catalog keyed by a stable code (DNI, RUC, CE).
type DocumentType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"uniqueIndex;size:50" json:"code"`
	Description string `json:"description"`
}

// IrrigationType is a flat lookup catalog keyed by name.
type IrrigationType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:100" json:"name"`
}

// Department → Province → District is a strict three-level hierarchy.
// A Province is unique by (name, department), a District by (name, province).
type Department struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:100" json:"name"`
}

type Province struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"uniqueIndex:uq_province;size:100" json:"name"`
	DepartmentID uint   `gorm:"uniqueIndex:uq_province" json:"department_id"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

type District struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"uniqueIndex:uq_district;size:100" json:"name"`
	ProvinceID uint   `gorm:"uniqueIndex:uq_district" json:"province_id"`

	Province *Province `gorm:"foreignKey:ProvinceID" json:"-"`
}
