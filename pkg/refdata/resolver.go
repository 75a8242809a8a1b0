package refdata

import (
	"gorm.io/gorm"

	"agrosync/entities"
)

// Resolver maps free-text location/classification input to catalog rows.
// Lookups are exact-match and case-sensitive. A miss is not an error: the
// second return is false and callers decide to proceed with the field unset
// (legacy tolerance, kept on purpose).
type Resolver interface {
	District(department, province, district string) (*entities.District, bool)
	DocumentType(code string) (*entities.DocumentType, bool)
	IrrigationType(name string) (*entities.IrrigationType, bool)
}

type gormResolver struct{ db *gorm.DB }

func New(db *gorm.DB) Resolver { return &gormResolver{db} }

func (r *gormResolver) District(department, province, district string) (*entities.District, bool) {
	if department == "" || province == "" || district == "" {
		return nil, false
	}
	var d entities.District
	err := r.db.
		Joins("JOIN provinces ON provinces.id = districts.province_id").
		Joins("JOIN departments ON departments.id = provinces.department_id").
		Where("districts.name = ? AND provinces.name = ? AND departments.name = ?",
			district, province, department).
		First(&d).Error
	if err != nil {
		return nil, false
	}
	return &d, true
}

func (r *gormResolver) DocumentType(code string) (*entities.DocumentType, bool) {
	if code == "" {
		return nil, false
	}
	var dt entities.DocumentType
	if err := r.db.Where("code = ?", code).First(&dt).Error; err != nil {
		return nil, false
	}
	return &dt, true
}

func (r *gormResolver) IrrigationType(name string) (*entities.IrrigationType, bool) {
	if name == "" {
		return nil, false
	}
	var it entities.IrrigationType
	if err := r.db.Where("name = ?", name).First(&it).Error; err != nil {
		return nil, false
	}
	return &it, true
}
