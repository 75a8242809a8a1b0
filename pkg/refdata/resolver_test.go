package refdata

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"agrosync/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Department{}, &entities.Province{}, &entities.District{},
		&entities.DocumentType{}, &entities.IrrigationType{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	dept := entities.Department{Name: "San Martín"}
	db.Create(&dept)
	prov := entities.Province{Name: "Tocache", DepartmentID: dept.ID}
	db.Create(&prov)
	db.Create(&entities.District{Name: "Pólvora", ProvinceID: prov.ID})
	db.Create(&entities.District{Name: "Uchiza", ProvinceID: prov.ID})
	db.Create(&entities.DocumentType{Code: "DNI", Description: "Documento Nacional de Identidad"})
	db.Create(&entities.IrrigationType{Name: "Goteo"})
	return db
}

func TestDistrict_Resolved(t *testing.T) {
	r := New(testDB(t))
	d, ok := r.District("San Martín", "Tocache", "Pólvora")
	if !ok {
		t.Fatal("expected Pólvora to resolve")
	}
	if d.Name != "Pólvora" {
		t.Errorf("Name = %q, want Pólvora", d.Name)
	}
}

func TestDistrict_Unresolved(t *testing.T) {
	r := New(testDB(t))
	tests := []struct {
		name                     string
		dept, province, district string
	}{
		{"all unknown", "X", "Y", "Z"},
		{"wrong department", "Huánuco", "Tocache", "Pólvora"},
		{"wrong province", "San Martín", "Bellavista", "Pólvora"},
		{"case sensitive", "san martín", "tocache", "pólvora"},
		{"empty input", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d, ok := r.District(tt.dept, tt.province, tt.district); ok {
				t.Errorf("resolved unexpectedly to %+v", d)
			}
		})
	}
}

func TestDocumentType(t *testing.T) {
	r := New(testDB(t))
	dt, ok := r.DocumentType("DNI")
	if !ok || dt.Code != "DNI" {
		t.Fatalf("DocumentType(DNI) = %+v, %v", dt, ok)
	}
	if _, ok := r.DocumentType("PASAPORTE"); ok {
		t.Error("unknown code should not resolve")
	}
	if _, ok := r.DocumentType(""); ok {
		t.Error("empty code should not resolve")
	}
}

func TestIrrigationType(t *testing.T) {
	r := New(testDB(t))
	it, ok := r.IrrigationType("Goteo")
	if !ok || it.Name != "Goteo" {
		t.Fatalf("IrrigationType(Goteo) = %+v, %v", it, ok)
	}
	if _, ok := r.IrrigationType("Inundación"); ok {
		t.Error("unknown name should not resolve")
	}
}
