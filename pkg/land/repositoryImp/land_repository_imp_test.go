package repositoryImp

import (
	"errors"
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
		&entities.DocumentType{}, &entities.Department{}, &entities.Province{},
		&entities.District{}, &entities.IrrigationType{}, &entities.Product{},
		&entities.Farmer{}, &entities.Land{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestFindByID_ScopedToOwner(t *testing.T) {
	db := testDB(t)
	r := New(db)

	owner := entities.Farmer{UserID: "u1", Name: "Juan Pérez", Status: entities.CatalogActive}
	db.Create(&owner)
	land := entities.Land{Name: "Parcela Norte", FarmerID: owner.ID, Status: entities.CatalogActive}
	db.Create(&land)

	got, err := r.FindByID(land.ID, "u1")
	if err != nil {
		t.Fatalf("FindByID(owner) error = %v", err)
	}
	if got.Name != "Parcela Norte" {
		t.Errorf("Name = %q", got.Name)
	}

	if _, err := r.FindByID(land.ID, "u2"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByID(other user) error = %v, want ErrRecordNotFound", err)
	}
}

func TestDelete_ScopedToOwner(t *testing.T) {
	db := testDB(t)
	r := New(db)

	owner := entities.Farmer{UserID: "u1", Name: "Juan Pérez", Status: entities.CatalogActive}
	db.Create(&owner)
	land := entities.Land{Name: "Parcela Norte", FarmerID: owner.ID, Status: entities.CatalogActive}
	db.Create(&land)

	if err := r.Delete(land.ID, "u2"); err != nil {
		t.Fatalf("Delete(other user) error = %v", err)
	}
	var n int64
	db.Model(&entities.Land{}).Count(&n)
	if n != 1 {
		t.Fatalf("land deleted by a foreign user")
	}

	if err := r.Delete(land.ID, "u1"); err != nil {
		t.Fatalf("Delete(owner) error = %v", err)
	}
	db.Model(&entities.Land{}).Count(&n)
	if n != 0 {
		t.Errorf("lands = %d, want 0", n)
	}
}
