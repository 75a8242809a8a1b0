package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agrosync/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

// Migrate runs AutoMigrate for every entity, reference catalogs first so
// the foreign keys they anchor already exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.DocumentType{},
		&entities.Department{},
		&entities.Province{},
		&entities.District{},
		&entities.IrrigationType{},
		&entities.Product{},
		&entities.Price{},
		&entities.Warehouse{},
		&entities.Farmer{},
		&entities.Land{},
		&entities.Delivery{},
		&entities.Payment{},
	)
}
