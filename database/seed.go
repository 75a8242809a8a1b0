package database

import (
	"gorm.io/gorm"

	"agrosync/entities"
)

// Seed loads the reference catalogs. Idempotent: every insert is a
// FirstOrCreate keyed on the natural identifier.
func Seed(db *gorm.DB) error {
	for _, dt := range []entities.DocumentType{
		{Code: "DNI", Description: "Documento Nacional de Identidad"},
		{Code: "RUC", Description: "Registro Único de Contribuyentes"},
		{Code: "CE", Description: "Carnet de Extranjería"},
	} {
		if err := db.Where(entities.DocumentType{Code: dt.Code}).
			FirstOrCreate(&dt).Error; err != nil {
			return err
		}
	}

	// Department → Province → District tree
	tree := map[string]map[string][]string{
		"San Martín": {
			"Tocache":          {"Pólvora", "Tocache", "Uchiza", "Nuevo Progreso", "Shunte"},
			"Mariscal Cáceres": {"Juanjuí"},
			"Bellavista":       {"Bellavista"},
			"Moyobamba":        {"Moyobamba"},
		},
		"Huánuco": {
			"Leoncio Prado": {"Rupa-Rupa", "Castillo Grande"},
			"Huánuco":       {"Amarilis"},
		},
		"Ucayali": {
			"Padre Abad":       {"Irazola"},
			"Coronel Portillo": {"Callería"},
		},
	}
	for deptName, provinces := range tree {
		dept := entities.Department{Name: deptName}
		if err := db.Where(entities.Department{Name: deptName}).
			FirstOrCreate(&dept).Error; err != nil {
			return err
		}
		for provName, districts := range provinces {
			prov := entities.Province{Name: provName, DepartmentID: dept.ID}
			if err := db.Where(entities.Province{Name: provName, DepartmentID: dept.ID}).
				FirstOrCreate(&prov).Error; err != nil {
				return err
			}
			for _, distName := range districts {
				dist := entities.District{Name: distName, ProvinceID: prov.ID}
				if err := db.Where(entities.District{Name: distName, ProvinceID: prov.ID}).
					FirstOrCreate(&dist).Error; err != nil {
					return err
				}
			}
		}
	}

	for _, name := range []string{"Secano", "Gravedad", "Goteo", "Aspersión"} {
		it := entities.IrrigationType{Name: name}
		if err := db.Where(entities.IrrigationType{Name: name}).
			FirstOrCreate(&it).Error; err != nil {
			return err
		}
	}

	for _, p := range []entities.Product{
		{Name: "Cacao", Variety: "CCN-51", Status: entities.CatalogActive},
		{Name: "Cacao", Variety: "Criollo", Status: entities.CatalogActive},
		{Name: "Cacao", Variety: "ICS-95", Status: entities.CatalogActive},
		{Name: "Café", Variety: "Catimor", Status: entities.CatalogActive},
		{Name: "Café", Variety: "Caturra", Status: entities.CatalogActive},
	} {
		if err := db.Where(entities.Product{Name: p.Name, Variety: p.Variety}).
			FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}

	for _, pr := range []entities.Price{
		{Quality: "A", Price: 15.50},
		{Quality: "B", Price: 12.00},
		{Quality: "C", Price: 9.50},
	} {
		if err := db.Where(entities.Price{Quality: pr.Quality}).
			FirstOrCreate(&pr).Error; err != nil {
			return err
		}
	}
	return nil
}
