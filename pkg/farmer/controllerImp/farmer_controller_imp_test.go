package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrosync/entities"
	"agrosync/pkg/farmer/repositoryImp"
	"agrosync/pkg/refdata"
)

func newCtrl(t *testing.T) (*FarmerCtrl, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.DocumentType{}, &entities.Department{}, &entities.Province{},
		&entities.District{}, &entities.Farmer{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	db.Create(&entities.DocumentType{Code: "DNI", Description: "Documento Nacional de Identidad"})
	dep := entities.Department{Name: "San Martín"}
	db.Create(&dep)
	prov := entities.Province{Name: "Tocache", DepartmentID: dep.ID}
	db.Create(&prov)
	db.Create(&entities.District{Name: "Pólvora", ProvinceID: prov.ID})

	return New(repositoryImp.New(db), refdata.New(db)), db
}

func post(t *testing.T, h *FarmerCtrl, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/farmers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "u1")
	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return rec
}

func TestCreate_UnknownDistrictLeavesFieldUnset(t *testing.T) {
	h, db := newCtrl(t)
	rec := post(t, h, `{"name":"Rosa Quispe","document":"87654321","document_type":"DNI",
		"department":"San Martín","province":"Tocache","district":"Narnia"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var f entities.Farmer
	if err := db.Where("document = ?", "87654321").First(&f).Error; err != nil {
		t.Fatalf("reload farmer: %v", err)
	}
	if f.DistrictID != nil {
		t.Errorf("DistrictID = %v, want nil for an unknown district", *f.DistrictID)
	}
	// the resolvable field still lands
	if f.DocumentTypeID == nil {
		t.Error("DocumentTypeID = nil, want the DNI catalog row")
	}
	if f.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", f.UserID)
	}
}

func TestCreate_ResolvedDistrict(t *testing.T) {
	h, db := newCtrl(t)
	rec := post(t, h, `{"name":"Elías Torres","document":"45678901","document_type":"DNI",
		"department":"San Martín","province":"Tocache","district":"Pólvora"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var f entities.Farmer
	if err := db.Where("document = ?", "45678901").First(&f).Error; err != nil {
		t.Fatalf("reload farmer: %v", err)
	}
	if f.DistrictID == nil {
		t.Fatal("DistrictID = nil, want the Pólvora row")
	}
}
