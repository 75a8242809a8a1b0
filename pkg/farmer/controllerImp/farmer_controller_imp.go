package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrosync/entities"
	"agrosync/pkg/farmer/repository"
	"agrosync/pkg/refdata"
)

type FarmerCtrl struct {
	repo repository.FarmerRepository
	refs refdata.Resolver
}

func New(repo repository.FarmerRepository, refs refdata.Resolver) *FarmerCtrl {
	return &FarmerCtrl{repo: repo, refs: refs}
}

type farmerReq struct {
	Name         string `json:"name"`
	Document     string `json:"document"`
	DocumentType string `json:"document_type"` // code, resolved against the catalog
	Phone        string `json:"phone"`
	Department   string `json:"department"`
	Province     string `json:"province"`
	District     string `json:"district"`
	Zone         string `json:"zone"`
	Status       string `json:"status"`
}

func (h *FarmerCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	list, err := h.repo.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	for i := range list {
		flatten(&list[i])
	}
	return c.JSON(http.StatusOK, map[string]any{"data": list})
}

func (h *FarmerCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	flatten(f)
	return c.JSON(http.StatusOK, f)
}

func (h *FarmerCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req farmerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Farmer{
		UserID: uid, Name: req.Name, Document: req.Document,
		Phone: req.Phone, Zone: req.Zone, Status: req.Status,
	}
	if f.Status == "" {
		f.Status = entities.CatalogActive
	}
	h.applyRefs(f, &req)
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	out, err := h.repo.FindByID(f.ID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	flatten(out)
	return c.JSON(http.StatusCreated, out)
}

func (h *FarmerCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req farmerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		f.Name = req.Name
	}
	if req.Document != "" {
		f.Document = req.Document
	}
	if req.Phone != "" {
		f.Phone = req.Phone
	}
	if req.Zone != "" {
		f.Zone = req.Zone
	}
	if req.Status != "" {
		f.Status = req.Status
	}
	h.applyRefs(f, &req)
	if err := h.repo.Update(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	out, err := h.repo.FindByID(f.ID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	flatten(out)
	return c.JSON(http.StatusOK, out)
}

func (h *FarmerCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}

// applyRefs runs the free-text lookup fields through the resolver. A miss
// leaves the reference as it was; the request still succeeds.
func (h *FarmerCtrl) applyRefs(f *entities.Farmer, req *farmerReq) {
	if dt, ok := h.refs.DocumentType(req.DocumentType); ok {
		f.DocumentTypeID = &dt.ID
	}
	if d, ok := h.refs.District(req.Department, req.Province, req.District); ok {
		f.DistrictID = &d.ID
	}
}

func flatten(f *entities.Farmer) {
	if f.DocumentType != nil {
		f.DocumentTypeCode = f.DocumentType.Code
	}
	if f.District != nil {
		f.DistrictName = f.District.Name
		if f.District.Province != nil {
			f.ProvinceName = f.District.Province.Name
			if f.District.Province.Department != nil {
				f.DepartmentName = f.District.Province.Department.Name
			}
		}
	}
}
