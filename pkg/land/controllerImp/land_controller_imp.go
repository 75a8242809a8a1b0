package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrosync/entities"
	"agrosync/pkg/land/repository"
	"agrosync/pkg/refdata"
)

type LandCtrl struct {
	repo repository.LandRepository
	refs refdata.Resolver
}

func New(repo repository.LandRepository, refs refdata.Resolver) *LandCtrl {
	return &LandCtrl{repo: repo, refs: refs}
}

type landReq struct {
	Name           string   `json:"name"`
	FarmerID       *uint    `json:"farmerId"`
	Department     string   `json:"department"`
	Province       string   `json:"province"`
	District       string   `json:"district"`
	Location       string   `json:"location"`
	AreaHa         *float64 `json:"area"`
	AltitudeM      *float64 `json:"altitude"`
	IrrigationType string   `json:"irrigation_type"` // name, resolved against the catalog
	ProductID      *uint    `json:"productId"`
	Status         string   `json:"status"`
}

func (h *LandCtrl) List(c echo.Context) error {
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

func (h *LandCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	l, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	flatten(l)
	return c.JSON(http.StatusOK, l)
}

func (h *LandCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req landReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.FarmerID == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "farmerId is required"})
	}
	l := &entities.Land{
		Name: req.Name, FarmerID: *req.FarmerID, Location: req.Location,
		AreaHa: req.AreaHa, AltitudeM: req.AltitudeM, ProductID: req.ProductID,
		Status: req.Status,
	}
	if l.Status == "" {
		l.Status = entities.CatalogActive
	}
	h.applyRefs(l, &req)
	if err := h.repo.Create(l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	out, err := h.repo.FindByID(l.ID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	flatten(out)
	return c.JSON(http.StatusCreated, out)
}

func (h *LandCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	l, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req landReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		l.Name = req.Name
	}
	if req.FarmerID != nil {
		l.FarmerID = *req.FarmerID
	}
	if req.Location != "" {
		l.Location = req.Location
	}
	if req.AreaHa != nil {
		l.AreaHa = req.AreaHa
	}
	if req.AltitudeM != nil {
		l.AltitudeM = req.AltitudeM
	}
	if req.ProductID != nil {
		l.ProductID = req.ProductID
	}
	if req.Status != "" {
		l.Status = req.Status
	}
	h.applyRefs(l, &req)
	if err := h.repo.Update(l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	out, err := h.repo.FindByID(l.ID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	flatten(out)
	return c.JSON(http.StatusOK, out)
}

func (h *LandCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}

// applyRefs resolves the free-text location and irrigation names; a miss
// leaves the reference untouched.
func (h *LandCtrl) applyRefs(l *entities.Land, req *landReq) {
	if d, ok := h.refs.District(req.Department, req.Province, req.District); ok {
		l.DistrictID = &d.ID
	}
	if it, ok := h.refs.IrrigationType(req.IrrigationType); ok {
		l.IrrigationTypeID = &it.ID
	}
}

func flatten(l *entities.Land) {
	if l.Farmer != nil {
		l.FarmerName = l.Farmer.Name
	}
	if l.Product != nil {
		l.CropName = l.Product.Name
		l.CropVariety = l.Product.Variety
	}
	if l.IrrigationType != nil {
		l.IrrigationTypeName = l.IrrigationType.Name
	}
	if l.District != nil {
		l.DistrictName = l.District.Name
		if l.District.Province != nil {
			l.ProvinceName = l.District.Province.Name
			if l.District.Province.Department != nil {
				l.DepartmentName = l.District.Province.Department.Name
			}
		}
	}
}
