package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrosync/entities"
	"agrosync/pkg/warehouse/repository"
)

type WarehouseCtrl struct {
	repo repository.WarehouseRepository
}

func New(repo repository.WarehouseRepository) *WarehouseCtrl { return &WarehouseCtrl{repo} }

type warehouseReq struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	CapacityKG *float64 `json:"capacity"`
	Location   string   `json:"location"`
	Status     string   `json:"status"`
}

func (h *WarehouseCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	list, err := h.repo.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": list})
}

func (h *WarehouseCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req warehouseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	w := &entities.Warehouse{
		UserID: uid, Name: req.Name, Type: req.Type,
		CapacityKG: req.CapacityKG, Location: req.Location, Status: req.Status,
	}
	if w.Status == "" {
		w.Status = entities.CatalogActive
	}
	if err := h.repo.Create(w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *WarehouseCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	w, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req warehouseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		w.Name = req.Name
	}
	if req.Type != "" {
		w.Type = req.Type
	}
	if req.CapacityKG != nil {
		w.CapacityKG = req.CapacityKG
	}
	if req.Location != "" {
		w.Location = req.Location
	}
	if req.Status != "" {
		w.Status = req.Status
	}
	if err := h.repo.Update(w); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WarehouseCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
