package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrosync/entities"
	"agrosync/pkg/product/repository"
)

type ProductCtrl struct{ repo repository.ProductRepository }

func New(repo repository.ProductRepository) *ProductCtrl { return &ProductCtrl{repo} }

func (h *ProductCtrl) List(c echo.Context) error {
	list, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": list})
}

func (h *ProductCtrl) Create(c echo.Context) error {
	var p entities.Product
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if p.Status == "" {
		p.Status = entities.CatalogActive
	}
	if err := h.repo.Create(&p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}
