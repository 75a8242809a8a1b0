package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrosync/pkg/price/repository"
)

type PriceCtrl struct{ repo repository.PriceRepository }

func New(repo repository.PriceRepository) *PriceCtrl { return &PriceCtrl{repo} }

type priceReq struct {
	Quality string   `json:"quality"`
	Price   *float64 `json:"price"`
}

func (h *PriceCtrl) List(c echo.Context) error {
	list, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": list})
}

func (h *PriceCtrl) Update(c echo.Context) error {
	var req priceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Quality == "" || req.Price == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quality and price are required"})
	}
	p, err := h.repo.UpdateByQuality(req.Quality, *req.Price)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "price not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "success", "data": p})
}
