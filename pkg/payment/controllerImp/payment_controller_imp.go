package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrosync/pkg/payment/repository"
)

type PaymentCtrl struct{ repo repository.PaymentRepository }

func New(repo repository.PaymentRepository) *PaymentCtrl { return &PaymentCtrl{repo} }

func (h *PaymentCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	list, err := h.repo.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	for i := range list {
		p := &list[i]
		if p.Delivery != nil && p.Delivery.Farmer != nil {
			p.FarmerName = p.Delivery.Farmer.Name
			p.FarmerID = p.Delivery.Farmer.ID
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"data": list})
}

func (h *PaymentCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
