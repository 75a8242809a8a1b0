package report

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"agrosync/entities"
	dsvc "agrosync/pkg/delivery/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Ctrl struct{ deliveries dsvc.Service }

func New(deliveries dsvc.Service) *Ctrl { return &Ctrl{deliveries: deliveries} }

func (h *Ctrl) Register(e *echo.Echo) {
	e.GET("/api/reports/deliveries", h.Deliveries)
}

// Deliveries streams the caller's deliveries as an XLSX workbook.
func (h *Ctrl) Deliveries(c echo.Context) error {
	uid := c.Get("uid").(string)
	list, err := h.deliveries.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	buf, err := buildWorkbook(list)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="deliveries.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf)
}

func buildWorkbook(list []entities.Delivery) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Entregas"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Fecha", "Agricultor", "Producto", "Estado producto",
		"Peso seco (kg)", "Peso baba (kg)", "Precio/kg", "Pago total", "Estado"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for row, d := range list {
		vals := []any{
			d.ID, d.Date, d.FarmerName, d.ProductLabel, d.ProductState,
			d.Weight, deref(d.WeightFresh), deref(d.PricePerKg), deref(d.TotalPayment), d.Status,
		}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return out.Bytes(), nil
}

func deref(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
