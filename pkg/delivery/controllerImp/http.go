package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dsvc "agrosync/pkg/delivery/service"
	"agrosync/pkg/idgen"
	"agrosync/pkg/weightconv"
)

type httpCtrl struct{ s dsvc.Service }

func New(s dsvc.Service) *httpCtrl { return &httpCtrl{s: s} }

func (h *httpCtrl) Register(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/deliveries", h.create)
	g.GET("/deliveries", h.list)
	g.GET("/deliveries/:id", h.get)
	g.PUT("/deliveries/:id", h.update)
	g.PATCH("/deliveries/:id", h.update)
	g.DELETE("/deliveries/:id", h.remove)
}

func (h *httpCtrl) create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var in dsvc.IntakeInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.Intake(uid, in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *httpCtrl) list(c echo.Context) error {
	uid := c.Get("uid").(string)
	list, err := h.s.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": list})
}

func (h *httpCtrl) get(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.s.Get(uid, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) update(c echo.Context) error {
	uid := c.Get("uid").(string)
	var p dsvc.RevisionPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.Revise(uid, c.Param("id"), p)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) remove(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.s.Delete(uid, c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

func writeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, weightconv.ErrInvalidWeight), errors.Is(err, weightconv.ErrInvalidState):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, dsvc.ErrLandNotOwned):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, dsvc.ErrFarmerNotFound),
		errors.Is(err, dsvc.ErrLandNotFound),
		errors.Is(err, dsvc.ErrWarehouseNotFound),
		errors.Is(err, dsvc.ErrProductNotFound),
		errors.Is(err, dsvc.ErrDeliveryNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, idgen.ErrExhausted):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
