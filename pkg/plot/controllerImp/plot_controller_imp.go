package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmai/entities"
	"farmai/pkg/plot/controller"
	"farmai/pkg/plot/service"
	"farmai/pkg/stats"
)

type PlotCtrl struct {
	s   service.PlotService
	log *zap.Logger
}

func New(s service.PlotService, log *zap.Logger) controller.PlotController {
	return &PlotCtrl{s: s, log: log}
}

type listResp struct {
	Plots     []entities.Plot `json:"plots"`
	Count     int             `json:"count"`
	TotalArea float64         `json:"total_area"`
}

func (h *PlotCtrl) List(c echo.Context) error {
	plots, err := h.s.List()
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, listResp{Plots: plots, Count: len(plots), TotalArea: stats.TotalArea(plots)})
}

func (h *PlotCtrl) Create(c echo.Context) error {
	var req service.CreatePlotInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.s.Create(req)
	if errors.Is(err, service.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Completa todos los campos"})
	}
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlotCtrl) Patch(c echo.Context) error {
	var patch entities.PlotPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	err := h.s.Update(c.Param("id"), patch)
	if errors.Is(err, service.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Completa todos los campos"})
	}
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *PlotCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("id")); err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *PlotCtrl) Diagnoses(c echo.Context) error {
	out, err := h.s.Diagnoses(c.Param("id"))
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlotCtrl) internal(c echo.Context, err error) error {
	h.log.Error("plot request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
