package controllerImp

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmai/pkg/diagnose/controller"
	"farmai/pkg/diagnose/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DiagnoseCtrl struct {
	s   service.DiagnoseService
	log *zap.Logger
}

func New(s service.DiagnoseService, log *zap.Logger) controller.DiagnoseController {
	return &DiagnoseCtrl{s: s, log: log}
}

type diagnoseReq struct {
	PlotID   string `json:"plot_id"`
	ImageURI string `json:"image_uri"`
}

func (h *DiagnoseCtrl) Create(c echo.Context) error {
	var req diagnoseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	d, err := h.s.Run(c.Request().Context(), req.PlotID, req.ImageURI)
	switch {
	case errors.Is(err, service.ErrMissingInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Selecciona una foto y un lote"})
	case errors.Is(err, context.Canceled):
		// client went away mid-delay; nothing was stored
		return c.NoContent(499)
	case err != nil:
		h.log.Error("diagnosis failed", zap.String("plot_id", req.PlotID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DiagnoseCtrl) List(c echo.Context) error {
	out, err := h.s.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DiagnoseCtrl) Export(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.s.Export(&buf); err != nil {
		h.log.Error("export failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="diagnosticos.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
