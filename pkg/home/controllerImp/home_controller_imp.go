package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmai/entities"
	repo "farmai/pkg/farm/repository"
	"farmai/pkg/home/controller"
	"farmai/pkg/stats"
)

const recentSize = 3

type HomeCtrl struct {
	r   repo.FarmRepository
	log *zap.Logger
}

func New(r repo.FarmRepository, log *zap.Logger) controller.HomeController {
	return &HomeCtrl{r: r, log: log}
}

type dashboard struct {
	Greeting       string               `json:"greeting"`
	Farm           string               `json:"farm"`
	PlotCount      int                  `json:"plot_count"`
	DiagnosisCount int                  `json:"diagnosis_count"`
	Recent         []entities.Diagnosis `json:"recent"`
	Plots          []entities.Plot      `json:"plots"`
}

func (h *HomeCtrl) Dashboard(c echo.Context) error {
	u, err := h.r.User()
	if err != nil {
		return h.internal(c, err)
	}
	plots, err := h.r.Plots()
	if err != nil {
		return h.internal(c, err)
	}
	diags, err := h.r.Diagnoses()
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(http.StatusOK, dashboard{
		Greeting:       stats.FirstName(u.Name),
		Farm:           u.Farm,
		PlotCount:      len(plots),
		DiagnosisCount: len(diags),
		Recent:         stats.Recent(diags, recentSize),
		Plots:          plots,
	})
}

func (h *HomeCtrl) internal(c echo.Context, err error) error {
	h.log.Error("dashboard failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
