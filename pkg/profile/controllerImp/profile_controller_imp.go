package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmai/entities"
	repo "farmai/pkg/farm/repository"
	"farmai/pkg/profile/controller"
	"farmai/pkg/stats"
)

const historySize = 5

type ProfileCtrl struct {
	r   repo.FarmRepository
	now func() time.Time
	log *zap.Logger
}

func New(r repo.FarmRepository, log *zap.Logger) controller.ProfileController {
	return &ProfileCtrl{r: r, now: time.Now, log: log}
}

type profileStats struct {
	Plots     int     `json:"plots"`
	TotalArea float64 `json:"total_area"`
	stats.HealthCounts
	Alerts int `json:"alerts"`
}

type profileResp struct {
	User    entities.User        `json:"user"`
	Stats   profileStats         `json:"stats"`
	History []entities.Diagnosis `json:"history"`
}

func (h *ProfileCtrl) Get(c echo.Context) error {
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
	counts := stats.CountByHealth(diags)
	return c.JSON(http.StatusOK, profileResp{
		User: u,
		Stats: profileStats{
			Plots:        len(plots),
			TotalArea:    stats.TotalArea(plots),
			HealthCounts: counts,
			Alerts:       counts.Alerts(),
		},
		History: stats.Recent(diags, historySize),
	})
}

// Put replaces the profile wholesale; there is no partial update.
func (h *ProfileCtrl) Put(c echo.Context) error {
	var u entities.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if strings.TrimSpace(u.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if u.ID == "" {
		cur, err := h.r.User()
		if err != nil {
			return h.internal(c, err)
		}
		u.ID = cur.ID
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = h.now()
	}
	if err := h.r.SetUser(u); err != nil {
		return h.internal(c, err)
	}
	h.log.Info("profile replaced", zap.String("user_id", u.ID))
	return c.JSON(http.StatusOK, u)
}

func (h *ProfileCtrl) internal(c echo.Context, err error) error {
	h.log.Error("profile request failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
