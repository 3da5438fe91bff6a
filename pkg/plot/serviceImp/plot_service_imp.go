package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"farmai/entities"
	repo "farmai/pkg/farm/repository"
	"farmai/pkg/idgen"
	"farmai/pkg/plot/service"
)

type plotSvc struct {
	r     repo.FarmRepository
	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

func NewPlotService(r repo.FarmRepository, log *zap.Logger) service.PlotService {
	return NewPlotServiceWith(r, time.Now, idgen.Func(idgen.PlotPrefix), log)
}

// NewPlotServiceWith lets tests pin the clock and id source.
func NewPlotServiceWith(r repo.FarmRepository, now func() time.Time, newID func() string, log *zap.Logger) service.PlotService {
	return &plotSvc{r: r, now: now, newID: newID, log: log}
}

func (s *plotSvc) Create(in service.CreatePlotInput) (*entities.Plot, error) {
	name := strings.TrimSpace(in.Name)
	crop := strings.TrimSpace(in.CropType)
	if name == "" || crop == "" || in.Area <= 0 {
		return nil, service.ErrInvalidInput
	}
	ts := s.now()
	p := entities.Plot{
		ID:        s.newID(),
		Name:      name,
		CropType:  crop,
		Area:      in.Area,
		ImageURI:  strings.TrimSpace(in.ImageURI),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := s.r.AddPlot(p); err != nil {
		return nil, fmt.Errorf("add plot: %w", err)
	}
	s.log.Info("plot created", zap.String("plot_id", p.ID), zap.String("crop_type", p.CropType), zap.Float64("area", p.Area))
	return &p, nil
}

// Update writes only the patched fields. An unknown id is a silent no-op.
func (s *plotSvc) Update(id string, patch entities.PlotPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return service.ErrInvalidInput
	}
	if patch.CropType != nil && strings.TrimSpace(*patch.CropType) == "" {
		return service.ErrInvalidInput
	}
	if patch.Area != nil && *patch.Area <= 0 {
		return service.ErrInvalidInput
	}
	if err := s.r.UpdatePlot(id, patch); err != nil {
		return fmt.Errorf("update plot %s: %w", id, err)
	}
	return nil
}

// Delete leaves diagnoses that reference id untouched.
func (s *plotSvc) Delete(id string) error {
	if err := s.r.DeletePlot(id); err != nil {
		return fmt.Errorf("delete plot %s: %w", id, err)
	}
	s.log.Info("plot deleted", zap.String("plot_id", id))
	return nil
}

func (s *plotSvc) List() ([]entities.Plot, error) { return s.r.Plots() }

func (s *plotSvc) Diagnoses(plotID string) ([]entities.Diagnosis, error) {
	return s.r.DiagnosesByPlot(plotID)
}
