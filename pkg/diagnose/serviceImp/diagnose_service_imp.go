package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"farmai/entities"
	"farmai/pkg/ai"
	"farmai/pkg/diagnose/service"
	repo "farmai/pkg/farm/repository"
)

type diagnoseSvc struct {
	r   repo.FarmRepository
	llm ai.Client
	log *zap.Logger
}

func New(r repo.FarmRepository, llm ai.Client, log *zap.Logger) service.DiagnoseService {
	return &diagnoseSvc{r: r, llm: llm, log: log}
}

// Run generates a diagnosis and records it. The plot id is not checked
// against the store: diagnoses may reference plots that no longer exist.
func (s *diagnoseSvc) Run(ctx context.Context, plotID, imageURI string) (*entities.Diagnosis, error) {
	plotID = strings.TrimSpace(plotID)
	imageURI = strings.TrimSpace(imageURI)
	if plotID == "" || imageURI == "" {
		return nil, service.ErrMissingInput
	}

	d, err := s.llm.Diagnose(ctx, plotID, imageURI)
	if err != nil {
		return nil, fmt.Errorf("diagnose plot %s: %w", plotID, err)
	}
	if !d.Valid() {
		return nil, fmt.Errorf("diagnose plot %s: generator returned confidence %d, status %q", plotID, d.Confidence, d.HealthStatus)
	}
	if err := s.r.AddDiagnosis(*d); err != nil {
		return nil, fmt.Errorf("add diagnosis: %w", err)
	}
	s.log.Info("diagnosis recorded",
		zap.String("diagnosis_id", d.ID),
		zap.String("plot_id", d.PlotID),
		zap.String("health_status", string(d.HealthStatus)),
		zap.Int("confidence", d.Confidence),
	)
	return d, nil
}

func (s *diagnoseSvc) List() ([]entities.Diagnosis, error) { return s.r.Diagnoses() }
