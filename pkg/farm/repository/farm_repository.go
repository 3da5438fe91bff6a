package repository

import (
	"context"

	"farmai/entities"
)

// FarmRepository is the only mutation and query surface for plots, diagnoses
// and the user profile. Update and delete on an unknown id are no-ops.
type FarmRepository interface {
	AddPlot(p entities.Plot) error
	UpdatePlot(id string, patch entities.PlotPatch) error
	DeletePlot(id string) error
	Plots() ([]entities.Plot, error)

	AddDiagnosis(d entities.Diagnosis) error
	Diagnoses() ([]entities.Diagnosis, error)
	DiagnosesByPlot(plotID string) ([]entities.Diagnosis, error)

	User() (entities.User, error)
	SetUser(u entities.User) error

	Ping(ctx context.Context) error
}
