package service

import (
	"errors"

	"farmai/entities"
)

// ErrInvalidInput is surfaced to the user as "Completa todos los campos".
var ErrInvalidInput = errors.New("completa todos los campos")

type CreatePlotInput struct {
	Name     string  `json:"name"`
	CropType string  `json:"crop_type"`
	Area     float64 `json:"area"`
	ImageURI string  `json:"image_uri"`
}

type PlotService interface {
	Create(in CreatePlotInput) (*entities.Plot, error)
	Update(id string, patch entities.PlotPatch) error
	Delete(id string) error
	List() ([]entities.Plot, error)
	Diagnoses(plotID string) ([]entities.Diagnosis, error)
}
