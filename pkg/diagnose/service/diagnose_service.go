package service

import (
	"context"
	"errors"
	"io"

	"farmai/entities"
)

// ErrMissingInput is surfaced as "Selecciona una foto y un lote"; no diagnosis is attempted.
var ErrMissingInput = errors.New("selecciona una foto y un lote")

type DiagnoseService interface {
	Run(ctx context.Context, plotID, imageURI string) (*entities.Diagnosis, error)
	List() ([]entities.Diagnosis, error)
	// Export writes every stored diagnosis as an XLSX workbook.
	Export(w io.Writer) error
}
